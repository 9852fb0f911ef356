package view

import (
	"context"
	"errors"
	"testing"

	"github.com/OpenTraceLab/OpenTraceLA/pkg/action"
)

func TestBindActions(t *testing.T) {
	m := newTestModel()
	m.TriggerSample = 60000
	r := action.NewRegistry()
	changes := 0
	if err := BindActions(r, m, func() { changes++ }); err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	steps := []struct {
		name  string
		check func() bool
	}{
		{"zoom-in", func() bool { return m.Zoom() == 2 }},
		{"zoom-out", func() bool { return m.Zoom() == 1 }},
		{"zoom-fit", func() bool { return m.Zoom() == 800.0/100000 }},
		{"zoom-default", func() bool { return m.Zoom() == DefaultZoom }},
		{"goto-trigger", func() bool { return m.SampleAt(400) == 60000 }},
		{"toggle-minor-labels", func() bool { return m.MinorLabels }},
	}
	for _, s := range steps {
		if err := r.DispatchName(ctx, s.name); err != nil {
			t.Fatalf("%s: %v", s.name, err)
		}
		if !s.check() {
			t.Fatalf("%s: model not updated (zoom %v scroll %v)", s.name, m.Zoom(), m.ScrollX())
		}
	}

	m.PlaceCursorAt(10)
	if err := r.Dispatch(ctx, action.ClearCursors); err != nil {
		t.Fatal(err)
	}
	if m.IsCursorDefined(0) {
		t.Fatal("clear-cursors left cursor 0")
	}
	if changes != len(steps)+1 {
		t.Fatalf("changed ran %d times, want %d", changes, len(steps)+1)
	}
}

func TestBindActionsLeavesCaptureUnbound(t *testing.T) {
	r := action.NewRegistry()
	if err := BindActions(r, newTestModel(), nil); err != nil {
		t.Fatal(err)
	}
	for _, id := range []action.ID{action.Open, action.Save, action.Capture, action.RepeatCapture, action.Exit} {
		if err := r.Dispatch(context.Background(), id); !errors.Is(err, action.ErrNoHandler) {
			t.Fatalf("action %d: err = %v, want ErrNoHandler", id, err)
		}
	}
}
