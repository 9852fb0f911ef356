package view

import (
	"math"
	"testing"

	"github.com/OpenTraceLab/OpenTraceLA/pkg/timeline"
)

func newTestModel() *Model {
	m := NewModel(1e6, 100000)
	m.SetSize(800, 40)
	return m
}

func TestModelUnitOfTime(t *testing.T) {
	cases := []struct {
		rate, zoom float64
		want       float64
	}{
		{1e6, 1, 1e-6},
		{1e6, 0.01, 1e-4},
		{1e6, 3, 1e-6},   // 333ns per pixel rounds to 1µs
		{1e6, 4, 1e-7},   // 250ns per pixel rounds to 100ns
		{0, 1, 1},        // uncalibrated: one sample
		{0, 20, 1},       // never below a sample
		{0, 0.001, 1000}, // 1000 samples per pixel
	}
	for _, tc := range cases {
		m := NewModel(tc.rate, 1000)
		m.zoom = tc.zoom
		got := m.UnitOfTime()
		if math.Abs(got-tc.want) > tc.want*1e-9 {
			t.Fatalf("rate %v zoom %v: UnitOfTime = %v, want %v", tc.rate, tc.zoom, got, tc.want)
		}
	}
}

func TestModelZoomAtKeepsAnchor(t *testing.T) {
	m := newTestModel()
	m.ScrollTo(5000)
	before := m.SampleAt(300)

	m.ZoomAt(300, 2)
	if got := m.SampleAt(300); math.Abs(got-before) > 1e-9 {
		t.Fatalf("sample under pointer moved from %v to %v", before, got)
	}
	if m.Zoom() != 2 {
		t.Fatalf("zoom = %v, want 2", m.Zoom())
	}
}

func TestModelZoomClamps(t *testing.T) {
	m := newTestModel()
	m.ZoomAt(0, 1e9)
	if m.Zoom() != MaxZoom {
		t.Fatalf("zoom = %v, want %v", m.Zoom(), MaxZoom)
	}
	m.ZoomAt(0, 1e-12)
	if m.Zoom() != MinZoom {
		t.Fatalf("zoom = %v, want %v", m.Zoom(), MinZoom)
	}
	m.ZoomAt(0, 0)
	m.ZoomAt(0, -3)
	if m.Zoom() != MinZoom {
		t.Fatalf("non-positive factor changed zoom to %v", m.Zoom())
	}
}

func TestModelZoomInOut(t *testing.T) {
	m := newTestModel()
	m.ZoomIn()
	if m.Zoom() != 2 {
		t.Fatalf("after ZoomIn zoom = %v", m.Zoom())
	}
	m.ZoomOut()
	m.ZoomOut()
	if m.Zoom() != 0.5 {
		t.Fatalf("after ZoomOut zoom = %v", m.Zoom())
	}
	m.ZoomDefault()
	if m.Zoom() != DefaultZoom {
		t.Fatalf("after ZoomDefault zoom = %v", m.Zoom())
	}
	m.ZoomToFit()
	if want := 800.0 / 100000; m.Zoom() != want || m.ScrollX() != 0 {
		t.Fatalf("after ZoomToFit zoom = %v scroll = %v", m.Zoom(), m.ScrollX())
	}
}

func TestModelScrollClamps(t *testing.T) {
	m := newTestModel()
	m.Pan(-50)
	if m.ScrollX() != 0 {
		t.Fatalf("scroll = %v, want 0", m.ScrollX())
	}
	m.ScrollTo(1e12)
	if want := m.ContentWidth() - 800; m.ScrollX() != want {
		t.Fatalf("scroll = %v, want %v", m.ScrollX(), want)
	}
	if r := m.VisibleRect(); r.X != m.ScrollX() || r.W != 800 {
		t.Fatalf("visible = %+v", r)
	}
}

func TestModelGotoTrigger(t *testing.T) {
	m := newTestModel()
	m.TriggerSample = 50000
	m.GotoTrigger()
	if got := m.SampleAt(400); got != 50000 {
		t.Fatalf("centre sample = %v, want 50000", got)
	}
	if m.TriggerOffset() != 50000 {
		t.Fatalf("trigger offset = %v", m.TriggerOffset())
	}
}

func TestModelCursors(t *testing.T) {
	m := newTestModel()
	m.TriggerSample = 100

	if err := m.SetCursor(timeline.MaxCursors, 0, ""); err == nil {
		t.Fatal("SetCursor accepted an out of range index")
	}
	if err := m.SetCursor(2, 350, "SCK"); err != nil {
		t.Fatal(err)
	}
	if !m.IsCursorDefined(2) || m.IsCursorDefined(0) || m.IsCursorDefined(-1) {
		t.Fatal("defined flags wrong")
	}
	if m.CursorX(2) != 350 {
		t.Fatalf("CursorX = %v", m.CursorX(2))
	}

	texts := map[timeline.ContentKind]string{
		timeline.ContentLabelTime: "SCK: 250µs",
		timeline.ContentTime:      "250µs",
		timeline.ContentLabel:     "SCK",
		timeline.ContentIndex:     "3",
	}
	for kind, want := range texts {
		if got := m.CursorFlagText(2, timeline.LabelStyle{Content: kind}); got != want {
			t.Fatalf("%v: got %q, want %q", kind, got, want)
		}
	}

	idx := m.PlaceCursorAt(10)
	if idx != 0 || m.Cursor(0).Sample != 10 {
		t.Fatalf("PlaceCursorAt = %d (%+v)", idx, m.Cursor(0))
	}
	if got := m.CursorFlagText(0, timeline.LabelStyles[0]); got != "1: -90µs" {
		t.Fatalf("unlabelled flag = %q", got)
	}

	m.ClearCursor(2)
	if m.IsCursorDefined(2) {
		t.Fatal("cursor 2 still defined")
	}
	for i := 0; i < timeline.MaxCursors; i++ {
		m.PlaceCursorAt(float64(i))
	}
	if m.PlaceCursorAt(0) != -1 {
		t.Fatal("placed a cursor with every slot in use")
	}
	m.ClearCursors()
	for i := 0; i < timeline.MaxCursors; i++ {
		if m.IsCursorDefined(i) {
			t.Fatalf("cursor %d survived ClearCursors", i)
		}
	}
}

func TestModelUncalibratedFlags(t *testing.T) {
	m := NewModel(0, 5000)
	m.SetSize(800, 40)
	m.TriggerSample = 1000
	if err := m.SetCursor(0, 3500, ""); err != nil {
		t.Fatal(err)
	}
	if got := m.CursorFlagText(0, timeline.LabelStyle{Content: timeline.ContentTime}); got != "2,500" {
		t.Fatalf("flag = %q, want 2,500", got)
	}
}

func TestModelPaints(t *testing.T) {
	m := newTestModel()
	m.TriggerSample = 200
	if err := m.SetCursor(0, 300, "A"); err != nil {
		t.Fatal(err)
	}

	rec := timeline.NewRecorder()
	timeline.NewRenderer(m, nil).Paint(rec, m.Bounds(), m.VisibleRect())
	if len(rec.Filter(timeline.OpText)) == 0 {
		t.Fatal("nothing labelled")
	}
	if rec.Open() != 0 {
		t.Fatalf("%d surfaces left open", rec.Open())
	}
}
