package giosurface

import (
	"image"
	"image/color"
	"math"
	"testing"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"

	"github.com/OpenTraceLab/OpenTraceLA/pkg/timeline"
	"github.com/OpenTraceLab/OpenTraceLA/pkg/view"
)

func newTestSurface() *Surface {
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
		Constraints: layout.Exact(image.Pt(800, 40)),
	}
	shaper := text.NewShaper(text.WithCollection(gofont.Collection()))
	return New(gtx, shaper)
}

func TestTextWidthGrowsWithText(t *testing.T) {
	s := newTestSurface()
	f := timeline.Font{Size: 12}

	if w := s.TextWidth(f, ""); w != 0 {
		t.Fatalf("empty width = %v", w)
	}
	one := s.TextWidth(f, "0")
	four := s.TextWidth(f, "0000")
	if one <= 0 || four <= one {
		t.Fatalf("widths: one=%v four=%v", one, four)
	}
	if big := s.TextWidth(timeline.Font{Size: 24}, "0000"); big <= four {
		t.Fatalf("larger font width %v not above %v", big, four)
	}
}

func TestMetricsCached(t *testing.T) {
	s := newTestSurface()
	f := timeline.Font{Size: 12, Bold: true}

	m := s.Metrics(f)
	if m.Ascent <= 0 || m.Descent < 0 {
		t.Fatalf("metrics = %+v", m)
	}
	if len(s.metrics) != 1 {
		t.Fatalf("cache holds %d entries", len(s.metrics))
	}
	if again := s.Metrics(f); again != m {
		t.Fatalf("cached metrics %+v, want %+v", again, m)
	}
}

func TestClipDispose(t *testing.T) {
	s := newTestSurface()
	g := s.Clip(timeline.Rect{X: 10, W: 100, H: 40})
	g.FillRect(timeline.Rect{X: 10, W: 5, H: 5}, color.NRGBA{A: 255})
	g.Dispose()
	g.Dispose()
	s.Dispose()
}

func TestPaintRuler(t *testing.T) {
	m := view.NewModel(1e6, 100000)
	m.SetSize(800, 40)
	m.TriggerSample = 300
	if err := m.SetCursor(0, 200, "A"); err != nil {
		t.Fatal(err)
	}
	if err := m.SetCursor(1, 205, "B"); err != nil {
		t.Fatal(err)
	}

	s := newTestSurface()
	timeline.NewRenderer(m, nil).Paint(s, m.Bounds(), m.VisibleRect())

	labels := timeline.CursorLabels(m, m.VisibleRect(), s)
	timeline.PlaceLabels(labels)
	if len(labels) != 2 {
		t.Fatalf("got %d labels", len(labels))
	}
	if labels[0].Bounds.Intersects(labels[1].Bounds) {
		t.Fatalf("flags overlap: %+v %+v", labels[0].Bounds, labels[1].Bounds)
	}
}

func TestPixelRect(t *testing.T) {
	got := pixelRect(timeline.Rect{X: 1.5, Y: 0.2, W: 2, H: 3.7})
	if want := image.Rect(1, 0, 4, 4); got != want {
		t.Fatalf("pixelRect = %v, want %v", got, want)
	}
}

func TestOriginKeepsPixelsAtLargeScroll(t *testing.T) {
	m := view.NewModel(100e6, 1<<20)
	m.SetSize(800, 40)
	m.SetZoom(view.MaxZoom)
	m.ScrollTo(m.ContentWidth())
	if m.ScrollX() < 1e8 {
		t.Fatalf("scroll = %v, want past 1e8", m.ScrollX())
	}

	s := newTestSurface()
	s.SetOrigin(m.ScrollX(), 0)
	timeline.NewRenderer(m, nil).Paint(s, m.Bounds(), m.VisibleRect())

	ticks := timeline.ComputeTicks(m, m.VisibleRect())
	if len(ticks) < 2 {
		t.Fatalf("got %d ticks", len(ticks))
	}
	for i, tk := range ticks {
		p := s.point(tk.X, 0)
		if p.X < 0 || p.X > 800 {
			t.Fatalf("tick at %v drawn at %v, outside the view", tk.X, p.X)
		}
		if i == 0 {
			continue
		}
		want := tk.X - ticks[i-1].X
		if got := float64(p.X - s.point(ticks[i-1].X, 0).X); math.Abs(got-want) > 1e-3 {
			t.Fatalf("ticks %v apart drawn %v apart", want, got)
		}
	}

	s.SetOrigin(1e8, 0)
	if got := s.rect(timeline.Rect{X: 1e8 + 1.5, Y: 0.2, W: 2, H: 3.7}); got != image.Rect(1, 0, 4, 4) {
		t.Fatalf("rect = %v, want %v", got, image.Rect(1, 0, 4, 4))
	}
}
