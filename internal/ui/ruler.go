package ui

import (
	"math"

	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/text"
	"gioui.org/unit"
	"github.com/charmbracelet/log"

	"github.com/OpenTraceLab/OpenTraceLA/pkg/timeline"
	"github.com/OpenTraceLab/OpenTraceLA/pkg/timeline/giosurface"
	"github.com/OpenTraceLab/OpenTraceLA/pkg/view"
)

// One wheel notch of this many scroll units halves or doubles the zoom.
const wheelStep = 40.0

// rulerView is the timeline ruler with the marker area below it. Primary
// drag pans, the wheel zooms around the pointer, shift+wheel pans, and a
// secondary press drops the next free cursor.
type rulerView struct {
	model    *view.Model
	renderer *timeline.Renderer
	shaper   *text.Shaper
	logger   *log.Logger
	height   unit.Dp

	dragging bool
	lastX    float32
	centred  bool

	onChange func(msg string)
}

func newRulerView(m *view.Model, shaper *text.Shaper, height unit.Dp, logger *log.Logger) *rulerView {
	return &rulerView{
		model:    m,
		renderer: timeline.NewRenderer(m, logger),
		shaper:   shaper,
		logger:   logger,
		height:   height,
	}
}

func (r *rulerView) Layout(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	rulerH := min(gtx.Dp(r.height), size.Y)
	r.model.SetSize(float64(size.X), float64(rulerH))
	if !r.centred && size.X > 0 {
		r.model.GotoTrigger()
		r.centred = true
	}
	r.update(gtx)

	area := clip.Rect{Max: size}.Push(gtx.Ops)
	event.Op(gtx.Ops, r)

	s := giosurface.New(gtx, r.shaper)
	s.SetOrigin(r.model.ScrollX(), 0)
	r.renderer.Paint(s, r.model.Bounds(), r.model.VisibleRect())
	r.paintMarkers(s, float64(rulerH), float64(size.Y))

	area.Pop()
	return layout.Dimensions{Size: size}
}

// paintMarkers draws the trigger and cursor lines across the area under
// the ruler.
func (r *rulerView) paintMarkers(s *giosurface.Surface, top, bottom float64) {
	if bottom <= top {
		return
	}
	m := r.model
	vis := m.VisibleRect()
	body := timeline.Rect{X: vis.X, Y: top, W: vis.W, H: bottom - top}
	g := s.Clip(body)
	defer g.Dispose()

	bg := m.BackgroundColor()
	bg.A = 0xC0
	g.FillRect(body, bg)

	if x := m.TriggerOffset(); x >= vis.X && x <= vis.Right() {
		g.Line(x, top, x, bottom, m.TriggerColor())
	}
	for i := 0; i < timeline.MaxCursors; i++ {
		if !m.IsCursorDefined(i) {
			continue
		}
		if x := m.CursorX(i); x >= vis.X && x <= vis.Right() {
			g.Line(x, top, x, bottom, m.CursorColor(i))
		}
	}
}

func (r *rulerView) update(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  r,
			Kinds:   pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel | pointer.Scroll,
			ScrollX: pointer.ScrollRange{Min: math.MinInt32, Max: math.MaxInt32},
			ScrollY: pointer.ScrollRange{Min: math.MinInt32, Max: math.MaxInt32},
		})
		if !ok {
			break
		}
		pe, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		x := pe.Position.X
		switch pe.Kind {
		case pointer.Press:
			switch {
			case pe.Buttons.Contain(pointer.ButtonSecondary):
				r.placeCursor(float64(x))
			case pe.Buttons.Contain(pointer.ButtonPrimary):
				r.dragging = true
				r.lastX = x
			}
		case pointer.Drag:
			if r.dragging {
				r.model.Pan(float64(r.lastX - x))
				r.lastX = x
			}
		case pointer.Release, pointer.Cancel:
			r.dragging = false
		case pointer.Scroll:
			if pe.Modifiers.Contain(key.ModShift) {
				r.model.Pan(float64(pe.Scroll.Y))
			} else if pe.Scroll.Y != 0 {
				r.model.ZoomAt(float64(x), math.Exp2(-float64(pe.Scroll.Y)/wheelStep))
			}
			if pe.Scroll.X != 0 {
				r.model.Pan(float64(pe.Scroll.X))
			}
		}
		gtx.Execute(op.InvalidateCmd{})
	}
}

func (r *rulerView) placeCursor(viewX float64) {
	i := r.model.PlaceCursorAt(viewX)
	if i < 0 {
		r.notify("all cursors in use")
		return
	}
	t := timeline.FormatLabel(r.model.CursorTime(i), 0, 3, r.model.HasTimingData())
	r.logger.Debug("cursor placed", "index", i, "sample", r.model.Cursor(i).Sample)
	r.notify("cursor " + r.model.CursorFlagText(i, timeline.LabelStyle{Content: timeline.ContentIndex}) + " at " + t)
}

func (r *rulerView) notify(msg string) {
	if r.onChange != nil {
		r.onChange(msg)
	}
}
