// Package giosurface paints timeline rulers with Gio operations.
package giosurface

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"

	"github.com/OpenTraceLab/OpenTraceLA/pkg/timeline"
)

// Font sizes are in Sp. Coordinates are float64 pixels, taken relative to
// the surface origin before they are handed to Gio, whose ops are float32.
// Scrolled rulers keep their absolute coordinates that way without losing
// whole pixels at large offsets.

const (
	lineWidth   = 1
	unboundedPx = 1 << 20
	metricProbe = "0Mgy"
)

// Surface records ruler drawing into the ops of a layout context.
type Surface struct {
	gtx     layout.Context
	shaper  *text.Shaper
	metrics map[timeline.Font]timeline.FontMetrics
	originX float64
	originY float64

	clip  clip.Stack
	owned bool
}

var _ timeline.Surface = (*Surface)(nil)

// New returns a surface drawing into gtx.Ops with shaper.
func New(gtx layout.Context, shaper *text.Shaper) *Surface {
	return &Surface{
		gtx:     gtx,
		shaper:  shaper,
		metrics: make(map[timeline.Font]timeline.FontMetrics),
	}
}

// SetOrigin sets the point drawn at the top left of the ops, usually the
// scroll offset.
func (s *Surface) SetOrigin(x, y float64) {
	s.originX, s.originY = x, y
}

// Clip pushes a clip rectangle. The returned surface shares the origin and
// pops the clip on Dispose.
func (s *Surface) Clip(r timeline.Rect) timeline.Surface {
	return &Surface{
		gtx:     s.gtx,
		shaper:  s.shaper,
		metrics: s.metrics,
		originX: s.originX,
		originY: s.originY,
		clip:    clip.Rect(s.rect(r)).Push(s.gtx.Ops),
		owned:   true,
	}
}

// Dispose pops the clip pushed by Clip. It is a no-op on the root surface
// and on repeated calls.
func (s *Surface) Dispose() {
	if !s.owned {
		return
	}
	s.clip.Pop()
	s.owned = false
}

func (s *Surface) FillRect(r timeline.Rect, c color.NRGBA) {
	paint.FillShape(s.gtx.Ops, c, clip.Rect(s.rect(r)).Op())
}

func (s *Surface) Line(x1, y1, x2, y2 float64, c color.NRGBA) {
	// Centre on the pixel so one pixel wide lines stay sharp.
	if x1 == x2 {
		x1, x2 = x1+0.5, x2+0.5
	}
	if y1 == y2 {
		y1, y2 = y1+0.5, y2+0.5
	}
	var path clip.Path
	path.Begin(s.gtx.Ops)
	path.MoveTo(s.point(x1, y1))
	path.LineTo(s.point(x2, y2))

	stroke := clip.Stroke{
		Path:  path.End(),
		Width: lineWidth,
	}.Op()

	paint.FillShape(s.gtx.Ops, c, stroke)
}

func (s *Surface) Text(f timeline.Font, str string, x, baseline float64, c color.NRGBA) {
	m := s.Metrics(f)
	at := s.point(x, baseline-m.Ascent)
	stack := op.Affine(f32.Affine2D{}.Offset(at)).Push(s.gtx.Ops)

	material := op.Record(s.gtx.Ops)
	paint.ColorOp{Color: c}.Add(s.gtx.Ops)
	call := material.Stop()

	s.label(f, str, call)
	stack.Pop()
}

func (s *Surface) TextWidth(f timeline.Font, str string) float64 {
	if str == "" {
		return 0
	}
	return float64(s.measure(f, str).Size.X)
}

// Metrics measures a probe string once per font.
func (s *Surface) Metrics(f timeline.Font) timeline.FontMetrics {
	if m, ok := s.metrics[f]; ok {
		return m
	}
	dims := s.measure(f, metricProbe)
	m := timeline.FontMetrics{
		Ascent:  float64(dims.Size.Y - dims.Baseline),
		Descent: float64(dims.Baseline),
	}
	s.metrics[f] = m
	return m
}

func (s *Surface) measure(f timeline.Font, str string) layout.Dimensions {
	macro := op.Record(s.gtx.Ops)
	dims := s.label(f, str, op.CallOp{})
	_ = macro.Stop()
	return dims
}

func (s *Surface) label(f timeline.Font, str string, material op.CallOp) layout.Dimensions {
	gtx := s.gtx
	gtx.Constraints = layout.Constraints{Max: image.Pt(unboundedPx, unboundedPx)}
	l := widget.Label{Alignment: text.Start, MaxLines: 1}
	return l.Layout(gtx, s.shaper, gioFont(f), unit.Sp(f.Size), str, material)
}

func gioFont(f timeline.Font) font.Font {
	if f.Bold {
		return font.Font{Weight: font.Bold}
	}
	return font.Font{}
}

// point converts to op coordinates.
func (s *Surface) point(x, y float64) f32.Point {
	return f32.Pt(float32(x-s.originX), float32(y-s.originY))
}

// rect converts to op coordinates grown to whole pixels.
func (s *Surface) rect(r timeline.Rect) image.Rectangle {
	r.X -= s.originX
	r.Y -= s.originY
	return pixelRect(r)
}

// pixelRect grows r to whole pixels.
func pixelRect(r timeline.Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.Right())), int(math.Ceil(r.Bottom())),
	)
}
