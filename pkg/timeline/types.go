package timeline

import "image/color"

// MaxCursors is the number of cursor slots a view model exposes.
const MaxCursors = 32

// Rect is an axis-aligned rectangle in component pixel coordinates.
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return !(r.W > 0) || !(r.H > 0) }

// Intersects reports whether r and o share a region of positive area.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Intersect returns the overlap of r and o, or the zero Rect if they are disjoint.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Font selects a face for text drawn on a Surface. Size is in scaled pixels.
type Font struct {
	Size float64
	Bold bool
}

// FontMetrics describes the vertical extent of a font.
type FontMetrics struct {
	Ascent  float64
	Descent float64
	Leading float64
}

// Height is the line height of the font.
func (m FontMetrics) Height() float64 { return m.Ascent + m.Descent + m.Leading }

// ViewModel is the read-only state the ruler is painted from. The hosting
// shell owns it; the renderer never mutates it.
type ViewModel interface {
	// Geometry. TriggerOffset, VisibleRect and CursorX are in component
	// coordinates, the same space the paint bounds and clip are given in.
	ZoomFactor() float64
	PixelsPerSecond() float64
	SecondsPerPixel() float64
	UnitOfTime() float64
	TriggerOffset() float64
	VisibleRect() Rect
	Height() float64

	HasTimingData() bool
	ShowMinorLabels() bool

	BackgroundColor() color.NRGBA
	TickColor() color.NRGBA
	TriggerColor() color.NRGBA
	TextColor() color.NRGBA
	CursorColor(index int) color.NRGBA

	MajorTickFont() Font
	MinorTickFont() Font
	CursorFlagFont() Font

	IsCursorDefined(index int) bool
	CursorX(index int) float64
	CursorFlagText(index int, style LabelStyle) string
}

// TextMeasurer reports text extents for a font.
type TextMeasurer interface {
	TextWidth(f Font, s string) float64
	Metrics(f Font) FontMetrics
}

// Surface receives the drawing primitives of a paint pass.
//
// Clip returns a surface restricted to r; the caller must Dispose it once
// drawing is done. Text draws s with its baseline at (x, baseline).
type Surface interface {
	TextMeasurer

	Clip(r Rect) Surface
	Dispose()

	FillRect(r Rect, c color.NRGBA)
	Line(x1, y1, x2, y2 float64, c color.NRGBA)
	Text(f Font, s string, x, baseline float64, c color.NRGBA)
}
