// Package timeline paints the time ruler of a capture view: adaptive tick
// marks with time labels anchored to the trigger, and one flag per visible
// cursor, with colliding flags rearranged through a fixed list of styles.
//
// The package draws through the Surface interface and reads everything it
// needs from a ViewModel, so it carries no toolkit dependency. Paint is
// synchronous and keeps no state between calls.
package timeline

import (
	"math"

	"github.com/charmbracelet/log"
)

// Tick lengths in pixels, measured up from the ruler baseline.
const (
	majorTickLength = 12.0
	minorTickLength = 8.0
	plainTickLength = 4.0
	tickLabelGap    = 2.0
)

// Renderer paints a ruler for one view model.
type Renderer struct {
	vm     ViewModel
	logger *log.Logger
}

// NewRenderer returns a renderer reading from vm. logger may be nil.
func NewRenderer(vm ViewModel, logger *log.Logger) *Renderer {
	return &Renderer{vm: vm, logger: logger}
}

func (r *Renderer) debug(msg string, keyvals ...interface{}) {
	if r.logger != nil {
		r.logger.Debug(msg, keyvals...)
	}
}

// Paint draws the ruler occupying bounds, restricted to clip. The clipped
// surface it draws on is disposed before Paint returns, including when a
// drawing call panics.
func (r *Renderer) Paint(s Surface, bounds, clip Rect) {
	clip = clip.Intersect(bounds)
	if clip.Empty() {
		r.debug("ruler paint skipped", "reason", "empty clip")
		return
	}
	g := s.Clip(clip)
	defer g.Dispose()

	g.FillRect(clip, r.vm.BackgroundColor())

	ts := r.vm.UnitOfTime() * r.vm.PixelsPerSecond()
	if !(ts > 0) || math.IsInf(ts, 0) {
		r.debug("ruler paint skipped", "reason", "no pixels per unit", "zoom", r.vm.ZoomFactor())
		return
	}

	base := bounds.Bottom() - 1
	g.Line(clip.X, base, clip.Right(), base, r.vm.TickColor())
	r.paintTicks(g, clip, base)
	r.paintCursorFlags(g, clip, base)
}

func tickLength(t TickTier) float64 {
	switch t {
	case TierMajor:
		return majorTickLength
	case TierMinor:
		return minorTickLength
	default:
		return plainTickLength
	}
}

func (r *Renderer) paintTicks(g Surface, clip Rect, base float64) {
	vm := r.vm
	visibleX := vm.VisibleRect().X
	tickColor, triggerColor, textColor := vm.TickColor(), vm.TriggerColor(), vm.TextColor()

	for _, t := range ComputeTicks(vm, clip) {
		c := tickColor
		if t.Trigger {
			c = triggerColor
		}
		length := tickLength(t.Tier)
		g.Line(t.X, base-length, t.X, base, c)
		if t.Label == "" {
			continue
		}

		f := vm.MajorTickFont()
		if t.Tier == TierMinor {
			f = vm.MinorTickFont()
		}
		w := g.TextWidth(f, t.Label)
		x := max(t.X-w/2, visibleX)
		g.Text(f, t.Label, x, base-length-tickLabelGap-g.Metrics(f).Descent, textColor)
	}
}

// CursorLabels builds the flags of the defined cursors whose line falls
// inside clip, in their default style and in cursor order. Mirrored flags
// are kept right of the visible left edge.
func CursorLabels(vm ViewModel, clip Rect, m TextMeasurer) []CursorLabel {
	var labels []CursorLabel
	f := vm.CursorFlagFont()
	left := vm.VisibleRect().X
	for i := 0; i < MaxCursors; i++ {
		if !vm.IsCursorDefined(i) {
			continue
		}
		x := vm.CursorX(i)
		if x < clip.X || x > clip.Right() {
			continue
		}
		idx := i
		labels = append(labels, NewCursorLabel(i, x, left, func(s LabelStyle) string {
			return vm.CursorFlagText(idx, s)
		}, f, m))
	}
	return labels
}

func (r *Renderer) paintCursorFlags(g Surface, clip Rect, base float64) {
	labels := CursorLabels(r.vm, clip, g)
	if len(labels) == 0 {
		return
	}
	PlaceLabels(labels)

	f := r.vm.CursorFlagFont()
	textColor := r.vm.BackgroundColor()
	for i := range labels {
		l := &labels[i]
		c := r.vm.CursorColor(l.Index)
		b := l.Bounds
		g.Line(l.X, b.Bottom(), l.X, base, c)
		g.FillRect(b, c)

		m := l.Metrics()
		baseline := b.Y + (b.H-m.Height())/2 + m.Leading/2 + m.Ascent
		g.Text(f, l.Text, b.X+flagPaddingX, baseline, textColor)
	}
}
