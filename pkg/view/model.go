// Package view holds the mutable state of a capture view: sample rate,
// zoom, scroll position, trigger and cursors. Model implements
// timeline.ViewModel so a ruler can be painted straight from it.
package view

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/OpenTraceLab/OpenTraceLA/pkg/timeline"
)

// Zoom is expressed in pixels per sample.
const (
	MinZoom     = 1e-6
	MaxZoom     = 100.0
	DefaultZoom = 1.0
	zoomStep    = 2.0
)

// Fonts groups the ruler fonts.
type Fonts struct {
	Major timeline.Font
	Minor timeline.Font
	Flag  timeline.Font
}

// DefaultFonts returns the stock ruler fonts.
func DefaultFonts() Fonts {
	return Fonts{
		Major: timeline.Font{Size: 11},
		Minor: timeline.Font{Size: 9},
		Flag:  timeline.Font{Size: 11, Bold: true},
	}
}

// Cursor is a marker placed on a sample position.
type Cursor struct {
	Defined bool
	Sample  float64
	Label   string
}

// Model is the view state of one capture. A zero SampleRate means the
// capture has no timing calibration and the ruler counts samples.
type Model struct {
	SampleRate    float64
	Samples       int64
	TriggerSample float64
	MinorLabels   bool
	Palette       timeline.Palette
	Fonts         Fonts

	zoom    float64
	scrollX float64
	width   float64
	height  float64
	cursors [timeline.MaxCursors]Cursor
}

var _ timeline.ViewModel = (*Model)(nil)

// NewModel creates a view of samples samples taken at sampleRate Hz.
func NewModel(sampleRate float64, samples int64) *Model {
	return &Model{
		SampleRate: sampleRate,
		Samples:    samples,
		Palette:    timeline.PaletteFor(timeline.ThemeDark),
		Fonts:      DefaultFonts(),
		zoom:       DefaultZoom,
		height:     40,
	}
}

// SetSize updates the on-screen size of the view.
func (m *Model) SetSize(width, height float64) {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.clampScroll()
}

// ContentWidth is the width of the whole capture at the current zoom.
func (m *Model) ContentWidth() float64 { return float64(m.Samples) * m.zoom }

// Bounds is the rectangle the ruler component occupies.
func (m *Model) Bounds() timeline.Rect {
	return timeline.Rect{W: max(m.ContentWidth(), m.width), H: m.height}
}

// ScrollX is the component X shown at the left edge of the view.
func (m *Model) ScrollX() float64 { return m.scrollX }

// ScrollTo scrolls so that component X x is at the left edge.
func (m *Model) ScrollTo(x float64) {
	m.scrollX = x
	m.clampScroll()
}

// Pan scrolls by dx pixels.
func (m *Model) Pan(dx float64) { m.ScrollTo(m.scrollX + dx) }

func (m *Model) clampScroll() {
	maxScroll := max(m.ContentWidth()-m.width, 0)
	if math.IsNaN(m.scrollX) || m.scrollX < 0 {
		m.scrollX = 0
	}
	if m.scrollX > maxScroll {
		m.scrollX = maxScroll
	}
}

// SampleAt converts a view X (0 at the left edge) to a sample position.
func (m *Model) SampleAt(viewX float64) float64 { return (m.scrollX + viewX) / m.zoom }

// XOf converts a sample position to a component X.
func (m *Model) XOf(sample float64) float64 { return sample * m.zoom }

// Zoom returns the current zoom in pixels per sample.
func (m *Model) Zoom() float64 { return m.zoom }

// SetZoom sets the zoom, keeping the sample at the view centre in place.
func (m *Model) SetZoom(z float64) {
	if !(z > 0) || math.IsInf(z, 0) {
		return
	}
	m.zoomAround(m.width/2, z)
}

// ZoomAt multiplies the zoom by factor while keeping the sample under view
// X viewX stationary.
func (m *Model) ZoomAt(viewX, factor float64) {
	if !(factor > 0) || math.IsInf(factor, 0) {
		return
	}
	m.zoomAround(viewX, m.zoom*factor)
}

func (m *Model) zoomAround(viewX, z float64) {
	anchor := m.SampleAt(viewX)
	m.zoom = min(max(z, MinZoom), MaxZoom)
	m.scrollX = anchor*m.zoom - viewX
	m.clampScroll()
}

// ZoomIn doubles the zoom around the view centre.
func (m *Model) ZoomIn() { m.ZoomAt(m.width/2, zoomStep) }

// ZoomOut halves the zoom around the view centre.
func (m *Model) ZoomOut() { m.ZoomAt(m.width/2, 1/zoomStep) }

// ZoomDefault restores one pixel per sample.
func (m *Model) ZoomDefault() { m.SetZoom(DefaultZoom) }

// ZoomToFit scales the capture to the view width.
func (m *Model) ZoomToFit() {
	if m.Samples <= 0 || m.width <= 0 {
		return
	}
	m.zoom = min(max(m.width/float64(m.Samples), MinZoom), MaxZoom)
	m.scrollX = 0
	m.clampScroll()
}

// GotoTrigger centres the view on the trigger.
func (m *Model) GotoTrigger() { m.ScrollTo(m.XOf(m.TriggerSample) - m.width/2) }

// Cursor returns cursor index. It panics if index is out of range.
func (m *Model) Cursor(index int) Cursor { return m.cursors[index] }

// SetCursor places cursor index on sample.
func (m *Model) SetCursor(index int, sample float64, label string) error {
	if index < 0 || index >= timeline.MaxCursors {
		return fmt.Errorf("cursor index %d out of range [0, %d)", index, timeline.MaxCursors)
	}
	m.cursors[index] = Cursor{Defined: true, Sample: sample, Label: label}
	return nil
}

// ClearCursor removes cursor index.
func (m *Model) ClearCursor(index int) {
	if index >= 0 && index < timeline.MaxCursors {
		m.cursors[index] = Cursor{}
	}
}

// ClearCursors removes every cursor.
func (m *Model) ClearCursors() { m.cursors = [timeline.MaxCursors]Cursor{} }

// PlaceCursorAt puts the first free cursor at view X viewX and returns its
// index, or -1 when all cursors are in use.
func (m *Model) PlaceCursorAt(viewX float64) int {
	for i := range m.cursors {
		if !m.cursors[i].Defined {
			m.cursors[i] = Cursor{Defined: true, Sample: m.SampleAt(viewX)}
			return i
		}
	}
	return -1
}

// CursorTime returns the time of cursor index relative to the trigger, in
// seconds, or in samples without timing data.
func (m *Model) CursorTime(index int) float64 {
	d := m.cursors[index].Sample - m.TriggerSample
	if m.HasTimingData() {
		return d / m.SampleRate
	}
	return d
}

func (m *Model) ZoomFactor() float64 { return m.zoom }

func (m *Model) HasTimingData() bool { return m.SampleRate > 0 }

// PixelsPerSecond is pixels per sample when there is no timing data.
func (m *Model) PixelsPerSecond() float64 {
	if m.HasTimingData() {
		return m.zoom * m.SampleRate
	}
	return m.zoom
}

func (m *Model) SecondsPerPixel() float64 { return 1 / m.PixelsPerSecond() }

// UnitOfTime is the power of ten nearest to the span of one pixel. Without
// timing data it is never below one sample.
func (m *Model) UnitOfTime() float64 {
	spp := m.SecondsPerPixel()
	if !(spp > 0) || math.IsInf(spp, 0) {
		return 0
	}
	u := math.Pow(10, math.Round(math.Log10(spp)))
	if !m.HasTimingData() {
		u = max(u, 1)
	}
	return u
}

func (m *Model) TriggerOffset() float64 { return m.XOf(m.TriggerSample) }

func (m *Model) VisibleRect() timeline.Rect {
	return timeline.Rect{X: m.scrollX, W: m.width, H: m.height}
}

func (m *Model) Height() float64 { return m.height }

func (m *Model) ShowMinorLabels() bool { return m.MinorLabels }

func (m *Model) BackgroundColor() color.NRGBA { return m.Palette.Background }

func (m *Model) TickColor() color.NRGBA { return m.Palette.Tick }

func (m *Model) TriggerColor() color.NRGBA { return m.Palette.Trigger }

func (m *Model) TextColor() color.NRGBA { return m.Palette.Text }

func (m *Model) CursorColor(index int) color.NRGBA { return m.Palette.CursorColor(index) }

func (m *Model) MajorTickFont() timeline.Font { return m.Fonts.Major }

func (m *Model) MinorTickFont() timeline.Font { return m.Fonts.Minor }

func (m *Model) CursorFlagFont() timeline.Font { return m.Fonts.Flag }

func (m *Model) IsCursorDefined(index int) bool {
	return index >= 0 && index < timeline.MaxCursors && m.cursors[index].Defined
}

func (m *Model) CursorX(index int) float64 { return m.XOf(m.cursors[index].Sample) }

// CursorFlagText renders the flag of cursor index in style. Cursors
// without a label show their one-based number instead.
func (m *Model) CursorFlagText(index int, style timeline.LabelStyle) string {
	num := strconv.Itoa(index + 1)
	label := m.cursors[index].Label
	if label == "" {
		label = num
	}
	t := timeline.FormatLabel(m.CursorTime(index), 0, 3, m.HasTimingData())

	switch style.Content {
	case timeline.ContentIndex:
		return num
	case timeline.ContentTime:
		return t
	case timeline.ContentLabel:
		return label
	default:
		return label + ": " + t
	}
}
