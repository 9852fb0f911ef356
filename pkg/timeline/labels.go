package timeline

import "sort"

// ContentKind selects what a cursor flag shows.
type ContentKind int

const (
	ContentLabelTime ContentKind = iota
	ContentTime
	ContentLabel
	ContentIndex
)

// LabelStyle is one way of drawing a cursor flag. Mirrored flags extend to
// the left of the cursor line, others to the right.
type LabelStyle struct {
	Content  ContentKind
	Mirrored bool
}

func (s LabelStyle) String() string {
	var name string
	switch s.Content {
	case ContentLabelTime:
		name = "label+time"
	case ContentTime:
		name = "time"
	case ContentLabel:
		name = "label"
	default:
		name = "index"
	}
	if s.Mirrored {
		name += " (mirrored)"
	}
	return name
}

// LabelStyles is the fallback order tried when flags collide. Index 0 is
// the default style.
var LabelStyles = [...]LabelStyle{
	{Content: ContentLabelTime},
	{Content: ContentLabelTime, Mirrored: true},
	{Content: ContentTime},
	{Content: ContentTime, Mirrored: true},
	{Content: ContentLabel},
	{Content: ContentLabel, Mirrored: true},
	{Content: ContentIndex},
	{Content: ContentIndex, Mirrored: true},
}

// NumLabelStyles is the length of LabelStyles.
const NumLabelStyles = len(LabelStyles)

const (
	flagPaddingX = 3.0
	flagPaddingY = 1.0
	flagTop      = 1.0
)

// LabelBounds returns the box of a flag drawn in style for a cursor at
// cursorX, given the width of its text and the flag font's metrics.
// Mirrored flags never start left of left, the visible edge.
func LabelBounds(style LabelStyle, cursorX, left, textWidth float64, m FontMetrics) Rect {
	w := max(textWidth, 0) + 2*flagPaddingX
	h := max(m.Height(), 0) + 2*flagPaddingY
	x := cursorX
	if style.Mirrored {
		x = max(left, cursorX-w)
	}
	return Rect{X: x, Y: flagTop, W: w, H: h}
}

// CursorLabel is the flag of one cursor during a single paint pass.
type CursorLabel struct {
	Index  int
	X      float64
	Text   string
	Bounds Rect

	left    float64
	style   int
	texts   [NumLabelStyles]string
	widths  [NumLabelStyles]float64
	metrics FontMetrics
}

// NewCursorLabel prepares the flag of cursor index at x in its default
// style. text supplies the flag text for each style and left is the
// visible left edge mirrored flags are clamped to.
func NewCursorLabel(index int, x, left float64, text func(LabelStyle) string, f Font, m TextMeasurer) CursorLabel {
	l := CursorLabel{Index: index, X: x, left: left, metrics: m.Metrics(f)}
	for i, s := range LabelStyles {
		l.texts[i] = text(s)
		l.widths[i] = m.TextWidth(f, l.texts[i])
	}
	l.setStyle(0)
	return l
}

// StyleIndex is the position of the current style in LabelStyles.
func (l *CursorLabel) StyleIndex() int { return l.style }

// Style is the current style.
func (l *CursorLabel) Style() LabelStyle { return LabelStyles[l.style] }

// Metrics returns the flag font metrics the label was measured with.
func (l *CursorLabel) Metrics() FontMetrics { return l.metrics }

func (l *CursorLabel) setStyle(i int) {
	l.style = i
	l.Text = l.texts[i]
	l.Bounds = LabelBounds(LabelStyles[i], l.X, l.left, l.widths[i], l.metrics)
}

// advance moves to the next fallback style. It reports false when the
// styles are exhausted.
func (l *CursorLabel) advance() bool {
	if l.style+1 >= NumLabelStyles {
		return false
	}
	l.setStyle(l.style + 1)
	return true
}

func (l *CursorLabel) reset() { l.setStyle(0) }

// PlaceLabels sorts labels left to right and switches styles of
// neighbouring flags until they no longer overlap, walking from the
// rightmost pair to the leftmost. For each pair the left flag cycles through
// its styles first; once it runs out it is reset and the right flag moves to
// its next style. Overlap that survives every combination is left in place.
// The number of placement steps taken is returned; it never exceeds
// NumLabelStyles² per adjacent pair.
func PlaceLabels(labels []CursorLabel) int {
	sort.SliceStable(labels, func(i, j int) bool {
		a, b := labels[i].Bounds, labels[j].Bounds
		if a.X != b.X {
			return a.X < b.X
		}
		if a.W != b.W {
			return a.W < b.W
		}
		return a.Y < b.Y
	})

	steps := 0
	for i := len(labels) - 1; i > 0; i-- {
		prev, cur := &labels[i-1], &labels[i]
		for prev.Bounds.Intersects(cur.Bounds) {
			steps++
			if prev.advance() {
				continue
			}
			prev.reset()
			if !cur.advance() {
				break
			}
		}
	}
	return steps
}
