package timeline

import (
	"image/color"
	"unicode/utf8"
)

// OpKind identifies a recorded drawing primitive.
type OpKind int

const (
	OpFillRect OpKind = iota
	OpLine
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpFillRect:
		return "rect"
	case OpLine:
		return "line"
	default:
		return "text"
	}
}

// DrawOp is one primitive captured by a Recorder.
type DrawOp struct {
	Kind  OpKind
	Rect  Rect // OpFillRect
	X1    float64
	Y1    float64
	X2    float64
	Y2    float64
	Text  string // OpText, drawn at (X1, Y1 baseline)
	Font  Font
	Color color.NRGBA
}

// Recorder is a Surface that keeps the primitives it is given instead of
// drawing them. Text is measured as a fixed-pitch face: every rune is
// CharWidth × size wide.
type Recorder struct {
	Ops       []DrawOp
	CharWidth float64

	depth    int
	disposed int
}

// NewRecorder returns an empty recorder with a 0.6 em character width.
func NewRecorder() *Recorder {
	return &Recorder{CharWidth: 0.6}
}

// Clip records nothing; clipping is left to whoever replays the ops.
func (r *Recorder) Clip(Rect) Surface {
	r.depth++
	return r
}

// Dispose releases one Clip.
func (r *Recorder) Dispose() {
	if r.depth > 0 {
		r.depth--
		r.disposed++
	}
}

// Open reports the number of clipped surfaces not yet disposed.
func (r *Recorder) Open() int { return r.depth }

// Disposed reports how many clipped surfaces were released.
func (r *Recorder) Disposed() int { return r.disposed }

func (r *Recorder) TextWidth(f Font, s string) float64 {
	return float64(utf8.RuneCountInString(s)) * r.CharWidth * f.Size
}

func (r *Recorder) Metrics(f Font) FontMetrics {
	return FontMetrics{Ascent: 0.8 * f.Size, Descent: 0.2 * f.Size}
}

func (r *Recorder) FillRect(rect Rect, c color.NRGBA) {
	r.Ops = append(r.Ops, DrawOp{Kind: OpFillRect, Rect: rect, Color: c})
}

func (r *Recorder) Line(x1, y1, x2, y2 float64, c color.NRGBA) {
	r.Ops = append(r.Ops, DrawOp{Kind: OpLine, X1: x1, Y1: y1, X2: x2, Y2: y2, Color: c})
}

func (r *Recorder) Text(f Font, s string, x, baseline float64, c color.NRGBA) {
	r.Ops = append(r.Ops, DrawOp{Kind: OpText, Text: s, X1: x, Y1: baseline, Font: f, Color: c})
}

// Filter returns the recorded ops of kind k.
func (r *Recorder) Filter(k OpKind) []DrawOp {
	var out []DrawOp
	for _, op := range r.Ops {
		if op.Kind == k {
			out = append(out, op)
		}
	}
	return out
}

// Reset discards recorded ops.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.depth, r.disposed = 0, 0
}
