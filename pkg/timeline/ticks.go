package timeline

import "math"

// TickTier classifies a tick by importance.
type TickTier int

const (
	TierPlain TickTier = iota
	TierMinor
	TierMajor
)

func (t TickTier) String() string {
	switch t {
	case TierMajor:
		return "major"
	case TierMinor:
		return "minor"
	default:
		return "plain"
	}
}

// Tick is one computed ruler mark.
type Tick struct {
	X       float64
	Tier    TickTier
	Time    float64 // relative to the trigger, in seconds (samples without timing data)
	Trigger bool
	Label   string
}

// Increments holds the tick periods of a ruler, counted in units of time.
type Increments struct {
	Major int64
	Minor int64
	Tick  int64
}

// minTickSpacing is the closest two emitted ticks may be on screen, in pixels.
const minTickSpacing = 2.0

const (
	majorLabelPrecision = 2
	minorLabelPrecision = 1
)

// TickIncrements derives the tick periods from the visible width:
// Major = max(1, 10^floor(log10(width/2))), Minor = Major/2 and
// Tick = max(1, Major/10).
func TickIncrements(visibleWidth float64) Increments {
	// Integer search instead of math.Log10, which lands just below exact
	// powers of ten (Log10(1000) < 3).
	major := int64(1)
	if half := visibleWidth / 2; half >= 10 && !math.IsInf(half, 0) {
		limit := int64(min(half, 1e18))
		for major <= limit/10 {
			major *= 10
		}
	}
	return Increments{
		Major: major,
		Minor: max(1, major/2),
		Tick:  max(1, major/10),
	}
}

// ComputeTicks returns the ticks of vm that fall inside clip, ordered left
// to right. Ticks are anchored to the trigger offset so panning never makes
// the grid drift. Tiers that would be packed closer than minTickSpacing are
// dropped. If even major ticks are that dense, every 10^n-th major tick is
// kept, with n the smallest power that spaces them out.
func ComputeTicks(vm ViewModel, clip Rect) []Tick {
	if !(clip.W > 0) {
		return nil
	}
	unit := vm.UnitOfTime()
	ts := unit * vm.PixelsPerSecond()
	if !(ts > 0) || math.IsInf(ts, 0) {
		return nil
	}

	inc := TickIncrements(vm.VisibleRect().W)
	step := tickStep(inc, ts)
	if step == 0 {
		return nil
	}

	// Walk from the grid line one span left of the clip edge. The span is a
	// multiple of every tier period, so k stays on the trigger grid.
	trigger := vm.TriggerOffset()
	span := max(step, inc.Major)
	first := math.Floor((clip.X-trigger)/(float64(span)*ts)) - 1
	if !(math.Abs(first) <= float64(math.MaxInt64/span)/2) {
		return nil
	}
	k := int64(first) * span

	scale := float64(inc.Major) * unit
	timing := vm.HasTimingData()
	minorLabels := vm.ShowMinorLabels()
	right := clip.Right()

	var ticks []Tick
	for ; ; k += step {
		x := trigger + float64(k)*ts
		if x > right {
			break
		}
		if x < clip.X {
			continue
		}
		t := Tick{X: x, Time: float64(k) * unit, Trigger: k == 0}
		switch {
		case k%inc.Major == 0:
			t.Tier = TierMajor
			t.Label = FormatLabel(t.Time, scale, majorLabelPrecision, timing)
		case k%inc.Minor == 0:
			t.Tier = TierMinor
			if minorLabels {
				t.Label = FormatLabel(t.Time, scale, minorLabelPrecision, timing)
			}
		default:
			t.Tier = TierPlain
		}
		ticks = append(ticks, t)
	}
	return ticks
}

// tickStep is the period, in units, of the densest tier spaced at least
// minTickSpacing apart at ts pixels per unit. Zero means no power-of-ten
// multiple of the major period fits in an int64.
func tickStep(inc Increments, ts float64) int64 {
	for _, c := range [...]int64{inc.Tick, inc.Minor, inc.Major} {
		if float64(c)*ts >= minTickSpacing {
			return c
		}
	}
	step := inc.Major
	for float64(step)*ts < minTickSpacing {
		if step > math.MaxInt64/10 {
			return 0
		}
		step *= 10
	}
	return step
}
