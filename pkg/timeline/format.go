package timeline

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// TimeUnit is one step of the unit ladder used for labels.
type TimeUnit struct {
	Symbol string
	Factor float64 // seconds per unit
}

// TimeUnits is ordered from the largest unit to the smallest.
var TimeUnits = []TimeUnit{
	{Symbol: "s", Factor: 1},
	{Symbol: "ms", Factor: 1e-3},
	{Symbol: "µs", Factor: 1e-6},
	{Symbol: "ns", Factor: 1e-9},
	{Symbol: "ps", Factor: 1e-12},
	{Symbol: "fs", Factor: 1e-15},
}

// naturalUnit returns the index of the largest unit not exceeding |v|.
func naturalUnit(v float64) int {
	a := math.Abs(v)
	for i, u := range TimeUnits {
		if a >= u.Factor*(1-1e-9) {
			return i
		}
	}
	return len(TimeUnits) - 1
}

// FormatTime renders v seconds for a ruler whose major ticks are scale
// seconds apart. The value is shown in its own natural unit unless that unit
// is more than one ladder step away from the scale's unit, in which case the
// unit next to the scale's is used so one ruler reads consistently. A scale
// of zero or less formats v on its own. precision counts fractional digits
// in the chosen unit, not significant digits; trailing zeros are dropped.
// A value shown in its natural unit is at least 1 in that unit, so it keeps
// at least precision+1 significant digits.
func FormatTime(v, scale float64, precision int) string {
	idx := naturalUnit(v)
	if scale > 0 {
		s := naturalUnit(scale)
		switch {
		case v == 0:
			idx = s
		case idx-s > 1:
			idx = s + 1
		case s-idx > 1:
			idx = s - 1
		}
	} else if v == 0 {
		idx = 0
	}
	u := TimeUnits[idx]
	return formatNumeral(v/u.Factor, precision) + u.Symbol
}

// FormatSamples renders a sample count with thousands separators.
func FormatSamples(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}

// FormatLabel formats a ruler value as time when timing data is available
// and as a sample count otherwise.
func FormatLabel(v, scale float64, precision int, timing bool) string {
	if !timing {
		return FormatSamples(v)
	}
	return FormatTime(v, scale, precision)
}

func formatNumeral(v float64, precision int) string {
	p := math.Pow(10, float64(max(precision, 0)))
	r := math.Round(v*p) / p
	if r == 0 {
		r = 0 // no "-0"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
