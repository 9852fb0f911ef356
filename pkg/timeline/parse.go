package timeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// timeLexer tokenises ruler labels and user supplied times such as
// "12.5µs", "-3 ms" or "1,024".
var timeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Number", Pattern: `(\d[\d,]*(\.\d*)?|\.\d+)([eE][-+]?\d+)?`},
	{Name: "Unit", Pattern: `(ms|µs|μs|us|ns|ps|fs|s)`},
	{Name: "Sign", Pattern: `[-+]`},
})

type timeLiteral struct {
	Sign   string `parser:"@Sign?"`
	Number string `parser:"@Number"`
	Unit   string `parser:"@Unit?"`
}

var timeParser = participle.MustBuild[timeLiteral](
	participle.Lexer(timeLexer),
	participle.Elide("Whitespace"),
)

// unitFactors maps every accepted unit spelling to seconds.
var unitFactors = map[string]float64{
	"s":  1,
	"ms": 1e-3,
	"µs": 1e-6,
	"μs": 1e-6,
	"us": 1e-6,
	"ns": 1e-9,
	"ps": 1e-12,
	"fs": 1e-15,
}

// ParseTime parses a time written the way FormatTime and FormatSamples
// write it. A value with a unit is returned in seconds; a bare number is
// returned as is, which makes it a sample count for uncalibrated captures.
func ParseTime(s string) (float64, error) {
	lit, err := timeParser.ParseString("", s)
	if err != nil {
		return 0, fmt.Errorf("parse time %q: %w", s, err)
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(lit.Number, ",", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("parse time %q: %w", s, err)
	}
	if lit.Unit != "" {
		v *= unitFactors[lit.Unit]
	}
	if lit.Sign == "-" {
		v = -v
	}
	return v, nil
}
