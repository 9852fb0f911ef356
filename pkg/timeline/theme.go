package timeline

import "image/color"

// Theme selects a ruler palette.
type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
	ThemeNord
)

// ThemeNames maps theme enum to display name.
var ThemeNames = map[Theme]string{
	ThemeDark:  "Dark",
	ThemeLight: "Light",
	ThemeNord:  "Nord",
}

// ParseTheme looks a theme up by display name, case-sensitively.
func ParseTheme(name string) (Theme, bool) {
	for t, n := range ThemeNames {
		if n == name {
			return t, true
		}
	}
	return ThemeDark, false
}

// Palette holds the ruler colours.
type Palette struct {
	Background color.NRGBA
	Tick       color.NRGBA
	Trigger    color.NRGBA
	Text       color.NRGBA
	Cursors    []color.NRGBA // cycled by cursor index
}

// CursorColor returns the colour of cursor index.
func (p Palette) CursorColor(index int) color.NRGBA {
	if len(p.Cursors) == 0 {
		return p.Text
	}
	if index < 0 {
		index = -index
	}
	return p.Cursors[index%len(p.Cursors)]
}

var defaultCursorColors = []color.NRGBA{
	{R: 255, G: 93, B: 93, A: 255},   // red
	{R: 93, G: 201, B: 255, A: 255},  // sky
	{R: 129, G: 222, B: 106, A: 255}, // green
	{R: 255, G: 196, B: 61, A: 255},  // amber
	{R: 214, G: 128, B: 255, A: 255}, // violet
	{R: 255, G: 140, B: 200, A: 255}, // pink
	{R: 82, G: 224, B: 196, A: 255},  // teal
	{R: 255, G: 160, B: 80, A: 255},  // orange
	{R: 170, G: 180, B: 255, A: 255}, // periwinkle
	{R: 230, G: 230, B: 120, A: 255}, // khaki
}

// PaletteFor returns the palette of theme t, falling back to ThemeDark.
func PaletteFor(t Theme) Palette {
	switch t {
	case ThemeLight:
		return Palette{
			Background: color.NRGBA{R: 245, G: 246, B: 252, A: 255},
			Tick:       color.NRGBA{R: 34, G: 37, B: 49, A: 255},
			Trigger:    color.NRGBA{R: 200, G: 30, B: 30, A: 255},
			Text:       color.NRGBA{R: 34, G: 37, B: 49, A: 255},
			Cursors: []color.NRGBA{
				{R: 200, G: 52, B: 52, A: 255},
				{R: 12, G: 98, B: 179, A: 255},
				{R: 40, G: 140, B: 60, A: 255},
				{R: 180, G: 120, B: 0, A: 255},
				{R: 132, G: 0, B: 132, A: 255},
			},
		}
	case ThemeNord:
		return Palette{
			Background: color.NRGBA{R: 46, G: 52, B: 64, A: 255},    // Nord0
			Tick:       color.NRGBA{R: 216, G: 222, B: 233, A: 255}, // Nord4
			Trigger:    color.NRGBA{R: 191, G: 97, B: 106, A: 255},  // Nord11
			Text:       color.NRGBA{R: 236, G: 239, B: 244, A: 255}, // Nord6
			Cursors: []color.NRGBA{
				{R: 136, G: 192, B: 208, A: 255}, // Nord8
				{R: 163, G: 190, B: 140, A: 255}, // Nord14
				{R: 235, G: 203, B: 139, A: 255}, // Nord13
				{R: 180, G: 142, B: 173, A: 255}, // Nord15
				{R: 208, G: 135, B: 112, A: 255}, // Nord12
			},
		}
	default:
		return Palette{
			Background: color.NRGBA{R: 24, G: 26, B: 33, A: 255},
			Tick:       color.NRGBA{R: 200, G: 204, B: 214, A: 255},
			Trigger:    color.NRGBA{R: 255, G: 64, B: 64, A: 255},
			Text:       color.NRGBA{R: 230, G: 232, B: 240, A: 255},
			Cursors:    defaultCursorColors,
		}
	}
}
