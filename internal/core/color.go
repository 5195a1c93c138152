package core

// Color is a named foreground color. Frontends map it to ANSI codes or RGB.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

var colorNames = map[string]Color{
	"default":        ColorDefault,
	"red":            ColorRed,
	"green":          ColorGreen,
	"yellow":         ColorYellow,
	"blue":           ColorBlue,
	"magenta":        ColorMagenta,
	"cyan":           ColorCyan,
	"white":          ColorWhite,
	"bright_red":     ColorBrightRed,
	"bright_green":   ColorBrightGreen,
	"bright_yellow":  ColorBrightYellow,
	"bright_blue":    ColorBrightBlue,
	"bright_magenta": ColorBrightMagenta,
	"bright_cyan":    ColorBrightCyan,
	"bright_white":   ColorBrightWhite,
	"orange":         ColorOrange,
	"gray":           ColorGray,
	"grey":           ColorGray,
}

// ParseColor maps a config color name to a Color. Unknown names give
// ColorDefault.
func ParseColor(name string) Color {
	return colorNames[name]
}

// KnownColor reports whether name is a color ParseColor understands.
func KnownColor(name string) bool {
	_, ok := colorNames[name]
	return ok
}
