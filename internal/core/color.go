package core

import "strings"

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors.
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
	ColorDarkGray
	colorCount // Sentinel value for iteration
)

var colorNames = [colorCount]string{
	ColorDefault:       "default",
	ColorRed:           "red",
	ColorGreen:         "green",
	ColorYellow:        "yellow",
	ColorBlue:          "blue",
	ColorMagenta:       "magenta",
	ColorCyan:          "cyan",
	ColorWhite:         "white",
	ColorBrightRed:     "bright-red",
	ColorBrightGreen:   "bright-green",
	ColorBrightYellow:  "bright-yellow",
	ColorBrightBlue:    "bright-blue",
	ColorBrightMagenta: "bright-magenta",
	ColorBrightCyan:    "bright-cyan",
	ColorBrightWhite:   "bright-white",
	ColorOrange:        "orange",
	ColorGray:          "gray",
	ColorDarkGray:      "dark-gray",
}

// String returns the config name of a color.
func (c Color) String() string {
	if c >= colorCount {
		return "unknown"
	}
	return colorNames[c]
}

// ParseColor converts a config name to a Color.
// Case and '_' vs '-' are ignored; "grey" is accepted for "gray".
// Returns ColorDefault and false if the name is not recognized.
func ParseColor(s string) (Color, bool) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	name = strings.ReplaceAll(name, "grey", "gray")
	for i, n := range colorNames {
		if n == name {
			return Color(i), true
		}
	}
	return ColorDefault, false
}

// AllColors returns every named color.
func AllColors() []Color {
	out := make([]Color, 0, colorCount)
	for c := ColorDefault; c < colorCount; c++ {
		out = append(out, c)
	}
	return out
}
