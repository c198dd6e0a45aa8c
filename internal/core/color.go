package core

// Color represents a foreground color for a screen cell or a drawn shape.
// Terminal frontends map it to ANSI codes, graphical ones to RGB.
type Color uint8

// Predefined colors for game elements.
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

	// Darker shades used to outline balls.
	ColorDarkRed
	ColorDarkGreen
	ColorDarkBlue
	ColorDarkYellow
)

// Outline returns the darker shade used to outline a filled shape of color c.
// Colors without a darker shade outline in gray.
func (c Color) Outline() Color {
	switch c {
	case ColorRed, ColorBrightRed:
		return ColorDarkRed
	case ColorGreen, ColorBrightGreen:
		return ColorDarkGreen
	case ColorBlue, ColorBrightBlue:
		return ColorDarkBlue
	case ColorYellow, ColorBrightYellow:
		return ColorDarkYellow
	default:
		return ColorGray
	}
}
