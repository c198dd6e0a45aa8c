package core

import "math"

// TextAlign controls horizontal placement of text relative to its anchor.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// TextSize selects between the regular and the small font.
type TextSize int

const (
	TextRegular TextSize = iota
	TextSmall
)

// TextStyle describes how a string is drawn.
type TextStyle struct {
	Color Color
	Align TextAlign
	Size  TextSize
}

// Canvas is the set of draw primitives a game needs from a frontend.
// Coordinates are world space: cells for terminals, pixels for windows.
// The frontend owns pixel output and the color table.
type Canvas interface {
	// Size returns the drawable area.
	Size() (w, h float64)

	// FillCircle draws a filled circle centered at c.
	FillCircle(c Point, radius float64, col Color)

	// StrokeCircle draws a circle outline centered at c.
	StrokeCircle(c Point, radius float64, col Color)

	// RoundedRect draws a rectangle with rounded corners. An outline of 0
	// fills the rectangle; a positive outline draws only the border.
	RoundedRect(x, y, w, h, radius float64, col Color, outline float64)

	// Text draws a single line of text anchored at p (top edge).
	Text(s string, p Point, style TextStyle)

	// Dim darkens everything drawn so far, for overlays.
	Dim()
}

// CellCanvas draws Canvas primitives onto a Screen.
// Terminal cells are roughly twice as tall as they are wide, so circles are
// stretched horizontally by Aspect to look round.
type CellCanvas struct {
	Screen *Screen
	Aspect float64
}

// NewCellCanvas wraps a screen with the usual 2:1 cell aspect ratio.
func NewCellCanvas(s *Screen) *CellCanvas {
	return &CellCanvas{Screen: s, Aspect: 2}
}

// Size returns the screen size in cells.
func (c *CellCanvas) Size() (float64, float64) {
	return float64(c.Screen.Width()), float64(c.Screen.Height())
}

// circleSpans calls fn for every row the circle covers with the row's
// center x and half-width in cells.
func (c *CellCanvas) circleSpans(center Point, radius float64, fn func(cx, y, half int)) {
	cx, cy := center.Cell()
	rows := int(math.Ceil(radius)) - 1
	for dy := -rows; dy <= rows; dy++ {
		ratio := float64(dy) / radius
		half := int(math.Round(c.Aspect * radius * math.Sqrt(1-ratio*ratio)))
		fn(cx, cy+dy, half)
	}
}

// FillCircle fills the cells covered by the circle.
func (c *CellCanvas) FillCircle(center Point, radius float64, col Color) {
	c.circleSpans(center, radius, func(cx, y, half int) {
		for x := cx - half; x <= cx+half; x++ {
			c.Screen.SetWithColor(x, y, '█', col)
		}
	})
}

// StrokeCircle marks the left and right edge of every covered row.
func (c *CellCanvas) StrokeCircle(center Point, radius float64, col Color) {
	c.circleSpans(center, radius, func(cx, y, half int) {
		if half == 0 {
			return
		}
		c.Screen.SetWithColor(cx-half, y, '▐', col)
		c.Screen.SetWithColor(cx+half, y, '▌', col)
	})
}

// RoundedRect draws a box. Cells cannot be partially filled, so a filled
// rectangle is drawn as a light outline and a thick outline as a heavy one.
func (c *CellCanvas) RoundedRect(x, y, w, h, _ float64, col Color, outline float64) {
	r := NewRect(
		int(math.Round(x)), int(math.Round(y)),
		int(math.Round(w)), int(math.Round(h)),
	)
	c.Screen.DrawRoundedBox(r, col, outline >= 2)
}

// Text draws the string on the row containing p.
func (c *CellCanvas) Text(s string, p Point, style TextStyle) {
	x, y := p.Cell()
	n := len([]rune(s))
	switch style.Align {
	case AlignCenter:
		x -= n / 2
	case AlignRight:
		x -= n
	}
	c.Screen.DrawTextColored(x, y, s, style.Color)
}

// Dim grays out everything on the screen.
func (c *CellCanvas) Dim() {
	c.Screen.Recolor(ColorGray)
}
