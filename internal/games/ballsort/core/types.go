// Package core provides the puzzle logic for Ball Sort: tubes, the
// animated transfer of a ball between tubes, and the puzzle state machine.
// This package is UI-agnostic and deterministic.
package core

// Puzzle dimensions. Only one configuration exists.
const (
	Capacity  = 4 // Balls per tube
	NumColors = 4 // Distinct ball colors
	NumTubes  = 6 // Tubes on the board
	NumFilled = NumColors
)

// TotalBalls is the number of balls on the board at all times.
const TotalBalls = Capacity * NumColors

// Color is a symbolic ball color. Display colors are a rendering concern.
type Color uint8

const (
	ColorA Color = iota
	ColorB
	ColorC
	ColorD
)

// String returns the symbolic name of the color.
func (c Color) String() string {
	switch c {
	case ColorA:
		return "A"
	case ColorB:
		return "B"
	case ColorC:
		return "C"
	case ColorD:
		return "D"
	default:
		return "?"
	}
}

// AllColors returns a slice of all valid colors.
func AllColors() []Color {
	return []Color{ColorA, ColorB, ColorC, ColorD}
}

// Geometry describes the size of a tube and the balls stacked inside it.
// Units are whatever the frontend draws in (pixels or cells).
type Geometry struct {
	TubeWidth    float64
	TubeHeight   float64
	ItemRadius   float64
	ItemSpacing  float64
	CornerRadius float64
}

// Pitch is the vertical distance between two stacked balls.
func (g Geometry) Pitch() float64 {
	return 2*g.ItemRadius + g.ItemSpacing
}
