package core

import (
	"math/rand"

	platformcore "github.com/vovakirdan/ballsort/internal/core"
)

// Layout places the tubes of a level side by side.
type Layout struct {
	Geometry
	Left float64 // X of the first tube
	Top  float64 // Y of every tube
	Gap  float64 // Distance between the left edges of neighbouring tubes
}

// Origin returns the top-left corner of tube i.
func (l Layout) Origin(i int) platformcore.Point {
	return platformcore.Point{X: l.Left + float64(i)*l.Gap, Y: l.Top}
}

// Width returns the horizontal extent of n tubes.
func (l Layout) Width(n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n-1)*l.Gap + l.TubeWidth
}

// ShuffledBalls returns Capacity balls of every color in uniformly random order.
func ShuffledBalls(rng *rand.Rand) []Color {
	balls := make([]Color, 0, TotalBalls)
	for range Capacity {
		balls = append(balls, AllColors()...)
	}
	rng.Shuffle(len(balls), func(i, j int) {
		balls[i], balls[j] = balls[j], balls[i]
	})
	return balls
}

// NewLevel deals a shuffled level: the first NumFilled tubes get Capacity
// balls each and the rest start empty.
func NewLevel(rng *rand.Rand, layout Layout, step int, fx Feedback) *Puzzle {
	balls := ShuffledBalls(rng)

	tubes := make([]*Tube, NumTubes)
	for i := range tubes {
		var items []Color
		if i < NumFilled {
			items = balls[i*Capacity : (i+1)*Capacity]
		}
		o := layout.Origin(i)
		tubes[i] = NewTube(o.X, o.Y, layout.Geometry, items...)
	}

	return NewPuzzle(tubes, step, fx)
}
