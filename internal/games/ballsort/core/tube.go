package core

import (
	"strings"

	"github.com/zyedidia/generic/mapset"

	platformcore "github.com/vovakirdan/ballsort/internal/core"
)

// Tube is a bounded stack of balls. The last element of items is the top.
type Tube struct {
	X, Y  float64 // Top-left corner of the tube
	geom  Geometry
	items []Color
}

// NewTube creates a tube at (x, y) holding a copy of items, bottom first.
// Items beyond Capacity are dropped.
func NewTube(x, y float64, geom Geometry, items ...Color) *Tube {
	if len(items) > Capacity {
		items = items[:Capacity]
	}
	t := &Tube{
		X:     x,
		Y:     y,
		geom:  geom,
		items: make([]Color, len(items), Capacity),
	}
	copy(t.items, items)
	return t
}

// Len returns the number of balls in the tube.
func (t *Tube) Len() int {
	return len(t.items)
}

// IsEmpty returns true if the tube holds no balls.
func (t *Tube) IsEmpty() bool {
	return len(t.items) == 0
}

// IsFull returns true if the tube is at capacity.
func (t *Tube) IsFull() bool {
	return len(t.items) == Capacity
}

// Items returns a copy of the balls, bottom first.
func (t *Tube) Items() []Color {
	out := make([]Color, len(t.items))
	copy(out, t.items)
	return out
}

// Top returns the most recently pushed ball.
func (t *Tube) Top() (Color, bool) {
	if t.IsEmpty() {
		return 0, false
	}
	return t.items[len(t.items)-1], true
}

// CanReceive reports whether c may be placed on this tube: the tube is not
// full and is either empty or topped by the same color.
// The source side of a transfer is not checked here.
func (t *Tube) CanReceive(c Color) bool {
	if t.IsFull() {
		return false
	}
	top, ok := t.Top()
	return !ok || top == c
}

// IsUniformFull returns true if the tube is full of a single color.
func (t *Tube) IsUniformFull() bool {
	if !t.IsFull() {
		return false
	}
	colors := mapset.New[Color]()
	for _, c := range t.items {
		colors.Put(c)
	}
	return colors.Size() == 1
}

// ItemPosition returns the center of the ball at stack slot index, counting
// from the bottom. It depends only on the tube's position and geometry, so
// animation endpoints stay stable across mutations.
func (t *Tube) ItemPosition(index int) platformcore.Point {
	g := t.geom
	return platformcore.Point{
		X: t.X + g.TubeWidth/2,
		Y: t.Y + g.TubeHeight - float64(index+1)*g.Pitch() + g.ItemRadius,
	}
}

// Contains reports whether (x, y) falls inside the tube's rectangle.
func (t *Tube) Contains(x, y float64) bool {
	return x >= t.X && x < t.X+t.geom.TubeWidth &&
		y >= t.Y && y < t.Y+t.geom.TubeHeight
}

// Geometry returns the tube's geometry.
func (t *Tube) Geometry() Geometry {
	return t.geom
}

// String returns the tube contents bottom to top, e.g. "[AAB]".
func (t *Tube) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for _, c := range t.items {
		sb.WriteString(c.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// pop removes the top ball. Only a completing Transfer calls it.
func (t *Tube) pop() (Color, bool) {
	c, ok := t.Top()
	if !ok {
		return 0, false
	}
	t.items = t.items[:len(t.items)-1]
	return c, true
}

// push places c on top. Only a completing Transfer calls it.
func (t *Tube) push(c Color) bool {
	if t.IsFull() {
		return false
	}
	t.items = append(t.items, c)
	return true
}
