package core

import (
	platformcore "github.com/vovakirdan/ballsort/internal/core"
)

// pixelGeometry matches the window layout.
var pixelGeometry = Geometry{
	TubeWidth:    80,
	TubeHeight:   200,
	ItemRadius:   30,
	ItemSpacing:  10,
	CornerRadius: 10,
}

var pixelLayout = Layout{Geometry: pixelGeometry, Left: 100, Top: 250, Gap: 120}

// recorder collects feedback cues.
type recorder struct {
	sounds []platformcore.Sound
}

func (r *recorder) Play(s platformcore.Sound) {
	r.sounds = append(r.sounds, s)
}

func (r *recorder) count(s platformcore.Sound) int {
	n := 0
	for _, got := range r.sounds {
		if got == s {
			n++
		}
	}
	return n
}

func (r *recorder) last() platformcore.Sound {
	if len(r.sounds) == 0 {
		return -1
	}
	return r.sounds[len(r.sounds)-1]
}

// newTestPuzzle builds a puzzle whose tubes hold the given contents.
func newTestPuzzle(fx Feedback, contents ...[]Color) *Puzzle {
	tubes := make([]*Tube, len(contents))
	for i, items := range contents {
		o := pixelLayout.Origin(i)
		tubes[i] = NewTube(o.X, o.Y, pixelGeometry, items...)
	}
	return NewPuzzle(tubes, DefaultStep, fx)
}

// settle ticks until no ball is in flight and returns the number of ticks.
func settle(p *Puzzle) int {
	ticks := 0
	for p.Transfer().Active() {
		p.Tick()
		ticks++
	}
	return ticks
}

// move selects from then to and lets the animation finish.
func move(p *Puzzle, from, to int) Outcome {
	p.Select(from)
	out := p.Select(to)
	settle(p)
	return out
}

func colors(s string) []Color {
	out := make([]Color, 0, len(s))
	for _, r := range s {
		out = append(out, Color(r-'A'))
	}
	return out
}
