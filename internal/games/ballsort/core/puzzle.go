package core

import (
	platformcore "github.com/vovakirdan/ballsort/internal/core"
)

// Outcome describes what a Select call did.
type Outcome int

const (
	OutcomeIgnored    Outcome = iota // Nothing happened
	OutcomeSelected                  // A source tube was selected
	OutcomeDeselected                // The selected tube was clicked again
	OutcomeMoved                     // A transfer started
	OutcomeRejected                  // The destination could not take the ball
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeSelected:
		return "selected"
	case OutcomeDeselected:
		return "deselected"
	case OutcomeMoved:
		return "moved"
	case OutcomeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

const noSelection = -1

// Puzzle holds the tubes, the selection cursor, the move counter and the
// win latch. It owns the tubes; callers get read access through Tube.
type Puzzle struct {
	tubes    []*Tube
	selected int
	moves    int
	won      bool
	transfer *Transfer
	fx       Feedback
}

// NewPuzzle creates a puzzle over tubes. Transfers advance step percent
// per tick (see NewTransfer). A nil fx discards feedback.
func NewPuzzle(tubes []*Tube, step int, fx Feedback) *Puzzle {
	if fx == nil {
		fx = silent{}
	}
	return &Puzzle{
		tubes:    tubes,
		selected: noSelection,
		transfer: NewTransfer(step),
		fx:       fx,
	}
}

// Select handles a click on the tube at index.
//
// With nothing selected, a non-empty tube becomes the source. Clicking the
// source again deselects it. Clicking another tube tries to move the
// source's top ball there. Clicks are ignored while a ball is in flight
// and for indexes that do not name a tube.
func (p *Puzzle) Select(index int) Outcome {
	if p.transfer.Active() {
		return OutcomeIgnored
	}
	if index < 0 || index >= len(p.tubes) {
		return OutcomeIgnored
	}

	if p.selected == noSelection {
		if p.tubes[index].IsEmpty() {
			return OutcomeIgnored
		}
		p.selected = index
		p.fx.Play(platformcore.SoundSelect)
		return OutcomeSelected
	}

	if p.selected == index {
		p.selected = noSelection
		return OutcomeDeselected
	}

	from, to := p.tubes[p.selected], p.tubes[index]
	p.selected = noSelection

	c, ok := from.Top()
	if !ok || !to.CanReceive(c) {
		p.fx.Play(platformcore.SoundError)
		return OutcomeRejected
	}

	if !p.transfer.Start(c, from, to) {
		return OutcomeIgnored
	}
	p.moves++
	p.fx.Play(platformcore.SoundMove)
	return OutcomeMoved
}

// Tick advances the transfer by one tick. completed is true on the tick a
// ball lands; won is true only on the tick the puzzle first became solved.
func (p *Puzzle) Tick() (completed, won bool) {
	if !p.transfer.Advance() {
		return false, false
	}
	if p.won || !p.IsComplete() {
		return true, false
	}
	p.won = true
	p.fx.Play(platformcore.SoundWin)
	return true, true
}

// IsComplete returns true if every non-empty tube is full of one color.
func (p *Puzzle) IsComplete() bool {
	for _, t := range p.tubes {
		if !t.IsEmpty() && !t.IsUniformFull() {
			return false
		}
	}
	return true
}

// Won returns true once the win cue has fired. It stays true until the
// puzzle is replaced.
func (p *Puzzle) Won() bool {
	return p.won
}

// Moves returns the number of transfers started.
func (p *Puzzle) Moves() int {
	return p.moves
}

// Selected returns the selected tube index, if any.
func (p *Puzzle) Selected() (int, bool) {
	if p.selected == noSelection {
		return 0, false
	}
	return p.selected, true
}

// NumTubes returns the number of tubes.
func (p *Puzzle) NumTubes() int {
	return len(p.tubes)
}

// Tube returns the tube at index i. The caller must not mutate it.
func (p *Puzzle) Tube(i int) *Tube {
	return p.tubes[i]
}

// TubeAt returns the index of the tube containing (x, y).
func (p *Puzzle) TubeAt(x, y float64) (int, bool) {
	for i, t := range p.tubes {
		if t.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// Relayout moves the tubes to the origins of l. A ball in flight keeps its
// progress and continues between the moved tubes.
func (p *Puzzle) Relayout(l Layout) {
	for i, t := range p.tubes {
		o := l.Origin(i)
		t.X, t.Y = o.X, o.Y
		t.geom = l.Geometry
	}
	p.transfer.rebase()
}

// Transfer returns the transfer animation.
func (p *Puzzle) Transfer() *Transfer {
	return p.transfer
}

// TotalItems returns the number of balls across all tubes.
func (p *Puzzle) TotalItems() int {
	n := 0
	for _, t := range p.tubes {
		n += t.Len()
	}
	return n
}
