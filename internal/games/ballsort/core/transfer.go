package core

import (
	platformcore "github.com/vovakirdan/ballsort/internal/core"
)

// Transfer timing. Progress is counted in percent so the duration is an
// exact number of ticks: 100 / DefaultStep = 20 ticks, ~0.33s at 60fps.
const (
	progressDone = 100
	DefaultStep  = 5
)

// Transfer animates one ball moving between two tubes. It is either idle or
// active; at most one ball is in flight at a time.
//
// Tube contents do not change while the ball is in flight. The source keeps
// the ball (renderers skip it, see Hides) and the destination does not have
// it yet. Both tubes are updated together when the animation completes.
type Transfer struct {
	step     int
	active   bool
	color    Color
	from, to *Tube
	start    platformcore.Point
	end      platformcore.Point
	progress int
}

// NewTransfer creates an idle transfer that advances step percent per tick.
// A non-positive step uses DefaultStep.
func NewTransfer(step int) *Transfer {
	if step <= 0 {
		step = DefaultStep
	}
	return &Transfer{step: step}
}

// Start begins moving the top ball c from one tube to another.
// The caller guarantees the move is legal. Returns false, changing nothing,
// if a transfer is already in flight.
func (t *Transfer) Start(c Color, from, to *Tube) bool {
	if t.active {
		return false
	}
	t.active = true
	t.color = c
	t.from = from
	t.to = to
	t.start = from.ItemPosition(from.Len() - 1)
	t.end = to.ItemPosition(to.Len())
	t.progress = 0
	return true
}

// rebase recaptures the endpoints after the tubes moved. It is the only
// path that re-queries them mid-flight; Relayout calls it on resize.
func (t *Transfer) rebase() {
	if !t.active {
		return
	}
	t.start = t.from.ItemPosition(t.from.Len() - 1)
	t.end = t.to.ItemPosition(t.to.Len())
}

// Advance moves the animation forward one tick. It returns true exactly
// once, on the tick the ball lands and the tubes are updated.
func (t *Transfer) Advance() bool {
	if !t.active {
		return false
	}

	t.progress += t.step
	if t.progress < progressDone {
		return false
	}

	t.progress = progressDone
	t.active = false
	t.commit()
	return true
}

// commit moves the ball between the tubes. Balls are conserved: the total
// across all tubes never changes. A source that no longer has the ball on
// top means the move was already applied, so neither side is touched.
func (t *Transfer) commit() {
	top, ok := t.from.Top()
	if !ok || top != t.color || !t.to.CanReceive(t.color) {
		return
	}
	t.from.pop()
	t.to.push(t.color)
}

// Active returns true while a ball is in flight.
func (t *Transfer) Active() bool {
	return t.active
}

// Color returns the color of the ball in flight (or last flown).
func (t *Transfer) Color() Color {
	return t.color
}

// Progress returns the normalized progress in [0, 1].
func (t *Transfer) Progress() float64 {
	return float64(t.progress) / progressDone
}

// Position returns the eased position of the ball in flight.
func (t *Transfer) Position() platformcore.Point {
	return platformcore.Lerp(t.start, t.end, smoothstep(t.Progress()))
}

// Endpoints returns the start and end positions captured by Start.
func (t *Transfer) Endpoints() (start, end platformcore.Point) {
	return t.start, t.end
}

// Hides reports whether the top ball of tube is currently drawn by the
// transfer and must be skipped when drawing the tube.
func (t *Transfer) Hides(tube *Tube) bool {
	return t.active && t.from == tube
}
