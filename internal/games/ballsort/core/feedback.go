package core

import (
	platformcore "github.com/vovakirdan/ballsort/internal/core"
)

// Feedback receives the cues the puzzle emits. Implementations must not
// fail: a missing sound is their problem, not the puzzle's.
type Feedback interface {
	Play(s platformcore.Sound)
}

type silent struct{}

func (silent) Play(platformcore.Sound) {}
