package core

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffledBalls(t *testing.T) {
	balls := ShuffledBalls(rand.New(rand.NewSource(1)))
	require.Len(t, balls, TotalBalls)

	counts := make(map[Color]int)
	for _, c := range balls {
		counts[c]++
	}
	for _, c := range AllColors() {
		assert.Equal(t, Capacity, counts[c], "color %s", c)
	}
}

func TestNewLevel(t *testing.T) {
	p := NewLevel(rand.New(rand.NewSource(42)), pixelLayout, DefaultStep, nil)

	require.Equal(t, NumTubes, p.NumTubes())
	for i := range NumTubes {
		tube := p.Tube(i)
		if i < NumFilled {
			assert.True(t, tube.IsFull(), "tube %d", i)
		} else {
			assert.True(t, tube.IsEmpty(), "tube %d", i)
		}
		assert.Equal(t, pixelLayout.Origin(i).X, tube.X)
		assert.Equal(t, pixelLayout.Top, tube.Y)
	}

	assert.Equal(t, TotalBalls, p.TotalItems())
	assert.Equal(t, 0, p.Moves())
	assert.False(t, p.Won())
	_, ok := p.Selected()
	assert.False(t, ok)
}

func TestNewLevelDeterministic(t *testing.T) {
	a := NewLevel(rand.New(rand.NewSource(99)), pixelLayout, DefaultStep, nil)
	b := NewLevel(rand.New(rand.NewSource(99)), pixelLayout, DefaultStep, nil)

	for i := range NumTubes {
		assert.Equal(t, a.Tube(i).String(), b.Tube(i).String(), "tube %d", i)
	}
}

func TestLayoutMatchesWindow(t *testing.T) {
	// Tubes at x = 100 + 120*i
	assert.Equal(t, 100.0, pixelLayout.Origin(0).X)
	assert.Equal(t, 700.0, pixelLayout.Origin(5).X)
	assert.Equal(t, 680.0, pixelLayout.Width(NumTubes))
	assert.Equal(t, 0.0, pixelLayout.Width(0))
}
