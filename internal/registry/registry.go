// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/ballsort/internal/core"
)

// Game is the interface every puzzle must implement.
// Games contain pure logic with no frontend dependencies (no Bubble Tea, no Ebiten).
// The platform handles input mapping, timing, and pixel or cell output.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "ballsort").
	// Used for CLI commands and record storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Ball Sort").
	Title() string

	// Reset discards the current puzzle and deals a fresh one.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions, clicks and picks.
	Step(in core.InputFrame) core.StepResult

	// Draw paints the current state through the frontend's primitives.
	Draw(c core.Canvas)

	// Render draws the current state into the provided cell buffer.
	// The screen is cleared by Render itself.
	Render(dst *core.Screen)

	// State returns the current game state (moves, ticks, solved).
	State() core.GameState
}

// Services are the collaborators the platform hands to a new game.
// Nil fields are replaced with silent defaults.
type Services struct {
	Audio core.Audio
	Text  core.Translator
}

func (s Services) withDefaults() Services {
	if s.Audio == nil {
		s.Audio = core.NopAudio{}
	}
	if s.Text == nil {
		s.Text = core.PlainText{}
	}
	return s
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game wired to svc.
type Factory func(svc Services) Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f(Services{}.withDefaults())
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string, svc Services) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(svc.withDefaults()), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
