// Package ballsort implements the Ball Sort puzzle: six tubes, four colors,
// sort every color into its own tube.
package ballsort

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/ballsort/internal/config"
	"github.com/vovakirdan/ballsort/internal/core"
	bcore "github.com/vovakirdan/ballsort/internal/games/ballsort/core"
	"github.com/vovakirdan/ballsort/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "ballsort"

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game wires the puzzle to the platform: input dispatch, audio cues,
// layout and drawing.
type Game struct {
	audio core.Audio
	text  core.Translator

	cfg     config.BallSortConfig
	runtime core.RuntimeConfig
	layout  layout

	rng    *rand.Rand
	seed   int64
	puzzle *bcore.Puzzle
	ticks  uint64
}

// New creates a game that plays cues through audio and looks up its
// strings with text.
func New(audio core.Audio, text core.Translator) *Game {
	if audio == nil {
		audio = core.NopAudio{}
	}
	if text == nil {
		text = core.PlainText{}
	}
	return &Game{
		audio: audio,
		text:  text,
		cfg:   config.DefaultBallSortConfig(),
	}
}

func init() {
	registry.Register(ID, func(svc registry.Services) registry.Game {
		return New(svc.Audio, svc.Text)
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.text.Get("Ball Sort")
}

// Reset discards the puzzle, any ball in flight and the selection, then
// deals a fresh level from cfg.Seed (0 picks a time-based seed).
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadBallSort(configPath)
	if err != nil {
		cfg = config.DefaultBallSortConfig()
	}
	g.cfg = cfg
	g.layout = computeLayout(cfg, runtime)

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.deal(seed)
}

// Resize recomputes the layout for a new screen size and moves the tubes
// there. The puzzle, the selection and a ball in flight are kept.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	g.layout = computeLayout(g.cfg, g.runtime)
	if g.puzzle != nil {
		g.puzzle.Relayout(g.layout.board)
	}
}

// deal builds a new level from seed. The level RNG is private to the deal
// so a recorded seed replays the exact board.
func (g *Game) deal(seed int64) {
	g.seed = seed
	g.ticks = 0
	g.puzzle = bcore.NewLevel(
		rand.New(rand.NewSource(seed)),
		g.layout.board,
		g.cfg.Animation.Step,
		g.audio,
	)
}

// Step advances the game by one tick: key actions, then clicks, then tube
// picks, then the animation.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, a := range []core.Action{core.ActionRestart, core.ActionToggleMusic, core.ActionToggleSound} {
		if in.Has(a) {
			g.HandleKey(a)
		}
	}
	for _, p := range in.Clicks {
		g.HandleClick(p)
	}
	for _, i := range in.Picks {
		g.Pick(i)
	}

	if !g.puzzle.Won() {
		g.ticks++
	}
	_, won := g.puzzle.Tick()

	return core.StepResult{State: g.State(), JustSolved: won}
}

// HandleKey applies a non-pointer action. Quit belongs to the platform and
// is ignored here.
func (g *Game) HandleKey(a core.Action) {
	switch a {
	case core.ActionRestart:
		g.deal(g.rng.Int63())
	case core.ActionToggleMusic:
		g.audio.ToggleMusic()
	case core.ActionToggleSound:
		g.audio.ToggleSound()
	}
}

// HandleClick selects the tube under p. Clicks outside every tube, and all
// clicks while a ball is in flight, do nothing.
func (g *Game) HandleClick(p core.Point) bcore.Outcome {
	if g.layout.tooSmall {
		return bcore.OutcomeIgnored
	}
	i, ok := g.puzzle.TubeAt(p.X, p.Y)
	if !ok {
		return bcore.OutcomeIgnored
	}
	return g.puzzle.Select(i)
}

// Pick selects tube i directly (zero-based).
func (g *Game) Pick(i int) bcore.Outcome {
	if g.layout.tooSmall {
		return bcore.OutcomeIgnored
	}
	return g.puzzle.Select(i)
}

// Puzzle exposes the puzzle for inspection.
func (g *Game) Puzzle() *bcore.Puzzle {
	return g.puzzle
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Moves:  g.puzzle.Moves(),
		Ticks:  g.ticks,
		Solved: g.puzzle.Won(),
		Seed:   g.seed,
	}
}
