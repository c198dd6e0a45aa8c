// Package window runs Ball Sort in a desktop window with Ebitengine.
package window

import (
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/ballsort/internal/config"
	"github.com/vovakirdan/ballsort/internal/core"
	"github.com/vovakirdan/ballsort/internal/registry"
	"github.com/vovakirdan/ballsort/internal/storage"
)

// Options are the optional collaborators of a window run.
type Options struct {
	Logger    *log.Logger
	SessionID string
}

// actionKeys maps keys to game actions.
var actionKeys = map[ebiten.Key]core.Action{
	ebiten.KeyR: core.ActionRestart,
	ebiten.KeyM: core.ActionToggleMusic,
	ebiten.KeyS: core.ActionToggleSound,
}

// pickKeys maps digit keys to zero-based tube indexes.
var pickKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
}

var quitKeys = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}

// Frontend adapts a registry.Game to ebiten.Game.
type Frontend struct {
	game    registry.Game
	records *storage.Recorder
	logger  *log.Logger
	win     config.WindowConfig
	bg      color.RGBA
	canvas  *vectorCanvas
}

// NewFrontend resets game for a window of win's size and loads the fonts.
func NewFrontend(game registry.Game, store *storage.Store, rt core.RuntimeConfig, win config.WindowConfig, opts Options) (*Frontend, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	fs, err := loadFaces(win.FontSize, win.SmallFont)
	if err != nil {
		return nil, err
	}

	records := storage.NewRecorder(store, game.ID(), opts.SessionID)
	opts.Logger.Info("session started", "session", records.SessionID(), "records", records.Enabled())

	rt.ScreenW, rt.ScreenH = win.Width, win.Height
	rt.Pixels = true
	game.Reset(rt)
	opts.Logger.Info("level dealt", "game", game.ID(), "seed", game.State().Seed)

	return &Frontend{
		game:    game,
		records: records,
		logger:  opts.Logger,
		win:     win,
		bg:      parseBackground(win.Background),
		canvas:  &vectorCanvas{faces: fs},
	}, nil
}

// keyState reports whether a key went down this frame.
type keyState func(ebiten.Key) bool

// collectInput builds one tick of input. click is the cursor position of a
// left press this frame, if any.
func collectInput(justPressed keyState, click *core.Point) (in core.InputFrame, quit bool) {
	in = core.NewInputFrame()
	for _, k := range quitKeys {
		if justPressed(k) {
			return in, true
		}
	}
	if click != nil {
		in.Click(*click)
	}
	for k, a := range actionKeys {
		if justPressed(k) {
			in.Set(a)
		}
	}
	for i, k := range pickKeys {
		if justPressed(k) {
			in.Pick(i)
		}
	}
	return in, false
}

// Update advances the game by one tick.
func (f *Frontend) Update() error {
	var click *core.Point
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		p := core.Pt(float64(x), float64(y))
		click = &p
	}

	in, quit := collectInput(inpututil.IsKeyJustPressed, click)
	if quit {
		return ebiten.Termination
	}

	result := f.game.Step(in)
	if result.JustSolved {
		st := result.State
		f.logger.Info("level solved", "moves", st.Moves, "ticks", st.Ticks, "seed", st.Seed)
		best, err := f.records.Record(st.Moves, st.Ticks, st.Seed)
		switch {
		case err != nil:
			f.logger.Error("could not save solve", "error", err)
		case best:
			f.logger.Info("new best", "moves", st.Moves)
		}
	}
	return nil
}

// Draw paints the background and the game.
func (f *Frontend) Draw(screen *ebiten.Image) {
	screen.Fill(f.bg)
	f.canvas.dst = screen
	f.game.Draw(f.canvas)
}

// Layout keeps the logical screen at the configured size.
func (f *Frontend) Layout(_, _ int) (int, int) {
	return f.win.Width, f.win.Height
}

// Run opens the window and blocks until it is closed.
func Run(game registry.Game, store *storage.Store, rt core.RuntimeConfig, win config.WindowConfig, opts Options) error {
	f, err := NewFrontend(game, store, rt, win, opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(win.Width, win.Height)
	ebiten.SetWindowTitle(game.Title())
	if rt.TickRate > 0 {
		ebiten.SetTPS(rt.TickRate)
	}
	return ebiten.RunGame(f)
}
