package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ballsort/internal/audio"
	"github.com/vovakirdan/ballsort/internal/config"
	"github.com/vovakirdan/ballsort/internal/core"
	"github.com/vovakirdan/ballsort/internal/games/ballsort"
	"github.com/vovakirdan/ballsort/internal/i18n"
	"github.com/vovakirdan/ballsort/internal/registry"
	"github.com/vovakirdan/ballsort/internal/storage"
)

// session bundles what one local play needs.
type session struct {
	game   registry.Game
	store  *storage.Store
	player *audio.Player
	logger *log.Logger
	tuning config.BallSortConfig
	logs   io.Closer
}

// newSession opens the records database, the audio device and the locale
// catalog, then creates the game. Logs go to w, or to
// ~/.ballsort/ballsort.log when w is nil.
func newSession(w io.Writer) (*session, error) {
	s := &session{}

	if w == nil {
		f, err := openLogFile()
		if err != nil {
			w = io.Discard
		} else {
			w, s.logs = f, f
		}
	}
	s.logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "ballsort",
	})
	if settings.Debug {
		s.logger.SetLevel(log.DebugLevel)
	}

	tuning, err := config.LoadBallSort(settings.ConfigPath)
	if err != nil {
		s.close()
		return nil, err
	}
	s.tuning = tuning

	store, err := storage.Open(settings.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open records database: %v\n", err)
		s.logger.Warn("records disabled", "error", err)
		store = nil
	}
	s.store = store

	s.player = audio.New(tuning.Audio, audio.Options{
		Sound: settings.Sound,
		Music: settings.Music,
	}, s.logger)

	catalog, err := i18n.Load(settings.Locale)
	if err != nil {
		s.logger.Warn("falling back to English", "error", err)
		catalog = i18n.MustLoad(i18n.DefaultLocale)
	}
	s.logger.Debug("catalog loaded", "locale", catalog.Locale())

	game, err := registry.Create(ballsort.ID, registry.Services{
		Audio: s.player,
		Text:  catalog,
	})
	if err != nil {
		s.close()
		return nil, err
	}
	s.game = game
	return s, nil
}

// runtime returns the runtime config for a screen of w x h.
func (s *session) runtime(w, h int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: settings.FPS,
		Seed:     settings.Seed,
	}
}

func (s *session) close() {
	if s.player != nil {
		s.player.Close()
	}
	if s.store != nil {
		s.store.Close()
	}
	if s.logs != nil {
		s.logs.Close()
	}
}

func openLogFile() (*os.File, error) {
	dir := config.HomeDir()
	if dir == "" {
		return nil, os.ErrNotExist
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "ballsort.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}
