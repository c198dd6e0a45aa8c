package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ballsort/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Mouse      - Click a tube to select it, click another to move the ball
  1-6        - Pick a tube by number
  R          - Deal a new level
  M          - Music on/off
  S          - Sound effects on/off
  Tab        - Best solves
  Ctrl+S     - Save a screenshot
  Q/Esc      - Quit

Examples:
  ballsort play
  ballsort play --seed 42
  ballsort play --locale ru --music=false`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	sess, err := newSession(nil)
	if err != nil {
		return err
	}
	defer sess.close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	return tui.Run(sess.game, sess.store, sess.runtime(width, height), tui.Options{
		Logger: sess.logger,
	})
}
