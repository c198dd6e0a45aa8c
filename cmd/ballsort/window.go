package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ballsort/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open an 800x600 window and play with the mouse.

Controls:
  Mouse      - Click a tube to select it, click another to move the ball
  1-6        - Pick a tube by number
  R          - Deal a new level
  M          - Music on/off
  S          - Sound effects on/off
  Q/Esc      - Quit`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	sess, err := newSession(os.Stderr)
	if err != nil {
		return err
	}
	defer sess.close()

	win := sess.tuning.Window
	return window.Run(sess.game, sess.store, sess.runtime(win.Width, win.Height), win, window.Options{
		Logger: sess.logger,
	})
}
