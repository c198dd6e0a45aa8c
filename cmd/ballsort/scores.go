package main

import (
	"fmt"
	"os"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ballsort/internal/games/ballsort"
	"github.com/vovakirdan/ballsort/internal/i18n"
	"github.com/vovakirdan/ballsort/internal/platform/tui"
	"github.com/vovakirdan/ballsort/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresClear  bool
	flagScoresTUI     bool
	flagScoresSession string
)

// Styles for the scores listing.
var (
	styleTitle  = color.Style{color.FgYellow, color.OpBold}
	styleHeader = color.Style{color.FgGray, color.OpBold}
	styleBest   = color.Style{color.FgGreen, color.OpBold}
	styleSubtle = color.Style{color.FgGray}
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best solves",
	Long: `Display recorded solves, fewest moves first.

Every row carries the seed of its level; replay it with
  ballsort play --seed <seed>

Examples:
  ballsort scores
  ballsort scores --recent --limit 20
  ballsort scores --tui
  ballsort scores --session <id>   # id from the "session started" log line
  ballsort scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of solves to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the latest solves instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded solve")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse solves in an interactive table")
	scoresCmd.Flags().StringVar(&flagScoresSession, "session", "", "Show the solves of one play session, oldest first")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(settings.DBPath)
	if err != nil {
		return fmt.Errorf("opening records database: %w", err)
	}
	defer store.Close()

	title := i18n.MustLoad(settings.Locale).Get("Ball Sort")

	switch {
	case flagScoresClear:
		if err := store.ClearSolves(ballsort.ID); err != nil {
			return err
		}
		color.Green.Println("All solves cleared.")
		return nil

	case flagScoresTUI:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, ballsort.ID, title, settings.FPS, width, height)
	}

	solves, heading, err := listSolves(store)
	if err != nil {
		return err
	}
	ranked := !flagScoresRecent && flagScoresSession == ""

	styleTitle.Printf("%s - %s\n", heading, title)
	fmt.Println()

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Println("Run 'ballsort play' and sort every color to set the first record!")
		return nil
	}

	styleHeader.Printf("  %-4s  %-6s  %-8s  %-20s  %s\n", "Rank", "Moves", "Time", "Seed", "Date")
	styleSubtle.Printf("  %-4s  %-6s  %-8s  %-20s  %s\n", "----", "-----", "----", "----", "----")

	for i, s := range solves {
		line := fmt.Sprintf("  %-4d  %-6d  %-8s  %-20d  %s",
			i+1, s.Moves, formatTicks(s.Ticks, settings.FPS), s.Seed, s.CreatedAt.Local().Format("2006-01-02 15:04"))
		if i == 0 && ranked {
			styleBest.Println(line)
			continue
		}
		fmt.Println(line)
	}

	stats, err := store.Stats(ballsort.ID)
	if err == nil && stats.Solved > 0 {
		fmt.Println()
		styleSubtle.Printf("Solved %d times, best %d moves, average %.1f moves\n",
			stats.Solved, stats.BestMoves, stats.AvgMoves)
	}
	return nil
}

// listSolves picks the solves and heading the flags ask for.
func listSolves(store *storage.Store) ([]storage.Solve, string, error) {
	switch {
	case flagScoresSession != "":
		solves, err := store.SessionSolves(flagScoresSession)
		return solves, "Session " + flagScoresSession, err
	case flagScoresRecent:
		solves, err := store.RecentSolves(ballsort.ID, flagScoresLimit)
		return solves, "Recent Solves", err
	default:
		solves, err := store.BestSolves(ballsort.ID, flagScoresLimit)
		return solves, "Best Solves", err
	}
}

// formatTicks renders a tick count as seconds at tickRate.
func formatTicks(ticks uint64, tickRate int) string {
	if tickRate <= 0 {
		tickRate = 60
	}
	return fmt.Sprintf("%.1fs", float64(ticks)/float64(tickRate))
}
