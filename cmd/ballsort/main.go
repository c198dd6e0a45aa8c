// ballsort is the Ball Sort puzzle: six tubes, four colors, sort every
// color into its own tube.
//
// Usage:
//
//	ballsort [play]          - Play in the terminal (default)
//	ballsort window          - Play in a desktop window
//	ballsort serve           - Start SSH server for remote play
//	ballsort scores          - Show the best solves
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for a reproducible first level
//	--db <path>       - Set database path (default: ~/.ballsort/records.db)
//	--locale <code>   - UI language (en, ru)
//	--sound, --music  - Start with effects / music on or off
//	--config <path>   - Custom ballsort.yaml
//	--debug           - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vovakirdan/ballsort/internal/config"
	"github.com/vovakirdan/ballsort/internal/games/ballsort"
)

var (
	v        = config.NewViper()
	settings config.Settings
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ballsort",
	Short: "Ball Sort - sort the colored balls into tubes",
	Long: `Ball Sort deals sixteen balls in four colors over four tubes and
leaves two tubes empty. Move balls one at a time onto an empty tube or a
ball of the same color until every tube holds a single color.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View the best solves

Examples:
  ballsort
  ballsort --locale ru
  ballsort window --seed 42
  ballsort serve --ssh :2222
  ballsort scores --recent`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
	RunE:              runPlay,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Int(config.KeyFPS, 60, "Tick rate (frames per second); moves animate over a fixed number of ticks")
	flags.Int64(config.KeySeed, 0, "RNG seed (0 = random based on time)")
	flags.String(config.KeyDB, "", "Path to records database (default ~/.ballsort/records.db)")
	flags.String(config.KeyLocale, "en", "UI language: en, ru")
	flags.Bool(config.KeySound, true, "Start with sound effects on")
	flags.Bool(config.KeyMusic, true, "Start with background music on")
	flags.Bool(config.KeyDebug, false, "Enable debug logging")
	flags.String(config.KeyConfig, "", "Path to custom ballsort.yaml")

	for _, key := range []string{
		config.KeyFPS, config.KeySeed, config.KeyDB, config.KeyLocale,
		config.KeySound, config.KeyMusic, config.KeyDebug, config.KeyConfig,
	} {
		bindFlag(v, key)
	}

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

func bindFlag(v *viper.Viper, key string) {
	if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key)); err != nil {
		panic(err)
	}
}

// loadSettings resolves flags, BALLSORT_* variables and settings.yaml.
func loadSettings(_ *cobra.Command, _ []string) error {
	s, err := config.LoadSettings(v)
	if err != nil {
		return err
	}
	settings = s
	ballsort.SetConfigPath(s.ConfigPath)
	return nil
}
