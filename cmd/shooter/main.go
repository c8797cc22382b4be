// shooter is a vertically scrolling arcade shooter for the terminal, a
// desktop window or remote players over SSH.
//
// Usage:
//
//	shooter play [mode]      - Play in this terminal
//	shooter desktop [mode]   - Play in an 800x600 window
//	shooter serve            - Start SSH server for remote play
//	shooter scores [mode]    - Show high scores
//	shooter list             - List modes and balance presets
//
// Global flags:
//
//	--fps <rate>             - Set tick rate (default: 60)
//	--seed <value>           - Set RNG seed for reproducible gameplay
//	--db <path>              - Set database path (default: ~/.shooter/scores.db)
//	--config <path>          - Custom shooter.yaml
//	--preset <name>          - Balance preset: classic, arcade
//	--highscore-file <path>  - Keep the best score in a text file instead of the database
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
)

var (
	// Global flags
	flagFPS           int
	flagSeed          int64
	flagDBPath        string
	flagConfig        string
	flagPreset        string
	flagHighscoreFile string
	flagAssets        string
	flagMute          bool
	flagVerbose       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Space shooter - dodge, shoot, beat the boss",
	Long: `A vertically scrolling arcade shooter.

Fly the ship with the arrow keys or WASD and fire with space. Enemies fall
in waves, a boss arrives every 300 points, spread and heal items drop from
the top. The round ends when your health reaches zero.

Available commands:
  play     - Play in this terminal
  desktop  - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores
  list     - Show modes and balance presets

Examples:
  shooter play
  shooter play --preset arcade
  shooter desktop --assets ./assets
  shooter serve --ssh :2222
  shooter scores shooter_arcade`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if _, ok := config.ParsePreset(flagPreset); !ok {
			return fmt.Errorf("unknown preset %q, want one of %v", flagPreset, config.Presets())
		}
		shooter.SetConfigPath(flagConfig)
		if flagConfig != "" {
			if _, err := config.LoadShooter(flagConfig); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.shooter/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom shooter config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "classic", "Balance preset: classic, arcade")
	rootCmd.PersistentFlags().StringVar(&flagHighscoreFile, "highscore-file", "", "Keep the best score in this text file instead of the database")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "assets", "Directory with sprites, sounds and music")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound and music")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(desktopCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the process logger in the usual format.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
