package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/audio"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in this terminal",
	Long: `Start a round in the terminal.

Controls:
  Arrows/WASD  - Move
  Space        - Fire (one volley per press)
  P/Esc        - Pause
  R            - Retry (after game over)
  ?            - Show all keys
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Examples:
  shooter play
  shooter play shooter_arcade
  shooter play --preset arcade --seed 42
  shooter play --config ./my-shooter.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal is busy drawing)")
}

func runPlay(_ *cobra.Command, args []string) error {
	modeID, err := modeFor(args)
	if err != nil {
		return err
	}

	// The alternate screen owns stdout and stderr while playing.
	logger := log.New(io.Discard)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return err
		}
		defer f.Close()
		logger = log.NewWithOptions(f, log.Options{ReportTimestamp: true, Prefix: "shooter"})
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	sess, cleanup, err := newSession(modeID, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	sounds := audio.NewManager(nil, audio.Options{
		AssetDir: flagAssets,
		Muted:    flagMute,
		Logger:   logger,
	})

	shotDir := ""
	if home, homeErr := os.UserHomeDir(); homeErr == nil {
		shotDir = filepath.Join(home, ".shooter", "screenshots")
	}

	return tui.Run(sess, runtimeConfig(width, height), tui.Options{
		Sounds:        sounds,
		ScreenshotDir: shotDir,
	})
}
