package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/audio"
	"github.com/vovakirdan/tui-shooter/internal/platform/desktop"
)

var flagScale float64

var desktopCmd = &cobra.Command{
	Use:   "desktop [mode]",
	Short: "Play in a desktop window",
	Long: `Open an 800x600 window and play there.

Sprites (Pesawat.png, Musuh.png, Boss.png, bgGame.png), sound effects and
music tracks are read from --assets; whatever is missing is drawn as
shapes or synthesized.

Controls:
  Arrows/WASD  - Move
  Space        - Fire
  P            - Pause
  R/Enter      - Retry (after game over)
  Q/Esc        - Quit

Examples:
  shooter desktop
  shooter desktop --assets ./assets --scale 1.5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDesktop,
}

func init() {
	desktopCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale factor")
}

func runDesktop(_ *cobra.Command, args []string) error {
	modeID, err := modeFor(args)
	if err != nil {
		return err
	}
	logger := newLogger("shooter")

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

	logger.Info("opening window", "mode", modeID)
	return desktop.Run(sess, runtimeConfig(800, 600), desktop.Options{
		AssetDir: flagAssets,
		Sounds:   sounds,
		Logger:   logger,
		Scale:    flagScale,
	})
}
