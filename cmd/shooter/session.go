package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/highscore"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/session"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

// modeFor resolves the mode id from an optional argument and --preset.
func modeFor(args []string) (string, error) {
	if len(args) > 0 {
		if !registry.Exists(args[0]) {
			return "", fmt.Errorf("unknown mode %q, run 'shooter list' to see available modes", args[0])
		}
		return args[0], nil
	}
	if preset, _ := config.ParsePreset(flagPreset); preset == config.PresetArcade {
		return "shooter_arcade", nil
	}
	return "shooter", nil
}

// runtimeConfig builds the runtime config shared by every host.
func runtimeConfig(w, h int) core.RuntimeConfig {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: flagFPS, Seed: seed}
}

// newSession wires the best score keeper and run ledger around a round.
// A store that cannot be opened only costs persistence. The returned
// cleanup closes the store.
func newSession(modeID string, logger *log.Logger) (*session.Session, func(), error) {
	game, err := registry.Create(modeID)
	if err != nil {
		return nil, nil, err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		store = nil
	}

	opts := []session.Option{session.WithLogger(logger)}
	switch {
	case flagHighscoreFile != "":
		opts = append(opts, session.WithKeeper(highscore.NewKeeper(highscore.NewFileBackend(flagHighscoreFile), logger)))
	case store != nil:
		opts = append(opts, session.WithKeeper(highscore.NewKeeper(highscore.NewSQLiteBackend(store, modeID), logger)))
	}
	if store != nil {
		opts = append(opts, session.WithLedger(store))
	}

	cleanup := func() {
		if store != nil {
			store.Close()
		}
	}
	return session.New(game, opts...), cleanup, nil
}
