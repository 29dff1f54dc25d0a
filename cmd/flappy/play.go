package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

func runPlay(_ *cobra.Command, _ []string) error {
	game, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg := runtimeConfig()
	logger.Info("starting", "fps", cfg.TickRate, "seed", cfg.Seed, "screen", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))

	if err := tui.Run(game, cfg, logger); err != nil {
		logger.Error("game stopped", "error", err)
		return fmt.Errorf("flappy: %w", err)
	}
	return nil
}

// runtimeConfig combines the global flags with the current terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
