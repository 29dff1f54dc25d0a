// flappy is a single-screen flappy arcade game for the terminal.
//
// Usage:
//
//	flappy                   - Play in this terminal
//	flappy serve             - Start SSH server for remote play
//	flappy config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set frame rate while running (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Load a custom config YAML
//	--log-file <path>    - Write logs to a file (default: discarded)
//	--log-level <level>  - Minimum log level (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flap through the pipes in your terminal",
	Long: `Flappy is a one-button arcade game played in the terminal.

Press Enter to start. After a three second countdown the flyer starts
falling; flap to keep it in the air and steer through the gaps. Touching
a pipe or the ground ends the run.

Controls:
  Space/Up/W, click  - Flap
  Enter              - Start
  R                  - Restart (after game over)
  Q/Esc/Ctrl+C       - Quit

Examples:
  flappy
  flappy --seed 42
  flappy --config ./my-flappy.yaml
  flappy serve --ssh :2222
  flappy config > ~/.flappy/flappy.yaml`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate while running (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discarded)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Minimum log level: debug, info, warn, error")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger for a local game. The TUI owns the terminal, so
// logs go to a file or nowhere. The returned closer must be called on exit.
func newLogger(path, level string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("flappy: %w", err)
	}

	if path == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("flappy: cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           lvl,
	})
	return logger, f, nil
}
