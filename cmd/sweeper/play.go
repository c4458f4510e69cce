package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a board yourself",
	Long: `Start a board and play it yourself. The first cell you open is
always safe. Press 'a' at any time to hand the board to the solver.

Controls:
  Arrows/hjkl  - Move cursor
  Space/Enter  - Open cell (or click it)
  A/Tab        - Toggle autoplay
  P            - Pause autoplay
  R            - New board
  Q/Ctrl+C     - Quit

Examples:
  sweeper play
  sweeper play --columns 30 --rows 16 --density 0.2
  sweeper play --seed 42`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		exitOnError(runSession(cmd, false))
	},
}

var autoCmd = &cobra.Command{
	Use:   "auto",
	Short: "Watch the solver play",
	Long: `Let the solver play. It opens one cell per move delay, starting
with a random cell. With autoplay.restart_on_loss a lost board is
replaced by a new one and the bot keeps going.

Examples:
  sweeper auto
  sweeper auto --delay 20ms
  sweeper auto --solver random`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		exitOnError(runSession(cmd, true))
	},
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSession(cmd *cobra.Command, auto bool) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, cleanup, err := newLogger(true)
	if err != nil {
		return err
	}
	defer cleanup()

	// Continue without storage if it is disabled or unavailable
	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	_, err = tui.Run(tui.Options{
		Config:        runtimeConfig(cfg),
		Solver:        cfg.Autoplay.Solver,
		Autoplay:      auto,
		RestartOnLoss: cfg.Autoplay.RestartOnLoss,
		StopOnWin:     cfg.Autoplay.StopOnWin,
		Store:         store,
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
