package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start sweeper with an interactive menu",
	Long: `Start sweeper in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
Leaving a board with Esc returns you to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  sweeper menu
  sweeper menu --db ./results.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, cleanup, err := newLogger(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	rc := runtimeConfig(cfg)

	// Menu loop
	for {
		choice, err := tui.RunMenu(rc, cfg.Autoplay.Solver)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		var goBack bool
		switch choice {
		case tui.ChoicePlay, tui.ChoiceWatch:
			goBack, err = tui.Run(tui.Options{
				Config:        rc,
				Solver:        cfg.Autoplay.Solver,
				Autoplay:      choice == tui.ChoiceWatch,
				RestartOnLoss: cfg.Autoplay.RestartOnLoss,
				StopOnWin:     cfg.Autoplay.StopOnWin,
				Store:         store,
				Logger:        logger,
			})
			if rc.Seed != 0 {
				rc.Seed++ // next session gets a different but reproducible board sequence
			}
		case tui.ChoiceStats:
			goBack, err = tui.RunStats(store, rc.ScreenW, rc.ScreenH)
		default:
			return
		}

		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		if !goBack {
			return // User quit
		}
	}
}
