package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

// loadConfig reads sweeper.yaml and applies the flags the user set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("columns") {
		cfg.Board.Columns = flagColumns
	}
	if flags.Changed("rows") {
		cfg.Board.Rows = flagRows
	}
	if flags.Changed("density") {
		cfg.Board.MineDensity = flagDensity
	}
	if flags.Changed("delay") {
		d, err := time.ParseDuration(flagDelay)
		if err != nil {
			return cfg, fmt.Errorf("invalid --delay %q: %w", flagDelay, err)
		}
		cfg.Autoplay.MoveDelay = d
	}
	if flags.Changed("solver") {
		cfg.Autoplay.Solver = flagSolver
	}
	if flags.Changed("db") {
		cfg.Storage.Path = flagDBPath
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if !registry.Exists(cfg.Autoplay.Solver) {
		return cfg, fmt.Errorf("unknown solver %q (run 'sweeper solvers' to list them)", cfg.Autoplay.Solver)
	}
	return cfg, nil
}

// runtimeConfig fits the configured board to the current terminal.
// The grid is derived once here and never follows later resizes.
func runtimeConfig(cfg config.Config) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.Columns = cfg.Board.Columns
	rc.Rows = cfg.Board.Rows
	rc.CellWidth = cfg.Board.CellWidth
	rc.Density = cfg.Board.MineDensity
	rc.MoveDelay = cfg.Autoplay.MoveDelay
	rc.Seed = flagSeed
	return rc.FitGrid()
}

// newLogger builds the command logger. TUI commands own the terminal, so
// without --log-file they log to ~/.sweeper/sweeper.log instead of stderr.
// The returned cleanup closes the log file, if any.
func newLogger(tui bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	cleanup := func() {}
	path := flagLogFile
	if path == "" && tui {
		if dir := config.UserDir(); dir != "" {
			path = filepath.Join(dir, "sweeper.log")
		}
	}
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		cleanup = func() { f.Close() }
	} else if tui {
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "sweeper",
	})
	logger.SetLevel(level)
	return logger, cleanup, nil
}

// openStore opens the results log, or returns nil when it is disabled or
// unavailable. Games still run without it.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	if cfg.Storage.Path == "" {
		return nil
	}
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
		return nil
	}
	return store
}
