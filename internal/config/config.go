// Package config provides YAML-based configuration loading for the
// sweeper board, autoplay and storage.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config is the full sweeper configuration.
type Config struct {
	Board    BoardConfig    `yaml:"board"`
	Autoplay AutoplayConfig `yaml:"autoplay"`
	Storage  StorageConfig  `yaml:"storage"`
}

// BoardConfig defines the grid and mine density.
type BoardConfig struct {
	Columns     int     `yaml:"columns"`
	Rows        int     `yaml:"rows"`       // 0 = derive from terminal height
	CellWidth   int     `yaml:"cell_width"` // terminal columns per cell
	MineDensity float64 `yaml:"mine_density"`
}

// AutoplayConfig defines how the bot plays.
type AutoplayConfig struct {
	MoveDelay     time.Duration `yaml:"move_delay"`
	Solver        string        `yaml:"solver"`
	RestartOnLoss bool          `yaml:"restart_on_loss"`
	StopOnWin     bool          `yaml:"stop_on_win"`
}

// StorageConfig defines where finished games are recorded.
type StorageConfig struct {
	Path string `yaml:"path"` // empty disables recording
}

// Validate reports every invalid field.
// Solver names are checked against the registry by the caller.
func (c Config) Validate() error {
	var errs []error
	if c.Board.Columns <= 0 {
		errs = append(errs, fmt.Errorf("board.columns must be positive, got %d", c.Board.Columns))
	}
	if c.Board.Rows < 0 {
		errs = append(errs, fmt.Errorf("board.rows must not be negative, got %d", c.Board.Rows))
	}
	if c.Board.CellWidth <= 0 {
		errs = append(errs, fmt.Errorf("board.cell_width must be positive, got %d", c.Board.CellWidth))
	}
	if c.Board.MineDensity < 0 || c.Board.MineDensity >= 1 {
		errs = append(errs, fmt.Errorf("board.mine_density must be in [0, 1), got %g", c.Board.MineDensity))
	}
	if c.Autoplay.MoveDelay < 0 {
		errs = append(errs, fmt.Errorf("autoplay.move_delay must not be negative, got %s", c.Autoplay.MoveDelay))
	}
	if c.Autoplay.Solver == "" {
		errs = append(errs, errors.New("autoplay.solver must be set"))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: %w", errors.Join(errs...))
}
