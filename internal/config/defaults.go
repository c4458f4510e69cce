package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/sweeper.yaml
var defaultSweeperYAML []byte

// DefaultStoragePath is where results are recorded unless configured otherwise.
const DefaultStoragePath = "~/.sweeper/results.db"

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Columns:     40,
			Rows:        0,
			CellWidth:   2,
			MineDensity: 0.15,
		},
		Autoplay: AutoplayConfig{
			MoveDelay:     100 * time.Millisecond,
			Solver:        "probability",
			RestartOnLoss: true,
			StopOnWin:     true,
		},
		Storage: StorageConfig{
			Path: DefaultStoragePath,
		},
	}
}
