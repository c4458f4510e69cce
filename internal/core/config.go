package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
// Grid dimensions are fixed for the lifetime of a session.
type RuntimeConfig struct {
	ScreenW   int           // Screen width in characters
	ScreenH   int           // Screen height in characters
	Columns   int           // Grid width in cells
	Rows      int           // Grid height in cells
	CellWidth int           // Terminal columns used to draw one cell
	Density   float64       // Fraction of cells holding a mine
	MoveDelay time.Duration // Pause between autoplay moves
	Seed      int64         // RNG seed for deterministic boards
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		Columns:   40,
		Rows:      20,
		CellWidth: 2,
		Density:   0.15,
		MoveDelay: 100 * time.Millisecond,
		Seed:      0, // 0 means use current time in platform layer
	}
}

// HUDRows is the number of screen lines reserved above and below the grid.
const HUDRows = 3

// FitGrid derives the grid size from the screen the way a viewport would:
// columns are capped by what fits horizontally and rows fill the remaining height.
// Explicit non-zero rows are kept as long as they fit.
func (c RuntimeConfig) FitGrid() RuntimeConfig {
	cw := c.CellWidth
	if cw <= 0 {
		cw = 1
	}
	maxCols := c.ScreenW / cw
	if c.Columns <= 0 || c.Columns > maxCols {
		c.Columns = maxCols
	}
	maxRows := c.ScreenH - HUDRows
	if c.Rows <= 0 || c.Rows > maxRows {
		c.Rows = maxRows
	}
	c.Columns = max(c.Columns, 1)
	c.Rows = max(c.Rows, 1)
	return c
}
