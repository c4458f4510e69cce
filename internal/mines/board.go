// Package mines implements the board simulation: cell state, deferred mine
// placement, adjacency counting and flood-fill reveal.
package mines

import (
	"fmt"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

// CellState is the single source of truth for one grid cell.
type CellState uint8

const (
	Hidden     CellState = iota // not opened, no mine
	HiddenMine                  // not opened, mine
	Revealed                    // opened, mine-free
	Exploded                    // a mine that was opened; ends the game
)

// String returns a human-readable name for the state.
func (s CellState) String() string {
	switch s {
	case Hidden:
		return "Hidden"
	case HiddenMine:
		return "HiddenMine"
	case Revealed:
		return "Revealed"
	case Exploded:
		return "Exploded"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// HasMine reports whether the cell carries a mine, opened or not.
func (s CellState) HasMine() bool {
	return s == HiddenMine || s == Exploded
}

// Opened reports whether the cell has been opened.
func (s CellState) Opened() bool {
	return s == Revealed || s == Exploded
}

// Board owns the grid state and its dimensions.
type Board struct {
	width    int
	height   int
	cells    []CellState
	exploded bool
}

// NewBoard creates a width×height board with every cell Hidden.
func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("mines: %dx%d: %w", width, height, ErrInvalidSize)
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]CellState, width*height),
	}, nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Size returns the total number of cells.
func (b *Board) Size() int { return len(b.cells) }

// Contains reports whether p lies on the board.
func (b *Board) Contains(p core.Point) bool {
	return p.In(b.width, b.height)
}

func (b *Board) index(p core.Point) int {
	return p.Y*b.width + p.X
}

func (b *Board) point(i int) core.Point {
	return core.Pt(i%b.width, i/b.width)
}

func (b *Board) boundsErr(p core.Point) error {
	return fmt.Errorf("mines: (%d,%d) outside %dx%d: %w", p.X, p.Y, b.width, b.height, ErrOutOfBounds)
}

// StateAt returns the state of the cell at p.
func (b *Board) StateAt(p core.Point) (CellState, error) {
	if !b.Contains(p) {
		return Hidden, b.boundsErr(p)
	}
	return b.cells[b.index(p)], nil
}

// at is StateAt for coordinates already known to be in bounds.
func (b *Board) at(p core.Point) CellState {
	return b.cells[b.index(p)]
}

// SetState mutates one cell. Allowed transitions:
//
//	Hidden     -> HiddenMine (mine placement)
//	Hidden     -> Revealed
//	HiddenMine -> Exploded
//
// Setting a cell to its current state is a no-op. Every mutation is
// rejected once any cell has exploded.
func (b *Board) SetState(p core.Point, s CellState) error {
	if !b.Contains(p) {
		return b.boundsErr(p)
	}
	i := b.index(p)
	from := b.cells[i]
	if from == s {
		return nil
	}
	if b.exploded {
		return fmt.Errorf("mines: set (%d,%d) to %s after explosion: %w", p.X, p.Y, s, ErrInvalidTransition)
	}

	ok := false
	switch s {
	case HiddenMine, Revealed:
		ok = from == Hidden
	case Exploded:
		ok = from == HiddenMine
	}
	if !ok {
		return fmt.Errorf("mines: (%d,%d) %s -> %s: %w", p.X, p.Y, from, s, ErrInvalidTransition)
	}

	b.cells[i] = s
	if s == Exploded {
		b.exploded = true
	}
	return nil
}

// Neighbors returns the up to 8 grid-adjacent coordinates of p, clipped to
// the board, in core.NeighborOffsets order.
func (b *Board) Neighbors(p core.Point) []core.Point {
	out := make([]core.Point, 0, len(core.NeighborOffsets))
	for _, off := range core.NeighborOffsets {
		n := p.Add(off)
		if b.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// Count returns how many cells are in state s.
func (b *Board) Count(s CellState) int {
	n := 0
	for _, c := range b.cells {
		if c == s {
			n++
		}
	}
	return n
}

// Exploded reports whether a mine has been opened.
func (b *Board) Exploded() bool {
	return b.exploded
}
