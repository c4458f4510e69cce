package mines

import (
	"fmt"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

// minesAround counts mine-bearing neighbors of p regardless of p's own state.
func minesAround(b *Board, p core.Point) int {
	n := 0
	for _, q := range b.Neighbors(p) {
		if b.at(q).HasMine() {
			n++
		}
	}
	return n
}

// AdjacencyCount recomputes, from scratch, the number of neighbors of p that
// are HiddenMine or Exploded. It is defined only for Revealed cells.
func AdjacencyCount(b *Board, p core.Point) (int, error) {
	s, err := b.StateAt(p)
	if err != nil {
		return 0, err
	}
	if s != Revealed {
		return 0, fmt.Errorf("mines: adjacency of (%d,%d) in state %s: %w", p.X, p.Y, s, ErrNotRevealed)
	}
	return minesAround(b, p), nil
}

// counts caches adjacency per revealed cell. Mines never move after
// placement, so a value written at reveal time stays valid.
type counts []int8

const unknownCount int8 = -1

func newCounts(size int) counts {
	c := make(counts, size)
	for i := range c {
		c[i] = unknownCount
	}
	return c
}

// refresh computes and stores the count for a newly revealed cell.
func (c counts) refresh(b *Board, p core.Point) int {
	n := minesAround(b, p)
	c[b.index(p)] = int8(n)
	return n
}

func (c counts) get(b *Board, p core.Point) (int, bool) {
	v := c[b.index(p)]
	return int(v), v != unknownCount
}
