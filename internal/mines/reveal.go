package mines

import "github.com/vovakirdan/tui-sweeper/internal/core"

// Change records one cell transition produced by an interaction.
// Count carries the adjacency count when To is Revealed.
type Change struct {
	Point core.Point
	From  CellState
	To    CellState
	Count int
}

// openCell moves a Hidden cell to Revealed and caches its count.
func openCell(b *Board, c counts, p core.Point) (Change, error) {
	if err := b.SetState(p, Revealed); err != nil {
		return Change{}, err
	}
	return Change{Point: p, From: Hidden, To: Revealed, Count: c.refresh(b, p)}, nil
}

// flood opens the connected zero-adjacency region around start plus its
// numbered border. start must already be Revealed with a count of zero.
// Cells are dequeued breadth-first; each is scheduled at most once and
// mine cells are left untouched.
func flood(b *Board, c counts, start core.Point) ([]Change, error) {
	var changes []Change

	visited := make([]bool, b.Size())
	visited[b.index(start)] = true
	frontier := []core.Point{start}

	for len(frontier) > 0 {
		p := frontier[0]
		frontier = frontier[1:]

		for _, n := range b.Neighbors(p) {
			i := b.index(n)
			if visited[i] {
				continue
			}
			visited[i] = true
			if b.cells[i] != Hidden {
				continue
			}

			ch, err := openCell(b, c, n)
			if err != nil {
				return changes, err
			}
			changes = append(changes, ch)
			if ch.Count == 0 {
				frontier = append(frontier, n)
			}
		}
	}
	return changes, nil
}
