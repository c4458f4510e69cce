// Package solver chooses the next cell to open from the player's view of
// the board.
package solver

import (
	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/mines"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
)

func init() {
	registry.Register("probability", "Local-constraint probability heuristic", func(int64) registry.Solver {
		return NewProbability()
	})
	registry.Register("random", "Uniformly random unopened cell", func(seed int64) registry.Solver {
		return NewRandom(seed)
	})
}

// Probability is a greedy local-constraint heuristic. Every revealed cell
// showing n > 0 with k unopened neighbors multiplies each of those
// neighbors' score by 1 - n/k. Unconstrained cells keep a score of 1.
// The highest score wins; ties go to the first cell encountered.
//
// It does not do global constraint satisfaction and may pick a cell that
// is provably a mine.
type Probability struct{}

// NewProbability returns the probability solver.
func NewProbability() *Probability {
	return &Probability{}
}

// Name returns the registry name.
func (*Probability) Name() string { return "probability" }

// Scores returns every unopened cell with its score in tie-break order:
// constrained cells in the order constraints first touch them (constraint
// cells row-major, neighbors in core.NeighborOffsets order), followed by
// unconstrained cells row-major.
func (*Probability) Scores(v mines.View) []core.Move {
	w, h := v.Width(), v.Height()
	score := make([]float64, w*h)
	touched := make([]bool, w*h)
	order := make([]core.Point, 0)

	unopened := make([]core.Point, 0, len(core.NeighborOffsets))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := core.Pt(x, y)
			n, ok := v.Known(c)
			if !ok || n == 0 {
				continue
			}

			unopened = unopened[:0]
			for _, off := range core.NeighborOffsets {
				q := c.Add(off)
				if q.In(w, h) && !v.Opened(q) {
					unopened = append(unopened, q)
				}
			}
			if len(unopened) == 0 {
				continue
			}

			safe := 1 - float64(n)/float64(len(unopened))
			for _, q := range unopened {
				i := q.Y*w + q.X
				if !touched[i] {
					touched[i] = true
					score[i] = 1
					order = append(order, q)
				}
				score[i] *= safe
			}
		}
	}

	moves := make([]core.Move, 0, w*h)
	for _, q := range order {
		moves = append(moves, core.Move{Point: q, Score: score[q.Y*w+q.X]})
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			q := core.Pt(x, y)
			if !touched[y*w+x] && !v.Opened(q) {
				moves = append(moves, core.Move{Point: q, Score: 1})
			}
		}
	}
	return moves
}

// Next returns the highest-scoring unopened cell.
func (p *Probability) Next(v mines.View) (core.Move, bool) {
	return best(p.Scores(v))
}

// best returns the first move with the maximum score.
func best(moves []core.Move) (core.Move, bool) {
	if len(moves) == 0 {
		return core.Move{}, false
	}
	top := moves[0]
	for _, m := range moves[1:] {
		if m.Score > top.Score {
			top = m
		}
	}
	return top, true
}
