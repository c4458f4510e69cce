package solver

import (
	"math/rand"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/mines"
)

// Random opens a uniformly random unopened cell. It is the baseline the
// probability solver is benchmarked against.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a random solver seeded with seed.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// Name returns the registry name.
func (*Random) Name() string { return "random" }

// Next picks any unopened cell with equal probability.
func (r *Random) Next(v mines.View) (core.Move, bool) {
	var cells []core.Point
	for y := 0; y < v.Height(); y++ {
		for x := 0; x < v.Width(); x++ {
			if p := core.Pt(x, y); !v.Opened(p) {
				cells = append(cells, p)
			}
		}
	}
	if len(cells) == 0 {
		return core.Move{}, false
	}
	return core.Move{Point: cells[r.rng.Intn(len(cells))], Score: -1}, true
}
