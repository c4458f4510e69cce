package mines

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

// MineCount returns round(density × width × height).
func MineCount(density float64, width, height int) int {
	return int(math.Round(density * float64(width*height)))
}

// Generator places mines on a board under the first-click-safety constraint.
type Generator struct {
	density float64
	rng     *rand.Rand
}

// NewGenerator creates a generator for the given mine density.
func NewGenerator(density float64, rng *rand.Rand) *Generator {
	return &Generator{density: density, rng: rng}
}

// PlaceMines turns MineCount distinct Hidden cells other than excluded into
// HiddenMine, chosen uniformly at random. Revealed cells are never chosen.
// The count is capped at the number of eligible cells, so placement always
// terminates. It fails if the board already carries mines.
func (g *Generator) PlaceMines(b *Board, excluded core.Point) (int, error) {
	if b.Count(HiddenMine)+b.Count(Exploded) > 0 {
		return 0, fmt.Errorf("mines: mines already placed: %w", ErrInvalidTransition)
	}

	candidates := make([]int, 0, b.Size())
	for i, s := range b.cells {
		if s != Hidden || b.point(i) == excluded {
			continue
		}
		candidates = append(candidates, i)
	}

	want := min(MineCount(g.density, b.width, b.height), len(candidates))

	// Partial Fisher-Yates: the first want slots end up a uniform sample.
	for k := 0; k < want; k++ {
		j := k + g.rng.Intn(len(candidates)-k)
		candidates[k], candidates[j] = candidates[j], candidates[k]
		if err := b.SetState(b.point(candidates[k]), HiddenMine); err != nil {
			return k, err
		}
	}
	return want, nil
}
