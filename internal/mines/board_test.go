package mines

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

func TestNewBoardInvalidSize(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}} {
		if _, err := NewBoard(dims[0], dims[1]); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewBoard(%d, %d) error = %v, expected ErrInvalidSize", dims[0], dims[1], err)
		}
	}
}

func TestBoardStartsHidden(t *testing.T) {
	b, err := NewBoard(4, 3)
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}
	if b.Count(Hidden) != 12 {
		t.Errorf("Count(Hidden) = %d, expected 12", b.Count(Hidden))
	}
}

func TestBoardStateAtOutOfBounds(t *testing.T) {
	b, _ := NewBoard(3, 3)

	for _, p := range []core.Point{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 3, Y: 0}, {X: 0, Y: 3}} {
		if _, err := b.StateAt(p); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("StateAt(%v) error = %v, expected ErrOutOfBounds", p, err)
		}
		if err := b.SetState(p, Revealed); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("SetState(%v) error = %v, expected ErrOutOfBounds", p, err)
		}
	}
}

func TestBoardSetStateTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    CellState
		to      CellState
		wantErr bool
	}{
		{"place mine", Hidden, HiddenMine, false},
		{"reveal", Hidden, Revealed, false},
		{"explode", HiddenMine, Exploded, false},
		{"same state is a no-op", Revealed, Revealed, false},
		{"mine onto revealed", Revealed, HiddenMine, true},
		{"revealed back to hidden", Revealed, Hidden, true},
		{"reveal a mine", HiddenMine, Revealed, true},
		{"explode a safe cell", Hidden, Exploded, true},
		{"remove a mine", HiddenMine, Hidden, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, _ := NewBoard(2, 2)
			p := core.Pt(1, 1)
			b.cells[b.index(p)] = tc.from

			err := b.SetState(p, tc.to)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidTransition) {
					t.Errorf("SetState(%s -> %s) error = %v, expected ErrInvalidTransition", tc.from, tc.to, err)
				}
				if s, _ := b.StateAt(p); s != tc.from {
					t.Errorf("rejected transition changed state to %s", s)
				}
				return
			}
			if err != nil {
				t.Fatalf("SetState(%s -> %s) failed: %v", tc.from, tc.to, err)
			}
			if s, _ := b.StateAt(p); s != tc.to {
				t.Errorf("state = %s, expected %s", s, tc.to)
			}
		})
	}
}

func TestBoardFrozenAfterExplosion(t *testing.T) {
	b, _ := NewBoard(3, 1)
	_ = b.SetState(core.Pt(0, 0), HiddenMine)
	if err := b.SetState(core.Pt(0, 0), Exploded); err != nil {
		t.Fatalf("explode failed: %v", err)
	}
	if !b.Exploded() {
		t.Error("Exploded() should be true")
	}
	if err := b.SetState(core.Pt(1, 0), Revealed); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("reveal after explosion error = %v, expected ErrInvalidTransition", err)
	}
}

func TestBoardNeighbors(t *testing.T) {
	b, _ := NewBoard(4, 3)

	tests := []struct {
		name string
		p    core.Point
		want int
	}{
		{"top-left corner", core.Pt(0, 0), 3},
		{"bottom-right corner", core.Pt(3, 2), 3},
		{"top edge", core.Pt(1, 0), 5},
		{"left edge", core.Pt(0, 1), 5},
		{"interior", core.Pt(1, 1), 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ns := b.Neighbors(tc.p)
			if len(ns) != tc.want {
				t.Errorf("Neighbors(%v) returned %d cells, expected %d", tc.p, len(ns), tc.want)
			}
			for _, n := range ns {
				if !b.Contains(n) || n == tc.p {
					t.Errorf("Neighbors(%v) contains invalid %v", tc.p, n)
				}
			}
		})
	}

	// Interior order follows the offset table
	ns := b.Neighbors(core.Pt(1, 1))
	for i, off := range core.NeighborOffsets {
		if ns[i] != core.Pt(1, 1).Add(off) {
			t.Errorf("Neighbors order[%d] = %v, expected %v", i, ns[i], core.Pt(1, 1).Add(off))
		}
	}
}
