package mines

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

// Status is the session state of a game.
type Status int

const (
	AwaitingFirstMove Status = iota // mines not yet placed
	InProgress                      // mines placed, play ongoing
	Lost                            // a mine exploded
	Won                             // every mine-free cell is revealed
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case AwaitingFirstMove:
		return "awaiting first move"
	case InProgress:
		return "in progress"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Over reports whether the status is terminal.
func (s Status) Over() bool {
	return s == Lost || s == Won
}

// Params fixes the shape of a game for its whole lifetime.
type Params struct {
	Width   int
	Height  int
	Density float64 // in [0, 1)
	Seed    int64
}

// View is the player's knowledge of the board: which cells are open and
// the counts shown on them. Hidden and HiddenMine look the same through it.
type View interface {
	Width() int
	Height() int
	Opened(p core.Point) bool
	// Known returns the adjacency count of p and true if p is Revealed.
	Known(p core.Point) (int, bool)
}

// Game is one session: a board plus the generator, adjacency cache and
// reveal engine that mutate it.
type Game struct {
	params Params
	board  *Board
	gen    *Generator
	counts counts
	status Status

	mines    int
	revealed int
	moves    int

	explodedAt core.Point
	observers  []func(Change)
}

// NewGame creates a game with every cell Hidden and no mines.
func NewGame(p Params) (*Game, error) {
	if p.Density < 0 || p.Density >= 1 {
		return nil, fmt.Errorf("mines: density %g outside [0,1)", p.Density)
	}
	b, err := NewBoard(p.Width, p.Height)
	if err != nil {
		return nil, err
	}
	return &Game{
		params: p,
		board:  b,
		gen:    NewGenerator(p.Density, rand.New(rand.NewSource(p.Seed))),
		counts: newCounts(b.Size()),
	}, nil
}

// Params returns the parameters the game was created with.
func (g *Game) Params() Params { return g.params }

// Width returns the number of columns.
func (g *Game) Width() int { return g.board.width }

// Height returns the number of rows.
func (g *Game) Height() int { return g.board.height }

// Status returns the session state.
func (g *Game) Status() Status { return g.status }

// Mines returns the number of placed mines (zero before the first move).
func (g *Game) Mines() int { return g.mines }

// RevealedCount returns the number of Revealed cells.
func (g *Game) RevealedCount() int { return g.revealed }

// Moves returns the number of interactions that changed the board.
func (g *Game) Moves() int { return g.moves }

// ExplodedAt returns the exploded cell, if any.
func (g *Game) ExplodedAt() (core.Point, bool) {
	return g.explodedAt, g.status == Lost
}

// StateAt returns the state of the cell at p.
func (g *Game) StateAt(p core.Point) (CellState, error) {
	return g.board.StateAt(p)
}

// Opened reports whether p is Revealed or Exploded. Out-of-bounds is false.
func (g *Game) Opened(p core.Point) bool {
	return g.board.Contains(p) && g.board.at(p).Opened()
}

// Known returns the cached adjacency count of p if it is Revealed.
func (g *Game) Known(p core.Point) (int, bool) {
	if !g.board.Contains(p) || g.board.at(p) != Revealed {
		return 0, false
	}
	return g.counts.get(g.board, p)
}

// Adjacency returns the count to display on p. Only Revealed cells have one.
func (g *Game) Adjacency(p core.Point) (int, error) {
	s, err := g.board.StateAt(p)
	if err != nil {
		return 0, err
	}
	if s != Revealed {
		return 0, fmt.Errorf("mines: adjacency of (%d,%d) in state %s: %w", p.X, p.Y, s, ErrNotRevealed)
	}
	n, _ := g.counts.get(g.board, p)
	return n, nil
}

// Subscribe registers fn to receive every change, in order, after each
// interaction completes.
func (g *Game) Subscribe(fn func(Change)) {
	g.observers = append(g.observers, fn)
}

func (g *Game) notify(changes []Change) {
	for _, fn := range g.observers {
		for _, ch := range changes {
			fn(ch)
		}
	}
}

// OnFirstInteraction opens p, then places mines everywhere but p, then
// floods if p turned out blank. The first move is therefore always safe.
func (g *Game) OnFirstInteraction(p core.Point) ([]Change, error) {
	if !g.board.Contains(p) {
		return nil, g.board.boundsErr(p)
	}
	if g.status != AwaitingFirstMove {
		return nil, fmt.Errorf("mines: first move after %s: %w", g.status, ErrInvalidTransition)
	}

	if err := g.board.SetState(p, Revealed); err != nil {
		return nil, err
	}
	n, err := g.gen.PlaceMines(g.board, p)
	if err != nil {
		return nil, err
	}
	g.mines = n
	g.status = InProgress

	return g.open(Change{Point: p, From: Hidden, To: Revealed, Count: g.counts.refresh(g.board, p)})
}

// OnInteraction opens p. Before the first move it behaves like
// OnFirstInteraction. Opening an open cell, or any cell once the game is
// over, is a no-op returning no changes.
func (g *Game) OnInteraction(p core.Point) ([]Change, error) {
	if !g.board.Contains(p) {
		return nil, g.board.boundsErr(p)
	}

	switch g.status {
	case AwaitingFirstMove:
		return g.OnFirstInteraction(p)
	case Lost, Won:
		return nil, nil
	}

	switch g.board.at(p) {
	case HiddenMine:
		if err := g.board.SetState(p, Exploded); err != nil {
			return nil, err
		}
		g.status = Lost
		g.explodedAt = p
		g.moves++
		changes := []Change{{Point: p, From: HiddenMine, To: Exploded}}
		g.notify(changes)
		return changes, nil

	case Hidden:
		first, err := openCell(g.board, g.counts, p)
		if err != nil {
			return nil, err
		}
		return g.open(first)
	}

	return nil, nil
}

// Reveal is the single entry point for opening a cell.
func (g *Game) Reveal(p core.Point) ([]Change, error) {
	return g.OnInteraction(p)
}

// open finishes a successful reveal: flood if blank, bookkeeping, win check.
func (g *Game) open(first Change) ([]Change, error) {
	changes := []Change{first}
	if first.Count == 0 {
		more, err := flood(g.board, g.counts, first.Point)
		changes = append(changes, more...)
		if err != nil {
			g.revealed += len(changes)
			return changes, err
		}
	}

	g.revealed += len(changes)
	g.moves++
	if g.revealed == g.board.Size()-g.mines {
		g.status = Won
	}
	g.notify(changes)
	return changes, nil
}

// Snapshot captures the complete game state for comparison and replay checks.
type Snapshot struct {
	Width    int
	Height   int
	Status   Status
	Cells    []CellState
	Mines    int
	Revealed int
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Width:    g.board.width,
		Height:   g.board.height,
		Status:   g.status,
		Cells:    slices.Clone(g.board.cells),
		Mines:    g.mines,
		Revealed: g.revealed,
	}
}

// Equal reports whether two snapshots describe the same board.
func (s Snapshot) Equal(o Snapshot) bool {
	return s.Width == o.Width && s.Height == o.Height && s.Status == o.Status &&
		s.Mines == o.Mines && s.Revealed == o.Revealed && slices.Equal(s.Cells, o.Cells)
}
