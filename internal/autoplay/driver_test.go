package autoplay

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/mines"
	"github.com/vovakirdan/tui-sweeper/internal/solver"
)

// scriptedSolver returns its moves in order, then reports no move.
type scriptedSolver struct {
	moves []core.Point
	calls int
}

func (*scriptedSolver) Name() string { return "scripted" }

func (s *scriptedSolver) Next(mines.View) (core.Move, bool) {
	s.calls++
	if len(s.moves) == 0 {
		return core.Move{}, false
	}
	p := s.moves[0]
	s.moves = s.moves[1:]
	return core.Move{Point: p, Score: 1}, true
}

func newGame(t *testing.T, w, h int, density float64, seed int64) *mines.Game {
	t.Helper()
	g, err := mines.NewGame(mines.Params{Width: w, Height: h, Density: density, Seed: seed})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func TestStartSeedsFirstMove(t *testing.T) {
	g := newGame(t, 10, 8, 0.15, 1)
	d := New(g, solver.NewProbability(), Options{Seed: 7})

	if d.State() != NotStarted {
		t.Fatalf("initial state = %v", d.State())
	}
	changes, err := d.Start()
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if len(changes) == 0 {
		t.Fatal("opening move opened nothing")
	}
	if g.Status() == mines.AwaitingFirstMove || g.Status() == mines.Lost {
		t.Fatalf("status after opening move = %v", g.Status())
	}
	if g.Mines() != mines.MineCount(0.15, 10, 8) {
		t.Errorf("mines = %d, want %d", g.Mines(), mines.MineCount(0.15, 10, 8))
	}
}

func TestStartKeepsStartedGame(t *testing.T) {
	g := newGame(t, 6, 6, 0.1, 3)
	if _, err := g.Reveal(core.Pt(0, 0)); err != nil {
		t.Fatal(err)
	}
	moves := g.Moves()

	d := New(g, &scriptedSolver{}, Options{})
	changes, err := d.Start()
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if len(changes) != 0 || g.Moves() != moves {
		t.Errorf("Start opened cells on an already started game")
	}
}

func TestRunPlaysToTheEnd(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := newGame(t, 12, 9, 0.15, seed)
		d := New(g, solver.NewProbability(), Options{Seed: seed})

		if err := d.Run(context.Background()); err != nil {
			t.Fatalf("seed %d: Run: %v", seed, err)
		}
		if d.State() != Stopped {
			t.Fatalf("seed %d: state = %v", seed, d.State())
		}
		switch d.Reason() {
		case ReasonLost:
			if g.Status() != mines.Lost {
				t.Errorf("seed %d: reason lost but status %v", seed, g.Status())
			}
		case ReasonWon:
			if g.Status() != mines.Won {
				t.Errorf("seed %d: reason won but status %v", seed, g.Status())
			}
		default:
			t.Errorf("seed %d: reason = %v", seed, d.Reason())
		}
	}
}

func TestDensityZeroWinsOnOpeningMove(t *testing.T) {
	g := newGame(t, 4, 4, 0, 1)
	s := &scriptedSolver{}
	d := New(g, s, Options{})

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if d.Reason() != ReasonWon {
		t.Fatalf("reason = %v, want won", d.Reason())
	}
	if s.calls != 0 {
		t.Errorf("solver consulted %d times after the game was won", s.calls)
	}
}

func TestNoMoveStops(t *testing.T) {
	g := newGame(t, 8, 8, 0.2, 5)
	d := New(g, &scriptedSolver{}, Options{})

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if g.Status() != mines.Won && d.Reason() != ReasonNoMove {
		t.Errorf("reason = %v, want no move", d.Reason())
	}
}

func TestLossIsTerminal(t *testing.T) {
	g := newGame(t, 6, 6, 0.5, 11)
	d := New(g, solver.NewRandom(2), Options{Seed: 4})

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if g.Status() != mines.Lost {
		t.Skipf("random solver survived seed 11 (status %v)", g.Status())
	}
	moves := g.Moves()
	res, err := d.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if res.Moved || g.Moves() != moves {
		t.Error("Step after a loss changed the game")
	}
	if d.Reason() != ReasonLost {
		t.Errorf("reason = %v, want lost", d.Reason())
	}
}

func TestStopBeforeRun(t *testing.T) {
	g := newGame(t, 8, 8, 0.15, 1)
	d := New(g, solver.NewProbability(), Options{})
	d.Stop()
	d.Stop()

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if d.Reason() != ReasonCancelled {
		t.Errorf("reason = %v, want cancelled", d.Reason())
	}
	if g.Status() != mines.AwaitingFirstMove {
		t.Errorf("status = %v, want no moves", g.Status())
	}
}

func TestCancelledContext(t *testing.T) {
	g := newGame(t, 8, 8, 0.15, 1)
	d := New(g, solver.NewProbability(), Options{Delay: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := d.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run error = %v, want context.Canceled", err)
	}
	if d.State() != Stopped || d.Reason() != ReasonCancelled {
		t.Errorf("state %v reason %v", d.State(), d.Reason())
	}
}

func TestStopWhileRunning(t *testing.T) {
	g := newGame(t, 40, 30, 0.15, 9)
	d := New(g, solver.NewProbability(), Options{Delay: time.Hour})

	done := make(chan error, 1)
	go func() { done <- d.Run(context.Background()) }()
	time.Sleep(10 * time.Millisecond)
	d.Stop()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Stop")
	}
	if d.State() != Stopped {
		t.Errorf("state = %v", d.State())
	}
}

func TestStepIsNoOpBeforeStart(t *testing.T) {
	g := newGame(t, 5, 5, 0.1, 1)
	s := &scriptedSolver{moves: []core.Point{core.Pt(0, 0)}}
	d := New(g, s, Options{})

	res, err := d.Step()
	if err != nil {
		t.Fatal(err)
	}
	if res.Moved || s.calls != 0 {
		t.Error("Step ran before Start")
	}
}
