// Package autoplay drives a game to completion by repeatedly asking a
// solver for a move and applying it, one move per pacing interval.
package autoplay

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/mines"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
)

// State is the lifecycle of a driver.
type State int

const (
	NotStarted State = iota
	Running
	Stopped
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Reason explains why a driver stopped.
type Reason int

const (
	ReasonNone      Reason = iota
	ReasonLost             // a mine exploded
	ReasonWon              // every safe cell is open
	ReasonCancelled        // Stop or context cancellation
	ReasonNoMove           // the solver found nothing to open
)

// String returns a human-readable name for the reason.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonLost:
		return "lost"
	case ReasonWon:
		return "won"
	case ReasonCancelled:
		return "cancelled"
	case ReasonNoMove:
		return "no move"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// DefaultDelay is the pause between two moves.
const DefaultDelay = 100 * time.Millisecond

// Options configures a driver.
type Options struct {
	// Delay between moves in Run. Zero means no pause.
	Delay time.Duration
	// Seed for the opening random reveal.
	Seed int64
	// Logger receives per-move debug lines and terminal events. Nil discards.
	Logger *log.Logger
}

// StepResult describes one driver iteration.
type StepResult struct {
	Move    core.Move
	Moved   bool
	Changes []mines.Change
}

// Driver plays one game. All methods except Stop must be called from the
// goroutine that drives it.
type Driver struct {
	game   *mines.Game
	solver registry.Solver
	rng    *rand.Rand
	delay  time.Duration
	logger *log.Logger

	state  State
	reason Reason
	last   core.Move
	moved  bool

	stopCh   chan struct{}
	stopOnce sync.Once
}

// New creates a driver for game using solver.
func New(game *mines.Game, solver registry.Solver, opts Options) *Driver {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Driver{
		game:   game,
		solver: solver,
		rng:    rand.New(rand.NewSource(opts.Seed)),
		delay:  opts.Delay,
		logger: logger,
		stopCh: make(chan struct{}),
	}
}

// State returns the lifecycle state.
func (d *Driver) State() State { return d.state }

// Reason returns why the driver stopped, or ReasonNone.
func (d *Driver) Reason() Reason { return d.reason }

// LastMove returns the most recent solver move, if the solver has moved.
func (d *Driver) LastMove() (core.Move, bool) { return d.last, d.moved }

// Game returns the driven game.
func (d *Driver) Game() *mines.Game { return d.game }

// Stop asks the driver to halt before its next iteration. It is safe to
// call from any goroutine and more than once.
func (d *Driver) Stop() {
	d.stopOnce.Do(func() { close(d.stopCh) })
}

func (d *Driver) stopRequested() bool {
	select {
	case <-d.stopCh:
		return true
	default:
		return false
	}
}

func (d *Driver) halt(r Reason) {
	if d.state == Stopped {
		return
	}
	d.state = Stopped
	d.reason = r
	d.logger.Info("autoplay stopped",
		"reason", r,
		"status", d.game.Status(),
		"moves", d.game.Moves(),
		"revealed", d.game.RevealedCount(),
	)
}

// checkOver stops the driver if the game has ended.
func (d *Driver) checkOver() bool {
	switch d.game.Status() {
	case mines.Lost:
		d.halt(ReasonLost)
		return true
	case mines.Won:
		d.halt(ReasonWon)
		return true
	}
	return false
}

// Start moves the driver to Running. If the game has not had its first
// move, one uniformly random cell is opened to seed the board.
func (d *Driver) Start() ([]mines.Change, error) {
	if d.state != NotStarted {
		return nil, nil
	}
	if d.stopRequested() {
		d.halt(ReasonCancelled)
		return nil, nil
	}
	d.state = Running
	d.logger.Debug("autoplay started",
		"solver", d.solver.Name(),
		"width", d.game.Width(),
		"height", d.game.Height(),
	)

	var changes []mines.Change
	if d.game.Status() == mines.AwaitingFirstMove {
		p := core.Pt(d.rng.Intn(d.game.Width()), d.rng.Intn(d.game.Height()))
		var err error
		changes, err = d.game.OnFirstInteraction(p)
		if err != nil {
			return changes, fmt.Errorf("autoplay: opening move %v: %w", p, err)
		}
		d.logger.Debug("opening move", "x", p.X, "y", p.Y, "opened", len(changes), "mines", d.game.Mines())
	}
	d.checkOver()
	return changes, nil
}

// Step performs one iteration: ask the solver, open its cell. It is a
// no-op unless the driver is Running.
func (d *Driver) Step() (StepResult, error) {
	if d.state != Running {
		return StepResult{}, nil
	}
	if d.stopRequested() {
		d.halt(ReasonCancelled)
		return StepResult{}, nil
	}
	if d.checkOver() {
		return StepResult{}, nil
	}

	m, ok := d.solver.Next(d.game)
	if !ok {
		d.halt(ReasonNoMove)
		return StepResult{}, nil
	}
	d.last, d.moved = m, true

	changes, err := d.game.Reveal(m.Point)
	if err != nil {
		d.halt(ReasonCancelled)
		return StepResult{Move: m}, fmt.Errorf("autoplay: reveal %v: %w", m.Point, err)
	}
	d.logger.Debug("move", "x", m.Point.X, "y", m.Point.Y, "score", m.Score, "opened", len(changes))

	d.checkOver()
	return StepResult{Move: m, Moved: true, Changes: changes}, nil
}

// Run starts the driver if needed and steps until the game ends, Stop is
// called or ctx is done, pausing Delay between moves. Cancellation through
// ctx returns ctx.Err(); every other ending returns nil.
func (d *Driver) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		d.halt(ReasonCancelled)
		return err
	}
	if _, err := d.Start(); err != nil {
		return err
	}

	var tick <-chan time.Time
	if d.delay > 0 {
		ticker := time.NewTicker(d.delay)
		defer ticker.Stop()
		tick = ticker.C
	}

	for d.state == Running {
		if tick != nil {
			select {
			case <-ctx.Done():
				d.halt(ReasonCancelled)
				return ctx.Err()
			case <-d.stopCh:
				d.halt(ReasonCancelled)
				return nil
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			d.halt(ReasonCancelled)
			return err
		}

		if _, err := d.Step(); err != nil {
			return err
		}
	}
	return nil
}
