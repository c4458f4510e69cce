package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-sweeper/internal/autoplay"
	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/mines"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

var (
	flagBenchGames    int
	flagBenchParallel int
	flagBenchNoSave   bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run many headless solver games",
	Long: `Play a batch of boards with the solver and no display, then print the
win rate. Board i uses seed (--seed + i), so a batch is reproducible.
Results are recorded in the results database unless --no-save is given.

Rows default to 20 when board.rows is 0, since there is no terminal to fill.

Examples:
  sweeper bench
  sweeper bench --games 1000 --parallel 8 --seed 1
  sweeper bench --solver random --density 0.1`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		exitOnError(runBenchCmd(cmd))
	},
}

func init() {
	benchCmd.Flags().IntVar(&flagBenchGames, "games", 100, "Number of boards to play")
	benchCmd.Flags().IntVar(&flagBenchParallel, "parallel", runtime.NumCPU(), "Boards played concurrently")
	benchCmd.Flags().BoolVar(&flagBenchNoSave, "no-save", false, "Do not record results")
}

// benchOptions describes one batch.
type benchOptions struct {
	Games    int
	Parallel int
	Width    int
	Height   int
	Density  float64
	Solver   string
	Seed     int64
	Logger   *log.Logger
}

// benchSummary aggregates a batch.
type benchSummary struct {
	Games     int
	Wins      int
	Losses    int
	Abandoned int
	Revealed  int
	Moves     int
}

func runBenchCmd(cmd *cobra.Command) error {
	if flagBenchGames <= 0 {
		return fmt.Errorf("--games must be positive, got %d", flagBenchGames)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, cleanup, err := newLogger(false)
	if err != nil {
		return err
	}
	defer cleanup()

	opts := benchOptions{
		Games:    flagBenchGames,
		Parallel: max(flagBenchParallel, 1),
		Width:    cfg.Board.Columns,
		Height:   cfg.Board.Rows,
		Density:  cfg.Board.MineDensity,
		Solver:   cfg.Autoplay.Solver,
		Seed:     flagSeed,
		Logger:   logger,
	}
	if opts.Height == 0 {
		opts.Height = core.DefaultConfig().Rows
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("bench started",
		"games", opts.Games,
		"parallel", opts.Parallel,
		"board", fmt.Sprintf("%dx%d", opts.Width, opts.Height),
		"density", opts.Density,
		"solver", opts.Solver,
		"seed", opts.Seed,
	)
	start := time.Now()
	results, err := runBench(ctx, opts)
	elapsed := time.Since(start)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	sum := summarize(results)
	printBenchSummary(opts, sum, elapsed)

	if flagBenchNoSave {
		return nil
	}
	store := openStore(cfg, logger)
	if store == nil {
		return nil
	}
	defer store.Close()
	saved := 0
	for _, r := range results {
		if r.Outcome != storage.OutcomeWon && r.Outcome != storage.OutcomeLost {
			continue
		}
		if _, err := store.SaveResult(r); err != nil {
			return err
		}
		saved++
	}
	logger.Info("results recorded", "count", saved)
	return nil
}

// runBench plays opts.Games boards, at most opts.Parallel at a time.
// Boards not played because of cancellation are left zero-valued.
func runBench(ctx context.Context, opts benchOptions) ([]storage.Result, error) {
	if !registry.Exists(opts.Solver) {
		return nil, fmt.Errorf("unknown solver %q", opts.Solver)
	}

	results := make([]storage.Result, opts.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallel)

	for i := range opts.Games {
		if ctx.Err() != nil {
			break
		}
		seed := opts.Seed + int64(i)
		g.Go(func() error {
			r, err := playHeadless(ctx, opts, seed)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	err := g.Wait()
	return results, err
}

// playHeadless plays one board to the end with no pacing.
func playHeadless(ctx context.Context, opts benchOptions, seed int64) (storage.Result, error) {
	game, err := mines.NewGame(mines.Params{
		Width:   opts.Width,
		Height:  opts.Height,
		Density: opts.Density,
		Seed:    seed,
	})
	if err != nil {
		return storage.Result{}, err
	}
	s, err := registry.Create(opts.Solver, seed)
	if err != nil {
		return storage.Result{}, err
	}

	logger := opts.Logger
	if logger != nil {
		logger = logger.With("seed", seed)
	}
	d := autoplay.New(game, s, autoplay.Options{Seed: seed, Logger: logger})

	start := time.Now()
	if err := d.Run(ctx); err != nil {
		return storage.Result{}, err
	}

	outcome := storage.OutcomeAbandoned
	switch d.Reason() {
	case autoplay.ReasonWon:
		outcome = storage.OutcomeWon
	case autoplay.ReasonLost:
		outcome = storage.OutcomeLost
	}
	return storage.Result{
		Seed:     seed,
		Width:    game.Width(),
		Height:   game.Height(),
		Mines:    game.Mines(),
		Solver:   opts.Solver,
		Mode:     storage.ModeBench,
		Outcome:  outcome,
		Moves:    game.Moves(),
		Revealed: game.RevealedCount(),
		Duration: time.Since(start),
	}, nil
}

func summarize(results []storage.Result) benchSummary {
	var sum benchSummary
	for _, r := range results {
		switch r.Outcome {
		case storage.OutcomeWon:
			sum.Wins++
		case storage.OutcomeLost:
			sum.Losses++
		case storage.OutcomeAbandoned:
			sum.Abandoned++
		default:
			continue // not played
		}
		sum.Games++
		sum.Revealed += r.Revealed
		sum.Moves += r.Moves
	}
	return sum
}

func printBenchSummary(opts benchOptions, sum benchSummary, elapsed time.Duration) {
	fmt.Printf("Solver:     %s\n", opts.Solver)
	fmt.Printf("Board:      %dx%d, density %.2f, %d mines\n",
		opts.Width, opts.Height, opts.Density, mines.MineCount(opts.Density, opts.Width, opts.Height))
	fmt.Printf("Games:      %d of %d\n", sum.Games, opts.Games)
	if sum.Games == 0 {
		return
	}
	fmt.Printf("Won:        %d (%.1f%%)\n", sum.Wins, 100*float64(sum.Wins)/float64(sum.Games))
	fmt.Printf("Lost:       %d\n", sum.Losses)
	if sum.Abandoned > 0 {
		fmt.Printf("Abandoned:  %d\n", sum.Abandoned)
	}
	fmt.Printf("Avg open:   %.1f cells\n", float64(sum.Revealed)/float64(sum.Games))
	fmt.Printf("Avg moves:  %.1f\n", float64(sum.Moves)/float64(sum.Games))
	fmt.Printf("Elapsed:    %s\n", elapsed.Round(time.Millisecond))
}
