package main

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

func testBenchOptions() benchOptions {
	return benchOptions{
		Games:    12,
		Parallel: 4,
		Width:    9,
		Height:   9,
		Density:  0.12,
		Solver:   "probability",
		Seed:     100,
	}
}

func TestRunBenchPlaysEveryBoard(t *testing.T) {
	results, err := runBench(context.Background(), testBenchOptions())
	if err != nil {
		t.Fatalf("runBench: %v", err)
	}
	if len(results) != 12 {
		t.Fatalf("got %d results, want 12", len(results))
	}
	for i, r := range results {
		if r.Seed != 100+int64(i) {
			t.Errorf("result %d seed = %d", i, r.Seed)
		}
		if r.Outcome != storage.OutcomeWon && r.Outcome != storage.OutcomeLost {
			t.Errorf("result %d outcome = %q", i, r.Outcome)
		}
		if r.Mode != storage.ModeBench || r.Solver != "probability" {
			t.Errorf("result %d = %+v", i, r)
		}
	}

	sum := summarize(results)
	if sum.Games != 12 || sum.Wins+sum.Losses != 12 {
		t.Errorf("summary = %+v", sum)
	}
}

func TestRunBenchIsReproducible(t *testing.T) {
	a, err := runBench(context.Background(), testBenchOptions())
	if err != nil {
		t.Fatal(err)
	}
	opts := testBenchOptions()
	opts.Parallel = 1
	b, err := runBench(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i].Outcome != b[i].Outcome || a[i].Revealed != b[i].Revealed || a[i].Moves != b[i].Moves {
			t.Errorf("board %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestRunBenchUnknownSolver(t *testing.T) {
	opts := testBenchOptions()
	opts.Solver = "nope"
	if _, err := runBench(context.Background(), opts); err == nil {
		t.Error("expected error for unknown solver")
	}
}

func TestRunBenchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := runBench(ctx, testBenchOptions())
	if !errors.Is(err, context.Canceled) && err != nil {
		t.Fatalf("err = %v", err)
	}
	if sum := summarize(results); sum.Games != 0 {
		t.Errorf("cancelled bench played %d boards", sum.Games)
	}
}

func TestSummarizeSkipsUnplayed(t *testing.T) {
	results := []storage.Result{
		{Outcome: storage.OutcomeWon, Revealed: 10, Moves: 4},
		{},
		{Outcome: storage.OutcomeLost, Revealed: 2, Moves: 2},
		{Outcome: storage.OutcomeAbandoned, Revealed: 1, Moves: 1},
	}
	sum := summarize(results)
	want := benchSummary{Games: 3, Wins: 1, Losses: 1, Abandoned: 1, Revealed: 13, Moves: 7}
	if sum != want {
		t.Errorf("summarize = %+v, want %+v", sum, want)
	}
}
