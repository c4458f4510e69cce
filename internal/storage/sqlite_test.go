package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func result(solver, outcome string, revealed int) Result {
	return Result{
		Seed:     42,
		Width:    40,
		Height:   20,
		Mines:    120,
		Solver:   solver,
		Mode:     ModeAuto,
		Outcome:  outcome,
		Moves:    revealed / 2,
		Revealed: revealed,
		Duration: 1500 * time.Millisecond,
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("Open(\"\") should fail")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	want := result("probability", OutcomeWon, 680)
	id, err := store.SaveResult(want)
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive ID, got %d", id)
	}

	results, err := store.RecentResults("", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}

	got := results[0]
	if got.ID != id {
		t.Errorf("ID = %d, want %d", got.ID, id)
	}
	got.ID, got.CreatedAt = 0, time.Time{}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestStoreRecentResultsOrderAndFilter(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		if _, err := store.SaveResult(result("probability", OutcomeLost, i)); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := store.SaveResult(result("random", OutcomeLost, 99)); err != nil {
		t.Fatal(err)
	}

	results, err := store.RecentResults("probability", 3)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Solver != "probability" {
			t.Errorf("result %d solver = %q", i, r.Solver)
		}
		if want := 4 - i; r.Revealed != want {
			t.Errorf("result %d revealed = %d, want %d (newest first)", i, r.Revealed, want)
		}
	}

	all, err := store.RecentResults("", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 6 || all[0].Solver != "random" {
		t.Errorf("unfiltered results = %d, first solver %q", len(all), all[0].Solver)
	}
}

func TestStoreSummary(t *testing.T) {
	store := openTestStore(t)

	saves := []Result{
		result("probability", OutcomeWon, 100),
		result("probability", OutcomeLost, 50),
		result("probability", OutcomeLost, 30),
		result("random", OutcomeLost, 2),
	}
	for _, r := range saves {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatal(err)
		}
	}

	sum, err := store.Summary("probability")
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if sum.Games != 3 || sum.Wins != 1 || sum.Losses != 2 {
		t.Errorf("summary = %+v", sum)
	}
	if sum.AvgRevealed != 60 {
		t.Errorf("AvgRevealed = %v, want 60", sum.AvgRevealed)
	}
	if rate := sum.WinRate(); rate < 0.333 || rate > 0.334 {
		t.Errorf("WinRate = %v", rate)
	}

	all, err := store.Summary("")
	if err != nil {
		t.Fatal(err)
	}
	if all.Games != 4 || all.Losses != 3 {
		t.Errorf("overall summary = %+v", all)
	}
}

func TestStoreSummaryEmpty(t *testing.T) {
	store := openTestStore(t)

	sum, err := store.Summary("nobody")
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if sum.Games != 0 || sum.WinRate() != 0 || !sum.LastPlayed.IsZero() {
		t.Errorf("empty summary = %+v", sum)
	}
}

func TestStoreSolverSummaries(t *testing.T) {
	store := openTestStore(t)

	human := result("", OutcomeWon, 10)
	human.Mode = ModePlay
	for _, r := range []Result{
		result("random", OutcomeLost, 1),
		result("probability", OutcomeWon, 10),
		human,
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatal(err)
		}
	}

	sums, err := store.SolverSummaries()
	if err != nil {
		t.Fatalf("SolverSummaries() failed: %v", err)
	}
	names := make([]string, len(sums))
	for i, s := range sums {
		names[i] = s.Solver
	}
	want := []string{"", "probability", "random"}
	if len(names) != len(want) {
		t.Fatalf("solvers = %q, want %q", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("solvers = %q, want %q", names, want)
			break
		}
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	for _, name := range []string{"probability", "probability", "random"} {
		if _, err := store.SaveResult(result(name, OutcomeLost, 1)); err != nil {
			t.Fatal(err)
		}
	}

	if err := store.ClearResults("probability"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}
	sum, _ := store.Summary("probability")
	if sum.Games != 0 {
		t.Errorf("Expected 0 probability games after clear, got %d", sum.Games)
	}
	sum, _ = store.Summary("random")
	if sum.Games != 1 {
		t.Errorf("Other solvers should be untouched, got %d games", sum.Games)
	}

	if err := store.ClearResults(""); err != nil {
		t.Fatal(err)
	}
	sum, _ = store.Summary("")
	if sum.Games != 0 {
		t.Errorf("Expected empty log, got %d games", sum.Games)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.sweeper/results.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".sweeper", "results.db")); err != nil {
		t.Errorf("Database not created under home: %v", err)
	}
}
