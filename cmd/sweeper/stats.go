package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

var (
	flagStatsRecent int
	flagStatsClear  bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recorded results",
	Long: `Display win rates per solver and the most recent finished games.
With --solver only that solver's games are shown (or cleared).

Examples:
  sweeper stats
  sweeper stats --solver probability --recent 20
  sweeper stats --solver random --clear`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		exitOnError(runStats(cmd))
	},
}

func init() {
	statsCmd.Flags().IntVar(&flagStatsRecent, "recent", 10, "Number of recent games to list")
	statsCmd.Flags().BoolVar(&flagStatsClear, "clear", false, "Delete the selected results")
}

func runStats(cmd *cobra.Command) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	path := cfg.Storage.Path
	if cmd.Flags().Changed("db") {
		path = flagDBPath
	}
	if path == "" {
		return errors.New("results log is disabled (set storage.path or --db)")
	}
	solver := ""
	if cmd.Flags().Changed("solver") {
		solver = flagSolver
	}

	store, err := storage.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagStatsClear {
		if err := store.ClearResults(solver); err != nil {
			return err
		}
		if solver == "" {
			fmt.Println("Cleared all results.")
		} else {
			fmt.Printf("Cleared results for %s.\n", solver)
		}
		return nil
	}

	var sums []storage.Summary
	if solver == "" {
		sums, err = store.SolverSummaries()
	} else {
		var s storage.Summary
		s, err = store.Summary(solver)
		sums = []storage.Summary{s}
	}
	if err != nil {
		return err
	}

	if len(sums) == 0 || (len(sums) == 1 && sums[0].Games == 0) {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Run 'sweeper auto' or 'sweeper bench' to record some!")
		return nil
	}

	fmt.Println("Win rates")
	fmt.Println()
	fmt.Printf("  %-12s  %6s  %6s  %6s  %7s  %8s\n", "Solver", "Games", "Won", "Lost", "Rate", "Avg open")
	fmt.Printf("  %-12s  %6s  %6s  %6s  %7s  %8s\n", "------", "-----", "---", "----", "----", "--------")
	for _, s := range sums {
		fmt.Printf("  %-12s  %6d  %6d  %6d  %6.1f%%  %8.1f\n",
			solverLabel(s.Solver), s.Games, s.Wins, s.Losses, 100*s.WinRate(), s.AvgRevealed)
	}

	recent, err := store.RecentResults(solver, flagStatsRecent)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("Recent games")
	fmt.Println()
	fmt.Printf("  %-16s  %-12s  %-5s  %-6s  %-7s  %6s  %6s\n", "Date", "Solver", "Mode", "Result", "Board", "Open", "Moves")
	for _, r := range recent {
		fmt.Printf("  %-16s  %-12s  %-5s  %-6s  %-7s  %6d  %6d\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			solverLabel(r.Solver),
			r.Mode,
			r.Outcome,
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			r.Revealed,
			r.Moves,
		)
	}
	return nil
}

func solverLabel(name string) string {
	if name == "" {
		return "human"
	}
	return name
}
