// sweeper is a terminal minesweeper with a probability-driven autoplay bot.
//
// Usage:
//
//	sweeper play             - Play a board yourself (toggle the bot with 'a')
//	sweeper auto             - Watch the solver play, restarting after each loss
//	sweeper menu             - Start menu: play, watch, stats
//	sweeper bench            - Run many headless games and report the win rate
//	sweeper stats            - Show recorded results
//	sweeper solvers          - List available solvers
//
// Global flags:
//
//	--config <path>  - Config file (default search: ~/.sweeper, ./configs, built-in)
//	--seed <value>   - RNG seed for reproducible boards
//	--db <path>      - Results database (default: ~/.sweeper/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import solvers to register them
	_ "github.com/vovakirdan/tui-sweeper/internal/solver"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
	flagColumns  int
	flagRows     int
	flagDensity  float64
	flagDelay    string
	flagSolver   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sweeper",
	Short: "Sweeper - minesweeper in your terminal, with a bot that plays it",
	Long: `Sweeper is a terminal minesweeper. Every board is safe on the first
click, and a probability solver can take over and play it for you.

Available commands:
  play     - Play a board yourself
  auto     - Watch the solver play
  menu     - Interactive start menu
  bench    - Headless batch of solver games
  stats    - Recorded results
  solvers  - Available solvers

Examples:
  sweeper play
  sweeper auto --delay 50ms --density 0.2
  sweeper bench --games 500 --parallel 8
  sweeper stats --solver probability`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to sweeper.yaml")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "", "Path to results database (overrides storage.path)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Log file (default: ~/.sweeper/sweeper.log for TUI commands, stderr otherwise)")
	pf.IntVar(&flagColumns, "columns", 0, "Board columns (overrides board.columns)")
	pf.IntVar(&flagRows, "rows", 0, "Board rows, 0 = fill the terminal (overrides board.rows)")
	pf.Float64Var(&flagDensity, "density", 0, "Mine density in [0, 1) (overrides board.mine_density)")
	pf.StringVar(&flagDelay, "delay", "", "Pause between bot moves, e.g. 100ms (overrides autoplay.move_delay)")
	pf.StringVar(&flagSolver, "solver", "", "Solver name (overrides autoplay.solver)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(autoCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(solversCmd)
}
