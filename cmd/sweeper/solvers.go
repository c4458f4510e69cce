package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/registry"
)

var solversCmd = &cobra.Command{
	Use:   "solvers",
	Short: "List all available solvers",
	Long:  `Shows a list of all solvers registered for autoplay.`,
	Args:  cobra.NoArgs,
	Run:   runSolvers,
}

func runSolvers(_ *cobra.Command, _ []string) {
	solvers := registry.List()

	if len(solvers) == 0 {
		fmt.Println("No solvers available.")
		return
	}

	fmt.Println("Available solvers:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, s := range solvers {
		if len(s.Name) > maxNameLen {
			maxNameLen = len(s.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, s := range solvers {
		fmt.Printf("  %-*s  %s\n", maxNameLen, s.Name, s.Description)
	}

	fmt.Println()
	fmt.Println("Run 'sweeper auto --solver <name>' to watch one play.")
}
