package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available solvers",
	Long:  `Shows a list of all autopilots registered with the game.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	solvers := registry.List()

	if len(solvers) == 0 {
		fmt.Println("No solvers available.")
		return
	}

	fmt.Println("Available solvers:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, s := range solvers {
		maxNameLen = max(maxNameLen, len(s.Name))
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")
	for _, s := range solvers {
		fmt.Printf("  %-*s  %s\n", maxNameLen, s.Name, s.Description)
	}

	fmt.Println()
	fmt.Println("Run 'snake play --solver <name>' to watch one.")
}
