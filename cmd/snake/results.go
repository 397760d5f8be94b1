package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagPlain  bool
	flagLimit  int
	flagExport string
	flagImport string
	flagClear  bool
)

var resultsCmd = &cobra.Command{
	Use:   "results [solver]",
	Short: "Show stored episodes",
	Long: `Display the best stored episodes. Without a solver argument an
interactive table over all solvers is shown; --plain prints a text table
instead. Longer snakes rank first, fewer steps break ties.

Examples:
  snake results
  snake results hamilton --plain
  snake results greedy --export ./greedy.parquet
  snake results --import ./greedy.parquet
  snake results greedy --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain text table")
	resultsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of episodes to show")
	resultsCmd.Flags().StringVar(&flagExport, "export", "", "Export the solver's episodes to a Parquet file")
	resultsCmd.Flags().StringVar(&flagImport, "import", "", "Load episodes from a Parquet file written by --export or bench --parquet")
	resultsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the solver's stored episodes")
}

func runResults(_ *cobra.Command, args []string) {
	solver := ""
	if len(args) == 1 {
		solver = args[0]
		if !registry.Exists(solver) {
			fatal("unknown solver %q, run 'snake list' to see available solvers", solver)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening episodes database: %v", err)
	}
	defer store.Close()

	switch {
	case flagImport != "":
		n, err := store.ImportEpisodesParquet(flagImport)
		if err != nil {
			fatal("importing %s: %v", flagImport, err)
		}
		fmt.Printf("Imported %d episodes from %s\n", n, flagImport)
	case flagExport != "":
		exportResults(store, solver)
	case flagClear:
		if solver == "" {
			fatal("--clear needs a solver")
		}
		if err := store.ClearEpisodes(solver); err != nil {
			fatal("%v", err)
		}
		fmt.Printf("Cleared episodes for %s.\n", solver)
	case flagPlain || solver != "":
		printResults(store, solver)
	default:
		rc := runtimeConfig()
		if _, err := tui.RunResults(store, rc.ScreenW, rc.ScreenH); err != nil {
			fatal("%v", err)
		}
	}
}

func exportResults(store *storage.Store, solver string) {
	episodes, err := store.AllEpisodes(solver)
	if err != nil {
		fatal("%v", err)
	}
	if err := storage.WriteEpisodesParquet(flagExport, episodes); err != nil {
		fatal("%v", err)
	}
	fmt.Printf("Wrote %d episodes to %s\n", len(episodes), flagExport)
}

func printResults(store *storage.Store, solver string) {
	solvers := []string{solver}
	if solver == "" {
		solvers = solvers[:0]
		for _, s := range registry.List() {
			solvers = append(solvers, s.Name)
		}
	}

	for _, name := range solvers {
		episodes, err := store.TopEpisodes(name, flagLimit)
		if err != nil {
			fatal("%v", err)
		}

		fmt.Printf("Results - %s\n", name)
		fmt.Println()
		if len(episodes) == 0 {
			fmt.Println("No episodes recorded yet.")
			fmt.Println()
			continue
		}

		fmt.Printf("  %-4s  %-7s  %-7s  %-10s  %-6s  %s\n", "Rank", "Length", "Steps", "Outcome", "Board", "Date")
		fmt.Printf("  %-4s  %-7s  %-7s  %-10s  %-6s  %s\n", "----", "------", "-----", "-------", "-----", "----")
		for i, e := range episodes {
			fmt.Printf("  %-4d  %-7d  %-7d  %-10s  %-6s  %s\n",
				i+1, e.Length, e.Steps, e.Outcome, fmt.Sprintf("%dx%d", e.Rows, e.Cols),
				e.CreatedAt.Format("2006-01-02 15:04"))
		}

		if stats, err := store.GetSolverStats(name); err == nil && stats.Episodes > 0 {
			fmt.Println()
			fmt.Printf("Episodes: %d  Full: %.1f%%  Avg length: %.1f  Best: %d\n",
				stats.Episodes, 100*stats.WinRate(), stats.AvgLength, stats.MaxLength)
		}
		fmt.Println()
	}
}
