// snake is a terminal snake game driven by path-finding autopilots.
//
// Usage:
//
//	snake list              - List available solvers
//	snake play              - Watch (or play) one game
//	snake menu              - Pick solvers interactively
//	snake bench             - Run headless episodes and report statistics
//	snake results           - Show stored episodes
//	snake serve             - Start SSH server for remote viewers
//
// Global flags:
//
//	--config <path> - Game config YAML (default: search paths, then built-in)
//	--seed <value>  - Set RNG seed for reproducible games
//	--db <path>     - Set database path (default: ~/.snake/episodes.db)
//	--verbose       - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/registry"
	_ "github.com/vovakirdan/tui-snake/internal/solver" // registers solvers
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagDBPath  string
	flagVerbose bool

	// Game overrides shared by play, menu, bench and serve
	flagSolver      string
	flagRows        int
	flagCols        int
	flagNoShortcuts bool
	flagSpeed       string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake autopilot - watch path-finding solvers play snake in your terminal",
	Long: `Snake runs the classic snake game in your terminal, driven by one of
several autopilots: a greedy path finder, a Hamiltonian cycle follower
with shortcuts, or your own keyboard.

Available commands:
  list     - Show all available solvers
  play     - Watch a solver play one board
  menu     - Interactive solver picker
  bench    - Run many headless episodes
  results  - View stored episodes
  serve    - Start SSH server for remote viewers

Examples:
  snake list
  snake play --solver greedy
  snake play --solver manual --rows 12 --cols 20
  snake bench --solver hamilton --episodes 200 --workers 8
  snake results hamilton`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/episodes.db", "Path to episodes database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	for _, c := range []*cobra.Command{playCmd, menuCmd, benchCmd, serveCmd} {
		c.Flags().StringVar(&flagSolver, "solver", "", "Solver name (see 'snake list')")
		c.Flags().IntVar(&flagRows, "rows", 0, "Board interior rows")
		c.Flags().IntVar(&flagCols, "cols", 0, "Board interior columns")
		c.Flags().BoolVar(&flagNoShortcuts, "no-shortcuts", false, "Disable Hamilton shortcuts")
		c.Flags().StringVar(&flagSpeed, "speed", "", "Speed preset: slow, normal, fast, turbo")
	}

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger returns a stderr logger honoring --verbose.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadGameConfig loads the config file and applies command-line overrides.
func loadGameConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagSolver != "" {
		cfg.Solver.Name = flagSolver
	}
	if flagRows > 0 {
		cfg.Map.Rows = flagRows
	}
	if flagCols > 0 {
		cfg.Map.Cols = flagCols
	}
	if flagRows > 0 || flagCols > 0 {
		// Configured bodies may not fit a resized board.
		cfg.Snake.Bodies = nil
	}
	if flagNoShortcuts {
		cfg.Solver.Shortcuts = false
	}
	if flagSpeed != "" {
		if err := config.ApplySpeedPreset(&cfg, config.SpeedPreset(flagSpeed)); err != nil {
			return cfg, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if !registry.Exists(cfg.Solver.Name) {
		return cfg, fmt.Errorf("unknown solver %q, run 'snake list' to see available solvers", cfg.Solver.Name)
	}
	return cfg, nil
}

// fatal prints an error and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
