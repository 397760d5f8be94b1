package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/bench"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagEpisodes int
	flagWorkers  int
	flagParquet  string
	flagNoStore  bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run headless episodes and report statistics",
	Long: `Play many independent episodes without a UI and summarise how the
solver did. Episode i is seeded with --seed + i, so a run is reproducible
regardless of --workers. Episodes without a step limit are capped to keep
tail-chasing solvers from running forever.

Results are stored in the episodes database unless --no-store is given,
and can be exported to a Parquet file with --parquet.

Examples:
  snake bench --solver greedy --episodes 100
  snake bench --solver hamilton --rows 20 --cols 20 --workers 8
  snake bench --solver hamilton-cycle --parquet ./episodes.parquet`,
	Args: cobra.NoArgs,
	Run:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagEpisodes, "episodes", 0, "Number of episodes (default from config)")
	benchCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Parallel workers (default from config)")
	benchCmd.Flags().StringVar(&flagParquet, "parquet", "", "Write this run's episodes to a Parquet file")
	benchCmd.Flags().BoolVar(&flagNoStore, "no-store", false, "Do not save episodes to the database")
}

func runBench(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fatal("%v", err)
	}
	logger := newLogger("bench")

	opts := bench.Options{
		Episodes: flagEpisodes,
		Workers:  flagWorkers,
		Seed:     flagSeed,
		Logger:   logger,
	}

	if !flagNoStore {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fatal("opening episodes database: %v", err)
		}
		defer store.Close()
		opts.Recorder = store
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sum, err := bench.Run(ctx, cfg, opts)
	if err != nil {
		logger.Error("benchmark failed", "error", err)
		return
	}

	fmt.Printf("Solver %s on %dx%d, %d episodes in %s\n",
		sum.Solver, sum.Rows, sum.Cols, sum.Episodes, sum.Elapsed.Round(time.Millisecond))
	fmt.Println()
	fmt.Printf("  %-12s %d (%.1f%%)\n", "Full", sum.FullCount, 100*sum.WinRate())
	fmt.Printf("  %-12s %d\n", "Dead", sum.DeadCount)
	fmt.Printf("  %-12s %d\n", "Step limit", sum.StepLimitCount)
	fmt.Printf("  %-12s %.1f / %d\n", "Avg length", sum.AvgLength, sum.Rows*sum.Cols)
	fmt.Printf("  %-12s %d\n", "Max length", sum.MaxLength)
	fmt.Printf("  %-12s %.0f\n", "Avg steps", sum.AvgSteps)

	if flagParquet != "" {
		episodes := sum.Records()
		if err := storage.WriteEpisodesParquet(flagParquet, episodes); err != nil {
			logger.Error("parquet export failed", "error", err)
			return
		}
		logger.Info("wrote parquet", "path", flagParquet, "rows", len(episodes))
	}
}
