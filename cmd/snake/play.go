package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Watch a solver play one board",
	Long: `Start a game driven by the configured solver.

Controls:
  Space/P        - Pause
  R              - Restart (after the episode ends)
  +/-            - Faster/slower
  WASD/Arrows    - Steer (manual solver)
  Esc/B          - Leave the game
  Q/Ctrl+C       - Quit
  Ctrl+S         - Save a text screenshot

Examples:
  snake play
  snake play --solver greedy --speed fast
  snake play --solver hamilton --no-shortcuts
  snake play --solver manual --rows 12 --cols 20
  snake play --config ./my-snake.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fatal("%v", err)
	}
	logger := newLogger("snake")

	// Open episode storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open episodes database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	rc := runtimeConfig()
	logger.Debug("starting game", "solver", cfg.Solver.Name, "rows", cfg.Map.Rows, "cols", cfg.Map.Cols, "seed", rc.Seed)

	_, runErr := tui.Run(game.New(cfg), store, rc)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fatal("running game: %v", runErr)
	}
}

// runtimeConfig builds the runtime config from the terminal size and --seed.
func runtimeConfig() core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.Seed = flagSeed
	return rc
}
