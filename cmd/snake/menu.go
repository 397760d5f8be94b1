package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick solvers from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a solver, Tab for the
results screen. Leaving a game with Esc returns to the menu.

Examples:
  snake menu
  snake menu --rows 16 --cols 16 --speed fast`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fatal("%v", err)
	}
	logger := newLogger("snake")

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open episodes database", "error", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	rc := runtimeConfig()
	for {
		menuResult, err := tui.RunMenu(rc, cfg.Solver.Name)
		if err != nil {
			logger.Error("menu failed", "error", err)
			return
		}
		rc = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsResults {
			goBack, resErr := tui.RunResults(store, rc.ScreenW, rc.ScreenH)
			if resErr != nil {
				logger.Error("results screen failed", "error", resErr)
			}
			if goBack {
				continue
			}
			return
		}

		cfg.Solver.Name = menuResult.Solver
		if flagSeed == 0 {
			rc.Seed = time.Now().UnixNano()
		}

		goBack, runErr := tui.Run(game.New(cfg), store, rc)
		if runErr != nil {
			logger.Error("game failed", "solver", cfg.Solver.Name, "error", runErr)
			continue
		}
		if !goBack {
			return
		}
	}
}
