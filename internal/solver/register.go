package solver

import (
	"github.com/vovakirdan/tui-snake/internal/board"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

func init() {
	registry.Register(NameGreedy, "Shortest path to food, checked by simulation",
		func(s *board.Snake, rng core.Rand, _ registry.Options) (registry.Solver, error) {
			gs, err := NewGreedySolver(s, rng)
			if err != nil {
				return nil, err
			}
			return gs, nil
		})
	registry.Register(NameHamilton, "Hamiltonian cycle with shortcuts",
		func(s *board.Snake, rng core.Rand, opts registry.Options) (registry.Solver, error) {
			return newHamilton(s, rng, !opts.NoShortcuts)
		})
	registry.Register(NameHamiltonCycle, "Hamiltonian cycle, no shortcuts",
		func(s *board.Snake, rng core.Rand, _ registry.Options) (registry.Solver, error) {
			return newHamilton(s, rng, false)
		})
	registry.Register(NameManual, "Keyboard control",
		func(*board.Snake, core.Rand, registry.Options) (registry.Solver, error) {
			return ManualSolver{}, nil
		})
}

func newHamilton(s *board.Snake, rng core.Rand, shortcuts bool) (registry.Solver, error) {
	hs, err := NewHamiltonSolver(s, rng, shortcuts)
	if err != nil {
		return nil, err
	}
	return hs, nil
}
