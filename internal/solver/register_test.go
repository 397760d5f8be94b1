package solver

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

func TestRegisteredSolvers(t *testing.T) {
	tests := []struct {
		name string
		opts registry.Options
		want string
	}{
		{NameGreedy, registry.Options{}, NameGreedy},
		{NameHamilton, registry.Options{}, NameHamilton},
		{NameHamilton, registry.Options{NoShortcuts: true}, NameHamiltonCycle},
		{NameHamiltonCycle, registry.Options{}, NameHamiltonCycle},
		{NameManual, registry.Options{}, NameManual},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newSnake(t, 8, 8, core.DirecRight, core.P(1, 2), core.P(1, 1))
			sv, err := registry.Create(tt.name, s, core.NewRand(1), tt.opts)
			if err != nil {
				t.Fatalf("Create(%q) error: %v", tt.name, err)
			}
			if sv.Name() != tt.want {
				t.Errorf("Name() = %q, expected %q", sv.Name(), tt.want)
			}
		})
	}
}

func TestManualSolverDefersToDriver(t *testing.T) {
	s, _ := newSnake(t, 7, 7, core.DirecRight, core.P(2, 3), core.P(2, 2))
	s.SetDirecNext(core.DirecDown)
	s.Move(ManualSolver{}.NextDirec())
	if s.Head() != core.P(3, 3) {
		t.Errorf("head = %v, expected Pos(3,3) from the buffered direction", s.Head())
	}
}
