// Package solver contains the autopilots that pick the snake's next
// direction: a BFS path solver, a Hamiltonian-cycle follower and a greedy
// solver that simulates before it commits.
//
// Solvers read the live map and never write to it except for the
// transient destination override inside PathSolver, which is always
// restored before a call returns.
package solver

import (
	"errors"

	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Solver picks the next direction for the snake it was built for.
type Solver = registry.Solver

// Configuration errors.
var (
	ErrOddMap   = errors.New("solver: hamilton cycle needs an even interior")
	ErrNoCycle  = errors.New("solver: could not build a cycle covering the map")
	ErrNilSnake = errors.New("solver: snake is nil")
)

// Registered solver names.
const (
	NameGreedy        = "greedy"
	NameHamilton      = "hamilton"
	NameHamiltonCycle = "hamilton-cycle"
	NameManual        = "manual"
)
