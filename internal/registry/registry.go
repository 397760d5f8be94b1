// Package registry provides a global registry for solver factories.
// Solvers register themselves in init() functions, allowing the game and
// the CLI to discover and instantiate them by name.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/board"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrUnknownSolver is returned by Create for names nobody registered.
var ErrUnknownSolver = errors.New("registry: unknown solver")

// Solver is the interface every autopilot implements.
// Solvers contain pure logic with no external dependencies.
type Solver interface {
	// Name returns the registered name (e.g., "greedy", "hamilton").
	Name() string

	// NextDirec returns the direction for the next move.
	// DirecNone leaves the snake's buffered direction in charge.
	NextDirec() core.Direc
}

// Options carries per-game solver settings from configuration.
type Options struct {
	NoShortcuts bool // Disable Hamilton shortcuts
}

// SolverInfo contains metadata about a registered solver.
type SolverInfo struct {
	Name        string
	Description string
}

// Factory creates a solver bound to s.
type Factory func(s *board.Snake, rng core.Rand, opts Options) (Solver, error)

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a solver factory to the registry.
// Typically called from an init() function.
// Panics if a solver with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: solver %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = description
}

// List returns information about all registered solvers, sorted by name.
func List() []SolverInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SolverInfo, 0, len(factories))
	for name := range factories {
		result = append(result, SolverInfo{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a solver by name for snake s.
func Create(name string, s *board.Snake, rng core.Rand, opts Options) (Solver, error) {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownSolver, name)
	}

	return f(s, rng, opts)
}

// Exists checks if a solver with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
