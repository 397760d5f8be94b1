package solver

import (
	"github.com/vovakirdan/tui-snake/internal/board"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// GreedySolver heads for the food only when a simulated run shows the
// snake can still reach its tail after eating. Otherwise it stalls by
// chasing its tail.
type GreedySolver struct {
	snake *board.Snake
	path  *PathSolver
}

// NewGreedySolver creates a greedy solver for s.
func NewGreedySolver(s *board.Snake, rng core.Rand) (*GreedySolver, error) {
	if s == nil {
		return nil, ErrNilSnake
	}
	return &GreedySolver{snake: s, path: NewPathSolver(s, rng)}, nil
}

// Name returns the registry name of the solver.
func (gs *GreedySolver) Name() string { return NameGreedy }

// NextDirec picks the next direction.
func (gs *GreedySolver) NextDirec() core.Direc {
	sim, simMap := gs.snake.Copy()

	gs.path.SetSnake(gs.snake)
	toFood := gs.path.ShortestPathToFood()
	if len(toFood) > 0 {
		sim.MovePath(toFood)
		if simMap.IsFull() {
			return toFood[0]
		}

		gs.path.SetSnake(sim)
		if len(gs.path.LongestPathToTail()) > 1 {
			gs.path.SetSnake(gs.snake)
			return toFood[0]
		}
	}

	gs.path.SetSnake(gs.snake)
	if toTail := gs.path.LongestPathToTail(); len(toTail) > 1 {
		return toTail[0]
	}

	return gs.farthestSafeDirec()
}

// farthestSafeDirec picks the safe neighbor farthest from the food. With
// no food any safe neighbor will do; with none safe the current direction
// is kept.
func (gs *GreedySolver) farthestSafeDirec() core.Direc {
	m := gs.snake.Map()
	head := gs.snake.Head()
	food, hasFood := m.Food()

	direc, maxDist := gs.snake.Direc(), -1
	for _, adj := range head.AllAdj() {
		if !m.IsSafe(adj) {
			continue
		}
		dist := 0
		if hasFood {
			dist = adj.Manhattan(food)
		}
		if dist > maxDist {
			maxDist = dist
			direc = head.DirecTo(adj)
		}
	}
	return direc
}
