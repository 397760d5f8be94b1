package solver

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/board"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// ShortcutRatio is the fraction of capacity below which the Hamilton
// solver considers leaving the cycle for food.
const ShortcutRatio = 0.5

// CycleCell is one entry of the Hamilton table: the cell's place on the
// cycle and the direction to leave it.
type CycleCell struct {
	Idx   int
	Direc core.Direc
}

// HamiltonSolver walks a Hamiltonian cycle built once from the initial
// snake, optionally cutting ahead toward food while the snake is short.
type HamiltonSolver struct {
	snake     *board.Snake
	path      *PathSolver
	shortcuts bool
	table     [][]CycleCell
}

// NewHamiltonSolver builds the cycle table for s. The map interior must
// have even dimensions.
func NewHamiltonSolver(s *board.Snake, rng core.Rand, shortcuts bool) (*HamiltonSolver, error) {
	if s == nil {
		return nil, ErrNilSnake
	}
	m := s.Map()
	if (m.Rows()-2)%2 != 0 || (m.Cols()-2)%2 != 0 {
		return nil, fmt.Errorf("%w: interior is %dx%d", ErrOddMap, m.Rows()-2, m.Cols()-2)
	}

	hs := &HamiltonSolver{
		snake:     s,
		path:      NewPathSolver(s, rng),
		shortcuts: shortcuts,
	}
	if err := hs.buildCycle(); err != nil {
		return nil, err
	}
	return hs, nil
}

func (hs *HamiltonSolver) buildCycle() error {
	m := hs.snake.Map()
	hs.table = make([][]CycleCell, m.Rows())
	for r := range hs.table {
		hs.table[r] = make([]CycleCell, m.Cols())
		for c := range hs.table[r] {
			hs.table[r][c] = CycleCell{Idx: -1}
		}
	}

	cnt := 0
	cur := hs.snake.Head()
	for _, d := range hs.path.LongestPathToTail() {
		hs.table[cur.Row][cur.Col] = CycleCell{Idx: cnt, Direc: d}
		cur = cur.Adj(d)
		cnt++
	}

	// Close the loop through the body, tail to neck.
	bodies := hs.snake.Bodies()
	for i := len(bodies) - 1; i > 0; i-- {
		p := bodies[i]
		hs.table[p.Row][p.Col] = CycleCell{Idx: cnt, Direc: p.DirecTo(bodies[i-1])}
		cnt++
	}

	if cnt != m.Capacity() {
		return fmt.Errorf("%w: cycle covers %d of %d cells", ErrNoCycle, cnt, m.Capacity())
	}
	for r := 1; r < m.Rows()-1; r++ {
		for c := 1; c < m.Cols()-1; c++ {
			if hs.table[r][c].Idx < 0 {
				return fmt.Errorf("%w: %v is not on the cycle", ErrNoCycle, core.P(r, c))
			}
		}
	}
	return nil
}

// Name returns the registry name of the solver.
func (hs *HamiltonSolver) Name() string {
	if hs.shortcuts {
		return NameHamilton
	}
	return NameHamiltonCycle
}

// Table returns the cycle table. Callers must not modify it.
func (hs *HamiltonSolver) Table() [][]CycleCell { return hs.table }

func (hs *HamiltonSolver) idx(p core.Pos) int { return hs.table[p.Row][p.Col].Idx }

// NextDirec follows the cycle, or takes the first step toward food when
// that step moves forward on the cycle without passing the food.
func (hs *HamiltonSolver) NextDirec() core.Direc {
	head := hs.snake.Head()
	next := hs.table[head.Row][head.Col].Direc

	m := hs.snake.Map()
	if !hs.shortcuts || float64(hs.snake.Len()) >= ShortcutRatio*float64(m.Capacity()) {
		return next
	}

	path := hs.path.ShortestPathToFood()
	if len(path) == 0 {
		return next
	}
	food, _ := m.Food()
	tailIdx := hs.idx(hs.snake.Tail())
	foodIdx := hs.idx(food)

	// Single step onto food right behind the tail on the cycle.
	if len(path) == 1 && core.Abs(foodIdx-tailIdx) == 1 {
		return next
	}

	capacity := m.Capacity()
	headRel := relDist(tailIdx, hs.idx(head), capacity)
	nextRel := relDist(tailIdx, hs.idx(head.Adj(path[0])), capacity)
	foodRel := relDist(tailIdx, foodIdx, capacity)
	if nextRel > headRel && nextRel <= foodRel {
		return path[0]
	}
	return next
}

// relDist is the distance from ori forward to x along a cycle of length size.
func relDist(ori, x, size int) int {
	if x < ori {
		return x + size - ori
	}
	return x - ori
}
