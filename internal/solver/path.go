package solver

import (
	"math"

	"github.com/vovakirdan/tui-snake/internal/board"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Unreachable is the distance of a cell BFS never reached.
const Unreachable = math.MaxInt

// PathCell is one entry of the path solver's scratch table.
type PathCell struct {
	Dist    int
	Parent  core.Pos
	Visited bool
}

func (c *PathCell) reset() {
	c.Dist = Unreachable
	c.Parent = core.Pos{}
	c.Visited = false
}

// PathSolver finds shortest and long paths from the snake's head.
// Its table is working memory, reset at the start of every search.
type PathSolver struct {
	snake *board.Snake
	rng   core.Rand
	table [][]PathCell
}

// NewPathSolver creates a path solver for s. rng breaks ties between
// equally short neighbors.
func NewPathSolver(s *board.Snake, rng core.Rand) *PathSolver {
	ps := &PathSolver{rng: rng}
	ps.SetSnake(s)
	return ps
}

// SetSnake rebinds the solver to another snake, reallocating the table
// only when the map size changes.
func (ps *PathSolver) SetSnake(s *board.Snake) {
	ps.snake = s
	m := s.Map()
	if len(ps.table) == m.Rows() && len(ps.table[0]) == m.Cols() {
		return
	}
	ps.table = make([][]PathCell, m.Rows())
	for r := range ps.table {
		ps.table[r] = make([]PathCell, m.Cols())
	}
	ps.resetTable()
}

// Snake returns the snake the solver is bound to.
func (ps *PathSolver) Snake() *board.Snake { return ps.snake }

// Table returns the scratch table of the last search. Callers must not
// modify it.
func (ps *PathSolver) Table() [][]PathCell { return ps.table }

func (ps *PathSolver) resetTable() {
	for r := range ps.table {
		for c := range ps.table[r] {
			ps.table[r][c].reset()
		}
	}
}

func (ps *PathSolver) cell(p core.Pos) *PathCell {
	return &ps.table[p.Row][p.Col]
}

// isValid reports whether the search may step onto p.
func (ps *PathSolver) isValid(p core.Pos) bool {
	return ps.snake.Map().IsSafe(p) && !ps.cell(p).Visited
}

// ShortestPathToFood returns the shortest path to the food, or nil when
// there is no food or it cannot be reached.
func (ps *PathSolver) ShortestPathToFood() []core.Direc {
	m := ps.snake.Map()
	food, ok := m.Food()
	if !ok {
		return nil
	}
	return ps.withDestination(food, ps.ShortestPathTo)
}

// LongestPathToTail returns a long path from the head to the tail, or
// nil when the tail cannot be reached.
func (ps *PathSolver) LongestPathToTail() []core.Direc {
	return ps.withDestination(ps.snake.Tail(), ps.LongestPathTo)
}

// withDestination marks des empty for the duration of search so that
// food or the snake's own tail can be targeted.
func (ps *PathSolver) withDestination(des core.Pos, search func(core.Pos) []core.Direc) []core.Direc {
	m := ps.snake.Map()
	orig := m.Point(des)
	m.SetPoint(des, board.PointEmpty)
	defer m.SetPoint(des, orig)
	return search(des)
}

// ShortestPathTo runs a breadth-first search from the head to des.
// Among equally short routes it prefers to keep going straight.
func (ps *PathSolver) ShortestPathTo(des core.Pos) []core.Direc {
	ps.resetTable()

	head := ps.snake.Head()
	start := ps.cell(head)
	start.Dist = 0
	start.Visited = true

	queue := []core.Pos{head}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == des {
			return ps.buildPath(head, des)
		}

		first := ps.snake.Direc()
		if cur != head {
			first = ps.cell(cur).Parent.DirecTo(cur)
		}
		for _, adj := range ps.orderedAdj(cur, first) {
			if !ps.isValid(adj) {
				continue
			}
			c := ps.cell(adj)
			c.Parent = cur
			c.Dist = ps.cell(cur).Dist + 1
			c.Visited = true
			queue = append(queue, adj)
		}
	}
	return nil
}

// orderedAdj shuffles the neighbors of p and moves the one reached by
// continuing in direction first to the front.
func (ps *PathSolver) orderedAdj(p core.Pos, first core.Direc) []core.Pos {
	adjs := p.AllAdj()
	ps.rng.Shuffle(len(adjs), func(i, j int) {
		adjs[i], adjs[j] = adjs[j], adjs[i]
	})
	for i, adj := range adjs {
		if p.DirecTo(adj) == first {
			adjs[0], adjs[i] = adjs[i], adjs[0]
			break
		}
	}
	return adjs
}

func (ps *PathSolver) buildPath(src, des core.Pos) []core.Direc {
	path := make([]core.Direc, ps.cell(des).Dist)
	for cur, i := des, len(path)-1; cur != src; i-- {
		parent := ps.cell(cur).Parent
		path[i] = parent.DirecTo(cur)
		cur = parent
	}
	return path
}

// LongestPathTo extends the shortest path to des with detours so that it
// covers as many free cells as it can. It is not the true longest path.
func (ps *PathSolver) LongestPathTo(des core.Pos) []core.Direc {
	path := ps.ShortestPathTo(des)
	if len(path) == 0 {
		return path
	}

	ps.resetTable()
	head := ps.snake.Head()
	cur := head
	ps.cell(cur).Visited = true
	for _, d := range path {
		cur = cur.Adj(d)
		ps.cell(cur).Visited = true
	}

	idx := 0
	cur = head
	for idx < len(path) {
		d := path[idx]
		next := cur.Adj(d)
		extended := false
		for _, t := range d.Perpendicular() {
			curTest, nextTest := cur.Adj(t), next.Adj(t)
			if ps.isValid(curTest) && ps.isValid(nextTest) {
				ps.cell(curTest).Visited = true
				ps.cell(nextTest).Visited = true
				path = spliceDetour(path, idx, t)
				extended = true
				break
			}
		}
		if !extended {
			cur = next
			idx++
		}
	}
	return path
}

// spliceDetour turns the step at idx into t, the original step, t's opposite.
func spliceDetour(path []core.Direc, idx int, t core.Direc) []core.Direc {
	out := make([]core.Direc, 0, len(path)+2)
	out = append(out, path[:idx]...)
	out = append(out, t, path[idx], t.Opposite())
	out = append(out, path[idx+1:]...)
	return out
}
