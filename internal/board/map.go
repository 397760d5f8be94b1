package board

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Map is the game grid. Row 0, row rows-1, column 0 and column cols-1
// are walls; everything between them is the interior.
type Map struct {
	rows    int
	cols    int
	cells   [][]PointType
	food    core.Pos
	hasFood bool
}

// NewMap creates a grid with a wall border and an empty interior.
func NewMap(rows, cols int) (*Map, error) {
	if rows < MinSize || cols < MinSize {
		return nil, fmt.Errorf("%w: got %dx%d", ErrMapTooSmall, rows, cols)
	}
	m := &Map{rows: rows, cols: cols}
	m.cells = make([][]PointType, rows)
	for r := range m.cells {
		m.cells[r] = make([]PointType, cols)
	}
	m.Reset()
	return m, nil
}

// Reset restores the wall ring and an empty interior, and drops the food.
func (m *Map) Reset() {
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if r == 0 || r == m.rows-1 || c == 0 || c == m.cols-1 {
				m.cells[r][c] = PointWall
			} else {
				m.cells[r][c] = PointEmpty
			}
		}
	}
	m.food = core.Pos{}
	m.hasFood = false
}

// Copy returns a deep copy that shares no storage with m.
func (m *Map) Copy() *Map {
	cp := &Map{
		rows:    m.rows,
		cols:    m.cols,
		food:    m.food,
		hasFood: m.hasFood,
		cells:   make([][]PointType, m.rows),
	}
	for r := range m.cells {
		cp.cells[r] = append([]PointType(nil), m.cells[r]...)
	}
	return cp
}

// Rows returns the number of rows, walls included.
func (m *Map) Rows() int { return m.rows }

// Cols returns the number of columns, walls included.
func (m *Map) Cols() int { return m.cols }

// Capacity returns the number of interior cells.
func (m *Map) Capacity() int { return (m.rows - 2) * (m.cols - 2) }

func (m *Map) inBounds(p core.Pos) bool {
	return p.Row >= 0 && p.Row < m.rows && p.Col >= 0 && p.Col < m.cols
}

// Point returns the type of the cell at p. Positions off the grid read as walls.
func (m *Map) Point(p core.Pos) PointType {
	if !m.inBounds(p) {
		return PointWall
	}
	return m.cells[p.Row][p.Col]
}

// SetPoint overwrites a cell. Off-grid positions are ignored.
// Callers are responsible for keeping the food bookkeeping straight;
// use CreateFood and RemoveFood for food.
func (m *Map) SetPoint(p core.Pos, t PointType) {
	if !m.inBounds(p) {
		return
	}
	m.cells[p.Row][p.Col] = t
}

// IsInside reports whether p lies strictly inside the wall ring.
func (m *Map) IsInside(p core.Pos) bool {
	return p.Row > 0 && p.Row < m.rows-1 && p.Col > 0 && p.Col < m.cols-1
}

// IsEmpty reports whether p is an empty interior cell.
func (m *Map) IsEmpty(p core.Pos) bool {
	return m.IsInside(p) && m.cells[p.Row][p.Col] == PointEmpty
}

// IsSafe reports whether the snake may enter p.
func (m *Map) IsSafe(p core.Pos) bool {
	if !m.IsInside(p) {
		return false
	}
	t := m.cells[p.Row][p.Col]
	return t == PointEmpty || t == PointFood
}

// IsFull reports whether every interior cell is snake body.
func (m *Map) IsFull() bool {
	for r := 1; r < m.rows-1; r++ {
		for c := 1; c < m.cols-1; c++ {
			if m.cells[r][c] != PointBody {
				return false
			}
		}
	}
	return true
}

// HasFood reports whether food is on the grid.
func (m *Map) HasFood() bool { return m.hasFood }

// Food returns the food position, if any.
func (m *Map) Food() (core.Pos, bool) { return m.food, m.hasFood }

// CreateFood places food at p. It fails when food already exists or p
// is not an empty interior cell.
func (m *Map) CreateFood(p core.Pos) bool {
	if m.hasFood || !m.IsEmpty(p) {
		return false
	}
	m.cells[p.Row][p.Col] = PointFood
	m.food = p
	m.hasFood = true
	return true
}

// CreateRandomFood places food on a uniformly chosen empty interior cell.
// Nothing happens when food already exists or no cell is empty.
func (m *Map) CreateRandomFood(rng core.Rand) (core.Pos, bool) {
	if m.hasFood {
		return core.Pos{}, false
	}
	var empty []core.Pos
	for r := 1; r < m.rows-1; r++ {
		for c := 1; c < m.cols-1; c++ {
			if m.cells[r][c] == PointEmpty {
				empty = append(empty, core.P(r, c))
			}
		}
	}
	if len(empty) == 0 {
		return core.Pos{}, false
	}
	p := empty[rng.Intn(len(empty))]
	m.CreateFood(p)
	return p, true
}

// RemoveFood clears the food cell, if any.
func (m *Map) RemoveFood() {
	if !m.hasFood {
		return
	}
	if m.cells[m.food.Row][m.food.Col] == PointFood {
		m.cells[m.food.Row][m.food.Col] = PointEmpty
	}
	m.food = core.Pos{}
	m.hasFood = false
}

// CountPoints returns how many cells hold type t.
func (m *Map) CountPoints(t PointType) int {
	n := 0
	for r := range m.cells {
		for _, ct := range m.cells[r] {
			if ct == t {
				n++
			}
		}
	}
	return n
}

// CheckInvariants verifies the wall ring and the single-food rule.
func (m *Map) CheckInvariants() error {
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			p := core.P(r, c)
			if !m.IsInside(p) && m.cells[r][c] != PointWall {
				return fmt.Errorf("board: border cell %v is %v", p, m.cells[r][c])
			}
			if m.IsInside(p) && m.cells[r][c] == PointWall {
				return fmt.Errorf("board: interior cell %v is a wall", p)
			}
		}
	}
	foods := m.CountPoints(PointFood)
	switch {
	case foods > 1:
		return fmt.Errorf("board: %d food cells", foods)
	case foods == 1 && !m.hasFood:
		return fmt.Errorf("board: stray food cell")
	case m.hasFood && m.Point(m.food) != PointFood:
		return fmt.Errorf("board: food %v is %v", m.food, m.Point(m.food))
	}
	return nil
}

// String renders the grid one row per line.
func (m *Map) String() string {
	var sb strings.Builder
	for r := range m.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, t := range m.cells[r] {
			sb.WriteRune(t.Rune())
		}
	}
	return sb.String()
}
