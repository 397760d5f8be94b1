package solver

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/board"
	"github.com/vovakirdan/tui-snake/internal/core"
)

func newHamiltonFixture(t *testing.T, size int, shortcuts bool) (*HamiltonSolver, *board.Snake, *board.Map) {
	t.Helper()
	s, m := newSnake(t, size, size, core.DirecRight, core.P(1, 2), core.P(1, 1))
	hs, err := NewHamiltonSolver(s, core.NewRand(1), shortcuts)
	if err != nil {
		t.Fatalf("NewHamiltonSolver() error: %v", err)
	}
	return hs, s, m
}

func TestHamiltonCycle(t *testing.T) {
	for _, size := range []int{6, 8, 10, 12} {
		hs, s, m := newHamiltonFixture(t, size, false)
		table := hs.Table()
		origin := s.Head()

		cnt := 0
		for {
			head := s.Head()
			if table[head.Row][head.Col].Idx != cnt {
				t.Fatalf("size %d: idx at %v = %d, expected %d", size, head, table[head.Row][head.Col].Idx, cnt)
			}
			s.Move(hs.NextDirec())
			cnt++
			if s.Dead() {
				t.Fatalf("size %d: snake died at %v after %d steps", size, s.Head(), cnt)
			}
			if s.Head() == origin || cnt > m.Capacity() {
				break
			}
		}
		if cnt != m.Capacity() {
			t.Errorf("size %d: cycle length = %d, expected %d", size, cnt, m.Capacity())
		}
	}
}

func TestHamiltonCycleVisitsEveryCell(t *testing.T) {
	hs, s, m := newHamiltonFixture(t, 8, false)
	visited := map[core.Pos]bool{s.Head(): true}
	for i := 0; i < 36; i++ {
		s.Move(hs.NextDirec())
		visited[s.Head()] = true
	}
	if s.Head() != core.P(1, 2) || s.Dead() {
		t.Errorf("after 36 ticks head = %v dead = %v, expected Pos(1,2) alive", s.Head(), s.Dead())
	}
	if len(visited) != m.Capacity() {
		t.Errorf("visited %d cells, expected %d", len(visited), m.Capacity())
	}
}

func TestHamiltonFillsBoardWithoutShortcuts(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		hs, s, m := newHamiltonFixture(t, 8, false)
		rng := core.NewRand(seed)
		for tick := 0; tick < 20000 && !s.Dead() && !m.IsFull(); tick++ {
			m.CreateRandomFood(rng)
			s.Move(hs.NextDirec())
		}
		if s.Dead() || !m.IsFull() {
			t.Errorf("seed %d: dead = %v, len = %d, expected a full board", seed, s.Dead(), s.Len())
		}
	}
}

func TestHamiltonConfigErrors(t *testing.T) {
	s, _ := newSnake(t, 7, 8, core.DirecRight, core.P(1, 2), core.P(1, 1))
	if _, err := NewHamiltonSolver(s, core.NewRand(1), false); !errors.Is(err, ErrOddMap) {
		t.Errorf("NewHamiltonSolver(7x8) error = %v, expected ErrOddMap", err)
	}

	s, _ = newSnake(t, 8, 8, core.DirecRight, core.P(1, 1))
	if _, err := NewHamiltonSolver(s, core.NewRand(1), false); !errors.Is(err, ErrNoCycle) {
		t.Errorf("NewHamiltonSolver(single cell) error = %v, expected ErrNoCycle", err)
	}

	if _, err := NewHamiltonSolver(nil, core.NewRand(1), false); !errors.Is(err, ErrNilSnake) {
		t.Errorf("NewHamiltonSolver(nil) error = %v, expected ErrNilSnake", err)
	}
}

// driveAlongCycle moves the snake along the cycle, eating on the first
// grow moves so the body stays on consecutive cycle cells.
func driveAlongCycle(t *testing.T, hs *HamiltonSolver, s *board.Snake, moves, grow int) {
	t.Helper()
	table := hs.Table()
	for i := 0; i < moves; i++ {
		head := s.Head()
		d := table[head.Row][head.Col].Direc
		if i < grow && !s.Map().CreateFood(head.Adj(d)) {
			t.Fatalf("could not place food at %v", head.Adj(d))
		}
		s.Move(d)
		if s.Dead() {
			t.Fatalf("snake died while driving along the cycle at %v", s.Head())
		}
	}
}

func TestHamiltonShortcut(t *testing.T) {
	// On the 8x8 fixture the cycle runs (3,1)=17 -> (3,2)=18 -> (3,3)=19,
	// and (4,2) is cell 23.
	tests := []struct {
		name     string
		moves    int
		grow     int
		food     core.Pos
		expected core.Direc
	}{
		{"taken", 18, 0, core.P(4, 2), core.DirecDown},
		{"taken below half capacity", 18, 15, core.P(4, 2), core.DirecDown},
		{"disabled at half capacity", 18, 16, core.P(4, 2), core.DirecRight},
		// Head at (1,2)=0; the only shortest path goes through (2,2)=33,
		// which passes the food at (3,2)=18.
		{"rejected on overshoot", 0, 0, core.P(3, 2), core.DirecRight},
		// Head at (2,2)=33, tail at (3,3)=19, food at (3,2)=18: one step
		// onto the cell right behind the tail.
		{"rejected behind tail", 33, 13, core.P(3, 2), core.DirecLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hs, s, m := newHamiltonFixture(t, 8, true)
			driveAlongCycle(t, hs, s, tt.moves, tt.grow)
			if !m.CreateFood(tt.food) {
				t.Fatalf("could not place food at %v", tt.food)
			}

			if got := hs.NextDirec(); got != tt.expected {
				t.Errorf("NextDirec() = %v, expected %v (len %d, head %v, tail %v)",
					got, tt.expected, s.Len(), s.Head(), s.Tail())
			}
		})
	}
}

func TestHamiltonShortcutExceptionOverridesRelativeRule(t *testing.T) {
	hs, s, m := newHamiltonFixture(t, 8, true)
	driveAlongCycle(t, hs, s, 33, 13)
	m.CreateFood(core.P(3, 2))

	capacity := m.Capacity()
	tailIdx := hs.idx(s.Tail())
	headRel := relDist(tailIdx, hs.idx(s.Head()), capacity)
	nextRel := relDist(tailIdx, hs.idx(core.P(3, 2)), capacity)
	foodRel := relDist(tailIdx, hs.idx(core.P(3, 2)), capacity)
	if !(nextRel > headRel && nextRel <= foodRel) {
		t.Fatal("fixture should satisfy the relative-distance rule on its own")
	}
	if got := hs.NextDirec(); got != core.DirecLeft {
		t.Errorf("NextDirec() = %v, expected the cycle direction left", got)
	}
}

func TestRelDist(t *testing.T) {
	tests := []struct {
		ori, x, size, expected int
	}{
		{0, 0, 36, 0},
		{5, 9, 36, 4},
		{35, 0, 36, 1},
		{19, 18, 36, 35},
	}
	for _, tt := range tests {
		if got := relDist(tt.ori, tt.x, tt.size); got != tt.expected {
			t.Errorf("relDist(%d, %d, %d) = %d, expected %d", tt.ori, tt.x, tt.size, got, tt.expected)
		}
	}
}
