package solver

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/board"
	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestShortestPathPrefersStraight(t *testing.T) {
	expected := []core.Direc{core.DirecRight, core.DirecRight, core.DirecDown, core.DirecDown, core.DirecDown}

	for seed := int64(0); seed < 20; seed++ {
		s, m := newSnake(t, 7, 7, core.DirecRight, core.P(2, 3), core.P(2, 2), core.P(2, 1))
		food := core.P(5, 5)
		m.CreateFood(food)

		ps := NewPathSolver(s, core.NewRand(seed))
		ps.ShortestPathTo(food)
		got := ps.ShortestPathTo(food)

		if !direcsEqual(got, expected) {
			t.Errorf("seed %d: ShortestPathTo() = %v, expected %v", seed, got, expected)
		}
		table := ps.Table()
		if table[5][1].Dist != 5 {
			t.Errorf("seed %d: table[5][1].Dist = %d, expected 5", seed, table[5][1].Dist)
		}
		if table[5][5].Dist != len(got) {
			t.Errorf("seed %d: table[5][5].Dist = %d, expected %d", seed, table[5][5].Dist, len(got))
		}
	}
}

func TestShortestPathIdempotent(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		s, m := newRandomSnake(t, 10, 12, seed)
		m.CreateRandomFood(core.NewRand(seed))

		p1 := NewPathSolver(s, core.NewRand(seed)).ShortestPathToFood()
		p2 := NewPathSolver(s, core.NewRand(seed)).ShortestPathToFood()
		if !direcsEqual(p1, p2) {
			t.Errorf("seed %d: paths differ: %v vs %v", seed, p1, p2)
		}
	}
}

func TestShortestPathToFoodRestoresMap(t *testing.T) {
	s, m := newSnake(t, 7, 7, core.DirecRight, core.P(2, 3), core.P(2, 2), core.P(2, 1))
	m.CreateFood(core.P(4, 4))
	before := m.String()

	ps := NewPathSolver(s, core.NewRand(1))
	if path := ps.ShortestPathToFood(); len(path) != 3 {
		t.Errorf("ShortestPathToFood() = %v, expected 3 steps", path)
	}
	ps.LongestPathToTail()

	if after := m.String(); after != before {
		t.Errorf("map changed by search:\n%s\nexpected\n%s", after, before)
	}
	if err := m.CheckInvariants(); err != nil {
		t.Errorf("CheckInvariants() = %v", err)
	}
}

func TestShortestPathToFoodWithoutFood(t *testing.T) {
	s, _ := newSnake(t, 7, 7, core.DirecRight, core.P(2, 3), core.P(2, 2))
	if path := NewPathSolver(s, core.NewRand(1)).ShortestPathToFood(); path != nil {
		t.Errorf("ShortestPathToFood() = %v, expected nil", path)
	}
}

func TestPathUnreachable(t *testing.T) {
	// Food sealed in the top-right corner by the body.
	s, m := newSnake(t, 7, 7, core.DirecDown,
		core.P(3, 3), core.P(2, 3), core.P(2, 4), core.P(2, 5))
	m.SetPoint(core.P(1, 4), board.PointBody)
	m.CreateFood(core.P(1, 5))

	ps := NewPathSolver(s, core.NewRand(1))
	if path := ps.ShortestPathToFood(); path != nil {
		t.Errorf("ShortestPathToFood() = %v, expected nil", path)
	}
	if path := ps.LongestPathTo(core.P(1, 5)); path != nil {
		t.Errorf("LongestPathTo() = %v, expected nil", path)
	}
}

func TestLongestPathNotShorter(t *testing.T) {
	for seed := int64(0); seed < 40; seed++ {
		s, m := newRandomSnake(t, 9, 9, seed)
		food, ok := m.CreateRandomFood(core.NewRand(seed + 100))
		if !ok {
			t.Fatalf("seed %d: no food placed", seed)
		}

		shortest := NewPathSolver(s, core.NewRand(seed)).ShortestPathToFood()
		longest := longestPathToFood(NewPathSolver(s, core.NewRand(seed)))

		if (shortest == nil) != (longest == nil) {
			t.Fatalf("seed %d: shortest nil = %v, longest nil = %v", seed, shortest == nil, longest == nil)
		}
		if len(longest) < len(shortest) {
			t.Errorf("seed %d: longest %d < shortest %d", seed, len(longest), len(shortest))
		}
		if (len(longest)-len(shortest))%2 != 0 {
			t.Errorf("seed %d: detours must add steps in pairs", seed)
		}

		sim, _ := s.Copy()
		sim.MovePath(longest)
		if sim.Dead() || sim.Head() != food {
			t.Errorf("seed %d: following the longest path ended at %v (dead=%v), expected %v",
				seed, sim.Head(), sim.Dead(), food)
		}
	}
}

// longestPathToFood runs LongestPathTo with the same destination override
// ShortestPathToFood uses.
func longestPathToFood(ps *PathSolver) []core.Direc {
	food, ok := ps.snake.Map().Food()
	if !ok {
		return nil
	}
	return ps.withDestination(food, ps.LongestPathTo)
}

func TestLongestPathToTailCoversFreeSpace(t *testing.T) {
	s, m := newSnake(t, 8, 8, core.DirecRight, core.P(1, 2), core.P(1, 1))
	path := NewPathSolver(s, core.NewRand(3)).LongestPathToTail()

	if got, want := len(path), m.Capacity()-1; got != want {
		t.Errorf("len(LongestPathToTail()) = %d, expected %d", got, want)
	}
}

func TestSpliceDetour(t *testing.T) {
	path := []core.Direc{core.DirecRight, core.DirecDown}
	got := spliceDetour(path, 0, core.DirecUp)
	expected := []core.Direc{core.DirecUp, core.DirecRight, core.DirecDown, core.DirecDown}
	if !direcsEqual(got, expected) {
		t.Errorf("spliceDetour() = %v, expected %v", got, expected)
	}
}
