package board

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func mustMap(t *testing.T, rows, cols int) *Map {
	t.Helper()
	m, err := NewMap(rows, cols)
	if err != nil {
		t.Fatalf("NewMap(%d, %d) error: %v", rows, cols, err)
	}
	return m
}

func TestNewMapTooSmall(t *testing.T) {
	tests := []struct {
		rows, cols int
	}{
		{4, 5}, {5, 4}, {0, 0}, {-1, 10},
	}
	for _, tt := range tests {
		if _, err := NewMap(tt.rows, tt.cols); !errors.Is(err, ErrMapTooSmall) {
			t.Errorf("NewMap(%d, %d) error = %v, expected ErrMapTooSmall", tt.rows, tt.cols, err)
		}
	}
}

func TestMapInitialLayout(t *testing.T) {
	m := mustMap(t, 12, 12)

	if got := m.Capacity(); got != 100 {
		t.Errorf("Capacity() = %d, expected 100", got)
	}
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			p := core.P(r, c)
			border := r == 0 || r == m.Rows()-1 || c == 0 || c == m.Cols()-1
			if border {
				if m.Point(p) != PointWall || m.IsInside(p) {
					t.Errorf("%v should be an outside wall", p)
				}
			} else if m.Point(p) != PointEmpty || !m.IsInside(p) || !m.IsSafe(p) {
				t.Errorf("%v should be an empty inside cell", p)
			}
		}
	}
	if m.HasFood() {
		t.Error("new map should have no food")
	}
	if m.IsFull() {
		t.Error("new map should not be full")
	}
	if err := m.CheckInvariants(); err != nil {
		t.Errorf("CheckInvariants() = %v", err)
	}
}

func TestMapOutOfBoundsReadsAsWall(t *testing.T) {
	m := mustMap(t, 6, 6)
	for _, p := range []core.Pos{core.P(-1, 2), core.P(2, 6), core.P(100, 100)} {
		if m.Point(p) != PointWall {
			t.Errorf("Point(%v) = %v, expected wall", p, m.Point(p))
		}
		if m.IsSafe(p) || m.IsEmpty(p) || m.IsInside(p) {
			t.Errorf("%v should be neither safe, empty, nor inside", p)
		}
	}
	m.SetPoint(core.P(-1, -1), PointBody) // ignored
}

func TestMapFood(t *testing.T) {
	m := mustMap(t, 6, 6)

	if m.CreateFood(core.P(0, 3)) {
		t.Error("CreateFood on a wall should fail")
	}
	if !m.CreateFood(core.P(2, 3)) {
		t.Fatal("CreateFood(2,3) should succeed")
	}
	if p, ok := m.Food(); !ok || p != core.P(2, 3) {
		t.Errorf("Food() = %v, %v, expected Pos(2,3), true", p, ok)
	}
	if !m.IsSafe(core.P(2, 3)) || m.IsEmpty(core.P(2, 3)) {
		t.Error("food cell should be safe but not empty")
	}
	if m.CreateFood(core.P(3, 3)) {
		t.Error("a second food must be rejected")
	}
	if _, ok := m.CreateRandomFood(core.NewRand(1)); ok {
		t.Error("CreateRandomFood must not add food while food exists")
	}
	if got := m.CountPoints(PointFood); got != 1 {
		t.Errorf("CountPoints(food) = %d, expected 1", got)
	}

	m.RemoveFood()
	if m.HasFood() || m.Point(core.P(2, 3)) != PointEmpty {
		t.Error("RemoveFood should clear the food cell")
	}
	m.RemoveFood() // no-op
}

func TestMapCreateRandomFood(t *testing.T) {
	m := mustMap(t, 5, 5)
	for r := 1; r <= 3; r++ {
		for c := 1; c <= 3; c++ {
			if r != 2 || c != 2 {
				m.SetPoint(core.P(r, c), PointBody)
			}
		}
	}

	p, ok := m.CreateRandomFood(core.NewRand(7))
	if !ok || p != core.P(2, 2) {
		t.Fatalf("CreateRandomFood() = %v, %v, expected the only empty cell Pos(2,2)", p, ok)
	}

	m.RemoveFood()
	m.SetPoint(core.P(2, 2), PointBody)
	if !m.IsFull() {
		t.Error("map with all interior body cells should be full")
	}
	if _, ok := m.CreateRandomFood(core.NewRand(7)); ok {
		t.Error("CreateRandomFood on a full map should do nothing")
	}
}

func TestMapCreateRandomFoodDeterministic(t *testing.T) {
	a := mustMap(t, 10, 10)
	b := mustMap(t, 10, 10)
	pa, _ := a.CreateRandomFood(core.NewRand(42))
	pb, _ := b.CreateRandomFood(core.NewRand(42))
	if pa != pb {
		t.Errorf("same seed placed food at %v and %v", pa, pb)
	}
	if !a.IsInside(pa) {
		t.Errorf("food %v is not inside", pa)
	}
}

func TestMapCopyIsIndependent(t *testing.T) {
	m := mustMap(t, 6, 6)
	m.CreateFood(core.P(1, 1))
	cp := m.Copy()

	cp.SetPoint(core.P(3, 3), PointBody)
	cp.RemoveFood()

	if m.Point(core.P(3, 3)) != PointEmpty {
		t.Error("writing to the copy changed the original")
	}
	if !m.HasFood() || m.Point(core.P(1, 1)) != PointFood {
		t.Error("removing food from the copy changed the original")
	}
}

func TestMapReset(t *testing.T) {
	m := mustMap(t, 6, 7)
	m.SetPoint(core.P(2, 2), PointBody)
	m.CreateFood(core.P(3, 3))
	m.Reset()

	if m.CountPoints(PointBody) != 0 || m.HasFood() {
		t.Error("Reset should clear bodies and food")
	}
	if err := m.CheckInvariants(); err != nil {
		t.Errorf("CheckInvariants() after Reset = %v", err)
	}
}

func TestMapCheckInvariantsDetectsStrayFood(t *testing.T) {
	m := mustMap(t, 6, 6)
	m.CreateFood(core.P(1, 1))
	m.SetPoint(core.P(2, 2), PointFood)
	if err := m.CheckInvariants(); err == nil {
		t.Error("two food cells should violate the invariants")
	}
}

func TestMapString(t *testing.T) {
	m := mustMap(t, 5, 5)
	m.CreateFood(core.P(1, 2))
	m.SetPoint(core.P(3, 3), PointBody)

	expected := "#####\n#.*.#\n#...#\n#..o#\n#####"
	if got := m.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}
