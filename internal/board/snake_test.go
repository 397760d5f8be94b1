package board

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func mustSnake(t *testing.T, m *Map, direc core.Direc, bodies ...core.Pos) *Snake {
	t.Helper()
	s, err := NewSnake(m, WithBodies(direc, bodies))
	if err != nil {
		t.Fatalf("NewSnake() error: %v", err)
	}
	return s
}

func TestNewSnakeExplicit(t *testing.T) {
	m := mustMap(t, 7, 7)
	s := mustSnake(t, m, core.DirecRight, core.P(2, 3), core.P(2, 2), core.P(2, 1))

	if s.Len() != 3 || s.Head() != core.P(2, 3) || s.Tail() != core.P(2, 1) {
		t.Errorf("snake = %v, expected head Pos(2,3) tail Pos(2,1) len 3", s.Bodies())
	}
	if s.Direc() != core.DirecRight || s.DirecNext() != core.DirecNone {
		t.Errorf("Direc() = %v, DirecNext() = %v", s.Direc(), s.DirecNext())
	}
	if err := s.CheckInvariants(); err != nil {
		t.Errorf("CheckInvariants() = %v", err)
	}
}

func TestNewSnakeInvalidBodies(t *testing.T) {
	tests := []struct {
		name   string
		direc  core.Direc
		bodies []core.Pos
	}{
		{"nil", core.DirecRight, nil},
		{"empty", core.DirecRight, []core.Pos{}},
		{"on wall", core.DirecRight, []core.Pos{core.P(0, 2)}},
		{"not adjacent", core.DirecRight, []core.Pos{core.P(2, 2), core.P(2, 4)}},
		{"repeated", core.DirecRight, []core.Pos{core.P(2, 2), core.P(2, 3), core.P(2, 2)}},
		{"no direction", core.DirecNone, []core.Pos{core.P(2, 2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustMap(t, 7, 7)
			_, err := NewSnake(m, WithBodies(tt.direc, tt.bodies))
			if !errors.Is(err, ErrInvalidBody) {
				t.Errorf("NewSnake() error = %v, expected ErrInvalidBody", err)
			}
		})
	}
}

func TestNewSnakeRandomPlacement(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		m := mustMap(t, 8, 9)
		s, err := NewSnake(m, WithRandomPlacement(core.NewRand(seed)))
		if err != nil {
			t.Fatalf("NewSnake() error: %v", err)
		}
		h := s.Head()
		if h.Row < 2 || h.Row > m.Rows()-3 || h.Col < 2 || h.Col > m.Cols()-3 {
			t.Errorf("seed %d: head %v outside the placement window", seed, h)
		}
		if s.Len() != 2 || s.Tail() != h.Adj(s.Direc().Opposite()) {
			t.Errorf("seed %d: bodies %v do not trail direction %v", seed, s.Bodies(), s.Direc())
		}
		if err := s.CheckInvariants(); err != nil {
			t.Errorf("seed %d: CheckInvariants() = %v", seed, err)
		}
	}
}

func TestNewSnakeDefaultIsRandom(t *testing.T) {
	a, _ := NewSnake(mustMap(t, 10, 10))
	b, _ := NewSnake(mustMap(t, 10, 10))
	if a.Head() != b.Head() || a.Direc() != b.Direc() {
		t.Error("default placement should use a fixed seed")
	}
}

func TestSnakeMoveWithoutFood(t *testing.T) {
	m := mustMap(t, 7, 7)
	s := mustSnake(t, m, core.DirecRight, core.P(2, 3), core.P(2, 2), core.P(2, 1))

	s.Move(core.DirecDown)

	if s.Head() != core.P(3, 3) || s.Len() != 3 {
		t.Errorf("after Move(down) bodies = %v", s.Bodies())
	}
	if m.Point(core.P(2, 1)) != PointEmpty {
		t.Error("vacated tail should be empty")
	}
	if m.Point(core.P(3, 3)) != PointBody {
		t.Error("new head should be body")
	}
	if s.Direc() != core.DirecDown || s.Steps() != 1 || s.Dead() {
		t.Errorf("Direc() = %v, Steps() = %d, Dead() = %v", s.Direc(), s.Steps(), s.Dead())
	}
	if err := s.CheckInvariants(); err != nil {
		t.Errorf("CheckInvariants() = %v", err)
	}
}

func TestSnakeMoveOntoFood(t *testing.T) {
	m := mustMap(t, 7, 7)
	s := mustSnake(t, m, core.DirecRight, core.P(2, 3), core.P(2, 2))
	m.CreateFood(core.P(2, 4))

	s.Move(core.DirecRight)

	if s.Len() != 3 || s.Tail() != core.P(2, 2) {
		t.Errorf("eating should keep the tail, bodies = %v", s.Bodies())
	}
	if m.HasFood() {
		t.Error("food should be consumed")
	}
	if err := s.CheckInvariants(); err != nil {
		t.Errorf("CheckInvariants() = %v", err)
	}
}

func TestSnakeMoveIgnored(t *testing.T) {
	m := mustMap(t, 7, 7)
	s := mustSnake(t, m, core.DirecRight, core.P(2, 3), core.P(2, 2))

	s.Move(core.DirecNone)
	if s.Steps() != 0 {
		t.Error("moving with nothing buffered should be a no-op")
	}

	s.Move(core.DirecLeft)
	if s.Steps() != 0 || s.Head() != core.P(2, 3) {
		t.Error("reversal should be a no-op")
	}

	if s.SetDirecNext(core.DirecLeft) {
		t.Error("SetDirecNext should reject reversal")
	}
	if !s.SetDirecNext(core.DirecUp) || s.DirecNext() != core.DirecUp {
		t.Error("SetDirecNext(up) should be accepted")
	}
	s.MoveNext()
	if s.Head() != core.P(1, 3) {
		t.Errorf("MoveNext() head = %v, expected Pos(1,3)", s.Head())
	}
}

func TestSnakeDiesOnWall(t *testing.T) {
	m := mustMap(t, 7, 7)
	s := mustSnake(t, m, core.DirecUp, core.P(1, 3), core.P(2, 3))

	s.Move(core.DirecUp)
	if !s.Dead() {
		t.Fatal("moving into the wall should kill the snake")
	}
	if m.Point(core.P(0, 3)) != PointWall {
		t.Error("the wall must not be overwritten")
	}
	steps := s.Steps()
	s.Move(core.DirecLeft)
	if s.Steps() != steps {
		t.Error("a dead snake must not move")
	}
}

func TestSnakeDiesOnBody(t *testing.T) {
	m := mustMap(t, 7, 7)
	// A hook: moving down from the head runs into the body.
	s := mustSnake(t, m, core.DirecLeft,
		core.P(2, 2), core.P(2, 3), core.P(3, 3), core.P(3, 2), core.P(3, 1))

	s.Move(core.DirecDown)
	if !s.Dead() {
		t.Fatal("moving into the body should kill the snake")
	}
	if m.Point(core.P(3, 2)) != PointBody {
		t.Error("the collided cell should stay body")
	}
}

func TestSnakeMovePathAndReset(t *testing.T) {
	m := mustMap(t, 7, 7)
	s := mustSnake(t, m, core.DirecRight, core.P(2, 3), core.P(2, 2), core.P(2, 1))

	s.MovePath([]core.Direc{core.DirecDown, core.DirecDown, core.DirecLeft})
	if s.Head() != core.P(4, 2) || s.Steps() != 3 {
		t.Errorf("after MovePath head = %v, steps = %d", s.Head(), s.Steps())
	}

	m.CreateFood(core.P(1, 1))
	s.Reset()
	if s.Head() != core.P(2, 3) || s.Steps() != 0 || s.Direc() != core.DirecRight {
		t.Errorf("Reset() did not restore the initial placement: %v", s.Bodies())
	}
	if m.HasFood() {
		t.Error("Reset() should clear food")
	}
	if err := s.CheckInvariants(); err != nil {
		t.Errorf("CheckInvariants() = %v", err)
	}
}

func TestSnakeFullMapStopsMoving(t *testing.T) {
	m := mustMap(t, 5, 5)
	// Snake covering the whole 3x3 interior.
	s := mustSnake(t, m, core.DirecDown,
		core.P(3, 1), core.P(2, 1), core.P(1, 1), core.P(1, 2), core.P(1, 3),
		core.P(2, 3), core.P(3, 3), core.P(3, 2), core.P(2, 2))
	if !m.IsFull() {
		t.Fatal("map should be full")
	}
	s.Move(core.DirecRight)
	if s.Steps() != 0 || s.Dead() {
		t.Error("a snake on a full map must not move")
	}
}

func TestSnakeCopyIsIndependent(t *testing.T) {
	m := mustMap(t, 7, 7)
	s := mustSnake(t, m, core.DirecRight, core.P(2, 3), core.P(2, 2))
	m.CreateFood(core.P(5, 5))

	cp, cm := s.Copy()
	if cm == m || cp.Map() != cm {
		t.Fatal("Copy() must bind the copy to a new map")
	}
	cp.MovePath([]core.Direc{core.DirecRight, core.DirecDown})

	if s.Head() != core.P(2, 3) || s.Steps() != 0 {
		t.Error("moving the copy changed the original snake")
	}
	if m.Point(core.P(3, 4)) != PointEmpty || m.Point(core.P(2, 2)) != PointBody {
		t.Error("moving the copy changed the original map")
	}
	if cp.Head() != core.P(3, 4) {
		t.Errorf("copy head = %v, expected Pos(3,4)", cp.Head())
	}
}

func TestSnakeShape(t *testing.T) {
	m := mustMap(t, 7, 7)
	// Head at (1,3) moving up; body turns from rightward to upward at (2,3).
	s := mustSnake(t, m, core.DirecUp,
		core.P(1, 3), core.P(2, 3), core.P(2, 2), core.P(3, 2), core.P(4, 2))

	expected := []BodyShape{ShapeHeadU, ShapeCornerLU, ShapeCornerRD, ShapeVertical, ShapeTail}
	for i, want := range expected {
		if got := s.Shape(i); got != want {
			t.Errorf("Shape(%d) = %v, expected %v", i, got, want)
		}
	}
}
