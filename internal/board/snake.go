package board

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// placement describes how a snake is put on the grid at creation and
// on every Reset.
type placement struct {
	direc    core.Direc
	bodies   []core.Pos
	explicit bool      // set by WithBodies, even for an empty body
	rng      core.Rand // non-nil means random placement
}

// SnakeOption configures NewSnake.
type SnakeOption func(*placement)

// WithBodies places the snake explicitly. Positions are head first.
func WithBodies(direc core.Direc, bodies []core.Pos) SnakeOption {
	return func(pl *placement) {
		pl.direc = direc
		pl.bodies = append([]core.Pos(nil), bodies...)
		pl.explicit = true
		pl.rng = nil
	}
}

// WithRandomPlacement places a two-cell snake at a random position and
// direction drawn from rng. Reset draws a new placement.
func WithRandomPlacement(rng core.Rand) SnakeOption {
	return func(pl *placement) {
		pl.rng = rng
		pl.bodies = nil
		pl.explicit = false
	}
}

// Snake is a chain of adjacent cells on a Map, head first.
type Snake struct {
	m         *Map
	init      placement
	direc     core.Direc
	direcNext core.Direc
	bodies    []core.Pos
	dead      bool
	steps     int
}

// NewSnake places a snake on m. Without options the snake is placed at
// random using a fixed seed.
func NewSnake(m *Map, opts ...SnakeOption) (*Snake, error) {
	pl := placement{}
	for _, opt := range opts {
		opt(&pl)
	}
	if !pl.explicit && pl.rng == nil {
		pl.rng = core.NewRand(0)
	}
	if pl.explicit {
		if err := validateBodies(m, pl.direc, pl.bodies); err != nil {
			return nil, err
		}
	}

	s := &Snake{m: m, init: pl}
	s.place()
	return s, nil
}

func validateBodies(m *Map, direc core.Direc, bodies []core.Pos) error {
	if len(bodies) == 0 {
		return fmt.Errorf("%w: no body cells", ErrInvalidBody)
	}
	if direc == core.DirecNone {
		return fmt.Errorf("%w: direction is none", ErrInvalidBody)
	}
	seen := make(map[core.Pos]bool, len(bodies))
	for i, p := range bodies {
		if !m.IsEmpty(p) {
			return fmt.Errorf("%w: %v is not an empty interior cell", ErrInvalidBody, p)
		}
		if seen[p] {
			return fmt.Errorf("%w: %v appears twice", ErrInvalidBody, p)
		}
		seen[p] = true
		if i > 0 && bodies[i-1].Manhattan(p) != 1 {
			return fmt.Errorf("%w: %v is not adjacent to %v", ErrInvalidBody, p, bodies[i-1])
		}
	}
	return nil
}

// place writes the initial placement onto the (already reset) map.
func (s *Snake) place() {
	s.dead = false
	s.steps = 0
	s.direcNext = core.DirecNone

	if s.init.rng != nil {
		rng := s.init.rng
		head := core.P(rng.Intn(s.m.rows-4)+2, rng.Intn(s.m.cols-4)+2)
		valid := core.Valid()
		s.direc = valid[rng.Intn(len(valid))]
		s.bodies = []core.Pos{head, head.Adj(s.direc.Opposite())}
	} else {
		s.direc = s.init.direc
		s.bodies = append([]core.Pos(nil), s.init.bodies...)
	}
	for _, p := range s.bodies {
		s.m.SetPoint(p, PointBody)
	}
}

// Reset clears the map and puts the snake back at its initial placement.
// A random placement is drawn again.
func (s *Snake) Reset() {
	s.m.Reset()
	s.place()
}

// Copy returns an independent snake bound to a copy of its map.
// Random placements in the copy share the original's source.
func (s *Snake) Copy() (*Snake, *Map) {
	m := s.m.Copy()
	cp := &Snake{
		m:         m,
		init:      s.init,
		direc:     s.direc,
		direcNext: s.direcNext,
		bodies:    append([]core.Pos(nil), s.bodies...),
		dead:      s.dead,
		steps:     s.steps,
	}
	cp.init.bodies = append([]core.Pos(nil), s.init.bodies...)
	return cp, m
}

// Map returns the grid the snake moves on.
func (s *Snake) Map() *Map { return s.m }

// Len returns the number of body cells.
func (s *Snake) Len() int { return len(s.bodies) }

// Head returns the head position.
func (s *Snake) Head() core.Pos { return s.bodies[0] }

// Tail returns the tail position.
func (s *Snake) Tail() core.Pos { return s.bodies[len(s.bodies)-1] }

// Bodies returns a copy of the body positions, head first.
func (s *Snake) Bodies() []core.Pos {
	return append([]core.Pos(nil), s.bodies...)
}

// Direc returns the direction of the last move.
func (s *Snake) Direc() core.Direc { return s.direc }

// DirecNext returns the buffered direction for the next move.
func (s *Snake) DirecNext() core.Direc { return s.direcNext }

// Dead reports whether the snake has collided.
func (s *Snake) Dead() bool { return s.dead }

// Steps returns the number of moves made since the last reset.
func (s *Snake) Steps() int { return s.steps }

// SetDirecNext buffers a direction for the next MoveNext. Reversing the
// committed direction is rejected.
func (s *Snake) SetDirecNext(d core.Direc) bool {
	if d == core.DirecNone || d == s.direc.Opposite() {
		return false
	}
	s.direcNext = d
	return true
}

// Move buffers d (unless it is DirecNone) and then advances one cell
// in the buffered direction. The move is skipped when the snake is dead,
// nothing is buffered, the map is full, or the move would reverse the
// snake onto its neck.
func (s *Snake) Move(d core.Direc) {
	if d != core.DirecNone {
		s.direcNext = d
	}
	s.MoveNext()
}

// MoveNext advances one cell in the buffered direction.
func (s *Snake) MoveNext() {
	next := s.direcNext
	if s.dead || next == core.DirecNone || s.m.IsFull() || next == s.direc.Opposite() {
		return
	}

	newHead := s.Head().Adj(next)
	s.bodies = append(s.bodies, core.Pos{})
	copy(s.bodies[1:], s.bodies)
	s.bodies[0] = newHead

	if !s.m.IsSafe(newHead) {
		s.dead = true
	}
	if s.m.Point(newHead) == PointFood {
		s.m.RemoveFood()
	} else {
		tail := s.bodies[len(s.bodies)-1]
		s.m.SetPoint(tail, PointEmpty)
		s.bodies = s.bodies[:len(s.bodies)-1]
	}
	if s.m.inBounds(newHead) && s.m.Point(newHead) != PointWall {
		s.m.SetPoint(newHead, PointBody)
	}

	s.direc = next
	s.steps++
}

// MovePath applies Move for each direction in order.
func (s *Snake) MovePath(path []core.Direc) {
	for _, d := range path {
		s.Move(d)
	}
}

// CheckInvariants verifies that a live snake is a simple chain of
// adjacent interior cells, each marked as body on the map, and that no
// other body cells exist.
func (s *Snake) CheckInvariants() error {
	if len(s.bodies) == 0 {
		return fmt.Errorf("board: snake has no body")
	}
	if s.dead {
		return nil
	}
	seen := make(map[core.Pos]bool, len(s.bodies))
	for i, p := range s.bodies {
		if seen[p] {
			return fmt.Errorf("board: body cell %v repeated", p)
		}
		seen[p] = true
		if s.m.Point(p) != PointBody {
			return fmt.Errorf("board: body cell %v is %v on the map", p, s.m.Point(p))
		}
		if i > 0 && s.bodies[i-1].Manhattan(p) != 1 {
			return fmt.Errorf("board: body cells %v and %v are not adjacent", s.bodies[i-1], p)
		}
	}
	if n := s.m.CountPoints(PointBody); n != len(s.bodies) {
		return fmt.Errorf("board: map has %d body cells, snake has %d", n, len(s.bodies))
	}
	return nil
}
