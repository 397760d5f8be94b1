// Package core provides the geometry, random-source and screen primitives
// shared by the board, the solvers and the drivers. It has no external
// dependencies so that game logic stays pure and testable.
package core

// Direc is a movement direction on the grid.
type Direc uint8

const (
	DirecNone Direc = iota
	DirecLeft
	DirecUp
	DirecRight
	DirecDown
)

// validDirecs is the fixed iteration order used by Valid and Pos.AllAdj.
var validDirecs = [4]Direc{DirecLeft, DirecUp, DirecRight, DirecDown}

// Valid returns the four real directions in a fixed order.
func Valid() []Direc {
	out := make([]Direc, len(validDirecs))
	copy(out, validDirecs[:])
	return out
}

// Opposite returns the reverse direction. DirecNone maps to itself.
func (d Direc) Opposite() Direc {
	switch d {
	case DirecLeft:
		return DirecRight
	case DirecRight:
		return DirecLeft
	case DirecUp:
		return DirecDown
	case DirecDown:
		return DirecUp
	default:
		return DirecNone
	}
}

// Delta returns the (row, col) offset of one step in this direction.
// Up decreases the row, matching screen coordinates.
func (d Direc) Delta() (drow, dcol int) {
	switch d {
	case DirecLeft:
		return 0, -1
	case DirecUp:
		return -1, 0
	case DirecRight:
		return 0, 1
	case DirecDown:
		return 1, 0
	default:
		return 0, 0
	}
}

// IsHorizontal reports whether d is LEFT or RIGHT.
func (d Direc) IsHorizontal() bool {
	return d == DirecLeft || d == DirecRight
}

// IsVertical reports whether d is UP or DOWN.
func (d Direc) IsVertical() bool {
	return d == DirecUp || d == DirecDown
}

// Perpendicular returns the two directions orthogonal to d, in a fixed
// order: UP then DOWN for horizontal moves, LEFT then RIGHT for vertical.
func (d Direc) Perpendicular() [2]Direc {
	if d.IsHorizontal() {
		return [2]Direc{DirecUp, DirecDown}
	}
	return [2]Direc{DirecLeft, DirecRight}
}

func (d Direc) String() string {
	switch d {
	case DirecNone:
		return "none"
	case DirecLeft:
		return "left"
	case DirecUp:
		return "up"
	case DirecRight:
		return "right"
	case DirecDown:
		return "down"
	default:
		return "unknown"
	}
}

// ParseDirec converts a lowercase name back into a Direc.
func ParseDirec(s string) (Direc, bool) {
	switch s {
	case "none", "":
		return DirecNone, true
	case "left":
		return DirecLeft, true
	case "up":
		return DirecUp, true
	case "right":
		return DirecRight, true
	case "down":
		return DirecDown, true
	}
	return DirecNone, false
}
