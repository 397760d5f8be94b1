package board

import "github.com/vovakirdan/tui-snake/internal/core"

// BodyShape is the visual form of one body segment. It is derived from
// the snake's chain on demand and never stored on the grid.
type BodyShape uint8

const (
	ShapeHeadL BodyShape = iota
	ShapeHeadU
	ShapeHeadR
	ShapeHeadD
	ShapeHorizontal
	ShapeVertical
	ShapeCornerLU // joins left and up
	ShapeCornerUR // joins up and right
	ShapeCornerRD // joins right and down
	ShapeCornerDL // joins down and left
	ShapeTail
)

// Shape returns the shape of body segment i (0 is the head).
func (s *Snake) Shape(i int) BodyShape {
	n := len(s.bodies)
	switch {
	case i == 0:
		d := s.direc
		if n > 1 {
			if moved := s.bodies[1].DirecTo(s.bodies[0]); moved != core.DirecNone {
				d = moved
			}
		}
		return headShape(d)
	case i == n-1:
		return ShapeTail
	}

	in := s.bodies[i+1].DirecTo(s.bodies[i])
	out := s.bodies[i].DirecTo(s.bodies[i-1])
	return turnShape(in, out)
}

func headShape(d core.Direc) BodyShape {
	switch d {
	case core.DirecLeft:
		return ShapeHeadL
	case core.DirecUp:
		return ShapeHeadU
	case core.DirecDown:
		return ShapeHeadD
	default:
		return ShapeHeadR
	}
}

// turnShape maps the direction entering a segment and the direction
// leaving it to the segment's shape.
func turnShape(in, out core.Direc) BodyShape {
	switch {
	case in == out && in.IsVertical():
		return ShapeVertical
	case in == out:
		return ShapeHorizontal
	case (in == core.DirecRight && out == core.DirecUp) || (in == core.DirecDown && out == core.DirecLeft):
		return ShapeCornerLU
	case (in == core.DirecLeft && out == core.DirecUp) || (in == core.DirecDown && out == core.DirecRight):
		return ShapeCornerUR
	case (in == core.DirecLeft && out == core.DirecDown) || (in == core.DirecUp && out == core.DirecRight):
		return ShapeCornerRD
	case (in == core.DirecRight && out == core.DirecDown) || (in == core.DirecUp && out == core.DirecLeft):
		return ShapeCornerDL
	}
	return ShapeHorizontal
}

// Rune returns the box-drawing character used to draw the shape.
func (b BodyShape) Rune() rune {
	switch b {
	case ShapeHeadL:
		return '<'
	case ShapeHeadU:
		return '^'
	case ShapeHeadR:
		return '>'
	case ShapeHeadD:
		return 'v'
	case ShapeHorizontal:
		return '═'
	case ShapeVertical:
		return '║'
	case ShapeCornerLU:
		return '╝'
	case ShapeCornerUR:
		return '╚'
	case ShapeCornerRD:
		return '╔'
	case ShapeCornerDL:
		return '╗'
	case ShapeTail:
		return 'o'
	}
	return '?'
}
