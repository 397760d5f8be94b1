// Package board holds the grid and the snake that moves on it.
//
// The grid is a rows x cols matrix of point types with a one-cell wall
// ring around the playable interior. The snake is the only writer of BODY
// cells; solvers read the grid and simulate on copies.
package board

import "errors"

// PointType is the content of one grid cell.
type PointType uint8

const (
	PointEmpty PointType = iota
	PointWall
	PointFood
	PointBody
)

func (t PointType) String() string {
	switch t {
	case PointEmpty:
		return "empty"
	case PointWall:
		return "wall"
	case PointFood:
		return "food"
	case PointBody:
		return "body"
	default:
		return "unknown"
	}
}

// Rune returns the single-character form used by Map.String.
func (t PointType) Rune() rune {
	switch t {
	case PointWall:
		return '#'
	case PointFood:
		return '*'
	case PointBody:
		return 'o'
	default:
		return '.'
	}
}

// Configuration errors.
var (
	ErrMapTooSmall = errors.New("board: map must be at least 5x5")
	ErrInvalidBody = errors.New("board: invalid initial body")
)

// MinSize is the smallest accepted side length, walls included.
const MinSize = 5
