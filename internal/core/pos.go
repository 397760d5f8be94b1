package core

import "fmt"

// Pos is an integer grid coordinate. The origin is the top-left corner;
// Row grows downward and Col grows rightward.
type Pos struct {
	Row int
	Col int
}

// P is a convenience constructor for Pos.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

func (p Pos) String() string {
	return fmt.Sprintf("Pos(%d,%d)", p.Row, p.Col)
}

// Add returns the component-wise sum.
func (p Pos) Add(o Pos) Pos {
	return Pos{Row: p.Row + o.Row, Col: p.Col + o.Col}
}

// Sub returns the component-wise difference.
func (p Pos) Sub(o Pos) Pos {
	return Pos{Row: p.Row - o.Row, Col: p.Col - o.Col}
}

// Neg returns the negated position.
func (p Pos) Neg() Pos {
	return Pos{Row: -p.Row, Col: -p.Col}
}

// Adj returns the neighbor one step away in direction d.
// Adj(DirecNone) returns p unchanged.
func (p Pos) Adj(d Direc) Pos {
	dr, dc := d.Delta()
	return Pos{Row: p.Row + dr, Col: p.Col + dc}
}

// AllAdj returns the four neighbors of p in Valid() order.
func (p Pos) AllAdj() []Pos {
	out := make([]Pos, 0, len(validDirecs))
	for _, d := range validDirecs {
		out = append(out, p.Adj(d))
	}
	return out
}

// DirecTo returns the direction from p to an adjacent position, or
// DirecNone if the two are not 4-adjacent.
func (p Pos) DirecTo(adj Pos) Direc {
	diff := adj.Sub(p)
	for _, d := range validDirecs {
		dr, dc := d.Delta()
		if diff.Row == dr && diff.Col == dc {
			return d
		}
	}
	return DirecNone
}

// Manhattan returns the L1 distance between p and o.
func (p Pos) Manhattan(o Pos) int {
	return Abs(p.Row-o.Row) + Abs(p.Col-o.Col)
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
