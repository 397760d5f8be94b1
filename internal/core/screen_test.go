package core

import "testing"

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(6, 2)
	s.SetCell(1, 0, '>', ColorHead)
	s.DrawTextColored(2, 1, "ab", ColorInfo)
	s.SetCell(-1, 7, 'x', ColorFood)

	tests := []struct {
		x, y     int
		expected Cell
	}{
		{1, 0, Cell{Rune: '>', Color: ColorHead}},
		{3, 1, Cell{Rune: 'b', Color: ColorInfo}},
		{0, 0, blankCell},
		{-1, 7, blankCell},
	}
	for _, tt := range tests {
		if got := s.GetCell(tt.x, tt.y); got != tt.expected {
			t.Errorf("GetCell(%d, %d) = %+v, expected %+v", tt.x, tt.y, got, tt.expected)
		}
	}

	s.Clear()
	if got := s.GetCell(1, 0); got != blankCell {
		t.Errorf("after Clear, GetCell(1, 0) = %+v, expected blank", got)
	}
}

func TestScreenDrawBoxColor(t *testing.T) {
	s := NewScreen(8, 5)
	s.DrawBox(NewRect(1, 1, 5, 3), ColorWarn)

	tests := []struct {
		x, y     int
		expected rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 3, '└'},
		{5, 3, '┘'},
		{3, 1, '─'},
		{1, 2, '│'},
	}
	for _, tt := range tests {
		c := s.GetCell(tt.x, tt.y)
		if c.Rune != tt.expected || c.Color != ColorWarn {
			t.Errorf("GetCell(%d, %d) = %+v, expected %q in %v", tt.x, tt.y, c, tt.expected, ColorWarn)
		}
	}
	if c := s.GetCell(3, 2); c != blankCell {
		t.Errorf("box interior = %+v, expected blank", c)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "FULL")
	if got := s.Row(0); got != "   FULL    " {
		t.Errorf("Row(0) = %q, expected %q", got, "   FULL    ")
	}
}

func TestScreenResizeKeepsColors(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetCell(0, 0, '#', ColorWall)
	s.SetCell(3, 1, '*', ColorFood)

	s.Resize(2, 1)
	if s.Width() != 2 || s.Height() != 1 {
		t.Fatalf("size = %dx%d, expected 2x1", s.Width(), s.Height())
	}
	if got := s.GetCell(0, 0); got != (Cell{Rune: '#', Color: ColorWall}) {
		t.Errorf("GetCell(0, 0) = %+v, expected a wall", got)
	}

	s.Resize(4, 2)
	if got := s.GetCell(3, 1); got != blankCell {
		t.Errorf("GetCell(3, 1) = %+v, expected cropped cell to stay blank", got)
	}
	if got := s.String(); got != "#   \n    " {
		t.Errorf("String() = %q, expected %q", got, "#   \n    ")
	}
}
