package solver

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/board"
	"github.com/vovakirdan/tui-snake/internal/core"
)

func newSnake(t *testing.T, rows, cols int, direc core.Direc, bodies ...core.Pos) (*board.Snake, *board.Map) {
	t.Helper()
	m, err := board.NewMap(rows, cols)
	if err != nil {
		t.Fatalf("NewMap() error: %v", err)
	}
	s, err := board.NewSnake(m, board.WithBodies(direc, bodies))
	if err != nil {
		t.Fatalf("NewSnake() error: %v", err)
	}
	return s, m
}

func newRandomSnake(t *testing.T, rows, cols int, seed int64) (*board.Snake, *board.Map) {
	t.Helper()
	m, err := board.NewMap(rows, cols)
	if err != nil {
		t.Fatalf("NewMap() error: %v", err)
	}
	s, err := board.NewSnake(m, board.WithRandomPlacement(core.NewRand(seed)))
	if err != nil {
		t.Fatalf("NewSnake() error: %v", err)
	}
	return s, m
}

func direcsEqual(a, b []core.Direc) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
