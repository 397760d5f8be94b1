package game

import "github.com/vovakirdan/tui-snake/internal/core"

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Length  int
	Steps   int
	Head    core.Pos
	Direc   core.Direc
	Food    core.Pos
	HasFood bool
	Status  Status
	Paused  bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{Tick: g.tick, Status: g.status, Paused: g.paused}
	if g.snake == nil {
		return snap
	}
	snap.Length = g.snake.Len()
	snap.Steps = g.snake.Steps()
	snap.Head = g.snake.Head()
	snap.Direc = g.snake.Direc()
	snap.Food, snap.HasFood = g.m.Food()
	return snap
}
