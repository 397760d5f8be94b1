// Package game drives one snake episode: it owns the grid, the snake and
// the autopilot, and advances them one tick per Step.
package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/board"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/solver"
)

// maxPlacements bounds how often a random start is re-rolled for a
// solver that cannot work from it.
const maxPlacements = 64

// Status describes how an episode stands.
type Status string

const (
	StatusEating    Status = "eating"
	StatusDead      Status = "dead"
	StatusFull      Status = "full"
	StatusStepLimit Status = "step_limit"
)

// Over reports whether the status ends the episode.
func (s Status) Over() bool { return s != StatusEating }

// Game binds a map, a snake and a solver.
type Game struct {
	cfg    config.GameConfig
	rng    *rand.Rand
	tick   uint64
	m      *board.Map
	snake  *board.Snake
	solver registry.Solver
	status Status
	paused bool
}

// New creates a game for cfg. Call Reset before the first Step.
func New(cfg config.GameConfig) *Game {
	return &Game{cfg: cfg, status: StatusEating}
}

// Reset starts a new episode seeded from rc.Seed. On error the game is
// left as it was.
func (g *Game) Reset(rc core.RuntimeConfig) error {
	rng := core.NewRand(rc.Seed)

	m, err := board.NewMap(g.cfg.MapRows(), g.cfg.MapCols())
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}

	bodies, err := g.cfg.BodyPositions()
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	var opt board.SnakeOption
	if bodies == nil {
		opt = board.WithRandomPlacement(rng)
	} else {
		direc, err := g.cfg.InitialDirec()
		if err != nil {
			return fmt.Errorf("game: %w", err)
		}
		opt = board.WithBodies(direc, bodies)
	}
	snake, err := board.NewSnake(m, opt)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}

	sv, err := g.newSolver(snake, rng, bodies == nil)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}

	g.rng = rng
	g.tick = 0
	g.paused = false
	g.status = StatusEating
	g.m, g.snake, g.solver = m, snake, sv
	g.m.CreateRandomFood(g.rng)
	return nil
}

// newSolver binds the configured solver to snake. A random start the
// Hamilton cycle cannot cover from is drawn again.
func (g *Game) newSolver(snake *board.Snake, rng core.Rand, random bool) (registry.Solver, error) {
	opts := registry.Options{NoShortcuts: !g.cfg.Solver.Shortcuts}
	for i := 1; ; i++ {
		sv, err := registry.Create(g.cfg.Solver.Name, snake, rng, opts)
		if err == nil {
			return sv, nil
		}
		if !random || !errors.Is(err, solver.ErrNoCycle) || i == maxPlacements {
			return nil, err
		}
		snake.Reset()
	}
}

// Step advances the game by one tick: food is spawned when missing, the
// solver picks a direction and the snake moves. While paused, a steering
// input moves the snake a single cell in that direction.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.snake == nil {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	if input.Has(core.ActionRestart) && g.status.Over() {
		// A failed reset keeps the finished episode on screen.
		err := g.Reset(core.RuntimeConfig{Seed: g.rng.Int63()})
		return core.StepResult{State: g.State(), Err: err}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if !g.m.HasFood() {
		g.m.CreateRandomFood(g.rng)
	}

	if g.status.Over() {
		return core.StepResult{State: g.State()}
	}

	d := input.Steering()
	if g.paused {
		if d == core.DirecNone || !g.snake.SetDirecNext(d) {
			return core.StepResult{State: g.State()}
		}
		return g.advance(g.snake.MoveNext)
	}

	if d != core.DirecNone {
		g.snake.SetDirecNext(d)
	}
	return g.advance(func() { g.snake.Move(g.solver.NextDirec()) })
}

// advance applies one move and reports what it did.
func (g *Game) advance(move func()) core.StepResult {
	steps, length := g.snake.Steps(), g.snake.Len()
	move()
	g.updateStatus()

	return core.StepResult{
		State: g.State(),
		Moved: g.snake.Steps() != steps,
		Ate:   g.snake.Len() > length,
	}
}

func (g *Game) updateStatus() {
	switch {
	case g.snake.Dead():
		g.status = StatusDead
	case g.m.IsFull():
		g.status = StatusFull
	case g.cfg.Episode.MaxSteps > 0 && g.snake.Steps() >= g.cfg.Episode.MaxSteps:
		g.status = StatusStepLimit
	}
}

// Steer buffers a driver direction for the next move. Reversals are
// rejected.
func (g *Game) Steer(d core.Direc) bool {
	if g.snake == nil {
		return false
	}
	return g.snake.SetDirecNext(d)
}

// Status returns the current episode status.
func (g *Game) Status() Status { return g.status }

// Snake returns the live snake.
func (g *Game) Snake() *board.Snake { return g.snake }

// Map returns the live map.
func (g *Game) Map() *board.Map { return g.m }

// SolverName returns the configured solver's name.
func (g *Game) SolverName() string {
	if g.solver == nil {
		return g.cfg.Solver.Name
	}
	return g.solver.Name()
}

// Config returns the configuration the game was created with.
func (g *Game) Config() config.GameConfig { return g.cfg }

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{GameOver: g.status.Over(), Paused: g.paused}
	if g.snake != nil {
		st.Score = g.snake.Len()
		st.Steps = g.snake.Steps()
	}
	return st
}
