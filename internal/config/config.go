// Package config provides YAML-based configuration loading for the
// snake autopilot: board size, initial placement, solver choice, timing
// and benchmark settings.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// GameConfig contains all configuration for one game or benchmark run.
type GameConfig struct {
	Map     MapConfig     `yaml:"map"`
	Snake   SnakeConfig   `yaml:"snake"`
	Solver  SolverConfig  `yaml:"solver"`
	Timing  TimingConfig  `yaml:"timing"`
	Episode EpisodeConfig `yaml:"episode"`
	Bench   BenchConfig   `yaml:"bench"`
}

// MapConfig sets the playable interior size. Walls are added around it.
type MapConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// SnakeConfig sets the initial placement. Empty bodies mean a random
// placement on every reset.
type SnakeConfig struct {
	Direction string  `yaml:"direction"`
	Bodies    [][]int `yaml:"bodies"` // [row, col] pairs, head first, wall-inclusive coordinates
}

// SolverConfig selects the autopilot.
type SolverConfig struct {
	Name      string `yaml:"name"`
	Shortcuts bool   `yaml:"shortcuts"`
}

// TimingConfig defines the tick interval of the interactive player.
type TimingConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}

// EpisodeConfig bounds an episode.
type EpisodeConfig struct {
	MaxSteps int `yaml:"max_steps"` // 0 means unlimited
}

// BenchConfig defines the headless benchmark.
type BenchConfig struct {
	Episodes int   `yaml:"episodes"`
	Workers  int   `yaml:"workers"`
	Seed     int64 `yaml:"seed"`
}

// MapRows returns the grid height including walls.
func (c GameConfig) MapRows() int { return c.Map.Rows + 2 }

// MapCols returns the grid width including walls.
func (c GameConfig) MapCols() int { return c.Map.Cols + 2 }

// InitialDirec returns the configured initial direction.
func (c GameConfig) InitialDirec() (core.Direc, error) {
	return ParseDirec(c.Snake.Direction)
}

// BodyPositions returns the configured bodies, or nil for random placement.
func (c GameConfig) BodyPositions() ([]core.Pos, error) {
	if len(c.Snake.Bodies) == 0 {
		return nil, nil
	}
	out := make([]core.Pos, 0, len(c.Snake.Bodies))
	for i, b := range c.Snake.Bodies {
		if len(b) != 2 {
			return nil, fmt.Errorf("%w: snake.bodies[%d] must be [row, col]", ErrInvalidConfig, i)
		}
		out = append(out, core.P(b[0], b[1]))
	}
	return out, nil
}

// Validate reports the first configuration error found.
func (c GameConfig) Validate() error {
	switch {
	case c.Map.Rows < 3 || c.Map.Cols < 3:
		return fmt.Errorf("%w: map interior must be at least 3x3, got %dx%d", ErrInvalidConfig, c.Map.Rows, c.Map.Cols)
	case c.Solver.Name == "":
		return fmt.Errorf("%w: solver.name is empty", ErrInvalidConfig)
	case c.Timing.IntervalMs <= 0:
		return fmt.Errorf("%w: timing.interval_ms must be positive", ErrInvalidConfig)
	case c.Episode.MaxSteps < 0:
		return fmt.Errorf("%w: episode.max_steps must not be negative", ErrInvalidConfig)
	case c.Bench.Episodes < 0 || c.Bench.Workers < 0:
		return fmt.Errorf("%w: bench.episodes and bench.workers must not be negative", ErrInvalidConfig)
	}
	if _, err := c.InitialDirec(); err != nil {
		return err
	}
	if _, err := c.BodyPositions(); err != nil {
		return err
	}
	return nil
}

// ParseDirec converts a direction name from configuration.
func ParseDirec(s string) (core.Direc, error) {
	d, ok := core.ParseDirec(s)
	if !ok {
		return core.DirecNone, fmt.Errorf("%w: unknown direction %q", ErrInvalidConfig, s)
	}
	return d, nil
}
