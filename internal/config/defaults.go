package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultGameConfig returns the default configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Map: MapConfig{
			Rows: 10,
			Cols: 10,
		},
		Snake: SnakeConfig{
			Direction: "right",
		},
		Solver: SolverConfig{
			Name:      "hamilton",
			Shortcuts: true,
		},
		Timing: TimingConfig{
			IntervalMs: 80,
		},
		Episode: EpisodeConfig{
			MaxSteps: 0,
		},
		Bench: BenchConfig{
			Episodes: 100,
			Workers:  4,
			Seed:     1,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSnakeYAML
}
