package config

import "fmt"

// SpeedPreset represents a named tick interval.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
	SpeedTurbo  SpeedPreset = "turbo"
)

// Interval bounds for live speed changes.
const (
	MinIntervalMs = 5
	MaxIntervalMs = 1000
)

// IntervalForPreset returns the tick interval for a speed preset.
func IntervalForPreset(preset SpeedPreset) (int, bool) {
	switch preset {
	case SpeedSlow:
		return 200, true
	case SpeedNormal:
		return 80, true
	case SpeedFast:
		return 30, true
	case SpeedTurbo:
		return MinIntervalMs, true
	default:
		return 0, false
	}
}

// ApplySpeedPreset sets the tick interval from a preset name.
func ApplySpeedPreset(cfg *GameConfig, preset SpeedPreset) error {
	ms, ok := IntervalForPreset(preset)
	if !ok {
		return fmt.Errorf("%w: unknown speed %q", ErrInvalidConfig, preset)
	}
	cfg.Timing.IntervalMs = ms
	return nil
}

// StepInterval halves (faster) or doubles the interval, clamped to
// [MinIntervalMs, MaxIntervalMs].
func StepInterval(ms int, faster bool) int {
	if faster {
		ms /= 2
	} else {
		ms *= 2
	}
	return clamp(ms, MinIntervalMs, MaxIntervalMs)
}

// clamp restricts an int to [lo, hi].
func clamp(val, lo, hi int) int {
	return max(lo, min(hi, val))
}
