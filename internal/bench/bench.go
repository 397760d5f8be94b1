// Package bench plays many headless episodes in parallel and aggregates
// the results.
package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/solver"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// ErrManualSolver is returned when asked to benchmark keyboard control.
var ErrManualSolver = errors.New("bench: the manual solver cannot run headless")

// Recorder persists finished episodes. *storage.Store satisfies it.
type Recorder interface {
	SaveEpisode(e storage.Episode) (int64, error)
}

// Options tunes a benchmark run. Zero values fall back to cfg.Bench.
type Options struct {
	Episodes int
	Workers  int
	Seed     int64
	Recorder Recorder
	Logger   *log.Logger
}

// Result is the outcome of one episode.
type Result struct {
	Index  int
	Seed   int64
	Status game.Status
	Length int
	Steps  int
}

// Summary aggregates a benchmark run.
type Summary struct {
	Solver         string
	Rows, Cols     int
	Episodes       int
	FullCount      int
	DeadCount      int
	StepLimitCount int
	AvgLength      float64
	AvgSteps       float64
	MaxLength      int
	Elapsed        time.Duration
	Results        []Result
}

// WinRate returns the fraction of episodes that filled the board.
func (s Summary) WinRate() float64 {
	if s.Episodes == 0 {
		return 0
	}
	return float64(s.FullCount) / float64(s.Episodes)
}

// StepCap bounds episodes that have no configured step limit, so a solver
// that chases its tail forever still terminates.
func StepCap(cfg config.GameConfig) int {
	capacity := cfg.Map.Rows * cfg.Map.Cols
	return 4 * capacity * capacity
}

// Run plays the configured number of episodes. Episode i is seeded with
// Seed+i, so results do not depend on the number of workers.
func Run(ctx context.Context, cfg config.GameConfig, opts Options) (Summary, error) {
	if cfg.Solver.Name == solver.NameManual {
		return Summary{}, ErrManualSolver
	}
	if opts.Episodes <= 0 {
		opts.Episodes = cfg.Bench.Episodes
	}
	if opts.Workers <= 0 {
		opts.Workers = max(cfg.Bench.Workers, 1)
	}
	if opts.Seed == 0 {
		opts.Seed = cfg.Bench.Seed
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.Episode.MaxSteps == 0 {
		cfg.Episode.MaxSteps = StepCap(cfg)
	}

	start := time.Now()
	results := make([]Result, opts.Episodes)

	// SQLite writes are serialised here rather than left to the driver.
	var recMu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i := range opts.Episodes {
		g.Go(func() error {
			res, err := playEpisode(ctx, cfg, i, opts.Seed+int64(i))
			if err != nil {
				return err
			}
			results[i] = res
			logger.Debug("episode finished",
				"index", i, "seed", res.Seed, "status", res.Status,
				"length", res.Length, "steps", res.Steps)

			if opts.Recorder == nil {
				return nil
			}
			recMu.Lock()
			defer recMu.Unlock()
			if _, err := opts.Recorder.SaveEpisode(toEpisode(cfg.Solver.Name, cfg.Map.Rows, cfg.Map.Cols, res)); err != nil {
				return fmt.Errorf("bench: episode %d: %w", i, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	sum := summarize(cfg, results)
	sum.Elapsed = time.Since(start)
	logger.Info("benchmark finished",
		"solver", sum.Solver, "episodes", sum.Episodes, "full", sum.FullCount,
		"dead", sum.DeadCount, "step_limit", sum.StepLimitCount,
		"avg_length", fmt.Sprintf("%.1f", sum.AvgLength), "elapsed", sum.Elapsed.Round(time.Millisecond))
	return sum, nil
}

func playEpisode(ctx context.Context, cfg config.GameConfig, idx int, seed int64) (Result, error) {
	g := game.New(cfg)
	if err := g.Reset(core.RuntimeConfig{Seed: seed}); err != nil {
		return Result{}, fmt.Errorf("bench: episode %d: %w", idx, err)
	}

	in := core.NewInputFrame()
	for !g.Status().Over() {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		g.Step(in)
	}

	st := g.State()
	return Result{Index: idx, Seed: seed, Status: g.Status(), Length: st.Score, Steps: st.Steps}, nil
}

func summarize(cfg config.GameConfig, results []Result) Summary {
	sum := Summary{
		Solver:   cfg.Solver.Name,
		Rows:     cfg.Map.Rows,
		Cols:     cfg.Map.Cols,
		Episodes: len(results),
		Results:  results,
	}
	if len(results) == 0 {
		return sum
	}

	var totalLen, totalSteps int
	for _, r := range results {
		switch r.Status {
		case game.StatusFull:
			sum.FullCount++
		case game.StatusDead:
			sum.DeadCount++
		case game.StatusStepLimit:
			sum.StepLimitCount++
		}
		totalLen += r.Length
		totalSteps += r.Steps
		sum.MaxLength = max(sum.MaxLength, r.Length)
	}
	sum.AvgLength = float64(totalLen) / float64(len(results))
	sum.AvgSteps = float64(totalSteps) / float64(len(results))
	return sum
}

// Outcome maps a game status to the stored outcome name.
func Outcome(s game.Status) string {
	switch s {
	case game.StatusFull:
		return storage.OutcomeFull
	case game.StatusStepLimit:
		return storage.OutcomeStepLimit
	default:
		return storage.OutcomeDead
	}
}

// Records converts the results to storage episodes.
func (s Summary) Records() []storage.Episode {
	out := make([]storage.Episode, 0, len(s.Results))
	for _, r := range s.Results {
		out = append(out, toEpisode(s.Solver, s.Rows, s.Cols, r))
	}
	return out
}

func toEpisode(solver string, rows, cols int, r Result) storage.Episode {
	return storage.Episode{
		Solver:  solver,
		Rows:    rows,
		Cols:    cols,
		Seed:    r.Seed,
		Outcome: Outcome(r.Status),
		Length:  r.Length,
		Steps:   r.Steps,
	}
}
