package solver

import "github.com/vovakirdan/tui-snake/internal/core"

// ManualSolver never decides. The driver steers through
// Snake.SetDirecNext and the game advances with MoveNext.
type ManualSolver struct{}

// Name returns the registry name of the solver.
func (ManualSolver) Name() string { return NameManual }

// NextDirec always returns DirecNone.
func (ManualSolver) NextDirec() core.Direc { return core.DirecNone }
