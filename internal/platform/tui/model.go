package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/bench"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Model is the Bubble Tea model for watching or playing one game.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	intervalMs int
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model
	quitting   bool
	backToMenu bool
	saved      bool  // Whether the current episode has been stored
	err        error // Last failed restart, shown under the board
}

// NewModel resets g and wraps it in a Bubble Tea model. store may be nil.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := g.Reset(cfg); err != nil {
		return Model{}, err
	}

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		store:      store,
		config:     cfg,
		intervalMs: g.Config().Timing.IntervalMs,
		inputFrame: core.NewInputFrame(),
		gameState:  g.State(),
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.intervalMs)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		// Last line is reserved for help.
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToMenuAction(msg) == MenuActionBack {
		m.backToMenu = true
		return m, tea.Quit
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch action {
	case core.ActionNone:
	case core.ActionFaster:
		m.intervalMs = config.StepInterval(m.intervalMs, true)
	case core.ActionSlower:
		m.intervalMs = config.StepInterval(m.intervalMs, false)
	default:
		m.inputFrame.Set(action)
	}
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if result.Err != nil {
		m.err = result.Err
	}

	// Restart begins a new episode to store.
	if wasOver && !m.gameState.GameOver {
		m.saved = false
		m.err = nil
	}
	if m.gameState.GameOver && !m.saved {
		m.saveEpisode()
		m.saved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.intervalMs)
}

func (m *Model) saveEpisode() {
	if m.store == nil {
		return
	}
	cfg := m.game.Config()
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveEpisode(storage.Episode{
		Solver:  m.game.SolverName(),
		Rows:    cfg.Map.Rows,
		Cols:    cfg.Map.Cols,
		Seed:    m.config.Seed,
		Outcome: bench.Outcome(m.game.Status()),
		Length:  m.gameState.Score,
		Steps:   m.gameState.Steps,
	})
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".snake", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.SolverName(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	status := fmt.Sprintf(" %dms  ", m.intervalMs)
	if m.err != nil {
		status = fmt.Sprintf(" restart failed: %v  ", m.err)
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(status+m.help.View(m.keyMapper.Keys()))
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for g. It returns true when the
// user asked to go back to the menu rather than quit.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) (goBack bool, err error) {
	model, err := NewModel(g, store, cfg)
	if err != nil {
		return false, err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	return ok && m.BackToMenu(), nil
}
