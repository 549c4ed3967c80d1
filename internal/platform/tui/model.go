package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bubble-trouble/internal/core"
)

// Game is the surface the platform drives once per tick.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Resize(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	Timestep() float64
}

// helpLines is the number of terminal rows reserved below the field.
const helpLines = 1

// Terminals report a held key as a press followed by auto-repeat presses
// and never report the release. The fire key stays held while presses keep
// arriving: fireKeyDelay covers the pause before repeat starts and
// fireKeyRepeat the gap between repeats.
const (
	fireKeyDelay  = 600 * time.Millisecond
	fireKeyRepeat = 100 * time.Millisecond
)

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	keys       KeyMap
	keyMapper  *KeyMapper
	help       help.Model
	config     core.RuntimeConfig
	interval   time.Duration
	inputFrame core.InputFrame
	gameState  core.GameState
	logger     *log.Logger
	onGameOver func(core.GameState)
	fireHeld   bool // Left mouse button is down
	firePress  bool // Left press seen since the last tick
	fireKeys   int  // Ticks the fire key still counts as held
	quitting   bool
	finished   bool
}

// ModelOption customizes a Model.
type ModelOption func(*Model)

// WithLogger sets the logger used for game events.
func WithLogger(logger *log.Logger) ModelOption {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithGameOverHook registers a callback invoked once when the game ends.
func WithGameOverHook(fn func(core.GameState)) ModelOption {
	return func(m *Model) {
		m.onGameOver = fn
	}
}

// NewModel creates a new Bubble Tea model for the given game and starts it.
func NewModel(game Game, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	keys := DefaultKeyMap()
	m := Model{
		game:       game,
		keys:       keys,
		keyMapper:  NewKeyMapper(keys),
		help:       help.New(),
		config:     cfg,
		interval:   tickInterval(cfg.TickRate, game.Timestep()),
		inputFrame: core.NewInputFrame(),
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.screen = core.NewScreen(cfg.ScreenW, fieldHeight(cfg.ScreenH))
	game.Reset(m.fieldConfig())
	m.gameState = game.State()
	m.logger.Debug("game started", "game", game.Title(), "width", cfg.ScreenW, "height", cfg.ScreenH, "interval", m.interval)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keyMapper.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Debug("quit requested", "score", m.gameState.Score)
		return m, tea.Quit
	case core.ActionFire:
		m.holdFireKey()
	case core.ActionLeft, core.ActionRight:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// holdFireKey keeps the fire key held across auto-repeat. A press while the
// key is already held is a repeat and only extends the hold.
func (m *Model) holdFireKey() {
	if m.fireKeys > 0 {
		m.fireKeys = ticksFor(fireKeyRepeat, m.interval)
		return
	}
	m.fireKeys = ticksFor(fireKeyDelay, m.interval)
}

// ticksFor converts a duration to a whole number of ticks, at least one.
func ticksFor(d, interval time.Duration) int {
	if interval <= 0 {
		return 1
	}
	return max(int((d+interval-1)/interval), 1)
}

// handleMouse tracks the left button as a held fire control.
// A press is also latched so a click shorter than a tick still fires.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.fireHeld = true
			m.firePress = true
		}
	case tea.MouseActionRelease:
		// Some terminals report releases without a button.
		m.fireHeld = false
	}
	return m, nil
}

// handleResize processes window resize events.
// The session keeps running; only the viewport changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, fieldHeight(msg.Height))
	m.game.Resize(m.fieldConfig())
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.finished {
		return m, nil
	}

	if m.fireHeld || m.firePress || m.fireKeys > 0 {
		m.inputFrame.Set(core.ActionFire)
	}
	m.firePress = false
	if m.fireKeys > 0 {
		m.fireKeys--
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logEvents(result.Events)

	// Clear input for next frame
	m.inputFrame.Clear()

	if m.gameState.GameOver {
		m.finished = true
		m.logger.Info("game over", "score", m.gameState.Score)
		if m.onGameOver != nil {
			m.onGameOver(m.gameState)
		}
		return m, tea.Quit
	}

	return m, tickCmd(m.interval)
}

func (m Model) logEvents(events []core.Event) {
	for _, e := range events {
		m.logger.Debug(e.Kind.String(),
			"tick", e.Tick,
			"x", fmt.Sprintf("%.1f", e.X),
			"y", fmt.Sprintf("%.1f", e.Y),
		)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".bubbles", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.finished {
		return ""
	}

	m.game.Render(m.screen)
	footer := titleStyle.Render(m.game.Title()) + helpStyle.Render(m.help.View(m.keys))
	return RenderScreen(m.screen) + "\n" + footer
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Finished reports whether the game reached its terminal state.
func (m Model) Finished() bool {
	return m.finished
}

func (m Model) fieldConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = fieldHeight(cfg.ScreenH)
	return cfg
}

func fieldHeight(h int) int {
	return max(h-helpLines, 1)
}

// Run starts the Bubble Tea program and returns the final game state.
func Run(game Game, cfg core.RuntimeConfig, opts ...ModelOption) (core.GameState, error) {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return model.State(), nil
}
