package bubbles

import (
	"github.com/vovakirdan/bubble-trouble/internal/config"
	"github.com/vovakirdan/bubble-trouble/internal/core"
)

// Game adapts a Session to the platform: it owns the config, recreates the
// session on Reset and draws it into a screen buffer.
type Game struct {
	cfg     config.GameConfig
	runtime core.RuntimeConfig
	session *Session
}

// New creates a game from a validated config. Call Reset before stepping.
func New(cfg config.GameConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "bubbles"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Bubble Trouble"
}

// Reset starts a fresh session.
// The screen size only affects rendering; the world is fixed by the config.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.session = NewSession(g.cfg)
}

// Resize updates the screen size without touching the session.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime = runtime
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	events := g.session.Step(in)
	return core.StepResult{
		State:  g.session.State(),
		Events: events,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.session.State()
}

// Session exposes the underlying simulation state.
func (g *Game) Session() *Session {
	return g.session
}

// Timestep returns seconds per tick, used by the platform for frame pacing.
func (g *Game) Timestep() float64 {
	return g.cfg.Physics.Timestep
}
