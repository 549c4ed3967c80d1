// Package bubbles implements the Bubble Trouble simulation: a shooter at the
// bottom of the field fires bullets upward at bubbles bouncing off the walls.
package bubbles

import (
	"github.com/vovakirdan/bubble-trouble/internal/config"
	"github.com/vovakirdan/bubble-trouble/internal/core"
)

// Phase is the session state machine. GameOver is terminal.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Session holds all mutable state of one game.
// It is owned by a single goroutine; nothing in it is shared.
type Session struct {
	Shooter Shooter
	Bubbles []Bubble
	Bullets []Bullet

	Score  int
	Health int
	Phase  Phase
	Tick   uint64
	Wave   int

	fireWasDown bool // Fire control state on the previous tick

	cfg        config.GameConfig
	field      Field
	difficulty *config.DifficultyManager
	events     []core.Event
}

// NewSession creates a session in the Playing phase from a validated config.
func NewSession(cfg config.GameConfig) *Session {
	field := Field{W: cfg.Field.Width, H: cfg.Field.Height}
	s := &Session{
		Shooter: Shooter{
			X:         field.W / 2,
			Y:         field.H - cfg.Shooter.OffsetFromBottom,
			Speed:     cfg.Shooter.Speed,
			HalfWidth: cfg.Shooter.HalfWidth,
		},
		Health:     cfg.Gameplay.Health,
		Phase:      PhasePlaying,
		Wave:       1,
		cfg:        cfg,
		field:      field,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	s.Bubbles = spawnBubbles(cfg.Bubbles, 1.0)
	return s
}

// spawnBubbles builds the bubble set from specs with velocities scaled by factor.
func spawnBubbles(specs []config.BubbleSpec, factor float64) []Bubble {
	out := make([]Bubble, 0, len(specs))
	for _, b := range specs {
		out = append(out, Bubble{
			X:      b.X,
			Y:      b.Y,
			Radius: b.Radius,
			VX:     b.VX * factor,
			VY:     b.VY * factor,
		})
	}
	return out
}

// Field returns the play area.
func (s *Session) Field() Field {
	return s.field
}

// Timestep returns the fixed simulation delta in seconds.
func (s *Session) Timestep() float64 {
	return s.cfg.Physics.Timestep
}

// Step advances the session by one fixed tick and returns what happened.
// A session in GameOver is not advanced.
func (s *Session) Step(in core.InputFrame) []core.Event {
	s.events = nil
	if s.Phase == PhaseGameOver {
		return nil
	}

	dt := s.cfg.Physics.Timestep

	s.Shooter.Move(in.Direction(), dt, s.field)

	// Fire on the rising edge only; a held control spawns one bullet.
	fireDown := in.Has(core.ActionFire)
	if fireDown && !s.fireWasDown {
		s.fire()
	}
	s.fireWasDown = fireDown

	for i := range s.Bubbles {
		s.Bubbles[i].Move(dt, s.field, s.cfg.Physics.Reflection)
	}
	for i := range s.Bullets {
		s.Bullets[i].Move(dt)
	}

	hadBubbles := len(s.Bubbles) > 0
	s.resolveCollisions()

	if s.Phase == PhasePlaying && hadBubbles && len(s.Bubbles) == 0 {
		s.emit(core.EventWaveCleared, s.field.W/2, s.field.H/2)
		if s.cfg.Waves.Enabled {
			s.nextWave()
		}
	}

	s.Tick++
	return s.events
}

// fire spawns a bullet at the shooter's barrel.
func (s *Session) fire() {
	s.Bullets = append(s.Bullets, Bullet{
		X:      s.Shooter.X,
		Y:      s.Shooter.Y,
		VY:     -s.cfg.Bullet.Speed,
		Radius: s.cfg.Bullet.Radius,
	})
	s.emit(core.EventBulletFired, s.Shooter.X, s.Shooter.Y)
}

// nextWave respawns the initial bubble set, faster as the score grows.
func (s *Session) nextWave() {
	factor := s.difficulty.SpeedFactor(s.Score, int(s.Tick)) //nolint:gosec // tick count fits in int
	s.Bubbles = spawnBubbles(s.cfg.Bubbles, factor)
	s.Wave++
	s.emit(core.EventWaveSpawned, s.field.W/2, s.field.H/2)
}

// ShooterHitCircle returns the region in which a bubble hurts the shooter.
func (s *Session) ShooterHitCircle() core.Circle {
	return core.NewCircle(s.Shooter.X, s.Shooter.Y+s.cfg.Shooter.HitOffsetY, s.cfg.Shooter.HitRadius)
}

// State returns the platform-facing summary of the session.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.Score,
		Health:   s.Health,
		GameOver: s.Phase == PhaseGameOver,
	}
}

func (s *Session) emit(kind core.EventKind, x, y float64) {
	s.events = append(s.events, core.Event{Kind: kind, Tick: s.Tick, X: x, Y: y})
}
