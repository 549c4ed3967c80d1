package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to fit the play field to the terminal.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second, 0 means derive from the game timestep
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 0,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Health   int  // Remaining health
	GameOver bool // Whether the session reached its terminal state
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventBulletFired EventKind = iota
	EventBulletExpired
	EventBubblePopped
	EventShooterHit
	EventWaveCleared
	EventWaveSpawned
	EventGameOver
)

// String returns a log-friendly name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventBulletFired:
		return "bullet_fired"
	case EventBulletExpired:
		return "bullet_expired"
	case EventBubblePopped:
		return "bubble_popped"
	case EventShooterHit:
		return "shooter_hit"
	case EventWaveCleared:
		return "wave_cleared"
	case EventWaveSpawned:
		return "wave_spawned"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event records one occurrence within a tick.
// X and Y are world coordinates where it happened.
type Event struct {
	Kind EventKind
	Tick uint64
	X, Y float64
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
