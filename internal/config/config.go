// Package config provides YAML-based game configuration loading,
// validation and difficulty management.
package config

// GameConfig contains all configuration for Bubble Trouble.
type GameConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Shooter    ShooterConfig    `yaml:"shooter"`
	Bullet     BulletConfig     `yaml:"bullet"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Bubbles    []BubbleSpec     `yaml:"bubbles"`
	Waves      WavesConfig      `yaml:"waves"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the play area in world units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Reflection modes for bubbles hitting a wall.
const (
	ReflectionApproximate = "approximate" // negate velocity, re-advance by it
	ReflectionExact       = "exact"       // mirror the overshoot about the wall
)

// PhysicsConfig defines simulation parameters.
type PhysicsConfig struct {
	Timestep   float64 `yaml:"timestep"` // Seconds per tick
	Reflection string  `yaml:"reflection"`
}

// ShooterConfig defines the player avatar.
type ShooterConfig struct {
	Speed            float64 `yaml:"speed"`
	OffsetFromBottom float64 `yaml:"offset_from_bottom"`
	HalfWidth        float64 `yaml:"half_width"`
	HitRadius        float64 `yaml:"hit_radius"`
	HitOffsetY       float64 `yaml:"hit_offset_y"` // Hit circle center below the barrel tip
}

// BulletConfig defines player projectiles.
type BulletConfig struct {
	Speed  float64 `yaml:"speed"` // Upward speed, positive
	Radius float64 `yaml:"radius"`
}

// Point is a position in world units.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// GameplayConfig defines scoring and health.
type GameplayConfig struct {
	Health          int   `yaml:"health"`
	PointsPerBubble int   `yaml:"points_per_bubble"`
	Recovery        Point `yaml:"recovery"` // Where a bubble goes after hitting the shooter
}

// BubbleSpec is the initial state of one bubble.
type BubbleSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
	VX     float64 `yaml:"vx"`
	VY     float64 `yaml:"vy"`
}

// WavesConfig controls respawning the bubble set once the field is cleared.
type WavesConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to wave speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Health = 5
		scaleBubbleSpeeds(cfg, 0.75)
	case DifficultyHard:
		cfg.Gameplay.Health = 2
		scaleBubbleSpeeds(cfg, 1.5)
	}
}

func scaleBubbleSpeeds(cfg *GameConfig, f float64) {
	for i := range cfg.Bubbles {
		cfg.Bubbles[i].VX *= f
		cfg.Bubbles[i].VY *= f
	}
}
