package config

import (
	_ "embed"
)

//go:embed defaults/bubbles.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration.
// It mirrors defaults/bubbles.yaml and is used if the embedded file fails to parse.
func DefaultConfig() GameConfig {
	return GameConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Physics: PhysicsConfig{
			Timestep:   0.02,
			Reflection: ReflectionApproximate,
		},
		Shooter: ShooterConfig{
			Speed:            400,
			OffsetFromBottom: 50,
			HalfWidth:        20,
			HitRadius:        20,
			HitOffsetY:       10,
		},
		Bullet: BulletConfig{
			Speed:  400,
			Radius: 5,
		},
		Gameplay: GameplayConfig{
			Health:          3,
			PointsPerBubble: 10,
			Recovery:        Point{X: 400, Y: 100},
		},
		Bubbles: []BubbleSpec{
			{X: 200, Y: 200, Radius: 30, VX: 100, VY: 150},
			{X: 400, Y: 100, Radius: 40, VX: -150, VY: 100},
		},
		Waves: WavesConfig{
			Enabled: false,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
