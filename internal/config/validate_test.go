package config

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
		code   string
	}{
		{"defaults", func(*GameConfig) {}, ""},
		{"zero field", func(c *GameConfig) { c.Field.Width = 0 }, "INVALID_FIELD"},
		{"zero timestep", func(c *GameConfig) { c.Physics.Timestep = 0 }, "INVALID_TIMESTEP"},
		{"unknown reflection", func(c *GameConfig) { c.Physics.Reflection = "bouncy" }, "INVALID_REFLECTION"},
		{"shooter too wide", func(c *GameConfig) { c.Shooter.HalfWidth = 500 }, "SHOOTER_TOO_WIDE"},
		{"shooter below field", func(c *GameConfig) { c.Shooter.OffsetFromBottom = 600 }, "INVALID_SHOOTER"},
		{"negative shooter speed", func(c *GameConfig) { c.Shooter.Speed = -1 }, "INVALID_SHOOTER"},
		{"zero bullet radius", func(c *GameConfig) { c.Bullet.Radius = 0 }, "INVALID_BULLET"},
		{"zero health", func(c *GameConfig) { c.Gameplay.Health = 0 }, "INVALID_HEALTH"},
		{"negative points", func(c *GameConfig) { c.Gameplay.PointsPerBubble = -10 }, "INVALID_POINTS"},
		{"no bubbles", func(c *GameConfig) { c.Bubbles = nil }, "NO_BUBBLES"},
		{"zero radius", func(c *GameConfig) { c.Bubbles[0].Radius = 0 }, "INVALID_BUBBLE"},
		{"bubble outside", func(c *GameConfig) { c.Bubbles[0].X = 10 }, "BUBBLE_OUT_OF_FIELD"},
		{"recovery outside", func(c *GameConfig) { c.Gameplay.Recovery.Y = 5 }, "RECOVERY_OUT_OF_FIELD"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := Validate(cfg)

			if tc.code == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}

			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, expected ValidationError", err)
			}
			if verr.Code != tc.code {
				t.Errorf("code = %s, expected %s (%s)", verr.Code, tc.code, verr.Message)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultConfig()
	ApplyPreset(&cfg, "")
	if cfg.Gameplay.Health != 3 {
		t.Error("empty preset should not change the config")
	}

	cfg = DefaultConfig()
	ApplyPreset(&cfg, DifficultyEasy)
	if cfg.Gameplay.Health != 5 {
		t.Errorf("easy health = %d, expected 5", cfg.Gameplay.Health)
	}
	if cfg.Bubbles[0].VX != 75 {
		t.Errorf("easy should slow bubbles, vx = %g", cfg.Bubbles[0].VX)
	}

	cfg = DefaultConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Gameplay.Health != 2 || cfg.Bubbles[0].VY != 225 {
		t.Errorf("hard preset not applied: health=%d vy=%g", cfg.Gameplay.Health, cfg.Bubbles[0].VY)
	}
	if cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard initial level = %g", cfg.Difficulty.InitialLevel)
	}

	cfg = DefaultConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should parse to empty")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultConfig().Difficulty
	dm := NewDifficultyManager(cfg)

	if f := dm.SpeedFactor(0, 0); f != 1.0 {
		t.Errorf("SpeedFactor at score 0 = %g, expected 1", f)
	}
	if f := dm.SpeedFactor(250, 0); f != 1.5 {
		t.Errorf("SpeedFactor at half progression = %g, expected 1.5", f)
	}
	if f := dm.SpeedFactor(10000, 0); f != 2.0 {
		t.Errorf("SpeedFactor past max = %g, expected 2", f)
	}

	cfg.Enabled = false
	dm = NewDifficultyManager(cfg)
	if dm.IsEnabled() || dm.SpeedFactor(10000, 0) != 1.0 {
		t.Error("disabled manager should not scale speed")
	}

	cfg = DefaultConfig().Difficulty
	cfg.Progression.Type = "time"
	cfg.Progression.MaxAt = 100
	cfg.InitialLevel = 0.5
	dm = NewDifficultyManager(cfg)
	if l := dm.Level(0, 50); l != 0.75 {
		t.Errorf("time-based Level = %g, expected 0.75", l)
	}
}
