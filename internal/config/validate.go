package config

import "fmt"

// ValidationError describes why a configuration cannot be played.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that a configuration describes a playable game.
// It returns the first problem found.
func Validate(cfg GameConfig) error {
	if cfg.Field.Width <= 0 || cfg.Field.Height <= 0 {
		return ValidationError{
			Code:    "INVALID_FIELD",
			Message: fmt.Sprintf("field must have positive size, got %gx%g", cfg.Field.Width, cfg.Field.Height),
		}
	}

	if cfg.Physics.Timestep <= 0 {
		return ValidationError{
			Code:    "INVALID_TIMESTEP",
			Message: fmt.Sprintf("timestep must be positive, got %g", cfg.Physics.Timestep),
		}
	}

	switch cfg.Physics.Reflection {
	case ReflectionApproximate, ReflectionExact:
	default:
		return ValidationError{
			Code:    "INVALID_REFLECTION",
			Message: fmt.Sprintf("reflection must be %q or %q, got %q", ReflectionApproximate, ReflectionExact, cfg.Physics.Reflection),
		}
	}

	if err := validateShooter(cfg); err != nil {
		return err
	}

	if cfg.Bullet.Speed <= 0 || cfg.Bullet.Radius <= 0 {
		return ValidationError{
			Code:    "INVALID_BULLET",
			Message: "bullet speed and radius must be positive",
		}
	}

	if cfg.Gameplay.Health <= 0 {
		return ValidationError{
			Code:    "INVALID_HEALTH",
			Message: fmt.Sprintf("starting health must be positive, got %d", cfg.Gameplay.Health),
		}
	}
	if cfg.Gameplay.PointsPerBubble < 0 {
		return ValidationError{
			Code:    "INVALID_POINTS",
			Message: "points per bubble cannot be negative",
		}
	}

	return validateBubbles(cfg)
}

func validateShooter(cfg GameConfig) error {
	s := cfg.Shooter
	if s.Speed < 0 || s.HalfWidth <= 0 || s.HitRadius <= 0 {
		return ValidationError{
			Code:    "INVALID_SHOOTER",
			Message: "shooter speed must be non-negative, half width and hit radius positive",
		}
	}
	if 2*s.HalfWidth > cfg.Field.Width {
		return ValidationError{
			Code:    "SHOOTER_TOO_WIDE",
			Message: fmt.Sprintf("shooter width %g exceeds field width %g", 2*s.HalfWidth, cfg.Field.Width),
		}
	}
	if s.OffsetFromBottom < 0 || s.OffsetFromBottom >= cfg.Field.Height {
		return ValidationError{
			Code:    "INVALID_SHOOTER",
			Message: fmt.Sprintf("shooter offset %g must lie within the field height", s.OffsetFromBottom),
		}
	}
	return nil
}

func validateBubbles(cfg GameConfig) error {
	if len(cfg.Bubbles) == 0 {
		return ValidationError{
			Code:    "NO_BUBBLES",
			Message: "at least one bubble is required",
		}
	}

	for i, b := range cfg.Bubbles {
		if b.Radius <= 0 {
			return ValidationError{
				Code:    "INVALID_BUBBLE",
				Message: fmt.Sprintf("bubble %d: radius must be positive, got %g", i, b.Radius),
			}
		}
		if !fits(b.X, b.Y, b.Radius, cfg.Field) {
			return ValidationError{
				Code:    "BUBBLE_OUT_OF_FIELD",
				Message: fmt.Sprintf("bubble %d at (%g, %g) r=%g does not fit the field", i, b.X, b.Y, b.Radius),
			}
		}
		rec := cfg.Gameplay.Recovery
		if !fits(rec.X, rec.Y, b.Radius, cfg.Field) {
			return ValidationError{
				Code:    "RECOVERY_OUT_OF_FIELD",
				Message: fmt.Sprintf("recovery point (%g, %g) cannot hold bubble %d (r=%g)", rec.X, rec.Y, i, b.Radius),
			}
		}
	}

	return nil
}

// fits reports whether a circle lies entirely inside the field.
func fits(x, y, r float64, f FieldConfig) bool {
	return x-r >= 0 && x+r <= f.Width && y-r >= 0 && y+r <= f.Height
}
