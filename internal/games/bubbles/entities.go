package bubbles

import (
	"github.com/vovakirdan/bubble-trouble/internal/config"
	"github.com/vovakirdan/bubble-trouble/internal/core"
)

// Field is the play area in world units. Origin is top-left, y grows downward.
type Field struct {
	W, H float64
}

// Bubble is a moving circular target.
type Bubble struct {
	X, Y   float64
	Radius float64
	VX, VY float64
}

// Circle returns the bubble's collision shape.
func (b Bubble) Circle() core.Circle {
	return core.NewCircle(b.X, b.Y, b.Radius)
}

// Move advances the bubble by one timestep and reflects it off the walls.
// Each axis is handled independently.
func (b *Bubble) Move(dt float64, f Field, reflection string) {
	b.X, b.VX = advanceAxis(b.X, b.VX, b.Radius, f.W, dt, reflection)
	b.Y, b.VY = advanceAxis(b.Y, b.VY, b.Radius, f.H, dt, reflection)
}

// advanceAxis integrates one coordinate and applies wall reflection.
//
// In approximate mode a wall contact negates the velocity and re-applies it,
// which puts the bubble back where it started the step. In exact mode the
// overshoot is mirrored about the wall and clamped, since a step longer than
// the free span would mirror past the opposite wall.
func advanceAxis(pos, vel, r, bound, dt float64, reflection string) (float64, float64) {
	pos += vel * dt

	below, above := pos-r < 0, pos+r > bound
	if !below && !above {
		return pos, vel
	}

	vel = -vel
	if reflection == config.ReflectionExact {
		if below {
			pos = 2*r - pos
		} else {
			pos = 2*(bound-r) - pos
		}
		return core.ClampF(pos, r, bound-r), vel
	}

	pos += vel * dt
	return pos, vel
}

// Shooter is the player avatar. It only moves horizontally.
type Shooter struct {
	X, Y      float64
	Speed     float64
	HalfWidth float64
}

// Move shifts the shooter by dir (-1, 0 or +1) and keeps its body inside the field.
func (s *Shooter) Move(dir int, dt float64, f Field) {
	s.X += float64(dir) * s.Speed * dt
	s.X = core.ClampF(s.X, s.HalfWidth, f.W-s.HalfWidth)
}

// Bullet is a player projectile travelling straight up.
type Bullet struct {
	X, Y   float64
	VY     float64 // Negative: upward
	Radius float64
}

// Circle returns the bullet's collision shape.
func (b Bullet) Circle() core.Circle {
	return core.NewCircle(b.X, b.Y, b.Radius)
}

// Move advances the bullet vertically.
func (b *Bullet) Move(dt float64) {
	b.Y += b.VY * dt
}

// OffScreen reports whether the bullet has left through the top of the field.
func (b Bullet) OffScreen() bool {
	return b.Y < 0
}
