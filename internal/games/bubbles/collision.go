package bubbles

import (
	"slices"

	"github.com/vovakirdan/bubble-trouble/internal/core"
)

// resolveCollisions runs the per-tick collision pass after motion.
//
//  1. Bullets above the top edge are dropped.
//  2. Bubbles are visited in order. For each one, bullets are scanned in order
//     and the first bullet touching it wins: both are removed and the score
//     goes up. A removed bullet is gone for every later bubble, so one bullet
//     scores at most once per tick and each bubble at most once.
//  3. Surviving bubbles are tested against the shooter in order. Each hit
//     costs one health. At zero health the session ends and the pass stops;
//     otherwise the bubble is moved to the recovery point.
func (s *Session) resolveCollisions() {
	s.dropExpiredBullets()
	s.popHitBubbles()
	s.hitShooter()
}

func (s *Session) dropExpiredBullets() {
	s.Bullets = slices.DeleteFunc(s.Bullets, func(b Bullet) bool {
		if b.OffScreen() {
			s.emit(core.EventBulletExpired, b.X, b.Y)
			return true
		}
		return false
	})
}

func (s *Session) popHitBubbles() {
	kept := s.Bubbles[:0]
	for _, bubble := range s.Bubbles {
		hit := firstHit(bubble, s.Bullets)
		if hit < 0 {
			kept = append(kept, bubble)
			continue
		}

		s.Score += s.cfg.Gameplay.PointsPerBubble
		s.Bullets = slices.Delete(s.Bullets, hit, hit+1)
		s.emit(core.EventBubblePopped, bubble.X, bubble.Y)
	}
	clear(s.Bubbles[len(kept):])
	s.Bubbles = kept
}

// firstHit returns the index of the first bullet touching the bubble, or -1.
func firstHit(bubble Bubble, bullets []Bullet) int {
	c := bubble.Circle()
	for j, b := range bullets {
		if c.Collides(b.Circle()) {
			return j
		}
	}
	return -1
}

func (s *Session) hitShooter() {
	hitbox := s.ShooterHitCircle()
	rec := s.cfg.Gameplay.Recovery

	for i := range s.Bubbles {
		b := &s.Bubbles[i]
		if !b.Circle().Collides(hitbox) {
			continue
		}

		s.Health--
		s.emit(core.EventShooterHit, b.X, b.Y)

		if s.Health <= 0 {
			s.Phase = PhaseGameOver
			s.emit(core.EventGameOver, s.Shooter.X, s.Shooter.Y)
			return
		}

		b.X, b.Y = rec.X, rec.Y
	}
}
