package loop

import (
	"fmt"

	"github.com/charmbracelet/log"

	"sshbreak/internal/object"
	"sshbreak/internal/physics"
)

// Power-up lifecycle: spawn on special brick destruction, fall, catch or
// miss, apply, expire. Kind selection is uniform over the three kinds
// using the session RNG (documented policy; the exact distribution is a
// balance choice, not a compatibility contract).

// maybeSpawnPowerUp drops a power-up from a just-destroyed brick if the
// brick carries the special flag.
func (s *State) maybeSpawnPowerUp(b *object.Brick) {
	if !b.Special {
		return
	}
	kind := object.PowerKinds[s.rng.Intn(len(object.PowerKinds))]
	r := b.Rect()
	p := object.NewPowerUp(kind, r.CenterX()-object.PowerUpSize/2, r.Y)
	s.PowerUps = append(s.PowerUps, p)
	s.emit(EventPowerUpSpawned)
}

// advancePowerUps moves falling power-ups, applies paddle catches, and
// discards the ones that fall past the field. Caught effects apply
// immediately within the same frame.
func (s *State) advancePowerUps(dt float64) {
	if len(s.PowerUps) == 0 {
		return
	}

	paddleRect := s.Paddle.Rect()
	kept := s.PowerUps[:0]
	for _, p := range s.PowerUps {
		p.Advance(dt)

		switch {
		case p.Rect().Intersects(paddleRect):
			s.applyEffect(p.Kind)
			s.emit(EventPowerUpCaught)
		case p.Below(s.Field):
			// Missed, discarded without effect
		default:
			kept = append(kept, p)
		}
	}
	s.PowerUps = kept
}

// applyEffect applies a caught power-up. Temporary effects occupy one
// slot each: re-catching extends the expiry instead of stacking, so the
// paddle width and ball speed revert exactly once.
func (s *State) applyEffect(kind object.PowerKind) {
	switch kind {
	case object.WidenPaddle:
		if !s.effects.widenActive {
			s.effects.widenActive = true
			s.Paddle.SetWidth(s.Paddle.BaseWidth*WidenFactor, s.Field)
		}
		s.effects.widenUntil = s.Session.GameTime + EffectDuration

	case object.SlowBall:
		if !s.effects.slowActive {
			s.effects.slowActive = true
			s.Ball.VX *= SlowFactor
			s.Ball.VY *= SlowFactor
			s.Ball.ClampSpeed(s.speedBand())
		}
		s.effects.slowUntil = s.Session.GameTime + EffectDuration

	case object.ExtraLife:
		s.Session.Lives++

	default:
		panic(fmt.Sprintf("loop: invalid power kind %d", int(kind)))
	}
	log.Debug("power-up applied", "kind", kind, "user", s.Username)
}

// tickExpirations reverts temporary effects whose game-time expiry has
// passed. Game time freezes while paused, so effects freeze too.
func (s *State) tickExpirations() {
	now := s.Session.GameTime

	if s.effects.widenActive && now >= s.effects.widenUntil {
		s.effects.widenActive = false
		s.Paddle.SetWidth(s.Paddle.BaseWidth, s.Field)
	}

	if s.effects.slowActive && now >= s.effects.slowUntil {
		s.effects.slowActive = false
		// Restore the level base speed, preserving direction.
		s.Ball.VX, s.Ball.VY = physics.ScaleToSpeed(
			s.Ball.VX, s.Ball.VY, BallSpeedForLevel(s.Session.Level))
	}
}

// clearEffects drops all active effects without reverting entities; the
// caller is about to reset them anyway (level change, new session).
func (s *State) clearEffects() {
	s.effects = effectState{}
}
