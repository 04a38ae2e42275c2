package loop

import (
	"github.com/charmbracelet/log"
)

// updatePlaying advances one frame of gameplay. The order is fixed: ball
// motion, collisions (walls, paddle, bricks), power-ups, effect expiry,
// life loss, level clear. Either the whole frame's changes apply or,
// after a game-over transition, no further physics run.
func (s *State) updatePlaying(dt float64) {
	s.Session.GameTime += dt

	// Paddle movement from held keys
	var dir float64
	if s.Input.Left {
		dir -= 1
	}
	if s.Input.Right {
		dir += 1
	}
	if dir != 0 {
		s.Paddle.Move(dir, dt, s.Field)
	}

	s.Ball.Advance(dt, s)
	s.resolveCollisions()
	s.advancePowerUps(dt)
	s.tickExpirations()
	s.updateEffectsAndBackdrop(dt)

	if s.Ball.Below(s.Field) {
		s.loseLife()
		return
	}

	if IsCleared(s.Bricks) {
		s.advanceLevel()
	}
}

// updateEffectsAndBackdrop advances particles and the starfield.
func (s *State) updateEffectsAndBackdrop(dt float64) {
	kept := s.Particles[:0]
	for _, p := range s.Particles {
		if p.Update(dt) {
			p.Release()
			continue
		}
		kept = append(kept, p)
	}
	s.Particles = kept

	for _, star := range s.Stars {
		star.Update(dt, s.Field, s.rng)
	}
}

// loseLife handles the ball falling past the paddle. With lives left the
// ball and paddle reset; at zero the session ends in the same update
// call and the final score goes to the persistence gateway.
func (s *State) loseLife() {
	s.Session.Lives--
	s.emit(EventLifeLost)
	s.clearEffects()
	s.PowerUps = s.PowerUps[:0]

	if s.Session.Lives > 0 {
		s.resetBallAndPaddle()
		return
	}

	s.Ball.Active = false
	s.Phase = PhaseGameOver
	s.emit(EventGameOver)
	s.persistScore()
}

// advanceLevel moves to the next level, keeping score and lives.
func (s *State) advanceLevel() {
	s.emit(EventLevelCleared)
	next := s.Session.Level + 1
	log.Info("level cleared", "user", s.Username, "level", s.Session.Level, "score", s.Session.Score)
	s.beginLevel(next)
}

// persistScore saves the final score if it beats the stored best. A
// persistence failure degrades to keeping the in-memory score: the game
// is never interrupted.
func (s *State) persistScore() {
	score := s.Session.Score
	if score > s.BestScore {
		s.BestScore = score
	}
	if s.Gateway == nil {
		return
	}
	if err := s.Gateway.SaveScoreIfBetter(s.PlayerID, score); err != nil {
		log.Warn("score not saved", "user", s.Username, "score", score, "err", err)
		s.notice = "score could not be saved"
		return
	}
	log.Info("game over", "user", s.Username, "score", score, "best", s.BestScore)
}
