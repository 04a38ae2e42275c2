package loop

import (
	"sshbreak/internal/object"
	"sshbreak/internal/physics"
)

// resolveCollisions runs the frame's collision pass in fixed priority
// order: walls, paddle, bricks. At most one brick collision resolves per
// frame so a single contact can never double-score. The ball speed is
// clamped to the level band after every response.
func (s *State) resolveCollisions() {
	ball := s.Ball
	min, max := s.speedBand()

	if ball.CollideWalls(s.Field) {
		ball.ClampSpeed(min, max)
	}

	if s.collidePaddle() {
		ball.ClampSpeed(min, max)
	}

	if s.collideBricks() {
		ball.ClampSpeed(min, max)
	}
}

// collidePaddle bounces the ball off the paddle. Only a downward-moving
// ball can bounce, so the ball cannot get stuck re-colliding while
// inside the paddle rect.
func (s *State) collidePaddle() bool {
	ball := s.Ball
	if ball.VY <= 0 {
		return false
	}
	hit, ok := physics.IntersectCircleRect(ball.X, ball.Y, ball.Radius, s.Paddle.Rect())
	if !ok {
		return false
	}

	// Paddle contact always sends the ball back up, whichever edge the
	// intersection test reports.
	hit.FlipY = true
	ball.VX, ball.VY = physics.Reflect(ball.VX, ball.VY, hit)
	if ball.VY > 0 {
		ball.VY = -ball.VY
	}
	// Lift the ball to the paddle surface so the next frame starts clean.
	ball.Y = s.Paddle.Y - ball.Radius

	s.emit(EventPaddleHit)
	object.SpawnBurst(ball.X, ball.Y, paddleBurstCount, burstSpeed, burstLifetime, s)
	return true
}

// collideBricks tests the ball against the grid in layout order and
// resolves the first contact found.
func (s *State) collideBricks() bool {
	ball := s.Ball
	for _, b := range s.Bricks {
		if b.Destroyed {
			continue
		}
		hit, ok := physics.IntersectCircleRect(ball.X, ball.Y, ball.Radius, b.Rect())
		if !ok {
			continue
		}

		ball.VX, ball.VY = physics.Reflect(ball.VX, ball.VY, hit)

		if b.Damage() {
			s.Session.Score += b.Points
			s.emit(EventBrickDestroyed)
			s.maybeSpawnPowerUp(b)

			r := b.Rect()
			object.SpawnBurst(r.CenterX(), r.CenterY(), brickBurstCount, burstSpeed, burstLifetime, s)
		}
		return true
	}
	return false
}
