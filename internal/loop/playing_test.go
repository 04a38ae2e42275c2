package loop

import (
	"math"
	"testing"

	"sshbreak/internal/object"
)

// newTestState builds a state mid-game with a deterministic RNG.
func newTestState(t *testing.T) *State {
	t.Helper()
	s := NewState(nil, 42)
	s.StartSession()
	return s
}

func hasEvent(events []Event, want Event) bool {
	for _, e := range events {
		if e == want {
			return true
		}
	}
	return false
}

func TestStartSession(t *testing.T) {
	s := newTestState(t)

	if s.Phase != PhasePlaying {
		t.Fatalf("phase = %v, want playing", s.Phase)
	}
	if s.Session.Lives != InitialLives {
		t.Errorf("lives = %d, want %d", s.Session.Lives, InitialLives)
	}
	if s.Session.Score != 0 || s.Session.Level != 1 {
		t.Errorf("score/level = %d/%d, want 0/1", s.Session.Score, s.Session.Level)
	}
	if !s.Ball.Active {
		t.Error("ball not launched")
	}
	if got, want := s.Ball.Speed(), BallSpeedForLevel(1); math.Abs(got-want) > 1e-9 {
		t.Errorf("ball speed = %v, want %v", got, want)
	}
}

func TestLoseLifeResetsBallAndPaddle(t *testing.T) {
	s := newTestState(t)
	s.Paddle.X = 0
	s.Ball.Y = s.Field.Height + 100

	s.updatePlaying(1.0 / 60)

	if s.Session.Lives != InitialLives-1 {
		t.Fatalf("lives = %d, want %d", s.Session.Lives, InitialLives-1)
	}
	if s.Phase != PhasePlaying {
		t.Fatalf("phase = %v, want playing", s.Phase)
	}
	if !hasEvent(s.drainEvents(), EventLifeLost) {
		t.Error("no life-lost event")
	}
	if s.Ball.Y != s.Field.Height/2 {
		t.Errorf("ball not recentered, y = %v", s.Ball.Y)
	}
	if s.Paddle.X != s.Field.Width/2-s.Paddle.Width/2 {
		t.Errorf("paddle not recentered, x = %v", s.Paddle.X)
	}
}

func TestGameOverOnLastLife(t *testing.T) {
	s := newTestState(t)
	s.Session.Lives = 1
	s.Session.Score = 70
	s.Ball.Y = s.Field.Height + 100

	s.updatePlaying(1.0 / 60)

	if s.Phase != PhaseGameOver {
		t.Fatalf("phase = %v, want game over in the same update", s.Phase)
	}
	if s.Session.Lives != 0 {
		t.Errorf("lives = %d, want 0", s.Session.Lives)
	}
	if s.Ball.Active {
		t.Error("ball still active after game over")
	}
	events := s.drainEvents()
	if !hasEvent(events, EventLifeLost) || !hasEvent(events, EventGameOver) {
		t.Errorf("events = %v, want life_lost and game_over", events)
	}
	if s.BestScore != 70 {
		t.Errorf("in-memory best = %d, want 70", s.BestScore)
	}
}

func TestLifeLossClearsEffectsAndPowerUps(t *testing.T) {
	s := newTestState(t)
	s.applyEffect(object.WidenPaddle)
	s.PowerUps = append(s.PowerUps, object.NewPowerUp(object.SlowBall, 100, 100))
	s.Ball.Y = s.Field.Height + 100

	s.updatePlaying(1.0 / 60)

	if s.effects.widenActive {
		t.Error("widen effect survived life loss")
	}
	if len(s.PowerUps) != 0 {
		t.Error("falling power-ups survived life loss")
	}
	if s.Paddle.Width != s.Paddle.BaseWidth {
		t.Errorf("paddle width = %v, want base %v", s.Paddle.Width, s.Paddle.BaseWidth)
	}
}

func TestBrickCollisionScoresOnce(t *testing.T) {
	s := newTestState(t)
	brick := s.Bricks[0]
	r := brick.Rect()

	// Ball moving up into the brick's bottom edge.
	s.Ball.X = r.CenterX()
	s.Ball.Y = r.Bottom() + s.Ball.Radius - 2
	s.Ball.VX, s.Ball.VY = 0, -BallSpeedForLevel(1)

	if !s.collideBricks() {
		t.Fatal("no brick collision resolved")
	}
	if !brick.Destroyed {
		t.Fatal("brick not destroyed")
	}
	if s.Session.Score != PointsPerBrick {
		t.Errorf("score = %d, want %d", s.Session.Score, PointsPerBrick)
	}
	if s.Ball.VY <= 0 {
		t.Errorf("ball VY = %v, want downward bounce off brick bottom", s.Ball.VY)
	}
	if !hasEvent(s.drainEvents(), EventBrickDestroyed) {
		t.Error("no brick-destroyed event")
	}

	// One collision per frame: a second ball position overlapping two
	// bricks still resolves exactly one.
	destroyed := 0
	for _, b := range s.Bricks {
		if b.Destroyed {
			destroyed++
		}
	}
	if destroyed != 1 {
		t.Errorf("destroyed = %d bricks, want 1", destroyed)
	}
}

func TestDestroyedBrickIgnoredByCollision(t *testing.T) {
	s := newTestState(t)
	brick := s.Bricks[0]
	brick.Destroyed = true
	brick.HP = 0
	r := brick.Rect()

	s.Ball.X = r.CenterX()
	s.Ball.Y = r.CenterY()
	s.Ball.VX, s.Ball.VY = 0, -BallSpeedForLevel(1)

	score := s.Session.Score
	s.collideBricks()

	if s.Session.Score != score {
		t.Error("destroyed brick scored again")
	}
	if !brick.Destroyed {
		t.Error("destroyed state reverted")
	}
}

func TestPaddleCollisionAlwaysBouncesUp(t *testing.T) {
	s := newTestState(t)
	pr := s.Paddle.Rect()

	s.Ball.X = pr.CenterX() + 30
	s.Ball.Y = pr.Y - s.Ball.Radius + 2
	s.Ball.VX, s.Ball.VY = 50, BallSpeedForLevel(1)

	if !s.collidePaddle() {
		t.Fatal("no paddle collision resolved")
	}
	if s.Ball.VY >= 0 {
		t.Errorf("ball VY = %v, want upward after paddle hit", s.Ball.VY)
	}
	if s.Ball.Y != s.Paddle.Y-s.Ball.Radius {
		t.Errorf("ball y = %v, want lifted to paddle surface %v", s.Ball.Y, s.Paddle.Y-s.Ball.Radius)
	}
	if !hasEvent(s.drainEvents(), EventPaddleHit) {
		t.Error("no paddle-hit event")
	}

	// Upward-moving ball passes through without a bounce.
	s.Ball.Y = pr.Y - s.Ball.Radius + 2
	s.Ball.VY = -100
	if s.collidePaddle() {
		t.Error("upward-moving ball bounced off the paddle")
	}
}

func TestSpeedBandHeldAfterCollisions(t *testing.T) {
	s := newTestState(t)
	min, max := s.speedBand()

	// Absurdly fast ball into the left wall.
	s.Ball.X = 1
	s.Ball.Y = s.Field.Height / 2
	s.Ball.VX, s.Ball.VY = -10000, -10000

	s.resolveCollisions()

	if got := s.Ball.Speed(); got < min-1e-9 || got > max+1e-9 {
		t.Errorf("speed after wall hit = %v, want within [%v, %v]", got, min, max)
	}

	// Near-stalled ball into a brick.
	r := s.Bricks[0].Rect()
	s.Ball.X = r.CenterX()
	s.Ball.Y = r.Bottom() + s.Ball.Radius - 2
	s.Ball.VX, s.Ball.VY = 0, -1

	s.resolveCollisions()

	if got := s.Ball.Speed(); got < min-1e-9 || got > max+1e-9 {
		t.Errorf("speed after brick hit = %v, want within [%v, %v]", got, min, max)
	}
}

func TestLevelAdvanceKeepsScoreAndLives(t *testing.T) {
	s := newTestState(t)
	s.Session.Score = 130
	s.Session.Lives = 2
	for _, b := range s.Bricks {
		b.Destroyed = true
	}

	s.updatePlaying(1.0 / 60)

	if s.Session.Level != 2 {
		t.Fatalf("level = %d, want 2", s.Session.Level)
	}
	if s.Session.Score != 130 || s.Session.Lives != 2 {
		t.Errorf("score/lives = %d/%d, want carried over 130/2", s.Session.Score, s.Session.Lives)
	}
	if IsCleared(s.Bricks) {
		t.Error("no new brick grid after level advance")
	}
	if !hasEvent(s.drainEvents(), EventLevelCleared) {
		t.Error("no level-cleared event")
	}
	if got, want := s.Ball.Speed(), BallSpeedForLevel(2); math.Abs(got-want) > 1e-9 {
		t.Errorf("ball speed = %v, want level 2 base %v", got, want)
	}
}

func TestPaddleStaysInField(t *testing.T) {
	s := newTestState(t)
	s.Ball.Active = false // Park the ball so the paddle drives alone

	s.Input.Left = true
	for i := 0; i < 300; i++ {
		s.updatePlaying(1.0 / 60)
		if s.Paddle.X < 0 {
			t.Fatalf("paddle left edge = %v, escaped the field", s.Paddle.X)
		}
	}
	if s.Paddle.X != 0 {
		t.Errorf("paddle x = %v, want clamped at 0", s.Paddle.X)
	}

	s.Input.Left, s.Input.Right = false, true
	for i := 0; i < 300; i++ {
		s.updatePlaying(1.0 / 60)
	}
	if got, want := s.Paddle.X, s.Field.Width-s.Paddle.Width; got != want {
		t.Errorf("paddle x = %v, want clamped at %v", got, want)
	}
}

func TestSingleBrickClearsLevel(t *testing.T) {
	s := newTestState(t)

	// Reduce the level to one brick worth the standard points.
	brick := s.Bricks[0]
	s.Bricks = s.Bricks[:1]
	r := brick.Rect()

	s.Ball.X = r.CenterX()
	s.Ball.Y = r.Bottom() + s.Ball.Radius - 2
	s.Ball.VX, s.Ball.VY = 0, -BallSpeedForLevel(1)

	s.updatePlaying(1.0 / 60)

	if !brick.Destroyed {
		t.Fatal("brick survived the hit")
	}
	if s.Session.Score != PointsPerBrick {
		t.Errorf("score = %d, want exactly %d", s.Session.Score, PointsPerBrick)
	}
	if s.Session.Level != 2 {
		t.Errorf("level = %d, want advanced to 2 in the same tick", s.Session.Level)
	}
}

func TestSnapshotReflectsState(t *testing.T) {
	s := newTestState(t)
	s.Session.Score = 40
	s.applyEffect(object.WidenPaddle)

	snap := s.Snapshot()
	if snap.Phase != PhasePlaying || snap.Score != 40 || snap.Level != 1 {
		t.Errorf("snapshot = %+v, does not match state", snap)
	}
	if !snap.WidenActive || snap.SlowActive {
		t.Error("snapshot effect flags wrong")
	}
	if snap.Ball != s.Ball || len(snap.Bricks) != len(s.Bricks) {
		t.Error("snapshot entities do not reference the frame's objects")
	}

	// The login view exposes only the password length.
	s.Phase = PhaseMainMenu
	s.login.username = []byte("alice")
	s.login.password = []byte("sekrit")
	snap = s.Snapshot()
	if snap.LoginUsername != "alice" || snap.LoginPassword != 6 {
		t.Errorf("login view = %q/%d, want alice/6", snap.LoginUsername, snap.LoginPassword)
	}
}

func TestParticleCapHolds(t *testing.T) {
	s := newTestState(t)
	for i := 0; i < maxParticles+200; i++ {
		s.Spawn(object.NewParticle(10, 10, 0, 0, 1))
	}
	if len(s.Particles) != maxParticles {
		t.Errorf("particles = %d, want capped at %d", len(s.Particles), maxParticles)
	}
}
