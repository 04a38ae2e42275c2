package loop

import (
	"math"
	"testing"

	"sshbreak/internal/object"
)

func TestSpawnOnlyFromSpecialBricks(t *testing.T) {
	s := newTestState(t)

	plain := s.Bricks[0]
	plain.Special = false
	s.maybeSpawnPowerUp(plain)
	if len(s.PowerUps) != 0 {
		t.Fatal("plain brick spawned a power-up")
	}

	special := s.Bricks[1]
	special.Special = true
	s.maybeSpawnPowerUp(special)
	if len(s.PowerUps) != 1 {
		t.Fatal("special brick spawned no power-up")
	}
	if !hasEvent(s.drainEvents(), EventPowerUpSpawned) {
		t.Error("no spawn event")
	}

	r := special.Rect()
	p := s.PowerUps[0]
	if p.Y != r.Y {
		t.Errorf("power-up y = %v, want brick top %v", p.Y, r.Y)
	}
}

func TestPowerUpCaughtByPaddle(t *testing.T) {
	s := newTestState(t)
	pr := s.Paddle.Rect()

	p := object.NewPowerUp(object.ExtraLife, pr.CenterX(), pr.Y-object.PowerUpSize-1)
	s.PowerUps = append(s.PowerUps, p)

	lives := s.Session.Lives
	for i := 0; i < 60 && len(s.PowerUps) > 0; i++ {
		s.advancePowerUps(1.0 / 60)
	}

	if len(s.PowerUps) != 0 {
		t.Fatal("power-up never reached the paddle")
	}
	if s.Session.Lives != lives+1 {
		t.Errorf("lives = %d, want %d after extra-life catch", s.Session.Lives, lives+1)
	}
	if !hasEvent(s.drainEvents(), EventPowerUpCaught) {
		t.Error("no catch event")
	}
}

func TestPowerUpMissedIsDiscarded(t *testing.T) {
	s := newTestState(t)

	// Far from the paddle; falls straight past the field bottom.
	p := object.NewPowerUp(object.ExtraLife, 5, s.Field.Height-5)
	s.PowerUps = append(s.PowerUps, p)

	lives := s.Session.Lives
	for i := 0; i < 120 && len(s.PowerUps) > 0; i++ {
		s.advancePowerUps(1.0 / 60)
	}

	if len(s.PowerUps) != 0 {
		t.Fatal("missed power-up never discarded")
	}
	if s.Session.Lives != lives {
		t.Error("missed power-up still applied")
	}
	if hasEvent(s.drainEvents(), EventPowerUpCaught) {
		t.Error("missed power-up emitted a catch event")
	}
}

func TestWidenEffectAppliesAndExpires(t *testing.T) {
	s := newTestState(t)
	base := s.Paddle.BaseWidth

	s.applyEffect(object.WidenPaddle)
	if got, want := s.Paddle.Width, base*WidenFactor; got != want {
		t.Fatalf("paddle width = %v, want %v", got, want)
	}

	// Re-catching extends the expiry but does not stack the width.
	s.Session.GameTime += EffectDuration - 1
	s.applyEffect(object.WidenPaddle)
	if got, want := s.Paddle.Width, base*WidenFactor; got != want {
		t.Fatalf("paddle width after re-catch = %v, want unstacked %v", got, want)
	}

	// First expiry deadline passes; the extension keeps the effect alive.
	s.Session.GameTime += 1
	s.tickExpirations()
	if !s.effects.widenActive {
		t.Fatal("effect expired despite extension")
	}

	s.Session.GameTime += EffectDuration
	s.tickExpirations()
	if s.effects.widenActive {
		t.Fatal("effect still active past extended expiry")
	}
	if s.Paddle.Width != base {
		t.Errorf("paddle width = %v, want reverted to %v", s.Paddle.Width, base)
	}

	// Expiry is one-shot: ticking again changes nothing.
	s.Paddle.SetWidth(77, s.Field)
	s.tickExpirations()
	if s.Paddle.Width != 77 {
		t.Error("expired effect reverted the paddle a second time")
	}
}

func TestSlowEffectAppliesOnceAndRestores(t *testing.T) {
	s := newTestState(t)
	base := BallSpeedForLevel(s.Session.Level)

	s.applyEffect(object.SlowBall)
	want := base * SlowFactor
	min, _ := s.speedBand()
	if want < min {
		want = min
	}
	if got := s.Ball.Speed(); math.Abs(got-want) > 1e-9 {
		t.Fatalf("speed = %v, want %v after slow", got, want)
	}

	// Re-catch extends without slowing again.
	s.applyEffect(object.SlowBall)
	if got := s.Ball.Speed(); math.Abs(got-want) > 1e-9 {
		t.Fatalf("speed = %v after re-catch, want unstacked %v", got, want)
	}

	s.Session.GameTime += EffectDuration + 1
	s.tickExpirations()
	if got := s.Ball.Speed(); math.Abs(got-base) > 1e-9 {
		t.Errorf("speed = %v after expiry, want restored base %v", got, base)
	}
	if s.Ball.VY >= 0 {
		t.Error("restoring speed changed the ball's direction")
	}
}

func TestExtraLifeHasNoTimer(t *testing.T) {
	s := newTestState(t)
	lives := s.Session.Lives

	s.applyEffect(object.ExtraLife)
	if s.Session.Lives != lives+1 {
		t.Fatalf("lives = %d, want %d", s.Session.Lives, lives+1)
	}

	s.Session.GameTime += EffectDuration * 10
	s.tickExpirations()
	if s.Session.Lives != lives+1 {
		t.Error("extra life expired; it must be permanent")
	}
}

func TestPauseFreezesEffectTimers(t *testing.T) {
	s := newTestState(t)
	s.applyEffect(object.WidenPaddle)
	p := object.NewPowerUp(object.SlowBall, 200, 200)
	s.PowerUps = append(s.PowerUps, p)

	s.Phase = PhasePaused
	y := p.Y
	for i := 0; i < 600; i++ {
		s.Update(1.0 / 60)
	}

	if s.Session.GameTime != 0 {
		t.Errorf("game time = %v advanced while paused", s.Session.GameTime)
	}
	if !s.effects.widenActive {
		t.Error("effect expired while paused")
	}
	if p.Y != y {
		t.Error("power-up moved while paused")
	}
	if s.Phase != PhasePaused {
		t.Errorf("phase = %v, want still paused with no input", s.Phase)
	}
}
