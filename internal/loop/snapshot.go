package loop

import "sshbreak/internal/object"

// Snapshot is the per-frame view handed to the renderer: HUD scalars and
// screen text plus the entity collections. Entity slices are shared, not
// copied; the renderer runs inside the same tick, after the update step,
// so nothing mutates underneath it.
type Snapshot struct {
	Phase     Phase
	Score     int
	Lives     int
	Level     int
	BestScore int
	Username  string
	Notice    string

	WidenActive bool
	SlowActive  bool
	PreAuthed   bool

	// Login form view: password length only, never the bytes.
	LoginUsername string
	LoginPassword int
	LoginFocus    int

	Ball      *object.Ball
	Paddle    *object.Paddle
	Bricks    []*object.Brick
	PowerUps  []*object.PowerUp
	Particles []*object.Particle
	Stars     []*object.Star
}

// Snapshot captures the current frame for rendering.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Phase:     s.Phase,
		Score:     s.Session.Score,
		Lives:     s.Session.Lives,
		Level:     s.Session.Level,
		BestScore: s.BestScore,
		Username:  s.Username,
		Notice:    s.notice,

		WidenActive: s.effects.widenActive,
		SlowActive:  s.effects.slowActive,
		PreAuthed:   s.PreAuthed,

		LoginUsername: string(s.login.username),
		LoginPassword: len(s.login.password),
		LoginFocus:    s.login.focus,

		Ball:      s.Ball,
		Paddle:    s.Paddle,
		Bricks:    s.Bricks,
		PowerUps:  s.PowerUps,
		Particles: s.Particles,
		Stars:     s.Stars,
	}
}
