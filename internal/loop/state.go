package loop

import (
	"math/rand"
	"time"

	"sshbreak/internal/input"
	"sshbreak/internal/object"
	"sshbreak/internal/store"
)

// Phase is the current screen of the state machine.
type Phase int

const (
	PhaseMainMenu  Phase = iota // Login/register form (local mode)
	PhasePostLogin              // Logged in, waiting for start command
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String returns the phase tag used in snapshots and logs.
func (p Phase) String() string {
	switch p {
	case PhaseMainMenu:
		return "main_menu"
	case PhasePostLogin:
		return "post_login"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Session is the per-game bookkeeping: lives, score, level, and the
// pausable game clock. A restart replaces the whole Session.
type Session struct {
	Lives int
	Score int
	Level int

	// GameTime advances only while Playing, so pausing freezes every
	// timer derived from it (power-up expiries).
	GameTime float64
}

// effectState tracks the active temporary power-up effects. One slot per
// effect: catching the same kind again extends the expiry, never stacks.
type effectState struct {
	widenActive bool
	widenUntil  float64 // Game time
	slowActive  bool
	slowUntil   float64
}

// State holds all game state for one session.
type State struct {
	Phase   Phase
	Field   object.Field
	Session Session

	Ball      *object.Ball
	Paddle    *object.Paddle
	Bricks    []*object.Brick // Layout order; destroyed bricks stay in place
	PowerUps  []*object.PowerUp
	Particles []*object.Particle
	Stars     []*object.Star

	effects effectState
	rng     *rand.Rand
	events  []Event

	Input   input.Input
	Running bool

	// Player identity and persistence. Gateway may be nil (guest play
	// when the store could not be opened); scores then stay in memory.
	Gateway   ScoreGateway
	PlayerID  store.PlayerID
	Username  string
	BestScore int

	// PreAuthed sessions (SSH) arrive already logged in: they never see
	// the login form, and Escape from the menu disconnects instead of
	// logging out.
	PreAuthed bool

	login  loginForm
	notice string // One-line status message on menu screens
}

// ScoreGateway is the persistence boundary the loop talks to. The store
// implements it; tests substitute fakes.
type ScoreGateway interface {
	Authenticate(username, password string) (store.PlayerID, error)
	Register(username, password string) (store.PlayerID, error)
	BestScore(id store.PlayerID) (int, error)
	SaveScoreIfBetter(id store.PlayerID, score int) error
}

// NewState creates a state at the main menu with a seeded RNG and the
// background starfield.
func NewState(gateway ScoreGateway, seed int64) *State {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	field := object.Field{Width: FieldWidth, Height: FieldHeight}

	return &State{
		Phase:   PhaseMainMenu,
		Field:   field,
		Stars:   object.NewStarfield(StarCount, field, rng),
		rng:     rng,
		Running: true,
		Gateway: gateway,
	}
}

// StartSession begins a fresh game: level 1, full lives, zero score.
func (s *State) StartSession() {
	s.Session = Session{
		Lives: InitialLives,
		Level: 1,
	}
	s.effects = effectState{}
	s.PowerUps = s.PowerUps[:0]
	s.releaseParticles()
	s.beginLevel(1)
	s.Phase = PhasePlaying
}

// beginLevel builds the level grid and resets ball and paddle. Score and
// lives carry over; power-ups and effects do not.
func (s *State) beginLevel(level int) {
	s.Session.Level = level
	s.Bricks = BuildLevel(level, s.rng)
	s.PowerUps = s.PowerUps[:0]
	s.clearEffects()
	s.resetBallAndPaddle()
}

// resetBallAndPaddle recenters both and relaunches the ball at the
// level's base speed. Used on life loss and level change.
func (s *State) resetBallAndPaddle() {
	if s.Paddle == nil {
		s.Paddle = object.NewPaddle(s.Field)
	} else {
		s.Paddle.Reset(s.Field)
	}
	if s.Ball == nil {
		s.Ball = object.NewBall(s.Field)
	}
	s.Ball.Launch(s.Field, BallSpeedForLevel(s.Session.Level))
}

// speedBand returns the [min, max] ball speed band for the current level.
func (s *State) speedBand() (float64, float64) {
	base := BallSpeedForLevel(s.Session.Level)
	return base * MinSpeedFactor, base * MaxSpeedFactor
}

// Spawn adds a particle, implementing object.Spawner. Over the cap the
// particle is dropped and returned to the pool.
func (s *State) Spawn(p *object.Particle) {
	if len(s.Particles) >= maxParticles {
		p.Release()
		return
	}
	s.Particles = append(s.Particles, p)
}

// releaseParticles returns all live particles to the pool.
func (s *State) releaseParticles() {
	for _, p := range s.Particles {
		p.Release()
	}
	s.Particles = s.Particles[:0]
}
