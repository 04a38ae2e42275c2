package loop

// Game tuning constants. All gameplay parameters are centralized here for
// easy adjustment; entity dimensions live with their types in object.

// Field and timing
const (
	// Logical field size. Objects use these coordinates; rendering scales
	// to the terminal.
	FieldWidth  = 800.0
	FieldHeight = 600.0

	targetFPS = 60
)

// Session
const (
	InitialLives = 3
)

// Scoring: a brick is worth PointsPerBrick x level when destroyed.
const (
	PointsPerBrick = 10
)

// Ball speed. Level 1 starts at BaseBallSpeed; each level multiplies the
// base by SpeedGrowth. The speed magnitude is clamped to
// [MinSpeedFactor, MaxSpeedFactor] x the level base after every collision
// response.
const (
	BaseBallSpeed  = 420.0
	SpeedGrowth    = 1.1
	MinSpeedFactor = 0.55
	MaxSpeedFactor = 1.6
)

// Level layout
const (
	BrickCols     = 10
	baseBrickRows = 4  // Level 1 has baseBrickRows+1 rows
	maxBrickRows  = 10 // Row growth caps here
)

// Power-ups
const (
	// SpecialBrickChance is the per-brick probability of carrying a drop.
	// Every level is guaranteed at least one special brick regardless.
	SpecialBrickChance = 0.20

	// WidenFactor multiplies the paddle base width while the widen effect
	// is active.
	WidenFactor = 1.5

	// SlowFactor multiplies the ball speed when the slow effect applies.
	SlowFactor = 0.7

	// EffectDuration is how long a temporary effect lasts, in game-time
	// seconds. Game time freezes while paused, so effects do too.
	EffectDuration = 5.0
)

// Visual effects
const (
	StarCount        = 100
	brickBurstCount  = 12
	paddleBurstCount = 6
	burstSpeed       = 90.0
	burstLifetime    = 0.6
	maxParticles     = 600 // Hard cap; excess spawns are dropped
)
