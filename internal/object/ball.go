package object

import (
	"sshbreak/internal/draw"
	"sshbreak/internal/physics"
)

// Ball is the bouncing ball. There is exactly one per session.
type Ball struct {
	X, Y   float64 // Center position
	VX, VY float64 // Velocity in field units per second
	Radius float64
	Active bool

	trailCooldown float64 // Time until the next trail particle
}

// BallRadius is the ball's collision radius in field units.
const BallRadius = 10.0

// trailInterval limits how often the ball sheds a trail particle.
const trailInterval = 1.0 / 30.0

// NewBall creates an inactive ball at the field center. Call Launch to
// set its velocity and activate it.
func NewBall(field Field) *Ball {
	return &Ball{
		X:      field.Width / 2,
		Y:      field.Height / 2,
		Radius: BallRadius,
	}
}

// Launch resets the ball to the field center moving up at a 45 degree
// angle with the given speed magnitude.
func (b *Ball) Launch(field Field, speed float64) {
	b.X = field.Width / 2
	b.Y = field.Height / 2
	b.VX, b.VY = physics.ScaleToSpeed(1, -1, speed)
	b.Active = true
}

// Advance moves the ball by its velocity and sheds trail particles.
func (b *Ball) Advance(dt float64, spawner Spawner) {
	if !b.Active {
		return
	}
	b.X += b.VX * dt
	b.Y += b.VY * dt

	b.trailCooldown -= dt
	if b.trailCooldown <= 0 && spawner != nil {
		b.trailCooldown = trailInterval
		spawner.Spawn(NewTrailParticle(b.X, b.Y))
	}
}

// CollideWalls bounces the ball off the left, right, and top field
// boundaries, correcting position to stay inside so the next frame's
// check starts from a valid state. The bottom boundary is open (life
// loss) and handled by the caller. Returns true if a wall was hit.
func (b *Ball) CollideWalls(field Field) bool {
	hit := false
	if b.X-b.Radius <= 0 {
		b.X = b.Radius
		b.VX = -b.VX
		hit = true
	} else if b.X+b.Radius >= field.Width {
		b.X = field.Width - b.Radius
		b.VX = -b.VX
		hit = true
	}
	if b.Y-b.Radius <= 0 {
		b.Y = b.Radius
		b.VY = -b.VY
		hit = true
	}
	return hit
}

// Below reports whether the ball has fallen past the bottom of the field.
func (b *Ball) Below(field Field) bool {
	return b.Y-b.Radius > field.Height
}

// ClampSpeed keeps the velocity magnitude inside [min, max].
func (b *Ball) ClampSpeed(min, max float64) {
	b.VX, b.VY = physics.ClampSpeed(b.VX, b.VY, min, max)
}

// Speed returns the current velocity magnitude.
func (b *Ball) Speed() float64 {
	return physics.Speed(b.VX, b.VY)
}

// Draw renders the ball as a filled circle on the canvas.
func (b *Ball) Draw(c *draw.Canvas) {
	c.FillCircle(b.X, b.Y, b.Radius)
}
