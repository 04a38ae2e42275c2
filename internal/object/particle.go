package object

import (
	"math"
	"math/rand"
	"sync"

	"sshbreak/internal/draw"
)

// particlePool reuses Particle objects to reduce allocations; bursts on
// brick breaks can spawn dozens per frame.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived visual effect drawn as a single canvas pixel.
type Particle struct {
	X, Y        float64 // Position
	VX, VY      float64 // Velocity
	Lifetime    float64 // Seconds remaining
	MaxLifetime float64 // Initial lifetime
	Drag        float64 // Velocity decay per frame step (1.0 = no drag)
}

// NewParticle creates a single particle from the pool.
func NewParticle(x, y, vx, vy, lifetime float64) *Particle {
	p := particlePool.Get().(*Particle)
	p.X = x
	p.Y = y
	p.VX = vx
	p.VY = vy
	p.Lifetime = lifetime
	p.MaxLifetime = lifetime
	p.Drag = 0.95
	return p
}

// NewTrailParticle creates a slow upward-drifting particle for the ball's
// fire trail.
func NewTrailParticle(x, y float64) *Particle {
	vx := (rand.Float64() - 0.5) * 30
	vy := -rand.Float64() * 40
	return NewParticle(x, y, vx, vy, 0.3+rand.Float64()*0.2)
}

// Release returns the particle to the pool. Call when the particle is
// removed from the game.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// Update advances the particle and reports whether it should be removed.
func (p *Particle) Update(dt float64) bool {
	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.VX *= p.Drag
	p.VY *= p.Drag
	p.Lifetime -= dt
	return p.Lifetime <= 0
}

// Draw renders the particle while it is still alive.
func (p *Particle) Draw(c *draw.Canvas) {
	if p.Lifetime > 0 {
		c.SetFloat(p.X, p.Y)
	}
}

// SpawnBurst creates particles in a circular burst, used for brick
// destruction and paddle hits.
func SpawnBurst(x, y float64, count int, speed, lifetime float64, spawner Spawner) {
	if spawner == nil {
		return
	}
	for i := 0; i < count; i++ {
		angle := rand.Float64() * 2 * math.Pi
		spd := speed * (0.5 + rand.Float64())
		life := lifetime * (0.5 + rand.Float64()*0.5)

		vx := math.Cos(angle) * spd
		vy := math.Sin(angle) * spd
		spawner.Spawn(NewParticle(x, y, vx, vy, life))
	}
}
