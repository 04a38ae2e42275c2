// Package object defines the entities of the game: ball, paddle, bricks,
// power-ups, and the particle/starfield visual effects.
package object

// Field represents the logical play field dimensions. Game objects use
// these coordinates; rendering scales them to the actual terminal size.
type Field struct {
	Width  float64
	Height float64
}

// Spawner allows entities to emit new visual effects during update.
type Spawner interface {
	Spawn(p *Particle)
}
