package object

import (
	"math/rand"

	"sshbreak/internal/draw"
)

// Star is one point of the scrolling background starfield. Stars drift
// down at varying speeds for a cheap parallax effect and wrap back to the
// top when they leave the field.
type Star struct {
	X, Y  float64
	Speed float64
}

// NewStarfield creates count stars randomly placed over the field.
func NewStarfield(count int, field Field, rng *rand.Rand) []*Star {
	stars := make([]*Star, count)
	for i := range stars {
		stars[i] = &Star{
			X:     rng.Float64() * field.Width,
			Y:     rng.Float64() * field.Height,
			Speed: 15 + rng.Float64()*45,
		}
	}
	return stars
}

// Update moves the star down, wrapping to a new column at the top.
func (s *Star) Update(dt float64, field Field, rng *rand.Rand) {
	s.Y += s.Speed * dt
	if s.Y > field.Height {
		s.Y = 0
		s.X = rng.Float64() * field.Width
	}
}

// Draw renders the star as a single canvas pixel.
func (s *Star) Draw(c *draw.Canvas) {
	c.SetFloat(s.X, s.Y)
}
