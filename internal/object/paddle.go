package object

import (
	"sshbreak/internal/draw"
	"sshbreak/internal/physics"
)

// Paddle dimensions and movement speed in field units.
const (
	PaddleBaseWidth = 100.0
	PaddleHeight    = 10.0
	PaddleSpeed     = 540.0 // Field units per second
	paddleMarginY   = 20.0  // Distance of paddle top from the field bottom
)

// Paddle is the player-controlled paddle. Y is fixed; only X moves.
type Paddle struct {
	X         float64 // Left edge
	Y         float64
	Width     float64
	Height    float64
	BaseWidth float64
}

// NewPaddle creates a paddle centered at the bottom of the field.
func NewPaddle(field Field) *Paddle {
	return &Paddle{
		X:         field.Width/2 - PaddleBaseWidth/2,
		Y:         field.Height - paddleMarginY,
		Width:     PaddleBaseWidth,
		Height:    PaddleHeight,
		BaseWidth: PaddleBaseWidth,
	}
}

// Move shifts the paddle horizontally. dir is -1 (left), 0, or +1 (right).
// The position is always clamped to [0, fieldWidth-Width].
func (p *Paddle) Move(dir float64, dt float64, field Field) {
	p.X += dir * PaddleSpeed * dt
	p.clamp(field)
}

// SetWidth resizes the paddle around its center, re-clamping to the field.
func (p *Paddle) SetWidth(w float64, field Field) {
	center := p.X + p.Width/2
	p.Width = w
	p.X = center - w/2
	p.clamp(field)
}

// Reset recenters the paddle and restores its base width.
func (p *Paddle) Reset(field Field) {
	p.Width = p.BaseWidth
	p.X = field.Width/2 - p.Width/2
}

func (p *Paddle) clamp(field Field) {
	p.X = physics.Clamp(p.X, 0, field.Width-p.Width)
}

// Rect returns the paddle's collision rectangle.
func (p *Paddle) Rect() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// Draw renders the paddle as a filled rectangle.
func (p *Paddle) Draw(c *draw.Canvas) {
	c.FillRect(p.X, p.Y, p.Width, p.Height)
}
