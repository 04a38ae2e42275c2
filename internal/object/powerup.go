package object

import (
	"fmt"

	"sshbreak/internal/draw"
	"sshbreak/internal/physics"
)

// PowerKind identifies a power-up effect.
type PowerKind int

const (
	WidenPaddle PowerKind = iota
	SlowBall
	ExtraLife

	powerKindCount
)

// PowerKinds lists all spawnable kinds, for uniform random selection.
var PowerKinds = [...]PowerKind{WidenPaddle, SlowBall, ExtraLife}

// String returns a short name used in logs and the HUD.
func (k PowerKind) String() string {
	switch k {
	case WidenPaddle:
		return "widen_paddle"
	case SlowBall:
		return "slow_ball"
	case ExtraLife:
		return "extra_life"
	default:
		panic(fmt.Sprintf("object: invalid power kind %d", int(k)))
	}
}

// Power-up size and fall speed in field units.
const (
	PowerUpSize      = 20.0
	PowerUpFallSpeed = 120.0 // Field units per second, straight down
)

// PowerUp is a falling pickup dropped by a special brick. It is removed
// when caught by the paddle or when it falls past the bottom of the field.
type PowerUp struct {
	Kind   PowerKind
	X, Y   float64 // Top-left corner
	VY     float64
	Active bool
}

// NewPowerUp creates an active power-up falling from (x, y).
func NewPowerUp(kind PowerKind, x, y float64) *PowerUp {
	return &PowerUp{
		Kind:   kind,
		X:      x,
		Y:      y,
		VY:     PowerUpFallSpeed,
		Active: true,
	}
}

// Advance moves the power-up down by its velocity.
func (p *PowerUp) Advance(dt float64) {
	p.Y += p.VY * dt
}

// Rect returns the pickup's collision rectangle.
func (p *PowerUp) Rect() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, W: PowerUpSize, H: PowerUpSize}
}

// Below reports whether the pickup has fallen past the field bottom.
func (p *PowerUp) Below(field Field) bool {
	return p.Y > field.Height
}

// Draw renders the pickup with a glyph per kind so the player can tell
// them apart on a monochrome canvas.
func (p *PowerUp) Draw(c *draw.Canvas) {
	switch p.Kind {
	case WidenPaddle:
		c.StrokeRect(p.X, p.Y, PowerUpSize, PowerUpSize)
	case SlowBall:
		c.FillCircle(p.X+PowerUpSize/2, p.Y+PowerUpSize/2, PowerUpSize/2)
	case ExtraLife:
		c.FillRect(p.X, p.Y, PowerUpSize, PowerUpSize)
	}
}
