package object

import (
	"sshbreak/internal/draw"
	"sshbreak/internal/physics"
)

// Brick layout constants in field units (10 columns across an 800-wide field).
const (
	BrickWidth   = 70.0
	BrickHeight  = 20.0
	BrickGapX    = 80.0 // Horizontal stride between brick origins
	BrickGapY    = 30.0 // Vertical stride between brick origins
	BrickMarginX = 10.0
	BrickMarginY = 10.0
)

// Brick is one cell of the level grid. Destroyed bricks stay in the grid
// with the Destroyed flag set; they never respawn within a level.
type Brick struct {
	Row, Col  int
	HP        int
	Points    int  // Score awarded when destroyed
	Special   bool // Drops a power-up when destroyed
	Destroyed bool
}

// NewBrick creates a brick at the given grid cell.
func NewBrick(row, col, hp, points int) *Brick {
	return &Brick{Row: row, Col: col, HP: hp, Points: points}
}

// Rect returns the brick's collision rectangle, derived from its cell.
func (b *Brick) Rect() physics.Rect {
	return physics.Rect{
		X: float64(b.Col)*BrickGapX + BrickMarginX,
		Y: float64(b.Row)*BrickGapY + BrickMarginY,
		W: BrickWidth,
		H: BrickHeight,
	}
}

// Damage reduces the brick's hit points by one and reports whether the
// brick was destroyed by this hit. Hitting an already destroyed brick is
// a no-op.
func (b *Brick) Damage() bool {
	if b.Destroyed {
		return false
	}
	b.HP--
	if b.HP <= 0 {
		b.Destroyed = true
		return true
	}
	return false
}

// Draw renders the brick. Bricks with more than one hit point remaining
// get an outline halo so the player can read their state.
func (b *Brick) Draw(c *draw.Canvas) {
	if b.Destroyed {
		return
	}
	r := b.Rect()
	c.FillRect(r.X, r.Y, r.W, r.H)
	if b.HP > 1 {
		c.StrokeRect(r.X-3, r.Y-3, r.W+6, r.H+6)
	}
}
