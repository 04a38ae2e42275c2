package loop

import (
	"fmt"
	"math"
	"math/rand"

	"sshbreak/internal/object"
)

// BuildLevel lays out the brick grid for a level. Density (row count),
// hit points, and the special-brick count are all monotonically
// non-decreasing in the level index. Special bricks are assigned by the
// session RNG at SpecialBrickChance per brick, with at least one special
// guaranteed per level.
//
// A level index below 1 is a programming-contract violation.
func BuildLevel(level int, rng *rand.Rand) []*object.Brick {
	if level < 1 {
		panic(fmt.Sprintf("loop: invalid level index %d", level))
	}

	rows := rowsForLevel(level)
	points := PointsPerBrick * level

	bricks := make([]*object.Brick, 0, rows*BrickCols)
	specials := 0
	for row := 0; row < rows; row++ {
		for col := 0; col < BrickCols; col++ {
			b := object.NewBrick(row, col, brickHP(level, row), points)
			if rng.Float64() < SpecialBrickChance {
				b.Special = true
				specials++
			}
			bricks = append(bricks, b)
		}
	}

	if specials == 0 {
		bricks[rng.Intn(len(bricks))].Special = true
	}
	return bricks
}

// rowsForLevel grows the grid by one row per level, capped.
func rowsForLevel(level int) int {
	rows := baseBrickRows + level
	if rows > maxBrickRows {
		rows = maxBrickRows
	}
	return rows
}

// brickHP adds a hit point every third level, plus one more for the top
// row from level 2 on: the furthest bricks are the toughest.
func brickHP(level, row int) int {
	hp := 1 + (level-1)/3
	if row == 0 && level >= 2 {
		hp++
	}
	return hp
}

// IsCleared reports whether every brick in the grid is destroyed.
// Idempotent: re-querying an unchanged grid gives the same answer.
func IsCleared(bricks []*object.Brick) bool {
	for _, b := range bricks {
		if !b.Destroyed {
			return false
		}
	}
	return true
}

// BallSpeedForLevel returns the base ball speed magnitude for a level.
// Monotonically non-decreasing in the level index.
func BallSpeedForLevel(level int) float64 {
	if level < 1 {
		panic(fmt.Sprintf("loop: invalid level index %d", level))
	}
	return BaseBallSpeed * math.Pow(SpeedGrowth, float64(level-1))
}
