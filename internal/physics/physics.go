// Package physics provides collision detection and reflection utilities.
package physics

import "math"

// Rect is an axis-aligned rectangle in logical (field) coordinates.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the x-coordinate of the rectangle center.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the y-coordinate of the rectangle center.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Intersects reports whether two rectangles overlap (standard AABB test).
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Hit describes a circle-vs-rect contact. FlipX and FlipY tell the caller
// which velocity components to reflect: a side contact sets FlipX, a
// top/bottom contact sets FlipY, and a corner contact sets both. Corner
// contacts reflect both axes instead of computing an exact corner normal.
type Hit struct {
	FlipX bool
	FlipY bool
}

// IntersectCircleRect tests a circle of radius r centered at (cx, cy)
// against rect. Pure and deterministic. The contact axis is chosen by
// comparing penetration depths: the shallower axis is the contact normal,
// near-equal depths count as a corner hit.
func IntersectCircleRect(cx, cy, r float64, rect Rect) (Hit, bool) {
	// Closest point on the rect to the circle center.
	nx := clamp(cx, rect.X, rect.Right())
	ny := clamp(cy, rect.Y, rect.Bottom())

	dx := cx - nx
	dy := cy - ny
	if dx*dx+dy*dy > r*r {
		return Hit{}, false
	}

	// Penetration depth along each axis, measured from the entry-side edge
	// to the far side of the circle. The shallower axis is the entry axis.
	var penX, penY float64
	if cx < rect.CenterX() {
		penX = cx + r - rect.X
	} else {
		penX = rect.Right() - (cx - r)
	}
	if cy < rect.CenterY() {
		penY = cy + r - rect.Y
	} else {
		penY = rect.Bottom() - (cy - r)
	}

	const cornerSlack = 2.0
	switch {
	case math.Abs(penX-penY) <= cornerSlack:
		return Hit{FlipX: true, FlipY: true}, true
	case penX < penY:
		return Hit{FlipX: true}, true
	default:
		return Hit{FlipY: true}, true
	}
}

// Reflect mirrors the velocity components selected by hit.
func Reflect(vx, vy float64, hit Hit) (float64, float64) {
	if hit.FlipX {
		vx = -vx
	}
	if hit.FlipY {
		vy = -vy
	}
	return vx, vy
}

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// Speed returns the magnitude of the velocity (vx, vy).
func Speed(vx, vy float64) float64 {
	return math.Sqrt(vx*vx + vy*vy)
}

// ScaleToSpeed rescales (vx, vy) to the given magnitude, preserving
// direction. A zero vector is returned unchanged.
func ScaleToSpeed(vx, vy, speed float64) (float64, float64) {
	mag := Speed(vx, vy)
	if mag == 0 {
		return vx, vy
	}
	s := speed / mag
	return vx * s, vy * s
}

// ClampSpeed rescales (vx, vy) into the [min, max] magnitude band.
// Vectors already inside the band are returned unchanged.
func ClampSpeed(vx, vy, min, max float64) (float64, float64) {
	mag := Speed(vx, vy)
	if mag == 0 {
		return vx, vy
	}
	if mag < min {
		return ScaleToSpeed(vx, vy, min)
	}
	if mag > max {
		return ScaleToSpeed(vx, vy, max)
	}
	return vx, vy
}

// Clamp restricts val to [min, max].
func Clamp(val, min, max float64) float64 {
	return clamp(val, min, max)
}

func clamp(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
