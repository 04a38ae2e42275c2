package draw

import "math"

// Shape primitives for the canvas. All coordinates are logical field
// coordinates; scaling to terminal pixels happens per pixel so shapes stay
// contiguous at any terminal size.

// FillRect fills the axis-aligned rectangle with top-left (x, y).
func (c *Canvas) FillRect(x, y, w, h float64) {
	x1 := int(math.Round(x * c.scaleX))
	y1 := int(math.Round(y * c.scaleY))
	x2 := int(math.Round((x + w) * c.scaleX))
	y2 := int(math.Round((y + h) * c.scaleY))

	// A rect thinner than one pixel after scaling still draws one pixel row.
	if x2 <= x1 {
		x2 = x1 + 1
	}
	if y2 <= y1 {
		y2 = y1 + 1
	}

	for py := y1; py < y2; py++ {
		for px := x1; px < x2; px++ {
			c.setPixel(px, py)
		}
	}
}

// StrokeRect draws the one-pixel outline of the rectangle.
func (c *Canvas) StrokeRect(x, y, w, h float64) {
	x1 := int(math.Round(x * c.scaleX))
	y1 := int(math.Round(y * c.scaleY))
	x2 := int(math.Round((x + w) * c.scaleX))
	y2 := int(math.Round((y + h) * c.scaleY))

	if x2 <= x1 {
		x2 = x1 + 1
	}
	if y2 <= y1 {
		y2 = y1 + 1
	}

	for px := x1; px < x2; px++ {
		c.setPixel(px, y1)
		c.setPixel(px, y2-1)
	}
	for py := y1; py < y2; py++ {
		c.setPixel(x1, py)
		c.setPixel(x2-1, py)
	}
}

// FillCircle fills a circle centered at (cx, cy) with the given radius.
// The scan runs in pixel space so circles stay round despite the
// non-square scale factors.
func (c *Canvas) FillCircle(cx, cy, r float64) {
	pcx := cx * c.scaleX
	pcy := cy * c.scaleY
	prx := r * c.scaleX
	pry := r * c.scaleY
	if prx < 0.5 {
		prx = 0.5
	}
	if pry < 0.5 {
		pry = 0.5
	}

	y1 := int(math.Floor(pcy - pry))
	y2 := int(math.Ceil(pcy + pry))
	for py := y1; py <= y2; py++ {
		// Ellipse scanline: solve for x extent at this row.
		dy := (float64(py) - pcy) / pry
		if dy*dy > 1 {
			continue
		}
		half := prx * math.Sqrt(1-dy*dy)
		x1 := int(math.Round(pcx - half))
		x2 := int(math.Round(pcx + half))
		for px := x1; px <= x2; px++ {
			c.setPixel(px, py)
		}
	}
}
