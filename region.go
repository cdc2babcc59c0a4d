package spriteforge

// Region describes where a body part or icon element is drawn: an
// axis-aligned rectangle, optionally circular. Regions are computed by
// Proportions and never mutated after creation.
type Region struct {
	X, Y int
	W, H int

	// Circle fields. Radius > 0 marks the region as circular; the
	// rectangle then holds the circle's bounding box.
	CenterX int
	CenterY int
	Radius  int
}

// Rect creates a rectangular region.
func Rect(x, y, w, h int) Region {
	return Region{X: x, Y: y, W: w, H: h, CenterX: x + w/2, CenterY: y + h/2}
}

// Circle creates a circular region with its bounding box filled in.
func Circle(cx, cy, r int) Region {
	return Region{
		X: cx - r, Y: cy - r,
		W: 2 * r, H: 2 * r,
		CenterX: cx, CenterY: cy, Radius: r,
	}
}

// Circular reports whether the region is a circle.
func (r Region) Circular() bool {
	return r.Radius > 0
}

// Bottom returns the y coordinate one past the region's last row.
func (r Region) Bottom() int {
	return r.Y + r.H
}
