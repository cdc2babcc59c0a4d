package spriteforge

// Body proportion ratios, as fractions of total sprite height. The head
// is deliberately oversized (chibi proportions) so faces stay readable
// at icon sizes. Regions overlap by a small fixed ratio for visual
// continuity at the neck and waist.
const (
	headRatio    = 0.36
	torsoRatio   = 0.26
	overlapRatio = 0.04

	torsoWidthRatio = 0.42
	legsWidthRatio  = 0.34
)

// Proportions maps a target sprite size to body-region rectangles so
// the same generator logic works at 48px icons and 256px hero sprites.
// Ratios scale with size; there are no absolute pixel offsets.
type Proportions struct {
	size int
}

// NewProportions creates a proportion layout for a square canvas of the
// given size. Sizes below 16 are raised to 16, the smallest canvas on
// which every region keeps a non-zero extent.
func NewProportions(size int) Proportions {
	if size < 16 {
		size = 16
	}
	return Proportions{size: size}
}

// Size returns the canvas size the layout was built for.
func (p Proportions) Size() int {
	return p.size
}

// HeadBounds returns the head region: a circle whose diameter is the
// head's share of total height, anchored so the figure centered at
// (cx, cy) spans the full canvas height.
func (p Proportions) HeadBounds(cx, cy int) Region {
	headH := p.part(headRatio)
	r := headH / 2
	if r < 1 {
		r = 1
	}
	top := cy - p.size/2
	return Circle(cx, top+r, r)
}

// TorsoBounds returns the torso rectangle, overlapping the head bottom
// by the fixed overlap ratio.
func (p Proportions) TorsoBounds(cx, cy int) Region {
	head := p.HeadBounds(cx, cy)
	overlap := p.part(overlapRatio)
	w := p.part(torsoWidthRatio)
	h := p.part(torsoRatio) + overlap
	return Rect(cx-w/2, head.Bottom()-overlap, w, h)
}

// LegsBounds returns the legs rectangle: everything from the torso
// bottom (minus the overlap) to the canvas bottom.
func (p Proportions) LegsBounds(cx, cy int) Region {
	torso := p.TorsoBounds(cx, cy)
	overlap := p.part(overlapRatio)
	top := torso.Bottom() - overlap
	bottom := cy + p.size/2
	h := bottom - top
	if h < 1 {
		h = 1
	}
	w := p.part(legsWidthRatio)
	return Rect(cx-w/2, top, w, h)
}

// part converts a height ratio into pixels, never collapsing to zero.
func (p Proportions) part(ratio float64) int {
	v := int(float64(p.size) * ratio)
	if v < 1 {
		v = 1
	}
	return v
}
