package spriteforge

import "testing"

func TestProportions_RegionsNonDegenerate(t *testing.T) {
	for _, size := range []int{16, 32, 48, 64, 128, 256} {
		p := NewProportions(size)
		cx, cy := size/2, size/2
		head := p.HeadBounds(cx, cy)
		torso := p.TorsoBounds(cx, cy)
		legs := p.LegsBounds(cx, cy)

		if head.Radius < 1 {
			t.Errorf("size %d: head radius %d < 1", size, head.Radius)
		}
		if torso.W < 1 || torso.H < 1 {
			t.Errorf("size %d: torso %dx%d degenerate", size, torso.W, torso.H)
		}
		if legs.W < 1 || legs.H < 1 {
			t.Errorf("size %d: legs %dx%d degenerate", size, legs.W, legs.H)
		}
	}
}

func TestProportions_LayoutOrder(t *testing.T) {
	for _, size := range []int{16, 48, 64, 256} {
		p := NewProportions(size)
		cx, cy := size/2, size/2
		head := p.HeadBounds(cx, cy)
		torso := p.TorsoBounds(cx, cy)
		legs := p.LegsBounds(cx, cy)

		// Torso starts inside the head's bottom edge (fixed overlap)
		// and legs inside the torso's.
		if torso.Y >= head.Bottom() {
			t.Errorf("size %d: torso (y=%d) does not overlap head (bottom=%d)", size, torso.Y, head.Bottom())
		}
		if legs.Y >= torso.Bottom() {
			t.Errorf("size %d: legs (y=%d) do not overlap torso (bottom=%d)", size, legs.Y, torso.Bottom())
		}
		// The figure spans the canvas: head at the top edge, legs at
		// the bottom.
		if head.Y != cy-size/2 {
			t.Errorf("size %d: head top %d, want %d", size, head.Y, cy-size/2)
		}
		if legs.Bottom() != cy+size/2 {
			t.Errorf("size %d: legs bottom %d, want %d", size, legs.Bottom(), cy+size/2)
		}
	}
}

func TestProportions_ScaleWithSize(t *testing.T) {
	small := NewProportions(32)
	large := NewProportions(256)
	sh := small.HeadBounds(16, 16)
	lh := large.HeadBounds(128, 128)
	if lh.Radius <= sh.Radius {
		t.Errorf("head radius did not scale: %d at 32px vs %d at 256px", sh.Radius, lh.Radius)
	}
	st := small.TorsoBounds(16, 16)
	lt := large.TorsoBounds(128, 128)
	if lt.W <= st.W || lt.H <= st.H {
		t.Error("torso did not scale with canvas size")
	}
}

func TestProportions_MinimumSize(t *testing.T) {
	tiny := NewProportions(4)
	if tiny.Size() != 16 {
		t.Errorf("Size() = %d, want sizes below 16 raised to 16", tiny.Size())
	}
}

func TestRegion(t *testing.T) {
	r := Rect(2, 3, 10, 6)
	if r.Circular() {
		t.Error("Rect region reports circular")
	}
	if r.Bottom() != 9 {
		t.Errorf("Bottom() = %d, want 9", r.Bottom())
	}
	if r.CenterX != 7 || r.CenterY != 6 {
		t.Errorf("center = (%d, %d), want (7, 6)", r.CenterX, r.CenterY)
	}

	c := Circle(10, 10, 4)
	if !c.Circular() {
		t.Error("Circle region reports non-circular")
	}
	if c.X != 6 || c.Y != 6 || c.W != 8 || c.H != 8 {
		t.Errorf("circle bounding box = (%d, %d, %d, %d)", c.X, c.Y, c.W, c.H)
	}
}
