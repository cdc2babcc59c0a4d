package spriteforge

import (
	"image"
	"math"
	"testing"
)

func TestGlowAlpha(t *testing.T) {
	const maxAlpha = 0.8
	if got := GlowAlpha(0, maxAlpha); got != maxAlpha {
		t.Errorf("GlowAlpha(0) = %v, want %v", got, maxAlpha)
	}
	if got := GlowAlpha(1, maxAlpha); got != 0 {
		t.Errorf("GlowAlpha(1) = %v, want 0", got)
	}
	if got := GlowAlpha(1.5, maxAlpha); got != 0 {
		t.Errorf("GlowAlpha(1.5) = %v, want 0", got)
	}
	// Negative distances clamp to the center value.
	if got := GlowAlpha(-0.5, maxAlpha); got != maxAlpha {
		t.Errorf("GlowAlpha(-0.5) = %v, want %v", got, maxAlpha)
	}
	// Cosine falloff: cos(pi/4) of the peak at half the radius.
	want := maxAlpha * math.Cos(math.Pi/4)
	if got := GlowAlpha(0.5, maxAlpha); math.Abs(got-want) > 1e-12 {
		t.Errorf("GlowAlpha(0.5) = %v, want %v", got, want)
	}
}

func TestGlowAlpha_MonotoneFalloff(t *testing.T) {
	prev := GlowAlpha(0, 1)
	for d := 0.05; d <= 1.0; d += 0.05 {
		cur := GlowAlpha(d, 1)
		if cur > prev {
			t.Fatalf("alpha rose from %v to %v at distance %v", prev, cur, d)
		}
		prev = cur
	}
}

func TestRenderGlow(t *testing.T) {
	d := NewDrawer(32, 32)
	RenderGlow(d, 16, 16, 10, "#FFD700", 0.8)
	if !d.Opaque(16, 16) {
		t.Error("glow center not painted")
	}
	// The glow is radial: far corners stay untouched.
	if d.Opaque(0, 0) || d.Opaque(31, 31) {
		t.Error("glow reached beyond its radius")
	}
	// Zero radius and zero intensity are no-ops.
	e := NewDrawer(8, 8)
	RenderGlow(e, 4, 4, 0, "#FFD700", 1)
	RenderGlow(e, 4, 4, 4, "#FFD700", 0)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if e.Opaque(x, y) {
				t.Fatal("no-op glow painted pixels")
			}
		}
	}
}

func TestRenderGlow_BlendsOverExisting(t *testing.T) {
	d := NewDrawer(16, 16)
	base := HexToRGBA("#FF0000")
	d.SetPixel(8, 8, base)
	RenderGlow(d, 8, 8, 6, "#00FF00", 1)
	got := d.GetPixel(8, 8)
	if got == base {
		t.Error("glow did not blend over the existing pixel")
	}
	if got.A != 255 {
		t.Errorf("blended pixel alpha = %d, want 255", got.A)
	}
}

func TestGlowForClass(t *testing.T) {
	tests := []struct {
		class         string
		wantColor     string
		wantIntensity float64
	}{
		{"paladin", "#FFD700", 0.8},
		{"mage", "#5DADE2", 0.8},
		{"rogue", "#7D3C98", 0.5},
		{"gunslinger", "#FFFFFF", 0.5}, // unknown class falls back
		{"", "#FFFFFF", 0.5},
	}
	for _, tt := range tests {
		g := GlowForClass(tt.class)
		if g.Color != tt.wantColor || g.Intensity != tt.wantIntensity {
			t.Errorf("GlowForClass(%q) = %+v, want {%s %v}", tt.class, g, tt.wantColor, tt.wantIntensity)
		}
	}
}

func TestRenderWeaponGlow(t *testing.T) {
	d := NewDrawer(48, 48)
	path := []image.Point{{12, 36}, {20, 24}, {28, 12}}
	RenderWeaponGlow(d, path, "#9B59B6", 0.7)
	for _, p := range path {
		if !d.Opaque(p.X, p.Y) {
			t.Errorf("path point %v not painted", p)
		}
	}
	// Empty paths are a no-op.
	e := NewDrawer(8, 8)
	RenderWeaponGlow(e, nil, "#9B59B6", 1)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if e.Opaque(x, y) {
				t.Fatal("empty-path weapon glow painted pixels")
			}
		}
	}
}
