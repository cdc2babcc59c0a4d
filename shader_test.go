package spriteforge

import (
	"math"
	"testing"
)

func TestMaterialFromString(t *testing.T) {
	tests := []struct {
		tag  string
		want Material
	}{
		{"skin", MaterialSkin},
		{"metal", MaterialMetal},
		{"cloth", MaterialCloth},
		{"", MaterialCloth},
		{"adamantium", MaterialCloth},
	}
	for _, tt := range tests {
		if got := MaterialFromString(tt.tag); got != tt.want {
			t.Errorf("MaterialFromString(%q) = %v, want %v", tt.tag, got, tt.want)
		}
	}
}

// The ramp invariant: luminance never increases from Highlight down to
// DarkShadow, for any base color and any material. Hue adjustments
// happen before the ramp, so this must hold unconditionally.
func TestGeneratePalette_LuminanceMonotone(t *testing.T) {
	bases := []string{
		"#D8A57A", "#3B6EA5", "#9AA5B1", "#FF0000", "#00FF00", "#0000FF",
		"#000000", "#FFFFFF", "#112233", "#C9A227", "#7D3C98",
	}
	materials := []Material{MaterialSkin, MaterialCloth, MaterialMetal}
	for _, base := range bases {
		for _, m := range materials {
			pal := GeneratePalette(base, m)
			levels := pal.Levels()
			for i := 0; i+1 < len(levels); i++ {
				if Luma(levels[i+1]) > Luma(levels[i]) {
					t.Errorf("base %s material %v: level %d (%s, luma %.1f) brighter than level %d (%s, luma %.1f)",
						base, m, i+1, levels[i+1], Luma(levels[i+1]), i, levels[i], Luma(levels[i]))
				}
			}
		}
	}
}

func TestGeneratePalette_MaterialSpread(t *testing.T) {
	const base = "#808080"
	cloth := GeneratePalette(base, MaterialCloth)
	metal := GeneratePalette(base, MaterialMetal)
	clothSpread := Luma(cloth.Highlight) - Luma(cloth.DarkShadow)
	metalSpread := Luma(metal.Highlight) - Luma(metal.DarkShadow)
	if metalSpread <= clothSpread {
		t.Errorf("metal spread %.1f not wider than cloth spread %.1f", metalSpread, clothSpread)
	}
}

func TestGeneratePalette_BasePreserved(t *testing.T) {
	// Cloth has no hue adjustment, so the ramp's Base is the input.
	const base = "#3B6EA5"
	pal := GeneratePalette(base, MaterialCloth)
	if pal.Base != base {
		t.Errorf("cloth Base = %s, want %s", pal.Base, base)
	}
}

func TestPalette_LevelClamps(t *testing.T) {
	pal := GeneratePalette("#3B6EA5", MaterialCloth)
	if pal.Level(-3) != pal.Highlight {
		t.Error("Level below range did not clamp to Highlight")
	}
	if pal.Level(99) != pal.DarkShadow {
		t.Error("Level above range did not clamp to DarkShadow")
	}
	if pal.Level(2) != pal.Base {
		t.Error("Level(2) is not Base")
	}
}

func TestShadeBand(t *testing.T) {
	tests := []struct {
		proj float64
		want int
	}{
		{math.Sqrt2, 0},
		{0, 2},
		{-math.Sqrt2, 4},
		{10, 0},
		{-10, 4},
	}
	for _, tt := range tests {
		if got := shadeBand(tt.proj); got != tt.want {
			t.Errorf("shadeBand(%v) = %d, want %d", tt.proj, got, tt.want)
		}
	}
}

func TestApplyCelShade_LightOrientation(t *testing.T) {
	pal := GeneratePalette("#808080", MaterialCloth)
	d := NewDrawer(20, 20)
	ApplyCelShade(d, 0, 0, 20, 20, pal, LightTopLeft)

	// With top-left light the top-left corner must be at least as
	// bright as the bottom-right corner.
	tl := d.GetPixel(0, 0)
	br := d.GetPixel(19, 19)
	lumaOf := func(c [3]uint8) float64 {
		return 0.299*float64(c[0]) + 0.587*float64(c[1]) + 0.114*float64(c[2])
	}
	if lumaOf([3]uint8{tl.R, tl.G, tl.B}) <= lumaOf([3]uint8{br.R, br.G, br.B}) {
		t.Error("top-left corner not brighter than bottom-right under top-left light")
	}
	// Every pixel in the region is painted with a ramp color.
	ramp := map[string]bool{}
	for _, l := range pal.Levels() {
		ramp[l] = true
	}
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			c := d.GetPixel(x, y)
			if !ramp[RGBToHex(c.R, c.G, c.B)] {
				t.Fatalf("pixel (%d, %d) = %v is not a ramp color", x, y, c)
			}
		}
	}
}

func TestApplyCelShadeCircle(t *testing.T) {
	pal := GeneratePalette("#808080", MaterialCloth)
	d := NewDrawer(21, 21)
	ApplyCelShadeCircle(d, 10, 10, 8, pal, LightTopLeft)

	if !d.Opaque(10, 10) {
		t.Fatal("disc center not painted")
	}
	if d.Opaque(0, 0) || d.Opaque(20, 20) {
		t.Error("painted outside the disc")
	}
	// The highlight sits toward the light, so the pixel offset
	// top-left of center is brighter than the one bottom-right.
	hl := d.GetPixel(7, 7)
	sh := d.GetPixel(14, 14)
	if Luma(RGBToHex(hl.R, hl.G, hl.B)) <= Luma(RGBToHex(sh.R, sh.G, sh.B)) {
		t.Error("sphere highlight not oriented toward the light")
	}
}

func TestApplyCelShade_DegenerateRegions(t *testing.T) {
	pal := GeneratePalette("#808080", MaterialCloth)
	d := NewDrawer(8, 8)
	ApplyCelShade(d, 0, 0, 0, 5, pal, LightTopLeft)
	ApplyCelShade(d, 0, 0, 5, -1, pal, LightTopLeft)
	ApplyCelShadeCircle(d, 4, 4, 0, pal, LightTopLeft)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if d.Opaque(x, y) {
				t.Fatal("degenerate region painted pixels")
			}
		}
	}
}
