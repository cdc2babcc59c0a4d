package gen

import (
	"image/color"

	"github.com/Mahinika/spriteforge"
)

// generateProjectile draws a small missile sprite: a bright core with a
// trailing tail toward the left edge, glowing in the appearance's glow
// color (default: the cloth base).
func generateProjectile(req Request, rng *spriteforge.RNG) *Asset {
	size := req.Size
	d := spriteforge.NewDrawer(size, size)
	res := resolveAppearance(req.Record)

	glow := res.Glow
	if glow == "" {
		glow = res.Cloth
	}
	glow = spriteforge.EnsureVisibleFill(jitterHex(rng, glow, req.Variant, 0.20))

	cx, cy := size*2/3, size/2
	coreR := 1 + size/10

	// Tail: shrinking blobs back along the travel axis.
	tail := spriteforge.HexWithAlpha(glow, 150)
	for i := 1; i <= 3; i++ {
		tr := coreR - i*coreR/4
		if tr < 1 {
			tr = 1
		}
		d.FillCircle(cx-i*size/6, cy, tr, tail)
	}

	core := spriteforge.HexToRGBA(spriteforge.LightenHex(glow, 0.5))
	d.FillCircle(cx, cy, coreR, core)
	d.FillCircle(cx, cy, coreR/2, color.RGBA{255, 255, 255, 255})

	d.Outline(spriteforge.HexToRGBA(spriteforge.DarkenHex(glow, 0.5)), 1)
	spriteforge.RenderGlow(d, cx, cy, size/3, glow, 0.7)

	return &Asset{
		Image: d.Image(),
		Meta: Metadata{
			AssetType: AssetProjectile.String(),
			Profile:   "projectile",
			BaseSize:  [2]int{size, size},
			GlowColor: glow,
			Outline:   true,
		},
	}
}
