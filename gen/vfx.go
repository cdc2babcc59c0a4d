package gen

import (
	"math"

	"github.com/Mahinika/spriteforge"
)

// generateVFX draws a burst effect: seed-jittered radial spokes around
// a glowing core. Used for impact flashes and level-up bursts.
func generateVFX(req Request, rng *spriteforge.RNG) *Asset {
	size := req.Size
	d := spriteforge.NewDrawer(size, size)
	res := resolveAppearance(req.Record)

	tint := res.Glow
	if tint == "" {
		tint = res.Cloth
	}
	tint = spriteforge.EnsureVisibleFill(jitterHex(rng, tint, req.Variant, 0.20))

	cx, cy := size/2, size/2
	spokes := 6 + rng.Pick(5)
	inner := float64(size) / 8
	spoke := spriteforge.HexToRGBA(spriteforge.LightenHex(tint, 0.3))
	for i := 0; i < spokes; i++ {
		angle := 2*math.Pi*float64(i)/float64(spokes) + rng.Float64()*0.4
		length := inner + rng.Float64()*float64(size)/4
		x0 := cx + int(math.Cos(angle)*inner)
		y0 := cy + int(math.Sin(angle)*inner)
		x1 := cx + int(math.Cos(angle)*(inner+length))
		y1 := cy + int(math.Sin(angle)*(inner+length))
		d.DrawLine(x0, y0, x1, y1, spoke)
	}

	core := spriteforge.HexToRGBA(spriteforge.LightenHex(tint, 0.6))
	d.FillCircle(cx, cy, 1+size/10, core)

	spriteforge.RenderGlow(d, cx, cy, size/2, tint, 0.8)

	return &Asset{
		Image: d.Image(),
		Meta: Metadata{
			AssetType: AssetVFX.String(),
			Profile:   "vfx_burst",
			BaseSize:  [2]int{size, size},
			GlowColor: tint,
			Outline:   false,
		},
	}
}
