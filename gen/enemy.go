package gen

import (
	"image"
	"image/color"

	"github.com/Mahinika/spriteforge"
)

// generateEnemy draws an enemy sprite. The declared size class scales a
// base radius factor (small 0.6, medium 1.0, large 1.3) before any
// layout, and the body type selects the silhouette recipe. Unknown body
// types take the blob layout.
func generateEnemy(req Request, rng *spriteforge.RNG) *Asset {
	size := req.Size
	d := spriteforge.NewDrawer(size, size)
	res := resolveAppearance(req.Record)
	body := bodyTypeFromString(req.Record.BodyType)

	base := jitterHex(rng, res.Cloth, req.Variant, 0.25)
	pal := spriteforge.GeneratePalette(base, spriteforge.MaterialCloth)
	cx, cy := size/2, size/2
	radius := int(float64(size) * 0.28 * res.SizeFactor)
	if radius < 2 {
		radius = 2
	}

	profile := "enemy_blob"
	switch body {
	case BodyBiped:
		profile = "enemy_biped"
		drawBipedBody(d, cx, cy, radius, pal)
	case BodyBeast:
		profile = "enemy_beast"
		drawBeastBody(d, cx, cy, radius, pal)
	case BodyWraith:
		profile = "enemy_wraith"
		drawWraithBody(d, cx, cy, radius, pal, rng)
	default:
		drawBlobBody(d, cx, cy, radius, pal, rng)
	}

	// Eyes: paired glints placed by the body recipe's head center.
	eye := spriteforge.HexToRGBA("#F4D03F")
	eyeY := cy - radius/2
	if body == BodyBeast {
		eyeY = cy - radius/4
	}
	d.FillCircle(cx-radius/3, eyeY, 1, eye)
	d.FillCircle(cx+radius/3, eyeY, 1, eye)

	d.Outline(color.RGBA{0, 0, 0, 255}, 1)

	glowColor := ""
	if res.Glow != "" {
		spriteforge.RenderGlow(d, cx, cy, radius*2, res.Glow, 0.5)
		glowColor = res.Glow
	}

	return &Asset{
		Image: d.Image(),
		Meta: Metadata{
			AssetType: AssetEnemy.String(),
			Profile:   profile,
			BaseSize:  [2]int{size, size},
			GlowColor: glowColor,
			Outline:   true,
		},
	}
}

// drawBlobBody is the default enemy silhouette: a shaded blob with a
// few seed-chosen bumps along the crown.
func drawBlobBody(d *spriteforge.Drawer, cx, cy, r int, pal spriteforge.Palette, rng *spriteforge.RNG) {
	spriteforge.ApplyCelShadeCircle(d, cx, cy, r, pal, spriteforge.LightTopLeft)
	bumps := 2 + rng.Pick(3)
	bump := spriteforge.HexToRGBA(pal.Light)
	for i := 0; i < bumps; i++ {
		bx := cx - r + (2*r*(i+1))/(bumps+1)
		by := cy - r + rng.IntBetween(-r/4, r/4)
		d.FillCircle(bx, by, 1+r/4, bump)
	}
}

// drawBipedBody is a squat humanoid: blob head over a shaded trunk with
// stub legs.
func drawBipedBody(d *spriteforge.Drawer, cx, cy, r int, pal spriteforge.Palette) {
	trunkW := r + r/2
	trunkH := r + r/3
	spriteforge.ApplyCelShade(d, cx-trunkW/2, cy-r/4, trunkW, trunkH, pal, spriteforge.LightTopLeft)
	spriteforge.ApplyCelShadeCircle(d, cx, cy-r/2, r*2/3, pal, spriteforge.LightTopLeft)
	leg := spriteforge.HexToRGBA(pal.DarkShadow)
	legW := 1 + r/3
	d.FillRect(cx-trunkW/2, cy-r/4+trunkH, legW, r/2+1, leg)
	d.FillRect(cx+trunkW/2-legW, cy-r/4+trunkH, legW, r/2+1, leg)
}

// drawBeastBody is a horizontal quadruped: long body ellipse, head
// circle forward, four legs.
func drawBeastBody(d *spriteforge.Drawer, cx, cy, r int, pal spriteforge.Palette) {
	body := spriteforge.HexToRGBA(pal.Base)
	back := spriteforge.HexToRGBA(pal.Light)
	belly := spriteforge.HexToRGBA(pal.Shadow)
	d.FillEllipse(cx, cy, r+r/2, r, body)
	d.FillEllipse(cx, cy-r/3, r+r/3, r/2+1, back)
	d.FillEllipse(cx, cy+r/2, r+r/4, r/3+1, belly)
	spriteforge.ApplyCelShadeCircle(d, cx+r, cy-r/4, r*2/3, pal, spriteforge.LightTopLeft)
	leg := spriteforge.HexToRGBA(pal.DarkShadow)
	legW := 1 + r/4
	for _, lx := range [4]int{cx - r, cx - r/3, cx + r/3, cx + r} {
		d.FillRect(lx, cy+r/2, legW, r/2+1, leg)
	}
}

// drawWraithBody is a tapering apparition: shaded hood over a trailing
// skirt of seed-jittered wisps, no legs.
func drawWraithBody(d *spriteforge.Drawer, cx, cy, r int, pal spriteforge.Palette, rng *spriteforge.RNG) {
	spriteforge.ApplyCelShadeCircle(d, cx, cy-r/2, r, pal, spriteforge.LightTop)
	d.FillPolygon([]image.Point{
		{cx - r, cy - r/4}, {cx + r, cy - r/4}, {cx, cy + r + r/2},
	}, spriteforge.HexToRGBA(pal.Shadow))
	wisp := spriteforge.HexToRGBA(pal.DarkShadow)
	for i := 0; i < 3; i++ {
		wx := cx - r/2 + rng.IntBetween(0, r)
		wy := cy + r + rng.IntBetween(0, r/2)
		d.FillCircle(wx, wy, 1+r/6, wisp)
	}
}
