package gen

import (
	"image"
	"image/color"

	"github.com/Mahinika/spriteforge"
)

// hairColors is the fixed pool of hair colors sampled per seed.
var hairColors = [...]string{
	"#2C1B10", "#4A2F1B", "#6B4A2F", "#8E6B3E", "#B5A642", "#4A4A4A",
}

// generateHumanoid draws a hero sprite: shadow, legs, torso, arms,
// head, hair or helmet, and weapon, cel-shaded per region and outlined.
// The paladin class gets the armored profile: metal torso, helmet, and
// a gold trim line.
func generateHumanoid(req Request, rng *spriteforge.RNG) *Asset {
	size := req.Size
	d := spriteforge.NewDrawer(size, size)
	res := resolveAppearance(req.Record)
	class := req.Record.Class

	cloth := res.Cloth
	if cloth == defaultClothColor && class != "" {
		cloth = req.Style.ClassColor(class)
	}
	cloth = jitterHex(rng, cloth, req.Variant, 0.25)
	skin := jitterHex(rng, res.Skin, req.Variant, 0.10)

	armored := class == "paladin" || class == "warrior"
	profile := "humanoid"
	if class == "paladin" {
		profile = "paladin"
	}

	p := spriteforge.NewProportions(size)
	cx, cy := size/2, size/2
	head := p.HeadBounds(cx, cy)
	torso := p.TorsoBounds(cx, cy)
	legs := p.LegsBounds(cx, cy)

	skinPal := spriteforge.GeneratePalette(skin, spriteforge.MaterialSkin)
	torsoMaterial := spriteforge.MaterialCloth
	torsoColor := cloth
	if armored {
		torsoMaterial = spriteforge.MaterialMetal
		torsoColor = jitterHex(rng, res.Metal, req.Variant, 0.15)
	}
	torsoPal := spriteforge.GeneratePalette(torsoColor, torsoMaterial)
	legsPal := spriteforge.GeneratePalette(spriteforge.DarkenHex(cloth, 0.3), spriteforge.MaterialCloth)

	// Ground shadow
	d.FillEllipse(cx, legs.Bottom()-1, size/5, size/16+1, color.RGBA{0, 0, 0, 60})

	// Legs: two columns with a gap at the inseam.
	legW := legs.W * 2 / 5
	if legW < 1 {
		legW = 1
	}
	spriteforge.ApplyCelShade(d, legs.X, legs.Y, legW, legs.H, legsPal, spriteforge.LightTopLeft)
	spriteforge.ApplyCelShade(d, legs.X+legs.W-legW, legs.Y, legW, legs.H, legsPal, spriteforge.LightTopLeft)

	// Boots
	bootH := legs.H/4 + 1
	boot := spriteforge.HexToRGBA(spriteforge.DarkenHex(cloth, 0.6))
	d.FillRect(legs.X, legs.Bottom()-bootH, legW, bootH, boot)
	d.FillRect(legs.X+legs.W-legW, legs.Bottom()-bootH, legW, bootH, boot)

	// Torso
	spriteforge.ApplyCelShade(d, torso.X, torso.Y, torso.W, torso.H, torsoPal, spriteforge.LightTopLeft)
	if class == "paladin" {
		trim := spriteforge.HexToRGBA("#C9A227")
		d.FillRect(torso.X, torso.Y+torso.H/2, torso.W, 1+size/48, trim)
	}

	// Arms: sleeves hang from the shoulder line.
	armW := 1 + size/24
	armTop := torso.Y + torso.H/6
	armH := torso.H * 3 / 4
	sleeve := spriteforge.HexToRGBA(torsoPal.Shadow)
	d.FillRect(torso.X-armW, armTop, armW, armH, sleeve)
	d.FillRect(torso.X+torso.W, armTop, armW, armH, sleeve)
	hand := spriteforge.HexToRGBA(skinPal.Base)
	d.FillRect(torso.X-armW, armTop+armH, armW, armW, hand)
	d.FillRect(torso.X+torso.W, armTop+armH, armW, armW, hand)

	// Head
	spriteforge.ApplyCelShadeCircle(d, head.CenterX, head.CenterY, head.Radius, skinPal, spriteforge.LightTopLeft)

	if armored {
		// Helmet: metal cap over the upper half of the head.
		helmPal := spriteforge.GeneratePalette(res.Metal, spriteforge.MaterialMetal)
		helm := spriteforge.HexToRGBA(helmPal.Light)
		for py := head.Y; py < head.CenterY; py++ {
			for px := head.X; px < head.X+head.W; px++ {
				if d.Opaque(px, py) {
					d.SetPixel(px, py, helm)
				}
			}
		}
	} else {
		hair := spriteforge.HexToRGBA(hairColors[rng.Pick(len(hairColors))])
		for py := head.Y; py < head.Y+head.H/3; py++ {
			for px := head.X; px < head.X+head.W; px++ {
				if d.Opaque(px, py) {
					d.SetPixel(px, py, hair)
				}
			}
		}
	}

	// Eyes
	eye := color.RGBA{20, 16, 12, 255}
	eyeY := head.CenterY + head.Radius/4
	d.SetPixel(head.CenterX-head.Radius/3, eyeY, eye)
	d.SetPixel(head.CenterX+head.Radius/3, eyeY, eye)

	// Weapon held at the right hand, tip above the shoulder.
	gripX := torso.X + torso.W + armW/2
	gripY := armTop + armH
	tipY := head.Y + head.Radius/2
	weapon := spriteforge.HexToRGBA(res.Metal)
	d.DrawLine(gripX, gripY, gripX+size/16, tipY, weapon)

	d.Outline(color.RGBA{0, 0, 0, 255}, 1)

	glow := req.Style.GlowFor(class)
	glowColor := ""
	if req.WithGlow && class != "" {
		spriteforge.RenderGlow(d, cx, cy, size/3, glow.Color, glow.Intensity)
		glowColor = glow.Color
	}
	if res.Glow != "" {
		spriteforge.RenderWeaponGlow(d, []image.Point{
			{gripX, gripY}, {gripX + size/32, (gripY + tipY) / 2}, {gripX + size/16, tipY},
		}, res.Glow, 0.7)
		glowColor = res.Glow
	}

	return &Asset{
		Image: d.Image(),
		Meta: Metadata{
			AssetType: AssetHero.String(),
			Profile:   profile,
			BaseSize:  [2]int{size, size},
			GlowColor: glowColor,
			Outline:   true,
		},
	}
}
