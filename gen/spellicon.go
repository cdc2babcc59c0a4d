package gen

import (
	"github.com/Mahinika/spriteforge"
)

// generateSpellIcon draws an ability icon: a cel-shaded plate in the
// motif family color, the motif glyph centered on it, and a thin border.
// The motif is picked by keyword-matching the ability id and name.
func generateSpellIcon(req Request, rng *spriteforge.RNG) *Asset {
	size := req.Size
	d := spriteforge.NewDrawer(size, size)

	motif := PickMotif(req.ID, req.Record.Name)
	accent := jitterHex(rng, motif.AccentColor(), req.Variant, 0.20)

	// Plate: darkened accent, shaded so the top-left corner reads lit.
	plateBase := spriteforge.EnsureVisibleFill(spriteforge.DarkenHex(accent, 0.55))
	platePal := spriteforge.GeneratePalette(plateBase, spriteforge.MaterialCloth)
	spriteforge.ApplyCelShade(d, 1, 1, size-2, size-2, platePal, spriteforge.LightTopLeft)

	// Border
	border := spriteforge.HexToRGBA(spriteforge.DarkenHex(accent, 0.3))
	d.DrawLine(1, 1, size-2, 1, border)
	d.DrawLine(size-2, 1, size-2, size-2, border)
	d.DrawLine(size-2, size-2, 1, size-2, border)
	d.DrawLine(1, size-2, 1, 1, border)

	// Glyph centered on the plate; half-extent leaves a margin so the
	// outline offsets stay inside the border.
	drawMotif(d, motif, size/2, size/2, size/3)

	glowColor := ""
	res := resolveAppearance(req.Record)
	if res.Glow != "" {
		spriteforge.RenderGlow(d, size/2, size/2, size/2, res.Glow, 0.4)
		glowColor = res.Glow
	}

	return &Asset{
		Image: d.Image(),
		Meta: Metadata{
			AssetType:     AssetSpellIcon.String(),
			Profile:       "spell_" + motif.String(),
			BaseSize:      [2]int{size, size},
			GlowColor:     glowColor,
			Outline:       true,
			CooldownStyle: "radial",
			PulseStrength: pulseStrength(motif),
		},
	}
}

// pulseStrength sets how strongly the in-game cooldown overlay pulses
// per motif family; damage motifs pulse harder than utility ones.
func pulseStrength(m Motif) float64 {
	switch m {
	case MotifFire, MotifLightning, MotifStarburst:
		return 0.8
	case MotifHeal, MotifShield, MotifTree:
		return 0.3
	default:
		return 0.5
	}
}
