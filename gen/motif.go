package gen

import (
	"image"
	"image/color"
	"strings"

	"github.com/Mahinika/spriteforge"
)

// Motif is the closed set of spell-icon glyphs. Each motif has one
// fixed stroke recipe; the recipes are the golden reference for
// regression tests.
type Motif int

const (
	MotifRune Motif = iota // default arm
	MotifShield
	MotifHeal
	MotifLightning
	MotifFire
	MotifFrost
	MotifSkull
	MotifDagger
	MotifArrow
	MotifSword
	MotifTotem
	MotifPaw
	MotifTree
	MotifMoon
	MotifStarburst
	MotifSpark
	MotifEye
	MotifFist
)

// String returns the motif's wire name.
func (m Motif) String() string {
	names := [...]string{
		"rune", "shield", "heal", "lightning", "fire", "frost",
		"skull", "dagger", "arrow", "sword", "totem", "paw",
		"tree", "moon", "starburst", "spark", "eye", "fist",
	}
	if int(m) < 0 || int(m) >= len(names) {
		return "rune"
	}
	return names[m]
}

// motifRule maps keyword substrings to a motif. Rules are matched in
// order; the first hit wins, so more specific families come first.
type motifRule struct {
	keywords []string
	motif    Motif
}

var motifRules = []motifRule{
	{[]string{"chain_lightning", "lightning", "thunder", "storm", "shock", "bolt"}, MotifLightning},
	{[]string{"heal", "renew", "prayer", "mend", "restor"}, MotifHeal},
	{[]string{"fire", "flame", "pyro", "burn", "ignite", "scorch"}, MotifFire},
	{[]string{"frost", "ice", "chill", "freez", "blizzard"}, MotifFrost},
	{[]string{"shield", "guard", "protect", "barrier", "bulwark"}, MotifShield},
	{[]string{"death", "shadow", "curse", "skull", "doom", "necro"}, MotifSkull},
	{[]string{"backstab", "stab", "dagger", "shiv", "ambush"}, MotifDagger},
	{[]string{"arrow", "shot", "aimed", "volley"}, MotifArrow},
	{[]string{"sword", "slash", "strike", "blade", "cleave"}, MotifSword},
	{[]string{"totem"}, MotifTotem},
	{[]string{"paw", "claw", "feral", "bite", "swipe"}, MotifPaw},
	{[]string{"tree", "nature", "root", "thorn", "grow"}, MotifTree},
	{[]string{"moon", "lunar", "night"}, MotifMoon},
	{[]string{"holy", "smite", "radiant", "star"}, MotifStarburst},
	{[]string{"spark", "arcane", "missile", "magic"}, MotifSpark},
	{[]string{"eye", "gaze", "mind", "psychic"}, MotifEye},
	{[]string{"fist", "punch", "bash", "pummel"}, MotifFist},
}

// PickMotif maps an ability id and display name to a glyph motif by
// keyword matching, falling back to the generic rune.
func PickMotif(id, name string) Motif {
	haystack := strings.ToLower(id + " " + name)
	for _, rule := range motifRules {
		for _, kw := range rule.keywords {
			if strings.Contains(haystack, kw) {
				return rule.motif
			}
		}
	}
	return MotifRune
}

// motifAccentColors give each motif family its accent dot and icon
// plate color.
var motifAccentColors = map[Motif]string{
	MotifRune:      "#8E7CC3",
	MotifShield:    "#C9A227",
	MotifHeal:      "#58D68D",
	MotifLightning: "#F4D03F",
	MotifFire:      "#E74C3C",
	MotifFrost:     "#5DADE2",
	MotifSkull:     "#7D3C98",
	MotifDagger:    "#909497",
	MotifArrow:     "#A04000",
	MotifSword:     "#B2BABB",
	MotifTotem:     "#2F6B6B",
	MotifPaw:       "#8E6B2F",
	MotifTree:      "#3E6B2F",
	MotifMoon:      "#85929E",
	MotifStarburst: "#F9E79F",
	MotifSpark:     "#BB8FCE",
	MotifEye:       "#5499C7",
	MotifFist:      "#CD6155",
}

// AccentColor returns the motif's accent color.
func (m Motif) AccentColor() string {
	if c, ok := motifAccentColors[m]; ok {
		return c
	}
	return motifAccentColors[MotifRune]
}

// glyphRecipe draws one motif's strokes in a single color centered at
// (cx, cy) with half-extent s.
type glyphRecipe func(d *spriteforge.Drawer, cx, cy, s int, c color.RGBA)

// drawMotif renders a motif glyph: the recipe stroked in black at the
// four cardinal offsets for the outline, then in white on top for the
// fill, then the accent dot.
func drawMotif(d *spriteforge.Drawer, m Motif, cx, cy, s int) {
	recipe := glyphRecipes(m)
	black := color.RGBA{0, 0, 0, 255}
	white := color.RGBA{255, 255, 255, 255}
	for _, off := range [4]image.Point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		recipe(d, cx+off.X, cy+off.Y, s, black)
	}
	recipe(d, cx, cy, s, white)
	if dot, ok := motifAccentDots[m]; ok {
		acc := spriteforge.HexToRGBA(m.AccentColor())
		d.FillCircle(cx+dot.X*s/8, cy+dot.Y*s/8, 1+s/12, acc)
	}
}

// motifAccentDots places the optional accent dot, in eighths of the
// glyph half-extent.
var motifAccentDots = map[Motif]image.Point{
	MotifHeal:      {0, 0},
	MotifFire:      {0, 3},
	MotifFrost:     {0, 0},
	MotifSkull:     {0, -2},
	MotifEye:       {0, 0},
	MotifStarburst: {0, 0},
	MotifTotem:     {0, -5},
	MotifMoon:      {3, -3},
}

// glyphRecipes returns the fixed stroke recipe for a motif. The
// geometry constants below are the golden reference; changing them
// invalidates silhouette regression tests.
func glyphRecipes(m Motif) glyphRecipe {
	switch m {
	case MotifShield:
		return func(d *spriteforge.Drawer, cx, cy, s int, c color.RGBA) {
			d.FillPolygon([]image.Point{
				{cx - s, cy - s}, {cx + s, cy - s},
				{cx + s, cy}, {cx, cy + s}, {cx - s, cy},
			}, c)
		}
	case MotifHeal:
		return func(d *spriteforge.Drawer, cx, cy, s int, c color.RGBA) {
			arm := s / 3
			d.FillRect(cx-arm, cy-s, 2*arm, 2*s, c)
			d.FillRect(cx-s, cy-arm, 2*s, 2*arm, c)
		}
	case MotifLightning:
		return func(d *spriteforge.Drawer, cx, cy, s int, c color.RGBA) {
			// Jagged bolt, symmetric about center so the bounding box
			// stays centered.
			d.FillPolygon([]image.Point{
				{cx + s/3, cy - s}, {cx - s/4, cy - s/6},
				{cx + s/8, cy - s/6}, {cx - s/3, cy + s},
				{cx + s/4, cy + s/6}, {cx - s/8, cy + s/6},
			}, c)
		}
	case MotifFire:
		return func(d *spriteforge.Drawer, cx, cy, s int, c color.RGBA) {
			d.FillPolygon([]image.Point{
				{cx, cy - s}, {cx + s/2, cy - s/4},
				{cx + 2*s/3, cy + s/2}, {cx, cy + s},
				{cx - 2*s/3, cy + s/2}, {cx - s/2, cy - s/4},
			}, c)
		}
	case MotifFrost:
		return func(d *spriteforge.Drawer, cx, cy, s int, c color.RGBA) {
			d.DrawLine(cx, cy-s, cx, cy+s, c)
			d.DrawLine(cx-s, cy, cx+s, cy, c)
			d.DrawLine(cx-2*s/3, cy-2*s/3, cx+2*s/3, cy+2*s/3, c)
			d.DrawLine(cx-2*s/3, cy+2*s/3, cx+2*s/3, cy-2*s/3, c)
		}
	case MotifSkull:
		return func(d *spriteforge.Drawer, cx, cy, s int, c color.RGBA) {
			d.FillCircle(cx, cy-s/4, 2*s/3, c)
			d.FillRect(cx-s/3, cy+s/4, 2*s/3, s/2, c)
		}
	case MotifDagger:
		return func(d *spriteforge.Drawer, cx, cy, s int, c color.RGBA) {
			d.FillPolygon([]image.Point{
				{cx, cy - s}, {cx + s/5, cy + s/3}, {cx - s/5, cy + s/3},
			}, c)
			d.FillRect(cx-s/2, cy+s/3, s, s/6+1, c)
			d.FillRect(cx-s/8, cy+s/3, s/4+1, 2*s/3, c)
		}
	case MotifArrow:
		return func(d *spriteforge.Drawer, cx, cy, s int, c color.RGBA) {
			d.DrawLine(cx-s, cy+s, cx+s/2, cy-s/2, c)
			d.FillPolygon([]image.Point{
				{cx + s, cy - s}, {cx + s/4, cy - s/2}, {cx + s/2, cy - s/4},
			}, c)
		}
	case MotifSword:
		return func(d *spriteforge.Drawer, cx, cy, s int, c color.RGBA) {
			d.FillPolygon([]image.Point{
				{cx, cy - s}, {cx + s/6, cy - s + s/3},
				{cx + s/6, cy + s/3}, {cx - s/6, cy + s/3},
				{cx - s/6, cy - s + s/3},
			}, c)
			d.FillRect(cx-s/2, cy+s/3, s, s/6+1, c)
			d.FillRect(cx-s/12-1, cy+s/3, s/6+1, s/2, c)
		}
	case MotifTotem:
		return func(d *spriteforge.Drawer, cx, cy, s int, c color.RGBA) {
			d.FillRect(cx-s/3, cy-s, 2*s/3, 2*s, c)
			d.DrawLine(cx-2*s/3, cy-s/2, cx+2*s/3, cy-s/2, c)
			d.DrawLine(cx-2*s/3, cy, cx+2*s/3, cy, c)
		}
	case MotifPaw:
		return func(d *spriteforge.Drawer, cx, cy, s int, c color.RGBA) {
			d.FillEllipse(cx, cy+s/4, 2*s/3, s/2, c)
			d.FillCircle(cx-s/2, cy-s/3, s/5+1, c)
			d.FillCircle(cx, cy-s/2, s/5+1, c)
			d.FillCircle(cx+s/2, cy-s/3, s/5+1, c)
		}
	case MotifTree:
		return func(d *spriteforge.Drawer, cx, cy, s int, c color.RGBA) {
			d.FillPolygon([]image.Point{
				{cx, cy - s}, {cx + 2*s/3, cy + s/3}, {cx - 2*s/3, cy + s/3},
			}, c)
			d.FillRect(cx-s/8, cy+s/3, s/4+1, 2*s/3, c)
		}
	case MotifMoon:
		return func(d *spriteforge.Drawer, cx, cy, s int, c color.RGBA) {
			// Disc minus an offset disc leaves the crescent; drawn
			// pixel by pixel so no erase pass punches through layers
			// beneath the glyph.
			r := 3 * s / 4
			bx, by := cx+s/3, cy-s/3
			for py := cy - r; py <= cy+r; py++ {
				for px := cx - r; px <= cx+r; px++ {
					dx, dy := px-cx, py-cy
					if dx*dx+dy*dy > r*r {
						continue
					}
					ex, ey := px-bx, py-by
					if ex*ex+ey*ey <= r*r {
						continue
					}
					d.SetPixel(px, py, c)
				}
			}
		}
	case MotifStarburst:
		return func(d *spriteforge.Drawer, cx, cy, s int, c color.RGBA) {
			d.DrawLine(cx, cy-s, cx, cy+s, c)
			d.DrawLine(cx-s, cy, cx+s, cy, c)
			d.DrawLine(cx-s/2, cy-s/2, cx+s/2, cy+s/2, c)
			d.DrawLine(cx-s/2, cy+s/2, cx+s/2, cy-s/2, c)
			d.FillCircle(cx, cy, s/4, c)
		}
	case MotifSpark:
		return func(d *spriteforge.Drawer, cx, cy, s int, c color.RGBA) {
			d.FillPolygon([]image.Point{
				{cx, cy - s}, {cx + s/4, cy - s/4}, {cx + s, cy},
				{cx + s/4, cy + s/4}, {cx, cy + s}, {cx - s/4, cy + s/4},
				{cx - s, cy}, {cx - s/4, cy - s/4},
			}, c)
		}
	case MotifEye:
		return func(d *spriteforge.Drawer, cx, cy, s int, c color.RGBA) {
			d.FillEllipse(cx, cy, s, s/2, c)
		}
	case MotifFist:
		return func(d *spriteforge.Drawer, cx, cy, s int, c color.RGBA) {
			d.FillRect(cx-2*s/3, cy-s/2, 4*s/3, s, c)
			d.FillRect(cx-2*s/3, cy-s/2, s/3, s/4, c)
		}
	default: // MotifRune
		return func(d *spriteforge.Drawer, cx, cy, s int, c color.RGBA) {
			d.DrawCircle(cx, cy, 2*s/3, c)
			d.DrawLine(cx, cy-2*s/3, cx, cy+2*s/3, c)
			d.DrawLine(cx-s/2, cy-s/3, cx+s/2, cy+s/3, c)
		}
	}
}
