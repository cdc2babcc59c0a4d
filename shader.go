package spriteforge

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Material selects the contrast curve used when deriving a cel-shade
// palette from a base color.
type Material int

const (
	// MaterialSkin uses a medium-contrast, warm-biased curve.
	MaterialSkin Material = iota
	// MaterialCloth uses a low-contrast matte curve.
	MaterialCloth
	// MaterialMetal uses a high-contrast curve with a specular-like
	// highlight.
	MaterialMetal
)

// MaterialFromString maps a material tag to a Material, defaulting to
// cloth for unknown tags.
func MaterialFromString(tag string) Material {
	switch tag {
	case "skin":
		return MaterialSkin
	case "metal":
		return MaterialMetal
	default:
		return MaterialCloth
	}
}

// Palette is an ordered 5-level color ramp used for cel-shading.
// Luminance is non-increasing from Highlight to DarkShadow.
type Palette struct {
	Highlight  string
	Light      string
	Base       string
	Shadow     string
	DarkShadow string
}

// Level returns the i-th ramp entry, 0 = Highlight through
// 4 = DarkShadow. Out-of-range indices clamp.
func (p Palette) Level(i int) string {
	switch {
	case i <= 0:
		return p.Highlight
	case i == 1:
		return p.Light
	case i == 2:
		return p.Base
	case i == 3:
		return p.Shadow
	default:
		return p.DarkShadow
	}
}

// Levels returns the ramp as a slice, brightest first.
func (p Palette) Levels() []string {
	return []string{p.Highlight, p.Light, p.Base, p.Shadow, p.DarkShadow}
}

// Material contrast amounts. Highlight/shadow spreads are multiples of
// these, so metal reads glossy and cloth reads matte.
const (
	contrastSkin  = 0.35
	contrastCloth = 0.22
	contrastMetal = 0.50
)

// GeneratePalette derives a 5-level cel-shade palette from one base
// color. The material tag shapes the curve: metal gets a wide spread
// with a near-white highlight, cloth a narrow matte spread, and skin a
// medium spread with its hue pre-rotated toward warm tones.
//
// Hue adjustments happen before the ramp is built, and the ramp itself
// only ever lightens toward white or darkens toward black, so the
// non-increasing-luminance invariant holds for every base color.
func GeneratePalette(baseHex string, m Material) Palette {
	base := baseHex
	contrast := contrastCloth
	switch m {
	case MaterialSkin:
		contrast = contrastSkin
		base = warmBias(base, 0.20)
	case MaterialMetal:
		contrast = contrastMetal
		base = desaturate(base, 0.15)
	}

	return Palette{
		Highlight:  LightenHex(base, Clamp(contrast*1.3, 0, 1)),
		Light:      LightenHex(base, Clamp(contrast*0.55, 0, 1)),
		Base:       base,
		Shadow:     DarkenHex(base, Clamp(contrast*0.65, 0, 1)),
		DarkShadow: DarkenHex(base, Clamp(contrast*1.2, 0, 0.95)),
	}
}

// warmBias rotates the hue toward orange (30°) by t of the angular
// distance, preserving saturation and value. Used for skin so
// arbitrary procedurally-chosen bases still read as flesh tones.
func warmBias(hex string, t float64) string {
	r, g, b := HexToRGB(hex)
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	h, s, v := c.Hsv()
	const warmHue = 30.0
	delta := math.Mod(warmHue-h+540, 360) - 180
	rotated := colorful.Hsv(math.Mod(h+delta*t+360, 360), s, v)
	return RGBToHex(
		uint8(Clamp(rotated.R*255, 0, 255)),
		uint8(Clamp(rotated.G*255, 0, 255)),
		uint8(Clamp(rotated.B*255, 0, 255)),
	)
}

// desaturate pulls saturation down by t, keeping hue and value. Metal
// bases are desaturated slightly so their wide ramp reads as sheen
// rather than as a brighter version of the same paint.
func desaturate(hex string, t float64) string {
	r, g, b := HexToRGB(hex)
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	h, s, v := c.Hsv()
	out := colorful.Hsv(h, s*(1-Clamp(t, 0, 1)), v)
	return RGBToHex(
		uint8(Clamp(out.R*255, 0, 255)),
		uint8(Clamp(out.G*255, 0, 255)),
		uint8(Clamp(out.B*255, 0, 255)),
	)
}

// LightDir is a directional light vector (pointing toward the light
// source) used to select cel-shade bands.
type LightDir struct {
	X, Y float64
}

// Standard light directions. Sprites use LightTopLeft by default, the
// convention that keeps the whole asset set lit consistently.
var (
	LightTopLeft  = LightDir{X: -math.Sqrt2 / 2, Y: -math.Sqrt2 / 2}
	LightTop      = LightDir{X: 0, Y: -1}
	LightTopRight = LightDir{X: math.Sqrt2 / 2, Y: -math.Sqrt2 / 2}
	LightLeft     = LightDir{X: -1, Y: 0}
)

// ApplyCelShade paints the rectangle with the palette, choosing among
// the 5 levels per pixel by projecting the pixel's offset from the
// region center onto the light direction: pixels toward the light get
// the highlight bands, pixels away get the shadow bands.
func ApplyCelShade(d *Drawer, x, y, w, h int, pal Palette, light LightDir) {
	if w <= 0 || h <= 0 {
		return
	}
	colors := shadeColors(pal)
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			u, v := normalOffset(px, x, w), normalOffset(py, y, h)
			proj := u*light.X + v*light.Y
			d.SetPixel(px, py, colors[shadeBand(proj)])
		}
	}
}

// ApplyCelShadeCircle is ApplyCelShade for a circular mask, used for
// heads and blob bodies. The highlight sits offset from center toward
// the light, approximating sphere shading with flat bands.
func ApplyCelShadeCircle(d *Drawer, cx, cy, r int, pal Palette, light LightDir) {
	if r <= 0 {
		return
	}
	colors := shadeColors(pal)
	hx := float64(cx) + light.X*float64(r)*0.5
	hy := float64(cy) + light.Y*float64(r)*0.5
	maxDist := 1.7 * float64(r)
	r2 := r * r
	for py := cy - r; py <= cy+r; py++ {
		for px := cx - r; px <= cx+r; px++ {
			dx := px - cx
			dy := py - cy
			if dx*dx+dy*dy > r2 {
				continue
			}
			hdx := float64(px) - hx
			hdy := float64(py) - hy
			t := Clamp(math.Sqrt(hdx*hdx+hdy*hdy)/maxDist, 0, 0.999)
			d.SetPixel(px, py, colors[int(t*5)])
		}
	}
}

// shadeColors pre-parses the ramp once per region fill.
func shadeColors(pal Palette) [5]color.RGBA {
	return [5]color.RGBA{
		HexToRGBA(pal.Highlight),
		HexToRGBA(pal.Light),
		HexToRGBA(pal.Base),
		HexToRGBA(pal.Shadow),
		HexToRGBA(pal.DarkShadow),
	}
}

// normalOffset maps a coordinate within [origin, origin+extent) to
// [-1, 1].
func normalOffset(p, origin, extent int) float64 {
	if extent <= 1 {
		return 0
	}
	return 2*float64(p-origin)/float64(extent-1) - 1
}

// shadeBand maps a light projection in [-√2, √2] to a palette band,
// 0 (toward light) through 4 (away from light).
func shadeBand(proj float64) int {
	t := (1 - proj/math.Sqrt2) / 2
	band := int(t * 5)
	if band < 0 {
		band = 0
	}
	if band > 4 {
		band = 4
	}
	return band
}
