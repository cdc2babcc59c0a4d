package spriteforge

import (
	"image"
	"math"
)

// Glow compositing: three concentric radial layers with a cosine
// falloff, alpha-blended over whatever the drawer already holds. Used
// for class auras, enchanted weapons, and projectile trails.

// glowLayer describes one concentric layer as fractions of the full
// glow radius and intensity.
type glowLayer struct {
	radius    float64
	intensity float64
}

// The core is small and bright, the outer layer carries the body of the
// glow, and the soft edge fades it to nothing at the boundary.
var glowLayers = [3]glowLayer{
	{radius: 0.30, intensity: 1.0},
	{radius: 0.70, intensity: 0.6},
	{radius: 1.00, intensity: 0.3},
}

// glowAlphaFloor is the alpha below which a glow write is skipped;
// near-invisible writes cost time and dirty the silhouette.
const glowAlphaFloor = 0.1

// GlowAlpha returns the glow alpha at a normalized distance from the
// glow center: maxAlpha at the center, smoothly falling to zero at the
// boundary (normalizedDist >= 1).
func GlowAlpha(normalizedDist, maxAlpha float64) float64 {
	if normalizedDist >= 1 {
		return 0
	}
	if normalizedDist < 0 {
		normalizedDist = 0
	}
	return maxAlpha * math.Cos(normalizedDist*math.Pi/2)
}

// RenderGlow composites a radial glow of the given color and intensity
// (0..1) centered at (cx, cy). Pixels already holding opaque color are
// alpha-blended; transparent pixels take the glow directly.
func RenderGlow(d *Drawer, cx, cy, radius int, hex string, intensity float64) {
	if radius <= 0 {
		return
	}
	intensity = Clamp(intensity, 0, 1)
	for _, layer := range glowLayers {
		lr := float64(radius) * layer.radius
		maxAlpha := intensity * layer.intensity
		ir := int(math.Ceil(lr))
		for py := cy - ir; py <= cy+ir; py++ {
			for px := cx - ir; px <= cx+ir; px++ {
				dx := float64(px - cx)
				dy := float64(py - cy)
				dist := math.Sqrt(dx*dx+dy*dy) / lr
				a := GlowAlpha(dist, maxAlpha)
				if a < glowAlphaFloor {
					continue
				}
				d.BlendPixel(px, py, HexWithAlpha(hex, uint8(a*255)))
			}
		}
	}
}

// ClassGlow is a glow color and intensity pair keyed by class id.
type ClassGlow struct {
	Color     string
	Intensity float64
}

// classGlows is the fixed class aura table. Read-only.
var classGlows = map[string]ClassGlow{
	"paladin": {Color: "#FFD700", Intensity: 0.8},
	"warrior": {Color: "#C0392B", Intensity: 0.6},
	"mage":    {Color: "#5DADE2", Intensity: 0.8},
	"priest":  {Color: "#F9E79F", Intensity: 0.7},
	"rogue":   {Color: "#7D3C98", Intensity: 0.5},
	"hunter":  {Color: "#58D68D", Intensity: 0.6},
	"warlock": {Color: "#9B59B6", Intensity: 0.8},
	"shaman":  {Color: "#3498DB", Intensity: 0.7},
	"druid":   {Color: "#E67E22", Intensity: 0.6},
}

// defaultClassGlow is used for class ids with no table entry.
var defaultClassGlow = ClassGlow{Color: "#FFFFFF", Intensity: 0.5}

// GlowForClass returns the aura for a class id, falling back to a
// neutral white glow for unknown classes.
func GlowForClass(classID string) ClassGlow {
	if g, ok := classGlows[classID]; ok {
		return g
	}
	return defaultClassGlow
}

// RenderClassGlow composites the class aura centered at (cx, cy).
func RenderClassGlow(d *Drawer, cx, cy, radius int, classID string) {
	g := GlowForClass(classID)
	RenderGlow(d, cx, cy, radius, g.Color, g.Intensity)
}

// RenderWeaponGlow samples a glow along a path of points (a weapon
// silhouette from grip to tip) with a stronger, larger glow at the
// path's terminal point.
func RenderWeaponGlow(d *Drawer, path []image.Point, hex string, intensity float64) {
	if len(path) == 0 {
		return
	}
	radius := 2 + d.Width()/24
	for _, p := range path[:len(path)-1] {
		RenderGlow(d, p.X, p.Y, radius, hex, intensity*0.6)
	}
	tip := path[len(path)-1]
	RenderGlow(d, tip.X, tip.Y, radius*2, hex, Clamp(intensity*1.2, 0, 1))
}
