// Package gen composes the spriteforge drawing primitives into
// category-specific sprite generators: heroes, enemies, item icons,
// spell icons, projectiles, and visual effects.
//
// Each generator consumes one Request and produces one Asset. Missing
// or malformed semantic data resolves to documented defaults (see
// semantics.go) rather than erroring, so a bulk run over hundreds of
// records never aborts on one bad entry.
package gen

import (
	"fmt"
	"image"

	"github.com/Mahinika/spriteforge"
)

// AssetType is the closed set of sprite categories.
type AssetType int

const (
	AssetHero AssetType = iota
	AssetEnemy
	AssetItem
	AssetSpellIcon
	AssetProjectile
	AssetVFX
)

// String returns the wire name of the asset type.
func (t AssetType) String() string {
	switch t {
	case AssetHero:
		return "hero"
	case AssetEnemy:
		return "enemy"
	case AssetItem:
		return "item"
	case AssetSpellIcon:
		return "spell_icon"
	case AssetProjectile:
		return "projectile"
	case AssetVFX:
		return "vfx"
	default:
		return "unknown"
	}
}

// AssetTypeFromString maps a record kind to an AssetType. Unknown kinds
// default to hero, keeping bulk runs alive on sloppy input.
func AssetTypeFromString(kind string) AssetType {
	switch kind {
	case "enemy":
		return AssetEnemy
	case "item":
		return AssetItem
	case "spell_icon", "spell", "ability":
		return AssetSpellIcon
	case "projectile":
		return AssetProjectile
	case "vfx", "effect":
		return AssetVFX
	default:
		return AssetHero
	}
}

// defaultSize returns the per-category canvas size used when the
// request does not specify one.
func (t AssetType) defaultSize() int {
	switch t {
	case AssetItem, AssetSpellIcon:
		return 48
	case AssetProjectile:
		return 32
	default:
		return 64
	}
}

// Request describes one asset to generate. It is created per asset and
// consumed once.
type Request struct {
	Type AssetType
	ID   string
	Seed int64

	// Size is the canvas size in pixels; 0 selects the category
	// default (48 for icons, 32 for projectiles, 64 otherwise).
	Size int

	// Record carries the semantic entity data. The zero value is
	// valid: every field resolves to a documented default.
	Record Record

	// Style optionally overrides the built-in color tables. Nil uses
	// the built-ins.
	Style *Style

	// WithGlow composites the class glow onto hero sprites.
	WithGlow bool

	// Variant selects a color-jittered variation. 0 is the canonical
	// asset; variant k of a given seed is itself deterministic.
	Variant int
}

// Metadata is the sidecar record written next to each PNG.
type Metadata struct {
	AssetType     string  `json:"asset_type"`
	Profile       string  `json:"profile"`
	BaseSize      [2]int  `json:"base_size"`
	GlowColor     string  `json:"glow_color,omitempty"`
	Outline       bool    `json:"outline"`
	Rarity        string  `json:"rarity,omitempty"`
	CooldownStyle string  `json:"cooldown_style,omitempty"`
	PulseStrength float64 `json:"pulse_strength,omitempty"`
}

// Asset is one generated sprite: the committed image plus its sidecar
// metadata. Immutable once produced.
type Asset struct {
	Image *image.NRGBA
	Meta  Metadata
}

// Generate produces exactly one asset from the request. It errors only
// on an unknown asset type; defective semantic data degrades to
// defaults instead.
func Generate(req Request) (*Asset, error) {
	if req.Size <= 0 {
		req.Size = req.Type.defaultSize()
	}
	rng := newRequestRNG(req)
	switch req.Type {
	case AssetHero:
		return generateHumanoid(req, rng), nil
	case AssetEnemy:
		return generateEnemy(req, rng), nil
	case AssetItem:
		return generateItem(req, rng), nil
	case AssetSpellIcon:
		return generateSpellIcon(req, rng), nil
	case AssetProjectile:
		return generateProjectile(req, rng), nil
	case AssetVFX:
		return generateVFX(req, rng), nil
	default:
		return nil, fmt.Errorf("unknown asset type %d", int(req.Type))
	}
}

// newRequestRNG derives the request's RNG. The variant index is mixed
// into the seed so each variation gets its own deterministic stream.
func newRequestRNG(req Request) *spriteforge.RNG {
	seed := req.Seed
	if req.Variant > 0 {
		seed ^= int64(req.Variant) * 0x5DEECE66D
	}
	return spriteforge.NewRNG(seed)
}

// jitterHex perturbs each channel of a hex color by up to strength,
// used for --variations. Variant 0 passes colors through untouched.
func jitterHex(rng *spriteforge.RNG, hex string, variant int, strength float64) string {
	if variant == 0 {
		return hex
	}
	out := hex
	if rng.Bool(0.5) {
		out = spriteforge.LightenHex(out, rng.Float64()*strength)
	} else {
		out = spriteforge.DarkenHex(out, rng.Float64()*strength)
	}
	// Small hue drift keeps variants recognizably the same family.
	drift := spriteforge.RGBToHex(
		uint8(rng.IntBetween(0, 255)),
		uint8(rng.IntBetween(0, 255)),
		uint8(rng.IntBetween(0, 255)),
	)
	return spriteforge.MixHex(out, drift, 0.08)
}
