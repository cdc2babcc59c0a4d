package gen

// Record is the semantic entity description decoded from the input
// JSON data files. Every field beyond ID is optional; absent fields
// resolve through resolveAppearance and the category tables, so the
// zero Record still generates a presentable default sprite.
type Record struct {
	ID         string      `json:"id"`
	Kind       string      `json:"kind,omitempty"`
	Name       string      `json:"name,omitempty"`
	Class      string      `json:"class,omitempty"`
	Type       string      `json:"type,omitempty"`        // item category: weapon/armor/accessory
	WeaponType string      `json:"weapon_type,omitempty"` // sword/axe/staff/bow
	Rarity     string      `json:"rarity,omitempty"`
	BodyType   string      `json:"body_type,omitempty"` // blob/biped/beast/wraith
	Appearance *Appearance `json:"appearance,omitempty"`
}

// Appearance is the free-form visual description block. All fields
// optional.
type Appearance struct {
	Size       string `json:"size,omitempty"` // small/medium/large
	SkinColor  string `json:"skin_color,omitempty"`
	ClothColor string `json:"cloth_color,omitempty"`
	MetalColor string `json:"metal_color,omitempty"`
	GlowColor  string `json:"glow_color,omitempty"`
	Palette    string `json:"palette,omitempty"` // warm/cool/earth
}

// Documented appearance defaults. These are what a record with no
// appearance block at all renders with.
const (
	defaultSkinColor  = "#D8A57A"
	defaultClothColor = "#3B6EA5"
	defaultMetalColor = "#9AA5B1"
)

// Named palette families selectable via appearance.palette. The family
// sets the cloth base; skin and metal keep their defaults unless
// overridden explicitly.
var paletteFamilies = map[string]string{
	"warm":  "#B5533B",
	"cool":  "#3B6EA5",
	"earth": "#6B8E3B",
	"royal": "#6C3BA5",
}

// resolved is an Appearance with every field populated. Generators only
// ever see resolved appearances.
type resolved struct {
	SizeFactor float64
	Skin       string
	Cloth      string
	Metal      string
	Glow       string
}

// sizeFactors maps the declared size class to a radius scale.
var sizeFactors = map[string]float64{
	"small":  0.6,
	"medium": 1.0,
	"large":  1.3,
}

// resolveAppearance is the single place where missing semantic fields
// become defaults. Precedence for cloth: explicit cloth_color, then the
// named palette family, then the default.
func resolveAppearance(rec Record) resolved {
	out := resolved{
		SizeFactor: 1.0,
		Skin:       defaultSkinColor,
		Cloth:      defaultClothColor,
		Metal:      defaultMetalColor,
	}
	app := rec.Appearance
	if app == nil {
		return out
	}
	if f, ok := sizeFactors[app.Size]; ok {
		out.SizeFactor = f
	}
	if fam, ok := paletteFamilies[app.Palette]; ok {
		out.Cloth = fam
	}
	if app.SkinColor != "" {
		out.Skin = app.SkinColor
	}
	if app.ClothColor != "" {
		out.Cloth = app.ClothColor
	}
	if app.MetalColor != "" {
		out.Metal = app.MetalColor
	}
	if app.GlowColor != "" {
		out.Glow = app.GlowColor
	}
	return out
}

// BodyType is the closed set of enemy body layouts.
type BodyType int

const (
	BodyBlob BodyType = iota
	BodyBiped
	BodyBeast
	BodyWraith
)

// bodyTypeFromString maps the record field to the enum. Unknown body
// types take the blob layout, the original fallback behavior.
func bodyTypeFromString(s string) BodyType {
	switch s {
	case "biped":
		return BodyBiped
	case "beast":
		return BodyBeast
	case "wraith":
		return BodyWraith
	default:
		return BodyBlob
	}
}

// ItemCategory is the closed set of item icon silhouettes.
type ItemCategory int

const (
	ItemWeapon ItemCategory = iota
	ItemArmor
	ItemAccessory
)

func itemCategoryFromString(s string) ItemCategory {
	switch s {
	case "armor":
		return ItemArmor
	case "accessory":
		return ItemAccessory
	default:
		return ItemWeapon
	}
}

// WeaponShape is the closed set of weapon silhouettes.
type WeaponShape int

const (
	WeaponSword WeaponShape = iota
	WeaponAxe
	WeaponStaff
	WeaponBow
)

func weaponShapeFromString(s string) WeaponShape {
	switch s {
	case "axe":
		return WeaponAxe
	case "staff":
		return WeaponStaff
	case "bow":
		return WeaponBow
	default:
		return WeaponSword
	}
}
