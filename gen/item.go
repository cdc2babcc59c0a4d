package gen

import (
	"image"
	"image/color"

	"github.com/Mahinika/spriteforge"
)

// generateItem draws an inventory icon: a rarity-tinted background
// plate with an accent border, and a silhouette picked by item
// category. Rare and better weapons and accessories carry a gem dot in
// the rarity accent color.
func generateItem(req Request, rng *spriteforge.RNG) *Asset {
	size := req.Size
	d := spriteforge.NewDrawer(size, size)

	rarity := req.Record.Rarity
	if rarity == "" {
		rarity = "common"
	}
	accent := req.Style.RarityColor(rarity)
	category := itemCategoryFromString(req.Record.Type)

	// Background plate: a deep tint of the accent with the accent as
	// border, inset one pixel so the outline stroke stays inside the
	// canvas.
	plate := spriteforge.HexToRGBA(spriteforge.DarkenHex(accent, 0.78))
	border := spriteforge.HexToRGBA(accent)
	d.FillRect(1, 1, size-2, size-2, plate)
	d.DrawLine(1, 1, size-2, 1, border)
	d.DrawLine(size-2, 1, size-2, size-2, border)
	d.DrawLine(size-2, size-2, 1, size-2, border)
	d.DrawLine(1, size-2, 1, 1, border)

	metal := jitterHex(rng, defaultMetalColor, req.Variant, 0.15)
	gem := hasGem(rarity)

	profile := "item_weapon"
	switch category {
	case ItemArmor:
		profile = "item_armor"
		drawArmorIcon(d, size, metal, accent)
	case ItemAccessory:
		profile = "item_accessory"
		drawAccessoryIcon(d, size, metal, accent, gem)
	default:
		shape := weaponShapeFromString(req.Record.WeaponType)
		drawWeaponIcon(d, size, shape, metal, accent, gem)
	}

	return &Asset{
		Image: d.Image(),
		Meta: Metadata{
			AssetType: AssetItem.String(),
			Profile:   profile,
			BaseSize:  [2]int{size, size},
			GlowColor: accent,
			Outline:   true,
			Rarity:    rarity,
		},
	}
}

// drawWeaponIcon renders the weapon silhouette diagonally across the
// plate: blade or haft from lower-left grip to upper-right tip, with a
// crossguard and, for rare and better, a pommel gem.
func drawWeaponIcon(d *spriteforge.Drawer, size int, shape WeaponShape, metal, accent string, gem bool) {
	pal := spriteforge.GeneratePalette(metal, spriteforge.MaterialMetal)
	blade := spriteforge.HexToRGBA(pal.Light)
	edge := spriteforge.HexToRGBA(pal.Highlight)
	grip := spriteforge.HexToRGBA("#4A2F1B")

	gx, gy := size/4, size*3/4   // grip
	tx, ty := size*3/4, size/4   // tip
	mx, my := size/2, size/2     // crossguard midpoint

	switch shape {
	case WeaponAxe:
		d.DrawLine(gx, gy, tx, ty, grip)
		d.FillPolygon([]image.Point{
			{tx, ty - size/8}, {tx + size/8, ty}, {tx, ty + size/8}, {tx - size/8, ty},
		}, blade)
		d.DrawLine(tx-size/8, ty, tx, ty-size/8, edge)
	case WeaponStaff:
		d.DrawLine(gx, gy, tx, ty, grip)
		d.FillCircle(tx, ty, size/10, spriteforge.HexToRGBA(accent))
		d.DrawCircle(tx, ty, size/10, edge)
	case WeaponBow:
		d.DrawLine(gx, ty, tx, ty, grip)       // upper limb anchor
		d.DrawLine(gx, ty, gx, gy, grip)       // string
		d.DrawLine(gx, gy, tx, gy, grip)       // lower limb anchor
		d.DrawLine(tx, ty, tx+size/12, my, blade)
		d.DrawLine(tx+size/12, my, tx, gy, blade)
	default: // sword
		d.FillPolygon([]image.Point{
			{tx + 1, ty - 1}, {mx + size/16, my}, {mx, my + size/16},
		}, blade)
		d.DrawLine(mx, my+size/16, tx, ty, edge)
		// Crossguard perpendicular to the blade.
		d.DrawLine(mx-size/12, my-size/12, mx+size/12, my+size/12, grip)
		d.DrawLine(mx, my, gx, gy, grip)
	}

	if gem {
		d.FillCircle(gx, gy, 1+size/24, spriteforge.HexToRGBA(accent))
		d.SetPixel(gx, gy, color.RGBA{255, 255, 255, 255})
	}
}

// drawArmorIcon renders a chest plate: shoulder-to-hem trapezoid with a
// collar notch and a cel-shaded face.
func drawArmorIcon(d *spriteforge.Drawer, size int, metal, accent string) {
	pal := spriteforge.GeneratePalette(metal, spriteforge.MaterialMetal)
	x := size / 4
	y := size / 4
	w := size / 2
	h := size / 2
	spriteforge.ApplyCelShade(d, x, y, w, h, pal, spriteforge.LightTopLeft)
	// Collar notch
	plate := spriteforge.HexToRGBA(spriteforge.DarkenHex(accent, 0.78))
	d.FillRect(x+w/3, y, w/3, h/6+1, plate)
	// Shoulder studs
	stud := spriteforge.HexToRGBA(pal.Highlight)
	d.FillCircle(x+1, y+1, 1+size/32, stud)
	d.FillCircle(x+w-2, y+1, 1+size/32, stud)
}

// drawAccessoryIcon renders a ring with an optional gem setting.
func drawAccessoryIcon(d *spriteforge.Drawer, size int, metal, accent string, gem bool) {
	pal := spriteforge.GeneratePalette(metal, spriteforge.MaterialMetal)
	band := spriteforge.HexToRGBA(pal.Light)
	shine := spriteforge.HexToRGBA(pal.Highlight)
	cx, cy := size/2, size/2+size/12
	r := size / 5
	d.DrawCircle(cx, cy, r, band)
	d.DrawCircle(cx, cy, r-1, band)
	d.DrawCircle(cx, cy, r+1, shine)
	if gem {
		d.FillCircle(cx, cy-r, 1+size/16, spriteforge.HexToRGBA(accent))
		d.SetPixel(cx, cy-r-1, color.RGBA{255, 255, 255, 255})
	}
}
