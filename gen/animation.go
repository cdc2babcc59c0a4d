package gen

import (
	"image"
)

// DefaultFrameCount is the number of frames in a generated animation
// strip.
const DefaultFrameCount = 4

// bobOffsets is the vertical bob cycle for body sprites.
var bobOffsets = [DefaultFrameCount]int{0, -1, 0, 1}

// pulseAlphas is the white-flash cycle for icon and effect sprites.
var pulseAlphas = [DefaultFrameCount]uint8{0, 24, 48, 24}

// GenerateFrames produces an animation cycle for the request: body
// sprites bob vertically, icons and effects pulse brighter and back.
// All frames share the request's seed, so a strip is as deterministic
// as a single sprite.
func GenerateFrames(req Request) ([]*image.NRGBA, error) {
	base, err := Generate(req)
	if err != nil {
		return nil, err
	}
	frames := make([]*image.NRGBA, DefaultFrameCount)
	for i := range frames {
		switch req.Type {
		case AssetSpellIcon, AssetItem, AssetVFX:
			frames[i] = pulseFrame(base.Image, pulseAlphas[i])
		default:
			frames[i] = shiftFrame(base.Image, 0, bobOffsets[i])
		}
	}
	return frames, nil
}

// shiftFrame copies src translated by (dx, dy), clipping at the canvas
// edges.
func shiftFrame(src *image.NRGBA, dx, dy int) *image.NRGBA {
	b := src.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		sy := y - dy
		if sy < b.Min.Y || sy >= b.Max.Y {
			continue
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			sx := x - dx
			if sx < b.Min.X || sx >= b.Max.X {
				continue
			}
			out.SetNRGBA(x, y, src.NRGBAAt(sx, sy))
		}
	}
	return out
}

// pulseFrame copies src with every opaque pixel pushed toward white by
// alpha/255, leaving transparency untouched.
func pulseFrame(src *image.NRGBA, alpha uint8) *image.NRGBA {
	b := src.Bounds()
	out := image.NewNRGBA(b)
	t := float64(alpha) / 255.0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := src.NRGBAAt(x, y)
			if c.A != 0 {
				c.R = uint8(float64(c.R) + (255-float64(c.R))*t)
				c.G = uint8(float64(c.G) + (255-float64(c.G))*t)
				c.B = uint8(float64(c.B) + (255-float64(c.B))*t)
			}
			out.SetNRGBA(x, y, c)
		}
	}
	return out
}
