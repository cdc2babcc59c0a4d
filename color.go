package spriteforge

import "image/color"

// Color algebra over 6-digit hex strings ("#RRGGBB"). All functions are
// pure and total for well-formed hex input; malformed input is a
// caller bug and decodes as black rather than erroring, so a bad record
// in a bulk run degrades visually instead of aborting.

// Clamp restricts v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// HexToRGB parses "#RRGGBB" (leading '#' optional) into 8-bit channels.
func HexToRGB(hex string) (r, g, b uint8) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return 0, 0, 0
	}
	var rv, gv, bv uint32
	parseHex(hex[0:2], &rv)
	parseHex(hex[2:4], &gv)
	parseHex(hex[4:6], &bv)
	return uint8(rv), uint8(gv), uint8(bv)
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// RGBToHex formats 8-bit channels as "#RRGGBB".
func RGBToHex(r, g, b uint8) string {
	const digits = "0123456789ABCDEF"
	out := []byte{'#', 0, 0, 0, 0, 0, 0}
	out[1] = digits[r>>4]
	out[2] = digits[r&0xF]
	out[3] = digits[g>>4]
	out[4] = digits[g&0xF]
	out[5] = digits[b>>4]
	out[6] = digits[b&0xF]
	return string(out)
}

// HexToRGBA parses a hex color into an opaque color.RGBA.
func HexToRGBA(hex string) color.RGBA {
	r, g, b := HexToRGB(hex)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// HexWithAlpha parses a hex color and attaches the given alpha.
func HexWithAlpha(hex string, a uint8) color.RGBA {
	r, g, b := HexToRGB(hex)
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// MixHex linearly interpolates per channel from a to b. t is clamped to
// [0, 1]; t=0 yields a, t=1 yields b.
func MixHex(a, b string, t float64) string {
	t = Clamp(t, 0, 1)
	ar, ag, ab := HexToRGB(a)
	br, bg, bb := HexToRGB(b)
	mix := func(x, y uint8) uint8 {
		return uint8(Clamp(float64(x)+(float64(y)-float64(x))*t, 0, 255))
	}
	return RGBToHex(mix(ar, br), mix(ag, bg), mix(ab, bb))
}

// LightenHex scales each channel toward 255 by amount in [0, 1].
func LightenHex(hex string, amount float64) string {
	amount = Clamp(amount, 0, 1)
	r, g, b := HexToRGB(hex)
	up := func(c uint8) uint8 {
		return uint8(Clamp(float64(c)+(255-float64(c))*amount, 0, 255))
	}
	return RGBToHex(up(r), up(g), up(b))
}

// DarkenHex scales each channel toward 0 by amount in [0, 1].
func DarkenHex(hex string, amount float64) string {
	amount = Clamp(amount, 0, 1)
	r, g, b := HexToRGB(hex)
	down := func(c uint8) uint8 {
		return uint8(Clamp(float64(c)*(1-amount), 0, 255))
	}
	return RGBToHex(down(r), down(g), down(b))
}

// Luma returns the perceptual luminance of a hex color in [0, 255],
// using the Rec. 601 weights 0.299 R + 0.587 G + 0.114 B.
func Luma(hex string) float64 {
	r, g, b := HexToRGB(hex)
	return 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
}

// minVisibleLuma is the luminance below which a fill color cannot be
// told apart from a black background at icon sizes.
const minVisibleLuma = 40.0

// EnsureVisibleFill lightens hex until its luminance reaches
// minVisibleLuma. Colors already above the threshold pass through
// unchanged. Lightening is monotone toward white, so this always
// terminates.
func EnsureVisibleFill(hex string) string {
	out := hex
	for i := 0; i < 16 && Luma(out) < minVisibleLuma; i++ {
		out = LightenHex(out, 0.15)
	}
	return out
}
