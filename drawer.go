package spriteforge

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
)

// Transparent is the sentinel returned for out-of-bounds or unwritten
// pixels.
var Transparent = color.RGBA{}

// Drawer is an in-memory RGBA pixel buffer with primitive drawing
// operations. One Drawer owns the buffer for a single sprite layer: the
// generators draw into it, then commit it once via Image. Alpha is
// straight (non-premultiplied) throughout.
//
// All operations are bounds-checked: out-of-bounds writes are no-ops
// and out-of-bounds reads return Transparent.
type Drawer struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel, straight alpha
}

// NewDrawer creates a new drawer with the given dimensions.
func NewDrawer(width, height int) *Drawer {
	return &Drawer{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the buffer.
func (d *Drawer) Width() int {
	return d.width
}

// Height returns the height of the buffer.
func (d *Drawer) Height() int {
	return d.height
}

// SetPixel sets a single pixel, overwriting whatever is there.
func (d *Drawer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return
	}
	i := (y*d.width + x) * 4
	d.data[i+0] = c.R
	d.data[i+1] = c.G
	d.data[i+2] = c.B
	d.data[i+3] = c.A
}

// GetPixel returns the color of a single pixel, or Transparent when out
// of bounds.
func (d *Drawer) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return Transparent
	}
	i := (y*d.width + x) * 4
	return color.RGBA{R: d.data[i+0], G: d.data[i+1], B: d.data[i+2], A: d.data[i+3]}
}

// Opaque reports whether the pixel at (x, y) holds any color.
func (d *Drawer) Opaque(x, y int) bool {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return false
	}
	return d.data[(y*d.width+x)*4+3] != 0
}

// BlendPixel composites c over the existing pixel with linear alpha
// blending. A fully transparent destination takes c directly.
func (d *Drawer) BlendPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return
	}
	i := (y*d.width + x) * 4
	if d.data[i+3] == 0 {
		d.data[i+0] = c.R
		d.data[i+1] = c.G
		d.data[i+2] = c.B
		d.data[i+3] = c.A
		return
	}
	alpha := float64(c.A) / 255.0
	d.data[i+0] = uint8(float64(d.data[i+0])*(1-alpha) + float64(c.R)*alpha)
	d.data[i+1] = uint8(float64(d.data[i+1])*(1-alpha) + float64(c.G)*alpha)
	d.data[i+2] = uint8(float64(d.data[i+2])*(1-alpha) + float64(c.B)*alpha)
	d.data[i+3] = 255
}

// FillRect fills the axis-aligned rectangle with c.
func (d *Drawer) FillRect(x, y, w, h int, c color.RGBA) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			d.SetPixel(px, py, c)
		}
	}
}

// DrawLine draws a 1px line from (x0, y0) to (x1, y1) using Bresenham's
// algorithm.
func (d *Drawer) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		d.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// FillPolygon fills the polygon described by pts using a scanline pass.
// Degenerate polygons (fewer than 3 points) are no-ops.
func (d *Drawer) FillPolygon(pts []image.Point, c color.RGBA) {
	if len(pts) < 3 {
		return
	}
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= d.height {
		maxY = d.height - 1
	}
	for y := minY; y <= maxY; y++ {
		// Collect x crossings of the scanline against every edge.
		var xs []int
		j := len(pts) - 1
		for i := 0; i < len(pts); i++ {
			a, b := pts[i], pts[j]
			if (a.Y <= y && b.Y > y) || (b.Y <= y && a.Y > y) {
				t := float64(y-a.Y) / float64(b.Y-a.Y)
				xs = append(xs, a.X+int(math.Round(t*float64(b.X-a.X))))
			}
			j = i
		}
		sortInts(xs)
		for k := 0; k+1 < len(xs); k += 2 {
			for x := xs[k]; x <= xs[k+1]; x++ {
				d.SetPixel(x, y, c)
			}
		}
	}
}

// DrawCircle strokes a 1px circle outline centered at (cx, cy).
func (d *Drawer) DrawCircle(cx, cy, r int, c color.RGBA) {
	if r < 0 {
		return
	}
	x, y := r, 0
	err := 1 - r
	for x >= y {
		d.SetPixel(cx+x, cy+y, c)
		d.SetPixel(cx+y, cy+x, c)
		d.SetPixel(cx-y, cy+x, c)
		d.SetPixel(cx-x, cy+y, c)
		d.SetPixel(cx-x, cy-y, c)
		d.SetPixel(cx-y, cy-x, c)
		d.SetPixel(cx+y, cy-x, c)
		d.SetPixel(cx+x, cy-y, c)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

// FillCircle fills a disc centered at (cx, cy).
func (d *Drawer) FillCircle(cx, cy, r int, c color.RGBA) {
	if r < 0 {
		return
	}
	r2 := r * r
	for py := cy - r; py <= cy+r; py++ {
		for px := cx - r; px <= cx+r; px++ {
			dx := px - cx
			dy := py - cy
			if dx*dx+dy*dy <= r2 {
				d.SetPixel(px, py, c)
			}
		}
	}
}

// FillEllipse fills an axis-aligned ellipse centered at (cx, cy).
func (d *Drawer) FillEllipse(cx, cy, rx, ry int, c color.RGBA) {
	if rx <= 0 || ry <= 0 {
		return
	}
	for py := cy - ry; py <= cy+ry; py++ {
		for px := cx - rx; px <= cx+rx; px++ {
			dx := float64(px-cx) / float64(rx)
			dy := float64(py-cy) / float64(ry)
			if dx*dx+dy*dy <= 1.0 {
				d.SetPixel(px, py, c)
			}
		}
	}
}

// Outline traces the silhouette and strokes it outward: every
// transparent pixel 4-adjacent to an opaque pixel is painted with c,
// repeated thickness times. The pass snapshots the opacity mask first
// so the stroke grows ring by ring instead of flooding.
func (d *Drawer) Outline(c color.RGBA, thickness int) {
	for t := 0; t < thickness; t++ {
		mask := make([]bool, d.width*d.height)
		for y := 0; y < d.height; y++ {
			for x := 0; x < d.width; x++ {
				mask[y*d.width+x] = d.Opaque(x, y)
			}
		}
		opaque := func(x, y int) bool {
			if x < 0 || x >= d.width || y < 0 || y >= d.height {
				return false
			}
			return mask[y*d.width+x]
		}
		for y := 0; y < d.height; y++ {
			for x := 0; x < d.width; x++ {
				if opaque(x, y) {
					continue
				}
				if opaque(x-1, y) || opaque(x+1, y) || opaque(x, y-1) || opaque(x, y+1) {
					d.SetPixel(x, y, c)
				}
			}
		}
	}
}

// Image commits the buffer to a new image. The drawer is single-use per
// sprite layer: calling draw operations after Image is a caller bug.
func (d *Drawer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, d.width, d.height))
	copy(img.Pix, d.data)
	return img
}

// SavePNG commits the buffer and writes it to a PNG file.
func (d *Drawer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, d.Image())
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// sortInts is a small insertion sort; scanline crossing lists hold a
// handful of entries.
func sortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j] < xs[j-1]; j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}
