// Package export turns generated assets into files: multi-size
// pixel-art-preserving resizes, animation sheet assembly, QA
// validation, atomic PNG and JSON-sidecar writes, and the parallel
// batch runner behind the CLI.
package export

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Resize scales src to a square of the given size using
// nearest-neighbor sampling, the only scaler that preserves hard
// pixel-art edges.
func Resize(src image.Image, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// ResizeAll produces one image per requested size. Sizes must be
// positive.
func ResizeAll(src image.Image, sizes []int) ([]*image.NRGBA, error) {
	out := make([]*image.NRGBA, 0, len(sizes))
	for _, s := range sizes {
		if s <= 0 {
			return nil, fmt.Errorf("invalid export size %d", s)
		}
		out = append(out, Resize(src, s))
	}
	return out, nil
}
