package export

import (
	"fmt"
	"image"
)

// Coverage band accepted by the validator: below the floor a sprite is
// effectively blank, above the ceiling it is a filled slab with no
// silhouette.
const (
	minCoverage = 0.02
	maxCoverage = 0.95
)

// Result is the outcome of validating one asset. Validation never
// panics or errors; a flagged asset is still written, the caller logs
// the issues.
type Result struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues,omitempty"`
}

// Validate runs the post-generation sanity checks: the non-transparent
// pixel ratio must fall inside the expected band, and the silhouette
// bounding box must be non-degenerate and inside the canvas.
func Validate(img image.Image) Result {
	var issues []string

	ratio := CoverageRatio(img)
	if ratio < minCoverage {
		issues = append(issues, fmt.Sprintf("coverage %.3f below %.2f: sprite is blank or nearly blank", ratio, minCoverage))
	}
	if ratio > maxCoverage {
		issues = append(issues, fmt.Sprintf("coverage %.3f above %.2f: sprite fills the whole canvas", ratio, maxCoverage))
	}

	box, ok := SilhouetteBounds(img)
	if !ok {
		issues = append(issues, "empty silhouette: no opaque pixels")
	} else {
		if box.Dx() <= 1 || box.Dy() <= 1 {
			issues = append(issues, fmt.Sprintf("degenerate silhouette %dx%d", box.Dx(), box.Dy()))
		}
		if !box.In(img.Bounds()) {
			issues = append(issues, "silhouette extends outside the canvas")
		}
	}

	return Result{Valid: len(issues) == 0, Issues: issues}
}

// CoverageRatio returns the fraction of pixels with non-zero alpha.
func CoverageRatio(img image.Image) float64 {
	b := img.Bounds()
	total := b.Dx() * b.Dy()
	if total == 0 {
		return 0
	}
	opaque := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
				opaque++
			}
		}
	}
	return float64(opaque) / float64(total)
}

// SilhouetteBounds returns the bounding box of all non-transparent
// pixels. ok is false when the image is fully transparent.
func SilhouetteBounds(img image.Image) (box image.Rectangle, ok bool) {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if y < minY {
				minY = y
			}
			if x > maxX {
				maxX = x
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if maxX < minX {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}
