package export

import (
	"image"
	"image/color"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		img       *image.NRGBA
		wantValid bool
		wantIssue string
	}{
		{
			name:      "healthy sprite",
			img:       testSprite(48, 24),
			wantValid: true,
		},
		{
			name:      "blank canvas",
			img:       image.NewNRGBA(image.Rect(0, 0, 48, 48)),
			wantValid: false,
			wantIssue: "blank",
		},
		{
			name:      "filled slab",
			img:       fullSlab(48),
			wantValid: false,
			wantIssue: "fills the whole canvas",
		},
		{
			name:      "single pixel",
			img:       dot(48),
			wantValid: false,
			wantIssue: "degenerate",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(tt.img)
			if res.Valid != tt.wantValid {
				t.Errorf("Valid = %v, issues %v", res.Valid, res.Issues)
			}
			if tt.wantIssue != "" {
				found := false
				for _, issue := range res.Issues {
					if strings.Contains(issue, tt.wantIssue) {
						found = true
					}
				}
				if !found {
					t.Errorf("issues %v do not mention %q", res.Issues, tt.wantIssue)
				}
			}
		})
	}
}

func TestCoverageRatio(t *testing.T) {
	if got := CoverageRatio(image.NewNRGBA(image.Rect(0, 0, 16, 16))); got != 0 {
		t.Errorf("blank coverage = %v, want 0", got)
	}
	if got := CoverageRatio(fullSlab(16)); got != 1 {
		t.Errorf("full coverage = %v, want 1", got)
	}
	// A 24px square on a 48px canvas covers exactly a quarter.
	if got := CoverageRatio(testSprite(48, 24)); got != 0.25 {
		t.Errorf("quarter coverage = %v, want 0.25", got)
	}
}

func TestSilhouetteBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	img.SetNRGBA(5, 7, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(20, 25, color.NRGBA{0, 255, 0, 128})
	box, ok := SilhouetteBounds(img)
	if !ok {
		t.Fatal("silhouette not found")
	}
	if want := image.Rect(5, 7, 21, 26); box != want {
		t.Errorf("bounds = %v, want %v", box, want)
	}

	if _, ok := SilhouetteBounds(image.NewNRGBA(image.Rect(0, 0, 8, 8))); ok {
		t.Error("blank image reported a silhouette")
	}
}

func fullSlab(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, color.NRGBA{80, 80, 80, 255})
		}
	}
	return img
}

func dot(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	img.SetNRGBA(size/2, size/2, color.NRGBA{255, 255, 255, 255})
	return img
}
