package export

import (
	"fmt"
	"image"
	"image/draw"
)

// SpriteSheet concatenates same-sized frames horizontally into one
// strip image, frame 0 leftmost. It errors when frames are empty or
// any frame's dimensions differ from the first.
func SpriteSheet(frames []*image.NRGBA) (*image.NRGBA, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("sprite sheet needs at least one frame")
	}
	fw := frames[0].Bounds().Dx()
	fh := frames[0].Bounds().Dy()
	for i, f := range frames {
		if f.Bounds().Dx() != fw || f.Bounds().Dy() != fh {
			return nil, fmt.Errorf("frame %d is %dx%d, want %dx%d",
				i, f.Bounds().Dx(), f.Bounds().Dy(), fw, fh)
		}
	}
	sheet := image.NewNRGBA(image.Rect(0, 0, fw*len(frames), fh))
	for i, f := range frames {
		r := image.Rect(i*fw, 0, (i+1)*fw, fh)
		draw.Draw(sheet, r, f, f.Bounds().Min, draw.Src)
	}
	return sheet, nil
}
