package export

import (
	"image"
	"testing"
)

func TestSpriteSheet(t *testing.T) {
	frames := []*image.NRGBA{
		testSprite(32, 16),
		testSprite(32, 16),
		testSprite(32, 16),
		testSprite(32, 16),
	}
	sheet, err := SpriteSheet(frames)
	if err != nil {
		t.Fatalf("SpriteSheet: %v", err)
	}
	if sheet.Bounds().Dx() != 128 || sheet.Bounds().Dy() != 32 {
		t.Errorf("sheet bounds = %v, want 128x32", sheet.Bounds())
	}
	// Each frame cell holds the frame's pixels.
	for i := range frames {
		cx := i*32 + 16
		if sheet.NRGBAAt(cx, 16) != frames[i].NRGBAAt(16, 16) {
			t.Errorf("frame %d center pixel lost in the sheet", i)
		}
	}
}

func TestSpriteSheet_SingleFrame(t *testing.T) {
	sheet, err := SpriteSheet([]*image.NRGBA{testSprite(24, 12)})
	if err != nil {
		t.Fatalf("SpriteSheet: %v", err)
	}
	if sheet.Bounds().Dx() != 24 || sheet.Bounds().Dy() != 24 {
		t.Errorf("sheet bounds = %v, want 24x24", sheet.Bounds())
	}
}

func TestSpriteSheet_Errors(t *testing.T) {
	if _, err := SpriteSheet(nil); err == nil {
		t.Error("empty frame list did not error")
	}
	mixed := []*image.NRGBA{testSprite(32, 16), testSprite(48, 16)}
	if _, err := SpriteSheet(mixed); err == nil {
		t.Error("mismatched frame sizes did not error")
	}
}
