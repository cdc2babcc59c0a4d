package export

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/Mahinika/spriteforge/gen"
)

// Writer writes assets to an output directory, optionally mirrored to a
// second sibling location (engine-specific asset trees). All writes go
// through a temp-file-then-rename step so an interrupted run never
// leaves partial files.
type Writer struct {
	Dir    string
	Mirror string // optional second output root; empty disables
}

// NewWriter creates the output directories. Failure here is
// unrecoverable for a run: nothing useful can be produced.
func NewWriter(dir, mirror string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", dir, err)
	}
	if mirror != "" {
		if err := os.MkdirAll(mirror, 0o755); err != nil {
			return nil, fmt.Errorf("create mirror dir %s: %w", mirror, err)
		}
	}
	return &Writer{Dir: dir, Mirror: mirror}, nil
}

// WriteAsset writes the asset's PNG and JSON sidecar under the given
// base name, plus one extra PNG per additional export size, to the
// output dir and the mirror.
func (w *Writer) WriteAsset(name string, asset *gen.Asset, sizes []int) error {
	dirs := []string{w.Dir}
	if w.Mirror != "" {
		dirs = append(dirs, w.Mirror)
	}
	for _, dir := range dirs {
		if err := writePNG(filepath.Join(dir, name+".png"), asset.Image); err != nil {
			return err
		}
		if err := writeJSON(filepath.Join(dir, name+".json"), asset.Meta); err != nil {
			return err
		}
		for _, s := range sizes {
			if s == asset.Image.Bounds().Dx() {
				continue
			}
			scaled := Resize(asset.Image, s)
			path := filepath.Join(dir, fmt.Sprintf("%s_%d.png", name, s))
			if err := writePNG(path, scaled); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteSheet writes an animation strip next to the asset's base files.
func (w *Writer) WriteSheet(name string, frames []*image.NRGBA) error {
	sheet, err := SpriteSheet(frames)
	if err != nil {
		return err
	}
	dirs := []string{w.Dir}
	if w.Mirror != "" {
		dirs = append(dirs, w.Mirror)
	}
	for _, dir := range dirs {
		if err := writePNG(filepath.Join(dir, name+"_anim.png"), sheet); err != nil {
			return err
		}
	}
	return nil
}

// WriteReport writes the aggregated QA report for a run.
func (w *Writer) WriteReport(report map[string]Result) error {
	return writeJSON(filepath.Join(w.Dir, "qa_report.json"), report)
}

// writePNG encodes to a temp file in the target directory and renames
// it into place.
func writePNG(path string, img image.Image) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".spriteforge-*")
	if err != nil {
		return fmt.Errorf("temp for %s: %w", path, err)
	}
	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename into %s: %w", path, err)
	}
	return nil
}

// writeJSON marshals v indented and writes it with the same
// temp-then-rename step as writePNG.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".spriteforge-*")
	if err != nil {
		return fmt.Errorf("temp for %s: %w", path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename into %s: %w", path, err)
	}
	return nil
}
