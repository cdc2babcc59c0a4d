// Package spriteforge generates deterministic pixel-art sprites and icons.
//
// # Overview
//
// spriteforge is a pure Go, seed-driven sprite synthesizer. Given an
// integer seed and a semantic descriptor (a class id, an item rarity, an
// ability name), it derives a cel-shade palette, lays out body or icon
// regions, paints them into a software RGBA buffer, and composites
// outline and glow layers. The same seed and descriptor always produce
// byte-identical output, so generated assets can be regression-tested
// and regenerated on any platform.
//
// # Quick Start
//
//	import "github.com/Mahinika/spriteforge"
//
//	d := spriteforge.NewDrawer(64, 64)
//	pal := spriteforge.GeneratePalette("#3B6EA5", spriteforge.MaterialCloth)
//	spriteforge.ApplyCelShade(d, 16, 20, 32, 24, pal, spriteforge.LightTopLeft)
//	d.Outline(spriteforge.HexToRGBA("#000000"), 1)
//	d.SavePNG("torso.png")
//
// # Architecture
//
// The library is organized into:
//   - Root package: RNG, color algebra, Drawer (pixel buffer), regions,
//     proportions, cel-shading, glow compositing
//   - gen: category generators (humanoid, enemy, item, spell icon,
//     projectile, vfx, animation) and semantic-data resolution
//   - export: multi-size export, sprite sheets, QA validation, atomic
//     asset writing, and the parallel batch runner
//
// # Coordinate System
//
// Uses standard raster coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Determinism
//
// All randomness flows through RNG (a fixed xorshift64* generator, see
// rng.go). Nothing in the pipeline consults global random state, wall
// clocks, or map iteration order, so identical inputs yield identical
// pixels.
package spriteforge

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
