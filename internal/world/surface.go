package world

import "github.com/chewxy/math32"

// Surface answers picking queries against scene geometry for surface-constrained placement.
type Surface interface {
	// HeightAt returns the ground height at (x, z) and whether the ray hit anything.
	HeightAt(x, z float32) (float32, bool)
}

// FlatTerrain is a level ground plane. A zero HalfExtent means unbounded.
type FlatTerrain struct {
	Height     float32
	HalfExtent float32
}

func (t FlatTerrain) HeightAt(x, z float32) (float32, bool) {
	if t.HalfExtent > 0 && (math32.Abs(x) > t.HalfExtent || math32.Abs(z) > t.HalfExtent) {
		return 0, false
	}
	return t.Height, true
}

// SurfaceFunc adapts a function to Surface.
type SurfaceFunc func(x, z float32) (float32, bool)

func (f SurfaceFunc) HeightAt(x, z float32) (float32, bool) { return f(x, z) }
