package world

import "github.com/bethropolis/worldedit/internal/types"

// Boundary is a closed region outline. Its polygon must not self-intersect.
type Boundary struct {
	Base
	Polyline
	Priority int
}

func NewBoundary(name string, points []types.Vec3) *Boundary {
	return &Boundary{Base: newBase(name), Polyline: Polyline{Vertices: types.ClonePoints(points)}}
}

func (b *Boundary) Kind() Kind   { return KindBoundary }
func (b *Boundary) Closed() bool { return true }

// Road is an open path with a half width.
type Road struct {
	Base
	Polyline
	HalfWidth float32
}

const DefaultRoadHalfWidth = 2

func NewRoad(name string, points []types.Vec3) *Road {
	return &Road{
		Base:      newBase(name),
		Polyline:  Polyline{Vertices: types.ClonePoints(points)},
		HalfWidth: DefaultRoadHalfWidth,
	}
}

func (r *Road) Kind() Kind   { return KindRoad }
func (r *Road) Closed() bool { return false }

// Marker is a named waypoint.
type Marker struct {
	Base
	Point
}

func NewMarker(name string, pos types.Vec3) *Marker {
	return &Marker{Base: newBase(name), Point: Point{Pos: pos}}
}

func (m *Marker) Kind() Kind { return KindMarker }

// PointLight is an omnidirectional light.
type PointLight struct {
	Base
	Point
	Color string
	Range float32
}

func NewPointLight(name string, pos types.Vec3) *PointLight {
	return &PointLight{Base: newBase(name), Point: Point{Pos: pos}, Color: "#ffffff", Range: 10}
}

func (l *PointLight) Kind() Kind { return KindLight }

// Tree is a single placed tree instance.
type Tree struct {
	Base
	Point
	Species string
	Scale   float32
}

func NewTree(name string, pos types.Vec3) *Tree {
	return &Tree{Base: newBase(name), Point: Point{Pos: pos}, Species: "oak", Scale: 1}
}

func (t *Tree) Kind() Kind { return KindTree }

// ParticleEffect attaches a named effect at a location.
type ParticleEffect struct {
	Base
	Point
	Effect string
}

func NewParticleEffect(name string, pos types.Vec3) *ParticleEffect {
	return &ParticleEffect{Base: newBase(name), Point: Point{Pos: pos}, Effect: "smoke"}
}

func (p *ParticleEffect) Kind() Kind { return KindParticles }

// NewPositioned builds a default single-location object of the given kind.
func NewPositioned(kind Kind, name string, pos types.Vec3) (Positioned, bool) {
	switch kind {
	case KindMarker:
		return NewMarker(name, pos), true
	case KindLight:
		return NewPointLight(name, pos), true
	case KindTree:
		return NewTree(name, pos), true
	case KindParticles:
		return NewParticleEffect(name, pos), true
	}
	return nil, false
}

var (
	_ PointList  = (*Boundary)(nil)
	_ PointList  = (*Road)(nil)
	_ Positioned = (*Marker)(nil)
	_ Positioned = (*PointLight)(nil)
	_ Positioned = (*Tree)(nil)
	_ Positioned = (*ParticleEffect)(nil)
)
