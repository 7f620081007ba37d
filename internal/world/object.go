// Package world holds the scene model the editor mutates: objects, the
// collections that contain them, and the current selection.
package world

import (
	"fmt"

	"github.com/bethropolis/worldedit/internal/types"
	"github.com/google/uuid"
)

// Kind names an object type. It is also the discriminator in saved documents.
type Kind string

const (
	KindBoundary  Kind = "boundary"
	KindRoad      Kind = "road"
	KindMarker    Kind = "marker"
	KindLight     Kind = "light"
	KindTree      Kind = "tree"
	KindParticles Kind = "particles"
)

// Object is anything that can live in a Container.
type Object interface {
	ID() string
	Name() string
	SetName(name string)
	Kind() Kind
	// Anchor is the location used to draw and hit-test the object.
	Anchor() types.Vec3

	Select()
	UnSelect()
	Selected() bool
}

// Positioned objects occupy a single location.
type Positioned interface {
	Object
	Position() types.Vec3
	SetPosition(p types.Vec3)
}

// PointList objects are ordered point sequences (boundaries and roads).
type PointList interface {
	Object
	Points() []types.Vec3
	PointCount() int
	InsertPoint(index int, p types.Vec3)
	RemovePoint(index int) types.Vec3
	// Closed reports whether the last point connects back to the first.
	Closed() bool
}

// Base carries the identity and selection state shared by every object.
type Base struct {
	ObjectID   string
	ObjectName string
	selected   bool
}

func newBase(name string) Base {
	return Base{ObjectID: uuid.NewString(), ObjectName: name}
}

func (b *Base) ID() string          { return b.ObjectID }
func (b *Base) Name() string        { return b.ObjectName }
func (b *Base) SetName(name string) { b.ObjectName = name }
func (b *Base) Select()             { b.selected = true }
func (b *Base) UnSelect()           { b.selected = false }
func (b *Base) Selected() bool      { return b.selected }

// RenewID assigns a fresh id, used when an object is duplicated.
func (b *Base) RenewID() { b.ObjectID = uuid.NewString() }

// Point is embedded by single-location objects.
type Point struct {
	Pos types.Vec3
}

func (p *Point) Position() types.Vec3     { return p.Pos }
func (p *Point) SetPosition(v types.Vec3) { p.Pos = v }
func (p *Point) Anchor() types.Vec3       { return p.Pos }

// Polyline is embedded by point-sequence objects.
type Polyline struct {
	Vertices []types.Vec3
}

func (l *Polyline) Points() []types.Vec3 { return types.ClonePoints(l.Vertices) }
func (l *Polyline) PointCount() int      { return len(l.Vertices) }

// InsertPoint inserts p before index; index == PointCount appends.
func (l *Polyline) InsertPoint(index int, p types.Vec3) {
	if index < 0 || index > len(l.Vertices) {
		panic(fmt.Sprintf("world: insert index %d out of range [0,%d]", index, len(l.Vertices)))
	}
	l.Vertices = append(l.Vertices, types.Vec3{})
	copy(l.Vertices[index+1:], l.Vertices[index:])
	l.Vertices[index] = p
}

// RemovePoint removes and returns the point at index.
func (l *Polyline) RemovePoint(index int) types.Vec3 {
	if index < 0 || index >= len(l.Vertices) {
		panic(fmt.Sprintf("world: remove index %d out of range [0,%d)", index, len(l.Vertices)))
	}
	p := l.Vertices[index]
	l.Vertices = append(l.Vertices[:index], l.Vertices[index+1:]...)
	return p
}

// Anchor is the first vertex, or the origin for an empty line.
func (l *Polyline) Anchor() types.Vec3 {
	if len(l.Vertices) == 0 {
		return types.Vec3Zero
	}
	return l.Vertices[0]
}
