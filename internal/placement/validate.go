package placement

import (
	"fmt"

	"github.com/bethropolis/worldedit/internal/geom"
	"github.com/bethropolis/worldedit/internal/types"
)

// DefaultMinSpacing is the closest two consecutive points may be.
const DefaultMinSpacing = 0.01

// OutlineValidator validates points for boundary and road outlines.
// Closed outlines (boundaries) must stay non-self-intersecting. Every outline
// rejects a point that lands on its neighbour.
type OutlineValidator struct {
	Label      string
	Closed     bool
	MinSpacing float32
	Reporter   ErrorReporter
	// OnErrorClick, if set, runs when the user clicks the reported error.
	OnErrorClick func(location types.Vec3)
}

func (v OutlineValidator) spacing() float32 {
	if v.MinSpacing > 0 {
		return v.MinSpacing
	}
	return DefaultMinSpacing
}

// ValidateAppend satisfies MultiPointValidateFunc.
func (v OutlineValidator) ValidateAppend(points []types.Vec3, location types.Vec3) bool {
	return v.ValidateInsert(points, location, len(points))
}

// ValidateInsert satisfies MultiPointInsertValidateFunc.
func (v OutlineValidator) ValidateInsert(points []types.Vec3, location types.Vec3, index int) bool {
	if index < 0 || index > len(points) {
		v.reject(location, fmt.Sprintf("%s: insert position %d is out of range", v.Label, index))
		return false
	}
	if index > 0 && points[index-1].DistanceXZ(location) < v.spacing() ||
		index < len(points) && points[index].DistanceXZ(location) < v.spacing() {
		v.reject(location, fmt.Sprintf("%s: point %v is too close to its neighbour", v.Label, location))
		return false
	}
	if v.Closed && !geom.AcceptsInsert(points, location, index, true) {
		v.reject(location, fmt.Sprintf("%s: point %v would make the boundary intersect itself", v.Label, location))
		return false
	}
	return true
}

func (v OutlineValidator) reject(location types.Vec3, msg string) {
	if v.Reporter == nil {
		return
	}
	var onClick func()
	if v.OnErrorClick != nil {
		onClick = func() { v.OnErrorClick(location) }
	}
	v.Reporter.ReportError(msg, onClick)
}
