package geom

import (
	"github.com/bethropolis/worldedit/internal/types"
	"github.com/chewxy/math32"
)

// DistanceToSegment is the XZ distance from p to the closest point of ab.
func DistanceToSegment(p, a, b types.Vec3) float32 {
	dx, dz := b.X-a.X, b.Z-a.Z
	lenSq := dx*dx + dz*dz
	if lenSq <= epsilon*epsilon {
		return p.DistanceXZ(a)
	}
	t := ((p.X-a.X)*dx + (p.Z-a.Z)*dz) / lenSq
	t = math32.Max(0, math32.Min(1, t))
	closest := types.Vec3{X: a.X + t*dx, Z: a.Z + t*dz}
	return p.DistanceXZ(closest)
}

// DistanceToPolyline is the XZ distance from p to the nearest edge of points.
// A closed polyline includes the edge from the last point back to the first.
func DistanceToPolyline(p types.Vec3, points []types.Vec3, closed bool) float32 {
	switch len(points) {
	case 0:
		return math32.Inf(1)
	case 1:
		return p.DistanceXZ(points[0])
	}
	best := math32.Inf(1)
	for i := 0; i+1 < len(points); i++ {
		best = math32.Min(best, DistanceToSegment(p, points[i], points[i+1]))
	}
	if closed && len(points) > 2 {
		best = math32.Min(best, DistanceToSegment(p, points[len(points)-1], points[0]))
	}
	return best
}
