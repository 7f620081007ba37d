package app

import (
	"github.com/bethropolis/worldedit/internal/geom"
	"github.com/bethropolis/worldedit/internal/types"
	"github.com/bethropolis/worldedit/internal/world"
	"github.com/chewxy/math32"
)

// pickRadius is how close, in rows, the cursor must be to hit an object.
const pickRadius = 1.5

// pickAt returns the object of a loaded collection nearest to pos within
// radius world units. Point objects win ties with outlines passing nearby.
func pickAt(w *world.World, pos types.Vec3, radius float32) world.Object {
	var best world.Object
	bestDist := math32.Inf(1)
	for _, obj := range w.Objects() {
		var d float32
		switch o := obj.(type) {
		case world.PointList:
			d = geom.DistanceToPolyline(pos, o.Points(), o.Closed())
		case world.Positioned:
			d = pos.DistanceXZ(o.Position()) - 1e-3
		default:
			d = pos.DistanceXZ(obj.Anchor())
		}
		if d <= radius && d < bestDist {
			best, bestDist = obj, d
		}
	}
	return best
}

// nextObject returns the object after current in world order, wrapping around.
func nextObject(w *world.World, current world.Object) world.Object {
	objs := w.Objects()
	if len(objs) == 0 {
		return nil
	}
	for i, obj := range objs {
		if obj == current {
			return objs[(i+1)%len(objs)]
		}
	}
	return objs[0]
}
