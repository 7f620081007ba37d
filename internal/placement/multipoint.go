package placement

import (
	"github.com/bethropolis/worldedit/internal/logger"
	"github.com/bethropolis/worldedit/internal/types"
)

// MultiPointValidateFunc decides whether location may be appended after points.
// A rejecting validator is expected to tell the user why.
type MultiPointValidateFunc func(points []types.Vec3, location types.Vec3) bool

// MultiPointCompleteFunc receives the final ordered points when the user stops placing.
type MultiPointCompleteFunc func(points []types.Vec3)

// MultiPointPlacementHelper collects validated points in acceptance order until
// the stop gesture, then calls complete exactly once.
type MultiPointPlacementHelper struct {
	label    string
	points   []types.Vec3
	validate MultiPointValidateFunc
	complete MultiPointCompleteFunc
	done     bool
}

// NewMultiPointPlacementHelper starts a session that places points anywhere on the ground plane.
// validate may be nil to accept every point.
func NewMultiPointPlacementHelper(driver Driver, label string, validate MultiPointValidateFunc, complete MultiPointCompleteFunc) *MultiPointPlacementHelper {
	return newMultiPoint(driver, ModeArbitrary, label, validate, complete)
}

// NewSurfaceMultiPointPlacementHelper starts a session that only places points on scene geometry.
func NewSurfaceMultiPointPlacementHelper(driver Driver, label string, validate MultiPointValidateFunc, complete MultiPointCompleteFunc) *MultiPointPlacementHelper {
	return newMultiPoint(driver, ModeSurface, label, validate, complete)
}

func newMultiPoint(driver Driver, mode Mode, label string, validate MultiPointValidateFunc, complete MultiPointCompleteFunc) *MultiPointPlacementHelper {
	h := &MultiPointPlacementHelper{label: label, validate: validate, complete: complete}
	driver.BeginDrag(mode, label, h.DragCallback)
	return h
}

// Points returns a copy of the points placed so far.
func (h *MultiPointPlacementHelper) Points() []types.Vec3 { return types.ClonePoints(h.points) }

// Done reports whether the session has completed or been aborted.
func (h *MultiPointPlacementHelper) Done() bool { return h.done }

// Abort ends the session without calling complete. The driver is released on its next gesture.
func (h *MultiPointPlacementHelper) Abort() {
	if !h.done {
		logger.DebugTagf("placement", "%s: aborted with %d point(s)", h.label, len(h.points))
	}
	h.done = true
}

// DragCallback implements the Placing/Done protocol.
func (h *MultiPointPlacementHelper) DragCallback(accept bool, location types.Vec3) bool {
	if h.done {
		return true
	}
	if !accept {
		h.done = true
		logger.DebugTagf("placement", "%s: done with %d point(s)", h.label, len(h.points))
		h.complete(types.ClonePoints(h.points))
		return true
	}
	if h.validate != nil && !h.validate(types.ClonePoints(h.points), location) {
		logger.DebugTagf("placement", "%s: rejected %v", h.label, location)
		return false
	}
	h.points = append(h.points, location)
	logger.DebugTagf("placement", "%s: point %d at %v", h.label, len(h.points), location)
	return false
}
