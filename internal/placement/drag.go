package placement

import (
	"github.com/bethropolis/worldedit/internal/logger"
	"github.com/bethropolis/worldedit/internal/types"
)

// DragHelper is a single-point session: the first accepted location is placed
// and the session ends; a stop gesture cancels it.
type DragHelper struct {
	label    string
	onPlace  func(location types.Vec3)
	onCancel func()
	done     bool
}

// NewDragHelper starts a single-point session on driver. onCancel may be nil.
func NewDragHelper(driver Driver, mode Mode, label string, onPlace func(types.Vec3), onCancel func()) *DragHelper {
	h := &DragHelper{label: label, onPlace: onPlace, onCancel: onCancel}
	driver.BeginDrag(mode, label, h.DragCallback)
	return h
}

// Done reports whether the session has ended.
func (h *DragHelper) Done() bool { return h.done }

// Abort ends the session without calling either callback.
func (h *DragHelper) Abort() { h.done = true }

// DragCallback implements the gesture protocol for a single point.
func (h *DragHelper) DragCallback(accept bool, location types.Vec3) bool {
	if h.done {
		return true
	}
	h.done = true
	if accept {
		logger.DebugTagf("placement", "%s: placed at %v", h.label, location)
		h.onPlace(location)
	} else {
		logger.DebugTagf("placement", "%s: cancelled", h.label)
		if h.onCancel != nil {
			h.onCancel()
		}
	}
	return true
}
