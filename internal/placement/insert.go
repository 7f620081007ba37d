package placement

import (
	"fmt"

	"github.com/bethropolis/worldedit/internal/logger"
	"github.com/bethropolis/worldedit/internal/types"
)

// MultiPointInsertValidateFunc decides whether location may be inserted before index.
type MultiPointInsertValidateFunc func(points []types.Vec3, location types.Vec3, index int) bool

// MultiPointInsertHelper inserts validated points into an existing list at a
// moving index: each accepted point lands at the index, which then advances.
type MultiPointInsertHelper struct {
	label    string
	points   []types.Vec3
	index    int
	validate MultiPointInsertValidateFunc
	complete MultiPointCompleteFunc
	done     bool
}

// NewMultiPointInsertHelper starts an insert session over a copy of existing.
// index must be within [0, len(existing)].
func NewMultiPointInsertHelper(driver Driver, mode Mode, label string, existing []types.Vec3, index int,
	validate MultiPointInsertValidateFunc, complete MultiPointCompleteFunc) *MultiPointInsertHelper {
	if index < 0 || index > len(existing) {
		panic(fmt.Sprintf("placement: insert index %d out of range [0,%d]", index, len(existing)))
	}
	h := &MultiPointInsertHelper{
		label:    label,
		points:   types.ClonePoints(existing),
		index:    index,
		validate: validate,
		complete: complete,
	}
	driver.BeginDrag(mode, label, h.DragCallback)
	return h
}

// Points returns a copy of the current list including inserted points.
func (h *MultiPointInsertHelper) Points() []types.Vec3 { return types.ClonePoints(h.points) }

// Index is where the next accepted point will land.
func (h *MultiPointInsertHelper) Index() int { return h.index }

func (h *MultiPointInsertHelper) Done() bool { return h.done }

// Abort ends the session without calling complete.
func (h *MultiPointInsertHelper) Abort() { h.done = true }

// DragCallback implements the Placing/Done protocol with insertion.
func (h *MultiPointInsertHelper) DragCallback(accept bool, location types.Vec3) bool {
	if h.done {
		return true
	}
	if !accept {
		h.done = true
		logger.DebugTagf("placement", "%s: done, %d point(s)", h.label, len(h.points))
		h.complete(types.ClonePoints(h.points))
		return true
	}
	if h.validate != nil && !h.validate(types.ClonePoints(h.points), location, h.index) {
		logger.DebugTagf("placement", "%s: rejected %v at %d", h.label, location, h.index)
		return false
	}
	h.points = append(h.points, types.Vec3{})
	copy(h.points[h.index+1:], h.points[h.index:])
	h.points[h.index] = location
	h.index++
	logger.DebugTagf("placement", "%s: inserted %v, next index %d", h.label, location, h.index)
	return false
}
