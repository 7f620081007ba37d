// internal/tui/driver.go
package tui

import (
	"github.com/bethropolis/worldedit/internal/logger"
	"github.com/bethropolis/worldedit/internal/placement"
	"github.com/bethropolis/worldedit/internal/types"
	"github.com/bethropolis/worldedit/internal/world"
)

// PointerDriver feeds cursor and mouse gestures to the active placement
// callback. It is used only from the UI goroutine.
type PointerDriver struct {
	surface func() world.Surface

	cb    placement.DragCallback
	mode  placement.Mode
	label string
	// gen changes on every BeginDrag so a callback that starts a new session
	// is not released when it returns true for the old one.
	gen uint64
}

// NewPointerDriver creates a driver that resolves surface-mode gestures
// against the surface returned by surface.
func NewPointerDriver(surface func() world.Surface) *PointerDriver {
	return &PointerDriver{surface: surface}
}

// BeginDrag installs cb as the receiver of gestures, replacing any session
// still in progress.
func (d *PointerDriver) BeginDrag(mode placement.Mode, label string, cb placement.DragCallback) {
	if d.cb != nil {
		logger.Warnf("PointerDriver: '%s' started while '%s' was active", label, d.label)
	}
	d.cb = cb
	d.mode = mode
	d.label = label
	d.gen++
	logger.DebugTagf("placement", "Drag started: %s (%v)", label, mode)
}

// Active reports whether a session is receiving gestures.
func (d *PointerDriver) Active() bool { return d.cb != nil }

// Label describes the active session, or is empty.
func (d *PointerDriver) Label() string { return d.label }

// Mode is the active session's picking mode.
func (d *PointerDriver) Mode() placement.Mode { return d.mode }

// Gesture delivers one gesture at loc. In surface mode an accept gesture
// that misses the surface is dropped. It reports whether the gesture reached
// the callback.
func (d *PointerDriver) Gesture(accept bool, loc types.Vec3) bool {
	if d.cb == nil {
		return false
	}
	if accept {
		resolved, ok := d.resolve(loc)
		if !ok {
			logger.DebugTagf("placement", "Gesture at %v missed the surface", loc)
			return false
		}
		loc = resolved
	}

	cb, gen := d.cb, d.gen
	if cb(accept, loc) && d.gen == gen {
		d.release()
	}
	return true
}

// Cancel sends the stop gesture to the active session, if any.
func (d *PointerDriver) Cancel() {
	if d.cb != nil {
		d.Gesture(false, types.Vec3Zero)
	}
}

func (d *PointerDriver) resolve(loc types.Vec3) (types.Vec3, bool) {
	if d.mode != placement.ModeSurface {
		return types.NewVec3(loc.X, 0, loc.Z), true
	}
	var s world.Surface
	if d.surface != nil {
		s = d.surface()
	}
	if s == nil {
		return loc, false
	}
	h, ok := s.HeightAt(loc.X, loc.Z)
	if !ok {
		return loc, false
	}
	return types.NewVec3(loc.X, h, loc.Z), true
}

func (d *PointerDriver) release() {
	logger.DebugTagf("placement", "Drag released: %s", d.label)
	d.cb = nil
	d.label = ""
}
