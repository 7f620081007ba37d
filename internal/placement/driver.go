// Package placement turns a stream of pointer gestures into placed points.
//
// A Driver (the terminal view in this editor) owns pointer and key
// interpretation. It reports each gesture to the active DragCallback as
// (accept, location): accept is true for "place here" and false for the
// "stop placing" gesture. The callback's return value tells the driver
// whether the session is over and the callback should be released.
package placement

import "github.com/bethropolis/worldedit/internal/types"

// Mode selects how the driver resolves a pointer position into a location.
type Mode int

const (
	// ModeArbitrary places at the pointer's ground-plane position.
	ModeArbitrary Mode = iota
	// ModeSurface only reports locations that hit scene geometry, with the hit height.
	ModeSurface
)

func (m Mode) String() string {
	if m == ModeSurface {
		return "surface"
	}
	return "arbitrary"
}

// ParseMode maps a config value to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "surface":
		return ModeSurface, true
	case "arbitrary", "":
		return ModeArbitrary, true
	}
	return ModeArbitrary, false
}

// DragCallback receives one gesture. Returning true releases the callback.
type DragCallback func(accept bool, location types.Vec3) bool

// Driver delivers gestures to a callback until it returns true.
type Driver interface {
	BeginDrag(mode Mode, label string, cb DragCallback)
}

// ErrorReporter shows a transient, clickable, user-facing error.
type ErrorReporter interface {
	ReportError(message string, onClick func())
}
