package command

import (
	"github.com/bethropolis/worldedit/internal/event"
	"github.com/bethropolis/worldedit/internal/placement"
	"github.com/bethropolis/worldedit/internal/types"
	"github.com/bethropolis/worldedit/internal/world"
)

// Env bundles the collaborators commands and factories need. It is passed
// explicitly so commands can be built and tested without a running editor.
type Env struct {
	World     *world.World
	Runner    Runner
	Driver    placement.Driver
	Reporter  placement.ErrorReporter
	Prompter  Prompter
	Events    *event.Manager
	Clipboard Clipboard
	// Mode is the placement mode used for new objects and point edits.
	Mode placement.Mode
	// OnErrorClick runs with the rejected location when the user clicks a
	// placement error. May be nil.
	OnErrorClick func(location types.Vec3)
}

func (e *Env) reportError(msg string, onClick func()) {
	if e.Reporter != nil {
		e.Reporter.ReportError(msg, onClick)
	}
}

func (e *Env) dispatch(t event.Type, data interface{}) {
	e.Events.Dispatch(t, data)
}

func (e *Env) clipboard() Clipboard {
	if e.Clipboard == nil {
		return SystemClipboard{}
	}
	return e.Clipboard
}
