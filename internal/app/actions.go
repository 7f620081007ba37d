package app

import (
	"github.com/bethropolis/worldedit/internal/command"
	"github.com/bethropolis/worldedit/internal/input"
	"github.com/bethropolis/worldedit/internal/logger"
	"github.com/bethropolis/worldedit/internal/placement"
	"github.com/bethropolis/worldedit/internal/types"
	"github.com/bethropolis/worldedit/internal/world"
	"github.com/gdamore/tcell/v2"
)

var placeKinds = map[input.Action]world.Kind{
	input.ActionPlaceMarker:    world.KindMarker,
	input.ActionPlaceLight:     world.KindLight,
	input.ActionPlaceTree:      world.KindTree,
	input.ActionPlaceParticles: world.KindParticles,
}

// handleAction performs a normal-mode action and reports whether to redraw.
func (a *App) handleAction(ev input.ActionEvent) bool {
	logger.DebugTagf("action", "Action %v", ev.Action)

	if kind, ok := placeKinds[ev.Action]; ok {
		a.run(command.PlaceObjectFactory(a.env, kind))
		return true
	}

	switch ev.Action {
	case input.ActionQuit:
		a.quitChecked(false)
	case input.ActionForceQuit:
		a.quitChecked(true)
	case input.ActionSave:
		a.save("")

	case input.ActionUndo:
		a.undo()
	case input.ActionRedo:
		a.redo()

	case input.ActionMoveUp:
		a.view.MoveCursor(0, -1)
	case input.ActionMoveDown:
		a.view.MoveCursor(0, 1)
	case input.ActionMoveLeft:
		a.view.MoveCursor(-1, 0)
	case input.ActionMoveRight:
		a.view.MoveCursor(1, 0)
	case input.ActionZoomIn:
		a.view.Zoom(0.5)
	case input.ActionZoomOut:
		a.view.Zoom(2)
	case input.ActionCenterView:
		a.view.CenterOnCursor()

	case input.ActionAccept:
		a.accept()
	case input.ActionDone:
		a.done()

	case input.ActionPlaceRegion:
		a.run(command.RegionFactory(a.env))
	case input.ActionPlaceRoad:
		a.run(command.RoadFactory(a.env))

	case input.ActionSelectAtCursor:
		a.selectAtCursor(false)
	case input.ActionToggleSelectAtCursor:
		a.selectAtCursor(true)
	case input.ActionSelectNext:
		if next := nextObject(a.editor.World, a.editor.World.Selection.Active()); next != nil {
			a.editor.World.Selection.Set(next)
			a.view.SetCursor(next.Anchor())
		}

	case input.ActionAppendPoints:
		a.run(command.AppendPointsFactory(a.env))
	case input.ActionInsertPoints:
		a.run(command.InsertPointsFactory(a.env))
	case input.ActionDeletePoint:
		a.run(command.DeletePointFactory(a.env))
	case input.ActionDelete:
		a.run(command.DeleteFactory(a.env))
	case input.ActionCopy:
		a.run(command.CopyFactory(a.env))
	case input.ActionPaste:
		a.run(command.PasteFactory(a.env))
	case input.ActionDuplicate:
		a.run(command.DuplicateFactory(a.env))
	case input.ActionRename:
		a.run(command.RenameFactory(a.env))
	case input.ActionMoveToCollection:
		a.run(command.MoveFactory(a.env))
	case input.ActionNudgeUp:
		a.run(command.NudgeFactory(a.env, types.NewVec3(0, 0, -a.view.Scale())))
	case input.ActionNudgeDown:
		a.run(command.NudgeFactory(a.env, types.NewVec3(0, 0, a.view.Scale())))
	case input.ActionNudgeLeft:
		a.run(command.NudgeFactory(a.env, types.NewVec3(-a.view.Scale(), 0, 0)))
	case input.ActionNudgeRight:
		a.run(command.NudgeFactory(a.env, types.NewVec3(a.view.Scale(), 0, 0)))

	case input.ActionTogglePlacementMode:
		a.togglePlacementMode()

	default:
		return false
	}
	return true
}

// run builds and executes a command unless a placement session is active.
// A session owns the pointer until it finishes, so new commands wait.
func (a *App) run(f command.Factory) {
	if a.driver.Active() {
		a.statusBar.SetTemporaryMessage("Finish placing %s first (Esc to stop)", a.driver.Label())
		return
	}
	if !a.editor.Run(f) {
		logger.Debugf("App: command cancelled")
	}
}

func (a *App) undo() {
	if a.driver.Active() {
		a.statusBar.SetTemporaryMessage("Finish placing %s before undoing", a.driver.Label())
		return
	}
	if desc := a.editor.Undo(); desc != "" {
		a.statusBar.SetTemporaryMessage("Undo: %s", desc)
	} else {
		a.statusBar.SetTemporaryMessage("Nothing to undo")
	}
}

func (a *App) redo() {
	if a.driver.Active() {
		a.statusBar.SetTemporaryMessage("Finish placing %s before redoing", a.driver.Label())
		return
	}
	if desc := a.editor.Redo(); desc != "" {
		a.statusBar.SetTemporaryMessage("Redo: %s", desc)
	} else {
		a.statusBar.SetTemporaryMessage("Nothing to redo")
	}
}

// accept places a point at the cursor, or selects there when not placing.
func (a *App) accept() {
	if !a.driver.Active() {
		a.selectAtCursor(false)
		return
	}
	if !a.driver.Gesture(true, a.view.Cursor()) {
		a.statusBar.SetTemporaryMessage("No surface under the cursor")
	}
}

// done ends the placement session, or clears the selection when not placing.
func (a *App) done() {
	if a.driver.Active() {
		a.driver.Gesture(false, a.view.Cursor())
		return
	}
	a.editor.World.Selection.Clear()
}

func (a *App) selectAtCursor(toggle bool) {
	radius := pickRadius * a.view.Scale()
	obj := pickAt(a.editor.World, a.view.Cursor(), radius)
	switch {
	case obj != nil && toggle:
		a.editor.World.Selection.Toggle(obj)
	case obj != nil:
		a.editor.World.Selection.Set(obj)
	case !toggle:
		a.editor.World.Selection.Clear()
	}
}

// focusOn moves the cursor to location and centres the view there.
func (a *App) focusOn(location types.Vec3) {
	a.view.SetCursor(location)
	a.view.CenterOnCursor()
}

func (a *App) togglePlacementMode() {
	if a.env.Mode == placement.ModeSurface {
		a.setPlacementMode(placement.ModeArbitrary)
	} else {
		a.setPlacementMode(placement.ModeSurface)
	}
}

func (a *App) setPlacementMode(mode placement.Mode) {
	a.env.Mode = mode
	a.statusBar.SetMode(mode)
	a.statusBar.SetTemporaryMessage("Placement mode: %v", mode)
}

// handleMouse moves the cursor with the pointer and turns button presses
// into gestures. Holding a button down does not repeat the gesture.
func (a *App) handleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	buttons := ev.Buttons()
	pressed := buttons &^ a.lastButtons
	a.lastButtons = buttons & (tcell.Button1 | tcell.Button2 | tcell.Button3)

	width, height := a.tuiManager.Size()
	sceneHeight := a.sceneHeight(height)
	if y >= sceneHeight {
		if pressed&tcell.Button1 != 0 {
			return a.statusBar.HandleClick(x, y, width, height)
		}
		return false
	}

	a.view.SetCursor(a.view.CellToWorld(x, y, width, sceneHeight))
	switch input.MouseAction(pressed) {
	case input.ActionAccept:
		a.accept()
	case input.ActionDone:
		a.done()
	case input.ActionZoomIn:
		a.view.Zoom(0.5)
	case input.ActionZoomOut:
		a.view.Zoom(2)
	}
	return true
}
