// internal/input/action.go
package input

// Action represents a command or operation to be performed by the editor.
type Action int

const (
	// --- Meta Actions ---
	ActionUnknown Action = iota
	ActionQuit
	ActionForceQuit // Quit without checking modified status
	ActionSave
	ActionCommandLine // open the ':' command line

	// --- History ---
	ActionUndo
	ActionRedo

	// --- Cursor Movement (world cursor on the grid) ---
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionZoomIn
	ActionZoomOut
	ActionCenterView

	// --- Placement gestures ---
	ActionAccept // place the point under the cursor
	ActionDone   // stop placing

	// --- Object creation ---
	ActionPlaceRegion
	ActionPlaceRoad
	ActionPlaceMarker
	ActionPlaceLight
	ActionPlaceTree
	ActionPlaceParticles

	// --- Editing ---
	ActionSelectAtCursor
	ActionToggleSelectAtCursor
	ActionSelectNext
	ActionAppendPoints
	ActionInsertPoints
	ActionDeletePoint
	ActionDelete
	ActionCopy
	ActionPaste
	ActionDuplicate
	ActionRename
	ActionMoveToCollection
	ActionNudgeUp
	ActionNudgeDown
	ActionNudgeLeft
	ActionNudgeRight
	ActionTogglePlacementMode
)

var actionNames = map[Action]string{
	ActionQuit:                 "quit",
	ActionForceQuit:            "force-quit",
	ActionSave:                 "save",
	ActionCommandLine:          "command-line",
	ActionUndo:                 "undo",
	ActionRedo:                 "redo",
	ActionMoveUp:               "move-up",
	ActionMoveDown:             "move-down",
	ActionMoveLeft:             "move-left",
	ActionMoveRight:            "move-right",
	ActionZoomIn:               "zoom-in",
	ActionZoomOut:              "zoom-out",
	ActionCenterView:           "center-view",
	ActionAccept:               "accept",
	ActionDone:                 "done",
	ActionPlaceRegion:          "place-region",
	ActionPlaceRoad:            "place-road",
	ActionPlaceMarker:          "place-marker",
	ActionPlaceLight:           "place-light",
	ActionPlaceTree:            "place-tree",
	ActionPlaceParticles:       "place-particles",
	ActionSelectAtCursor:       "select",
	ActionToggleSelectAtCursor: "toggle-select",
	ActionSelectNext:           "select-next",
	ActionAppendPoints:         "append-points",
	ActionInsertPoints:         "insert-points",
	ActionDeletePoint:          "delete-point",
	ActionDelete:               "delete",
	ActionCopy:                 "copy",
	ActionPaste:                "paste",
	ActionDuplicate:            "duplicate",
	ActionRename:               "rename",
	ActionMoveToCollection:     "move-to-collection",
	ActionNudgeUp:              "nudge-up",
	ActionNudgeDown:            "nudge-down",
	ActionNudgeLeft:            "nudge-left",
	ActionNudgeRight:           "nudge-right",
	ActionTogglePlacementMode:  "toggle-placement-mode",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ActionEvent represents a decoded input event resulting in an action.
type ActionEvent struct {
	Action Action
	Rune   rune
}
