// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps specific key events to editor actions.
type Keymap map[tcell.Key]Action
type RuneKeymap map[rune]Action
type ModKeymap map[tcell.ModMask]Keymap

// InputProcessor translates tcell events into ActionEvents.
type InputProcessor struct {
	keymap     Keymap
	runeKeymap RuneKeymap
	modKeymap  ModKeymap
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:     make(Keymap),
		runeKeymap: make(RuneKeymap),
		modKeymap:  make(ModKeymap),
	}
	p.loadDefaultBindings()
	return p
}

func (p *InputProcessor) loadDefaultBindings() {
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyEnter] = ActionAccept
	p.keymap[tcell.KeyEscape] = ActionDone
	p.keymap[tcell.KeyDelete] = ActionDelete
	p.keymap[tcell.KeyTab] = ActionSelectNext

	ctrlMap := make(Keymap)
	ctrlMap[tcell.KeyCtrlS] = ActionSave
	ctrlMap[tcell.KeyCtrlQ] = ActionForceQuit
	ctrlMap[tcell.KeyCtrlZ] = ActionUndo
	ctrlMap[tcell.KeyCtrlY] = ActionRedo
	ctrlMap[tcell.KeyCtrlC] = ActionCopy
	ctrlMap[tcell.KeyCtrlV] = ActionPaste
	ctrlMap[tcell.KeyCtrlD] = ActionDuplicate
	p.modKeymap[tcell.ModCtrl] = ctrlMap

	shiftMap := make(Keymap)
	shiftMap[tcell.KeyUp] = ActionNudgeUp
	shiftMap[tcell.KeyDown] = ActionNudgeDown
	shiftMap[tcell.KeyLeft] = ActionNudgeLeft
	shiftMap[tcell.KeyRight] = ActionNudgeRight
	p.modKeymap[tcell.ModShift] = shiftMap

	p.runeKeymap[' '] = ActionAccept
	p.runeKeymap['q'] = ActionQuit
	p.runeKeymap[':'] = ActionCommandLine
	p.runeKeymap['u'] = ActionUndo
	p.runeKeymap['U'] = ActionRedo
	p.runeKeymap['r'] = ActionPlaceRegion
	p.runeKeymap['d'] = ActionPlaceRoad
	p.runeKeymap['m'] = ActionPlaceMarker
	p.runeKeymap['l'] = ActionPlaceLight
	p.runeKeymap['t'] = ActionPlaceTree
	p.runeKeymap['p'] = ActionPlaceParticles
	p.runeKeymap['s'] = ActionSelectAtCursor
	p.runeKeymap['S'] = ActionToggleSelectAtCursor
	p.runeKeymap['a'] = ActionAppendPoints
	p.runeKeymap['i'] = ActionInsertPoints
	p.runeKeymap['x'] = ActionDeletePoint
	p.runeKeymap['n'] = ActionRename
	p.runeKeymap['c'] = ActionMoveToCollection
	p.runeKeymap['g'] = ActionTogglePlacementMode
	p.runeKeymap['+'] = ActionZoomIn
	p.runeKeymap['-'] = ActionZoomOut
	p.runeKeymap['0'] = ActionCenterView
	p.runeKeymap['h'] = ActionMoveLeft
	p.runeKeymap['j'] = ActionMoveDown
	p.runeKeymap['k'] = ActionMoveUp
	p.runeKeymap['L'] = ActionMoveRight
}

// Bind maps a plain rune to action, replacing any previous binding.
func (p *InputProcessor) Bind(r rune, action Action) {
	p.runeKeymap[r] = action
}

// ProcessEvent takes a tcell key event and returns the corresponding ActionEvent.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()
	runeVal := ev.Rune()

	// 1. Modifier + key combinations
	if modKeyMap, ok := p.modKeymap[mod]; ok {
		if action, ok := modKeyMap[key]; ok {
			return ActionEvent{Action: action}
		}
	}
	// Ctrl+letter keys already carry Ctrl in the key itself
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		mod &^= tcell.ModCtrl
	}

	// 2. Plain keys
	if mod == tcell.ModNone || mod == tcell.ModShift {
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action}
		}
	}

	// 3. Runes; shifted letters arrive with ModShift on some terminals
	if key == tcell.KeyRune && (mod == tcell.ModNone || mod == tcell.ModShift) {
		if action, ok := p.runeKeymap[runeVal]; ok {
			return ActionEvent{Action: action, Rune: runeVal}
		}
	}

	return ActionEvent{Action: ActionUnknown, Rune: runeVal}
}

// MouseAction maps a mouse button press to a placement gesture.
func MouseAction(buttons tcell.ButtonMask) Action {
	switch {
	case buttons&tcell.Button1 != 0:
		return ActionAccept
	case buttons&tcell.Button2 != 0, buttons&tcell.Button3 != 0:
		return ActionDone
	case buttons&tcell.WheelUp != 0:
		return ActionZoomIn
	case buttons&tcell.WheelDown != 0:
		return ActionZoomOut
	}
	return ActionUnknown
}
