package modehandler

import (
	"github.com/bethropolis/worldedit/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// handleKeyCommand edits and runs the command line. Runes are taken
// literally so bound keys like 'q' can be typed.
func (mh *ModeHandler) handleKeyCommand(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyRune:
		mh.cmdBuffer = append(mh.cmdBuffer, ev.Rune())

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(mh.cmdBuffer) == 0 {
			mh.currentMode = ModeNormal
			mh.statusBar.ResetTemporaryMessage()
			logger.Debugf("ModeHandler: Exiting Command Mode via Backspace")
			return true
		}
		mh.cmdBuffer = mh.cmdBuffer[:len(mh.cmdBuffer)-1]

	case tcell.KeyEnter:
		line := string(mh.cmdBuffer)
		mh.cmdBuffer = mh.cmdBuffer[:0]
		mh.currentMode = ModeNormal
		mh.statusBar.ResetTemporaryMessage()
		if err := mh.ExecuteCommand(line); err != nil {
			mh.statusBar.ReportError(err.Error(), nil)
		}
		return true

	case tcell.KeyEscape:
		mh.currentMode = ModeNormal
		mh.cmdBuffer = mh.cmdBuffer[:0]
		mh.statusBar.ResetTemporaryMessage()
		logger.Debugf("ModeHandler: Canceled Command Mode via Escape")
		return true

	default:
		return false
	}

	mh.statusBar.SetTemporaryMessage(":%s", string(mh.cmdBuffer))
	return true
}
