package app

import (
	"github.com/bethropolis/worldedit/internal/modehandler"
)

// draw clears the screen and redraws all components.
func (a *App) draw() {
	a.updateStatusBarContent()

	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()
	sceneHeight := a.sceneHeight(height)

	a.view.Follow(width, sceneHeight)

	a.tuiManager.Clear()
	a.view.Draw(screen, width, sceneHeight, a.editor.World, a.activeTheme, a.preview)
	a.statusBar.Draw(screen, width, height)
	a.tuiManager.Show()
}

// updateStatusBarContent pushes current editor state to the status bar.
func (a *App) updateStatusBarContent() {
	a.statusBar.SetDocumentInfo(a.editor.DocumentPath(), a.editor.Dirty())
	a.statusBar.SetCursorInfo(a.view.Cursor())
	a.statusBar.SetMode(a.env.Mode)

	if a.modeHandler.GetCurrentMode() == modehandler.ModeCommand {
		a.statusBar.SetTemporaryMessage(":%s", a.modeHandler.GetCommandBuffer())
	}
}

// SetStatusMessage shows a temporary message and schedules a redraw.
func (a *App) SetStatusMessage(format string, args ...interface{}) {
	a.statusBar.SetTemporaryMessage(format, args...)
	a.requestRedraw()
}
