package app

import (
	"fmt"
	"path/filepath"

	"github.com/bethropolis/worldedit/internal/logger"
	"github.com/bethropolis/worldedit/internal/types"
)

// openDocument loads path, ending any placement session first. The command
// environment follows the editor to the loaded world.
func (a *App) openDocument(path string) error {
	a.driver.Cancel()
	if err := a.editor.Open(path); err != nil {
		return fmt.Errorf("failed to open '%s': %w", path, err)
	}
	a.env.World = a.editor.World
	a.preview = nil
	a.view.SetCursor(types.Vec3Zero)
	a.view.CenterOnCursor()
	return nil
}

func (a *App) save(path string) bool {
	if err := a.editor.Save(path); err != nil {
		logger.Errorf("App: save failed: %v", err)
		a.statusBar.ReportError(fmt.Sprintf("Save failed: %v", err), nil)
		return false
	}
	a.statusBar.SetTemporaryMessage("Saved %s", filepath.Base(a.editor.DocumentPath()))
	return true
}

// autoSave runs on the UI goroutine when a plugin requests it.
func (a *App) autoSave() {
	wrote, err := a.editor.AutoSave()
	if err != nil {
		logger.Errorf("App: %v", err)
		a.statusBar.ReportError(err.Error(), nil)
		return
	}
	if wrote {
		logger.Infof("App: autosaved %s", a.editor.DocumentPath())
	}
}

// quitChecked quits unless there are unsaved changes and force is false.
func (a *App) quitChecked(force bool) {
	if !force && a.editor.Dirty() {
		a.statusBar.ReportError("No write since last change (use :q! or Ctrl+Q)", nil)
		return
	}
	a.driver.Cancel()
	a.requestQuit()
}
