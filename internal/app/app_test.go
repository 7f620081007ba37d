package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bethropolis/worldedit/internal/config"
	"github.com/bethropolis/worldedit/internal/input"
	"github.com/bethropolis/worldedit/internal/types"
	"github.com/bethropolis/worldedit/internal/world"
	"github.com/gdamore/tcell/v2"
)

func newTestApp(t *testing.T) (*App, string) {
	t.Helper()
	cfg := config.NewDefaultConfig()
	cfg.Editor.SystemClipboard = false
	cfg.Plugins["autosave"] = map[string]interface{}{"enabled": false}

	path := filepath.Join(t.TempDir(), "town.yaml")
	a, err := NewAppWithScreen(cfg, tcell.NewSimulationScreen(""), path)
	if err != nil {
		t.Fatalf("NewAppWithScreen: %v", err)
	}
	t.Cleanup(func() {
		a.pluginManager.ShutdownPlugins()
		a.tuiManager.Close()
	})
	return a, path
}

func pressRune(a *App, r rune) {
	a.handleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

func pressKey(a *App, k tcell.Key) {
	a.handleEvent(tcell.NewEventKey(k, 0, tcell.ModNone))
}

// answer queues keys for the next modal prompt.
func answer(a *App, keys ...tcell.Key) {
	for _, k := range keys {
		a.events <- tcell.NewEventKey(k, 0, tcell.ModNone)
	}
}

func acceptAt(a *App, x, z float32) {
	a.view.SetCursor(types.NewVec3(x, 0, z))
	a.handleAction(input.ActionEvent{Action: input.ActionAccept})
}

func quitRequested(a *App) bool {
	select {
	case <-a.quit:
		return true
	default:
		return false
	}
}

func TestPlaceRegionUndoRedo(t *testing.T) {
	a, _ := newTestApp(t)

	answer(a, tcell.KeyEnter)
	pressRune(a, 'r')
	if !a.driver.Active() || !strings.Contains(a.driver.Label(), "Region 1") {
		t.Fatalf("region placement should be active, label %q", a.driver.Label())
	}

	acceptAt(a, 0, 0)
	acceptAt(a, 10, 0)
	acceptAt(a, 10, 10)
	if a.preview == nil || len(a.preview.Points) != 3 || !a.preview.Closed {
		t.Fatalf("preview should track three points of a closed outline: %+v", a.preview)
	}
	pressKey(a, tcell.KeyEscape)

	if a.driver.Active() || a.preview != nil {
		t.Fatalf("stop gesture should end the session")
	}
	w := a.editor.World
	if w.ObjectCount() != 1 {
		t.Fatalf("expected one boundary, got %d", w.ObjectCount())
	}
	b, ok := w.Objects()[0].(*world.Boundary)
	if !ok || b.PointCount() != 3 || b.Name() != "Region 1" || !b.Selected() {
		t.Fatalf("unexpected payload %+v", w.Objects()[0])
	}
	if !a.editor.Dirty() {
		t.Fatalf("placement should dirty the document")
	}

	pressRune(a, 'u')
	if w.ObjectCount() != 0 || a.driver.Active() {
		t.Fatalf("undo should remove the boundary")
	}
	pressRune(a, 'U')
	if w.ObjectCount() != 1 || w.Objects()[0] != b {
		t.Fatalf("redo should restore the same boundary")
	}
	if a.driver.Active() {
		t.Fatalf("redo of a completed placement must not start a new session")
	}
}

func TestUndoBlockedWhilePlacing(t *testing.T) {
	a, _ := newTestApp(t)
	answer(a, tcell.KeyEnter)
	pressRune(a, 'm')
	a.handleAction(input.ActionEvent{Action: input.ActionPlaceTree})

	pressRune(a, 'u')
	if !a.driver.Active() || !strings.Contains(a.statusBar.Text(), "Finish placing") {
		t.Fatalf("undo should wait for the session, status %q", a.statusBar.Text())
	}
}

func TestMouseClickPlacesMarker(t *testing.T) {
	a, _ := newTestApp(t)
	answer(a, tcell.KeyEnter)
	pressRune(a, 'm')

	_, height := a.tuiManager.Size()
	row := a.sceneHeight(height) / 2
	a.handleEvent(tcell.NewEventMouse(50, row, tcell.Button1, tcell.ModNone))
	a.handleEvent(tcell.NewEventMouse(50, row, tcell.ButtonNone, tcell.ModNone))

	objs := a.editor.World.Objects()
	if len(objs) != 1 {
		t.Fatalf("expected one marker, got %d", len(objs))
	}
	width, _ := a.tuiManager.Size()
	want := float32(50-width/2) * a.view.Scale() / 2
	if got := objs[0].(world.Positioned).Position(); got.X != want || got.Z != 0 {
		t.Fatalf("marker at %v, want x=%v", got, want)
	}
	if a.driver.Active() {
		t.Fatalf("single-point placement should end after one click")
	}
}

func TestQuitNeedsSave(t *testing.T) {
	a, path := newTestApp(t)
	if err := a.modeHandler.ExecuteCommand("at tree 1 2"); err != nil {
		t.Fatal(err)
	}
	pressRune(a, 'q')
	if quitRequested(a) {
		t.Fatalf("quit with unsaved changes should be refused")
	}
	if err := a.modeHandler.ExecuteCommand("wq"); err != nil {
		t.Fatal(err)
	}
	if !quitRequested(a) {
		t.Fatalf(":wq should quit")
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("document should be written: %v", err)
	}
}

func TestRequestedAutoSaveRunsOnUIGoroutine(t *testing.T) {
	a, path := newTestApp(t)
	if err := a.modeHandler.ExecuteCommand("at marker 0 0"); err != nil {
		t.Fatal(err)
	}
	if !a.editorAPI.IsAutoSaveDirty() {
		t.Fatalf("change should need an autosave")
	}
	a.editorAPI.RequestAutoSave()
	fn := <-a.posted
	fn()
	if a.editorAPI.IsAutoSaveDirty() || !a.editorAPI.IsDirty() {
		t.Fatalf("autosave resets only its own checkpoint")
	}
	if _, err := os.Stat(world.AutoSavePath(path)); err != nil {
		t.Fatalf("autosave file missing: %v", err)
	}
}

func TestCommandLineErrors(t *testing.T) {
	a, _ := newTestApp(t)
	tests := []string{"at rock 1 2", "at tree x 2", "mode sideways", "load Nowhere", "e"}
	for _, line := range tests {
		if err := a.modeHandler.ExecuteCommand(line); err == nil {
			t.Fatalf("%q should fail", line)
		}
	}
	if err := a.modeHandler.ExecuteCommand("mode surface"); err != nil {
		t.Fatal(err)
	}
	if err := a.modeHandler.ExecuteCommand("count"); err != nil {
		t.Fatalf("plugin command should be registered: %v", err)
	}
}

func TestCopyPasteWithMemoryClipboard(t *testing.T) {
	a, _ := newTestApp(t)
	if err := a.modeHandler.ExecuteCommand("at light 3 3"); err != nil {
		t.Fatal(err)
	}
	a.handleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	a.handleEvent(tcell.NewEventKey(tcell.KeyCtrlV, 0, tcell.ModCtrl))
	if n := a.editor.World.ObjectCount(); n != 2 {
		t.Fatalf("paste should add a copy, got %d objects", n)
	}
	objs := a.editor.World.Objects()
	if objs[0].ID() == objs[1].ID() {
		t.Fatalf("pasted object needs a new id")
	}
}

func TestClickingPlacementErrorFocusesRejectedPoint(t *testing.T) {
	a, _ := newTestApp(t)
	answer(a, tcell.KeyEnter)
	pressRune(a, 'r')

	acceptAt(a, 0, 0)
	acceptAt(a, 10, 10)
	acceptAt(a, 10, 0)
	acceptAt(a, 0, 10) // crosses the first edge
	if !strings.Contains(a.statusBar.Text(), "intersect") {
		t.Fatalf("self-intersection should be reported, status %q", a.statusBar.Text())
	}

	a.view.SetCursor(types.NewVec3(50, 0, 50))
	width, height := a.tuiManager.Size()
	a.handleEvent(tcell.NewEventMouse(width/2, height-1, tcell.Button1, tcell.ModNone))
	a.handleEvent(tcell.NewEventMouse(width/2, height-1, tcell.ButtonNone, tcell.ModNone))

	if got := a.view.Cursor(); got != types.NewVec3(0, 0, 10) {
		t.Fatalf("clicking the error should move the cursor to the rejected point, got %v", got)
	}
	if !a.driver.Active() {
		t.Fatalf("clicking the error must not end the session")
	}
}

func TestRunStopsWhenTerminalCloses(t *testing.T) {
	a, _ := newTestApp(t)

	done := make(chan error, 1)
	go func() { done <- a.Run() }()
	a.post(a.tuiManager.Close)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not return after the terminal closed")
	}
	if !quitRequested(a) {
		t.Fatalf("closing the terminal should stop the app")
	}

	posted := make(chan struct{})
	go func() {
		for i := 0; i < 2*cap(a.posted); i++ {
			a.post(func() {})
		}
		close(posted)
	}()
	select {
	case <-posted:
	case <-time.After(2 * time.Second):
		t.Fatalf("post blocked after the app stopped")
	}
}
