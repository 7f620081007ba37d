package history

import (
	"testing"

	"github.com/bethropolis/worldedit/internal/event"
)

// recordingCommand adds/removes its name in a shared list.
type recordingCommand struct {
	name     string
	scene    *[]string
	undoable bool
}

func newCmd(name string, scene *[]string) *recordingCommand {
	return &recordingCommand{name: name, scene: scene, undoable: true}
}

func (c *recordingCommand) Execute() { *c.scene = append(*c.scene, c.name) }
func (c *recordingCommand) UnExecute() {
	s := *c.scene
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == c.name {
			*c.scene = append(s[:i], s[i+1:]...)
			return
		}
	}
}
func (c *recordingCommand) Undoable() bool      { return c.undoable }
func (c *recordingCommand) Description() string { return "add " + c.name }

func do(m *Manager, c *recordingCommand) {
	c.Execute()
	m.Push(c)
}

func TestEmptyManagerIsClean(t *testing.T) {
	m := NewManager(nil, 0)
	if m.Dirty() || m.AutoSaveDirty() || m.CanUndo() || m.CanRedo() {
		t.Fatalf("empty manager should be clean with nothing to undo or redo")
	}
	if m.Undo() || m.Redo() {
		t.Fatalf("undo/redo on empty stacks must be no-ops")
	}
}

func TestPushClearsRedo(t *testing.T) {
	var scene []string
	m := NewManager(nil, 0)
	do(m, newCmd("a", &scene))
	do(m, newCmd("b", &scene))
	m.Undo()
	m.Undo()
	if !m.CanRedo() {
		t.Fatalf("expected redo after undo")
	}
	do(m, newCmd("c", &scene))
	if m.CanRedo() {
		t.Fatalf("push must clear the redo stack")
	}
	if len(scene) != 1 || scene[0] != "c" {
		t.Fatalf("unexpected scene %v", scene)
	}
	if m.Redo() {
		t.Fatalf("redo after push must be a no-op")
	}
}

func TestUndoRedoOrder(t *testing.T) {
	var scene []string
	m := NewManager(nil, 0)
	do(m, newCmd("a", &scene))
	do(m, newCmd("b", &scene))

	if m.UndoDescription() != "add b" {
		t.Fatalf("undo description: %q", m.UndoDescription())
	}
	m.Undo()
	if len(scene) != 1 || scene[0] != "a" || m.RedoDescription() != "add b" {
		t.Fatalf("after undo: %v / %q", scene, m.RedoDescription())
	}
	m.Redo()
	if len(scene) != 2 || scene[1] != "b" || m.CanRedo() {
		t.Fatalf("after redo: %v", scene)
	}
}

func TestDirtyTracksSaveCheckpoint(t *testing.T) {
	var scene []string
	m := NewManager(nil, 0)
	a := newCmd("a", &scene)
	do(m, a)
	if !m.Dirty() || !m.CanUndo() || m.CanRedo() {
		t.Fatalf("push should make the document dirty")
	}

	m.ResetDirty()
	if m.Dirty() || m.AutoSaveDirty() {
		t.Fatalf("reset should clean both checkpoints")
	}

	m.Undo()
	if !m.Dirty() {
		t.Fatalf("undo below the checkpoint is dirty")
	}
	if m.CanUndo() || !m.CanRedo() || len(scene) != 0 {
		t.Fatalf("unexpected state after undo")
	}

	m.Redo()
	if m.Dirty() {
		t.Fatalf("redo back to the checkpoint command should be clean")
	}
	if len(scene) != 1 {
		t.Fatalf("redo should re-add")
	}

	do(m, newCmd("b", &scene))
	if !m.Dirty() {
		t.Fatalf("push after checkpoint should be dirty")
	}
	m.Undo()
	if m.Dirty() {
		t.Fatalf("undo back to checkpoint top should be clean")
	}
}

func TestSameValueDifferentPushIsDirty(t *testing.T) {
	var scene []string
	m := NewManager(nil, 0)
	do(m, newCmd("a", &scene))
	m.ResetDirty()
	m.Undo()
	// a fresh push of an equivalent command is a different history entry
	do(m, newCmd("a", &scene))
	if !m.Dirty() {
		t.Fatalf("checkpoint must compare push identity, not command value")
	}
}

func TestAutoSaveCheckpointIsIndependent(t *testing.T) {
	var scene []string
	m := NewManager(nil, 0)
	do(m, newCmd("a", &scene))
	m.ResetAutoSaveDirty()
	if m.AutoSaveDirty() {
		t.Fatalf("autosave reset should clean autosave state")
	}
	if !m.Dirty() {
		t.Fatalf("autosave must not clear the save checkpoint")
	}
	do(m, newCmd("b", &scene))
	if !m.AutoSaveDirty() {
		t.Fatalf("push after autosave should be autosave-dirty")
	}
	m.ResetDirty()
	if m.AutoSaveDirty() {
		t.Fatalf("a save also satisfies autosave")
	}
}

func TestClearDropsHistoryAndCheckpoints(t *testing.T) {
	var scene []string
	m := NewManager(nil, 0)
	do(m, newCmd("a", &scene))
	m.ResetDirty()
	do(m, newCmd("b", &scene))
	m.Undo()

	m.Clear()
	if m.CanUndo() || m.CanRedo() || m.Dirty() || m.AutoSaveDirty() {
		t.Fatalf("clear should leave an empty, clean manager")
	}
}

func TestNonUndoableIsNotRecorded(t *testing.T) {
	var scene []string
	m := NewManager(nil, 0)
	c := newCmd("copy", &scene)
	c.undoable = false
	do(m, c)
	if m.CanUndo() || m.Dirty() {
		t.Fatalf("non-undoable command must not be recorded")
	}
}

func TestMaxHistoryEvictsOldest(t *testing.T) {
	var scene []string
	m := NewManager(nil, 2)
	do(m, newCmd("a", &scene))
	do(m, newCmd("b", &scene))
	do(m, newCmd("c", &scene))
	if !m.Undo() || !m.Undo() {
		t.Fatalf("expected two undos")
	}
	if m.Undo() {
		t.Fatalf("oldest entry should have been evicted")
	}
	if len(scene) != 1 || scene[0] != "a" {
		t.Fatalf("evicted command stays applied, got %v", scene)
	}
}

func TestHistoryChangedEvents(t *testing.T) {
	events := event.NewManager()
	var last event.HistoryChangedData
	count := 0
	events.Subscribe(event.TypeHistoryChanged, func(e event.Event) bool {
		last = e.Data.(event.HistoryChangedData)
		count++
		return false
	})

	var scene []string
	m := NewManager(events, 0)
	do(m, newCmd("a", &scene))
	if count != 1 || !last.CanUndo || !last.Dirty {
		t.Fatalf("push event: %d %+v", count, last)
	}
	m.Undo()
	if count != 2 || last.CanUndo || !last.CanRedo || last.Dirty {
		t.Fatalf("undo event: %d %+v", count, last)
	}
}

func TestHandlersMayQueryDuringUndo(t *testing.T) {
	m := NewManager(nil, 0)
	var scene []string
	probe := &probeCommand{m: m, scene: &scene}
	probe.Execute()
	m.Push(probe)
	m.Undo() // must not deadlock
	if !probe.sawCanRedo {
		t.Fatalf("probe should have queried the manager")
	}
}

type probeCommand struct {
	m          *Manager
	scene      *[]string
	sawCanRedo bool
}

func (p *probeCommand) Execute()            {}
func (p *probeCommand) UnExecute()          { _ = p.m.CanRedo(); p.sawCanRedo = true }
func (p *probeCommand) Undoable() bool      { return true }
func (p *probeCommand) Description() string { return "probe" }
