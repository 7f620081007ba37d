// Package history provides undo/redo over executed commands, plus the save and
// autosave checkpoints that decide whether the document is dirty.
package history

import (
	"sync"

	"github.com/bethropolis/worldedit/internal/command"
	"github.com/bethropolis/worldedit/internal/event"
	"github.com/bethropolis/worldedit/internal/logger"
)

const DefaultMaxHistory = 500

// entry pairs a command with the sequence number it was pushed with. The
// number travels with the command between the stacks, so it identifies
// "this push" the way the command reference would.
type entry struct {
	cmd command.Command
	seq uint64
}

// emptySeq marks an empty undo stack.
const emptySeq uint64 = 0

// Manager owns the undo and redo stacks. It never executes commands on Push;
// the caller has already done that.
type Manager struct {
	mutex        sync.Mutex
	events       *event.Manager
	undoStack    []entry
	redoStack    []entry
	lastSeq      uint64
	head         uint64 // undo top at the last save
	autoSaveHead uint64 // undo top at the last autosave
	maxHistory   int
}

// NewManager creates a history manager. events may be nil.
func NewManager(events *event.Manager, maxHistory int) *Manager {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &Manager{
		events:     events,
		undoStack:  make([]entry, 0, 16),
		maxHistory: maxHistory,
	}
}

// Push records an executed command and discards the redo branch.
// Commands that are not undoable are never recorded.
func (m *Manager) Push(cmd command.Command) {
	if cmd == nil {
		return
	}
	if !cmd.Undoable() {
		logger.Warnf("History: refusing to record non-undoable command %q", cmd.Description())
		return
	}

	m.mutex.Lock()
	m.redoStack = m.redoStack[:0]
	m.lastSeq++
	m.undoStack = append(m.undoStack, entry{cmd: cmd, seq: m.lastSeq})
	if len(m.undoStack) > m.maxHistory {
		m.undoStack = m.undoStack[len(m.undoStack)-m.maxHistory:]
	}
	logger.DebugTagf("history", "Pushed %q (seq %d). Undo: %d", cmd.Description(), m.lastSeq, len(m.undoStack))
	m.mutex.Unlock()

	m.notify()
}

// Undo reverts the most recent command. It returns false when there is nothing to undo.
func (m *Manager) Undo() bool {
	m.mutex.Lock()
	if len(m.undoStack) == 0 {
		m.mutex.Unlock()
		logger.DebugTagf("history", "Nothing to undo.")
		return false
	}
	e := m.undoStack[len(m.undoStack)-1]
	m.undoStack = m.undoStack[:len(m.undoStack)-1]
	m.mutex.Unlock()

	// Run outside the lock: commands dispatch events whose handlers query history.
	logger.DebugTagf("history", "Undoing %q (seq %d)", e.cmd.Description(), e.seq)
	e.cmd.UnExecute()

	m.mutex.Lock()
	m.redoStack = append(m.redoStack, e)
	m.mutex.Unlock()

	m.notify()
	return true
}

// Redo re-executes the most recently undone command.
func (m *Manager) Redo() bool {
	m.mutex.Lock()
	if len(m.redoStack) == 0 {
		m.mutex.Unlock()
		logger.DebugTagf("history", "Nothing to redo.")
		return false
	}
	e := m.redoStack[len(m.redoStack)-1]
	m.redoStack = m.redoStack[:len(m.redoStack)-1]
	m.mutex.Unlock()

	logger.DebugTagf("history", "Redoing %q (seq %d)", e.cmd.Description(), e.seq)
	e.cmd.Execute()

	m.mutex.Lock()
	m.undoStack = append(m.undoStack, e)
	m.mutex.Unlock()

	m.notify()
	return true
}

// CanUndo returns true if there are commands that can be undone.
func (m *Manager) CanUndo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.undoStack) > 0
}

// CanRedo returns true if there are commands that can be redone.
func (m *Manager) CanRedo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.redoStack) > 0
}

// UndoDescription describes the command Undo would revert, or "".
func (m *Manager) UndoDescription() string {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if len(m.undoStack) == 0 {
		return ""
	}
	return m.undoStack[len(m.undoStack)-1].cmd.Description()
}

// RedoDescription describes the command Redo would apply, or "".
func (m *Manager) RedoDescription() string {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if len(m.redoStack) == 0 {
		return ""
	}
	return m.redoStack[len(m.redoStack)-1].cmd.Description()
}

// Dirty reports whether the undo top differs from the last save checkpoint.
func (m *Manager) Dirty() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.topLocked() != m.head
}

// AutoSaveDirty reports whether the undo top differs from the last autosave checkpoint.
func (m *Manager) AutoSaveDirty() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.topLocked() != m.autoSaveHead
}

// ResetDirty records a save: both checkpoints move to the current undo top.
func (m *Manager) ResetDirty() {
	m.mutex.Lock()
	m.head = m.topLocked()
	m.autoSaveHead = m.head
	m.mutex.Unlock()
	m.notify()
}

// ResetAutoSaveDirty records an autosave without touching the save checkpoint.
func (m *Manager) ResetAutoSaveDirty() {
	m.mutex.Lock()
	m.autoSaveHead = m.topLocked()
	m.mutex.Unlock()
	m.notify()
}

// Clear discards all history and checkpoints. Call this on document load.
func (m *Manager) Clear() {
	m.mutex.Lock()
	m.undoStack = m.undoStack[:0]
	m.redoStack = m.redoStack[:0]
	m.head = emptySeq
	m.autoSaveHead = emptySeq
	m.mutex.Unlock()
	logger.DebugTagf("history", "Cleared.")
	m.notify()
}

func (m *Manager) topLocked() uint64 {
	if len(m.undoStack) == 0 {
		return emptySeq
	}
	return m.undoStack[len(m.undoStack)-1].seq
}

func (m *Manager) notify() {
	if m.events == nil {
		return
	}
	m.mutex.Lock()
	top := m.topLocked()
	data := event.HistoryChangedData{
		CanUndo:       len(m.undoStack) > 0,
		CanRedo:       len(m.redoStack) > 0,
		Dirty:         top != m.head,
		AutoSaveDirty: top != m.autoSaveHead,
	}
	m.mutex.Unlock()
	m.events.Dispatch(event.TypeHistoryChanged, data)
}
