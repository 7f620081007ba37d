// internal/core/editor.go
package core

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bethropolis/worldedit/internal/command"
	"github.com/bethropolis/worldedit/internal/core/history"
	"github.com/bethropolis/worldedit/internal/event"
	"github.com/bethropolis/worldedit/internal/logger"
	"github.com/bethropolis/worldedit/internal/world"
)

// Editor ties the world to its history and the executor that records into it.
// Methods must be called from the UI goroutine, except DocumentPath and the
// History queries, which are safe from any goroutine.
type Editor struct {
	World    *world.World
	History  *history.Manager
	Executor *Executor

	eventManager *event.Manager
	pathMu       sync.RWMutex
	docPath      string
	// autoLoad loads every collection when a document is opened.
	autoLoad bool
}

// NewEditor creates an editor with an empty world.
func NewEditor(events *event.Manager, maxHistory int) *Editor {
	h := history.NewManager(events, maxHistory)
	return &Editor{
		World:        world.New("untitled", events),
		History:      h,
		Executor:     NewExecutor(h),
		eventManager: events,
	}
}

// SetAutoLoadCollections makes Open load unloaded collections immediately.
func (e *Editor) SetAutoLoadCollections(on bool) { e.autoLoad = on }

// DocumentPath is the path Save writes to.
func (e *Editor) DocumentPath() string {
	e.pathMu.RLock()
	defer e.pathMu.RUnlock()
	return e.docPath
}

func (e *Editor) setDocumentPath(path string) {
	e.pathMu.Lock()
	e.docPath = path
	e.pathMu.Unlock()
}

// Do executes and records cmd.
func (e *Editor) Do(cmd command.Command) { e.Executor.Do(cmd) }

// Run builds a command with f and executes it; false means the user cancelled.
func (e *Editor) Run(f command.Factory) bool { return e.Executor.Run(f) }

// Undo reverts the last command and describes it, or returns "" when there was nothing.
func (e *Editor) Undo() string {
	desc := e.History.UndoDescription()
	if !e.History.Undo() {
		return ""
	}
	return desc
}

// Redo re-applies the last undone command and describes it.
func (e *Editor) Redo() string {
	desc := e.History.RedoDescription()
	if !e.History.Redo() {
		return ""
	}
	return desc
}

// Dirty reports unsaved changes.
func (e *Editor) Dirty() bool { return e.History.Dirty() }

// Open loads path into the world and discards history. A missing file starts
// a new, empty document that will be created on first save.
func (e *Editor) Open(path string) error {
	if path == "" {
		return errors.New("no document path")
	}
	err := e.World.LoadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Infof("Editor: %s does not exist, starting a new document", path)
		e.World = world.New(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), e.eventManager)
		defer e.eventManager.Dispatch(event.TypeDocumentLoaded, event.DocumentData{FilePath: path})
	case err != nil:
		return err
	}
	if e.autoLoad {
		for _, c := range e.World.Collections() {
			c.Load()
		}
	}
	e.setDocumentPath(path)
	e.History.Clear()
	return nil
}

// Save writes the document to path, or to the current document path when
// path is empty, and marks the history clean.
func (e *Editor) Save(path string) error {
	if path == "" {
		path = e.DocumentPath()
	}
	if path == "" {
		return errors.New("no file name")
	}
	if err := e.World.SaveFile(path); err != nil {
		return err
	}
	e.setDocumentPath(path)
	e.History.ResetDirty()
	return nil
}

// AutoSave writes a compressed snapshot next to the document when there are
// changes since the last autosave. It reports whether a snapshot was written.
func (e *Editor) AutoSave() (bool, error) {
	if !e.History.AutoSaveDirty() {
		return false, nil
	}
	docPath := e.DocumentPath()
	if docPath == "" {
		return false, errors.New("autosave needs a document path")
	}
	path := world.AutoSavePath(docPath)
	if err := e.World.WriteAutoSave(path); err != nil {
		return false, fmt.Errorf("autosave failed: %w", err)
	}
	e.History.ResetAutoSaveDirty()
	return true, nil
}
