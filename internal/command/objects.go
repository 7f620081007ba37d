package command

import (
	"fmt"

	"github.com/bethropolis/worldedit/internal/logger"
	"github.com/bethropolis/worldedit/internal/world"
)

// AddObjectsCommand adds objects to a container and selects them.
// The payload is built on the first Execute and the same instances are
// re-added on every redo.
type AddObjectsCommand struct {
	desc      string
	container world.Container
	selection *world.Selection
	build     func() []world.Object

	payload       []world.Object
	prevSelection []world.Object
}

// NewAddObjectsCommand creates an add command. selection may be nil.
func NewAddObjectsCommand(desc string, container world.Container, selection *world.Selection, build func() []world.Object) *AddObjectsCommand {
	return &AddObjectsCommand{desc: desc, container: container, selection: selection, build: build}
}

// NewAddObjectCommand adds a single lazily built object.
func NewAddObjectCommand(desc string, container world.Container, selection *world.Selection, build func() world.Object) *AddObjectsCommand {
	return NewAddObjectsCommand(desc, container, selection, func() []world.Object {
		return []world.Object{build()}
	})
}

func (c *AddObjectsCommand) Execute() {
	if c.payload == nil {
		c.payload = c.build()
	}
	for _, o := range c.payload {
		c.container.Add(o)
	}
	if c.selection != nil {
		c.prevSelection = c.selection.Objects()
		c.selection.Set(c.payload...)
	}
}

func (c *AddObjectsCommand) UnExecute() {
	if c.payload == nil {
		logger.Warnf("Command: %q undone before it was executed", c.desc)
		return
	}
	for i := len(c.payload) - 1; i >= 0; i-- {
		c.container.Remove(c.payload[i])
	}
	if c.selection != nil {
		c.selection.Set(c.prevSelection...)
	}
}

func (c *AddObjectsCommand) Undoable() bool      { return true }
func (c *AddObjectsCommand) Description() string { return c.desc }

// Payload returns the objects built by the first Execute, or nil before that.
func (c *AddObjectsCommand) Payload() []world.Object { return c.payload }

// indexedContainer is implemented by containers that keep order, like *world.Collection.
type indexedContainer interface {
	IndexOf(obj world.Object) int
	Insert(index int, obj world.Object)
}

type removal struct {
	obj   world.Object
	from  world.Container
	index int
}

// DeleteObjectsCommand removes objects from their containers and deselects them.
// Undo puts them back where they were and restores the selection.
type DeleteObjectsCommand struct {
	selection     *world.Selection
	removals      []removal
	prevSelection []world.Object
}

// NewDeleteObjectsCommand resolves each object's container now, so later moves don't confuse undo.
func NewDeleteObjectsCommand(w *world.World, objs []world.Object) *DeleteObjectsCommand {
	c := &DeleteObjectsCommand{selection: w.Selection}
	for _, o := range objs {
		if from, ok := w.ContainerOf(o); ok {
			c.removals = append(c.removals, removal{obj: o, from: from, index: -1})
		}
	}
	return c
}

// Empty reports whether none of the objects were found in the world.
func (c *DeleteObjectsCommand) Empty() bool { return len(c.removals) == 0 }

func (c *DeleteObjectsCommand) Execute() {
	if c.selection != nil {
		c.prevSelection = c.selection.Objects()
	}
	for i := range c.removals {
		r := &c.removals[i]
		if ic, ok := r.from.(indexedContainer); ok {
			r.index = ic.IndexOf(r.obj)
		}
		if c.selection != nil {
			c.selection.Remove(r.obj)
		}
		r.from.Remove(r.obj)
	}
}

func (c *DeleteObjectsCommand) UnExecute() {
	for i := len(c.removals) - 1; i >= 0; i-- {
		r := c.removals[i]
		if ic, ok := r.from.(indexedContainer); ok && r.index >= 0 {
			ic.Insert(r.index, r.obj)
		} else {
			r.from.Add(r.obj)
		}
	}
	if c.selection != nil {
		c.selection.Set(c.prevSelection...)
	}
}

func (c *DeleteObjectsCommand) Undoable() bool { return true }

func (c *DeleteObjectsCommand) Description() string {
	if len(c.removals) == 1 {
		return "Delete " + c.removals[0].obj.Name()
	}
	return fmt.Sprintf("Delete %d objects", len(c.removals))
}

// MoveObjectsCommand moves objects from their current collections into dest.
type MoveObjectsCommand struct {
	dest  *world.Collection
	moves []removal
}

func NewMoveObjectsCommand(w *world.World, objs []world.Object, dest *world.Collection) *MoveObjectsCommand {
	c := &MoveObjectsCommand{dest: dest}
	for _, o := range objs {
		from, ok := w.ContainerOf(o)
		if !ok || from == dest {
			continue
		}
		c.moves = append(c.moves, removal{obj: o, from: from, index: -1})
	}
	return c
}

func (c *MoveObjectsCommand) Empty() bool { return len(c.moves) == 0 }

func (c *MoveObjectsCommand) Execute() {
	for i := range c.moves {
		m := &c.moves[i]
		if ic, ok := m.from.(indexedContainer); ok {
			m.index = ic.IndexOf(m.obj)
		}
		m.from.Remove(m.obj)
		c.dest.Add(m.obj)
	}
}

func (c *MoveObjectsCommand) UnExecute() {
	for i := len(c.moves) - 1; i >= 0; i-- {
		m := c.moves[i]
		c.dest.Remove(m.obj)
		if ic, ok := m.from.(indexedContainer); ok && m.index >= 0 {
			ic.Insert(m.index, m.obj)
		} else {
			m.from.Add(m.obj)
		}
	}
}

func (c *MoveObjectsCommand) Undoable() bool { return true }

func (c *MoveObjectsCommand) Description() string {
	return fmt.Sprintf("Move %d object(s) to %s", len(c.moves), c.dest.Name())
}

// PropertyChangeCommand sets one property through a captured setter.
type PropertyChangeCommand[T any] struct {
	desc     string
	set      func(T)
	oldValue T
	newValue T
}

func NewPropertyChangeCommand[T any](desc string, set func(T), oldValue, newValue T) *PropertyChangeCommand[T] {
	return &PropertyChangeCommand[T]{desc: desc, set: set, oldValue: oldValue, newValue: newValue}
}

func (c *PropertyChangeCommand[T]) Execute()            { c.set(c.newValue) }
func (c *PropertyChangeCommand[T]) UnExecute()          { c.set(c.oldValue) }
func (c *PropertyChangeCommand[T]) Undoable() bool      { return true }
func (c *PropertyChangeCommand[T]) Description() string { return c.desc }
