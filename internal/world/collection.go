package world

import (
	"github.com/bethropolis/worldedit/internal/event"
	"github.com/bethropolis/worldedit/internal/logger"
)

// Container is the scene node commands add objects to and remove them from.
type Container interface {
	Name() string
	Add(obj Object)
	Remove(obj Object) bool
	Objects() []Object
}

// Collection is a named Container. An unloaded collection keeps its content
// aside until Load is called; only loaded content is part of the scene.
type Collection struct {
	name    string
	loaded  bool
	objects []Object
	pending []Object // content of an unloaded collection
	world   *World
}

var _ Container = (*Collection)(nil)

func (c *Collection) Name() string { return c.name }

func (c *Collection) Loaded() bool { return c.loaded }

// Load brings the collection's pending content into the scene.
func (c *Collection) Load() {
	if c.loaded {
		return
	}
	c.loaded = true
	c.objects = append(c.objects, c.pending...)
	c.pending = nil
	logger.DebugTagf("world", "Collection %q loaded with %d object(s)", c.name, len(c.objects))
	c.world.dispatch(event.TypeCollectionLoaded, event.CollectionLoadedData{Collection: c.name})
}

// Add appends obj. Adding an object that is already present is a no-op.
func (c *Collection) Add(obj Object) {
	if c.indexOf(obj) >= 0 {
		logger.Warnf("World: %q already in collection %q", obj.Name(), c.name)
		return
	}
	if !c.loaded {
		logger.Warnf("World: adding %q to unloaded collection %q", obj.Name(), c.name)
	}
	c.objects = append(c.objects, obj)
	c.world.dispatch(event.TypeObjectAdded, event.ObjectData{
		ObjectID: obj.ID(), ObjectName: obj.Name(), Collection: c.name,
	})
}

// Remove deletes obj by identity and reports whether it was present.
func (c *Collection) Remove(obj Object) bool {
	i := c.indexOf(obj)
	if i < 0 {
		return false
	}
	c.objects = append(c.objects[:i], c.objects[i+1:]...)
	c.world.dispatch(event.TypeObjectRemoved, event.ObjectData{
		ObjectID: obj.ID(), ObjectName: obj.Name(), Collection: c.name,
	})
	return true
}

// Insert places obj at index, clamped to the current bounds.
func (c *Collection) Insert(index int, obj Object) {
	if c.indexOf(obj) >= 0 {
		return
	}
	if index < 0 {
		index = 0
	}
	if index > len(c.objects) {
		index = len(c.objects)
	}
	c.objects = append(c.objects, nil)
	copy(c.objects[index+1:], c.objects[index:])
	c.objects[index] = obj
	c.world.dispatch(event.TypeObjectAdded, event.ObjectData{
		ObjectID: obj.ID(), ObjectName: obj.Name(), Collection: c.name,
	})
}

// IndexOf returns obj's position, or -1.
func (c *Collection) IndexOf(obj Object) int { return c.indexOf(obj) }

// Contains reports whether obj is in the collection.
func (c *Collection) Contains(obj Object) bool { return c.indexOf(obj) >= 0 }

// Objects returns a copy of the loaded content in insertion order.
func (c *Collection) Objects() []Object {
	out := make([]Object, len(c.objects))
	copy(out, c.objects)
	return out
}

// Len counts loaded and pending objects.
func (c *Collection) Len() int { return len(c.objects) + len(c.pending) }

func (c *Collection) indexOf(obj Object) int {
	for i, o := range c.objects {
		if o == obj {
			return i
		}
	}
	return -1
}
