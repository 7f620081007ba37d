package world

import (
	"github.com/bethropolis/worldedit/internal/event"
)

// DefaultCollectionName is the collection every new world starts with.
const DefaultCollectionName = "Default"

// World owns the collections, the selection and the ground surface.
type World struct {
	Name      string
	Selection *Selection
	Surface   Surface

	collections []*Collection
	events      *event.Manager
}

// New creates a world with a single loaded default collection. events may be nil.
func New(name string, events *event.Manager) *World {
	w := &World{
		Name:      name,
		Selection: NewSelection(events),
		Surface:   FlatTerrain{},
		events:    events,
	}
	w.NewCollection(DefaultCollectionName, true)
	return w
}

// NewCollection adds a collection. An existing collection with the same name is returned as is.
func (w *World) NewCollection(name string, loaded bool) *Collection {
	if c, ok := w.Collection(name); ok {
		return c
	}
	c := &Collection{name: name, loaded: loaded, world: w}
	w.collections = append(w.collections, c)
	return c
}

// Collection looks a collection up by name.
func (w *World) Collection(name string) (*Collection, bool) {
	for _, c := range w.collections {
		if c.name == name {
			return c, true
		}
	}
	return nil, false
}

// Collections returns the collections in creation order.
func (w *World) Collections() []*Collection {
	out := make([]*Collection, len(w.collections))
	copy(out, w.collections)
	return out
}

// Default returns the first collection.
func (w *World) Default() *Collection {
	if len(w.collections) == 0 {
		return w.NewCollection(DefaultCollectionName, true)
	}
	return w.collections[0]
}

// ContainerOf returns the loaded collection holding obj.
func (w *World) ContainerOf(obj Object) (*Collection, bool) {
	for _, c := range w.collections {
		if c.Contains(obj) {
			return c, true
		}
	}
	return nil, false
}

// Find looks a loaded object up by id.
func (w *World) Find(id string) (Object, bool) {
	for _, c := range w.collections {
		for _, o := range c.objects {
			if o.ID() == id {
				return o, true
			}
		}
	}
	return nil, false
}

// Objects lists every loaded object across collections.
func (w *World) Objects() []Object {
	var out []Object
	for _, c := range w.collections {
		out = append(out, c.objects...)
	}
	return out
}

// ObjectCount counts loaded objects.
func (w *World) ObjectCount() int {
	n := 0
	for _, c := range w.collections {
		n += len(c.objects)
	}
	return n
}

// reset drops all content. Used before decoding a document.
func (w *World) reset() {
	w.Selection.Clear()
	w.collections = nil
}

func (w *World) dispatch(t event.Type, data interface{}) {
	if w == nil {
		return
	}
	w.events.Dispatch(t, data)
}
