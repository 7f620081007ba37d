package world

import "github.com/bethropolis/worldedit/internal/event"

// Selection tracks the currently selected objects. The last selected object is active.
type Selection struct {
	objects []Object
	events  *event.Manager
}

// NewSelection creates an empty selection. events may be nil.
func NewSelection(events *event.Manager) *Selection {
	return &Selection{events: events}
}

// Objects returns the selected objects in selection order.
func (s *Selection) Objects() []Object {
	out := make([]Object, len(s.objects))
	copy(out, s.objects)
	return out
}

// Active returns the most recently selected object.
func (s *Selection) Active() Object {
	if len(s.objects) == 0 {
		return nil
	}
	return s.objects[len(s.objects)-1]
}

func (s *Selection) Len() int { return len(s.objects) }

// Set replaces the selection: previous objects are unselected, objs are selected.
func (s *Selection) Set(objs ...Object) {
	for _, o := range s.objects {
		o.UnSelect()
	}
	s.objects = make([]Object, 0, len(objs))
	for _, o := range objs {
		if o == nil || s.Contains(o) {
			continue
		}
		o.Select()
		s.objects = append(s.objects, o)
	}
	s.changed()
}

// Toggle adds obj to the selection or removes it if already selected.
func (s *Selection) Toggle(obj Object) {
	if s.Contains(obj) {
		s.Remove(obj)
		return
	}
	obj.Select()
	s.objects = append(s.objects, obj)
	s.changed()
}

// Remove unselects obj and drops it from the selection.
func (s *Selection) Remove(obj Object) {
	for i, o := range s.objects {
		if o == obj {
			o.UnSelect()
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			s.changed()
			return
		}
	}
}

// Clear unselects everything.
func (s *Selection) Clear() {
	if len(s.objects) == 0 {
		return
	}
	s.Set()
}

func (s *Selection) Contains(obj Object) bool {
	for _, o := range s.objects {
		if o == obj {
			return true
		}
	}
	return false
}

func (s *Selection) changed() {
	ids := make([]string, len(s.objects))
	for i, o := range s.objects {
		ids[i] = o.ID()
	}
	s.events.Dispatch(event.TypeSelectionChanged, event.SelectionChangedData{Selected: ids})
}
