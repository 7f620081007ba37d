package command

import (
	"testing"

	"github.com/bethropolis/worldedit/internal/types"
	"github.com/bethropolis/worldedit/internal/world"
)

func sameObjects(a, b []world.Object) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAddObjectUndoRestoresSceneAndSelection(t *testing.T) {
	w := world.New("test", nil)
	existing := world.NewMarker("m", types.Vec3Zero)
	w.Default().Add(existing)
	w.Selection.Set(existing)

	before := w.Default().Objects()
	builds := 0
	cmd := NewAddObjectCommand("add tree", w.Default(), w.Selection, func() world.Object {
		builds++
		return world.NewTree("t", pt(1, 1))
	})

	cmd.Execute()
	first := cmd.Payload()[0]
	if !w.Default().Contains(first) || !first.Selected() || existing.Selected() {
		t.Fatalf("execute should add and select the payload only")
	}

	cmd.UnExecute()
	if !sameObjects(w.Default().Objects(), before) {
		t.Fatalf("undo should restore the container contents")
	}
	if active := w.Selection.Active(); active != existing || !existing.Selected() || first.Selected() {
		t.Fatalf("undo should restore the previous selection")
	}

	cmd.Execute()
	if builds != 1 {
		t.Fatalf("payload built %d times, want once", builds)
	}
	if cmd.Payload()[0] != first || !w.Default().Contains(first) {
		t.Fatalf("redo must re-add the same instance")
	}
}

func TestAddObjectUnExecuteBeforeExecuteIsIgnored(t *testing.T) {
	w := world.New("test", nil)
	cmd := NewAddObjectCommand("add", w.Default(), w.Selection, func() world.Object {
		return world.NewMarker("m", types.Vec3Zero)
	})
	cmd.UnExecute()
	if cmd.Payload() != nil || w.ObjectCount() != 0 {
		t.Fatalf("premature undo must not build or change anything")
	}
}

func TestDeleteObjectsRestoresOrderAndContainers(t *testing.T) {
	w := world.New("test", nil)
	other := w.NewCollection("Other", true)
	a := world.NewMarker("a", types.Vec3Zero)
	b := world.NewMarker("b", types.Vec3Zero)
	c := world.NewMarker("c", types.Vec3Zero)
	d := world.NewTree("d", types.Vec3Zero)
	w.Default().Add(a)
	w.Default().Add(b)
	w.Default().Add(c)
	other.Add(d)
	w.Selection.Set(b, d)

	cmd := NewDeleteObjectsCommand(w, []world.Object{b, d})
	cmd.Execute()
	if w.Default().Contains(b) || other.Contains(d) || w.Selection.Len() != 0 {
		t.Fatalf("delete should remove and deselect")
	}
	cmd.UnExecute()
	if !sameObjects(w.Default().Objects(), []world.Object{a, b, c}) {
		t.Fatalf("undo should restore original order, got %v", w.Default().Objects())
	}
	if !other.Contains(d) {
		t.Fatalf("undo should restore to the original container")
	}
	if !sameObjects(w.Selection.Objects(), []world.Object{b, d}) {
		t.Fatalf("undo should restore the selection")
	}
	if cmd.Description() != "Delete 2 objects" {
		t.Fatalf("description %q", cmd.Description())
	}
}

func TestMoveObjectsRoundTrip(t *testing.T) {
	w := world.New("test", nil)
	dest := w.NewCollection("Props", true)
	a := world.NewMarker("a", types.Vec3Zero)
	b := world.NewMarker("b", types.Vec3Zero)
	w.Default().Add(a)
	w.Default().Add(b)

	cmd := NewMoveObjectsCommand(w, []world.Object{a}, dest)
	cmd.Execute()
	if w.Default().Contains(a) || !dest.Contains(a) {
		t.Fatalf("move should transfer the object")
	}
	cmd.UnExecute()
	if dest.Contains(a) || !sameObjects(w.Default().Objects(), []world.Object{a, b}) {
		t.Fatalf("undo should put the object back in place")
	}
}

func TestPropertyChangeCommand(t *testing.T) {
	m := world.NewMarker("old", types.Vec3Zero)
	cmd := NewPropertyChangeCommand("rename", m.SetName, m.Name(), "new")
	cmd.Execute()
	if m.Name() != "new" {
		t.Fatalf("execute should apply the new value")
	}
	cmd.UnExecute()
	if m.Name() != "old" {
		t.Fatalf("undo should restore the old value")
	}
}
