package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bethropolis/worldedit/internal/types"
	"github.com/bethropolis/worldedit/internal/world"
)

// NextName returns "base N" with the lowest N not already used in w.
func NextName(w *world.World, base string) string {
	used := make(map[string]bool)
	for _, o := range w.Objects() {
		used[o.Name()] = true
	}
	for n := 1; ; n++ {
		name := fmt.Sprintf("%s %d", base, n)
		if !used[name] {
			return name
		}
	}
}

func (e *Env) askName(prompt, base string) (string, bool) {
	def := NextName(e.World, base)
	if e.Prompter == nil {
		return def, true
	}
	name, ok := e.Prompter.Input(prompt, def)
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// targetCollection is the collection of the active object, or the default one.
func (e *Env) targetCollection() *world.Collection {
	if active := e.World.Selection.Active(); active != nil {
		if c, ok := e.World.ContainerOf(active); ok {
			return c
		}
	}
	return e.World.Default()
}

// RegionFactory asks for a name and starts placing a boundary.
func RegionFactory(env *Env) Factory {
	return FactoryFunc(func() Command {
		name, ok := env.askName("Region name", "Region")
		if !ok {
			return nil
		}
		return NewPlaceRegionCommand(env, name, env.targetCollection())
	})
}

// RoadFactory asks for a name and starts placing a road.
func RoadFactory(env *Env) Factory {
	return FactoryFunc(func() Command {
		name, ok := env.askName("Road name", "Road")
		if !ok {
			return nil
		}
		return NewPlaceRoadCommand(env, name, env.targetCollection())
	})
}

var kindTitles = map[world.Kind]string{
	world.KindMarker:    "Marker",
	world.KindLight:     "Light",
	world.KindTree:      "Tree",
	world.KindParticles: "Particles",
}

// PlaceObjectFactory asks for a name and places one object of kind with a single click.
func PlaceObjectFactory(env *Env, kind world.Kind) Factory {
	return FactoryFunc(func() Command {
		title, ok := kindTitles[kind]
		if !ok {
			env.reportError(fmt.Sprintf("cannot place %s interactively", kind), nil)
			return nil
		}
		name, ok := env.askName(title+" name", title)
		if !ok {
			return nil
		}
		return NewPlaceObjectCommand(env, kind, name, env.targetCollection())
	})
}

// ObjectAtFactory adds an object of kind at a known position without prompting.
func ObjectAtFactory(env *Env, kind world.Kind, pos types.Vec3) Factory {
	return FactoryFunc(func() Command {
		title, ok := kindTitles[kind]
		if !ok {
			return nil
		}
		name := NextName(env.World, title)
		return NewAddObjectCommand("Add "+name, env.targetCollection(), env.World.Selection, func() world.Object {
			obj, _ := world.NewPositioned(kind, name, pos)
			return obj
		})
	})
}

// RenameFactory renames the active object.
func RenameFactory(env *Env) Factory {
	return FactoryFunc(func() Command {
		obj := env.World.Selection.Active()
		if obj == nil || env.Prompter == nil {
			return nil
		}
		old := obj.Name()
		name, ok := env.Prompter.Input("Rename to", old)
		name = strings.TrimSpace(name)
		if !ok || name == "" || name == old {
			return nil
		}
		return NewPropertyChangeCommand(fmt.Sprintf("Rename %s to %s", old, name), obj.SetName, old, name)
	})
}

// NudgeFactory moves the active single-location object by delta.
func NudgeFactory(env *Env, delta types.Vec3) Factory {
	return FactoryFunc(func() Command {
		obj, ok := env.World.Selection.Active().(world.Positioned)
		if !ok {
			return nil
		}
		old := obj.Position()
		return NewPropertyChangeCommand("Move "+obj.Name(), obj.SetPosition, old, old.Add(delta))
	})
}

// MoveFactory asks for a destination collection and moves the selection there.
// An unloaded destination must be loaded first; declining cancels the move.
func MoveFactory(env *Env) Factory {
	return FactoryFunc(func() Command {
		objs := env.World.Selection.Objects()
		if len(objs) == 0 || env.Prompter == nil {
			return nil
		}
		name, ok := env.Prompter.Input("Move to collection", env.World.Default().Name())
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil
		}
		dest, found := env.World.Collection(name)
		if !found {
			if !env.Prompter.Confirm(fmt.Sprintf("Collection %q does not exist. Create it?", name)) {
				return nil
			}
			dest = env.World.NewCollection(name, true)
		}
		if !dest.Loaded() {
			if !env.Prompter.Confirm(fmt.Sprintf("Collection %q is not loaded. Load it?", name)) {
				return nil
			}
			dest.Load()
		}
		cmd := NewMoveObjectsCommand(env.World, objs, dest)
		if cmd.Empty() {
			return nil
		}
		return cmd
	})
}

func (e *Env) activePointList() (world.PointList, bool) {
	pl, ok := e.World.Selection.Active().(world.PointList)
	if !ok {
		e.reportError("select a boundary or road first", nil)
	}
	return pl, ok
}

// AppendPointsFactory starts appending points to the active boundary or road.
func AppendPointsFactory(env *Env) Factory {
	return FactoryFunc(func() Command {
		target, ok := env.activePointList()
		if !ok {
			return nil
		}
		return NewAppendPointsCommand(env, target)
	})
}

// InsertPointsFactory asks where to insert and starts an insert session.
func InsertPointsFactory(env *Env) Factory {
	return FactoryFunc(func() Command {
		target, ok := env.activePointList()
		if !ok || env.Prompter == nil {
			return nil
		}
		n := target.PointCount()
		answer, ok := env.Prompter.Input(fmt.Sprintf("Insert before point (0-%d)", n), strconv.Itoa(n))
		if !ok {
			return nil
		}
		index, err := strconv.Atoi(strings.TrimSpace(answer))
		if err != nil || index < 0 || index > n {
			env.reportError(fmt.Sprintf("%q is not a point index between 0 and %d", answer, n), nil)
			return nil
		}
		return NewInsertPointsCommand(env, target, index)
	})
}

// DeletePointFactory removes a point from the active boundary or road.
// The point index is asked for; the last point is the default.
func DeletePointFactory(env *Env) Factory {
	return FactoryFunc(func() Command {
		target, ok := env.activePointList()
		if !ok || env.Prompter == nil {
			return nil
		}
		n := target.PointCount()
		answer, ok := env.Prompter.Input(fmt.Sprintf("Delete point (0-%d)", n-1), strconv.Itoa(n-1))
		if !ok {
			return nil
		}
		index, err := strconv.Atoi(strings.TrimSpace(answer))
		if err != nil {
			env.reportError(fmt.Sprintf("%q is not a point index", answer), nil)
			return nil
		}
		if msg := CanDeletePoint(target, index); msg != "" {
			env.reportError(msg, nil)
			return nil
		}
		return NewDeletePointCommand(target, index)
	})
}

// DeleteFactory deletes the selection, confirming when more than one object is selected.
func DeleteFactory(env *Env) Factory {
	return FactoryFunc(func() Command {
		objs := env.World.Selection.Objects()
		if len(objs) == 0 {
			return nil
		}
		if len(objs) > 1 && env.Prompter != nil &&
			!env.Prompter.Confirm(fmt.Sprintf("Delete %d objects?", len(objs))) {
			return nil
		}
		cmd := NewDeleteObjectsCommand(env.World, objs)
		if cmd.Empty() {
			return nil
		}
		return cmd
	})
}

// CopyFactory copies the selection to the clipboard.
func CopyFactory(env *Env) Factory {
	return FactoryFunc(func() Command {
		objs := env.World.Selection.Objects()
		if len(objs) == 0 {
			return nil
		}
		return NewCopyCommand(objs, env.clipboard())
	})
}

// PasteFactory adds the objects held by the clipboard.
func PasteFactory(env *Env) Factory {
	return FactoryFunc(func() Command {
		text, err := env.clipboard().ReadAll()
		if err != nil {
			env.reportError(fmt.Sprintf("failed to read clipboard: %v", err), nil)
			return nil
		}
		cmd, err := NewPasteCommand(env.World, env.targetCollection(), text)
		if err != nil {
			env.reportError(fmt.Sprintf("nothing to paste: %v", err), nil)
			return nil
		}
		return cmd
	})
}

// DuplicateFactory duplicates the selection.
func DuplicateFactory(env *Env) Factory {
	return FactoryFunc(func() Command {
		objs := env.World.Selection.Objects()
		if len(objs) == 0 {
			return nil
		}
		return NewDuplicateCommand(env.World, objs)
	})
}
