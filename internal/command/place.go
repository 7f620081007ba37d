package command

import (
	"fmt"

	"github.com/bethropolis/worldedit/internal/event"
	"github.com/bethropolis/worldedit/internal/logger"
	"github.com/bethropolis/worldedit/internal/placement"
	"github.com/bethropolis/worldedit/internal/types"
	"github.com/bethropolis/worldedit/internal/world"
)

// PlaceMultiPointCommand creates a boundary or road from interactively placed
// points. Execute starts the session and returns; the object is built and
// added when the user stops placing. A session that ends with too few points
// cancels the command, and every later Execute or UnExecute does nothing.
type PlaceMultiPointCommand struct {
	env  *Env
	kind world.Kind
	name string
	dest world.Container

	session   *placement.MultiPointPlacementHelper
	add       *AddObjectsCommand
	cancelled bool
}

// NewPlaceRegionCommand places a closed, non-self-intersecting boundary.
func NewPlaceRegionCommand(env *Env, name string, dest world.Container) *PlaceMultiPointCommand {
	return &PlaceMultiPointCommand{env: env, kind: world.KindBoundary, name: name, dest: dest}
}

// NewPlaceRoadCommand places an open road.
func NewPlaceRoadCommand(env *Env, name string, dest world.Container) *PlaceMultiPointCommand {
	return &PlaceMultiPointCommand{env: env, kind: world.KindRoad, name: name, dest: dest}
}

func (c *PlaceMultiPointCommand) label() string {
	return fmt.Sprintf("%s %q", c.kind, c.name)
}

func (c *PlaceMultiPointCommand) minPoints() int {
	if c.kind == world.KindBoundary {
		return 3
	}
	return 2
}

func (c *PlaceMultiPointCommand) Execute() {
	switch {
	case c.cancelled:
		return
	case c.add != nil:
		c.add.Execute()
		return
	case c.session != nil && !c.session.Done():
		return
	}
	c.start()
}

func (c *PlaceMultiPointCommand) start() {
	validator := placement.OutlineValidator{
		Label:        c.label(),
		Closed:       c.kind == world.KindBoundary,
		Reporter:     c.env.Reporter,
		OnErrorClick: c.env.OnErrorClick,
	}
	validate := func(points []types.Vec3, location types.Vec3) bool {
		if !validator.ValidateAppend(points, location) {
			c.env.dispatch(event.TypePointRejected, event.PointData{Label: c.label(), Location: location, Index: len(points)})
			return false
		}
		c.env.dispatch(event.TypePointPlaced, event.PointData{Label: c.label(), Location: location, Index: len(points)})
		return true
	}
	if c.env.Mode == placement.ModeSurface {
		c.session = placement.NewSurfaceMultiPointPlacementHelper(c.env.Driver, c.label(), validate, c.complete)
	} else {
		c.session = placement.NewMultiPointPlacementHelper(c.env.Driver, c.label(), validate, c.complete)
	}
	c.env.dispatch(event.TypePlacementStarted, event.PlacementData{Label: c.label(), Closed: c.kind == world.KindBoundary})
}

func (c *PlaceMultiPointCommand) complete(points []types.Vec3) {
	c.env.dispatch(event.TypePlacementCompleted, event.PlacementData{Label: c.label(), Points: points})
	if len(points) < c.minPoints() {
		c.cancelled = true
		if len(points) > 0 {
			c.env.reportError(fmt.Sprintf("%s needs at least %d points, placement cancelled", c.label(), c.minPoints()), nil)
		}
		logger.Debugf("Command: %s cancelled with %d point(s)", c.label(), len(points))
		return
	}
	var obj world.Object
	if c.kind == world.KindBoundary {
		obj = world.NewBoundary(c.name, points)
	} else {
		obj = world.NewRoad(c.name, points)
	}
	c.add = NewAddObjectCommand(c.Description(), c.dest, c.env.World.Selection, func() world.Object { return obj })
	c.add.Execute()
}

func (c *PlaceMultiPointCommand) UnExecute() {
	switch {
	case c.cancelled:
		return
	case c.add != nil:
		c.add.UnExecute()
	case c.session != nil:
		// Undone mid-placement: drop the session so redo starts over.
		c.session.Abort()
		c.session = nil
	default:
		logger.Warnf("Command: %q undone before it was executed", c.Description())
	}
}

func (c *PlaceMultiPointCommand) Undoable() bool { return true }

func (c *PlaceMultiPointCommand) Description() string {
	return "Place " + c.label()
}

// Cancelled reports whether the session ended without creating anything.
func (c *PlaceMultiPointCommand) Cancelled() bool { return c.cancelled }

// Payload returns the created object, or nil while placing or when cancelled.
func (c *PlaceMultiPointCommand) Payload() world.Object {
	if c.add == nil || len(c.add.Payload()) == 0 {
		return nil
	}
	return c.add.Payload()[0]
}

// PlaceObjectCommand places a single-location object with one gesture.
type PlaceObjectCommand struct {
	env  *Env
	kind world.Kind
	name string
	dest world.Container

	session   *placement.DragHelper
	add       *AddObjectsCommand
	cancelled bool
}

func NewPlaceObjectCommand(env *Env, kind world.Kind, name string, dest world.Container) *PlaceObjectCommand {
	return &PlaceObjectCommand{env: env, kind: kind, name: name, dest: dest}
}

func (c *PlaceObjectCommand) label() string {
	return fmt.Sprintf("%s %q", c.kind, c.name)
}

func (c *PlaceObjectCommand) Execute() {
	switch {
	case c.cancelled:
		return
	case c.add != nil:
		c.add.Execute()
		return
	case c.session != nil && !c.session.Done():
		return
	}
	c.session = placement.NewDragHelper(c.env.Driver, c.env.Mode, c.label(), c.place, c.cancel)
	c.env.dispatch(event.TypePlacementStarted, event.PlacementData{Label: c.label()})
}

func (c *PlaceObjectCommand) place(location types.Vec3) {
	obj, ok := world.NewPositioned(c.kind, c.name, location)
	if !ok {
		logger.Errorf("Command: %s is not a single-location kind", c.kind)
		c.cancelled = true
		return
	}
	c.env.dispatch(event.TypePlacementCompleted, event.PlacementData{Label: c.label(), Points: []types.Vec3{location}})
	c.add = NewAddObjectCommand(c.Description(), c.dest, c.env.World.Selection, func() world.Object { return obj })
	c.add.Execute()
}

func (c *PlaceObjectCommand) cancel() {
	c.cancelled = true
	c.env.dispatch(event.TypePlacementCompleted, event.PlacementData{Label: c.label()})
}

func (c *PlaceObjectCommand) UnExecute() {
	switch {
	case c.cancelled:
		return
	case c.add != nil:
		c.add.UnExecute()
	case c.session != nil:
		c.session.Abort()
		c.session = nil
	default:
		logger.Warnf("Command: %q undone before it was executed", c.Description())
	}
}

func (c *PlaceObjectCommand) Undoable() bool { return true }

func (c *PlaceObjectCommand) Description() string { return "Place " + c.label() }

func (c *PlaceObjectCommand) Cancelled() bool { return c.cancelled }

func (c *PlaceObjectCommand) Payload() world.Object {
	if c.add == nil || len(c.add.Payload()) == 0 {
		return nil
	}
	return c.add.Payload()[0]
}

// EditMode selects how EditPointsCommand adds points.
type EditMode int

const (
	EditAppend EditMode = iota
	EditInsert
)

// EditPointsCommand runs a placement session on an existing point list. It is
// not recorded itself: every accepted point is issued through the Runner as
// its own AddPointCommand or InsertPointCommand.
type EditPointsCommand struct {
	env    *Env
	target world.PointList
	mode   EditMode
	index  int
}

// NewAppendPointsCommand appends points after the last one.
func NewAppendPointsCommand(env *Env, target world.PointList) *EditPointsCommand {
	return &EditPointsCommand{env: env, target: target, mode: EditAppend}
}

// NewInsertPointsCommand inserts points starting before index.
func NewInsertPointsCommand(env *Env, target world.PointList, index int) *EditPointsCommand {
	return &EditPointsCommand{env: env, target: target, mode: EditInsert, index: index}
}

func (c *EditPointsCommand) label() string {
	return fmt.Sprintf("%s %q", c.target.Kind(), c.target.Name())
}

func (c *EditPointsCommand) validator() placement.OutlineValidator {
	return placement.OutlineValidator{
		Label:        c.label(),
		Closed:       c.target.Closed(),
		Reporter:     c.env.Reporter,
		OnErrorClick: c.env.OnErrorClick,
	}
}

func (c *EditPointsCommand) Execute() {
	v := c.validator()
	complete := func(points []types.Vec3) {
		c.env.dispatch(event.TypePlacementCompleted, event.PlacementData{Label: c.label(), Points: c.target.Points()})
	}
	switch c.mode {
	case EditAppend:
		validate := func(_ []types.Vec3, location types.Vec3) bool {
			current := c.target.Points()
			if !v.ValidateAppend(current, location) {
				c.env.dispatch(event.TypePointRejected, event.PointData{Label: c.label(), Location: location, Index: len(current)})
				return false
			}
			c.env.Runner.Do(NewAddPointCommand(c.target, location))
			c.env.dispatch(event.TypePointPlaced, event.PointData{Label: c.label(), Location: location, Index: len(current)})
			return true
		}
		if c.env.Mode == placement.ModeSurface {
			placement.NewSurfaceMultiPointPlacementHelper(c.env.Driver, c.label(), validate, complete)
		} else {
			placement.NewMultiPointPlacementHelper(c.env.Driver, c.label(), validate, complete)
		}
	case EditInsert:
		validate := func(points []types.Vec3, location types.Vec3, index int) bool {
			if !v.ValidateInsert(points, location, index) {
				c.env.dispatch(event.TypePointRejected, event.PointData{Label: c.label(), Location: location, Index: index})
				return false
			}
			c.env.Runner.Do(NewInsertPointCommand(c.target, index, location))
			c.env.dispatch(event.TypePointPlaced, event.PointData{Label: c.label(), Location: location, Index: index})
			return true
		}
		placement.NewMultiPointInsertHelper(c.env.Driver, c.env.Mode, c.label(), c.target.Points(), c.index, validate, complete)
	}
	c.env.dispatch(event.TypePlacementStarted, event.PlacementData{Label: c.label(), Points: c.target.Points(), Closed: c.target.Closed()})
}

// UnExecute is never called for a non-undoable command.
func (c *EditPointsCommand) UnExecute() {}

func (c *EditPointsCommand) Undoable() bool { return false }

func (c *EditPointsCommand) Description() string {
	if c.mode == EditInsert {
		return "Insert points into " + c.label()
	}
	return "Append points to " + c.label()
}
