package command

import (
	"fmt"

	"github.com/bethropolis/worldedit/internal/geom"
	"github.com/bethropolis/worldedit/internal/logger"
	"github.com/bethropolis/worldedit/internal/types"
	"github.com/bethropolis/worldedit/internal/world"
)

// AddPointCommand appends one point to a point list. The index is fixed by
// the first Execute so redo lands the point at the same position.
type AddPointCommand struct {
	target world.PointList
	point  types.Vec3
	index  int
}

func NewAddPointCommand(target world.PointList, point types.Vec3) *AddPointCommand {
	return &AddPointCommand{target: target, point: point, index: -1}
}

func (c *AddPointCommand) Execute() {
	if c.index < 0 {
		c.index = c.target.PointCount()
	}
	c.target.InsertPoint(c.index, c.point)
}

func (c *AddPointCommand) UnExecute() {
	if c.index < 0 {
		logger.Warnf("Command: add point to %q undone before it was executed", c.target.Name())
		return
	}
	c.target.RemovePoint(c.index)
}

func (c *AddPointCommand) Undoable() bool { return true }

func (c *AddPointCommand) Description() string {
	return fmt.Sprintf("Add point to %s", c.target.Name())
}

// InsertPointCommand inserts one point before index.
type InsertPointCommand struct {
	target   world.PointList
	point    types.Vec3
	index    int
	executed bool
}

func NewInsertPointCommand(target world.PointList, index int, point types.Vec3) *InsertPointCommand {
	return &InsertPointCommand{target: target, point: point, index: index}
}

func (c *InsertPointCommand) Execute() {
	c.target.InsertPoint(c.index, c.point)
	c.executed = true
}

func (c *InsertPointCommand) UnExecute() {
	if !c.executed {
		logger.Warnf("Command: insert point into %q undone before it was executed", c.target.Name())
		return
	}
	c.target.RemovePoint(c.index)
	c.executed = false
}

func (c *InsertPointCommand) Undoable() bool { return true }

func (c *InsertPointCommand) Description() string {
	return fmt.Sprintf("Insert point %d into %s", c.index, c.target.Name())
}

// DeletePointCommand removes the point at index and puts it back on undo.
type DeletePointCommand struct {
	target   world.PointList
	index    int
	removed  types.Vec3
	executed bool
}

func NewDeletePointCommand(target world.PointList, index int) *DeletePointCommand {
	return &DeletePointCommand{target: target, index: index}
}

func (c *DeletePointCommand) Execute() {
	c.removed = c.target.RemovePoint(c.index)
	c.executed = true
}

func (c *DeletePointCommand) UnExecute() {
	if !c.executed {
		logger.Warnf("Command: delete point from %q undone before it was executed", c.target.Name())
		return
	}
	c.target.InsertPoint(c.index, c.removed)
	c.executed = false
}

func (c *DeletePointCommand) Undoable() bool { return true }

func (c *DeletePointCommand) Description() string {
	return fmt.Sprintf("Delete point %d from %s", c.index, c.target.Name())
}

// minPoints is the fewest points a list may keep.
func minPoints(target world.PointList) int {
	if target.Closed() {
		return 3
	}
	return 2
}

// CanDeletePoint explains why the point at index cannot be removed, or returns "".
func CanDeletePoint(target world.PointList, index int) string {
	n := target.PointCount()
	if index < 0 || index >= n {
		return fmt.Sprintf("%s has no point %d", target.Name(), index)
	}
	if n <= minPoints(target) {
		return fmt.Sprintf("%s needs at least %d points", target.Name(), minPoints(target))
	}
	if target.Closed() {
		pts := target.Points()
		rest := append(pts[:index:index], pts[index+1:]...)
		if geom.SelfIntersects(rest, true) {
			return fmt.Sprintf("removing point %d would make %s intersect itself", index, target.Name())
		}
	}
	return ""
}
