package command

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/bethropolis/worldedit/internal/logger"
	"github.com/bethropolis/worldedit/internal/types"
	"github.com/bethropolis/worldedit/internal/world"
	"github.com/jinzhu/copier"
)

// Clipboard is the text clipboard used by copy and paste.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// SystemClipboard uses the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (SystemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// CopyCommand writes the encoded objects to the clipboard. It never enters history.
type CopyCommand struct {
	objs      []world.Object
	clipboard Clipboard
	err       error
}

func NewCopyCommand(objs []world.Object, cb Clipboard) *CopyCommand {
	if cb == nil {
		cb = SystemClipboard{}
	}
	return &CopyCommand{objs: objs, clipboard: cb}
}

func (c *CopyCommand) Execute() {
	data, err := world.EncodeObjects(c.objs)
	if err != nil {
		c.err = fmt.Errorf("failed to encode selection: %w", err)
		logger.Errorf("Copy: %v", c.err)
		return
	}
	if err := c.clipboard.WriteAll(string(data)); err != nil {
		c.err = fmt.Errorf("failed to write clipboard: %w", err)
		logger.Errorf("Copy: %v", c.err)
		return
	}
	c.err = nil
	logger.Debugf("Copy: %d object(s) copied", len(c.objs))
}

// UnExecute is never called for a non-undoable command.
func (c *CopyCommand) UnExecute() {}

func (c *CopyCommand) Undoable() bool { return false }

func (c *CopyCommand) Description() string {
	return fmt.Sprintf("Copy %d object(s)", len(c.objs))
}

// Err reports the failure of the last Execute, if any.
func (c *CopyCommand) Err() error { return c.err }

// PasteOffset shifts pasted and duplicated objects so they don't sit on their source.
var PasteOffset = types.NewVec3(1, 0, 1)

type renewable interface {
	RenewID()
}

func deepCopy[T any](src *T) (*T, error) {
	dst := new(T)
	if err := copier.CopyWithOption(dst, src, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return dst, nil
}

// CloneObject deep copies obj with a fresh id. The clone is not selected.
func CloneObject(obj world.Object) (world.Object, error) {
	var (
		clone world.Object
		err   error
	)
	switch o := obj.(type) {
	case *world.Boundary:
		c, e := deepCopy(o)
		clone, err = c, e
	case *world.Road:
		c, e := deepCopy(o)
		clone, err = c, e
	case *world.Marker:
		c, e := deepCopy(o)
		clone, err = c, e
	case *world.PointLight:
		c, e := deepCopy(o)
		clone, err = c, e
	case *world.Tree:
		c, e := deepCopy(o)
		clone, err = c, e
	case *world.ParticleEffect:
		c, e := deepCopy(o)
		clone, err = c, e
	default:
		return nil, fmt.Errorf("cannot clone object kind %q", obj.Kind())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to clone %q: %w", obj.Name(), err)
	}
	clone.(renewable).RenewID()
	clone.UnSelect()
	return clone, nil
}

// offsetObject moves obj by delta.
func offsetObject(obj world.Object, delta types.Vec3) {
	switch o := obj.(type) {
	case world.Positioned:
		o.SetPosition(o.Position().Add(delta))
	case world.PointList:
		pts := o.Points()
		for i := len(pts) - 1; i >= 0; i-- {
			o.RemovePoint(i)
		}
		for i, p := range pts {
			o.InsertPoint(i, p.Add(delta))
		}
	}
}

// NewDuplicateCommand adds offset deep copies of objs next to their sources.
// The copies are made on the first Execute; redo re-adds the same copies.
func NewDuplicateCommand(w *world.World, objs []world.Object) *AddObjectsCommand {
	dest := w.Default()
	if len(objs) > 0 {
		if c, ok := w.ContainerOf(objs[0]); ok {
			dest = c
		}
	}
	sources := append([]world.Object(nil), objs...)
	return NewAddObjectsCommand(fmt.Sprintf("Duplicate %d object(s)", len(sources)), dest, w.Selection, func() []world.Object {
		out := make([]world.Object, 0, len(sources))
		for _, src := range sources {
			clone, err := CloneObject(src)
			if err != nil {
				logger.Warnf("Duplicate: %v", err)
				continue
			}
			clone.SetName(src.Name() + " copy")
			offsetObject(clone, PasteOffset)
			out = append(out, clone)
		}
		return out
	})
}

// NewPasteCommand decodes clipboard text into new objects in dest.
func NewPasteCommand(w *world.World, dest *world.Collection, text string) (*AddObjectsCommand, error) {
	objs, err := world.DecodeObjects([]byte(text))
	if err != nil {
		return nil, err
	}
	if len(objs) == 0 {
		return nil, fmt.Errorf("clipboard holds no objects")
	}
	for _, o := range objs {
		if r, ok := o.(renewable); ok {
			r.RenewID()
		}
		offsetObject(o, PasteOffset)
	}
	return NewAddObjectsCommand(fmt.Sprintf("Paste %d object(s)", len(objs)), dest, w.Selection, func() []world.Object {
		return objs
	}), nil
}
