// internal/event/event.go
package event

import (
	"github.com/bethropolis/worldedit/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// World events
	TypeObjectAdded      // An object was added to a collection
	TypeObjectRemoved    // An object was removed from a collection
	TypeSelectionChanged // The selected set changed
	TypeCollectionLoaded // A collection was loaded on demand

	// History events
	TypeHistoryChanged // Undo/redo stacks or checkpoints changed

	// Document events
	TypeDocumentLoaded
	TypeDocumentSaved
	TypeDocumentAutoSaved

	// Placement events
	TypePlacementStarted
	TypePointPlaced
	TypePointRejected
	TypePlacementCompleted

	// Input events
	TypeKeyPressed

	// Application lifecycle
	TypeAppReady
	TypeAppQuit
)

func (t Type) String() string {
	switch t {
	case TypeObjectAdded:
		return "ObjectAdded"
	case TypeObjectRemoved:
		return "ObjectRemoved"
	case TypeSelectionChanged:
		return "SelectionChanged"
	case TypeCollectionLoaded:
		return "CollectionLoaded"
	case TypeHistoryChanged:
		return "HistoryChanged"
	case TypeDocumentLoaded:
		return "DocumentLoaded"
	case TypeDocumentSaved:
		return "DocumentSaved"
	case TypeDocumentAutoSaved:
		return "DocumentAutoSaved"
	case TypePlacementStarted:
		return "PlacementStarted"
	case TypePointPlaced:
		return "PointPlaced"
	case TypePointRejected:
		return "PointRejected"
	case TypePlacementCompleted:
		return "PlacementCompleted"
	case TypeKeyPressed:
		return "KeyPressed"
	case TypeAppReady:
		return "AppReady"
	case TypeAppQuit:
		return "AppQuit"
	}
	return "Unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// ObjectData identifies an object and the collection it moved in or out of.
type ObjectData struct {
	ObjectID   string
	ObjectName string
	Collection string
}

// SelectionChangedData lists the ids selected after the change.
type SelectionChangedData struct {
	Selected []string
}

// CollectionLoadedData names the collection that was loaded.
type CollectionLoadedData struct {
	Collection string
}

// HistoryChangedData is a snapshot of the undo/redo state after a change.
type HistoryChangedData struct {
	CanUndo       bool
	CanRedo       bool
	Dirty         bool
	AutoSaveDirty bool
}

// DocumentData carries the path of a loaded or saved document.
type DocumentData struct {
	FilePath string
}

// PlacementData describes a placement session transition.
type PlacementData struct {
	Label  string
	Points []types.Vec3
	// Closed is set for outlines whose last point joins the first.
	Closed bool
}

// PointData describes a single candidate point in a placement session.
type PointData struct {
	Label    string
	Location types.Vec3
	Index    int
}

// KeyPressedData contains the raw tcell key event.
type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}

type AppQuitData struct{}

type AppReadyData struct{}
