package app

import (
	"fmt"

	"github.com/bethropolis/worldedit/internal/event"
	"github.com/bethropolis/worldedit/internal/logger"
	"github.com/bethropolis/worldedit/internal/tui"
	"github.com/bethropolis/worldedit/internal/types"
)

// subscribeEvents wires status bar and preview updates to the event bus.
func (a *App) subscribeEvents() {
	a.eventManager.Subscribe(event.TypeHistoryChanged, a.handleHistoryChanged)
	a.eventManager.Subscribe(event.TypeSelectionChanged, a.handleSelectionChanged)
	a.eventManager.Subscribe(event.TypeDocumentLoaded, a.handleDocumentChanged)
	a.eventManager.Subscribe(event.TypeDocumentSaved, a.handleDocumentChanged)
	a.eventManager.Subscribe(event.TypeCollectionLoaded, a.handleCollectionLoaded)
	a.eventManager.Subscribe(event.TypePlacementStarted, a.handlePlacementStarted)
	a.eventManager.Subscribe(event.TypePointPlaced, a.handlePointPlaced)
	a.eventManager.Subscribe(event.TypePlacementCompleted, a.handlePlacementCompleted)
}

func (a *App) handleHistoryChanged(e event.Event) bool {
	if data, ok := e.Data.(event.HistoryChangedData); ok {
		a.statusBar.SetModified(data.Dirty)
	}
	a.requestRedraw()
	return false
}

func (a *App) handleSelectionChanged(e event.Event) bool {
	data, ok := e.Data.(event.SelectionChangedData)
	if !ok {
		return false
	}
	switch n := len(data.Selected); n {
	case 0:
		a.statusBar.SetSelectionInfo("")
	case 1:
		if obj := a.editor.World.Selection.Active(); obj != nil {
			a.statusBar.SetSelectionInfo(fmt.Sprintf("%s %q", obj.Kind(), obj.Name()))
		}
	default:
		a.statusBar.SetSelectionInfo(fmt.Sprintf("%d selected", n))
	}
	return false
}

func (a *App) handleDocumentChanged(e event.Event) bool {
	if data, ok := e.Data.(event.DocumentData); ok {
		a.statusBar.SetDocumentInfo(data.FilePath, a.editor.Dirty())
	}
	a.requestRedraw()
	return false
}

func (a *App) handleCollectionLoaded(e event.Event) bool {
	if data, ok := e.Data.(event.CollectionLoadedData); ok {
		a.statusBar.SetTemporaryMessage("Loaded collection %s", data.Collection)
	}
	return false
}

func (a *App) handlePlacementStarted(e event.Event) bool {
	data, ok := e.Data.(event.PlacementData)
	if !ok {
		return false
	}
	a.preview = &tui.Preview{Points: types.ClonePoints(data.Points), Closed: data.Closed}
	a.statusBar.SetPlacing(data.Label)
	logger.DebugTagf("placement", "Preview started for %s", data.Label)
	return false
}

func (a *App) handlePointPlaced(e event.Event) bool {
	data, ok := e.Data.(event.PointData)
	if !ok || a.preview == nil {
		return false
	}
	index := data.Index
	if index < 0 || index > len(a.preview.Points) {
		index = len(a.preview.Points)
	}
	points := append(a.preview.Points, types.Vec3{})
	copy(points[index+1:], points[index:])
	points[index] = data.Location
	a.preview.Points = points
	return false
}

func (a *App) handlePlacementCompleted(e event.Event) bool {
	a.preview = nil
	a.statusBar.SetPlacing("")
	return false
}
