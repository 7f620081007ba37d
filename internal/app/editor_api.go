// internal/app/editor_api.go
package app

import (
	"fmt"

	"github.com/bethropolis/worldedit/internal/event"
	"github.com/bethropolis/worldedit/internal/logger"
	"github.com/bethropolis/worldedit/internal/plugin"
)

// Ensure appEditorAPI implements the plugin.EditorAPI interface.
var _ plugin.EditorAPI = (*appEditorAPI)(nil)

// appEditorAPI provides the concrete implementation of the EditorAPI interface.
type appEditorAPI struct {
	app *App
}

func newEditorAPI(app *App) *appEditorAPI {
	return &appEditorAPI{app: app}
}

// --- Document ---

func (api *appEditorAPI) DocumentPath() string {
	return api.app.editor.DocumentPath()
}

func (api *appEditorAPI) IsDirty() bool {
	return api.app.editor.History.Dirty()
}

func (api *appEditorAPI) IsAutoSaveDirty() bool {
	return api.app.editor.History.AutoSaveDirty()
}

func (api *appEditorAPI) RequestAutoSave() {
	api.app.post(api.app.autoSave)
}

// --- World ---

func (api *appEditorAPI) ObjectCount() int {
	return api.app.editor.World.ObjectCount()
}

func (api *appEditorAPI) ObjectCountByKind() map[string]int {
	counts := make(map[string]int)
	for _, obj := range api.app.editor.World.Objects() {
		counts[string(obj.Kind())]++
	}
	return counts
}

// --- Event Bus Interaction ---

func (api *appEditorAPI) DispatchEvent(eventType event.Type, data interface{}) {
	api.app.eventManager.Dispatch(eventType, data)
}

func (api *appEditorAPI) SubscribeEvent(eventType event.Type, handler event.Handler) {
	api.app.eventManager.Subscribe(eventType, handler)
}

// --- Command Registration ---

func (api *appEditorAPI) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	if api.app == nil || api.app.modeHandler == nil {
		logger.Errorf("appEditorAPI cannot register command '%s', app or modeHandler is nil", name)
		return fmt.Errorf("internal error: API cannot access command registration")
	}
	return api.app.modeHandler.RegisterCommand(name, cmdFunc)
}

// --- Status Bar ---

func (api *appEditorAPI) SetStatusMessage(format string, args ...interface{}) {
	api.app.SetStatusMessage(format, args...)
}

// --- Configuration ---

func (api *appEditorAPI) GetPluginConfigValue(pluginName, key string) (interface{}, bool) {
	return api.app.cfg.GetPluginConfigValue(pluginName, key)
}
