// internal/plugin/plugin.go
package plugin

import (
	"github.com/bethropolis/worldedit/internal/event"
)

// CommandFunc defines the signature for commands registered by plugins.
type CommandFunc func(args []string) error

// EditorAPI defines the methods plugins can use to interact with the editor.
//
// Methods are safe to call from the UI goroutine. IsAutoSaveDirty and
// RequestAutoSave may also be called from plugin goroutines.
type EditorAPI interface {
	// --- Document ---
	DocumentPath() string
	IsDirty() bool
	IsAutoSaveDirty() bool
	// RequestAutoSave schedules an autosave on the UI goroutine.
	RequestAutoSave()

	// --- World (read-only) ---
	ObjectCount() int
	ObjectCountByKind() map[string]int

	// --- Event Bus Interaction ---
	DispatchEvent(eventType event.Type, data interface{})
	SubscribeEvent(eventType event.Type, handler event.Handler)

	// --- Command Registration ---
	RegisterCommand(name string, cmdFunc CommandFunc) error

	// --- Status Bar ---
	SetStatusMessage(format string, args ...interface{})

	// --- Configuration ---
	GetPluginConfigValue(pluginName, key string) (interface{}, bool)
}

// Plugin defines the interface that all plugins must implement.
type Plugin interface {
	// Name returns the unique identifier name of the plugin.
	Name() string

	// Initialize is called once when the plugin is loaded.
	// Used for setup, subscribing to events, registering commands.
	Initialize(api EditorAPI) error

	// Shutdown is called once when the editor is closing.
	Shutdown() error
}
