// internal/plugin/manager.go
package plugin

import (
	"fmt"
	"sync"

	"github.com/bethropolis/worldedit/internal/logger"
)

// Manager handles the registration, initialization, and lifecycle of plugins.
type Manager struct {
	mu      sync.RWMutex
	plugins map[string]Plugin
	order   []string // registration order, used for init and reverse shutdown
	api     EditorAPI
}

// NewManager creates a new plugin manager.
func NewManager() *Manager {
	return &Manager{
		plugins: make(map[string]Plugin),
	}
}

// Register adds a plugin instance to the manager.
// This should be called before InitializePlugins.
func (m *Manager) Register(plugin Plugin) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := plugin.Name()
	if name == "" {
		return fmt.Errorf("plugin registration failed: plugin name cannot be empty")
	}
	if _, exists := m.plugins[name]; exists {
		return fmt.Errorf("plugin registration failed: plugin named '%s' already registered", name)
	}

	m.plugins[name] = plugin
	m.order = append(m.order, name)
	logger.Debugf("Plugin Manager: Registered plugin '%s'", name)
	return nil
}

// InitializePlugins calls Initialize on every registered plugin in
// registration order. A failing plugin is logged and skipped.
func (m *Manager) InitializePlugins(api EditorAPI) {
	m.mu.Lock()
	m.api = api
	pluginsToInit := m.orderedLocked()
	m.mu.Unlock()

	logger.Debugf("Plugin Manager: Initializing %d plugins...", len(pluginsToInit))
	for _, plugin := range pluginsToInit {
		if err := plugin.Initialize(api); err != nil {
			logger.Errorf("Plugin Manager: ERROR initializing plugin '%s': %v", plugin.Name(), err)
			continue
		}
		logger.Debugf("Plugin Manager: Successfully initialized plugin '%s'", plugin.Name())
	}
}

// ShutdownPlugins calls Shutdown on all registered plugins, last registered first.
func (m *Manager) ShutdownPlugins() {
	m.mu.RLock()
	pluginsToShutdown := m.orderedLocked()
	m.mu.RUnlock()

	logger.Debugf("Plugin Manager: Shutting down %d plugins...", len(pluginsToShutdown))
	for i := len(pluginsToShutdown) - 1; i >= 0; i-- {
		plugin := pluginsToShutdown[i]
		if err := plugin.Shutdown(); err != nil {
			logger.Errorf("Plugin Manager: ERROR shutting down plugin '%s': %v", plugin.Name(), err)
		}
	}
}

// GetPlugin returns a registered plugin by name. Use cautiously.
func (m *Manager) GetPlugin(name string) (Plugin, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, exists := m.plugins[name]
	return p, exists
}

func (m *Manager) orderedLocked() []Plugin {
	out := make([]Plugin, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, m.plugins[name])
	}
	return out
}
