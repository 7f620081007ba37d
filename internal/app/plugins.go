package app

import (
	"fmt"

	"github.com/bethropolis/worldedit/internal/logger"
	"github.com/bethropolis/worldedit/internal/plugin"
	"github.com/bethropolis/worldedit/plugins/autosave"
	"github.com/bethropolis/worldedit/plugins/objectcount"
)

// registerPlugins registers all built-in plugins with the manager.
func registerPlugins(pm *plugin.Manager) error {
	if pm == nil {
		return fmt.Errorf("plugin manager is nil")
	}

	pluginConstructors := []func() plugin.Plugin{
		func() plugin.Plugin { return objectcount.New() },
		func() plugin.Plugin { return autosave.New() },
	}

	var finalErr error
	for _, newPlugin := range pluginConstructors {
		p := newPlugin()
		if err := pm.Register(p); err != nil {
			wrappedErr := fmt.Errorf("failed to register plugin '%s': %w", p.Name(), err)
			logger.Errorf("%v", wrappedErr)
			if finalErr == nil {
				finalErr = wrappedErr
			}
		}
	}
	return finalErr
}
