package autosave

import (
	"sync"
	"time"

	"github.com/bethropolis/worldedit/internal/logger"
	"github.com/bethropolis/worldedit/internal/plugin"
)

// Ensure AutoSave implements plugin.Plugin
var _ plugin.Plugin = (*AutoSave)(nil)

const (
	defaultEnabled  = true
	defaultInterval = 1 * time.Minute
)

// AutoSave periodically asks the editor to write a compressed snapshot of
// the document when it changed since the last autosave. The snapshot itself
// is written on the UI goroutine; this plugin only polls and requests.
type AutoSave struct {
	api plugin.EditorAPI

	mutex    sync.RWMutex // protects the config fields below
	enabled  bool
	interval time.Duration

	stopChan chan struct{}
	wg       sync.WaitGroup
}

// New creates a new instance of the AutoSave plugin.
func New() *AutoSave {
	return &AutoSave{
		enabled:  defaultEnabled,
		interval: defaultInterval,
	}
}

// Name returns the unique name of the plugin.
func (p *AutoSave) Name() string {
	return "autosave"
}

// Initialize reads [plugins.autosave] and starts the polling loop if enabled.
func (p *AutoSave) Initialize(api plugin.EditorAPI) error {
	p.api = api
	pluginName := p.Name()

	p.mutex.Lock()
	if enabledVal, ok := api.GetPluginConfigValue(pluginName, "enabled"); ok {
		if boolVal, isBool := enabledVal.(bool); isBool {
			p.enabled = boolVal
		} else {
			logger.Warnf("%s: Invalid type for 'enabled' config (%T), using default (%v)", pluginName, enabledVal, p.enabled)
		}
	}
	if intervalVal, ok := api.GetPluginConfigValue(pluginName, "interval"); ok {
		if strVal, isStr := intervalVal.(string); isStr {
			parsedInterval, err := time.ParseDuration(strVal)
			if err != nil {
				logger.Warnf("%s: Invalid format for 'interval' config ('%s'): %v. Using default (%v)", pluginName, strVal, err, p.interval)
			} else if parsedInterval <= 0 {
				logger.Warnf("%s: 'interval' config must be positive ('%s'). Using default (%v)", pluginName, strVal, p.interval)
			} else {
				p.interval = parsedInterval
			}
		} else {
			logger.Warnf("%s: Invalid type for 'interval' config (%T), using default (%v)", pluginName, intervalVal, p.interval)
		}
	}
	isEnabled := p.enabled
	interval := p.interval
	p.mutex.Unlock()

	logger.Infof("%s initialized. Enabled: %v, Interval: %v", pluginName, isEnabled, interval)

	if isEnabled {
		p.stopChan = make(chan struct{})
		p.wg.Add(1)
		go p.saverLoop(interval)
	}
	return nil
}

// Shutdown signals the polling goroutine to stop and waits for it.
func (p *AutoSave) Shutdown() error {
	if p.stopChan != nil {
		close(p.stopChan)
		p.wg.Wait()
		p.stopChan = nil
		logger.Debugf("%s: Saver goroutine stopped.", p.Name())
	}
	return nil
}

// Interval is the configured polling interval.
func (p *AutoSave) Interval() time.Duration {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.interval
}

// Enabled reports whether the polling loop runs.
func (p *AutoSave) Enabled() bool {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.enabled
}

func (p *AutoSave) saverLoop(interval time.Duration) {
	defer p.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.requestIfDirty()
		case <-p.stopChan:
			return
		}
	}
}

// requestIfDirty asks for an autosave when the document changed since the
// last one. It reports whether a request was made.
func (p *AutoSave) requestIfDirty() bool {
	if p.api == nil {
		logger.Errorf("%s: API is nil in requestIfDirty!", p.Name())
		return false
	}
	if !p.api.IsAutoSaveDirty() {
		return false
	}
	if p.api.DocumentPath() == "" {
		logger.Debugf("%s: Document has no path, skipping autosave.", p.Name())
		return false
	}
	logger.Debugf("%s: Requesting autosave of %s", p.Name(), p.api.DocumentPath())
	p.api.RequestAutoSave()
	return true
}
