// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/worldedit/internal/logger"
	"github.com/bethropolis/worldedit/internal/placement"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger  logger.Config                     `toml:"logger"`
	Editor  EditorConfig                      `toml:"editor"`
	Plugins map[string]map[string]interface{} `toml:"plugins"` // [plugins.<name>] tables

	undecoded []string
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	HistoryDepth        int     `toml:"history_depth"`
	PlacementMode       string  `toml:"placement_mode"` // "arbitrary" or "surface"
	MessageTimeoutMs    int     `toml:"message_timeout_ms"`
	GridScale           float64 `toml:"grid_scale"` // world units per terminal cell
	AutoLoadCollections bool    `toml:"auto_load_collections"`
	SystemClipboard     bool    `toml:"system_clipboard"`
	StatusBarHeight     int     `toml:"status_bar_height"`
	ThemeFile           string  `toml:"theme_file"` // TOML overlay on the built-in theme
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			HistoryDepth:     DefaultHistoryDepth,
			PlacementMode:    DefaultPlacementMode,
			MessageTimeoutMs: int(MessageTimeout / time.Millisecond),
			GridScale:        DefaultGridScale,
			SystemClipboard:  SystemClipboard,
			StatusBarHeight:  StatusBarHeight,
		},
		Plugins: make(map[string]map[string]interface{}),
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/worldedit/config.toml, or "" when no config dir is known.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName)
}

// loadFromFile decodes filePath on top of cfg. A missing file is not an error.
func loadFromFile(filePath string, cfg *Config) error {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}
	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		// Logger is not initialized yet; keep the keys for the caller to report.
		cfg.undecoded = make([]string, len(undecoded))
		for i, k := range undecoded {
			cfg.undecoded[i] = k.String()
		}
	}
	return nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.HistoryDepth <= 0 {
		c.Editor.HistoryDepth = defaults.Editor.HistoryDepth
	}
	if _, ok := placement.ParseMode(c.Editor.PlacementMode); !ok {
		c.Editor.PlacementMode = defaults.Editor.PlacementMode
	}
	if c.Editor.MessageTimeoutMs <= 0 {
		c.Editor.MessageTimeoutMs = defaults.Editor.MessageTimeoutMs
	}
	if c.Editor.GridScale <= 0 {
		c.Editor.GridScale = defaults.Editor.GridScale
	}
	if c.Editor.StatusBarHeight <= 0 {
		c.Editor.StatusBarHeight = defaults.Editor.StatusBarHeight
	}
	if _, ok := logger.ParseLevel(c.Logger.LogLevel); !ok {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if c.Plugins == nil {
		c.Plugins = make(map[string]map[string]interface{})
	}
}

// Load merges defaults, the TOML file at path (the default location when
// empty) and any flags that were set, then validates the result.
// The returned config is usable even when err is non-nil.
func Load(path string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()
	if path == "" && flags != nil && flags.ConfigFilePath != nil {
		path = *flags.ConfigFilePath
	}
	if path == "" {
		path = DefaultPath()
	}

	var err error
	if path != "" {
		err = loadFromFile(path, cfg)
	}
	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return cfg, err
}

// LoadConfig loads the process-wide configuration once. It should be called from main.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		loadedConfig, loadErr = Load(configFilePath, flags)
	})
	return loadedConfig, loadErr
}

// Get returns the loaded application configuration. Panics if LoadConfig wasn't called.
func Get() *Config {
	if loadedConfig == nil {
		panic("config.Get() called before config.LoadConfig()")
	}
	return loadedConfig
}

// Undecoded lists config keys the file set but no field consumed.
func (c *Config) Undecoded() []string { return c.undecoded }

// Mode returns the configured placement mode.
func (c *Config) Mode() placement.Mode {
	m, _ := placement.ParseMode(c.Editor.PlacementMode)
	return m
}

// MessageTimeout returns the status message timeout.
func (c *Config) MessageTimeout() time.Duration {
	return time.Duration(c.Editor.MessageTimeoutMs) * time.Millisecond
}

// GetPluginConfigValue reads key from the [plugins.<plugin>] table.
func (c *Config) GetPluginConfigValue(plugin, key string) (interface{}, bool) {
	table, ok := c.Plugins[plugin]
	if !ok {
		return nil, false
	}
	v, ok := table[key]
	return v, ok
}
