package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bethropolis/worldedit/internal/placement"
	"github.com/spf13/pflag"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"), nil)
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg.Editor.HistoryDepth != DefaultHistoryDepth || cfg.Mode() != placement.ModeArbitrary {
		t.Fatalf("unexpected defaults: %+v", cfg.Editor)
	}
	if cfg.MessageTimeout() != MessageTimeout {
		t.Fatalf("timeout = %v", cfg.MessageTimeout())
	}
}

func TestLoadFileAndValidate(t *testing.T) {
	path := writeConfig(t, `
[logger]
log_level = "loud"

[editor]
history_depth = 50
placement_mode = "surface"
grid_scale = -1
unknown_key = 1

[plugins.autosave]
interval_seconds = 10
`)
	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Editor.HistoryDepth != 50 || cfg.Mode() != placement.ModeSurface {
		t.Fatalf("file values not applied: %+v", cfg.Editor)
	}
	if cfg.Editor.GridScale != DefaultGridScale {
		t.Fatalf("invalid grid scale should reset, got %v", cfg.Editor.GridScale)
	}
	if cfg.Logger.LogLevel != "info" {
		t.Fatalf("invalid log level should reset, got %q", cfg.Logger.LogLevel)
	}
	if len(cfg.Undecoded()) != 1 {
		t.Fatalf("expected one undecoded key, got %v", cfg.Undecoded())
	}
	v, ok := cfg.GetPluginConfigValue("autosave", "interval_seconds")
	if !ok || v.(int64) != 10 {
		t.Fatalf("plugin value = %v (%T)", v, v)
	}
	if _, ok := cfg.GetPluginConfigValue("missing", "x"); ok {
		t.Fatalf("missing plugin table should not resolve")
	}
}

func TestLoadParseError(t *testing.T) {
	path := writeConfig(t, "[editor\nhistory_depth = ")
	cfg, err := Load(path, nil)
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if cfg == nil || cfg.Editor.HistoryDepth != DefaultHistoryDepth {
		t.Fatalf("config should fall back to defaults on error")
	}
}

func TestFlagOverrides(t *testing.T) {
	path := writeConfig(t, "[editor]\nhistory_depth = 50\nplacement_mode = \"surface\"\n")
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	var flags Flags
	flags.DefineFlags(fs)
	if err := fs.Parse([]string{"--history-depth", "7", "--log-tags", "history, placement,", "--config", path}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	cfg, err := Load("", &flags)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Editor.HistoryDepth != 7 {
		t.Fatalf("flag should override file, got %d", cfg.Editor.HistoryDepth)
	}
	if cfg.Mode() != placement.ModeSurface {
		t.Fatalf("unset flag must not override the file")
	}
	if len(cfg.Logger.EnabledTags) != 2 || cfg.Logger.EnabledTags[1] != "placement" {
		t.Fatalf("tags = %v", cfg.Logger.EnabledTags)
	}
}
