// internal/config/flags.go
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Flags holds values parsed from command-line flags.
// Use pointers to distinguish between unset flags and zero-value flags.
type Flags struct {
	ConfigFilePath  *string
	LogLevel        *string
	LogFilePath     *string
	HistoryDepth    *int
	PlacementMode   *string
	GridScale       *float64
	EnableTags      *string
	DisableTags     *string
	EnablePkgs      *string
	DisablePkgs     *string
	EnableFiles     *string
	DisableFiles    *string
	DebugLog        *bool
	SystemClipboard *bool
	ThemeFile       *string

	fs *pflag.FlagSet
}

// DefineFlags registers the flags on fs, typically a cobra command's flag set.
func (f *Flags) DefineFlags(fs *pflag.FlagSet) {
	f.fs = fs
	f.ConfigFilePath = fs.StringP("config", "c", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", AppName, DefaultConfigFileName))
	f.LogLevel = fs.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.LogFilePath = fs.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	f.HistoryDepth = fs.Int("history-depth", 0, "Maximum number of undo steps - Overrides config file")
	f.PlacementMode = fs.String("placement-mode", "", "Point placement mode (arbitrary, surface) - Overrides config file")
	f.GridScale = fs.Float64("grid-scale", 0, "World units per terminal cell - Overrides config file")
	f.EnableTags = fs.String("log-tags", "", "Comma-separated list of tags to enable - Overrides config file")
	f.DisableTags = fs.String("log-disable-tags", "", "Comma-separated list of tags to disable - Overrides config file")
	f.EnablePkgs = fs.String("log-packages", "", "Comma-separated list of packages to enable - Overrides config file")
	f.DisablePkgs = fs.String("log-disable-packages", "", "Comma-separated list of packages to disable - Overrides config file")
	f.EnableFiles = fs.String("log-files", "", "Comma-separated list of files to enable - Overrides config file")
	f.DisableFiles = fs.String("log-disable-files", "", "Comma-separated list of files to disable - Overrides config file")
	f.DebugLog = fs.Bool("debug-log", false, "Enable verbose debug logging for the logger filtering system")
	f.ThemeFile = fs.String("theme", "", "Path to a TOML theme file - Overrides config file")
	f.SystemClipboard = fs.Bool("system-clipboard", SystemClipboard, "Use the system clipboard for copy and paste")
}

// ApplyOverrides updates cfg with the flags that were set on the command line.
func (f *Flags) ApplyOverrides(cfg *Config) {
	if f.fs == nil {
		return
	}
	f.fs.Visit(func(fl *pflag.Flag) {
		switch fl.Name {
		case "loglevel":
			if *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = *f.LogFilePath
		case "history-depth":
			if *f.HistoryDepth > 0 {
				cfg.Editor.HistoryDepth = *f.HistoryDepth
			}
		case "placement-mode":
			if *f.PlacementMode != "" {
				cfg.Editor.PlacementMode = *f.PlacementMode
			}
		case "grid-scale":
			if *f.GridScale > 0 {
				cfg.Editor.GridScale = *f.GridScale
			}
		case "theme":
			cfg.Editor.ThemeFile = *f.ThemeFile
		case "system-clipboard":
			cfg.Editor.SystemClipboard = *f.SystemClipboard
		case "log-tags":
			cfg.Logger.EnabledTags = splitCommaList(*f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = splitCommaList(*f.DisableTags)
		case "log-packages":
			cfg.Logger.EnabledPackages = splitCommaList(*f.EnablePkgs)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = splitCommaList(*f.DisablePkgs)
		case "log-files":
			cfg.Logger.EnabledFiles = splitCommaList(*f.EnableFiles)
		case "log-disable-files":
			cfg.Logger.DisabledFiles = splitCommaList(*f.DisableFiles)
		}
	})
}

// splitCommaList splits a comma-separated list, dropping empty items.
func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
