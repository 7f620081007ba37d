package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const tagKey = "tag" // The slog attribute key used for filtering tags

// debugFilter traces every filtering decision to stderr. Toggle with SetDebugFilter.
var debugFilter bool

// SetDebugFilter enables tracing of the filtering handler's decisions.
func SetDebugFilter(on bool) { debugFilter = on }

// filteringHandler wraps a base slog.Handler to add tag/package/file filtering.
type filteringHandler struct {
	baseHandler slog.Handler
	cfg         *Config // processed config
}

func newFilteringHandler(base slog.Handler, cfg *Config) *filteringHandler {
	return &filteringHandler{baseHandler: base, cfg: cfg}
}

func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.baseHandler.Enabled(ctx, level)
}

// passes applies the allow/deny pair for one dimension. Deny wins.
func passes(enabled, disabled map[string]struct{}, key string) bool {
	key = strings.ToLower(key)
	if disabled != nil {
		if _, found := disabled[key]; found {
			return false
		}
	}
	if enabled != nil {
		if _, found := enabled[key]; !found {
			return false
		}
	}
	return true
}

func tracef(format string, args ...interface{}) {
	if debugFilter {
		fmt.Fprintf(os.Stderr, "[FILTER] "+format+"\n", args...)
	}
}

// Handle applies filtering logic before passing the record to the base handler.
func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg == nil {
		return h.baseHandler.Handle(ctx, r)
	}

	var pkg, file string
	if r.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{r.PC})
		frame, _ := frames.Next()
		if frame.File != "" {
			file = filepath.Base(frame.File)
			pkg = filepath.Base(filepath.Dir(frame.File))
		}
	}

	if pkg != "" && !passes(h.cfg.enabledPackagesSet, h.cfg.disabledPackagesSet, pkg) {
		tracef("dropped %q: package %s", r.Message, pkg)
		return nil
	}
	if file != "" && !passes(h.cfg.enabledFilesSet, h.cfg.disabledFilesSet, file) {
		tracef("dropped %q: file %s", r.Message, file)
		return nil
	}

	var tagValue string
	var tagFound bool
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			tagValue = a.Value.String()
			tagFound = true
			return false
		}
		return true
	})

	if tagFound {
		if !passes(h.cfg.enabledTagsSet, h.cfg.disabledTagsSet, tagValue) {
			tracef("dropped %q: tag %s", r.Message, tagValue)
			return nil
		}
	} else if h.cfg.enabledTagsSet != nil {
		// Filtering for specific tags drops untagged records.
		tracef("dropped %q: untagged", r.Message)
		return nil
	}

	return h.baseHandler.Handle(ctx, r)
}

func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithAttrs(attrs), h.cfg)
}

func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithGroup(name), h.cfg)
}
