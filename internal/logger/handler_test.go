package logger

import (
	"bytes"
	"context"
	"log/slog"
	"runtime"
	"strings"
	"testing"
	"time"
)

func newTestHandler(buf *bytes.Buffer, cfg Config) slog.Handler {
	cfg.process()
	base := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return newFilteringHandler(base, &cfg)
}

func record(msg, tag string) slog.Record {
	var pcs [1]uintptr
	runtime.Callers(2, pcs[:])
	r := slog.NewRecord(time.Now(), slog.LevelInfo, msg, pcs[0])
	if tag != "" {
		r.AddAttrs(slog.String(tagKey, tag))
	}
	return r
}

func TestFilteringHandlerTags(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler(&buf, Config{EnabledTags: []string{"History"}})

	_ = h.Handle(context.Background(), record("kept", "history"))
	_ = h.Handle(context.Background(), record("other-tag", "placement"))
	_ = h.Handle(context.Background(), record("untagged", ""))

	out := buf.String()
	if !strings.Contains(out, "kept") {
		t.Fatalf("expected tagged record to pass, got %q", out)
	}
	if strings.Contains(out, "other-tag") || strings.Contains(out, "untagged") {
		t.Fatalf("expected other records to be dropped, got %q", out)
	}
}

func TestFilteringHandlerDisabledWins(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler(&buf, Config{
		EnabledTags:  []string{"history"},
		DisabledTags: []string{"history"},
	})
	_ = h.Handle(context.Background(), record("dropped", "history"))
	if buf.Len() != 0 {
		t.Fatalf("disabled tag should override enabled, got %q", buf.String())
	}
}

func TestFilteringHandlerPackages(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler(&buf, Config{DisabledPackages: []string{"logger"}})
	_ = h.Handle(context.Background(), record("from-logger-pkg", ""))
	if buf.Len() != 0 {
		t.Fatalf("record from disabled package should be dropped, got %q", buf.String())
	}

	buf.Reset()
	h = newTestHandler(&buf, Config{DisabledFiles: []string{"other.go"}})
	_ = h.Handle(context.Background(), record("from-test-file", ""))
	if !strings.Contains(buf.String(), "from-test-file") {
		t.Fatalf("record should pass when its file is not disabled")
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"debug", slog.LevelDebug, true},
		{"WARNING", slog.LevelWarn, true},
		{"err", slog.LevelError, true},
		{"", slog.LevelInfo, true},
		{"loud", slog.LevelInfo, false},
	}
	for _, c := range cases {
		got, ok := ParseLevel(c.in)
		if got != c.want || ok != c.ok {
			t.Fatalf("ParseLevel(%q) = %v,%v want %v,%v", c.in, got, ok, c.want, c.ok)
		}
	}
}
