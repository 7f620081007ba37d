package plugin

import (
	"errors"
	"testing"
)

type recordingPlugin struct {
	name    string
	initErr error
	log     *[]string
}

func (p *recordingPlugin) Name() string { return p.name }

func (p *recordingPlugin) Initialize(api EditorAPI) error {
	*p.log = append(*p.log, "init "+p.name)
	return p.initErr
}

func (p *recordingPlugin) Shutdown() error {
	*p.log = append(*p.log, "shutdown "+p.name)
	return nil
}

func TestManagerLifecycleOrder(t *testing.T) {
	var log []string
	m := NewManager()
	for _, name := range []string{"a", "b", "c"} {
		p := &recordingPlugin{name: name, log: &log}
		if name == "b" {
			p.initErr = errors.New("boom")
		}
		if err := m.Register(p); err != nil {
			t.Fatalf("register %s: %v", name, err)
		}
	}

	m.InitializePlugins(nil)
	m.ShutdownPlugins()

	want := []string{"init a", "init b", "init c", "shutdown c", "shutdown b", "shutdown a"}
	if len(log) != len(want) {
		t.Fatalf("got %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("step %d: got %q, want %q", i, log[i], want[i])
		}
	}
}

func TestManagerRegisterRejects(t *testing.T) {
	var log []string
	m := NewManager()
	if err := m.Register(&recordingPlugin{name: "", log: &log}); err == nil {
		t.Fatalf("empty name should be rejected")
	}
	if err := m.Register(&recordingPlugin{name: "x", log: &log}); err != nil {
		t.Fatal(err)
	}
	if err := m.Register(&recordingPlugin{name: "x", log: &log}); err == nil {
		t.Fatalf("duplicate name should be rejected")
	}
	if _, ok := m.GetPlugin("x"); !ok {
		t.Fatalf("registered plugin should be retrievable")
	}
}
