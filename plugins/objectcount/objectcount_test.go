package objectcount

import (
	"fmt"
	"testing"

	"github.com/bethropolis/worldedit/internal/event"
	"github.com/bethropolis/worldedit/internal/plugin"
)

type fakeAPI struct {
	events   *event.Manager
	commands map[string]plugin.CommandFunc
	byKind   map[string]int
	status   string
}

func (f *fakeAPI) DocumentPath() string  { return "" }
func (f *fakeAPI) IsDirty() bool         { return false }
func (f *fakeAPI) IsAutoSaveDirty() bool { return false }
func (f *fakeAPI) RequestAutoSave()      {}
func (f *fakeAPI) ObjectCount() int {
	n := 0
	for _, c := range f.byKind {
		n += c
	}
	return n
}
func (f *fakeAPI) ObjectCountByKind() map[string]int { return f.byKind }
func (f *fakeAPI) DispatchEvent(t event.Type, data interface{}) {
	f.events.Dispatch(t, data)
}
func (f *fakeAPI) SubscribeEvent(t event.Type, h event.Handler) { f.events.Subscribe(t, h) }
func (f *fakeAPI) RegisterCommand(name string, fn plugin.CommandFunc) error {
	f.commands[name] = fn
	return nil
}
func (f *fakeAPI) SetStatusMessage(format string, args ...interface{}) {
	f.status = fmt.Sprintf(format, args...)
}
func (f *fakeAPI) GetPluginConfigValue(string, string) (interface{}, bool) { return nil, false }

func TestCountCommand(t *testing.T) {
	api := &fakeAPI{
		events:   event.NewManager(),
		commands: map[string]plugin.CommandFunc{},
		byKind:   map[string]int{"tree": 2, "boundary": 1},
	}
	p := New()
	if err := p.Initialize(api); err != nil {
		t.Fatal(err)
	}
	api.DispatchEvent(event.TypeObjectAdded, event.ObjectData{})
	api.DispatchEvent(event.TypeObjectAdded, event.ObjectData{})
	api.DispatchEvent(event.TypeObjectRemoved, event.ObjectData{})

	cmd, ok := api.commands["count"]
	if !ok {
		t.Fatalf("count command not registered")
	}
	if err := cmd(nil); err != nil {
		t.Fatal(err)
	}
	want := "Objects: 3 (boundary: 1, tree: 2), session +2 -1"
	if api.status != want {
		t.Fatalf("status = %q, want %q", api.status, want)
	}
}
