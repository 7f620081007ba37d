package command

import (
	"github.com/bethropolis/worldedit/internal/placement"
	"github.com/bethropolis/worldedit/internal/types"
	"github.com/bethropolis/worldedit/internal/world"
)

type fakeDriver struct {
	mode  placement.Mode
	cb    placement.DragCallback
	drags int
}

func (d *fakeDriver) BeginDrag(mode placement.Mode, label string, cb placement.DragCallback) {
	d.mode, d.cb = mode, cb
	d.drags++
}

func (d *fakeDriver) click(x, z float32) bool {
	if d.cb == nil {
		return true
	}
	release := d.cb(true, types.Vec3{X: x, Z: z})
	if release {
		d.cb = nil
	}
	return release
}

func (d *fakeDriver) stop() {
	if d.cb != nil && d.cb(false, types.Vec3{}) {
		d.cb = nil
	}
}

type fakeReporter struct{ messages []string }

func (r *fakeReporter) ReportError(msg string, onClick func()) { r.messages = append(r.messages, msg) }

type fakePrompter struct {
	confirm bool
	answers []string
	cancel  bool
	asked   []string
}

func (p *fakePrompter) Confirm(question string) bool {
	p.asked = append(p.asked, question)
	return p.confirm
}

func (p *fakePrompter) Input(prompt, def string) (string, bool) {
	p.asked = append(p.asked, prompt)
	if p.cancel {
		return "", false
	}
	if len(p.answers) == 0 {
		return def, true
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a, true
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) ReadAll() (string, error) { return c.text, c.err }
func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

// runner executes and records like the editor's executor, queueing nested commands.
type runner struct {
	done    []Command
	running bool
	queue   []Command
}

func (r *runner) Do(cmd Command) {
	if r.running {
		r.queue = append(r.queue, cmd)
		return
	}
	r.running = true
	cmd.Execute()
	if cmd.Undoable() {
		r.done = append(r.done, cmd)
	}
	for len(r.queue) > 0 {
		next := r.queue[0]
		r.queue = r.queue[1:]
		next.Execute()
		if next.Undoable() {
			r.done = append(r.done, next)
		}
	}
	r.running = false
}

func (r *runner) undoAll() {
	for i := len(r.done) - 1; i >= 0; i-- {
		r.done[i].UnExecute()
	}
	r.done = nil
}

func newEnv() (*Env, *fakeDriver, *fakeReporter, *fakePrompter) {
	d := &fakeDriver{}
	rep := &fakeReporter{}
	p := &fakePrompter{confirm: true}
	env := &Env{
		World:     world.New("test", nil),
		Runner:    &runner{},
		Driver:    d,
		Reporter:  rep,
		Prompter:  p,
		Clipboard: &fakeClipboard{},
	}
	return env, d, rep, p
}

func pt(x, z float32) types.Vec3 { return types.Vec3{X: x, Z: z} }
