package core

import (
	"github.com/bethropolis/worldedit/internal/command"
	"github.com/bethropolis/worldedit/internal/core/history"
	"github.com/bethropolis/worldedit/internal/logger"
)

// Executor is the one place commands are executed and recorded. A command
// issued while another is executing is queued and runs, in order, right
// after the current one has finished and been recorded.
type Executor struct {
	history *history.Manager
	running bool
	queue   []command.Command
}

var _ command.Runner = (*Executor)(nil)

func NewExecutor(h *history.Manager) *Executor {
	return &Executor{history: h}
}

// Do executes cmd and records it when it is undoable.
func (x *Executor) Do(cmd command.Command) {
	if cmd == nil {
		return
	}
	if x.running {
		logger.DebugTagf("executor", "Queued %q", cmd.Description())
		x.queue = append(x.queue, cmd)
		return
	}

	x.running = true
	defer func() {
		x.running = false
		x.queue = nil
	}()

	x.execute(cmd)
	for len(x.queue) > 0 {
		next := x.queue[0]
		x.queue = x.queue[1:]
		x.execute(next)
	}
}

// Run builds a command with f and executes it. It reports false when the
// factory was cancelled and nothing ran.
func (x *Executor) Run(f command.Factory) bool {
	cmd := f.CreateCommand()
	if cmd == nil {
		logger.DebugTagf("executor", "Factory cancelled")
		return false
	}
	x.Do(cmd)
	return true
}

// Busy reports whether a command is executing right now.
func (x *Executor) Busy() bool { return x.running }

func (x *Executor) execute(cmd command.Command) {
	logger.DebugTagf("executor", "Executing %q", cmd.Description())
	cmd.Execute()
	if cmd.Undoable() && x.history != nil {
		x.history.Push(cmd)
	}
}
