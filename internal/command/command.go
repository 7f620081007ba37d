// Package command defines reversible editor commands and the factories that
// build them from user input.
//
// A Command captures everything it needs at construction. Execute may be
// called again after UnExecute (redo) and must re-apply the same effect to the
// same object instances. UnExecute is only valid after Execute; the history
// manager never calls it out of order.
package command

// Command is one reversible mutation of the world.
type Command interface {
	Execute()
	UnExecute()
	// Undoable is fixed per command. Commands that return false are executed
	// but never recorded in history.
	Undoable() bool
	Description() string
}

// Factory gathers parameters, usually by prompting, and builds a Command.
// CreateCommand returns nil when the user cancelled; callers must not record anything.
type Factory interface {
	CreateCommand() Command
}

// FactoryFunc adapts a function to Factory.
type FactoryFunc func() Command

func (f FactoryFunc) CreateCommand() Command { return f() }

// Runner is the single entry point that executes commands and records them.
// Code that needs to issue a command from inside another command's callbacks
// goes through a Runner instead of calling Execute directly.
type Runner interface {
	Do(cmd Command)
}

// Prompter is the modal dialog surface factories use to ask the user.
type Prompter interface {
	// Confirm asks a yes/no question.
	Confirm(question string) bool
	// Input asks for a line of text, pre-filled with def. ok is false on cancel.
	Input(prompt, def string) (value string, ok bool)
}
