// internal/modehandler/modehandler.go
package modehandler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bethropolis/worldedit/internal/event"
	"github.com/bethropolis/worldedit/internal/input"
	"github.com/bethropolis/worldedit/internal/logger"
	"github.com/bethropolis/worldedit/internal/plugin"
	"github.com/bethropolis/worldedit/internal/statusbar"
	"github.com/gdamore/tcell/v2"
)

// InputMode defines the different states for user input.
type InputMode int

const (
	ModeNormal InputMode = iota
	ModeCommand
)

// ActionFunc performs a normal-mode action and reports whether the screen
// needs a redraw.
type ActionFunc func(ev input.ActionEvent) bool

// ModeHandler routes key events either to editor actions or to the ':'
// command line, and owns the command registry.
type ModeHandler struct {
	inputProcessor *input.InputProcessor
	eventManager   *event.Manager
	statusBar      *statusbar.StatusBar
	onAction       ActionFunc

	currentMode InputMode
	cmdBuffer   []rune
	commands    map[string]plugin.CommandFunc
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	InputProcessor *input.InputProcessor
	EventManager   *event.Manager
	StatusBar      *statusbar.StatusBar
	OnAction       ActionFunc
}

// New creates a new ModeHandler.
func New(cfg Config) *ModeHandler {
	if cfg.InputProcessor == nil || cfg.StatusBar == nil || cfg.OnAction == nil {
		panic("modehandler.New: Missing required dependencies in Config")
	}
	return &ModeHandler{
		inputProcessor: cfg.InputProcessor,
		eventManager:   cfg.EventManager,
		statusBar:      cfg.StatusBar,
		onAction:       cfg.OnAction,
		currentMode:    ModeNormal,
		commands:       make(map[string]plugin.CommandFunc),
	}
}

// HandleKeyEvent decides what to do based on current mode and key event.
// Returns true if the event requires a redraw.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	mh.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: ev})

	if mh.currentMode == ModeCommand {
		return mh.handleKeyCommand(ev)
	}

	actionEvent := mh.inputProcessor.ProcessEvent(ev)
	if actionEvent.Action == input.ActionCommandLine {
		mh.currentMode = ModeCommand
		mh.cmdBuffer = mh.cmdBuffer[:0]
		mh.statusBar.SetTemporaryMessage(":")
		logger.Debugf("ModeHandler: Entering Command Mode")
		return true
	}
	if actionEvent.Action == input.ActionUnknown {
		return false
	}
	return mh.onAction(actionEvent)
}

// RegisterCommand adds a command to the registry.
func (mh *ModeHandler) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if strings.ContainsAny(name, " \t") {
		return fmt.Errorf("command name '%s' cannot contain spaces", name)
	}
	if _, exists := mh.commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	mh.commands[name] = cmdFunc
	logger.Debugf("ModeHandler: Registered command ':%s'", name)
	return nil
}

// Commands lists the registered command names in order.
func (mh *ModeHandler) Commands() []string {
	names := make([]string, 0, len(mh.commands))
	for name := range mh.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ExecuteCommand parses and runs a command line such as "w town.yaml".
func (mh *ModeHandler) ExecuteCommand(line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}
	cmdFunc, exists := mh.commands[parts[0]]
	if !exists {
		return fmt.Errorf("unknown command: %s", parts[0])
	}
	logger.Debugf("ModeHandler: Executing command ':%s' with args %v", parts[0], parts[1:])
	return cmdFunc(parts[1:])
}

// GetCurrentMode returns the current input mode.
func (mh *ModeHandler) GetCurrentMode() InputMode {
	return mh.currentMode
}

// GetCommandBuffer returns the command line being typed.
func (mh *ModeHandler) GetCommandBuffer() string {
	if mh.currentMode == ModeCommand {
		return string(mh.cmdBuffer)
	}
	return ""
}
