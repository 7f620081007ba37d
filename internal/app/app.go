// internal/app/app.go
package app

import (
	"fmt"
	"sync"
	"time"

	"github.com/bethropolis/worldedit/internal/command"
	"github.com/bethropolis/worldedit/internal/config"
	"github.com/bethropolis/worldedit/internal/core"
	"github.com/bethropolis/worldedit/internal/event"
	"github.com/bethropolis/worldedit/internal/input"
	"github.com/bethropolis/worldedit/internal/logger"
	"github.com/bethropolis/worldedit/internal/modehandler"
	"github.com/bethropolis/worldedit/internal/plugin"
	"github.com/bethropolis/worldedit/internal/statusbar"
	"github.com/bethropolis/worldedit/internal/theme"
	"github.com/bethropolis/worldedit/internal/tui"
	"github.com/bethropolis/worldedit/internal/world"
	"github.com/gdamore/tcell/v2"
)

// App encapsulates the core components and main loop of the editor.
//
// All editor state is touched only by the goroutine running Run. Terminal
// events arrive through the events channel and work from other goroutines
// (plugin timers) arrives through posted.
type App struct {
	cfg           *config.Config
	tuiManager    *tui.TUI
	editor        *core.Editor
	statusBar     *statusbar.StatusBar
	eventManager  *event.Manager
	pluginManager *plugin.Manager
	modeHandler   *modehandler.ModeHandler
	editorAPI     *appEditorAPI
	activeTheme   *theme.Theme

	view     *tui.View
	driver   *tui.PointerDriver
	prompter *tui.Prompter
	env      *command.Env
	preview  *tui.Preview

	// lastButtons is the mouse button state of the previous mouse event.
	lastButtons tcell.ButtonMask

	events        chan tcell.Event
	posted        chan func()
	quit          chan struct{}
	quitOnce      sync.Once
	redrawRequest chan struct{}
}

// NewApp creates the editor on a real terminal and opens filePath.
func NewApp(cfg *config.Config, filePath string) (*App, error) {
	activeTheme, err := loadTheme(cfg)
	if err != nil {
		logger.Warnf("App: %v, using the built-in theme", err)
	}
	tuiManager, err := tui.New(activeTheme.GetStyle("Default"))
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}
	a, err := newApp(cfg, tuiManager, activeTheme, filePath)
	if err != nil {
		tuiManager.Close()
		return nil, err
	}
	return a, nil
}

// NewAppWithScreen creates the editor on an existing screen, such as a
// tcell.SimulationScreen.
func NewAppWithScreen(cfg *config.Config, screen tcell.Screen, filePath string) (*App, error) {
	activeTheme, err := loadTheme(cfg)
	if err != nil {
		logger.Warnf("App: %v, using the built-in theme", err)
	}
	tuiManager, err := tui.NewWithScreen(screen, activeTheme.GetStyle("Default"))
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}
	return newApp(cfg, tuiManager, activeTheme, filePath)
}

func loadTheme(cfg *config.Config) (*theme.Theme, error) {
	if cfg.Editor.ThemeFile == "" {
		return &theme.SceneDark, nil
	}
	t, err := theme.Load(cfg.Editor.ThemeFile, &theme.SceneDark)
	if err != nil {
		return &theme.SceneDark, err
	}
	return t, nil
}

func newApp(cfg *config.Config, tuiManager *tui.TUI, activeTheme *theme.Theme, filePath string) (*App, error) {
	eventManager := event.NewManager()
	editor := core.NewEditor(eventManager, cfg.Editor.HistoryDepth)
	editor.SetAutoLoadCollections(cfg.Editor.AutoLoadCollections)

	sbConfig := statusbar.DefaultConfig()
	sbConfig.MessageTimeout = cfg.MessageTimeout()
	sbConfig.StyleDefault = activeTheme.GetStyle("StatusBar")
	sbConfig.StyleModified = activeTheme.GetStyle("StatusBar.modified")
	sbConfig.StyleMessage = activeTheme.GetStyle("StatusBar.message")
	sbConfig.StyleError = activeTheme.GetStyle("StatusBar.error")
	sbConfig.StylePlacing = activeTheme.GetStyle("StatusBar.placing")

	a := &App{
		cfg:           cfg,
		tuiManager:    tuiManager,
		editor:        editor,
		statusBar:     statusbar.New(sbConfig),
		eventManager:  eventManager,
		pluginManager: plugin.NewManager(),
		activeTheme:   activeTheme,
		view:          tui.NewView(float32(cfg.Editor.GridScale)),
		events:        make(chan tcell.Event, 64),
		posted:        make(chan func(), 16),
		quit:          make(chan struct{}),
		redrawRequest: make(chan struct{}, 1),
	}
	a.driver = tui.NewPointerDriver(func() world.Surface { return a.editor.World.Surface })
	a.prompter = tui.NewPrompter(tuiManager.GetScreen(), activeTheme, a.nextEvent, a.draw)

	var cb command.Clipboard = command.SystemClipboard{}
	if !cfg.Editor.SystemClipboard {
		cb = &memoryClipboard{}
	}
	a.env = &command.Env{
		World:     editor.World,
		Runner:    editor.Executor,
		Driver:    a.driver,
		Reporter:  a.statusBar,
		Prompter:  a.prompter,
		Events:    eventManager,
		Clipboard: cb,
		Mode:      cfg.Mode(),
	}
	a.env.OnErrorClick = a.focusOn

	a.modeHandler = modehandler.New(modehandler.Config{
		InputProcessor: input.NewInputProcessor(),
		EventManager:   eventManager,
		StatusBar:      a.statusBar,
		OnAction:       a.handleAction,
	})
	a.editorAPI = newEditorAPI(a)

	a.subscribeEvents()
	registerAppCommands(a)
	if err := registerPlugins(a.pluginManager); err != nil {
		logger.Warnf("App: %v", err)
	}

	if filePath != "" {
		if err := a.openDocument(filePath); err != nil {
			return nil, err
		}
	}
	a.statusBar.SetMode(a.env.Mode)

	a.pluginManager.InitializePlugins(a.editorAPI)
	return a, nil
}

// Run starts the application's main loop and returns when the user quits.
func (a *App) Run() error {
	defer a.tuiManager.Close()
	defer a.pluginManager.ShutdownPlugins()

	go a.eventLoop()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("worldedit - r region | d road | : command | q quit")
	a.requestRedraw()

	// Expired status messages disappear on the next tick.
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			if a.editor.Dirty() {
				logger.Warnf("Exited with unsaved changes.")
			}
			logger.Infof("Exiting application.")
			return nil
		case ev, ok := <-a.events:
			if !ok {
				// The terminal is gone; release goroutines blocked in post.
				a.requestQuit()
				return nil
			}
			if a.handleEvent(ev) {
				a.requestRedraw()
			}
		case fn := <-a.posted:
			fn()
			a.requestRedraw()
		case <-a.redrawRequest:
			a.draw()
		case <-ticker.C:
			a.draw()
		}
	}
}

// eventLoop forwards terminal events to the UI goroutine.
func (a *App) eventLoop() {
	defer close(a.events)
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.events <- ev:
		case <-a.quit:
			return
		}
	}
}

// nextEvent blocks for the next terminal event. Modal prompts use it to
// read input without returning to the main loop.
func (a *App) nextEvent() tcell.Event {
	select {
	case ev, ok := <-a.events:
		if !ok {
			return nil
		}
		return ev
	case <-a.quit:
		return nil
	}
}

// handleEvent processes one terminal event and reports whether to redraw.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.GetScreen().Sync()
		return true
	case *tcell.EventKey:
		return a.modeHandler.HandleKeyEvent(ev)
	case *tcell.EventMouse:
		return a.handleMouse(ev)
	}
	return false
}

// post runs fn on the UI goroutine. It may be called from any goroutine.
func (a *App) post(fn func()) {
	select {
	case a.posted <- fn:
	case <-a.quit:
	}
}

// requestQuit stops the main loop. Safe to call more than once.
func (a *App) requestQuit() {
	a.quitOnce.Do(func() { close(a.quit) })
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default:
	}
}

// sceneHeight is the number of rows above the status bar.
func (a *App) sceneHeight(height int) int {
	h := height - a.cfg.Editor.StatusBarHeight
	if h < 0 {
		return 0
	}
	return h
}
