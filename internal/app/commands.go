package app

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/bethropolis/worldedit/internal/command"
	"github.com/bethropolis/worldedit/internal/logger"
	"github.com/bethropolis/worldedit/internal/placement"
	"github.com/bethropolis/worldedit/internal/plugin"
	"github.com/bethropolis/worldedit/internal/theme"
	"github.com/bethropolis/worldedit/internal/types"
	"github.com/bethropolis/worldedit/internal/world"
)

// registerAppCommands registers the built-in ':' commands.
func registerAppCommands(a *App) {
	builtins := map[string]plugin.CommandFunc{
		"w":           a.cmdWrite,
		"q":           func([]string) error { a.quitChecked(false); return nil },
		"q!":          func([]string) error { a.quitChecked(true); return nil },
		"wq":          a.cmdWriteQuit,
		"e":           func(args []string) error { return a.cmdEdit(args, false) },
		"e!":          func(args []string) error { return a.cmdEdit(args, true) },
		"collections": a.cmdCollections,
		"load":        a.cmdLoad,
		"mode":        a.cmdMode,
		"theme":       a.cmdTheme,
		"autosave":    func([]string) error { a.autoSave(); return nil },
		"at":          a.cmdAt,
		"goto":        a.cmdGoto,
		"help":        a.cmdHelp,
	}
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := a.editorAPI.RegisterCommand(name, builtins[name]); err != nil {
			logger.Warnf("Failed to register ':%s' command: %v", name, err)
		}
	}
}

func (a *App) cmdWrite(args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	if err := a.editor.Save(path); err != nil {
		return fmt.Errorf("save failed: %w", err)
	}
	a.SetStatusMessage("Saved %s", a.editor.DocumentPath())
	return nil
}

func (a *App) cmdWriteQuit(args []string) error {
	if err := a.cmdWrite(args); err != nil {
		return err
	}
	a.quitChecked(false)
	return nil
}

func (a *App) cmdEdit(args []string, force bool) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: e <file>")
	}
	if !force && a.editor.Dirty() {
		return fmt.Errorf("no write since last change (use :e! to discard)")
	}
	if err := a.openDocument(args[0]); err != nil {
		return err
	}
	a.SetStatusMessage("Opened %s", args[0])
	return nil
}

func (a *App) cmdCollections([]string) error {
	parts := make([]string, 0)
	for _, c := range a.editor.World.Collections() {
		state := "loaded"
		if !c.Loaded() {
			state = "unloaded"
		}
		parts = append(parts, fmt.Sprintf("%s (%d, %s)", c.Name(), c.Len(), state))
	}
	a.SetStatusMessage("%s", strings.Join(parts, ", "))
	return nil
}

// cmdLoad brings an unloaded collection into the scene. Loading is a view
// operation and is not recorded in history.
func (a *App) cmdLoad(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: load <collection>")
	}
	name := strings.Join(args, " ")
	c, ok := a.editor.World.Collection(name)
	if !ok {
		return fmt.Errorf("no collection named %s", name)
	}
	if c.Loaded() {
		a.SetStatusMessage("%s is already loaded", name)
		return nil
	}
	c.Load()
	return nil
}

func (a *App) cmdMode(args []string) error {
	if len(args) == 0 {
		a.SetStatusMessage("Placement mode: %v", a.env.Mode)
		return nil
	}
	mode, ok := placement.ParseMode(args[0])
	if !ok {
		return fmt.Errorf("unknown placement mode %q (arbitrary, surface)", args[0])
	}
	a.setPlacementMode(mode)
	return nil
}

func (a *App) cmdTheme(args []string) error {
	if len(args) == 0 {
		a.SetStatusMessage("Current theme: %s", a.activeTheme.Name)
		return nil
	}
	t, err := theme.Load(args[0], &theme.SceneDark)
	if err != nil {
		return err
	}
	a.activeTheme = t
	a.tuiManager.GetScreen().SetStyle(t.GetStyle("Default"))
	a.SetStatusMessage("Theme set to: %s", t.Name)
	return nil
}

// cmdAt adds an object at exact coordinates: at <kind> <x> <z>.
func (a *App) cmdAt(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: at <marker|light|tree|particles> <x> <z>")
	}
	pos, err := parseXZ(args[1], args[2])
	if err != nil {
		return err
	}
	if a.driver.Active() {
		return fmt.Errorf("finish placing %s first", a.driver.Label())
	}
	if !a.editor.Run(command.ObjectAtFactory(a.env, world.Kind(args[0]), pos)) {
		return fmt.Errorf("cannot add a %s at a fixed position", args[0])
	}
	return nil
}

func (a *App) cmdGoto(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: goto <x> <z>")
	}
	pos, err := parseXZ(args[0], args[1])
	if err != nil {
		return err
	}
	a.view.SetCursor(pos)
	a.view.CenterOnCursor()
	return nil
}

func (a *App) cmdHelp([]string) error {
	a.SetStatusMessage("Commands: %s", strings.Join(a.modeHandler.Commands(), " "))
	return nil
}

func parseXZ(xs, zs string) (types.Vec3, error) {
	x, err := strconv.ParseFloat(xs, 32)
	if err != nil {
		return types.Vec3{}, fmt.Errorf("invalid x %q: %w", xs, err)
	}
	z, err := strconv.ParseFloat(zs, 32)
	if err != nil {
		return types.Vec3{}, fmt.Errorf("invalid z %q: %w", zs, err)
	}
	return types.NewVec3(float32(x), 0, float32(z)), nil
}
