// internal/theme/loader.go
package theme

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/worldedit/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// TomlStyleDef is one [styles.<Name>] table. Unset fields inherit.
type TomlStyleDef struct {
	Fg        *string `toml:"fg"`
	Bg        *string `toml:"bg"`
	Bold      *bool   `toml:"bold"`
	Italic    *bool   `toml:"italic"`
	Underline *bool   `toml:"underline"`
	Reverse   *bool   `toml:"reverse"`
}

// TomlTheme is the layout of a theme file.
type TomlTheme struct {
	Name   string                  `toml:"name"`
	IsDark bool                    `toml:"is_dark"`
	Styles map[string]TomlStyleDef `toml:"styles"`
}

// Load returns base overlaid with the styles in the theme file at path.
// Styles the file does not mention keep base's value; the ones it does
// inherit unset attributes from the built-in style of the same name.
func Load(path string, base *Theme) (*Theme, error) {
	var tt TomlTheme
	metadata, err := toml.DecodeFile(path, &tt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme file '%s': %w", path, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Theme file '%s': Unrecognized keys: %v", path, undecoded)
	}
	if tt.Name == "" {
		tt.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	t := &Theme{Name: tt.Name, IsDark: tt.IsDark, Styles: make(map[string]tcell.Style, len(base.Styles))}
	for name, style := range base.Styles {
		t.Styles[name] = style
	}
	for name, def := range tt.Styles {
		style, err := def.apply(base.GetStyle(name))
		if err != nil {
			logger.Warnf("Theme '%s': style '%s' skipped: %v", t.Name, name, err)
			continue
		}
		t.Styles[name] = style
	}
	logger.Debugf("Loaded theme '%s' from '%s' (%d override(s))", t.Name, path, len(tt.Styles))
	return t, nil
}

func (d TomlStyleDef) apply(style tcell.Style) (tcell.Style, error) {
	if d.Fg != nil {
		color, err := parseColor(*d.Fg)
		if err != nil {
			return style, fmt.Errorf("foreground: %w", err)
		}
		style = style.Foreground(color)
	}
	if d.Bg != nil {
		color, err := parseColor(*d.Bg)
		if err != nil {
			return style, fmt.Errorf("background: %w", err)
		}
		style = style.Background(color)
	}
	if d.Bold != nil {
		style = style.Bold(*d.Bold)
	}
	if d.Italic != nil {
		style = style.Italic(*d.Italic)
	}
	if d.Underline != nil {
		style = style.Underline(*d.Underline)
	}
	if d.Reverse != nil {
		style = style.Reverse(*d.Reverse)
	}
	return style, nil
}

// parseColor accepts #RRGGBB, tcell color names, "reset" and "default".
func parseColor(s string) (tcell.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(s, "#") {
		if len(s) != 7 {
			return tcell.ColorDefault, fmt.Errorf("invalid hex color '%s', must be #RRGGBB", s)
		}
		val, err := strconv.ParseInt(s[1:], 16, 32)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("invalid hex value '%s': %w", s, err)
		}
		return tcell.NewHexColor(int32(val)), nil
	}
	switch s {
	case "reset":
		return tcell.ColorReset, nil
	case "default":
		return tcell.ColorDefault, nil
	}
	if c, ok := tcell.ColorNames[s]; ok {
		return c, nil
	}
	return tcell.ColorDefault, fmt.Errorf("unknown color '%s'", s)
}
