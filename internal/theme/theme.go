// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/worldedit/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Theme maps style names to tcell styles. Names are dotted, most general
// first: "Object.road" falls back to "Object", then to "Default".
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle resolves name, falling back to its base name and then "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		baseName := name[:dotIndex]
		if style, ok := t.Styles[baseName]; ok {
			return style
		}
	}

	if defStyle, ok := t.Styles["Default"]; ok {
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// SceneDark is the built-in theme.
var SceneDark Theme

func init() {
	background := tcell.NewHexColor(0x1e2127)
	foreground := tcell.NewHexColor(0xc5cdd9)
	grid := tcell.NewHexColor(0x3b4048)
	orange := tcell.NewHexColor(0xd19a66)
	yellow := tcell.NewHexColor(0xe5c07b)
	green := tcell.NewHexColor(0x98c379)
	cyan := tcell.NewHexColor(0x56b6c2)
	blue := tcell.NewHexColor(0x61afef)
	magenta := tcell.NewHexColor(0xc678dd)
	red := tcell.NewHexColor(0xe06c75)

	baseStyle := tcell.StyleDefault.Background(background).Foreground(foreground)

	SceneDark = Theme{
		Name:   "Scene Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			"Default":   baseStyle,
			"Grid":      baseStyle.Foreground(grid),
			"Axis":      baseStyle.Foreground(grid).Bold(true),
			"Cursor":    baseStyle.Foreground(yellow).Bold(true),
			"Selection": baseStyle.Reverse(true),

			"Object":           baseStyle.Foreground(foreground),
			"Object.boundary":  baseStyle.Foreground(blue),
			"Object.road":      baseStyle.Foreground(orange),
			"Object.marker":    baseStyle.Foreground(cyan).Bold(true),
			"Object.light":     baseStyle.Foreground(yellow),
			"Object.tree":      baseStyle.Foreground(green),
			"Object.particles": baseStyle.Foreground(magenta),

			"Placement":       baseStyle.Foreground(green).Bold(true),
			"Placement.point": baseStyle.Foreground(background).Background(green),

			"StatusBar":          baseStyle.Foreground(background).Background(blue),
			"StatusBar.modified": baseStyle.Foreground(yellow).Background(blue).Bold(true),
			"StatusBar.message":  baseStyle.Foreground(foreground).Background(blue).Bold(true),
			"StatusBar.error":    baseStyle.Foreground(foreground).Background(red).Bold(true),
			"StatusBar.placing":  baseStyle.Foreground(background).Background(green),

			"Prompt":       baseStyle.Foreground(foreground).Background(grid),
			"Prompt.error": baseStyle.Foreground(red).Background(grid).Bold(true),
		},
	}
}
