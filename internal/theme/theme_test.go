package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestGetStyleFallback(t *testing.T) {
	th := &SceneDark
	if th.GetStyle("Object.road") == th.GetStyle("Object") {
		t.Fatalf("road should have its own style")
	}
	if th.GetStyle("Object.unknown") != th.GetStyle("Object") {
		t.Fatalf("unknown sub-style should fall back to its base")
	}
	if th.GetStyle("Nope") != th.GetStyle("Default") {
		t.Fatalf("unknown style should fall back to Default")
	}
}

func TestLoadOverridesBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.toml")
	content := `
[styles."Object.road"]
fg = "#ff0000"
bold = true

[styles.Grid]
fg = "nope"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	th, err := Load(path, &SceneDark)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if th.Name != "mine" {
		t.Fatalf("name should default to the file name, got %q", th.Name)
	}
	fg, _, attrs := th.GetStyle("Object.road").Decompose()
	if fg != tcell.NewHexColor(0xff0000) || attrs&tcell.AttrBold == 0 {
		t.Fatalf("override not applied")
	}
	if th.GetStyle("Grid") != SceneDark.GetStyle("Grid") {
		t.Fatalf("invalid override should keep the built-in style")
	}
	if th.GetStyle("Object.tree") != SceneDark.GetStyle("Object.tree") {
		t.Fatalf("untouched styles come from the base theme")
	}
}

func TestParseColor(t *testing.T) {
	for _, s := range []string{"#00ff00", "red", " Reset ", "default"} {
		if _, err := parseColor(s); err != nil {
			t.Fatalf("parseColor(%q): %v", s, err)
		}
	}
	for _, s := range []string{"#fff", "#zzzzzz", "chartreuse-ish"} {
		if _, err := parseColor(s); err == nil {
			t.Fatalf("parseColor(%q) should fail", s)
		}
	}
}
