package tui

import (
	"testing"

	"github.com/bethropolis/worldedit/internal/theme"
	"github.com/bethropolis/worldedit/internal/types"
	"github.com/bethropolis/worldedit/internal/world"
	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestCellWorldMapping(t *testing.T) {
	v := NewView(1)
	tests := []struct {
		col, row int
		want     types.Vec3
	}{
		{20, 5, types.NewVec3(0, 0, 0)},
		{26, 7, types.NewVec3(3, 0, 2)},
		{10, 0, types.NewVec3(-5, 0, -5)},
	}
	for _, tt := range tests {
		got := v.CellToWorld(tt.col, tt.row, 40, 10)
		if !got.ApproxEqual(tt.want, 1e-5) {
			t.Fatalf("CellToWorld(%d,%d) = %v, want %v", tt.col, tt.row, got, tt.want)
		}
		col, row := v.WorldToCell(got, 40, 10)
		if col != tt.col || row != tt.row {
			t.Fatalf("WorldToCell(%v) = %d,%d, want %d,%d", got, col, row, tt.col, tt.row)
		}
	}
}

func TestZoomIsClamped(t *testing.T) {
	v := NewView(1)
	for i := 0; i < 20; i++ {
		v.Zoom(2)
	}
	if v.Scale() != maxScale {
		t.Fatalf("scale = %v, want %v", v.Scale(), maxScale)
	}
	for i := 0; i < 40; i++ {
		v.Zoom(0.5)
	}
	if v.Scale() != minScale {
		t.Fatalf("scale = %v, want %v", v.Scale(), minScale)
	}
}

func TestMoveCursorAndFollow(t *testing.T) {
	v := NewView(1)
	v.MoveCursor(4, -1)
	if !v.Cursor().ApproxEqual(types.NewVec3(2, 0, -1), 1e-5) {
		t.Fatalf("cursor = %v", v.Cursor())
	}
	v.MoveCursor(0, 20)
	v.Follow(40, 10)
	_, row := v.WorldToCell(v.Cursor(), 40, 10)
	if row < 0 || row >= 10 {
		t.Fatalf("cursor row %d should be visible after Follow", row)
	}
}

func TestDrawObjects(t *testing.T) {
	s := newSimScreen(t, 40, 10)
	w := world.New("test", nil)
	marker := world.NewMarker("m", types.NewVec3(3, 0, 2))
	w.Default().Add(marker)
	w.Default().Add(world.NewRoad("r", []types.Vec3{types.NewVec3(0, 0, -2), types.NewVec3(2, 0, -2)}))
	marker.Select()

	v := NewView(1)
	v.Draw(s, 40, 10, w, &theme.SceneDark, &Preview{Points: []types.Vec3{types.NewVec3(-4, 0, 3)}})

	if r := runeAt(s, 26, 7); r != 'M' {
		t.Fatalf("marker cell = %q, want 'M'", r)
	}
	_, _, style, _ := s.GetContent(26, 7)
	if _, _, attrs := style.Decompose(); attrs&tcell.AttrReverse == 0 {
		t.Fatalf("selected marker should be drawn reversed")
	}
	for col := 20; col <= 24; col++ {
		if r := runeAt(s, col, 3); r != '=' {
			t.Fatalf("road cell %d = %q, want '='", col, r)
		}
	}
	if r := runeAt(s, 12, 8); r != 'o' {
		t.Fatalf("preview point = %q, want 'o'", r)
	}
	if r := runeAt(s, 20, 5); r != '+' {
		t.Fatalf("cursor = %q, want '+'", r)
	}
}

func TestDrawSkipsUnloadedCollections(t *testing.T) {
	s := newSimScreen(t, 40, 10)
	w := world.New("test", nil)
	archive := w.NewCollection("Archive", false)
	archive.Add(world.NewTree("oak", types.NewVec3(3, 0, 2)))

	NewView(1).Draw(s, 40, 10, w, &theme.SceneDark, nil)
	if r := runeAt(s, 26, 7); r == 'T' {
		t.Fatalf("objects of unloaded collections should not be drawn")
	}
}
