package tui

import (
	"testing"

	"github.com/bethropolis/worldedit/internal/placement"
	"github.com/bethropolis/worldedit/internal/types"
	"github.com/bethropolis/worldedit/internal/world"
)

type gesture struct {
	accept bool
	loc    types.Vec3
}

func TestDriverArbitraryReleasesOnTrue(t *testing.T) {
	d := NewPointerDriver(nil)
	var got []gesture
	d.BeginDrag(placement.ModeArbitrary, "road", func(accept bool, loc types.Vec3) bool {
		got = append(got, gesture{accept, loc})
		return !accept
	})
	if !d.Gesture(true, types.NewVec3(1, 7, 2)) {
		t.Fatalf("accept gesture should be delivered")
	}
	if !d.Active() {
		t.Fatalf("session should continue after an accepted point")
	}
	d.Cancel()
	if d.Active() || d.Label() != "" {
		t.Fatalf("stop gesture should release the callback")
	}
	if len(got) != 2 || got[0].loc != types.NewVec3(1, 0, 2) || got[1].accept {
		t.Fatalf("unexpected gestures %v", got)
	}
	if d.Gesture(true, types.Vec3Zero) {
		t.Fatalf("no gesture should be delivered without a session")
	}
}

func TestDriverSurfaceMiss(t *testing.T) {
	terrain := world.FlatTerrain{Height: 2, HalfExtent: 5}
	d := NewPointerDriver(func() world.Surface { return terrain })
	var got []types.Vec3
	d.BeginDrag(placement.ModeSurface, "tree", func(accept bool, loc types.Vec3) bool {
		if accept {
			got = append(got, loc)
		}
		return false
	})
	if d.Gesture(true, types.NewVec3(10, 0, 0)) {
		t.Fatalf("a miss should not reach the callback")
	}
	if !d.Gesture(true, types.NewVec3(1, 0, 1)) {
		t.Fatalf("a hit should reach the callback")
	}
	if len(got) != 1 || got[0] != types.NewVec3(1, 2, 1) {
		t.Fatalf("hit should carry the surface height, got %v", got)
	}
	if !d.Gesture(false, types.NewVec3(10, 0, 0)) {
		t.Fatalf("the stop gesture is delivered even off the surface")
	}
}

func TestDriverKeepsSessionStartedByCallback(t *testing.T) {
	d := NewPointerDriver(nil)
	second := false
	d.BeginDrag(placement.ModeArbitrary, "first", func(bool, types.Vec3) bool {
		d.BeginDrag(placement.ModeArbitrary, "second", func(bool, types.Vec3) bool {
			second = true
			return true
		})
		return true
	})
	d.Gesture(true, types.Vec3Zero)
	if !d.Active() || d.Label() != "second" {
		t.Fatalf("session started inside the callback should stay active")
	}
	d.Gesture(true, types.Vec3Zero)
	if !second || d.Active() {
		t.Fatalf("second session should receive and release")
	}
}
