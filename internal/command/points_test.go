package command

import (
	"testing"

	"github.com/bethropolis/worldedit/internal/types"
	"github.com/bethropolis/worldedit/internal/world"
)

func TestPointCommandsRoundTrip(t *testing.T) {
	road := world.NewRoad("Lane", []types.Vec3{pt(0, 0), pt(10, 0)})

	insert := NewInsertPointCommand(road, 1, pt(5, 5))
	insert.Execute()
	if got := road.Points(); len(got) != 3 || got[1] != pt(5, 5) {
		t.Fatalf("insert: got %v", got)
	}
	del := NewDeletePointCommand(road, 0)
	del.Execute()
	if got := road.Points(); len(got) != 2 || got[0] != pt(5, 5) {
		t.Fatalf("delete: got %v", got)
	}

	del.UnExecute()
	insert.UnExecute()
	if got := road.Points(); len(got) != 2 || got[0] != pt(0, 0) || got[1] != pt(10, 0) {
		t.Fatalf("undo should restore the original points, got %v", got)
	}
}

func TestUnExecuteBeforeExecuteIsIgnored(t *testing.T) {
	env, drv, _, _ := newEnv()
	road := world.NewRoad("Lane", []types.Vec3{pt(0, 0), pt(10, 0)})
	env.World.Default().Add(road)

	tests := []struct {
		name string
		cmd  Command
	}{
		{"insert point", NewInsertPointCommand(road, 1, pt(5, 5))},
		{"delete point", NewDeletePointCommand(road, 0)},
		{"add point", NewAddPointCommand(road, pt(20, 0))},
		{"place road", NewPlaceRoadCommand(env, "Road 2", env.World.Default())},
		{"place marker", NewPlaceObjectCommand(env, world.KindMarker, "Marker 1", env.World.Default())},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cmd.UnExecute()
			tt.cmd.UnExecute()
			if got := road.Points(); len(got) != 2 || got[0] != pt(0, 0) || got[1] != pt(10, 0) {
				t.Fatalf("points changed: %v", got)
			}
			if env.World.ObjectCount() != 1 {
				t.Fatalf("objects changed: %d", env.World.ObjectCount())
			}
			if drv.cb != nil {
				t.Fatalf("no session should have started")
			}
		})
	}
}
