package geom

import (
	"testing"

	"github.com/bethropolis/worldedit/internal/types"
	"github.com/chewxy/math32"
)

func TestDistanceToSegment(t *testing.T) {
	tests := []struct {
		name string
		p    types.Vec3
		want float32
	}{
		{"above middle", xz(5, 3), 3},
		{"past end", xz(13, 4), 5},
		{"before start", xz(-3, 0), 3},
		{"on segment", xz(2, 0), 0},
	}
	for _, tt := range tests {
		if got := DistanceToSegment(tt.p, xz(0, 0), xz(10, 0)); math32.Abs(got-tt.want) > 1e-4 {
			t.Fatalf("%s: got %v want %v", tt.name, got, tt.want)
		}
	}
	if got := DistanceToSegment(xz(3, 4), xz(0, 0), xz(0, 0)); math32.Abs(got-5) > 1e-4 {
		t.Fatalf("degenerate segment: got %v", got)
	}
}

func TestDistanceToPolyline(t *testing.T) {
	square := []types.Vec3{xz(0, 0), xz(10, 0), xz(10, 10), xz(0, 10)}
	p := xz(-2, 5)
	if got := DistanceToPolyline(p, square, true); math32.Abs(got-2) > 1e-4 {
		t.Fatalf("closed: got %v want 2", got)
	}
	if got := DistanceToPolyline(p, square, false); math32.Abs(got-math32.Sqrt(29)) > 1e-4 {
		t.Fatalf("open: got %v want sqrt(29)", got)
	}
	if !math32.IsInf(DistanceToPolyline(p, nil, false), 1) {
		t.Fatalf("empty polyline is infinitely far")
	}
}
