package geom

import (
	"testing"

	"github.com/bethropolis/worldedit/internal/types"
)

func xz(x, z float32) types.Vec3 { return types.Vec3{X: x, Z: z} }

func TestSegmentsIntersect(t *testing.T) {
	cases := []struct {
		name           string
		p1, p2, q1, q2 types.Vec3
		want           bool
	}{
		{"crossing", xz(0, 0), xz(2, 2), xz(0, 2), xz(2, 0), true},
		{"disjoint", xz(0, 0), xz(1, 0), xz(0, 1), xz(1, 1), false},
		{"touching endpoint", xz(0, 0), xz(1, 0), xz(1, 0), xz(2, 5), true},
		{"collinear overlap", xz(0, 0), xz(2, 0), xz(1, 0), xz(3, 0), true},
		{"collinear apart", xz(0, 0), xz(1, 0), xz(2, 0), xz(3, 0), false},
		{"height ignored", types.NewVec3(0, 5, 0), types.NewVec3(2, -5, 2), xz(0, 2), xz(2, 0), true},
	}
	for _, c := range cases {
		if got := SegmentsIntersect(c.p1, c.p2, c.q1, c.q2); got != c.want {
			t.Fatalf("%s: got %v want %v", c.name, got, c.want)
		}
	}
}

func TestSelfIntersects(t *testing.T) {
	square := []types.Vec3{xz(0, 0), xz(10, 0), xz(10, 10), xz(0, 10)}
	bowtie := []types.Vec3{xz(0, 0), xz(10, 10), xz(10, 0), xz(0, 10)}

	cases := []struct {
		name   string
		points []types.Vec3
		closed bool
		want   bool
	}{
		{"empty", nil, true, false},
		{"single", square[:1], true, false},
		{"segment", square[:2], true, false},
		{"triangle", square[:3], true, false},
		{"square", square, true, false},
		{"bowtie closed", bowtie, true, true},
		{"bowtie open", bowtie, false, true},
		{"duplicate point", []types.Vec3{xz(0, 0), xz(0, 0), xz(1, 1)}, false, true},
		{"fold back", []types.Vec3{xz(0, 0), xz(5, 0), xz(2, 0)}, false, true},
		{"collinear triangle", []types.Vec3{xz(0, 0), xz(5, 0), xz(10, 0)}, true, true},
		{"straight open line", []types.Vec3{xz(0, 0), xz(5, 0), xz(10, 0)}, false, false},
	}
	for _, c := range cases {
		if got := SelfIntersects(c.points, c.closed); got != c.want {
			t.Fatalf("%s: got %v want %v", c.name, got, c.want)
		}
	}
}

func TestAcceptsAppendAndInsert(t *testing.T) {
	tri := []types.Vec3{xz(0, 0), xz(10, 0), xz(10, 10)}

	if !AcceptsAppend(tri, xz(0, 10), true) {
		t.Fatalf("closing the square should be accepted")
	}
	if AcceptsAppend(tri, xz(5, -5), true) {
		t.Fatalf("edge from (10,10) to (5,-5) crosses the first edge")
	}
	if AcceptsAppend(tri, xz(12, 5), true) {
		t.Fatalf("closing edge from (12,5) crosses the second edge")
	}

	if !AcceptsInsert(tri, xz(5, -3), 1, true) {
		t.Fatalf("insert below the first edge should be accepted")
	}
	if AcceptsInsert(tri, xz(20, 5), 1, true) {
		t.Fatalf("insert far right between 0 and 1 should cross the 1-2 edge")
	}
	if AcceptsInsert(tri, xz(1, 1), 7, true) {
		t.Fatalf("out of range index must be rejected")
	}
}
