package types

import "testing"

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 6, 3)

	if got := b.Sub(a); got != NewVec3(3, 4, 0) {
		t.Fatalf("sub: got %v", got)
	}
	if got := b.Sub(a).Length(); got != 5 {
		t.Fatalf("length: got %v, want 5", got)
	}
	if got := a.DistanceXZ(NewVec3(4, 100, 7)); got != 5 {
		t.Fatalf("distanceXZ: got %v, want 5", got)
	}
	if !a.Mul(2).ApproxEqual(NewVec3(2, 4, 6), 1e-6) {
		t.Fatalf("mul mismatch: %v", a.Mul(2))
	}
}

func TestClonePointsDoesNotAlias(t *testing.T) {
	src := []Vec3{{X: 1}, {X: 2}}
	dst := ClonePoints(src)
	dst[0].X = 9
	if src[0].X != 1 {
		t.Fatalf("clone aliases source slice")
	}
	if ClonePoints(nil) != nil {
		t.Fatalf("clone of nil should stay nil")
	}
}
