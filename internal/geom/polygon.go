// Package geom has the ground-plane geometry tests used to validate boundary outlines.
// All tests project points onto the XZ plane.
package geom

import (
	"github.com/bethropolis/worldedit/internal/types"
	"github.com/chewxy/math32"
)

const epsilon = 1e-5

// orient is twice the signed area of triangle abc on the XZ plane.
func orient(a, b, c types.Vec3) float32 {
	return (b.X-a.X)*(c.Z-a.Z) - (b.Z-a.Z)*(c.X-a.X)
}

func sign(v float32) int {
	switch {
	case math32.Abs(v) <= epsilon:
		return 0
	case v > 0:
		return 1
	}
	return -1
}

// onSegment reports whether c, known to be collinear with ab, lies within ab's bounds.
func onSegment(a, b, c types.Vec3) bool {
	return math32.Min(a.X, b.X)-epsilon <= c.X && c.X <= math32.Max(a.X, b.X)+epsilon &&
		math32.Min(a.Z, b.Z)-epsilon <= c.Z && c.Z <= math32.Max(a.Z, b.Z)+epsilon
}

// SegmentsIntersect reports whether segments p1p2 and q1q2 share any point,
// including touching endpoints and collinear overlap.
func SegmentsIntersect(p1, p2, q1, q2 types.Vec3) bool {
	d1 := sign(orient(q1, q2, p1))
	d2 := sign(orient(q1, q2, p2))
	d3 := sign(orient(p1, p2, q1))
	d4 := sign(orient(p1, p2, q2))

	if d1 != d2 && d3 != d4 && d1 != 0 && d2 != 0 && d3 != 0 && d4 != 0 {
		return true
	}
	return (d1 == 0 && onSegment(q1, q2, p1)) ||
		(d2 == 0 && onSegment(q1, q2, p2)) ||
		(d3 == 0 && onSegment(p1, p2, q1)) ||
		(d4 == 0 && onSegment(p1, p2, q2))
}

// foldsBack reports whether consecutive edges ab and bc overlap along a line,
// i.e. c doubles back over ab.
func foldsBack(a, b, c types.Vec3) bool {
	if sign(orient(a, b, c)) != 0 {
		return false
	}
	ab := b.Sub(a)
	bc := c.Sub(b)
	return ab.X*bc.X+ab.Z*bc.Z < 0
}

func degenerate(a, b types.Vec3) bool {
	return a.DistanceXZ(b) <= epsilon
}

// SelfIntersects reports whether the outline crosses or touches itself.
// A closed outline also includes the edge from the last point to the first.
// Repeated consecutive points count as an intersection.
func SelfIntersects(points []types.Vec3, closed bool) bool {
	n := len(points)
	if n < 2 {
		return false
	}
	edges := n - 1
	if closed && n >= 3 {
		edges = n
	}
	edge := func(i int) (types.Vec3, types.Vec3) {
		return points[i], points[(i+1)%n]
	}

	for i := 0; i < edges; i++ {
		a, b := edge(i)
		if degenerate(a, b) {
			return true
		}
	}

	for i := 0; i < edges; i++ {
		a, b := edge(i)
		for j := i + 1; j < edges; j++ {
			c, d := edge(j)
			switch {
			case j == i+1:
				// share b == c
				if foldsBack(a, b, d) {
					return true
				}
			case closed && i == 0 && j == edges-1 && edges == n:
				// closing edge shares points[0] with edge 0
				if foldsBack(c, a, b) {
					return true
				}
			default:
				if SegmentsIntersect(a, b, c, d) {
					return true
				}
			}
		}
	}
	return false
}

// AcceptsAppend reports whether appending candidate keeps the outline simple.
func AcceptsAppend(points []types.Vec3, candidate types.Vec3, closed bool) bool {
	next := make([]types.Vec3, 0, len(points)+1)
	next = append(next, points...)
	next = append(next, candidate)
	return !SelfIntersects(next, closed)
}

// AcceptsInsert reports whether inserting candidate before index keeps the outline simple.
func AcceptsInsert(points []types.Vec3, candidate types.Vec3, index int, closed bool) bool {
	if index < 0 || index > len(points) {
		return false
	}
	next := make([]types.Vec3, 0, len(points)+1)
	next = append(next, points[:index]...)
	next = append(next, candidate)
	next = append(next, points[index:]...)
	return !SelfIntersects(next, closed)
}
