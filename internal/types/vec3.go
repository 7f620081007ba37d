// internal/types/vec3.go
package types

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vec3 is a world-space location. Y is up; the editor view looks down the Y axis
// onto the XZ plane.
type Vec3 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

var Vec3Zero = Vec3{}

func NewVec3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

func (v Vec3) Mul(scalar float32) Vec3 {
	return Vec3{X: v.X * scalar, Y: v.Y * scalar, Z: v.Z * scalar}
}

func (v Vec3) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// DistanceXZ is the distance between two points projected onto the ground plane.
func (v Vec3) DistanceXZ(other Vec3) float32 {
	dx := v.X - other.X
	dz := v.Z - other.Z
	return math32.Sqrt(dx*dx + dz*dz)
}

// ApproxEqual compares component-wise within eps.
func (v Vec3) ApproxEqual(other Vec3, eps float32) bool {
	return math32.Abs(v.X-other.X) <= eps &&
		math32.Abs(v.Y-other.Y) <= eps &&
		math32.Abs(v.Z-other.Z) <= eps
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X, v.Y, v.Z)
}

// ClonePoints returns a copy of the slice so callers can't alias session state.
func ClonePoints(points []Vec3) []Vec3 {
	if points == nil {
		return nil
	}
	out := make([]Vec3, len(points))
	copy(out, points)
	return out
}
