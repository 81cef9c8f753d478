// vector.go — free 3D direction vectors.
//
// Vector3 represents a direction and magnitude with no position, used for
// surface normals and local orientation bases. Unlike Point it is never
// quantized: orientation math needs full float64 precision.

package geometry

import "math"

// Vector3 is a free 3D vector.
type Vector3 struct {
	X, Y, Z float64
}

// NewVector3 returns the vector (x, y, z).
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// VectorBetween returns the vector pointing from one point to other.
func VectorBetween(from, to Point) Vector3 {
	return Vector3{X: to.X - from.X, Y: to.Y - from.Y, Z: to.Z - from.Z}
}

// Length returns the magnitude of v.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns the unit vector in the direction of v, or the zero
// vector when v has zero magnitude.
func (v Vector3) Normalize() Vector3 {
	mag := v.Length()
	if mag == 0 {
		return Vector3{}
	}

	return Vector3{X: v.X / mag, Y: v.Y / mag, Z: v.Z / mag}
}

// Cross returns the cross product v × other (right-hand rule).
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Dot returns the scalar product v · other.
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Scale returns v multiplied by s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}
