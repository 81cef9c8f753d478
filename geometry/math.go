// math.go — shared geometric helpers: surface normals, winding tests,
// triangle areas.

package geometry

import "math"

// SurfaceNormal returns the (unnormalized) normal of the triangle
// (p1, p2, p3) via the cross product of its edge vectors (p2−p1) × (p3−p1).
func SurfaceNormal(p1, p2, p3 Point) Vector3 {
	u := VectorBetween(p1, p2)
	v := VectorBetween(p1, p3)

	return u.Cross(v)
}

// PointingAwayFromOrigin reports whether vector agrees in sign with point on
// all three axes. For a polygon sitting on a sphere centered at the origin
// this is the outward-facing test: the tile's normal must not oppose the
// radial direction of its center on any axis.
func PointingAwayFromOrigin(point Point, vector Vector3) bool {
	return point.X*vector.X >= 0 && point.Y*vector.Y >= 0 && point.Z*vector.Z >= 0
}

// TriangleArea returns the area of the triangle (p1, p2, p3): half the
// magnitude of the edge-vector cross product.
func TriangleArea(p1, p2, p3 Point) float64 {
	v1 := VectorBetween(p1, p2)
	v2 := VectorBetween(p1, p3)
	c := v1.Cross(v2)

	return 0.5 * math.Sqrt(c.X*c.X+c.Y*c.Y+c.Z*c.Z)
}
