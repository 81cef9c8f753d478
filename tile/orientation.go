// orientation.go — local orthonormal basis of a tile.
//
// The basis mirrors the frame the angular sorter uses: "up" is the outward
// radial at the center, "right" points from the center toward the first
// boundary point, "forward" completes the right-handed set. Right is
// re-derived from up × forward so the three vectors are exactly orthogonal
// even when the first boundary point is not perfectly tangent.

package tile

import "github.com/katalvlaran/geotiles/geometry"

// Orientation is a tile-local right/up/forward orthonormal basis.
type Orientation struct {
	Right   geometry.Vector3
	Up      geometry.Vector3
	Forward geometry.Vector3
}

// DefaultOrientation returns the identity basis: +X right, +Z up,
// +Y forward.
func DefaultOrientation() Orientation {
	return Orientation{
		Right:   geometry.NewVector3(1, 0, 0),
		Up:      geometry.NewVector3(0, 0, 1),
		Forward: geometry.NewVector3(0, 1, 0),
	}
}

// Orientation derives the tile's local basis; ok is false for an empty
// boundary (never produced by construction).
func (t *Tile) Orientation() (o Orientation, ok bool) {
	if len(t.Boundary) == 0 {
		return Orientation{}, false
	}

	right := geometry.VectorBetween(t.Center, t.Boundary[0]).Normalize()
	up := geometry.NewVector3(t.Center.X, t.Center.Y, t.Center.Z).Normalize()
	forward := right.Cross(up).Normalize()
	// Re-orthogonalize: the first boundary point need not lie exactly in the
	// tangent plane.
	right = up.Cross(forward).Normalize()

	return Orientation{Right: right, Up: up, Forward: forward}, true
}

// RotationMatrix returns the 3×3 row-major rotation whose columns are the
// right, up, and forward basis vectors.
func (o Orientation) RotationMatrix() [9]float64 {
	return [9]float64{
		o.Right.X, o.Up.X, o.Forward.X,
		o.Right.Y, o.Up.Y, o.Forward.Y,
		o.Right.Z, o.Up.Z, o.Forward.Z,
	}
}

// TransformMatrix returns the 4×4 row-major rigid transform combining the
// rotation with a translation to the given point.
func (o Orientation) TransformMatrix(translation geometry.Point) [16]float64 {
	return [16]float64{
		o.Right.X, o.Up.X, o.Forward.X, translation.X,
		o.Right.Y, o.Up.Y, o.Forward.Y, translation.Y,
		o.Right.Z, o.Up.Z, o.Forward.Z, translation.Z,
		0, 0, 0, 1,
	}
}
