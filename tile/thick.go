// thick.go — thick-tile extrusion for volumetric rendering.
//
// A ThickTile pairs a surface tile's boundary with a copy extruded inward
// along the radial direction, plus triangle buffers for the top fan, the
// (reversed) bottom fan, and the side quads.

package tile

import "github.com/katalvlaran/geotiles/geometry"

// ThickTile is a surface tile extruded inward by a fixed thickness.
type ThickTile struct {
	// OuterBoundary is the original surface boundary.
	OuterBoundary []geometry.Point
	// InnerBoundary is the boundary pushed toward the sphere center.
	InnerBoundary []geometry.Point
	// Center is the surface tile's center point.
	Center geometry.Point
	// Thickness is the extrusion distance along the inward radial.
	Thickness float64
	// Hexagon records whether the source tile had six sides.
	Hexagon bool
}

// ThickTileMesh is a renderable triangle mesh for one ThickTile: indices
// are triples into Vertices.
type ThickTileMesh struct {
	Vertices []geometry.Point
	Indices  []int
}

// NewThickTile extrudes t inward by thickness along the outward radial
// direction at its center (the sphere normal).
func NewThickTile(t *Tile, thickness float64) ThickTile {
	normal := geometry.NewVector3(t.Center.X, t.Center.Y, t.Center.Z).Normalize()

	inner := make([]geometry.Point, 0, len(t.Boundary))
	for _, bp := range t.Boundary {
		inner = append(inner, geometry.NewPoint(
			bp.X-normal.X*thickness,
			bp.Y-normal.Y*thickness,
			bp.Z-normal.Z*thickness,
		))
	}

	outer := make([]geometry.Point, len(t.Boundary))
	copy(outer, t.Boundary)

	return ThickTile{
		OuterBoundary: outer,
		InnerBoundary: inner,
		Center:        t.Center,
		Thickness:     thickness,
		Hexagon:       t.IsHexagon(),
	}
}

// normal returns the outward radial at the tile center.
func (tt *ThickTile) normal() geometry.Vector3 {
	return geometry.NewVector3(tt.Center.X, tt.Center.Y, tt.Center.Z).Normalize()
}

// GenerateMesh returns the full closed triangle mesh: an outer fan around
// the surface center, an inner fan around the extruded center with reversed
// winding, and two triangles per side quad. For an n-gon the index buffer
// holds 3·(2n + 2n) entries.
func (tt *ThickTile) GenerateMesh() ThickTileMesh {
	n := len(tt.OuterBoundary)
	normal := tt.normal()

	vertices := make([]geometry.Point, 0, 2*n+2)
	indices := make([]int, 0, 12*n)

	// Outer cap: center followed by the outer ring.
	vertices = append(vertices, tt.Center)
	outerStart := len(vertices)
	vertices = append(vertices, tt.OuterBoundary...)
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		indices = append(indices, 0, outerStart+i, outerStart+next)
	}

	// Inner cap: extruded center followed by the inner ring, wound in
	// reverse so the bottom faces away from the tile.
	innerCenter := geometry.NewPoint(
		tt.Center.X-normal.X*tt.Thickness,
		tt.Center.Y-normal.Y*tt.Thickness,
		tt.Center.Z-normal.Z*tt.Thickness,
	)
	innerCenterIdx := len(vertices)
	vertices = append(vertices, innerCenter)
	innerStart := len(vertices)
	vertices = append(vertices, tt.InnerBoundary...)
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		indices = append(indices, innerCenterIdx, innerStart+next, innerStart+i)
	}

	// Side walls: two triangles per edge quad.
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		outerCurr, outerNext := outerStart+i, outerStart+next
		innerCurr, innerNext := innerStart+i, innerStart+next

		indices = append(indices, outerCurr, innerCurr, outerNext)
		indices = append(indices, outerNext, innerCurr, innerNext)
	}

	return ThickTileMesh{Vertices: vertices, Indices: indices}
}

// GenerateSideVertices returns the outer/inner boundary points interleaved,
// the strip layout consumed by side-wall renderers.
func (tt *ThickTile) GenerateSideVertices() []geometry.Point {
	out := make([]geometry.Point, 0, 2*len(tt.OuterBoundary))
	for i := range tt.OuterBoundary {
		out = append(out, tt.OuterBoundary[i], tt.InnerBoundary[i])
	}

	return out
}
