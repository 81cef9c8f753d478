// metrics.go — read-only tile measurements.

package tile

import "github.com/katalvlaran/geotiles/geometry"

// AverageRadius returns the mean distance from the tile center to its
// boundary points, or 0 for an empty boundary.
func (t *Tile) AverageRadius() float64 {
	if len(t.Boundary) == 0 {
		return 0
	}

	total := 0.0
	for _, bp := range t.Boundary {
		total += t.Center.DistanceTo(bp)
	}

	return total / float64(len(t.Boundary))
}

// AverageEdgeLength returns the mean length of the boundary edges
// (consecutive boundary points, wrapping around), or 0 when the boundary
// has fewer than two points.
func (t *Tile) AverageEdgeLength() float64 {
	n := len(t.Boundary)
	if n < 2 {
		return 0
	}

	total := 0.0
	for i := 0; i < n; i++ {
		total += t.Boundary[i].DistanceTo(t.Boundary[(i+1)%n])
	}

	return total / float64(n)
}

// Area returns the polygon area of the tile as a triangle fan from the
// first boundary point. Exact for the planar tile polygons produced by
// construction.
func (t *Tile) Area() float64 {
	n := len(t.Boundary)
	if n < 3 {
		return 0
	}

	area := 0.0
	for i := 1; i < n-1; i++ {
		area += geometry.TriangleArea(t.Boundary[0], t.Boundary[i], t.Boundary[i+1])
	}

	return area
}
