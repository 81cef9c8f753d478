// hexagon.go — regular-hexagon approximation of a 6-sided tile.
//
// Real Goldberg hexagons are slightly irregular; many consumers (instanced
// rendering, board logic) prefer one idealized hexagon per tile: same
// center, same orientation, radius equal to the tile's average radius.

package tile

import (
	"math"

	"github.com/katalvlaran/geotiles/geometry"
)

// RegularHexagonParams describes the idealized regular hexagon that
// approximates a hexagonal tile.
type RegularHexagonParams struct {
	// Center is the tile center on the sphere surface.
	Center geometry.Point
	// Radius is the center-to-vertex distance (the tile's average radius).
	Radius float64
	// Orientation positions the hexagon in the tile's tangent plane.
	Orientation Orientation
}

// HexagonParams returns the regular-hexagon approximation of t; ok is false
// for pentagons, which have no hexagonal ideal.
func (t *Tile) HexagonParams() (params RegularHexagonParams, ok bool) {
	if !t.IsHexagon() {
		return RegularHexagonParams{}, false
	}
	o, ok := t.Orientation()
	if !ok {
		return RegularHexagonParams{}, false
	}

	return RegularHexagonParams{
		Center:      t.Center,
		Radius:      t.AverageRadius(),
		Orientation: o,
	}, true
}

// GenerateVertices synthesizes the six corners of the idealized hexagon at
// 60° steps in the right/forward tangent plane, in counter-clockwise order
// around the outward normal.
func (p RegularHexagonParams) GenerateVertices() []geometry.Point {
	vertices := make([]geometry.Point, 0, 6)
	for i := 0; i < 6; i++ {
		angle := float64(i) * math.Pi / 3
		lx := p.Radius * math.Cos(angle)
		ly := p.Radius * math.Sin(angle)

		vertices = append(vertices, geometry.NewPoint(
			p.Center.X+lx*p.Orientation.Right.X+ly*p.Orientation.Forward.X,
			p.Center.Y+lx*p.Orientation.Right.Y+ly*p.Orientation.Forward.Y,
			p.Center.Z+lx*p.Orientation.Right.Z+ly*p.Orientation.Forward.Z,
		))
	}

	return vertices
}
