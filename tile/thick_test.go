package tile_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geotiles/tile"
)

func TestNewThickTile_Extrusion(t *testing.T) {
	const thickness = 0.25

	surface := tile.New(starCenter(), hexStar(), 1.0)
	thick := tile.NewThickTile(&surface, thickness)

	require.Equal(t, surface.Boundary, thick.OuterBoundary)
	require.Len(t, thick.InnerBoundary, len(surface.Boundary))
	require.True(t, thick.Hexagon)
	require.Equal(t, thickness, thick.Thickness)

	// Every inner point sits thickness inward of its outer counterpart.
	for i := range thick.OuterBoundary {
		d := thick.OuterBoundary[i].DistanceTo(thick.InnerBoundary[i])
		require.InDelta(t, thickness, d, 2e-3)
	}

	// Inner points are closer to the origin than outer ones.
	for i := range thick.InnerBoundary {
		require.Less(t, thick.InnerBoundary[i].Magnitude(), thick.OuterBoundary[i].Magnitude())
	}
}

func TestThickTile_GenerateMesh(t *testing.T) {
	surface := tile.New(starCenter(), hexStar(), 1.0)
	thick := tile.NewThickTile(&surface, 0.1)

	mesh := thick.GenerateMesh()
	n := len(thick.OuterBoundary)

	// Two centers plus both rings.
	require.Len(t, mesh.Vertices, 2*n+2)
	// Top fan + bottom fan + two triangles per side quad, three indices each.
	require.Len(t, mesh.Indices, 3*(2*n+2*n))

	for _, idx := range mesh.Indices {
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, len(mesh.Vertices))
	}
}

func TestThickTile_GenerateSideVertices(t *testing.T) {
	surface := tile.New(starCenter(), pentStar(), 1.0)
	thick := tile.NewThickTile(&surface, 0.1)

	side := thick.GenerateSideVertices()
	require.Len(t, side, 2*len(thick.OuterBoundary))

	// Interleaved outer/inner layout.
	for i := 0; i < len(side); i += 2 {
		require.Equal(t, thick.OuterBoundary[i/2], side[i])
		require.Equal(t, thick.InnerBoundary[i/2], side[i+1])
	}
}
