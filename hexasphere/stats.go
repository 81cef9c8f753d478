// stats.go — aggregate hexagon statistics.
//
// Real Goldberg hexagons vary slightly in size across the sphere; these
// aggregates quantify that spread for consumers that want one uniform
// hexagon (see Tile.HexagonParams and UniformHexagonRadius).

package hexasphere

import (
	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/geotiles/tile"
)

// HexagonStats aggregates radius, edge, and area metrics over the
// hexagonal tiles of one Hexasphere.
type HexagonStats struct {
	// TotalHexagons is the number of six-sided tiles.
	TotalHexagons int
	// TotalPentagons is the number of five-sided tiles (always 12).
	TotalPentagons int
	// AverageHexagonRadius is the mean center-to-boundary distance.
	AverageHexagonRadius float64
	// AverageHexagonEdgeLength is the mean boundary edge length.
	AverageHexagonEdgeLength float64
	// AverageHexagonArea is the mean polygon area.
	AverageHexagonArea float64
	// MinHexagonRadius and MaxHexagonRadius bound the per-tile averages.
	MinHexagonRadius float64
	MaxHexagonRadius float64
	// RadiusStdDev is the population standard deviation of the per-tile
	// average radii.
	RadiusStdDev float64
}

// Stats computes hexagon statistics over h. With no hexagons (depth 0) the
// metric fields are zero and only TotalPentagons is populated.
func (h *Hexasphere) Stats() HexagonStats {
	var hexagons []*tile.Tile
	pentagons := 0
	for i := range h.Tiles {
		switch {
		case h.Tiles[i].IsHexagon():
			hexagons = append(hexagons, &h.Tiles[i])
		case h.Tiles[i].IsPentagon():
			pentagons++
		}
	}

	if len(hexagons) == 0 {
		return HexagonStats{TotalPentagons: pentagons}
	}

	radii := make([]float64, 0, len(hexagons))
	edges := make([]float64, 0, len(hexagons))
	areas := make([]float64, 0, len(hexagons))
	for _, hx := range hexagons {
		radii = append(radii, hx.AverageRadius())
		edges = append(edges, hx.AverageEdgeLength())
		areas = append(areas, hx.Area())
	}

	// The stats helpers error only on empty input, excluded above.
	avgRadius, _ := stats.Mean(radii)
	avgEdge, _ := stats.Mean(edges)
	avgArea, _ := stats.Mean(areas)
	minRadius, _ := stats.Min(radii)
	maxRadius, _ := stats.Max(radii)
	stdDev, _ := stats.StandardDeviationPopulation(radii)

	return HexagonStats{
		TotalHexagons:            len(hexagons),
		TotalPentagons:           pentagons,
		AverageHexagonRadius:     avgRadius,
		AverageHexagonEdgeLength: avgEdge,
		AverageHexagonArea:       avgArea,
		MinHexagonRadius:         minRadius,
		MaxHexagonRadius:         maxRadius,
		RadiusStdDev:             stdDev,
	}
}
