package hexasphere_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geotiles/hexasphere"
)

// TestStats_Totals verifies hexagon and pentagon totals account for every
// tile at several depths.
func TestStats_Totals(t *testing.T) {
	for _, depth := range []int{1, 2} {
		h, err := hexasphere.New(1, depth, 1)
		require.NoError(t, err)

		s := h.Stats()
		require.Equal(t, 12, s.TotalPentagons)
		require.Equal(t, len(h.Tiles), s.TotalHexagons+s.TotalPentagons)
		require.Equal(t, h.HexagonCount(), s.TotalHexagons)
	}
}

// TestStats_MetricOrdering verifies min ≤ average ≤ max and non-negative
// spread for the per-tile radius aggregates.
func TestStats_MetricOrdering(t *testing.T) {
	h, err := hexasphere.New(10, 2, 0.9)
	require.NoError(t, err)

	s := h.Stats()
	require.Greater(t, s.MinHexagonRadius, 0.0)
	require.LessOrEqual(t, s.MinHexagonRadius, s.AverageHexagonRadius)
	require.LessOrEqual(t, s.AverageHexagonRadius, s.MaxHexagonRadius)
	require.GreaterOrEqual(t, s.RadiusStdDev, 0.0)

	require.Greater(t, s.AverageHexagonEdgeLength, 0.0)
	require.Greater(t, s.AverageHexagonArea, 0.0)
}

// TestStats_RadiusScaling verifies linear metrics scale with the sphere
// radius and area scales quadratically.
func TestStats_RadiusScaling(t *testing.T) {
	small, err := hexasphere.New(1, 2, 1)
	require.NoError(t, err)
	large, err := hexasphere.New(2, 2, 1)
	require.NoError(t, err)

	ss, ls := small.Stats(), large.Stats()
	require.Equal(t, ss.TotalHexagons, ls.TotalHexagons)

	// Deltas absorb the fixed 3-decimal coordinate quantization, which is
	// proportionally larger at unit radius.
	require.InDelta(t, 2.0, ls.AverageHexagonRadius/ss.AverageHexagonRadius, 0.05)
	require.InDelta(t, 2.0, ls.AverageHexagonEdgeLength/ss.AverageHexagonEdgeLength, 0.05)
	require.InDelta(t, 4.0, ls.AverageHexagonArea/ss.AverageHexagonArea, 0.2)
}

// TestStats_ShrinkReducesMetrics verifies a smaller hexSize produces
// strictly smaller hexagons.
func TestStats_ShrinkReducesMetrics(t *testing.T) {
	full, err := hexasphere.New(10, 1, 1.0)
	require.NoError(t, err)
	shrunk, err := hexasphere.New(10, 1, 0.5)
	require.NoError(t, err)

	fs, ss := full.Stats(), shrunk.Stats()
	require.Less(t, ss.AverageHexagonRadius, fs.AverageHexagonRadius)
	require.Less(t, ss.AverageHexagonEdgeLength, fs.AverageHexagonEdgeLength)
	require.Less(t, ss.AverageHexagonArea, fs.AverageHexagonArea)
}

// TestStats_NoHexagons: a depth-0 sphere is all pentagons; metric fields
// stay zero rather than reporting NaN aggregates.
func TestStats_NoHexagons(t *testing.T) {
	h, err := hexasphere.New(1, 0, 1)
	require.NoError(t, err)

	s := h.Stats()
	require.Equal(t, hexasphere.HexagonStats{TotalPentagons: 12}, s)
}

// TestStats_UniformRadiusConsistency verifies UniformHexagonRadius agrees
// with the aggregate average.
func TestStats_UniformRadiusConsistency(t *testing.T) {
	h, err := hexasphere.New(5, 2, 0.8)
	require.NoError(t, err)

	require.InDelta(t, h.Stats().AverageHexagonRadius, h.UniformHexagonRadius(), 1e-12)
}
