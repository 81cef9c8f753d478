// subdivide.go — triangular-grid subdivision of one face.
//
// Each face is split into segments² congruent triangles: the two edges from
// the apex are interpolated into (segments+1)-point chains, then each pair
// of adjacent rows is connected with an alternating strip of upward and
// downward triangles so the grid tiles the parent without gaps. Every point
// passes through the shared pool, so vertices on edges shared between
// parent faces resolve to one instance.

package hexasphere

import "github.com/katalvlaran/geotiles/geometry"

// subdivideEdge interpolates the segment a→b into a chain of count+1
// pooled points.
func subdivideEdge(a, b geometry.Point, count int, pool *geometry.Pool) []geometry.Point {
	chain := a.Subdivide(b, count)
	for i := range chain {
		chain[i] = pool.Intern(chain[i])
	}

	return chain
}

// subdivideFace splits f into a triangular grid of segments² faces with ids
// drawn from nextID. segments ≤ 1 returns f unchanged (no new ids). Total
// for all valid input; no failure modes.
func subdivideFace(f geometry.Face, segments int, pool *geometry.Pool, nextID *int) []geometry.Face {
	if segments <= 1 {
		return []geometry.Face{f}
	}

	out := make([]geometry.Face, 0, segments*segments)

	left := subdivideEdge(f.Points[0], f.Points[1], segments, pool)
	right := subdivideEdge(f.Points[0], f.Points[2], segments, pool)

	prevRow := []geometry.Point{f.Points[0]}
	for i := 1; i <= segments; i++ {
		currRow := subdivideEdge(left[i], right[i], i, pool)

		for j := 0; j < i; j++ {
			// Upward triangle between the rows.
			out = append(out, geometry.NewFace(*nextID, prevRow[j], currRow[j], currRow[j+1]))
			*nextID++

			if j > 0 {
				// Downward triangle filling the gap to the previous strip.
				out = append(out, geometry.NewFace(*nextID, prevRow[j-1], prevRow[j], currRow[j]))
				*nextID++
			}
		}

		prevRow = currRow
	}

	return out
}
