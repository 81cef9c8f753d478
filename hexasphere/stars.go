// stars.go — vertex stars and their cyclic ordering.
//
// A star is the set of faces surrounding one projected vertex: 5 for the 12
// vertices descended from icosahedron corners, 6 for everything else. Stars
// are discovered in face-id order, which fixes each star's first face and
// with it the angular sorter's reference direction; see the determinism
// notes in doc.go.

package hexasphere

import (
	"math"
	"sort"

	"github.com/katalvlaran/geotiles/geometry"
)

// star is one projected vertex and the faces that touch it.
type star struct {
	center geometry.Point
	faces  []geometry.Face
}

// groupStars resolves every face vertex to its projected counterpart and
// groups the projected faces per vertex, preserving discovery order for
// both the stars and the faces within each star.
func groupStars(faces []geometry.Face, corr correspondence) ([]star, error) {
	byKey := make(map[geometry.Key]int, len(faces)/2)
	stars := make([]star, 0, len(faces)/2)

	for i := range faces {
		pf, err := projectFace(&faces[i], corr)
		if err != nil {
			return nil, err
		}

		for _, p := range pf.Points {
			k := p.Key()
			idx, ok := byKey[k]
			if !ok {
				idx = len(stars)
				byKey[k] = idx
				stars = append(stars, star{center: p})
			}
			stars[idx].faces = append(stars[idx].faces, pf)
		}
	}

	return stars, nil
}

// sortAround orders faces cyclically around center so consecutive faces
// share an edge. The frame: up is the outward radial at center, right the
// direction to the first face's centroid, forward = up × right; each face
// sorts by atan2 of its centroid direction in the right/forward plane.
// Ties (degenerate geometry, not expected) break by ascending face id.
func sortAround(faces []geometry.Face, center geometry.Point) {
	if len(faces) <= 2 {
		return
	}

	right := geometry.VectorBetween(center, (&faces[0]).Centroid()).Normalize()
	up := geometry.NewVector3(center.X, center.Y, center.Z).Normalize()
	forward := up.Cross(right).Normalize()

	angles := make([]float64, len(faces))
	for i := range faces {
		dir := geometry.VectorBetween(center, (&faces[i]).Centroid()).Normalize()
		angles[i] = math.Atan2(dir.Dot(forward), dir.Dot(right))
	}

	order := make([]int, len(faces))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		if angles[order[a]] != angles[order[b]] {
			return angles[order[a]] < angles[order[b]]
		}

		return faces[order[a]].ID < faces[order[b]].ID
	})

	sorted := make([]geometry.Face, len(faces))
	for pos, idx := range order {
		sorted[pos] = faces[idx]
	}
	copy(faces, sorted)
}
