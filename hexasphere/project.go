// project.go — radial projection and vertex correspondence.
//
// Projection preserves direction, not coordinates, so every pre-projection
// vertex must be re-associated with its on-sphere counterpart. The
// correspondence index carries the pre-projection quantized key alongside
// each projected point, turning the classic tolerance-based direction scan
// (unit-direction distance < 1e-3, the coordinate quantum) into an O(1)
// lookup with identical matches: quantized keys collide exactly when the
// direction scan would accept.

package hexasphere

import (
	"fmt"

	"github.com/katalvlaran/geotiles/geometry"
)

// correspondence maps each pre-projection vertex identity to its projected
// counterpart.
type correspondence map[geometry.Key]geometry.Point

// projectPool rescales every distinct pooled point onto the sphere of the
// given radius and indexes the results by pre-projection key.
func projectPool(pool *geometry.Pool, radius float64) (correspondence, error) {
	corr := make(correspondence, pool.Len())
	for _, p := range pool.Points() {
		projected, err := p.Project(radius)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodNew, err)
		}
		corr[p.Key()] = projected
	}

	return corr, nil
}

// projectFace re-expresses f with the projected counterparts of its three
// vertices. A missing counterpart is an internal invariant violation and
// fails construction (ErrNoProjection).
func projectFace(f *geometry.Face, corr correspondence) (geometry.Face, error) {
	var projected [3]geometry.Point
	for i, p := range f.Points {
		pp, ok := corr[p.Key()]
		if !ok {
			return geometry.Face{}, fmt.Errorf("%s: face %d vertex %v: %w", methodNew, f.ID, p, ErrNoProjection)
		}
		projected[i] = pp
	}

	return geometry.NewFace(f.ID, projected[0], projected[1], projected[2]), nil
}
