// hexasphere.go — the construction entry point and the immutable aggregate.
//
// Construction is two-phase: tiles are built by identity (quantized center
// keys) and linked by index only once every tile exists. Tiles live in one
// append-only slice; neighbor links are plain integer back-references into
// the same slice, never separate ownership.

package hexasphere

import (
	"fmt"

	"github.com/katalvlaran/geotiles/geometry"
	"github.com/katalvlaran/geotiles/tile"
)

// Hexasphere is the finished Goldberg tessellation: a radius and the full
// ordered tile collection. Immutable once returned from New; safe for
// concurrent reads.
type Hexasphere struct {
	// Radius is the sphere radius every tile center lies on.
	Radius float64
	// Tiles is the ordered tile collection. Neighbor indices point into
	// this slice.
	Tiles []tile.Tile
}

// New constructs the Goldberg tessellation of a sphere.
//
// Parameters:
//   - radius: sphere radius; must be positive (ErrNonPositiveRadius).
//   - depth: recursive subdivision depth ≥ 0 (ErrNegativeDepth). Each level
//     quadruples the face count; depth d yields 10·4ᵈ+2 tiles
//     (0→12, 1→42, 2→162, 3→642), of which exactly 12 are pentagons.
//   - hexSize: boundary shrink factor, clamped to [tile.MinHexSize,
//     tile.MaxHexSize]. At 1.0 adjacent tiles share exact edges.
//
// The construction is deterministic and yields either a complete,
// consistent Hexasphere or an error — never a partial result.
func New(radius float64, depth int, hexSize float64) (*Hexasphere, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%s: radius %v: %w", methodNew, radius, ErrNonPositiveRadius)
	}
	if depth < 0 {
		return nil, fmt.Errorf("%s: depth %d: %w", methodNew, depth, ErrNegativeDepth)
	}

	// Seed solid: 12 corners, 20 faces, shared dedup pool.
	pool := geometry.NewPool()
	corners := icosahedronCorners(pool)

	// Subdivide each seed face into a 2ᵈ-segment triangular grid; new face
	// ids continue monotonically after the seed ids.
	segments := 1 << depth
	nextID := seedFaceCount
	faces := make([]geometry.Face, 0, seedFaceCount*segments*segments)
	for _, f := range seedFaces(corners) {
		faces = append(faces, subdivideFace(f, segments, pool, &nextID)...)
	}

	// Project every distinct vertex onto the sphere and index by
	// pre-projection identity.
	corr, err := projectPool(pool, radius)
	if err != nil {
		return nil, err
	}

	// Group projected faces into per-vertex stars.
	stars, err := groupStars(faces, corr)
	if err != nil {
		return nil, err
	}

	// Phase one: build tiles by identity, in star discovery order.
	tiles := make([]tile.Tile, 0, len(stars))
	byKey := make(map[geometry.Key]int, len(stars))
	for i := range stars {
		sortAround(stars[i].faces, stars[i].center)
		t := tile.New(stars[i].center, stars[i].faces, hexSize)
		byKey[t.Key()] = len(tiles)
		tiles = append(tiles, t)
	}

	// Phase two: resolve raw neighbor identities to indices. Identities
	// with no match are dropped rather than failed; a partially connected
	// graph remains usable (and a complete subdivision never produces one).
	for i := range tiles {
		t := &tiles[i]
		t.Neighbors = make([]int, 0, len(t.NeighborKeys))
		for _, nk := range t.NeighborKeys {
			if idx, ok := byKey[nk]; ok {
				t.Neighbors = append(t.Neighbors, idx)
			}
		}
	}

	return &Hexasphere{Radius: radius, Tiles: tiles}, nil
}

// HexagonCount returns the number of six-sided tiles.
func (h *Hexasphere) HexagonCount() int {
	n := 0
	for i := range h.Tiles {
		if h.Tiles[i].IsHexagon() {
			n++
		}
	}

	return n
}

// PentagonCount returns the number of five-sided tiles — 12 for every
// complete construction.
func (h *Hexasphere) PentagonCount() int {
	n := 0
	for i := range h.Tiles {
		if h.Tiles[i].IsPentagon() {
			n++
		}
	}

	return n
}

// Orientations returns the local orientation basis of every tile, in tile
// order.
func (h *Hexasphere) Orientations() []tile.Orientation {
	out := make([]tile.Orientation, 0, len(h.Tiles))
	for i := range h.Tiles {
		if o, ok := h.Tiles[i].Orientation(); ok {
			out = append(out, o)
		}
	}

	return out
}

// HexagonApproximations returns the regular-hexagon idealization of every
// hexagonal tile, in tile order. Pentagons are skipped.
func (h *Hexasphere) HexagonApproximations() []tile.RegularHexagonParams {
	out := make([]tile.RegularHexagonParams, 0, len(h.Tiles))
	for i := range h.Tiles {
		if params, ok := h.Tiles[i].HexagonParams(); ok {
			out = append(out, params)
		}
	}

	return out
}

// UniformHexagonRadius returns one radius usable for all hexagons when
// rendering uniform instanced geometry: the average hexagon radius.
func (h *Hexasphere) UniformHexagonRadius() float64 {
	return h.Stats().AverageHexagonRadius
}

// InnerSphere returns a concentric copy of h scaled to innerRadius. The
// topology is preserved exactly: tile order and neighbor indices are
// identical; centers and boundaries scale by innerRadius/h.Radius.
func (h *Hexasphere) InnerSphere(innerRadius float64) *Hexasphere {
	ratio := innerRadius / h.Radius

	tiles := make([]tile.Tile, 0, len(h.Tiles))
	for i := range h.Tiles {
		src := &h.Tiles[i]

		boundary := make([]geometry.Point, 0, len(src.Boundary))
		for _, bp := range src.Boundary {
			boundary = append(boundary, geometry.NewPoint(bp.X*ratio, bp.Y*ratio, bp.Z*ratio))
		}

		neighbors := make([]int, len(src.Neighbors))
		copy(neighbors, src.Neighbors)

		tiles = append(tiles, tile.Tile{
			Center:    geometry.NewPoint(src.Center.X*ratio, src.Center.Y*ratio, src.Center.Z*ratio),
			Boundary:  boundary,
			Neighbors: neighbors,
		})
	}

	// Re-key the raw neighbor identities against the scaled centers so the
	// identity form stays consistent with the new coordinates.
	for i := range h.Tiles {
		keys := make([]geometry.Key, 0, len(tiles[i].Neighbors))
		for _, idx := range tiles[i].Neighbors {
			keys = append(keys, tiles[idx].Key())
		}
		tiles[i].NeighborKeys = keys
	}

	return &Hexasphere{Radius: innerRadius, Tiles: tiles}
}

// ThickTiles extrudes every tile inward by thickness along its radial
// direction, in tile order.
func (h *Hexasphere) ThickTiles(thickness float64) []tile.ThickTile {
	out := make([]tile.ThickTile, 0, len(h.Tiles))
	for i := range h.Tiles {
		out = append(out, tile.NewThickTile(&h.Tiles[i], thickness))
	}

	return out
}
