// tile.go — Tile construction from an ordered vertex star.
//
// Construction contract:
//   • faces MUST be cyclically sorted around center (consecutive faces share
//     an edge); New preserves that order in the boundary.
//   • hexSize is clamped to [MinHexSize, MaxHexSize]. At 1.0 boundary points
//     equal face centroids, so adjacent tiles share exact edges; smaller
//     values pull the boundary inward, opening visible gaps.
//   • Neighbor identities are collected by quantized key and resolved to
//     indices later, once every tile exists (two-phase linking).

package tile

import (
	"github.com/katalvlaran/geotiles/geometry"
)

// Bounds for the hexSize shrink factor.
const (
	// MinHexSize is the smallest accepted shrink factor; below this tiles
	// degenerate to points.
	MinHexSize = 0.01
	// MaxHexSize makes boundary points coincide with face centroids.
	MaxHexSize = 1.0
)

// Tile is one polygonal cell of the Goldberg tessellation.
type Tile struct {
	// Center is the projected geodesic vertex this tile is dual to.
	Center geometry.Point
	// Boundary is the ordered polygon perimeter (5 or 6 points), wound so
	// its normal faces outward from the sphere center.
	Boundary []geometry.Point
	// NeighborKeys are the canonical identities of adjacent tile centers,
	// in first-seen order, before index resolution.
	NeighborKeys []geometry.Key
	// Neighbors are indices of adjacent tiles within the owning collection,
	// populated by the neighbor-resolution pass.
	Neighbors []int
}

// New builds the tile dual to center from its sorted face star.
func New(center geometry.Point, faces []geometry.Face, hexSize float64) Tile {
	hexSize = clampHexSize(hexSize)

	t := Tile{
		Center:       center,
		Boundary:     make([]geometry.Point, 0, len(faces)),
		NeighborKeys: make([]geometry.Key, 0, len(faces)),
	}

	seen := make(map[geometry.Key]struct{}, len(faces))
	for i := range faces {
		f := &faces[i]
		t.Boundary = append(t.Boundary, center.Segment(f.Centroid(), hexSize))

		// The two non-center vertices of each face are centers of the
		// adjacent tiles.
		for _, other := range f.OtherPoints(center) {
			k := other.Key()
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			t.NeighborKeys = append(t.NeighborKeys, k)
		}
	}

	t.fixBoundaryOrientation()

	return t
}

// fixBoundaryOrientation reverses the boundary when the normal of the
// triangle (boundary[1], boundary[2], boundary[0]) does not sign-agree with
// the center on all three axes. Valid because tiles sit on a sphere
// centered at the origin, so outward and "same octant as center" coincide.
func (t *Tile) fixBoundaryOrientation() {
	if len(t.Boundary) < 3 {
		return
	}
	normal := geometry.SurfaceNormal(t.Boundary[1], t.Boundary[2], t.Boundary[0])
	if !geometry.PointingAwayFromOrigin(t.Center, normal) {
		for i, j := 0, len(t.Boundary)-1; i < j; i, j = i+1, j-1 {
			t.Boundary[i], t.Boundary[j] = t.Boundary[j], t.Boundary[i]
		}
	}
}

// IsHexagon reports whether the tile has six boundary points.
func (t *Tile) IsHexagon() bool {
	return len(t.Boundary) == 6
}

// IsPentagon reports whether the tile has five boundary points. Exactly 12
// tiles per sphere are pentagons, independent of subdivision depth.
func (t *Tile) IsPentagon() bool {
	return len(t.Boundary) == 5
}

// Key returns the canonical identity of the tile: its center's quantized
// key. Tiles are looked up by this identity during neighbor resolution.
func (t *Tile) Key() geometry.Key {
	return t.Center.Key()
}

// String renders the tile as its center point, its canonical textual form.
func (t *Tile) String() string {
	return t.Center.String()
}

// ScaledBoundary returns a copy of the boundary with every point pulled
// from the center outward by scale (1.0 ⇒ unchanged, 0.5 ⇒ half-size).
// scale is clamped to [0, 1]. The tile itself is not modified.
func (t *Tile) ScaledBoundary(scale float64) []geometry.Point {
	if scale < 0 {
		scale = 0
	} else if scale > 1 {
		scale = 1
	}

	out := make([]geometry.Point, 0, len(t.Boundary))
	for _, bp := range t.Boundary {
		out = append(out, t.Center.Segment(bp, scale))
	}

	return out
}

// LatLon converts the tile center to geographic coordinates on a sphere of
// the given radius.
func (t *Tile) LatLon(radius float64) geometry.LatLon {
	return t.Center.LatLon(radius)
}

// BoundaryLatLon converts boundary point i to geographic coordinates; ok is
// false when i is out of range.
func (t *Tile) BoundaryLatLon(radius float64, i int) (ll geometry.LatLon, ok bool) {
	if i < 0 || i >= len(t.Boundary) {
		return geometry.LatLon{}, false
	}

	return t.Boundary[i].LatLon(radius), true
}

// clampHexSize bounds the shrink factor to [MinHexSize, MaxHexSize].
func clampHexSize(h float64) float64 {
	if h < MinHexSize {
		return MinHexSize
	}
	if h > MaxHexSize {
		return MaxHexSize
	}

	return h
}
