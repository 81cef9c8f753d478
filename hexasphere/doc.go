// Package hexasphere constructs Goldberg-polyhedron tile spheres: it
// subdivides an icosahedron, projects the result onto a sphere, and builds
// the dual tessellation of hexagons and exactly 12 pentagons.
//
// What:
//
//   - New(radius, depth, hexSize) runs the full pipeline: seed icosahedron
//     → per-face subdivision with a shared point pool → radial projection →
//     key-based correspondence → per-vertex face stars → angular sort →
//     dual tile construction → neighbor resolution. It returns an immutable
//     Hexasphere or an error; never a partial result.
//   - Stats aggregates hexagon radius/edge/area metrics.
//   - ToOBJ / ToJSON export a deduplicated polygon mesh and a summary.
//   - InnerSphere and ThickTiles derive concentric and extruded variants.
//
// Why:
//
//   - Spherical game boards, planet surface partitions, and simulation
//     grids need a near-uniform cell graph with full adjacency; Goldberg
//     polyhedra are the canonical construction.
//
// Determinism:
//
//   - Seed faces come from a fixed adjacency table; subdivision assigns
//     monotone face ids; stars are discovered in face-id order; angular
//     ties break by ascending face id. Identical (radius, depth, hexSize)
//     therefore always produce identical tile order, boundary coordinates,
//     and neighbor index sets.
//   - The angular sorter's reference direction is the centroid of the first
//     face discovered at each vertex, so a tile's first boundary point (and
//     its orientation basis) depends on this fixed discovery order. Any
//     consistent order yields a valid simple polygon; this one is part of
//     the package's determinism contract.
//
// Complexity:
//
//   - Depth d yields 20·4ᵈ faces and 10·4ᵈ+2 tiles; construction is a
//     single synchronous CPU-bound pass, O(faces) time and space.
//
// Concurrency:
//
//   - Construction is single-threaded with one writer over the point pool
//     and face-id counter. The returned Hexasphere is immutable and freely
//     shareable for concurrent reads.
//
// Errors:
//
//   - ErrNonPositiveRadius: radius ≤ 0.
//   - ErrNegativeDepth: subdivision depth < 0.
//   - ErrNoProjection: a subdivided vertex had no projected counterpart —
//     an internal invariant violation that fails construction outright.
//   - geometry.ErrDegeneratePoint: origin-coincident projection input;
//     unreachable from valid input.
//
// Unresolvable neighbor identities are dropped, not failed: a partially
// connected graph remains usable, and a complete subdivision never
// produces one.
package hexasphere
