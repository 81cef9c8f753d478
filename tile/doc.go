// Package tile converts ordered vertex stars of the geodesic polyhedron
// into the hexagonal and pentagonal tiles of its Goldberg dual, and offers
// read-only tile analysis: metrics, orientation bases, regular-hexagon
// approximation, and thick-tile extrusion.
//
// What:
//
//   - New builds one Tile from a projected center point and its angularly
//     sorted face star: boundary points are face centroids pulled toward
//     the center by hexSize, raw neighbor identities come from the two
//     non-center vertices of each face, and the boundary winding is fixed
//     to face outward.
//   - Tile exposes metrics (AverageRadius, AverageEdgeLength, Area),
//     classification (IsHexagon/IsPentagon), geographic accessors, and a
//     scaled boundary for rendering insets.
//   - Orientation derives a right/up/forward orthonormal basis from the
//     center and first boundary point; HexagonParams idealizes a 6-sided
//     tile as a regular hexagon in that basis.
//   - NewThickTile extrudes a surface tile inward along the radial
//     direction, producing renderable vertex and index buffers.
//
// Why:
//
//   - Game boards, planet surfaces, and simulation cells all consume the
//     finished tile graph read-only; everything here is derived data.
//
// Complexity:
//
//   - New: O(s) for a star of s faces (s is 5 or 6).
//   - All metrics: O(b) over the boundary length b.
//
// Invariants:
//
//   - A Tile boundary has exactly 5 or 6 points, fixed for its lifetime.
//   - The normal of the first three boundary points agrees in sign,
//     component-wise, with the center point (outward winding).
//   - Neighbors is valid only after hexasphere.New resolves identities to
//     indices; NeighborKeys is the pre-resolution form.
package tile
