// Package geometry provides the primitive types of the geotiles construction
// pipeline: quantized 3D points, free direction vectors, triangular faces,
// and the shared point-deduplication pool.
//
// What:
//
//   - Point is a value type whose coordinates are quantized to a fixed
//     decimal precision at construction, so geometrically coincident points
//     compare equal and share one structural map key (Key).
//   - Vector3 is a free direction (no position): Normalize, Cross, Dot.
//     It is deliberately NOT quantized.
//   - Face is three Points plus an integer id, with a lazily memoized
//     centroid.
//   - Pool deduplicates Points by Key so logically identical coordinates
//     always resolve to one canonical instance.
//
// Why:
//
//   - Subdivision discovers the same vertex from up to six adjacent faces;
//     quantized keys make those discoveries converge on a single Point.
//   - Radial projection preserves direction, not coordinates; carrying the
//     pre-projection Key through projection gives O(1) correspondence.
//
// Complexity:
//
//   - All Point/Vector3 operations: O(1).
//   - Pool.Intern: O(1) average (one map access).
//
// Errors:
//
//   - ErrDegeneratePoint: radial projection of an origin-coincident point
//     (division by zero magnitude). Unreachable from valid input.
//
// See hexasphere/doc.go for how these primitives feed the pipeline.
package geometry
