// errors.go — sentinel errors for hexasphere construction.
//
// Error policy (the same contract as the geometry package):
//   • Only package-level sentinels are exposed; callers branch with
//     errors.Is.
//   • Implementations attach method context via %w wrapping and never
//     stringify parameters into the sentinels themselves.
//   • Construction never panics: every failure surfaces as a wrapped
//     sentinel, and no partial Hexasphere is ever returned.

package hexasphere

import "errors"

// ErrNonPositiveRadius indicates a sphere radius ≤ 0.
// Usage: if errors.Is(err, ErrNonPositiveRadius) { /* fix radius */ }.
var ErrNonPositiveRadius = errors.New("hexasphere: radius must be positive")

// ErrNegativeDepth indicates a subdivision depth < 0.
// Usage: if errors.Is(err, ErrNegativeDepth) { /* fix depth */ }.
var ErrNegativeDepth = errors.New("hexasphere: subdivision depth must be non-negative")

// ErrNoProjection indicates a subdivided vertex had no projected
// counterpart in the correspondence index. This is an internal invariant
// violation: silently dropping the vertex would corrupt its face star, so
// construction fails outright. Unreachable from a valid icosahedron
// subdivision.
var ErrNoProjection = errors.New("hexasphere: no projected counterpart for vertex")
