// pool.go — the shared point-deduplication pool.
//
// The subdivider discovers each interior vertex from up to six adjacent
// faces; the pool collapses those discoveries onto one canonical Point per
// quantized identity. Single writer during construction, no concurrent
// readers (see the concurrency notes in hexasphere/doc.go).

package geometry

// Pool deduplicates Points by their quantized Key. The zero value is not
// usable; construct with NewPool.
type Pool struct {
	points map[Key]Point
	order  []Key
}

// NewPool returns an empty pool.
func NewPool() *Pool {
	return &Pool{points: make(map[Key]Point)}
}

// Intern resolves p to the canonical instance for its quantized identity,
// inserting p if the identity is new. O(1) average.
func (pl *Pool) Intern(p Point) Point {
	k := p.Key()
	if existing, ok := pl.points[k]; ok {
		return existing
	}
	pl.points[k] = p
	pl.order = append(pl.order, k)

	return p
}

// Len returns the number of distinct points interned so far.
func (pl *Pool) Len() int {
	return len(pl.points)
}

// Points returns the distinct points in first-interned order. The slice is
// freshly allocated; mutating it does not affect the pool.
func (pl *Pool) Points() []Point {
	out := make([]Point, 0, len(pl.order))
	for _, k := range pl.order {
		out = append(out, pl.points[k])
	}

	return out
}
