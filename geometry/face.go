// face.go — triangular faces of the geodesic mesh.
//
// Contract:
//   • A Face always has exactly 3 points.
//   • Faces are immutable after creation except for centroid memoization.
//   • Face ids are assigned monotonically by the pipeline and used as the
//     deterministic tiebreak in angular sorting.

package geometry

// Face is a triangle of the subdivided icosahedron, identified by an
// integer id assigned at creation.
type Face struct {
	// ID is the pipeline-assigned face identifier (monotonic, unique).
	ID int
	// Points are the triangle's three vertices.
	Points [3]Point

	// centroid memoizes Centroid; nil until first computed.
	centroid *Point
}

// NewFace returns the triangle (p1, p2, p3) with the given id.
func NewFace(id int, p1, p2, p3 Point) Face {
	return Face{ID: id, Points: [3]Point{p1, p2, p3}}
}

// Centroid returns the arithmetic center of the triangle, computing and
// caching it on first call. The cache is safe under the pipeline's
// single-writer construction model.
func (f *Face) Centroid() Point {
	if f.centroid == nil {
		c := NewPoint(
			(f.Points[0].X+f.Points[1].X+f.Points[2].X)/3,
			(f.Points[0].Y+f.Points[1].Y+f.Points[2].Y)/3,
			(f.Points[0].Z+f.Points[1].Z+f.Points[2].Z)/3,
		)
		f.centroid = &c
	}

	return *f.centroid
}

// OtherPoints returns the one or two vertices of f that do not share the
// quantized identity of p. For a tile-center vertex this yields the two
// points whose identities become the tile's raw neighbor list.
func (f *Face) OtherPoints(p Point) []Point {
	k := p.Key()
	others := make([]Point, 0, 2)
	for _, fp := range f.Points {
		if fp.Key() != k {
			others = append(others, fp)
		}
	}

	return others
}

// ThirdPoint returns the vertex of f that is neither p1 nor p2, and whether
// such a vertex exists.
func (f *Face) ThirdPoint(p1, p2 Point) (Point, bool) {
	k1, k2 := p1.Key(), p2.Key()
	for _, fp := range f.Points {
		if k := fp.Key(); k != k1 && k != k2 {
			return fp, true
		}
	}

	return Point{}, false
}

// AdjacentTo reports whether f and other share exactly two vertices, i.e.
// a common edge.
func (f *Face) AdjacentTo(other *Face) bool {
	shared := 0
	for _, fp := range f.Points {
		k := fp.Key()
		for _, op := range other.Points {
			if op.Key() == k {
				shared++
			}
		}
	}

	return shared == 2
}

// Contains reports whether p is one of f's vertices by quantized identity.
func (f *Face) Contains(p Point) bool {
	k := p.Key()
	for _, fp := range f.Points {
		if fp.Key() == k {
			return true
		}
	}

	return false
}
