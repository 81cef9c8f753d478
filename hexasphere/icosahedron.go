// icosahedron.go — the seed solid.
//
// Produces the 12 vertices of a regular icosahedron as three mutually
// perpendicular golden-ratio rectangles and wires them into 20 faces using
// the fixed adjacency table in constants.go. Deterministic and pure.

package hexasphere

import "github.com/katalvlaran/geotiles/geometry"

// icosahedronCorners returns the 12 seed vertices, interned into the shared
// pool so they participate in subdivision deduplication.
func icosahedronCorners(pool *geometry.Pool) [12]geometry.Point {
	corners := [12]geometry.Point{
		geometry.NewPoint(cornerScale, tao*cornerScale, 0),
		geometry.NewPoint(-cornerScale, tao*cornerScale, 0),
		geometry.NewPoint(cornerScale, -tao*cornerScale, 0),
		geometry.NewPoint(-cornerScale, -tao*cornerScale, 0),
		geometry.NewPoint(0, cornerScale, tao*cornerScale),
		geometry.NewPoint(0, -cornerScale, tao*cornerScale),
		geometry.NewPoint(0, cornerScale, -tao*cornerScale),
		geometry.NewPoint(0, -cornerScale, -tao*cornerScale),
		geometry.NewPoint(tao*cornerScale, 0, cornerScale),
		geometry.NewPoint(-tao*cornerScale, 0, cornerScale),
		geometry.NewPoint(tao*cornerScale, 0, -cornerScale),
		geometry.NewPoint(-tao*cornerScale, 0, -cornerScale),
	}
	for i := range corners {
		corners[i] = pool.Intern(corners[i])
	}

	return corners
}

// seedFaces builds the 20 icosahedron faces with ids 0–19 from the
// canonical adjacency table.
func seedFaces(corners [12]geometry.Point) []geometry.Face {
	faces := make([]geometry.Face, 0, seedFaceCount)
	for id, idx := range icosahedronFaces {
		faces = append(faces, geometry.NewFace(id, corners[idx[0]], corners[idx[1]], corners[idx[2]]))
	}

	return faces
}
