// export.go — mesh and summary export.

package hexasphere

import (
	"encoding/json"
	"fmt"
	"strings"
)

// summary is the JSON export document.
type summary struct {
	Radius    float64 `json:"radius"`
	TileCount int     `json:"tile_count"`
}

// ToJSON returns a compact JSON summary of the sphere:
// {"radius": ..., "tile_count": ...}.
func (h *Hexasphere) ToJSON() (string, error) {
	b, err := json.Marshal(summary{Radius: h.Radius, TileCount: len(h.Tiles)})
	if err != nil {
		return "", fmt.Errorf("ToJSON: %w", err)
	}

	return string(b), nil
}

// ToOBJ renders the tessellation as a Wavefront OBJ polygon mesh. Boundary
// points shared between adjacent tiles (hexSize 1.0) are emitted once and
// referenced by index; OBJ indices are 1-based.
func (h *Hexasphere) ToOBJ() string {
	var sb strings.Builder
	sb.WriteString("# vertices\n")

	type faceIndices []int
	vertexIndex := make(map[string]int)
	var vertices []string
	faces := make([]faceIndices, 0, len(h.Tiles))

	for i := range h.Tiles {
		indices := make(faceIndices, 0, len(h.Tiles[i].Boundary))
		for _, bp := range h.Tiles[i].Boundary {
			key := bp.String()
			idx, ok := vertexIndex[key]
			if !ok {
				idx = len(vertices) + 1
				vertexIndex[key] = idx
				vertices = append(vertices, fmt.Sprintf("v %v %v %v\n", bp.X, bp.Y, bp.Z))
			}
			indices = append(indices, idx)
		}
		faces = append(faces, indices)
	}

	for _, v := range vertices {
		sb.WriteString(v)
	}

	sb.WriteString("\n# faces\n")
	for _, f := range faces {
		sb.WriteByte('f')
		for _, idx := range f {
			fmt.Fprintf(&sb, " %d", idx)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
