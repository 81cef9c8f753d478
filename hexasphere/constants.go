// constants.go — canonical construction constants: the golden-ratio corner
// layout and the fixed icosahedron adjacency table. These are algorithmic
// constants, not values derived at runtime; edge emission and face ids are
// deterministic because the tables are fixed.

package hexasphere

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the operation name for context.
//-----------------------------------------------------------------------------

const (
	// methodNew is the canonical name of the construction entry point.
	methodNew = "New"
)

//-----------------------------------------------------------------------------
// Seed Icosahedron
//-----------------------------------------------------------------------------

// tao is the golden ratio τ = (1+√5)/2, truncated to the precision the
// construction was calibrated with.
const tao = 1.61803399

// cornerScale is the coordinate scale of the seed corners. Chosen large so
// the 3-decimal coordinate quantization is negligible relative to the seed
// solid; projection rescales everything onto the requested sphere anyway.
const cornerScale = 1000.0

// seedFaceCount is the number of faces of a regular icosahedron. Subdivided
// face ids start above this value.
const seedFaceCount = 20

// icosahedronFaces wires the 12 corners into 20 triangles. Index order is
// canonical: it fixes face ids 0–19 and, through them, every downstream
// discovery order.
var icosahedronFaces = [seedFaceCount][3]int{
	{0, 1, 4},
	{1, 9, 4},
	{4, 9, 5},
	{5, 9, 3},
	{2, 3, 7},
	{3, 2, 5},
	{7, 10, 2},
	{0, 8, 10},
	{0, 4, 8},
	{8, 2, 10},
	{8, 4, 5},
	{8, 5, 2},
	{1, 0, 6},
	{11, 1, 6},
	{3, 9, 11},
	{6, 10, 7},
	{3, 11, 7},
	{11, 6, 7},
	{6, 0, 10},
	{9, 1, 11},
}
