// Package geotiles builds spherical tile maps from hexagons and pentagons —
// the Goldberg polyhedron obtained by subdividing an icosahedron, projecting
// it onto a sphere, and taking the dual tessellation.
//
// 🚀 What is geotiles?
//
//	A deterministic, pure-computation library that brings together:
//		• Geometry primitives: quantized 3D points, free vectors, triangular faces
//		• The construction pipeline: seed icosahedron → subdivision → projection
//		  → vertex stars → angular sort → dual tiles → neighbor resolution
//		• Tile analysis: radii, edge lengths, areas, orientation bases
//		• Consumers: hexagon statistics, OBJ/JSON mesh export, regular-hexagon
//		  approximation, thick tiles and inner spheres
//
// ✨ Why choose geotiles?
//
//   - Deterministic – identical inputs always yield identical tile graphs
//   - Exactly 12 pentagons – the icosahedral invariant holds at every depth
//   - Pure Go – no cgo, a single small dependency surface
//   - Two-phase linking – tiles reference neighbors by plain integer index
//
// Under the hood, everything is organized under three subpackages:
//
//	geometry/   — Point, Vector3, Face, and the shared point pool
//	tile/       — Tile construction, winding, orientation, thick tiles
//	hexasphere/ — the full pipeline and the immutable Hexasphere aggregate
//
// Quick ASCII example:
//
//	     _ _
//	   /     \      one hexagonal tile: a projected vertex (center)
//	  \  · _ /      ringed by the centroids of its six surrounding faces
//	   \ _ _ /
//
// Dive into README-style doc.go files in each subpackage for contracts,
// complexity notes, and error policies.
//
//	go get github.com/katalvlaran/geotiles/hexasphere
package geotiles
