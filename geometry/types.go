// types.go — core types, quantization constants, and sentinel errors.

package geometry

import "errors"

// Sentinel errors for geometry operations.
var (
	// ErrDegeneratePoint indicates a radial projection of a point coincident
	// with the origin; its direction is undefined. Unreachable from any valid
	// icosahedron subdivision.
	ErrDegeneratePoint = errors.New("geometry: cannot project origin-coincident point")
)

// Quantization parameters. Coordinates are rounded to precisionDigits decimal
// places at Point construction; Key scales by precisionScale to obtain exact
// integer coordinates. The two must stay in sync.
const (
	// precisionDigits is the number of decimal places kept per coordinate.
	precisionDigits = 3
	// precisionScale is 10^precisionDigits, the milliunit scale of Key.
	precisionScale = 1000.0
)

// Key is the structural identity of a quantized Point: its coordinates in
// integer milliunits. Two Points constructed from coordinates that round to
// the same values share one Key, regardless of the computation path that
// produced them. Key is comparable and used directly as a map key by the
// point pool, the correspondence index, and neighbor resolution.
type Key struct {
	X, Y, Z int64
}

// LatLon is a geographic coordinate pair in degrees, produced by projecting
// a sphere-surface Point into a Y-up spherical coordinate system.
// Lat ∈ [-90, 90]; Lon ∈ [-180, 180].
type LatLon struct {
	Lat float64
	Lon float64
}
