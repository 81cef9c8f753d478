// point.go — the quantized 3D point value type.
//
// Contract:
//   • NewPoint rounds every coordinate to precisionDigits decimal places;
//     all derived constructors (Segment, Subdivide, Project) re-quantize.
//   • Equality and Key identity are defined purely on rounded coordinates.
//   • Point is immutable: every operation returns a new value.

package geometry

import (
	"fmt"
	"math"
	"strconv"
)

// Point is a position in 3D space with coordinates quantized to three
// decimal places. It doubles as a deduplication/lookup identity via Key.
type Point struct {
	X, Y, Z float64
}

// NewPoint returns the Point for (x, y, z) with each coordinate rounded to
// the fixed precision, so geometrically coincident points compare equal
// regardless of the floating-point path that produced them.
func NewPoint(x, y, z float64) Point {
	return Point{
		X: quantize(x),
		Y: quantize(y),
		Z: quantize(z),
	}
}

// quantize rounds a coordinate to precisionDigits decimal places.
func quantize(v float64) float64 {
	return math.Round(v*precisionScale) / precisionScale
}

// Key returns the structural map identity of p: its coordinates in integer
// milliunits. O(1), allocation-free.
func (p Point) Key() Key {
	return Key{
		X: int64(math.Round(p.X * precisionScale)),
		Y: int64(math.Round(p.Y * precisionScale)),
		Z: int64(math.Round(p.Z * precisionScale)),
	}
}

// String renders p as "x,y,z" — the canonical textual form used by mesh
// export and debugging output.
func (p Point) String() string {
	return strconv.FormatFloat(p.X, 'g', -1, 64) + "," +
		strconv.FormatFloat(p.Y, 'g', -1, 64) + "," +
		strconv.FormatFloat(p.Z, 'g', -1, 64)
}

// DistanceTo returns the Euclidean distance between p and other.
func (p Point) DistanceTo(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	dz := p.Z - other.Z

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Magnitude returns the distance from p to the origin.
func (p Point) Magnitude() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Segment returns the point a fraction percent of the way from p toward
// other (0 ⇒ p, 1 ⇒ other). percent is clamped to [0, 1]. Used to pull tile
// boundary points from face centroids toward the tile center.
func (p Point) Segment(other Point, percent float64) Point {
	percent = clamp(percent, 0, 1)

	return NewPoint(
		p.X*(1-percent)+other.X*percent,
		p.Y*(1-percent)+other.Y*percent,
		p.Z*(1-percent)+other.Z*percent,
	)
}

// Subdivide splits the segment p→other into count equal parts and returns
// the count+1 chain points, starting at p and ending at other. count == 0
// returns just p. Interior points are freshly quantized; endpoints are
// returned as-is.
func (p Point) Subdivide(other Point, count int) []Point {
	if count == 0 {
		return []Point{p}
	}

	chain := make([]Point, 0, count+1)
	chain = append(chain, p)
	for i := 1; i < count; i++ {
		t := float64(i) / float64(count)
		chain = append(chain, NewPoint(
			p.X*(1-t)+other.X*t,
			p.Y*(1-t)+other.Y*t,
			p.Z*(1-t)+other.Z*t,
		))
	}
	chain = append(chain, other)

	return chain
}

// Project returns the copy of p rescaled to lie at exactly distance radius
// from the origin along the same direction. Returns ErrDegeneratePoint if p
// coincides with the origin (direction undefined); unreachable from valid
// pipeline input.
func (p Point) Project(radius float64) (Point, error) {
	mag := p.Magnitude()
	if mag == 0 {
		return Point{}, fmt.Errorf("project %v: %w", p, ErrDegeneratePoint)
	}
	ratio := radius / mag

	return NewPoint(p.X*ratio, p.Y*ratio, p.Z*ratio), nil
}

// LatLon converts p, assumed to lie on a sphere of the given radius centered
// at the origin, to geographic coordinates in a Y-up frame: latitude is the
// angle from the XZ plane toward +Y, longitude the angle of (x, z).
func (p Point) LatLon(radius float64) LatLon {
	// Quantization can push |Y| marginally past the radius at a pole; clamp
	// the sine so the conversion stays finite.
	lat := math.Asin(clamp(p.Y/radius, -1, 1))
	lon := math.Atan2(p.X, p.Z)

	return LatLon{
		Lat: lat * 180 / math.Pi,
		Lon: lon * 180 / math.Pi,
	}
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
