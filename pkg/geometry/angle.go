package geometry

import (
	"errors"
	"math"
)

// ErrDegenerateAngle is reported when one of the limb segments has zero
// length, i.e. an outer point coincides with the vertex.
var ErrDegenerateAngle = errors.New("degenerate angle: point coincides with vertex")

// Angle returns the interior angle at vertex, in degrees, formed by the
// segments vertex->p1 and vertex->p3.
//
// The angle is computed as atan2(|cross|, dot), which stays numerically
// stable near 0 and 180 degrees where the acos-of-normalized-dot form
// loses precision. The result is symmetric in p1/p3 and clamped to
// [0, 180].
func Angle(p1, vertex, p3 Point) (float64, error) {
	a := p1.Sub(vertex)
	b := p3.Sub(vertex)

	if a.Length() == 0 || b.Length() == 0 {
		return 0, ErrDegenerateAngle
	}

	deg := math.Atan2(math.Abs(a.Cross(b)), a.Dot(b)) * 180.0 / math.Pi

	if deg < 0 {
		deg = 0
	}
	if deg > 180 {
		deg = 180
	}
	return deg, nil
}
