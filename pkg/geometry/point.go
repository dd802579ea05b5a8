package geometry

import "math"

// Point represents a pixel position in image coordinates
type Point struct {
	X, Y int
}

// NewPoint creates a new pixel point
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// Sub returns the vector from other to p
func (p Point) Sub(other Point) Vector {
	return Vector{
		X: float64(p.X - other.X),
		Y: float64(p.Y - other.Y),
	}
}

// Scale maps the point between resolutions by multiplying both
// coordinates with factor and rounding to the nearest pixel
func (p Point) Scale(factor float64) Point {
	return Point{
		X: int(math.Round(float64(p.X) * factor)),
		Y: int(math.Round(float64(p.Y) * factor)),
	}
}

// Distance returns the distance between two points in pixels
func (p Point) Distance(other Point) float64 {
	return p.Sub(other).Length()
}

// Vector represents a 2D direction between pixel positions
type Vector struct {
	X, Y float64
}

// Dot returns the dot product of two vectors
func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the scalar cross product of two vectors
func (v Vector) Cross(other Vector) float64 {
	return v.X*other.Y - v.Y*other.X
}

// Length returns the magnitude of the vector
func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}
