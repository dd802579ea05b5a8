package measurement

import (
	"math"

	"github.com/posemark/posemark/pkg/geometry"
)

// Defaults applied when the operator leaves the corresponding prompt empty
const (
	DefaultTolerance = 15.0
	DefaultWeight    = 1.0
)

// Measurement is one finished angle annotation. The three points are kept
// in click order: first limb end, vertex, second limb end. A measurement
// is never mutated after creation.
type Measurement struct {
	Name         string
	Points       [3]geometry.Point
	AngleDegrees float64
	Tolerance    float64
	Weight       float64
}

// Point1 returns the first clicked limb end
func (m Measurement) Point1() geometry.Point { return m.Points[0] }

// Vertex returns the joint the angle is measured at
func (m Measurement) Vertex() geometry.Point { return m.Points[1] }

// Point3 returns the second clicked limb end
func (m Measurement) Point3() geometry.Point { return m.Points[2] }

// TargetAngle returns the angle rounded to one decimal place, the
// precision recorded in the persisted artifacts
func (m Measurement) TargetAngle() float64 {
	return math.Round(m.AngleDegrees*10) / 10
}
