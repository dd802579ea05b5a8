package measurement

import "github.com/posemark/posemark/pkg/geometry"

// Phase describes how far the current three-point selection has progressed
type Phase int

const (
	PhaseEmpty Phase = iota
	PhaseOnePoint
	PhaseTwoPoints
	PhaseComplete
)

// Selection accumulates the 0..3 clicked points of the angle currently
// being measured. Once three points are accepted the angle is computed and
// the selection latches until the operator finishes (or abandons) the
// metadata entry for the measurement.
type Selection struct {
	points           []geometry.Point
	angle            float64
	awaitingMetadata bool
}

// NewSelection creates an empty selection
func NewSelection() *Selection {
	return &Selection{points: make([]geometry.Point, 0, 3)}
}

// Phase returns the current selection phase
func (s *Selection) Phase() Phase {
	switch len(s.points) {
	case 0:
		return PhaseEmpty
	case 1:
		return PhaseOnePoint
	case 2:
		return PhaseTwoPoints
	default:
		return PhaseComplete
	}
}

// Points returns the clicked points in click order
func (s *Selection) Points() []geometry.Point {
	return s.points
}

// Angle returns the computed angle in degrees. Only meaningful once the
// selection is complete.
func (s *Selection) Angle() float64 {
	return s.angle
}

// AwaitingMetadata reports whether a completed triple is waiting for the
// operator to enter name/tolerance/weight
func (s *Selection) AwaitingMetadata() bool {
	return s.awaitingMetadata
}

// Add accepts the next clicked point and reports whether it completed the
// selection. Clicks are ignored while metadata entry is pending or the
// selection is already complete. A click that coincides with the previous
// click, or a third click that would produce a degenerate triple, is
// rejected with geometry.ErrDegenerateAngle and leaves the selection
// unchanged.
func (s *Selection) Add(p geometry.Point) (bool, error) {
	if s.awaitingMetadata || len(s.points) >= 3 {
		return false, nil
	}

	if len(s.points) > 0 && p == s.points[len(s.points)-1] {
		return false, geometry.ErrDegenerateAngle
	}

	if len(s.points) == 2 {
		angle, err := geometry.Angle(s.points[0], s.points[1], p)
		if err != nil {
			return false, err
		}
		s.points = append(s.points, p)
		s.angle = angle
		return true, nil
	}

	s.points = append(s.points, p)
	return false, nil
}

// Reset discards an in-progress selection and reports whether anything was
// discarded. It is a no-op on an empty or completed selection; a completed
// selection is cleared via Finish once the metadata flow ends.
func (s *Selection) Reset() bool {
	if len(s.points) == 0 || len(s.points) >= 3 {
		return false
	}
	s.points = s.points[:0]
	return true
}

// BeginMetadata latches a completed selection while the operator enters
// name/tolerance/weight. Further clicks are ignored until Finish.
func (s *Selection) BeginMetadata() {
	if len(s.points) == 3 {
		s.awaitingMetadata = true
	}
}

// Finish returns the selection to empty, ready for the next angle
func (s *Selection) Finish() {
	s.points = s.points[:0]
	s.angle = 0
	s.awaitingMetadata = false
}
