package geometry

import (
	"errors"
	"math"
	"testing"
)

func TestAngleRightAngle(t *testing.T) {
	// Vertical segment down to the vertex, horizontal segment out of it
	angle, err := Angle(NewPoint(100, 100), NewPoint(100, 200), NewPoint(200, 200))
	if err != nil {
		t.Fatalf("Angle failed: %v", err)
	}

	expected := 90.0
	if math.Abs(angle-expected) > 1e-9 {
		t.Errorf("Angle failed: expected %v, got %v", expected, angle)
	}
}

func TestAngleStraightLine(t *testing.T) {
	// Outer points directly above and below the vertex
	angle, err := Angle(NewPoint(100, 100), NewPoint(100, 200), NewPoint(100, 300))
	if err != nil {
		t.Fatalf("Angle failed: %v", err)
	}

	expected := 180.0
	if math.Abs(angle-expected) > 1e-9 {
		t.Errorf("Angle failed: expected %v, got %v", expected, angle)
	}
}

func TestAngleCoincidentDirections(t *testing.T) {
	// Both outer points in the same direction from the vertex
	angle, err := Angle(NewPoint(100, 50), NewPoint(100, 200), NewPoint(100, 120))
	if err != nil {
		t.Fatalf("Angle failed: %v", err)
	}

	if math.Abs(angle) > 1e-9 {
		t.Errorf("Angle failed: expected 0, got %v", angle)
	}
}

func TestAngleSymmetric(t *testing.T) {
	triples := [][3]Point{
		{NewPoint(100, 100), NewPoint(100, 200), NewPoint(200, 200)},
		{NewPoint(13, 77), NewPoint(40, 40), NewPoint(90, 12)},
		{NewPoint(0, 0), NewPoint(50, 50), NewPoint(100, 0)},
		{NewPoint(3, 4), NewPoint(0, 0), NewPoint(-3, 4)},
	}

	for _, tr := range triples {
		forward, err := Angle(tr[0], tr[1], tr[2])
		if err != nil {
			t.Fatalf("Angle(%v) failed: %v", tr, err)
		}
		reverse, err := Angle(tr[2], tr[1], tr[0])
		if err != nil {
			t.Fatalf("Angle(%v) reversed failed: %v", tr, err)
		}
		if math.Abs(forward-reverse) > 1e-9 {
			t.Errorf("Angle not symmetric for %v: %v vs %v", tr, forward, reverse)
		}
	}
}

func TestAngleRange(t *testing.T) {
	triples := [][3]Point{
		{NewPoint(1, 0), NewPoint(0, 0), NewPoint(0, 1)},
		{NewPoint(312, 7), NewPoint(100, 250), NewPoint(5, 911)},
		{NewPoint(-10, -10), NewPoint(0, 0), NewPoint(10, 10)},
		{NewPoint(1, 1), NewPoint(0, 0), NewPoint(2, 2)},
	}

	for _, tr := range triples {
		angle, err := Angle(tr[0], tr[1], tr[2])
		if err != nil {
			t.Fatalf("Angle(%v) failed: %v", tr, err)
		}
		if angle < 0 || angle > 180 {
			t.Errorf("Angle(%v) out of range: %v", tr, angle)
		}
	}
}

func TestAngleDegenerate(t *testing.T) {
	vertex := NewPoint(100, 200)

	if _, err := Angle(vertex, vertex, NewPoint(200, 200)); !errors.Is(err, ErrDegenerateAngle) {
		t.Errorf("expected ErrDegenerateAngle for p1 == vertex, got %v", err)
	}
	if _, err := Angle(NewPoint(100, 100), vertex, vertex); !errors.Is(err, ErrDegenerateAngle) {
		t.Errorf("expected ErrDegenerateAngle for p3 == vertex, got %v", err)
	}
	if _, err := Angle(vertex, vertex, vertex); !errors.Is(err, ErrDegenerateAngle) {
		t.Errorf("expected ErrDegenerateAngle for all points equal, got %v", err)
	}
}
