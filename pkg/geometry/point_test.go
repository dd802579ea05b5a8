package geometry

import (
	"math"
	"testing"
)

func TestPointSub(t *testing.T) {
	p1 := NewPoint(5, 7)
	p2 := NewPoint(2, 3)
	result := p1.Sub(p2)

	expected := Vector{X: 3, Y: 4}
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVectorLength(t *testing.T) {
	v := Vector{X: 3, Y: 4}
	length := v.Length()

	expected := 5.0
	if math.Abs(length-expected) > 1e-10 {
		t.Errorf("Length failed: expected %v, got %v", expected, length)
	}
}

func TestVectorDot(t *testing.T) {
	v1 := Vector{X: 1, Y: 2}
	v2 := Vector{X: 3, Y: 4}

	expected := 11.0
	if math.Abs(v1.Dot(v2)-expected) > 1e-10 {
		t.Errorf("Dot failed: expected %v, got %v", expected, v1.Dot(v2))
	}
}

func TestVectorCross(t *testing.T) {
	v1 := Vector{X: 1, Y: 0}
	v2 := Vector{X: 0, Y: 1}

	expected := 1.0
	if math.Abs(v1.Cross(v2)-expected) > 1e-10 {
		t.Errorf("Cross failed: expected %v, got %v", expected, v1.Cross(v2))
	}
}

func TestPointScale(t *testing.T) {
	p := NewPoint(100, 201)

	down := p.Scale(0.5)
	if down != (Point{X: 50, Y: 101}) {
		t.Errorf("Scale down failed: got %v", down)
	}

	up := down.Scale(2.0)
	if up != (Point{X: 100, Y: 202}) {
		t.Errorf("Scale up failed: got %v", up)
	}

	same := p.Scale(1.0)
	if same != p {
		t.Errorf("Scale identity failed: got %v", same)
	}
}

func TestPointDistance(t *testing.T) {
	d := NewPoint(0, 0).Distance(NewPoint(3, 4))
	if math.Abs(d-5.0) > 1e-10 {
		t.Errorf("Distance failed: expected 5, got %v", d)
	}
}
