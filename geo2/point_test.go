package geo2

import (
	"math"
	"testing"
)

func TestPoint2Arithmetic(t *testing.T) {
	a := Point2{U: 1, V: 2}
	b := Point2{U: 3, V: -1}

	if got := a.Add(b); got != (Point2{U: 4, V: 1}) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); got != (Point2{U: -2, V: 3}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Scale(2); got != (Point2{U: 2, V: 4}) {
		t.Errorf("Scale: got %v", got)
	}
	if got := a.Dot(b); got != 1 {
		t.Errorf("Dot: got %v, want 1", got)
	}
}

func TestPoint2Perp(t *testing.T) {
	a := Point2{U: 1, V: 0}
	p := a.Perp()
	if p != (Point2{U: 0, V: 1}) {
		t.Errorf("Perp: got %v", p)
	}
	if math.Abs(a.Dot(p)) > 1e-12 {
		t.Errorf("Perp should be orthogonal to original, dot=%v", a.Dot(p))
	}
}

func TestPoint2Lerp(t *testing.T) {
	a := Point2{U: 0, V: 0}
	b := Point2{U: 10, V: 10}
	mid := a.Lerp(b, 0.5)
	if mid != (Point2{U: 5, V: 5}) {
		t.Errorf("Lerp(0.5): got %v", mid)
	}
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) should equal a, got %v", got)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) should equal b, got %v", got)
	}
}

func TestPoint3Dist(t *testing.T) {
	a := Point3{X: 0, Y: 0, Z: 0}
	b := Point3{X: 3, Y: 4, Z: 0}
	if got := a.Dist(b); got != 5 {
		t.Errorf("Dist: got %v, want 5", got)
	}
}

func TestBoundingBox(t *testing.T) {
	pts := []Point2{{U: 1, V: 5}, {U: -2, V: 3}, {U: 4, V: -1}}
	bb := BoundingBox(pts)
	if bb.Min != (Point2{U: -2, V: -1}) || bb.Max != (Point2{U: 4, V: 5}) {
		t.Errorf("BoundingBox: got min=%v max=%v", bb.Min, bb.Max)
	}
	if bb.Width() != 6 || bb.Height() != 6 {
		t.Errorf("Width/Height: got %v/%v", bb.Width(), bb.Height())
	}
}

func TestBoundingBoxEmpty(t *testing.T) {
	bb := BoundingBox(nil)
	if bb.Width() != 2 || bb.Height() != 2 {
		t.Errorf("empty BoundingBox should default to [-1,1]^2, got %v", bb)
	}
}

func TestAABBContainsAndInflate(t *testing.T) {
	bb := AABB{Min: Point2{U: 0, V: 0}, Max: Point2{U: 10, V: 10}}
	if !bb.Contains(Point2{U: 5, V: 5}) {
		t.Error("expected interior point to be contained")
	}
	if bb.Contains(Point2{U: 11, V: 5}) {
		t.Error("expected point outside box to not be contained")
	}
	inflated := bb.Inflate(0.1)
	if !inflated.Contains(Point2{U: -0.5, V: -0.5}) {
		t.Errorf("inflated box should extend past original bounds, got %v", inflated)
	}
}

func TestEpsilonValue(t *testing.T) {
	e := Epsilon{Abs: 1e-6, Rel: 1e-3}
	if got := e.Value(0); got != 1e-6 {
		t.Errorf("Value(0): got %v, want 1e-6", got)
	}
	if got := e.Value(1000); math.Abs(got-(1e-6+1)) > 1e-12 {
		t.Errorf("Value(1000): got %v", got)
	}
}

func TestEpsilonMergeDistance(t *testing.T) {
	e := DefaultEpsilon()
	d := e.MergeDistance(Point2{U: 1, V: 1}, Point2{U: 1.0000001, V: 1})
	if d <= 0 {
		t.Errorf("MergeDistance should be positive, got %v", d)
	}
}
