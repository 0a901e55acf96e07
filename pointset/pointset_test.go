package pointset

import (
	"testing"

	"github.com/meshforge/frontal/geo2"
)

func TestAddPointAndAccess(t *testing.T) {
	s := New(4)
	id := s.AddPoint(1, 2, geo2.Point3{X: 1, Y: 2, Z: 0})
	if id != 0 {
		t.Errorf("expected first id to be 0, got %d", id)
	}
	if s.PointCount() != 1 {
		t.Errorf("expected count 1, got %d", s.PointCount())
	}
	if s.UV(id) != (geo2.Point2{U: 1, V: 2}) {
		t.Errorf("unexpected UV: %v", s.UV(id))
	}
	if s.XYZ(id) != (geo2.Point3{X: 1, Y: 2, Z: 0}) {
		t.Errorf("unexpected XYZ: %v", s.XYZ(id))
	}
}

func TestIDsAreDenseAndOrdered(t *testing.T) {
	s := New(0)
	var ids []ID
	for i := 0; i < 5; i++ {
		ids = append(ids, s.AddPoint(float64(i), 0, geo2.Point3{}))
	}
	for i, id := range ids {
		if int(id) != i {
			t.Errorf("expected dense ids, got %d at position %d", id, i)
		}
	}
	all := s.All()
	if len(all) != 5 {
		t.Errorf("expected All() to return 5 ids, got %d", len(all))
	}
}

func TestHintDefaultsToNil(t *testing.T) {
	s := New(1)
	id := s.AddPoint(0, 0, geo2.Point3{})
	if s.Hint(id) != NilHint {
		t.Errorf("expected fresh point to have NilHint, got %d", s.Hint(id))
	}
	s.SetHint(id, 7)
	if s.Hint(id) != 7 {
		t.Errorf("expected hint 7, got %d", s.Hint(id))
	}
}

func TestSetPosition(t *testing.T) {
	s := New(1)
	id := s.AddPoint(0, 0, geo2.Point3{})
	s.SetPosition(id, geo2.Point2{U: 5, V: 6}, geo2.Point3{X: 5, Y: 6, Z: 1})
	if s.UV(id) != (geo2.Point2{U: 5, V: 6}) {
		t.Errorf("SetPosition did not update UV: %v", s.UV(id))
	}
	if s.XYZ(id) != (geo2.Point3{X: 5, Y: 6, Z: 1}) {
		t.Errorf("SetPosition did not update XYZ: %v", s.XYZ(id))
	}
}
