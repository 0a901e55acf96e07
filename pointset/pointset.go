// Package pointset holds the append-only array of parametric points the
// triangulation kernel builds on: a 2D (u,v) coordinate, its mapped 3D
// surface position, and a "hint" triangle used to seed walk-based point
// location for the next query involving that point.
package pointset

import "github.com/meshforge/frontal/geo2"

// ID identifies a point within a Store. IDs are dense, starting at 0, and
// are never reused once assigned.
type ID int32

// NilHint marks a point with no known hint triangle yet.
const NilHint int32 = -1

// Store is the append-only parallel array of 2D parameter points and
// their mapped 3D surface positions. Random access by ID is O(1);
// insertion is O(1) amortized.
type Store struct {
	uv   []geo2.Point2
	xyz  []geo2.Point3
	hint []int32
}

// New returns an empty Store with room for capacity points pre-allocated.
func New(capacity int) *Store {
	return &Store{
		uv:   make([]geo2.Point2, 0, capacity),
		xyz:  make([]geo2.Point3, 0, capacity),
		hint: make([]int32, 0, capacity),
	}
}

// AddPoint appends a new point at parameter coordinate (u,v) with the 3D
// surface position pos, which the caller has already evaluated, and
// returns the new ID.
func (s *Store) AddPoint(u, v float64, pos geo2.Point3) ID {
	id := ID(len(s.uv))
	s.uv = append(s.uv, geo2.Point2{U: u, V: v})
	s.xyz = append(s.xyz, pos)
	s.hint = append(s.hint, NilHint)
	return id
}

// PointCount returns the number of points in the store.
func (s *Store) PointCount() int { return len(s.uv) }

// UV returns the parametric coordinate of id.
func (s *Store) UV(id ID) geo2.Point2 { return s.uv[id] }

// XYZ returns the mapped 3D surface coordinate of id.
func (s *Store) XYZ(id ID) geo2.Point3 { return s.xyz[id] }

// SetPosition overwrites the stored coordinates for id, used by Laplacian
// smoothing passes that relocate interior points after the mesh is built.
func (s *Store) SetPosition(id ID, uv geo2.Point2, xyz geo2.Point3) {
	s.uv[id] = uv
	s.xyz[id] = xyz
}

// Hint returns the last known enclosing/incident triangle for id, or
// NilHint if none has been recorded.
func (s *Store) Hint(id ID) int32 { return s.hint[id] }

// SetHint records tri as the hint triangle for id. Cavity operations that
// delete a point's hint triangle must call this lazily, on the point's
// next involvement in a query, rather than eagerly rewriting every point
// touched by a cavity.
func (s *Store) SetHint(id ID, tri int32) { s.hint[id] = tri }

// All returns every point id currently in the store, in insertion order.
func (s *Store) All() []ID {
	ids := make([]ID, len(s.uv))
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}
