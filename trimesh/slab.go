package trimesh

import "github.com/meshforge/frontal/pointset"

// slab is a growable arena of triangles with tombstone deletion and a
// free list for slot reuse, the arena-plus-ids reimplementation of what a
// pointer-graph triangle list would do with raw node allocation.
type slab struct {
	tris     []Tri
	freeList []TriID
}

func newSlab(capacity int) *slab {
	return &slab{tris: make([]Tri, 0, capacity)}
}

// add appends a new live triangle with vertices (a,b,c) and returns its id.
func (s *slab) add(a, b, c pointset.ID) TriID {
	tri := Tri{V: [3]pointset.ID{a, b, c}, Status: NoStatus}

	if n := len(s.freeList); n > 0 {
		id := s.freeList[n-1]
		s.freeList = s.freeList[:n-1]
		s.tris[id] = tri
		return id
	}

	id := TriID(len(s.tris))
	s.tris = append(s.tris, tri)
	return id
}

// remove tombstones triangle id, making its slot eligible for reuse.
func (s *slab) remove(id TriID) {
	if s.isDeleted(id) {
		return
	}
	s.tris[id].deleted = true
	s.tris[id].V = [3]pointset.ID{-1, -1, -1}
	s.freeList = append(s.freeList, id)
}

func (s *slab) isDeleted(id TriID) bool {
	if id < 0 || int(id) >= len(s.tris) {
		return true
	}
	return s.tris[id].deleted
}

func (s *slab) get(id TriID) *Tri {
	return &s.tris[id]
}

// liveCount returns the number of non-deleted triangles.
func (s *slab) liveCount() int {
	return len(s.tris) - len(s.freeList)
}

// all iterates every live triangle id in slab order.
func (s *slab) all(fn func(TriID, *Tri)) {
	for i := range s.tris {
		if s.tris[i].deleted {
			continue
		}
		fn(TriID(i), &s.tris[i])
	}
}
