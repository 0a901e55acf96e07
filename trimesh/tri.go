// Package trimesh implements the Delaunay/frontal triangulation kernel:
// the triangle slab, the directed edge-to-triangle index, and the
// Triangulator that owns every topology mutation. No triangle carries a
// neighbor pointer — adjacency is always resolved through the edge map in
// package edgemap, per the no-neighbor-array design this kernel commits to.
package trimesh

import "github.com/meshforge/frontal/pointset"

// TriID identifies a triangle slot in a Triangulator's slab. A deleted
// slot's id may be reused by a later addTriCCW call.
type TriID int32

// NilTri marks the absence of a triangle.
const NilTri TriID = -1

// Status classifies a triangle's role during frontal advancement.
type Status int

const (
	NoStatus Status = iota
	Waiting
	Active
	Accepted
	DeleteMe
)

func (s Status) String() string {
	switch s {
	case Waiting:
		return "WAITING"
	case Active:
		return "ACTIVE"
	case Accepted:
		return "ACCEPTED"
	case DeleteMe:
		return "DELETE_ME"
	default:
		return "NO_STATUS"
	}
}

// Tri is a single triangulation element: three vertex ids in CCW winding,
// a frontal-advancement status, and the quality/circumradius computed the
// last time it was classified. It deliberately has no neighbor array;
// "what triangle lies across edge (a,b)" is always an edgemap lookup.
type Tri struct {
	V           [3]pointset.ID
	Status      Status
	Quality     float64
	Circumradius float64
	deleted     bool
}

// Edge returns the two vertices of local edge i (0, 1, or 2), the edge
// opposite vertex V[i], in the same CCW order as the triangle.
func (t *Tri) Edge(i int) (pointset.ID, pointset.ID) {
	return t.V[(i+1)%3], t.V[(i+2)%3]
}

// HasVertex reports whether v is one of the triangle's three vertices.
func (t *Tri) HasVertex(v pointset.ID) bool {
	return t.V[0] == v || t.V[1] == v || t.V[2] == v
}
