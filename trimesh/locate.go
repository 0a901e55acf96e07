package trimesh

import (
	"fmt"

	"github.com/meshforge/frontal/geo2"
	"github.com/meshforge/frontal/pointset"
	"github.com/meshforge/frontal/predicates"
)

// FindEnclosing locates the triangle containing p, seeding the walk from
// the nearest known point's hint triangle and falling back to a linear
// scan if the walk cycles or is stopped by a mesh-boundary edge with p on
// its far side. A point no live triangle contains is an error. The walk
// is bounded at 4*pointCount steps so a corrupted hint can never spin
// forever.
func (tr *Triangulator) FindEnclosing(p geo2.Point2) (TriID, error) {
	start := tr.seedTriangle(p)
	if start == NilTri {
		return NilTri, fmt.Errorf("trimesh: no live triangle to start point location")
	}

	bound := 4 * tr.points.PointCount()
	if bound < 16 {
		bound = 16
	}

	visited := make(map[TriID]bool, bound)
	cur := start
	for step := 0; step < bound; step++ {
		if visited[cur] {
			break
		}
		visited[cur] = true

		tri := tr.slab.get(cur)
		moved := TriID(-1)
		blocked := false
		for e := 0; e < 3; e++ {
			va, vb := tri.Edge(e)
			if predicates.Orient2D(tr.points.UV(va), tr.points.UV(vb), p) < 0 {
				if nb, ok := tr.edges.Get(int32(vb), int32(va)); ok && !tr.slab.isDeleted(TriID(nb)) {
					moved = TriID(nb)
					break
				}
				blocked = true
			}
		}
		if moved == -1 {
			if blocked {
				break
			}
			return cur, nil
		}
		cur = moved
	}

	return tr.linearScan(p)
}

// seedTriangle picks a starting triangle for the walk: the hint triangle
// of the nearest existing point if it is still live, otherwise any live
// triangle.
func (tr *Triangulator) seedTriangle(p geo2.Point2) TriID {
	if tr.points.PointCount() > 0 {
		if id, ok := tr.quad.FindClosest(p, tr.superPointTag); ok {
			hint := tr.points.Hint(pointset.ID(id))
			if hint != pointset.NilHint && !tr.slab.isDeleted(TriID(hint)) {
				return TriID(hint)
			}
		}
	}
	var any TriID = NilTri
	tr.slab.all(func(id TriID, _ *Tri) {
		if any == NilTri {
			any = id
		}
	})
	return any
}

func (tr *Triangulator) linearScan(p geo2.Point2) (TriID, error) {
	result := NilTri
	tr.slab.all(func(id TriID, t *Tri) {
		if result != NilTri {
			return
		}
		pa := tr.points.UV(t.V[0])
		pb := tr.points.UV(t.V[1])
		pc := tr.points.UV(t.V[2])
		if predicates.Orient2D(pa, pb, p) >= 0 &&
			predicates.Orient2D(pb, pc, p) >= 0 &&
			predicates.Orient2D(pc, pa, p) >= 0 {
			result = id
		}
	})
	if result == NilTri {
		return NilTri, fmt.Errorf("trimesh: point %v not enclosed by any live triangle", p)
	}
	return result, nil
}
