package trimesh

import "fmt"

// ValidateTopology checks the structural invariants the kernel is
// supposed to maintain on its own (§7): every live triangle's three
// directed edges resolve back to it in the edge map, every vertex index
// is in range, and no triangle is degenerate (repeats a vertex).
func (tr *Triangulator) ValidateTopology() error {
	n := int32(tr.points.PointCount())
	var bad error

	tr.slab.all(func(id TriID, t *Tri) {
		if bad != nil {
			return
		}
		for i := 0; i < 3; i++ {
			v := t.V[i]
			if v < 0 || int32(v) >= n {
				bad = fmt.Errorf("trimesh: validate: triangle %d vertex %d out of range: %d", id, i, v)
				return
			}
		}
		if t.V[0] == t.V[1] || t.V[1] == t.V[2] || t.V[2] == t.V[0] {
			bad = fmt.Errorf("trimesh: validate: triangle %d has a repeated vertex: %v", id, t.V)
			return
		}
		for e := 0; e < 3; e++ {
			a, b := t.Edge(e)
			owner, ok := tr.edges.Get(int32(a), int32(b))
			if !ok {
				bad = fmt.Errorf("trimesh: validate: triangle %d edge (%d,%d) missing from edge map", id, a, b)
				return
			}
			if TriID(owner) != id {
				bad = fmt.Errorf("trimesh: validate: triangle %d edge (%d,%d) maps to triangle %d instead", id, a, b, owner)
				return
			}
		}
	})

	return bad
}
