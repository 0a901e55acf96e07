package trimesh

import "github.com/meshforge/frontal/pointset"

// RemoveDegenerateEdges merges each declared-duplicate vertex pair (two
// point ids mapped to the same 3D surface position, §4.4.6) by rewriting
// every triangle reference from the higher id to the lower one,
// re-registering the edges of every rewritten triangle in the edge map,
// and drops any triangle that collapsed into a line. It is meant to run once, after Frontal, on pairs the caller
// identified by comparing mapped 3D coordinates.
func (tr *Triangulator) RemoveDegenerateEdges(pairs [][2]pointset.ID) {
	if len(pairs) == 0 {
		return
	}

	merge := make(map[pointset.ID]pointset.ID)
	find := func(id pointset.ID) pointset.ID {
		for {
			next, ok := merge[id]
			if !ok {
				return id
			}
			id = next
		}
	}

	for _, p := range pairs {
		a, b := p[0], p[1]
		if a == b {
			continue
		}
		ra, rb := find(a), find(b)
		if ra == rb {
			continue
		}
		if ra < rb {
			merge[rb] = ra
		} else {
			merge[ra] = rb
		}
	}

	removed := 0
	var rewritten []TriID
	tr.slab.all(func(id TriID, t *Tri) {
		v0, v1, v2 := find(t.V[0]), find(t.V[1]), find(t.V[2])
		if v0 == v1 || v1 == v2 || v2 == v0 {
			removed++
			tr.edges.Delete(int32(t.V[0]), int32(t.V[1]))
			tr.edges.Delete(int32(t.V[1]), int32(t.V[2]))
			tr.edges.Delete(int32(t.V[2]), int32(t.V[0]))
			tr.slab.remove(id)
			return
		}
		if v0 != t.V[0] || v1 != t.V[1] || v2 != t.V[2] {
			tr.edges.Delete(int32(t.V[0]), int32(t.V[1]))
			tr.edges.Delete(int32(t.V[1]), int32(t.V[2]))
			tr.edges.Delete(int32(t.V[2]), int32(t.V[0]))
			t.V[0], t.V[1], t.V[2] = v0, v1, v2
			rewritten = append(rewritten, id)
		}
	})

	for _, id := range rewritten {
		t := tr.slab.get(id)
		tr.edges.Put(int32(t.V[0]), int32(t.V[1]), int32(id))
		tr.edges.Put(int32(t.V[1]), int32(t.V[2]), int32(id))
		tr.edges.Put(int32(t.V[2]), int32(t.V[0]), int32(id))
	}

	tr.diag.DegenerateEdgesRemoved += removed
}
