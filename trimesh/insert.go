package trimesh

import (
	"github.com/meshforge/frontal/geo2"
	"github.com/meshforge/frontal/pointset"
	"github.com/meshforge/frontal/predicates"
)

// AddPointToMesh inserts a new point at parametric coordinate p, known to
// lie inside (or on the boundary of) triangle enclosing, and restores the
// Delaunay property around it by cavity digging (§4.4.2). It returns the
// new point's id.
func (tr *Triangulator) AddPointToMesh(p geo2.Point2, enclosing TriID) pointset.ID {
	t := tr.slab.get(enclosing)
	a, b, c := t.V[0], t.V[1], t.V[2]

	pos := tr.surf.EvalPoint(p.U, p.V)
	x := tr.points.AddPoint(p.U, p.V, pos)
	tr.quad.Insert(int32(x), p)

	tr.removeTri(enclosing)

	tr.digCavity(a, b, x)
	tr.digCavity(b, c, x)
	tr.digCavity(c, a, x)

	tr.points.SetHint(x, int32(tr.lastCreated))
	return x
}

// digCavity restores the Delaunay property of the cavity bounded by edge
// (a,b) against the newly inserted apex x, using an explicit work stack
// instead of recursion so cavity depth is bounded only by available
// memory, not the call stack (per the "pointer graphs -> arenas + ids"
// design note).
func (tr *Triangulator) digCavity(a, b, x pointset.ID) {
	type work struct{ a, b pointset.ID }
	stack := []work{{a, b}}

	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		a, b := w.a, w.b

		oppID, ok := tr.edges.Get(int32(b), int32(a))
		if !ok || tr.constraints.has(a, b) {
			id := tr.addTriCCW(a, b, x)
			tr.lastCreated = id
			continue
		}

		opp := tr.slab.get(TriID(oppID))
		c := thirdVertex(opp, a, b)

		pa, pb, pc, px := tr.points.UV(a), tr.points.UV(b), tr.points.UV(c), tr.points.UV(x)
		if predicates.InCircle(pa, pb, pc, px) > 0 {
			tr.removeTri(TriID(oppID))
			stack = append(stack, work{a, c}, work{c, b})
		} else {
			id := tr.addTriCCW(a, b, x)
			tr.lastCreated = id
		}
	}
}
