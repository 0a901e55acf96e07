package trimesh

import (
	"github.com/meshforge/frontal/geo2"
	"github.com/meshforge/frontal/pointset"
	"github.com/meshforge/frontal/predicates"
)

// classifyAndSweep marks every triangle outside the PSLG as DeleteMe and
// removes it: first an odd-crossing ray test against the PSLG segments
// from each triangle's centroid, then a flood fill from each hole seed
// triangle across non-constrained edges (§4.4.1).
func (tr *Triangulator) classifyAndSweep(holeSeeds []TriID) {
	outside := geo2.Point2{U: tr.outsidePoint().U, V: tr.outsidePoint().V}

	toDelete := make(map[TriID]bool)
	tr.slab.all(func(id TriID, t *Tri) {
		centroid := geo2.Point2{
			U: (tr.points.UV(t.V[0]).U + tr.points.UV(t.V[1]).U + tr.points.UV(t.V[2]).U) / 3,
			V: (tr.points.UV(t.V[0]).V + tr.points.UV(t.V[1]).V + tr.points.UV(t.V[2]).V) / 3,
		}
		if tr.oddCrossingCount(centroid, outside)%2 == 0 {
			toDelete[id] = true
		}
	})

	for _, seed := range holeSeeds {
		tr.floodFillHole(seed, toDelete)
	}

	for id := range toDelete {
		tr.removeTri(id)
	}
}

// outsidePoint returns a point guaranteed to lie outside the PSLG cover,
// used as the ray-cast target for the odd-crossing inside/outside test.
func (tr *Triangulator) outsidePoint() geo2.Point2 {
	sp := tr.points.UV(tr.superPoints[0])
	return geo2.Point2{U: sp.U - 1, V: sp.V - 1}
}

// oddCrossingCount counts how many PSLG segments the ray from a to b
// crosses.
func (tr *Triangulator) oddCrossingCount(a, b geo2.Point2) int {
	count := 0
	for _, seg := range tr.segments {
		s0 := tr.points.UV(seg[0])
		s1 := tr.points.UV(seg[1])
		if ok, _, _ := predicates.SegmentIntersect(a, b, s0, s1); ok {
			count++
		}
	}
	return count
}

// floodFillHole marks every triangle reachable from seed without crossing
// a PSLG edge as deleted, implementing "any triangle reachable from a
// hole seed without crossing a PSLG edge is classified outside" (§6).
func (tr *Triangulator) floodFillHole(seed TriID, toDelete map[TriID]bool) {
	if tr.slab.isDeleted(seed) || toDelete[seed] {
		return
	}
	queue := []TriID{seed}
	toDelete[seed] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		t := tr.slab.get(cur)

		for e := 0; e < 3; e++ {
			a, b := t.Edge(e)
			if tr.constraints.has(a, b) {
				continue
			}
			nb := tr.acrossEdge(a, b)
			if nb == NilTri || toDelete[nb] {
				continue
			}
			toDelete[nb] = true
			queue = append(queue, nb)
		}
	}
}

// acrossEdge returns the triangle lying across directed edge (a,b) from
// its CCW owner, i.e. the triangle registered under (b,a).
func (tr *Triangulator) acrossEdge(a, b pointset.ID) TriID {
	if id, ok := tr.edges.Get(int32(b), int32(a)); ok {
		return TriID(id)
	}
	return NilTri
}

// removeSuperPoints deletes any triangle still referencing one of the
// four bounding-cover corners created during Init. The corners themselves
// stay in the quadtree (removing the entries isn't worth a tree rebalance
// for four points), so they're tagged out of future spatial queries
// instead — FindClosest callers pass tr.superPointTag to exclude them.
func (tr *Triangulator) removeSuperPoints() {
	isSuper := func(id pointset.ID) bool {
		for _, sp := range tr.superPoints {
			if sp == id {
				return true
			}
		}
		return false
	}

	var dead []TriID
	tr.slab.all(func(id TriID, t *Tri) {
		if isSuper(t.V[0]) || isSuper(t.V[1]) || isSuper(t.V[2]) {
			dead = append(dead, id)
		}
	})
	for _, id := range dead {
		tr.removeTri(id)
	}

	tr.superPointTag = tr.quad.BumpSearchTag()
	for _, sp := range tr.superPoints {
		tr.quad.Tag(int32(sp), tr.points.UV(sp), tr.superPointTag)
	}
}
