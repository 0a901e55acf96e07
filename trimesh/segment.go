package trimesh

import (
	"fmt"

	"github.com/meshforge/frontal/pointset"
	"github.com/meshforge/frontal/predicates"
)

// InsertSegment recovers PSLG segment (u,v) that is not already present
// as a triangulation edge (§4.4.4): it walks the fan of triangles the
// straight segment crosses, deletes them, splits the resulting cavity
// into the two polygonal chains lying left and right of the segment, and
// gift-wraps each chain back into Delaunay-respecting triangles. The
// recovered edge is recorded in the constraint set so later cavity
// digging never flips it away.
func (tr *Triangulator) InsertSegment(u, v pointset.ID) error {
	startTri, a, b, ok := tr.findCrossingStart(u, v)
	if !ok {
		return fmt.Errorf("trimesh: segment (%d,%d): no crossing triangle found", u, v)
	}

	pu, pv := tr.points.UV(u), tr.points.UV(v)

	var cavity []TriID
	upper := []pointset.ID{u}
	lower := []pointset.ID{u}
	appendSide := func(p pointset.ID) {
		side := predicates.Orient2D(pu, pv, tr.points.UV(p))
		if side >= 0 {
			upper = append(upper, p)
		} else {
			lower = append(lower, p)
		}
	}

	cur := startTri
	cavity = append(cavity, cur)
	appendSide(a)
	appendSide(b)

	bound := 4 * tr.points.PointCount()
	if bound < 64 {
		bound = 64
	}
	for step := 0; ; step++ {
		if step > bound {
			return fmt.Errorf("trimesh: segment (%d,%d): crossing walk did not terminate", u, v)
		}

		nbID, found := tr.edges.Get(int32(b), int32(a))
		if !found {
			return fmt.Errorf("trimesh: segment (%d,%d): crossing walk fell off the mesh boundary", u, v)
		}
		nb := TriID(nbID)
		nbTri := tr.slab.get(nb)
		c := thirdVertex(nbTri, a, b)

		if c == v {
			cavity = append(cavity, nb)
			break
		}

		cavity = append(cavity, nb)
		pc := tr.points.UV(c)

		okAC, _, _ := predicates.SegmentIntersect(pu, pv, tr.points.UV(a), pc)
		if okAC {
			appendSide(c)
			b = c
			continue
		}
		okCB, _, _ := predicates.SegmentIntersect(pu, pv, pc, tr.points.UV(b))
		if okCB {
			appendSide(c)
			a = c
			continue
		}
		return fmt.Errorf("trimesh: segment (%d,%d): crossing walk lost the segment at vertex %d", u, v, c)
	}

	upper = append(upper, v)
	lower = append(lower, v)

	for _, id := range cavity {
		tr.removeTri(id)
	}

	tr.triangulateChain(upper)
	tr.triangulateChain(lower)
	tr.constraints.add(u, v)
	return nil
}

// findCrossingStart locates a live triangle incident to u whose opposite
// edge (a,b) the straight segment (u,v) crosses.
func (tr *Triangulator) findCrossingStart(u, v pointset.ID) (TriID, pointset.ID, pointset.ID, bool) {
	pu, pv := tr.points.UV(u), tr.points.UV(v)
	var result TriID = NilTri
	var ea, eb pointset.ID

	tr.slab.all(func(id TriID, t *Tri) {
		if result != NilTri || !t.HasVertex(u) {
			return
		}
		for e := 0; e < 3; e++ {
			a, b := t.Edge(e)
			if a == u || b == u {
				continue
			}
			if ok, _, _ := predicates.SegmentIntersect(pu, pv, tr.points.UV(a), tr.points.UV(b)); ok {
				result, ea, eb = id, a, b
				return
			}
		}
	})
	return result, ea, eb, result != NilTri
}

// triangulateChain gift-wraps one side of a recovered-segment cavity: the
// ordered boundary chain runs from chain[0] (=u) to chain[len-1] (=v).
// At each step it picks the interior vertex whose circumcircle with the
// chain's two current endpoints excludes every other vertex still on the
// chain — the Delaunay-respecting ear — emits that triangle, and
// recurses on the two sub-chains it splits off.
func (tr *Triangulator) triangulateChain(chain []pointset.ID) {
	n := len(chain)
	if n < 3 {
		return
	}

	p0, pn := chain[0], chain[n-1]
	chosen := 1
	for k := 1; k <= n-2; k++ {
		empty := true
		for j := 1; j <= n-2; j++ {
			if j == k {
				continue
			}
			if predicates.InCircle(tr.points.UV(p0), tr.points.UV(chain[k]), tr.points.UV(pn), tr.points.UV(chain[j])) > 0 {
				empty = false
				break
			}
		}
		if empty {
			chosen = k
			break
		}
	}

	tr.addTriCCW(p0, chain[chosen], pn)

	if chosen > 1 {
		left := make([]pointset.ID, chosen+1)
		copy(left, chain[:chosen+1])
		tr.triangulateChain(left)
	}
	if chosen < n-2 {
		right := make([]pointset.ID, n-chosen)
		copy(right, chain[chosen:])
		tr.triangulateChain(right)
	}
}
