package trimesh

import (
	"math"

	"github.com/meshforge/frontal/geo2"
	"github.com/meshforge/frontal/pointset"
)

// Frontal runs the advancing-front point-insertion loop (§4.4.5): while
// any triangle's quality exceeds the configured threshold, it places a
// new point on the exposed base of the Active triangle with the smallest
// quality (see pickWorstTriangle), snapping to a nearby
// existing point when one is close enough, and reclassifies the
// triangles the insertion touches. It stops when no triangle exceeds the
// threshold or MaxInsertions is reached.
func (tr *Triangulator) Frontal() error {
	tr.reclassifyAll()

	insertions := 0
	maxIter := 8*tr.opts.MaxInsertions + 10000
	for iter := 0; ; iter++ {
		if iter >= maxIter {
			tr.diag.ConvergenceFailure = true
			break
		}

		id, base, ok := tr.pickWorstTriangle()
		if !ok {
			break
		}
		if insertions >= tr.opts.MaxInsertions {
			tr.diag.ConvergenceFailure = true
			break
		}

		p := tr.proposeFrontalPoint(id, base)
		h := tr.feature.Get(tr.surf.EvalPoint(p.U, p.V))

		if existing, found := tr.quad.FindClosest(p, tr.superPointTag); found {
			ep := tr.points.UV(pointset.ID(existing))
			snap := tr.opts.SnapFraction * h
			if dist2(p, ep) < snap*snap {
				tr.slab.get(id).Status = Accepted
				tr.updateFrontStatus()
				continue
			}
		}

		enclosing, err := tr.FindEnclosing(p)
		if err != nil {
			tr.slab.get(id).Status = Accepted
			tr.updateFrontStatus()
			continue
		}
		newID := tr.AddPointToMesh(p, enclosing)
		insertions++

		tr.reclassifyAround(newID)
		tr.updateFrontStatus()

		if tr.opts.PrintIter > 0 && insertions%tr.opts.PrintIter == 0 {
			tr.log.WithFields(map[string]interface{}{
				"insertions": insertions,
				"triangles":  tr.slab.liveCount(),
			}).Info("frontal advancement progress")
		}

		if tr.opts.SmoothEvery > 0 && insertions%tr.opts.SmoothEvery == 0 {
			tr.laplacianSmooth()
		}
	}

	tr.log.WithFields(map[string]interface{}{
		"insertions":          insertions,
		"convergence_failure": tr.diag.ConvergenceFailure,
	}).Info("frontal advancement finished")

	if tr.diag.ConvergenceFailure {
		return &ConvergenceError{Mesh: tr.GetMesh()}
	}
	return nil
}

// pickWorstTriangle returns the Active live triangle with the smallest
// quality and the local edge index of its base (the edge shared with an
// accepted triangle or the mesh boundary). Only Active triangles are
// candidates: Accepted ones are done, and Waiting ones haven't been
// reached by the advancing front yet.
func (tr *Triangulator) pickWorstTriangle() (TriID, int, bool) {
	best := NilTri
	bestQ := math.Inf(1)
	bestBase := 0

	tr.slab.all(func(id TriID, t *Tri) {
		if t.Status != Active {
			return
		}
		if t.Quality < bestQ {
			bestQ = t.Quality
			best = id
			bestBase = tr.pickBaseEdge(t)
		}
	})

	return best, bestBase, best != NilTri
}

// pickBaseEdge chooses the edge of t to advance from: a constrained edge,
// failing that a mesh-boundary edge, failing that edge 0.
func (tr *Triangulator) pickBaseEdge(t *Tri) int {
	for e := 0; e < 3; e++ {
		a, b := t.Edge(e)
		if tr.constraints.has(a, b) {
			return e
		}
	}
	for e := 0; e < 3; e++ {
		a, b := t.Edge(e)
		if _, ok := tr.edges.Get(int32(b), int32(a)); !ok {
			return e
		}
	}
	return 0
}

// proposeFrontalPoint computes the apex of an equilateral triangle raised
// on base edge `base` of t, on the same side as t's own far vertex c, then
// slides it along the base's perpendicular until the 3D distance from the
// apex to the base's first endpoint matches the local feature size. The
// apex must land on c's side: when base is a boundary or constrained
// edge, the opposite side is outside the domain and FindEnclosing would
// never locate it.
func (tr *Triangulator) proposeFrontalPoint(id TriID, base int) geo2.Point2 {
	t := tr.slab.get(id)
	a, b := t.Edge(base)
	c := thirdVertex(t, a, b)

	pa, pb, pc := tr.points.UV(a), tr.points.UV(b), tr.points.UV(c)
	mid := pa.Lerp(pb, 0.5)

	dir := pb.Sub(pa).Perp()
	dir = normalize(dir)
	if dir.Dot(mid.Sub(pc)) > 0 {
		dir = dir.Scale(-1)
	}

	h0 := tr.feature.Get(tr.surf.EvalPoint(mid.U, mid.V))

	return tr.slideToFeatureSize(pa, mid, dir, h0)
}

// slideToFeatureSize binary-searches the offset along dir from mid so the
// 3D distance from anchor to the resulting point equals h.
func (tr *Triangulator) slideToFeatureSize(anchor, mid, dir geo2.Point2, h float64) geo2.Point2 {
	anchor3 := tr.surf.EvalPoint(anchor.U, anchor.V)
	lo, hi := 0.0, 10*h
	for i := 0; i < 30; i++ {
		s := (lo + hi) / 2
		cand := mid.Add(dir.Scale(s))
		d := tr.surf.EvalPoint(cand.U, cand.V).Dist(anchor3)
		if d < h {
			lo = s
		} else {
			hi = s
		}
	}
	return mid.Add(dir.Scale((lo + hi) / 2))
}

// reclassifyAround recomputes quality/status for every live triangle
// incident to id, after an insertion creates new triangles around it, and
// for their edge-neighbors, since a neighbor's Waiting-to-Active
// transition depends on one of these triangles having just become
// Accepted.
func (tr *Triangulator) reclassifyAround(id pointset.ID) {
	touched := make(map[TriID]bool)
	tr.slab.all(func(tid TriID, t *Tri) {
		if t.HasVertex(id) {
			touched[tid] = true
		}
	})

	for tid := range touched {
		tr.classifyQuality(tid)
	}
	for tid := range touched {
		t := tr.slab.get(tid)
		for e := 0; e < 3; e++ {
			a, b := t.Edge(e)
			if nb, ok := tr.edges.Get(int32(b), int32(a)); ok {
				tr.classifyQuality(TriID(nb))
			}
		}
	}
}

// laplacianSmooth moves every non-fixed point to the centroid of its
// incident points' positions. Boundary and constraint-segment endpoints
// are never moved, so the PSLG is preserved; since only coordinates
// change and no triangle is added or removed, the edge map's directed
// adjacency is untouched by construction.
func (tr *Triangulator) laplacianSmooth() {
	sums := make(map[pointset.ID]geo2.Point2)
	counts := make(map[pointset.ID]int)

	tr.slab.all(func(_ TriID, t *Tri) {
		for i := 0; i < 3; i++ {
			v := t.V[i]
			if tr.fixed[v] {
				continue
			}
			for j := 0; j < 3; j++ {
				if j == i {
					continue
				}
				sums[v] = sums[v].Add(tr.points.UV(t.V[j]))
				counts[v]++
			}
		}
	})

	for v, sum := range sums {
		n := counts[v]
		if n == 0 {
			continue
		}
		newUV := sum.Scale(1 / float64(n))
		oldUV := tr.points.UV(v)
		newXYZ := tr.surf.EvalPoint(newUV.U, newUV.V)
		tr.points.SetPosition(v, newUV, newXYZ)
		tr.quad.Remove(int32(v), oldUV)
		tr.quad.Insert(int32(v), newUV)
	}
}

func normalize(p geo2.Point2) geo2.Point2 {
	n := math.Hypot(p.U, p.V)
	if n == 0 {
		return p
	}
	return p.Scale(1 / n)
}

func dist2(a, b geo2.Point2) float64 {
	du := a.U - b.U
	dv := a.V - b.V
	return du*du + dv*dv
}
