package trimesh

import (
	"math"

	"github.com/meshforge/frontal/geo2"
)

// classifyQuality recomputes a triangle's circumradius and quality (R/h̄, §4.4.5).
// Quality at or below the threshold means the triangle is done (Accepted);
// above it the triangle is provisionally Waiting until updateFrontStatus
// determines whether it lies on the advancing front. The circumradius is
// measured in 3D using the surface-mapped vertex positions; the feature
// size is sampled at the triangle's 3D centroid.
func (tr *Triangulator) classifyQuality(id TriID) {
	t := tr.slab.get(id)
	pa := tr.points.XYZ(t.V[0])
	pb := tr.points.XYZ(t.V[1])
	pc := tr.points.XYZ(t.V[2])

	R := circumradius3D(pa, pb, pc)
	centroid := geo2.Point3{
		X: (pa.X + pb.X + pc.X) / 3,
		Y: (pa.Y + pb.Y + pc.Y) / 3,
		Z: (pa.Z + pb.Z + pc.Z) / 3,
	}
	h := tr.feature.Get(centroid)
	if h <= 0 {
		h = 1e-9
	}

	t.Circumradius = R
	t.Quality = R / h

	if t.Quality <= tr.opts.QualityThreshold {
		t.Status = Accepted
	} else {
		t.Status = Waiting
	}
}

// updateFrontStatus promotes every Waiting triangle adjacent to a
// boundary edge, a constrained edge, or an Accepted neighbor to Active.
// It must run after classifyQuality has settled every live triangle's
// Accepted/Waiting split, since front-adjacency depends on neighbors'
// Status.
func (tr *Triangulator) updateFrontStatus() {
	tr.slab.all(func(_ TriID, t *Tri) {
		if t.Status != Waiting {
			return
		}
		if tr.isOnFront(t) {
			t.Status = Active
		}
	})
}

// isOnFront reports whether t has a boundary edge, a constrained edge, or
// an edge shared with an Accepted triangle — the adjacency test the
// advancing front uses to pick which Waiting triangles become Active.
func (tr *Triangulator) isOnFront(t *Tri) bool {
	for e := 0; e < 3; e++ {
		a, b := t.Edge(e)
		if tr.constraints.has(a, b) {
			return true
		}
		nb, ok := tr.edges.Get(int32(b), int32(a))
		if !ok {
			return true
		}
		if tr.slab.get(TriID(nb)).Status == Accepted {
			return true
		}
	}
	return false
}

// reclassifyAll recomputes quality/Accepted status for every live
// triangle, then runs the front-adjacency pass to promote Waiting
// triangles to Active. The two passes are separate because a triangle's
// Active eligibility depends on neighbors' Accepted status, which must be
// settled first.
func (tr *Triangulator) reclassifyAll() {
	tr.slab.all(func(id TriID, _ *Tri) { tr.classifyQuality(id) })
	tr.updateFrontStatus()
}

// circumradius3D computes the circumradius of triangle (a,b,c) embedded
// in 3D via R = (|ab|·|bc|·|ca|) / (4·Area).
func circumradius3D(a, b, c geo2.Point3) float64 {
	ab := a.Dist(b)
	bc := b.Dist(c)
	ca := c.Dist(a)

	ux, uy, uz := b.X-a.X, b.Y-a.Y, b.Z-a.Z
	vx, vy, vz := c.X-a.X, c.Y-a.Y, c.Z-a.Z
	cx := uy*vz - uz*vy
	cy := uz*vx - ux*vz
	cz := ux*vy - uy*vx
	area2 := math.Sqrt(cx*cx + cy*cy + cz*cz)

	if area2 <= 1e-18 {
		return math.Inf(1)
	}
	return (ab * bc * ca) / (2 * area2)
}
