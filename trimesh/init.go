package trimesh

import (
	"fmt"

	"github.com/meshforge/frontal/geo2"
	"github.com/meshforge/frontal/meshconfig"
	"github.com/meshforge/frontal/pointset"
	"github.com/meshforge/frontal/pslg"
	"github.com/meshforge/frontal/surface"
)

// New builds a Triangulator from a normalized PSLG and runs the full
// initialization pipeline (§4.4.1): bounding cover, incremental boundary
// insertion, segment recovery, inside/outside classification, and
// super-point removal. The returned Triangulator is ready for Frontal.
func New(graph *pslg.Graph, surf surface.Surface, feature surface.FeatureSize, opts meshconfig.Options) (*Triangulator, error) {
	if surf == nil {
		surf = surface.Planar{}
	}
	if len(graph.Points) < 3 {
		return nil, &InputError{Msg: fmt.Sprintf("PSLG needs at least 3 boundary points, got %d", len(graph.Points))}
	}

	bbox := geo2.BoundingBox(graph.Points).Inflate(opts.CoverMargin)

	tr := newTriangulator(surf, feature, opts, bbox, len(graph.Points)+4)
	tr.constraints = newConstraintSet(nil)

	c0 := tr.addPoint(geo2.Point2{U: bbox.Min.U, V: bbox.Min.V})
	c1 := tr.addPoint(geo2.Point2{U: bbox.Max.U, V: bbox.Min.V})
	c2 := tr.addPoint(geo2.Point2{U: bbox.Max.U, V: bbox.Max.V})
	c3 := tr.addPoint(geo2.Point2{U: bbox.Min.U, V: bbox.Max.V})
	tr.superPoints = [4]pointset.ID{c0, c1, c2, c3}

	t0 := tr.addTriCCW(c0, c1, c2)
	t1 := tr.addTriCCW(c0, c2, c3)
	_ = t0
	_ = t1

	boundary := make([]pointset.ID, len(graph.Points))
	for i, p := range graph.Points {
		tri, err := tr.FindEnclosing(p)
		if err != nil {
			return nil, fmt.Errorf("trimesh: init: locating boundary point %d: %w", i, err)
		}
		boundary[i] = tr.AddPointToMesh(p, tri)
	}

	segEdges := make([][2]pointset.ID, len(graph.Segments))
	for i, s := range graph.Segments {
		segEdges[i] = [2]pointset.ID{boundary[s[0]], boundary[s[1]]}
	}
	tr.constraints = newConstraintSet(segEdges)
	tr.segments = segEdges
	tr.fixed = make(map[pointset.ID]bool, len(boundary))
	for _, id := range boundary {
		tr.fixed[id] = true
	}

	for _, e := range segEdges {
		if _, ok := tr.edges.Get(int32(e[0]), int32(e[1])); ok {
			continue
		}
		if _, ok := tr.edges.Get(int32(e[1]), int32(e[0])); ok {
			continue
		}
		if err := tr.InsertSegment(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("trimesh: init: recovering segment (%d,%d): %w", e[0], e[1], err)
		}
	}

	holeSeedTris := make([]TriID, 0, len(graph.HoleSeeds))
	for _, hs := range graph.HoleSeeds {
		if tri, err := tr.FindEnclosing(hs); err == nil {
			holeSeedTris = append(holeSeedTris, tri)
		}
	}

	tr.classifyAndSweep(holeSeedTris)
	tr.removeSuperPoints()

	tr.log.WithFields(map[string]interface{}{
		"points":     tr.points.PointCount(),
		"triangles":  tr.slab.liveCount(),
		"segments":   len(segEdges),
		"hole_seeds": len(holeSeedTris),
	}).Info("triangulation initialized")

	return tr, nil
}

// addPoint registers a raw point (used for super-points, which have no
// meaningful surface evaluation since they lie outside the domain).
func (tr *Triangulator) addPoint(p geo2.Point2) pointset.ID {
	id := tr.points.AddPoint(p.U, p.V, tr.surf.EvalPoint(p.U, p.V))
	tr.quad.Insert(int32(id), p)
	return id
}

