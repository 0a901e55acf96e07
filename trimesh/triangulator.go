package trimesh

import (
	"github.com/sirupsen/logrus"

	"github.com/meshforge/frontal/geo2"
	"github.com/meshforge/frontal/meshconfig"
	"github.com/meshforge/frontal/mlog"
	"github.com/meshforge/frontal/pointset"
	"github.com/meshforge/frontal/predicates"
	"github.com/meshforge/frontal/quadtree"
	"github.com/meshforge/frontal/surface"
	"github.com/meshforge/frontal/trimesh/edgemap"
)

// Triangulator owns the entire working mesh: the point store, the
// quadtree spatial index, the triangle slab, and the directed edge map.
// It is the only type permitted to mutate topology; every other package
// here is a passive container it drives.
type Triangulator struct {
	points *pointset.Store
	quad   *quadtree.Tree
	slab   *slab
	edges  *edgemap.Map

	constraints *constraintSet
	segments    [][2]pointset.ID
	surf        surface.Surface
	feature     surface.FeatureSize
	opts        meshconfig.Options

	superPoints   [4]pointset.ID
	superPointTag int
	fixed         map[pointset.ID]bool
	diag          Diagnostics
	log           *logrus.Entry

	// lastCreated tracks the most recent triangle addTriCCW produced
	// during the current insertion, so AddPointToMesh can leave a fresh
	// hint on the inserted point without threading a return value
	// through digCavity's work-stack loop.
	lastCreated TriID
}

func newTriangulator(surf surface.Surface, feature surface.FeatureSize, opts meshconfig.Options, bounds geo2.AABB, pointCapacity int) *Triangulator {
	return &Triangulator{
		points:  pointset.New(pointCapacity),
		quad:    quadtree.New(bounds),
		slab:    newSlab(2 * pointCapacity),
		edges:   edgemap.New(6 * pointCapacity),
		surf:    surf,
		feature: feature,
		opts:    opts,
		log:     mlog.New(mlog.LevelFromVerbosity(opts.PrintLevel)),
	}
}

// addTriCCW creates a new triangle from (a,b,c), reordering to counter-
// clockwise winding if necessary, and registers its three directed edges
// in the edge map.
func (tr *Triangulator) addTriCCW(a, b, c pointset.ID) TriID {
	pa, pb, pc := tr.points.UV(a), tr.points.UV(b), tr.points.UV(c)
	if predicates.Orient2D(pa, pb, pc) < 0 {
		b, c = c, b
	}
	id := tr.slab.add(a, b, c)
	tri := tr.slab.get(id)
	tr.edges.Put(int32(tri.V[0]), int32(tri.V[1]), int32(id))
	tr.edges.Put(int32(tri.V[1]), int32(tri.V[2]), int32(id))
	tr.edges.Put(int32(tri.V[2]), int32(tri.V[0]), int32(id))
	return id
}

// removeTri unregisters a triangle's edges and tombstones its slot.
func (tr *Triangulator) removeTri(id TriID) {
	if tr.slab.isDeleted(id) {
		return
	}
	t := tr.slab.get(id)
	tr.edges.Delete(int32(t.V[0]), int32(t.V[1]))
	tr.edges.Delete(int32(t.V[1]), int32(t.V[2]))
	tr.edges.Delete(int32(t.V[2]), int32(t.V[0]))
	tr.slab.remove(id)
}

func thirdVertex(t *Tri, a, b pointset.ID) pointset.ID {
	for _, v := range t.V {
		if v != a && v != b {
			return v
		}
	}
	return -1
}
