package trimesh

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meshforge/frontal/geo2"
	"github.com/meshforge/frontal/meshconfig"
	"github.com/meshforge/frontal/pointset"
	"github.com/meshforge/frontal/pslg"
	"github.com/meshforge/frontal/surface"
)

func squareGraph(t *testing.T) *pslg.Graph {
	t.Helper()
	pts := []geo2.Point2{{U: 0, V: 0}, {U: 10, V: 0}, {U: 10, V: 10}, {U: 0, V: 10}}
	segs := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	g, err := pslg.Normalize(pts, segs, nil, geo2.DefaultEpsilon())
	require.NoError(t, err)
	return g
}

func newPlanarTriangulator(t *testing.T, g *pslg.Graph, opts meshconfig.Options) *Triangulator {
	t.Helper()
	tr, err := New(g, surface.Planar{}, surface.Uniform{H: 2}, opts)
	require.NoError(t, err)
	return tr
}

// Scenario 1: a simple square boundary (stands in for a "unit disk" domain
// approximated by a convex polygon) triangulates cleanly and converges.
func TestFrontalSquareConverges(t *testing.T) {
	g := squareGraph(t)
	opts := meshconfig.New(meshconfig.WithQualityThreshold(1.2), meshconfig.WithMaxInsertions(5000))
	tr := newPlanarTriangulator(t, g, opts)

	err := tr.Frontal()
	require.NoError(t, err)
	require.False(t, tr.GetDiagnostics().ConvergenceFailure)

	mesh := tr.GetMesh()
	require.NotEmpty(t, mesh.Triangles)
	require.NoError(t, tr.ValidateTopology())
}

// Scenario 2: a square with an internal diagonal constraint must keep that
// constraint as a surviving mesh edge through initialization.
func TestSquareWithDiagonalConstraint(t *testing.T) {
	pts := []geo2.Point2{
		{U: 0, V: 0}, {U: 10, V: 0}, {U: 10, V: 10}, {U: 0, V: 10},
	}
	segs := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}}
	g, err := pslg.Normalize(pts, segs, nil, geo2.DefaultEpsilon())
	require.NoError(t, err)

	opts := meshconfig.New(meshconfig.WithQualityThreshold(1.5), meshconfig.WithMaxInsertions(2000))
	tr := newPlanarTriangulator(t, g, opts)
	require.NoError(t, tr.ValidateTopology())

	mesh := tr.GetMesh()
	require.NotEmpty(t, mesh.Triangles)

	idxOf := func(p geo2.Point2) int32 {
		for i, q := range mesh.Params {
			if q == p {
				return int32(i)
			}
		}
		t.Fatalf("point %v not found in exported mesh", p)
		return -1
	}
	a, b := idxOf(geo2.Point2{U: 0, V: 0}), idxOf(geo2.Point2{U: 10, V: 10})

	found := false
	for _, seg := range mesh.Segments {
		if (seg[0] == a && seg[1] == b) || (seg[0] == b && seg[1] == a) {
			found = true
			break
		}
	}
	require.True(t, found, "diagonal constraint (0,0)-(10,10) should survive as a mesh segment")
}

// Scenario 3: an annulus-shaped domain built from an outer boundary plus a
// hole seed must classify the hole interior out of the final mesh.
func TestAnnulusWithHoleSeed(t *testing.T) {
	outer := []geo2.Point2{
		{U: 0, V: 0}, {U: 20, V: 0}, {U: 20, V: 20}, {U: 0, V: 20},
	}
	inner := []geo2.Point2{
		{U: 8, V: 8}, {U: 12, V: 8}, {U: 12, V: 12}, {U: 8, V: 12},
	}
	pts := append(append([]geo2.Point2{}, outer...), inner...)
	segs := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
	}
	holeSeed := []geo2.Point2{{U: 10, V: 10}}

	g, err := pslg.Normalize(pts, segs, holeSeed, geo2.DefaultEpsilon())
	require.NoError(t, err)

	opts := meshconfig.New(meshconfig.WithQualityThreshold(1.5), meshconfig.WithMaxInsertions(5000))
	tr := newPlanarTriangulator(t, g, opts)
	require.NoError(t, tr.ValidateTopology())

	mesh := tr.GetMesh()
	require.NotEmpty(t, mesh.Triangles)

	for _, tri := range mesh.Triangles {
		c := centroid(mesh.Params[tri[0]], mesh.Params[tri[1]], mesh.Params[tri[2]])
		require.False(t, c.U > 8 && c.U < 12 && c.V > 8 && c.V < 12,
			"no surviving triangle should have its centroid inside the hole")
	}
}

// Scenario 4: an L-shaped domain exercises a reentrant (reflex) boundary
// corner during initialization and frontal advancement.
func TestLShapeReentrantCorner(t *testing.T) {
	pts := []geo2.Point2{
		{U: 0, V: 0}, {U: 10, V: 0}, {U: 10, V: 5},
		{U: 5, V: 5}, {U: 5, V: 10}, {U: 0, V: 10},
	}
	segs := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}}
	g, err := pslg.Normalize(pts, segs, nil, geo2.DefaultEpsilon())
	require.NoError(t, err)

	opts := meshconfig.New(meshconfig.WithQualityThreshold(1.5), meshconfig.WithMaxInsertions(5000))
	tr := newPlanarTriangulator(t, g, opts)

	err = tr.Frontal()
	require.NoError(t, err)
	require.NoError(t, tr.ValidateTopology())

	mesh := tr.GetMesh()
	require.NotEmpty(t, mesh.Triangles)
	for _, tri := range mesh.Triangles {
		c := centroid(mesh.Params[tri[0]], mesh.Params[tri[1]], mesh.Params[tri[2]])
		require.False(t, c.U > 5 && c.V > 5, "no triangle should lie in the L-shape's missing quadrant")
	}
}

// Scenario 5: RemoveDegenerateEdges collapses a declared-duplicate vertex
// pair and drops any triangle that becomes degenerate as a result.
func TestRemoveDegenerateEdgesCollapsesTriangle(t *testing.T) {
	g := squareGraph(t)
	opts := meshconfig.New(meshconfig.WithQualityThreshold(5), meshconfig.WithMaxInsertions(0))
	tr := newPlanarTriangulator(t, g, opts)

	before := 0
	tr.slab.all(func(_ TriID, _ *Tri) { before++ })
	require.Greater(t, before, 0)

	// Merge two adjacent boundary points declared coincident; any
	// triangle using both collapses to a repeated vertex and is dropped.
	// Ids 0..3 are the super-points, so PSLG points 0 and 1 are ids 4 and 5.
	tr.RemoveDegenerateEdges([][2]pointset.ID{{4, 5}})

	require.Greater(t, tr.GetDiagnostics().DegenerateEdgesRemoved, 0)
	require.NoError(t, tr.ValidateTopology())

	tr.slab.all(func(_ TriID, tri *Tri) {
		require.NotEqual(t, tri.V[0], tri.V[1])
		require.NotEqual(t, tri.V[1], tri.V[2])
		require.NotEqual(t, tri.V[2], tri.V[0])
	})
}

// Scenario 6: an adversarial cocircular quartet (four points exactly on a
// common circle) must still resolve to a consistent, valid triangulation
// rather than failing the in-circle predicate's tie-break.
func TestCocircularQuartet(t *testing.T) {
	pts := []geo2.Point2{
		{U: 1, V: 0}, {U: 0, V: 1}, {U: -1, V: 0}, {U: 0, V: -1},
	}
	segs := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	g, err := pslg.Normalize(pts, segs, nil, geo2.DefaultEpsilon())
	require.NoError(t, err)

	opts := meshconfig.New(meshconfig.WithQualityThreshold(5), meshconfig.WithMaxInsertions(0))
	tr := newPlanarTriangulator(t, g, opts)
	require.NoError(t, tr.ValidateTopology())

	mesh := tr.GetMesh()
	require.Len(t, mesh.Triangles, 2)
}

func TestGetDiagnosticsConvergenceFailure(t *testing.T) {
	g := squareGraph(t)
	opts := meshconfig.New(meshconfig.WithQualityThreshold(1.01), meshconfig.WithMaxInsertions(1))
	tr := newPlanarTriangulator(t, g, opts)

	err := tr.Frontal()
	if err != nil {
		var convErr *ConvergenceError
		require.ErrorAs(t, err, &convErr)
		require.True(t, tr.GetDiagnostics().ConvergenceFailure)
		require.NotEmpty(t, convErr.Mesh.Triangles)
	}
}

func TestNewRejectsTooFewPoints(t *testing.T) {
	g := &pslg.Graph{Points: []geo2.Point2{{U: 0, V: 0}, {U: 1, V: 0}}}
	_, err := New(g, surface.Planar{}, surface.Uniform{H: 1}, meshconfig.Default())
	require.Error(t, err)
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
}

func TestSaveAndLoadDebugSnapshot(t *testing.T) {
	g := squareGraph(t)
	opts := meshconfig.New(meshconfig.WithMaxInsertions(0))
	tr := newPlanarTriangulator(t, g, opts)

	path := t.TempDir() + "/snapshot.json"
	require.NoError(t, tr.Save(path))

	snap, err := LoadDebugSnapshot(path)
	require.NoError(t, err)
	require.NotEmpty(t, snap.Triangles)
	require.Equal(t, opts.QualityThreshold, snap.Opts.QualityThreshold)
}

func centroid(a, b, c geo2.Point2) geo2.Point2 {
	return geo2.Point2{U: (a.U + b.U + c.U) / 3, V: (a.V + b.V + c.V) / 3}
}
