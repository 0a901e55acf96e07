package trimesh

import (
	"github.com/meshforge/frontal/geo2"
	"github.com/meshforge/frontal/pointset"
)

// Mesh is the renumbered, export-ready view of a Triangulator's live
// triangles: every point referenced by a surviving triangle, compacted to
// a dense 0-based index, plus the connectivity over those compacted
// indices. Super-points and DELETE_ME triangles never appear here (§6).
type Mesh struct {
	Params    []geo2.Point2
	Coords3D  []geo2.Point3
	Triangles [][3]int32
	Segments  [][2]int32
}

// GetMesh renumbers live points and triangles for export, dropping any
// point that no surviving triangle references (this always includes the
// four super-points, already unreferenced after removeSuperPoints).
func (tr *Triangulator) GetMesh() Mesh {
	remap := make(map[int32]int32)
	var mesh Mesh

	addPoint := func(id int32) int32 {
		if newID, ok := remap[id]; ok {
			return newID
		}
		newID := int32(len(mesh.Params))
		remap[id] = newID
		mesh.Params = append(mesh.Params, tr.points.UV(pointset.ID(id)))
		mesh.Coords3D = append(mesh.Coords3D, tr.points.XYZ(pointset.ID(id)))
		return newID
	}

	tr.slab.all(func(_ TriID, t *Tri) {
		var tri [3]int32
		for i := 0; i < 3; i++ {
			tri[i] = addPoint(int32(t.V[i]))
		}
		mesh.Triangles = append(mesh.Triangles, tri)
	})

	for _, seg := range tr.segments {
		a, okA := remap[int32(seg[0])]
		b, okB := remap[int32(seg[1])]
		if okA && okB {
			mesh.Segments = append(mesh.Segments, [2]int32{a, b})
		}
	}

	return mesh
}
