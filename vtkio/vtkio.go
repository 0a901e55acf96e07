// Package vtkio writes a triangulated mesh out as an ASCII VTK legacy
// UNSTRUCTURED_GRID file (triangle cells, VTK cell type 5), for
// inspection in any VTK-compatible viewer.
package vtkio

import (
	"bufio"
	"fmt"
	"os"

	"github.com/meshforge/frontal/trimesh"
)

// Space selects which coordinate set Write emits: the mapped 3D surface
// position, or the raw 2D parameter-space position (with z=0).
type Space int

const (
	Space3D Space = iota
	SpaceParametric
)

// Write emits mesh to path as an ASCII VTK 3.0 UNSTRUCTURED_GRID file:
// one POINTS block in the requested space, and one triangle (cell type
// 5) per entry in mesh.Triangles, 0-indexed into the points list.
func Write(path string, mesh trimesh.Mesh, space Space) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("vtkio: create %s: %w", path, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)

	fmt.Fprintln(w, "# vtk DataFile Version 3.0")
	fmt.Fprintln(w, "vtk output")
	fmt.Fprintln(w, "ASCII")
	fmt.Fprintln(w, "DATASET UNSTRUCTURED_GRID")

	fmt.Fprintf(w, "POINTS %d float\n", len(mesh.Params))
	for i := range mesh.Params {
		switch space {
		case SpaceParametric:
			p := mesh.Params[i]
			fmt.Fprintf(w, "%g %g %g\n", p.U, p.V, 0.0)
		default:
			p := mesh.Coords3D[i]
			fmt.Fprintf(w, "%g %g %g\n", p.X, p.Y, p.Z)
		}
	}

	nTri := len(mesh.Triangles)
	fmt.Fprintf(w, "CELLS %d %d\n", nTri, 4*nTri)
	for _, t := range mesh.Triangles {
		fmt.Fprintf(w, "3 %d %d %d\n", t[0], t[1], t[2])
	}

	fmt.Fprintf(w, "CELL_TYPES %d\n", nTri)
	for i := 0; i < nTri; i++ {
		fmt.Fprintln(w, "5")
	}

	return w.Flush()
}
