package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/meshforge/frontal/geo2"
	"github.com/meshforge/frontal/pslg"
	"github.com/meshforge/frontal/surface"
	"github.com/meshforge/frontal/trimesh"
	"github.com/meshforge/frontal/vtkio"
)

func newTriangulateCmd() *cobra.Command {
	var configPath, outPath string
	var parametric bool

	cmd := &cobra.Command{
		Use:   "triangulate",
		Short: "Build a frontal-Delaunay mesh from a PSLG description and write it as VTK",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadMeshInput(configPath)
			if err != nil {
				return err
			}

			graph, err := pslg.Normalize(in.points2(), in.Segments, in.holes2(), geo2.DefaultEpsilon())
			if err != nil {
				return fmt.Errorf("normalizing PSLG: %w", err)
			}

			tr, err := trimesh.New(graph, surface.Planar{}, surface.Uniform{H: estimateFeatureSize(graph)}, in.Options)
			if err != nil {
				return fmt.Errorf("initializing triangulation: %w", err)
			}

			if err := tr.Frontal(); err != nil {
				if _, ok := err.(*trimesh.ConvergenceError); !ok {
					return fmt.Errorf("frontal advancement: %w", err)
				}
				fmt.Println("warning:", err)
			}

			mesh := tr.GetMesh()
			space := vtkio.Space3D
			if parametric {
				space = vtkio.SpaceParametric
			}
			if err := vtkio.Write(outPath, mesh, space); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}

			fmt.Printf("wrote %d points, %d triangles to %s\n", len(mesh.Params), len(mesh.Triangles), outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to the PSLG/options YAML file")
	cmd.Flags().StringVar(&outPath, "out", "mesh.vtk", "output VTK file path")
	cmd.Flags().BoolVar(&parametric, "parametric", false, "write parameter-space coordinates instead of 3D")
	cmd.MarkFlagRequired("config")

	return cmd
}

// estimateFeatureSize picks a uniform feature size from the PSLG's
// bounding-box diagonal, giving a reasonable default element size for a
// quick triangulate run. The input file has no feature-size field, so
// this is always the size used.
func estimateFeatureSize(graph *pslg.Graph) float64 {
	bbox := geo2.BoundingBox(graph.Points)
	diag := math.Hypot(bbox.Width(), bbox.Height())
	if diag <= 0 {
		return 1
	}
	return 0.1 * diag
}
