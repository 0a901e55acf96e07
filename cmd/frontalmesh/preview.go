package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/meshforge/frontal/rasterize"
	"github.com/meshforge/frontal/trimesh"
)

func newPreviewCmd() *cobra.Command {
	var inPath, outPath string
	var width, height int

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render a triangulated mesh to a PNG for a quick visual check",
		RunE: func(cmd *cobra.Command, args []string) error {
			mesh, err := loadVTKMesh(inPath)
			if err != nil {
				return fmt.Errorf("reading %s: %w", inPath, err)
			}

			img, err := rasterize.Rasterize(mesh, rasterize.WithDimensions(width, height))
			if err != nil {
				return fmt.Errorf("rasterizing: %w", err)
			}

			out, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("creating %s: %w", outPath, err)
			}
			defer out.Close()

			if err := png.Encode(out, img); err != nil {
				return fmt.Errorf("encoding png: %w", err)
			}

			fmt.Printf("wrote preview to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "input VTK mesh file")
	cmd.Flags().StringVar(&outPath, "out", "preview.png", "output PNG file path")
	cmd.Flags().IntVar(&width, "width", 1024, "preview image width")
	cmd.Flags().IntVar(&height, "height", 1024, "preview image height")
	cmd.MarkFlagRequired("in")

	return cmd
}

// loadVTKMesh is a minimal reader for the subset of VTK legacy
// UNSTRUCTURED_GRID format vtkio.Write produces: a POINTS block of
// (x,y,z) triples and a CELLS block of triangle connectivity.
func loadVTKMesh(path string) (trimesh.Mesh, error) {
	return parseVTKFile(path)
}
