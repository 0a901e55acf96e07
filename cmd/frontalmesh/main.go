// Command frontalmesh drives the frontal-Delaunay triangulation kernel
// from the command line: build a mesh from a YAML PSLG description and
// write it as VTK, or render an existing VTK mesh to PNG for a quick
// visual check.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "frontalmesh",
		Short: "Frontal-Delaunay surface triangulation",
	}

	root.AddCommand(newTriangulateCmd())
	root.AddCommand(newPreviewCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
