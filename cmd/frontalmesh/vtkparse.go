package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/meshforge/frontal/geo2"
	"github.com/meshforge/frontal/trimesh"
)

// parseVTKFile reads back the ASCII VTK legacy UNSTRUCTURED_GRID format
// vtkio.Write produces, for the preview subcommand. It takes the POINTS
// block's first two coordinates as the (u,v) preview plane regardless of
// which space the file was written in.
func parseVTKFile(path string) (trimesh.Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return trimesh.Mesh{}, err
	}
	defer file.Close()

	var mesh trimesh.Mesh
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "POINTS"):
			n, err := parseCount(line, 1)
			if err != nil {
				return mesh, fmt.Errorf("POINTS header: %w", err)
			}
			mesh.Params = make([]geo2.Point2, 0, n)
			for i := 0; i < n && scanner.Scan(); i++ {
				fields := strings.Fields(scanner.Text())
				if len(fields) < 2 {
					return mesh, fmt.Errorf("POINTS entry %d: expected at least 2 coordinates", i)
				}
				u, _ := strconv.ParseFloat(fields[0], 64)
				v, _ := strconv.ParseFloat(fields[1], 64)
				mesh.Params = append(mesh.Params, geo2.Point2{U: u, V: v})
			}
		case strings.HasPrefix(line, "CELLS"):
			n, err := parseCount(line, 1)
			if err != nil {
				return mesh, fmt.Errorf("CELLS header: %w", err)
			}
			mesh.Triangles = make([][3]int32, 0, n)
			for i := 0; i < n && scanner.Scan(); i++ {
				fields := strings.Fields(scanner.Text())
				if len(fields) < 4 {
					return mesh, fmt.Errorf("CELLS entry %d: expected a triangle cell", i)
				}
				var tri [3]int32
				for j := 0; j < 3; j++ {
					v, _ := strconv.Atoi(fields[j+1])
					tri[j] = int32(v)
				}
				mesh.Triangles = append(mesh.Triangles, tri)
			}
		}
	}

	return mesh, scanner.Err()
}

func parseCount(header string, field int) (int, error) {
	fields := strings.Fields(header)
	if field >= len(fields) {
		return 0, fmt.Errorf("malformed header %q", header)
	}
	return strconv.Atoi(fields[field])
}
