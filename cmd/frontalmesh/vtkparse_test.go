package main

import (
	"path/filepath"
	"testing"

	"github.com/meshforge/frontal/geo2"
	"github.com/meshforge/frontal/trimesh"
	"github.com/meshforge/frontal/vtkio"
)

func TestParseVTKFileRoundTrip(t *testing.T) {
	mesh := trimesh.Mesh{
		Params:    []geo2.Point2{{U: 0, V: 0}, {U: 1, V: 0}, {U: 0, V: 1}},
		Coords3D:  []geo2.Point3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}},
		Triangles: [][3]int32{{0, 1, 2}},
	}

	path := filepath.Join(t.TempDir(), "mesh.vtk")
	if err := vtkio.Write(path, mesh, vtkio.Space3D); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}

	got, err := parseVTKFile(path)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if len(got.Params) != 3 {
		t.Errorf("expected 3 points, got %d", len(got.Params))
	}
	if len(got.Triangles) != 1 || got.Triangles[0] != ([3]int32{0, 1, 2}) {
		t.Errorf("unexpected triangles: %v", got.Triangles)
	}
}

func TestParseVTKFileMissing(t *testing.T) {
	if _, err := parseVTKFile(filepath.Join(t.TempDir(), "nope.vtk")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseCount(t *testing.T) {
	n, err := parseCount("POINTS 42 float", 1)
	if err != nil || n != 42 {
		t.Fatalf("expected (42,nil), got (%d,%v)", n, err)
	}
	if _, err := parseCount("POINTS", 1); err == nil {
		t.Error("expected error for malformed header")
	}
}
