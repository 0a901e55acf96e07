package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMeshInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mesh.yaml")
	content := `
points:
  - [0, 0]
  - [10, 0]
  - [10, 10]
  - [0, 10]
segments:
  - [0, 1]
  - [1, 2]
  - [2, 3]
  - [3, 0]
options:
  quality_threshold: 1.2
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	in, err := loadMeshInput(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(in.Points) != 4 {
		t.Errorf("expected 4 points, got %d", len(in.Points))
	}
	if len(in.Segments) != 4 {
		t.Errorf("expected 4 segments, got %d", len(in.Segments))
	}
	if in.Options.QualityThreshold != 1.2 {
		t.Errorf("expected quality_threshold 1.2, got %v", in.Options.QualityThreshold)
	}

	pts := in.points2()
	if len(pts) != 4 || pts[2].U != 10 || pts[2].V != 10 {
		t.Errorf("unexpected points2() conversion: %v", pts)
	}
}

func TestLoadMeshInputRejectsTooFewPoints(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mesh.yaml")
	content := "points:\n  - [0, 0]\n  - [1, 1]\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadMeshInput(path); err == nil {
		t.Fatal("expected error for fewer than 3 points")
	}
}
