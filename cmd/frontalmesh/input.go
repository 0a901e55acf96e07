package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/meshforge/frontal/geo2"
	"github.com/meshforge/frontal/meshconfig"
)

// meshInput is the YAML shape accepted by the triangulate subcommand: a
// PSLG (boundary points, constraint segments, hole seeds) plus the
// meshconfig.Options that drive Frontal.
type meshInput struct {
	Points   [][2]float64 `yaml:"points"`
	Segments [][2]int     `yaml:"segments"`
	Holes    [][2]float64 `yaml:"holes"`
	Options  meshconfig.Options `yaml:"options"`
}

func loadMeshInput(path string) (*meshInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	in := &meshInput{Options: meshconfig.Default()}
	if err := yaml.Unmarshal(data, in); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(in.Points) < 3 {
		return nil, fmt.Errorf("%s: need at least 3 points, got %d", path, len(in.Points))
	}
	return in, nil
}

func (in *meshInput) points2() []geo2.Point2 {
	pts := make([]geo2.Point2, len(in.Points))
	for i, p := range in.Points {
		pts[i] = geo2.Point2{U: p[0], V: p[1]}
	}
	return pts
}

func (in *meshInput) holes2() []geo2.Point2 {
	pts := make([]geo2.Point2, len(in.Holes))
	for i, p := range in.Holes {
		pts[i] = geo2.Point2{U: p[0], V: p[1]}
	}
	return pts
}
