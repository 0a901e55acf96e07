package rasterize

import "image/color"

// DebugElement is a labeled line segment overlaid on the rendered mesh,
// used to visualize a candidate edge or rejected insertion during
// interactive debugging.
type DebugElement struct {
	Name                       string
	SourceX, SourceY           float64
	TargetX, TargetY           float64
}

// DebugLocation is a labeled point overlaid on the rendered mesh.
type DebugLocation struct {
	Name string
	X, Y float64
}

// Config holds options for rasterizing a mesh to an image.
type Config struct {
	Width  int
	Height int

	Background    color.Color
	VertexColor   color.Color
	EdgeColor     color.Color
	TriangleColor color.Color
	SegmentColor  color.Color

	FillTriangles bool
	DrawVertices  bool
	DrawEdges     bool
	DrawSegments  bool

	VertexLabels   bool
	EdgeLabels     bool
	TriangleLabels bool

	DebugElements  []DebugElement
	DebugLocations []DebugLocation
}

// DefaultConfig returns sensible default rasterization settings.
func DefaultConfig() Config {
	return Config{
		Width:  800,
		Height: 600,

		Background:    color.RGBA{R: 255, G: 255, B: 255, A: 255}, // White
		VertexColor:   color.RGBA{R: 0, G: 0, B: 0, A: 255},       // Black
		EdgeColor:     color.RGBA{R: 64, G: 64, B: 64, A: 255},    // Dark gray
		TriangleColor: color.RGBA{R: 100, G: 100, B: 255, A: 128}, // Semi-transparent blue
		SegmentColor:  color.RGBA{R: 0, G: 128, B: 0, A: 255},     // Green

		FillTriangles: true,
		DrawVertices:  true,
		DrawEdges:     true,
		DrawSegments:  true,

		VertexLabels:   false,
		EdgeLabels:     false,
		TriangleLabels: false,
	}
}
