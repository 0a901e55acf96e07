// Package rasterize renders a triangulated mesh's parameter-space view
// to an RGBA image, for interactive preview and debugging of the
// triangulation kernel's output.
package rasterize

import (
	"image"
	"image/color"
	"math"

	"github.com/meshforge/frontal/geo2"
	"github.com/meshforge/frontal/trimesh"
)

// Rasterize renders a mesh's (u,v) parameter-space triangles to an RGBA
// image.
func Rasterize(m trimesh.Mesh, opts ...Option) (*image.RGBA, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.Width <= 0 {
		cfg.Width = 1
	}
	if cfg.Height <= 0 {
		cfg.Height = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	fillBackground(img, cfg.Background)

	transform := computeTransform(m, cfg.Width, cfg.Height)

	if cfg.FillTriangles {
		renderTriangleFills(img, m, transform, cfg.TriangleColor)
	}
	if cfg.DrawEdges {
		renderEdges(img, m, transform, cfg.EdgeColor)
	}
	if cfg.DrawSegments {
		renderSegments(img, m, transform, cfg.SegmentColor)
	}
	if cfg.DrawVertices {
		renderVertices(img, m, transform, cfg.VertexColor)
	}

	// Label rendering is currently a no-op placeholder.
	if cfg.VertexLabels {
		renderVertexLabels(img, m, transform)
	}
	if cfg.EdgeLabels {
		renderEdgeLabels(img, m, transform)
	}
	if cfg.TriangleLabels {
		renderTriangleLabels(img, m, transform)
	}

	renderDebugElements(img, cfg, transform)
	renderDebugLocations(img, cfg, transform)

	return img, nil
}

// Transform converts mesh parameter coordinates to image coordinates.
type Transform struct {
	scale   float64
	offsetX float64
	offsetY float64
}

// Apply converts a parameter-space point to image pixel coordinates.
func (t Transform) Apply(p geo2.Point2) (int, int) {
	x := int(math.Round((p.U + t.offsetX) * t.scale))
	y := int(math.Round((p.V + t.offsetY) * t.scale))
	return x, y
}

func computeTransform(m trimesh.Mesh, width, height int) Transform {
	if len(m.Params) == 0 {
		return Transform{scale: 1}
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range m.Params {
		if p.U < minX {
			minX = p.U
		}
		if p.V < minY {
			minY = p.V
		}
		if p.U > maxX {
			maxX = p.U
		}
		if p.V > maxY {
			maxY = p.V
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	paddingX := rangeX * 0.1
	paddingY := rangeY * 0.1

	minX -= paddingX
	minY -= paddingY
	maxX += paddingX
	maxY += paddingY

	spanX := maxX - minX
	spanY := maxY - minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	scaleX := float64(width-1) / spanX
	scaleY := float64(height-1) / spanY
	scale := math.Min(scaleX, scaleY)
	if scale <= 0 || math.IsInf(scale, 0) || math.IsNaN(scale) {
		scale = 1
	}

	return Transform{
		scale:   scale,
		offsetX: -minX,
		offsetY: -minY,
	}
}

func fillBackground(img *image.RGBA, col color.Color) {
	if col == nil {
		col = color.RGBA{0, 0, 0, 0}
	}
	for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y; y++ {
		for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
			img.Set(x, y, col)
		}
	}
}

func renderTriangleFills(img *image.RGBA, m trimesh.Mesh, transform Transform, col color.Color) {
	if col == nil {
		return
	}
	for _, tri := range m.Triangles {
		ax, ay := transform.Apply(m.Params[tri[0]])
		bx, by := transform.Apply(m.Params[tri[1]])
		cx, cy := transform.Apply(m.Params[tri[2]])
		FillTriangleAlpha(img, ax, ay, bx, by, cx, cy, col)
	}
}

func renderSegments(img *image.RGBA, m trimesh.Mesh, transform Transform, col color.Color) {
	if col == nil {
		return
	}
	for _, seg := range m.Segments {
		x1, y1 := transform.Apply(m.Params[seg[0]])
		x2, y2 := transform.Apply(m.Params[seg[1]])
		DrawLineThickAlpha(img, x1, y1, x2, y2, col, 2)
	}
}

func renderEdges(img *image.RGBA, m trimesh.Mesh, transform Transform, col color.Color) {
	if col == nil {
		return
	}
	for _, tri := range m.Triangles {
		a := m.Params[tri[0]]
		b := m.Params[tri[1]]
		c := m.Params[tri[2]]
		x1, y1 := transform.Apply(a)
		x2, y2 := transform.Apply(b)
		x3, y3 := transform.Apply(c)
		DrawLineAlpha(img, x1, y1, x2, y2, col)
		DrawLineAlpha(img, x2, y2, x3, y3, col)
		DrawLineAlpha(img, x3, y3, x1, y1, col)
	}
}

func renderVertices(img *image.RGBA, m trimesh.Mesh, transform Transform, col color.Color) {
	if col == nil {
		return
	}
	for _, p := range m.Params {
		x, y := transform.Apply(p)
		DrawPointAlpha(img, x, y, col)
	}
}

func renderVertexLabels(_ *image.RGBA, _ trimesh.Mesh, _ Transform)   {}
func renderEdgeLabels(_ *image.RGBA, _ trimesh.Mesh, _ Transform)     {}
func renderTriangleLabels(_ *image.RGBA, _ trimesh.Mesh, _ Transform) {}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}

func max3(a, b, c int) int {
	if a > b {
		if a > c {
			return a
		}
		return c
	}
	if b > c {
		return b
	}
	return c
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func edgeFunction(x0, y0, x1, y1, x2, y2 int) int {
	return (x2-x0)*(y1-y0) - (y2-y0)*(x1-x0)
}

// renderDebugElements draws debug lines with circled endpoints; element
// names are not drawn.
func renderDebugElements(img *image.RGBA, cfg Config, transform Transform) {
	if len(cfg.DebugElements) == 0 {
		return
	}

	debugColor := color.RGBA{R: 255, G: 0, B: 255, A: 255}

	for _, elem := range cfg.DebugElements {
		sx, sy := transform.Apply(geo2.Point2{U: elem.SourceX, V: elem.SourceY})
		tx, ty := transform.Apply(geo2.Point2{U: elem.TargetX, V: elem.TargetY})

		DrawLineThickAlpha(img, sx, sy, tx, ty, debugColor, 2)
		DrawCircleAlpha(img, sx, sy, 3, debugColor)
		DrawCircleAlpha(img, tx, ty, 3, debugColor)
	}
}

// renderDebugLocations draws debug location markers; location names are
// not drawn.
func renderDebugLocations(img *image.RGBA, cfg Config, transform Transform) {
	if len(cfg.DebugLocations) == 0 {
		return
	}

	debugColor := color.RGBA{R: 0, G: 255, B: 255, A: 255}

	for _, loc := range cfg.DebugLocations {
		x, y := transform.Apply(geo2.Point2{U: loc.X, V: loc.Y})

		DrawCircleAlpha(img, x, y, 5, debugColor)
		DrawCircleAlpha(img, x, y, 7, debugColor)
		DrawCircleAlpha(img, x, y, 9, debugColor)
		DrawPointAlpha(img, x, y, debugColor)
	}
}
