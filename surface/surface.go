// Package surface defines the read-only collaborators the triangulation
// kernel consults but never owns: the parametric surface embedding and the
// feature-size field driving frontal point placement. Both are treated as
// reentrant and side-effect free; the kernel never mutates through them.
package surface

import "github.com/meshforge/frontal/geo2"

// Surface maps the (u,v) parameter domain into 3D space.
type Surface interface {
	// EvalPoint returns the 3D position of parameter point (u,v).
	EvalPoint(u, v float64) geo2.Point3

	// EvalDeriv returns the 3D position and its partial derivatives with
	// respect to u and v at (u,v). The trimesh kernel does not call it;
	// frontal point placement uses EvalPoint only.
	EvalDeriv(u, v float64) (pos, dU, dV geo2.Point3)
}

// FeatureSize reports the desired local element size at a 3D surface point.
type FeatureSize interface {
	// Get returns h > 0, the target edge length near p.
	Get(p geo2.Point3) float64
}

// Planar is a Surface that embeds the parameter domain directly into the
// z=0 plane: EvalPoint(u,v) = (u,v,0). It is the default collaborator used
// whenever the caller has no true parametric surface, and the one
// exercised by the degenerate (flat) test scenarios.
type Planar struct{}

func (Planar) EvalPoint(u, v float64) geo2.Point3 {
	return geo2.Point3{X: u, Y: v, Z: 0}
}

func (Planar) EvalDeriv(u, v float64) (pos, dU, dV geo2.Point3) {
	return geo2.Point3{X: u, Y: v, Z: 0}, geo2.Point3{X: 1, Y: 0, Z: 0}, geo2.Point3{X: 0, Y: 1, Z: 0}
}

// Uniform is a FeatureSize field that returns the same target size h
// everywhere in the domain.
type Uniform struct {
	H float64
}

func (u Uniform) Get(geo2.Point3) float64 { return u.H }

// FuncField adapts a plain function into a FeatureSize collaborator, for
// callers driving element size from an arbitrary spatial expression.
type FuncField func(p geo2.Point3) float64

func (f FuncField) Get(p geo2.Point3) float64 { return f(p) }
