package trimesh

import "fmt"

// InputError reports a malformed PSLG: out-of-range segment indices,
// degenerate segments, or other caller-supplied data the kernel refuses
// to build from.
type InputError struct {
	Msg string
}

func (e *InputError) Error() string { return fmt.Sprintf("trimesh: invalid input: %s", e.Msg) }

// ConvergenceError wraps a mesh that Frontal could not fully refine
// within MaxInsertions. It is advisory: the partial mesh is still valid
// and usable, per §7's "the partial mesh is still returned".
type ConvergenceError struct {
	Mesh Mesh
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("trimesh: frontal advancement did not converge after producing %d triangles", len(e.Mesh.Triangles))
}

// assertInvariant panics with a topology-invariant-violation message.
// Per spec §7, an edge-map/adjacency invariant failure indicates a bug
// in the kernel itself, not bad input, so it is always fatal.
func assertInvariant(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf("trimesh: topology invariant violated: "+format, args...))
	}
}
