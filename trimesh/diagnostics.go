package trimesh

// Diagnostics reports non-fatal conditions the kernel encountered while
// building or refining a mesh (§7). A populated Diagnostics never means
// the returned mesh is unusable — in every case the caller still gets
// back the best partial mesh the kernel could produce.
type Diagnostics struct {
	// ConvergenceFailure is set when Frontal hit MaxInsertions before
	// every triangle's quality fell below the threshold.
	ConvergenceFailure bool

	// DegenerateEdgesRemoved counts vertex pairs collapsed by
	// RemoveDegenerateEdges.
	DegenerateEdgesRemoved int

	// UnrecoveredSegments holds constraint segments not recovered as a
	// single edge. Nothing in this package appends to it: New returns the
	// InsertSegment error instead, so it is always empty.
	UnrecoveredSegments [][2]int32
}

// GetDiagnostics returns the diagnostics accumulated so far.
func (tr *Triangulator) GetDiagnostics() Diagnostics {
	return tr.diag
}
