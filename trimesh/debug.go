package trimesh

import (
	"encoding/json"
	"os"

	"github.com/meshforge/frontal/geo2"
	"github.com/meshforge/frontal/meshconfig"
)

// DebugSnapshot is the serializable state of a Triangulator, captured so
// a problematic mesh can be written out and shared for offline analysis
// without re-running whatever surface/feature-size closures produced it.
type DebugSnapshot struct {
	Params    []geo2.Point2     `json:"params"`
	Coords3D  []geo2.Point3     `json:"coords3d"`
	Triangles []DebugTriangle   `json:"triangles"`
	Opts      meshconfig.Options `json:"options"`
	Diag      Diagnostics       `json:"diagnostics"`
}

// DebugTriangle is one triangle's connectivity and classification state.
type DebugTriangle struct {
	V       [3]int32 `json:"v"`
	Status  string   `json:"status"`
	Quality float64  `json:"quality"`
}

// Save writes the current mesh state to filename as indented JSON, for
// capturing a problematic mesh and sharing it for analysis.
func (tr *Triangulator) Save(filename string) error {
	snap := DebugSnapshot{
		Params:   make([]geo2.Point2, tr.points.PointCount()),
		Coords3D: make([]geo2.Point3, tr.points.PointCount()),
		Opts:     tr.opts,
		Diag:     tr.diag,
	}
	for _, id := range tr.points.All() {
		snap.Params[id] = tr.points.UV(id)
		snap.Coords3D[id] = tr.points.XYZ(id)
	}

	tr.slab.all(func(_ TriID, t *Tri) {
		snap.Triangles = append(snap.Triangles, DebugTriangle{
			V:       [3]int32{int32(t.V[0]), int32(t.V[1]), int32(t.V[2])},
			Status:  t.Status.String(),
			Quality: t.Quality,
		})
	})

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

// LoadDebugSnapshot reads back a snapshot written by Save. It returns the
// raw point/triangle data for inspection; it cannot reconstruct a live
// Triangulator, since the surface and feature-size evaluators that
// produced Coords3D and Quality are closures, not serializable state.
func LoadDebugSnapshot(filename string) (*DebugSnapshot, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var snap DebugSnapshot
	if err := json.NewDecoder(file).Decode(&snap); err != nil {
		return nil, err
	}
	return &snap, nil
}
