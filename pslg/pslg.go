// Package pslg normalizes and validates a planar straight-line graph: the
// boundary points, constraint segments, and hole seed points that describe
// the domain a triangulation must conform to.
package pslg

import (
	"fmt"
	"math"

	"github.com/meshforge/frontal/geo2"
	"github.com/meshforge/frontal/predicates"
)

// Graph is a normalized planar straight-line graph: a deduplicated point
// set, the constraint segments that must survive as triangulation edges,
// and seed points marking regions to classify as holes.
type Graph struct {
	Points    []geo2.Point2
	Segments  [][2]int
	HoleSeeds []geo2.Point2
}

// Normalize merges near-coincident input points, remaps segment endpoints
// onto the merged index space, drops duplicate segments, rejects a
// segment whose endpoints merge into one point, and validates the result
// is a well-formed PSLG.
func Normalize(points []geo2.Point2, segs [][2]int, holeSeeds []geo2.Point2, eps geo2.Epsilon) (*Graph, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("pslg: need at least 3 points, got %d", len(points))
	}
	for i, p := range points {
		if math.IsNaN(p.U) || math.IsNaN(p.V) || math.IsInf(p.U, 0) || math.IsInf(p.V, 0) {
			return nil, fmt.Errorf("pslg: point %d has invalid coordinates", i)
		}
	}

	merged, remap := EpsilonMerge(points, eps)

	segSeen := make(map[edgeKey]bool, len(segs))
	segments := make([][2]int, 0, len(segs))
	for i, s := range segs {
		a := remap[s[0]]
		b := remap[s[1]]
		if a == b {
			return nil, fmt.Errorf("pslg: segment %d is degenerate after merge (both endpoints collapse to point %d)", i, a)
		}
		k := newEdgeKey(a, b)
		if segSeen[k] {
			continue
		}
		segSeen[k] = true
		segments = append(segments, [2]int{a, b})
	}

	g := &Graph{Points: merged, Segments: segments, HoleSeeds: append([]geo2.Point2(nil), holeSeeds...)}
	if err := Validate(g); err != nil {
		return nil, err
	}
	return g, nil
}

// Validate checks index bounds and that no two non-adjacent constraint
// segments cross.
func Validate(g *Graph) error {
	n := len(g.Points)
	for i, s := range g.Segments {
		if s[0] < 0 || s[0] >= n || s[1] < 0 || s[1] >= n {
			return fmt.Errorf("pslg: segment %d references out-of-range vertex", i)
		}
		if s[0] == s[1] {
			return fmt.Errorf("pslg: segment %d is degenerate", i)
		}
	}

	if err := SelfIntersections(g.Points, g.Segments); err != nil {
		return err
	}
	return nil
}

// EpsilonMerge collapses points within tolerance of one another, returning
// the deduplicated slice and a remap from original index to merged index.
func EpsilonMerge(points []geo2.Point2, eps geo2.Epsilon) ([]geo2.Point2, []int) {
	if len(points) == 0 {
		return nil, nil
	}

	merged := make([]geo2.Point2, 0, len(points))
	remap := make([]int, len(points))

	for i, p := range points {
		found := -1
		for idx, q := range merged {
			if distance(p, q) <= eps.MergeDistance(p, q) {
				found = idx
				break
			}
		}
		if found >= 0 {
			remap[i] = found
			continue
		}
		remap[i] = len(merged)
		merged = append(merged, p)
	}

	return merged, remap
}

// SelfIntersections reports an error if any two non-adjacent segments in
// the set cross or overlap. Segments sharing an endpoint are not
// considered intersecting.
func SelfIntersections(points []geo2.Point2, segs [][2]int) error {
	for i := 0; i < len(segs); i++ {
		a1 := points[segs[i][0]]
		a2 := points[segs[i][1]]
		for j := i + 1; j < len(segs); j++ {
			if sharesEndpoint(segs[i], segs[j]) {
				continue
			}
			b1 := points[segs[j][0]]
			b2 := points[segs[j][1]]
			ok, _, _ := predicates.SegmentIntersect(a1, a2, b1, b2)
			if ok {
				return fmt.Errorf("pslg: segment %d crosses segment %d", i, j)
			}
		}
	}
	return nil
}

func sharesEndpoint(a, b [2]int) bool {
	return a[0] == b[0] || a[0] == b[1] || a[1] == b[0] || a[1] == b[1]
}

func distance(a, b geo2.Point2) float64 {
	return math.Hypot(a.U-b.U, a.V-b.V)
}

type edgeKey struct{ lo, hi int }

func newEdgeKey(a, b int) edgeKey {
	if a < b {
		return edgeKey{a, b}
	}
	return edgeKey{b, a}
}
