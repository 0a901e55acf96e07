// Package quadtree provides a bucket quadtree spatial index over 2D
// parametric points, used by the triangulation kernel to seed point
// location and to answer nearest-neighbor queries during frontal
// advancement.
package quadtree

import (
	"math"

	"github.com/meshforge/frontal/geo2"
)

// NodesPerLevel is the maximum number of point entries a leaf holds
// before it subdivides.
const NodesPerLevel = 10

// MaxDepth bounds subdivision; leaves at MaxDepth accept entries beyond
// NodesPerLevel rather than subdividing further.
const MaxDepth = 30

type entry struct {
	id  int32
	pos geo2.Point2
	tag int
}

// Tree is a bucket quadtree over a fixed rectangular domain. It is not
// safe for concurrent use — the kernel that owns it is single-threaded.
type Tree struct {
	root    *node
	nextTag int
}

type node struct {
	bounds   geo2.AABB
	depth    int
	entries  []entry
	children [4]*node // nw, ne, sw, se; nil until subdivided
}

// New builds an empty quadtree covering bounds.
func New(bounds geo2.AABB) *Tree {
	return &Tree{root: &node{bounds: bounds}}
}

// Insert adds point id at (u,v) to the tree.
func (t *Tree) Insert(id int32, pos geo2.Point2) {
	t.root.insert(entry{id: id, pos: pos})
}

// Remove deletes the entry for id at (u,v). It is a no-op if not found.
// Siblings are never coalesced after removal, matching the bucket
// quadtree's simple subdivide-only discipline.
func (t *Tree) Remove(id int32, pos geo2.Point2) bool {
	return t.root.remove(id, pos)
}

// BumpSearchTag advances the search-tag counter and returns the new
// value, letting the kernel run a "closest point not yet visited this
// pass" query without mutating the tree.
func (t *Tree) BumpSearchTag() int {
	t.nextTag++
	return t.nextTag
}

// FindClosest returns the id nearest to query among points not tagged
// with excludeTag (pass 0 to consider all points), and whether any
// candidate was found. It performs a best-first search, pruning
// subtrees whose bounding box cannot beat the current best squared
// distance.
func (t *Tree) FindClosest(query geo2.Point2, excludeTag int) (int32, bool) {
	best := int32(-1)
	bestD2 := math.MaxFloat64
	t.root.findClosest(query, excludeTag, &best, &bestD2)
	return best, best >= 0
}

// Tag marks the entry for id at pos with tag, so later FindClosest calls
// with the same excludeTag skip it.
func (t *Tree) Tag(id int32, pos geo2.Point2, tag int) {
	t.root.tag(id, pos, tag)
}

func (n *node) insert(e entry) {
	if n.children[0] != nil {
		n.childFor(e.pos).insert(e)
		return
	}

	n.entries = append(n.entries, e)
	if len(n.entries) > NodesPerLevel && n.depth < MaxDepth {
		n.subdivide()
	}
}

func (n *node) subdivide() {
	mid := geo2.Point2{
		U: (n.bounds.Min.U + n.bounds.Max.U) / 2,
		V: (n.bounds.Min.V + n.bounds.Max.V) / 2,
	}
	n.children[0] = &node{bounds: geo2.AABB{Min: geo2.Point2{U: n.bounds.Min.U, V: mid.V}, Max: geo2.Point2{U: mid.U, V: n.bounds.Max.V}}, depth: n.depth + 1}
	n.children[1] = &node{bounds: geo2.AABB{Min: mid, Max: n.bounds.Max}, depth: n.depth + 1}
	n.children[2] = &node{bounds: geo2.AABB{Min: n.bounds.Min, Max: mid}, depth: n.depth + 1}
	n.children[3] = &node{bounds: geo2.AABB{Min: geo2.Point2{U: mid.U, V: n.bounds.Min.V}, Max: geo2.Point2{U: n.bounds.Max.U, V: mid.V}}, depth: n.depth + 1}

	old := n.entries
	n.entries = nil
	for _, e := range old {
		n.childFor(e.pos).insert(e)
	}
}

// childFor returns the child quadrant containing pos: nw=0, ne=1, sw=2, se=3.
func (n *node) childFor(pos geo2.Point2) *node {
	mid := geo2.Point2{
		U: (n.bounds.Min.U + n.bounds.Max.U) / 2,
		V: (n.bounds.Min.V + n.bounds.Max.V) / 2,
	}
	west := pos.U < mid.U
	south := pos.V < mid.V
	switch {
	case west && !south:
		return n.children[0]
	case !west && !south:
		return n.children[1]
	case west && south:
		return n.children[2]
	default:
		return n.children[3]
	}
}

func (n *node) remove(id int32, pos geo2.Point2) bool {
	if n.children[0] != nil {
		return n.childFor(pos).remove(id, pos)
	}
	for i, e := range n.entries {
		if e.id == id {
			n.entries[i] = n.entries[len(n.entries)-1]
			n.entries = n.entries[:len(n.entries)-1]
			return true
		}
	}
	return false
}

func (n *node) tag(id int32, pos geo2.Point2, tag int) {
	if n.children[0] != nil {
		n.childFor(pos).tag(id, pos, tag)
		return
	}
	for i := range n.entries {
		if n.entries[i].id == id {
			n.entries[i].tag = tag
			return
		}
	}
}

func (n *node) findClosest(q geo2.Point2, excludeTag int, best *int32, bestD2 *float64) {
	if n.children[0] == nil {
		for _, e := range n.entries {
			if excludeTag != 0 && e.tag == excludeTag {
				continue
			}
			d2 := sqDist(q, e.pos)
			if d2 < *bestD2 {
				*bestD2 = d2
				*best = e.id
			}
		}
		return
	}

	type scored struct {
		child *node
		d2    float64
	}
	order := make([]scored, 4)
	for i, c := range n.children {
		order[i] = scored{child: c, d2: boxDist2(q, c.bounds)}
	}
	for i := 1; i < 4; i++ {
		for j := i; j > 0 && order[j].d2 < order[j-1].d2; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
	for _, s := range order {
		if s.d2 > *bestD2 {
			continue
		}
		s.child.findClosest(q, excludeTag, best, bestD2)
	}
}

func sqDist(a, b geo2.Point2) float64 {
	du := a.U - b.U
	dv := a.V - b.V
	return du*du + dv*dv
}

func boxDist2(p geo2.Point2, b geo2.AABB) float64 {
	du := 0.0
	if p.U < b.Min.U {
		du = b.Min.U - p.U
	} else if p.U > b.Max.U {
		du = p.U - b.Max.U
	}
	dv := 0.0
	if p.V < b.Min.V {
		dv = b.Min.V - p.V
	} else if p.V > b.Max.V {
		dv = p.V - b.Max.V
	}
	return du*du + dv*dv
}
