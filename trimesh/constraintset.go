package trimesh

import (
	"sort"

	"github.com/meshforge/frontal/pointset"
)

// constraintSet stores the PSLG's unordered vertex pairs as a sorted
// slice of packed keys, giving O(log n) membership tests without the
// overhead of a hash map for a set that is built once during Init and
// only read from then on.
type constraintSet struct {
	keys []uint64
}

func packEdge(a, b pointset.ID) uint64 {
	if a > b {
		a, b = b, a
	}
	return uint64(uint32(a))<<32 | uint64(uint32(b))
}

func newConstraintSet(edges [][2]pointset.ID) *constraintSet {
	keys := make([]uint64, len(edges))
	for i, e := range edges {
		keys[i] = packEdge(e[0], e[1])
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return &constraintSet{keys: keys}
}

func (c *constraintSet) has(a, b pointset.ID) bool {
	k := packEdge(a, b)
	i := sort.Search(len(c.keys), func(i int) bool { return c.keys[i] >= k })
	return i < len(c.keys) && c.keys[i] == k
}

func (c *constraintSet) add(a, b pointset.ID) {
	k := packEdge(a, b)
	i := sort.Search(len(c.keys), func(i int) bool { return c.keys[i] >= k })
	if i < len(c.keys) && c.keys[i] == k {
		return
	}
	c.keys = append(c.keys, 0)
	copy(c.keys[i+1:], c.keys[i:])
	c.keys[i] = k
}
