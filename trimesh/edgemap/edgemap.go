// Package edgemap implements the directed edge-to-triangle hash index the
// triangulation kernel uses as its sole source of adjacency: triangles
// carry no neighbor pointers, so "what lies across edge (a,b)" is always
// answered by looking up the triangle registered to its left.
//
// The table is a hand-rolled chained hash map rather than Go's built-in
// map[...]..., because the kernel calls Put/Get/Delete for every edge of
// every triangle created or destroyed during cavity digging — millions of
// calls on a large mesh — and a custom 64-bit avalanche mix over the two
// packed vertex ids keeps those calls allocation-free on the hot path.
package edgemap

// Key is a directed edge, always ordered (from, to) as it appears on the
// left-hand triangle's boundary — (a,b) and (b,a) are distinct keys.
type Key struct {
	From int32
	To   int32
}

type entry struct {
	key  Key
	tri  int32
	next int32 // index into entries, or -1
}

// Map is a chained hash table from directed edge to the id of the
// triangle lying to its left.
type Map struct {
	buckets []int32 // index into entries, or -1
	entries []entry
	free    []int32 // free-listed entries slots from Delete
	count   int
}

// New returns an empty Map sized for roughly capacity directed edges.
func New(capacity int) *Map {
	nb := 16
	for nb < capacity/4 {
		nb *= 2
	}
	m := &Map{
		buckets: make([]int32, nb),
		entries: make([]entry, 0, capacity),
	}
	for i := range m.buckets {
		m.buckets[i] = -1
	}
	return m
}

// Put registers tri as the triangle to the left of directed edge (a,b).
// It is a programmer error to Put over an existing (a,b) without first
// Delete-ing it — the kernel treats a duplicate directed edge as a
// topology invariant violation, so Put panics on collision to surface
// the bug immediately rather than silently shadowing an entry.
func (m *Map) Put(a, b int32, tri int32) {
	k := Key{From: a, To: b}
	h := hash(k) & uint32(len(m.buckets)-1)
	for i := m.buckets[h]; i != -1; i = m.entries[i].next {
		if m.entries[i].key == k {
			panic("edgemap: duplicate directed edge registered")
		}
	}

	var idx int32
	if n := len(m.free); n > 0 {
		idx = m.free[n-1]
		m.free = m.free[:n-1]
		m.entries[idx] = entry{key: k, tri: tri, next: m.buckets[h]}
	} else {
		idx = int32(len(m.entries))
		m.entries = append(m.entries, entry{key: k, tri: tri, next: m.buckets[h]})
	}
	m.buckets[h] = idx
	m.count++

	if m.count > 10*len(m.buckets) {
		m.grow()
	}
}

// Get returns the triangle registered to the left of directed edge (a,b).
func (m *Map) Get(a, b int32) (int32, bool) {
	k := Key{From: a, To: b}
	h := hash(k) & uint32(len(m.buckets)-1)
	for i := m.buckets[h]; i != -1; i = m.entries[i].next {
		if m.entries[i].key == k {
			return m.entries[i].tri, true
		}
	}
	return 0, false
}

// Delete removes the entry for directed edge (a,b), if present.
func (m *Map) Delete(a, b int32) {
	k := Key{From: a, To: b}
	h := hash(k) & uint32(len(m.buckets)-1)
	prev := int32(-1)
	for i := m.buckets[h]; i != -1; i = m.entries[i].next {
		if m.entries[i].key == k {
			if prev == -1 {
				m.buckets[h] = m.entries[i].next
			} else {
				m.entries[prev].next = m.entries[i].next
			}
			m.entries[i] = entry{next: -1, tri: -1}
			m.free = append(m.free, i)
			m.count--
			return
		}
		prev = i
	}
}

// Len returns the number of directed edges currently registered.
func (m *Map) Len() int { return m.count }

func (m *Map) grow() {
	newBuckets := make([]int32, len(m.buckets)*2)
	for i := range newBuckets {
		newBuckets[i] = -1
	}
	mask := uint32(len(newBuckets) - 1)
	for i := range m.entries {
		e := &m.entries[i]
		if e.next == -1 && e.tri == -1 && e.key == (Key{}) {
			continue // tombstoned free slot
		}
		h := hash(e.key) & mask
		e.next = newBuckets[h]
		newBuckets[h] = int32(i)
	}
	m.buckets = newBuckets
}

// hash mixes the two packed 32-bit vertex ids through a 64-bit avalanche
// finalizer (splitmix64's mixing step), since the naive a*P+b combination
// clusters badly on the sequential ids point insertion tends to produce.
func hash(k Key) uint32 {
	x := uint64(uint32(k.From))<<32 | uint64(uint32(k.To))
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return uint32(x) ^ uint32(x>>32)
}
