package gategraph

import "container/heap"

// clauseIndex is the occurrence-list index over literals: for each
// literal l, occ[l] lists the clauses still containing l. Retirement
// (removing a clause from the index) is explicit and lazy — it only
// touches the literals of the retired clause, not the whole index.
type clauseIndex struct {
	occ   [][]*Clause // indexed by int(Lit)
	rare  rarestHeap
	count []int // occ-list length per literal, mirrored into the heap's key
}

func newClauseIndex(nVars int) *clauseIndex {
	idx := &clauseIndex{
		occ:   make([][]*Clause, 2*nVars),
		count: make([]int, 2*nVars),
	}
	idx.rare.idx = idx
	idx.rare.pos = make(map[Lit]int)
	return idx
}

// build populates the index from every clause in cs, skipping unit
// clauses (callers are expected to seed those directly as roots,
// matching the driver's unit-clause handling in spec.md §4.5).
func (idx *clauseIndex) build(cs []*Clause) {
	for _, c := range cs {
		if c.Len() == 1 {
			continue
		}
		for _, l := range c.lits {
			idx.occ[l] = append(idx.occ[l], c)
		}
	}
	for l := range idx.occ {
		if len(idx.occ[l]) > 0 {
			idx.touch(Lit(l))
		}
	}
}

// at returns the (still live) clauses containing l.
func (idx *clauseIndex) at(l Lit) []*Clause { return idx.occ[l] }

// retire removes c from idx(l) for every l in c.
func (idx *clauseIndex) retire(c *Clause) {
	for _, l := range c.lits {
		idx.removeOne(l, c)
	}
}

// retireAll retires every clause in cs. The slice is copied internally
// to protect callers who still hold a reference to (e.g.) an
// occurrence list while retiring it — never alias F/G across a
// retirement step, per spec.md §9's design note.
func (idx *clauseIndex) retireAll(cs []*Clause) {
	cp := make([]*Clause, len(cs))
	copy(cp, cs)
	for _, c := range cp {
		idx.retire(c)
	}
}

func (idx *clauseIndex) removeOne(l Lit, c *Clause) {
	list := idx.occ[l]
	for i, x := range list {
		if x == c {
			list[i] = list[len(list)-1]
			idx.occ[l] = list[:len(list)-1]
			break
		}
	}
	idx.touch(l)
}

// touch refreshes the rarity heap's position for l after its
// occurrence count changed.
func (idx *clauseIndex) touch(l Lit) {
	n := len(idx.occ[l])
	if i, ok := idx.rare.pos[l]; ok {
		if n == 0 {
			heap.Remove(&idx.rare, i)
		} else {
			heap.Fix(&idx.rare, i)
		}
		return
	}
	if n > 0 {
		heap.Push(&idx.rare, l)
	}
}

// empty reports whether every literal's occurrence list is empty.
func (idx *clauseIndex) empty() bool {
	return len(idx.rare.items) == 0
}

// rarestLiteral returns the literal with the smallest non-zero
// occurrence count, ties broken by literal order (spec.md §4.5,
// §5 "ties among rarest literals are broken by integer encoding").
// The second return value is false if the index is empty.
func (idx *clauseIndex) rarestLiteral() (Lit, bool) {
	if idx.empty() {
		return 0, false
	}
	return idx.rare.items[0], true
}

// rarestHeap is a container/heap min-heap over literals with a
// non-empty occurrence list, keyed by occurrence-list length and
// broken by literal value. It adapts saturday.go's litHeap (a
// max-heap over watch-list length used to pick decision variables)
// into a min-heap over occurrence-list length used to pick the rarest
// literal, including the same position-tracking map so Fix/Remove are
// O(log n) instead of a linear scan.
type rarestHeap struct {
	idx   *clauseIndex
	items []Lit
	pos   map[Lit]int
}

func (h *rarestHeap) Len() int { return len(h.items) }

func (h *rarestHeap) Less(i, j int) bool {
	li, lj := h.items[i], h.items[j]
	ni, nj := len(h.idx.occ[li]), len(h.idx.occ[lj])
	if ni != nj {
		return ni < nj
	}
	return li < lj
}

func (h *rarestHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i]] = i
	h.pos[h.items[j]] = j
}

func (h *rarestHeap) Push(x interface{}) {
	l := x.(Lit)
	h.pos[l] = len(h.items)
	h.items = append(h.items, l)
}

func (h *rarestHeap) Pop() interface{} {
	n := len(h.items)
	l := h.items[n-1]
	h.items = h.items[:n-1]
	delete(h.pos, l)
	return l
}
