package gategraph

import (
	"container/heap"
	"context"

	"github.com/kr/pretty"
)

// refOracle is the reference Oracle implementation shipped with this
// module (SPEC_FULL.md §4.8.2). It adapts saturday.go's two-watched-
// literal DPLL solver — literal encoding, clause/watch layout, the
// decision-literal heap, bcp, and chronological-backtracking conflict
// resolution are all carried over — generalized to support incremental
// clause addition after solving has started, assumption literals, and
// a per-call conflict budget. It is not a CDCL solver: like the
// teacher, it backtracks chronologically rather than learning clauses,
// which is adequate for the small activation-gated definitions the
// semantic and VE-blocked checkers pose to it.
type refOracle struct {
	assignments []assnVal
	watches     [][]int // indexed by literal: indices of the clauses watching it (a clause watches its first two lits)
	clauses     []*oClause

	trail     []Lit // assigned literals in order, decisions and implications alike
	propIndex int
	decisions []oDecision

	heap   oracleHeap
	unsat  bool // a permanent (level-0) conflict was derived
	debugf func(format string, args ...interface{})
}

type oClause struct {
	lits []Lit
}

type oDecision struct {
	implicationIdx int
	lit            Lit
	assumption     bool // assumptions are never flipped on conflict
}

type assnVal uint8

const (
	oUnassigned  assnVal = 0
	oTrue        assnVal = 1
	oFalse       assnVal = 2
	oTrueSecond  assnVal = 5
	oFalseSecond assnVal = 6
)

func (a assnVal) inv() assnVal { return a ^ 3 }

func litAssn(l Lit) assnVal {
	if l.Sign() {
		return oFalse
	}
	return oTrue
}

// newRefOracle creates an empty oracle with no clauses and no
// variables; AddClause grows its variable space on demand.
func newRefOracle(debugf func(format string, args ...interface{})) *refOracle {
	o := &refOracle{debugf: debugf}
	o.heap.o = o
	o.heap.pos = make(map[Lit]int)
	return o
}

// growTo ensures the oracle has storage for variable v.
func (o *refOracle) growTo(v Var) {
	need := int(v) + 1
	if need <= len(o.assignments) {
		return
	}
	grown := make([]assnVal, need)
	copy(grown, o.assignments)
	o.assignments = grown

	w := make([][]int, 2*need)
	copy(w, o.watches)
	o.watches = w
}

func (o *refOracle) assnOf(v Var) assnVal { return o.assignments[v] & 3 }

// AddClause implements Oracle. It permanently asserts c: for a unit
// clause this is an immediate level-0 assignment, for longer clauses
// it registers two watch literals, falling back to unit propagation or
// permanent unsatisfiability if the clause is already partly or fully
// falsified under the current level-0 assignment.
func (o *refOracle) AddClause(c []Lit) {
	if o.unsat {
		return
	}
	for _, l := range c {
		o.growTo(l.Var())
	}
	lits := dedupLits(c)
	if isTautologyClause(lits) {
		return
	}
	if len(lits) == 0 {
		o.unsat = true
		return
	}
	if len(lits) == 1 {
		o.assertUnit(lits[0])
		return
	}

	// Move up to two not-yet-falsified literals to the front to serve as
	// watches. If only one such literal exists, the clause is unit
	// under the current (level-0) assignment and must be propagated
	// immediately once it is registered; if none exists, the clause is
	// already falsified and the database is permanently unsatisfiable.
	live := 0
	for i, l := range lits {
		if o.assnOf(l.Var()) == oUnassigned || o.assnOf(l.Var()) == litAssn(l) {
			lits[live], lits[i] = lits[i], lits[live]
			live++
			if live == 2 {
				break
			}
		}
	}
	if live == 0 {
		o.unsat = true
		return
	}

	cl := &oClause{lits: lits}
	idx := len(o.clauses)
	o.clauses = append(o.clauses, cl)
	o.watches[cl.lits[0]] = append(o.watches[cl.lits[0]], idx)
	if o.assnOf(cl.lits[0].Var()) == oUnassigned {
		o.heapTouch(cl.lits[0])
	}
	if live == 2 {
		o.watches[cl.lits[1]] = append(o.watches[cl.lits[1]], idx)
		if o.assnOf(cl.lits[1].Var()) == oUnassigned {
			o.heapTouch(cl.lits[1])
		}
	} else if o.assnOf(cl.lits[0].Var()) == oUnassigned {
		// Only one live literal and the clause has more than one
		// literal overall: it is unit right now.
		o.assertUnit(cl.lits[0])
	}
}

func (o *refOracle) assertUnit(l Lit) {
	cur := o.assnOf(l.Var())
	want := litAssn(l)
	if cur != oUnassigned {
		if cur != want {
			o.unsat = true
		}
		return
	}
	o.assignments[l.Var()] = want
	o.trail = append(o.trail, l)
	o.heapRemoveBothPolarities(l.Var())
	if !o.propagate() {
		o.unsat = true
	}
}

func dedupLits(c []Lit) []Lit {
	seen := make(map[Lit]bool, len(c))
	out := make([]Lit, 0, len(c))
	for _, l := range c {
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}

func isTautologyClause(c []Lit) bool {
	for _, l := range c {
		for _, m := range c {
			if l == m.Neg() {
				return true
			}
		}
	}
	return false
}

// Solve implements Oracle. Assumptions are pushed as un-flippable
// decisions; the search proceeds by ordinary chronological
// backtracking (saturday.go's resolveConflict) bounded by budget
// conflicts, then every decision made during this call is undone so
// the oracle's permanent (level-0) state is unaffected by one query
// (the idiomatic incremental-SAT "assumptions are transient" contract,
// mirroring MiniSat's solve-under-assumptions shape).
func (o *refOracle) Solve(ctx context.Context, assumptions []Lit, budget uint) OracleResult {
	if o.unsat {
		return OracleUNSAT
	}
	for _, l := range assumptions {
		o.growTo(l.Var())
	}

	baseTrail := len(o.trail)
	baseDecisions := len(o.decisions)
	var conflicts uint

	result := o.search(ctx, assumptions, budget, &conflicts)

	if o.debugf != nil {
		o.debugf("refOracle.Solve assumptions=%# v result=%v conflicts=%d", pretty.Formatter(assumptions), result, conflicts)
	}

	// Undo every decision/implication made since baseTrail, regardless
	// of outcome, so the next Solve call starts from the permanent
	// clause base.
	for i := len(o.trail) - 1; i >= baseTrail; i-- {
		l := o.trail[i]
		o.assignments[l.Var()] = oUnassigned
		o.heapPush(l)
	}
	o.trail = o.trail[:baseTrail]
	o.decisions = o.decisions[:baseDecisions]
	o.propIndex = baseTrail

	return result
}

func (o *refOracle) search(ctx context.Context, assumptions []Lit, budget uint, conflicts *uint) OracleResult {
	ai := 0
	for {
		if ctx.Err() != nil {
			return OracleUnknown
		}

		var lit Lit
		assumption := false
		if ai < len(assumptions) {
			lit = assumptions[ai]
			assumption = true
			cur := o.assnOf(lit.Var())
			if cur == litAssn(lit) {
				ai++
				continue
			}
			if cur == litAssn(lit).inv() {
				// Assumption directly contradicts a value already
				// forced by the permanent clause base or an earlier
				// assumption; no decision exists to flip, so the
				// assumption set itself is unsatisfiable.
				return OracleUNSAT
			}
		} else {
			next, ok := o.heapPop()
			if !ok {
				return OracleSAT
			}
			lit = next
		}

		o.decisions = append(o.decisions, oDecision{
			implicationIdx: len(o.trail),
			lit:            lit,
			assumption:     assumption,
		})
		o.assignments[lit.Var()] = litAssn(lit)
		o.trail = append(o.trail, lit)
		o.heapRemoveBothPolarities(lit.Var())
		if assumption {
			ai++
		}

		for !o.propagate() {
			*conflicts++
			if budget != 0 && *conflicts > budget {
				return OracleUnknown
			}
			if !o.resolveConflict() {
				return OracleUNSAT
			}
		}
	}
}

// propagate runs BCP over the trail starting at propIndex, the same
// two-watched-literal scheme as saturday.go's bcp.
func (o *refOracle) propagate() bool {
	for o.propIndex < len(o.trail) {
		lit := o.trail[o.propIndex]
		o.propIndex++
		neg := lit.Neg()
		watches := o.watches[neg]
		for i := 0; i < len(watches); {
			ci := watches[i]
			cl := o.clauses[ci]
			if cl.lits[0] == neg {
				cl.lits[0], cl.lits[1] = cl.lits[1], cl.lits[0]
			}
			other := cl.lits[0]
			if o.assnOf(other.Var()) == litAssn(other) {
				i++
				continue
			}
			replaced := false
			for j := 2; j < len(cl.lits); j++ {
				cand := cl.lits[j]
				assn := o.assnOf(cand.Var())
				if assn == litAssn(cand).inv() {
					continue
				}
				o.watches[cand] = append(o.watches[cand], ci)
				if assn == oUnassigned {
					o.heapTouch(cand)
				}
				watches[i], watches[len(watches)-1] = watches[len(watches)-1], watches[i]
				watches = watches[:len(watches)-1]
				o.watches[neg] = watches
				cl.lits[1], cl.lits[j] = cl.lits[j], cl.lits[1]
				replaced = true
				break
			}
			if replaced {
				continue
			}
			i++
			if o.assnOf(other.Var()) != oUnassigned {
				return false
			}
			o.assignments[other.Var()] = litAssn(other)
			o.trail = append(o.trail, other)
			o.heapRemoveBothPolarities(other.Var())
		}
	}
	return true
}

// resolveConflict flips the most recently made non-assumption decision
// that hasn't been tried both ways yet, undoing everything implied
// since. Assumption decisions are always a prefix of o.decisions (they
// are pushed before any ordinary decision in one search call) so this
// never needs to touch them. It reports whether a flip was available.
func (o *refOracle) resolveConflict() bool {
	for i := len(o.decisions) - 1; i >= 0; i-- {
		d := o.decisions[i]
		if d.assumption {
			continue
		}
		if o.assignments[d.lit.Var()]&4 != 0 {
			continue // already tried both ways
		}
		o.undoTo(d.implicationIdx)
		flipped := d.lit.Neg()
		o.assignments[flipped.Var()] = litAssn(flipped) | 4
		o.trail = append(o.trail, flipped)
		o.heapRemoveBothPolarities(flipped.Var())
		o.decisions = o.decisions[:i+1]
		o.decisions[i].lit = flipped
		o.propIndex = d.implicationIdx
		return true
	}
	return false
}

// undoTo rolls the trail back to length idx, restoring every undone
// literal to unassigned and back into the decision heap.
func (o *refOracle) undoTo(idx int) {
	for i := len(o.trail) - 1; i >= idx; i-- {
		l := o.trail[i]
		o.assignments[l.Var()] = oUnassigned
		o.heapPush(l)
	}
	o.trail = o.trail[:idx]
}

func (o *refOracle) heapTouch(l Lit) {
	if _, ok := o.heap.pos[l]; !ok {
		o.heapPush(l)
	}
}

func (o *refOracle) heapPush(l Lit) {
	if _, ok := o.heap.pos[l]; ok {
		return
	}
	heap.Push(&o.heap, l)
}

func (o *refOracle) heapPop() (Lit, bool) {
	if o.heap.Len() == 0 {
		return 0, false
	}
	return heap.Pop(&o.heap).(Lit), true
}

func (o *refOracle) heapRemoveBothPolarities(v Var) {
	pos := NewLit(v, false)
	neg := NewLit(v, true)
	if i, ok := o.heap.pos[pos]; ok {
		heap.Remove(&o.heap, i)
	}
	if i, ok := o.heap.pos[neg]; ok {
		heap.Remove(&o.heap, i)
	}
}

// oracleHeap is a container/heap max-heap over undecided literals,
// ordered by current watch-list length — saturday.go's litHeap
// unchanged in shape, reused here for decision-literal selection
// instead of gate-rarity selection (compare index.go's rarestHeap,
// the same structure inverted into a min-heap).
type oracleHeap struct {
	o     *refOracle
	items []Lit
	pos   map[Lit]int
}

func (h *oracleHeap) Len() int { return len(h.items) }

func (h *oracleHeap) Less(i, j int) bool {
	li, lj := h.items[i], h.items[j]
	return len(h.o.watches[li]) > len(h.o.watches[lj])
}

func (h *oracleHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i]] = i
	h.pos[h.items[j]] = j
}

func (h *oracleHeap) Push(x interface{}) {
	l := x.(Lit)
	h.pos[l] = len(h.items)
	h.items = append(h.items, l)
}

func (h *oracleHeap) Pop() interface{} {
	n := len(h.items)
	l := h.items[n-1]
	h.items = h.items[:n-1]
	delete(h.pos, l)
	return l
}
