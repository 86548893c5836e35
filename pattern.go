package gategraph

import "math/bits"

// fixedClauseSize reports whether every clause in f has exactly n
// literals.
func fixedClauseSize(f []*Clause, n int) bool {
	for _, c := range f {
		if c.Len() != n {
			return false
		}
	}
	return true
}

// isPowerOfTwo reports whether n is a positive power of two.
func isPowerOfTwo(n int) bool {
	return n > 0 && bits.OnesCount(uint(n)) == 1
}

// completeEncoding recognizes a fully-enumerated 2^n-clause encoding:
// fwd and bwd are equal in size, together they total exactly 2^n
// clauses where n is the number of distinct input variables, and
// every input variable appears in both polarities across inputs.
// inputs must be sorted and deduped (see sortedUniqueLits).
func completeEncoding(fwd, bwd []*Clause, inputs []Lit) bool {
	vs := make(map[Var]bool, len(inputs))
	for _, l := range inputs {
		vs[l.Var()] = true
	}
	return len(fwd) == len(bwd) &&
		isPowerOfTwo(2*len(fwd)) &&
		2*len(fwd) == 1<<uint(len(vs)) &&
		2*len(vs) == len(inputs)
}

// fullPattern recognizes the syntactic signatures of a fully encoded
// AND/OR gate or a complete encoding, given that fwd blocks bwd on the
// output literal and that fwd/bwd already constrain exactly the same
// input variables in opposite polarity (spec.md §4.2). inputs must be
// sorted and deduped (see sortedUniqueLits).
func fullPattern(fwd, bwd []*Clause, inputs []Lit) bool {
	fullOr := len(fwd) == 1 && fixedClauseSize(bwd, 2)
	fullAnd := len(bwd) == 1 && fixedClauseSize(fwd, 2)
	return fullOr || fullAnd || completeEncoding(fwd, bwd, inputs)
}
