// Package gategraph recognizes gate structure in a CNF formula: for
// selected output literals it finds the pair of clause sets that
// jointly encode a Boolean function of the remaining variables, the
// way Candy's GateAnalyzer does for its circuit-extraction frontend.
package gategraph

import "fmt"

// Var is a problem variable, numbered 0..N-1.
type Var int32

// Lit is a literal: a variable together with a polarity. The value is
// 2*v for the positive literal and 2*v+1 for the negated literal, so
// that negation is a single bit flip and the variable is a shift.
type Lit int32

// NewLit builds the literal for v with the given polarity (true means
// the literal is negated, matching DIMACS sign conventions).
func NewLit(v Var, negated bool) Lit {
	l := Lit(v) << 1
	if negated {
		l |= 1
	}
	return l
}

// Var returns the variable underlying l.
func (l Lit) Var() Var { return Var(l >> 1) }

// Neg returns the complementary literal.
func (l Lit) Neg() Lit { return l ^ 1 }

// Sign reports whether l is negated.
func (l Lit) Sign() bool { return l&1 != 0 }

// DIMACS returns the 1-indexed signed integer DIMACS normally uses to
// print this literal.
func (l Lit) DIMACS() int {
	n := int(l.Var()) + 1
	if l.Sign() {
		return -n
	}
	return n
}

func (l Lit) String() string {
	if l.Sign() {
		return fmt.Sprintf("-%d", l.Var()+1)
	}
	return fmt.Sprintf("%d", l.Var()+1)
}

// LitFromDIMACS converts a nonzero signed DIMACS integer into a
// literal over a zero-indexed variable space.
func LitFromDIMACS(n int) Lit {
	if n == 0 {
		panic("gategraph: zero is not a valid DIMACS literal")
	}
	if n < 0 {
		return NewLit(Var(-n-1), true)
	}
	return NewLit(Var(n-1), false)
}

// Clause is an ordered sequence of literals, treated as a set for the
// purposes of every predicate in this package (order is preserved only
// for deterministic output).
type Clause struct {
	id   int
	lits []Lit
}

// Lits returns the clause's literals. Callers must not mutate the
// returned slice.
func (c *Clause) Lits() []Lit { return c.lits }

// Len returns the number of literals in the clause.
func (c *Clause) Len() int { return len(c.lits) }

// Contains reports whether l appears in the clause.
func (c *Clause) Contains(l Lit) bool {
	for _, x := range c.lits {
		if x == l {
			return true
		}
	}
	return false
}

// ID is a stable identity for the clause within the Problem it came
// from; two distinct Clause values never share an ID.
func (c *Clause) ID() int { return c.id }

func newClause(id int, lits []Lit) *Clause {
	cp := make([]Lit, len(lits))
	copy(cp, lits)
	return &Clause{id: id, lits: cp}
}

// resolve computes the resolvent of a and b on variable v, i.e.
// (a ∪ b) \ {v, ¬v}, assuming v ∈ a (or ¬v ∈ a) and the complementary
// literal appears in b. Duplicate literals are removed; the result is
// not deduplicated against tautological pairs other than on v.
func resolve(a, b *Clause, v Var) []Lit {
	seen := make(map[Lit]bool, a.Len()+b.Len())
	var out []Lit
	for _, src := range [2]*Clause{a, b} {
		for _, l := range src.lits {
			if l.Var() == v {
				continue
			}
			if seen[l] {
				continue
			}
			seen[l] = true
			out = append(out, l)
		}
	}
	return out
}

// varSet returns the distinct variables appearing in a slice of
// literals.
func varSet(lits []Lit) map[Var]bool {
	vs := make(map[Var]bool, len(lits))
	for _, l := range lits {
		vs[l.Var()] = true
	}
	return vs
}
