package gategraph

import (
	"context"
	"testing"
)

func newTestDriver(nVars int, clauses [][]Lit) (*Driver, *Problem) {
	p, err := NewProblem(nVars, clauses)
	if err != nil {
		panic(err)
	}
	cfg := DefaultConfig()
	cfg.Lookahead = true
	cfg.Semantic = true
	d := NewDriver(p, cfg, nil)
	d.index.build(p.Clauses())
	d.ctx = context.Background()
	return d, p
}

func TestIsBlockedAfterVETriviallyBlocked(t *testing.T) {
	o, a, b := LitFromDIMACS(1), LitFromDIMACS(2), LitFromDIMACS(3)
	// Already a blocked AND-gate pair: every cross resolution is a
	// tautology, so isBlockedAfterVE must see zero resolvents and
	// return true without needing any decomposition.
	d, _ := newTestDriver(3, [][]Lit{
		{o.Neg(), a},
		{o.Neg(), b},
		{o, a.Neg(), b.Neg()},
	})
	f := d.index.at(o.Neg())
	g := d.index.at(o)

	if !d.isBlockedAfterVE(o, f, g) {
		t.Fatal("expected an already-blocked pair to be trivially rescued")
	}
}

func TestIsBlockedAfterVERejectsUnrelated(t *testing.T) {
	o, a, b, c := LitFromDIMACS(1), LitFromDIMACS(2), LitFromDIMACS(3), LitFromDIMACS(4)
	d, _ := newTestDriver(4, [][]Lit{
		{o.Neg(), a},
		{o, b},
		{o, c},
	})
	f := d.index.at(o.Neg())
	g := d.index.at(o)

	if d.isBlockedAfterVE(o, f, g) {
		t.Fatal("expected unrelated clauses not to be rescued by VE decomposition")
	}
}

// TestIsBlockedAfterVERescuesRealCandidate exercises the genuine
// decomposition path end to end: (o, f, g) is not itself blocked, but
// resolving f against g on o yields the resolvent (a, b), whose
// candidates are a and b; the first one tried, `a`, is defined by an
// external equivalence (a <-> b), sitting elsewhere in the formula, as
// a blocked (and, per pureWithin/pureInIndex, monotonic) pair — so the
// candidate search, the purity flags, and the
// final split-resolvent re-check on ¬a must all genuinely fire for
// this to return true.
func TestIsBlockedAfterVERescuesRealCandidate(t *testing.T) {
	o, a, b := LitFromDIMACS(1), LitFromDIMACS(2), LitFromDIMACS(3)
	d, _ := newTestDriver(3, [][]Lit{
		{o.Neg(), a}, // f: o -> a
		{o, b},       // g: ~o -> b
		{a.Neg(), b}, // a -> b
		{a, b.Neg()}, // ~a -> ~b  (together, a <-> b)
	})
	f := d.index.at(o.Neg())
	g := d.index.at(o)

	if blockedSets(o, f, g) {
		t.Fatal("test setup error: (o, f, g) must not be directly blocked")
	}
	if !d.isBlockedAfterVE(o, f, g) {
		t.Fatal("expected the a<->b equivalence to rescue (o, f, g) via VE decomposition")
	}
}
