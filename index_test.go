package gategraph

import "testing"

func TestClauseIndexBuildAndRetire(t *testing.T) {
	a, b, c := LitFromDIMACS(1), LitFromDIMACS(2), LitFromDIMACS(3)
	c1 := newClause(1, []Lit{a, b})
	c2 := newClause(2, []Lit{a.Neg(), c})
	unit := newClause(3, []Lit{c})

	idx := newClauseIndex(3)
	idx.build([]*Clause{c1, c2, unit})

	if idx.empty() {
		t.Fatal("expected a non-empty index after build")
	}
	if len(idx.at(a)) != 1 || idx.at(a)[0] != c1 {
		t.Fatalf("at(a) = %v, want [c1]", idx.at(a))
	}
	// Unit clauses are skipped by build.
	if len(idx.at(c)) != 1 {
		t.Fatalf("at(c) = %v, want only c2 (unit clause must be skipped)", idx.at(c))
	}

	idx.retire(c1)
	if len(idx.at(a)) != 0 {
		t.Fatalf("at(a) after retiring c1 = %v, want empty", idx.at(a))
	}
	if len(idx.at(b)) != 0 {
		t.Fatalf("at(b) after retiring c1 = %v, want empty", idx.at(b))
	}

	idx.retire(c2)
	if !idx.empty() {
		t.Fatal("expected an empty index after retiring every clause")
	}
}

func TestClauseIndexRarestLiteral(t *testing.T) {
	a, b, c := LitFromDIMACS(1), LitFromDIMACS(2), LitFromDIMACS(3)
	idx := newClauseIndex(3)
	idx.build([]*Clause{
		newClause(1, []Lit{a, b}),
		newClause(2, []Lit{a, c}),
		newClause(3, []Lit{a, b, c}),
	})

	// a appears in all three clauses, b in two, c in two: the rarest
	// literal must be b or c (tied at 2), never a (3).
	l, ok := idx.rarestLiteral()
	if !ok {
		t.Fatal("expected a rarest literal in a non-empty index")
	}
	if l == a {
		t.Fatalf("rarestLiteral() = %v, want b or c, not the most frequent literal a", l)
	}
}

func TestClauseIndexRetireAllDoesNotAliasInput(t *testing.T) {
	a, b := LitFromDIMACS(1), LitFromDIMACS(2)
	c1 := newClause(1, []Lit{a, b})
	idx := newClauseIndex(2)
	idx.build([]*Clause{c1})

	live := idx.at(a)
	idx.retireAll(live)
	if !idx.empty() {
		t.Fatal("expected retireAll to fully retire the clause set")
	}
}
