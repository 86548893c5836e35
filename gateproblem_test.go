package gategraph

import "testing"

func TestGateProblemAddGateAndLookup(t *testing.T) {
	o, a := LitFromDIMACS(1), LitFromDIMACS(2)
	gp := NewGateProblem(3)

	if _, ok := gp.Gate(o.Var()); ok {
		t.Fatal("expected no gate before addGate")
	}

	fwd := []*Clause{newClause(1, []Lit{o.Neg(), a})}
	bwd := []*Clause{newClause(2, []Lit{o, a.Neg()})}
	gp.addGate(o, fwd, bwd, []Lit{a}, RuleMonotone)

	if gp.GateCount() != 1 {
		t.Fatalf("GateCount() = %d, want 1", gp.GateCount())
	}
	if gp.MonotoneCount() != 1 {
		t.Fatalf("MonotoneCount() = %d, want 1", gp.MonotoneCount())
	}
	if gp.RuleCounts().Monotone != 1 {
		t.Fatalf("RuleCounts().Monotone = %d, want 1", gp.RuleCounts().Monotone)
	}

	g, ok := gp.Gate(o.Var())
	if !ok {
		t.Fatal("expected a gate for o")
	}
	if g.NotMono {
		t.Fatal("expected NotMono = false")
	}
	if g.Rule != RuleMonotone {
		t.Fatalf("Rule = %v, want RuleMonotone", g.Rule)
	}
	if len(g.Inp) != 1 || g.Inp[0] != a {
		t.Fatalf("Inp = %v, want [%v]", g.Inp, a)
	}
}

func TestGateProblemNormalizeRoots(t *testing.T) {
	o1, o2 := LitFromDIMACS(1), LitFromDIMACS(2)
	gp := NewGateProblem(2)
	gp.addRoot(newClause(1, []Lit{o1}))
	gp.addRoot(newClause(2, []Lit{o2}))

	if gp.RootCount() != 2 {
		t.Fatalf("RootCount() = %d, want 2", gp.RootCount())
	}
	if gp.HasArtificialRoot() {
		t.Fatal("expected no artificial root yet")
	}

	gp.NormalizeRoots()

	if !gp.HasArtificialRoot() {
		t.Fatal("expected an artificial root after NormalizeRoots")
	}
	if gp.RootCount() != 1 {
		t.Fatalf("RootCount() after NormalizeRoots = %d, want 1", gp.RootCount())
	}
	if gp.NVars() != 3 {
		t.Fatalf("NVars() after NormalizeRoots = %d, want 3", gp.NVars())
	}
	root := gp.ArtificialRoot()
	if len(root) != 1 {
		t.Fatalf("ArtificialRoot() = %v, want one literal", root)
	}
	g, ok := gp.Gate(root[0].Var())
	if !ok {
		t.Fatal("expected a gate for the artificial root variable")
	}
	if len(g.Fwd) != 2 {
		t.Fatalf("artificial root gate has %d fwd clauses, want 2", len(g.Fwd))
	}
}

func TestGateProblemNormalizeRootsTwicePanics(t *testing.T) {
	gp := NewGateProblem(1)
	gp.addRoot(newClause(1, []Lit{LitFromDIMACS(1)}))
	gp.NormalizeRoots()

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic on the second NormalizeRoots call")
		}
	}()
	gp.NormalizeRoots()
}
