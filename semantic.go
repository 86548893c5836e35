package gategraph

import "context"

// semanticCheck decides whether o is functionally defined by fwd and
// bwd by querying the embedded oracle rather than inspecting syntax:
// it asserts, under a fresh activation literal alit, that every clause
// of fwd and bwd holds with its ±o literal dropped, then asks whether
// the oracle can satisfy the negation of alit. If it cannot, no
// assignment to the other variables escapes every clause, so the
// definition is right-unique (spec.md §4.3). Matches
// GateAnalyzer::semanticCheck.
//
// The constraint clauses are asserted permanently; alit is then
// permanently forced true, which makes them vacuously satisfied for
// every later query without reusing or rewriting them, mirroring the
// original's own one-shot CNFProblem-per-call idiom translated to an
// always-incremental oracle.
func (d *Driver) semanticCheck(o Lit, fwd, bwd []*Clause) bool {
	_, alit := d.activation.fresh()

	for _, group := range [2][]*Clause{fwd, bwd} {
		for _, c := range group {
			lits := make([]Lit, 0, c.Len()+1)
			lits = append(lits, alit)
			for _, l := range c.Lits() {
				if l.Var() != o.Var() {
					lits = append(lits, l)
				}
			}
			d.oracle.AddClause(lits)
		}
	}

	ctx := d.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	result := d.oracle.Solve(ctx, []Lit{alit.Neg()}, d.cfg.SemanticBudget)
	isRightUnique := result == OracleUNSAT
	d.gp.noteSemanticCall(result)

	d.oracle.AddClause([]Lit{alit})

	return isRightUnique
}
