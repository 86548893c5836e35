package gategraph

import "context"

// OracleResult is the three-valued outcome of an Oracle.Solve call.
type OracleResult int

const (
	// OracleSAT means the assumptions are satisfiable.
	OracleSAT OracleResult = iota
	// OracleUNSAT means the assumptions are unsatisfiable.
	OracleUNSAT
	// OracleUnknown means the call returned without an answer, e.g.
	// because its conflict budget was exhausted. The semantic checker
	// treats Unknown as "not a gate" (spec.md §7).
	OracleUnknown
)

func (r OracleResult) String() string {
	switch r {
	case OracleSAT:
		return "SAT"
	case OracleUNSAT:
		return "UNSAT"
	default:
		return "UNKNOWN"
	}
}

// Oracle is the semantic checker's collaborator: an incremental SAT
// solver that can add clauses on the fly and answer assumption-based
// queries under a conflict budget. The recognizer never inspects an
// Oracle's internals (spec.md §9, "Semantic oracle embedding").
type Oracle interface {
	// AddClause permanently asserts c. The oracle's variable count
	// grows monotonically to admit the literals in c.
	AddClause(c []Lit)

	// Solve asks whether the clause database is satisfiable under
	// assumptions, spending at most budget conflicts (0 = unlimited).
	// It must return promptly with OracleUnknown if the budget is
	// exhausted or ctx is done, rather than blocking indefinitely.
	Solve(ctx context.Context, assumptions []Lit, budget uint) OracleResult
}

// activationPool mints fresh activation literals from a variable pool
// disjoint from the problem's own variables, per spec.md §9
// ("Activation literals must be minted from a fresh variable pool
// disjoint from the problem's variables").
type activationPool struct {
	next Var
}

func newActivationPool(problemVars int) *activationPool {
	return &activationPool{next: Var(problemVars)}
}

// fresh returns a brand new variable and the literal for its positive
// polarity.
func (p *activationPool) fresh() (Var, Lit) {
	v := p.next
	p.next++
	return v, NewLit(v, false)
}
