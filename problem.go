package gategraph

import "fmt"

// Problem is an immutable CNF formula: a variable count and a sequence
// of clauses. It is the recognizer's sole input besides Config.
type Problem struct {
	nVars   int
	clauses []*Clause
}

// NewProblem builds a Problem from raw clauses, each a non-empty slice
// of literals over variables in [0, nVars). It rejects malformed input
// at this boundary so the recognizer itself can assume well-formedness
// (spec: "the core assumes well-formedness").
func NewProblem(nVars int, clauses [][]Lit) (*Problem, error) {
	if nVars < 0 {
		return nil, fmt.Errorf("gategraph: negative variable count %d", nVars)
	}
	p := &Problem{nVars: nVars}
	for i, lits := range clauses {
		if len(lits) == 0 {
			return nil, fmt.Errorf("gategraph: clause %d is empty", i)
		}
		for _, l := range lits {
			if int(l.Var()) >= nVars || l.Var() < 0 {
				return nil, fmt.Errorf("gategraph: clause %d references out-of-range variable %d (nVars=%d)", i, l.Var(), nVars)
			}
		}
		p.clauses = append(p.clauses, newClause(i, lits))
	}
	return p, nil
}

// NVars returns the number of problem variables.
func (p *Problem) NVars() int { return p.nVars }

// Clauses returns the problem's clauses. Callers must not mutate the
// returned slice or the clauses within it.
func (p *Problem) Clauses() []*Clause { return p.clauses }

// NClauses returns the number of clauses in the problem.
func (p *Problem) NClauses() int { return len(p.clauses) }
