package gategraph

// isBlockedAfterVE decides whether the blocked-pair test for (o, f, g)
// can be rescued by a variable-elimination decomposition: o is not
// itself a gate output, but resolving f against g on o and then
// eliminating a second variable from the result reduces to a blocked
// pair after all. Precondition: ~o occurs in every clause of f and o
// occurs in every clause of g, matching isBlockedAfterVE's precondition
// in GateAnalyzer.cc.
//
// The original hardcodes pure2 and pure3 to false, which makes the
// monotonic branch of the candidate check dead code (spec.md §9,
// "VE-blocked purity flags"); this recognizer computes all three.
func (d *Driver) isBlockedAfterVE(o Lit, f, g []*Clause) bool {
	threshold := d.cfg.LookaheadThreshold

	var resolvents [][]Lit
	for _, a := range f {
		for _, b := range g {
			if !blockedPair(o, a, b) {
				res := resolve(a, b, o.Var())
				resolvents = append(resolvents, res)
			}
			if len(resolvents) > threshold {
				return false
			}
		}
	}
	if len(resolvents) == 0 {
		return true // the set is trivially blocked
	}

	candidates := sortedUniqueLits(resolvents[0])
	for _, resolvent := range resolvents {
		if len(candidates) == 0 {
			break
		}
		var next []Lit
		rvars := make(map[Var]bool, len(resolvent))
		for _, l := range resolvent {
			rvars[l.Var()] = true
		}
		for _, c := range candidates {
			if rvars[c.Var()] {
				next = append(next, c)
				for _, l := range resolvent {
					if l.Var() == c.Var() {
						next = append(next, l)
					}
				}
			}
		}
		candidates = sortedUniqueLits(next)
	}
	if len(candidates) == 0 {
		return false // no candidate output
	}

	inputVars := make(map[Var]bool)
	for _, c := range f {
		for _, l := range c.Lits() {
			if l.Var() != o.Var() {
				inputVars[l.Var()] = true
			}
		}
	}
	for _, c := range g {
		for _, l := range c.Lits() {
			if l.Var() != o.Var() {
				inputVars[l.Var()] = true
			}
		}
	}

	for _, cand := range candidates {
		fwd, bwd := d.candidateDefinition(cand, f, g, inputVars)
		if len(fwd) == 0 {
			continue
		}
		if !blockedSets(cand, fwd, bwd) {
			continue
		}

		pure1 := d.mono[cand] == 0
		pure2 := d.pureWithin(cand, f, g)
		pure3 := d.pureInIndex(cand, f, g, fwd, bwd)
		monotonic := pure1 && pure2 && pure3

		functional := false
		if !monotonic {
			functional = d.semanticCheck(cand, fwd, bwd)
		}
		if !monotonic && !functional {
			continue
		}

		var resFwd, resBwd [][]Lit
		for _, res := range resolvents {
			if containsVarPolarity(res, cand.Neg()) {
				resBwd = append(resBwd, res)
			} else {
				resFwd = append(resFwd, res)
			}
		}
		if blockedLitSets(cand.Neg(), resFwd, bwd) && blockedClauseLitSets(cand.Neg(), fwd, resBwd) {
			return true
		}
	}

	return false
}

// candidateDefinition collects, from the literal's current occurrence
// index, the clauses that define cand in terms of the same input
// variables as (o, f, g) — skipping clauses that already belong to
// f or g, and skipping clauses that mention a variable outside
// inputVars.
func (d *Driver) candidateDefinition(cand Lit, f, g []*Clause, inputVars map[Var]bool) (fwd, bwd []*Clause) {
	for _, lit := range [2]Lit{cand, cand.Neg()} {
		for _, c := range d.index.at(lit) {
			if containsClause(f, c) || containsClause(g, c) {
				continue
			}
			subset := true
			for _, l := range c.Lits() {
				if !inputVars[l.Var()] {
					subset = false
					break
				}
			}
			if !subset {
				continue
			}
			if lit == cand.Neg() {
				fwd = append(fwd, c)
			} else {
				bwd = append(bwd, c)
			}
		}
	}
	return fwd, bwd
}

// pureWithin reports whether cand occurs in only one polarity across
// the clause sets of the base blocked pair being decomposed.
func (d *Driver) pureWithin(cand Lit, f, g []*Clause) bool {
	pos, neg := false, false
	for _, c := range f {
		if c.Contains(cand) {
			pos = true
		}
		if c.Contains(cand.Neg()) {
			neg = true
		}
	}
	for _, c := range g {
		if c.Contains(cand) {
			pos = true
		}
		if c.Contains(cand.Neg()) {
			neg = true
		}
	}
	return !pos || !neg
}

// pureInIndex reports whether cand occurs in only one polarity across
// the remaining, not-yet-retired part of the formula, excluding the
// clauses already accounted for by f, g, fwd, and bwd.
func (d *Driver) pureInIndex(cand Lit, f, g, fwd, bwd []*Clause) bool {
	skip := func(c *Clause) bool {
		return containsClause(f, c) || containsClause(g, c) ||
			containsClause(fwd, c) || containsClause(bwd, c)
	}
	posCount, negCount := 0, 0
	for _, c := range d.index.at(cand) {
		if !skip(c) {
			posCount++
		}
	}
	for _, c := range d.index.at(cand.Neg()) {
		if !skip(c) {
			negCount++
		}
	}
	return posCount == 0 || negCount == 0
}

func containsClause(cs []*Clause, target *Clause) bool {
	for _, c := range cs {
		if c == target {
			return true
		}
	}
	return false
}

func containsVarPolarity(lits []Lit, l Lit) bool {
	for _, x := range lits {
		if x == l {
			return true
		}
	}
	return false
}

// blockedLitSets is blockedSets generalized to resolvents, which are
// plain literal slices rather than indexed *Clause values.
func blockedLitSets(o Lit, f [][]Lit, g []*Clause) bool {
	for _, a := range f {
		for _, b := range g {
			if !blockedLitClause(o, a, b.Lits()) {
				return false
			}
		}
	}
	return true
}

// blockedClauseLitSets is blockedSets generalized to the case where f
// is indexed clauses and g is a set of resolvents.
func blockedClauseLitSets(o Lit, f []*Clause, g [][]Lit) bool {
	for _, a := range f {
		for _, b := range g {
			if !blockedLitClause(o, a.Lits(), b) {
				return false
			}
		}
	}
	return true
}

func blockedLitClause(o Lit, a, b []Lit) bool {
	for _, l := range a {
		if l == o {
			continue
		}
		if containsVarPolarity(b, l.Neg()) {
			return true
		}
	}
	return false
}
