package gategraph

// blockedPair decides whether resolving a and b on var(o) yields a
// tautology: it holds iff some literal c in a (other than ¬o) has its
// negation in b. Precondition (not checked): ¬o ∈ a and o ∈ b.
func blockedPair(o Lit, a, b *Clause) bool {
	no := o.Neg()
	for _, c := range a.lits {
		if c == no {
			continue
		}
		if b.Contains(c.Neg()) {
			return true
		}
	}
	return false
}

// blockedSets lifts blockedPair to two clause sets: true iff every
// cross pair resolves to a tautology.
func blockedSets(o Lit, f, g []*Clause) bool {
	for _, a := range f {
		for _, b := range g {
			if !blockedPair(o, a, b) {
				return false
			}
		}
	}
	return true
}

// blockedAgainstSet lifts blockedPair to one clause against a set.
func blockedAgainstSet(o Lit, c *Clause, f []*Clause) bool {
	for _, a := range f {
		if !blockedPair(o, c, a) {
			return false
		}
	}
	return true
}
