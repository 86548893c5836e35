package gategraph

import "sort"

// sortedUniqueLits returns the distinct literals of lits in ascending
// order. The recognizer represents every "set of literals" in the
// spec (S, T, candidate intersections, input sets) this way instead of
// as a Go map, so that iteration order — and therefore gate commit
// order and queue order — is deterministic given the input and
// config, as spec.md §5 and invariant 7 of §8 require. The original
// achieves the same determinism with std::set<Lit>'s total order.
func sortedUniqueLits(lits []Lit) []Lit {
	if len(lits) == 0 {
		return nil
	}
	cp := make([]Lit, len(lits))
	copy(cp, lits)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })
	out := cp[:1]
	for _, l := range cp[1:] {
		if l != out[len(out)-1] {
			out = append(out, l)
		}
	}
	return out
}

// litSetsEqual reports whether two already-sorted-and-deduped literal
// sets are equal.
func litSetsEqual(a, b []Lit) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// litSetContains reports whether l is present in a sorted, deduped
// literal set.
func litSetContains(set []Lit, l Lit) bool {
	i := sort.Search(len(set), func(i int) bool { return set[i] >= l })
	return i < len(set) && set[i] == l
}

// litSetIntersect returns the literals common to both sorted, deduped
// sets, preserving order.
func litSetIntersect(a, b []Lit) []Lit {
	var out []Lit
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return out
}
