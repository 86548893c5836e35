package gategraph

// AcceptRule identifies which recognizer capability accepted a gate:
// the pipeline is a short, flat dispatch over a fixed set of rule
// tags rather than a class hierarchy (spec.md §9, "Polymorphism over
// rules").
type AcceptRule int

const (
	// RuleMonotone means the candidate was pure in the partial
	// structure (mono(o)=0 or mono(¬o)=0): no pattern or semantic
	// check was consulted.
	RuleMonotone AcceptRule = iota
	// RulePattern means a syntactic AND/OR/complete-encoding signature
	// matched (spec.md §4.2).
	RulePattern
	// RuleSemantic means the oracle-backed functional check accepted
	// the candidate (spec.md §4.3).
	RuleSemantic
)

func (r AcceptRule) String() string {
	switch r {
	case RuleMonotone:
		return "monotone"
	case RulePattern:
		return "pattern"
	case RuleSemantic:
		return "semantic"
	default:
		return "unknown"
	}
}

// GateRecord describes one committed gate: the output literal, the
// clauses that define it in each direction, the literals the gate
// reads as input, which rule accepted it, and whether accepting it
// relied on something other than a monotone blocked pair (spec.md §3,
// "Gate").
type GateRecord struct {
	Out     Lit
	Fwd     []*Clause
	Bwd     []*Clause
	Inp     []Lit
	Rule    AcceptRule
	NotMono bool
}

// RuleCounts tallies how many committed gates each acceptance
// capability is responsible for, plus how often VE-blocked
// decomposition was the reason a candidate's blocked test passed at
// all (spec.md §6, "statistics counters per rule"). A candidate
// rescued by VE decomposition still gets its final acceptance
// attributed to whichever of Monotone/Pattern/Semantic actually fired
// on it, so VE is tracked as an independent tally rather than a fourth
// mutually-exclusive bucket.
type RuleCounts struct {
	Monotone int
	Pattern  int
	Semantic int
	VE       int
}

// IsDefined reports whether this record names an actual committed
// gate, mirroring Gate::isDefined's lit_Undef check in the original.
// A committed gate always has at least one forward clause (the
// acceptance pipeline requires f non-empty before it ever accepts), so
// the zero value — an empty Fwd — unambiguously means "no gate for
// this variable", even though the zero Lit is otherwise a valid
// literal (variable 0, positive).
func (g GateRecord) IsDefined() bool {
	return len(g.Fwd) > 0
}

// GateProblem accumulates the output of a recognizer run: the root
// clauses the driver seeded from, and one GateRecord per variable that
// turned out to be some gate's output (spec.md §3, "GateProblem").
type GateProblem struct {
	nVars          int
	roots          []*Clause
	gates          []GateRecord
	gateCount      int
	artificialRoot []Lit

	ruleCounts      RuleCounts
	semanticHits    int // oracle returned a definitive SAT/UNSAT
	semanticUnknown int // oracle returned Unknown (budget exhausted)
}

// NewGateProblem allocates an empty result for a problem with nVars
// variables.
func NewGateProblem(nVars int) *GateProblem {
	return &GateProblem{
		nVars: nVars,
		gates: make([]GateRecord, nVars+1),
	}
}

// addGate commits a gate for output literal o, accepted by rule.
// Matches GateProblem::addGate: fwd/bwd/inp are appended, not
// replaced, though in practice every variable is committed at most
// once by the driver.
func (gp *GateProblem) addGate(o Lit, fwd, bwd []*Clause, inp []Lit, rule AcceptRule) {
	gp.growTo(o.Var())
	gp.gateCount++
	g := &gp.gates[o.Var()]
	g.Out = o
	g.Rule = rule
	g.NotMono = rule != RuleMonotone
	g.Fwd = append(g.Fwd, fwd...)
	g.Bwd = append(g.Bwd, bwd...)
	g.Inp = append(g.Inp, inp...)

	switch rule {
	case RuleMonotone:
		gp.ruleCounts.Monotone++
	case RulePattern:
		gp.ruleCounts.Pattern++
	case RuleSemantic:
		gp.ruleCounts.Semantic++
	}
}

// noteVE records that VE-blocked decomposition (spec.md §4.4) was the
// reason a just-committed candidate's blocked test passed at all,
// independent of which rule then accepted it.
func (gp *GateProblem) noteVE() {
	gp.ruleCounts.VE++
}

// noteSemanticCall records one semantic-checker oracle call's outcome
// into the conflict histogram: a definitive SAT/UNSAT answer counts as
// successful, an Unknown (budget exhausted) counts as unsuccessful
// (spec.md §7, "counted in the unsuccessful-conflicts histogram").
func (gp *GateProblem) noteSemanticCall(result OracleResult) {
	if result == OracleUnknown {
		gp.semanticUnknown++
	} else {
		gp.semanticHits++
	}
}

// RuleCounts returns how many committed gates each acceptance rule is
// responsible for, plus the VE-decomposition tally.
func (gp *GateProblem) RuleCounts() RuleCounts {
	return gp.ruleCounts
}

// SemanticHistogram returns the number of semantic-checker oracle
// calls that returned a definitive answer versus Unknown.
func (gp *GateProblem) SemanticHistogram() (successful, unsuccessful int) {
	return gp.semanticHits, gp.semanticUnknown
}

func (gp *GateProblem) growTo(v Var) {
	for Var(len(gp.gates)) <= v {
		gp.gates = append(gp.gates, GateRecord{})
	}
}

func (gp *GateProblem) addRoot(c *Clause) {
	gp.roots = append(gp.roots, c)
}

// GateCount returns the number of committed gates.
func (gp *GateProblem) GateCount() int {
	return gp.gateCount
}

// MonotoneCount returns the number of committed gates accepted as
// monotone, i.e. without consulting the pattern or semantic checkers.
func (gp *GateProblem) MonotoneCount() int {
	n := 0
	for _, g := range gp.gates {
		if g.IsDefined() && !g.NotMono {
			n++
		}
	}
	return n
}

// RootCount returns the number of top-level (root) clauses.
func (gp *GateProblem) RootCount() int {
	return len(gp.roots)
}

// Roots returns the top-level clauses of the recognized problem.
func (gp *GateProblem) Roots() []*Clause {
	return gp.roots
}

// Gate looks up the committed gate for variable v, if any.
func (gp *GateProblem) Gate(v Var) (GateRecord, bool) {
	if v < 0 || int(v) >= len(gp.gates) {
		return GateRecord{}, false
	}
	g := gp.gates[v]
	return g, g.IsDefined()
}

// NVars returns the variable count of the underlying problem.
func (gp *GateProblem) NVars() int {
	return gp.nVars
}

// RootLiterals returns the distinct literals appearing across all
// root clauses, sorted (GateProblem::getRootLiterals).
func (gp *GateProblem) RootLiterals() []Lit {
	var lits []Lit
	for _, c := range gp.roots {
		lits = append(lits, c.Lits()...)
	}
	return sortedUniqueLits(lits)
}

// HasArtificialRoot reports whether NormalizeRoots has run.
func (gp *GateProblem) HasArtificialRoot() bool {
	return len(gp.artificialRoot) > 0
}

// ArtificialRoot returns the synthetic root clause introduced by
// NormalizeRoots, if any.
func (gp *GateProblem) ArtificialRoot() []Lit {
	return gp.artificialRoot
}

// Stats summarizes a recognizer run for reporting and tests,
// including the per-rule acceptance counters and the semantic-check
// conflict histogram spec.md §6 requires of the recognizer's output.
type Stats struct {
	NVars     int
	NClauses  int
	NGates    int
	NMonotone int
	NRoots    int
	Rules     RuleCounts

	// SemanticSuccessful and SemanticUnsuccessful are the conflict
	// histogram buckets: how many semantic-checker oracle calls
	// returned a definitive SAT/UNSAT answer versus Unknown (budget
	// exhausted).
	SemanticSuccessful   int
	SemanticUnsuccessful int
}

// Stats computes a snapshot summary of the result.
func (gp *GateProblem) Stats(nClauses int) Stats {
	successful, unsuccessful := gp.SemanticHistogram()
	return Stats{
		NVars:                gp.nVars,
		NClauses:             nClauses,
		NGates:               gp.GateCount(),
		NMonotone:            gp.MonotoneCount(),
		NRoots:               gp.RootCount(),
		Rules:                gp.RuleCounts(),
		SemanticSuccessful:   successful,
		SemanticUnsuccessful: unsuccessful,
	}
}

// NormalizeRoots collapses every root clause into a single fresh
// artificial root variable defined as their conjunction, so that
// callers that expect exactly one root (e.g. a pruned-problem walk)
// can rely on it. It introduces one new variable, matching
// GateProblem::normalizeRoots; calling it twice is a programmer error.
func (gp *GateProblem) NormalizeRoots() {
	if gp.HasArtificialRoot() {
		panic("NormalizeRoots called twice")
	}
	root := Var(gp.nVars)
	gp.nVars++
	gp.growTo(root)

	var inp []Lit
	var fwd []*Clause
	for i, c := range gp.roots {
		lits := append(append([]Lit(nil), c.Lits()...), NewLit(root, true))
		inp = append(inp, c.Lits()...)
		fwd = append(fwd, newClause(-(i + 1), lits))
	}
	inp = sortedUniqueLits(inp)

	gp.gateCount++
	gp.gates[root] = GateRecord{
		Out: NewLit(root, false),
		Fwd: fwd,
		Inp: inp,
	}

	gp.artificialRoot = []Lit{NewLit(root, false)}
	gp.roots = []*Clause{newClause(-1, gp.artificialRoot)}
}
