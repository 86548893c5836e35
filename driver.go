package gategraph

import (
	"context"
	"time"
)

// Driver schedules the recognizer: it seeds candidate output literals
// from unit clauses, runs the per-literal acceptance pipeline over
// them, and optionally keeps widening the candidate set by picking the
// rarest remaining literal, for up to Config.Tries rounds (spec.md
// §4.5, "Driver/Scheduler"). It is the Go counterpart of
// GateAnalyzer's constructor plus its two analyze() overloads.
type Driver struct {
	cfg        Config
	problem    *Problem
	index      *clauseIndex
	mono       []int
	oracle     Oracle
	activation *activationPool
	gp         *GateProblem

	ctx      context.Context
	deadline time.Time
	timedOut bool
}

// NewDriver prepares a driver for problem using cfg. If oracle is nil
// and either cfg.Semantic or cfg.Lookahead is set, a reference DPLL
// oracle is created — VE decomposition's functional check always
// needs one, independent of whether the top-level semantic checker is
// enabled, matching GateAnalyzer's solver member being constructed
// unconditionally. When cfg.Holistic is also set, the whole problem is
// loaded into it up front instead of only the per-call activation-gated
// definitions (spec.md §4.3).
func NewDriver(problem *Problem, cfg Config, oracle Oracle) *Driver {
	if oracle == nil && (cfg.Semantic || cfg.Lookahead) {
		oracle = newRefOracle(cfg.Debugf)
	}

	d := &Driver{
		cfg:        cfg,
		problem:    problem,
		index:      newClauseIndex(problem.NVars()),
		mono:       make([]int, 2*(problem.NVars()+1)),
		oracle:     oracle,
		activation: newActivationPool(problem.NVars()),
		gp:         NewGateProblem(problem.NVars()),
	}

	if oracle != nil && cfg.Holistic {
		for _, c := range problem.Clauses() {
			oracle.AddClause(c.Lits())
		}
	}

	return d
}

// HasTimeout reports whether the most recent Analyze call stopped
// early because Config.Timeout (or the caller's context) elapsed
// before the driver ran out of work.
func (d *Driver) HasTimeout() bool {
	return d.timedOut
}

// Analyze runs the recognizer to completion (or until ctx is done or
// Config.Timeout elapses) and returns the accumulated GateProblem.
func (d *Driver) Analyze(ctx context.Context) *GateProblem {
	if ctx == nil {
		ctx = context.Background()
	}
	if d.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.cfg.Timeout)
		defer cancel()
	}
	d.ctx = ctx
	d.index.build(d.problem.Clauses())

	seed := d.seedRoots()

	if !d.cfg.Intensify {
		d.runOnce(seed, d.cfg.Patterns, d.cfg.Semantic, d.cfg.Lookahead)
	} else {
		for _, m := range intensifyModes(d.cfg) {
			if d.stopped() {
				break
			}
			q := append([]Lit(nil), seed...)
			d.runOnce(q, m.patterns, m.semantic, m.lookahead)
		}
	}

	return d.gp
}

// seedRoots scans the problem for unit clauses, commits each as a
// root, retires it from the index, and returns the literals they
// assert as the initial candidate queue (GateAnalyzer::analyze's
// unit-clause seeding loop).
func (d *Driver) seedRoots() []Lit {
	var queue []Lit
	var units []*Clause
	for _, c := range d.problem.Clauses() {
		if c.Len() == 1 {
			d.gp.addRoot(c)
			units = append(units, c)
			queue = append(queue, c.Lits()[0])
		}
	}
	d.index.retireAll(units)
	return queue
}

// runOnce drains queue through the acceptance pipeline, then, for up
// to Config.Tries rounds, promotes the clauses touching the rarest
// remaining literal to roots and drains the literals they mention
// through the pipeline too (GateAnalyzer::analyze(), clause selection
// loop).
func (d *Driver) runOnce(queue []Lit, patterns, semantic, lookahead bool) {
	d.analyzeQueue(queue, patterns, semantic, lookahead)

	for k := 0; k < d.cfg.Tries; k++ {
		if d.stopped() {
			return
		}
		lit, ok := d.index.rarestLiteral()
		if !ok {
			break
		}
		clauses := append([]*Clause(nil), d.index.at(lit)...)

		var next []Lit
		for _, c := range clauses {
			next = append(next, c.Lits()...)
			d.gp.addRoot(c)
		}
		d.index.retireAll(clauses)
		d.analyzeQueue(next, patterns, semantic, lookahead)
	}
}

// analyzeQueue runs the core per-literal acceptance pipeline over
// queue, exactly one GateAnalyzer::analyze(set<Lit>&) invocation's
// worth of work: every literal entering the queue is counted as used
// (spec.md §8 invariant "a CNF of one unit yields mono(l)=1 though it
// defines no gate"), then each candidate output o is tested for a
// blocked pair (directly, or rescued by VE decomposition), and
// accepted as a gate if it is monotone, matches a syntactic pattern,
// or passes the semantic check.
func (d *Driver) analyzeQueue(queue []Lit, patterns, semantic, lookahead bool) {
	for _, l := range queue {
		d.mono[l]++
	}

	stack := append([]Lit(nil), queue...)
	for len(stack) > 0 {
		if d.stopped() {
			return
		}
		o := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		f := d.index.at(o.Neg())
		g := d.index.at(o)
		if len(f) == 0 {
			continue
		}

		ok := blockedSets(o, f, g)
		usedVE := false
		if !ok && lookahead {
			ok = d.isBlockedAfterVE(o, f, g)
			usedVE = ok
		}
		if !ok {
			continue
		}

		monoO := d.mono[o] == 0 || d.mono[o.Neg()] == 0

		var s []Lit
		for _, c := range f {
			for _, l := range c.Lits() {
				if l != o.Neg() {
					s = append(s, l)
				}
			}
		}
		s = sortedUniqueLits(s)

		var t []Lit
		if !monoO {
			for _, c := range g {
				for _, l := range c.Lits() {
					if l != o {
						t = append(t, l.Neg())
					}
				}
			}
			t = sortedUniqueLits(t)
		}

		accepted := true
		var rule AcceptRule
		switch {
		case monoO:
			rule = RuleMonotone
		case patterns && litSetsEqual(s, t) && fullPattern(f, g, s):
			rule = RulePattern
		case semantic && d.semanticCheck(o, f, g):
			rule = RuleSemantic
		default:
			accepted = false
		}
		if !accepted {
			continue
		}

		d.gp.addGate(o, f, g, s, rule)
		if usedVE {
			d.gp.noteVE()
		}
		for _, l := range s {
			d.mono[l]++
			if !monoO {
				d.mono[l.Neg()]++
			}
		}
		stack = append(stack, s...)

		d.index.retireAll(f)
		d.index.retireAll(g)
	}
}

func (d *Driver) stopped() bool {
	if d.timedOut {
		return true
	}
	if d.ctx != nil && d.ctx.Err() != nil {
		d.timedOut = true
		return true
	}
	return false
}

// intensifyMode is one escalation step of Config.Intensify: patterns
// only, then plus semantic, then plus VE decomposition, restricted to
// whichever of those the caller actually enabled in cfg.
type intensifyMode struct {
	patterns  bool
	semantic  bool
	lookahead bool
}

// intensifyModes builds the escalating sequence of acceptance power
// the driver runs through under Config.Intensify, one full seed+tries
// pass per mode over the same root seed, each starting from the index
// state the previous mode left behind. This generalizes
// GateRecognitionMethod::IntensifyPS (patterns, then patterns+semantic)
// referenced in candy's option handling to also cover lookahead/VE,
// and is a resolved design decision (DESIGN.md) since the retained
// original source does not spell out VE's place in the escalation.
func intensifyModes(cfg Config) []intensifyMode {
	var modes []intensifyMode
	if cfg.Patterns {
		modes = append(modes, intensifyMode{patterns: true})
	}
	if cfg.Semantic {
		modes = append(modes, intensifyMode{patterns: cfg.Patterns, semantic: true})
	}
	if cfg.Lookahead {
		modes = append(modes, intensifyMode{
			patterns:  cfg.Patterns,
			semantic:  cfg.Semantic,
			lookahead: true,
		})
	}
	if len(modes) == 0 {
		modes = append(modes, intensifyMode{})
	}
	return modes
}
