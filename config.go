package gategraph

import "time"

// Config carries every tunable of the recognizer as an explicit value
// passed to the constructor, replacing the original's process-wide
// option singletons (spec.md §9, "Global mutable state").
type Config struct {
	// Tries is the max number of extra root-selection rounds run after
	// unit-clause seeding (spec.md §4.5 step 2). Zero means the driver
	// only processes literals reachable from unit clauses.
	Tries int

	// Patterns enables the syntactic pattern checker (spec.md §4.2).
	Patterns bool

	// Semantic enables the SAT-oracle-backed functional check
	// (spec.md §4.3).
	Semantic bool

	// Holistic, when Semantic is enabled, pre-loads the entire problem
	// into the oracle once instead of seeding it only with
	// activation-gated definition clauses per call (spec.md §4.3).
	Holistic bool

	// Lookahead (also called "decompose" in spec.md §4.4) enables the
	// VE-blocked decomposition checker.
	Lookahead bool

	// Intensify runs the escalating-mode loop: patterns-only, then
	// +semantic, then +VE, each restarting from the current
	// queue/index state (spec.md §4.5 "Intensification").
	Intensify bool

	// LookaheadThreshold bounds the number of non-tautological
	// resolvents considered in the VE-blocked checker (spec.md §4.4
	// step 1); the original hardcodes 10.
	LookaheadThreshold int

	// SemanticBudget is the per-oracle-call conflict budget; 0 means
	// unlimited (spec.md §4.3, §6).
	SemanticBudget uint

	// Timeout is the wall-clock limit for one Analyze call; zero
	// disables the deadline.
	Timeout time.Duration

	// Debugf, if non-nil, receives verbose tracing in the style of
	// saturday.go's pretty.Println(sv.unassigned) debug dumps, gated
	// behind this hook instead of a package-level verbose constant
	// since gategraph is a library, not a standalone program.
	Debugf func(format string, args ...interface{})
}

// DefaultConfig returns the recognizer's default tuning, mirroring the
// constructor defaults of src/candy/gates/GateAnalyzer.h
// (GateRecognitionOptions::opt_gr_*): no extra tries, no pattern,
// semantic, holistic, or lookahead checks, and an unbounded budget and
// timeout.
func DefaultConfig() Config {
	return Config{
		Tries:              0,
		Patterns:           false,
		Semantic:           false,
		Holistic:           false,
		Lookahead:          false,
		Intensify:          false,
		LookaheadThreshold: 10,
		SemanticBudget:     0,
		Timeout:            0,
	}
}

func (c Config) debugf(format string, args ...interface{}) {
	if c.Debugf != nil {
		c.Debugf(format, args...)
	}
}
