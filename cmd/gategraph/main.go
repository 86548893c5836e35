package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/candysat/gategraph"
)

func main() {
	log.SetFlags(0)
	verbose := flag.Bool("v", false, "verbose mode: trace oracle queries and print one line per gate whose output is a root literal")
	tries := flag.Int("tries", 0, "extra rarest-literal selection rounds after unit-clause seeding")
	patterns := flag.Bool("patterns", false, "enable the syntactic pattern checker")
	semantic := flag.Bool("semantic", false, "enable the SAT-oracle-backed semantic checker")
	holistic := flag.Bool("holistic", false, "preload the whole problem into the oracle (requires -semantic or -lookahead)")
	lookahead := flag.Bool("lookahead", false, "enable VE-blocked decomposition")
	intensify := flag.Bool("intensify", false, "escalate patterns -> +semantic -> +lookahead")
	threshold := flag.Int("threshold", 10, "resolvent bound for VE-blocked decomposition")
	budget := flag.Uint("budget", 0, "conflict budget per oracle query (0 = unlimited)")
	timeout := flag.Duration("timeout", 0, "wall-clock limit for the whole run (0 = unlimited)")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `gategraph: recover gate structure from a CNF formula.

Usage:

  gategraph [flags] [input.cnf]

gategraph reads a single problem specification in the DIMACS CNF format
and reports the gates its recognizer finds: how many, how many were
accepted without consulting a pattern or semantic check (monotone), and
how many root clauses remain.

If no input file is given, gategraph reads from standard input.

Flags:
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	var r io.Reader = os.Stdin
	if flag.NArg() >= 1 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		r = f
	}

	problem, err := gategraph.ParseDIMACS(r)
	if err != nil {
		log.Fatalln("Error reading input file as DIMACS CNF:", err)
	}

	cfg := gategraph.DefaultConfig()
	cfg.Tries = *tries
	cfg.Patterns = *patterns
	cfg.Semantic = *semantic
	cfg.Holistic = *holistic
	cfg.Lookahead = *lookahead
	cfg.Intensify = *intensify
	cfg.LookaheadThreshold = *threshold
	cfg.SemanticBudget = *budget
	cfg.Timeout = *timeout
	if *verbose {
		cfg.Debugf = func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}
	}

	d := gategraph.NewDriver(problem, cfg, nil)
	gp := d.Analyze(context.Background())

	if d.HasTimeout() {
		fmt.Fprintln(os.Stderr, "warning: stopped early due to timeout")
	}

	stats := gp.Stats(problem.NClauses())
	fmt.Printf("vars=%d clauses=%d gates=%d monotone=%d roots=%d\n",
		stats.NVars, stats.NClauses, stats.NGates, stats.NMonotone, stats.NRoots)
	fmt.Printf("rules: monotone=%d pattern=%d semantic=%d ve=%d semantic-calls: ok=%d unknown=%d\n",
		stats.Rules.Monotone, stats.Rules.Pattern, stats.Rules.Semantic, stats.Rules.VE,
		stats.SemanticSuccessful, stats.SemanticUnsuccessful)

	if *verbose {
		for _, l := range gp.RootLiterals() {
			gate, ok := gp.Gate(l.Var())
			if !ok {
				continue
			}
			fmt.Printf("gate %s: %d fwd, %d bwd, inputs=%v, rule=%v\n",
				l, len(gate.Fwd), len(gate.Bwd), gate.Inp, gate.Rule)
		}
	}
}
