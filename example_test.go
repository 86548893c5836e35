package gategraph

import (
	"context"
	"fmt"
)

func ExampleDriver_Analyze() {
	// o <-> (a AND b), with o asserted as a root via the unit clause (o).
	o := LitFromDIMACS(1)
	a := LitFromDIMACS(2)
	b := LitFromDIMACS(3)

	problem, err := NewProblem(3, [][]Lit{
		{o},
		{o.Neg(), a},
		{o.Neg(), b},
		{o, a.Neg(), b.Neg()},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	d := NewDriver(problem, DefaultConfig(), nil)
	gp := d.Analyze(context.Background())

	fmt.Printf("gates: %d, roots: %d, monotone: %d\n", gp.GateCount(), gp.RootCount(), gp.MonotoneCount())
	// Output: gates: 1, roots: 1, monotone: 1
}
