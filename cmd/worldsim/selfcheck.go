package main

import (
	"fmt"
	"io"
	"math"

	"github.com/san-kum/worldsim/internal/chart"
	"github.com/san-kum/worldsim/internal/dynamo"
	"github.com/san-kum/worldsim/internal/world"
)

// selfCheck exercises the primitives and a full default run before any
// figure is printed, so a broken build announces itself at the top of
// the output. Faults are reported but do not abort.
func selfCheck(w io.Writer) int {
	checks, faults := 0, 0
	check := func(name string, ok bool) {
		checks++
		if !ok {
			faults++
			fmt.Fprintf(w, "self-check fault: %s\n", name)
		}
	}
	near := func(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

	check("clip before switch", dynamo.Clip(1, 2, 1970, 1969) == 1)
	check("clip after switch", dynamo.Clip(1, 2, 1970, 1971) == 2)

	tbl := []float64{.2, .4, .6, .8, 1}
	v, err := dynamo.Table(tbl, 1, 0, 4, 1)
	check("table on sample point", err == nil && near(v, .4))
	v, err = dynamo.Table(tbl, 1.5, 0, 4, 1)
	check("table interpolation", err == nil && near(v, .5))
	v, err = dynamo.Tabhl(tbl, 9, 0, 4, 1)
	check("tabhl clamps high", err == nil && near(v, 1))
	_, err = dynamo.Table(tbl, 9, 0, 4, 1)
	check("table rejects out of range", err != nil)

	eng := world.New(world.DefaultConfig())
	first, err := eng.Tick()
	check("first tick", err == nil)
	check("initial population", near(first.P, 1.65e9))
	check("initial resources", near(first.NR, 900e9))

	// sample every 20th tick, like the figures do
	sampled := first
	peak := first.P
	ok := true
	for tick := 1; !eng.Completed(); tick++ {
		snap, err := eng.Tick()
		if err != nil {
			ok = false
			break
		}
		if snap.P > peak {
			peak = snap.P
		}
		if tick%20 == 0 {
			sampled = snap
		}
	}
	check("run to completion", ok)
	check("run reaches horizon", sampled.Time > 2099.5)
	check("population peaks mid-century", chart.Column(peak, 0, 8e9, chart.Width) == 40)
	check("final population", chart.Column(sampled.P, 0, 8e9, chart.Width) == 28)
	check("final pollution ratio", chart.Column(sampled.POLR, 0, 40, chart.Width) == 4)

	fmt.Fprintf(w, "self-check: %d checks, %d faults\n", checks, faults)
	return faults
}
