package world

// tab is one embedded model table with its declared x-grid. The grid is
// validated against the sample count at every lookup, so a mistyped
// table here fails loudly at first use.
type tab struct {
	y          []float64
	x0, x1, dx float64
}

// The T-cards from Appendix B, keyed by the auxiliary they feed.
var (
	brmmT  = tab{[]float64{1.2, 1, .85, .75, .7, .7}, 0, 5, 1}                      // [3.1]
	nremT  = tab{[]float64{0, .15, .5, .85, 1}, 0, 1, .25}                          // [6.1]
	drmmT  = tab{[]float64{3, 1.8, 1, .8, .7, .6, .53, .5, .5, .5, .5}, 0, 5, .5}   // [11.1]
	drpmT  = tab{[]float64{.92, 1.3, 2, 3.2, 4.8, 6.8, 9.2}, 0, 60, 10}             // [12.1]
	drfmT  = tab{[]float64{30, 3, 2, 1.4, 1, .7, .6, .5, .5}, 0, 2, .25}            // [13.1]
	drcmT  = tab{[]float64{.9, 1, 1.2, 1.5, 1.9, 3}, 0, 5, 1}                       // [14.1]
	brcmT  = tab{[]float64{1.05, 1, .9, .7, .6, .55}, 0, 5, 1}                      // [16.1]
	brfmT  = tab{[]float64{0, 1, 1.6, 1.9, 2}, 0, 4, 1}                             // [17.1]
	brpmT  = tab{[]float64{1.02, .9, .7, .4, .25, .15, .1}, 0, 60, 10}              // [18.1]
	fcmT   = tab{[]float64{2.4, 1, .6, .4, .3, .2}, 0, 5, 1}                        // [20.1]
	fpciT  = tab{[]float64{.5, 1, 1.4, 1.7, 1.9, 2.05, 2.2}, 0, 6, 1}               // [21.1]
	cimT   = tab{[]float64{.1, 1, 1.8, 2.4, 2.8, 3}, 0, 5, 1}                       // [26.1]
	fpmT   = tab{[]float64{1.02, .9, .65, .35, .2, .1, .05}, 0, 60, 10}             // [28.1]
	polcmT = tab{[]float64{.05, 1, 3, 5.4, 7.4, 8}, 0, 5, 1}                        // [32.1]
	polatT = tab{[]float64{.6, 2.5, 5, 8, 11.5, 15.5, 20}, 0, 60, 10}               // [34.1]
	cfifrT = tab{[]float64{1, .6, .3, .15, .1}, 0, 2, .5}                           // [36.1]
	qlmT   = tab{[]float64{.2, 1, 1.7, 2.3, 2.7, 2.9}, 0, 5, 1}                     // [38.1]
	qlcT   = tab{[]float64{2, 1.3, 1, .75, .55, .45, .38, .3, .25, .22, .2}, 0, 5, .5} // [39.1]
	qlfT   = tab{[]float64{0, 1, 1.8, 2.4, 2.7}, 0, 4, 1}                           // [40.1]
	qlpT   = tab{[]float64{1.04, .85, .6, .3, .15, .05, .02}, 0, 60, 10}            // [41.1]
	ciqrT  = tab{[]float64{.7, .8, 1, 1.5, 2}, 0, 2, .5}                            // [43.1]
	nrmmT  = tab{[]float64{0, 1, 1.8, 2.4, 2.9, 3.3, 3.6, 3.8, 3.9, 3.95, 4}, 0, 10, 1} // [42.1]
)
