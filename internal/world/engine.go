package world

import "github.com/san-kum/worldsim/internal/dynamo"

// Engine advances the model one DT per Tick. It owns exactly one
// current snapshot; the previous one exists only to seed the next level
// computation. Not safe for concurrent use — run independent engines
// for parallel scenarios.
type Engine struct {
	cfg     Config
	prev    Snapshot
	started bool
	err     error
}

// New returns an engine ready to produce its first snapshot. The config
// is copied; later changes to the caller's copy have no effect.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the constants the engine runs with.
func (e *Engine) Config() Config { return e.cfg }

// Completed reports whether the latest snapshot's time has passed the
// configured horizon. Always false before the first Tick. Tick keeps
// working past completion; the caller owns the stopping decision,
// matching the historical control loop.
func (e *Engine) Completed() bool {
	return e.started && e.prev.Time > e.cfg.EndTime
}

// tabhl and table run a lookup and latch the first failure; Tick
// surfaces it. Keeps the equation block below readable.
func (e *Engine) tabhl(t tab, x float64) float64 {
	v, err := dynamo.Tabhl(t.y, x, t.x0, t.x1, t.dx)
	if err != nil && e.err == nil {
		e.err = err
	}
	return v
}

func (e *Engine) table(t tab, x float64) float64 {
	v, err := dynamo.Table(t.y, x, t.x0, t.x1, t.dx)
	if err != nil && e.err == nil {
		e.err = err
	}
	return v
}

// Tick computes the snapshot for the next simulated instant K and
// returns it. Equation numbers refer to Appendix B of World Dynamics.
//
// The order is fixed: levels first (from the previous snapshot J and
// the rates computed for the JK interval), then auxiliaries in
// dependency order, then rates for the KL interval. The auxiliary block
// is the model's dependency graph in topological order — reordering it
// would silently read stale values.
func (e *Engine) Tick() (Snapshot, error) {
	c := &e.cfg
	var k Snapshot

	if e.started {
		j := &e.prev
		k.P = j.P + c.DT*(j.BR-j.DR)                            // [1]
		k.NR = j.NR + c.DT*-j.NRUR                              // [8]
		k.CI = j.CI + c.DT*(j.CIG-j.CID)                        // [24]
		k.POL = j.POL + c.DT*(j.POLG-j.POLA)                    // [30]
		k.CIAF = j.CIAF + (c.DT/c.CIAFT)*(j.CFIFR*j.CIQR-j.CIAF) // [35]

		k.Time = j.Time + c.DT
	} else {
		// first tick: levels come straight from the N/C cards
		k.P = c.PI
		k.NR = c.NRI
		k.CI = c.CII
		k.POL = c.POLI
		k.CIAF = c.CIAFI

		k.Time = c.StartTime
	}

	// auxiliaries
	k.NRFR = k.NR / c.NRI                                 // [7]
	k.NREM = e.table(nremT, k.NRFR)                       // [6]
	k.CIR = k.CI / k.P                                    // [23]
	k.ECIR = k.CIR * (1 - k.CIAF) * k.NREM / (1 - c.CIAFN) // [5]
	k.MSL = k.ECIR / c.ECIRN                              // [4]
	k.BRMM = e.tabhl(brmmT, k.MSL)                        // [3]
	k.DRMM = e.tabhl(drmmT, k.MSL)                        // [11]
	k.CR = k.P / (c.LA * c.PDN)                           // [15]
	k.DRCM = e.table(drcmT, k.CR)                         // [14]
	k.BRCM = e.table(brcmT, k.CR)                         // [16]
	k.FCM = e.table(fcmT, k.CR)                           // [20]
	k.QLC = e.table(qlcT, k.CR)                           // [39]
	k.CIM = e.tabhl(cimT, k.MSL)                          // [26]
	k.POLR = k.POL / c.POLS                               // [29]
	k.FPM = e.table(fpmT, k.POLR)                         // [28]
	k.DRPM = e.table(drpmT, k.POLR)                       // [12]
	k.BRPM = e.table(brpmT, k.POLR)                       // [18]
	k.POLCM = e.tabhl(polcmT, k.CIR)                      // [32]
	k.POLAT = e.table(polatT, k.POLR)                     // [34]
	k.QLM = e.tabhl(qlmT, k.MSL)                          // [38]
	k.QLP = e.table(qlpT, k.POLR)                         // [41]
	k.NRMM = e.tabhl(nrmmT, k.MSL)                        // [42]
	k.CIRA = k.CIR * k.CIAF / c.CIAFN                     // [22]
	k.FPCI = e.tabhl(fpciT, k.CIRA)                       // [21]
	k.FR = k.FPCI * k.FCM * k.FPM * dynamo.Clip(c.FC, c.FC1, c.SWT7, k.Time) / c.FN // [19]
	k.DRFM = e.tabhl(drfmT, k.FR)                         // [13]
	k.BRFM = e.tabhl(brfmT, k.FR)                         // [17]
	k.CFIFR = e.tabhl(cfifrT, k.FR)                       // [36]
	// QLM/QLF is unguarded in the published model: FR=0 makes QLF=0 and
	// the ratio +Inf, which TABHL clamps to its last sample. Guarding
	// here would change published output.
	k.QLF = e.tabhl(qlfT, k.FR)                           // [40]
	k.CIQR = e.tabhl(ciqrT, k.QLM/k.QLF)                  // [43]
	k.QL = c.QLS * k.QLM * k.QLC * k.QLF * k.QLP          // [37]

	// rates for the following interval
	k.BR = k.P * dynamo.Clip(c.BRN, c.BRN1, c.SWT1, k.Time) * k.BRFM * k.BRMM * k.BRCM * k.BRPM // [2]
	k.NRUR = k.P * dynamo.Clip(c.NRUN, c.NRUN1, c.SWT2, k.Time) * k.NRMM                        // [9]
	k.DR = k.P * dynamo.Clip(c.DRN, c.DRN1, c.SWT3, k.Time) * k.DRMM * k.DRPM * k.DRFM * k.DRCM // [10]
	k.CIG = k.P * k.CIM * dynamo.Clip(c.CIGN, c.CIGN1, c.SWT4, k.Time)                          // [25]
	k.CID = k.CI * dynamo.Clip(c.CIDN, c.CIDN1, c.SWT5, k.Time)                                 // [27]
	k.POLG = k.P * dynamo.Clip(c.POLN, c.POLN1, c.SWT6, k.Time) * k.POLCM                       // [31]
	k.POLA = k.POL / k.POLAT                                                                    // [33]

	if e.err != nil {
		err := e.err
		e.err = nil
		return Snapshot{}, err
	}

	// K becomes J for the next tick
	e.prev = k
	e.started = true

	return k, nil
}
