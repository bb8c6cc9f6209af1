// Package world implements Jay Forrester's World2 model as a
// deterministic discrete-time simulation engine.
//
// The model tracks five accumulating levels (population, capital
// investment, natural resources, pollution, and the fraction of capital
// invested in agriculture), the seven flow rates that drive them, and
// about thirty auxiliary multipliers that decompose the rate equations.
// Every constant, table and equation comes from Appendix B of World
// Dynamics (Forrester, 1971); equation numbers in the source refer to
// that listing.
//
// An Engine owns one current snapshot and advances one DT per Tick:
//
//	eng := world.New(world.DefaultConfig())
//	for !eng.Completed() {
//		snap, err := eng.Tick()
//		...
//	}
//
// Tick order matters: levels integrate from the previous snapshot,
// auxiliaries follow in dependency order, rates for the next interval
// come last. The engine retains no history; callers wanting a
// trajectory record snapshots themselves.
package world
