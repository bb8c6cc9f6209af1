package world

import (
	"math"
	"testing"
)

func TestFirstTickSeedsInitialLevels(t *testing.T) {
	eng := New(DefaultConfig())

	snap, err := eng.Tick()
	if err != nil {
		t.Fatalf("tick failed: %v", err)
	}

	if snap.Time != 1900 {
		t.Errorf("expected time 1900, got %v", snap.Time)
	}
	if snap.P != 1.65e9 {
		t.Errorf("expected initial population 1.65e9, got %v", snap.P)
	}
	if snap.NR != 900e9 {
		t.Errorf("expected initial natural resources 900e9, got %v", snap.NR)
	}
	if snap.CI != .4e9 {
		t.Errorf("expected initial capital investment .4e9, got %v", snap.CI)
	}
	if snap.POL != .2e9 {
		t.Errorf("expected initial pollution .2e9, got %v", snap.POL)
	}
	if snap.CIAF != .2 {
		t.Errorf("expected initial agriculture fraction .2, got %v", snap.CIAF)
	}

	// undepleted resources give NRFR=1 and an extraction multiplier of 1
	if snap.NRFR != 1 {
		t.Errorf("expected nrfr 1 at start, got %v", snap.NRFR)
	}
	if snap.NREM != 1 {
		t.Errorf("expected nrem 1 at start, got %v", snap.NREM)
	}
}

func TestSecondTickIntegratesLevels(t *testing.T) {
	eng := New(DefaultConfig())

	first, err := eng.Tick()
	if err != nil {
		t.Fatalf("tick failed: %v", err)
	}
	second, err := eng.Tick()
	if err != nil {
		t.Fatalf("tick failed: %v", err)
	}

	if second.Time != first.Time+0.2 {
		t.Errorf("expected time %v, got %v", first.Time+0.2, second.Time)
	}

	wantP := first.P + 0.2*(first.BR-first.DR)
	if second.P != wantP {
		t.Errorf("expected population %v, got %v", wantP, second.P)
	}
	wantNR := first.NR + 0.2*-first.NRUR
	if second.NR != wantNR {
		t.Errorf("expected natural resources %v, got %v", wantNR, second.NR)
	}
	if second.NR >= first.NR {
		t.Error("natural resources should only deplete")
	}
}

func TestRunToCompletion(t *testing.T) {
	eng := New(DefaultConfig())

	if eng.Completed() {
		t.Error("expected incomplete before first tick")
	}

	ticks := 0
	var last Snapshot
	for !eng.Completed() {
		snap, err := eng.Tick()
		if err != nil {
			t.Fatalf("tick %d failed: %v", ticks, err)
		}
		last = snap
		ticks++
		if ticks > 2000 {
			t.Fatal("run did not complete")
		}
	}

	// 1900 to 2100 at DT=0.2, plus the tick that crosses the horizon
	if ticks < 1001 || ticks > 1002 {
		t.Errorf("expected about 1002 ticks, got %d", ticks)
	}
	if last.Time <= 2100 || last.Time > 2100.5 {
		t.Errorf("expected final time just past 2100, got %v", last.Time)
	}

	// ticking past completion still produces consistent output
	again, err := eng.Tick()
	if err != nil {
		t.Fatalf("tick past completion failed: %v", err)
	}
	if again.Time != last.Time+0.2 {
		t.Errorf("expected time %v past completion, got %v", last.Time+0.2, again.Time)
	}
	if !eng.Completed() {
		t.Error("expected engine to stay completed")
	}
}

func TestDeterminism(t *testing.T) {
	a := New(DefaultConfig())
	b := New(DefaultConfig())

	for i := 0; i < 500; i++ {
		sa, err := a.Tick()
		if err != nil {
			t.Fatalf("tick failed: %v", err)
		}
		sb, err := b.Tick()
		if err != nil {
			t.Fatalf("tick failed: %v", err)
		}
		if sa != sb {
			t.Fatalf("snapshots diverged at tick %d: %+v vs %+v", i, sa, sb)
		}
	}
}

func TestPopulationPeaksAndDeclines(t *testing.T) {
	// the original run: population peaks in the 2020s as natural
	// resources deplete, then declines
	eng := New(DefaultConfig())

	peak := 0.0
	peakTime := 0.0
	var last Snapshot
	for !eng.Completed() {
		snap, err := eng.Tick()
		if err != nil {
			t.Fatalf("tick failed: %v", err)
		}
		if snap.P > peak {
			peak = snap.P
			peakTime = snap.Time
		}
		last = snap
	}

	if peak < 4.5e9 || peak > 6e9 {
		t.Errorf("expected peak population near 5e9, got %v", peak)
	}
	if peakTime < 2010 || peakTime > 2040 {
		t.Errorf("expected population peak in the 2020s, got %v", peakTime)
	}
	if last.P >= peak {
		t.Error("expected population to decline from its peak")
	}
	if last.NR >= 900e9/2 {
		t.Errorf("expected natural resources well depleted by 2100, got %v", last.NR)
	}
}

func TestConservedResourcesScenario(t *testing.T) {
	base := finalSnapshot(t, DefaultConfig())

	cfg, ok := GetScenario("nr-conserved")
	if !ok {
		t.Fatal("expected nr-conserved scenario")
	}
	conserved := finalSnapshot(t, cfg)

	if conserved.NR <= base.NR {
		t.Errorf("expected more resources left when usage drops: %v <= %v", conserved.NR, base.NR)
	}
}

func finalSnapshot(t *testing.T, cfg Config) Snapshot {
	t.Helper()
	eng := New(cfg)
	var last Snapshot
	for !eng.Completed() {
		snap, err := eng.Tick()
		if err != nil {
			t.Fatalf("tick failed: %v", err)
		}
		last = snap
	}
	return last
}

func TestAuxiliaryConsistency(t *testing.T) {
	eng := New(DefaultConfig())
	snap, err := eng.Tick()
	if err != nil {
		t.Fatalf("tick failed: %v", err)
	}

	cfg := DefaultConfig()
	if got, want := snap.CIR, snap.CI/snap.P; got != want {
		t.Errorf("cir: expected %v, got %v", want, got)
	}
	if got, want := snap.CR, snap.P/(cfg.LA*cfg.PDN); got != want {
		t.Errorf("cr: expected %v, got %v", want, got)
	}
	if got, want := snap.POLR, snap.POL/cfg.POLS; got != want {
		t.Errorf("polr: expected %v, got %v", want, got)
	}
	wantQL := cfg.QLS * snap.QLM * snap.QLC * snap.QLF * snap.QLP
	if math.Abs(snap.QL-wantQL) > 1e-12 {
		t.Errorf("ql: expected %v, got %v", wantQL, snap.QL)
	}
}
