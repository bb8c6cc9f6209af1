package dynamo

import (
	"errors"
	"math"
	"testing"
)

func TestClip(t *testing.T) {
	if got := Clip(1, 2, 1970, 1969.8); got != 1 {
		t.Errorf("expected 1 before switch time, got %v", got)
	}
	if got := Clip(1, 2, 1970, 1970); got != 2 {
		t.Errorf("expected 2 at switch time, got %v", got)
	}
	if got := Clip(1, 2, 1970, 2050); got != 2 {
		t.Errorf("expected 2 after switch time, got %v", got)
	}
}

func TestTableInterpolation(t *testing.T) {
	tbl := []float64{1.0, 2.0}

	tests := []struct {
		name                   string
		x, xstart, xend, xstep float64
		want                   float64
	}{
		{"ascending start", 3.0, 3.0, 4.0, 1.0, 1.0},
		{"ascending end", 4.0, 3.0, 4.0, 1.0, 2.0},
		{"ascending mid", 3.5, 3.0, 4.0, 1.0, 1.5},
		{"ascending quarter", 3.75, 3.0, 4.0, 1.0, 1.75},
		{"descending start", 3.0, 4.0, 3.0, -1.0, 2.0},
		{"descending end", 4.0, 4.0, 3.0, -1.0, 1.0},
		{"descending mid", 3.5, 4.0, 3.0, -1.0, 1.5},
		{"descending quarter", 3.75, 4.0, 3.0, -1.0, 1.25},
		{"ascending negative x", 0.25, -0.5, 0.5, 1.0, 1.75},
		{"descending negative x", 0.25, 0.5, -0.5, -1.0, 1.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Table(tbl, tt.x, tt.xstart, tt.xend, tt.xstep)
			if err != nil {
				t.Fatalf("lookup failed: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestTableSingleInterval(t *testing.T) {
	// sin(0.5) and sin(1.0); interpolating at 0.632 gives a published value
	got, err := Table([]float64{0.479425, 0.84147099}, 0.632, 0.5, 1.0, 0.5)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if math.Abs(got-0.57500514136) > 1e-9 {
		t.Errorf("expected 0.57500514136, got %v", got)
	}
}

func TestTableOnSamplePoints(t *testing.T) {
	tbl := []float64{1.04, .85, .6, .3, .15, .05, .02}

	tests := []struct {
		x, want float64
	}{
		{0, 1.04},
		{1, 1.021},
		{10, .85},
		{20, .6},
		{25, .45},
		{30, .3},
		{40, .15},
		{50, .05},
		{59, .023},
		{60, .02},
	}

	for _, tt := range tests {
		got, err := Table(tbl, tt.x, 0, 60, 10)
		if err != nil {
			t.Fatalf("lookup at %v failed: %v", tt.x, err)
		}
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("x=%v: expected %v, got %v", tt.x, tt.want, got)
		}
	}
}

func TestTabhlClampsOutOfRange(t *testing.T) {
	tbl := []float64{1.04, .85, .6, .3, .15, .05, .02}

	got, err := Tabhl(tbl, -5, 0, 60, 10)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if got != 1.04 {
		t.Errorf("expected first sample 1.04 below range, got %v", got)
	}

	got, err = Tabhl(tbl, 65, 0, 60, 10)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if got != .02 {
		t.Errorf("expected last sample .02 above range, got %v", got)
	}
}

func TestTabhlClampsDescending(t *testing.T) {
	tbl := []float64{1.0, 2.0}

	got, err := Tabhl(tbl, 5.0, 4.0, 3.0, -1.0)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if got != 1.0 {
		t.Errorf("expected first sample above descending range, got %v", got)
	}

	got, err = Tabhl(tbl, 2.0, 4.0, 3.0, -1.0)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if got != 2.0 {
		t.Errorf("expected last sample below descending range, got %v", got)
	}
}

func TestTableOutOfRangeFails(t *testing.T) {
	tbl := []float64{1.04, .85, .6, .3, .15, .05, .02}

	tests := []struct {
		name                   string
		x, xstart, xend, xstep float64
	}{
		{"below ascending", -5, 0, 60, 10},
		{"above ascending", 65, 0, 60, 10},
		{"below descending", -5, 60, 0, -10},
		{"above descending", 65, 60, 0, -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Table(tbl, tt.x, tt.xstart, tt.xend, tt.xstep)
			if !errors.Is(err, ErrRange) {
				t.Errorf("expected ErrRange, got %v", err)
			}
		})
	}
}

func TestTableSizeMismatch(t *testing.T) {
	// 7 samples declared for a 5-sample grid
	tbl := []float64{1.04, .85, .6, .3, .15, .05, .02}

	_, err := Tabhl(tbl, 0.5, 0, 1, .25)
	if !errors.Is(err, ErrTableSize) {
		t.Errorf("expected ErrTableSize from tabhl, got %v", err)
	}

	_, err = Table(tbl, 0.5, 0, 1, .25)
	if !errors.Is(err, ErrTableSize) {
		t.Errorf("expected ErrTableSize from table, got %v", err)
	}
}
