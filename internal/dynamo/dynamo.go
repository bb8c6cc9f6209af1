package dynamo

import (
	"fmt"
	"math"
)

// Clip models a step change in a policy constant: it returns a while t
// is before switchTime and b from switchTime on.
func Clip(a, b, switchTime, t float64) float64 {
	if t < switchTime {
		return a
	}
	return b
}

// Tabhl returns the y value for x by linear interpolation over the
// samples in tbl, which sit on the x-grid xstart, xstart+xstep, ...,
// xend. The grid may ascend (positive xstep) or descend (negative
// xstep). Outside the grid the nearest edge sample is returned, so the
// lookup never fails on x; the only error is ErrTableSize when the
// sample count disagrees with the declared grid.
func Tabhl(tbl []float64, x, xstart, xend, xstep float64) (float64, error) {
	n := int(math.Round((xend-xstart)/xstep)) + 1
	if len(tbl) != n {
		return 0, fmt.Errorf("%w: %d samples for grid [%g,%g] step %g",
			ErrTableSize, len(tbl), xstart, xend, xstep)
	}

	if xstart < xend {
		if x < xstart {
			return tbl[0], nil
		}
		if x > xend {
			return tbl[n-1], nil
		}
	} else {
		if x < xend {
			return tbl[n-1], nil
		}
		if x > xstart {
			return tbl[0], nil
		}
	}

	// in range: (x-xstart)/xstep is non-negative for either direction
	i := int((x - xstart) / xstep)
	if i == n-1 {
		return tbl[i], nil
	}

	// y = y0 + (x - x0)(y1 - y0)/(x1 - x0)
	return tbl[i] + (x-xstart-xstep*float64(i))*(tbl[i+1]-tbl[i])/xstep, nil
}

// Table is Tabhl with a strict domain: x outside [xstart,xend] (or
// [xend,xstart] when the grid descends) returns ErrRange instead of
// clamping to an edge sample.
func Table(tbl []float64, x, xstart, xend, xstep float64) (float64, error) {
	if xstart < xend {
		if x < xstart || x > xend {
			return 0, fmt.Errorf("%w: x=%g outside [%g,%g]", ErrRange, x, xstart, xend)
		}
	} else {
		if x < xend || x > xstart {
			return 0, fmt.Errorf("%w: x=%g outside [%g,%g]", ErrRange, x, xend, xstart)
		}
	}
	return Tabhl(tbl, x, xstart, xend, xstep)
}
