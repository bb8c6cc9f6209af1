// Package dynamo implements the three DYNAMO built-in functions that
// the World2 equations depend on: CLIP, TABHL and TABLE.
//
// A lookup table is an ordered slice of y-samples implicitly paired
// with the x-grid xstart, xstart+xstep, ..., xend. TABHL holds the
// nearest edge sample when x leaves the grid; TABLE treats that as an
// error. Both validate the sample count against the declared grid on
// every call:
//
//	y, err := dynamo.Tabhl([]float64{0, .15, .5, .85, 1}, x, 0, 1, .25)
//
// The functions are pure and safe for concurrent use.
package dynamo
