package dynamo

import "errors"

// Only two things can go wrong in the model: an embedded table whose
// sample count disagrees with its declared x-grid, and a strict lookup
// fed an x outside that grid. Both indicate a defect baked into the
// model, so neither is ever retried.
var (
	// ErrTableSize indicates a lookup table whose length does not match
	// its declared (xstart, xend, xstep) grid.
	ErrTableSize = errors.New("dynamo: table size does not match x-range")

	// ErrRange indicates a TABLE lookup with x outside the table domain.
	ErrRange = errors.New("dynamo: x out of table range")
)
