package chart

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMagnitude renders an axis label the way the DYNAMO print phase
// did: three decimals with trailing zeros trimmed (keeping the point),
// and a T/M/B suffix for thousands, millions and billions. Values past
// a trillion fall back to %g.
func FormatMagnitude(d float64) string {
	if math.Abs(d) > 1e12 {
		return fmt.Sprintf("%g", d)
	}

	var magnitude byte
	switch {
	case math.Abs(d) >= 1e9:
		d /= 1e9
		magnitude = 'B'
	case math.Abs(d) >= 1e6:
		d /= 1e6
		magnitude = 'M'
	case math.Abs(d) >= 1e3:
		d /= 1e3
		magnitude = 'T'
	}

	s := strings.TrimRight(strconv.FormatFloat(d, 'f', 3, 64), "0")
	if magnitude != 0 {
		s += string(magnitude)
	}
	return s
}
