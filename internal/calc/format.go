package calc

import (
	"math"
	"strconv"
)

// FormatResult renders a computed value for the display. Integral values
// drop the fractional part; everything else uses the shortest float64
// representation, binary artifacts included.
func FormatResult(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	if math.Mod(v, 1) == 0 {
		if v == 0 {
			// covers -0
			return "0"
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// parseDisplay reads a display string back as a finite number.
func parseDisplay(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
