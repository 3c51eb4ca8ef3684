package svgprogress

import "math"

// ClampFill saturates a fill percentage to [0, 100]. NaN renders as empty.
func ClampFill(fill float64) float64 {
	if math.IsNaN(fill) {
		return 0
	}
	return math.Min(100, math.Max(0, fill))
}
