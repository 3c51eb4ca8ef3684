package svgprogress

import (
	"strconv"
	"strings"
)

// arcEndGuard shortens the end angle so the two endpoints of the arc never
// coincide. An SVG arc command between identical points draws nothing, so a
// full 360 degree sweep would otherwise vanish.
const arcEndGuard = 0.9999

// ArcPath returns the path description of a circular arc around (x, y),
// traced from endAngle back to startAngle (both in degrees, 0 pointing up).
func ArcPath(x, y, radius, startAngle, endAngle float64) string {
	start := PolarToCartesian(x, y, radius, endAngle*arcEndGuard)
	end := PolarToCartesian(x, y, radius, startAngle)

	d := []string{
		"M", formatNumber(start[0]), formatNumber(start[1]),
		"A", formatNumber(radius), formatNumber(radius), "0",
		largeArcFlag(startAngle, endAngle), "0",
		formatNumber(end[0]), formatNumber(end[1]),
	}
	return strings.Join(d, " ")
}

// largeArcFlag selects the long way round once the span passes half a turn.
func largeArcFlag(startAngle, endAngle float64) string {
	if endAngle-startAngle <= 180 {
		return "0"
	}
	return "1"
}

// formatNumber writes v in plain decimal notation; path lexers do not all
// understand exponents.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
