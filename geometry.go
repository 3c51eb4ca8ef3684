package svgprogress

import "math"

// Tuple is an X,Y coordinate
type Tuple [2]float64

// PolarToCartesian returns the point at angleInDegrees on the circle of the
// given radius around (centerX, centerY). Angle 0 points up, angles grow
// clockwise in screen coordinates.
func PolarToCartesian(centerX, centerY, radius, angleInDegrees float64) Tuple {
	angleInRadians := (angleInDegrees - 90) * math.Pi / 180.0
	return Tuple{
		centerX + radius*math.Cos(angleInRadians),
		centerY + radius*math.Sin(angleInRadians),
	}
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
