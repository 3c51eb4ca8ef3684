package svgprogress

// gradientID is the id the foreground arc references its stroke by.
const gradientID = "grad"

// GradientProps describes the two-stop linear gradient used to stroke the
// foreground arc. Coordinates and offsets are SVG lengths such as "0", "1"
// or "100%". A nil opacity leaves the stop fully opaque.
type GradientProps struct {
	X1, Y1, X2, Y2   string
	Offset1, Offset2 string
	Color1, Color2   string

	StopOpacity1 *float64
	StopOpacity2 *float64
}

// linearGradient builds the <linearGradient> definition for g.
func (g *GradientProps) linearGradient(id string) *LinearGradient {
	return &LinearGradient{
		ID: id,
		X1: g.X1,
		Y1: g.Y1,
		X2: g.X2,
		Y2: g.Y2,
		Stops: []*Stop{
			{Offset: g.Offset1, StopColor: g.Color1, StopOpacity: opacityAttr(g.StopOpacity1)},
			{Offset: g.Offset2, StopColor: g.Color2, StopOpacity: opacityAttr(g.StopOpacity2)},
		},
	}
}

func opacityAttr(v *float64) string {
	if v == nil {
		return ""
	}
	return formatNumber(*v)
}
