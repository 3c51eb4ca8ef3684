package svgprogress

import mt "github.com/rustyoz/Mtransform"

// ArcSummary describes one arc of a document in world coordinates.
type ArcSummary struct {
	PathID      string
	Stroke      string
	StrokeWidth float64
	Start       Tuple
	End         Tuple
	Center      Tuple
	Radius      float64
	LargeArc    bool
	Sweep       bool
}

// Arcs lists every arc drawn by the document, in document order.
func Arcs(s *Svg) ([]ArcSummary, error) {
	var arcs []ArcSummary
	err := s.walkPaths(func(p *Path, world mt.Transform) error {
		dis, err := p.drawingInstructions(world)
		if err != nil {
			return err
		}
		paint := dis[len(dis)-1]
		for _, di := range dis {
			if di.Kind != ArcInstruction {
				continue
			}
			cx, cy, r := arcCenter(*di.From, *di.M, (di.Radius[0]+di.Radius[1])/2, di.LargeArc, di.Sweep)
			arcs = append(arcs, ArcSummary{
				PathID:      p.ID,
				Stroke:      *paint.Stroke,
				StrokeWidth: *paint.StrokeWidth,
				Start:       *di.From,
				End:         *di.M,
				Center:      Tuple{cx, cy},
				Radius:      r,
				LargeArc:    di.LargeArc,
				Sweep:       di.Sweep,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return arcs, nil
}
