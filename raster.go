package svgprogress

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	mt "github.com/rustyoz/Mtransform"
	"golang.org/x/image/colornames"
)

// EncodePNG rasterizes the arcs of the view and writes them as PNG. The
// centered content is not rasterized.
func (v *View) EncodePNG(w io.Writer) error {
	return v.Svg.EncodePNG(w)
}

// EncodePNG rasterizes the stroked paths of s and writes them as PNG.
// Gradient coordinates are resolved against the whole surface.
func (s *Svg) EncodePNG(w io.Writer) error {
	width, height := parseLength(s.Width, 1), parseLength(s.Height, 1)
	if width <= 0 || height <= 0 {
		return fmt.Errorf("rasterize: invalid surface %sx%s", s.Width, s.Height)
	}

	dc := gg.NewContext(int(math.Ceil(width)), int(math.Ceil(height)))
	defer dc.Close()

	r := &rasterizer{dc: dc, doc: s, width: width, height: height}
	if err := s.walkPaths(r.strokePath); err != nil {
		return fmt.Errorf("rasterize: %w", err)
	}
	return dc.EncodePNG(w)
}

type rasterizer struct {
	dc            *gg.Context
	doc           *Svg
	width, height float64
}

func (r *rasterizer) strokePath(p *Path, world mt.Transform) error {
	dis, err := p.drawingInstructions(world)
	if err != nil {
		return err
	}
	paint := dis[len(dis)-1]

	brush, ok := r.brush(*paint.Stroke, world)
	if !ok {
		logger().Warn("svgprogress: path not stroked", "id", p.ID, "stroke", *paint.Stroke)
		return nil
	}

	r.dc.ClearPath()
	for _, di := range dis {
		switch di.Kind {
		case MoveInstruction:
			r.dc.MoveTo(di.M[0], di.M[1])
		case LineInstruction:
			r.dc.LineTo(di.M[0], di.M[1])
		case CurveInstruction:
			r.dc.CubicTo(di.C1[0], di.C1[1], di.C2[0], di.C2[1], di.T[0], di.T[1])
		case ArcInstruction:
			r.arc(di)
		case CloseInstruction:
			r.dc.ClosePath()
		}
	}

	lineWidth := *paint.StrokeWidth
	if lineWidth == 0 {
		lineWidth = 1
	}
	r.dc.SetStrokeBrush(brush)
	r.dc.SetLineWidth(lineWidth)
	r.dc.SetLineCap(ggLineCap(*paint.StrokeLinecap))
	return r.dc.Stroke()
}

// arc converts an endpoint arc to its center form and draws it. gg draws
// arcs with increasing angle, so a negative sweep is drawn from its end.
func (r *rasterizer) arc(di *DrawingInstruction) {
	radius := (di.Radius[0] + di.Radius[1]) / 2
	cx, cy, radius := arcCenter(*di.From, *di.M, radius, di.LargeArc, di.Sweep)
	a1 := math.Atan2(di.From[1]-cy, di.From[0]-cx)
	a2 := math.Atan2(di.M[1]-cy, di.M[0]-cx)
	if di.Sweep {
		r.dc.DrawArc(cx, cy, radius, a1, a2)
		return
	}
	r.dc.MoveTo(di.M[0], di.M[1])
	r.dc.DrawArc(cx, cy, radius, a2, a1)
}

// arcCenter returns the center of the circle of the given radius through
// from and to, picked by the large-arc and sweep flags. A radius too small
// to span the chord is scaled up to fit.
func arcCenter(from, to Tuple, radius float64, largeArc, sweep bool) (cx, cy, r float64) {
	hx := (from[0] - to[0]) / 2
	hy := (from[1] - to[1]) / 2
	mx := (from[0] + to[0]) / 2
	my := (from[1] + to[1]) / 2

	d2 := hx*hx + hy*hy
	if d2 == 0 {
		return mx, my, radius
	}
	r = radius
	if d2 > r*r {
		r = math.Sqrt(d2)
	}
	coef := math.Sqrt(math.Max(0, (r*r-d2)/d2))
	if largeArc == sweep {
		coef = -coef
	}
	return mx + coef*hy, my - coef*hx, r
}

func (r *rasterizer) brush(stroke string, world mt.Transform) (gg.Brush, bool) {
	if id, ok := gradientRef(stroke); ok {
		lg := r.doc.Gradient(id)
		if lg == nil {
			return nil, false
		}
		return r.gradientBrush(lg, world), true
	}
	c, ok := parseColor(stroke)
	if !ok || c.A == 0 {
		return nil, false
	}
	return gg.Solid(c), true
}

// gradientBrush maps the gradient vector onto the surface and through the
// transform of the path's group.
func (r *rasterizer) gradientBrush(lg *LinearGradient, t mt.Transform) *gg.LinearGradientBrush {
	x1, y1 := t.Apply(parseLength(lg.X1, 0)*r.width, parseLength(lg.Y1, 0)*r.height)
	x2, y2 := t.Apply(parseLength(lg.X2, 1)*r.width, parseLength(lg.Y2, 0)*r.height)

	brush := gg.NewLinearGradientBrush(x1, y1, x2, y2)
	for _, stop := range lg.Stops {
		c, ok := parseColor(stop.StopColor)
		if !ok {
			continue
		}
		c.A *= parseLength(stop.StopOpacity, 1)
		brush.AddColorStop(parseLength(stop.Offset, 0), c)
	}
	return brush
}

func gradientRef(stroke string) (string, bool) {
	if !strings.HasPrefix(stroke, "url(#") || !strings.HasSuffix(stroke, ")") {
		return "", false
	}
	return stroke[len("url(#") : len(stroke)-1], true
}

func ggLineCap(c string) gg.LineCap {
	switch LineCap(c) {
	case LineCapRound:
		return gg.LineCapRound
	case LineCapSquare:
		return gg.LineCapSquare
	}
	return gg.LineCapButt
}

// parseColor understands hex colors and SVG color keywords.
func parseColor(s string) (gg.RGBA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "", s == "none", s == "transparent":
		return gg.RGBA{}, true
	case strings.HasPrefix(s, "#"):
		return gg.Hex(s), true
	}
	if c, ok := colornames.Map[s]; ok {
		return gg.FromColor(c), true
	}
	return gg.RGBA{}, false
}

// parseLength reads a number or a percentage (as a fraction). Empty or
// malformed values yield fallback.
func parseLength(s string, fallback float64) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	scale := 1.0
	if strings.HasSuffix(s, "%") {
		s = strings.TrimSuffix(s, "%")
		scale = 0.01
	}
	s = strings.TrimSuffix(s, "px")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return v * scale
}
