package svgprogress

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ErrNoGradient is returned by Render when Props.Gradient is nil.
var ErrNoGradient = errors.New("svgprogress: gradient props are required")

// foregroundStroke references the gradient definition.
const foregroundStroke = "url(#" + gradientID + ")"

// View is the drawable tree produced by Render.
type View struct {
	Spec ProgressSpec

	// Svg is the complete document, arcs and centered content included.
	Svg *Svg

	// Group holds the background and foreground arcs under one rotation.
	Group *Group

	// Background and Foreground are nil when not drawn.
	Background *Path
	Foreground *Path

	// Container is nil unless Props.Children is set.
	Container *ChildrenContainer
}

// ChildrenContainer is the centered content region inside the ring.
type ChildrenContainer struct {
	Style   Style
	Content Element
}

// Render composes the progress ring described by props. Every call starts
// from props alone; nothing is kept between renders.
func Render(props Props) (*View, error) {
	spec, err := props.Resolve()
	if err != nil {
		return nil, err
	}
	logger().Debug("svgprogress: render",
		"size", spec.Size,
		"fill", props.Fill,
		"clamped", spec.FillPercent,
		"sweep", spec.ArcSweepAngle)

	center := spec.Center()
	radius := spec.Radius()

	group := &Group{
		TransformString: rotateAttr(spec.RotationDegrees, center, center),
	}
	t := rotateAbout(spec.RotationDegrees, center, center)
	group.Transform = &t

	view := &View{Spec: spec, Group: group}

	if spec.BackgroundColor != "" {
		view.Background = &Path{
			D:             ArcPath(center, center, radius, 0, spec.ArcSweepAngle),
			Stroke:        spec.BackgroundColor,
			StrokeWidth:   spec.BackgroundStrokeWidth,
			StrokeLinecap: string(spec.LineCap),
			Fill:          "transparent",
			group:         group,
		}
		group.Paths = append(group.Paths, view.Background)
	}
	if spec.FillPercent > 0 {
		view.Foreground = &Path{
			D:             ArcPath(center, center, radius, 0, spec.FillSweep()),
			Stroke:        foregroundStroke,
			StrokeWidth:   spec.StrokeWidth,
			StrokeLinecap: string(spec.LineCap),
			Fill:          "transparent",
			group:         group,
		}
		group.Paths = append(group.Paths, view.Foreground)
	}

	surface := MergeStyle(Style{"backgroundColor": "transparent"}, spec.Style)
	doc := &Svg{
		Xmlns:  svgNamespace,
		Width:  formatNumber(spec.Size),
		Height: formatNumber(spec.Size),
		Style:  surface.CSS(),
		Defs: &Defs{
			LinearGradients: []*LinearGradient{spec.Gradient.linearGradient(gradientID)},
		},
		Groups: []*Group{group},
	}
	group.Owner = doc

	if spec.Children != nil {
		view.Container = spec.container()
		doc.Viewports = append(doc.Viewports, view.Container.viewport())
	}
	view.Svg = doc
	return view, nil
}

// container builds the centered content region. The default style insets
// a circle by the widest stroke; caller keys replace default ones.
func (s ProgressSpec) container() *ChildrenContainer {
	inset := s.MaxStrokeWidth()
	side := s.Size - inset*2
	return &ChildrenContainer{
		Style:   MergeStyle(childrenContainerStyle(inset, side), s.ChildrenContainerStyle),
		Content: s.Children(s.FillPercent),
	}
}

// viewport places the container in the document as a nested <svg>.
func (c *ChildrenContainer) viewport() *Svg {
	side := c.Style.Number("width", 0)
	v := &Svg{
		X:        formatNumber(c.Style.Number("left", 0)),
		Y:        formatNumber(c.Style.Number("top", 0)),
		Width:    formatNumber(side),
		Height:   formatNumber(c.Style.Number("height", side)),
		Overflow: c.Style.String("overflow", ""),
		Style:    c.Style.CSS(),
	}
	if c.Content != nil {
		v.Content = []Element{c.Content}
	}
	return v
}

// WriteSVG writes the document as SVG markup.
func (v *View) WriteSVG(w io.Writer) error {
	return v.Svg.Encode(w)
}

// SVG returns the document as SVG markup.
func (v *View) SVG() (string, error) {
	var buf bytes.Buffer
	if err := v.WriteSVG(&buf); err != nil {
		return "", fmt.Errorf("render svg: %w", err)
	}
	return buf.String(), nil
}

// Label returns a Children producer that prints the fill value with format
// (for example "%.0f%%") centered in the content region.
func Label(format, color, fontSize string) func(fill float64) Element {
	return func(fill float64) Element {
		return &Text{
			X:                "50%",
			Y:                "50%",
			TextAnchor:       "middle",
			DominantBaseline: "central",
			Fill:             color,
			FontSize:         fontSize,
			Value:            fmt.Sprintf(format, fill),
		}
	}
}
