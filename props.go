package svgprogress

import (
	"fmt"
	"math"
	"strings"
)

// LineCap is the shape drawn at both ends of an arc stroke.
type LineCap string

// Line caps understood by SVG renderers.
const (
	LineCapButt   LineCap = "butt"
	LineCapRound  LineCap = "round"
	LineCapSquare LineCap = "square"
)

// ParseLineCap returns the LineCap named by s, case-insensitively. An empty
// string is the default butt cap.
func ParseLineCap(s string) (LineCap, error) {
	switch c := LineCap(strings.ToLower(strings.TrimSpace(s))); c {
	case "":
		return LineCapButt, nil
	case LineCapButt, LineCapRound, LineCapSquare:
		return c, nil
	}
	return "", fmt.Errorf("unknown line cap %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *LineCap) UnmarshalText(text []byte) error {
	v, err := ParseLineCap(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Defaults applied by Resolve to unset properties.
const (
	DefaultTintColor     = "black"
	DefaultRotation      = 90.0
	DefaultArcSweepAngle = 360.0
	DefaultLineCap       = LineCapButt
)

// Float returns a pointer to v, for the optional numeric properties.
func Float(v float64) *float64 {
	return &v
}

// Props is the public configuration of a progress ring. Size, Fill, Width
// and Gradient are required; everything else has a default.
type Props struct {
	Size  float64
	Fill  float64
	Width float64

	// BackgroundWidth defaults to Width.
	BackgroundWidth *float64

	// TintColor is accepted for compatibility; the gradient strokes the
	// foreground arc, so it has no visible effect.
	TintColor string

	// BackgroundColor strokes the background track. The track is omitted
	// when empty.
	BackgroundColor string

	// Rotation in degrees of the arc group around the surface center.
	Rotation *float64

	LineCap LineCap

	// ArcSweepAngle is the sweep in degrees of a completely filled arc.
	ArcSweepAngle *float64

	// Children produces the centered content. It receives the clamped fill.
	Children func(fill float64) Element

	// ChildrenContainerStyle is merged over the default centering style.
	ChildrenContainerStyle Style

	// Style is merged over the style of the outer surface.
	Style Style

	Gradient *GradientProps
}

// ProgressSpec is the fully resolved set of drawing parameters for one
// render pass.
type ProgressSpec struct {
	Size                   float64
	StrokeWidth            float64
	BackgroundStrokeWidth  float64
	FillPercent            float64
	ArcSweepAngle          float64
	RotationDegrees        float64
	LineCap                LineCap
	TintColor              string
	BackgroundColor        string
	Gradient               GradientProps
	Children               func(fill float64) Element
	ChildrenContainerStyle Style
	Style                  Style
}

// Resolve applies defaults and clamps the fill. p is not modified.
func (p Props) Resolve() (ProgressSpec, error) {
	if p.Gradient == nil {
		return ProgressSpec{}, ErrNoGradient
	}
	spec := ProgressSpec{
		Size:                   p.Size,
		StrokeWidth:            p.Width,
		BackgroundStrokeWidth:  p.Width,
		FillPercent:            ClampFill(p.Fill),
		ArcSweepAngle:          DefaultArcSweepAngle,
		RotationDegrees:        DefaultRotation,
		LineCap:                p.LineCap,
		TintColor:              p.TintColor,
		BackgroundColor:        p.BackgroundColor,
		Gradient:               *p.Gradient,
		Children:               p.Children,
		ChildrenContainerStyle: p.ChildrenContainerStyle,
		Style:                  p.Style,
	}
	if p.BackgroundWidth != nil && *p.BackgroundWidth != 0 {
		spec.BackgroundStrokeWidth = *p.BackgroundWidth
	}
	if p.Rotation != nil {
		spec.RotationDegrees = *p.Rotation
	}
	if p.ArcSweepAngle != nil {
		spec.ArcSweepAngle = *p.ArcSweepAngle
	}
	if spec.LineCap == "" {
		spec.LineCap = DefaultLineCap
	}
	if spec.TintColor == "" {
		spec.TintColor = DefaultTintColor
	}
	return spec, nil
}

// MaxStrokeWidth is the wider of the two strokes. Both arcs are inset by
// half of it so neither is clipped by the surface.
func (s ProgressSpec) MaxStrokeWidth() float64 {
	return math.Max(s.StrokeWidth, s.BackgroundStrokeWidth)
}

// Center is the center of the surface, shared by both arcs.
func (s ProgressSpec) Center() float64 {
	return s.Size / 2
}

// Radius is the radius shared by both arcs.
func (s ProgressSpec) Radius() float64 {
	return s.Size/2 - s.MaxStrokeWidth()/2
}

// FillSweep is the sweep in degrees of the foreground arc.
func (s ProgressSpec) FillSweep() float64 {
	return s.ArcSweepAngle * s.FillPercent / 100
}
