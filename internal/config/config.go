package config

import (
	"github.com/vasalvit/svgprogress"
)

// Config holds everything the CLI needs to draw one progress ring.
type Config struct {
	Size            float64             `yaml:"size" toml:"size"`
	Fill            float64             `yaml:"fill" toml:"fill"`
	Width           float64             `yaml:"width" toml:"width"`
	BackgroundWidth float64             `yaml:"background_width" toml:"background_width"`
	TintColor       string              `yaml:"tint_color" toml:"tint_color"`
	BackgroundColor string              `yaml:"background_color" toml:"background_color"`
	Rotation        float64             `yaml:"rotation" toml:"rotation"`
	LineCap         svgprogress.LineCap `yaml:"line_cap" toml:"line_cap"`
	ArcSweepAngle   float64             `yaml:"arc_sweep_angle" toml:"arc_sweep_angle"`

	Gradient GradientConfig `yaml:"gradient" toml:"gradient"`
	Label    LabelConfig    `yaml:"label" toml:"label"`
	Output   OutputConfig   `yaml:"output" toml:"output"`
}

// GradientConfig mirrors svgprogress.GradientProps.
type GradientConfig struct {
	X1           string  `yaml:"x1" toml:"x1"`
	Y1           string  `yaml:"y1" toml:"y1"`
	X2           string  `yaml:"x2" toml:"x2"`
	Y2           string  `yaml:"y2" toml:"y2"`
	Offset1      string  `yaml:"offset1" toml:"offset1"`
	Offset2      string  `yaml:"offset2" toml:"offset2"`
	Color1       string  `yaml:"color1" toml:"color1"`
	Color2       string  `yaml:"color2" toml:"color2"`
	StopOpacity1 float64 `yaml:"stop_opacity1" toml:"stop_opacity1"`
	StopOpacity2 float64 `yaml:"stop_opacity2" toml:"stop_opacity2"`
}

// LabelConfig configures the centered text. An empty Format disables it.
type LabelConfig struct {
	Format   string `yaml:"format" toml:"format"`
	Color    string `yaml:"color" toml:"color"`
	FontSize string `yaml:"font_size" toml:"font_size"`
}

// OutputConfig selects where and how the ring is written.
type OutputConfig struct {
	Format string `yaml:"format" toml:"format"`
	Path   string `yaml:"path" toml:"path"`
}

// Output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		Size:            DefaultSize,
		Width:           DefaultWidth,
		TintColor:       svgprogress.DefaultTintColor,
		BackgroundColor: DefaultBackgroundColor,
		Rotation:        svgprogress.DefaultRotation,
		LineCap:         svgprogress.DefaultLineCap,
		ArcSweepAngle:   svgprogress.DefaultArcSweepAngle,
		Gradient: GradientConfig{
			X1:           "0",
			Y1:           "0",
			X2:           "1",
			Y2:           "0",
			Offset1:      "0%",
			Offset2:      "100%",
			Color1:       DefaultColor1,
			Color2:       DefaultColor2,
			StopOpacity1: 1,
			StopOpacity2: 1,
		},
		Label: LabelConfig{
			Color:    DefaultLabelColor,
			FontSize: DefaultLabelFontSize,
		},
		Output: OutputConfig{
			Format: FormatSVG,
		},
	}
}

// Props converts the configuration into render properties.
func (c *Config) Props() svgprogress.Props {
	props := svgprogress.Props{
		Size:            c.Size,
		Fill:            c.Fill,
		Width:           c.Width,
		TintColor:       c.TintColor,
		BackgroundColor: c.BackgroundColor,
		Rotation:        svgprogress.Float(c.Rotation),
		LineCap:         c.LineCap,
		ArcSweepAngle:   svgprogress.Float(c.ArcSweepAngle),
		Gradient: &svgprogress.GradientProps{
			X1:           c.Gradient.X1,
			Y1:           c.Gradient.Y1,
			X2:           c.Gradient.X2,
			Y2:           c.Gradient.Y2,
			Offset1:      c.Gradient.Offset1,
			Offset2:      c.Gradient.Offset2,
			Color1:       c.Gradient.Color1,
			Color2:       c.Gradient.Color2,
			StopOpacity1: svgprogress.Float(c.Gradient.StopOpacity1),
			StopOpacity2: svgprogress.Float(c.Gradient.StopOpacity2),
		},
	}
	if c.BackgroundWidth > 0 {
		props.BackgroundWidth = svgprogress.Float(c.BackgroundWidth)
	}
	if c.Label.Format != "" {
		props.Children = svgprogress.Label(c.Label.Format, c.Label.Color, c.Label.FontSize)
	}
	return props
}
