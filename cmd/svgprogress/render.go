package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/vasalvit/svgprogress"
	"github.com/vasalvit/svgprogress/internal/config"
)

// createOutput opens the file named by --output.
var createOutput = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a progress ring",
		Example: `  svgprogress render --fill 75 --label "%.0f%%" > ring.svg
  svgprogress render --config ring.yaml --format png -o ring.png`,
		Args: cobra.NoArgs,
		RunE: runRender,
	}

	f := cmd.Flags()
	f.Float64("size", config.DefaultSize, "side of the square surface")
	f.Float64("fill", 0, "progress value, clamped to [0, 100]")
	f.Float64("width", config.DefaultWidth, "foreground stroke width")
	f.Float64("background-width", 0, "background stroke width (default: --width)")
	f.String("tint-color", svgprogress.DefaultTintColor, "accepted for compatibility; has no effect")
	f.String("background-color", config.DefaultBackgroundColor, "background track color; empty omits the track")
	f.Float64("rotation", svgprogress.DefaultRotation, "rotation of the arcs in degrees")
	f.String("line-cap", string(svgprogress.DefaultLineCap), "stroke end style: butt, round, square")
	f.Float64("arc-sweep-angle", svgprogress.DefaultArcSweepAngle, "sweep in degrees of a full arc")
	f.String("gradient-x1", "0", "gradient vector start x")
	f.String("gradient-y1", "0", "gradient vector start y")
	f.String("gradient-x2", "1", "gradient vector end x")
	f.String("gradient-y2", "0", "gradient vector end y")
	f.String("color1", config.DefaultColor1, "first gradient stop color")
	f.String("color2", config.DefaultColor2, "second gradient stop color")
	f.String("offset1", "0%", "first gradient stop offset")
	f.String("offset2", "100%", "second gradient stop offset")
	f.Float64("opacity1", 1, "first gradient stop opacity")
	f.Float64("opacity2", 1, "second gradient stop opacity")
	f.String("label", "", `centered label format, e.g. "%.0f%%"`)
	f.String("format", config.FormatSVG, "output format: svg or png")
	f.StringP("output", "o", "", "output file (default: stdout)")

	return cmd
}

func runRender(cmd *cobra.Command, args []string) (err error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := applyFlags(cmd.Flags(), cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	view, err := svgprogress.Render(cfg.Props())
	if err != nil {
		return err
	}

	out := io.Writer(cmd.OutOrStdout())
	if cfg.Output.Path != "" {
		f, createErr := createOutput(cfg.Output.Path)
		if createErr != nil {
			return createErr
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close %s: %w", cfg.Output.Path, cerr)
			}
		}()
		out = f
	}

	switch cfg.Output.Format {
	case config.FormatPNG:
		err = view.EncodePNG(out)
	default:
		err = view.WriteSVG(out)
	}
	if err != nil {
		return err
	}
	slog.Info("rendered progress ring",
		"format", cfg.Output.Format,
		"output", cfg.Output.Path,
		"fill", view.Spec.FillPercent)
	return nil
}

// applyFlags copies every flag the user set over the loaded configuration.
func applyFlags(f *pflag.FlagSet, cfg *config.Config) error {
	floats := map[string]*float64{
		"size":             &cfg.Size,
		"fill":             &cfg.Fill,
		"width":            &cfg.Width,
		"background-width": &cfg.BackgroundWidth,
		"rotation":         &cfg.Rotation,
		"arc-sweep-angle":  &cfg.ArcSweepAngle,
		"opacity1":         &cfg.Gradient.StopOpacity1,
		"opacity2":         &cfg.Gradient.StopOpacity2,
	}
	strs := map[string]*string{
		"tint-color":       &cfg.TintColor,
		"background-color": &cfg.BackgroundColor,
		"gradient-x1":      &cfg.Gradient.X1,
		"gradient-y1":      &cfg.Gradient.Y1,
		"gradient-x2":      &cfg.Gradient.X2,
		"gradient-y2":      &cfg.Gradient.Y2,
		"color1":           &cfg.Gradient.Color1,
		"color2":           &cfg.Gradient.Color2,
		"offset1":          &cfg.Gradient.Offset1,
		"offset2":          &cfg.Gradient.Offset2,
		"label":            &cfg.Label.Format,
		"format":           &cfg.Output.Format,
		"output":           &cfg.Output.Path,
	}

	for name, dst := range floats {
		if !f.Changed(name) {
			continue
		}
		v, err := f.GetFloat64(name)
		if err != nil {
			return err
		}
		*dst = v
	}
	for name, dst := range strs {
		if !f.Changed(name) {
			continue
		}
		v, err := f.GetString(name)
		if err != nil {
			return err
		}
		*dst = v
	}
	if f.Changed("line-cap") {
		v, _ := f.GetString("line-cap")
		lc, err := svgprogress.ParseLineCap(v)
		if err != nil {
			return err
		}
		cfg.LineCap = lc
	}
	return nil
}
