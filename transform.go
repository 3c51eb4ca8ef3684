package svgprogress

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	mt "github.com/rustyoz/Mtransform"
)

// rotateAbout returns the transform rotating by deg degrees (clockwise on
// screen) around (cx, cy), the same as SVG's rotate(deg cx cy).
func rotateAbout(deg, cx, cy float64) mt.Transform {
	sin, cos := math.Sincos(degToRad(deg))
	return mt.Transform{
		{cos, -sin, cx - cos*cx + sin*cy},
		{sin, cos, cy - sin*cx - cos*cy},
		{0, 0, 1},
	}
}

// rotateAttr formats a rotation as an SVG transform attribute.
func rotateAttr(deg, cx, cy float64) string {
	return fmt.Sprintf("rotate(%s %s %s)", formatNumber(deg), formatNumber(cx), formatNumber(cy))
}

// parseTransform interprets an SVG transform list. Supported functions are
// matrix, translate, scale and rotate, applied left to right.
func parseTransform(s string) (mt.Transform, error) {
	t := mt.Identity()
	rest := strings.TrimSpace(s)
	for rest != "" {
		open := strings.IndexByte(rest, '(')
		end := strings.IndexByte(rest, ')')
		if open < 0 || end < open {
			return t, fmt.Errorf("malformed transform %q", s)
		}
		name := strings.TrimSpace(rest[:open])
		args, err := transformArgs(rest[open+1 : end])
		if err != nil {
			return t, fmt.Errorf("transform %s: %w", name, err)
		}

		var next mt.Transform
		switch {
		case name == "matrix" && len(args) == 6:
			next = mt.Transform{
				{args[0], args[2], args[4]},
				{args[1], args[3], args[5]},
				{0, 0, 1},
			}
		case name == "translate" && (len(args) == 1 || len(args) == 2):
			args = append(args, 0)
			next = mt.Transform{{1, 0, args[0]}, {0, 1, args[1]}, {0, 0, 1}}
		case name == "scale" && (len(args) == 1 || len(args) == 2):
			if len(args) == 1 {
				args = append(args, args[0])
			}
			next = mt.Transform{{args[0], 0, 0}, {0, args[1], 0}, {0, 0, 1}}
		case name == "rotate" && len(args) == 1:
			next = rotateAbout(args[0], 0, 0)
		case name == "rotate" && len(args) == 3:
			next = rotateAbout(args[0], args[1], args[2])
		default:
			return t, fmt.Errorf("unsupported transform %s with %d arguments", name, len(args))
		}
		t = mt.MultiplyTransforms(t, next)
		rest = strings.TrimLeft(rest[end+1:], " ,\t\n")
	}
	return t, nil
}

func transformArgs(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	args := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return args, nil
}
