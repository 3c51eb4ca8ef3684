package svgprogress

import (
	"encoding/xml"
	"fmt"
	"math"
	"strconv"
	"strings"

	mt "github.com/rustyoz/Mtransform"
	gl "github.com/rustyoz/genericlexer"
)

// Path is an SVG XML path element
type Path struct {
	XMLName         xml.Name `xml:"path"`
	ID              string   `xml:"id,attr,omitempty"`
	D               string   `xml:"d,attr"`
	Style           string   `xml:"style,attr,omitempty"`
	TransformString string   `xml:"transform,attr,omitempty"`
	Stroke          string   `xml:"stroke,attr,omitempty"`
	StrokeWidth     float64  `xml:"stroke-width,attr,omitempty"`
	StrokeLinecap   string   `xml:"stroke-linecap,attr,omitempty"`
	Fill            string   `xml:"fill,attr,omitempty"`

	// group is the parent the path was decoded or built under. It is set
	// once when the tree is constructed.
	group *Group
}

// pathPaint is the stroke and fill of a path once its inline style has
// been applied over the presentation attributes.
type pathPaint struct {
	stroke        string
	strokeWidth   float64
	strokeLinecap string
	fill          string
}

type pathDescriptionParser struct {
	p         *Path
	lex       *gl.Lexer
	x, y      float64
	startX    float64
	startY    float64
	transform mt.Transform
	scale     float64
	flip      bool
	out       []*DrawingInstruction
	done      bool
}

func newPathDParse(p *Path, base mt.Transform) (*pathDescriptionParser, error) {
	pdp := &pathDescriptionParser{p: p, transform: base}
	if p.TransformString != "" {
		pt, err := parseTransform(p.TransformString)
		if err != nil {
			return nil, fmt.Errorf("path %q: %w", p.ID, err)
		}
		pdp.transform = mt.MultiplyTransforms(pdp.transform, pt)
	}

	// Arc radii and stroke widths scale with the linear part of the
	// transform; a reflection reverses the sweep direction.
	t := pdp.transform
	det := t[0][0]*t[1][1] - t[0][1]*t[1][0]
	pdp.scale = math.Sqrt(math.Abs(det))
	pdp.flip = det < 0
	return pdp, nil
}

// DrawingInstructions implements the DrawingInstructionParser interface.
// The path description is interpreted with the transforms of the path and
// its ancestors applied. The last instruction is always a PaintInstruction
// carrying the stroke and fill of the path.
func (p *Path) DrawingInstructions() ([]*DrawingInstruction, error) {
	base := mt.Identity()
	if p.group != nil {
		base = p.group.worldTransform()
	}
	return p.drawingInstructions(base)
}

// drawingInstructions interprets the path under base, the transform of its
// parent group. The path itself is only read.
func (p *Path) drawingInstructions(base mt.Transform) ([]*DrawingInstruction, error) {
	paint := p.paint()
	pdp, err := newPathDParse(p, base)
	if err != nil {
		return nil, err
	}

	l, _ := gl.Lex(fmt.Sprint(p.ID), p.D)
	pdp.lex = l
	defer pdp.drain()

	for {
		i := pdp.lex.NextItem()
		switch i.Type {
		case gl.ItemError:
			pdp.done = true
			return nil, fmt.Errorf("path %q: lex error at %q", p.ID, i.Value)
		case gl.ItemEOS:
			pdp.done = true
			scaledStrokeWidth := paint.strokeWidth * pdp.scale
			pdp.out = append(pdp.out, &DrawingInstruction{
				Kind:          PaintInstruction,
				StrokeWidth:   &scaledStrokeWidth,
				Stroke:        &paint.stroke,
				StrokeLinecap: &paint.strokeLinecap,
				Fill:          &paint.fill,
			})
			return pdp.out, nil
		case gl.ItemLetter:
			if err := pdp.parseCommand(i); err != nil {
				return nil, fmt.Errorf("path %q: %w", p.ID, err)
			}
		}
	}
}

// drain consumes the lexer until it stops so its goroutine can exit.
func (pdp *pathDescriptionParser) drain() {
	for !pdp.done {
		i := pdp.lex.NextItem()
		pdp.done = i.Type == gl.ItemEOS || i.Type == gl.ItemError
	}
}

func (pdp *pathDescriptionParser) parseCommand(i gl.Item) error {
	switch i.Value {
	case "M":
		return pdp.parseMoveTo(false)
	case "m":
		return pdp.parseMoveTo(true)
	case "L":
		return pdp.parseLineTo(false)
	case "l":
		return pdp.parseLineTo(true)
	case "H":
		return pdp.parseHVLineTo(0, false)
	case "h":
		return pdp.parseHVLineTo(0, true)
	case "V":
		return pdp.parseHVLineTo(1, false)
	case "v":
		return pdp.parseHVLineTo(1, true)
	case "C":
		return pdp.parseCurveTo(false)
	case "c":
		return pdp.parseCurveTo(true)
	case "A":
		return pdp.parseArcTo(false)
	case "a":
		return pdp.parseArcTo(true)
	case "z", "Z":
		return pdp.parseClose()
	}
	return fmt.Errorf("unsupported path command %q", i.Value)
}

func (pdp *pathDescriptionParser) parseMoveTo(relative bool) error {
	t, err := pdp.parseTuple()
	if err != nil {
		return fmt.Errorf("Error Passing MoveTo Expected Tuple\n%s", err)
	}
	pdp.moveCursor(t, relative)
	pdp.startX, pdp.startY = pdp.x, pdp.y
	pdp.emit(MoveInstruction)

	// Extra coordinate pairs after a moveto are implicit linetos.
	for pdp.hasNumber() {
		t, err := pdp.parseTuple()
		if err != nil {
			return fmt.Errorf("Error Passing MoveTo\n%s", err)
		}
		pdp.moveCursor(t, relative)
		pdp.emit(LineInstruction)
	}
	return nil
}

func (pdp *pathDescriptionParser) parseLineTo(relative bool) error {
	for pdp.hasNumber() {
		t, err := pdp.parseTuple()
		if err != nil {
			return fmt.Errorf("Error Passing LineTo\n%s", err)
		}
		pdp.moveCursor(t, relative)
		pdp.emit(LineInstruction)
	}
	return nil
}

// parseHVLineTo handles horizontal (axis 0) and vertical (axis 1) lines.
func (pdp *pathDescriptionParser) parseHVLineTo(axis int, relative bool) error {
	for pdp.hasNumber() {
		n, err := pdp.parseNumber()
		if err != nil {
			return fmt.Errorf("Error Passing HVLineTo\n%s", err)
		}
		t := Tuple{pdp.x, pdp.y}
		if relative {
			t = Tuple{}
		}
		t[axis] = n
		pdp.moveCursor(t, relative)
		pdp.emit(LineInstruction)
	}
	return nil
}

// parseCurveTo reads cubic Bézier segments. Relative control points are
// offsets from the current point at the start of each segment.
func (pdp *pathDescriptionParser) parseCurveTo(relative bool) error {
	for pdp.hasNumber() {
		var pts [3]Tuple
		for n := range pts {
			t, err := pdp.parseTuple()
			if err != nil {
				return fmt.Errorf("Error Passing CurveTo\n%s", err)
			}
			if relative {
				t[0] += pdp.x
				t[1] += pdp.y
			}
			pts[n] = t
		}
		pdp.x, pdp.y = pts[2][0], pts[2][1]

		var world [3]Tuple
		for n, t := range pts {
			x, y := pdp.transform.Apply(t[0], t[1])
			world[n] = Tuple{x, y}
		}
		pdp.out = append(pdp.out, &DrawingInstruction{
			Kind: CurveInstruction,
			M:    &world[2],
			C1:   &world[0],
			C2:   &world[1],
			T:    &world[2],
		})
	}
	return nil
}

func (pdp *pathDescriptionParser) parseArcTo(relative bool) error {
	for pdp.hasNumber() {
		var args [7]float64
		for n := range args {
			v, err := pdp.parseNumber()
			if err != nil {
				return fmt.Errorf("Error Passing ArcTo argument %d\n%s", n+1, err)
			}
			args[n] = v
		}

		fx, fy := pdp.transform.Apply(pdp.x, pdp.y)
		pdp.moveCursor(Tuple{args[5], args[6]}, relative)
		x, y := pdp.transform.Apply(pdp.x, pdp.y)

		sweep := args[4] != 0
		if pdp.flip {
			sweep = !sweep
		}
		pdp.out = append(pdp.out, &DrawingInstruction{
			Kind:     ArcInstruction,
			M:        &Tuple{x, y},
			From:     &Tuple{fx, fy},
			Radius:   &Tuple{math.Abs(args[0]) * pdp.scale, math.Abs(args[1]) * pdp.scale},
			LargeArc: args[3] != 0,
			Sweep:    sweep,
		})
	}
	return nil
}

func (pdp *pathDescriptionParser) parseClose() error {
	pdp.x, pdp.y = pdp.startX, pdp.startY
	pdp.out = append(pdp.out, &DrawingInstruction{Kind: CloseInstruction})
	return nil
}

func (pdp *pathDescriptionParser) moveCursor(t Tuple, relative bool) {
	if relative {
		pdp.x += t[0]
		pdp.y += t[1]
		return
	}
	pdp.x, pdp.y = t[0], t[1]
}

func (pdp *pathDescriptionParser) emit(kind InstructionType) {
	x, y := pdp.transform.Apply(pdp.x, pdp.y)
	pdp.out = append(pdp.out, &DrawingInstruction{Kind: kind, M: &Tuple{x, y}})
}

func (pdp *pathDescriptionParser) hasNumber() bool {
	pdp.lex.ConsumeWhiteSpace()
	pdp.lex.ConsumeComma()
	pdp.lex.ConsumeWhiteSpace()
	return pdp.lex.PeekItem().Type == gl.ItemNumber
}

func (pdp *pathDescriptionParser) parseNumber() (float64, error) {
	pdp.lex.ConsumeWhiteSpace()
	pdp.lex.ConsumeComma()
	pdp.lex.ConsumeWhiteSpace()
	i := pdp.lex.NextItem()
	if i.Type == gl.ItemEOS || i.Type == gl.ItemError {
		pdp.done = true
	}
	if i.Type != gl.ItemNumber {
		return 0, fmt.Errorf("expected number, got %q", i.Value)
	}
	n, err := strconv.ParseFloat(i.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("Error passing number %s", err)
	}
	return n, nil
}

func (pdp *pathDescriptionParser) parseTuple() (Tuple, error) {
	var t Tuple
	var err error
	if t[0], err = pdp.parseNumber(); err != nil {
		return t, err
	}
	if t[1], err = pdp.parseNumber(); err != nil {
		return t, err
	}
	return t, nil
}

// paint returns the presentation attributes of p with its inline style
// applied on top.
func (p *Path) paint() pathPaint {
	pp := pathPaint{
		stroke:        p.Stroke,
		strokeWidth:   p.StrokeWidth,
		strokeLinecap: p.StrokeLinecap,
		fill:          p.Fill,
	}
	for key, val := range splitStyle(p.Style) {
		switch key {
		case "stroke-width":
			sw, err := strconv.ParseFloat(strings.TrimSuffix(val, "px"), 64)
			if err == nil {
				pp.strokeWidth = sw
			}
		case "stroke":
			pp.stroke = val
		case "stroke-linecap":
			pp.strokeLinecap = val
		case "fill":
			pp.fill = val
		}
	}
	return pp
}

// splitStyle breaks an inline CSS declaration list into properties.
func splitStyle(style string) map[string]string {
	props := make(map[string]string)
	for _, decl := range strings.Split(style, ";") {
		key, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		props[strings.TrimSpace(key)] = strings.TrimSpace(val)
	}
	return props
}
