package svgprogress

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	mt "github.com/rustyoz/Mtransform"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// DrawingInstructionParser allow getting drawing instructions from an
// element. Every drawable element of a document implements this interface.
type DrawingInstructionParser interface {
	DrawingInstructions() ([]*DrawingInstruction, error)
}

// Element is a node placed inside the centered content region. Any value
// encoding/xml can marshal is accepted; *Text, *Path and *Group are the
// usual ones.
type Element interface{}

// Svg represents an SVG document or a nested <svg> viewport.
type Svg struct {
	XMLName   xml.Name  `xml:"svg"`
	Xmlns     string    `xml:"xmlns,attr,omitempty"`
	X         string    `xml:"x,attr,omitempty"`
	Y         string    `xml:"y,attr,omitempty"`
	Width     string    `xml:"width,attr,omitempty"`
	Height    string    `xml:"height,attr,omitempty"`
	Overflow  string    `xml:"overflow,attr,omitempty"`
	Style     string    `xml:"style,attr,omitempty"`
	Title     string    `xml:"title,omitempty"`
	Defs      *Defs     `xml:"defs"`
	Groups    []*Group  `xml:"g"`
	Paths     []*Path   `xml:"path"`
	Viewports []*Svg    `xml:"svg"`
	Content   []Element `xml:"content"`

	Name      string        `xml:"-"`
	Transform *mt.Transform `xml:"-"`
	scale     float64

	// order holds the decoded paths and groups in document order.
	order []DrawingInstructionParser
}

// Defs holds reusable definitions, here only linear gradients.
type Defs struct {
	XMLName         xml.Name          `xml:"defs"`
	LinearGradients []*LinearGradient `xml:"linearGradient"`
}

// LinearGradient is an SVG <linearGradient> element.
type LinearGradient struct {
	XMLName xml.Name `xml:"linearGradient"`
	ID      string   `xml:"id,attr"`
	X1      string   `xml:"x1,attr,omitempty"`
	Y1      string   `xml:"y1,attr,omitempty"`
	X2      string   `xml:"x2,attr,omitempty"`
	Y2      string   `xml:"y2,attr,omitempty"`
	Stops   []*Stop  `xml:"stop"`
}

// Stop is a gradient color stop.
type Stop struct {
	XMLName     xml.Name `xml:"stop"`
	Offset      string   `xml:"offset,attr"`
	StopColor   string   `xml:"stop-color,attr"`
	StopOpacity string   `xml:"stop-opacity,attr,omitempty"`
}

// Text is an SVG <text> element.
type Text struct {
	XMLName          xml.Name `xml:"text"`
	X                string   `xml:"x,attr,omitempty"`
	Y                string   `xml:"y,attr,omitempty"`
	TextAnchor       string   `xml:"text-anchor,attr,omitempty"`
	DominantBaseline string   `xml:"dominant-baseline,attr,omitempty"`
	Fill             string   `xml:"fill,attr,omitempty"`
	FontSize         string   `xml:"font-size,attr,omitempty"`
	FontFamily       string   `xml:"font-family,attr,omitempty"`
	Value            string   `xml:",chardata"`
}

// Group represents an SVG group (usually located in a 'g' XML element)
type Group struct {
	XMLName         xml.Name `xml:"g"`
	ID              string   `xml:"id,attr,omitempty"`
	TransformString string   `xml:"transform,attr,omitempty"`
	Stroke          string   `xml:"stroke,attr,omitempty"`
	StrokeWidth     float64  `xml:"stroke-width,attr,omitempty"`
	Fill            string   `xml:"fill,attr,omitempty"`
	Groups          []*Group `xml:"g"`
	Paths           []*Path  `xml:"path"`

	Transform *mt.Transform `xml:"-"` // row, column
	Parent    *Group        `xml:"-"`
	Owner     *Svg          `xml:"-"`

	order []DrawingInstructionParser
}

// DrawingInstructions implements the DrawingInstructionParser interface.
// Paths and nested groups are visited in document order.
func (g *Group) DrawingInstructions() ([]*DrawingInstruction, error) {
	base := mt.Identity()
	if g.Parent != nil {
		base = g.Parent.worldTransform()
	} else if g.Owner != nil && g.Owner.Transform != nil {
		base = *g.Owner.Transform
	}
	return collectInstructions(func(fn pathFunc) error {
		return g.walkPaths(base, fn)
	})
}

// pathFunc receives a path together with the transform of its parent
// group.
type pathFunc func(p *Path, world mt.Transform) error

// walkPaths calls fn for every path below g in paint order. parent is the
// transform of the element g is nested in. The tree is only read.
func (g *Group) walkPaths(parent mt.Transform, fn pathFunc) error {
	world := parent
	if g.Transform != nil {
		world = mt.MultiplyTransforms(parent, *g.Transform)
	}
	for _, child := range paintOrder(g.order, g.Paths, g.Groups) {
		var err error
		switch c := child.(type) {
		case *Path:
			err = fn(c, world)
		case *Group:
			err = c.walkPaths(world, fn)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// walkPaths calls fn for every path of the document in paint order.
func (s *Svg) walkPaths(fn pathFunc) error {
	root := mt.Identity()
	if s.Transform != nil {
		root = *s.Transform
	}
	for _, child := range paintOrder(s.order, s.Paths, s.Groups) {
		var err error
		switch c := child.(type) {
		case *Path:
			err = fn(c, root)
		case *Group:
			err = c.walkPaths(root, fn)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// paintOrder returns the decoded document order when it still matches the
// element slices. Trees built or changed in code paint paths first.
func paintOrder(order []DrawingInstructionParser, paths []*Path, groups []*Group) []DrawingInstructionParser {
	if len(order) == len(paths)+len(groups) {
		return order
	}
	all := make([]DrawingInstructionParser, 0, len(paths)+len(groups))
	for _, p := range paths {
		all = append(all, p)
	}
	for _, g := range groups {
		all = append(all, g)
	}
	return all
}

func collectInstructions(walk func(pathFunc) error) ([]*DrawingInstruction, error) {
	var all []*DrawingInstruction
	err := walk(func(p *Path, world mt.Transform) error {
		dis, err := p.drawingInstructions(world)
		if err != nil {
			return err
		}
		all = append(all, dis...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return all, nil
}

// worldTransform is the product of every group transform from the
// document root down to g, followed by the owner's scale.
func (g *Group) worldTransform() mt.Transform {
	t := mt.Identity()
	if g.Transform != nil {
		t = *g.Transform
	}
	if g.Parent != nil {
		t = mt.MultiplyTransforms(g.Parent.worldTransform(), t)
	} else if g.Owner != nil && g.Owner.Transform != nil {
		t = mt.MultiplyTransforms(*g.Owner.Transform, t)
	}
	return t
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (g *Group) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	g.XMLName = start.Name
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "id":
			g.ID = attr.Value
		case "stroke":
			g.Stroke = attr.Value
		case "stroke-width":
			w, err := strconv.ParseFloat(attr.Value, 64)
			if err != nil {
				return fmt.Errorf("group %q: stroke-width: %w", g.ID, err)
			}
			g.StrokeWidth = w
		case "fill":
			g.Fill = attr.Value
		case "transform":
			g.TransformString = attr.Value
			t, err := parseTransform(g.TransformString)
			if err != nil {
				return fmt.Errorf("group %q: %w", g.ID, err)
			}
			g.Transform = &t
		}
	}
	if g.Transform == nil {
		g.Transform = mt.NewTransform()
	}

	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			switch tok.Name.Local {
			case "g":
				child := &Group{Parent: g, Owner: g.Owner}
				if err = decoder.DecodeElement(child, &tok); err != nil {
					return fmt.Errorf("error decoding element of Group: %w", err)
				}
				g.Groups = append(g.Groups, child)
				g.order = append(g.order, child)
			case "path":
				p := &Path{group: g, StrokeWidth: g.StrokeWidth, Stroke: g.Stroke, Fill: g.Fill}
				if err = decoder.DecodeElement(p, &tok); err != nil {
					return fmt.Errorf("error decoding element of Group: %w", err)
				}
				g.Paths = append(g.Paths, p)
				g.order = append(g.order, p)
			default:
				if err = decoder.Skip(); err != nil {
					return err
				}
			}

		case xml.EndElement:
			return nil
		}
	}
}

// DrawingInstructions implements the DrawingInstructionParser interface
func (s *Svg) DrawingInstructions() ([]*DrawingInstruction, error) {
	return collectInstructions(s.walkPaths)
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (s *Svg) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	s.XMLName = start.Name
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "x":
			s.X = attr.Value
		case "y":
			s.Y = attr.Value
		case "width":
			s.Width = attr.Value
		case "height":
			s.Height = attr.Value
		case "overflow":
			s.Overflow = attr.Value
		case "style":
			s.Style = attr.Value
		}
	}

	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			switch tok.Name.Local {
			case "title":
				if err = decoder.DecodeElement(&s.Title, &tok); err != nil {
					return err
				}
			case "defs":
				defs := &Defs{}
				if err = decoder.DecodeElement(defs, &tok); err != nil {
					return fmt.Errorf("error decoding defs of SVG struct: %w", err)
				}
				s.Defs = defs
			case "g":
				g := &Group{Owner: s}
				if err = decoder.DecodeElement(g, &tok); err != nil {
					return fmt.Errorf("error decoding group element within SVG struct: %w", err)
				}
				s.Groups = append(s.Groups, g)
				s.order = append(s.order, g)
			case "path":
				p := &Path{}
				if err = decoder.DecodeElement(p, &tok); err != nil {
					return fmt.Errorf("error decoding element of SVG struct: %w", err)
				}
				s.Paths = append(s.Paths, p)
				s.order = append(s.order, p)
			case "svg":
				v := &Svg{}
				if err = decoder.DecodeElement(v, &tok); err != nil {
					return fmt.Errorf("error decoding nested svg: %w", err)
				}
				s.Viewports = append(s.Viewports, v)
			case "text":
				t := &Text{}
				if err = decoder.DecodeElement(t, &tok); err != nil {
					return fmt.Errorf("error decoding text: %w", err)
				}
				s.Content = append(s.Content, t)
			default:
				if err = decoder.Skip(); err != nil {
					return err
				}
			}

		case xml.EndElement:
			if tok.Name.Local == "svg" {
				return nil
			}
		}
	}
}

// Gradient returns the linear gradient with the given id, or nil.
func (s *Svg) Gradient(id string) *LinearGradient {
	if s.Defs == nil {
		return nil
	}
	for _, lg := range s.Defs.LinearGradients {
		if lg.ID == id {
			return lg
		}
	}
	return nil
}

// Encode writes s as an indented XML document.
func (s *Svg) Encode(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode svg: %w", err)
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// ParseSvg parses an SVG string into an SVG struct
func ParseSvg(str string, name string, scale float64) (*Svg, error) {
	return ParseSvgFromReader(strings.NewReader(str), name, scale)
}

// ParseSvgFromReader parses an SVG struct from an io.Reader
func ParseSvgFromReader(r io.Reader, name string, scale float64) (*Svg, error) {
	var svg Svg
	svg.Name = name
	svg.Transform = mt.NewTransform()
	svg.scale = 1
	if scale > 0 {
		svg.Transform.Scale(scale, scale)
		svg.scale = scale
	}
	if scale < 0 {
		svg.Transform.Scale(1.0/-scale, 1.0/-scale)
		svg.scale = 1.0 / -scale
	}

	if err := xml.NewDecoder(r).Decode(&svg); err != nil {
		return nil, fmt.Errorf("ParseSvg Error: %w", err)
	}

	for _, g := range svg.Groups {
		g.SetOwner(&svg)
	}
	logger().Debug("svgprogress: parsed svg", "name", name, "groups", len(svg.Groups), "paths", len(svg.Paths))
	return &svg, nil
}

// SetOwner sets the owner of a SVG Group
func (g *Group) SetOwner(svg *Svg) {
	g.Owner = svg
	if g.Transform == nil {
		g.Transform = mt.NewTransform()
	}
	for _, child := range g.Groups {
		child.Parent = g
		child.SetOwner(svg)
	}
	for _, p := range g.Paths {
		p.group = g
	}
}
