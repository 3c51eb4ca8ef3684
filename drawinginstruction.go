package svgprogress

// InstructionType tells our path drawing library which function it has
// to call
type InstructionType int

// These are instruction types that we use with our path drawing library
const (
	MoveInstruction InstructionType = iota
	LineInstruction
	CurveInstruction
	ArcInstruction
	CloseInstruction
	PaintInstruction
)

func (k InstructionType) String() string {
	switch k {
	case MoveInstruction:
		return "move"
	case LineInstruction:
		return "line"
	case CurveInstruction:
		return "curve"
	case ArcInstruction:
		return "arc"
	case CloseInstruction:
		return "close"
	case PaintInstruction:
		return "paint"
	}
	return "unknown"
}

// DrawingInstruction contains enough information that a simple drawing
// library can draw the shapes contained in an SVG file. Points are in
// world space, after every group transform has been applied.
type DrawingInstruction struct {
	Kind InstructionType

	// M is the point the instruction ends at.
	M *Tuple

	// Cubic Bézier control points and end point, set for CurveInstruction
	// only.
	C1 *Tuple
	C2 *Tuple
	T  *Tuple

	// Arc parameters, set for ArcInstruction only. From is the current
	// point the arc starts at.
	From     *Tuple
	Radius   *Tuple
	LargeArc bool
	Sweep    bool

	// Paint parameters, set for PaintInstruction only.
	StrokeWidth   *float64
	Stroke        *string
	StrokeLinecap *string
	Fill          *string
}
