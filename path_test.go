package svgprogress

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

type PathTest struct {
	Description string
	Svg         string
	Kinds       []InstructionType
	XCoords     []float64
	YCoords     []float64
}

var tests = []PathTest{
	{
		"absolute lines",
		`<svg viewBox="0 0 100 100"><path d="M0.000 0.000 L100.000 0.000 100.000 100.000 L0.000 100.000 Z" fill="#000000" stroke="#000000" stroke-width="2"/></svg>`,
		[]InstructionType{MoveInstruction, LineInstruction, LineInstruction, LineInstruction, CloseInstruction, PaintInstruction},
		[]float64{0, 100, 100, 0, 0},
		[]float64{0, 0, 100, 100, 0},
	},
	{
		"relative lines",
		`<svg viewBox="0 0 100 100"><path d="M0.000 0.000 l100.000 0.000 100.000 100.000 l0.000 100.000 Z" fill="#000000" stroke="#000000" stroke-width="2"/></svg>`,
		[]InstructionType{MoveInstruction, LineInstruction, LineInstruction, LineInstruction, CloseInstruction, PaintInstruction},
		[]float64{0, 100, 200, 200, 0},
		[]float64{0, 0, 100, 200, 0},
	},
	{
		"relative h-line test",
		`<svg viewBox="0 0 100 100"><path d="M0.000 0.000 h100.000 50.000" fill="#000000" stroke="#000000" stroke-width="2"/></svg>`,
		[]InstructionType{MoveInstruction, LineInstruction, LineInstruction, PaintInstruction},
		[]float64{0, 100, 150, 0},
		[]float64{0, 0, 0, 0},
	},
	{
		"absolute h-line test",
		`<svg viewBox="0 0 100 100"><path d="M0.000 0.000 H100.000 50.000" fill="#000000" stroke="#000000" stroke-width="2"/></svg>`,
		[]InstructionType{MoveInstruction, LineInstruction, LineInstruction, PaintInstruction},
		[]float64{0, 100, 50, 0},
		[]float64{0, 0, 0, 0},
	},
	{
		"relative v-line test",
		`<svg viewBox="0 0 100 100"><path d="M0.000 0.000 v100.000 50.000" fill="#000000" stroke="#000000" stroke-width="2"/></svg>`,
		[]InstructionType{MoveInstruction, LineInstruction, LineInstruction, PaintInstruction},
		[]float64{0, 0, 0, 0},
		[]float64{0, 100, 150, 0},
	},
	{
		"absolute v-line test",
		`<svg viewBox="0 0 100 100"><path d="M0.000 0.000 V100.000 50.000" fill="#000000" stroke="#000000" stroke-width="2"/></svg>`,
		[]InstructionType{MoveInstruction, LineInstruction, LineInstruction, PaintInstruction},
		[]float64{0, 0, 0, 0},
		[]float64{0, 100, 50, 0},
	},
	{
		"absolute arc",
		`<svg viewBox="0 0 100 100"><path d="M 50 95 A 45 45 0 0 0 50 5" stroke="red" stroke-width="10"/></svg>`,
		[]InstructionType{MoveInstruction, ArcInstruction, PaintInstruction},
		[]float64{50, 50},
		[]float64{95, 5},
	},
}

func TestParsePathList(t *testing.T) {
	for _, test := range tests {
		svg, err := ParseSvg(test.Svg, "test", 0)
		require.NoError(t, err)

		strux, err := svg.DrawingInstructions()
		require.NoError(t, err, test.Description)

		if len(strux) != len(test.Kinds) {
			t.Fatalf("expected %d instructions for test %s, but received %d", len(test.Kinds), test.Description, len(strux))
		}

		for i, kind := range test.Kinds {
			if strux[i].Kind != kind {
				t.Fatalf("expected instruction %d for test %s to be %s, but was %s", i, test.Description, kind, strux[i].Kind)
			}
		}

		for i, x := range test.XCoords {
			if strux[i].M == nil {
				continue
			}

			if strux[i].M[0] != x {
				t.Fatalf("expected X coordinate %d for test %s to be %f, but was %f", i, test.Description, x, strux[i].M[0])
			}
		}

		for i, y := range test.YCoords {
			if strux[i].M == nil {
				continue
			}

			if strux[i].M[1] != y {
				t.Fatalf("expected Y coordinate %d for test %s to be %f, but was %f", i, test.Description, y, strux[i].M[1])
			}
		}
	}
}

func TestPathPaintInstruction(t *testing.T) {
	svg, err := ParseSvg(`<svg><path d="M 0 0 L 10 0" stroke="#123456" stroke-width="3" stroke-linecap="round" fill="none"/></svg>`, "paint", 2)
	require.NoError(t, err)

	dis, err := svg.DrawingInstructions()
	require.NoError(t, err)
	paint := dis[len(dis)-1]
	require.Equal(t, PaintInstruction, paint.Kind)
	require.Equal(t, "#123456", *paint.Stroke)
	require.Equal(t, "round", *paint.StrokeLinecap)
	require.Equal(t, "none", *paint.Fill)
	require.InDelta(t, 6, *paint.StrokeWidth, 1e-9)

	// The document scale applies to coordinates too.
	require.InDelta(t, 20, dis[1].M[0], 1e-9)
}

func TestPathStyleOverridesAttributes(t *testing.T) {
	p := &Path{D: "M 0 0 L 1 1", Stroke: "red", StrokeWidth: 1, Style: "stroke: blue; stroke-width: 4px"}
	dis, err := p.DrawingInstructions()
	require.NoError(t, err)
	paint := dis[len(dis)-1]
	require.Equal(t, "blue", *paint.Stroke)
	require.Equal(t, 4.0, *paint.StrokeWidth)

	// The path keeps its own attributes.
	require.Equal(t, "red", p.Stroke)
	require.Equal(t, 1.0, p.StrokeWidth)
}

func TestPathCubicCurve(t *testing.T) {
	svg, err := ParseSvg(`<svg><path d="M 0 0 C 10 10 20 10 30 0 c 1 1 2 2 3 0 L 40 0"/></svg>`, "curve", 0)
	require.NoError(t, err)

	dis, err := svg.DrawingInstructions()
	require.NoError(t, err)
	kinds := make([]InstructionType, len(dis))
	for i, di := range dis {
		kinds[i] = di.Kind
	}
	require.Equal(t, []InstructionType{MoveInstruction, CurveInstruction, CurveInstruction, LineInstruction, PaintInstruction}, kinds)

	abs := dis[1]
	require.Equal(t, Tuple{10, 10}, *abs.C1)
	require.Equal(t, Tuple{20, 10}, *abs.C2)
	require.Equal(t, Tuple{30, 0}, *abs.T)
	require.Equal(t, *abs.T, *abs.M)

	// Relative control points are offsets from the segment start.
	rel := dis[2]
	require.Equal(t, Tuple{31, 1}, *rel.C1)
	require.Equal(t, Tuple{32, 2}, *rel.C2)
	require.Equal(t, Tuple{33, 0}, *rel.T)
}

func TestPathCubicCurveTransformed(t *testing.T) {
	svg, err := ParseSvg(`<svg><g transform="translate(5 7)"><path d="M 0 0 C 1 2 3 4 5 6"/></g></svg>`, "curve", 0)
	require.NoError(t, err)

	dis, err := svg.DrawingInstructions()
	require.NoError(t, err)
	curve := dis[1]
	require.Equal(t, CurveInstruction, curve.Kind)
	require.InDelta(t, 6, curve.C1[0], 1e-9)
	require.InDelta(t, 9, curve.C1[1], 1e-9)
	require.InDelta(t, 8, curve.C2[0], 1e-9)
	require.InDelta(t, 11, curve.C2[1], 1e-9)
	require.InDelta(t, 10, curve.T[0], 1e-9)
	require.InDelta(t, 13, curve.T[1], 1e-9)
}

func TestDrawingInstructionsDocumentOrder(t *testing.T) {
	firstX := func(t *testing.T, dis []*DrawingInstruction) []float64 {
		t.Helper()
		var xs []float64
		for _, di := range dis {
			if di.Kind == LineInstruction {
				xs = append(xs, di.M[0])
			}
		}
		return xs
	}

	svg, err := ParseSvg(`<svg>
<path d="M 0 0 L 1 0"/>
<g><path d="M 0 0 L 2 0"/></g>
<path d="M 0 0 L 3 0"/>
</svg>`, "order", 0)
	require.NoError(t, err)
	dis, err := svg.DrawingInstructions()
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, firstX(t, dis))

	svg, err = ParseSvg(`<svg><g>
<path d="M 0 0 L 1 0"/>
<g><path d="M 0 0 L 2 0"/></g>
<path d="M 0 0 L 3 0"/>
</g></svg>`, "order", 0)
	require.NoError(t, err)
	dis, err = svg.Groups[0].DrawingInstructions()
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, firstX(t, dis))
}

func TestPathGroupTransform(t *testing.T) {
	svg, err := ParseSvg(`<svg><g transform="rotate(90 50 50)"><path d="M 50 5 A 45 45 0 0 0 5 50"/></g></svg>`, "rotated", 0)
	require.NoError(t, err)

	dis, err := svg.DrawingInstructions()
	require.NoError(t, err)
	require.Len(t, dis, 3)

	// rotate(90) turns the top of the circle to its right-hand side.
	require.InDelta(t, 95, dis[0].M[0], 1e-9)
	require.InDelta(t, 50, dis[0].M[1], 1e-9)

	arc := dis[1]
	require.Equal(t, ArcInstruction, arc.Kind)
	require.InDelta(t, 95, arc.From[0], 1e-9)
	require.InDelta(t, 50, arc.From[1], 1e-9)
	require.InDelta(t, 50, arc.M[0], 1e-9)
	require.InDelta(t, 5, arc.M[1], 1e-9)
	require.InDelta(t, 45, arc.Radius[0], 1e-9)
	require.False(t, arc.Sweep)
}

func TestPathUnsupportedCommand(t *testing.T) {
	p := &Path{ID: "curvy", D: "M 0 0 Q 1 1 2 2"}
	_, err := p.DrawingInstructions()
	require.Error(t, err)
	require.Contains(t, err.Error(), "curvy")
}

func TestArcCenter(t *testing.T) {
	cases := []struct {
		name            string
		from, to        Tuple
		largeArc, sweep bool
		center          Tuple
	}{
		{"half turn", PolarToCartesian(50, 50, 45, 180*arcEndGuard), PolarToCartesian(50, 50, 45, 0), false, false, Tuple{50, 50}},
		{"three quarters", PolarToCartesian(50, 50, 45, 270*arcEndGuard), PolarToCartesian(50, 50, 45, 0), true, false, Tuple{50, 50}},
		{"quarter", PolarToCartesian(50, 50, 45, 90*arcEndGuard), PolarToCartesian(50, 50, 45, 0), false, false, Tuple{50, 50}},
		{"full", PolarToCartesian(50, 50, 45, 360*arcEndGuard), PolarToCartesian(50, 50, 45, 0), true, false, Tuple{50, 50}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cx, cy, r := arcCenter(c.from, c.to, 45, c.largeArc, c.sweep)
			require.InDelta(t, c.center[0], cx, 1e-2)
			require.InDelta(t, c.center[1], cy, 1e-2)
			require.InDelta(t, 45, r, 1e-2)
		})
	}
}

func TestArcCenterGrowsShortRadius(t *testing.T) {
	cx, cy, r := arcCenter(Tuple{0, 0}, Tuple{10, 0}, 1, false, true)
	require.InDelta(t, 5, cx, 1e-9)
	require.InDelta(t, 0, cy, 1e-9)
	require.InDelta(t, 5, r, 1e-9)
	require.False(t, math.IsNaN(cx))
}
