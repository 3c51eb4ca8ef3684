// Package svgprogress draws circular progress indicators as SVG.
//
// A ring is described by Props and turned into a document by Render:
//
//	view, err := svgprogress.Render(svgprogress.Props{
//		Size:            120,
//		Width:           12,
//		Fill:            75,
//		BackgroundColor: "#3d5875",
//		Gradient: &svgprogress.GradientProps{
//			X1: "0", Y1: "0", X2: "1", Y2: "0",
//			Offset1: "0%", Offset2: "100%",
//			Color1: "#00e0ff", Color2: "#7b00ff",
//		},
//		Children: svgprogress.Label("%.0f%%", "#333", "24"),
//	})
//	if err != nil {
//		return err
//	}
//	return view.WriteSVG(os.Stdout)
//
// The fill is clamped to [0, 100] on every render. The background track
// spans the whole ArcSweepAngle and is drawn only when BackgroundColor is
// set; the foreground arc spans the filled share and is drawn only when the
// clamped fill is positive. Both arcs share one rotation around the surface
// center.
//
// Documents can be read back with ParseSvg, lexed into DrawingInstructions,
// summarised with Arcs and rasterized with EncodePNG.
package svgprogress
