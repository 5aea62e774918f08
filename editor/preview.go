package editor

import (
	"tikzdraw/core"
	"tikzdraw/geometry"
)

// PreviewKind classifies the transient geometry shown while a drawing
// tool is mid-sequence.
type PreviewKind int

const (
	PreviewNone PreviewKind = iota
	PreviewPath             // open or closed polyline through Points
	PreviewText             // Text at At
)

// Preview is the data driving the live preview for the current tool
// state and pointer position. It is pure data: rendering it is the
// front-end's concern, but the geometry comes from the same kernel
// functions the final shape uses.
type Preview struct {
	Kind   PreviewKind
	Points []core.Point
	Closed bool
	// Anchor and Marker describe a helper spoke (circle center to
	// radius point) or a lone control-point marker when Anchor is nil.
	Anchor *core.Point
	Marker *core.Point
	Text   string
	At     core.Point
	Size   int
}

// Preview returns the preview for the pointer hovering at (x, y).
func (e *Editor) Preview(x, y float64) Preview {
	p := e.snap(x, y)

	switch e.tool {
	case core.ToolLine, core.ToolArrow:
		if len(e.clicks) == 1 {
			return Preview{Kind: PreviewPath, Points: []core.Point{e.clicks[0], p}}
		}
	case core.ToolRect:
		if len(e.clicks) == 1 {
			corners := geometry.RectCorners(e.clicks[0], p, 0)
			return Preview{Kind: PreviewPath, Points: corners[:], Closed: true}
		}
	case core.ToolEllipse:
		if len(e.clicks) == 1 {
			c := core.Midpoint(e.clicks[0], p)
			rx := abs(p.X-e.clicks[0].X) / 2
			ry := abs(p.Y-e.clicks[0].Y) / 2
			pts := geometry.EllipsePolygon(c, rx, ry, 0, previewEllipseSegments)
			return Preview{Kind: PreviewPath, Points: pts, Closed: true}
		}
	case core.ToolCircle:
		if len(e.clicks) == 1 {
			c := e.clicks[0]
			r := geometry.Distance(c, p)
			pts := geometry.EllipsePolygon(c, r, r, 0, previewEllipseSegments)
			anchor, marker := c, p
			return Preview{Kind: PreviewPath, Points: pts, Closed: true,
				Anchor: &anchor, Marker: &marker}
		}
	case core.ToolQuad:
		if len(e.clicks) == 2 {
			pts := geometry.QuadPoints(e.clicks[0], p, e.clicks[1], previewQuadSamples)
			marker := p
			return Preview{Kind: PreviewPath, Points: pts, Marker: &marker}
		}
	case core.ToolArc:
		switch len(e.clicks) {
		case 1:
			// radius spoke from the center to the pointer
			anchor, marker := e.clicks[0], p
			return Preview{Kind: PreviewPath, Anchor: &anchor, Marker: &marker}
		case 2:
			c := e.clicks[0]
			r := geometry.Distance(c, e.clicks[1])
			start := geometry.AngleBetween(c, e.clicks[1])
			end := geometry.AngleBetween(c, p)
			pts := geometry.ArcPolyline(c, r, start, end, previewArcSamples)
			return Preview{Kind: PreviewPath, Points: pts}
		}
	case core.ToolText:
		return Preview{Kind: PreviewText, Text: e.textValue, At: p, Size: e.textSize}
	}
	return Preview{Kind: PreviewNone}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
