// Package core contains the fundamental types used throughout the tikzdraw editor.
package core

// Point represents a 2D coordinate on the canvas.
// The y axis grows downward, matching screen conventions.
type Point struct {
	X, Y float64
}

// Add returns the point translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Midpoint returns the point halfway between p and q.
func Midpoint(p, q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// Style holds the presentation attributes shared by all shapes.
// Not every shape uses every field: open paths ignore the fill
// settings and rotationally symmetric shapes ignore angles.
type Style struct {
	Color       string  // stroke color name
	Width       int     // stroke width in points, positive
	FillEnabled bool
	FillColor   string
	FillOpacity float64 // in [0,1]
}

// DefaultStyle returns the style new sessions start with.
func DefaultStyle() Style {
	return Style{
		Color:       "black",
		Width:       2,
		FillEnabled: false,
		FillColor:   "gray",
		FillOpacity: 1.0,
	}
}

// StrokeColors lists the color names offered by the editor UI.
var StrokeColors = []string{"black", "gray", "red", "blue", "green", "orange", "purple"}

// HandleKind identifies which geometric parameter of a shape a handle edits.
type HandleKind string

const (
	HandleMove    HandleKind = "move"
	HandleRotate  HandleKind = "rotate"
	HandleP0      HandleKind = "p0"
	HandleP1      HandleKind = "p1"
	HandleControl HandleKind = "control"
	HandleRadius  HandleKind = "radius"
	HandleStart   HandleKind = "start"
	HandleEnd     HandleKind = "end"
)

// Handle is an interactive control point overlaid on a selected shape.
type Handle struct {
	Pos  Point
	Kind HandleKind
}

// Tool identifies the active drawing tool.
type Tool string

const (
	ToolCursor  Tool = "cursor"
	ToolLine    Tool = "line"
	ToolArrow   Tool = "arrow"
	ToolQuad    Tool = "quad"
	ToolRect    Tool = "rect"
	ToolEllipse Tool = "ellipse"
	ToolCircle  Tool = "circle"
	ToolText    Tool = "text"
	ToolDot     Tool = "dot"
	ToolArc     Tool = "arc"
)

// ClicksNeeded returns how many staged clicks the tool accumulates
// before a shape is committed. The cursor tool stages none.
func (t Tool) ClicksNeeded() int {
	switch t {
	case ToolLine, ToolArrow, ToolRect, ToolEllipse, ToolCircle:
		return 2
	case ToolQuad, ToolArc:
		return 3
	case ToolText, ToolDot:
		return 1
	default:
		return 0
	}
}

// String returns the tool name for display.
func (t Tool) String() string {
	return string(t)
}
