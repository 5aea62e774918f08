package shape

import (
	"math"

	"tikzdraw/core"
	"tikzdraw/geometry"
)

// Circle is stored as a center and radius.
type Circle struct {
	id     string
	C      core.Point
	R      float64 // always >= 0
	Stroke core.Style
}

// NewCircle creates a circle. A negative radius is clamped to zero.
func NewCircle(center core.Point, radius float64, style core.Style) *Circle {
	return &Circle{id: newID(), C: center, R: math.Max(0, radius), Stroke: style}
}

func (c *Circle) ID() string        { return c.id }
func (c *Circle) Kind() Kind        { return KindCircle }
func (c *Circle) Style() core.Style { return c.Stroke }

func (c *Circle) Center() core.Point { return c.C }

// Handles includes a radius handle on the circle's right edge. The
// rotate handle is kept for consistency with the other variants even
// though rotating a circle does nothing.
func (c *Circle) Handles() []core.Handle {
	return []core.Handle{
		{Pos: c.C, Kind: core.HandleMove},
		{Pos: c.C.Add(c.R, 0), Kind: core.HandleRadius},
		{Pos: c.C.Add(0, -rotateOffsetShape), Kind: core.HandleRotate},
	}
}

func (c *Circle) MoveBy(dx, dy float64) {
	c.C = c.C.Add(dx, dy)
}

// RotateBy is a no-op: circles are rotationally symmetric.
func (c *Circle) RotateBy(ddeg float64) {}

// RotateTo is a no-op.
func (c *Circle) RotateTo(deg float64) {}

func (c *Circle) HandleDrag(kind core.HandleKind, x, y float64) {
	if kind == core.HandleRadius {
		c.R = math.Max(0, geometry.Distance(c.C, core.Point{X: x, Y: y}))
	}
}

// Dot is a small filled circle used as a point marker. It shares the
// circle geometry but exposes only a move handle.
type Dot struct {
	Circle
}

// NewDot creates a dot at center. The dot is filled with the stroke
// color at full opacity and outlined with a hairline stroke; radius
// comes from the current stroke width, per the dot tool.
func NewDot(center core.Point, radius float64, color string) *Dot {
	return &Dot{Circle: Circle{
		id: newID(),
		C:  center,
		R:  math.Max(0, radius),
		Stroke: core.Style{
			Color:       color,
			Width:       1,
			FillEnabled: true,
			FillColor:   color,
			FillOpacity: 1.0,
		},
	}}
}

func (d *Dot) Kind() Kind { return KindDot }

func (d *Dot) Handles() []core.Handle {
	return []core.Handle{{Pos: d.C, Kind: core.HandleMove}}
}
