package shape

import (
	"math"

	"tikzdraw/core"
	"tikzdraw/geometry"
)

// Ellipse is stored as a center with x/y radii and a rotation angle.
type Ellipse struct {
	id     string
	C      core.Point
	Rx, Ry float64
	Angle  float64 // degrees in [0,360)
	Stroke core.Style
}

// NewEllipse creates an ellipse from two opposite bounding-box corners,
// the form the ellipse tool produces.
func NewEllipse(p0, p1 core.Point, style core.Style) *Ellipse {
	return &Ellipse{
		id:     newID(),
		C:      core.Midpoint(p0, p1),
		Rx:     math.Abs(p1.X-p0.X) / 2,
		Ry:     math.Abs(p1.Y-p0.Y) / 2,
		Stroke: style,
	}
}

func (e *Ellipse) ID() string        { return e.id }
func (e *Ellipse) Kind() Kind        { return KindEllipse }
func (e *Ellipse) Style() core.Style { return e.Stroke }

func (e *Ellipse) Center() core.Point { return e.C }

// Handles places the rotate handle in the ellipse's local frame so it
// orbits with the shape.
func (e *Ellipse) Handles() []core.Handle {
	rot := geometry.RotatePoint(e.C.Add(0, -rotateOffsetShape), e.C, e.Angle)
	return []core.Handle{
		{Pos: e.C, Kind: core.HandleMove},
		{Pos: rot, Kind: core.HandleRotate},
	}
}

func (e *Ellipse) MoveBy(dx, dy float64) {
	e.C = e.C.Add(dx, dy)
}

// RotateBy increments the stored angle without touching the center or radii.
func (e *Ellipse) RotateBy(ddeg float64) {
	e.Angle = geometry.NormalizeDeg(e.Angle + ddeg)
}

// RotateTo sets the absolute angle.
func (e *Ellipse) RotateTo(deg float64) {
	e.Angle = geometry.NormalizeDeg(deg)
}

// HandleDrag is a no-op: ellipses expose only move and rotate handles.
func (e *Ellipse) HandleDrag(kind core.HandleKind, x, y float64) {}
