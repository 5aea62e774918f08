package shape

import (
	"tikzdraw/core"
	"tikzdraw/geometry"
)

// Quad is a quadratic Bézier curve with endpoints P0, P1 and a single
// control point.
type Quad struct {
	id      string
	P0, P1  core.Point
	Control core.Point
	Stroke  core.Style
}

// NewQuad creates a quadratic Bézier. Curves never fill.
func NewQuad(p0, p1, control core.Point, style core.Style) *Quad {
	style.FillEnabled = false
	return &Quad{id: newID(), P0: p0, P1: p1, Control: control, Stroke: style}
}

func (q *Quad) ID() string        { return q.id }
func (q *Quad) Kind() Kind        { return KindQuad }
func (q *Quad) Style() core.Style { return q.Stroke }

// Center returns the centroid of the two endpoints and the control point.
func (q *Quad) Center() core.Point {
	return core.Point{
		X: (q.P0.X + q.P1.X + q.Control.X) / 3,
		Y: (q.P0.Y + q.P1.Y + q.Control.Y) / 3,
	}
}

func (q *Quad) Handles() []core.Handle {
	c := q.Center()
	return []core.Handle{
		{Pos: q.P0, Kind: core.HandleP0},
		{Pos: q.P1, Kind: core.HandleP1},
		{Pos: q.Control, Kind: core.HandleControl},
		{Pos: c, Kind: core.HandleMove},
		{Pos: c.Add(0, -rotateOffsetPath), Kind: core.HandleRotate},
	}
}

func (q *Quad) MoveBy(dx, dy float64) {
	q.P0 = q.P0.Add(dx, dy)
	q.P1 = q.P1.Add(dx, dy)
	q.Control = q.Control.Add(dx, dy)
}

// RotateBy rotates all three points about the centroid. The centroid
// is invariant under the rotation, so increments compose cleanly.
func (q *Quad) RotateBy(ddeg float64) {
	c := q.Center()
	q.P0 = geometry.RotatePoint(q.P0, c, ddeg)
	q.P1 = geometry.RotatePoint(q.P1, c, ddeg)
	q.Control = geometry.RotatePoint(q.Control, c, ddeg)
}

// RotateTo is a no-op: curves do not store an absolute angle.
func (q *Quad) RotateTo(deg float64) {}

func (q *Quad) HandleDrag(kind core.HandleKind, x, y float64) {
	p := core.Point{X: x, Y: y}
	switch kind {
	case core.HandleP0:
		q.P0 = p
	case core.HandleP1:
		q.P1 = p
	case core.HandleControl:
		q.Control = p
	}
}
