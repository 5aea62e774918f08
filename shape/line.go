package shape

import (
	"tikzdraw/core"
	"tikzdraw/geometry"
)

// Line is a straight segment between two endpoints.
type Line struct {
	id     string
	P0, P1 core.Point
	Stroke core.Style
}

// NewLine creates a line segment. Lines never fill, so the fill flag
// is cleared regardless of the current style.
func NewLine(p0, p1 core.Point, style core.Style) *Line {
	style.FillEnabled = false
	return &Line{id: newID(), P0: p0, P1: p1, Stroke: style}
}

func (l *Line) ID() string        { return l.id }
func (l *Line) Kind() Kind        { return KindLine }
func (l *Line) Style() core.Style { return l.Stroke }

// Center returns the midpoint of the segment.
func (l *Line) Center() core.Point {
	return core.Midpoint(l.P0, l.P1)
}

func (l *Line) Handles() []core.Handle {
	c := l.Center()
	return []core.Handle{
		{Pos: l.P0, Kind: core.HandleP0},
		{Pos: l.P1, Kind: core.HandleP1},
		{Pos: c, Kind: core.HandleMove},
		{Pos: c.Add(0, -rotateOffsetPath), Kind: core.HandleRotate},
	}
}

func (l *Line) MoveBy(dx, dy float64) {
	l.P0 = l.P0.Add(dx, dy)
	l.P1 = l.P1.Add(dx, dy)
}

// RotateBy rotates both endpoints about the current midpoint. Rotation
// preserves the midpoint, so repeated increments share one pivot.
func (l *Line) RotateBy(ddeg float64) {
	c := l.Center()
	l.P0 = geometry.RotatePoint(l.P0, c, ddeg)
	l.P1 = geometry.RotatePoint(l.P1, c, ddeg)
}

// RotateTo is a no-op: lines do not store an absolute angle.
func (l *Line) RotateTo(deg float64) {}

func (l *Line) HandleDrag(kind core.HandleKind, x, y float64) {
	switch kind {
	case core.HandleP0:
		l.P0 = core.Point{X: x, Y: y}
	case core.HandleP1:
		l.P1 = core.Point{X: x, Y: y}
	}
}

// Arrow is a line with an arrowhead at the P1 end. It carries no state
// beyond the underlying segment; the head is a rendering and export
// concern.
type Arrow struct {
	Line
}

// NewArrow creates an arrow from p0 to p1.
func NewArrow(p0, p1 core.Point, style core.Style) *Arrow {
	style.FillEnabled = false
	return &Arrow{Line: Line{id: newID(), P0: p0, P1: p1, Stroke: style}}
}

func (a *Arrow) Kind() Kind { return KindArrow }
