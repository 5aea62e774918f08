package shape

import (
	"tikzdraw/core"
	"tikzdraw/geometry"
)

// Rect is a rectangle stored as two opposite corners plus a rotation
// angle. The corners stay axis-aligned; rotation is applied when the
// rectangle is rendered or exported.
type Rect struct {
	id     string
	P0, P1 core.Point
	Angle  float64 // degrees in [0,360)
	Stroke core.Style
}

// NewRect creates a rectangle from two opposite corners.
func NewRect(p0, p1 core.Point, style core.Style) *Rect {
	return &Rect{id: newID(), P0: p0, P1: p1, Stroke: style}
}

func (r *Rect) ID() string        { return r.id }
func (r *Rect) Kind() Kind        { return KindRect }
func (r *Rect) Style() core.Style { return r.Stroke }

// Center returns the midpoint of the two corners, which is also the
// rotation pivot.
func (r *Rect) Center() core.Point {
	return core.Midpoint(r.P0, r.P1)
}

// Corners returns the four corner points with the stored rotation applied.
func (r *Rect) Corners() [4]core.Point {
	return geometry.RectCorners(r.P0, r.P1, r.Angle)
}

// Handles places the rotate handle above the center in the rectangle's
// local frame, so it orbits the shape as it rotates.
func (r *Rect) Handles() []core.Handle {
	c := r.Center()
	rot := geometry.RotatePoint(c.Add(0, -rotateOffsetShape), c, r.Angle)
	return []core.Handle{
		{Pos: c, Kind: core.HandleMove},
		{Pos: rot, Kind: core.HandleRotate},
	}
}

func (r *Rect) MoveBy(dx, dy float64) {
	r.P0 = r.P0.Add(dx, dy)
	r.P1 = r.P1.Add(dx, dy)
}

// RotateBy increments the stored angle; the corner coordinates are not
// touched.
func (r *Rect) RotateBy(ddeg float64) {
	r.Angle = geometry.NormalizeDeg(r.Angle + ddeg)
}

// RotateTo sets the absolute angle.
func (r *Rect) RotateTo(deg float64) {
	r.Angle = geometry.NormalizeDeg(deg)
}

// HandleDrag is a no-op: rectangles expose only move and rotate
// handles, which the controller drives directly.
func (r *Rect) HandleDrag(kind core.HandleKind, x, y float64) {}
