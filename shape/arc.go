package shape

import (
	"math"

	"tikzdraw/core"
	"tikzdraw/geometry"
)

// Arc is a circular arc defined by a center, radius and a start/end
// angle pair in degrees. Angles follow the canvas atan2 convention
// (y down) and are kept normalized to [0,360).
type Arc struct {
	id         string
	C          core.Point
	R          float64
	StartAngle float64
	EndAngle   float64
	Stroke     core.Style
}

// NewArc creates an arc. A negative radius is clamped to zero.
func NewArc(center core.Point, radius, startAngle, endAngle float64, style core.Style) *Arc {
	return &Arc{
		id:         newID(),
		C:          center,
		R:          math.Max(0, radius),
		StartAngle: geometry.NormalizeDeg(startAngle),
		EndAngle:   geometry.NormalizeDeg(endAngle),
		Stroke:     style,
	}
}

func (a *Arc) ID() string        { return a.id }
func (a *Arc) Kind() Kind        { return KindArc }
func (a *Arc) Style() core.Style { return a.Stroke }

func (a *Arc) Center() core.Point { return a.C }

// PointAt returns the point on the arc's circle at the given angle.
func (a *Arc) PointAt(deg float64) core.Point {
	rad := deg * math.Pi / 180
	return a.C.Add(a.R*math.Cos(rad), a.R*math.Sin(rad))
}

func (a *Arc) Handles() []core.Handle {
	return []core.Handle{
		{Pos: a.C, Kind: core.HandleMove},
		{Pos: a.PointAt(a.StartAngle), Kind: core.HandleStart},
		{Pos: a.PointAt(a.EndAngle), Kind: core.HandleEnd},
	}
}

func (a *Arc) MoveBy(dx, dy float64) {
	a.C = a.C.Add(dx, dy)
}

// RotateBy shifts both angles by the same delta, preserving the arc's
// angular span.
func (a *Arc) RotateBy(ddeg float64) {
	a.StartAngle = geometry.NormalizeDeg(a.StartAngle + ddeg)
	a.EndAngle = geometry.NormalizeDeg(a.EndAngle + ddeg)
}

// RotateTo rotates the arc so the start angle lands on deg, keeping
// the span intact.
func (a *Arc) RotateTo(deg float64) {
	delta := geometry.NormalizeDeg(deg - a.StartAngle)
	a.StartAngle = geometry.NormalizeDeg(deg)
	a.EndAngle = geometry.NormalizeDeg(a.EndAngle + delta)
}

func (a *Arc) HandleDrag(kind core.HandleKind, x, y float64) {
	switch kind {
	case core.HandleStart:
		a.StartAngle = geometry.NormalizeDeg(geometry.AngleBetween(a.C, core.Point{X: x, Y: y}))
	case core.HandleEnd:
		a.EndAngle = geometry.NormalizeDeg(geometry.AngleBetween(a.C, core.Point{X: x, Y: y}))
	}
}
