// Package geometry provides the pure math shared by shapes, previews and export.
package geometry

import (
	"fmt"
	"math"

	"tikzdraw/core"
)

// AngleEpsilon is the threshold below which a rotation angle is treated as zero.
const AngleEpsilon = 1e-9

// Snap rounds each coordinate to the nearest multiple of step.
// When disabled it is the identity. Halfway values round away from
// zero, following math.Round.
func Snap(x, y float64, enabled bool, step float64) (float64, float64) {
	if !enabled || step <= 0 {
		return x, y
	}
	return math.Round(x/step) * step, math.Round(y/step) * step
}

// RotatePoint rotates p about pivot by deg degrees. With y growing
// downward a positive angle turns clockwise on screen. The angle is
// used as given; callers normalize stored angles separately.
func RotatePoint(p, pivot core.Point, deg float64) core.Point {
	th := deg * math.Pi / 180
	s, c := math.Sin(th), math.Cos(th)
	x := p.X - pivot.X
	y := p.Y - pivot.Y
	return core.Point{
		X: pivot.X + x*c - y*s,
		Y: pivot.Y + x*s + y*c,
	}
}

// NormalizeDeg maps an angle into [0, 360).
func NormalizeDeg(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	return m
}

// EllipsePolygon samples segments points evenly around the parametric
// ellipse centered at center with radii rx, ry, rotating each sample
// about the center when deg is non-negligible. The polygon is not
// explicitly closed; consumers close it implicitly.
func EllipsePolygon(center core.Point, rx, ry, deg float64, segments int) []core.Point {
	pts := make([]core.Point, 0, segments)
	for i := 0; i < segments; i++ {
		t := 2 * math.Pi * float64(i) / float64(segments)
		p := core.Point{
			X: center.X + rx*math.Cos(t),
			Y: center.Y + ry*math.Sin(t),
		}
		if math.Abs(deg) > AngleEpsilon {
			p = RotatePoint(p, center, deg)
		}
		pts = append(pts, p)
	}
	return pts
}

// RectCorners computes the four corners of the rectangle spanned by
// two opposite corners p0 and p1, rotated about the midpoint when deg
// is non-negligible. Corners are ordered clockwise from the top-left
// of the unrotated frame; rendering and export both rely on that order.
func RectCorners(p0, p1 core.Point, deg float64) [4]core.Point {
	c := core.Midpoint(p0, p1)
	w := math.Abs(p1.X-p0.X) / 2
	h := math.Abs(p1.Y-p0.Y) / 2
	corners := [4]core.Point{
		{X: c.X - w, Y: c.Y - h},
		{X: c.X + w, Y: c.Y - h},
		{X: c.X + w, Y: c.Y + h},
		{X: c.X - w, Y: c.Y + h},
	}
	if math.Abs(deg) > AngleEpsilon {
		for i, p := range corners {
			corners[i] = RotatePoint(p, c, deg)
		}
	}
	return corners
}

// QuadPoints samples the quadratic Bézier with endpoints p0, p1 and
// control point c at n parameter values spaced over [0, 1].
func QuadPoints(p0, c, p1 core.Point, n int) []core.Point {
	if n < 2 {
		n = 2
	}
	pts := make([]core.Point, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		mt := 1 - t
		pts = append(pts, core.Point{
			X: mt*mt*p0.X + 2*mt*t*c.X + t*t*p1.X,
			Y: mt*mt*p0.Y + 2*mt*t*c.Y + t*t*p1.Y,
		})
	}
	return pts
}

// ArcPolyline samples n points along the circular arc around center,
// from startDeg toward endDeg in the increasing-angle direction. The
// span is the normalized angular difference; coincident angles give a
// full turn.
func ArcPolyline(center core.Point, r, startDeg, endDeg float64, n int) []core.Point {
	if n < 2 {
		n = 2
	}
	span := NormalizeDeg(endDeg - startDeg)
	if span == 0 {
		span = 360
	}
	pts := make([]core.Point, 0, n)
	for i := 0; i < n; i++ {
		rad := (startDeg + span*float64(i)/float64(n-1)) * math.Pi / 180
		pts = append(pts, core.Point{
			X: center.X + r*math.Cos(rad),
			Y: center.Y + r*math.Sin(rad),
		})
	}
	return pts
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q core.Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// AngleBetween returns the angle in degrees of the ray from p0 to p1,
// using the atan2 convention in canvas coordinates (y down).
func AngleBetween(p0, p1 core.Point) float64 {
	return math.Atan2(p1.Y-p0.Y, p1.X-p0.X) * 180 / math.Pi
}

// Fmt formats a coordinate or radius with exactly two decimal places,
// the precision used throughout the TikZ output.
func Fmt(x float64) string {
	return fmt.Sprintf("%.2f", x)
}
