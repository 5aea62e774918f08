package render

import (
	"math"

	"github.com/google/uuid"

	"tikzdraw/core"
	"tikzdraw/geometry"
	"tikzdraw/shape"
)

// Sampling densities, matching what the editor's previews use so the
// final drawing agrees numerically with its preview.
const (
	quadSamples     = 64
	ellipseSegments = 108
)

// Handle overlay sizing and colors.
const (
	handleHalf     = 4
	rotateHandleR  = 6
	handleOutline  = "#933"
	handleFill     = "#FCC"
	rotateOutline  = "#339"
	previewColor   = "#888"
	previewHelper  = "#bbb"
	handleOwnerKey = "__handles__"
	previewOwner   = "__preview__"
)

// Renderer owns the shape-to-primitive mapping on one surface. Each
// shape's primitives are tagged with its ID so hit-testing can walk
// from a screen region back to the topmost shape.
type Renderer struct {
	surface Surface
	prims   map[string][]PrimitiveID // shape ID -> primitives
	owner   map[PrimitiveID]string   // primitive -> shape ID
}

// New creates a renderer on the given surface.
func New(surface Surface) *Renderer {
	return &Renderer{
		surface: surface,
		prims:   make(map[string][]PrimitiveID),
		owner:   make(map[PrimitiveID]string),
	}
}

func (r *Renderer) newPrim(ownerKey string) PrimitiveID {
	id := PrimitiveID(uuid.NewString())
	r.prims[ownerKey] = append(r.prims[ownerKey], id)
	r.owner[id] = ownerKey
	return id
}

func (r *Renderer) deleteOwned(ownerKey string) {
	for _, id := range r.prims[ownerKey] {
		r.surface.Delete(id)
		delete(r.owner, id)
	}
	delete(r.prims, ownerKey)
}

// DrawShape replaces the shape's primitives with a fresh rendering of
// its current geometry.
func (r *Renderer) DrawShape(s shape.Shape) {
	r.deleteOwned(s.ID())

	st := s.Style()
	paint := Paint{Color: st.Color, Width: st.Width, FillOpacity: st.FillOpacity}
	if st.FillEnabled {
		paint.Fill = st.FillColor
	}

	switch v := s.(type) {
	case *shape.Arrow:
		r.surface.Line(r.newPrim(v.ID()), v.P0, v.P1, paint)
		r.drawArrowHead(v)
	case *shape.Line:
		r.surface.Line(r.newPrim(v.ID()), v.P0, v.P1, paint)
	case *shape.Quad:
		pts := geometry.QuadPoints(v.P0, v.Control, v.P1, quadSamples)
		r.surface.Polyline(r.newPrim(v.ID()), pts, paint)
		// subtle control point marker
		marker := Paint{Color: st.Color, Width: 1}
		r.surface.Oval(r.newPrim(v.ID()), v.Control.Add(-2, -2), v.Control.Add(2, 2), marker)
	case *shape.Rect:
		corners := v.Corners()
		r.surface.Polygon(r.newPrim(v.ID()), corners[:], paint)
	case *shape.Ellipse:
		pts := geometry.EllipsePolygon(v.C, v.Rx, v.Ry, v.Angle, ellipseSegments)
		r.surface.Polygon(r.newPrim(v.ID()), pts, paint)
	case *shape.Dot:
		r.surface.Oval(r.newPrim(v.ID()), v.C.Add(-v.R, -v.R), v.C.Add(v.R, v.R), paint)
	case *shape.Circle:
		r.surface.Oval(r.newPrim(v.ID()), v.C.Add(-v.R, -v.R), v.C.Add(v.R, v.R), paint)
	case *shape.Text:
		r.surface.Text(r.newPrim(v.ID()), v.Pos, v.Text, v.Size, st.Color)
	case *shape.Arc:
		r.surface.Arc(r.newPrim(v.ID()), v.C, v.R, v.StartAngle, v.EndAngle, paint)
	}
}

// drawArrowHead draws the triangular head at the P1 end. The head
// scales with stroke width but never drops below 8 units.
func (r *Renderer) drawArrowHead(a *shape.Arrow) {
	ang := math.Atan2(a.P1.Y-a.P0.Y, a.P1.X-a.P0.X)
	headLen := math.Max(8, 6+float64(a.Stroke.Width)*1.5)
	left := core.Point{
		X: a.P1.X - headLen*math.Cos(ang-math.Pi/6),
		Y: a.P1.Y - headLen*math.Sin(ang-math.Pi/6),
	}
	right := core.Point{
		X: a.P1.X - headLen*math.Cos(ang+math.Pi/6),
		Y: a.P1.Y - headLen*math.Sin(ang+math.Pi/6),
	}
	paint := Paint{Color: a.Stroke.Color, Width: 1, Fill: a.Stroke.Color, FillOpacity: 1}
	r.surface.Polygon(r.newPrim(a.ID()), []core.Point{a.P1, left, right}, paint)
}

// RemoveShape deletes the shape's primitives from the surface.
func (r *Renderer) RemoveShape(s shape.Shape) {
	r.deleteOwned(s.ID())
}

// DrawAll redraws every shape in paint order.
func (r *Renderer) DrawAll(shapes []shape.Shape) {
	for _, s := range shapes {
		r.DrawShape(s)
	}
}

// Clear removes every primitive the renderer created, overlays included.
func (r *Renderer) Clear() {
	for key := range r.prims {
		r.deleteOwned(key)
	}
}

// DrawHandles replaces the handle overlay with the handles of s.
// Square markers edit geometry; the round marker rotates.
func (r *Renderer) DrawHandles(s shape.Shape) {
	r.ClearHandles()
	if s == nil {
		return
	}
	for _, h := range s.Handles() {
		if h.Kind == core.HandleRotate {
			paint := Paint{Color: rotateOutline, Width: 2}
			r.surface.Oval(r.newPrim(handleOwnerKey),
				h.Pos.Add(-rotateHandleR, -rotateHandleR),
				h.Pos.Add(rotateHandleR, rotateHandleR), paint)
			continue
		}
		paint := Paint{Color: handleOutline, Width: 1, Fill: handleFill, FillOpacity: 1}
		corners := geometry.RectCorners(h.Pos.Add(-handleHalf, -handleHalf),
			h.Pos.Add(handleHalf, handleHalf), 0)
		r.surface.Polygon(r.newPrim(handleOwnerKey), corners[:], paint)
	}
}

// ClearHandles removes the handle overlay.
func (r *Renderer) ClearHandles() {
	r.deleteOwned(handleOwnerKey)
}

// ShapeAt returns the topmost shape whose primitives overlap the box
// of half-width tol around p, or nil. Later shapes paint on top, so
// the scan walks the sequence back to front.
func (r *Renderer) ShapeAt(shapes []shape.Shape, p core.Point, tol float64) shape.Shape {
	hits := make(map[PrimitiveID]bool)
	for _, id := range r.surface.PrimitivesAt(p, tol) {
		hits[id] = true
	}
	for i := len(shapes) - 1; i >= 0; i-- {
		for _, id := range r.prims[shapes[i].ID()] {
			if hits[id] {
				return shapes[i]
			}
		}
	}
	return nil
}
