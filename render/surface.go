// Package render translates shapes into surface primitives and maps
// drawn primitives back to their owning shapes for hit-testing.
package render

import "tikzdraw/core"

// PrimitiveID identifies one primitive created on a Surface. IDs are
// opaque and assigned by the renderer, keeping shapes backend-agnostic.
type PrimitiveID string

// Paint describes how a primitive is stroked and filled.
type Paint struct {
	Color       string
	Width       int
	Fill        string // empty means no fill
	FillOpacity float64
	Dashed      bool
}

// Surface is the drawing backend the renderer targets. Implementations
// create retained primitives keyed by the given IDs so they can later
// be deleted and redrawn, and answer which primitives overlap a small
// region around a point.
type Surface interface {
	// Line draws a straight segment.
	Line(id PrimitiveID, p0, p1 core.Point, paint Paint)
	// Polyline draws an open path through pts.
	Polyline(id PrimitiveID, pts []core.Point, paint Paint)
	// Polygon draws a closed path through pts, filled per paint.
	Polygon(id PrimitiveID, pts []core.Point, paint Paint)
	// Oval draws the ellipse inscribed in the bounding box.
	Oval(id PrimitiveID, topLeft, bottomRight core.Point, paint Paint)
	// Arc draws a circular arc from startDeg to endDeg around center,
	// angles in the canvas convention (y down).
	Arc(id PrimitiveID, center core.Point, r, startDeg, endDeg float64, paint Paint)
	// Text draws a text run centered at p.
	Text(id PrimitiveID, p core.Point, text string, size int, color string)
	// Delete removes a primitive. Unknown IDs are ignored.
	Delete(id PrimitiveID)
	// PrimitivesAt returns the IDs of primitives overlapping the
	// box of half-width tol around p.
	PrimitivesAt(p core.Point, tol float64) []PrimitiveID
}
