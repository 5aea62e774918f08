// Package shape defines the closed set of drawable primitives and the
// uniform manipulation contract the editor uses to edit them.
package shape

import (
	"github.com/google/uuid"

	"tikzdraw/core"
)

// Kind names a shape variant. The set is closed: rendering and export
// switch exhaustively over these values.
type Kind string

const (
	KindLine    Kind = "Line"
	KindArrow   Kind = "Arrow"
	KindQuad    Kind = "Quad"
	KindRect    Kind = "Rect"
	KindEllipse Kind = "Ellipse"
	KindCircle  Kind = "Circle"
	KindDot     Kind = "Dot"
	KindText    Kind = "Text"
	KindArc     Kind = "Arc"
)

// Shape is the manipulation contract implemented by every variant.
//
// HandleDrag only updates shape-specific geometry; the move and rotate
// handle kinds are driven by the interaction controller through MoveBy
// and RotateBy and are no-ops here.
type Shape interface {
	// ID returns the shape's identity tag. Document membership and
	// renderer primitive ownership are both keyed on it.
	ID() string
	// Kind returns the variant name.
	Kind() Kind
	// Style returns the shape's presentation attributes.
	Style() core.Style
	// Center returns the shape's geometric centroid, used for move
	// handle placement and as the rotation pivot.
	Center() core.Point
	// Handles enumerates the shape's interactive control points.
	Handles() []core.Handle
	// MoveBy translates all geometric parameters by the delta.
	MoveBy(dx, dy float64)
	// RotateBy applies an incremental rotation in degrees.
	RotateBy(ddeg float64)
	// RotateTo sets the absolute angle where the variant stores one.
	RotateTo(deg float64)
	// HandleDrag repositions the geometry parameter owned by kind to
	// track the pointer at (x, y).
	HandleDrag(kind core.HandleKind, x, y float64)
}

// Rotate handle offsets above the centroid, in canvas units. Open
// paths use the smaller unrotated offset; angle-bearing shapes rotate
// the larger offset with the shape so the handle orbits it.
const (
	rotateOffsetPath  = 36
	rotateOffsetShape = 40
)

func newID() string {
	return uuid.NewString()
}
