package shape

import "tikzdraw/core"

// Text is a borderless text node anchored at a point.
type Text struct {
	id     string
	Pos    core.Point
	Text   string
	Size   int // font size in points
	Stroke core.Style
}

// NewText creates a text node. Only the stroke color applies to text;
// the other style fields are carried but unused.
func NewText(pos core.Point, text string, size int, style core.Style) *Text {
	style.FillEnabled = false
	return &Text{id: newID(), Pos: pos, Text: text, Size: size, Stroke: style}
}

func (t *Text) ID() string        { return t.id }
func (t *Text) Kind() Kind        { return KindText }
func (t *Text) Style() core.Style { return t.Stroke }

func (t *Text) Center() core.Point { return t.Pos }

func (t *Text) Handles() []core.Handle {
	return []core.Handle{{Pos: t.Pos, Kind: core.HandleMove}}
}

func (t *Text) MoveBy(dx, dy float64) {
	t.Pos = t.Pos.Add(dx, dy)
}

// RotateBy is a no-op: text nodes do not rotate.
func (t *Text) RotateBy(ddeg float64) {}

// RotateTo is a no-op.
func (t *Text) RotateTo(deg float64) {}

// HandleDrag is a no-op: the move handle is driven through MoveBy.
func (t *Text) HandleDrag(kind core.HandleKind, x, y float64) {}
