package document

import (
	"fmt"

	"tikzdraw/shape"
)

// ActionKind tags the structural edit an Action records.
type ActionKind string

const (
	ActionAdd    ActionKind = "add"
	ActionRemove ActionKind = "remove"
	ActionClear  ActionKind = "clear"
)

// Action records one reversible structural edit to the document.
// Add and Remove carry the shape and the index it occupied; Clear
// carries a snapshot of the whole sequence.
type Action struct {
	Kind   ActionKind
	Shape  shape.Shape
	Index  int
	Shapes []shape.Shape // populated for Clear only
}

// Describe returns a short human-readable description for history views.
func (a Action) Describe() string {
	switch a.Kind {
	case ActionAdd:
		return fmt.Sprintf("Add %s (index=%d)", a.Shape.Kind(), a.Index)
	case ActionRemove:
		return fmt.Sprintf("Remove %s (from index=%d)", a.Shape.Kind(), a.Index)
	case ActionClear:
		return fmt.Sprintf("Clear all (%d shapes)", len(a.Shapes))
	default:
		return fmt.Sprintf("Action: %s", a.Kind)
	}
}
