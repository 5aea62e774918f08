// Package document holds the ordered shape collection and the linear
// action history that makes structural edits undoable.
package document

import (
	"fmt"

	"tikzdraw/shape"
)

// Document is an ordered sequence of shapes plus the action log.
// Insertion order is paint order: later shapes draw on top and win
// hit-testing. At most one shape is selected at a time.
type Document struct {
	shapes   []shape.Shape
	actions  []Action
	selected shape.Shape
}

// New creates an empty document.
func New() *Document {
	return &Document{}
}

// Shapes returns the shapes in paint order. The slice is shared;
// callers must not mutate it.
func (d *Document) Shapes() []shape.Shape {
	return d.shapes
}

// Len returns the number of shapes.
func (d *Document) Len() int {
	return len(d.shapes)
}

// Selected returns the current selection, or nil.
func (d *Document) Selected() shape.Shape {
	return d.selected
}

// Select makes s the selection. Passing nil clears it.
func (d *Document) Select(s shape.Shape) {
	d.selected = s
}

// indexOf locates a shape by identity. Returns -1 when absent.
func (d *Document) indexOf(s shape.Shape) int {
	for i, existing := range d.shapes {
		if existing.ID() == s.ID() {
			return i
		}
	}
	return -1
}

// Add appends s to the document, records an add action and selects s.
func (d *Document) Add(s shape.Shape) {
	idx := len(d.shapes)
	d.shapes = append(d.shapes, s)
	d.actions = append(d.actions, Action{Kind: ActionAdd, Shape: s, Index: idx})
	d.selected = s
}

// Remove deletes s by identity, recording a remove action with the
// index it occupied. Removing a shape that is not present is a
// defensive no-op. Reports whether the shape was found.
func (d *Document) Remove(s shape.Shape) bool {
	idx := d.indexOf(s)
	if idx < 0 {
		return false
	}
	d.actions = append(d.actions, Action{Kind: ActionRemove, Shape: s, Index: idx})
	d.shapes = append(d.shapes[:idx], d.shapes[idx+1:]...)
	if d.selected != nil && d.selected.ID() == s.ID() {
		d.selected = nil
	}
	return true
}

// Clear empties the document, recording a clear action that snapshots
// the full sequence. Clearing an empty document records nothing.
// Reports whether anything was cleared.
func (d *Document) Clear() bool {
	if len(d.shapes) == 0 {
		return false
	}
	snapshot := make([]shape.Shape, len(d.shapes))
	copy(snapshot, d.shapes)
	d.actions = append(d.actions, Action{Kind: ActionClear, Shapes: snapshot})
	d.shapes = nil
	d.selected = nil
	return true
}

// CanUndo reports whether the history holds any actions.
func (d *Document) CanUndo() bool {
	return len(d.actions) > 0
}

// Undo pops the last action and inverts it. Undoing a remove re-inserts
// the shape at its recorded index, falling back to append when later
// edits pushed the index out of range. The selection is always cleared.
// Returns a status message and whether anything was undone.
func (d *Document) Undo() (string, bool) {
	if len(d.actions) == 0 {
		return "Nothing to undo.", false
	}
	act := d.actions[len(d.actions)-1]
	d.actions = d.actions[:len(d.actions)-1]

	var status string
	switch act.Kind {
	case ActionAdd:
		if idx := d.indexOf(act.Shape); idx >= 0 {
			d.shapes = append(d.shapes[:idx], d.shapes[idx+1:]...)
		}
		status = "Undo: removed the previously added shape."
	case ActionRemove:
		if act.Index < 0 || act.Index > len(d.shapes) {
			d.shapes = append(d.shapes, act.Shape)
		} else {
			d.shapes = append(d.shapes, nil)
			copy(d.shapes[act.Index+1:], d.shapes[act.Index:])
			d.shapes[act.Index] = act.Shape
		}
		status = "Undo: restored the previously removed shape."
	case ActionClear:
		d.shapes = make([]shape.Shape, len(act.Shapes))
		copy(d.shapes, act.Shapes)
		status = "Undo: restored shapes that were cleared."
	default:
		status = fmt.Sprintf("Undo: unknown action type %q (no change).", act.Kind)
	}
	d.selected = nil
	return status, true
}

// UndoTo unwinds the history until only the actions up to and
// including target remain. It is a no-op when the history is already
// at or before that point.
func (d *Document) UndoTo(target int) {
	for len(d.actions) > target+1 {
		if _, ok := d.Undo(); !ok {
			return
		}
	}
}

// Actions returns the history oldest-first for read-only enumeration.
func (d *Document) Actions() []Action {
	return d.actions
}
