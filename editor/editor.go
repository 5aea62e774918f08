// Package editor implements the interaction controller: it translates
// pointer gestures into shape-construction sequences and into edit
// operations against the current selection.
package editor

import (
	"fmt"

	"tikzdraw/core"
	"tikzdraw/document"
	"tikzdraw/geometry"
	"tikzdraw/shape"
)

// Pointer distances, in canvas units.
const (
	// handleGrabDistance is how close a press must land to a handle
	// of the selection to start dragging it.
	handleGrabDistance = 10
	// hitTolerance is the half-width of the box used when hit-testing
	// shapes under the pointer.
	hitTolerance = 3
)

// Preview sampling densities. Coarser than the final rendering but
// produced by the same kernel functions, so preview and result agree.
const (
	previewEllipseSegments = 60
	previewQuadSamples     = 48
	previewArcSamples      = 48
)

// ShapeFinder locates the topmost shape whose drawn primitives lie
// within tol of p. The render layer supplies one; a nil finder
// disables empty-canvas selection.
type ShapeFinder func(p core.Point, tol float64) shape.Shape

// cursorMode is the edit-drag state entered on pointer-down with the
// cursor tool.
type cursorMode int

const (
	modeIdle cursorMode = iota
	modeMove
	modeRotate
	modeHandle
)

// Editor owns the transient interaction state: the active tool and
// style, the click staging buffer, and the cursor-drag mode. All
// structural edits go through the document it wraps.
type Editor struct {
	doc  *document.Document
	find ShapeFinder

	tool        core.Tool
	style       core.Style
	snapEnabled bool
	gridStep    float64
	textValue   string
	textSize    int

	clicks []core.Point // staging for drawing tools

	mode         cursorMode
	activeHandle core.HandleKind
	dragStart    core.Point
	rotateCenter core.Point
	rotateBase   float64 // pointer angle at previous rotate frame

	status string
}

// New creates an editor over doc. find may be nil.
func New(doc *document.Document, find ShapeFinder) *Editor {
	return &Editor{
		doc:         doc,
		find:        find,
		tool:        core.ToolCursor,
		style:       core.DefaultStyle(),
		snapEnabled: true,
		gridStep:    20,
		textValue:   "Hello",
		textSize:    12,
		status:      "Cursor: click a shape to select, drag to move. Use the round handle to rotate.",
	}
}

// Document returns the document the editor edits.
func (e *Editor) Document() *document.Document { return e.doc }

// Status returns the last status message.
func (e *Editor) Status() string { return e.status }

// Tool returns the active tool.
func (e *Editor) Tool() core.Tool { return e.tool }

// SetTool switches tools, cancelling any pending click sequence.
func (e *Editor) SetTool(t core.Tool) {
	if t != e.tool {
		e.clicks = nil
	}
	e.tool = t
	if msg, ok := toolHints[t]; ok {
		e.status = msg
	} else {
		e.status = fmt.Sprintf("Tool: %s selected.", t)
	}
}

var toolHints = map[core.Tool]string{
	core.ToolCursor:  "Cursor: click a shape to select; drag to move; use round handle to rotate; Del to delete.",
	core.ToolLine:    "Line tool: click start, click end to finish.",
	core.ToolArrow:   "Arrow tool: click start, click end to finish.",
	core.ToolRect:    "Rectangle tool: click first corner, then click opposite corner.",
	core.ToolEllipse: "Ellipse tool: click first corner, then click opposite corner.",
	core.ToolCircle:  "Circle tool: click center, then click edge to set radius.",
	core.ToolQuad:    "Quad Bézier: click start, click end, then click to place control.",
	core.ToolText:    "Text tool: click to place the current text.",
	core.ToolDot:     "Dot tool: click to place a dot (small filled circle).",
	core.ToolArc:     "Arc tool: click center, click radius/start point, then click the end angle.",
}

// Style returns the current stroke/fill style.
func (e *Editor) Style() core.Style { return e.style }

// SetStyle replaces the current style.
func (e *Editor) SetStyle(s core.Style) { e.style = s }

// SetColor sets the stroke color.
func (e *Editor) SetColor(c string) { e.style.Color = c }

// SetWidth sets the stroke width; non-positive values are ignored.
func (e *Editor) SetWidth(w int) {
	if w > 0 {
		e.style.Width = w
	}
}

// SetFill configures the fill attributes. Opacity is clamped to [0,1].
func (e *Editor) SetFill(enabled bool, color string, opacity float64) {
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	e.style.FillEnabled = enabled
	e.style.FillColor = color
	e.style.FillOpacity = opacity
}

// SnapEnabled reports whether grid snapping is on.
func (e *Editor) SnapEnabled() bool { return e.snapEnabled }

// SetSnap toggles grid snapping.
func (e *Editor) SetSnap(enabled bool) {
	e.snapEnabled = enabled
	if enabled {
		e.status = fmt.Sprintf("Snap enabled (step=%g).", e.gridStep)
	} else {
		e.status = "Snap disabled."
	}
}

// GridStep returns the snap grid step.
func (e *Editor) GridStep() float64 { return e.gridStep }

// SetGridStep sets the snap grid step; non-positive values are ignored.
func (e *Editor) SetGridStep(step float64) {
	if step > 0 {
		e.gridStep = step
	}
}

// SetText sets the text placed by the text tool.
func (e *Editor) SetText(text string) { e.textValue = text }

// SetTextSize sets the font size used by the text tool.
func (e *Editor) SetTextSize(size int) {
	if size > 0 {
		e.textSize = size
	}
}

// ClicksStaged returns how many clicks the active tool has buffered.
func (e *Editor) ClicksStaged() int { return len(e.clicks) }

// snap applies the grid to a raw pointer position.
func (e *Editor) snap(x, y float64) core.Point {
	sx, sy := geometry.Snap(x, y, e.snapEnabled, e.gridStep)
	return core.Point{X: sx, Y: sy}
}

// Click processes a pointer press at raw canvas coordinates. With the
// cursor tool it selects or starts an edit drag; with a drawing tool
// it stages the click and commits a shape once the tool has enough.
func (e *Editor) Click(x, y float64) {
	p := e.snap(x, y)
	if e.tool == core.ToolCursor {
		e.cursorDown(p)
		return
	}

	e.clicks = append(e.clicks, p)
	switch e.tool {
	case core.ToolLine:
		if len(e.clicks) == 2 {
			e.commit(shape.NewLine(e.clicks[0], e.clicks[1], e.style), "Line added.")
		}
	case core.ToolArrow:
		if len(e.clicks) == 2 {
			e.commit(shape.NewArrow(e.clicks[0], e.clicks[1], e.style), "Arrow added.")
		}
	case core.ToolRect:
		if len(e.clicks) == 2 {
			e.commit(shape.NewRect(e.clicks[0], e.clicks[1], e.style), "Rectangle added.")
		}
	case core.ToolEllipse:
		if len(e.clicks) == 2 {
			e.commit(shape.NewEllipse(e.clicks[0], e.clicks[1], e.style), "Ellipse added.")
		}
	case core.ToolCircle:
		if len(e.clicks) == 2 {
			r := geometry.Distance(e.clicks[0], e.clicks[1])
			e.commit(shape.NewCircle(e.clicks[0], r, e.style),
				fmt.Sprintf("Circle added (r=%.2f).", r))
		}
	case core.ToolQuad:
		switch len(e.clicks) {
		case 1:
			e.status = "Quad: start set. Now click end."
		case 2:
			e.status = "Quad: end set. Click to place the control point."
		case 3:
			e.commit(shape.NewQuad(e.clicks[0], e.clicks[1], e.clicks[2], e.style),
				"Quadratic Bézier added.")
		}
	case core.ToolText:
		e.commit(shape.NewText(p, e.textValue, e.textSize, e.style),
			fmt.Sprintf("Text node added: %q", e.textValue))
	case core.ToolDot:
		e.commit(shape.NewDot(p, float64(e.style.Width), e.style.Color), "Dot added.")
	case core.ToolArc:
		switch len(e.clicks) {
		case 1:
			e.status = "Arc: center set. Click to set radius and start angle."
		case 2:
			e.status = "Arc: radius set. Click to place the end angle."
		case 3:
			c := e.clicks[0]
			r := geometry.Distance(c, e.clicks[1])
			start := geometry.AngleBetween(c, e.clicks[1])
			end := geometry.AngleBetween(c, e.clicks[2])
			e.commit(shape.NewArc(c, r, start, end, e.style), "Arc added.")
		}
	}
}

// commit hands the finished shape to the document and resets staging.
func (e *Editor) commit(s shape.Shape, msg string) {
	e.doc.Add(s)
	e.clicks = nil
	e.status = msg
}

// cursorDown starts an edit drag or updates the selection.
func (e *Editor) cursorDown(p core.Point) {
	if sel := e.doc.Selected(); sel != nil {
		var closest *core.Handle
		minDist := float64(2 * handleGrabDistance)
		for _, h := range sel.Handles() {
			if d := geometry.Distance(p, h.Pos); d < minDist {
				minDist, closest = d, &h
			}
		}
		if closest != nil && minDist <= handleGrabDistance {
			switch closest.Kind {
			case core.HandleRotate:
				e.mode = modeRotate
				e.rotateCenter = sel.Center()
				e.rotateBase = geometry.AngleBetween(e.rotateCenter, p)
			case core.HandleMove:
				e.mode = modeMove
				e.dragStart = p
			default:
				e.mode = modeHandle
				e.activeHandle = closest.Kind
			}
			return
		}
	}

	var hit shape.Shape
	if e.find != nil {
		hit = e.find(p, hitTolerance)
	}
	if hit != nil {
		e.doc.Select(hit)
		e.mode = modeMove
		e.dragStart = p
		e.status = "Selected. Drag to move; drag round handle to rotate; press Del to delete selection."
	} else {
		e.doc.Select(nil)
		e.status = "No shape under cursor. Select a tool to draw or click a shape to edit."
	}
}

// Drag processes pointer movement while the button is held.
func (e *Editor) Drag(x, y float64) {
	if e.tool != core.ToolCursor {
		return
	}
	sel := e.doc.Selected()
	if sel == nil {
		return
	}
	p := e.snap(x, y)

	switch e.mode {
	case modeMove:
		sel.MoveBy(p.X-e.dragStart.X, p.Y-e.dragStart.Y)
		e.dragStart = p
	case modeHandle:
		sel.HandleDrag(e.activeHandle, p.X, p.Y)
	case modeRotate:
		ang := geometry.AngleBetween(e.rotateCenter, p)
		sel.RotateBy(ang - e.rotateBase)
		e.rotateBase = ang
	}
}

// Release ends any edit drag, returning the cursor machine to idle.
// Drag-based edits record no history: only structural changes are
// undoable.
func (e *Editor) Release() {
	e.mode = modeIdle
	e.activeHandle = ""
	e.dragStart = core.Point{}
	e.rotateCenter = core.Point{}
	e.rotateBase = 0
}

// Cancel discards any staged clicks without touching the document.
func (e *Editor) Cancel() {
	if len(e.clicks) > 0 {
		e.clicks = nil
		e.status = "Pending shape cancelled."
	}
}

// DeleteSelection removes the selected shape, reporting whether a
// shape was actually removed. Only the cursor tool deletes, and a
// missing selection is reported, not an error.
func (e *Editor) DeleteSelection() bool {
	if e.tool != core.ToolCursor {
		return false
	}
	sel := e.doc.Selected()
	if sel == nil {
		e.status = "No shape currently selected to delete."
		return false
	}
	e.doc.Remove(sel)
	e.status = "Deleted selected shape. Use Undo to restore."
	return true
}

// Undo pops and inverts the last structural action.
func (e *Editor) Undo() {
	e.status, _ = e.doc.Undo()
}

// Clear empties the document. Confirmation is the caller's concern.
func (e *Editor) Clear() {
	if !e.doc.Clear() {
		e.status = "Canvas already clear."
		return
	}
	e.status = "Cleared all shapes. Use Undo to restore."
}
