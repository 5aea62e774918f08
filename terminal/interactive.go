package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"tikzdraw/core"
	"tikzdraw/document"
	"tikzdraw/editor"
	"tikzdraw/export"
	"tikzdraw/render"
	"tikzdraw/shape"
)

// Options configures an interactive session.
type Options struct {
	GridStep   float64 // snap step in cells
	Snap       bool
	ShowGrid   bool
	OutputFile string // TikZ file written by the export key; empty disables
}

// Session wires the editor, document and renderer to a tcell screen.
type Session struct {
	screen  tcell.Screen
	surface *CellSurface
	doc     *document.Document
	ed      *editor.Editor
	ren     *render.Renderer

	opts         Options
	showGrid     bool
	pointer      core.Point
	dragging     bool
	pendingClear bool
	colorIndex   int
}

// NewSession creates a session on an initialized screen.
func NewSession(screen tcell.Screen, opts Options) *Session {
	surface := NewCellSurface(screen)
	doc := document.New()
	ren := render.New(surface)
	ed := editor.New(doc, func(p core.Point, tol float64) shape.Shape {
		return ren.ShapeAt(doc.Shapes(), p, tol)
	})
	if opts.GridStep > 0 {
		ed.SetGridStep(opts.GridStep)
	}
	ed.SetSnap(opts.Snap)
	return &Session{
		screen:   screen,
		surface:  surface,
		doc:      doc,
		ed:       ed,
		ren:      ren,
		opts:     opts,
		showGrid: opts.ShowGrid,
	}
}

// Run starts the session and processes events until quit. On exit it
// writes the TikZ output file when one was configured.
func Run(opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	screen.EnableMouse()
	defer screen.Fini()

	s := NewSession(screen, opts)
	s.loop()

	if opts.OutputFile != "" {
		return export.WriteFile(opts.OutputFile, export.NewTikZExporter(), s.doc.Shapes())
	}
	return nil
}

func (s *Session) loop() {
	for {
		s.draw()
		ev := s.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			s.screen.Sync()
		case *tcell.EventKey:
			if s.handleKey(ev) {
				return
			}
		case *tcell.EventMouse:
			s.handleMouse(ev)
		}
	}
}

// handleKey processes one key event, returning true to quit.
func (s *Session) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	switch ev.Key() {
	case tcell.KeyEscape:
		s.ed.Cancel()
		s.pendingClear = false
		return false
	case tcell.KeyDelete, tcell.KeyBackspace, tcell.KeyBackspace2:
		sel := s.doc.Selected()
		if s.ed.DeleteSelection() && sel != nil {
			s.ren.RemoveShape(sel)
		}
		return false
	case tcell.KeyCtrlZ:
		s.undo()
		return false
	}

	switch ev.Rune() {
	case 'q':
		return true
	case 'c':
		s.ed.SetTool(core.ToolCursor)
	case 'l':
		s.ed.SetTool(core.ToolLine)
	case 'a':
		s.ed.SetTool(core.ToolArrow)
	case 'b':
		s.ed.SetTool(core.ToolQuad)
	case 'r':
		s.ed.SetTool(core.ToolRect)
	case 'e':
		s.ed.SetTool(core.ToolEllipse)
	case 'o':
		s.ed.SetTool(core.ToolCircle)
	case 't':
		s.ed.SetTool(core.ToolText)
	case 'd':
		s.ed.SetTool(core.ToolDot)
	case 'p':
		s.ed.SetTool(core.ToolArc)
	case 'u':
		s.undo()
	case 'x':
		// clearing everything wants a second press as confirmation
		if s.pendingClear {
			s.pendingClear = false
			s.ed.Clear()
			s.ren.Clear()
		} else {
			s.pendingClear = true
		}
	case 'g':
		s.showGrid = !s.showGrid
	case 's':
		s.ed.SetSnap(!s.ed.SnapEnabled())
	case 'f':
		st := s.ed.Style()
		s.ed.SetFill(!st.FillEnabled, st.FillColor, st.FillOpacity)
	case '[':
		s.ed.SetWidth(s.ed.Style().Width - 1)
	case ']':
		s.ed.SetWidth(s.ed.Style().Width + 1)
	case '\t':
		s.colorIndex = (s.colorIndex + 1) % len(core.StrokeColors)
		s.ed.SetColor(core.StrokeColors[s.colorIndex])
	case 'w':
		s.export()
	}
	return false
}

func (s *Session) undo() {
	s.ed.Undo()
	// the undone shapes may be gone from the document; rebuild the
	// surface from scratch so stale primitives disappear
	s.ren.Clear()
}

func (s *Session) export() {
	if s.opts.OutputFile == "" {
		return
	}
	_ = export.WriteFile(s.opts.OutputFile, export.NewTikZExporter(), s.doc.Shapes())
}

func (s *Session) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	s.pointer = core.Point{X: float64(x), Y: float64(y)}
	pressed := ev.Buttons()&tcell.Button1 != 0

	switch {
	case pressed && !s.dragging:
		s.dragging = true
		s.ed.Click(float64(x), float64(y))
	case pressed && s.dragging:
		s.ed.Drag(float64(x), float64(y))
	case !pressed && s.dragging:
		s.dragging = false
		s.ed.Release()
	}
}

func (s *Session) draw() {
	s.screen.Clear()
	if s.showGrid {
		s.drawGrid()
	}
	s.ren.DrawAll(s.doc.Shapes())
	s.ren.DrawHandles(s.doc.Selected())
	if !s.dragging {
		s.ren.DrawPreview(s.ed.Preview(s.pointer.X, s.pointer.Y))
	} else {
		s.ren.ClearPreview()
	}
	s.surface.Paint()
	s.drawStatus()
	s.screen.Show()
}

func (s *Session) drawGrid() {
	w, h := s.screen.Size()
	step := int(s.ed.GridStep())
	if step < 1 {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	for y := 0; y < h-1; y += step {
		for x := 0; x < w; x += step {
			s.screen.SetContent(x, y, '·', nil, style)
		}
	}
}

func (s *Session) drawStatus() {
	w, h := s.screen.Size()
	st := s.ed.Style()
	status := s.ed.Status()
	if s.pendingClear {
		status = "Press x again to remove all shapes (Esc to keep them)."
	}
	line := fmt.Sprintf(" [%s] %s w=%d | %s", s.ed.Tool(), st.Color, st.Width, status)
	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < w; x++ {
		ch := ' '
		if x < len([]rune(line)) {
			ch = []rune(line)[x]
		}
		s.screen.SetContent(x, h-1, ch, nil, style)
	}
}
