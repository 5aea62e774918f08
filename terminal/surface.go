// Package terminal renders the editor onto a tcell screen and runs the
// interactive mouse-driven session. One terminal cell is one canvas
// unit, so exported coordinates match what was on screen.
package terminal

import (
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	runewidth "github.com/mattn/go-runewidth"

	"tikzdraw/core"
	"tikzdraw/geometry"
	"tikzdraw/render"
)

const ovalSegments = 72

type primKind int

const (
	primLine primKind = iota
	primPolyline
	primPolygon
	primOval
	primArc
	primText
)

type cellPos struct{ x, y int }

// primitive is one retained drawing command plus the cells it covered
// on the last paint, kept for hit-testing.
type primitive struct {
	kind          primKind
	pts           []core.Point
	p0, p1        core.Point
	center        core.Point
	r, start, end float64
	text          string
	size          int
	color         string
	paint         render.Paint
	cells         map[cellPos]struct{}
}

// CellSurface implements render.Surface by rasterizing primitives into
// terminal cells. Primitives are retained and painted back to front in
// creation order.
type CellSurface struct {
	screen tcell.Screen
	order  []render.PrimitiveID
	prims  map[render.PrimitiveID]*primitive
}

// NewCellSurface creates a surface over screen.
func NewCellSurface(screen tcell.Screen) *CellSurface {
	return &CellSurface{
		screen: screen,
		prims:  make(map[render.PrimitiveID]*primitive),
	}
}

func (s *CellSurface) put(id render.PrimitiveID, p *primitive) {
	if _, exists := s.prims[id]; !exists {
		s.order = append(s.order, id)
	}
	p.cells = make(map[cellPos]struct{})
	s.prims[id] = p
}

func (s *CellSurface) Line(id render.PrimitiveID, p0, p1 core.Point, paint render.Paint) {
	s.put(id, &primitive{kind: primLine, p0: p0, p1: p1, paint: paint})
}

func (s *CellSurface) Polyline(id render.PrimitiveID, pts []core.Point, paint render.Paint) {
	s.put(id, &primitive{kind: primPolyline, pts: pts, paint: paint})
}

func (s *CellSurface) Polygon(id render.PrimitiveID, pts []core.Point, paint render.Paint) {
	s.put(id, &primitive{kind: primPolygon, pts: pts, paint: paint})
}

func (s *CellSurface) Oval(id render.PrimitiveID, topLeft, bottomRight core.Point, paint render.Paint) {
	s.put(id, &primitive{kind: primOval, p0: topLeft, p1: bottomRight, paint: paint})
}

func (s *CellSurface) Arc(id render.PrimitiveID, center core.Point, r, startDeg, endDeg float64, paint render.Paint) {
	s.put(id, &primitive{kind: primArc, center: center, r: r, start: startDeg, end: endDeg, paint: paint})
}

func (s *CellSurface) Text(id render.PrimitiveID, p core.Point, text string, size int, color string) {
	s.put(id, &primitive{kind: primText, p0: p, text: text, size: size, color: color})
}

func (s *CellSurface) Delete(id render.PrimitiveID) {
	if _, ok := s.prims[id]; !ok {
		return
	}
	delete(s.prims, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// PrimitivesAt returns primitives whose painted cells fall inside the
// box of half-width tol around p. Cell coverage is from the last Paint.
func (s *CellSurface) PrimitivesAt(p core.Point, tol float64) []render.PrimitiveID {
	var ids []render.PrimitiveID
	for _, id := range s.order {
		prim := s.prims[id]
		for c := range prim.cells {
			if math.Abs(float64(c.x)-p.X) <= tol && math.Abs(float64(c.y)-p.Y) <= tol {
				ids = append(ids, id)
				break
			}
		}
	}
	return ids
}

// Paint rasterizes every primitive onto the screen in creation order.
// The caller clears the screen and calls Show.
func (s *CellSurface) Paint() {
	for _, id := range s.order {
		s.raster(s.prims[id])
	}
}

func (s *CellSurface) raster(p *primitive) {
	switch p.kind {
	case primLine:
		s.segment(p, p.p0, p.p1)
	case primPolyline:
		s.path(p, p.pts, false)
	case primPolygon:
		s.fillPolygon(p, p.pts)
		s.path(p, p.pts, true)
	case primOval:
		c := core.Midpoint(p.p0, p.p1)
		rx := math.Abs(p.p1.X-p.p0.X) / 2
		ry := math.Abs(p.p1.Y-p.p0.Y) / 2
		ring := geometry.EllipsePolygon(c, rx, ry, 0, ovalSegments)
		s.fillPolygon(p, ring)
		s.path(p, ring, true)
	case primArc:
		span := geometry.NormalizeDeg(p.end - p.start)
		if span == 0 {
			span = 360
		}
		steps := int(span)
		if steps < 8 {
			steps = 8
		}
		s.path(p, geometry.ArcPolyline(p.center, p.r, p.start, p.end, steps+1), false)
	case primText:
		s.drawText(p)
	}
}

func (s *CellSurface) path(p *primitive, pts []core.Point, closed bool) {
	for i := 0; i+1 < len(pts); i++ {
		s.segment(p, pts[i], pts[i+1])
	}
	if closed && len(pts) > 2 {
		s.segment(p, pts[len(pts)-1], pts[0])
	}
}

// segment walks the line from a to b cell by cell, picking a stroke
// rune from the dominant direction. Dashed paints skip alternate cells.
func (s *CellSurface) segment(p *primitive, a, b core.Point) {
	x0, y0 := int(math.Round(a.X)), int(math.Round(a.Y))
	x1, y1 := int(math.Round(b.X)), int(math.Round(b.Y))
	dx, dy := abs(x1-x0), abs(y1-y0)

	ch := segmentRune(x1-x0, y1-y0)
	style := tcell.StyleDefault.Foreground(lookupColor(p.paint.Color))

	xInc, yInc := 1, 1
	if x0 > x1 {
		xInc = -1
	}
	if y0 > y1 {
		yInc = -1
	}

	x, y := x0, y0
	step := 0
	plot := func() {
		if !p.paint.Dashed || step%2 == 0 {
			s.setCell(p, x, y, ch, style)
		}
		step++
	}
	if dx > dy {
		e := dx / 2
		for x != x1 {
			plot()
			e -= dy
			if e < 0 {
				y += yInc
				e += dx
			}
			x += xInc
		}
	} else {
		e := dy / 2
		for y != y1 {
			plot()
			e -= dx
			if e < 0 {
				x += xInc
				e += dy
			}
			y += yInc
		}
	}
	plot()
}

func segmentRune(dx, dy int) rune {
	switch {
	case dy == 0 && dx != 0:
		return '─'
	case dx == 0 && dy != 0:
		return '│'
	case abs(dx) > 2*abs(dy):
		return '─'
	case abs(dy) > 2*abs(dx):
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	case dx != 0 || dy != 0:
		return '╱'
	default:
		return '·'
	}
}

// fillPolygon paints the polygon interior with the fill color using an
// even-odd scanline over cell rows. Opacity blends the fill toward the
// white canvas background.
func (s *CellSurface) fillPolygon(p *primitive, pts []core.Point) {
	if p.paint.Fill == "" || len(pts) < 3 {
		return
	}
	bg := fillColor(p.paint.Fill, p.paint.FillOpacity)
	style := tcell.StyleDefault.Background(bg)

	minY, maxY := pts[0].Y, pts[0].Y
	for _, pt := range pts {
		minY = math.Min(minY, pt.Y)
		maxY = math.Max(maxY, pt.Y)
	}
	for row := int(math.Ceil(minY)); row <= int(math.Floor(maxY)); row++ {
		y := float64(row)
		var xs []float64
		for i := range pts {
			a, b := pts[i], pts[(i+1)%len(pts)]
			if (a.Y <= y && b.Y > y) || (b.Y <= y && a.Y > y) {
				t := (y - a.Y) / (b.Y - a.Y)
				xs = append(xs, a.X+t*(b.X-a.X))
			}
		}
		sortFloats(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(math.Ceil(xs[i])); x <= int(math.Floor(xs[i+1])); x++ {
				s.setCell(p, x, row, ' ', style)
			}
		}
	}
}

func (s *CellSurface) drawText(p *primitive) {
	style := tcell.StyleDefault.Foreground(lookupColor(p.color))
	w := runewidth.StringWidth(p.text)
	x := int(math.Round(p.p0.X)) - w/2
	y := int(math.Round(p.p0.Y))
	for _, r := range p.text {
		s.setCell(p, x, y, r, style)
		x += runewidth.RuneWidth(r)
	}
}

func (s *CellSurface) setCell(p *primitive, x, y int, ch rune, style tcell.Style) {
	w, h := s.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	s.screen.SetContent(x, y, ch, nil, style)
	p.cells[cellPos{x, y}] = struct{}{}
}

// lookupColor resolves a color name or #hex value to a tcell color.
func lookupColor(name string) tcell.Color {
	if name == "" {
		return tcell.ColorDefault
	}
	if strings.HasPrefix(name, "#") {
		if c, err := colorful.Hex(name); err == nil {
			r, g, b := c.RGB255()
			return tcell.NewRGBColor(int32(r), int32(g), int32(b))
		}
	}
	return tcell.GetColor(name)
}

// fillColor blends the fill toward white by the complement of opacity,
// approximating translucent fills on an opaque background.
func fillColor(name string, opacity float64) tcell.Color {
	base := lookupColor(name)
	if opacity >= 1 {
		return base
	}
	if opacity < 0 {
		opacity = 0
	}
	r, g, b := base.RGB()
	fill := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	white := colorful.Color{R: 1, G: 1, B: 1}
	blended := white.BlendRgb(fill, opacity)
	br, bg2, bb := blended.RGB255()
	return tcell.NewRGBColor(int32(br), int32(bg2), int32(bb))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sortFloats(xs []float64) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j] < xs[j-1]; j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}
