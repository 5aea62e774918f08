package render

import (
	"tikzdraw/core"
	"tikzdraw/editor"
)

// DrawPreview replaces the preview overlay with the given preview
// data. Previews draw dashed in a muted color so they read as
// provisional next to committed shapes.
func (r *Renderer) DrawPreview(pv editor.Preview) {
	r.ClearPreview()
	paint := Paint{Color: previewColor, Width: 1, Dashed: true}

	switch pv.Kind {
	case editor.PreviewPath:
		if len(pv.Points) > 1 {
			if pv.Closed {
				r.surface.Polygon(r.newPrim(previewOwner), pv.Points, paint)
			} else {
				r.surface.Polyline(r.newPrim(previewOwner), pv.Points, paint)
			}
		}
		if pv.Anchor != nil && pv.Marker != nil {
			helper := Paint{Color: previewHelper, Width: 1, Dashed: true}
			r.surface.Line(r.newPrim(previewOwner), *pv.Anchor, *pv.Marker, helper)
		} else if pv.Marker != nil {
			m := *pv.Marker
			r.surface.Oval(r.newPrim(previewOwner),
				core.Point{X: m.X - 3, Y: m.Y - 3}, core.Point{X: m.X + 3, Y: m.Y + 3}, paint)
		}
	case editor.PreviewText:
		r.surface.Text(r.newPrim(previewOwner), pv.At, pv.Text, pv.Size, previewColor)
	}
}

// ClearPreview removes the preview overlay.
func (r *Renderer) ClearPreview() {
	r.deleteOwned(previewOwner)
}
