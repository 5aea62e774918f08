package export

import (
	"fmt"
	"math"
	"strings"

	"tikzdraw/core"
	"tikzdraw/geometry"
	"tikzdraw/shape"
)

// TikZExporter serializes shapes to TikZ markup. The picture is set up
// with [x=1pt,y=-1pt] so canvas coordinates pass through unchanged,
// except rotation angles: TikZ rotation is opposite-handed relative to
// the y-down canvas, so stored angles are negated on the way out.
type TikZExporter struct{}

// NewTikZExporter creates a new TikZ exporter.
func NewTikZExporter() *TikZExporter {
	return &TikZExporter{}
}

// Export wraps one markup line per shape in the tikzpicture environment.
func (e *TikZExporter) Export(shapes []shape.Shape) (string, error) {
	var sb strings.Builder
	sb.WriteString("\\begin{tikzpicture}[x=1pt,y=-1pt]\n")
	for _, s := range shapes {
		line, err := e.ShapeLine(s)
		if err != nil {
			return "", err
		}
		sb.WriteString("  ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("\\end{tikzpicture}")
	return sb.String(), nil
}

func (e *TikZExporter) FileExtension() string { return ".tex" }
func (e *TikZExporter) FormatName() string    { return "TikZ" }

// ShapeLine produces the single markup line for one shape.
func (e *TikZExporter) ShapeLine(s shape.Shape) (string, error) {
	switch v := s.(type) {
	case *shape.Arrow:
		return drawPath(v.Stroke, "->",
			fmt.Sprintf("(%s) -- (%s)", fxy(v.P0), fxy(v.P1))), nil
	case *shape.Line:
		return drawPath(v.Stroke, "",
			fmt.Sprintf("(%s) -- (%s)", fxy(v.P0), fxy(v.P1))), nil
	case *shape.Quad:
		return drawPath(v.Stroke, "",
			fmt.Sprintf("(%s) .. controls (%s) .. (%s)",
				fxy(v.P0), fxy(v.Control), fxy(v.P1))), nil
	case *shape.Rect:
		opts := strokeOpts(v.Stroke)
		opts = appendFillOpts(opts, v.Stroke)
		opts = appendRotateOpt(opts, v.Angle, v.Center())
		return fmt.Sprintf("\\draw[%s] (%s) rectangle (%s);",
			strings.Join(opts, ", "), fxy(v.P0), fxy(v.P1)), nil
	case *shape.Ellipse:
		opts := strokeOpts(v.Stroke)
		opts = appendFillOpts(opts, v.Stroke)
		opts = appendRotateOpt(opts, v.Angle, v.C)
		return fmt.Sprintf("\\draw[%s] (%s) ellipse [x radius=%s, y radius=%s];",
			strings.Join(opts, ", "), fxy(v.C), geometry.Fmt(v.Rx), geometry.Fmt(v.Ry)), nil
	case *shape.Dot:
		return circleLine(v.C, v.R, v.Stroke), nil
	case *shape.Circle:
		return circleLine(v.C, v.R, v.Stroke), nil
	case *shape.Text:
		t := strings.ReplaceAll(v.Text, "\\", "\\\\")
		t = strings.ReplaceAll(t, "%", "\\%")
		return fmt.Sprintf("\\node[draw=none] at (%s) {%s};", fxy(v.Pos), t), nil
	case *shape.Arc:
		opts := strokeOpts(v.Stroke)
		return fmt.Sprintf("\\draw[%s] (%s) ++(%s:%s) arc [start angle=%s, end angle=%s, radius=%s];",
			strings.Join(opts, ", "), fxy(v.C),
			geometry.Fmt(v.StartAngle), geometry.Fmt(v.R),
			geometry.Fmt(v.StartAngle), geometry.Fmt(v.EndAngle), geometry.Fmt(v.R)), nil
	default:
		return "", fmt.Errorf("no TikZ serialization for shape kind %s", s.Kind())
	}
}

// fxy formats a point as the comma-separated body of a TikZ coordinate.
func fxy(p core.Point) string {
	return geometry.Fmt(p.X) + "," + geometry.Fmt(p.Y)
}

func strokeOpts(st core.Style) []string {
	return []string{
		fmt.Sprintf("draw=%s", st.Color),
		fmt.Sprintf("line width=%dpt", st.Width),
	}
}

func appendFillOpts(opts []string, st core.Style) []string {
	if !st.FillEnabled {
		return opts
	}
	opts = append(opts, fmt.Sprintf("fill=%s", st.FillColor))
	if st.FillOpacity < 1.0 {
		opts = append(opts, fmt.Sprintf("fill opacity=%.2f", st.FillOpacity))
	}
	return opts
}

func appendRotateOpt(opts []string, angle float64, center core.Point) []string {
	if math.Abs(angle) <= geometry.AngleEpsilon {
		return opts
	}
	return append(opts, fmt.Sprintf("rotate around=%.2f:(%s)", -angle, fxy(center)))
}

func drawPath(st core.Style, extra, path string) string {
	opts := strokeOpts(st)
	if extra != "" {
		opts = append(opts, extra)
	}
	return fmt.Sprintf("\\draw[%s] %s;", strings.Join(opts, ", "), path)
}

func circleLine(c core.Point, r float64, st core.Style) string {
	opts := appendFillOpts(strokeOpts(st), st)
	return fmt.Sprintf("\\draw[%s] (%s) circle [radius=%s];",
		strings.Join(opts, ", "), fxy(c), geometry.Fmt(r))
}
