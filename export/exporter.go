// Package export serializes documents to text-based drawing formats.
package export

import (
	"fmt"
	"os"

	"tikzdraw/shape"
)

// Format represents an export format.
type Format string

const (
	// FormatTikZ exports to TikZ markup for embedding in LaTeX.
	FormatTikZ Format = "tikz"
)

// Exporter converts a shape sequence to a target format.
type Exporter interface {
	// Export serializes the shapes in paint order.
	Export(shapes []shape.Shape) (string, error)
	// FileExtension returns the recommended file extension.
	FileExtension() string
	// FormatName returns a human-readable name for the format.
	FormatName() string
}

// NewExporter creates an exporter for the specified format.
func NewExporter(format Format) (Exporter, error) {
	switch format {
	case FormatTikZ:
		return NewTikZExporter(), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "tikz", "tex", "latex":
		return FormatTikZ, nil
	default:
		return "", fmt.Errorf("unknown format: %s", s)
	}
}

// WriteFile exports the shapes and writes the result to path, with a
// header comment naming the LaTeX package the output requires.
func WriteFile(path string, e Exporter, shapes []shape.Shape) error {
	code, err := e.Export(shapes)
	if err != nil {
		return err
	}
	data := "% Requires: \\usepackage{tikz}\n" + code + "\n"
	return os.WriteFile(path, []byte(data), 0644)
}
