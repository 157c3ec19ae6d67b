// Package render paints the primitives of an engagement.Chart.
//
// Two sinks are provided: SVG writes scalable vector graphics directly
// with svgo and keeps the pixel coordinates of the primitives; Canvas
// draws onto a gonum/plot vg canvas and can produce png, pdf and svg.
package render

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/vdobler/engagement"
)

// A Sink writes a chart in some output format to w.
type Sink interface {
	Render(w io.Writer, c *engagement.Chart) error
}

// Formats lists the format names understood by ForFormat.
var Formats = []string{"svg", "png", "pdf", "vgsvg"}

// ForFormat returns the sink for the named format. The name may also be
// a file extension like ".png". "svg" selects the SVG sink, "vgsvg" an
// svg written by the gonum/plot canvas.
func ForFormat(name string) (Sink, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "svg":
		return SVG{}, nil
	case "png":
		return Canvas{Format: "png"}, nil
	case "pdf":
		return Canvas{Format: "pdf"}, nil
	case "vgsvg":
		return Canvas{Format: "svg"}, nil
	}
	return nil, fmt.Errorf("render: unknown format %q (must be one of %s)",
		name, strings.Join(Formats, ", "))
}

// Extension returns the file extension, without the dot, of files
// written in the named format.
func Extension(format string) string {
	f := strings.ToLower(strings.TrimPrefix(format, "."))
	if f == "vgsvg" {
		return "svg"
	}
	return f
}

// Axis geometry as drawn by d3's axis generator.
const (
	tickSize    = 6
	tickPadding = 3
)

// stroked reports whether lines in style ls are visible.
func stroked(ls engagement.LineStyle) bool {
	return ls.Color != nil && ls.Width > 0
}

func textColor(c color.Color) color.Color {
	if c == nil {
		return color.Black
	}
	return c
}

// errWriter remembers the first error of the underlying writer and
// discards all later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return len(p), nil
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}
