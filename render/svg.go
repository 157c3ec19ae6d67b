package render

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo/float"
	"github.com/vdobler/engagement"
)

// SVG renders charts as SVG documents in pixel coordinates.
type SVG struct {
	// Decimals is the number of digits after the decimal point in
	// coordinates. Zero means 2.
	Decimals int
}

// Render implements Sink.
func (s SVG) Render(w io.Writer, c *engagement.Chart) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	if s.Decimals > 0 {
		canvas.Decimals = s.Decimals
	}

	canvas.Start(c.Width, c.Height)
	if c.Title != "" {
		canvas.Title(c.Title)
	}
	canvas.Rect(0, 0, c.Width, c.Height, "fill:white")
	for _, p := range c.Primitives {
		switch p := p.(type) {
		case engagement.Line:
			if stroked(p.Style) {
				canvas.Line(p.From.X, p.From.Y, p.To.X, p.To.Y, strokeStyle(p.Style))
			}
		case engagement.Rect:
			canvas.Rect(p.Min.X, p.Min.Y, p.Width, p.Height,
				"fill:"+svgColor(p.Fill)+";"+strokeStyle(p.Border))
		case engagement.Path:
			canvas.Path(pathData(p.Segments, canvas.Decimals),
				"fill:"+svgColor(p.Fill)+";"+strokeStyle(p.Style))
		case engagement.Axis:
			svgAxis(canvas, p)
		case engagement.Text:
			canvas.Text(p.At.X, p.At.Y, p.Text, fmt.Sprintf(
				"text-anchor:%s;font-size:%gpx;font-family:sans-serif;fill:%s",
				svgAnchor(p.Anchor), p.Size, svgColor(textColor(p.Color))))
		default:
			return fmt.Errorf("render: unknown primitive %T", p)
		}
	}
	canvas.End()
	return ew.err
}

// svgAxis draws an axis the way d3 does: a domain line along the extent, outward
// ticks and labels next to the ticks.
func svgAxis(canvas *svg.SVG, a engagement.Axis) {
	line := strokeStyle(a.Style)
	label := fmt.Sprintf("font-size:%gpx;font-family:sans-serif;fill:black", a.FontSize)
	canvas.Group(`class="axis"`)
	switch a.Orient {
	case engagement.Bottom:
		if stroked(a.Style) {
			canvas.Line(a.Extent.Min, a.Offset, a.Extent.Max, a.Offset, line)
		}
		for _, t := range a.Ticks {
			if stroked(a.Style) {
				canvas.Line(t.Pos, a.Offset, t.Pos, a.Offset+tickSize, line)
			}
			canvas.Text(t.Pos, a.Offset+tickSize+tickPadding, t.Label,
				label+";text-anchor:middle", `dy="0.71em"`)
		}
	case engagement.Left:
		if stroked(a.Style) {
			canvas.Line(a.Offset, a.Extent.Min, a.Offset, a.Extent.Max, line)
		}
		for _, t := range a.Ticks {
			if stroked(a.Style) {
				canvas.Line(a.Offset-tickSize, t.Pos, a.Offset, t.Pos, line)
			}
			canvas.Text(a.Offset-tickSize-tickPadding, t.Pos, t.Label,
				label+";text-anchor:end", `dy="0.32em"`)
		}
	}
	canvas.Gend()
}

func pathData(segs []engagement.PathSegment, decimals int) string {
	f := func(p engagement.Point) string {
		return fmt.Sprintf("%.*f %.*f", decimals, p.X, decimals, p.Y)
	}
	parts := make([]string, 0, len(segs))
	for _, s := range segs {
		switch s.Op {
		case engagement.MoveTo:
			parts = append(parts, "M"+f(s.Pts[0]))
		case engagement.LineTo:
			parts = append(parts, "L"+f(s.Pts[0]))
		case engagement.CubeTo:
			parts = append(parts, "C"+f(s.Pts[0])+" "+f(s.Pts[1])+" "+f(s.Pts[2]))
		}
	}
	return strings.Join(parts, " ")
}

func strokeStyle(ls engagement.LineStyle) string {
	if !stroked(ls) {
		return "stroke:none"
	}
	return fmt.Sprintf("stroke:%s;stroke-width:%g", svgColor(ls.Color), ls.Width)
}

// svgColor formats c as CSS color. A nil color is "none".
func svgColor(c color.Color) string {
	if c == nil {
		return "none"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("rgb(%d,%d,%d)", n.R, n.G, n.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", n.R, n.G, n.B, float64(n.A)/255)
}

func svgAnchor(a engagement.Anchor) string {
	switch a {
	case engagement.AnchorMiddle:
		return "middle"
	case engagement.AnchorEnd:
		return "end"
	}
	return "start"
}
