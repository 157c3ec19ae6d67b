package render

import (
	"fmt"
	"image/color"
	"io"

	"github.com/vdobler/engagement"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Canvas renders charts with the gonum/plot vector graphics packages.
// One pixel of the chart is drawn as one point.
type Canvas struct {
	Format string // One of "png", "pdf" or "svg".

	// Font is the name of the vg font used for all text. Empty means
	// Helvetica.
	Font string
}

// Render implements Sink.
func (s Canvas) Render(w io.Writer, c *engagement.Chart) error {
	width, height := vg.Length(c.Width), vg.Length(c.Height)

	var (
		canvas vg.CanvasSizer
		out    io.WriterTo
	)
	switch s.Format {
	case "png":
		img := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(72))
		canvas, out = img, vgimg.PngCanvas{Canvas: img}
	case "pdf":
		pdf := vgpdf.New(width, height)
		canvas, out = pdf, pdf
	case "svg":
		sv := vgsvg.New(width, height)
		canvas, out = sv, sv
	default:
		return fmt.Errorf("render: canvas cannot write format %q", s.Format)
	}

	p := &painter{
		dc:     draw.New(canvas),
		height: c.Height,
		font:   s.Font,
		fonts:  make(map[float64]vg.Font),
	}
	if p.font == "" {
		p.font = "Helvetica"
	}
	for _, prim := range c.Primitives {
		if err := p.paint(prim); err != nil {
			return err
		}
	}

	_, err := out.WriteTo(w)
	return err
}

// painter draws primitives given in pixel coordinates with the origin in
// the top left corner onto a vg canvas whose origin is bottom left.
type painter struct {
	dc     draw.Canvas
	height float64
	font   string
	fonts  map[float64]vg.Font
}

func (p *painter) pt(x, y float64) vg.Point {
	return vg.Point{X: vg.Length(x), Y: vg.Length(p.height - y)}
}

func (p *painter) paint(prim engagement.Primitive) error {
	switch prim := prim.(type) {
	case engagement.Line:
		p.line(prim.Style, prim.From.X, prim.From.Y, prim.To.X, prim.To.Y)
	case engagement.Rect:
		r := vg.Rectangle{
			Min: p.pt(prim.Min.X, prim.Min.Y+prim.Height),
			Max: p.pt(prim.Min.X+prim.Width, prim.Min.Y),
		}
		p.fillStroke(r.Path(), prim.Fill, prim.Border)
	case engagement.Path:
		p.fillStroke(p.path(prim.Segments), prim.Fill, prim.Style)
	case engagement.Axis:
		return p.axis(prim)
	case engagement.Text:
		return p.text(prim.At.X, prim.At.Y, prim.Text, prim.Size, prim.Color, anchorAlign(prim.Anchor), draw.YBottom)
	default:
		return fmt.Errorf("render: unknown primitive %T", prim)
	}
	return nil
}

func (p *painter) line(ls engagement.LineStyle, x1, y1, x2, y2 float64) {
	if !stroked(ls) {
		return
	}
	p.dc.StrokeLine2(lineStyle(ls),
		vg.Length(x1), vg.Length(p.height-y1),
		vg.Length(x2), vg.Length(p.height-y2))
}

func (p *painter) fillStroke(path vg.Path, fill color.Color, border engagement.LineStyle) {
	if fill != nil {
		p.dc.SetColor(fill)
		p.dc.Fill(path)
	}
	if stroked(border) {
		p.dc.SetLineStyle(lineStyle(border))
		p.dc.Stroke(path)
	}
}

func (p *painter) path(segs []engagement.PathSegment) vg.Path {
	var path vg.Path
	for _, s := range segs {
		switch s.Op {
		case engagement.MoveTo:
			path.Move(p.pt(s.Pts[0].X, s.Pts[0].Y))
		case engagement.LineTo:
			path.Line(p.pt(s.Pts[0].X, s.Pts[0].Y))
		case engagement.CubeTo:
			path.CubeTo(
				p.pt(s.Pts[0].X, s.Pts[0].Y),
				p.pt(s.Pts[1].X, s.Pts[1].Y),
				p.pt(s.Pts[2].X, s.Pts[2].Y),
			)
		}
	}
	return path
}

// axis draws an axis the same way as the SVG sink: domain line, outward ticks and labels.
func (p *painter) axis(a engagement.Axis) error {
	switch a.Orient {
	case engagement.Bottom:
		p.line(a.Style, a.Extent.Min, a.Offset, a.Extent.Max, a.Offset)
		for _, t := range a.Ticks {
			p.line(a.Style, t.Pos, a.Offset, t.Pos, a.Offset+tickSize)
			err := p.text(t.Pos, a.Offset+tickSize+tickPadding, t.Label, a.FontSize, nil, draw.XCenter, draw.YTop)
			if err != nil {
				return err
			}
		}
	case engagement.Left:
		p.line(a.Style, a.Offset, a.Extent.Min, a.Offset, a.Extent.Max)
		for _, t := range a.Ticks {
			p.line(a.Style, a.Offset-tickSize, t.Pos, a.Offset, t.Pos)
			err := p.text(a.Offset-tickSize-tickPadding, t.Pos, t.Label, a.FontSize, nil, draw.XRight, draw.YCenter)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *painter) text(x, y float64, txt string, size float64, col color.Color, xalign draw.XAlignment, yalign draw.YAlignment) error {
	if txt == "" || size <= 0 {
		return nil
	}
	font, ok := p.fonts[size]
	if !ok {
		var err error
		font, err = vg.MakeFont(p.font, vg.Length(size))
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		p.fonts[size] = font
	}
	sty := draw.TextStyle{
		Color:  textColor(col),
		Font:   font,
		XAlign: xalign,
		YAlign: yalign,
	}
	p.dc.FillText(sty, p.pt(x, y), txt)
	return nil
}

func lineStyle(ls engagement.LineStyle) draw.LineStyle {
	return draw.LineStyle{Color: ls.Color, Width: vg.Length(ls.Width)}
}

func anchorAlign(a engagement.Anchor) draw.XAlignment {
	switch a {
	case engagement.AnchorMiddle:
		return draw.XCenter
	case engagement.AnchorEnd:
		return draw.XRight
	}
	return draw.XLeft
}
