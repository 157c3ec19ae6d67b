// Package geom provides the chart builders which turn engagement records
// into drawing primitives.
//
// The overall concept is loosely based on ggplot2's geoms. Each geom holds
// its data and builds its scales from the full data domain; the geometry is
// then derived by a pure function of the data and the scales.
//
// The different geoms have singular names like Boxplot or Bar even if
// they draw several boxes or bars to match the naming in ggplot2.
package geom

import (
	"fmt"
	"time"

	"github.com/vdobler/engagement"
	"github.com/vdobler/engagement/data"
	"github.com/vdobler/engagement/stat"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot/plotter"
)

// Default chart titles.
const (
	BoxplotTitle = "Likes Distribution by Platform"
	BarTitle     = "Average Likes by Platform & Post Type"
	LineTitle    = "Likes Over Time"
)

// ----------------------------------------------------------------------------
// Boxplot

// Boxplot draws the distribution of likes per platform as box and whisker
// plot. Whiskers span the full range of the data, there are no outliers.
type Boxplot struct {
	Data data.Engagements

	Title   string
	Padding float64 // Band padding between boxes, 0 means 0.5.
}

// Box is the summary of the likes of one platform.
type Box struct {
	Platform string
	stat.Summary
}

// BoxplotScales are the scales a Boxplot is drawn with.
type BoxplotScales struct {
	X *engagement.Band
	Y *engagement.Linear
}

// Boxes groups the data by platform and summarizes each group. The boxes
// are in order of first appearance of their platform.
func (b Boxplot) Boxes() []Box {
	g := engagement.GroupBy(b.Data.Len(), func(i int) engagement.GroupID {
		return engagement.Key(b.Data[i].Platform)
	})
	boxes := make([]Box, 0, g.Len())
	for _, id := range g.Keys {
		members := g.Members(id)
		likes := make([]float64, len(members))
		for j, i := range members {
			likes[j] = b.Data[i].Likes
		}
		boxes = append(boxes, Box{Platform: id.Outer, Summary: stat.Summarize(likes)})
	}
	return boxes
}

// Scales builds the scales for b in layout l.
func (b Boxplot) Scales(l engagement.Layout) (BoxplotScales, error) {
	if b.Data.Len() == 0 {
		return BoxplotScales{}, ErrEmptyDataset
	}
	padding := b.Padding
	if padding == 0 {
		padding = 0.5
	}
	platforms := engagement.Distinct(b.Data.Len(), b.Data.Platform)
	x, err := engagement.NewBand(platforms, l.Panel().XRange(), padding)
	if err != nil {
		return BoxplotScales{}, err
	}
	return BoxplotScales{X: x, Y: valueScale(b.Data, l)}, nil
}

// Build implements engagement.Builder.
func (b Boxplot) Build(l engagement.Layout, s engagement.Style) (*engagement.Chart, error) {
	scales, err := b.Scales(l)
	if err != nil {
		return nil, fmt.Errorf("boxplot: %w", err)
	}
	c := engagement.NewChart(engagement.Boxplot, titleOr(b.Title, BoxplotTitle), l)
	c.Add(BoxPrimitives(b.Boxes(), scales, s)...)
	c.AddDecorations(l, s, scales.X.Ticks(), scales.Y.Ticks())
	return c, nil
}

// BoxPrimitives draws each box as a vertical whisker line from min to max
// through the center of the band, a rectangle from q1 to q3 over the full
// bandwidth and a median line across the band.
func BoxPrimitives(boxes []Box, scales BoxplotScales, s engagement.Style) []engagement.Primitive {
	prims := make([]engagement.Primitive, 0, 3*len(boxes))
	bw := scales.X.Bandwidth()
	for _, box := range boxes {
		x, ok := scales.X.Map(box.Platform)
		if !ok {
			continue
		}
		center := x + bw/2
		y := scales.Y.Map

		rect := CanonicRect(
			engagement.Point{X: x, Y: y(box.Q3)},
			engagement.Point{X: x + bw, Y: y(box.Q1)},
		)
		rect.Fill = s.Box.Fill
		rect.Border = s.Box.Border

		prims = append(prims,
			engagement.Line{
				From:  engagement.Point{X: center, Y: y(box.Min)},
				To:    engagement.Point{X: center, Y: y(box.Max)},
				Style: s.Box.Whisker,
			},
			rect,
			engagement.Line{
				From:  engagement.Point{X: x, Y: y(box.Median)},
				To:    engagement.Point{X: x + bw, Y: y(box.Median)},
				Style: s.Box.Median,
			},
		)
	}
	return prims
}

// ----------------------------------------------------------------------------
// Bar

// Bar draws the average likes as grouped bars: one group per platform
// with one bar per post type inside the group.
type Bar struct {
	Data data.Averages

	Title        string
	Padding      float64 // Padding between platform groups, 0 means 0.2.
	InnerPadding float64 // Padding between bars in a group, 0 means 0.05.
}

// BarScales are the scales a Bar is drawn with. X0 positions the platform
// groups, X1 the post types inside a group.
type BarScales struct {
	X0, X1 *engagement.Band
	Y      *engagement.Linear
	Fill   *Ordinal
}

// Scales builds the scales for b in layout l using the colors of s.
func (b Bar) Scales(l engagement.Layout, s engagement.Style) (BarScales, error) {
	n := b.Data.Len()
	if n == 0 {
		return BarScales{}, ErrEmptyDataset
	}
	padding, inner := b.Padding, b.InnerPadding
	if padding == 0 {
		padding = 0.2
	}
	if inner == 0 {
		inner = 0.05
	}

	platforms := engagement.Distinct(n, func(i int) string { return b.Data[i].Platform })
	postTypes := engagement.Distinct(n, func(i int) string { return b.Data[i].PostType })

	x0, err := engagement.NewBand(platforms, l.Panel().XRange(), padding)
	if err != nil {
		return BarScales{}, err
	}
	x1, err := engagement.NewBand(postTypes, engagement.Interval{Min: 0, Max: x0.Bandwidth()}, inner)
	if err != nil {
		return BarScales{}, err
	}
	return BarScales{
		X0:   x0,
		X1:   x1,
		Y:    valueScale(b.Data, l),
		Fill: NewOrdinal(postTypes, s.PaletteColor),
	}, nil
}

// Build implements engagement.Builder.
func (b Bar) Build(l engagement.Layout, s engagement.Style) (*engagement.Chart, error) {
	scales, err := b.Scales(l, s)
	if err != nil {
		return nil, fmt.Errorf("bar: %w", err)
	}
	c := engagement.NewChart(engagement.GroupedBar, titleOr(b.Title, BarTitle), l)
	c.Add(BarPrimitives(b.Data, scales, s)...)
	c.AddDecorations(l, s, scales.X0.Ticks(), scales.Y.Ticks())
	return c, nil
}

// BarPrimitives draws one rectangle per record, grouped by platform and
// post type. Bars stand on y=0 and hang down for negative values.
func BarPrimitives(d data.Averages, scales BarScales, s engagement.Style) []engagement.Primitive {
	g := engagement.GroupBy(d.Len(), func(i int) engagement.GroupID {
		return engagement.GroupID{Outer: d[i].Platform, Inner: d[i].PostType}
	})
	base := scales.Y.Map(0)
	w := scales.X1.Bandwidth()

	prims := make([]engagement.Primitive, 0, d.Len())
	for _, id := range g.Keys {
		x0, ok0 := scales.X0.Map(id.Outer)
		x1, ok1 := scales.X1.Map(id.Inner)
		if !ok0 || !ok1 {
			continue
		}
		for _, i := range g.Members(id) {
			rect := CanonicRect(
				engagement.Point{X: x0 + x1, Y: base},
				engagement.Point{X: x0 + x1 + w, Y: scales.Y.Map(d[i].AvgLikes)},
			)
			rect.Fill = scales.Fill.Map(id.Inner)
			rect.Border = s.Bar.Border
			prims = append(prims, rect)
		}
	}
	return prims
}

// ----------------------------------------------------------------------------
// Line

// Line draws the average likes over time as a smooth curve through the
// data points in chronological order.
type Line struct {
	Data data.Series

	Title      string
	TimeFormat string // Layout of the date tick labels.
}

// LineScales are the scales a Line is drawn with.
type LineScales struct {
	X *engagement.Time
	Y *engagement.Linear
}

// Scales builds the scales for l in layout lay.
func (l Line) Scales(lay engagement.Layout) (LineScales, error) {
	if l.Data.Len() == 0 {
		return LineScales{}, ErrEmptyDataset
	}
	secs := make([]float64, l.Data.Len())
	for i := range secs {
		secs[i], _ = l.Data.XY(i)
	}
	first := time.Unix(int64(floats.Min(secs)), 0)
	last := time.Unix(int64(floats.Max(secs)), 0)
	x := engagement.NewTime(first, last, lay.Panel().XRange())
	if l.TimeFormat != "" {
		x.Format = l.TimeFormat
	}
	return LineScales{X: x, Y: valueScale(l.Data, lay)}, nil
}

// Build implements engagement.Builder.
func (l Line) Build(lay engagement.Layout, s engagement.Style) (*engagement.Chart, error) {
	scales, err := l.Scales(lay)
	if err != nil {
		return nil, fmt.Errorf("line: %w", err)
	}
	c := engagement.NewChart(engagement.LineChart, titleOr(l.Title, LineTitle), lay)
	c.Add(LinePrimitives(l.Data, scales, s)...)
	c.AddDecorations(lay, s, scales.X.Ticks(), scales.Y.Ticks())
	return c, nil
}

// LinePrimitives sorts d by date and draws a single natural spline through
// the data points.
func LinePrimitives(d data.Series, scales LineScales, s engagement.Style) []engagement.Primitive {
	sorted := d.Sorted()
	pts := make([]engagement.Point, sorted.Len())
	for i, day := range sorted {
		pts[i] = engagement.Point{X: scales.X.MapTime(day.Date), Y: scales.Y.Map(day.AvgLikes)}
	}
	return []engagement.Primitive{
		engagement.Path{
			Segments: NaturalPath(pts),
			Style:    s.Line,
		},
	}
}

var (
	_ engagement.Builder = Boxplot{}
	_ engagement.Builder = Bar{}
	_ engagement.Builder = Line{}

	_ plotter.Valuer = data.Engagements(nil)
	_ plotter.Valuer = data.Averages(nil)
	_ plotter.XYer   = data.Series(nil)
)
