package geom

import (
	"errors"
	"image/color"
	"math"

	"github.com/vdobler/engagement"
	"gonum.org/v1/plot/plotter"
)

// ErrEmptyDataset is returned by the builders if there is no data to draw.
var ErrEmptyDataset = errors.New("empty dataset")

// CanonicRect returns the rectangle spanned by the two corners a and b
// in canonical form, i.e. with non-negative width and height.
func CanonicRect(a, b engagement.Point) engagement.Rect {
	minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
	minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return engagement.Rect{
		Min:    engagement.Point{X: minX, Y: minY},
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}

// valueScale returns the niced linear scale for the values in vs mapped
// onto the vertical extent of the panel. The domain always includes 0 so
// bars and boxes stand on a visible baseline.
func valueScale(vs plotter.Valuer, l engagement.Layout) *engagement.Linear {
	domain := engagement.Interval{Min: 0, Max: 0}
	domain.Update(plotter.Range(vs))
	return engagement.NewLinear(domain, l.Panel().YRange()).Nice(engagement.DefaultTickCount)
}

// Ordinal assigns colors to categories in order of first appearance.
type Ordinal struct {
	Domain []string
	index  map[string]int
	color  func(i int) color.Color
}

// NewOrdinal returns an ordinal scale over domain where the i'th category
// gets color(i).
func NewOrdinal(domain []string, color func(i int) color.Color) *Ordinal {
	o := &Ordinal{index: make(map[string]int), color: color}
	for _, c := range domain {
		if _, ok := o.index[c]; !ok {
			o.index[c] = len(o.Domain)
			o.Domain = append(o.Domain, c)
		}
	}
	return o
}

// Map returns the color of category c. All categories outside the domain
// share the color following the last one of the domain.
func (o *Ordinal) Map(c string) color.Color {
	i, ok := o.index[c]
	if !ok {
		i = len(o.Domain)
	}
	return o.color(i)
}

func titleOr(title, fallback string) string {
	if title == "" {
		return fallback
	}
	return title
}
