package engagement

import "fmt"

// ----------------------------------------------------------------------------
// Layout

// Margin is the space between the border of a chart and its panel.
type Margin struct {
	Top    float64 `toml:"top"`
	Right  float64 `toml:"right"`
	Bottom float64 `toml:"bottom"`
	Left   float64 `toml:"left"`
}

// Layout determines the size of a chart in pixels and where its panel,
// the area data is drawn in, lies.
type Layout struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Margin Margin  `toml:"margin"`
}

// DefaultLayout returns a 600x400 pixel layout with room for axis labels.
func DefaultLayout() Layout {
	return Layout{
		Width:  600,
		Height: 400,
		Margin: Margin{Top: 50, Right: 50, Bottom: 100, Left: 80},
	}
}

// Validate reports whether the panel of l has a positive size.
func (l Layout) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("layout: invalid size %gx%g", l.Width, l.Height)
	}
	p := l.Panel()
	if p.Max.X <= p.Min.X || p.Max.Y <= p.Min.Y {
		return fmt.Errorf("layout: margins %+v leave no room in %gx%g", l.Margin, l.Width, l.Height)
	}
	return nil
}

// ----------------------------------------------------------------------------
// Panel

// A Panel is the rectangle of a chart in which data is drawn.
// Coordinates are pixels with the origin in the top left corner.
type Panel struct {
	Min, Max Point
}

// Panel returns the data area of l.
func (l Layout) Panel() Panel {
	return Panel{
		Min: Point{X: l.Margin.Left, Y: l.Margin.Top},
		Max: Point{X: l.Width - l.Margin.Right, Y: l.Height - l.Margin.Bottom},
	}
}

// XRange is the horizontal pixel range of p, left to right.
func (p Panel) XRange() Interval { return Interval{p.Min.X, p.Max.X} }

// YRange is the vertical pixel range of p, bottom to top, so that larger
// data values are drawn higher up.
func (p Panel) YRange() Interval { return Interval{p.Max.Y, p.Min.Y} }
