package engagement

import (
	"image/color"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/plotutil"
)

// A Style controls the colors, line widths and font sizes of a chart.
type Style struct {
	Text          color.Color
	TitleFontSize float64
	TitleBaseline float64 // Distance of the title's baseline from the top.
	TickFontSize  float64

	Axis LineStyle

	Box struct {
		Fill    color.Color
		Border  LineStyle
		Whisker LineStyle
		Median  LineStyle
	}

	Bar struct {
		// Palette colors the bars by post type in order of first
		// appearance. More post types than colors continue with the
		// gonum/plot default colors.
		Palette []color.Color
		Border  LineStyle
	}

	Line LineStyle
}

// DefaultStyle returns a Style which mimics the appearance of d3's
// default axes and the colors of the engagement dashboard.
func DefaultStyle() Style {
	s := Style{}
	s.Text = color.Black
	s.TitleFontSize = 16
	s.TitleBaseline = 20
	s.TickFontSize = 10

	s.Axis = LineStyle{Color: color.Black, Width: 1}

	s.Box.Fill = colornames.Lightblue
	s.Box.Border = LineStyle{Color: color.Black, Width: 1}
	s.Box.Whisker = LineStyle{Color: color.Black, Width: 1}
	s.Box.Median = LineStyle{Color: color.Black, Width: 2}

	s.Bar.Palette = []color.Color{
		colornames.Steelblue,
		colornames.Orange,
		colornames.Green,
	}

	s.Line = LineStyle{Color: colornames.Red, Width: 2}

	return s
}

// PaletteColor returns the i'th color of s's bar palette.
func (s Style) PaletteColor(i int) color.Color {
	if i < len(s.Bar.Palette) {
		return s.Bar.Palette[i]
	}
	return plotutil.Color(i - len(s.Bar.Palette))
}
