package engagement

import (
	"github.com/aclements/go-moremath/scale"
	"gonum.org/v1/plot"
)

// A Transformation maps values of a data domain onto a pixel range and
// back. Its Ticker places the ticks of the scales using it.
type Transformation struct {
	Name   string
	Map    func(domain, rng Interval, x float64) float64
	Invert func(domain, rng Interval, px float64) float64
	Ticker plot.Ticker
}

// LinearTrans maps the domain linearly onto the range. The edges of the
// domain land exactly on the edges of the range.
var LinearTrans = Transformation{
	Name: "Linear",
	Map: func(domain, rng Interval, x float64) float64 {
		return lerp(rng, unit(domain).Map(x))
	},
	Invert: func(domain, rng Interval, px float64) float64 {
		return lerp(domain, unit(rng).Map(px))
	},
	Ticker: NiceTicks{Count: DefaultTickCount},
}

// unit is the scale normalizing i to [0, 1].
func unit(i Interval) scale.Linear {
	return scale.Linear{Min: i.Min, Max: i.Max}
}

// lerp interpolates between the edges of i. It returns i.Min for t==0 and
// i.Max for t==1 without rounding error.
func lerp(i Interval, t float64) float64 {
	return i.Min*(1-t) + i.Max*t
}
