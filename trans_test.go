package engagement

import (
	"fmt"
	"math"
	"testing"
)

// equal64 compares a and b exactly if both are integral and up to a
// rounding error otherwise.
func equal64(a, b float64) bool {
	ai, af := math.Modf(a)
	bi, bf := math.Modf(b)
	if af == 0 && bf == 0 {
		return ai == bi
	}
	return math.Abs(a-b) < 1e-9*math.Max(1, math.Abs(a))
}

func TestLinearTrans(t *testing.T) {
	for _, tc := range []struct {
		domain, rng Interval
		x, want     float64
	}{
		{Interval{10, 20}, Interval{10, 20}, 12, 12},
		{Interval{10, 20}, Interval{100, 200}, 12, 120},
		{Interval{3, 5}, Interval{0, 1}, 3, 0},
		{Interval{3, 5}, Interval{0, 1}, 4, 0.5},
		{Interval{3, 5}, Interval{0, 1}, 5, 1},
		{Interval{0, 100}, Interval{300, 50}, 0, 300},
		{Interval{0, 100}, Interval{300, 50}, 100, 50},
		{Interval{0, 100}, Interval{300, 50}, 40, 200},
		{Interval{0, 100}, Interval{300, 50}, 120, 0},
	} {
		t.Run(fmt.Sprintf("%v->%v/%g", tc.domain, tc.rng, tc.x), func(t *testing.T) {
			got := LinearTrans.Map(tc.domain, tc.rng, tc.x)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Map(%g) = %g, want %g", tc.x, got, tc.want)
			}
			if back := LinearTrans.Invert(tc.domain, tc.rng, got); math.Abs(back-tc.x) > 1e-9 {
				t.Errorf("Invert(%g) = %g, want %g", got, back, tc.x)
			}
		})
	}
}

func TestLinearTransEndpointsExact(t *testing.T) {
	domain := Interval{0.1, 0.7}
	rng := Interval{343.7, 51.3}
	if got := LinearTrans.Map(domain, rng, domain.Min); got != rng.Min {
		t.Errorf("min maps to %v, want %v", got, rng.Min)
	}
	if got := LinearTrans.Map(domain, rng, domain.Max); got != rng.Max {
		t.Errorf("max maps to %v, want %v", got, rng.Max)
	}
}
