// Package stat computes the distribution summaries drawn by box plots.
package stat

import (
	"fmt"
	"math"
	"sort"
)

// Summary is the five-number description of a sample.
type Summary struct {
	Min, Q1, Median, Q3, Max float64
}

func (s Summary) String() string {
	return fmt.Sprintf("min=%g q1=%g median=%g q3=%g max=%g",
		s.Min, s.Q1, s.Median, s.Q3, s.Max)
}

// IQR returns the interquartile range Q3-Q1.
func (s Summary) IQR() float64 { return s.Q3 - s.Q1 }

// Sorted returns an ascending copy of values. The input is left untouched.
func Sorted(values []float64) []float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted
}

// Quantile returns the p-quantile of values using linear interpolation
// between the closest ranks (method 7 of Hyndman and Fan, the default of R).
// A p <= 0 yields the minimum, a p >= 1 the maximum.
//
// Quantile panics if values is empty.
func Quantile(values []float64, p float64) float64 {
	return QuantileSorted(Sorted(values), p)
}

// QuantileSorted works like Quantile but expects sorted to be in
// ascending order already.
func QuantileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		panic("stat: quantile of empty sample")
	}
	if p <= 0 || n == 1 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	h := p * float64(n-1)
	lo := math.Floor(h)
	i := int(lo)
	x0, x1 := sorted[i], sorted[i+1]
	return x0 + (h-lo)*(x1-x0)
}

// Summarize computes the Summary of values. The sample is sorted once and
// the sorted copy is used for all five statistics.
//
// Summarize panics if values is empty.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		panic("stat: summary of empty sample")
	}
	sorted := Sorted(values)
	return Summary{
		Min:    sorted[0],
		Q1:     QuantileSorted(sorted, 0.25),
		Median: QuantileSorted(sorted, 0.5),
		Q3:     QuantileSorted(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}
}
