package engagement

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/plot"
)

// ----------------------------------------------------------------------------
// Band

// Band is a categorical scale. It divides its Range into len(Domain)
// equally wide and contiguous slots, one per category in domain order.
// Padding shrinks the drawn bandwidth of each slot symmetrically and adds
// the same amount of space before the first and after the last slot.
type Band struct {
	Domain  []string
	Range   Interval
	Padding float64

	index     map[string]int
	start     float64
	step      float64
	bandwidth float64
}

// NewBand returns a band scale mapping the categories in domain onto rng.
// Padding must be in [0, 1). Duplicate categories are ignored.
func NewBand(domain []string, rng Interval, padding float64) (*Band, error) {
	if padding < 0 || padding >= 1 || math.IsNaN(padding) {
		return nil, fmt.Errorf("band scale: padding %g not in [0, 1)", padding)
	}
	b := &Band{
		Range:   rng,
		Padding: padding,
		index:   make(map[string]int, len(domain)),
	}
	for _, c := range domain {
		if _, dup := b.index[c]; dup {
			continue
		}
		b.index[c] = len(b.Domain)
		b.Domain = append(b.Domain, c)
	}
	if len(b.Domain) == 0 {
		return nil, errors.New("band scale: empty domain")
	}

	n := float64(len(b.Domain))
	width := rng.Max - rng.Min
	b.step = width / math.Max(1, n+padding)
	b.start = rng.Min + (width-b.step*(n-padding))/2
	b.bandwidth = b.step * (1 - padding)
	return b, nil
}

// Map returns the pixel position where the slot of category c starts.
// It reports false if c is not part of the domain.
func (b *Band) Map(c string) (float64, bool) {
	i, ok := b.index[c]
	if !ok {
		return math.NaN(), false
	}
	return b.start + b.step*float64(i), true
}

// Center returns the pixel position of the middle of c's band.
func (b *Band) Center(c string) (float64, bool) {
	x, ok := b.Map(c)
	return x + b.bandwidth/2, ok
}

// Bandwidth is the drawn width of one slot.
func (b *Band) Bandwidth() float64 { return b.bandwidth }

// Step is the distance between the starts of two adjacent slots.
func (b *Band) Step() float64 { return b.step }

// Ticks returns one tick per category, placed at the band centers.
func (b *Band) Ticks() []AxisTick {
	ticks := make([]AxisTick, len(b.Domain))
	for i, c := range b.Domain {
		ticks[i] = AxisTick{Pos: b.start + b.step*float64(i) + b.bandwidth/2, Label: c}
	}
	return ticks
}

func (b *Band) String() string {
	return fmt.Sprintf("Band%v Range=[%.2f:%.2f] Step=%.2f Bandwidth=%.2f",
		b.Domain, b.Range.Min, b.Range.Max, b.step, b.bandwidth)
}

// ----------------------------------------------------------------------------
// Linear

// Linear maps the continuous interval Domain linearly onto Range.
type Linear struct {
	Domain Interval
	Range  Interval
	Trans  Transformation
}

// NewLinear returns a linear scale mapping domain onto rng.
func NewLinear(domain, rng Interval) *Linear {
	return &Linear{Domain: domain, Range: rng, Trans: LinearTrans}
}

// Map maps x onto the range. Values outside of the domain are extrapolated.
// A degenerate domain maps everything to the middle of the range.
func (s *Linear) Map(x float64) float64 {
	if s.Domain.Min == s.Domain.Max {
		return (s.Range.Min + s.Range.Max) / 2
	}
	return s.Trans.Map(s.Domain, s.Range, x)
}

// Invert maps the pixel position y back into the domain.
func (s *Linear) Invert(y float64) float64 {
	if s.Domain.Min == s.Domain.Max || s.Range.Min == s.Range.Max {
		return s.Domain.Min
	}
	return s.Trans.Invert(s.Domain, s.Range, y)
}

// Nice returns a copy of s whose domain is extended to multiples of the
// distance between about count ticks. The domain never shrinks. Extending
// may change the tick distance, so this repeats until it is stable.
func (s *Linear) Nice(count int) *Linear {
	n := *s
	min, max := s.Domain.Min, s.Domain.Max
	if !(min < max) || count < 1 {
		return &n
	}

	prev := 0.0
	for iter := 0; iter < 10; iter++ {
		step := tickIncrement(min, max, count)
		if step == prev {
			break
		}
		switch {
		case step > 0:
			min = math.Floor(min/step) * step
			max = math.Ceil(max/step) * step
		case step < 0:
			min = math.Ceil(min*step) / step
			max = math.Floor(max*step) / step
		default:
			return &n
		}
		prev = step
	}
	n.Domain = Interval{min, max}
	return &n
}

// Ticks returns the labelled major ticks of s in pixel space.
func (s *Linear) Ticks() []AxisTick {
	return s.ticks(s.Trans.Ticker)
}

func (s *Linear) ticks(ticker plot.Ticker) []AxisTick {
	min, max := s.Domain.Min, s.Domain.Max
	if !(min < max) {
		return []AxisTick{{Pos: s.Map(min), Label: fmt.Sprintf("%g", min)}}
	}
	var ticks []AxisTick
	for _, t := range ticker.Ticks(min, max) {
		if t.IsMinor() || !s.Domain.Contains(t.Value) {
			continue
		}
		ticks = append(ticks, AxisTick{Pos: s.Map(t.Value), Label: t.Label})
	}
	return ticks
}

func (s *Linear) String() string {
	return fmt.Sprintf("%s Domain=[%.2f:%.2f] Range=[%.2f:%.2f]",
		s.Trans.Name, s.Domain.Min, s.Domain.Max, s.Range.Min, s.Range.Max)
}

// ----------------------------------------------------------------------------
// Time

// Time is a linear scale over points in time. Times are represented by
// their Unix time in seconds.
type Time struct {
	Linear

	// Format is the time layout used for tick labels.
	Format string
}

// DefaultTimeFormat is the tick label layout of a Time scale.
const DefaultTimeFormat = "Jan 02"

// NewTime returns a time scale mapping [min, max] onto rng.
func NewTime(min, max time.Time, rng Interval) *Time {
	return &Time{
		Linear: Linear{
			Domain: Interval{Seconds(min), Seconds(max)},
			Range:  rng,
			Trans:  LinearTrans,
		},
		Format: DefaultTimeFormat,
	}
}

// MapTime maps t onto the range.
func (s *Time) MapTime(t time.Time) float64 {
	return s.Map(Seconds(t))
}

// Ticks returns the labelled major ticks of s in pixel space.
func (s *Time) Ticks() []AxisTick {
	if !(s.Domain.Min < s.Domain.Max) {
		t := time.Unix(int64(s.Domain.Min), 0).UTC()
		return []AxisTick{{Pos: s.Map(s.Domain.Min), Label: t.Format(s.Format)}}
	}
	return s.ticks(CalendarTicks{Count: DefaultTickCount, Format: s.Format})
}

// Seconds returns t as Unix time in seconds.
func Seconds(t time.Time) float64 {
	return float64(t.Unix())
}

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// set. When used as a pixel range Min and Max are the start and
// end of the range and need not be ordered.
type Interval struct {
	Min, Max float64
}

// Update expands i to include x.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// Contains reports whether x lies in the ordered interval i.
func (i Interval) Contains(x float64) bool {
	lo, hi := math.Min(i.Min, i.Max), math.Max(i.Min, i.Max)
	const eps = 1e-9
	return x >= lo-eps*math.Abs(lo) && x <= hi+eps*math.Abs(hi)
}
