package engagement

import (
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	"gonum.org/v1/plot"
)

// DefaultTickCount is the number of ticks scales aim for.
const DefaultTickCount = 10

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// tickIncrement returns the distance between about count ticks covering
// [start, stop]. The distance is 1, 2 or 5 times a power of ten. A
// distance below one is returned as the negated reciprocal, -1/step, so
// tick values can be computed as i/-inc without rounding errors.
func tickIncrement(start, stop float64, count int) float64 {
	step := (stop - start) / math.Max(1, float64(count))
	power := math.Floor(math.Log10(step))
	e := step / math.Pow(10, power)
	f := 1.0
	switch {
	case e >= e10:
		f = 10
	case e >= e5:
		f = 5
	case e >= e2:
		f = 2
	}
	if power >= 0 {
		return f * math.Pow(10, power)
	}
	return -math.Pow(10, -power) / f
}

// NiceTicks is a plot.Ticker placing about Count ticks at multiples of
// 1, 2 or 5 times a power of ten. Labels use English digit grouping and
// as many fraction digits as the tick distance needs.
type NiceTicks struct {
	Count int
}

// Ticks implements plot.Ticker.
func (t NiceTicks) Ticks(min, max float64) []plot.Tick {
	if !(min < max) {
		return nil
	}
	inc := tickIncrement(min, max, t.Count)
	if inc == 0 || math.IsNaN(inc) || math.IsInf(inc, 0) {
		return nil
	}

	var lo, hi float64
	value := func(i float64) float64 { return i * inc }
	prec := 0
	if inc > 0 {
		lo, hi = math.Ceil(min/inc), math.Floor(max/inc)
	} else {
		k := -inc
		lo, hi = math.Ceil(min*k), math.Floor(max*k)
		value = func(i float64) float64 { return i / k }
		prec = int(math.Ceil(math.Log10(k) - 1e-9))
	}

	p := message.NewPrinter(language.English)
	var ticks []plot.Tick
	for i := lo; i <= hi; i++ {
		v := value(i)
		if v == 0 {
			v = 0 // no negative zero
		}
		ticks = append(ticks, plot.Tick{
			Value: v,
			Label: p.Sprintf("%v", number.Decimal(v, number.Scale(prec))),
		})
	}
	return ticks
}

// calendarStep is a tick distance on the calendar: every units, counted
// from the start of the enclosing month (days) or year (months).
type calendarStep struct {
	unit   calendarUnit
	every  int
	approx time.Duration
}

type calendarUnit int

const (
	day calendarUnit = iota
	week
	month
	year
)

const oneDay = 24 * time.Hour

var calendarSteps = []calendarStep{
	{day, 1, oneDay},
	{day, 2, 2 * oneDay},
	{week, 1, 7 * oneDay},
	{month, 1, 30 * oneDay},
	{month, 3, 90 * oneDay},
	{year, 1, 365 * oneDay},
}

// floor returns the start of the unit containing t.
func (u calendarUnit) floor(t time.Time) time.Time {
	y, m, d := t.Date()
	switch u {
	case week:
		return time.Date(y, m, d-int(t.Weekday()), 0, 0, 0, 0, t.Location())
	case month:
		return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
	case year:
		return time.Date(y, 1, 1, 0, 0, 0, 0, t.Location())
	}
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func (u calendarUnit) next(t time.Time) time.Time {
	switch u {
	case week:
		return t.AddDate(0, 0, 7)
	case month:
		return t.AddDate(0, 1, 0)
	case year:
		return t.AddDate(1, 0, 0)
	}
	return t.AddDate(0, 0, 1)
}

// field is the number a step with every > 1 must divide.
func (u calendarUnit) field(t time.Time) int {
	switch u {
	case month:
		return int(t.Month()) - 1
	case year:
		return t.Year()
	}
	return t.Day() - 1
}

// pick returns the calendar step whose distance is closest to target.
func pick(target time.Duration) calendarStep {
	for i, s := range calendarSteps {
		if s.approx <= target {
			continue
		}
		if i == 0 {
			return s
		}
		prev := calendarSteps[i-1]
		if float64(target)/float64(prev.approx) < float64(s.approx)/float64(target) {
			return prev
		}
		return s
	}
	return calendarSteps[len(calendarSteps)-1]
}

// CalendarTicks is a plot.Ticker for values in Unix seconds. Its ticks
// fall on midnight UTC of whole days, Sundays, first days of months or
// years, whichever step gives closest to Count ticks.
type CalendarTicks struct {
	Count  int
	Format string
}

// Ticks implements plot.Ticker.
func (t CalendarTicks) Ticks(min, max float64) []plot.Tick {
	if !(min < max) {
		return nil
	}
	start := time.Unix(int64(math.Ceil(min)), 0).UTC()
	end := time.Unix(int64(math.Floor(max)), 0).UTC()
	target := time.Duration((max - min) / math.Max(1, float64(t.Count)) * float64(time.Second))
	step := pick(target)
	every := step.every
	if step.unit == year {
		if inc := tickIncrement(float64(start.Year()), float64(end.Year()), t.Count); inc > 1 {
			every = int(inc)
		}
	}

	var ticks []plot.Tick
	tt := step.unit.floor(start)
	if tt.Before(start) {
		tt = step.unit.next(tt)
	}
	for ; !tt.After(end); tt = step.unit.next(tt) {
		if every > 1 && step.unit.field(tt)%every != 0 {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: Seconds(tt), Label: tt.Format(t.Format)})
	}
	return ticks
}
