package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
)

// Column names of the engagement CSV files.
const (
	ColPlatform = "Platform"
	ColPostType = "PostType"
	ColLikes    = "Likes"
	ColAvgLikes = "AvgLikes"
	ColDate     = "Date"
)

// DateLayout is the layout of the Date column, e.g. "03/01/2024 (Friday)".
// The weekday is checked for syntax only.
const DateLayout = "01/02/2006 (Monday)"

var (
	// ErrMissingColumn is returned if a required column is not part of
	// the header. The whole file is rejected.
	ErrMissingColumn = errors.New("missing column")

	// ErrNoHeader is returned for empty input.
	ErrNoHeader = errors.New("no header row")

	errShortRow  = errors.New("row too short")
	errNotFinite = errors.New("not a finite number")
)

// A RowError describes a row which was skipped because it could not be
// parsed.
type RowError struct {
	Line   int    // Line number in the input, starting at 1.
	Column string // Offending column, empty if the whole row is bad.
	Value  string
	Err    error
}

func (e *RowError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: column %s: bad value %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// ReadEngagements reads socialMedia.csv formatted data. Rows which cannot
// be parsed are skipped and reported.
func ReadEngagements(r io.Reader) (Engagements, []*RowError, error) {
	var d Engagements
	skipped, err := readRows(r, []string{ColPlatform, ColLikes}, func(v []string) (int, error) {
		likes, err := parseNumber(v[1])
		if err != nil {
			return 1, err
		}
		d = append(d, Engagement{Platform: v[0], Likes: likes})
		return 0, nil
	})
	return d, skipped, err
}

// ReadAverages reads socialMediaAvg.csv formatted data. Rows which cannot
// be parsed are skipped and reported.
func ReadAverages(r io.Reader) (Averages, []*RowError, error) {
	var d Averages
	skipped, err := readRows(r, []string{ColPlatform, ColPostType, ColAvgLikes}, func(v []string) (int, error) {
		avg, err := parseNumber(v[2])
		if err != nil {
			return 2, err
		}
		d = append(d, Average{Platform: v[0], PostType: v[1], AvgLikes: avg})
		return 0, nil
	})
	return d, skipped, err
}

// ReadSeries reads socialMediaTime.csv formatted data in file order.
// Rows which cannot be parsed are skipped and reported.
func ReadSeries(r io.Reader) (Series, []*RowError, error) {
	var d Series
	skipped, err := readRows(r, []string{ColDate, ColAvgLikes}, func(v []string) (int, error) {
		date, err := ParseDate(v[0])
		if err != nil {
			return 0, err
		}
		avg, err := parseNumber(v[1])
		if err != nil {
			return 1, err
		}
		d = append(d, Daily{Date: date, AvgLikes: avg})
		return 0, nil
	})
	return d, skipped, err
}

// ParseDate parses s in DateLayout. The weekday suffix may be omitted.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse("01/02/2006", s)
}

func parseNumber(s string) (float64, error) {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok {
			return 0, ne.Err
		}
		return 0, err
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, errNotFinite
	}
	return x, nil
}

// readRows reads CSV data with a header row from r and calls row with the
// trimmed values of the named columns for every data row. If row fails it
// returns the index of the offending column; the row is then recorded as
// skipped.
func readRows(r io.Reader, columns []string, row func(values []string) (int, error)) ([]*RowError, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	} else if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	pos := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := pos[name]; !dup {
			pos[name] = i
		}
	}
	index := make([]int, len(columns))
	for j, name := range columns {
		i, ok := pos[name]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, name)
		}
		index[j] = i
	}

	var skipped []*RowError
	values := make([]string, len(columns))
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				skipped = append(skipped, &RowError{Line: pe.StartLine, Err: pe.Err})
				continue
			}
			return skipped, err
		}
		line, _ := cr.FieldPos(0)

		short := false
		for j, i := range index {
			if i >= len(record) {
				skipped = append(skipped, &RowError{Line: line, Column: columns[j], Err: errShortRow})
				short = true
				break
			}
			values[j] = strings.TrimSpace(record[i])
		}
		if short {
			continue
		}

		if col, err := row(values); err != nil {
			skipped = append(skipped, &RowError{
				Line:   line,
				Column: columns[col],
				Value:  values[col],
				Err:    err,
			})
		}
	}
	return skipped, nil
}
