package data

import (
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"gonum.org/v1/plot/plotter"
)

func TestReadEngagements(t *testing.T) {
	in := `Platform,PostType,Likes
Instagram,Photo,120
Facebook,Video, 80
Instagram,Link,abc
Twitter,Photo
LinkedIn,Photo,95.5
`
	d, skipped, err := ReadEngagements(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	want := Engagements{{"Instagram", 120}, {"Facebook", 80}, {"LinkedIn", 95.5}}
	if len(d) != len(want) {
		t.Fatalf("got %d records %v, want %d", len(d), d, len(want))
	}
	for i := range want {
		if d[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, d[i], want[i])
		}
	}

	if len(skipped) != 2 {
		t.Fatalf("got %d skipped rows, want 2: %v", len(skipped), skipped)
	}
	if skipped[0].Line != 4 || skipped[0].Column != ColLikes || skipped[0].Value != "abc" {
		t.Errorf("first skipped row = %+v", skipped[0])
	}
	if !errors.Is(skipped[0], strconv.ErrSyntax) {
		t.Errorf("first skipped row: error %v is not a syntax error", skipped[0].Err)
	}
	if skipped[1].Line != 5 || !errors.Is(skipped[1], errShortRow) {
		t.Errorf("second skipped row = %+v", skipped[1])
	}

	min, max := plotter.Range(d)
	if min != 80 || max != 120 {
		t.Errorf("plotter.Range = %g, %g", min, max)
	}
}

func TestReadAverages(t *testing.T) {
	in := "\ufeffPlatform,PostType,AvgLikes\r\nA,Photo,5\r\nA,Video,10\r\nB,Photo,NaN\r\n"
	d, skipped, err := ReadAverages(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(d) != 2 || d[1] != (Average{"A", "Video", 10}) {
		t.Errorf("records = %v", d)
	}
	if len(skipped) != 1 || !errors.Is(skipped[0], errNotFinite) {
		t.Errorf("skipped = %v", skipped)
	}
}

func TestReadSeries(t *testing.T) {
	in := `Date,AvgLikes
03/02/2024 (Saturday),200
03/01/2024 (Friday),150
2024-03-03,10
03/04/2024,90
`
	d, skipped, err := ReadSeries(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(d) != 3 {
		t.Fatalf("got %d records, want 3", len(d))
	}
	if want := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC); !d[0].Date.Equal(want) {
		t.Errorf("first date = %v, want %v", d[0].Date, want)
	}
	if len(skipped) != 1 || skipped[0].Column != ColDate || skipped[0].Line != 4 {
		t.Errorf("skipped = %v", skipped)
	}

	sorted := d.Sorted()
	if !sorted[0].Date.Before(sorted[1].Date) || sorted[0].AvgLikes != 150 {
		t.Errorf("Sorted() = %v", sorted)
	}
	if d[0].AvgLikes != 200 {
		t.Error("Sorted modified its receiver")
	}

	x, y := sorted.XY(0)
	if x != float64(sorted[0].Date.Unix()) || y != 150 {
		t.Errorf("XY(0) = %g, %g", x, y)
	}
}

var headerErrorTests = []struct {
	name string
	in   string
	want error
}{
	{"empty", "", ErrNoHeader},
	{"missing", "Platform,Comments\nA,3\n", ErrMissingColumn},
}

func TestReadHeaderErrors(t *testing.T) {
	for _, tc := range headerErrorTests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := ReadEngagements(strings.NewReader(tc.in))
			if !errors.Is(err, tc.want) {
				t.Errorf("got error %v, want %v", err, tc.want)
			}
		})
	}
}

func TestReadBadQuoting(t *testing.T) {
	in := "Platform,Likes\n\"A,1\nB,2\n"
	_, skipped, err := ReadEngagements(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(skipped) == 0 {
		t.Error("unterminated quote not reported")
	}
}
