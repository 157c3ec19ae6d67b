package geom

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/vdobler/engagement"
	"github.com/vdobler/engagement/data"
	"github.com/vdobler/engagement/stat"
	"golang.org/x/image/colornames"
)

var (
	layout = engagement.DefaultLayout()
	style  = engagement.DefaultStyle()
)

func TestBoxplotSummaries(t *testing.T) {
	b := Boxplot{Data: data.Engagements{{Platform: "X", Likes: 10}, {Platform: "X", Likes: 20}, {Platform: "X", Likes: 30}}}
	boxes := b.Boxes()
	if len(boxes) != 1 {
		t.Fatalf("got %d boxes, want 1", len(boxes))
	}
	want := stat.Summary{Min: 10, Q1: 15, Median: 20, Q3: 25, Max: 30}
	if boxes[0].Platform != "X" || boxes[0].Summary != want {
		t.Errorf("box = %+v, want X %v", boxes[0], want)
	}
}

func TestBoxplotGeometry(t *testing.T) {
	b := Boxplot{Data: data.Engagements{
		{Platform: "A", Likes: 10}, {Platform: "B", Likes: 50}, {Platform: "A", Likes: 20}, {Platform: "A", Likes: 30}, {Platform: "B", Likes: 70},
	}}
	scales, err := b.Scales(layout)
	if err != nil {
		t.Fatal(err)
	}
	prims := BoxPrimitives(b.Boxes(), scales, style)
	if len(prims) != 6 {
		t.Fatalf("got %d primitives, want 6", len(prims))
	}

	whisker, box, median := prims[0].(engagement.Line), prims[1].(engagement.Rect), prims[2].(engagement.Line)
	x, _ := scales.X.Map("A")
	bw := scales.X.Bandwidth()
	y := scales.Y.Map

	if whisker.From.X != x+bw/2 || whisker.To.X != x+bw/2 {
		t.Errorf("whisker not centered: %+v", whisker)
	}
	if whisker.From.Y != y(10) || whisker.To.Y != y(30) {
		t.Errorf("whisker spans %v-%v, want %g-%g", whisker.From, whisker.To, y(10), y(30))
	}
	if box.Min.X != x || !near(box.Width, bw) {
		t.Errorf("box x: %+v", box)
	}
	if !near(box.Min.Y, y(25)) || !near(box.Min.Y+box.Height, y(15)) {
		t.Errorf("box spans %g-%g, want %g-%g", box.Min.Y, box.Min.Y+box.Height, y(25), y(15))
	}
	if box.Fill != colornames.Lightblue {
		t.Errorf("box fill %v", box.Fill)
	}
	if median.From.Y != y(20) || median.To.Y != y(20) || !near(median.To.X-median.From.X, bw) {
		t.Errorf("median line %+v", median)
	}
	if median.Style.Width != 2 {
		t.Errorf("median width %g", median.Style.Width)
	}

	// Larger values are drawn higher up.
	if !(y(30) < y(10)) {
		t.Error("value axis not inverted")
	}
}

func TestBarScenario(t *testing.T) {
	b := Bar{Data: data.Averages{{Platform: "A", PostType: "Photo", AvgLikes: 5}, {Platform: "A", PostType: "Video", AvgLikes: 10}}}
	scales, err := b.Scales(layout, style)
	if err != nil {
		t.Fatal(err)
	}
	prims := BarPrimitives(b.Data, scales, style)
	if len(prims) != 2 {
		t.Fatalf("got %d primitives, want 2", len(prims))
	}
	photo, video := prims[0].(engagement.Rect), prims[1].(engagement.Rect)

	outer, _ := scales.X0.Map("A")
	inPhoto, _ := scales.X1.Map("Photo")
	inVideo, _ := scales.X1.Map("Video")
	if photo.Min.X != outer+inPhoto || video.Min.X != outer+inVideo {
		t.Errorf("bars at %g and %g, want %g and %g",
			photo.Min.X, video.Min.X, outer+inPhoto, outer+inVideo)
	}
	if photo.Min.X == video.Min.X {
		t.Error("bars share inner offset")
	}
	if !near(photo.Width, scales.X1.Bandwidth()) || !near(video.Width, photo.Width) {
		t.Errorf("widths %g, %g", photo.Width, video.Width)
	}

	base := scales.Y.Map(0)
	if !near(photo.Min.Y+photo.Height, base) || !near(video.Min.Y+video.Height, base) {
		t.Error("bars do not stand on the baseline")
	}
	if !near(video.Height, 2*photo.Height) {
		t.Errorf("heights %g and %g not proportional to 5 and 10", photo.Height, video.Height)
	}

	if photo.Fill != colornames.Steelblue || video.Fill != colornames.Orange {
		t.Errorf("fills %v, %v", photo.Fill, video.Fill)
	}
}

func TestBarNegativeHangsDown(t *testing.T) {
	b := Bar{Data: data.Averages{{Platform: "A", PostType: "Photo", AvgLikes: -4}, {Platform: "A", PostType: "Video", AvgLikes: 8}}}
	scales, err := b.Scales(layout, style)
	if err != nil {
		t.Fatal(err)
	}
	neg := BarPrimitives(b.Data, scales, style)[0].(engagement.Rect)
	if !near(neg.Min.Y, scales.Y.Map(0)) || neg.Height <= 0 {
		t.Errorf("negative bar %+v", neg)
	}
}

func TestLineSortsByDate(t *testing.T) {
	d1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	l := Line{Data: data.Series{{Date: d2, AvgLikes: 200}, {Date: d1, AvgLikes: 100}}}
	scales, err := l.Scales(layout)
	if err != nil {
		t.Fatal(err)
	}
	prims := LinePrimitives(l.Data, scales, style)
	if len(prims) != 1 {
		t.Fatalf("got %d primitives, want 1", len(prims))
	}
	path := prims[0].(engagement.Path)
	if len(path.Segments) != 2 {
		t.Fatalf("got %d segments", len(path.Segments))
	}
	first, second := path.Segments[0].End(), path.Segments[1].End()
	if first.X != scales.X.MapTime(d1) || second.X != scales.X.MapTime(d2) {
		t.Errorf("path visits %v then %v", first, second)
	}
	if first.X != layout.Margin.Left || second.X != layout.Width-layout.Margin.Right {
		t.Errorf("path does not span the panel: %v %v", first, second)
	}
	if first.Y != scales.Y.Map(100) {
		t.Errorf("first point at y=%g, want %g", first.Y, scales.Y.Map(100))
	}
	if path.Fill != nil || path.Style.Color != colornames.Red {
		t.Errorf("path style %+v", path)
	}
}

func TestBuildEmpty(t *testing.T) {
	builders := map[string]engagement.Builder{
		"boxplot": Boxplot{},
		"bar":     Bar{},
		"line":    Line{},
	}
	for name, b := range builders {
		t.Run(name, func(t *testing.T) {
			c, err := b.Build(layout, style)
			if !errors.Is(err, ErrEmptyDataset) {
				t.Errorf("got error %v, want %v", err, ErrEmptyDataset)
			}
			if c != nil {
				t.Errorf("got chart %v", c)
			}
		})
	}
}

func TestBuildSingleRecord(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	builders := map[string]engagement.Builder{
		"boxplot": Boxplot{Data: data.Engagements{{Platform: "A", Likes: 7}}},
		"bar":     Bar{Data: data.Averages{{Platform: "A", PostType: "Photo", AvgLikes: 7}}},
		"line":    Line{Data: data.Series{{Date: day, AvgLikes: 7}}},
		"zeros":   Boxplot{Data: data.Engagements{{Platform: "A", Likes: 0}, {Platform: "B", Likes: 0}}},
	}
	for name, b := range builders {
		t.Run(name, func(t *testing.T) {
			c, err := b.Build(layout, style)
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			for i, p := range c.Primitives {
				if hasNaN(p) {
					t.Errorf("primitive %d has NaN coordinates: %+v", i, p)
				}
			}
		})
	}
}

func TestBuildDecorations(t *testing.T) {
	b := Boxplot{Data: data.Engagements{{Platform: "A", Likes: 10}, {Platform: "B", Likes: 20}}}
	c, err := b.Build(layout, style)
	if err != nil {
		t.Fatal(err)
	}
	count := c.Count()
	if count["Axis"] != 2 || count["Text"] != 1 || count["Rect"] != 2 || count["Line"] != 4 {
		t.Errorf("primitive count %v", count)
	}
	if c.Title != BoxplotTitle || c.Kind != engagement.Boxplot {
		t.Errorf("chart %q of kind %v", c.Title, c.Kind)
	}
	for _, p := range c.Primitives {
		if a, ok := p.(engagement.Axis); ok && a.Orient == engagement.Bottom {
			if len(a.Ticks) != 2 || a.Ticks[0].Label != "A" {
				t.Errorf("x axis ticks %v", a.Ticks)
			}
			if a.Offset != layout.Height-layout.Margin.Bottom {
				t.Errorf("x axis at %g", a.Offset)
			}
		}
	}
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func hasNaN(p engagement.Primitive) bool {
	var xs []float64
	switch p := p.(type) {
	case engagement.Line:
		xs = []float64{p.From.X, p.From.Y, p.To.X, p.To.Y}
	case engagement.Rect:
		xs = []float64{p.Min.X, p.Min.Y, p.Width, p.Height}
	case engagement.Path:
		for _, s := range p.Segments {
			for _, pt := range s.Pts {
				xs = append(xs, pt.X, pt.Y)
			}
		}
	case engagement.Axis:
		xs = []float64{p.Offset, p.Extent.Min, p.Extent.Max}
		for _, t := range p.Ticks {
			xs = append(xs, t.Pos)
		}
	case engagement.Text:
		xs = []float64{p.At.X, p.At.Y}
	}
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return true
		}
	}
	return false
}
