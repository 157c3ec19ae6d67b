// Package data contains the engagement records and readers for the CSV
// files they are stored in.
//
// The record slices implement the gonum/plot plotter.Valuer and
// plotter.XYer interfaces so the plotter range helpers can be used on them.
package data

import (
	"sort"
	"time"
)

// Engagement is one row of socialMedia.csv: the likes of a single post.
type Engagement struct {
	Platform string
	Likes    float64
}

// Engagements implements plotter.Valuer with the likes as value.
type Engagements []Engagement

func (d Engagements) Len() int              { return len(d) }
func (d Engagements) Value(i int) float64   { return d[i].Likes }
func (d Engagements) Platform(i int) string { return d[i].Platform }

// Average is one row of socialMediaAvg.csv: the average likes of all posts
// of one type on one platform.
type Average struct {
	Platform string
	PostType string
	AvgLikes float64
}

// Averages implements plotter.Valuer with the average likes as value.
type Averages []Average

func (d Averages) Len() int            { return len(d) }
func (d Averages) Value(i int) float64 { return d[i].AvgLikes }

// Daily is one row of socialMediaTime.csv: the average likes on one day.
type Daily struct {
	Date     time.Time
	AvgLikes float64
}

// Series implements plotter.XYer with the date in Unix seconds as x and
// the average likes as y.
type Series []Daily

func (d Series) Len() int { return len(d) }
func (d Series) XY(i int) (x, y float64) {
	return float64(d[i].Date.Unix()), d[i].AvgLikes
}
func (d Series) Value(i int) float64 { return d[i].AvgLikes }

// Sorted returns a copy of d in chronological order. Rows with the same
// date keep their relative order.
func (d Series) Sorted() Series {
	s := make(Series, len(d))
	copy(s, d)
	sort.SliceStable(s, func(i, j int) bool { return s[i].Date.Before(s[j].Date) })
	return s
}
