//go:build ignore
// +build ignore

package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/vdobler/engagement"
	"github.com/vdobler/engagement/data"
	"github.com/vdobler/engagement/geom"
	"github.com/vdobler/engagement/render"
)

var (
	platforms = []string{"Facebook", "Instagram", "LinkedIn", "Twitter"}
	postTypes = []string{"Image", "Link", "Video"}
)

func main() {
	rnd := rand.New(rand.NewSource(1))

	var likes data.Engagements
	for i := 0; i < 200; i++ {
		p := rnd.Intn(len(platforms))
		likes = append(likes, data.Engagement{
			Platform: platforms[p],
			Likes:    float64(100*(p+1)) + 40*rnd.NormFloat64(),
		})
	}

	var avg data.Averages
	for p, platform := range platforms {
		for t, postType := range postTypes {
			avg = append(avg, data.Average{
				Platform: platform,
				PostType: postType,
				AvgLikes: float64(50*(p+1)+20*t) + 10*rnd.Float64(),
			})
		}
	}

	var series data.Series
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	y := 200.0
	for i := 0; i < 14; i++ {
		y += 20 * rnd.NormFloat64()
		series = append(series, data.Daily{Date: day.AddDate(0, 0, i), AvgLikes: y})
	}
	rnd.Shuffle(len(series), func(i, j int) { series[i], series[j] = series[j], series[i] })

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	layout := engagement.DefaultLayout()
	style := engagement.DefaultStyle()
	for _, b := range []engagement.Builder{
		geom.Boxplot{Data: likes},
		geom.Bar{Data: avg},
		geom.Line{Data: series},
	} {
		c, err := b.Build(layout, style)
		if err != nil {
			panic(err)
		}
		write(c, fmt.Sprintf("testdata/%s.png", c.Kind))
		write(c, fmt.Sprintf("testdata/%s.svg", c.Kind))
	}
}

func write(c *engagement.Chart, name string) {
	sink, err := render.ForFormat(name[len(name)-4:])
	if err != nil {
		panic(err)
	}
	w, err := os.Create(name)
	if err != nil {
		panic(err)
	}
	defer w.Close()
	if err = sink.Render(w, c); err != nil {
		panic(err)
	}
	if err = w.Close(); err != nil {
		panic(err)
	}
}
