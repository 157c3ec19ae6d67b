// Package report loads the engagement CSV files, builds the configured
// charts and writes them to disk.
//
// The charts are independent of each other and are produced concurrently.
// A chart whose data cannot be read or drawn does not prevent the other
// charts from being written.
package report

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/vdobler/engagement"
	"github.com/vdobler/engagement/data"
	"github.com/vdobler/engagement/geom"
	"github.com/vdobler/engagement/render"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of producing one chart.
type Result struct {
	Kind       engagement.Kind
	Source     string
	Output     string // Path of the written file.
	Skipped    int    // Number of malformed rows ignored.
	Primitives int
	Err        error
}

// Run builds every chart of cfg from the files in fsys and writes them to
// cfg.OutDir. The returned error combines the errors of all failed charts;
// results are returned for every chart in configuration order.
func Run(ctx context.Context, fsys fs.FS, cfg Config, logger *zap.Logger) ([]Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sink, err := render.ForFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		return nil, err
	}

	// Chart errors are kept in results instead of being returned to the
	// group: Wait would report only the first of them.
	results := make([]Result, len(cfg.Charts))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, cc := range cfg.Charts {
		i, cc := i, cc
		g.Go(func() error {
			results[i] = runChart(ctx, fsys, cfg, cc, sink, logger)
			return nil
		})
	}
	_ = g.Wait()

	for _, r := range results {
		err = multierr.Append(err, r.Err)
	}
	return results, err
}

func runChart(ctx context.Context, fsys fs.FS, cfg Config, cc ChartConfig, sink render.Sink, logger *zap.Logger) (res Result) {
	res = Result{
		Kind:   cc.Kind,
		Source: cc.Source,
		Output: filepath.Join(cfg.OutDir, cc.OutputName(cfg.Format)),
	}
	log := logger.With(zap.Stringer("chart", cc.Kind), zap.String("source", cc.Source))
	defer func() {
		if res.Err != nil {
			log.Error("chart failed", zap.Error(res.Err))
			return
		}
		log.Info("chart written",
			zap.String("output", res.Output),
			zap.Int("primitives", res.Primitives),
			zap.Int("skipped", res.Skipped))
	}()

	if err := ctx.Err(); err != nil {
		res.Err = fmt.Errorf("%s: %w", cc.Kind, err)
		return res
	}

	b, skipped, err := Load(fsys, cc)
	res.Skipped = len(skipped)
	for _, re := range skipped {
		log.Warn("skipped malformed row",
			zap.Int("line", re.Line),
			zap.String("column", re.Column),
			zap.String("value", re.Value),
			zap.Error(re.Err))
	}
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", cc.Kind, err)
		return res
	}

	chart, err := b.Build(cfg.Layout, engagement.DefaultStyle())
	if err != nil {
		res.Err = fmt.Errorf("%s: %s: %w", cc.Kind, cc.Source, err)
		return res
	}
	res.Primitives = len(chart.Primitives)

	if err := write(res.Output, sink, chart); err != nil {
		res.Err = fmt.Errorf("%s: %w", cc.Kind, err)
	}
	return res
}

// Load reads the source of cc from fsys and returns the builder of the
// chart together with the rows which had to be skipped.
func Load(fsys fs.FS, cc ChartConfig) (engagement.Builder, []*data.RowError, error) {
	f, err := fsys.Open(cc.Source)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	var (
		b       engagement.Builder
		skipped []*data.RowError
	)
	switch cc.Kind {
	case engagement.Boxplot:
		var d data.Engagements
		d, skipped, err = data.ReadEngagements(f)
		b = geom.Boxplot{Data: d, Title: cc.Title}
	case engagement.GroupedBar:
		var d data.Averages
		d, skipped, err = data.ReadAverages(f)
		b = geom.Bar{Data: d, Title: cc.Title}
	case engagement.LineChart:
		var d data.Series
		d, skipped, err = data.ReadSeries(f)
		b = geom.Line{Data: d, Title: cc.Title}
	default:
		return nil, nil, fmt.Errorf("unknown chart kind %v", cc.Kind)
	}
	if err != nil {
		return nil, skipped, fmt.Errorf("%s: %w", cc.Source, err)
	}
	return b, skipped, nil
}

// write renders c to the file name. A partially written file is removed.
func write(name string, sink render.Sink, c *engagement.Chart) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(name)
		}
	}()
	defer multierr.AppendInvoke(&err, multierr.Close(f))
	return sink.Render(f, c)
}
