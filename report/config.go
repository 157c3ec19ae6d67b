package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/vdobler/engagement"
	"github.com/vdobler/engagement/render"
)

// ChartConfig describes one chart of a report.
type ChartConfig struct {
	Kind   engagement.Kind `toml:"kind"`
	Source string          `toml:"source"` // CSV file name inside the data directory.
	Output string          `toml:"output"` // Output file name, empty means <kind>.<ext>.
	Title  string          `toml:"title"`  // Empty means the default title of Kind.
}

// OutputName returns the file name the chart is written to in format.
func (cc ChartConfig) OutputName(format string) string {
	if cc.Output != "" {
		return cc.Output
	}
	return cc.Kind.String() + "." + render.Extension(format)
}

// Config is the configuration of a report run.
type Config struct {
	Layout  engagement.Layout `toml:"layout"`
	DataDir string            `toml:"data_dir"`
	OutDir  string            `toml:"out_dir"`
	Format  string            `toml:"format"`
	Charts  []ChartConfig     `toml:"charts"`
}

// DefaultConfig returns the configuration drawing the box plot, the
// grouped bar chart and the line chart from the three engagement files
// in the current directory as SVG.
func DefaultConfig() Config {
	return Config{
		Layout:  engagement.DefaultLayout(),
		DataDir: ".",
		OutDir:  ".",
		Format:  "svg",
		Charts: []ChartConfig{
			{Kind: engagement.Boxplot, Source: "socialMedia.csv"},
			{Kind: engagement.GroupedBar, Source: "socialMediaAvg.csv"},
			{Kind: engagement.LineChart, Source: "socialMediaTime.csv"},
		},
	}
}

// ParseConfig reads a TOML configuration from r. Settings missing in r
// keep their default value; a charts table in r replaces all default
// charts.
func ParseConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	cfg.Charts = nil

	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var (
			derr *toml.DecodeError
			serr *toml.StrictMissingError
		)
		if errors.As(err, &serr) {
			keys := make([]string, len(serr.Errors))
			for i, e := range serr.Errors {
				keys[i] = strings.Join(e.Key(), ".")
			}
			return Config{}, fmt.Errorf("config: unknown settings %s", strings.Join(keys, ", "))
		}
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return Config{}, fmt.Errorf("config: line %d column %d: %w", row, col, err)
		}
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if len(cfg.Charts) == 0 {
		cfg.Charts = DefaultConfig().Charts
	}
	return cfg, cfg.Validate()
}

// LoadConfig reads the TOML configuration file path.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	cfg, err := ParseConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks cfg for settings no chart could be drawn with.
func (cfg Config) Validate() error {
	if err := cfg.Layout.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := render.ForFormat(cfg.Format); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if len(cfg.Charts) == 0 {
		return errors.New("config: no charts")
	}
	outputs := make(map[string]int)
	for i, cc := range cfg.Charts {
		if cc.Source == "" {
			return fmt.Errorf("config: chart %d (%s): no source", i+1, cc.Kind)
		}
		name := cc.OutputName(cfg.Format)
		if j, dup := outputs[name]; dup {
			return fmt.Errorf("config: charts %d and %d both write %s", j+1, i+1, name)
		}
		outputs[name] = i
	}
	return nil
}

// Select returns a copy of cfg which contains only the charts of the
// given kinds. No kinds selects all charts.
func (cfg Config) Select(kinds ...engagement.Kind) Config {
	if len(kinds) == 0 {
		return cfg
	}
	var charts []ChartConfig
	for _, cc := range cfg.Charts {
		for _, k := range kinds {
			if cc.Kind == k {
				charts = append(charts, cc)
				break
			}
		}
	}
	cfg.Charts = charts
	return cfg
}
