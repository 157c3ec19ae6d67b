// Command socialcharts draws the social media engagement charts: a box
// plot of likes per platform, a grouped bar chart of the average likes
// per platform and post type and a line chart of the likes over time.
package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/vdobler/engagement"
	"github.com/vdobler/engagement/render"
	"github.com/vdobler/engagement/report"
	"go.uber.org/zap"
)

var (
	configPath string
	dataDir    string
	outDir     string
	format     string
	charts     []string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "socialcharts",
		Short: "Draw social media engagement charts",
		Long: `socialcharts reads socialMedia.csv, socialMediaAvg.csv and
socialMediaTime.csv and draws a box plot, a grouped bar chart and a
line chart of the likes.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML configuration file")
	rootCmd.Flags().StringVarP(&dataDir, "data", "d", "", "Directory containing the CSV files (default from config or .)")
	rootCmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default from config or .)")
	rootCmd.Flags().StringVarP(&format, "format", "f", "", fmt.Sprintf("Output format: %v (default svg)", render.Formats))
	rootCmd.Flags().StringSliceVar(&charts, "chart", nil, fmt.Sprintf("Draw only these charts: %v", engagement.Kinds()))
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "socialcharts:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg := report.DefaultConfig()
	if configPath != "" {
		if cfg, err = report.LoadConfig(configPath); err != nil {
			return err
		}
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if outDir != "" {
		cfg.OutDir = outDir
	}
	if format != "" {
		cfg.Format = format
	}

	var kinds []engagement.Kind
	for _, name := range charts {
		k, err := engagement.ParseKind(name)
		if err != nil {
			return err
		}
		kinds = append(kinds, k)
	}
	cfg = cfg.Select(kinds...)
	logger.Debug("configuration", zap.Any("config", cfg))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	results, err := report.Run(ctx, os.DirFS(cfg.DataDir), cfg, logger)
	for _, r := range results {
		if r.Err == nil {
			fmt.Fprintln(cmd.OutOrStdout(), r.Output)
		}
	}
	return err
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	return cfg.Build()
}
