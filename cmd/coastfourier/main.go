// Command coastfourier approximates a coastline with a truncated Fourier
// series.
//
// It fetches a region boundary as GeoJSON (falling back to a synthetic loop
// when the fetch fails), prints magnitude and phase of the leading DFT terms
// of both coordinate axes and shows the original outline next to its
// approximation.
//
// Usage:
//
//	coastfourier [flags]
//
// Examples:
//
//	coastfourier
//	coastfourier --terms 10 --output coast.png --no-window
//	coastfourier --config coast.yaml --verbose
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cwbudde/algo-contour/internal/app"
	"github.com/cwbudde/algo-contour/internal/config"
	"github.com/cwbudde/algo-contour/internal/viewer"
)

var logger *zap.Logger

// runFunc executes a run with a fully resolved configuration.
type runFunc func(cmd *cobra.Command, cfg config.Config) error

// cliFlags holds the values bound to the command line flags.
type cliFlags struct {
	configPath string
	verbose    bool
	cfg        config.Config
}

func newRootCmd(run runFunc) *cobra.Command {
	fl := &cliFlags{cfg: config.Default()}

	cmd := &cobra.Command{
		Use:   "coastfourier",
		Short: "Approximate a coastline with a truncated Fourier series",
		Long: `coastfourier fetches a region boundary, computes the discrete Fourier
transform of its longitude and latitude sequences and rebuilds the outline
from the first N terms.

The coefficient report is written to stdout. The comparison figure is shown
in a window (until it is closed) and optionally saved to a file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = loggerConfig(fl.verbose).Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := fl.resolve(cmd)
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&fl.configPath, "config", "", "YAML config file; flags override its values")
	f.BoolVarP(&fl.verbose, "verbose", "v", false, "enable debug logging")
	f.StringVar(&fl.cfg.URL, "url", fl.cfg.URL, "GeoJSON boundary URL")
	f.IntVar(&fl.cfg.Terms, "terms", fl.cfg.Terms, "number of Fourier terms used for the approximation")
	f.IntVar(&fl.cfg.ReportTerms, "report-terms", fl.cfg.ReportTerms, "number of coefficients printed per axis")
	f.IntVar(&fl.cfg.FallbackPoints, "samples", fl.cfg.FallbackPoints, "points of the synthetic fallback curve")
	f.DurationVar(&fl.cfg.Timeout, "timeout", fl.cfg.Timeout, "fetch timeout (0 disables)")
	f.StringVarP(&fl.cfg.Plot.Output, "output", "o", fl.cfg.Plot.Output, "save the figure to this file (.png, .svg, .pdf)")
	f.BoolVar(&fl.cfg.Plot.NoWindow, "no-window", fl.cfg.Plot.NoWindow, "do not open the figure window")
	return cmd
}

// loggerConfig is zap's production config (Info level) writing to stderr,
// lowered to Debug when verbose is set.
func loggerConfig(verbose bool) zap.Config {
	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{"stderr"}
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zc
}

func runPipeline(cmd *cobra.Command, cfg config.Config) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err := app.Run(ctx, app.Options{
		Config:  cfg,
		Logger:  logger,
		Stdout:  cmd.OutOrStdout(),
		Display: viewer.Show,
	})
	return err
}

// resolve layers explicitly set flags over the config file, or over the
// defaults when no file is given.
func (fl *cliFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	if fl.configPath == "" {
		return fl.cfg, nil
	}

	cfg, err := config.Load(fl.configPath)
	if err != nil {
		return cfg, err
	}

	f := cmd.Flags()
	if f.Changed("url") {
		cfg.URL = fl.cfg.URL
	}
	if f.Changed("terms") {
		cfg.Terms = fl.cfg.Terms
	}
	if f.Changed("report-terms") {
		cfg.ReportTerms = fl.cfg.ReportTerms
	}
	if f.Changed("samples") {
		cfg.FallbackPoints = fl.cfg.FallbackPoints
	}
	if f.Changed("timeout") {
		cfg.Timeout = fl.cfg.Timeout
	}
	if f.Changed("output") {
		cfg.Plot.Output = fl.cfg.Plot.Output
	}
	if f.Changed("no-window") {
		cfg.Plot.NoWindow = fl.cfg.Plot.NoWindow
	}
	return cfg, nil
}

func main() {
	if err := newRootCmd(runPipeline).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
