// Package app wires the coastline pipeline: load the boundary, transform
// both coordinate axes, rebuild a truncated approximation, report the leading
// terms and render the comparison figure.
package app

import (
	"context"
	"fmt"
	"image"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-contour/dsp/fourier"
	"github.com/cwbudde/algo-contour/geo/boundary"
	"github.com/cwbudde/algo-contour/internal/config"
	"github.com/cwbudde/algo-contour/internal/figure"
	"github.com/cwbudde/algo-contour/measure/fidelity"
	"github.com/cwbudde/algo-contour/measure/harmonics"
)

// DisplayFunc shows a rendered figure and blocks until it is dismissed.
type DisplayFunc func(img image.Image, title string) error

// Options carries the configuration and collaborators of a run.
type Options struct {
	Config config.Config
	Client *http.Client
	Logger *zap.Logger
	// Stdout receives the fallback notice and the coefficient report.
	Stdout io.Writer
	// Display is called unless Config.Plot.NoWindow is set. Nil skips it.
	Display DisplayFunc
}

// Result is everything derived during a run.
type Result struct {
	Source      boundary.Source
	Original    boundary.Curve
	Approximate boundary.Curve
	Terms       int
	XError      fidelity.Stats
	YError      fidelity.Stats
	XTerms      []harmonics.Term
	YTerms      []harmonics.Term
}

// Run executes the pipeline once. Only the boundary fetch recovers from
// failure; every later stage returns its error.
func Run(ctx context.Context, opts Options) (Result, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return Result{}, fmt.Errorf("invalid config: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = io.Discard
	}

	orig, source := load(ctx, opts, logger, stdout)
	n := orig.Len()
	logger.Info("boundary loaded", zap.String("source", string(source)), zap.Int("points", n))

	xCoeffs, err := fourier.Transform(orig.X)
	if err != nil {
		return Result{}, fmt.Errorf("transform x: %w", err)
	}
	yCoeffs, err := fourier.Transform(orig.Y)
	if err != nil {
		return Result{}, fmt.Errorf("transform y: %w", err)
	}

	terms := cfg.Terms
	if terms > n {
		logger.Warn("term count exceeds sample count, clamping",
			zap.Int("terms", terms), zap.Int("points", n))
		terms = n
	}

	angles := fourier.SampleAngles(n)
	approx := boundary.Curve{}
	if approx.X, err = fourier.Reconstruct(angles, xCoeffs, terms); err != nil {
		return Result{}, fmt.Errorf("reconstruct x: %w", err)
	}
	if approx.Y, err = fourier.Reconstruct(angles, yCoeffs, terms); err != nil {
		return Result{}, fmt.Errorf("reconstruct y: %w", err)
	}

	res := Result{
		Source:      source,
		Original:    orig,
		Approximate: approx,
		Terms:       terms,
	}

	if res.XError, err = fidelity.Compare(orig.X, approx.X); err != nil {
		return res, fmt.Errorf("fidelity x: %w", err)
	}
	if res.YError, err = fidelity.Compare(orig.Y, approx.Y); err != nil {
		return res, fmt.Errorf("fidelity y: %w", err)
	}
	logger.Info("approximation built",
		zap.Int("terms", terms),
		zap.Float64("x_rms_error", res.XError.RMSError),
		zap.Float64("y_rms_error", res.YError.RMSError),
	)

	if res.XTerms, err = harmonics.Analyze(xCoeffs, cfg.ReportTerms); err != nil {
		return res, fmt.Errorf("analyze x: %w", err)
	}
	if res.YTerms, err = harmonics.Analyze(yCoeffs, cfg.ReportTerms); err != nil {
		return res, fmt.Errorf("analyze y: %w", err)
	}
	if err := harmonics.Write(stdout, res.XTerms, res.YTerms); err != nil {
		return res, err
	}

	if err := show(res, opts, logger); err != nil {
		return res, err
	}
	return res, nil
}

func load(ctx context.Context, opts Options, logger *zap.Logger, notice io.Writer) (boundary.Curve, boundary.Source) {
	cfg := opts.Config
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	l := boundary.Loader{
		Client:         opts.Client,
		Logger:         logger,
		Notice:         notice,
		FallbackPoints: cfg.FallbackPoints,
	}
	return l.Load(ctx, cfg.URL)
}

func show(res Result, opts Options, logger *zap.Logger) error {
	pc := opts.Config.Plot
	wantWindow := !pc.NoWindow && opts.Display != nil
	if pc.Output == "" && !wantWindow {
		return nil
	}

	p, err := figure.Render(res.Original, res.Approximate)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	size := figure.Size{Width: pc.WidthInches, Height: pc.HeightInches}

	if pc.Output != "" {
		if err := figure.Save(p, size, pc.Output); err != nil {
			return err
		}
		logger.Info("figure saved", zap.String("path", pc.Output))
	}

	if !wantWindow {
		return nil
	}
	if err := opts.Display(figure.Image(p, size), figure.Title); err != nil {
		if pc.Output != "" {
			logger.Warn("display unavailable, figure only saved to file", zap.Error(err))
			return nil
		}
		return fmt.Errorf("display: %w", err)
	}
	return nil
}
