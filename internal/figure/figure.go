// Package figure renders the original boundary and its Fourier approximation
// on a single longitude/latitude figure.
package figure

import (
	"fmt"
	"image"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/cwbudde/algo-contour/geo/boundary"
)

const (
	// Title is the figure title, also used as the viewer window title.
	Title = "Complex Map - Original vs. Fourier Series Approximation"
	// OriginalLabel is the legend entry of the fetched or synthetic curve.
	OriginalLabel = "Original Complex Map"
	// ApproximateLabel is the legend entry of the truncated reconstruction.
	ApproximateLabel = "Fourier Approximation"
)

var (
	originalColor    = color.RGBA{B: 255, A: 255}
	approximateColor = color.RGBA{R: 255, A: 255}
)

// Size is a figure size in inches.
type Size struct {
	Width, Height float64
}

// DefaultSize matches a 12x8 inch figure.
var DefaultSize = Size{Width: 12, Height: 8}

func (s Size) lengths() (vg.Length, vg.Length) {
	return vg.Length(s.Width) * vg.Inch, vg.Length(s.Height) * vg.Inch
}

// Render builds the comparison figure: the original curve as a thin solid
// blue line, the approximation as a thicker dashed red line, with grid,
// legend and Longitude/Latitude axes.
func Render(orig, approx boundary.Curve) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = Title
	p.X.Label.Text = "Longitude"
	p.Y.Label.Text = "Latitude"
	p.Add(plotter.NewGrid())

	origLine, err := line(orig, originalColor, vg.Points(1))
	if err != nil {
		return nil, fmt.Errorf("plot original: %w", err)
	}

	approxLine, err := line(approx, approximateColor, vg.Points(2))
	if err != nil {
		return nil, fmt.Errorf("plot approximation: %w", err)
	}
	approxLine.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}

	p.Add(origLine, approxLine)
	p.Legend.Add(OriginalLabel, origLine)
	p.Legend.Add(ApproximateLabel, approxLine)
	p.Legend.Top = true
	return p, nil
}

func line(c boundary.Curve, col color.Color, width vg.Length) (*plotter.Line, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	pts := make(plotter.XYs, c.Len())
	for i := range pts {
		pts[i].X = c.X[i]
		pts[i].Y = c.Y[i]
	}

	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	l.LineStyle.Color = col
	l.LineStyle.Width = width
	return l, nil
}

// Image rasterizes p at the given size.
func Image(p *plot.Plot, size Size) image.Image {
	w, h := size.lengths()
	c := vgimg.New(w, h)
	p.Draw(draw.New(c))
	return c.Image()
}

// Save writes p to path. The format (png, svg, pdf, ...) follows the file
// extension.
func Save(p *plot.Plot, size Size, path string) error {
	w, h := size.lengths()
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("plot save %s: %w", path, err)
	}
	return nil
}
