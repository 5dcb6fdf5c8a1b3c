// Package preview renders decoded airfoil profiles to PNG images.
// The renderer draws the upper and lower surfaces as separate series in
// unit-chord space, which makes camber and thickness easy to eyeball
// before committing to a full generation run.
package preview

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/wingforge-labs/wingforge-cli/internal/core/domain"
)

// Plot dimensions. Airfoils are long and thin, so the canvas is wide.
const (
	plotWidth  = 10 * vg.Inch
	plotHeight = 3 * vg.Inch
)

// WriteProfile renders the profile as a PNG and writes it to w.
func WriteProfile(w io.Writer, profile domain.AirfoilProfile) error {
	p, err := buildPlot(profile)
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(plotWidth, plotHeight, "png")
	if err != nil {
		return fmt.Errorf("render profile: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write profile image: %w", err)
	}
	return nil
}

// SaveProfile renders the profile as a PNG at path.
func SaveProfile(path string, profile domain.AirfoilProfile) error {
	p, err := buildPlot(profile)
	if err != nil {
		return err
	}

	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("save profile image: %w", err)
	}
	return nil
}

// buildPlot lays out the two surface series on a labelled plot.
func buildPlot(profile domain.AirfoilProfile) (*plot.Plot, error) {
	upper, lower, err := surfaceSeries(profile)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = profile.Name
	p.X.Label.Text = "x/c"
	p.Y.Label.Text = "y/c"

	if err := plotutil.AddLinePoints(p,
		"upper", upper,
		"lower", lower,
	); err != nil {
		return nil, fmt.Errorf("add profile series: %w", err)
	}

	return p, nil
}

// surfaceSeries splits the closed loop back into its two surfaces.
// The loop runs trailing edge to leading edge along the upper surface,
// then leading edge to trailing edge along the lower, so the halves are
// contiguous slices.
func surfaceSeries(profile domain.AirfoilProfile) (upper, lower plotter.XYs, err error) {
	n := profile.Len()
	if n == 0 || n%2 != 0 || len(profile.Y) != n {
		return nil, nil, fmt.Errorf("%w: profile loop has %d points", domain.ErrInvalidInput, n)
	}

	half := n / 2
	upper = make(plotter.XYs, half)
	lower = make(plotter.XYs, half)
	for i := 0; i < half; i++ {
		upper[i].X = profile.X[i]
		upper[i].Y = profile.Y[i]

		lower[i].X = profile.X[half+i]
		lower[i].Y = profile.Y[half+i]
	}
	return upper, lower, nil
}
