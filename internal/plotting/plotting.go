// Package plotting renders decomposition summaries to image files: scree
// plots, score scatters and reconstruction-error curves. Everything here
// is presentation; the numbers come in already computed.
package plotting

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/rmarchetti/pcalab/internal/analysis"
	"github.com/rmarchetti/pcalab/internal/pca"
)

const (
	plotWidth  = 6 * vg.Inch
	plotHeight = 4 * vg.Inch
)

// Scree saves a scree plot: one bar per component with its proportion of
// variance, plus the cumulative proportion as a line across the top.
func Scree(path string, cvs []pca.ComponentVariance) error {
	p := plot.New()
	p.Title.Text = "Explained variance"
	p.X.Label.Text = "Component"
	p.Y.Label.Text = "Proportion of variance"
	p.Y.Min = 0
	p.Y.Max = 1.05

	proportions := make(plotter.Values, len(cvs))
	cumulative := make(plotter.XYs, len(cvs))
	labels := make([]string, len(cvs))
	for i, cv := range cvs {
		proportions[i] = cv.Proportion
		cumulative[i] = plotter.XY{X: float64(i), Y: cv.Cumulative}
		labels[i] = fmt.Sprintf("PC%d", cv.Component)
	}

	bars, err := plotter.NewBarChart(proportions, vg.Points(20))
	if err != nil {
		return fmt.Errorf("plotting: scree bars: %w", err)
	}
	line, err := plotter.NewLine(cumulative)
	if err != nil {
		return fmt.Errorf("plotting: cumulative line: %w", err)
	}
	line.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(bars, line)
	p.NominalX(labels...)
	p.Legend.Add("cumulative", line)
	p.Legend.Top = true
	p.Legend.Left = true

	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("plotting: save scree: %w", err)
	}
	return nil
}

// Scatter saves the observations plotted against score components i and j
// (1-based). When labels are supplied, each point carries its label.
func Scatter(path string, d *pca.Decomposition, labels []string, i, j int) error {
	if i < 1 || i > d.Cols || j < 1 || j > d.Cols {
		return fmt.Errorf("plotting: scatter components %d,%d: %w", i, j, pca.ErrComponentRange)
	}

	p := plot.New()
	p.Title.Text = "Scores"
	p.X.Label.Text = fmt.Sprintf("PC%d", i)
	p.Y.Label.Text = fmt.Sprintf("PC%d", j)

	xys := make(plotter.XYs, d.Rows)
	for r := 0; r < d.Rows; r++ {
		xys[r] = plotter.XY{X: d.Scores.At(r, i-1), Y: d.Scores.At(r, j-1)}
	}

	points, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("plotting: scatter points: %w", err)
	}
	p.Add(points)

	if len(labels) == d.Rows {
		tags, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
		if err != nil {
			return fmt.Errorf("plotting: scatter labels: %w", err)
		}
		p.Add(tags)
	}

	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("plotting: save scatter: %w", err)
	}
	return nil
}

// ErrorCurve saves reconstruction error as a function of how many
// components were kept.
func ErrorCurve(path string, points []analysis.SweepPoint) error {
	p := plot.New()
	p.Title.Text = "Reconstruction error"
	p.X.Label.Text = "Components kept"
	p.Y.Label.Text = "Sum of squared differences"

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i] = plotter.XY{X: float64(pt.K), Y: pt.Err}
	}

	line, scatter, err := plotter.NewLinePoints(xys)
	if err != nil {
		return fmt.Errorf("plotting: error curve: %w", err)
	}
	p.Add(line, scatter)

	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("plotting: save error curve: %w", err)
	}
	return nil
}
