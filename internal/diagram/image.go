package diagram

import (
	"errors"
	"math"
	"os"
	"path/filepath"

	"github.com/alexiusacademia/gocombo/internal/export"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ExportFactorChart exports a grouped bar chart of the factors: one group of
// bars per combination and one bar series per load case.
func ExportFactorChart(t *export.Table, filename string) error {
	if len(t.Rows) == 0 || len(t.Cases) == 0 {
		return errors.New("no combinations to chart")
	}

	p := plot.New()
	p.Title.Text = "Load Combination Factors"
	p.Y.Label.Text = "Factor"
	p.Y.Min = 0
	p.Legend.Top = true

	barWidth := vg.Points(math.Max(2, 48/float64(len(t.Cases))))
	for j, lc := range t.Cases {
		values := make(plotter.Values, len(t.Rows))
		for i := range t.Rows {
			if f, ok := t.Value(i, j); ok {
				values[i] = f
			}
		}

		bars, err := plotter.NewBarChart(values, barWidth)
		if err != nil {
			return err
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(j)
		bars.Offset = barWidth * vg.Length(float64(j)-float64(len(t.Cases)-1)/2)

		p.Add(bars)
		p.Legend.Add(string(lc), bars)
	}

	names := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		names[i] = row.Name
	}
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = math.Pi / 4

	// Determine file format from extension
	ext := filepath.Ext(filename)
	width := vg.Length(math.Max(8, 0.6*float64(len(t.Rows)))) * vg.Inch
	height := 6 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch ext {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
