// Package chart draws dashboard series as PNG images with gonum/plot.
package chart

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/mamadbah2/cropstats/internal/domain/models"
	"github.com/mamadbah2/cropstats/internal/service/projection"
)

const (
	width  = 12 * vg.Inch
	height = 6 * vg.Inch
)

var palette = []color.Color{
	color.RGBA{R: 0, G: 100, B: 0, A: 255},
	color.RGBA{R: 218, G: 165, B: 32, A: 255},
	color.RGBA{R: 139, G: 69, B: 19, A: 255},
	color.RGBA{R: 65, G: 105, B: 225, A: 255},
	color.RGBA{R: 220, G: 20, B: 60, A: 255},
}

func newPlot(title, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())
	return p
}

func writePNG(w io.Writer, p *plot.Plot) error {
	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return fmt.Errorf("render png: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

// Series draws one line per commodity over the crop years of s. Years where
// a commodity is absent are skipped.
func Series(w io.Writer, title string, s projection.Series) error {
	if len(s.Rows) == 0 {
		return fmt.Errorf("chart %s: %w", s.Attribute, models.ErrNoData)
	}

	p := newPlot(title, s.Unit)
	p.Legend.Top = true

	for i, c := range s.Commodities {
		var points plotter.XYs
		for x, row := range s.Rows {
			if v, ok := row.Value(c); ok {
				points = append(points, plotter.XY{X: float64(x), Y: v})
			}
		}
		if len(points) == 0 {
			continue
		}

		line, err := plotter.NewLine(points)
		if err != nil {
			return fmt.Errorf("line %s: %w", c, err)
		}
		line.Color = palette[i%len(palette)]
		line.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add(c.Label(), line)
	}

	p.NominalX(s.Years()...)
	p.X.Tick.Label.Rotation = 0.6
	p.X.Tick.Label.XAlign = draw.XRight

	return writePNG(w, p)
}

// Exports draws a commodity's monthly shipments as bars.
func Exports(w io.Writer, title, unit string, months []projection.ExportMonth) error {
	if len(months) == 0 {
		return fmt.Errorf("chart exports: %w", models.ErrNoData)
	}

	values := make(plotter.Values, len(months))
	labels := make([]string, len(months))
	for i, m := range months {
		values[i] = m.Volume
		labels[i] = m.MonthName
	}

	p := newPlot(title, unit)

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return fmt.Errorf("bars: %w", err)
	}
	bars.Color = palette[0]
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)

	p.NominalX(labels...)
	p.X.Tick.Label.XAlign = draw.XCenter

	return writePNG(w, p)
}
