package profile

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var baseColors = [4]color.RGBA{
	{R: 50, G: 160, B: 60, A: 255},  // A
	{R: 50, G: 100, B: 200, A: 255}, // C
	{R: 230, G: 160, B: 20, A: 255}, // G
	{R: 200, G: 40, B: 40, A: 255},  // T
}

// WritePlot renders the per-position base frequencies of r as an SVG, with
// positions numbered relative to the first base of the start codon.
func WritePlot(w io.Writer, r *Report) error {
	if r.Sequences == 0 {
		return fmt.Errorf("no sequences to plot")
	}

	p := plot.New()
	p.Title.Text = "Per Position Base Composition"
	p.X.Label.Text = "Position relative to TIS"
	p.Y.Label.Text = "Frequency (%)"

	for b := 0; b < 4; b++ {
		points := make(plotter.XYs, len(r.Composition))
		for i, counts := range r.Composition {
			total := counts[0] + counts[1] + counts[2] + counts[3]
			points[i].X = float64(i - r.Length)
			if total > 0 {
				points[i].Y = counts[b] / total * 100
			}
		}
		line, err := plotter.NewLine(points)
		if err != nil {
			return err
		}
		line.LineStyle.Color = baseColors[b]
		line.LineStyle.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(string("ACGT"[b]), line)
	}
	p.Legend.Top = true

	writer, err := p.WriterTo(12*vg.Inch, 4*vg.Inch, "svg")
	if err != nil {
		return err
	}
	_, err = writer.WriteTo(w)
	return err
}
