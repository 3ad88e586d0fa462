package report

import (
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Panel is one histogram panel of the rendered chart.
type Panel struct {
	Title  string
	Values []float64
}

const (
	chartRows = 3
	chartCols = 3
)

// RenderHistogramPNG draws up to 9 histogram panels in a 3x3 grid and
// writes the PNG to path, overwriting any existing file. All panels share
// the [xmin, xmax] axis range when xmax > xmin so they compare visually.
func RenderHistogramPNG(path string, panels []Panel, bins int, xmin, xmax float64) error {
	if len(panels) == 0 {
		return fmt.Errorf("no panels to render")
	}
	if len(panels) > chartRows*chartCols {
		panels = panels[:chartRows*chartCols]
	}

	plots := make([][]*plot.Plot, chartRows)
	idx := 0
	for row := 0; row < chartRows; row++ {
		plots[row] = make([]*plot.Plot, chartCols)
		for col := 0; col < chartCols; col++ {
			if idx >= len(panels) {
				continue
			}
			p, err := panelPlot(panels[idx], bins, xmin, xmax, idx)
			if err != nil {
				return fmt.Errorf("building panel %q: %w", panels[idx].Title, err)
			}
			plots[row][col] = p
			idx++
		}
	}

	img := vgimg.New(vg.Points(1350), vg.Points(900))
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: chartRows,
		Cols: chartCols,
		PadX: vg.Points(10),
		PadY: vg.Points(10),
	}

	canvases := plot.Align(plots, tiles, dc)
	for row := 0; row < chartRows; row++ {
		for col := 0; col < chartCols; col++ {
			if plots[row][col] != nil {
				plots[row][col].Draw(canvases[row][col])
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing chart: %w", err)
	}
	return f.Close()
}

func panelPlot(panel Panel, bins int, xmin, xmax float64, colorIdx int) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s (n=%d)", panel.Title, len(panel.Values))
	p.X.Label.Text = "Altitude (km)"
	p.Y.Label.Text = "Number of Satellites"

	if len(panel.Values) > 0 {
		h, err := plotter.NewHist(plotter.Values(panel.Values), bins)
		if err != nil {
			return nil, err
		}
		h.FillColor = plotutil.Color(colorIdx)
		p.Add(h)
	}

	if xmax > xmin {
		p.X.Min = xmin
		p.X.Max = xmax
	}
	return p, nil
}
