// Package depthplot renders one frame's ray distances as a chart, a
// headless way to inspect what the first-person view would show.
package depthplot

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"retro3d/raycast"
)

// ErrNoHits is returned when there is nothing to plot
var ErrNoHits = errors.New("depthplot: no hits to plot")

// Summary describes the distance profile of a frame
type Summary struct {
	Columns  int
	Hits     int
	Mean     float64 // Mean distance over columns that hit a wall
	StdDev   float64
	Nearest  float64
	Farthest float64
}

// Summarize computes distance statistics over the hits that struck a wall
func Summarize(hits []raycast.Hit) Summary {
	s := Summary{Columns: len(hits)}

	distances := make([]float64, 0, len(hits))
	for _, h := range hits {
		if h.Hit {
			distances = append(distances, h.Distance)
		}
	}
	s.Hits = len(distances)
	if s.Hits == 0 {
		return s
	}

	s.Mean, s.StdDev = stat.MeanStdDev(distances, nil)
	s.Nearest, s.Farthest = distances[0], distances[0]
	for _, d := range distances[1:] {
		s.Nearest = min(s.Nearest, d)
		s.Farthest = max(s.Farthest, d)
	}
	return s
}

// Points returns the per-column distance series. Misses plot at the ray's
// maximum distance.
func Points(hits []raycast.Hit) plotter.XYs {
	pts := make(plotter.XYs, len(hits))
	for i, h := range hits {
		pts[i] = plotter.XY{X: float64(h.Column), Y: h.Distance}
	}
	return pts
}

// Save writes a PNG (or any format plot supports by extension) of the
// distance per column with the mean drawn across it
func Save(hits []raycast.Hit, title, path string) (Summary, error) {
	if len(hits) == 0 {
		return Summary{}, ErrNoHits
	}
	summary := Summarize(hits)

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Screen column"
	p.Y.Label.Text = "Distance (cells)"
	p.Y.Min = 0
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(Points(hits))
	if err != nil {
		return summary, err
	}
	line.Color = color.RGBA{R: 30, G: 90, B: 200, A: 255}
	line.Width = vg.Points(1)
	p.Add(line)
	p.Legend.Add("distance", line)

	if summary.Hits > 0 {
		last := float64(hits[len(hits)-1].Column)
		mean, err := plotter.NewLine(plotter.XYs{
			{X: float64(hits[0].Column), Y: summary.Mean},
			{X: last, Y: summary.Mean},
		})
		if err != nil {
			return summary, err
		}
		mean.Color = color.RGBA{R: 200, G: 40, B: 40, A: 255}
		mean.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
		p.Add(mean)
		p.Legend.Add(fmt.Sprintf("mean %.2f", summary.Mean), mean)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	if err := p.Save(10*vg.Inch, 4*vg.Inch, filepath.Clean(path)); err != nil {
		return summary, fmt.Errorf("save depth plot: %w", err)
	}
	return summary, nil
}
