package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ForceDiagramData holds everything needed to draw the foundation force
// diagram. Geometry in metres, forces in kN, heights from ground level.
// Values arrive as floats; drawing is the display boundary, so float
// precision is fine here.
type ForceDiagramData struct {
	WaterDepth  float64
	LegWidth    float64 // pier diameter, or an equivalent width for bored piles
	DebrisDepth float64 // clamped debris mat depth
	ScourDepth  float64
	PileWidth   float64

	F1, L1   float64
	F2, L2   float64
	F3, L3   float64
	Fd2, Ld2 float64
}

// ExportForceDiagram exports the foundation force diagram to an image file.
func ExportForceDiagram(data ForceDiagramData, filename string) error {
	p := plot.New()
	p.Title.Text = "Water Flow Forces on Foundation"
	p.X.Label.Text = "Width (m)"
	p.Y.Label.Text = "Height above ground (m)"

	centerX := 5.0
	legTop := data.WaterDepth + 1.5

	// Ground line
	groundLine, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
	})
	if err != nil {
		return err
	}
	groundLine.LineStyle.Width = vg.Points(2)
	groundLine.LineStyle.Color = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	p.Add(groundLine)

	// Leg outline, ground to above water level
	if err := addRect(p, centerX-data.LegWidth/2, 0, data.LegWidth, legTop,
		color.RGBA{R: 128, G: 128, B: 128, A: 120}); err != nil {
		return err
	}

	// Water surface
	waterLine, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: data.WaterDepth},
		{X: 10, Y: data.WaterDepth},
	})
	if err != nil {
		return err
	}
	waterLine.LineStyle.Width = vg.Points(1.5)
	waterLine.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	waterLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(waterLine)

	// Debris mat hanging from the water surface
	if data.DebrisDepth > 0 {
		matTop := data.WaterDepth
		matBottom := matTop - data.DebrisDepth
		if matBottom < 0 {
			matBottom = 0
		}
		if err := addRect(p, centerX-1.5, matBottom, 3, matTop-matBottom,
			color.RGBA{R: 160, G: 82, B: 45, A: 150}); err != nil {
			return err
		}
	}

	// Scoured pile below ground
	if data.ScourDepth > 0 {
		if err := addRect(p, centerX-data.PileWidth/2, -data.ScourDepth, data.PileWidth, data.ScourDepth,
			color.RGBA{R: 105, G: 105, B: 105, A: 150}); err != nil {
			return err
		}
	}

	// Force arrows with labels
	arrows := []struct {
		force, height float64
		name          string
	}{
		{data.F1, data.L1, "F1"},
		{data.F2, data.L2, "F2"},
		{data.F3, data.L3, "F3"},
		{data.Fd2, data.Ld2, "Fd2"},
	}
	for _, a := range arrows {
		label := fmt.Sprintf("%s = %.1f kN @ %.2f m", a.name, a.force, a.height)
		if err := addForceArrow(p, centerX, a.height, label); err != nil {
			return err
		}
	}

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	if filepath.Ext(filename) == "" {
		filename += ".png"
	}
	return p.Save(8*vg.Inch, 6*vg.Inch, filename)
}

// ExportCdCurve exports the pier-debris drag coefficient curve to an
// image file. The caller supplies sampled (x, Cd) points.
func ExportCdCurve(xs, cds []float64, filename string) error {
	if len(xs) != len(cds) {
		return fmt.Errorf("mismatched curve samples: %d x values, %d coefficients", len(xs), len(cds))
	}

	p := plot.New()
	p.Title.Text = "Pier Debris Drag Coefficient"
	p.X.Label.Text = "V²y (m³/s²)"
	p.Y.Label.Text = "Cd"

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: cds[i]}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(line)

	if filepath.Ext(filename) == "" {
		filename += ".png"
	}
	return p.Save(8*vg.Inch, 5*vg.Inch, filename)
}

func addRect(p *plot.Plot, x, y, w, h float64, fill color.Color) error {
	poly, err := plotter.NewPolygon(plotter.XYs{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	})
	if err != nil {
		return err
	}
	poly.Color = fill
	poly.LineStyle.Color = color.Black
	p.Add(poly)
	return nil
}

// addForceArrow draws a horizontal arrow hitting the leg at the given
// height, with a text label at its tail.
func addForceArrow(p *plot.Plot, legX, height float64, label string) error {
	shaft, err := plotter.NewLine(plotter.XYs{
		{X: legX - 3, Y: height},
		{X: legX - 0.3, Y: height},
	})
	if err != nil {
		return err
	}
	shaft.LineStyle.Width = vg.Points(1.5)
	shaft.LineStyle.Color = color.RGBA{R: 220, G: 20, B: 60, A: 255}
	p.Add(shaft)

	head, err := plotter.NewLine(plotter.XYs{
		{X: legX - 0.6, Y: height + 0.15},
		{X: legX - 0.3, Y: height},
		{X: legX - 0.6, Y: height - 0.15},
	})
	if err != nil {
		return err
	}
	head.LineStyle.Width = vg.Points(1.5)
	head.LineStyle.Color = color.RGBA{R: 220, G: 20, B: 60, A: 255}
	p.Add(head)

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: legX - 3, Y: height + 0.1}},
		Labels: []string{label},
	})
	if err != nil {
		return err
	}
	p.Add(labels)
	return nil
}
