package diagram

import (
	"github.com/guptarohit/asciigraph"
)

// DrawASCIICdCurve renders the drag coefficient curve as an ASCII graph
// for terminal display. The caller supplies Cd values sampled at evenly
// spaced V²y points.
func DrawASCIICdCurve(cds []float64) string {
	return asciigraph.Plot(cds,
		asciigraph.Height(12),
		asciigraph.Width(64),
		asciigraph.Caption("Pier Debris Cd vs V²y"),
	)
}
