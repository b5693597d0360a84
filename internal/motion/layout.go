package motion

import "math"

// Ring spreads n balls of diameter d evenly on an ellipse around the center
// of view, starting at the top and going clockwise. The ellipse keeps every
// ball inside the viewport.
func Ring(view Size, n int, d float64) []Vec {
	cx, cy := view.W/2, view.H/2
	rx := math.Max(view.W-d, 0) / 2 * 0.8
	ry := math.Max(view.H-d, 0) / 2 * 0.8
	out := make([]Vec, n)
	for i := range out {
		a := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		out[i] = Vec{
			X: cx + rx*math.Cos(a) - d/2,
			Y: cy + ry*math.Sin(a) - d/2,
		}
	}
	return out
}
