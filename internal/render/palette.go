package render

import (
	"image/color"
	"math"
)

// TwoStopGradient returns n colours interpolated linearly from a to b, so
// index 0 is a and index n-1 is b. A single colour palette is just a.
func TwoStopGradient(a, b color.RGBA, n int) []color.RGBA {
	if n <= 0 {
		return nil
	}
	out := make([]color.RGBA, n)
	if n == 1 {
		out[0] = a
		return out
	}
	for i := range out {
		t := float64(i) / float64(n-1)
		out[i] = color.RGBA{
			R: lerp(a.R, b.R, t),
			G: lerp(a.G, b.G, t),
			B: lerp(a.B, b.B, t),
			A: lerp(a.A, b.A, t),
		}
	}
	return out
}

func lerp(v0, v1 uint8, t float64) uint8 {
	return uint8(math.Round(float64(v0) + (float64(v1)-float64(v0))*t))
}
