// Package palette turns escape times into colors.
package palette

import (
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"image/color"
)

const (
	Saturation = 0.1
	Value      = 0.7
)

// Interior is the color of points that never escaped.
var Interior = colornames.Black

// ColorFor maps an escape time to a color on a hue ramp, or to Interior if
// the orbit was still bounded after maxIterations steps.
//
// maxIterations must be positive.
func ColorFor(iterations, maxIterations int) color.RGBA {
	if iterations == maxIterations {
		return Interior
	}

	hue := float64(iterations) / float64(maxIterations) * 360.0
	r, g, b := colorful.Hsv(hue, Saturation, Value).RGB255()

	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
