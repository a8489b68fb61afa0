package viewport

import (
	"fmt"
	"github.com/willbeason/julia-fractal/pkg/geometry"
	"math"
)

// DefaultNotchRatio is how much one scroll notch scales the view.
const DefaultNotchRatio = 0.9

// ToPlane returns the plane point drawn at pixel p.
//
// The y axis is flipped: screen rows grow downward, the imaginary axis upward.
// v must be valid.
func (v Viewport) ToPlane(p geometry.Pixel) geometry.XY {
	return geometry.XY{
		X: float64(p.X)*(v.XMax-v.XMin)/float64(v.Width) + v.XMin,
		Y: v.YMax - float64(p.Y)*(v.YMax-v.YMin)/float64(v.Height),
	}
}

// Rescale scales the plane width and height of v by ratio while keeping the
// point under cursor fixed. A ratio below one zooms in.
func (v Viewport) Rescale(cursor geometry.Pixel, ratio float64) (Viewport, error) {
	if err := v.Validate(); err != nil {
		return Viewport{}, err
	}

	if !(ratio > 0) || math.IsInf(ratio, 0) {
		return Viewport{}, fmt.Errorf("%w: %v", ErrInvalidRatio, ratio)
	}

	// Fraction of the view to the left of and above the cursor.
	fx := float64(cursor.X) / float64(v.Width)
	fy := float64(cursor.Y) / float64(v.Height)

	anchor := v.ToPlane(cursor)

	newWidth := (v.XMax - v.XMin) * ratio
	newHeight := (v.YMax - v.YMin) * ratio

	xMin := anchor.X - fx*newWidth
	yMax := anchor.Y + fy*newHeight

	return New(v.Width, v.Height, xMin, xMin+newWidth, yMax-newHeight, yMax)
}

// ZoomRatio compounds perNotch over notches scroll steps.
// Negative notches zoom out.
func ZoomRatio(notches int, perNotch float64) float64 {
	return math.Pow(perNotch, float64(notches))
}
