// Package viewport maps between screen pixels and the complex plane.
//
// A Viewport is an immutable value. Resizing or zooming always returns a new
// Viewport, so a render pass can hold on to the one it started with.
package viewport

import (
	"errors"
	"fmt"
	"github.com/willbeason/julia-fractal/pkg/geometry"
	"math"
)

const (
	// DefaultMin and DefaultMax bound both axes of the Initial viewport.
	DefaultMin = -5.0
	DefaultMax = 5.0
)

var (
	ErrInvalidViewport = errors.New("invalid viewport")
	ErrInvalidRatio    = errors.New("invalid zoom ratio")
)

// Viewport pairs pixel dimensions with the plane rectangle they show.
type Viewport struct {
	Width, Height int

	XMin, XMax float64
	YMin, YMax float64
}

// New returns a validated Viewport.
func New(width, height int, xMin, xMax, yMin, yMax float64) (Viewport, error) {
	v := Viewport{
		Width:  width,
		Height: height,
		XMin:   xMin,
		XMax:   xMax,
		YMin:   yMin,
		YMax:   yMax,
	}

	if err := v.Validate(); err != nil {
		return Viewport{}, err
	}

	return v, nil
}

// Initial is the viewport shown before any zoom.
func Initial(width, height int) (Viewport, error) {
	return New(width, height, DefaultMin, DefaultMax, DefaultMin, DefaultMax)
}

// Validate reports whether v can be used for mapping.
func (v Viewport) Validate() error {
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("%w: pixel size %dx%d", ErrInvalidViewport, v.Width, v.Height)
	}

	for _, f := range []float64{v.XMin, v.XMax, v.YMin, v.YMax} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: non-finite bound %v", ErrInvalidViewport, f)
		}
	}

	if !(v.XMin < v.XMax) || !(v.YMin < v.YMax) {
		return fmt.Errorf("%w: bounds x=[%v, %v] y=[%v, %v]",
			ErrInvalidViewport, v.XMin, v.XMax, v.YMin, v.YMax)
	}

	return nil
}

// Resized keeps the plane bounds and swaps in new pixel dimensions.
func (v Viewport) Resized(width, height int) (Viewport, error) {
	return New(width, height, v.XMin, v.XMax, v.YMin, v.YMax)
}

// Zoomed scales the view around cursor. See Rescale.
func (v Viewport) Zoomed(cursor geometry.Pixel, ratio float64) (Viewport, error) {
	return v.Rescale(cursor, ratio)
}

func (v Viewport) String() string {
	return fmt.Sprintf("%dx%d x=[%g, %g] y=[%g, %g]",
		v.Width, v.Height, v.XMin, v.XMax, v.YMin, v.YMax)
}
