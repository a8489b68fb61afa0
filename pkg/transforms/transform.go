package transforms

import "github.com/willbeason/julia-fractal/pkg/geometry"

// A Transform iterates a passed point.
type Transform interface {
	Next(geometry.Complex) geometry.Complex
}

var _ Transform = JuliaN{}
