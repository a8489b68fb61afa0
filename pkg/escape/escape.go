// Package escape counts how long orbits take to leave a disc.
package escape

import (
	"errors"
	"fmt"
	"github.com/willbeason/julia-fractal/pkg/geometry"
	"github.com/willbeason/julia-fractal/pkg/transforms"
	"math"
)

const (
	DefaultRadius        = 2.0
	DefaultMaxIterations = 300
)

// DefaultC is the Julia constant of the default picture.
var DefaultC = geometry.Complex{Re: -0.549653, Im: 0.003}

var (
	ErrInvalidIterationCap = errors.New("invalid iteration cap")
	ErrInvalidExponent     = errors.New("invalid exponent")
	ErrInvalidRadius       = errors.New("invalid escape radius")
)

// Time iterates t starting from point until the orbit reaches radius or
// maxIterations steps have run, and returns the number of steps taken.
// A result equal to maxIterations means the orbit never escaped.
func Time(point geometry.XY, t transforms.Transform, radius float64, maxIterations int) int {
	z := geometry.AsComplex(point)

	iterations := 0
	for iterations < maxIterations && z.Abs() < radius {
		z = t.Next(z)
		iterations++
	}

	return iterations
}

// Evaluator holds the parameters of one family of escape-time computations.
// It is a plain value and safe to share between goroutines.
type Evaluator struct {
	C             geometry.Complex
	Exponent      int
	Radius        float64
	MaxIterations int
}

// Default returns the quintic evaluator for DefaultC.
func Default() Evaluator {
	return Evaluator{
		C:             DefaultC,
		Exponent:      transforms.QuinticExponent,
		Radius:        DefaultRadius,
		MaxIterations: DefaultMaxIterations,
	}
}

func (e Evaluator) Validate() error {
	if e.MaxIterations <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidIterationCap, e.MaxIterations)
	}
	if e.Exponent < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidExponent, e.Exponent)
	}
	if !(e.Radius > 0) || math.IsInf(e.Radius, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidRadius, e.Radius)
	}
	for _, f := range []float64{e.C.Re, e.C.Im} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("non-finite constant %v", e.C)
		}
	}
	return nil
}

// Transform is the recurrence e iterates.
func (e Evaluator) Transform() transforms.JuliaN {
	return transforms.JuliaN{N: e.Exponent, C: e.C}
}

// Cap is the iteration count reported for orbits that never escape.
func (e Evaluator) Cap() int {
	return e.MaxIterations
}

// Iterations is the escape time of point under e.
func (e Evaluator) Iterations(point geometry.XY) int {
	return Time(point, e.Transform(), e.Radius, e.MaxIterations)
}
