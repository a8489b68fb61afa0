package transforms

import "github.com/willbeason/julia-fractal/pkg/geometry"

// QuinticExponent is the exponent of the default Julia recurrence.
const QuinticExponent = 5

// JuliaN is the recurrence z -> z^N + C.
//
// The power is taken by N-fold self-multiplication, so N must be at least 1.
type JuliaN struct {
	N int
	C geometry.Complex
}

// Quintic returns the z^5 + c recurrence.
func Quintic(c geometry.Complex) JuliaN {
	return JuliaN{N: QuinticExponent, C: c}
}

func (j JuliaN) Next(z geometry.Complex) geometry.Complex {
	return z.Pow(j.N).Add(j.C)
}
