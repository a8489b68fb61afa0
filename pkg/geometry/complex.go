package geometry

import "math"

// Complex is a complex number with named arithmetic.
type Complex struct {
	Re, Im float64
}

// AsComplex interprets a plane point as a complex number.
func AsComplex(xy XY) Complex {
	return Complex{Re: xy.X, Im: xy.Y}
}

func (c Complex) Add(o Complex) Complex {
	return Complex{Re: c.Re + o.Re, Im: c.Im + o.Im}
}

func (c Complex) Mul(o Complex) Complex {
	return Complex{
		Re: c.Re*o.Re - c.Im*o.Im,
		Im: c.Re*o.Im + c.Im*o.Re,
	}
}

// Pow raises c to the n-th power by repeated multiplication.
// n must be at least 1.
func (c Complex) Pow(n int) Complex {
	result := c
	for i := 1; i < n; i++ {
		result = result.Mul(c)
	}
	return result
}

// Abs is the modulus of c.
func (c Complex) Abs() float64 {
	return math.Sqrt(c.Re*c.Re + c.Im*c.Im)
}
