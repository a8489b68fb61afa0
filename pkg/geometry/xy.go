package geometry

// XY is a point in the complex plane, X being the real axis.
type XY struct {
	X, Y float64
}

// Pixel is a position on screen. Rows grow downward.
type Pixel struct {
	X, Y int
}
