package render

import (
	"github.com/willbeason/julia-fractal/pkg/geometry"
	"github.com/willbeason/julia-fractal/pkg/viewport"
	"image"
	"image/color"
	"sync"
)

// Point is one computed pixel.
type Point struct {
	geometry.Pixel
	Iterations int
	Color      color.RGBA
}

// A Frame is every pixel of one viewport, in no particular order.
type Frame struct {
	Viewport      viewport.Viewport
	MaxIterations int
	Points        []Point
}

// Image draws f into an RGBA image the size of its viewport.
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Viewport.Width, f.Viewport.Height))
	for _, p := range f.Points {
		img.SetRGBA(p.X, p.Y, p.Color)
	}
	return img
}

// collector gathers band results. Bands only ever append.
type collector struct {
	mu     sync.Mutex
	points []Point
}

func newCollector(size int) *collector {
	return &collector{points: make([]Point, 0, size)}
}

func (c *collector) append(points []Point) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.points = append(c.points, points...)
}

func (c *collector) drain() []Point {
	c.mu.Lock()
	defer c.mu.Unlock()

	points := c.points
	c.points = nil
	return points
}
