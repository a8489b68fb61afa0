package render

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/willbeason/julia-fractal/pkg/escape"
	"github.com/willbeason/julia-fractal/pkg/geometry"
	"github.com/willbeason/julia-fractal/pkg/palette"
	"github.com/willbeason/julia-fractal/pkg/viewport"
	"math"
	"testing"
)

func mustViewport(t *testing.T, width, height int, xMin, xMax, yMin, yMax float64) viewport.Viewport {
	t.Helper()
	v, err := viewport.New(width, height, xMin, xMax, yMin, yMax)
	require.NoError(t, err)
	return v
}

func iterationsByPixel(t *testing.T, f *Frame) map[geometry.Pixel]int {
	t.Helper()
	result := make(map[geometry.Pixel]int, len(f.Points))
	for _, p := range f.Points {
		_, dup := result[p.Pixel]
		require.False(t, dup, "duplicate pixel %v", p.Pixel)
		result[p.Pixel] = p.Iterations
	}
	return result
}

func TestRenderFrame_Coverage(t *testing.T) {
	ctx := context.Background()

	for _, size := range [][2]int{{1, 1}, {7, 5}, {16, 13}, {3, 40}} {
		vp, err := viewport.Initial(size[0], size[1])
		require.NoError(t, err)

		for _, parallelism := range []int{1, 3, 4, 64} {
			frame, err := RenderFrame(ctx, vp, escape.Default(), parallelism)
			require.NoError(t, err)
			require.Len(t, frame.Points, size[0]*size[1])

			pixels := iterationsByPixel(t, frame)
			for y := 0; y < size[1]; y++ {
				for x := 0; x < size[0]; x++ {
					assert.Contains(t, pixels, geometry.Pixel{X: x, Y: y})
				}
			}
		}
	}
}

func TestRenderFrame_Deterministic(t *testing.T) {
	ctx := context.Background()
	vp := mustViewport(t, 40, 30, -1.5, 1.5, -1.2, 1.2)
	ev := escape.Default()

	want, err := RenderFrame(ctx, vp, ev, 1)
	require.NoError(t, err)
	wantPixels := iterationsByPixel(t, want)

	for _, parallelism := range []int{2, 5, 8, 30, 31} {
		got, err := RenderFrame(ctx, vp, ev, parallelism)
		require.NoError(t, err)
		assert.Equal(t, wantPixels, iterationsByPixel(t, got), "parallelism %d", parallelism)
	}
}

func TestRenderFrame_MatchesEvaluator(t *testing.T) {
	vp := mustViewport(t, 20, 10, -1, 1, -0.5, 0.5)
	ev := escape.Default()

	frame, err := RenderFrame(context.Background(), vp, ev, 3)
	require.NoError(t, err)

	assert.Equal(t, vp, frame.Viewport)
	assert.Equal(t, ev.MaxIterations, frame.MaxIterations)

	for _, p := range frame.Points {
		want := ev.Iterations(vp.ToPlane(p.Pixel))
		assert.Equal(t, want, p.Iterations)
		assert.Equal(t, palette.ColorFor(want, ev.MaxIterations), p.Color)
	}
}

// reference is an independent z^5 + c loop.
func reference(re, im, cRe, cIm float64, maxIterations int) int {
	i := 0
	for i < maxIterations && math.Sqrt(re*re+im*im) < 2.0 {
		r2, i2 := re*re-im*im, 2*re*im
		r4, i4 := r2*r2-i2*i2, 2*r2*i2
		re, im = r4*re-i4*im+cRe, r4*im+i4*re+cIm
		i++
	}
	return i
}

func TestRenderFrame_EndToEnd(t *testing.T) {
	vp := mustViewport(t, 2, 1, -1, 1, -1, 1)
	ev := escape.Evaluator{Exponent: 5, Radius: 2, MaxIterations: 10}

	frame, err := RenderFrame(context.Background(), vp, ev, 2)
	require.NoError(t, err)

	pixels := iterationsByPixel(t, frame)
	require.Len(t, pixels, 2)

	assert.Equal(t, geometry.XY{X: -1, Y: 1}, vp.ToPlane(geometry.Pixel{X: 0, Y: 0}))
	assert.Equal(t, geometry.XY{X: 0, Y: 1}, vp.ToPlane(geometry.Pixel{X: 1, Y: 0}))

	assert.Equal(t, reference(-1, 1, 0, 0, 10), pixels[geometry.Pixel{X: 0, Y: 0}])
	assert.Equal(t, reference(0, 1, 0, 0, 10), pixels[geometry.Pixel{X: 1, Y: 0}])

	assert.Equal(t, 1, pixels[geometry.Pixel{X: 0, Y: 0}])
	assert.Equal(t, 10, pixels[geometry.Pixel{X: 1, Y: 0}])

	img := frame.Image()
	assert.Equal(t, palette.Interior, img.RGBAAt(1, 0))
	assert.Equal(t, palette.ColorFor(1, 10), img.RGBAAt(0, 0))
}

func TestRenderFrame_InvalidArguments(t *testing.T) {
	ctx := context.Background()
	vp := mustViewport(t, 4, 4, -1, 1, -1, 1)

	_, err := RenderFrame(ctx, viewport.Viewport{}, escape.Default(), 1)
	assert.ErrorIs(t, err, viewport.ErrInvalidViewport)

	ev := escape.Default()
	ev.MaxIterations = 0
	_, err = RenderFrame(ctx, vp, ev, 1)
	assert.ErrorIs(t, err, escape.ErrInvalidIterationCap)

	_, err = RenderFrame(ctx, vp, escape.Default(), 0)
	assert.ErrorIs(t, err, ErrInvalidParallelism)
}

func TestRenderFrame_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	frame, err := RenderFrame(ctx, mustViewport(t, 8, 8, -1, 1, -1, 1), escape.Default(), 2)
	assert.Nil(t, frame)
	assert.ErrorIs(t, err, ErrPartitionFailure)
	assert.ErrorIs(t, err, context.Canceled)
}

// panicky fails on one row.
type panicky struct {
	escape.Evaluator
	row float64
}

func (p panicky) Iterations(xy geometry.XY) int {
	if xy.Y == p.row {
		panic(errors.New("out of memory"))
	}
	return p.Evaluator.Iterations(xy)
}

func TestRenderFrame_BandPanic(t *testing.T) {
	vp := mustViewport(t, 4, 4, -1, 1, -1, 1)
	// Row 3 maps to y = -0.5.
	ev := panicky{Evaluator: escape.Default(), row: -0.5}

	frame, err := RenderFrame(context.Background(), vp, ev, 2)
	assert.Nil(t, frame)
	assert.ErrorIs(t, err, ErrPartitionFailure)
	assert.Contains(t, err.Error(), "out of memory")
}
