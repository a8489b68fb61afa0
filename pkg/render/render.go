// Package render computes whole frames of the Julia set in parallel.
//
// A frame is split into horizontal bands, one goroutine per band. Bands share
// nothing but an append-only collector, and a frame is only returned once
// every band has finished. If any band fails the whole frame is discarded.
package render

import (
	"context"
	"errors"
	"fmt"
	"github.com/willbeason/julia-fractal/pkg/geometry"
	"github.com/willbeason/julia-fractal/pkg/palette"
	"github.com/willbeason/julia-fractal/pkg/viewport"
	"golang.org/x/sync/errgroup"
	"log/slog"
	"runtime"
	"time"
)

var (
	ErrInvalidParallelism = errors.New("invalid parallelism")
	ErrPartitionFailure   = errors.New("partition failure")
)

// Evaluator computes escape times. escape.Evaluator is the usual one.
type Evaluator interface {
	Validate() error
	Iterations(geometry.XY) int
	// Cap is the iteration count meaning "never escaped".
	Cap() int
}

// DefaultParallelism is one band per CPU.
func DefaultParallelism() int {
	return runtime.NumCPU()
}

// RenderFrame computes every pixel of vp.
//
// It blocks until all bands are done. On failure no partial frame is
// returned: band errors, panics and cancellation of ctx are all reported as
// ErrPartitionFailure. Invalid arguments are rejected before any work starts.
func RenderFrame(ctx context.Context, vp viewport.Viewport, ev Evaluator, parallelism int) (*Frame, error) {
	if err := vp.Validate(); err != nil {
		return nil, err
	}
	if err := ev.Validate(); err != nil {
		return nil, err
	}
	if parallelism <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidParallelism, parallelism)
	}

	start := time.Now()
	results := newCollector(vp.Width * vp.Height)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for i, band := range Bands(vp.Height, parallelism) {
		i, band := i, band // per-iteration copy (pre-Go 1.22 loop semantics)
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("band %d %v: panic: %v", i, band, r)
				}
			}()

			bandStart := time.Now()
			points, err := renderBand(gctx, vp, ev, band)
			if err != nil {
				return fmt.Errorf("band %d %v: %w", i, band, err)
			}

			results.append(points)
			Logger().Debug("band done",
				slog.Int("band", i),
				slog.Int("rows", band.Rows()),
				slog.Duration("elapsed", time.Since(bandStart)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		Logger().Warn("render failed", slog.String("viewport", vp.String()), slog.Any("err", err))
		return nil, fmt.Errorf("%w: %w", ErrPartitionFailure, err)
	}

	frame := &Frame{
		Viewport:      vp,
		MaxIterations: ev.Cap(),
		Points:        results.drain(),
	}

	Logger().Info("frame rendered",
		slog.String("viewport", vp.String()),
		slog.Int("pixels", len(frame.Points)),
		slog.Int("parallelism", parallelism),
		slog.Duration("elapsed", time.Since(start)))

	return frame, nil
}

// renderBand evaluates every pixel in band. Cancellation is checked once per row.
func renderBand(ctx context.Context, vp viewport.Viewport, ev Evaluator, band Band) ([]Point, error) {
	maxIterations := ev.Cap()
	points := make([]Point, 0, band.Rows()*vp.Width)

	for y := band.Start; y < band.End; y++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		for x := 0; x < vp.Width; x++ {
			px := geometry.Pixel{X: x, Y: y}
			iterations := ev.Iterations(vp.ToPlane(px))

			points = append(points, Point{
				Pixel:      px,
				Iterations: iterations,
				Color:      palette.ColorFor(iterations, maxIterations),
			})
		}
	}

	return points, nil
}
