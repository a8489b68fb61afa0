// Package session drives rendering from display events.
//
// A Session owns the current viewport. Resize and Zoom events each derive a
// new viewport and render it. The latest successful frame is kept, and a
// slow pass for an older viewport never replaces a frame for a newer one.
package session

import (
	"context"
	"errors"
	"fmt"
	"github.com/willbeason/julia-fractal/pkg/geometry"
	"github.com/willbeason/julia-fractal/pkg/render"
	"github.com/willbeason/julia-fractal/pkg/viewport"
	"log/slog"
	"sync"
)

// ErrNotSized is returned by Zoom before the first Resize.
var ErrNotSized = errors.New("session has no size yet")

// ErrSuperseded is returned when a newer event started before a render finished.
var ErrSuperseded = errors.New("render superseded by a newer request")

type Session struct {
	evaluator   render.Evaluator
	parallelism int
	notchRatio  float64

	mu       sync.Mutex
	viewport viewport.Viewport
	sized    bool
	// generation counts viewport changes; shown is the generation of frame.
	generation uint64
	shown      uint64
	frame      *render.Frame
}

type Option func(*Session)

// WithParallelism sets the number of bands per frame.
func WithParallelism(n int) Option {
	return func(s *Session) { s.parallelism = n }
}

// WithNotchRatio sets the zoom applied per scroll notch.
func WithNotchRatio(r float64) Option {
	return func(s *Session) { s.notchRatio = r }
}

// WithViewport starts from bounds other than viewport.Initial. Pixel sizes
// are still taken from the first Resize.
func WithViewport(v viewport.Viewport) Option {
	return func(s *Session) { s.viewport = v }
}

func New(ev render.Evaluator, opts ...Option) *Session {
	s := &Session{
		evaluator:   ev,
		parallelism: render.DefaultParallelism(),
		notchRatio:  viewport.DefaultNotchRatio,
		viewport: viewport.Viewport{
			XMin: viewport.DefaultMin,
			XMax: viewport.DefaultMax,
			YMin: viewport.DefaultMin,
			YMax: viewport.DefaultMax,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Viewport is the most recently requested viewport.
func (s *Session) Viewport() viewport.Viewport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewport
}

// Frame is the latest completed frame, or nil if none has completed.
func (s *Session) Frame() *render.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame
}

// Resize handles a change of the drawable size.
func (s *Session) Resize(ctx context.Context, width, height int) (*render.Frame, error) {
	return s.update(ctx, func(old viewport.Viewport, _ bool) (viewport.Viewport, error) {
		return old.Resized(width, height)
	})
}

// Zoom handles notches of scrolling at cursor. Positive notches zoom in.
func (s *Session) Zoom(ctx context.Context, cursor geometry.Pixel, notches int) (*render.Frame, error) {
	ratio := viewport.ZoomRatio(notches, s.notchRatio)
	return s.update(ctx, func(old viewport.Viewport, sized bool) (viewport.Viewport, error) {
		if !sized {
			return viewport.Viewport{}, ErrNotSized
		}
		return old.Zoomed(cursor, ratio)
	})
}

// update derives a new viewport and renders it. Invalid events leave the
// session unchanged. Failed renders keep the last good frame.
func (s *Session) update(ctx context.Context, next func(viewport.Viewport, bool) (viewport.Viewport, error)) (*render.Frame, error) {
	s.mu.Lock()
	vp, err := next(s.viewport, s.sized)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.viewport = vp
	s.sized = true
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	frame, err := render.RenderFrame(ctx, vp, s.evaluator, s.parallelism)
	if err != nil {
		render.Logger().Warn("keeping previous frame",
			slog.String("viewport", vp.String()), slog.Any("err", err))
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Frames only ever move forward: a pass that finishes after a newer one
	// has been shown is dropped.
	if gen <= s.shown {
		render.Logger().Debug("discarding stale frame", slog.Uint64("generation", gen))
		return nil, fmt.Errorf("%w: generation %d", ErrSuperseded, gen)
	}

	s.frame = frame
	s.shown = gen
	return frame, nil
}
