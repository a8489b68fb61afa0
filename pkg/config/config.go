// Package config loads rendering parameters from TOML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/pelletier/go-toml/v2"
	"github.com/willbeason/julia-fractal/pkg/escape"
	"github.com/willbeason/julia-fractal/pkg/geometry"
	"github.com/willbeason/julia-fractal/pkg/transforms"
	"github.com/willbeason/julia-fractal/pkg/viewport"
	"os"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds every tunable of a render. Zero Parallelism means one band
// per CPU.
type Config struct {
	Width       int `toml:"width"`
	Height      int `toml:"height"`
	Parallelism int `toml:"parallelism"`

	C             Complex `toml:"c"`
	Exponent      int     `toml:"exponent"`
	MaxIterations int     `toml:"max_iterations"`
	EscapeRadius  float64 `toml:"escape_radius"`

	Bounds Bounds `toml:"bounds"`

	ZoomPerNotch float64 `toml:"zoom_per_notch"`
}

type Complex struct {
	Re float64 `toml:"re"`
	Im float64 `toml:"im"`
}

type Bounds struct {
	XMin float64 `toml:"x_min"`
	XMax float64 `toml:"x_max"`
	YMin float64 `toml:"y_min"`
	YMax float64 `toml:"y_max"`
}

func Default() Config {
	return Config{
		Width:  2560,
		Height: 1440,

		C:             Complex{Re: escape.DefaultC.Re, Im: escape.DefaultC.Im},
		Exponent:      transforms.QuinticExponent,
		MaxIterations: escape.DefaultMaxIterations,
		EscapeRadius:  escape.DefaultRadius,

		Bounds: Bounds{
			XMin: viewport.DefaultMin,
			XMax: viewport.DefaultMax,
			YMin: viewport.DefaultMin,
			YMax: viewport.DefaultMax,
		},

		ZoomPerNotch: viewport.DefaultNotchRatio,
	}
}

// Load reads path over Default. Unknown keys are an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Parallelism < 0 {
		return fmt.Errorf("%w: parallelism %d", ErrInvalidConfig, c.Parallelism)
	}
	if !(c.ZoomPerNotch > 0) {
		return fmt.Errorf("%w: zoom_per_notch %v", ErrInvalidConfig, c.ZoomPerNotch)
	}
	if _, err := c.Viewport(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Evaluator().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func (c Config) Evaluator() escape.Evaluator {
	return escape.Evaluator{
		C:             geometry.Complex{Re: c.C.Re, Im: c.C.Im},
		Exponent:      c.Exponent,
		Radius:        c.EscapeRadius,
		MaxIterations: c.MaxIterations,
	}
}

func (c Config) Viewport() (viewport.Viewport, error) {
	return viewport.New(c.Width, c.Height, c.Bounds.XMin, c.Bounds.XMax, c.Bounds.YMin, c.Bounds.YMax)
}
