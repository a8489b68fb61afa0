package main

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/willbeason/julia-fractal/pkg/config"
	"github.com/willbeason/julia-fractal/pkg/geometry"
	"github.com/willbeason/julia-fractal/pkg/render"
	"github.com/willbeason/julia-fractal/pkg/session"
	"image/png"
	"log/slog"
	"os"
	"time"
)

const (
	configFlag      = "config"
	widthFlag       = "width"
	heightFlag      = "height"
	parallelFlag    = "parallel"
	zoomXFlag       = "zoom-x"
	zoomYFlag       = "zoom-y"
	zoomNotchesFlag = "zoom-notches"
	outFlag         = "out"
	verboseFlag     = "verbose"
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "julia",
		Short: "Render the quintic Julia set z^5 + c to a PNG",
		Args:  cobra.ExactArgs(0),
		RunE:  runCmd,
	}

	addFlags(cmd.Flags())

	return cmd
}

func addFlags(flags *pflag.FlagSet) {
	flags.String(configFlag, "", "TOML file with render parameters")
	flags.Int(widthFlag, 0, "image width in pixels, overrides the config")
	flags.Int(heightFlag, 0, "image height in pixels, overrides the config")
	flags.Int(parallelFlag, 0, "number of row bands, defaults to the number of CPUs")
	flags.Int(zoomXFlag, 0, "cursor column to zoom around")
	flags.Int(zoomYFlag, 0, "cursor row to zoom around")
	flags.Int(zoomNotchesFlag, 0, "scroll notches to zoom by, negative to zoom out")
	flags.String(outFlag, "", "output file, defaults to out-<timestamp>.png")
	flags.BoolP(verboseFlag, "v", false, "log every band")
}

// loadConfig applies flags on top of the config file, if any.
func loadConfig(flags *pflag.FlagSet) (config.Config, error) {
	cfg := config.Default()

	path, err := flags.GetString(configFlag)
	if err != nil {
		return cfg, err
	}
	if path != "" {
		cfg, err = config.Load(path)
		if err != nil {
			return cfg, err
		}
	}

	overrides := []struct {
		flag string
		dst  *int
	}{
		{widthFlag, &cfg.Width},
		{heightFlag, &cfg.Height},
		{parallelFlag, &cfg.Parallelism},
	}
	for _, o := range overrides {
		if !flags.Changed(o.flag) {
			continue
		}
		*o.dst, err = flags.GetInt(o.flag)
		if err != nil {
			return cfg, err
		}
	}

	return cfg, cfg.Validate()
}

func runCmd(cmd *cobra.Command, _ []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	flags := cmd.Flags()

	level := slog.LevelInfo
	if verbose, _ := flags.GetBool(verboseFlag); verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	render.SetLogger(logger)

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	parallelism := cfg.Parallelism
	if parallelism == 0 {
		parallelism = render.DefaultParallelism()
	}

	start, err := cfg.Viewport()
	if err != nil {
		return err
	}

	s := session.New(cfg.Evaluator(),
		session.WithViewport(start),
		session.WithParallelism(parallelism),
		session.WithNotchRatio(cfg.ZoomPerNotch))

	ctx := cmd.Context()

	frame, err := s.Resize(ctx, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}

	notches, err := flags.GetInt(zoomNotchesFlag)
	if err != nil {
		return err
	}
	if notches != 0 {
		zx, _ := flags.GetInt(zoomXFlag)
		zy, _ := flags.GetInt(zoomYFlag)

		frame, err = s.Zoom(ctx, geometry.Pixel{X: zx, Y: zy}, notches)
		if err != nil {
			return err
		}
	}

	out, err := flags.GetString(outFlag)
	if err != nil {
		return err
	}
	if out == "" {
		out = fmt.Sprintf("out-%s.png", time.Now().Format("20060102150405"))
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}

	err = png.Encode(f, frame.Image())
	if err != nil {
		_ = f.Close()
		return err
	}

	err = f.Close()
	if err != nil {
		return err
	}

	logger.Info("wrote image",
		slog.String("path", out), slog.String("viewport", frame.Viewport.String()))

	return nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
