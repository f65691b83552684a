// Command wavedemo drags the wave curve along a scripted gesture, lets it
// spring back to rest and writes every frame as a PNG image.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/npillmayer/wavecurve/config"
	"github.com/npillmayer/wavecurve/frame"
	"github.com/npillmayer/wavecurve/layout"
	"github.com/npillmayer/wavecurve/outline"
	"github.com/npillmayer/wavecurve/raster"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "wavedemo: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	flags := flag.NewFlagSet("wavedemo", flag.ContinueOnError)
	flags.SetOutput(stderr)
	var (
		configFile = flags.String("config", "", "YAML configuration file")
		out        = flags.String("out", "frames", "directory for frame images")
		level      = flags.String("log-level", "info", "log level (debug, info, warn, error)")
		markers    = flags.Bool("markers", false, "paint control point markers")
	)
	if err := flags.Parse(args); err != nil {
		return err
	}
	log, err := newLogger(*level)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	cfg := config.Default()
	if *configFile != "" {
		if cfg, err = config.LoadFile(*configFile); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	events, err := cfg.Events()
	if err != nil {
		return err
	}
	anim, err := cfg.Animator()
	if err != nil {
		return err
	}

	state := layout.NewCurveState(cfg.View.Width, cfg.Constants())
	ctrl := frame.NewController(state, anim)
	opts := []raster.Option{
		raster.WithScale(cfg.View.Scale),
		raster.WithFill(raster.MustHex(cfg.Render.Fill)),
		raster.WithBackground(raster.MustHex(cfg.Render.Background)),
		raster.WithOutput(raster.PNGFiles(*out)),
	}
	if *markers || cfg.Render.Markers {
		opts = append(opts, raster.WithMarkers(state))
	}
	r := &loggingRenderer{
		Renderer: raster.NewRenderer(cfg.View.Width, cfg.View.Height, opts...),
		state:    state,
		view:     cfg.View,
		log:      log,
	}
	loop := frame.NewLoop(ctrl, r, cfg.FrameInterval())

	log.Info("starting",
		zap.Float64("width", cfg.View.Width),
		zap.Float64("height", cfg.View.Height),
		zap.Int("events", len(events)),
		zap.Int("return_frames", anim.Frames()),
		zap.String("easing", cfg.Animation.Easing),
	)
	g, ctx := errgroup.WithContext(ctx)
	ch := make(chan frame.Event)
	g.Go(func() error {
		return feed(ctx, events, ch, cfg)
	})
	g.Go(func() error {
		return loop.Run(ctx, ch)
	})
	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("done", zap.Int("frames", loop.Frames()), zap.String("out", *out))
	return nil
}

// timeAfter is replaced in tests to run scripts without pacing.
var timeAfter = time.After

// feed sends the scripted events paced at the frame interval, then closes
// the channel.
func feed(ctx context.Context, events []frame.Event, ch chan<- frame.Event, cfg *config.Config) error {
	defer close(ch)
	for _, e := range events {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ch <- e:
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timeAfter(cfg.FrameInterval()):
		}
	}
	return nil
}

// newLogger builds a JSON logger on stderr.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	return zc.Build()
}

// loggingRenderer reports every frame before handing it to the rasterizer.
type loggingRenderer struct {
	*raster.Renderer
	state *layout.CurveState
	view  config.View
	log   *zap.Logger
}

func (r *loggingRenderer) Render(path *outline.Path) error {
	if ce := r.log.Check(zap.DebugLevel, "frame"); ce != nil {
		visible := path.Visible(r.view.Width, r.view.Height, outline.DefaultTolerance)
		ce.Write(
			zap.Int("frame", r.Frames()),
			zap.Uint64("fingerprint", path.Fingerprint()),
			zap.Float64("area", visible.Area()),
			zap.Float64("peak", r.state.Profile().Peak()),
			zap.Bool("animating", r.state.IsPresenting()),
		)
	}
	return r.Renderer.Render(path)
}
