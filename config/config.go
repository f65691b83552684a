// Package config reads the tunable constants of the wave curve and the setup
// of the demo view from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/npillmayer/wavecurve/animation"
	"github.com/npillmayer/wavecurve/frame"
	"github.com/npillmayer/wavecurve/layout"
	"github.com/npillmayer/wavecurve/raster"
	"gopkg.in/yaml.v3"
)

// Errors reported by Validate.
var (
	ErrInvalidView      = errors.New("invalid view")
	ErrInvalidCurve     = errors.New("invalid curve constants")
	ErrInvalidAnimation = errors.New("invalid animation")
	ErrInvalidGesture   = errors.New("invalid gesture script")
)

// Config is the complete configuration of a wave curve demo.
type Config struct {
	View      View      `yaml:"view"`
	Curve     Curve     `yaml:"curve"`
	Animation Animation `yaml:"animation"`
	Render    Render    `yaml:"render"`
	Gesture   []Step    `yaml:"gesture,omitempty"`
}

// View is the size of the view in points and its pixel density.
type View struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Scale  float64 `yaml:"scale"`
}

// Curve holds the tuning constants of the curve.
type Curve struct {
	MinHeight      float64 `yaml:"min_height"`
	MaxCurveHeight float64 `yaml:"max_curve_height"`
	Damping        float64 `yaml:"damping"`
}

// Animation configures the return to rest and the display refresh rate.
type Animation struct {
	Duration time.Duration `yaml:"duration"`
	FPS      int           `yaml:"fps"`
	Easing   string        `yaml:"easing"`
}

// Render configures colours of the rendered frames.
type Render struct {
	Fill       string `yaml:"fill"`
	Background string `yaml:"background"`
	Markers    bool   `yaml:"markers"`
}

// Step is one event of a scripted gesture: kind is one of begin, move, end
// or cancel; dx and dy are the translation since begin, x the pointer
// position.
type Step struct {
	Kind string  `yaml:"kind"`
	DX   float64 `yaml:"dx,omitempty"`
	DY   float64 `yaml:"dy,omitempty"`
	X    float64 `yaml:"x"`
}

// Default returns the configuration the curve is tuned for, on a phone-sized
// view.
func Default() *Config {
	c := layout.DefaultConstants()
	return &Config{
		View: View{Width: 375, Height: 667, Scale: 1},
		Curve: Curve{
			MinHeight:      c.MinHeight,
			MaxCurveHeight: c.MaxCurveHeight,
			Damping:        c.Damping,
		},
		Animation: Animation{
			Duration: animation.DefaultDuration,
			FPS:      60,
			Easing:   "spring",
		},
		Render: Render{Fill: "#808080", Background: "#ffffff"},
	}
}

// Load reads a YAML configuration. Values not present keep their defaults.
func Load(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile reads a YAML configuration from a file.
func LoadFile(name string) (*Config, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Validate checks the configuration for values the curve cannot work with.
func (c *Config) Validate() error {
	if !(c.View.Width > 0) || !(c.View.Height > 0) || !(c.View.Scale > 0) {
		return fmt.Errorf("%w: %gx%g at scale %g", ErrInvalidView, c.View.Width, c.View.Height, c.View.Scale)
	}
	if c.Curve.MinHeight < 0 || c.Curve.MaxCurveHeight < 0 || !(c.Curve.Damping > 0) {
		return fmt.Errorf("%w: %+v", ErrInvalidCurve, c.Curve)
	}
	if c.Animation.Duration <= 0 || c.Animation.FPS <= 0 {
		return fmt.Errorf("%w: duration %v at %d fps", ErrInvalidAnimation, c.Animation.Duration, c.Animation.FPS)
	}
	if _, err := animation.New(c.Animation.Duration, c.Animation.FPS, c.Animation.Easing); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAnimation, err)
	}
	for _, col := range []string{c.Render.Fill, c.Render.Background} {
		if _, err := raster.Hex(col); err != nil {
			return err
		}
	}
	if _, err := c.Events(); err != nil {
		return err
	}
	return nil
}

// Constants returns the curve constants for layout.
func (c *Config) Constants() layout.Constants {
	return layout.Constants{
		MinHeight:      c.Curve.MinHeight,
		MaxCurveHeight: c.Curve.MaxCurveHeight,
		Damping:        c.Curve.Damping,
	}
}

// FrameInterval is the time between two display ticks.
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Animation.FPS)
}

// Animator creates the return animation.
func (c *Config) Animator() (*animation.Return, error) {
	return animation.New(c.Animation.Duration, c.Animation.FPS, c.Animation.Easing)
}

var eventKinds = map[string]frame.EventKind{
	"begin":  frame.Begin,
	"move":   frame.Move,
	"end":    frame.End,
	"cancel": frame.Cancel,
}

// Events converts the gesture script to frame events. Without a script, a
// default drag is returned: down and to the right of the centre, then back
// towards the left edge.
func (c *Config) Events() ([]frame.Event, error) {
	if len(c.Gesture) == 0 {
		return DefaultDrag(c.View.Width), nil
	}
	events := make([]frame.Event, 0, len(c.Gesture))
	for i, s := range c.Gesture {
		k, ok := eventKinds[s.Kind]
		if !ok {
			return nil, fmt.Errorf("%w: step %d has kind %q", ErrInvalidGesture, i, s.Kind)
		}
		events = append(events, frame.Event{Kind: k, DX: s.DX, DY: s.DY, PointerX: s.X})
	}
	return events, nil
}

// DefaultDrag is a gesture across a view of the given width, in 24 moves.
func DefaultDrag(width float64) []frame.Event {
	const moves = 24
	start := width / 2
	events := []frame.Event{{Kind: frame.Begin, PointerX: start}}
	for i := 1; i <= moves; i++ {
		t := float64(i) / moves
		dy := 320 * t
		dx := width * 0.6 * t
		if i > moves/2 {
			dx = width*0.3 - width*1.4*(t-0.5)
		}
		events = append(events, frame.Event{Kind: frame.Move, DX: dx, DY: dy, PointerX: start + dx})
	}
	return append(events, frame.Event{Kind: frame.End})
}
