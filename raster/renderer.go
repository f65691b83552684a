// Package raster paints outlines of the wave curve into images.
//
// The Renderer fills an outline with a solid colour on a solid background,
// using the anti-aliasing rasterizer of golang.org/x/image/vector, and hands
// each finished image to an Output, e.g. a directory of PNG files.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/wavecurve"
	"github.com/npillmayer/wavecurve/layout"
	"github.com/npillmayer/wavecurve/outline"
	"golang.org/x/image/vector"
)

// tracer writes to trace with key 'wavecurve.raster'
func tracer() tracing.Trace {
	return tracing.Select("wavecurve.raster")
}

// markerRadius is the radius of a control point marker, in points.
const markerRadius = 4.0

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

// Output receives every rendered image. The image is reused for the next
// frame and must not be retained.
type Output func(frame int, img *image.RGBA) error

// Option configures a Renderer during creation.
type Option func(*Renderer)

// WithScale sets the number of pixels per point.
func WithScale(s float64) Option {
	return func(r *Renderer) {
		r.scale = s
	}
}

// WithFill sets the colour the outline is filled with.
func WithFill(c color.Color) Option {
	return func(r *Renderer) {
		r.fill = image.NewUniform(c)
	}
}

// WithBackground sets the colour of the view behind the outline.
func WithBackground(c color.Color) Option {
	return func(r *Renderer) {
		r.background = image.NewUniform(c)
	}
}

// WithMarkers paints a dot at the position of every control point, as
// reported by pos.
func WithMarkers(pos layout.Positioner) Option {
	return func(r *Renderer) {
		r.markers = pos
	}
}

// WithOutput sets where finished images go.
func WithOutput(out Output) Option {
	return func(r *Renderer) {
		r.out = out
	}
}

// Renderer fills outlines into an RGBA image.
type Renderer struct {
	scale      float64
	fill       *image.Uniform
	background *image.Uniform
	markers    layout.Positioner
	markerFill *image.Uniform
	out        Output
	img        *image.RGBA
	rz         *vector.Rasterizer
	transform  wavecurve.AT
	frame      int
}

// NewRenderer creates a renderer for a view of width × height points.
func NewRenderer(width, height float64, opts ...Option) *Renderer {
	r := &Renderer{
		scale:      1,
		fill:       image.NewUniform(color.Gray{Y: 0x80}),
		background: image.NewUniform(color.White),
		markerFill: image.NewUniform(color.NRGBA{R: 0xff, A: 0xff}),
	}
	for _, opt := range opts {
		opt(r)
	}
	if !(width > 0 && height > 0 && r.scale > 0) {
		panic(fmt.Sprintf("cannot render a view of %gx%g at scale %g", width, height, r.scale))
	}
	w, h := int(width*r.scale+0.5), int(height*r.scale+0.5)
	r.img = image.NewRGBA(image.Rect(0, 0, w, h))
	r.rz = vector.NewRasterizer(w, h)
	r.transform = wavecurve.Scaling(r.scale, r.scale)
	return r
}

// Image returns the image of the last frame.
func (r *Renderer) Image() *image.RGBA {
	return r.img
}

// Frames returns the number of frames rendered.
func (r *Renderer) Frames() int {
	return r.frame
}

// Render paints an outline and passes the image on to the output.
func (r *Renderer) Render(path *outline.Path) error {
	b := r.img.Bounds()
	draw.Draw(r.img, b, r.background, image.Point{}, draw.Src)
	r.rz.Reset(b.Dx(), b.Dy())
	r.rz.DrawOp = draw.Over
	if !r.transform.IsIdentity() {
		path = path.Transform(r.transform)
	}
	path.Draw(sink{r.rz})
	r.rz.Draw(r.img, b, r.fill, image.Point{})
	if r.markers != nil {
		r.drawMarkers()
	}
	frame := r.frame
	r.frame++
	if r.out == nil {
		return nil
	}
	tracer().Debugf("frame %d rendered", frame)
	return r.out(frame, r.img)
}

func (r *Renderer) drawMarkers() {
	b := r.img.Bounds()
	r.rz.Reset(b.Dx(), b.Dy())
	s := sink{r.rz}
	rad := markerRadius * r.scale
	k := rad * kappa
	for _, role := range layout.Roles() {
		c := r.transform.Transform(r.markers.CurrentPosition(role))
		p := func(dx, dy float64) wavecurve.Pair { return c + wavecurve.P(dx, dy) }
		s.MoveTo(p(rad, 0))
		s.CubicTo(p(rad, k), p(k, rad), p(0, rad))
		s.CubicTo(p(-k, rad), p(-rad, k), p(-rad, 0))
		s.CubicTo(p(-rad, -k), p(-k, -rad), p(0, -rad))
		s.CubicTo(p(k, -rad), p(rad, -k), p(rad, 0))
		s.ClosePath()
	}
	r.rz.Draw(r.img, b, r.markerFill, image.Point{})
}

// sink feeds drawing commands into a vector rasterizer.
type sink struct {
	z *vector.Rasterizer
}

func (s sink) MoveTo(p wavecurve.Pair) {
	s.z.MoveTo(float32(p.X()), float32(p.Y()))
}

func (s sink) LineTo(p wavecurve.Pair) {
	s.z.LineTo(float32(p.X()), float32(p.Y()))
}

func (s sink) CubicTo(c1, c2, p wavecurve.Pair) {
	s.z.CubeTo(float32(c1.X()), float32(c1.Y()), float32(c2.X()), float32(c2.Y()),
		float32(p.X()), float32(p.Y()))
}

func (s sink) ClosePath() {
	s.z.ClosePath()
}

// PNGFiles writes every frame to dir as frame-0000.png, frame-0001.png, ...
func PNGFiles(dir string) Output {
	return func(frame int, img *image.RGBA) error {
		name := filepath.Join(dir, fmt.Sprintf("frame-%04d.png", frame))
		f, err := os.Create(name)
		if err != nil {
			return fmt.Errorf("create frame image: %w", err)
		}
		if err := png.Encode(f, img); err != nil {
			f.Close()
			return fmt.Errorf("encode %s: %w", name, err)
		}
		return f.Close()
	}
}
