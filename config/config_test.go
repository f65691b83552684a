package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/wavecurve/animation"
	"github.com/npillmayer/wavecurve/frame"
	"github.com/npillmayer/wavecurve/layout"
	"github.com/npillmayer/wavecurve/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, layout.DefaultConstants(), c.Constants())
	assert.Equal(t, time.Second/60, c.FrameInterval())
	a, err := c.Animator()
	require.NoError(t, err)
	assert.Equal(t, 36, a.Frames())
}

func TestLoadPartial(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c, err := Load(strings.NewReader(`
view:
  width: 320
curve:
  damping: 0.5
animation:
  duration: 1s
  fps: 30
  easing: ease-out
render:
  fill: "#204080"
  markers: true
`))
	require.NoError(t, err)
	assert.Equal(t, 320.0, c.View.Width)
	assert.Equal(t, 667.0, c.View.Height, "default kept")
	assert.Equal(t, layout.Constants{MinHeight: 200, MaxCurveHeight: 150, Damping: 0.5}, c.Constants())
	assert.Equal(t, time.Second, c.Animation.Duration)
	assert.Equal(t, "ease-out", c.Animation.Easing)
	assert.True(t, c.Render.Markers)
	assert.Equal(t, "#ffffff", c.Render.Background)
	a, err := c.Animator()
	require.NoError(t, err)
	assert.Equal(t, 30, a.Frames())
}

func TestLoadEmpty(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestValidate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for name, tc := range map[string]struct {
		doc  string
		want error
	}{
		"zero width":     {"view: {width: 0}", ErrInvalidView},
		"negative scale": {"view: {scale: -1}", ErrInvalidView},
		"zero damping":   {"curve: {damping: 0}", ErrInvalidCurve},
		"negative min":   {"curve: {min_height: -5}", ErrInvalidCurve},
		"no fps":         {"animation: {fps: 0}", ErrInvalidAnimation},
		"bad easing":     {"animation: {easing: wobble}", animation.ErrUnknownEasing},
		"bad fill":       {"render: {fill: grey}", raster.ErrBadColor},
		"bad step":       {"gesture: [{kind: tap, x: 3}]", ErrInvalidGesture},
	} {
		_, err := Load(strings.NewReader(tc.doc))
		assert.ErrorIs(t, err, tc.want, name)
	}
	_, err := Load(strings.NewReader("view: [1, 2"))
	assert.Error(t, err)
}

func TestGestureScript(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c, err := Load(strings.NewReader(`
gesture:
  - {kind: begin, x: 100}
  - {kind: move, dx: 20, dy: 50, x: 120}
  - {kind: cancel}
`))
	require.NoError(t, err)
	events, err := c.Events()
	require.NoError(t, err)
	assert.Equal(t, []frame.Event{
		{Kind: frame.Begin, PointerX: 100},
		{Kind: frame.Move, DX: 20, DY: 50, PointerX: 120},
		{Kind: frame.Cancel},
	}, events)
}

func TestDefaultDrag(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	events := DefaultDrag(375)
	require.Len(t, events, 26)
	assert.Equal(t, frame.Begin, events[0].Kind)
	assert.Equal(t, frame.End, events[25].Kind)
	for i, e := range events[1:25] {
		assert.Equal(t, frame.Move, e.Kind)
		assert.Greater(t, e.DY, events[i].DY, "drag keeps pulling down")
		assert.GreaterOrEqual(t, e.PointerX, 0.0)
		assert.LessOrEqual(t, e.PointerX, 375.0)
	}
	assert.InDelta(t, 37.5, events[24].PointerX, 1e-9)
}

func TestLoadFile(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	name := filepath.Join(t.TempDir(), "wave.yaml")
	require.NoError(t, os.WriteFile(name, []byte("view: {width: 400, height: 800, scale: 2}\n"), 0o644))
	c, err := LoadFile(name)
	require.NoError(t, err)
	assert.Equal(t, View{Width: 400, Height: 800, Scale: 2}, c.View)
	_, err = LoadFile(filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}
