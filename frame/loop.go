package frame

import (
	"context"
	"fmt"
	"time"

	"github.com/npillmayer/wavecurve/outline"
)

// Renderer paints an outline. It owns colours and style; the outline is
// geometry only.
type Renderer interface {
	Render(path *outline.Path) error
}

// Loop is a cooperative frame loop. Ticks are delivered only while the
// controller needs frames, i.e. while a gesture is active or the curve is
// returning to rest.
type Loop struct {
	ctrl     *Controller
	renderer Renderer
	interval time.Duration
	last     uint64 // fingerprint of the last outline rendered
	frames   int
}

// NewLoop creates a frame loop ticking at the given interval.
func NewLoop(ctrl *Controller, renderer Renderer, interval time.Duration) *Loop {
	if interval <= 0 {
		panic(fmt.Sprintf("frame interval must be positive, is %v", interval))
	}
	return &Loop{ctrl: ctrl, renderer: renderer, interval: interval}
}

// Frames returns the number of outlines rendered so far.
func (l *Loop) Frames() int {
	return l.frames
}

// Run renders the initial curve and then processes events and ticks until
// ctx is done, or until events is closed and the curve has come to rest.
// A gesture still active when events is closed is cancelled, and the curve
// returns to rest. It returns the first error of the renderer.
func (l *Loop) Run(ctx context.Context, events <-chan Event) error {
	if err := l.render(); err != nil {
		return err
	}
	var ticker *time.Ticker
	var tick <-chan time.Time // nil while paused
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()
	for {
		switch needs := l.ctrl.NeedsFrames(); {
		case needs && ticker == nil:
			ticker = time.NewTicker(l.interval)
			tick = ticker.C
			tracer().Debugf("frame driver resumed")
		case !needs && ticker != nil:
			ticker.Stop()
			ticker, tick = nil, nil
			tracer().Debugf("frame driver paused")
		}
		if events == nil && tick == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case e, ok := <-events:
			if !ok {
				events = nil
				if !l.ctrl.Gesture().Active {
					continue
				}
				// a stream ending mid-gesture cancels the gesture
				tracer().Infof("event stream closed during gesture")
				e = Event{Kind: Cancel}
			}
			if l.ctrl.Handle(e) {
				if err := l.render(); err != nil {
					return err
				}
			}
		case <-tick:
			l.ctrl.Tick()
			if err := l.render(); err != nil {
				return err
			}
		}
	}
}

// render pushes the current outline, unless it equals the one rendered last.
func (l *Loop) render() error {
	path := l.ctrl.Outline()
	fp := path.Fingerprint()
	if l.frames > 0 && fp == l.last {
		return nil
	}
	if err := l.renderer.Render(path); err != nil {
		return fmt.Errorf("render frame %d: %w", l.frames, err)
	}
	l.last = fp
	l.frames++
	return nil
}
