// Package animation moves the control points of a curve back to rest.
//
// A Return animation interpolates every control point from the position it
// is displayed at towards its rest target over a fixed number of frames.
// By default it follows a critically damped spring, which approaches the
// target without overshooting; eased tweens are available as alternatives.
// While running, a Return serves as the positioner of a curve.
package animation

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/wavecurve"
	"github.com/npillmayer/wavecurve/layout"
)

// tracer writes to trace with key 'wavecurve.animation'
func tracer() tracing.Trace {
	return tracing.Select("wavecurve.animation")
}

// ErrUnknownEasing is returned for an easing name without implementation.
var ErrUnknownEasing = errors.New("unknown easing")

// DefaultDuration is the duration of the return to rest.
const DefaultDuration = 600 * time.Millisecond

// settle is ωt at the end of the animation. A critically damped spring
// starting at rest has covered all but (1+ωt)·e^(-ωt) ≈ 1e-4 of its way by
// then.
const settle = 11.8

// Return animates the control points of a curve to their rest positions.
type Return struct {
	frames int
	frame  int
	easing Easing // nil for the spring
	spring harmonica.Spring
	from   layout.Points
	to     layout.Points
	cur    layout.Points
	vel    [layout.RoleCount][2]float64
	active bool
	done   func()
}

// NewSpring creates a return animation following a critically damped spring,
// lasting for duration at fps frames per second.
func NewSpring(duration time.Duration, fps int) *Return {
	a := newReturn(duration, fps)
	omega := settle / duration.Seconds()
	a.spring = harmonica.NewSpring(harmonica.FPS(fps), omega, 1.0)
	return a
}

// NewEased creates a return animation following an easing function.
func NewEased(duration time.Duration, fps int, easing Easing) *Return {
	a := newReturn(duration, fps)
	a.easing = easing
	return a
}

// New creates a return animation by easing name: "spring" or one of the
// names accepted by EasingByName.
func New(duration time.Duration, fps int, easing string) (*Return, error) {
	if easing == "" || easing == "spring" {
		return NewSpring(duration, fps), nil
	}
	e, ok := EasingByName(easing)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEasing, easing)
	}
	return NewEased(duration, fps, e), nil
}

func newReturn(duration time.Duration, fps int) *Return {
	if duration <= 0 || fps <= 0 {
		panic(fmt.Sprintf("animation needs positive duration and fps, have %v and %d", duration, fps))
	}
	frames := int(math.Ceil(duration.Seconds() * float64(fps)))
	return &Return{frames: max(frames, 1)}
}

// Frames is the number of frames the animation lasts.
func (a *Return) Frames() int {
	return a.frames
}

// Frame is the number of frames elapsed since Start.
func (a *Return) Frame() int {
	return a.frame
}

// Active is a predicate: is the animation in flight?
func (a *Return) Active() bool {
	return a.active
}

// Start animates from the given positions to the targets. done is called
// exactly once, when the last frame has been stepped. Starting an animation
// in flight restarts it without calling the previous done function.
func (a *Return) Start(from, to layout.Points, done func()) {
	a.from, a.to, a.cur = from, to, from
	a.vel = [layout.RoleCount][2]float64{}
	a.frame = 0
	a.active = true
	a.done = done
	tracer().Debugf("return animation started, %d frames", a.frames)
}

// Step advances the animation by one frame.
func (a *Return) Step() {
	if !a.active {
		return
	}
	a.frame++
	if a.frame >= a.frames {
		a.cur = a.to
		a.active = false
		done := a.done
		a.done = nil
		tracer().Debugf("return animation completed")
		if done != nil {
			done()
		}
		return
	}
	if a.easing != nil {
		t := a.easing(float64(a.frame) / float64(a.frames))
		for r := range a.cur {
			a.cur[r] = a.from[r].Lerp(a.to[r], t)
		}
		return
	}
	for r := range a.cur {
		x, vx := a.spring.Update(a.cur[r].X(), a.vel[r][0], a.to[r].X())
		y, vy := a.spring.Update(a.cur[r].Y(), a.vel[r][1], a.to[r].Y())
		a.cur[r] = wavecurve.P(x, y)
		a.vel[r] = [2]float64{vx, vy}
	}
}

// Cancel stops the animation where it is. The done function will not be
// called.
func (a *Return) Cancel() {
	if a.active {
		tracer().Debugf("return animation cancelled at frame %d", a.frame)
	}
	a.active = false
	a.done = nil
}

// CurrentPosition returns the interpolated position of the control point for
// role r.
func (a *Return) CurrentPosition(r layout.Role) wavecurve.Pair {
	return a.cur[r]
}

// Positions returns the interpolated positions of all control points.
func (a *Return) Positions() layout.Points {
	return a.cur
}
