// Package frame drives the wave curve from gesture events and display ticks.
//
// A Controller owns the curve state and reacts to gesture events: moves
// recompute the rest layout, and the end of a gesture hands the control
// points over to a return animation. A Loop serializes events and ticks on a
// single goroutine and pushes a fresh outline to a renderer whenever the
// curve changes.
package frame

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/wavecurve/layout"
	"github.com/npillmayer/wavecurve/outline"
)

// tracer writes to trace with key 'wavecurve.frame'
func tracer() tracing.Trace {
	return tracing.Select("wavecurve.frame")
}

// EventKind classifies gesture events.
type EventKind int

// Gesture event kinds.
const (
	Begin EventKind = iota
	Move
	End
	Cancel
)

func (k EventKind) String() string {
	switch k {
	case Begin:
		return "begin"
	case Move:
		return "move"
	case End:
		return "end"
	case Cancel:
		return "cancel"
	}
	return "unknown"
}

// Event is a gesture event. DX and DY are the translation of the pointer
// since the gesture began, PointerX is its horizontal position in the view.
type Event struct {
	Kind     EventKind
	DX, DY   float64
	PointerX float64
}

// Animator moves control points from where they are displayed back to rest.
// It must call done exactly once when it completes, and never after Cancel.
type Animator interface {
	layout.Positioner
	Start(from, to layout.Points, done func())
	Step()
	Cancel()
	Active() bool
}

// Controller applies gesture events to a curve. It is not safe for concurrent
// use; a Loop serializes all calls.
type Controller struct {
	state      *layout.CurveState
	anim       Animator
	gesture    layout.Gesture
	generation uint64
	animating  bool
}

// NewController creates a controller for a curve state, using anim for the
// return to rest.
func NewController(state *layout.CurveState, anim Animator) *Controller {
	return &Controller{state: state, anim: anim}
}

// State returns the curve state.
func (c *Controller) State() *layout.CurveState {
	return c.state
}

// Gesture returns the gesture state as of the last event.
func (c *Controller) Gesture() layout.Gesture {
	return c.gesture
}

// Animating is a predicate: is a return animation in flight?
func (c *Controller) Animating() bool {
	return c.animating
}

// NeedsFrames is a predicate: should the display driver deliver ticks?
func (c *Controller) NeedsFrames() bool {
	return c.gesture.Active || c.animating
}

// Handle applies a gesture event. It reports whether the presented curve
// changed and should be redrawn.
func (c *Controller) Handle(e Event) bool {
	tracer().Debugf("gesture %s dx=%.2f dy=%.2f x=%.2f", e.Kind, e.DX, e.DY, e.PointerX)
	switch e.Kind {
	case Begin:
		cancelled := c.cancelAnimation()
		c.gesture = layout.Gesture{Active: true, PointerX: e.PointerX}
		return cancelled
	case Move:
		if c.animating { // move without begin
			c.cancelAnimation()
		}
		c.gesture.Active = true
		c.gesture.PointerX = e.PointerX
		c.gesture.DragDeltaY = e.DY
		c.state.ApplyGesture(c.gesture)
		return true
	case End, Cancel:
		if !c.gesture.Active {
			return false
		}
		c.gesture.Active = false
		c.gesture.DragDeltaY = 0
		c.returnToRest()
		return true
	}
	tracer().Errorf("ignoring gesture event of unknown kind %d", e.Kind)
	return false
}

// Tick advances a return animation by one frame.
func (c *Controller) Tick() {
	if c.animating {
		c.anim.Step()
	}
}

// Outline builds the outline of the curve as presented now.
func (c *Controller) Outline() *outline.Path {
	return outline.Build(c.state, c.state.Width())
}

func (c *Controller) returnToRest() {
	from := c.state.Current()
	rest := layout.RestProfile(c.state.Profile().LocationX, c.state.Constants())
	c.state.Apply(rest)
	c.generation++
	gen := c.generation
	c.animating = true
	c.state.Present(c.anim)
	c.anim.Start(from, c.state.Rest(), func() { c.finish(gen) })
}

func (c *Controller) finish(gen uint64) {
	if gen != c.generation {
		tracer().Infof("ignoring completion of superseded animation %d", gen)
		return
	}
	c.animating = false
	c.state.Relinquish()
	tracer().Debugf("curve at rest")
}

func (c *Controller) cancelAnimation() bool {
	if !c.animating {
		return false
	}
	c.anim.Cancel()
	c.generation++
	c.animating = false
	c.state.Relinquish()
	return true
}
