package layout

import (
	"fmt"

	"github.com/npillmayer/wavecurve"
)

// Positioner reports the position a control point is currently displayed at.
type Positioner interface {
	CurrentPosition(Role) wavecurve.Pair
}

// ControlPoint is a named control point with its rest position.
type ControlPoint struct {
	Role Role
	Rest wavecurve.Pair
}

func (cp ControlPoint) String() string {
	return fmt.Sprintf("%s%s", cp.Role, cp.Rest)
}

// CurveState holds the seven control points of a curve. The rest positions
// are written by Apply only. While a presenter is set, CurrentPosition
// delegates to it; otherwise the rest positions are presented.
//
// CurveState is not safe for concurrent use; it is owned by whichever
// component drives the frame loop.
type CurveState struct {
	width     float64
	constants Constants
	points    [RoleCount]ControlPoint
	profile   Profile
	presenter Positioner
}

// NewCurveState creates the control points with the default rest layout,
// centred horizontally. A width ≤ 0 is a programming error and panics.
func NewCurveState(width float64, c Constants) *CurveState {
	if !(width > 0) {
		panic(fmt.Sprintf("view width must be positive, is %g", width))
	}
	cs := &CurveState{width: width, constants: c}
	for _, r := range Roles() {
		cs.points[r].Role = r
	}
	cs.Apply(RestProfile(width/2, c))
	return cs
}

// Width is the width of the view the curve spans.
func (cs *CurveState) Width() float64 {
	return cs.width
}

// Constants returns the tuning constants of the curve.
func (cs *CurveState) Constants() Constants {
	return cs.constants
}

// Profile returns the profile last applied.
func (cs *CurveState) Profile() Profile {
	return cs.profile
}

// Apply lays out the rest positions for a profile.
func (cs *CurveState) Apply(profile Profile) {
	pts := Layout(profile, cs.width)
	for r, pt := range pts {
		cs.points[r].Rest = pt
	}
	cs.profile = profile
	tracer().Debugf("layout base=%.2f curve=%.2f x=%.2f", profile.BaseHeight,
		profile.CurveHeight, profile.LocationX)
}

// ApplyGesture derives the profile from a gesture and lays it out.
func (cs *CurveState) ApplyGesture(g Gesture) Profile {
	p := ProfileFor(g, cs.constants)
	cs.Apply(p)
	return p
}

// Rest returns a copy of all rest positions.
func (cs *CurveState) Rest() Points {
	var pts Points
	for r, cp := range cs.points {
		pts[r] = cp.Rest
	}
	return pts
}

// ControlPoint returns the control point for role r.
func (cs *CurveState) ControlPoint(r Role) ControlPoint {
	return cs.points[r]
}

// CurrentPosition returns the presented position of the control point for r.
func (cs *CurveState) CurrentPosition(r Role) wavecurve.Pair {
	if cs.presenter != nil {
		return cs.presenter.CurrentPosition(r)
	}
	return cs.points[r].Rest
}

// Current returns the presented positions of all control points.
func (cs *CurveState) Current() Points {
	var pts Points
	for _, r := range Roles() {
		pts[r] = cs.CurrentPosition(r)
	}
	return pts
}

// Present hands presentation of the control points over to p, typically an
// in-flight animation.
func (cs *CurveState) Present(p Positioner) {
	cs.presenter = p
}

// Relinquish reverts presentation to the rest positions.
func (cs *CurveState) Relinquish() {
	cs.presenter = nil
}

// IsPresenting is a predicate: is presentation delegated?
func (cs *CurveState) IsPresenting() bool {
	return cs.presenter != nil
}
