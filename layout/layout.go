// Package layout places the seven control points of the wave curve.
//
// Given a curve profile (base height, curve height and horizontal location of
// the pointer) and the width of the view, Layout computes the rest positions of
// all control points. The computation is a pure function; CurveState is the
// mutable container which the frame driver owns and feeds into the outline
// builder.
package layout

import (
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/wavecurve"
)

// tracer writes to trace with key 'wavecurve.layout'
func tracer() tracing.Trace {
	return tracing.Select("wavecurve.layout")
}

// Role identifies one of the seven control points, ordered from left to right.
type Role int

// The control point roles.
const (
	LeftOuter Role = iota
	LeftMid
	LeftInner
	Center
	RightInner
	RightMid
	RightOuter
	RoleCount int = iota
)

var roleNames = [RoleCount]string{
	"leftOuter", "leftMid", "leftInner", "center", "rightInner", "rightMid", "rightOuter",
}

func (r Role) String() string {
	if r < 0 || int(r) >= RoleCount {
		return "role(?)"
	}
	return roleNames[r]
}

// Roles returns all roles in left-to-right order.
func Roles() []Role {
	return []Role{LeftOuter, LeftMid, LeftInner, Center, RightInner, RightMid, RightOuter}
}

// Points holds one position per role, indexed by Role.
type Points [RoleCount]wavecurve.Pair

// At returns the position for role r.
func (pts Points) At(r Role) wavecurve.Pair {
	return pts[r]
}

// CurrentPosition makes a set of points usable as a positioner.
func (pts Points) CurrentPosition(r Role) wavecurve.Pair {
	return pts[r]
}

// Horizontal proportions of the layout. These are part of the visual identity
// of the curve.
const (
	overscanFactor = 0.28
	midFactor      = 0.44
	innerFactor    = 0.71
	innerLift      = 0.64
	centerLift     = 1.36
)

// Layout computes the rest positions of all control points for a profile in
// a view of the given width. Layout does not clamp locationX; the overscan
// formulas keep the outline from degenerating for pointers far off-centre.
func Layout(profile Profile, width float64) Points {
	base, curve, x := profile.BaseHeight, profile.CurveHeight, profile.LocationX
	minLeftX := math.Min((x-width/2)*overscanFactor, 0)
	maxRightX := math.Max(width+(x-width/2)*overscanFactor, width)
	leftPartWidth := x - minLeftX
	rightPartWidth := maxRightX - x
	var pts Points
	pts[LeftOuter] = wavecurve.P(minLeftX, base)
	pts[LeftMid] = wavecurve.P(minLeftX+leftPartWidth*midFactor, base)
	pts[LeftInner] = wavecurve.P(minLeftX+leftPartWidth*innerFactor, base+curve*innerLift)
	pts[Center] = wavecurve.P(x, base+curve*centerLift)
	pts[RightInner] = wavecurve.P(maxRightX-rightPartWidth*innerFactor, base+curve*innerLift)
	pts[RightMid] = wavecurve.P(maxRightX-rightPartWidth*midFactor, base)
	pts[RightOuter] = wavecurve.P(maxRightX, base)
	return pts
}
