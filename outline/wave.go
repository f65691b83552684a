package outline

import (
	"github.com/npillmayer/wavecurve"
	"github.com/npillmayer/wavecurve/layout"
)

// Build creates the closed outline of the wave for a view of the given width,
// reading every control point through pos. Pass a *layout.CurveState to
// build from whatever is currently presented, be it rest positions or an
// animation in flight.
//
// Build accepts any finite coordinates. For extreme inputs the outline may
// intersect itself; it is still a valid closed path.
func Build(pos layout.Positioner, width float64) *Path {
	at := pos.CurrentPosition
	leftOuter := at(layout.LeftOuter)
	rightInner := at(layout.RightInner)
	path := Nullpath().
		Knot(wavecurve.Origin).Line().
		Knot(wavecurve.P(0, leftOuter.Y())).Curve(leftOuter, at(layout.LeftMid)).
		Knot(at(layout.LeftInner)).Curve(at(layout.Center), rightInner).
		Knot(rightInner).Curve(rightInner, at(layout.RightMid)).
		Knot(at(layout.RightOuter)).Line().
		Knot(wavecurve.P(width, 0)).Line().
		Cycle()
	return path
}
