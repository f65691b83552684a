package outline

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/wavecurve"
)

// tracer writes to trace with key 'wavecurve.outline'
func tracer() tracing.Trace {
	return tracing.Select("wavecurve.outline")
}

// Path is the concrete type for building closed outlines.
// To construct a path, start with Nullpath(), which creates an empty
// path, and then extend it.
type Path struct {
	points   []wavecurve.Pair // knot i
	cycle    bool             // is this path cyclic ?
	Controls *Controls        // explicit control points between knots
}

// Controls collects the control points of the curved joins of a path.
// A join i → i+1 without control points is a straight line.
type Controls struct {
	prec  []wavecurve.Pair // control point i-
	postc []wavecurve.Pair // control point i+
}

// Sink receives the drawing commands of a path.
type Sink interface {
	MoveTo(p wavecurve.Pair)
	LineTo(p wavecurve.Pair)
	CubicTo(c1, c2, p wavecurve.Pair)
	ClosePath()
}
