package outline

import (
	"math/cmplx"

	"github.com/npillmayer/wavecurve"
)

// Nullpath creates an empty path, to be extended by subsequent builder
// calls. The following example builds a closed triangle-like path of three
// knots, which are connected by a line, a curve and a line again.
//
//	path = Nullpath().Knot(P(0,0)).Line().Knot(P(3,2)).Curve(P(4,2),P(5,1)).Knot(P(5,0)).Line().Cycle()
func Nullpath() *Path {
	return &Path{
		points:   make([]wavecurve.Pair, 0, 8),
		Controls: &Controls{},
	}
}

// End an open path. Part of builder functionality.
func (path *Path) End() *Path {
	return path
}

// Cycle closes a cyclic path. Part of builder functionality.
func (path *Path) Cycle() *Path {
	path.cycle = true
	if c := path.Controls.PreControl(path.N()); !cmplx.IsNaN(c.C()) {
		path.Controls.SetPreControl(0, c) // closing curve arrives at knot 0
	}
	return path
}

// Knot adds a knot to a path. Part of builder functionality.
func (path *Path) Knot(pr wavecurve.Pair) *Path {
	path.points = append(path.points, pr)
	return path
}

// Line connects the last knot to the next one with a straight line.
// Part of builder functionality.
func (path *Path) Line() *Path {
	if path.N() == 0 {
		panic("cannot add line to empty path")
	}
	return path
}

// Curve connects the last knot to the next one with a cubic Bezier curve,
// using c1 and c2 as control points.
// Part of builder functionality.
func (path *Path) Curve(c1, c2 wavecurve.Pair) *Path {
	if path.N() == 0 {
		panic("cannot add curve to empty path")
	}
	path.Controls.SetPostControl(path.N()-1, c1)
	path.Controls.SetPreControl(path.N(), c2)
	return path
}

// IsCycle is a predicate: is this path cyclic?
func (path *Path) IsCycle() bool {
	return path.cycle
}

// N returns the length of this path (knot count).
func (path *Path) N() int {
	return len(path.points)
}

// Z returns the knot at position (i mod N). Negative positions count back
// from the end. An empty path has no knots and Z returns NaN.
func (path *Path) Z(i int) wavecurve.Pair {
	n := path.N()
	if n == 0 {
		return wavecurve.Pair(cmplx.NaN())
	}
	return path.points[(i%n+n)%n]
}

// Joins returns the number of joins: N-1 for open paths and N for cycles.
func (path *Path) Joins() int {
	if path.N() == 0 {
		return 0
	}
	if path.IsCycle() {
		return path.N()
	}
	return path.N() - 1
}

// IsLine is a predicate: is the join from knot i to knot i+1 a straight line?
func (path *Path) IsLine(i int) bool {
	if i+1 >= path.N() && !path.IsCycle() {
		return true
	}
	post := path.Controls.PostControl(i)
	pre := path.Controls.PreControl((i + 1) % path.N())
	return cmplx.IsNaN(post.C()) || cmplx.IsNaN(pre.C())
}
