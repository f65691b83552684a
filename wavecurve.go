/*
Package wavecurve implements an elastic wave curve following a drag gesture.
This root package provides points and affine transformations, which are
shared by the layout, outline and rendering packages.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package wavecurve

import (
	"fmt"
	"math"
)

// === Numeric Data Type =====================================================

// Epsilon is the tolerance below which coordinates count as equal.
var Epsilon float64 = 1e-7

// Is0 is a predicate: is |n| within Epsilon?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// === Pair Data Type ========================================================

// Pair is a 2D point. Points on screen use y growing downwards.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// F is a quick notation for getting float values from a pair.
func (p Pair) F() (float64, float64) {
	return real(p), imag(p)
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// Equal compares two pairs.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Lerp interpolates linearly between p (at t=0) and p2 (at t=1).
func (p Pair) Lerp(p2 Pair, t float64) Pair {
	return P(p.X()+(p2.X()-p.X())*t, p.Y()+(p2.Y()-p.Y())*t)
}

// Shifted returns p + v.
func (p Pair) Shifted(v Pair) Pair {
	return p + v
}

// === Affine Transformations ================================================

// AT is an affine transform of the plane:
//
//	x' = A·x + B·y + C
//	y' = D·x + E·y + F
//
// Renderers use it to map outline coordinates (points) onto device pixels.
// The zero value is not a valid transform; start with Identity.
type AT struct {
	A, B, C float64
	D, E, F float64
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	return AT{A: 1, E: 1}
}

// Translation transform. Translate a point by v.
func Translation(v Pair) AT {
	return AT{A: 1, C: v.X(), E: 1, F: v.Y()}
}

// Scaling transform. Scale a point by sx horizontally and sy vertically,
// relative to the origin.
func Scaling(sx, sy float64) AT {
	return AT{A: sx, E: sy}
}

// IsIdentity is a predicate: does m leave every point unchanged?
func (m AT) IsIdentity() bool {
	return Is0(m.A-1) && Is0(m.B) && Is0(m.C) && Is0(m.D) && Is0(m.E-1) && Is0(m.F)
}

func (m AT) String() string {
	return fmt.Sprintf("[%g,%g,%g|%g,%g,%g]", m.A, m.B, m.C, m.D, m.E, m.F)
}

// Transform a point. The argument is unchanged and a new pair is returned.
func (m AT) Transform(p Pair) Pair {
	x, y := p.F()
	return P(m.A*x+m.B*y+m.C, m.D*x+m.E*y+m.F)
}
