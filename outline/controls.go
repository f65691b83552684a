package outline

import (
	"math/cmplx"

	"github.com/npillmayer/wavecurve"
)

// SetPreControl sets the control point before knot i.
func (ctrls *Controls) SetPreControl(i int, c wavecurve.Pair) {
	ctrls.prec = extendC(ctrls.prec, i, wavecurve.Pair(cmplx.NaN()))
	ctrls.prec[i] = c
}

// SetPostControl sets the control point after knot i.
func (ctrls *Controls) SetPostControl(i int, c wavecurve.Pair) {
	ctrls.postc = extendC(ctrls.postc, i, wavecurve.Pair(cmplx.NaN()))
	ctrls.postc[i] = c
}

// PreControl returns the control point before knot i, or NaN if unset.
func (ctrls *Controls) PreControl(i int) wavecurve.Pair {
	return getC(ctrls.prec, i, wavecurve.Pair(cmplx.NaN()))
}

// PostControl returns the control point after knot i, or NaN if unset.
func (ctrls *Controls) PostControl(i int) wavecurve.Pair {
	return getC(ctrls.postc, i, wavecurve.Pair(cmplx.NaN()))
}
