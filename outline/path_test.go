package outline

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/wavecurve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"honnef.co/go/curve"
)

func mustPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	f()
}

// recorder is a sink which writes drawing commands to a string.
type recorder struct {
	ops []string
}

func (r *recorder) MoveTo(p wavecurve.Pair) { r.ops = append(r.ops, "M"+p.String()) }
func (r *recorder) LineTo(p wavecurve.Pair) { r.ops = append(r.ops, "L"+p.String()) }
func (r *recorder) CubicTo(c1, c2, p wavecurve.Pair) {
	r.ops = append(r.ops, fmt.Sprintf("C%s%s%s", c1, c2, p))
}
func (r *recorder) ClosePath() { r.ops = append(r.ops, "Z") }

func (r *recorder) String() string {
	return strings.Join(r.ops, " ")
}

func testpath() *Path {
	return Nullpath().Knot(wavecurve.P(0, 0)).Line().
		Knot(wavecurve.P(0, 2)).Curve(wavecurve.P(1, 3), wavecurve.P(2, 3)).
		Knot(wavecurve.P(3, 2)).Line().
		Knot(wavecurve.P(3, 0)).Line().Cycle()
}

func TestSliceEnlargement(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	arr := make([]wavecurve.Pair, 0)
	arr = extendC(arr, 3, 2+1i)
	c := arr[3]
	if c != 2+1i {
		t.Fail()
	}
	assert.Equal(t, wavecurve.Pair(7), getC(arr, 5, 7))
	assert.Equal(t, wavecurve.Pair(7), getC(arr, -1, 7))
}

func TestCreatePath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := testpath()
	if path.N() != 4 {
		t.Fail()
	}
	assert.True(t, path.IsCycle())
	assert.Equal(t, 4, path.Joins())
	assert.True(t, path.IsLine(0))
	assert.False(t, path.IsLine(1))
	assert.True(t, path.IsLine(2))
	assert.True(t, path.IsLine(3))
	assert.Equal(t, path.Z(1), path.Z(path.N()+1))
}

func TestOpenPathJoins(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := Nullpath().Knot(wavecurve.P(0, 0)).Curve(wavecurve.P(0, 1), wavecurve.P(1, 1)).
		Knot(wavecurve.P(1, 0)).End()
	assert.Equal(t, 1, path.Joins())
	assert.False(t, path.IsLine(0))
	assert.True(t, path.IsLine(1))
	assert.Equal(t, 0, Nullpath().Joins())
}

func TestControls(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := testpath()
	assert.Equal(t, wavecurve.P(1, 3), path.Controls.PostControl(1))
	assert.Equal(t, wavecurve.P(2, 3), path.Controls.PreControl(2))
	assert.True(t, cmplx.IsNaN(path.Controls.PostControl(0).C()))
	assert.True(t, cmplx.IsNaN(path.Controls.PreControl(17).C()))
}

func TestClosingCurve(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := Nullpath().Knot(wavecurve.P(0, 0)).Line().
		Knot(wavecurve.P(2, 0)).Curve(wavecurve.P(2, 2), wavecurve.P(0, 2)).Cycle()
	assert.False(t, path.IsLine(1))
	assert.Equal(t, wavecurve.P(0, 2), path.Controls.PreControl(0))
	rec := &recorder{}
	path.Draw(rec)
	assert.Equal(t, "M(0,0) L(2,0) C(2,2)(0,2)(0,0) Z", rec.String())
	assert.Equal(t, "(0,0) -- (2,0) .. controls (2.0000,2.0000) and (0.0000,2.0000)\n  .. cycle",
		AsString(path))
}

func TestAsStringSnapshots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	want := "(0,0) -- (0,2) .. controls (1.0000,3.0000) and (2.0000,3.0000)\n" +
		"  .. (3,2) -- (3,0) -- cycle"
	if got := AsString(testpath()); got != want {
		t.Fatalf("AsString mismatch:\n got: %s\nwant: %s", got, want)
	}
	open := Nullpath().Knot(wavecurve.P(1, 1)).Line().Knot(wavecurve.P(2, 2)).End()
	assert.Equal(t, "(1,1) -- (2,2)", AsString(open))
	assert.Equal(t, "", AsString(Nullpath()))
}

func TestDraw(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rec := &recorder{}
	testpath().Draw(rec)
	assert.Equal(t, "M(0,0) L(0,2) C(1,3)(2,3)(3,2) L(3,0) Z", rec.String())
	rec = &recorder{}
	Nullpath().Draw(rec)
	assert.Empty(t, rec.ops)
}

func TestTransform(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := testpath()
	scaled := path.Transform(wavecurve.Scaling(2, 2))
	require.Equal(t, path.N(), scaled.N())
	assert.True(t, scaled.IsCycle())
	assert.Equal(t, wavecurve.P(6, 4), scaled.Z(2))
	assert.Equal(t, wavecurve.P(2, 6), scaled.Controls.PostControl(1))
	assert.Equal(t, wavecurve.P(4, 6), scaled.Controls.PreControl(2))
	assert.True(t, scaled.IsLine(0))
	assert.Equal(t, wavecurve.P(3, 2), path.Z(2), "original must stay unchanged")
	assert.Equal(t, path.Fingerprint(), path.Transform(wavecurve.Identity()).Fingerprint())
}

func TestFingerprint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, testpath().Fingerprint(), testpath().Fingerprint())
	moved := testpath().Transform(wavecurve.Translation(wavecurve.P(0, 0.5)))
	assert.NotEqual(t, testpath().Fingerprint(), moved.Fingerprint())
	open := Nullpath().Knot(wavecurve.P(0, 0)).Line().
		Knot(wavecurve.P(0, 2)).Curve(wavecurve.P(1, 3), wavecurve.P(2, 3)).
		Knot(wavecurve.P(3, 2)).Line().
		Knot(wavecurve.P(3, 0)).End()
	assert.NotEqual(t, testpath().Fingerprint(), open.Fingerprint())
}

func TestBezPath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	bp := testpath().BezPath()
	kinds := make([]curve.PathElementKind, len(bp))
	for i, el := range bp {
		kinds[i] = el.Kind
	}
	assert.Equal(t, []curve.PathElementKind{curve.MoveToKind, curve.LineToKind,
		curve.CubicToKind, curve.LineToKind, curve.ClosePathKind}, kinds)
	assert.Equal(t, curve.Pt(1, 3), bp[2].P0)
	assert.Equal(t, curve.Pt(3, 2), bp[2].P2)
}

func TestFlatten(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := testpath().Flatten(0.01)
	assert.True(t, pg.IsCycle())
	assert.Greater(t, pg.N(), 4+2)
	// the curve from (0,2) to (3,2) bulges up to y=2.75 at its middle
	top := 0.0
	for i := 0; i < pg.N(); i++ {
		top = math.Max(top, pg.Vertex(0, i).Y())
	}
	assert.LessOrEqual(t, top, 2.75+1e-9)
	assert.Greater(t, top, 2.7)
	// rectangle 3×2 plus the area under the bulge, 1.5
	assert.InDelta(t, 7.5, pg.Area(), 0.05)
	coarse := testpath().Flatten(0)
	assert.LessOrEqual(t, coarse.N(), pg.N())
	assert.True(t, coarse.Vertex(0, 0).Equal(wavecurve.Origin))
}

func TestFlattenClosingCurve(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	drop := Nullpath().Knot(wavecurve.P(0, 0)).Line().
		Knot(wavecurve.P(2, 0)).Curve(wavecurve.P(2, 2), wavecurve.P(0, 2)).Cycle()
	pg := drop.Flatten(0.05)
	last := pg.Vertex(0, pg.N()-1)
	assert.False(t, last.Equal(pg.Vertex(0, 0)), "start knot is not repeated")
	assert.Greater(t, pg.Area(), 2.0)
}

func TestKnotIndexWrapsAround(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := testpath()
	assert.Equal(t, wavecurve.P(0, 0), path.Z(4))
	assert.Equal(t, wavecurve.P(3, 0), path.Z(-1))
	assert.Equal(t, wavecurve.P(0, 2), path.Z(-7))
	assert.True(t, cmplx.IsNaN(Nullpath().Z(0).C()))
	assert.True(t, cmplx.IsNaN(Nullpath().Z(-3).C()))
}

func TestEmptyPathJoinPanics(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	mustPanic(t, func() { Nullpath().Line() })
	mustPanic(t, func() { Nullpath().Curve(wavecurve.Origin, wavecurve.Origin) })
}
