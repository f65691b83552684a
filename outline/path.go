package outline

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/npillmayer/wavecurve"
	"github.com/npillmayer/wavecurve/polygon"
	"honnef.co/go/curve"
)

// AsString returns a path as a (debugging) string, in a notation close to
// MetaPost's. Curved joins start on a new line.
//
// Example, the outline at rest in a view of width 375:
//
//	(0,0) -- (0,200) .. controls (0.0000,200.0000) and (82.5000,200.0000)
//	  .. (133.1,200) .. controls (187.5000,200.0000) and (241.8750,200.0000)
//	  .. (241.9,200) .. controls (241.8750,200.0000) and (292.5000,200.0000)
//	  .. (375,200) -- (375,0) -- cycle
func AsString(path *Path) string {
	var b strings.Builder
	for i := 0; i < path.N(); i++ {
		if i > 0 {
			if path.IsLine(i - 1) {
				b.WriteString(" -- ")
			} else {
				fmt.Fprintf(&b, " and %s\n  .. ", ptstring(path.Controls.PreControl(i), true))
			}
		}
		b.WriteString(ptstring(path.Z(i), false))
		if i < path.Joins() && !path.IsLine(i) {
			fmt.Fprintf(&b, " .. controls %s", ptstring(path.Controls.PostControl(i), true))
		}
	}
	if path.IsCycle() && path.N() > 0 {
		if path.IsLine(path.N() - 1) {
			b.WriteString(" -- cycle")
		} else {
			fmt.Fprintf(&b, " and %s\n  .. cycle", ptstring(path.Controls.PreControl(0), true))
		}
	}
	return b.String()
}

// Draw replays the path into a sink.
func (path *Path) Draw(sink Sink) {
	if path.N() == 0 {
		return
	}
	sink.MoveTo(path.Z(0))
	for i := 0; i < path.Joins(); i++ {
		j := (i + 1) % path.N()
		if path.IsLine(i) {
			if j == 0 {
				break // closing line is implied by ClosePath
			}
			sink.LineTo(path.Z(j))
			continue
		}
		sink.CubicTo(path.Controls.PostControl(i), path.Controls.PreControl(j), path.Z(j))
	}
	if path.IsCycle() {
		sink.ClosePath()
	}
}

// Transform returns a new path with all knots and control points transformed
// by m.
func (path *Path) Transform(m wavecurve.AT) *Path {
	t := Nullpath()
	for i := 0; i < path.N(); i++ {
		t.Knot(m.Transform(path.Z(i)))
		if i < path.Joins() && !path.IsLine(i) {
			j := (i + 1) % path.N()
			t.Controls.SetPostControl(i, m.Transform(path.Controls.PostControl(i)))
			t.Controls.SetPreControl(j, m.Transform(path.Controls.PreControl(j)))
		}
	}
	t.cycle = path.cycle
	return t
}

// Fingerprint hashes the geometry of a path. Equal paths have equal
// fingerprints, which lets drivers skip repainting an unchanged outline.
func (path *Path) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [8]byte
	put := func(p wavecurve.Pair) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(p.X()))
		d.Write(buf[:])
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(p.Y()))
		d.Write(buf[:])
	}
	for i := 0; i < path.N(); i++ {
		put(path.Z(i))
		if i < path.Joins() && !path.IsLine(i) {
			d.Write([]byte{'c'})
			put(path.Controls.PostControl(i))
			put(path.Controls.PreControl((i + 1) % path.N()))
		} else {
			d.Write([]byte{'l'})
		}
	}
	if path.IsCycle() {
		d.Write([]byte{'z'})
	}
	return d.Sum64()
}

// DefaultTolerance is the flattening tolerance, in points, used when a
// non-positive tolerance is given. It suits anti-aliased rendering.
const DefaultTolerance = 0.25

// BezPath converts the path to a curve.BezPath.
func (path *Path) BezPath() curve.BezPath {
	var b bezSink
	path.Draw(&b)
	return b.p
}

// Flatten approximates the path by a polygon. Curved joins are replaced by
// polylines deviating from the curve by at most tolerance; straight joins
// are kept as single edges.
func (path *Path) Flatten(tolerance float64) *polygon.Polygon {
	if !(tolerance > 0) {
		tolerance = DefaultTolerance
	}
	var pts []wavecurve.Pair
	closed := false
	for el := range path.BezPath().Flatten(tolerance) {
		switch el.Kind {
		case curve.MoveToKind, curve.LineToKind:
			pts = append(pts, wavecurve.P(el.P0.X, el.P0.Y))
		case curve.ClosePathKind:
			closed = true
		}
	}
	if closed && len(pts) > 1 && pts[len(pts)-1].Equal(pts[0]) {
		pts = pts[:len(pts)-1] // a closing curve ends on the start knot
	}
	pg := polygon.NullPolygon()
	for _, p := range pts {
		pg.Knot(p)
	}
	if closed {
		pg.Cycle()
	}
	tracer().Debugf("flattened path of %d knots into %d vertices", path.N(), pg.N())
	return pg
}

// viewMargin widens the view box for clipping, so that outline edges lying on
// the view border do not coincide with clip edges.
const viewMargin = 1e-3

// Visible flattens the path and clips it to a view of the given size. The
// result is the filled region a renderer paints inside the view.
func (path *Path) Visible(width, height, tolerance float64) *polygon.Polygon {
	view := polygon.Box(wavecurve.P(-viewMargin, -viewMargin),
		wavecurve.P(width+viewMargin, height+viewMargin))
	return path.Flatten(tolerance).Clip(view)
}

// bezSink collects drawing commands into a curve.BezPath.
type bezSink struct {
	p curve.BezPath
}

func pt(p wavecurve.Pair) curve.Point {
	return curve.Pt(p.X(), p.Y())
}

func (b *bezSink) MoveTo(p wavecurve.Pair) {
	b.p.MoveTo(pt(p))
}

func (b *bezSink) LineTo(p wavecurve.Pair) {
	b.p.LineTo(pt(p))
}

func (b *bezSink) CubicTo(c1, c2, p wavecurve.Pair) {
	b.p.CubicTo(pt(c1), pt(c2), pt(p))
}

func (b *bezSink) ClosePath() {
	b.p.ClosePath()
}
