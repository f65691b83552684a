/*
Package polygon deals with polygonal regions, such as a flattened outline of
the wave. Regions may be clipped against each other, which renderers and
tools use to find the part of the filled outline inside the view.

Polygons are built in the same manner as paths:

	pg := NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()

Clipping is delegated to github.com/akavel/polyclip-go.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"
	"math"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/wavecurve"
)

// L traces to the polygon tracer.
func L() tracing.Trace {
	return tracing.Select("wavecurve.polygon")
}

// Polygon is a region made of one or more closed contours. The builder
// methods extend the last contour.
type Polygon struct {
	region polyclip.Polygon
	cycle  bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent builder
// calls.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Box creates a rectangular polygon from two opposite corners.
func Box(a, b wavecurve.Pair) *Polygon {
	minx, maxx := math.Min(a.X(), b.X()), math.Max(a.X(), b.X())
	miny, maxy := math.Min(a.Y(), b.Y()), math.Max(a.Y(), b.Y())
	return NullPolygon().
		Knot(wavecurve.P(minx, miny)).
		Knot(wavecurve.P(maxx, miny)).
		Knot(wavecurve.P(maxx, maxy)).
		Knot(wavecurve.P(minx, maxy)).
		Cycle()
}

// Knot appends a vertex to the last contour. Part of builder functionality.
func (pg *Polygon) Knot(p wavecurve.Pair) *Polygon {
	if len(pg.region) == 0 {
		pg.region.Add(polyclip.Contour{})
	}
	last := len(pg.region) - 1
	pg.region[last].Add(polyclip.Point{X: p.X(), Y: p.Y()})
	return pg
}

// Cycle closes the polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// N returns the number of vertices over all contours.
func (pg *Polygon) N() int {
	return pg.region.NumVertices()
}

// Contours returns the number of contours.
func (pg *Polygon) Contours() int {
	return len(pg.region)
}

// Vertex returns vertex i of contour c.
func (pg *Polygon) Vertex(c, i int) wavecurve.Pair {
	pt := pg.region[c][i]
	return wavecurve.P(pt.X, pt.Y)
}

// Area returns the area enclosed by the polygon, summing the absolute areas
// of its contours. Contours are expected not to be nested.
func (pg *Polygon) Area() float64 {
	var area float64
	for _, c := range pg.region {
		area += math.Abs(signedArea(c))
	}
	return area
}

// Shoelace formula.
func signedArea(c polyclip.Contour) float64 {
	var a float64
	n := len(c)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a += c[i].X*c[j].Y - c[j].X*c[i].Y
	}
	return a / 2
}

// BoundingBox returns the top left and bottom right corners of the smallest
// rectangle containing the polygon.
func (pg *Polygon) BoundingBox() (wavecurve.Pair, wavecurve.Pair) {
	if pg.N() == 0 {
		return wavecurve.Origin, wavecurve.Origin
	}
	r := pg.region.BoundingBox()
	return wavecurve.P(r.Min.X, r.Min.Y), wavecurve.P(r.Max.X, r.Max.Y)
}

// Contains is a predicate: does p lie inside one of the contours?
func (pg *Polygon) Contains(p wavecurve.Pair) bool {
	pt := polyclip.Point{X: p.X(), Y: p.Y()}
	for _, c := range pg.region {
		if c.Contains(pt) {
			return true
		}
	}
	return false
}

// Clip returns the intersection of pg with clip. Neither argument is changed.
func (pg *Polygon) Clip(clip *Polygon) *Polygon {
	if pg.N() == 0 || clip.N() == 0 {
		return NullPolygon().Cycle()
	}
	region := pg.region.Construct(polyclip.INTERSECTION, clip.region)
	L().Debugf("clipped %d vertices to %d contours", pg.N(), len(region))
	return &Polygon{region: region, cycle: true}
}

// AsString returns a polygon as a (debugging) string, one contour per line.
func AsString(pg *Polygon) string {
	var b strings.Builder
	for c, contour := range pg.region {
		if c > 0 {
			b.WriteString("\n")
		}
		for i, pt := range contour {
			if i > 0 {
				b.WriteString(" -- ")
			}
			fmt.Fprintf(&b, "(%.4g,%.4g)", pt.X, pt.Y)
		}
		if pg.cycle {
			b.WriteString(" -- cycle")
		}
	}
	return b.String()
}
