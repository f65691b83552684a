// Package outline builds the closed outline of the wave curve from its
// control points.
/*

The outline is a closed path of knots, joined either by straight lines or by
cubic Bezier curves with explicit control points. It is described in a
notation close to MetaPost's, where "--" denotes a straight line and
".. controls a and b .." a cubic curve:

   (0,0) -- (0,200) .. controls (0.0000,200.0000) and (82.5000,200.0000)
     .. (133.1,200) .. controls (187.5000,200.0000) and (241.8750,200.0000)
     .. (241.9,200) .. controls (241.8750,200.0000) and (292.5000,200.0000)
     .. (375,200) -- (375,0) -- cycle

Clients build paths with a kind of builder pattern (package qualifiers
omitted for clarity and brevity):

   Nullpath().Knot(P(0,0)).Line().Knot(P(0,200)).Curve(P(0,200),P(82.5,200))
      .Knot(P(133.1,200)) ... .Knot(P(375,0)).Line().Cycle()

Build assembles the outline of the wave from the current positions of the
seven control points:

   start at the top left corner (0,0),
   go down the left edge to the height of leftOuter,
   curve to leftInner, controlled by leftOuter and leftMid,
   curve to rightInner, controlled by center and rightInner,
   curve to rightOuter, controlled by rightInner and rightMid,
   go to the top right corner (width,0) and close the path.

The last control point of the middle curve coincides with its end knot, and
the first control point of the right curve coincides with its start knot.
The left curve, in contrast, has two distinct control points. This asymmetry
shapes the flank on the right side of the wave and is kept as is.

A path performs no drawing. It is replayed into a Sink, which is how
renderers consume it.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package outline
