// Package polyline provides open polylines which may be smoothed by
// corner cutting.
/*
A polyline is built with a kind of builder pattern (package qualifiers
omitted):

	pl := Nullpath().Knot(P(1,1)).Knot(P(1,2)).Knot(P(4,0.5)).End()
	smooth, err := pl.Smoothed(4)

Cyclic polylines are not supported: the first and the last knot of a
polyline are always held fixed by smoothing.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polyline

import (
	"fmt"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/chaikin"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

// Polyline is an open sequence of knots.
type Polyline struct {
	points []chaikin.Pair
}

// Nullpath creates an empty polyline, to be extended by subsequent builder
// calls.
func Nullpath() *Polyline {
	return &Polyline{}
}

// FromPoints creates a polyline from a slice of knots. The slice is copied.
func FromPoints(points []chaikin.Pair) *Polyline {
	pl := &Polyline{points: make([]chaikin.Pair, len(points))}
	copy(pl.points, points)
	return pl
}

// Knot appends a knot. Part of builder functionality.
func (pl *Polyline) Knot(p chaikin.Pair) *Polyline {
	pl.points = append(pl.points, p)
	return pl
}

// End finishes an open polyline. Part of builder functionality.
func (pl *Polyline) End() *Polyline {
	return pl
}

// N returns the number of knots.
func (pl *Polyline) N() int {
	return len(pl.points)
}

// Z returns knot i. It panics if i is out of range.
func (pl *Polyline) Z(i int) chaikin.Pair {
	if i < 0 || i >= pl.N() {
		panic(fmt.Sprintf("knot index %d out of range [0..%d)", i, pl.N()))
	}
	return pl.points[i]
}

// Points returns a copy of the knots.
func (pl *Polyline) Points() []chaikin.Pair {
	pts := make([]chaikin.Pair, len(pl.points))
	copy(pts, pl.points)
	return pts
}

// Smoothed returns a new polyline, the result of n corner-cutting passes
// over pl. pl itself is left unchanged.
func (pl *Polyline) Smoothed(n uint8) (*Polyline, error) {
	pts, err := chaikin.Subdivide(pl.points, n)
	if err != nil {
		return nil, fmt.Errorf("cannot smooth polyline: %w", err)
	}
	tracer().Debugf("smoothed %d knots to %d knots", pl.N(), len(pts))
	return &Polyline{points: pts}, nil
}

// Contour returns the knots of pl as a polyclip contour.
func (pl *Polyline) Contour() polyclip.Contour {
	c := make(polyclip.Contour, 0, pl.N())
	for _, p := range pl.points {
		c.Add(polyclip.Point{X: p.X(), Y: p.Y()})
	}
	return c
}

// BoundingBox returns the smallest axis-aligned rectangle containing all
// knots of pl. Smoothing never enlarges the bounding box.
func (pl *Polyline) BoundingBox() polyclip.Rectangle {
	return pl.Contour().BoundingBox()
}

// AsString returns a polyline as a (debugging) string, e.g.
//
//	(1,1) -- (2,2) -- (3,1)
func AsString(pl *Polyline) string {
	var sb strings.Builder
	for i, p := range pl.points {
		if i > 0 {
			sb.WriteString(" -- ")
		}
		sb.WriteString(fmt.Sprintf("(%.4g,%.4g)", p.X(), p.Y()))
	}
	return sb.String()
}
