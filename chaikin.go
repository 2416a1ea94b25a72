/*
Package chaikin smoothes open polylines by repeated corner cutting.

Every pass replaces each interior knot of a polyline by two new knots, one
on its incoming and one on its outgoing edge, at a quarter of the edge
length away from the knot. The first and last knot are held fixed. After a
few passes the polyline approximates a smooth curve through the original
control polygon.

Clients either work with point slices,

	knots := []chaikin.Pair{chaikin.P(1, 1), chaikin.P(1, 2), chaikin.P(4, 0.5)}
	smooth, err := chaikin.Subdivide(knots, 4)

or with one slice per coordinate axis:

	x, y, err := chaikin.Curve2D(xs, ys, 4)

The number of knots roughly doubles with every pass; callers have to bound
the iteration count.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package chaikin

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'chaikin'
func tracer() tracing.Trace {
	return tracing.Select("chaikin")
}

var (
	// ErrInvalidArgument is the category of all input errors.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrTooFewPoints indicates a polyline with less than two knots.
	ErrTooFewPoints = fmt.Errorf("%w: polyline needs at least 2 points", ErrInvalidArgument)
	// ErrLengthMismatch indicates coordinate axes of different length.
	ErrLengthMismatch = fmt.Errorf("%w: coordinate sequences differ in length", ErrInvalidArgument)
	// ErrLengthOverflow indicates a result too large to be indexed.
	ErrLengthOverflow = fmt.Errorf("%w: smoothed polyline length overflows", ErrInvalidArgument)
)

// === Numeric Data Type =====================================================

// Weight is the fraction of an edge cut off at each of its knots.
const Weight = 0.25

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// mix returns a·u + b·v. Both products are rounded before the sum, which
// keeps the compiler from fusing them into an FMA.
func mix(a, u, b, v float64) float64 {
	return float64(a*u) + float64(b*v)
}

// === Pair Data Type ========================================================

// Pair is a 2D-point.
type Pair complex128

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// Mix returns a·p + b·q.
func (p Pair) Mix(a float64, q Pair, b float64) Pair {
	return P(mix(a, p.X(), b, q.X()), mix(a, p.Y(), b, q.Y()))
}

// Equal compares two pairs within Epsilon.
func (p Pair) Equal(q Pair) bool {
	return Is0(p.X()-q.X()) && Is0(p.Y()-q.Y())
}

// === Triple Data Type ======================================================

// Triple is a 3D-point.
type Triple [3]float64

// T is a quick notation for contructing a triple from floats.
func T(x, y, z float64) Triple {
	return Triple{x, y, z}
}

func (t Triple) String() string {
	return fmt.Sprintf("(%g,%g,%g)", t[0], t[1], t[2])
}

// X is the x-part of a triple.
func (t Triple) X() float64 {
	return t[0]
}

// Y is the y-part of a triple.
func (t Triple) Y() float64 {
	return t[1]
}

// Z is the z-part of a triple.
func (t Triple) Z() float64 {
	return t[2]
}

// Mix returns a·t + b·u.
func (t Triple) Mix(a float64, u Triple, b float64) Triple {
	return Triple{
		mix(a, t[0], b, u[0]),
		mix(a, t[1], b, u[1]),
		mix(a, t[2], b, u[2]),
	}
}

// Equal compares two triples within Epsilon.
func (t Triple) Equal(u Triple) bool {
	return Is0(t[0]-u[0]) && Is0(t[1]-u[1]) && Is0(t[2]-u[2])
}
