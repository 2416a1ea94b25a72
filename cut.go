package chaikin

import (
	"math/bits"
)

// Vertex is the constraint for knot types of a polyline. Mix returns the
// componentwise weighted sum a·self + b·other.
type Vertex[V any] interface {
	Mix(a float64, other V, b float64) V
}

// Length returns the number of knots after n passes over a polyline of l
// knots, i.e. 2ⁿ·(l−2)+2. Polylines of less than 3 knots do not grow.
// Length returns false if the result does not fit into an int.
func Length(l int, n uint8) (int, bool) {
	if l < 3 || n == 0 {
		return l, true
	}
	m := uint(l - 2)
	if bits.Len(m)+int(n) >= bits.UintSize-1 {
		return 0, false
	}
	return int(m<<n) + 2, true
}

// Cut performs a single corner-cutting pass over knots and returns a new
// polyline of 2L−2 knots. The endpoints are copied unchanged, every interior
// knot z.i is replaced by
//
//	¼·z.[i-1] + ¾·z.i  and  ¾·z.i + ¼·z.[i+1]
//
// The argument is not modified.
func Cut[V Vertex[V]](knots []V) ([]V, error) {
	if len(knots) < 2 {
		tracer().Errorf("cannot cut polyline of %d knots", len(knots))
		return nil, ErrTooFewPoints
	}
	return cut(knots), nil
}

// cut expects at least 2 knots.
func cut[V Vertex[V]](knots []V) []V {
	last := len(knots) - 1
	smooth := make([]V, 0, 2*len(knots)-2)
	smooth = append(smooth, knots[0])
	for i := 1; i < last; i++ {
		smooth = append(smooth,
			knots[i-1].Mix(Weight, knots[i], 1-Weight),
			knots[i].Mix(1-Weight, knots[i+1], Weight))
	}
	return append(smooth, knots[last])
}

// Subdivide applies n corner-cutting passes to knots, feeding the result of
// each pass into the next one. For n = 0 it returns a copy of knots.
//
// The result grows exponentially with n (see Length). Subdivide refuses to
// start if the final length would overflow, but otherwise does not limit
// memory consumption.
func Subdivide[V Vertex[V]](knots []V, n uint8) ([]V, error) {
	if len(knots) < 2 {
		tracer().Errorf("cannot subdivide polyline of %d knots", len(knots))
		return nil, ErrTooFewPoints
	}
	if _, ok := Length(len(knots), n); !ok {
		tracer().Errorf("%d passes over %d knots overflow", n, len(knots))
		return nil, ErrLengthOverflow
	}
	smooth := make([]V, len(knots))
	copy(smooth, knots)
	for pass := 0; pass < int(n); pass++ {
		smooth = cut(smooth)
		tracer().Debugf("pass %d: %d knots", pass+1, len(smooth))
	}
	return smooth, nil
}
