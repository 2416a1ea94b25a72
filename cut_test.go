package chaikin

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLength(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, tc := range []struct {
		l    int
		n    uint8
		want int
	}{
		{5, 0, 5}, {5, 1, 8}, {5, 2, 14}, {5, 3, 26}, {5, 4, 50},
		{2, 200, 2}, {1, 3, 1}, {3, 10, 1026},
	} {
		l, ok := Length(tc.l, tc.n)
		assert.True(t, ok)
		assert.Equal(t, tc.want, l, "Length(%d,%d)", tc.l, tc.n)
	}
	_, ok := Length(5, 255)
	assert.False(t, ok, "expected overflow for 255 passes")
}

func TestCutPairs(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	knots := []Pair{P(1, 1), P(1, 2), P(4, 0.5), P(5, 1), P(2, 2)}
	smooth, err := Cut(knots)
	require.NoError(t, err)
	want := []Pair{
		P(1, 1),
		P(1, 1.75), P(1.75, 1.625),
		P(3.25, 0.875), P(4.25, 0.625),
		P(4.75, 0.875), P(4.25, 1.25),
		P(2, 2),
	}
	assert.Equal(t, want, smooth)
	assert.Equal(t, P(1, 2), knots[1], "input must not be modified")
}

func TestCutTwoKnots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	knots := []Triple{T(0, 1, 2), T(3, 4, 5)}
	smooth, err := Cut(knots)
	require.NoError(t, err)
	assert.Equal(t, knots, smooth)
	smooth[0] = T(9, 9, 9)
	assert.Equal(t, T(0, 1, 2), knots[0], "result must not alias input")
}

func TestCutTooFew(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, knots := range [][]Pair{nil, {}, {P(1, 1)}} {
		_, err := Cut(knots)
		assert.ErrorIs(t, err, ErrTooFewPoints)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
		_, err = Subdivide(knots, 3)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestSubdivideLengthAndEndpoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	knots := []Pair{P(0.1, 0.7), P(2, 3), P(5, -1), P(3.3, 0.3)}
	for n := uint8(0); n <= 6; n++ {
		smooth, err := Subdivide(knots, n)
		require.NoError(t, err)
		l, _ := Length(len(knots), n)
		assert.Len(t, smooth, l)
		assert.Equal(t, knots[0], smooth[0])
		assert.Equal(t, knots[len(knots)-1], smooth[len(smooth)-1])
	}
}

func TestSubdivideZeroPassesCopies(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	knots := []Pair{P(1, 1), P(2, 2), P(3, 1)}
	smooth, err := Subdivide(knots, 0)
	require.NoError(t, err)
	assert.Equal(t, knots, smooth)
	smooth[1] = P(0, 0)
	assert.Equal(t, P(2, 2), knots[1])
}

func TestSubdivideOverflow(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := Subdivide([]Pair{P(1, 1), P(2, 2), P(3, 1)}, 255)
	assert.ErrorIs(t, err, ErrLengthOverflow)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSubdivideStaysInHull(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	knots := []Pair{P(0, 0), P(4, 8), P(8, 0)}
	smooth, err := Subdivide(knots, 5)
	require.NoError(t, err)
	for _, k := range smooth {
		assert.True(t, k.X() >= 0 && k.X() <= 8, "x out of hull: %v", k)
		assert.True(t, k.Y() >= 0 && k.Y() <= 8, "y out of hull: %v", k)
	}
}
