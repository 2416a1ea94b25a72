package chaikin

import "fmt"

// Operations on polylines given as one coordinate sequence per axis. The i-th
// elements of all sequences form knot i. Results are always freshly allocated.

// Step2D performs a single corner-cutting pass over the polyline (x,y).
func Step2D(x, y []float64) ([]float64, []float64, error) {
	knots, err := zip2(x, y)
	if err != nil {
		return nil, nil, err
	}
	if knots, err = Cut(knots); err != nil {
		return nil, nil, err
	}
	x, y = unzip2(knots)
	return x, y, nil
}

// Step3D performs a single corner-cutting pass over the polyline (x,y,z).
func Step3D(x, y, z []float64) ([]float64, []float64, []float64, error) {
	knots, err := zip3(x, y, z)
	if err != nil {
		return nil, nil, nil, err
	}
	if knots, err = Cut(knots); err != nil {
		return nil, nil, nil, err
	}
	x, y, z = unzip3(knots)
	return x, y, z, nil
}

// Curve2D smoothes the polyline (x,y) by n corner-cutting passes.
// n = 0 returns copies of x and y.
func Curve2D(x, y []float64, n uint8) ([]float64, []float64, error) {
	knots, err := zip2(x, y)
	if err != nil {
		return nil, nil, err
	}
	if knots, err = Subdivide(knots, n); err != nil {
		return nil, nil, err
	}
	x, y = unzip2(knots)
	return x, y, nil
}

// Curve3D smoothes the polyline (x,y,z) by n corner-cutting passes.
// n = 0 returns copies of x, y and z.
func Curve3D(x, y, z []float64, n uint8) ([]float64, []float64, []float64, error) {
	knots, err := zip3(x, y, z)
	if err != nil {
		return nil, nil, nil, err
	}
	if knots, err = Subdivide(knots, n); err != nil {
		return nil, nil, nil, err
	}
	x, y, z = unzip3(knots)
	return x, y, z, nil
}

// --- Helpers ---------------------------------------------------------------

func zip2(x, y []float64) ([]Pair, error) {
	if len(x) != len(y) {
		tracer().Errorf("axes differ in length: |x|=%d, |y|=%d", len(x), len(y))
		return nil, fmt.Errorf("%w: |x|=%d, |y|=%d", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) < 2 {
		tracer().Errorf("polyline has %d points", len(x))
		return nil, ErrTooFewPoints
	}
	knots := make([]Pair, len(x))
	for i := range knots {
		knots[i] = P(x[i], y[i])
	}
	return knots, nil
}

func zip3(x, y, z []float64) ([]Triple, error) {
	if len(x) != len(y) || len(x) != len(z) {
		tracer().Errorf("axes differ in length: |x|=%d, |y|=%d, |z|=%d", len(x), len(y), len(z))
		return nil, fmt.Errorf("%w: |x|=%d, |y|=%d, |z|=%d", ErrLengthMismatch, len(x), len(y), len(z))
	}
	if len(x) < 2 {
		tracer().Errorf("polyline has %d points", len(x))
		return nil, ErrTooFewPoints
	}
	knots := make([]Triple, len(x))
	for i := range knots {
		knots[i] = T(x[i], y[i], z[i])
	}
	return knots, nil
}

func unzip2(knots []Pair) ([]float64, []float64) {
	x := make([]float64, len(knots))
	y := make([]float64, len(knots))
	for i, k := range knots {
		x[i], y[i] = k.X(), k.Y()
	}
	return x, y
}

func unzip3(knots []Triple) ([]float64, []float64, []float64) {
	x := make([]float64, len(knots))
	y := make([]float64, len(knots))
	z := make([]float64, len(knots))
	for i, k := range knots {
		x[i], y[i], z[i] = k.X(), k.Y(), k.Z()
	}
	return x, y, z
}
