package bernstein

import "gonum.org/v1/gonum/floats"

// NewtonRefine performs a single Newton iteration refining the parameter
// seed s toward the point on the curve closest to point:
//
//	Δ = point - B(s)
//	D = B'(s)
//	s' = s + (Δ·D) / (D·D)
//
// It does not clamp the result into [0,1]; callers that need the result
// bounded should run it through [WiggleInterval] themselves.
func NewtonRefine(nodes Nodes, point []float64, s float64) float64 {
	b := EvaluateMulti(nodes, []float64{s})[0]
	d := EvaluateHodograph(nodes, s)

	delta := make([]float64, len(point))
	for i := range delta {
		delta[i] = point[i] - b[i]
	}

	return s + floats.Dot(delta, d)/floats.Dot(d, d)
}
