package bernstein

// HodographNodes returns the control points of the hodograph: the degree
// n-1 curve whose evaluation equals B'(s) for the degree-n curve described
// by nodes. Node i of the hodograph is n·(nodes[i+1] - nodes[i]).
func HodographNodes(nodes Nodes) Nodes {
	n := nodes.Degree()
	dim := nodes.Dim()
	out := newNodes(n, dim)
	for i := 0; i < n; i++ {
		for d := 0; d < dim; d++ {
			out[i][d] = float64(n) * (nodes[i+1][d] - nodes[i][d])
		}
	}
	return out
}

// EvaluateHodograph returns B'(s), the tangent vector of the curve at
// parameter s.
func EvaluateHodograph(nodes Nodes, s float64) []float64 {
	return EvaluateMulti(HodographNodes(nodes), []float64{s})[0]
}

// rawDifference returns nodes[i+1] - nodes[i] for each i, without the
// degree scaling factor [HodographNodes] applies. It is the building block
// for the second derivative, where the n(n-1) scaling factor is applied
// once rather than folded into two separately-scaled difference tables.
func rawDifference(nodes Nodes) Nodes {
	dim := nodes.Dim()
	out := newNodes(len(nodes)-1, dim)
	for i := range out {
		for d := 0; d < dim; d++ {
			out[i][d] = nodes[i+1][d] - nodes[i][d]
		}
	}
	return out
}

// Curvature returns the signed curvature κ of a 2D curve at parameter s,
// along with the tangent vector B'(s) evaluated there. For a line
// (len(nodes) == 2) the curvature is 0 unconditionally, since the tangent
// is constant and there is no second derivative to take.
func Curvature(nodes Nodes, s float64) (kappa float64, tangent []float64) {
	tangent = EvaluateHodograph(nodes, s)
	if len(nodes) == 2 {
		return 0, tangent
	}

	n := nodes.Degree()
	doubleDiff := rawDifference(rawDifference(nodes))
	c := EvaluateMulti(doubleDiff, []float64{s})[0]
	scale := float64(n * (n - 1))
	for d := range c {
		c[d] *= scale
	}

	tnorm := norm(tangent)
	kappa = CrossProduct(tangent, c) / (tnorm * tnorm * tnorm)
	return kappa, tangent
}
