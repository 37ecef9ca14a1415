package bernstein

// EvaluateCurveBarycentric evaluates the Bernstein-form function
//
//	B(λ1, λ2) = Σ_{i=0}^{n} C(n,i) · λ1^(n-i) · λ2^i · nodes[i]
//
// simultaneously for every pair (lambda1[k], lambda2[k]). The two weights
// are not required to sum to 1; the caller controls that relationship. The
// result has shape [len(lambda1), nodes.Dim()].
//
// The inner loop accumulates the binomial coefficient and the power of
// lambda2 incrementally and folds the running sum through one
// multiplication by lambda1 per node, rather than forming lambda1^(n-i) and
// lambda2^i independently. Besides being O(n) per evaluation point instead
// of O(n²), this ordering is what makes the accumulation numerically
// well-behaved near the ends of the parameter range, and callers that need
// bit-reproducible results must preserve it.
func EvaluateCurveBarycentric(nodes Nodes, lambda1, lambda2 []float64) Nodes {
	n := nodes.Degree()
	dim := nodes.Dim()
	out := newNodes(len(lambda1), dim)

	for k := range lambda1 {
		l1, l2 := lambda1[k], lambda2[k]
		row := out[k]
		binom := 1.0
		lambda2Pow := 1.0
		for i, node := range nodes {
			coeff := binom * lambda2Pow
			for d := 0; d < dim; d++ {
				row[d] = row[d]*l1 + coeff*node[d]
			}
			binom *= float64(n-i) / float64(i+1)
			lambda2Pow *= l2
		}
	}
	return out
}

// EvaluateMulti evaluates the curve at each parameter in s, i.e. it is the
// specialization of [EvaluateCurveBarycentric] with lambda1 = 1-s and
// lambda2 = s.
func EvaluateMulti(nodes Nodes, s []float64) Nodes {
	lambda1 := make([]float64, len(s))
	lambda2 := make([]float64, len(s))
	for k, v := range s {
		lambda1[k] = 1 - v
		lambda2[k] = v
	}
	return EvaluateCurveBarycentric(nodes, lambda1, lambda2)
}
