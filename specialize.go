package bernstein

// SpecializeCurve returns the Bernstein form of the same curve restricted
// to the local parameter range [s, e], together with that range mapped
// through the outer affine parameterization [curveStart, curveEnd]:
//
//	trueStart = curveStart + s*(curveEnd-curveStart)
//	trueEnd   = curveStart + e*(curveEnd-curveStart)
//
// The affine bookkeeping is a side channel only; it has no effect on
// newNodes. Callers that don't need it can pass curveStart=0, curveEnd=1
// and ignore the two returned values, since they then equal s and e.
func SpecializeCurve(nodes Nodes, s, e, curveStart, curveEnd float64) (newNodes Nodes, trueStart, trueEnd float64) {
	trueStart = curveStart + s*(curveEnd-curveStart)
	trueEnd = curveStart + e*(curveEnd-curveStart)

	switch len(nodes) {
	case 2:
		return specializeLine(nodes, s, e), trueStart, trueEnd
	case 3:
		return specializeQuadratic(nodes, s, e), trueStart, trueEnd
	default:
		return specializeGeneral(nodes, s, e), trueStart, trueEnd
	}
}

func specializeLine(nodes Nodes, s, e float64) Nodes {
	dim := nodes.Dim()
	p0, p1 := make([]float64, dim), make([]float64, dim)
	for d := 0; d < dim; d++ {
		p0[d] = (1-s)*nodes[0][d] + s*nodes[1][d]
		p1[d] = (1-e)*nodes[0][d] + e*nodes[1][d]
	}
	return Nodes{p0, p1}
}

// specializeQuadratic expands the 3×3 blending matrix that maps the
// original 3 nodes to the specialized 3 nodes in closed form, rather than
// running the general de Casteljau workspace for a degree the specification
// fixes a formula for.
func specializeQuadratic(nodes Nodes, s, e float64) Nodes {
	dim := nodes.Dim()
	sc, ec := 1-s, 1-e
	w := [3][3]float64{
		{sc * sc, 2 * s * sc, s * s},
		{sc * ec, s*ec + e*sc, s * e},
		{ec * ec, 2 * e * ec, e * e},
	}
	out := make(Nodes, 3)
	for row := 0; row < 3; row++ {
		p := make([]float64, dim)
		for d := 0; d < dim; d++ {
			p[d] = w[row][0]*nodes[0][d] + w[row][1]*nodes[1][d] + w[row][2]*nodes[2][d]
		}
		out[row] = p
	}
	return out
}

// specializeGeneral handles degree ≥ 3 via a de Casteljau workspace: for
// each output node j, blend the original nodes with j applications of e and
// degree-j applications of s. The order in which the two blends are
// interleaved doesn't matter — the result is the unique value of the
// curve's multiaffine blossom at that multiset of parameters — so each
// column does all of its e-blends first and its s-blends second.
func specializeGeneral(nodes Nodes, s, e float64) Nodes {
	n := nodes.Degree()
	out := make(Nodes, n+1)

	for c := 0; c <= n; c++ {
		row := nodes.clone()
		row = blendAdjacent(row, e, c)
		row = blendAdjacent(row, s, n-c)
		out[c] = row[0]
	}
	return out
}

// blendAdjacent applies steps rounds of de Casteljau blending with
// parameter t, each round averaging adjacent rows with weights (1-t, t) and
// shrinking the buffer by one row.
func blendAdjacent(rows Nodes, t float64, steps int) Nodes {
	dim := rows.Dim()
	for ; steps > 0; steps-- {
		next := make(Nodes, len(rows)-1)
		for j := range next {
			p := make([]float64, dim)
			for d := 0; d < dim; d++ {
				p[d] = (1-t)*rows[j][d] + t*rows[j+1][d]
			}
			next[j] = p
		}
		rows = next
	}
	return rows
}
