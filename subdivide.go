package bernstein

// SubdivideNodes splits a curve at its midpoint s=1/2, returning the
// Bernstein forms of the two halves. left[len(left)-1] == right[0] by
// construction: both are the point B(1/2).
//
// Degrees 1 through 3 (2 through 4 nodes) use closed-form blends of the
// input nodes. Higher degrees fall back to the general de Casteljau
// construction: repeatedly average adjacent nodes, halving the remaining
// row each time; left[i] and right[len-1-i] are the first and last entries
// of the row after i halvings.
func SubdivideNodes(nodes Nodes) (left, right Nodes) {
	// The closed forms reuse the end rows as they are; copying first keeps
	// the returned halves from sharing rows with the caller's buffer.
	nodes = nodes.clone()
	switch len(nodes) {
	case 2:
		return subdivideLine(nodes)
	case 3:
		return subdivideQuadratic(nodes)
	case 4:
		return subdivideCubic(nodes)
	default:
		return subdivideGeneral(nodes)
	}
}

func subdivideLine(nodes Nodes) (left, right Nodes) {
	dim := nodes.Dim()
	mid := make([]float64, dim)
	for d := 0; d < dim; d++ {
		mid[d] = 0.5 * (nodes[0][d] + nodes[1][d])
	}
	left = Nodes{nodes[0], mid}
	right = Nodes{mid, nodes[1]}
	return left, right
}

func subdivideQuadratic(nodes Nodes) (left, right Nodes) {
	dim := nodes.Dim()
	mid01 := make([]float64, dim)
	mid12 := make([]float64, dim)
	mid := make([]float64, dim)
	for d := 0; d < dim; d++ {
		mid01[d] = 0.5 * (nodes[0][d] + nodes[1][d])
		mid12[d] = 0.5 * (nodes[1][d] + nodes[2][d])
		mid[d] = 0.5 * (mid01[d] + mid12[d])
	}
	left = Nodes{nodes[0], mid01, mid}
	right = Nodes{mid, mid12, nodes[2]}
	return left, right
}

func subdivideCubic(nodes Nodes) (left, right Nodes) {
	dim := nodes.Dim()
	p0, p1, p2, p3 := nodes[0], nodes[1], nodes[2], nodes[3]

	l1 := make([]float64, dim)
	l2 := make([]float64, dim)
	pm := make([]float64, dim)
	r1 := make([]float64, dim)
	r2 := make([]float64, dim)
	for d := 0; d < dim; d++ {
		l1[d] = 0.5 * (p0[d] + p1[d])
		l2[d] = 0.25 * (p0[d] + 2*p1[d] + p2[d])
		pm[d] = 0.125 * (p0[d] + 3*p1[d] + 3*p2[d] + p3[d])
		r1[d] = 0.25 * (p1[d] + 2*p2[d] + p3[d])
		r2[d] = 0.5 * (p2[d] + p3[d])
	}
	left = Nodes{p0, l1, l2, pm}
	right = Nodes{pm, r1, r2, p3}
	return left, right
}

func subdivideGeneral(nodes Nodes) (left, right Nodes) {
	n := len(nodes)
	left = make(Nodes, n)
	right = make(Nodes, n)
	left[0] = nodes[0]
	right[n-1] = nodes[n-1]

	prev := nodes
	for i := 1; i < n; i++ {
		next := make(Nodes, len(prev)-1)
		dim := nodes.Dim()
		for j := range next {
			row := make([]float64, dim)
			for d := 0; d < dim; d++ {
				row[d] = 0.5 * (prev[j][d] + prev[j+1][d])
			}
			next[j] = row
		}
		prev = next
		left[i] = prev[0]
		right[n-1-i] = prev[len(prev)-1]
	}
	return left, right
}
