package bernstein

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrNotImplemented is the error form of the notImplemented flag that
// [ReducePseudoInverse] and [FullReduce] report when the requested degree
// has no closed-form reduction matrix. Neither function returns it; it is
// exported for callers that prefer to handle the flag as an error. Callers
// should treat the flag as "unsupported for this degree" and not retry.
var ErrNotImplemented = errors.New("bernstein: degree reduction not implemented above degree 4")

// maxReducibleNodes is the largest node count (degree 4, 5 nodes) for which
// a reduction matrix is defined. The specification intentionally leaves
// higher degrees unsupported rather than inventing a matrix for them.
const maxReducibleNodes = 5

// reduceThreshold is the relative Frobenius-norm error below which a
// reduction round-trip is accepted as faithful. It equals sqrtPrec, the
// same double-precision floor used by [ComputeLength].
const reduceThreshold = sqrtPrec

// ElevateNodes raises the degree of a curve by one, exactly: the returned
// curve, of degree n+1, traces precisely the same path as nodes.
func ElevateNodes(nodes Nodes) Nodes {
	n := len(nodes) // N in the specification: the input node count
	dim := nodes.Dim()
	out := newNodes(n+1, dim)
	copy(out[0], nodes[0])
	copy(out[n], nodes[n-1])
	for i := 1; i < n; i++ {
		for d := 0; d < dim; d++ {
			out[i][d] = (float64(i)*nodes[i-1][d] + float64(n-i)*nodes[i][d]) / float64(n)
		}
	}
	return out
}

// elevationMatrix returns the N×(N-1) matrix E such that E applied to N-1
// nodes of degree N-2 produces their exact elevation to degree N-1, per the
// formula in [ElevateNodes]. Reduction is built on its Moore-Penrose
// pseudo-inverse rather than from hand-transcribed rational constants, so
// that the two operations can never drift out of sync with each other.
func elevationMatrix(n int) *mat.Dense {
	cols := n - 1
	e := mat.NewDense(n, cols, nil)
	e.Set(0, 0, 1)
	e.Set(n-1, cols-1, 1)
	for i := 1; i < n-1; i++ {
		e.Set(i, i-1, float64(i)/float64(n-1))
		e.Set(i, i, float64(n-1-i)/float64(n-1))
	}
	return e
}

// reductionMatrix returns the (N-1)×N pseudo-inverse of [elevationMatrix],
// the least-squares best map from degree N-1 down to degree N-2. It reports
// ok=false for node counts the specification doesn't cover: fewer than 2,
// or more than [maxReducibleNodes].
func reductionMatrix(n int) (r *mat.Dense, ok bool) {
	if n < 2 || n > maxReducibleNodes {
		return nil, false
	}
	e := elevationMatrix(n)
	var ete mat.Dense
	ete.Mul(e.T(), e)
	var eteInv mat.Dense
	if err := eteInv.Inverse(&ete); err != nil {
		return nil, false
	}
	r = mat.NewDense(n-1, n, nil)
	r.Mul(&eteInv, e.T())
	return r, true
}

func nodesToMatrix(nodes Nodes) *mat.Dense {
	n, dim := len(nodes), nodes.Dim()
	m := mat.NewDense(n, dim, nil)
	for i, row := range nodes {
		for d := 0; d < dim; d++ {
			m.Set(i, d, row[d])
		}
	}
	return m
}

func matrixToNodes(m *mat.Dense) Nodes {
	rows, cols := m.Dims()
	out := newNodes(rows, cols)
	for i := 0; i < rows; i++ {
		for d := 0; d < cols; d++ {
			out[i][d] = m.At(i, d)
		}
	}
	return out
}

// ReducePseudoInverse finds the degree n-1 curve that best approximates
// nodes (degree n) in the least-squares sense. notImplemented is true, and
// reduced is nil, when len(nodes) is outside the range [2, maxReducibleNodes]
// the specification provides a closed form for.
func ReducePseudoInverse(nodes Nodes) (reduced Nodes, notImplemented bool) {
	r, ok := reductionMatrix(len(nodes))
	if !ok {
		return nil, true
	}
	var q mat.Dense
	q.Mul(r, nodesToMatrix(nodes))
	return matrixToNodes(&q), false
}

// ProjectionError returns the relative Frobenius-norm distance between
// nodes and projected, ‖nodes-projected‖_F / ‖nodes‖_F. It returns 0 if the
// numerator is exactly 0, regardless of the denominator.
func ProjectionError(nodes, projected Nodes) float64 {
	var numer, denom float64
	for i, row := range nodes {
		for d, v := range row {
			diffv := v - projected[i][d]
			numer += diffv * diffv
			denom += v * v
		}
	}
	if numer == 0 {
		return 0
	}
	return math.Sqrt(numer) / math.Sqrt(denom)
}

// CanReduce reports whether nodes can be losslessly round-tripped through
// one reduction and re-elevation, within [reduceThreshold] relative error.
// It returns 1 if so, 0 if the projection error is too large, and -1 if
// len(nodes) has no closed-form reduction matrix at all. A node count below
// 2 is defined to be 0 (not reducible), never -1, since a single node has no
// meaningful degree to reduce from.
func CanReduce(nodes Nodes) int {
	if len(nodes) < 2 {
		return 0
	}
	if len(nodes) > maxReducibleNodes {
		return -1
	}
	reduced, notImplemented := ReducePseudoInverse(nodes)
	if notImplemented {
		return -1
	}
	projected := ElevateNodes(reduced)
	if ProjectionError(nodes, projected) < reduceThreshold {
		return 1
	}
	return 0
}

// FullReduce repeatedly reduces nodes by one degree at a time, for as long
// as [CanReduce] keeps reporting success, up to len(nodes)-1 times.
// numReduced is the node count of the result, reducedNodes — that is,
// len(nodes) unchanged if nothing could be reduced. notImplemented is set
// if any step hit a degree with no closed-form reduction matrix, in which
// case reducedNodes reflects only the steps completed before that point.
func FullReduce(nodes Nodes) (numReduced int, reducedNodes Nodes, notImplemented bool) {
	reducedNodes = nodes.clone()
	maxSteps := len(nodes) - 1
	for i := 0; i < maxSteps; i++ {
		switch CanReduce(reducedNodes) {
		case 1:
			next, notImpl := ReducePseudoInverse(reducedNodes)
			if notImpl {
				return len(reducedNodes), reducedNodes, true
			}
			reducedNodes = next
		case -1:
			return len(reducedNodes), reducedNodes, true
		default:
			return len(reducedNodes), reducedNodes, false
		}
	}
	return len(reducedNodes), reducedNodes, false
}
