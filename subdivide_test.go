package bernstein

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSubdivideQuadratic(t *testing.T) {
	nodes := Nodes{{0, 0}, {0.5, 1}, {1, 0}}
	left, right := SubdivideNodes(nodes)
	wantLeft := Nodes{{0, 0}, {0.25, 0.5}, {0.5, 0.5}}
	wantRight := Nodes{{0.5, 0.5}, {0.75, 0.5}, {1, 0}}
	diff(t, wantLeft, left, cmpopts.EquateApprox(0, 1e-12))
	diff(t, wantRight, right, cmpopts.EquateApprox(0, 1e-12))
}

func TestSubdivideJoins(t *testing.T) {
	for _, nodes := range []Nodes{
		{{0, 0}, {1, 2}},
		{{0, 0}, {0.5, 1}, {1, 0}},
		{{0, 0}, {1, 1}, {2, -1}, {3, 0}},
		{{0, 0}, {1, 1}, {2, -1}, {3, 0}, {4, 2}},
		{{0, 0}, {1, 1}, {2, -1}, {3, 0}, {4, 2}, {5, -2}},
	} {
		left, right := SubdivideNodes(nodes)
		diff(t, left[len(left)-1], right[0], cmpopts.EquateApprox(0, 1e-9))
	}
}

func TestSubdivideCoversEvaluateMulti(t *testing.T) {
	nodes := Nodes{{0, 0}, {1, 1}, {2, -1}, {3, 0}, {4, 2}, {5, -3}}
	left, right := SubdivideNodes(nodes)
	for _, s := range []float64{0, 0.1, 0.3, 0.5} {
		gotLeft := EvaluateMulti(left, []float64{2 * s})[0]
		want := EvaluateMulti(nodes, []float64{s})[0]
		diff(t, want, gotLeft, cmpopts.EquateApprox(0, 1e-9))

		gotRight := EvaluateMulti(right, []float64{2 * s})[0]
		wantRight := EvaluateMulti(nodes, []float64{0.5 + s})[0]
		diff(t, wantRight, gotRight, cmpopts.EquateApprox(0, 1e-9))
	}
}
