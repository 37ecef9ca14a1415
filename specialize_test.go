package bernstein

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSpecializeIdentity(t *testing.T) {
	for _, nodes := range []Nodes{
		{{0, 0}, {1, 2}},
		{{0, 0}, {0.5, 1}, {1, 0}},
		{{0, 0}, {1, 1}, {2, -1}, {3, 0}},
		{{0, 0}, {1, 1}, {2, -1}, {3, 0}, {4, 2}},
	} {
		got, trueStart, trueEnd := SpecializeCurve(nodes, 0, 1, 0.25, 0.75)
		diff(t, nodes, got, cmpopts.EquateApprox(0, 1e-9))
		if trueStart != 0.25 || trueEnd != 0.75 {
			t.Errorf("got (%v,%v), want (0.25,0.75)", trueStart, trueEnd)
		}
	}
}

func TestSpecializeMatchesEvaluateMulti(t *testing.T) {
	for _, nodes := range []Nodes{
		{{0, 0}, {1, 2}},
		{{0, 0}, {0.5, 1}, {1, 0}},
		{{0, 0}, {1, 1}, {2, -1}, {3, 0}},
		{{0, 0}, {1, 1}, {2, -1}, {3, 0}, {4, 2}, {5, -1}},
	} {
		s, e := 0.2, 0.7
		sub, _, _ := SpecializeCurve(nodes, s, e, 0, 1)
		for _, u := range []float64{0, 0.25, 0.5, 0.75, 1} {
			got := EvaluateMulti(sub, []float64{u})[0]
			want := EvaluateMulti(nodes, []float64{s + u*(e-s)})[0]
			diff(t, want, got, cmpopts.EquateApprox(0, 1e-9))
		}
	}
}

func TestSpecializeComposition(t *testing.T) {
	nodes := Nodes{{0, 0}, {1, 1}, {2, -1}, {3, 0}, {4, 2}}
	once, _, _ := SpecializeCurve(nodes, 0.1, 0.9, 0, 1)
	twice, _, _ := SpecializeCurve(once, 0.2, 0.6, 0, 1)

	composedStart := 0.1 + 0.2*(0.9-0.1)
	composedEnd := 0.1 + 0.6*(0.9-0.1)
	direct, _, _ := SpecializeCurve(nodes, composedStart, composedEnd, 0, 1)

	diff(t, direct, twice, cmpopts.EquateApprox(0, 1e-9))
}
