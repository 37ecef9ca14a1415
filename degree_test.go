package bernstein

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestElevateNodesPreservesCurve(t *testing.T) {
	nodes := Nodes{{0, 0}, {1, 1}, {2, -1}, {3, 0}}
	elevated := ElevateNodes(nodes)
	if len(elevated) != len(nodes)+1 {
		t.Fatalf("got %d nodes, want %d", len(elevated), len(nodes)+1)
	}
	for _, s := range []float64{0, 0.2, 0.5, 0.8, 1} {
		want := EvaluateMulti(nodes, []float64{s})[0]
		got := EvaluateMulti(elevated, []float64{s})[0]
		diff(t, want, got, cmpopts.EquateApprox(0, 1e-9))
	}
}

func TestCanReduceCollinearQuadratic(t *testing.T) {
	nodes := Nodes{{0, 0}, {1, 0}, {2, 0}}
	if got := CanReduce(nodes); got != 1 {
		t.Errorf("got %v, want 1", got)
	}
}

func TestCanReduceNotImplemented(t *testing.T) {
	nodes := Nodes{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}}
	if got := CanReduce(nodes); got != -1 {
		t.Errorf("got %v, want -1", got)
	}
}

func TestCanReduceGenericCurveFails(t *testing.T) {
	nodes := Nodes{{0, 0}, {1, 1}, {2, -1}, {3, 0}}
	if got := CanReduce(nodes); got != 0 {
		t.Errorf("got %v, want 0", got)
	}
}

func TestReductionRoundTrip(t *testing.T) {
	nodes := Nodes{{0, 0}, {1, 0}, {2, 0}}
	if CanReduce(nodes) != 1 {
		t.Fatal("expected this collinear quadratic to be reducible")
	}
	reduced, notImplemented := ReducePseudoInverse(nodes)
	if notImplemented {
		t.Fatal("got notImplemented, want a closed form for N=3")
	}
	elevated := ElevateNodes(reduced)
	diff(t, nodes, elevated, cmpopts.EquateApprox(0, reduceThreshold*10))
}

func TestFullReduceCollinearQuadratic(t *testing.T) {
	nodes := Nodes{{0, 0}, {1, 0}, {2, 0}}
	numReduced, reduced, notImplemented := FullReduce(nodes)
	if notImplemented {
		t.Fatal("got notImplemented")
	}
	if numReduced != 2 {
		t.Fatalf("got numReduced = %v, want 2", numReduced)
	}
	want := Nodes{{0, 0}, {2, 0}}
	diff(t, want, reduced, cmpopts.EquateApprox(0, 1e-8))
}

func TestFullReduceGenericCurveDoesNothing(t *testing.T) {
	nodes := Nodes{{0, 0}, {1, 1}, {2, -1}, {3, 0}}
	numReduced, reduced, notImplemented := FullReduce(nodes)
	if notImplemented {
		t.Fatal("got notImplemented")
	}
	if numReduced != len(nodes) {
		t.Errorf("got numReduced = %v, want %v", numReduced, len(nodes))
	}
	diff(t, nodes, reduced, cmpopts.EquateApprox(0, 1e-12))
}
