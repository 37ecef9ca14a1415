package bernstein

import "gonum.org/v1/gonum/stat"

// Candidate is a region of a curve still under consideration by
// [LocatePoint]: the Bernstein form of the curve restricted to
// [Start, End] ⊂ [0,1]. Start is always less than End.
type Candidate struct {
	Start, End float64
	Nodes      Nodes
}

// LocatePoint searches for a parameter s* such that evaluating nodes at s*
// is approximately equal to point, by repeated subdivision, a conservative
// bounding-box hull test, and a final Newton polish.
//
// The result is a value in [0,1] unless locating fails, in which case one
// of two sentinels is returned instead: [LocateMiss] if some round of
// subdivision leaves no candidate region containing point, meaning the
// curve doesn't pass near it; or
// [LocateInvalid] if the surviving candidates after subdivision straddle
// disjoint parameter regions, meaning point lies on the curve at more than
// one parameter (as happens at a self-intersection) and no single
// parameter can be returned.
func LocatePoint(nodes Nodes, point []float64) float64 {
	candidates := []Candidate{{0, 1, nodes}}

	for iter := 0; iter < maxLocateSubdivisions; iter++ {
		var next []Candidate
		for _, c := range candidates {
			if !ContainsND(c.Nodes, point) {
				continue
			}
			left, right := SubdivideNodes(c.Nodes)
			mid := (c.Start + c.End) / 2
			next = append(next, Candidate{c.Start, mid, left}, Candidate{mid, c.End, right})
		}
		if len(next) == 0 {
			return LocateMiss
		}
		candidates = next
	}

	// The last round's halves have not been hull-tested yet; only those that
	// contain point count as surviving candidates.
	var surviving []Candidate
	for _, c := range candidates {
		if ContainsND(c.Nodes, point) {
			surviving = append(surviving, c)
		}
	}
	if len(surviving) == 0 {
		return LocateMiss
	}

	samples := make([]float64, 0, 2*len(surviving))
	for _, c := range surviving {
		samples = append(samples, c.Start, c.End)
	}
	mean := stat.Mean(samples, nil)
	if stat.StdDev(samples, nil) > locateStdCap {
		return LocateInvalid
	}
	return min(max(NewtonRefine(nodes, point, mean), 0), 1)
}
