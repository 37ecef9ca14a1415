package bernstein

// sqrtPrec is the square root of double-precision machine epsilon, 2⁻²⁶.
// It is used both as the absolute/relative tolerance for the arc-length
// quadrature and as the acceptance threshold for degree reduction: below
// this scale, double-precision rounding dominates whatever the algorithm
// itself could still resolve.
const sqrtPrec = 1.0 / (1 << 26)

const (
	// maxLocateSubdivisions bounds the candidate-subdivision loop in
	// [LocatePoint]. 2^maxLocateSubdivisions bounds the worst-case number of
	// candidate leaves.
	maxLocateSubdivisions = 20

	// locateStdCap is the standard-deviation ceiling on surviving candidate
	// endpoints beyond which [LocatePoint] reports LocateInvalid instead of a
	// parameter value.
	locateStdCap = 1.0 / (1 << 20)
)

// Sentinel values returned by [LocatePoint] in place of a parameter in
// [0,1]. Both are negative, so they can never be confused with a valid
// result.
const (
	// LocateMiss indicates that no candidate region of the curve contains
	// the query point: the curve doesn't pass near it.
	LocateMiss = -1.0

	// LocateInvalid indicates that the surviving candidates straddle
	// disjoint parameter regions — the point lies on the curve at more than
	// one parameter, as happens at a self-intersection — so no single
	// parameter can be returned.
	LocateInvalid = -2.0
)
