package bernstein

import "math"

// ComputeLength returns the arc length of the curve over [0,1]. ErrCode
// carries the quadrature's convergence diagnostic verbatim: 0 means the
// adaptive subdivision converged within tolerance; non-zero is a warning
// that the requested accuracy wasn't reached within the subdivision limit.
// Length is still the best available estimate either way.
//
// A line (len(nodes) == 2) has constant speed, so its length is just the
// magnitude of its single hodograph node; no quadrature is needed and
// ErrCode is always 0.
func ComputeLength(nodes Nodes) (length float64, errCode int) {
	if len(nodes) == 2 {
		return norm(HodographNodes(nodes)[0]), 0
	}

	diffNodes := HodographNodes(nodes)
	speed := func(s float64) float64 {
		return norm(EvaluateMulti(diffNodes, []float64{s})[0])
	}
	return adaptiveGaussKronrod(speed, 0, 1, sqrtPrec, sqrtPrec, maxArclenSubdivisions)
}

// maxArclenSubdivisions is the subdivision limit passed to the adaptive
// quadrature, matching the "dqagse" family's default.
const maxArclenSubdivisions = 50

// arclenInterval is one subinterval tracked by the adaptive quadrature:
// its bounds and its most recent Gauss-Kronrod estimate.
type arclenInterval struct {
	a, b     float64
	integral float64
	errEst   float64
}

// adaptiveGaussKronrod integrates f over [a,b] using a globally-adaptive
// 21-point Gauss-Kronrod rule: start with one interval, and on each round
// bisect whichever surviving interval carries the largest estimated error,
// replacing it with two refined halves. It stops once the accumulated error
// estimate is within (epsabs, epsrel) of the running total, or once limit
// subintervals have been used, whichever comes first — mirroring the
// "dqagse" quadrature family's convergence and subdivision-limit warnings.
func adaptiveGaussKronrod(f func(float64) float64, a, b, epsabs, epsrel float64, limit int) (result float64, errCode int) {
	first := gaussKronrod21(f, a, b)
	intervals := []arclenInterval{first}
	total := first.integral
	totalErr := first.errEst

	for len(intervals) < limit {
		tol := math.Max(epsabs, epsrel*math.Abs(total))
		if totalErr <= tol {
			return total, 0
		}

		worst := 0
		for i := 1; i < len(intervals); i++ {
			if intervals[i].errEst > intervals[worst].errEst {
				worst = i
			}
		}

		iv := intervals[worst]
		mid := 0.5 * (iv.a + iv.b)
		left := gaussKronrod21(f, iv.a, mid)
		right := gaussKronrod21(f, mid, iv.b)

		total += left.integral + right.integral - iv.integral
		totalErr += left.errEst + right.errEst - iv.errEst
		intervals[worst] = left
		intervals = append(intervals, right)
	}

	tol := math.Max(epsabs, epsrel*math.Abs(total))
	if totalErr > tol {
		return total, 1
	}
	return total, 0
}

// gaussKronrod21 evaluates f at the 21 Gauss-Kronrod nodes scaled into
// [a,b] and returns both the Kronrod estimate of the integral and the
// absolute difference from the embedded 10-point Gauss estimate, used as
// the error estimate for that subinterval.
func gaussKronrod21(f func(float64) float64, a, b float64) arclenInterval {
	center := 0.5 * (a + b)
	halfLength := 0.5 * (b - a)

	fc := f(center)
	resultKronrod := gk21Weights[10] * fc
	resultGauss := 0.0

	// Nodes shared between the embedded 10-point Gauss rule and the
	// 21-point Kronrod rule: odd indices into gk21Nodes/gk21Weights.
	for j := 0; j < 5; j++ {
		idx := 2*j + 1
		abscissa := halfLength * gk21Nodes[idx]
		fSum := f(center-abscissa) + f(center+abscissa)
		resultGauss += g10Weights[j] * fSum
		resultKronrod += gk21Weights[idx] * fSum
	}
	// Kronrod-only nodes: even indices.
	for j := 0; j < 5; j++ {
		idx := 2 * j
		abscissa := halfLength * gk21Nodes[idx]
		fSum := f(center-abscissa) + f(center+abscissa)
		resultKronrod += gk21Weights[idx] * fSum
	}

	kronrod := resultKronrod * halfLength
	gauss := resultGauss * halfLength
	return arclenInterval{a: a, b: b, integral: kronrod, errEst: math.Abs(kronrod - gauss)}
}

// Tables of Gauss-Kronrod quadrature abscissae and weights for the 21-point
// rule (and its embedded 10-point Gauss rule), as used by the QUADPACK
// "dqk21" routine. Nodes are given for the positive half of [-1,1]; the
// negative half is implied by symmetry.
var gk21Nodes = [11]float64{
	0.995657163025808080735527280689003,
	0.973906528517171720077964012084452,
	0.930157491355708226001207180059508,
	0.865063366688984510732096688423493,
	0.780817726586416897063717578345042,
	0.679409568299024406234327365114874,
	0.562757134668604683339000099272694,
	0.433395394129247190799265943165784,
	0.294392862701460198131126603103866,
	0.148874338981631210884826001129720,
	0.0,
}

var gk21Weights = [11]float64{
	0.011694638867371874278064396062192,
	0.032558162307964727478818972459390,
	0.054755896574351996031381300244580,
	0.075039674810919952767043140916190,
	0.093125454583697605535065465083366,
	0.109387158802297641899210590325805,
	0.123491976262065851077958109831074,
	0.134709217311473325928054001771707,
	0.142775938577060080797094273138717,
	0.147739104901338491374841515972068,
	0.149445554002916905664936468389821,
}

var g10Weights = [5]float64{
	0.066671344308688137593568809893332,
	0.149451349150580593145776339657697,
	0.219086362515982043995534934228163,
	0.269266719309996355091226921569469,
	0.295524224714752870173892994651338,
}
