// Package bernstein provides the numerical primitives for planar and
// higher-dimensional Bézier curves expressed in Bernstein–Bézier form. It is
// the kernel that curve-curve algorithms — intersection, offsetting,
// distance queries, rendering — are built on top of: multi-point
// evaluation, subinterval specialization, subdivision, hodograph
// (derivative) evaluation, Newton-style parameter refinement, degree
// elevation and reduction, curvature, arc length, and point-on-curve
// localization.
//
// # Nodes
//
// The only persistent type is [Nodes], a dense buffer of control points for
// a single curve: Nodes[i][d] is coordinate d of control point i. A curve of
// degree n has n+1 nodes; node 0 is the curve's start point, and the last
// node is its end point. All exported functions treat the nodes they are
// given as read-only and return freshly allocated results; the package keeps
// no long-lived state and no package-level mutable variables.
//
// This package does no I/O, no parsing, and has no opinion about how curves
// are combined into paths or surfaces — those are concerns of higher layers
// built on top of it. Inputs and outputs are plain float64 buffers; there is
// no rational or exact arithmetic.
//
// # Degree change
//
// [ElevateNodes] raises a curve's degree exactly. [ReducePseudoInverse] and
// [FullReduce] lower it approximately, via the least-squares pseudo-inverse
// of the elevation operator; both set a notImplemented flag (whose error
// form is [ErrNotImplemented]) for degrees the fixed-matrix tables don't
// cover, rather than guessing at a higher-degree extension.
//
// # Locating points
//
// [LocatePoint] searches for the parameter at which a curve passes through a
// given point, by repeated subdivision and a bounding-box hull test followed
// by one Newton polish. It reports misses and points that lie on more than
// one parameter (self-intersections) via sentinel return values rather than
// an error, since the valid output range [0,1] leaves room for both.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [A Primer on Bézier Curves]
//   - de Casteljau's algorithm, for evaluation, subdivision, and
//     specialization
//   - the least-squares pseudo-inverse of the degree-elevation operator,
//     for degree reduction
//   - adaptive Gauss–Kronrod quadrature ("QUADPACK"-style), for arc length
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
package bernstein
