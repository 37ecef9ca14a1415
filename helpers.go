package bernstein

import "gonum.org/v1/gonum/floats"

// wiggleRoom is the slack tolerated by [WiggleInterval] when snapping a
// value into [0,1]: 2⁻⁴⁴.
const wiggleRoom = 1.0 / (1 << 44)

// CrossProduct returns the 2D cross product u.x·v.y − u.y·v.x of u and v.
// Both vectors must have at least 2 coordinates; only the first two are
// read.
func CrossProduct(u, v []float64) float64 {
	return vec(u[0], u[1]).cross(vec(v[0], v[1]))
}

// BBox2D returns the axis-aligned bounding box of nodes, treating each row
// as a 2D point. It scans column 0 for xmin/xmax and column 1 for
// ymin/ymax.
func BBox2D(nodes Nodes) (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = nodes[0][0], nodes[0][1]
	xmax, ymax = xmin, ymin
	for _, row := range nodes[1:] {
		xmin = min(xmin, row[0])
		xmax = max(xmax, row[0])
		ymin = min(ymin, row[1])
		ymax = max(ymax, row[1])
	}
	return xmin, xmax, ymin, ymax
}

// WiggleInterval snaps x into [0,1], tolerating values up to wiggleRoom
// outside of the interval. It reports ok = false if x is further outside
// [0,1] than that slack.
func WiggleInterval(x float64) (y float64, ok bool) {
	switch {
	case x < -wiggleRoom:
		return 0, false
	case x < 0:
		return 0, true
	case x > 1+wiggleRoom:
		return 0, false
	case x > 1:
		return 1, true
	default:
		return x, true
	}
}

// ContainsND reports whether point lies inside the axis-aligned bounding
// box of nodes in every coordinate. It is a cheap, conservative
// over-approximation of "point lies on the curve described by nodes": it
// may return true for points that are nowhere near the curve, but it never
// returns false for a point that the curve actually passes through, which
// is exactly what [LocatePoint] needs from a hull test.
func ContainsND(nodes Nodes, point []float64) bool {
	dim := nodes.Dim()
	mins := make([]float64, dim)
	maxs := make([]float64, dim)
	copy(mins, nodes[0])
	copy(maxs, nodes[0])
	for _, row := range nodes[1:] {
		for d := 0; d < dim; d++ {
			mins[d] = min(mins[d], row[d])
			maxs[d] = max(maxs[d], row[d])
		}
	}
	for d := 0; d < dim; d++ {
		if point[d] < mins[d] || point[d] > maxs[d] {
			return false
		}
	}
	return true
}

// norm returns the Euclidean norm of v.
func norm(v []float64) float64 {
	return floats.Norm(v, 2)
}
