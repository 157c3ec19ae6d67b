package geom

import "github.com/vdobler/engagement"

// NaturalPath returns a path through pts which is a natural cubic spline,
// parametrized by point index, in each coordinate. Every piece is a cubic
// Bézier curve ending in the next point. Two points are connected by a
// straight line.
func NaturalPath(pts []engagement.Point) []engagement.PathSegment {
	n := len(pts)
	if n == 0 {
		return nil
	}
	path := []engagement.PathSegment{{Op: engagement.MoveTo, Pts: [3]engagement.Point{pts[0]}}}
	if n == 1 {
		return path
	}
	if n == 2 {
		return append(path, engagement.PathSegment{Op: engagement.LineTo, Pts: [3]engagement.Point{pts[1]}})
	}

	xs, ys := make([]float64, n), make([]float64, n)
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	ax, bx := controlPoints(xs)
	ay, by := controlPoints(ys)
	for i := 1; i < n; i++ {
		path = append(path, engagement.PathSegment{
			Op: engagement.CubeTo,
			Pts: [3]engagement.Point{
				{X: ax[i-1], Y: ay[i-1]},
				{X: bx[i-1], Y: by[i-1]},
				pts[i],
			},
		})
	}
	return path
}

// controlPoints computes the two inner Bézier control points a[i] and b[i]
// of each of the len(x)-1 pieces of the natural cubic spline through x.
// The tridiagonal system is solved with the Thomas algorithm; its super
// diagonal is all ones.
func controlPoints(x []float64) (a, b []float64) {
	n := len(x) - 1
	a, b = make([]float64, n), make([]float64, n)
	r := make([]float64, n)

	a[0], b[0], r[0] = 0, 2, x[0]+2*x[1]
	for i := 1; i < n-1; i++ {
		a[i], b[i], r[i] = 1, 4, 4*x[i]+2*x[i+1]
	}
	a[n-1], b[n-1], r[n-1] = 2, 7, 8*x[n-1]+x[n]

	for i := 1; i < n; i++ {
		m := a[i] / b[i-1]
		b[i] -= m
		r[i] -= m * r[i-1]
	}
	a[n-1] = r[n-1] / b[n-1]
	for i := n - 2; i >= 0; i-- {
		a[i] = (r[i] - a[i+1]) / b[i]
	}

	b[n-1] = (x[n] + a[n-1]) / 2
	for i := 0; i < n-1; i++ {
		b[i] = 2*x[i+1] - a[i+1]
	}
	return a, b
}
