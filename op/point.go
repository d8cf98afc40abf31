// Package op implements component G (the primitive coordinate operations)
// and component J (the operation sequence and its cleaner).
package op

// Point is an ordered sequence of doubles of length >= 1. By convention the
// first two ordinates are horizontal (lat,lon or easting,northing depending
// on the stage), the third is height/Z, and positions beyond the third are
// memorized ordinates used by iterative and compound-CRS pipelines.
type Point []float64

// Clone returns an independent copy of p. Callers who need the input point
// preserved across a Transform call (which may mutate in place when
// dimensionality does not change) must Clone before calling.
func (p Point) Clone() Point {
	c := make(Point, len(p))
	copy(c, p)
	return c
}

// resized returns a point of exactly n ordinates: p itself when it already
// has n ordinates, otherwise a fresh copy truncated or zero-filled to n.
// Operations that change point length must allocate a fresh array (never
// reslice in a way that aliases the caller's slice beyond n), per the
// allocation policy in spec.md §5.
func resized(p Point, n int) Point {
	if len(p) == n {
		return p
	}
	out := make(Point, n)
	copy(out, p)
	return out
}
