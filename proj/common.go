package proj

import (
	"math"

	"github.com/geocts/ctsgo/ellipsoid"
	"github.com/geocts/ctsgo/op"
)

// resizeLike allocates a fresh point of length max(n, len(p)), preserving
// any ordinates of p beyond index 1 (height and memorized ordinates) so
// projections do not silently drop a 3D point's height. Per spec.md §5's
// allocation policy, projections always allocate fresh: easting/northing
// replace lat/lon in positions 0 and 1, which are different units and
// meanings, so mutating in place would be misleading even when n == len(p).
func resizeLike(p op.Point, n int) op.Point {
	if len(p) > n {
		n = len(p)
	}
	out := make(op.Point, n)
	for i := 2; i < n && i < len(p); i++ {
		out[i] = p[i]
	}
	return out
}

// meridianArcLength returns the ellipsoidal meridian distance between phi0
// and phi, unscaled (no k0 applied), shared by Polyconic and
// Cassini-Soldner. Same series as TransverseMercator.meridianArc, factored
// out here since those two projections have no ScaleFactor term in their
// own meridian arc (Transverse Mercator folds k0 in directly).
func meridianArcLength(e ellipsoid.Ellipsoid, phi0, phi float64) float64 {
	b := e.B()
	n, n2, n3 := meridianArcCoefficients(e.Eccentricity2())

	ma := (1 + n + 1.25*n2 + 1.25*n3) * (phi - phi0)
	mb := (3*n + 3*n2 + 2.625*n3) * math.Sin(phi-phi0) * math.Cos(phi+phi0)
	mc := (1.875*n2 + 1.875*n3) * math.Sin(2*(phi-phi0)) * math.Cos(2*(phi+phi0))
	md := (35.0 / 24.0) * n3 * math.Sin(3*(phi-phi0)) * math.Cos(3*(phi+phi0))
	return b * (ma - mb + mc - md)
}
