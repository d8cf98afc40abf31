// Package proj implements component H: map projection forward/inverse
// algorithms. Each projection is an op.CoordinateOperation whose forward
// maps (lat, lon, [h]) radians to (easting, northing, [h]) metres in the
// projected plane, with easting at position 0.
package proj

import (
	"math"

	"github.com/geocts/ctsgo/ellipsoid"
)

// Params carries the parameters common to (a subset of) every projection
// in this package. Individual projections embed Params and add whichever
// auxiliary latitudes (e.g. StandardParallel1/2 for Lambert Conformal
// Conic) they need.
type Params struct {
	Ellipsoid          ellipsoid.Ellipsoid
	CentralMeridian    float64 // radians
	LatitudeOfOrigin   float64 // radians
	ScaleFactor        float64 // dimensionless, 1.0 if not applicable
	FalseEasting       float64 // metres
	FalseNorthing      float64 // metres
}

// meridianArcCoefficients returns the three coefficients used by the
// truncated series for the meridian arc distance M(phi), as used by
// Transverse Mercator, Polyconic, and Cassini-Soldner. Grounded on the
// teacher's osgridref.go meridional-arc block (OSGB uses exactly this
// series, just with its own false origin latitude).
func meridianArcCoefficients(e2 float64) (n, n2, n3 float64) {
	// n here is the ellipsoid's third flattening, derived from e2 via
	// f = 1 - sqrt(1-e2); n = f/(2-f). Computing it from e2 directly
	// (rather than threading Ellipsoid.ThirdFlattening through every
	// caller) keeps this helper self-contained.
	f := 1 - math.Sqrt(1-e2)
	n = f / (2 - f)
	n2 = n * n
	n3 = n2 * n
	return
}
