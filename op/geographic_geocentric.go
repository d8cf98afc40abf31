package op

import (
	"math"

	"github.com/geocts/ctsgo/ctserr"
	"github.com/geocts/ctsgo/ellipsoid"
)

// Geographic2Geocentric converts (lat, lon, [h]) radians/metres to
// geocentric (X, Y, Z) metres using the closed-form forward formula.
// Pads h=0 when given a 2D point. Precision ~1mm.
type Geographic2Geocentric struct {
	Ellipsoid ellipsoid.Ellipsoid
}

func (g Geographic2Geocentric) Transform(p Point) (Point, error) {
	if len(p) < 2 {
		return nil, ctserr.New(ctserr.IllegalCoordinate, "geographic-to-geocentric needs at least 2 ordinates, got %d", len(p))
	}
	phi, lambda := p[0], p[1]
	h := 0.0
	if len(p) >= 3 {
		h = p[2]
	}

	a := g.Ellipsoid.A()
	e2 := g.Ellipsoid.Eccentricity2()
	sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)
	sinLambda, cosLambda := math.Sin(lambda), math.Cos(lambda)
	n := a / math.Sqrt(1-e2*sinPhi*sinPhi)

	out := make(Point, 3)
	out[0] = (n + h) * cosPhi * cosLambda
	out[1] = (n + h) * cosPhi * sinLambda
	out[2] = (n*(1-e2) + h) * sinPhi
	return out, nil
}

func (g Geographic2Geocentric) Inverse() (CoordinateOperation, error) {
	return Geocentric2Geographic{Ellipsoid: g.Ellipsoid}, nil
}

func (g Geographic2Geocentric) Precision() float64 { return 0.001 }
func (g Geographic2Geocentric) IsIdentity() bool   { return false }
func (g Geographic2Geocentric) Kind() Kind         { return KindGeographicToGeocentric }

func (g Geographic2Geocentric) Equal(other CoordinateOperation) bool {
	o, ok := other.(Geographic2Geocentric)
	return ok && o.Ellipsoid.Equal(g.Ellipsoid)
}

// Geocentric2Geographic is the iterative inverse of Geographic2Geocentric.
// Longitude is closed-form; latitude is found by Bowring-style fixed point
// iteration. Precision ~1e-4m.
type Geocentric2Geographic struct {
	Ellipsoid ellipsoid.Ellipsoid
	Epsilon   float64 // convergence threshold in radians; zero means 1e-11
	MaxIter   int     // zero means 15
}

func (g Geocentric2Geographic) epsilon() float64 {
	if g.Epsilon != 0 {
		return g.Epsilon
	}
	return 1e-11
}

func (g Geocentric2Geographic) maxIter() int {
	if g.MaxIter != 0 {
		return g.MaxIter
	}
	return 15
}

func (g Geocentric2Geographic) Transform(p Point) (Point, error) {
	if len(p) < 3 {
		return nil, ctserr.New(ctserr.IllegalCoordinate, "geocentric-to-geographic needs 3 ordinates, got %d", len(p))
	}
	x, y, z := p[0], p[1], p[2]

	a := g.Ellipsoid.A()
	e2 := g.Ellipsoid.Eccentricity2()
	rho := math.Sqrt(x*x + y*y)
	lambda := math.Atan2(y, x)

	var phi float64
	if rho < 1e-12 {
		// Near the poles, bootstrap latitude from sin(phi) = Z/R rather
		// than dividing by a vanishing rho.
		r := math.Sqrt(x*x + y*y + z*z)
		if r == 0 {
			phi = 0
		} else {
			phi = math.Asin(z / r)
		}
	} else {
		phi = math.Atan2(z, rho*(1-e2))
		eps := g.epsilon()
		for i := 0; i < g.maxIter(); i++ {
			sinPhi := math.Sin(phi)
			n := a / math.Sqrt(1-e2*sinPhi*sinPhi)
			next := math.Atan((z + e2*n*sinPhi) / rho)
			delta := next - phi
			phi = next
			if math.Abs(delta) < eps {
				break
			}
		}
	}

	sinPhi := math.Sin(phi)
	n := a / math.Sqrt(1-e2*sinPhi*sinPhi)
	cosPhi := math.Cos(phi)
	var h float64
	if cosPhi != 0 {
		h = rho/cosPhi - n
	} else {
		h = math.Abs(z) - a*(1-g.Ellipsoid.F())
	}

	out := make(Point, 3)
	out[0], out[1], out[2] = phi, lambda, h
	return out, nil
}

func (g Geocentric2Geographic) Inverse() (CoordinateOperation, error) {
	return Geographic2Geocentric{Ellipsoid: g.Ellipsoid}, nil
}

func (g Geocentric2Geographic) Precision() float64 { return 1e-4 }
func (g Geocentric2Geographic) IsIdentity() bool   { return false }
func (g Geocentric2Geographic) Kind() Kind         { return KindGeocentricToGeographic }

func (g Geocentric2Geographic) Equal(other CoordinateOperation) bool {
	o, ok := other.(Geocentric2Geographic)
	return ok && o.Ellipsoid.Equal(g.Ellipsoid)
}
