package proj

import (
	"math"

	"github.com/geocts/ctsgo/ctserr"
	"github.com/geocts/ctsgo/op"
)

// lccCore holds the derived constants (n, F, rho0) shared by the 1SP and
// 2SP variants of Lambert Conformal Conic once n and F are known; only how
// n and F are derived from the parameters differs between the two.
type lccCore struct {
	Params
	n, f, rho0 float64
}

func lccT(e, phi float64) float64 {
	sinPhi := math.Sin(phi)
	return math.Tan(math.Pi/4-phi/2) / math.Pow((1-e*sinPhi)/(1+e*sinPhi), e/2)
}

func lccM(e, phi float64) float64 {
	sinPhi := math.Sin(phi)
	return math.Cos(phi) / math.Sqrt(1-e*e*sinPhi*sinPhi)
}

// LambertConformalConic1SP implements EPSG method 9801: a single standard
// parallel (LatitudeOfOrigin) and an explicit ScaleFactor at that parallel.
type LambertConformalConic1SP struct {
	Params
}

func (l LambertConformalConic1SP) core() lccCore {
	e := l.Ellipsoid.Eccentricity()
	phi0 := l.LatitudeOfOrigin
	n := math.Sin(phi0)
	t0 := lccT(e, phi0)
	m0 := lccM(e, phi0)
	a := l.Ellipsoid.A()
	f := m0 / (n * math.Pow(t0, n))
	rho0 := a * f * l.ScaleFactor * math.Pow(t0, n)
	return lccCore{Params: l.Params, n: n, f: f, rho0: rho0}
}

func (l LambertConformalConic1SP) Transform(p op.Point) (op.Point, error) {
	return l.core().forward(p)
}

func (l LambertConformalConic1SP) Inverse() (op.CoordinateOperation, error) {
	return lccInverse{lccCore: l.core(), forward: l}, nil
}

func (l LambertConformalConic1SP) Precision() float64 { return 0.001 }
func (l LambertConformalConic1SP) IsIdentity() bool   { return false }
func (l LambertConformalConic1SP) Kind() op.Kind      { return op.KindProjection }

func (l LambertConformalConic1SP) Equal(other op.CoordinateOperation) bool {
	o, ok := other.(LambertConformalConic1SP)
	return ok && o.Params == l.Params
}

// LambertConformalConic2SP implements EPSG method 9802: two standard
// parallels (StandardParallel1/2) and a false-origin latitude
// (LatitudeOfOrigin) rather than a scale factor.
type LambertConformalConic2SP struct {
	Params
	StandardParallel1 float64 // radians
	StandardParallel2 float64 // radians
}

func (l LambertConformalConic2SP) core() lccCore {
	e := l.Ellipsoid.Eccentricity()
	phi1, phi2, phi0 := l.StandardParallel1, l.StandardParallel2, l.LatitudeOfOrigin
	m1, m2 := lccM(e, phi1), lccM(e, phi2)
	t1, t2, t0 := lccT(e, phi1), lccT(e, phi2), lccT(e, phi0)

	var n float64
	if phi1 == phi2 {
		n = math.Sin(phi1)
	} else {
		n = (math.Log(m1) - math.Log(m2)) / (math.Log(t1) - math.Log(t2))
	}
	a := l.Ellipsoid.A()
	f := m1 / (n * math.Pow(t1, n))
	rho0 := a * f * math.Pow(t0, n)
	return lccCore{Params: Params{Ellipsoid: l.Ellipsoid, CentralMeridian: l.CentralMeridian, FalseEasting: l.FalseEasting, FalseNorthing: l.FalseNorthing, ScaleFactor: 1}, n: n, f: f, rho0: rho0}
}

func (l LambertConformalConic2SP) Transform(p op.Point) (op.Point, error) {
	return l.core().forward(p)
}

func (l LambertConformalConic2SP) Inverse() (op.CoordinateOperation, error) {
	return lccInverse{lccCore: l.core(), forward: l}, nil
}

func (l LambertConformalConic2SP) Precision() float64 { return 0.001 }
func (l LambertConformalConic2SP) IsIdentity() bool   { return false }
func (l LambertConformalConic2SP) Kind() op.Kind      { return op.KindProjection }

func (l LambertConformalConic2SP) Equal(other op.CoordinateOperation) bool {
	o, ok := other.(LambertConformalConic2SP)
	return ok && o.Params == l.Params && o.StandardParallel1 == l.StandardParallel1 && o.StandardParallel2 == l.StandardParallel2
}

func (c lccCore) forward(p op.Point) (op.Point, error) {
	if len(p) < 2 {
		return nil, ctserr.New(ctserr.IllegalCoordinate, "lambert conformal conic needs at least 2 ordinates, got %d", len(p))
	}
	phi, lambda := p[0], p[1]
	e := c.Ellipsoid.Eccentricity()
	a := c.Ellipsoid.A()
	t := lccT(e, phi)
	rho := a * c.f * c.ScaleFactor * math.Pow(t, c.n)
	theta := c.n * (lambda - c.CentralMeridian)

	out := resizeLike(p, 2)
	out[0] = c.FalseEasting + rho*math.Sin(theta)
	out[1] = c.FalseNorthing + c.rho0 - rho*math.Cos(theta)
	return out, nil
}

type lccInverse struct {
	lccCore
	forward op.CoordinateOperation
}

func (l lccInverse) Transform(p op.Point) (op.Point, error) {
	if len(p) < 2 {
		return nil, ctserr.New(ctserr.IllegalCoordinate, "lambert conformal conic inverse needs at least 2 ordinates, got %d", len(p))
	}
	easting, northing := p[0], p[1]
	e := l.Ellipsoid.Eccentricity()
	a := l.Ellipsoid.A()

	dE := easting - l.FalseEasting
	dN := l.rho0 - (northing - l.FalseNorthing)
	rhoPrime := math.Hypot(dE, dN)
	if l.n < 0 {
		rhoPrime = -rhoPrime
	}
	tPrime := math.Pow(rhoPrime/(a*l.f*l.ScaleFactor), 1/l.n)
	thetaPrime := math.Atan2(dE, dN)

	phi := math.Pi/2 - 2*math.Atan(tPrime)
	for i := 0; i < 10; i++ {
		sinPhi := math.Sin(phi)
		next := math.Pi/2 - 2*math.Atan(tPrime*math.Pow((1-e*sinPhi)/(1+e*sinPhi), e/2))
		delta := next - phi
		phi = next
		if math.Abs(delta) < 1e-12 {
			break
		}
	}
	lambda := thetaPrime/l.n + l.CentralMeridian

	out := resizeLike(p, 2)
	out[0], out[1] = phi, lambda
	return out, nil
}

func (l lccInverse) Inverse() (op.CoordinateOperation, error) {
	return l.forward, nil
}

func (l lccInverse) Precision() float64 { return 0.001 }
func (l lccInverse) IsIdentity() bool   { return false }
func (l lccInverse) Kind() op.Kind      { return op.KindProjection }

func (l lccInverse) Equal(other op.CoordinateOperation) bool {
	o, ok := other.(lccInverse)
	return ok && o.n == l.n && o.f == l.f && o.rho0 == l.rho0 && o.Params == l.Params
}
