package proj

import (
	"math"

	"github.com/geocts/ctsgo/ctserr"
	"github.com/geocts/ctsgo/op"
)

// LambertAzimuthalEqualArea implements EPSG method 9820 in its general
// (oblique) ellipsoidal form; the polar and equatorial aspects are the
// degenerate cases LatitudeOfOrigin = +-pi/2 or 0 respectively.
type LambertAzimuthalEqualArea struct {
	Params
}

func (l LambertAzimuthalEqualArea) authalicLatitude(phi float64) (q, beta float64) {
	e := l.Ellipsoid.Eccentricity()
	e2 := l.Ellipsoid.Eccentricity2()
	sinPhi := math.Sin(phi)
	q = (1 - e2) * (sinPhi/(1-e2*sinPhi*sinPhi) - (1/(2*e))*math.Log((1-e*sinPhi)/(1+e*sinPhi)))
	qp := (1 - e2) * (1/(1-e2) - (1/(2*e))*math.Log((1-e)/(1+e)))
	beta = math.Asin(q / qp)
	return
}

func (l LambertAzimuthalEqualArea) Transform(p op.Point) (op.Point, error) {
	if len(p) < 2 {
		return nil, ctserr.New(ctserr.IllegalCoordinate, "lambert azimuthal equal area needs at least 2 ordinates, got %d", len(p))
	}
	phi, lambda := p[0], p[1]
	a := l.Ellipsoid.A()
	e2 := l.Ellipsoid.Eccentricity2()
	phi0 := l.LatitudeOfOrigin

	_, beta0 := l.authalicLatitude(phi0)
	_, beta := l.authalicLatitude(phi)

	e := l.Ellipsoid.Eccentricity()
	sinPhi0 := math.Sin(phi0)
	qp := (1 - e2) * (1/(1-e2) - (1/(2*e))*math.Log((1-e)/(1+e)))
	rq := a * math.Sqrt(qp/2)
	m0 := math.Cos(phi0) / math.Sqrt(1-e2*sinPhi0*sinPhi0)
	d := a * m0 / (rq * math.Cos(beta0))

	dLambda := lambda - l.CentralMeridian
	bigB := rq * math.Sqrt(2/(1+math.Sin(beta0)*math.Sin(beta)+math.Cos(beta0)*math.Cos(beta)*math.Cos(dLambda)))

	out := resizeLike(p, 2)
	out[0] = l.FalseEasting + bigB*d*math.Cos(beta)*math.Sin(dLambda)
	out[1] = l.FalseNorthing + (bigB/d)*(math.Cos(beta0)*math.Sin(beta)-math.Sin(beta0)*math.Cos(beta)*math.Cos(dLambda))
	return out, nil
}

func (l LambertAzimuthalEqualArea) Inverse() (op.CoordinateOperation, error) {
	return laeaInverse{l}, nil
}

func (l LambertAzimuthalEqualArea) Precision() float64 { return 0.01 }
func (l LambertAzimuthalEqualArea) IsIdentity() bool   { return false }
func (l LambertAzimuthalEqualArea) Kind() op.Kind      { return op.KindProjection }

func (l LambertAzimuthalEqualArea) Equal(other op.CoordinateOperation) bool {
	o, ok := other.(LambertAzimuthalEqualArea)
	return ok && o.Params == l.Params
}

type laeaInverse struct {
	LambertAzimuthalEqualArea
}

func (l laeaInverse) Transform(p op.Point) (op.Point, error) {
	if len(p) < 2 {
		return nil, ctserr.New(ctserr.IllegalCoordinate, "lambert azimuthal equal area inverse needs at least 2 ordinates, got %d", len(p))
	}
	a := l.Ellipsoid.A()
	e := l.Ellipsoid.Eccentricity()
	e2 := l.Ellipsoid.Eccentricity2()
	phi0 := l.LatitudeOfOrigin

	_, beta0 := l.authalicLatitude(phi0)
	sinPhi0 := math.Sin(phi0)
	m0 := math.Cos(phi0) / math.Sqrt(1-e2*sinPhi0*sinPhi0)
	qp := (1 - e2) * (1/(1-e2) - (1/(2*e))*math.Log((1-e)/(1+e)))
	rq := a * math.Sqrt(qp/2)
	d := a * m0 / (rq * math.Cos(beta0))

	dE := p[0] - l.FalseEasting
	dN := p[1] - l.FalseNorthing
	rho := math.Hypot(dE/d, d*dN)
	if rho < 1e-12 {
		out := resizeLike(p, 2)
		out[0], out[1] = phi0, l.CentralMeridian
		return out, nil
	}
	ce := 2 * math.Asin(rho / (2 * rq))
	beta := math.Asin(math.Cos(ce)*math.Sin(beta0) + d*dN*math.Sin(ce)*math.Cos(beta0)/rho)
	lambda := l.CentralMeridian + math.Atan2(dE*math.Sin(ce), d*rho*math.Cos(beta0)*math.Cos(ce)-d*d*dN*math.Sin(beta0)*math.Sin(ce))

	phi := beta
	for i := 0; i < 15; i++ {
		sinPhi := math.Sin(phi)
		next := phi + (1-e2*sinPhi*sinPhi)*(1-e2*sinPhi*sinPhi)/(2*math.Cos(phi)) *
			(math.Sin(beta)/(1-e2) - sinPhi/(1-e2*sinPhi*sinPhi) + (1/(2*e))*math.Log((1-e*sinPhi)/(1+e*sinPhi)))
		delta := next - phi
		phi = next
		if math.Abs(delta) < 1e-13 {
			break
		}
	}

	out := resizeLike(p, 2)
	out[0], out[1] = phi, lambda
	return out, nil
}

func (l laeaInverse) Inverse() (op.CoordinateOperation, error) { return l.LambertAzimuthalEqualArea, nil }

func (l laeaInverse) Equal(other op.CoordinateOperation) bool {
	o, ok := other.(laeaInverse)
	return ok && o.Params == l.Params
}
