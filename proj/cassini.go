package proj

import (
	"math"

	"github.com/geocts/ctsgo/ctserr"
	"github.com/geocts/ctsgo/op"
)

// CassiniSoldner implements EPSG method 9806, a transverse cylindrical
// projection historically used for large-scale cadastral grids (e.g. the
// pre-Lambert French cadastre). Equidistant along the central meridian,
// not conformal.
type CassiniSoldner struct {
	Params
}

func (c CassiniSoldner) Transform(p op.Point) (op.Point, error) {
	if len(p) < 2 {
		return nil, ctserr.New(ctserr.IllegalCoordinate, "cassini-soldner needs at least 2 ordinates, got %d", len(p))
	}
	phi, lambda := p[0], p[1]
	a := c.Ellipsoid.A()
	e2 := c.Ellipsoid.Eccentricity2()

	sinPhi, cosPhi, tanPhi := math.Sin(phi), math.Cos(phi), math.Tan(phi)
	nu := a / math.Sqrt(1-e2*sinPhi*sinPhi)
	eta2 := e2 * cosPhi * cosPhi / (1 - e2) // second-eccentricity-squared term C
	t := tanPhi * tanPhi
	aTerm := (lambda - c.CentralMeridian) * cosPhi
	a2, a3, a4, a5 := aTerm*aTerm, aTerm*aTerm*aTerm, aTerm*aTerm*aTerm*aTerm, aTerm*aTerm*aTerm*aTerm*aTerm

	m := meridianArcLength(c.Ellipsoid, c.LatitudeOfOrigin, phi)

	x := nu*(aTerm-t*a3/6-(8-t+8*eta2)*t*a5/120)
	northing := m + nu*tanPhi*a2/2 + nu*tanPhi*(5-t+6*eta2)*a4/24

	out := resizeLike(p, 2)
	out[0] = c.FalseEasting + x
	out[1] = c.FalseNorthing + northing
	return out, nil
}

func (c CassiniSoldner) Inverse() (op.CoordinateOperation, error) {
	return cassiniSoldnerInverse{c}, nil
}

func (c CassiniSoldner) Precision() float64 { return 0.01 }
func (c CassiniSoldner) IsIdentity() bool   { return false }
func (c CassiniSoldner) Kind() op.Kind      { return op.KindProjection }

func (c CassiniSoldner) Equal(other op.CoordinateOperation) bool {
	o, ok := other.(CassiniSoldner)
	return ok && o.Params == c.Params
}

type cassiniSoldnerInverse struct {
	CassiniSoldner
}

// Transform follows the standard Cassini-Soldner inverse series (OS Guide
// to Coordinate Systems / EPSG 9806): recover the foot-point latitude from
// the northing's meridian arc, then expand in the easting.
func (c cassiniSoldnerInverse) Transform(p op.Point) (op.Point, error) {
	if len(p) < 2 {
		return nil, ctserr.New(ctserr.IllegalCoordinate, "cassini-soldner inverse needs at least 2 ordinates, got %d", len(p))
	}
	a := c.Ellipsoid.A()
	e2 := c.Ellipsoid.Eccentricity2()
	x := p[0] - c.FalseEasting
	y := p[1] - c.FalseNorthing

	phi1 := c.LatitudeOfOrigin + y/a
	for i := 0; i < 15; i++ {
		m := meridianArcLength(c.Ellipsoid, c.LatitudeOfOrigin, phi1)
		delta := (y - m) / a
		phi1 += delta
		if math.Abs(delta) < 1e-13 {
			break
		}
	}

	sinPhi1, cosPhi1, tanPhi1 := math.Sin(phi1), math.Cos(phi1), math.Tan(phi1)
	nu1 := a / math.Sqrt(1-e2*sinPhi1*sinPhi1)
	rho1 := a * (1 - e2) / math.Pow(1-e2*sinPhi1*sinPhi1, 1.5)
	t1 := tanPhi1 * tanPhi1
	d := x / nu1
	d2, d3, d4 := d*d, d*d*d, d*d*d*d

	phi := phi1 - (nu1*tanPhi1/rho1)*(d2/2-(1+3*t1)*d4/24)
	lambda := c.CentralMeridian + (d-t1*d3/3+(1+3*t1)*t1*d4*d/15)/cosPhi1

	out := resizeLike(p, 2)
	out[0], out[1] = phi, lambda
	return out, nil
}

func (c cassiniSoldnerInverse) Inverse() (op.CoordinateOperation, error) { return c.CassiniSoldner, nil }

func (c cassiniSoldnerInverse) Equal(other op.CoordinateOperation) bool {
	o, ok := other.(cassiniSoldnerInverse)
	return ok && o.Params == c.Params
}
