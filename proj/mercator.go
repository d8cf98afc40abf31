package proj

import (
	"math"

	"github.com/geocts/ctsgo/ctserr"
	"github.com/geocts/ctsgo/op"
)

// Mercator1SP implements EPSG method 9804.
type Mercator1SP struct {
	Params
}

func (m Mercator1SP) Transform(p op.Point) (op.Point, error) {
	if len(p) < 2 {
		return nil, ctserr.New(ctserr.IllegalCoordinate, "mercator needs at least 2 ordinates, got %d", len(p))
	}
	phi, lambda := p[0], p[1]
	a := m.Ellipsoid.A()
	e := m.Ellipsoid.Eccentricity()
	k0 := m.ScaleFactor

	sinPhi := math.Sin(phi)
	easting := m.FalseEasting + a*k0*(lambda-m.CentralMeridian)
	northing := m.FalseNorthing + a*k0*math.Log(math.Tan(math.Pi/4+phi/2)*math.Pow((1-e*sinPhi)/(1+e*sinPhi), e/2))

	out := resizeLike(p, 2)
	out[0], out[1] = easting, northing
	return out, nil
}

func (m Mercator1SP) Inverse() (op.CoordinateOperation, error) {
	return mercator1SPInverse{m}, nil
}

func (m Mercator1SP) Precision() float64 { return 0.001 }
func (m Mercator1SP) IsIdentity() bool   { return false }
func (m Mercator1SP) Kind() op.Kind      { return op.KindProjection }

func (m Mercator1SP) Equal(other op.CoordinateOperation) bool {
	o, ok := other.(Mercator1SP)
	return ok && o.Params == m.Params
}

type mercator1SPInverse struct {
	Mercator1SP
}

func (m mercator1SPInverse) Transform(p op.Point) (op.Point, error) {
	if len(p) < 2 {
		return nil, ctserr.New(ctserr.IllegalCoordinate, "mercator inverse needs at least 2 ordinates, got %d", len(p))
	}
	easting, northing := p[0], p[1]
	a := m.Ellipsoid.A()
	e := m.Ellipsoid.Eccentricity()
	k0 := m.ScaleFactor

	t := math.Exp(-(northing - m.FalseNorthing) / (a * k0))
	phi := math.Pi/2 - 2*math.Atan(t)
	for i := 0; i < 10; i++ {
		sinPhi := math.Sin(phi)
		next := math.Pi/2 - 2*math.Atan(t*math.Pow((1-e*sinPhi)/(1+e*sinPhi), e/2))
		delta := next - phi
		phi = next
		if math.Abs(delta) < 1e-12 {
			break
		}
	}
	lambda := (easting-m.FalseEasting)/(a*k0) + m.CentralMeridian

	out := resizeLike(p, 2)
	out[0], out[1] = phi, lambda
	return out, nil
}

func (m mercator1SPInverse) Inverse() (op.CoordinateOperation, error) { return m.Mercator1SP, nil }

func (m mercator1SPInverse) Equal(other op.CoordinateOperation) bool {
	o, ok := other.(mercator1SPInverse)
	return ok && o.Params == m.Params
}
