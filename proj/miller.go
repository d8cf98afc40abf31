package proj

import (
	"math"

	"github.com/geocts/ctsgo/ctserr"
	"github.com/geocts/ctsgo/op"
)

// MillerCylindrical implements Miller's spherical cylindrical projection,
// always computed on the ellipsoid's authalic sphere radius since the
// original formulation has no ellipsoidal form. Neither conformal nor
// equal-area; chosen historically to reduce Mercator's polar exaggeration.
type MillerCylindrical struct {
	Params
}

func (m MillerCylindrical) radius() float64 {
	// Authalic (equal-area) sphere radius, consistent with how other
	// spherical-only projections in this package borrow ellipsoid scale.
	a, e := m.Ellipsoid.A(), m.Ellipsoid.Eccentricity()
	if e == 0 {
		return a
	}
	e2 := e * e
	qp := (1 - e2) * (1/(1-e2) - (1/(2*e))*math.Log((1-e)/(1+e)))
	return a * math.Sqrt(qp/2)
}

func (m MillerCylindrical) Transform(p op.Point) (op.Point, error) {
	if len(p) < 2 {
		return nil, ctserr.New(ctserr.IllegalCoordinate, "miller cylindrical needs at least 2 ordinates, got %d", len(p))
	}
	phi, lambda := p[0], p[1]
	r := m.radius() * m.ScaleFactor

	out := resizeLike(p, 2)
	out[0] = m.FalseEasting + r*(lambda-m.CentralMeridian)
	out[1] = m.FalseNorthing + r*1.25*math.Log(math.Tan(math.Pi/4+0.4*phi))
	return out, nil
}

func (m MillerCylindrical) Inverse() (op.CoordinateOperation, error) {
	return millerCylindricalInverse{m}, nil
}

func (m MillerCylindrical) Precision() float64 { return 0.01 }
func (m MillerCylindrical) IsIdentity() bool   { return false }
func (m MillerCylindrical) Kind() op.Kind      { return op.KindProjection }

func (m MillerCylindrical) Equal(other op.CoordinateOperation) bool {
	o, ok := other.(MillerCylindrical)
	return ok && o.Params == m.Params
}

type millerCylindricalInverse struct {
	MillerCylindrical
}

func (m millerCylindricalInverse) Transform(p op.Point) (op.Point, error) {
	if len(p) < 2 {
		return nil, ctserr.New(ctserr.IllegalCoordinate, "miller cylindrical inverse needs at least 2 ordinates, got %d", len(p))
	}
	r := m.radius() * m.ScaleFactor

	out := resizeLike(p, 2)
	out[0] = 2.5*math.Atan(math.Exp((p[1]-m.FalseNorthing)/(r*1.25))) - 2.5*math.Pi/4
	out[1] = m.CentralMeridian + (p[0]-m.FalseEasting)/r
	return out, nil
}

func (m millerCylindricalInverse) Inverse() (op.CoordinateOperation, error) {
	return m.MillerCylindrical, nil
}

func (m millerCylindricalInverse) Equal(other op.CoordinateOperation) bool {
	o, ok := other.(millerCylindricalInverse)
	return ok && o.Params == m.Params
}
