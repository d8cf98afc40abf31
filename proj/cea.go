package proj

import (
	"math"

	"github.com/geocts/ctsgo/ctserr"
	"github.com/geocts/ctsgo/op"
)

// CylindricalEqualArea implements EPSG method 9835 (ellipsoidal Lambert
// Cylindrical Equal Area / normal aspect): the standard parallel
// (LatitudeOfOrigin) controls the single axis of distortion; area is
// preserved everywhere.
type CylindricalEqualArea struct {
	Params
}

func (cea CylindricalEqualArea) qFunc(phi float64) float64 {
	e := cea.Ellipsoid.Eccentricity()
	sinPhi := math.Sin(phi)
	return (1 - e*e) * (sinPhi/(1-e*e*sinPhi*sinPhi) - (1/(2*e))*math.Log((1-e*sinPhi)/(1+e*sinPhi)))
}

func (cea CylindricalEqualArea) Transform(p op.Point) (op.Point, error) {
	if len(p) < 2 {
		return nil, ctserr.New(ctserr.IllegalCoordinate, "cylindrical equal area needs at least 2 ordinates, got %d", len(p))
	}
	phi, lambda := p[0], p[1]
	a := cea.Ellipsoid.A()
	e2 := cea.Ellipsoid.Eccentricity2()
	phi0 := cea.LatitudeOfOrigin
	sinPhi0 := math.Sin(phi0)
	k0 := math.Cos(phi0) / math.Sqrt(1-e2*sinPhi0*sinPhi0)

	out := resizeLike(p, 2)
	out[0] = cea.FalseEasting + a*k0*(lambda-cea.CentralMeridian)
	out[1] = cea.FalseNorthing + a*cea.qFunc(phi)/(2*k0)
	return out, nil
}

func (cea CylindricalEqualArea) Inverse() (op.CoordinateOperation, error) {
	return cylindricalEqualAreaInverse{cea}, nil
}

func (cea CylindricalEqualArea) Precision() float64 { return 0.01 }
func (cea CylindricalEqualArea) IsIdentity() bool   { return false }
func (cea CylindricalEqualArea) Kind() op.Kind      { return op.KindProjection }

func (cea CylindricalEqualArea) Equal(other op.CoordinateOperation) bool {
	o, ok := other.(CylindricalEqualArea)
	return ok && o.Params == cea.Params
}

type cylindricalEqualAreaInverse struct {
	CylindricalEqualArea
}

func (cea cylindricalEqualAreaInverse) Transform(p op.Point) (op.Point, error) {
	if len(p) < 2 {
		return nil, ctserr.New(ctserr.IllegalCoordinate, "cylindrical equal area inverse needs at least 2 ordinates, got %d", len(p))
	}
	a := cea.Ellipsoid.A()
	e2 := cea.Ellipsoid.Eccentricity2()
	e := cea.Ellipsoid.Eccentricity()
	phi0 := cea.LatitudeOfOrigin
	sinPhi0 := math.Sin(phi0)
	k0 := math.Cos(phi0) / math.Sqrt(1-e2*sinPhi0*sinPhi0)

	q := 2 * (p[1] - cea.FalseNorthing) * k0 / a
	phi := math.Asin(q / 2)
	for i := 0; i < 15; i++ {
		sinPhi := math.Sin(phi)
		next := phi + (1-e2*sinPhi*sinPhi)*(1-e2*sinPhi*sinPhi)/(2*math.Cos(phi))*(q/(1-e2)-sinPhi/(1-e2*sinPhi*sinPhi)+1/(2*e)*math.Log((1-e*sinPhi)/(1+e*sinPhi)))
		delta := next - phi
		phi = next
		if math.Abs(delta) < 1e-13 {
			break
		}
	}
	lambda := cea.CentralMeridian + (p[0]-cea.FalseEasting)/(a*k0)

	out := resizeLike(p, 2)
	out[0], out[1] = phi, lambda
	return out, nil
}

func (cea cylindricalEqualAreaInverse) Inverse() (op.CoordinateOperation, error) {
	return cea.CylindricalEqualArea, nil
}

func (cea cylindricalEqualAreaInverse) Equal(other op.CoordinateOperation) bool {
	o, ok := other.(cylindricalEqualAreaInverse)
	return ok && o.Params == cea.Params
}
