package proj

import (
	"math"

	"github.com/geocts/ctsgo/ctserr"
	"github.com/geocts/ctsgo/op"
)

// ObliqueMercator implements the Hotine Oblique Mercator, Azimuth Centre
// variant (EPSG method 9815): the false easting/northing are applied at
// the projection centre rather than at the natural origin, which is the
// variant most commonly used for Swiss- and Malaysian-style rectified
// skew grids.
type ObliqueMercator struct {
	Params
	AzimuthRad            float64 // azimuth of the initial line through the projection centre
	RectifiedGridAngleRad float64 // angle from rectified grid to skew (oblique) grid, usually == AzimuthRad
}

type obliqueMercatorConstants struct {
	a, b, lambdaC, gamma0, e, bigE, uc float64
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

func (om ObliqueMercator) constants() obliqueMercatorConstants {
	e := om.Ellipsoid.Eccentricity()
	e2 := om.Ellipsoid.Eccentricity2()
	a := om.Ellipsoid.A()
	phi0 := om.LatitudeOfOrigin
	kc := om.ScaleFactor

	sinPhi0, cosPhi0 := math.Sin(phi0), math.Cos(phi0)
	bigB := math.Sqrt(1 + e2*math.Pow(cosPhi0, 4)/(1-e2))
	bigA := a * bigB * kc * math.Sqrt(1-e2) / (1 - e2*sinPhi0*sinPhi0)
	t0 := math.Tan(math.Pi/4-phi0/2) / math.Pow((1-e*sinPhi0)/(1+e*sinPhi0), e/2)
	d := bigB * math.Sqrt(1-e2) / (cosPhi0 * math.Sqrt(1-e2*sinPhi0*sinPhi0))
	if d < 1 {
		d = 1
	}
	f := d + math.Sqrt(d*d-1)*sign(phi0)
	bigE := f * math.Pow(t0, bigB)
	g := (f - 1/f) / 2
	gamma0 := math.Asin(math.Sin(om.AzimuthRad) / d)
	lambdaC := om.CentralMeridian - math.Asin(g*math.Tan(gamma0))/bigB
	uc := (bigA / bigB) * math.Atan2(math.Sqrt(d*d-1), math.Cos(om.AzimuthRad)) * sign(phi0)

	return obliqueMercatorConstants{a: bigA, b: bigB, lambdaC: lambdaC, gamma0: gamma0, e: e, bigE: bigE, uc: uc}
}

func (om ObliqueMercator) Transform(p op.Point) (op.Point, error) {
	if len(p) < 2 {
		return nil, ctserr.New(ctserr.IllegalCoordinate, "oblique mercator needs at least 2 ordinates, got %d", len(p))
	}
	phi, lambda := p[0], p[1]
	k := om.constants()

	t := math.Tan(math.Pi/4-phi/2) / math.Pow((1-k.e*math.Sin(phi))/(1+k.e*math.Sin(phi)), k.e/2)
	q := k.bigE / math.Pow(t, k.b)
	s := (q - 1/q) / 2
	bigT := (q + 1/q) / 2
	v := math.Sin(k.b * (lambda - k.lambdaC))
	u := (-v*math.Cos(k.gamma0) + s*math.Sin(k.gamma0)) / bigT
	littleV := k.a * math.Log((1-u)/(1+u)) / (2 * k.b)
	littleU := k.a * math.Atan2(s*math.Cos(k.gamma0)+v*math.Sin(k.gamma0), math.Cos(k.b*(lambda-k.lambdaC))) / k.b

	gammaC := om.RectifiedGridAngleRad
	out := resizeLike(p, 2)
	out[0] = om.FalseEasting + littleV*math.Cos(gammaC) + (littleU-k.uc)*math.Sin(gammaC)
	out[1] = om.FalseNorthing + littleV*math.Sin(gammaC) - (littleU-k.uc)*math.Cos(gammaC)
	return out, nil
}

func (om ObliqueMercator) Inverse() (op.CoordinateOperation, error) {
	return obliqueMercatorInverse{om}, nil
}

func (om ObliqueMercator) Precision() float64 { return 0.01 }
func (om ObliqueMercator) IsIdentity() bool   { return false }
func (om ObliqueMercator) Kind() op.Kind      { return op.KindProjection }

func (om ObliqueMercator) Equal(other op.CoordinateOperation) bool {
	o, ok := other.(ObliqueMercator)
	return ok && o.Params == om.Params && o.AzimuthRad == om.AzimuthRad && o.RectifiedGridAngleRad == om.RectifiedGridAngleRad
}

type obliqueMercatorInverse struct {
	ObliqueMercator
}

func (om obliqueMercatorInverse) Transform(p op.Point) (op.Point, error) {
	if len(p) < 2 {
		return nil, ctserr.New(ctserr.IllegalCoordinate, "oblique mercator inverse needs at least 2 ordinates, got %d", len(p))
	}
	k := om.constants()
	gammaC := om.RectifiedGridAngleRad

	dE := p[0] - om.FalseEasting
	dN := p[1] - om.FalseNorthing
	vPrime := dE*math.Cos(gammaC) - dN*math.Sin(gammaC)
	uPrime := dE*math.Sin(gammaC) + dN*math.Cos(gammaC) + k.uc

	qPrime := math.Exp(-k.b * vPrime / k.a)
	sPrime := (qPrime - 1/qPrime) / 2
	tPrime := (qPrime + 1/qPrime) / 2
	vCap := math.Sin(k.b * uPrime / k.a)
	uCap := (vCap*math.Cos(k.gamma0) + sPrime*math.Sin(k.gamma0)) / tPrime
	tCap := math.Pow(k.bigE/math.Sqrt((1+uCap)/(1-uCap)), 1/k.b)

	chi := math.Pi/2 - 2*math.Atan(tCap)
	phi := chi
	for i := 0; i < 15; i++ {
		sinPhi := math.Sin(phi)
		next := math.Pi/2 - 2*math.Atan(tCap*math.Pow((1-k.e*sinPhi)/(1+k.e*sinPhi), k.e/2))
		delta := next - phi
		phi = next
		if math.Abs(delta) < 1e-13 {
			break
		}
	}
	lambda := k.lambdaC - math.Atan2(sPrime*math.Cos(k.gamma0)-vCap*math.Sin(k.gamma0), math.Cos(k.b*uPrime/k.a))/k.b

	out := resizeLike(p, 2)
	out[0], out[1] = phi, lambda
	return out, nil
}

func (om obliqueMercatorInverse) Inverse() (op.CoordinateOperation, error) { return om.ObliqueMercator, nil }

func (om obliqueMercatorInverse) Equal(other op.CoordinateOperation) bool {
	o, ok := other.(obliqueMercatorInverse)
	return ok && o.Params == om.Params && o.AzimuthRad == om.AzimuthRad && o.RectifiedGridAngleRad == om.RectifiedGridAngleRad
}
