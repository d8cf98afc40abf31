package proj

import (
	"math"

	"github.com/geocts/ctsgo/ctserr"
	"github.com/geocts/ctsgo/op"
)

// Stereographic implements the (oblique, azimuthal) Stereographic
// projection via the ellipsoid's conformal sphere, EPSG method 9809. The
// polar aspect is the degenerate case LatitudeOfOrigin = +-pi/2.
type Stereographic struct {
	Params
}

type stereographicConstants struct {
	r, n, c, chi0 float64
}

func (s Stereographic) constants() stereographicConstants {
	e := s.Ellipsoid.Eccentricity()
	e2 := s.Ellipsoid.Eccentricity2()
	a := s.Ellipsoid.A()
	phi0 := s.LatitudeOfOrigin

	r := a * math.Sqrt(1-e2) / (1 - e2*math.Sin(phi0)*math.Sin(phi0))
	n := math.Sqrt(1 + e2*math.Pow(math.Cos(phi0), 4)/(1-e2))
	s1 := (1 + math.Sin(phi0)) / (1 - math.Sin(phi0))
	s2 := (1 - e*math.Sin(phi0)) / (1 + e*math.Sin(phi0))
	w1 := math.Pow(s1*math.Pow(s2, e), n)
	sinChi0 := (w1 - 1) / (w1 + 1)
	c := (n + math.Sin(phi0)) * (1 - sinChi0) / ((n - math.Sin(phi0)) * (1 + sinChi0))
	w2 := c * w1
	chi0 := math.Asin((w2 - 1) / (w2 + 1))
	return stereographicConstants{r: r, n: n, c: c, chi0: chi0}
}

func (s Stereographic) conformalLatLon(phi, lambda float64, k stereographicConstants) (chi, lambdaPrime float64) {
	e := s.Ellipsoid.Eccentricity()
	sa := (1 + math.Sin(phi)) / (1 - math.Sin(phi))
	sb := (1 - e*math.Sin(phi)) / (1 + e*math.Sin(phi))
	w := k.c * math.Pow(sa*math.Pow(sb, e), k.n)
	chi = math.Asin((w - 1) / (w + 1))
	lambdaPrime = k.n*(lambda-s.CentralMeridian) + s.CentralMeridian
	return
}

func (s Stereographic) Transform(p op.Point) (op.Point, error) {
	if len(p) < 2 {
		return nil, ctserr.New(ctserr.IllegalCoordinate, "stereographic needs at least 2 ordinates, got %d", len(p))
	}
	k := s.constants()
	chi, lambdaPrime := s.conformalLatLon(p[0], p[1], k)

	dLambda := lambdaPrime - s.CentralMeridian
	b := 1 + math.Sin(chi)*math.Sin(k.chi0) + math.Cos(chi)*math.Cos(k.chi0)*math.Cos(dLambda)
	factor := 2 * k.r * s.ScaleFactor / b

	out := resizeLike(p, 2)
	out[0] = s.FalseEasting + factor*math.Cos(chi)*math.Sin(dLambda)
	out[1] = s.FalseNorthing + factor*(math.Sin(chi)*math.Cos(k.chi0)-math.Cos(chi)*math.Sin(k.chi0)*math.Cos(dLambda))
	return out, nil
}

func (s Stereographic) Inverse() (op.CoordinateOperation, error) {
	return stereographicInverse{s}, nil
}

func (s Stereographic) Precision() float64 { return 0.001 }
func (s Stereographic) IsIdentity() bool   { return false }
func (s Stereographic) Kind() op.Kind      { return op.KindProjection }

func (s Stereographic) Equal(other op.CoordinateOperation) bool {
	o, ok := other.(Stereographic)
	return ok && o.Params == s.Params
}

type stereographicInverse struct {
	Stereographic
}

func (s stereographicInverse) Transform(p op.Point) (op.Point, error) {
	if len(p) < 2 {
		return nil, ctserr.New(ctserr.IllegalCoordinate, "stereographic inverse needs at least 2 ordinates, got %d", len(p))
	}
	k := s.constants()
	dE := p[0] - s.FalseEasting
	dN := p[1] - s.FalseNorthing
	rho := math.Hypot(dE, dN)
	if rho == 0 {
		out := resizeLike(p, 2)
		out[0], out[1] = s.LatitudeOfOrigin, s.CentralMeridian
		return out, nil
	}
	c := 2 * math.Atan2(rho, 2*k.r*s.ScaleFactor)
	chi := math.Asin(math.Cos(c)*math.Sin(k.chi0) + dN*math.Sin(c)*math.Cos(k.chi0)/rho)
	lambdaPrime := s.CentralMeridian + math.Atan2(dE*math.Sin(c), rho*math.Cos(k.chi0)*math.Cos(c)-dN*math.Sin(k.chi0)*math.Sin(c))

	e := s.Ellipsoid.Eccentricity()
	phi := chi
	for i := 0; i < 15; i++ {
		sinPhi := math.Sin(phi)
		next := 2*math.Atan(math.Tan(math.Pi/4+chi/2)*math.Pow((1+e*sinPhi)/(1-e*sinPhi), e/2)) - math.Pi/2
		delta := next - phi
		phi = next
		if math.Abs(delta) < 1e-12 {
			break
		}
	}
	lambda := (lambdaPrime-s.CentralMeridian)/k.n + s.CentralMeridian

	out := resizeLike(p, 2)
	out[0], out[1] = phi, lambda
	return out, nil
}

func (s stereographicInverse) Inverse() (op.CoordinateOperation, error) { return s.Stereographic, nil }

func (s stereographicInverse) Equal(other op.CoordinateOperation) bool {
	o, ok := other.(stereographicInverse)
	return ok && o.Params == s.Params
}
