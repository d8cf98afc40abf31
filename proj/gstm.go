package proj

import (
	"math"

	"github.com/geocts/ctsgo/ctserr"
	"github.com/geocts/ctsgo/op"
)

// GaussSchreiberTransverseMercator implements EPSG method 9831 (the
// "Reunion" variant historically used on Reunion Island): projects the
// ellipsoid to a conformal sphere first, then applies the spherical
// Transverse Mercator formula, rather than the direct series
// TransverseMercator uses. Distinct from TransverseMercator because the
// two agree only to third order in distance from the central meridian.
type GaussSchreiberTransverseMercator struct {
	Params
}

type gstmConstants struct {
	radius, n0 float64
}

func (g GaussSchreiberTransverseMercator) constants() gstmConstants {
	a := g.Ellipsoid.A()
	e2 := g.Ellipsoid.Eccentricity2()
	phi0 := g.LatitudeOfOrigin
	sinPhi0 := math.Sin(phi0)
	radius := a * math.Sqrt(1-e2) / (1 - e2*sinPhi0*sinPhi0)
	return gstmConstants{radius: radius, n0: meridianArcLength(g.Ellipsoid, 0, phi0)}
}

// conformalLatitude maps geographic latitude onto the conformal sphere
// using the same series as the Oblique Mercator and Stereographic
// projections in this package.
func (g GaussSchreiberTransverseMercator) conformalLatitude(phi float64) float64 {
	e := g.Ellipsoid.Eccentricity()
	sinPhi := math.Sin(phi)
	w := math.Pow((1+sinPhi)/(1-sinPhi)*math.Pow((1-e*sinPhi)/(1+e*sinPhi), e), 0.5)
	return math.Asin((w - 1) / (w + 1))
}

func (g GaussSchreiberTransverseMercator) inverseConformalLatitude(chi float64) float64 {
	e := g.Ellipsoid.Eccentricity()
	phi := chi
	for i := 0; i < 15; i++ {
		sinPhi := math.Sin(phi)
		next := 2*math.Atan(math.Tan(math.Pi/4+chi/2)*math.Pow((1+e*sinPhi)/(1-e*sinPhi), e/2)) - math.Pi/2
		delta := next - phi
		phi = next
		if math.Abs(delta) < 1e-13 {
			break
		}
	}
	return phi
}

func (g GaussSchreiberTransverseMercator) Transform(p op.Point) (op.Point, error) {
	if len(p) < 2 {
		return nil, ctserr.New(ctserr.IllegalCoordinate, "gauss-schreiber transverse mercator needs at least 2 ordinates, got %d", len(p))
	}
	phi, lambda := p[0], p[1]
	k := g.constants()
	chi := g.conformalLatitude(phi)
	chi0 := g.conformalLatitude(g.LatitudeOfOrigin)
	dLambda := lambda - g.CentralMeridian

	b := math.Atan2(math.Sin(dLambda), math.Tan(chi)*math.Cos(chi0)-math.Sin(chi0)*math.Cos(dLambda))
	d := math.Asin(math.Cos(chi) * math.Sin(dLambda) / math.Cos(b))

	out := resizeLike(p, 2)
	out[0] = g.FalseEasting + k.radius*g.ScaleFactor*b
	out[1] = g.FalseNorthing + k.radius*g.ScaleFactor*math.Log(math.Tan(math.Pi/4+d/2)) - k.n0*g.ScaleFactor
	return out, nil
}

func (g GaussSchreiberTransverseMercator) Inverse() (op.CoordinateOperation, error) {
	return gstmInverse{g}, nil
}

func (g GaussSchreiberTransverseMercator) Precision() float64 { return 0.01 }
func (g GaussSchreiberTransverseMercator) IsIdentity() bool   { return false }
func (g GaussSchreiberTransverseMercator) Kind() op.Kind      { return op.KindProjection }

func (g GaussSchreiberTransverseMercator) Equal(other op.CoordinateOperation) bool {
	o, ok := other.(GaussSchreiberTransverseMercator)
	return ok && o.Params == g.Params
}

type gstmInverse struct {
	GaussSchreiberTransverseMercator
}

func (g gstmInverse) Transform(p op.Point) (op.Point, error) {
	if len(p) < 2 {
		return nil, ctserr.New(ctserr.IllegalCoordinate, "gauss-schreiber transverse mercator inverse needs at least 2 ordinates, got %d", len(p))
	}
	k := g.constants()
	chi0 := g.conformalLatitude(g.LatitudeOfOrigin)

	b := (p[0] - g.FalseEasting) / (k.radius * g.ScaleFactor)
	d := 2*math.Atan(math.Exp((p[1]-g.FalseNorthing+k.n0*g.ScaleFactor)/(k.radius*g.ScaleFactor))) - math.Pi/2

	chi := math.Asin(math.Cos(chi0)*math.Sin(d) + math.Sin(chi0)*math.Cos(d)*math.Cos(b))
	dLambda := math.Atan2(math.Sin(b)*math.Cos(d), math.Cos(chi0)*math.Cos(d)*math.Cos(b)-math.Sin(chi0)*math.Sin(d))

	phi := g.inverseConformalLatitude(chi)
	lambda := g.CentralMeridian + dLambda

	out := resizeLike(p, 2)
	out[0], out[1] = phi, lambda
	return out, nil
}

func (g gstmInverse) Inverse() (op.CoordinateOperation, error) {
	return g.GaussSchreiberTransverseMercator, nil
}

func (g gstmInverse) Equal(other op.CoordinateOperation) bool {
	o, ok := other.(gstmInverse)
	return ok && o.Params == g.Params
}
