package proj

import (
	"math"

	"github.com/geocts/ctsgo/ctserr"
	"github.com/geocts/ctsgo/op"
)

// Polyconic implements the American Polyconic projection (EPSG method
// 9818): every parallel is projected as a circular arc true to scale along
// the central meridian, generalized here to an arbitrary LatitudeOfOrigin
// rather than always the equator.
type Polyconic struct {
	Params
}

func (pc Polyconic) Transform(p op.Point) (op.Point, error) {
	if len(p) < 2 {
		return nil, ctserr.New(ctserr.IllegalCoordinate, "polyconic needs at least 2 ordinates, got %d", len(p))
	}
	phi, lambda := p[0], p[1]
	a := pc.Ellipsoid.A()
	e2 := pc.Ellipsoid.Eccentricity2()
	k0 := pc.ScaleFactor

	dLambda := lambda - pc.CentralMeridian
	// m is the meridian arc measured relative to LatitudeOfOrigin, so it
	// is already M(phi) - M0 in Snyder's notation.
	m := meridianArcLength(pc.Ellipsoid, pc.LatitudeOfOrigin, phi)

	out := resizeLike(p, 2)
	if math.Abs(phi) < 1e-12 {
		out[0] = pc.FalseEasting + k0*a*dLambda
		out[1] = pc.FalseNorthing + k0*m
		return out, nil
	}

	sinPhi := math.Sin(phi)
	n := a / math.Sqrt(1-e2*sinPhi*sinPhi)
	cotPhi := math.Cos(phi) / sinPhi
	l := dLambda * sinPhi

	out[0] = pc.FalseEasting + k0*n*cotPhi*math.Sin(l)
	out[1] = pc.FalseNorthing + k0*(m+n*cotPhi*(1-math.Cos(l)))
	return out, nil
}

func (pc Polyconic) Inverse() (op.CoordinateOperation, error) {
	return polyconicInverse{pc}, nil
}

func (pc Polyconic) Precision() float64 { return 0.01 }
func (pc Polyconic) IsIdentity() bool   { return false }
func (pc Polyconic) Kind() op.Kind      { return op.KindProjection }

func (pc Polyconic) Equal(other op.CoordinateOperation) bool {
	o, ok := other.(Polyconic)
	return ok && o.Params == pc.Params
}

type polyconicInverse struct {
	Polyconic
}

// Transform inverts the polyconic projection numerically: the forward
// mapping has no closed-form inverse, so this runs a 2D Newton iteration
// against Polyconic.Transform itself with a finite-difference Jacobian,
// seeded from the equirectangular approximation.
func (pc polyconicInverse) Transform(p op.Point) (op.Point, error) {
	if len(p) < 2 {
		return nil, ctserr.New(ctserr.IllegalCoordinate, "polyconic inverse needs at least 2 ordinates, got %d", len(p))
	}
	a := pc.Ellipsoid.A()
	x, y := p[0], p[1]

	phi := pc.LatitudeOfOrigin + (y-pc.FalseNorthing)/(pc.ScaleFactor*a)
	lambda := pc.CentralMeridian + (x-pc.FalseEasting)/(pc.ScaleFactor*a*math.Max(math.Cos(phi), 0.1))

	const h = 1e-7
	for i := 0; i < 25; i++ {
		f0, err := pc.Polyconic.Transform(op.Point{phi, lambda})
		if err != nil {
			return nil, err
		}
		fPhi, err := pc.Polyconic.Transform(op.Point{phi + h, lambda})
		if err != nil {
			return nil, err
		}
		fLambda, err := pc.Polyconic.Transform(op.Point{phi, lambda + h})
		if err != nil {
			return nil, err
		}
		dxPhi, dyPhi := (fPhi[0]-f0[0])/h, (fPhi[1]-f0[1])/h
		dxLambda, dyLambda := (fLambda[0]-f0[0])/h, (fLambda[1]-f0[1])/h

		det := dxPhi*dyLambda - dxLambda*dyPhi
		if det == 0 {
			break
		}
		rx, ry := x-f0[0], y-f0[1]
		deltaPhi := (rx*dyLambda - ry*dxLambda) / det
		deltaLambda := (ry*dxPhi - rx*dyPhi) / det
		phi += deltaPhi
		lambda += deltaLambda
		if math.Abs(deltaPhi) < 1e-13 && math.Abs(deltaLambda) < 1e-13 {
			break
		}
	}

	out := resizeLike(p, 2)
	out[0], out[1] = phi, lambda
	return out, nil
}

func (pc polyconicInverse) Inverse() (op.CoordinateOperation, error) { return pc.Polyconic, nil }

func (pc polyconicInverse) Equal(other op.CoordinateOperation) bool {
	o, ok := other.(polyconicInverse)
	return ok && o.Params == pc.Params
}
