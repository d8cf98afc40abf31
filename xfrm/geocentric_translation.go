// Package xfrm implements component I: datum transformations operating on
// 3D geocentric coordinates (GeocentricTranslation, SevenParameterTransformation,
// NTv2 grid shift, the French geocentric grid, and vertical geoid grids).
package xfrm

import (
	"github.com/geocts/ctsgo/ctserr"
	"github.com/geocts/ctsgo/op"
	"github.com/golang/geo/r3"
)

// GeocentricTranslation implements the 3-parameter datum shift p' = p + t.
type GeocentricTranslation struct {
	Tx, Ty, Tz float64 // metres
	Prec       float64
}

func (g GeocentricTranslation) vector() r3.Vector {
	return r3.Vector{X: g.Tx, Y: g.Ty, Z: g.Tz}
}

func (g GeocentricTranslation) Transform(p op.Point) (op.Point, error) {
	if len(p) < 3 {
		return nil, ctserr.New(ctserr.IllegalCoordinate, "geocentric translation needs 3 ordinates, got %d", len(p))
	}
	shifted := r3.Vector{X: p[0], Y: p[1], Z: p[2]}.Add(g.vector())
	out := p.Clone()
	out[0], out[1], out[2] = shifted.X, shifted.Y, shifted.Z
	return out, nil
}

func (g GeocentricTranslation) Inverse() (op.CoordinateOperation, error) {
	inv := g.vector().Mul(-1)
	return GeocentricTranslation{Tx: inv.X, Ty: inv.Y, Tz: inv.Z, Prec: g.Prec}, nil
}

func (g GeocentricTranslation) Precision() float64 { return g.Prec }
func (g GeocentricTranslation) IsIdentity() bool   { return g.Tx == 0 && g.Ty == 0 && g.Tz == 0 }
func (g GeocentricTranslation) Kind() op.Kind      { return op.KindGeocentricTranslation }

func (g GeocentricTranslation) Equal(other op.CoordinateOperation) bool {
	o, ok := other.(GeocentricTranslation)
	return ok && o == g
}
