package xfrm

import (
	"github.com/geocts/ctsgo/ctserr"
	"github.com/geocts/ctsgo/grid"
	"github.com/geocts/ctsgo/op"
)

// GeoidHeightCorrection implements the "evaluate geoid N at (phi,lambda)"
// step of spec.md §4.5's CompoundCRS vertical handling: given a point
// (phi, lambda, h, ...) radians/metres, it adds (ToEllipsoidal=true) or
// subtracts (false) the grid's undulation N at (phi, lambda) to/from h,
// per h_ellipsoidal = H_orthometric + N. Meant to sit between a
// MemorizeCoordinate and LoadMemorizeCoordinate pair so phi/lambda survive
// alongside the corrected height.
type GeoidHeightCorrection struct {
	Grid          *grid.GeoidGrid
	ToEllipsoidal bool
	Prec          float64
}

func (g GeoidHeightCorrection) Transform(p op.Point) (op.Point, error) {
	if len(p) < 3 {
		return nil, ctserr.New(ctserr.IllegalCoordinate, "geoid height correction needs (phi,lambda,h), got %d ordinates", len(p))
	}
	n, ok := g.Grid.Interpolate(p[0]*radToDeg, p[1]*radToDeg)
	if !ok {
		return nil, ctserr.New(ctserr.OutOfExtent, "point (%.6f, %.6f) falls outside the geoid grid", p[0], p[1])
	}
	out := p.Clone()
	if g.ToEllipsoidal {
		out[2] += n
	} else {
		out[2] -= n
	}
	return out, nil
}

func (g GeoidHeightCorrection) Inverse() (op.CoordinateOperation, error) {
	return GeoidHeightCorrection{Grid: g.Grid, ToEllipsoidal: !g.ToEllipsoidal, Prec: g.Prec}, nil
}

func (g GeoidHeightCorrection) Precision() float64 { return g.Prec }
func (g GeoidHeightCorrection) IsIdentity() bool   { return false }
func (g GeoidHeightCorrection) Kind() op.Kind      { return op.KindGeoidGrid }

func (g GeoidHeightCorrection) Equal(other op.CoordinateOperation) bool {
	o, ok := other.(GeoidHeightCorrection)
	return ok && o.Grid == g.Grid && o.ToEllipsoidal == g.ToEllipsoidal
}
