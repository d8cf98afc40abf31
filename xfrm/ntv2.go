package xfrm

import (
	"math"

	"github.com/geocts/ctsgo/ctserr"
	"github.com/geocts/ctsgo/grid"
	"github.com/geocts/ctsgo/op"
)

// NTv2GridShift implements the grid-based 2D datum shift of spec.md §4.3:
// look up the interpolated (lat_shift, lon_shift) at the current point and
// add it. Operates on geographic coordinates (phi, lambda, [h]) radians.
type NTv2GridShift struct {
	Grid *grid.NTv2Grid
	Name string // grid file identity, used by Equal
	Prec float64
}

func (n NTv2GridShift) Transform(p op.Point) (op.Point, error) {
	if len(p) < 2 {
		return nil, ctserr.New(ctserr.IllegalCoordinate, "ntv2 grid shift needs at least 2 ordinates, got %d", len(p))
	}
	dLat, dLon, ok := n.Grid.Lookup(p[0], p[1])
	if !ok {
		return nil, ctserr.New(ctserr.OutOfExtent, "point (%.6f, %.6f) falls outside the %s grid", p[0], p[1], n.Name)
	}
	out := p.Clone()
	out[0] += dLat
	out[1] += dLon
	return out, nil
}

func (n NTv2GridShift) Inverse() (op.CoordinateOperation, error) {
	return ntv2Inverse{n}, nil
}

func (n NTv2GridShift) Precision() float64 { return n.Prec }
func (n NTv2GridShift) IsIdentity() bool   { return false }
func (n NTv2GridShift) Kind() op.Kind      { return op.KindNTv2 }

func (n NTv2GridShift) Equal(other op.CoordinateOperation) bool {
	o, ok := other.(NTv2GridShift)
	return ok && o.Name == n.Name
}

// ntv2Inverse recovers the source point by iterating the forward shift
// against a moving estimate, per spec.md §4.3: start target=source, apply
// the forward shift, compare to the known source, adjust by the residual,
// repeat until the positional change is below tolerance or maxIter is hit.
type ntv2Inverse struct {
	NTv2GridShift
}

const (
	ntv2InverseTolerance = 1e-10 // radians
	ntv2InverseMaxIter   = 10
)

func (n ntv2Inverse) Transform(p op.Point) (op.Point, error) {
	if len(p) < 2 {
		return nil, ctserr.New(ctserr.IllegalCoordinate, "ntv2 grid shift inverse needs at least 2 ordinates, got %d", len(p))
	}
	sourceLat, sourceLon := p[0], p[1]
	lat, lon := sourceLat, sourceLon

	for i := 0; i < ntv2InverseMaxIter; i++ {
		dLat, dLon, ok := n.Grid.Lookup(lat, lon)
		if !ok {
			return nil, ctserr.New(ctserr.OutOfExtent, "point (%.6f, %.6f) falls outside the %s grid", lat, lon, n.Name)
		}
		residualLat := sourceLat - (lat + dLat)
		residualLon := sourceLon - (lon + dLon)
		lat += residualLat
		lon += residualLon
		if math.Abs(residualLat) < ntv2InverseTolerance && math.Abs(residualLon) < ntv2InverseTolerance {
			out := p.Clone()
			out[0], out[1] = lat, lon
			return out, nil
		}
	}
	return nil, ctserr.New(ctserr.TooManyIterations, "ntv2 grid shift inverse did not converge within %d iterations", ntv2InverseMaxIter)
}

func (n ntv2Inverse) Inverse() (op.CoordinateOperation, error) { return n.NTv2GridShift, nil }

func (n ntv2Inverse) Equal(other op.CoordinateOperation) bool {
	o, ok := other.(ntv2Inverse)
	return ok && o.Name == n.Name
}
