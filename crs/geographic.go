package crs

import (
	"github.com/geocts/ctsgo/datum"
	"github.com/geocts/ctsgo/op"
	"github.com/geocts/ctsgo/unit"
)

// GeographicCRS is a Geographic2D or Geographic3D CRS: (latitude, longitude,
// [ellipsoidal height]) in the datum's own ellipsoid and prime meridian.
// Dim3D selects which of the two variants this value represents; the two
// share every other field so a 2D CRS can be lifted to 3D (or vice versa)
// by flipping one bool rather than duplicating the type.
type GeographicCRS struct {
	Name       string
	D          datum.GeodeticDatum
	Dim3D      bool
	AngleUnit  unit.Unit // native lat/lon unit, e.g. unit.Degree
	HeightUnit unit.Unit // native height unit; only consulted when Dim3D
	Extent     datum.GeographicExtent
}

func (g GeographicCRS) Kind() Kind {
	if g.Dim3D {
		return KindGeographic3D
	}
	return KindGeographic2D
}

func (g GeographicCRS) Datum() datum.GeodeticDatum { return g.D }

// nativeExtent converts g.Extent (always stored in degrees) into g's own
// AngleUnit, since CheckInExtent compares against ordinates already
// expressed in the CRS's native unit.
func (g GeographicCRS) nativeExtent() (op.Rectangle, error) {
	minLat, err := unit.Convert(g.Extent.MinLatDeg, unit.Degree, g.AngleUnit)
	if err != nil {
		return op.Rectangle{}, err
	}
	maxLat, err := unit.Convert(g.Extent.MaxLatDeg, unit.Degree, g.AngleUnit)
	if err != nil {
		return op.Rectangle{}, err
	}
	minLon, err := unit.Convert(g.Extent.MinLonDeg, unit.Degree, g.AngleUnit)
	if err != nil {
		return op.Rectangle{}, err
	}
	maxLon, err := unit.Convert(g.Extent.MaxLonDeg, unit.Degree, g.AngleUnit)
	if err != nil {
		return op.Rectangle{}, err
	}
	return op.Rectangle{MinX: minLat, MaxX: maxLat, MinY: minLon, MaxY: maxLon}, nil
}

func (g GeographicCRS) axisUnits() (source, target []unit.Unit) {
	source = []unit.Unit{g.AngleUnit, g.AngleUnit}
	target = []unit.Unit{unit.Radian, unit.Radian}
	if g.Dim3D {
		source = append(source, g.HeightUnit)
		target = append(target, unit.Metre)
	}
	return
}

// ToGeographic validates the native extent and converts lat/lon (and
// height, for the 3D variant) to radians/metres in this CRS's own datum
// and prime meridian; crossing to another datum or prime meridian is the
// planner's job.
func (g GeographicCRS) ToGeographic() (op.CoordinateOperation, error) {
	extent, err := g.nativeExtent()
	if err != nil {
		return nil, err
	}
	source, target := g.axisUnits()
	members := []op.CoordinateOperation{
		op.CheckInExtent{Bounds: extent},
		op.UnitConversion{Source: source, Target: target},
	}
	return op.NewSequence(members), nil
}

func (g GeographicCRS) FromGeographic() (op.CoordinateOperation, error) {
	to, err := g.ToGeographic()
	if err != nil {
		return nil, err
	}
	return to.Inverse()
}
