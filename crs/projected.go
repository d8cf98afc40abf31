package crs

import (
	"github.com/geocts/ctsgo/datum"
	"github.com/geocts/ctsgo/op"
	"github.com/geocts/ctsgo/unit"
)

// ProjectedCRS is Geographic2D composed with a map projection: easting,
// northing (and an untouched passthrough height, for 3D use) in
// LengthUnit. Projection is always one of the proj package's forward
// operations, which work in radians in / metres out regardless of this
// CRS's own declared LengthUnit, so both converter factories insert a
// UnitConversion to bridge the two.
type ProjectedCRS struct {
	Name       string
	D          datum.GeodeticDatum
	LengthUnit unit.Unit
	Projection op.CoordinateOperation
	Extent     op.Rectangle // already expressed in LengthUnit
}

func (p ProjectedCRS) Kind() Kind                 { return KindProjected }
func (p ProjectedCRS) Datum() datum.GeodeticDatum { return p.D }

func (p ProjectedCRS) ToGeographic() (op.CoordinateOperation, error) {
	inverseProjection, err := p.Projection.Inverse()
	if err != nil {
		return nil, err
	}
	members := []op.CoordinateOperation{
		op.CheckInExtent{Bounds: p.Extent},
		op.UnitConversion{
			Source: []unit.Unit{p.LengthUnit, p.LengthUnit},
			Target: []unit.Unit{unit.Metre, unit.Metre},
		},
		inverseProjection,
	}
	return op.NewSequence(members), nil
}

func (p ProjectedCRS) FromGeographic() (op.CoordinateOperation, error) {
	to, err := p.ToGeographic()
	if err != nil {
		return nil, err
	}
	return to.Inverse()
}
