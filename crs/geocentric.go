package crs

import (
	"github.com/geocts/ctsgo/datum"
	"github.com/geocts/ctsgo/op"
	"github.com/geocts/ctsgo/unit"
)

// GeocentricCRS is 3D X,Y,Z in the datum's own frame, in LengthUnit.
type GeocentricCRS struct {
	Name       string
	D          datum.GeodeticDatum
	LengthUnit unit.Unit
}

func (g GeocentricCRS) Kind() Kind                 { return KindGeocentric }
func (g GeocentricCRS) Datum() datum.GeodeticDatum { return g.D }

func (g GeocentricCRS) ToGeographic() (op.CoordinateOperation, error) {
	members := []op.CoordinateOperation{
		op.UnitConversion{
			Source: []unit.Unit{g.LengthUnit, g.LengthUnit, g.LengthUnit},
			Target: []unit.Unit{unit.Metre, unit.Metre, unit.Metre},
		},
		op.Geocentric2Geographic{Ellipsoid: g.D.Ellipsoid},
	}
	return op.NewSequence(members), nil
}

func (g GeocentricCRS) FromGeographic() (op.CoordinateOperation, error) {
	to, err := g.ToGeographic()
	if err != nil {
		return nil, err
	}
	return to.Inverse()
}
