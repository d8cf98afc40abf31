package crs

import (
	"github.com/geocts/ctsgo/ctserr"
	"github.com/geocts/ctsgo/datum"
	"github.com/geocts/ctsgo/op"
	"github.com/geocts/ctsgo/unit"
)

// Axis is a vertical CRS's height axis orientation.
type Axis int

const (
	AxisAltitude Axis = iota // up, orthometric or geoidal
	AxisDepth                // down (soundings)
	AxisHeight               // up, ellipsoidal
)

// VerticalCRS is a one-dimensional CRS: a single height ordinate against a
// vertical datum, oriented per Axis. It does not implement GeodeticCRS —
// it has no horizontal position of its own — and is only ever consumed
// through CompoundCRS, which pairs it with a horizontal CRS.
type VerticalCRS struct {
	Name       string
	V          datum.VerticalDatum
	Axis       Axis
	LengthUnit unit.Unit
}

func (v VerticalCRS) Kind() Kind                  { return KindVertical }
func (v VerticalCRS) Datum() datum.VerticalDatum  { return v.V }

// ToCanonical converts a single native height ordinate to metres, up
// positive (i.e. DEPTH is sign-flipped to match ALTITUDE/HEIGHT's
// orientation). This is the "first half" of what the planner's compound
// handling does before consulting a geoid grid.
func (v VerticalCRS) ToCanonical(h float64) (float64, error) {
	metres, err := unit.Convert(h, v.LengthUnit, unit.Metre)
	if err != nil {
		return 0, err
	}
	if v.Axis == AxisDepth {
		metres = -metres
	}
	return metres, nil
}

// FromCanonical is ToCanonical's inverse.
func (v VerticalCRS) FromCanonical(metres float64) (float64, error) {
	if v.Axis == AxisDepth {
		metres = -metres
	}
	return unit.Convert(metres, unit.Metre, v.LengthUnit)
}

// IsEllipsoidal reports whether v's reference surface is the ellipsoid
// itself (no geoid grid lookup needed to relate it to ellipsoidal height).
func (v VerticalCRS) IsEllipsoidal() bool { return v.V.Type == datum.Ellipsoidal }

// IsGeoidal reports whether v references a geoid undulation grid.
func (v VerticalCRS) IsGeoidal() bool { return v.V.Type == datum.Geoidal }

// heightSequence is a convenience a CompoundCRS uses to build the 1D
// native<->metre leg of its vertical component; it is not itself part of
// the GeodeticCRS family since it operates on a length-1 point.
type heightSequence struct {
	v       VerticalCRS
	inverse bool
}

func (h heightSequence) Transform(p op.Point) (op.Point, error) {
	if len(p) < 1 {
		return nil, ctserr.New(ctserr.IllegalCoordinate, "vertical conversion needs at least 1 ordinate, got %d", len(p))
	}
	out := p.Clone()
	var err error
	if h.inverse {
		out[0], err = h.v.FromCanonical(p[0])
	} else {
		out[0], err = h.v.ToCanonical(p[0])
	}
	return out, err
}

func (h heightSequence) Inverse() (op.CoordinateOperation, error) {
	return heightSequence{v: h.v, inverse: !h.inverse}, nil
}

func (h heightSequence) Precision() float64 { return 0 }
func (h heightSequence) IsIdentity() bool   { return h.v.LengthUnit == unit.Metre && h.v.Axis != AxisDepth }
func (h heightSequence) Kind() op.Kind      { return op.KindUnitConversion }

func (h heightSequence) Equal(other op.CoordinateOperation) bool {
	o, ok := other.(heightSequence)
	return ok && o.v.Name == h.v.Name && o.inverse == h.inverse
}

// ToCanonicalOp returns the CoordinateOperation form of ToCanonical, for
// composition into the planner's compound-CRS chains.
func (v VerticalCRS) ToCanonicalOp() op.CoordinateOperation { return heightSequence{v: v} }

// FromCanonicalOp returns the CoordinateOperation form of FromCanonical.
func (v VerticalCRS) FromCanonicalOp() op.CoordinateOperation {
	return heightSequence{v: v, inverse: true}
}
