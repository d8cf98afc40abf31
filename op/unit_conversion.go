package op

import (
	"math"

	"github.com/geocts/ctsgo/ctserr"
	"github.com/geocts/ctsgo/unit"
)

// UnitConversion multiplies each ordinate by the ratio Source[i].Scale /
// Target[i].Scale. NaN ordinates are left unchanged; axes beyond the
// declared array length are untouched. Fails on an empty point.
type UnitConversion struct {
	Source, Target []unit.Unit
}

func (u UnitConversion) Transform(p Point) (Point, error) {
	if len(p) == 0 {
		return nil, ctserr.New(ctserr.IllegalCoordinate, "unit conversion requires a non-empty point")
	}
	n := len(u.Source)
	if len(u.Target) < n {
		n = len(u.Target)
	}
	if n > len(p) {
		n = len(p)
	}
	for i := 0; i < n; i++ {
		if math.IsNaN(p[i]) {
			continue
		}
		converted, err := unit.Convert(p[i], u.Source[i], u.Target[i])
		if err != nil {
			return nil, err
		}
		p[i] = converted
	}
	return p, nil
}

func (u UnitConversion) Inverse() (CoordinateOperation, error) {
	return UnitConversion{Source: u.Target, Target: u.Source}, nil
}

func (u UnitConversion) Precision() float64 { return 0 }

func (u UnitConversion) IsIdentity() bool {
	for i := range u.Source {
		if i >= len(u.Target) {
			break
		}
		if u.Source[i] != u.Target[i] {
			return false
		}
	}
	return true
}

func (u UnitConversion) Kind() Kind { return KindUnitConversion }

func (u UnitConversion) Equal(other CoordinateOperation) bool {
	o, ok := other.(UnitConversion)
	if !ok || len(o.Source) != len(u.Source) || len(o.Target) != len(u.Target) {
		return false
	}
	for i := range u.Source {
		if o.Source[i] != u.Source[i] {
			return false
		}
	}
	for i := range u.Target {
		if o.Target[i] != u.Target[i] {
			return false
		}
	}
	return true
}
