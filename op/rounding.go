package op

import (
	"math"

	"github.com/geocts/ctsgo/ctserr"
)

// CoordinateRounding multiplies by 1/Resolution, rounds to nearest-even,
// then divides back. NaN ordinates are left unchanged. Not invertible:
// rounding discards information.
type CoordinateRounding struct {
	Resolution float64
}

func (r CoordinateRounding) Transform(p Point) (Point, error) {
	if r.Resolution == 0 {
		return nil, ctserr.New(ctserr.IllegalCoordinate, "rounding resolution must be non-zero")
	}
	inv := 1 / r.Resolution
	for i, v := range p {
		if math.IsNaN(v) {
			continue
		}
		p[i] = math.RoundToEven(v*inv) / inv
	}
	return p, nil
}

func (r CoordinateRounding) Inverse() (CoordinateOperation, error) {
	return nil, ctserr.New(ctserr.NonInvertibleOperation, "coordinate rounding to resolution %v has no inverse", r.Resolution)
}

func (r CoordinateRounding) Precision() float64 { return r.Resolution / 2 }
func (r CoordinateRounding) IsIdentity() bool   { return false }
func (r CoordinateRounding) Kind() Kind         { return KindRounding }

func (r CoordinateRounding) Equal(other CoordinateOperation) bool {
	o, ok := other.(CoordinateRounding)
	return ok && o == r
}
