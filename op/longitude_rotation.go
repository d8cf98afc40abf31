package op

import "github.com/geocts/ctsgo/ctserr"

// LongitudeRotation adds ThetaRad to ordinate 1 (longitude). Used to shift
// a geographic coordinate between two prime meridians.
type LongitudeRotation struct {
	ThetaRad float64
}

func (l LongitudeRotation) Transform(p Point) (Point, error) {
	if len(p) < 2 {
		return nil, ctserr.New(ctserr.IllegalCoordinate, "longitude rotation needs at least 2 ordinates, got %d", len(p))
	}
	p[1] += l.ThetaRad
	return p, nil
}

func (l LongitudeRotation) Inverse() (CoordinateOperation, error) {
	return LongitudeRotation{ThetaRad: -l.ThetaRad}, nil
}

func (l LongitudeRotation) Precision() float64 { return 0 }
func (l LongitudeRotation) IsIdentity() bool   { return l.ThetaRad == 0 }
func (l LongitudeRotation) Kind() Kind         { return KindLongitudeRotation }

func (l LongitudeRotation) Equal(other CoordinateOperation) bool {
	o, ok := other.(LongitudeRotation)
	return ok && o.ThetaRad == l.ThetaRad
}
