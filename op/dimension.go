package op

import "github.com/geocts/ctsgo/ctserr"

// ChangeCoordinateDimension grows or shrinks a point by truncating or
// zero-extending ordinates beyond min(InDim, OutDim). TO3D and TO2D are the
// two shared constants the cleaner's rule 4 looks for.
type ChangeCoordinateDimension struct {
	InDim, OutDim int
}

// TO3D and TO2D are the canonical 2D<->3D dimension changes; the cleaner
// recognizes this exact pair (by value equality) for its special-case
// cancellation rule.
var (
	TO3D = ChangeCoordinateDimension{InDim: 2, OutDim: 3}
	TO2D = ChangeCoordinateDimension{InDim: 3, OutDim: 2}
)

func (c ChangeCoordinateDimension) Transform(p Point) (Point, error) {
	if len(p) < c.InDim {
		return nil, ctserr.New(ctserr.IllegalCoordinate, "point has %d ordinates, need at least %d", len(p), c.InDim)
	}
	return resized(p, c.OutDim), nil
}

func (c ChangeCoordinateDimension) Inverse() (CoordinateOperation, error) {
	return ChangeCoordinateDimension{InDim: c.OutDim, OutDim: c.InDim}, nil
}

func (c ChangeCoordinateDimension) Precision() float64 { return 0 }
func (c ChangeCoordinateDimension) IsIdentity() bool   { return c.InDim == c.OutDim }
func (c ChangeCoordinateDimension) Kind() Kind         { return KindChangeDimension }

func (c ChangeCoordinateDimension) Equal(other CoordinateOperation) bool {
	o, ok := other.(ChangeCoordinateDimension)
	return ok && o == c
}
