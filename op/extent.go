package op

import (
	"math"

	"github.com/geocts/ctsgo/ctserr"
)

// Rectangle bounds ordinates 0 and 1 of a point, already expressed in
// whatever native unit the owning CRS uses (degrees for geographic extents,
// metres for projected ones); resolving which unit applies is the CRS's
// job (it owns the axis metadata), not this primitive's.
type Rectangle struct {
	MinX, MaxX, MinY, MaxY float64
}

func (r Rectangle) contains(x, y float64) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// CheckInExtent is the identity on pass, and fails with OutOfExtent if the
// point's first two ordinates lie outside Bounds.
type CheckInExtent struct {
	Bounds Rectangle
}

func (c CheckInExtent) Transform(p Point) (Point, error) {
	if len(p) < 2 {
		return nil, ctserr.New(ctserr.IllegalCoordinate, "extent check needs at least 2 ordinates, got %d", len(p))
	}
	if math.IsNaN(p[0]) || math.IsNaN(p[1]) {
		return nil, ctserr.New(ctserr.IllegalCoordinate, "extent check received NaN ordinate")
	}
	if !c.Bounds.contains(p[0], p[1]) {
		return nil, ctserr.New(ctserr.OutOfExtent, "(%v, %v) outside %+v", p[0], p[1], c.Bounds)
	}
	return p, nil
}

func (c CheckInExtent) Inverse() (CoordinateOperation, error) { return c, nil }
func (c CheckInExtent) Precision() float64                    { return 0 }
func (c CheckInExtent) IsIdentity() bool                      { return false }
func (c CheckInExtent) Kind() Kind                             { return KindExtentCheck }

func (c CheckInExtent) Equal(other CoordinateOperation) bool {
	o, ok := other.(CheckInExtent)
	return ok && o == c
}
