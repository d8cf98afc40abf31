package op

import "github.com/geocts/ctsgo/ctserr"

// CoordinateSwitch swaps ordinates at positions I and J. It is its own
// inverse.
type CoordinateSwitch struct {
	I, J int
}

func (c CoordinateSwitch) Transform(p Point) (Point, error) {
	if c.I >= len(p) || c.J >= len(p) {
		return nil, ctserr.New(ctserr.IllegalCoordinate, "cannot swap positions %d,%d in a %d-length point", c.I, c.J, len(p))
	}
	p[c.I], p[c.J] = p[c.J], p[c.I]
	return p, nil
}

func (c CoordinateSwitch) Inverse() (CoordinateOperation, error) { return c, nil }
func (c CoordinateSwitch) Precision() float64                    { return 0 }
func (c CoordinateSwitch) IsIdentity() bool                      { return c.I == c.J }
func (c CoordinateSwitch) Kind() Kind                            { return KindCoordinateSwitch }

func (c CoordinateSwitch) Equal(other CoordinateOperation) bool {
	o, ok := other.(CoordinateSwitch)
	return ok && (o == c || (o.I == c.J && o.J == c.I))
}

// OppositeCoordinate negates the ordinate at position I. Self-inverse.
type OppositeCoordinate struct {
	I int
}

func (o OppositeCoordinate) Transform(p Point) (Point, error) {
	if o.I >= len(p) {
		return nil, ctserr.New(ctserr.IllegalCoordinate, "cannot negate position %d in a %d-length point", o.I, len(p))
	}
	p[o.I] = -p[o.I]
	return p, nil
}

func (o OppositeCoordinate) Inverse() (CoordinateOperation, error) { return o, nil }
func (o OppositeCoordinate) Precision() float64                    { return 0 }
func (o OppositeCoordinate) IsIdentity() bool                      { return false }
func (o OppositeCoordinate) Kind() Kind                            { return KindOppositeCoordinate }

func (o OppositeCoordinate) Equal(other CoordinateOperation) bool {
	p, ok := other.(OppositeCoordinate)
	return ok && p == o
}
