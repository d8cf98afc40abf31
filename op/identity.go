package op

// Identity is a singleton CoordinateOperation that returns its input
// unchanged.
var Identity CoordinateOperation = identityOp{}

type identityOp struct{}

func (identityOp) Transform(p Point) (Point, error)        { return p, nil }
func (identityOp) Inverse() (CoordinateOperation, error)   { return Identity, nil }
func (identityOp) Precision() float64                      { return 0 }
func (identityOp) IsIdentity() bool                        { return true }
func (identityOp) Kind() Kind                               { return KindIdentity }
func (identityOp) Equal(other CoordinateOperation) bool {
	_, ok := other.(identityOp)
	return ok
}
