package op

import "github.com/geocts/ctsgo/ctserr"

// MemorizeCoordinate appends copies of the ordinates at Idx to the end of
// the point, lengthening it. Used before a lossy stage whose result must be
// recovered later, e.g. carrying a CompoundCRS's vertical ordinate through
// a horizontal-only transform chain.
type MemorizeCoordinate struct {
	Idx []int
}

func (m MemorizeCoordinate) Transform(p Point) (Point, error) {
	out := make(Point, len(p)+len(m.Idx))
	copy(out, p)
	for i, idx := range m.Idx {
		if idx >= len(p) {
			return nil, ctserr.New(ctserr.IllegalCoordinate, "cannot memorize position %d in a %d-length point", idx, len(p))
		}
		out[len(p)+i] = p[idx]
	}
	return out, nil
}

func (m MemorizeCoordinate) Inverse() (CoordinateOperation, error) {
	return LoadMemorizeCoordinate{Idx: m.Idx}, nil
}

func (m MemorizeCoordinate) Precision() float64 { return 0 }
func (m MemorizeCoordinate) IsIdentity() bool   { return len(m.Idx) == 0 }
func (m MemorizeCoordinate) Kind() Kind         { return KindMemorize }

func (m MemorizeCoordinate) Equal(other CoordinateOperation) bool {
	o, ok := other.(MemorizeCoordinate)
	return ok && intsEqual(o.Idx, m.Idx)
}

// LoadMemorizeCoordinate writes the memorized ordinates (appended at the
// end of the point by a prior MemorizeCoordinate) back into position Idx,
// then shortens the point by len(Idx). Paired with MemorizeCoordinate, the
// pair's net effect across a sub-pipeline that preserves the memorized
// ordinate is the identity at that ordinate.
type LoadMemorizeCoordinate struct {
	Idx []int
}

func (l LoadMemorizeCoordinate) Transform(p Point) (Point, error) {
	n := len(l.Idx)
	if len(p) < n {
		return nil, ctserr.New(ctserr.IllegalCoordinate, "cannot load %d memorized ordinates from a %d-length point", n, len(p))
	}
	base := len(p) - n
	out := make(Point, base)
	copy(out, p[:base])
	for i, idx := range l.Idx {
		if idx >= base {
			return nil, ctserr.New(ctserr.IllegalCoordinate, "cannot load memorized ordinate into position %d of a %d-length point", idx, base)
		}
		out[idx] = p[base+i]
	}
	return out, nil
}

func (l LoadMemorizeCoordinate) Inverse() (CoordinateOperation, error) {
	return MemorizeCoordinate{Idx: l.Idx}, nil
}

func (l LoadMemorizeCoordinate) Precision() float64 { return 0 }
func (l LoadMemorizeCoordinate) IsIdentity() bool   { return len(l.Idx) == 0 }
func (l LoadMemorizeCoordinate) Kind() Kind         { return KindLoadMemorize }

func (l LoadMemorizeCoordinate) Equal(other CoordinateOperation) bool {
	o, ok := other.(LoadMemorizeCoordinate)
	return ok && intsEqual(o.Idx, l.Idx)
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
