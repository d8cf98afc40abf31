package op

import "github.com/geocts/ctsgo/ctserr"

// Sequence is an ordered pipeline [op1, op2, ..., opN] whose Transform is
// opN(...op2(op1(p))). Construction always runs the cleaner (spec.md §4.4):
// identities are dropped, nested sequences are flattened, adjacent
// mutually-inverse members are fused away (transitively), and the
// TO3D/TO2D special case cancels explicitly. If cleaning empties a
// non-empty sequence, a single Identity is reinserted so Sequence{} and "a
// sequence that reduces to identity" remain distinguishable only by
// intent, not by an empty/non-empty discrepancy.
type Sequence struct {
	members   []CoordinateOperation
	precision float64
	precisionOverridden bool
}

// NewSequence builds a cleaned Sequence from members. The aggregate
// precision defaults to the sum of (post-cleaning) member precisions;
// construction-time overrides are preserved verbatim (spec.md §9).
func NewSequence(members []CoordinateOperation) Sequence {
	cleaned := clean(members)
	return Sequence{members: cleaned, precision: sumPrecision(cleaned)}
}

// NewSequenceWithPrecision is like NewSequence but pins the aggregate
// precision to an explicit value rather than summing members.
func NewSequenceWithPrecision(members []CoordinateOperation, precision float64) Sequence {
	cleaned := clean(members)
	return Sequence{members: cleaned, precision: precision, precisionOverridden: true}
}

func sumPrecision(members []CoordinateOperation) float64 {
	total := 0.0
	for _, m := range members {
		total += m.Precision()
	}
	return total
}

// Members returns the cleaned member list. Callers must not mutate it.
func (s Sequence) Members() []CoordinateOperation { return s.members }

func (s Sequence) Transform(p Point) (Point, error) {
	current := p
	var err error
	for _, m := range s.members {
		current, err = m.Transform(current)
		if err != nil {
			return nil, err
		}
	}
	return current, nil
}

func (s Sequence) Inverse() (CoordinateOperation, error) {
	inverted := make([]CoordinateOperation, len(s.members))
	for i, m := range s.members {
		inv, err := m.Inverse()
		if err != nil {
			return nil, ctserr.Wrap(err, ctserr.NonInvertibleOperation, "sequence member %d has no inverse", i)
		}
		inverted[len(s.members)-1-i] = inv
	}
	if s.precisionOverridden {
		return NewSequenceWithPrecision(inverted, s.precision), nil
	}
	return NewSequence(inverted), nil
}

func (s Sequence) Precision() float64 { return s.precision }

func (s Sequence) IsIdentity() bool {
	for _, m := range s.members {
		if !m.IsIdentity() {
			return false
		}
	}
	return true
}

func (s Sequence) Kind() Kind { return KindSequence }

// Includes reports whether any member (after cleaning) is of kind k. Used
// by the planner's includeFilter/excludeFilter.
func (s Sequence) Includes(k Kind) bool {
	for _, m := range s.members {
		if inner, ok := m.(Sequence); ok {
			if inner.Includes(k) {
				return true
			}
			continue
		}
		if m.Kind() == k {
			return true
		}
	}
	return false
}

func (s Sequence) Equal(other CoordinateOperation) bool {
	o, ok := other.(Sequence)
	if !ok || len(o.members) != len(s.members) {
		return false
	}
	for i := range s.members {
		if !s.members[i].Equal(o.members[i]) {
			return false
		}
	}
	return true
}

// clean applies the construction-time simplification rules of spec.md
// §4.4: drop identities, flatten nested sequences, fuse adjacent mutual
// inverses transitively, special-case TO3D/TO2D cancellation, and
// re-insert a single Identity if cleaning empties a non-empty input.
func clean(members []CoordinateOperation) []CoordinateOperation {
	flattened := flatten(members)

	nonIdentity := make([]CoordinateOperation, 0, len(flattened))
	for _, m := range flattened {
		if !m.IsIdentity() {
			nonIdentity = append(nonIdentity, m)
		}
	}

	fused := fuseInverses(nonIdentity)

	if len(fused) == 0 && len(members) > 0 {
		return []CoordinateOperation{Identity}
	}
	return fused
}

func flatten(members []CoordinateOperation) []CoordinateOperation {
	out := make([]CoordinateOperation, 0, len(members))
	for _, m := range members {
		if inner, ok := m.(Sequence); ok {
			out = append(out, flatten(inner.members)...)
			continue
		}
		out = append(out, m)
	}
	return out
}

// fuseInverses repeatedly cancels adjacent pairs that are each other's
// inverse, using a stack so cancellation propagates transitively (e.g.
// [A, B, B^-1, A^-1] fully collapses).
func fuseInverses(members []CoordinateOperation) []CoordinateOperation {
	stack := make([]CoordinateOperation, 0, len(members))
	for _, m := range members {
		if len(stack) > 0 && cancels(stack[len(stack)-1], m) {
			stack = stack[:len(stack)-1]
			continue
		}
		stack = append(stack, m)
	}
	return stack
}

func cancels(a, b CoordinateOperation) bool {
	if isTO3D(a) && isTO2D(b) {
		return true
	}
	if isTO2D(a) && isTO3D(b) {
		return true
	}
	inv, err := a.Inverse()
	if err != nil {
		return false
	}
	return inv.Equal(b)
}

func isTO3D(o CoordinateOperation) bool {
	c, ok := o.(ChangeCoordinateDimension)
	return ok && c == TO3D
}

func isTO2D(o CoordinateOperation) bool {
	c, ok := o.(ChangeCoordinateDimension)
	return ok && c == TO2D
}
