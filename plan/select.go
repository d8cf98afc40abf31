package plan

import (
	"github.com/geocts/ctsgo/ctserr"
	"github.com/geocts/ctsgo/op"
	"github.com/geocts/ctsgo/xfrm"
)

// threeDGeocentricKinds are the op.Kind tags MostPrecise3D treats as "this
// candidate implements the 3D geocentric marker" (spec.md §4.5's
// mostPrecise3D: "restricted to members whose class implements the 3D
// geocentric marker"). A projected-coordinate engine has no actual
// marker-interface mechanism for this in Go; a kind-tag membership check
// is the structural equivalent.
var threeDGeocentricKinds = []op.Kind{
	op.KindGeocentricTranslation,
	op.KindSevenParameter,
	op.KindFrenchGrid,
}

// MostPrecise returns the candidate with the smallest declared Precision.
func MostPrecise(ops []op.CoordinateOperation) (op.CoordinateOperation, error) {
	best := mostPreciseRaw(ops)
	if best == nil {
		return nil, ctserr.New(ctserr.CoordinateOperationNotFound, "no coordinate operation candidates to select from")
	}
	return best, nil
}

// MostPrecise3D is MostPrecise restricted to candidates that include a 3D
// geocentric transformation (GeocentricTranslation, SevenParameterTransformation
// or FrenchGeocentricGridTransformation) somewhere in their chain.
func MostPrecise3D(ops []op.CoordinateOperation) (op.CoordinateOperation, error) {
	var candidates []op.CoordinateOperation
	for _, o := range ops {
		if includesAny(o, threeDGeocentricKinds) {
			candidates = append(candidates, o)
		}
	}
	best := mostPreciseRaw(candidates)
	if best == nil {
		return nil, ctserr.New(ctserr.CoordinateOperationNotFound, "no 3D geocentric coordinate operation candidate found")
	}
	return best, nil
}

// MostPreciseExact is MostPrecise, but when a candidate set contains both
// linearized- and exact-form seven-parameter datum shifts for the same
// route, it prefers the exact one (the --exact CLI flag's effect: bit-for-
// bit agreement with a proj.4-style implementation at large rotation
// angles, over the default-registered linearized small-angle
// approximation). Candidates with no seven-parameter member at all (an
// NTv2 grid shift, a plain geocentric translation, a same-datum identity
// route) are never excluded by this preference. Candidates using a
// linearized seven-parameter shift are dropped whenever at least one
// candidate without one remains; only when every candidate uses one does
// it fall back to MostPrecise's full candidate set rather than failing.
func MostPreciseExact(ops []op.CoordinateOperation) (op.CoordinateOperation, error) {
	var exactOnly []op.CoordinateOperation
	for _, o := range ops {
		if !usesLinearizedSevenParameter(o) {
			exactOnly = append(exactOnly, o)
		}
	}
	if best := mostPreciseRaw(exactOnly); best != nil {
		return best, nil
	}
	return MostPrecise(ops)
}

func usesLinearizedSevenParameter(o op.CoordinateOperation) bool {
	if seq, ok := o.(op.Sequence); ok {
		for _, m := range seq.Members() {
			if usesLinearizedSevenParameter(m) {
				return true
			}
		}
		return false
	}
	if sp, ok := o.(xfrm.SevenParameterTransformation); ok {
		return sp.Form != xfrm.Exact
	}
	return false
}

// IncludeFilter keeps only candidates that contain a member of kind k
// (spec.md §4.5: "a sequence includes kind iff any member is of that
// kind").
func IncludeFilter(ops []op.CoordinateOperation, k op.Kind) []op.CoordinateOperation {
	var out []op.CoordinateOperation
	for _, o := range ops {
		if includes(o, k) {
			out = append(out, o)
		}
	}
	return out
}

// ExcludeFilter is IncludeFilter's complement.
func ExcludeFilter(ops []op.CoordinateOperation, k op.Kind) []op.CoordinateOperation {
	var out []op.CoordinateOperation
	for _, o := range ops {
		if !includes(o, k) {
			out = append(out, o)
		}
	}
	return out
}

func includes(o op.CoordinateOperation, k op.Kind) bool {
	if seq, ok := o.(op.Sequence); ok {
		return seq.Includes(k)
	}
	return o.Kind() == k
}

func includesAny(o op.CoordinateOperation, kinds []op.Kind) bool {
	for _, k := range kinds {
		if includes(o, k) {
			return true
		}
	}
	return false
}
