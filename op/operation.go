package op

// Kind loosely classifies a CoordinateOperation so the planner's
// includeFilter/excludeFilter/mostPrecise3D helpers can select by
// structural tag without a full type switch over every concrete variant,
// matching the "class/variant tag" language of spec.md §4.5.
type Kind string

const (
	KindIdentity               Kind = "identity"
	KindChangeDimension        Kind = "change-dimension"
	KindCoordinateSwitch       Kind = "coordinate-switch"
	KindOppositeCoordinate     Kind = "opposite-coordinate"
	KindLongitudeRotation      Kind = "longitude-rotation"
	KindUnitConversion         Kind = "unit-conversion"
	KindRounding               Kind = "rounding"
	KindMemorize               Kind = "memorize"
	KindLoadMemorize           Kind = "load-memorize"
	KindExtentCheck            Kind = "extent-check"
	KindGeographicToGeocentric Kind = "geographic-to-geocentric"
	KindGeocentricToGeographic Kind = "geocentric-to-geographic"
	KindIterative              Kind = "iterative"
	KindProjection             Kind = "projection"
	KindGeocentricTranslation  Kind = "geocentric-translation"
	KindSevenParameter         Kind = "seven-parameter"
	KindNTv2                   Kind = "ntv2-grid-shift"
	KindFrenchGrid             Kind = "french-geocentric-grid"
	KindGeoidGrid              Kind = "geoid-grid"
	KindSequence               Kind = "sequence"
)

// CoordinateOperation is the capability set shared by every primitive,
// projection, datum transformation, and sequence in the engine (spec.md
// §3 "Coordinate Operation").
type CoordinateOperation interface {
	// Transform maps p to its image under this operation. Implementations
	// may mutate p in place when the output length equals len(p); they
	// must allocate a fresh Point when the length changes.
	Transform(p Point) (Point, error)
	// Inverse returns the inverse operation, or a *ctserr.Error of kind
	// NonInvertibleOperation if none exists.
	Inverse() (CoordinateOperation, error)
	// Precision returns the expected mean error of this operation, in
	// metres.
	Precision() float64
	// IsIdentity reports whether this operation is a no-op on every input.
	IsIdentity() bool
	// Equal reports structural equality with another operation of the
	// same concrete kind and parameters.
	Equal(other CoordinateOperation) bool
	// Kind reports this operation's structural class, used by the
	// planner's include/exclude filters.
	Kind() Kind
}

// HasKind reports whether op's Kind equals k. Nested sequences answer
// "includes kind iff any member is of that kind" via Sequence.Includes,
// called by the planner helpers in package plan, not here: a bare
// operation's Kind is always its own.
func HasKind(operation CoordinateOperation, k Kind) bool {
	return operation.Kind() == k
}
