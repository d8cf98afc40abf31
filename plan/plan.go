// Package plan implements component K: the planner/factory that, given a
// source and target CRS, enumerates candidate CoordinateOperation chains
// and hands callers the tools to pick among them (spec.md §4.5).
package plan

import (
	"github.com/geocts/ctsgo/crs"
	"github.com/geocts/ctsgo/ctserr"
	"github.com/geocts/ctsgo/datum"
	"github.com/geocts/ctsgo/op"
)

// CRS is the minimal capability CreateCoordinateOperations needs from
// either side of a transform request: just enough to dispatch on
// structural kind. crs.GeodeticCRS and crs.CompoundCRS both satisfy it
// structurally; registries (out of scope for this package, per spec.md
// §6) hand the planner whichever of those two families a lookup produced.
type CRS interface {
	Kind() crs.Kind
}

// CreateCoordinateOperations is the planner's public entry point (spec.md
// §4.5 and §6's "createCoordinateOperations(source, target)"). It returns
// one CoordinateOperation per distinct datum-shift route found; callers
// use MostPrecise, MostPrecise3D, IncludeFilter or ExcludeFilter to narrow
// the set down. It fails with CoordinateOperationNotFound only when no
// candidate chain could be built at all.
func CreateCoordinateOperations(source, target CRS) ([]op.CoordinateOperation, error) {
	if source.Kind() == crs.KindCompound || target.Kind() == crs.KindCompound {
		return createCompoundChain(source, target)
	}
	sg, ok := source.(crs.GeodeticCRS)
	if !ok {
		return nil, ctserr.New(ctserr.CoordinateOperationNotFound, "source CRS of kind %v is not a GeodeticCRS", source.Kind())
	}
	tg, ok := target.(crs.GeodeticCRS)
	if !ok {
		return nil, ctserr.New(ctserr.CoordinateOperationNotFound, "target CRS of kind %v is not a GeodeticCRS", target.Kind())
	}
	return createGeodetic(sg, tg)
}

// createGeodetic implements spec.md §4.5 steps 1-3 for two non-compound
// CRSes. Step 1 (same-datum fast path) short-circuits entirely. Step 2
// (cross-datum) departs from the letter of the spec in one respect,
// recorded in DESIGN.md: rather than choosing geocentric-vs-geographic
// transformations by whether either CRS is 3D, it always attempts both
// pools (Geographic2Geocentric tolerates a 2D input by padding h=0, so the
// geocentric route is never actually unavailable to a 2D CRS pair) and
// lets every discovered route become its own candidate. This is what
// makes scenario E of spec.md §8 (a grid-based candidate coexisting with
// a grid-less one, selected via IncludeFilter) and scenario A (a
// Projected<->Projected pair whose only registered transformation is
// geocentric) both work.
func createGeodetic(source, target crs.GeodeticCRS) ([]op.CoordinateOperation, error) {
	sd, td := source.Datum(), target.Datum()

	if sd.Equal(td) {
		toGeo, err := source.ToGeographic()
		if err != nil {
			return nil, err
		}
		fromGeo, err := target.FromGeographic()
		if err != nil {
			return nil, err
		}
		return []op.CoordinateOperation{op.NewSequence([]op.CoordinateOperation{toGeo, fromGeo})}, nil
	}

	var results []op.CoordinateOperation

	for _, dt := range collectGeocentricPool(sd, td) {
		if chain, err := build3DChain(source, target, sd, td, dt); err == nil {
			results = append(results, chain)
		}
	}
	for _, dt := range collectGeographicPool(sd, td) {
		if chain, err := build2DChain(source, target, dt); err == nil {
			results = append(results, chain)
		}
	}

	if len(results) == 0 {
		return nil, ctserr.New(ctserr.CoordinateOperationNotFound, "no coordinate operation from datum %q to %q", sd.Name, td.Name)
	}
	return results, nil
}

// collectGeocentricPool gathers sd->td's registered 3D geocentric
// transformations, augmented per spec.md §4.5 step 2 with WGS84-routed
// transformations when either datum is WGS84-equivalent.
func collectGeocentricPool(sd, td datum.GeodeticDatum) []op.CoordinateOperation {
	pool := append([]op.CoordinateOperation(nil), sd.GeocentricTransformations(td)...)
	if sd.IsWGS84Equivalent() && sd.Name != datum.WGS84.Name {
		pool = append(pool, datum.WGS84.GeocentricTransformations(td)...)
	}
	if td.IsWGS84Equivalent() && td.Name != datum.WGS84.Name {
		pool = append(pool, sd.GeocentricTransformations(datum.WGS84)...)
	}
	return pool
}

// collectGeographicPool is collectGeocentricPool's 2D (grid-based)
// counterpart.
func collectGeographicPool(sd, td datum.GeodeticDatum) []op.CoordinateOperation {
	pool := append([]op.CoordinateOperation(nil), sd.GeographicTransformations(td)...)
	if sd.IsWGS84Equivalent() && sd.Name != datum.WGS84.Name {
		pool = append(pool, datum.WGS84.GeographicTransformations(td)...)
	}
	if td.IsWGS84Equivalent() && td.Name != datum.WGS84.Name {
		pool = append(pool, sd.GeographicTransformations(datum.WGS84)...)
	}
	return pool
}

// build3DChain assembles the geocentric-route candidate for one
// transformation dt: source.toGeographic(), lifted to 3D if source isn't
// already, rotated onto Greenwich, lifted to geocentric, shifted by dt,
// dropped back to geographic, rotated off Greenwich onto target's prime
// meridian, truncated to 2D if target isn't 3D, then target.fromGeographic().
func build3DChain(source, target crs.GeodeticCRS, sd, td datum.GeodeticDatum, dt op.CoordinateOperation) (op.CoordinateOperation, error) {
	toGeo, err := source.ToGeographic()
	if err != nil {
		return nil, err
	}
	fromGeo, err := target.FromGeographic()
	if err != nil {
		return nil, err
	}

	members := []op.CoordinateOperation{toGeo}
	if !crs.Is3D(source) {
		members = append(members, op.TO3D)
	}
	members = append(members,
		op.LongitudeRotation{ThetaRad: sd.PrimeMeridian.LongitudeRadians},
		op.Geographic2Geocentric{Ellipsoid: sd.Ellipsoid},
		dt,
		op.Geocentric2Geographic{Ellipsoid: td.Ellipsoid},
		op.LongitudeRotation{ThetaRad: -td.PrimeMeridian.LongitudeRadians},
	)
	if !crs.Is3D(target) {
		members = append(members, op.TO2D)
	}
	members = append(members, fromGeo)
	return op.NewSequence(members), nil
}

// build2DChain assembles the grid-based-route candidate: dt is inserted
// directly between the two geographic mating surfaces, per spec.md §4.5
// step 2's "[if 2D] the geographic dt is inserted directly between the
// two geographic mating surfaces" — every 2D datum transformation in this
// engine (NTv2GridShift) already tolerates a longer-than-2 point, so no
// dimension bookkeeping is needed here regardless of source/target
// dimensionality.
func build2DChain(source, target crs.GeodeticCRS, dt op.CoordinateOperation) (op.CoordinateOperation, error) {
	toGeo, err := source.ToGeographic()
	if err != nil {
		return nil, err
	}
	fromGeo, err := target.FromGeographic()
	if err != nil {
		return nil, err
	}
	return op.NewSequence([]op.CoordinateOperation{toGeo, dt, fromGeo}), nil
}

func mostPreciseRaw(ops []op.CoordinateOperation) op.CoordinateOperation {
	if len(ops) == 0 {
		return nil
	}
	best := ops[0]
	for _, o := range ops[1:] {
		if o.Precision() < best.Precision() {
			best = o
		}
	}
	return best
}
