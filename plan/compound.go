package plan

import (
	"github.com/geocts/ctsgo/crs"
	"github.com/geocts/ctsgo/ctserr"
	"github.com/geocts/ctsgo/datum"
	"github.com/geocts/ctsgo/op"
	"github.com/geocts/ctsgo/xfrm"
)

// atIndex applies inner, a single-ordinate CoordinateOperation (as
// produced by crs.VerticalCRS.ToCanonicalOp/FromCanonicalOp), to position
// Idx of an otherwise-untouched point. This is the "ordinate memorize/
// load" plumbing spec.md §4.5's CompoundCRS handling calls for, expressed
// as a generic combinator rather than a one-off splice at each call site —
// the same spirit as IterativeTransformation wrapping an inner op.
type atIndex struct {
	Idx   int
	Inner op.CoordinateOperation
}

func (a atIndex) Transform(p op.Point) (op.Point, error) {
	if a.Idx >= len(p) {
		return nil, ctserr.New(ctserr.IllegalCoordinate, "cannot operate on position %d of a %d-length point", a.Idx, len(p))
	}
	result, err := a.Inner.Transform(op.Point{p[a.Idx]})
	if err != nil {
		return nil, err
	}
	out := p.Clone()
	out[a.Idx] = result[0]
	return out, nil
}

func (a atIndex) Inverse() (op.CoordinateOperation, error) {
	inv, err := a.Inner.Inverse()
	if err != nil {
		return nil, err
	}
	return atIndex{Idx: a.Idx, Inner: inv}, nil
}

func (a atIndex) Precision() float64 { return a.Inner.Precision() }
func (a atIndex) IsIdentity() bool   { return a.Inner.IsIdentity() }
func (a atIndex) Kind() op.Kind      { return a.Inner.Kind() }

func (a atIndex) Equal(other op.CoordinateOperation) bool {
	o, ok := other.(atIndex)
	return ok && o.Idx == a.Idx && o.Inner.Equal(a.Inner)
}

// geo3DLeg is the "native coordinates -> (phi, lambda, h_ellipsoidal)
// radians/metres, in this leg's own datum and prime meridian" half of a
// compound-CRS transform. Building it for both source and target reduces
// the CompoundCRS problem to exactly the geodetic one createGeodetic
// already solves: once both sides are geographic-with-ellipsoidal-height,
// a single geocentric-route datum shift (or none, same-datum) connects
// them.
type geo3DLeg struct {
	toGeo op.CoordinateOperation
	datum datum.GeodeticDatum
}

// buildGeo3DLeg realizes spec.md §4.5's "Vertical conversion between
// ALTITUDE and ellipsoidal HEIGHT is realized as: MemorizeZ -> evaluate
// geoid N at (phi,lambda) -> add/subtract N -> LoadZ" for a CompoundCRS,
// or simply requires an already-3D GeodeticCRS (Geographic3D or
// Geocentric) when the caller pairs a compound CRS with a plain one —
// pairing a compound CRS with a 2D-only plain CRS has no vertical
// ordinate to reconcile against and is rejected.
func buildGeo3DLeg(c CRS) (geo3DLeg, error) {
	if cc, ok := c.(crs.CompoundCRS); ok {
		hGeo, err := cc.Horizontal.ToGeographic()
		if err != nil {
			return geo3DLeg{}, err
		}
		members := []op.CoordinateOperation{hGeo, atIndex{Idx: 2, Inner: cc.Vertical.ToCanonicalOp()}}
		if cc.Vertical.IsGeoidal() {
			g, ok := xfrm.LookupGeoidGrid(cc.Vertical.V.GeoidGridName)
			if !ok {
				return geo3DLeg{}, ctserr.New(ctserr.CoordinateOperationNotFound, "geoid grid %q is not loaded", cc.Vertical.V.GeoidGridName)
			}
			members = append(members, xfrm.GeoidHeightCorrection{Grid: g, ToEllipsoidal: true, Prec: 0.01})
		}
		return geo3DLeg{toGeo: op.NewSequence(members), datum: cc.Horizontal.Datum()}, nil
	}

	gc, ok := c.(crs.GeodeticCRS)
	if !ok {
		return geo3DLeg{}, ctserr.New(ctserr.CoordinateOperationNotFound, "unsupported CRS in a compound transform")
	}
	if !crs.Is3D(gc) {
		return geo3DLeg{}, ctserr.New(ctserr.CoordinateOperationNotFound, "cannot pair a 2D CRS with a compound CRS without an explicit vertical component")
	}
	toGeo, err := gc.ToGeographic()
	if err != nil {
		return geo3DLeg{}, err
	}
	return geo3DLeg{toGeo: toGeo, datum: gc.Datum()}, nil
}

// createCompoundChain implements spec.md §4.5's CompoundCRS handling:
// split each side into its geographic-with-ellipsoidal-height leg, run
// the same-datum-or-geocentric-shift logic createGeodetic uses for the
// horizontal+vertical move in one pass, and return the single resulting
// chain. Unlike createGeodetic, only one candidate is produced: a
// compound CRS's vertical component only makes sense relative to a single
// coherent horizontal datum shift, so there is no analogous "also try the
// grid-based 2D route" alternative to enumerate.
func createCompoundChain(source, target CRS) ([]op.CoordinateOperation, error) {
	sourceLeg, err := buildGeo3DLeg(source)
	if err != nil {
		return nil, err
	}
	targetLeg, err := buildGeo3DLeg(target)
	if err != nil {
		return nil, err
	}
	fromGeoTarget, err := targetLeg.toGeo.Inverse()
	if err != nil {
		return nil, err
	}

	members := []op.CoordinateOperation{sourceLeg.toGeo}

	sd, td := sourceLeg.datum, targetLeg.datum
	if !sd.Equal(td) {
		pool := collectGeocentricPool(sd, td)
		best := mostPreciseRaw(pool)
		if best == nil {
			return nil, ctserr.New(ctserr.CoordinateOperationNotFound, "no coordinate operation from datum %q to %q", sd.Name, td.Name)
		}
		members = append(members,
			op.LongitudeRotation{ThetaRad: sd.PrimeMeridian.LongitudeRadians},
			op.Geographic2Geocentric{Ellipsoid: sd.Ellipsoid},
			best,
			op.Geocentric2Geographic{Ellipsoid: td.Ellipsoid},
			op.LongitudeRotation{ThetaRad: -td.PrimeMeridian.LongitudeRadians},
		)
	}

	members = append(members, fromGeoTarget)
	return []op.CoordinateOperation{op.NewSequence(members)}, nil
}
