// Package crs implements component F: the CRS variants (Geocentric,
// Geographic 2D/3D, Projected, Vertical, Compound) that the planner
// composes coordinate operations between.
package crs

import (
	"github.com/geocts/ctsgo/datum"
	"github.com/geocts/ctsgo/op"
)

// Kind classifies a CRS's structural family, mirroring op.Kind's role for
// operations: the planner dispatches on this rather than a full type
// switch everywhere a CRS is consumed.
type Kind int

const (
	KindGeocentric Kind = iota
	KindGeographic2D
	KindGeographic3D
	KindProjected
	KindVertical
	KindCompound
)

// GeodeticCRS is the capability every non-compound CRS exposes to the
// planner: a route to and from the canonical geographic working
// representation (phi, lambda, [h]) in radians/metres, in the CRS's own
// datum and prime meridian — crossing datums and prime meridians is the
// planner's job, not the CRS's.
type GeodeticCRS interface {
	Kind() Kind
	Datum() datum.GeodeticDatum
	// ToGeographic returns the operation mapping a point in this CRS's
	// native representation to (phi, lambda, [h]) radians in this CRS's
	// own datum.
	ToGeographic() (op.CoordinateOperation, error)
	// FromGeographic returns ToGeographic's inverse.
	FromGeographic() (op.CoordinateOperation, error)
}

// Is3D reports whether crs carries a third (height or Z) ordinate.
func Is3D(crs GeodeticCRS) bool {
	switch crs.Kind() {
	case KindGeocentric, KindGeographic3D:
		return true
	default:
		return false
	}
}
