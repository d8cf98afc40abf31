package datum

import (
	"sync"

	"github.com/geocts/ctsgo/ellipsoid"
	"github.com/geocts/ctsgo/op"
)

// GeodeticDatum is an ellipsoid + prime meridian + bounded extent, plus a
// registry of known transformations to other datums. Per the design note
// on avoiding datum<->transformation<->datum ownership cycles, the actual
// transformation sets are not stored inside the Datum value itself; a
// Datum only carries its Name (the registry key) and a pointer to the
// shared Registry it was registered against.
type GeodeticDatum struct {
	Name          string
	Ellipsoid     ellipsoid.Ellipsoid
	PrimeMeridian PrimeMeridian
	Extent        GeographicExtent

	registry *Registry
}

// Equal reports structural equality by Name, matching the spec's
// source.datum.equals(target.datum) same-datum fast path.
func (d GeodeticDatum) Equal(other GeodeticDatum) bool {
	return d.Name == other.Name
}

// IsWGS84Equivalent reports whether d is, for planning purposes,
// interchangeable with WGS84: Greenwich prime meridian and an ellipsoid of
// GRS80 or WGS84, with no registered non-identity transformation to WGS84
// (its "toWGS84" is effectively identity).
func (d GeodeticDatum) IsWGS84Equivalent() bool {
	if !d.PrimeMeridian.Equal(Greenwich) {
		return false
	}
	for _, t := range d.GeocentricTransformations(WGS84) {
		if !t.IsIdentity() {
			return false
		}
	}
	return d.Ellipsoid.Equal(ellipsoid.GRS80) || d.Ellipsoid.Equal(ellipsoid.WGS84)
}

// GeocentricTransformations returns the known 3D geocentric transformations
// from d to target (registered symmetrically: see Registry.RegisterGeocentric).
func (d GeodeticDatum) GeocentricTransformations(target GeodeticDatum) []op.CoordinateOperation {
	if d.registry == nil {
		return nil
	}
	return d.registry.geocentric(d.Name, target.Name)
}

// GeographicTransformations returns the known 2D grid-based transformations
// from d to target.
func (d GeodeticDatum) GeographicTransformations(target GeodeticDatum) []op.CoordinateOperation {
	if d.registry == nil {
		return nil
	}
	return d.registry.geographic(d.Name, target.Name)
}

// Registry is the side table of datum-to-datum transformations, keyed by
// (source name, target name), grown at startup as external registries
// (EPSG/IGNF parameter tables, out of scope for this package) are loaded.
// The spec's "mutation is safe only before concurrent use" lifecycle is
// enforced by a RWMutex: registration after the first concurrent Transform
// call is the caller's responsibility to serialize externally, but reads
// here are always safe even if a write races in.
type Registry struct {
	mu         sync.RWMutex
	geocentricByPair map[pairKey][]op.CoordinateOperation
	geographicByPair map[pairKey][]op.CoordinateOperation
}

type pairKey struct{ source, target string }

// NewRegistry builds an empty transformation registry.
func NewRegistry() *Registry {
	return &Registry{
		geocentricByPair: make(map[pairKey][]op.CoordinateOperation),
		geographicByPair: make(map[pairKey][]op.CoordinateOperation),
	}
}

// Bind returns d with its registry pointer set to r, so its
// Geocentric/GeographicTransformations methods can look themselves up.
func (r *Registry) Bind(d GeodeticDatum) GeodeticDatum {
	d.registry = r
	return d
}

// RegisterGeocentric adds a 3D transformation source->target. Per spec.md
// §3 "Transformations are registered symmetrically", target->source (the
// transform's Inverse()) is registered too, failing silently (the
// transform is simply not made discoverable in that direction) if the
// transform turns out non-invertible — a non-invertible geocentric
// transform is unusual enough that callers should construct and register
// it deliberately rather than have this call surface an error for a path
// nothing requested yet.
func (r *Registry) RegisterGeocentric(source, target string, transform op.CoordinateOperation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fwdKey := pairKey{source, target}
	r.geocentricByPair[fwdKey] = append(r.geocentricByPair[fwdKey], transform)
	if inv, err := transform.Inverse(); err == nil {
		revKey := pairKey{target, source}
		r.geocentricByPair[revKey] = append(r.geocentricByPair[revKey], inv)
	}
}

// RegisterGeographic adds a 2D grid-based transformation source->target,
// symmetrically, as RegisterGeocentric does.
func (r *Registry) RegisterGeographic(source, target string, transform op.CoordinateOperation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fwdKey := pairKey{source, target}
	r.geographicByPair[fwdKey] = append(r.geographicByPair[fwdKey], transform)
	if inv, err := transform.Inverse(); err == nil {
		revKey := pairKey{target, source}
		r.geographicByPair[revKey] = append(r.geographicByPair[revKey], inv)
	}
}

func (r *Registry) geocentric(source, target string) []op.CoordinateOperation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]op.CoordinateOperation(nil), r.geocentricByPair[pairKey{source, target}]...)
}

func (r *Registry) geographic(source, target string) []op.CoordinateOperation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]op.CoordinateOperation(nil), r.geographicByPair[pairKey{source, target}]...)
}
