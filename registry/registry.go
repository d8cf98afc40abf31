// Package registry is the out-of-scope "registry layer" collaborator
// named in spec.md §6: in a full deployment this is where EPSG/IGNF/ESRI
// authority:code lookups, and the WKT/PRJ/proj.4 textual parsers that
// turn free text into the proj-style parameter map, would live. None of
// that parsing is implemented here — only the CRSHelper contract the
// planner is hydrated through, plus a tiny in-memory seed of the
// well-known CRSes crs/wellknown.go already defines, enough for the
// peripheral CLI (cmd/ctstransform) and tests to have real codes to look
// up.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/geocts/ctsgo/crs"
	"github.com/geocts/ctsgo/plan"
)

// CRSHelper is the contract the core consumes the registry layer through
// (spec.md §6): given an authority and code, produce a fully hydrated CRS
// ready to hand to plan.CreateCoordinateOperations. A production registry
// would parse proj-style parameter maps (or WKT/proj.4 text) to build the
// crs.GeodeticCRS/crs.CompoundCRS value; that parsing is out of scope here.
type CRSHelper interface {
	Lookup(authority, code string) (plan.CRS, error)
}

// Registry is a minimal in-memory CRSHelper.
type Registry struct {
	mu     sync.RWMutex
	byCode map[string]plan.CRS
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{byCode: make(map[string]plan.CRS)}
}

// Register makes c discoverable under authority:code.
func (r *Registry) Register(authority, code string, c plan.CRS) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byCode[key(authority, code)] = c
}

// Lookup implements CRSHelper.
func (r *Registry) Lookup(authority, code string) (plan.CRS, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byCode[key(authority, code)]
	if !ok {
		return nil, fmt.Errorf("registry: no CRS registered for %s:%s", authority, code)
	}
	return c, nil
}

// Codes lists every authority:code pair this registry currently knows
// about, sorted, for the CLI's "list" subcommand.
func (r *Registry) Codes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	codes := make([]string, 0, len(r.byCode))
	for c := range r.byCode {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

func key(authority, code string) string { return authority + ":" + code }

// Default is seeded with the CRSes spec.md §8's worked scenarios resolve
// through.
var Default = buildDefault()

func buildDefault() *Registry {
	r := New()
	r.Register("EPSG", "4326", crs.WGS84Geographic2D)
	r.Register("EPSG", "4979", crs.WGS84Geographic3D)
	r.Register("EPSG", "4171", crs.RGF93Geographic2D)
	r.Register("EPSG", "4965", crs.RGF93Geographic3D)
	r.Register("EPSG", "4807", crs.NTFParisGeographic2D)
	r.Register("EPSG", "2154", crs.Lambert93)
	r.Register("EPSG", "27572", crs.LambertIIEtendu)
	return r
}
