package xfrm

import (
	"sync"

	"github.com/geocts/ctsgo/grid"
)

// geoidGrids is the process-wide cache of loaded vertical geoid grids,
// keyed by the name a VerticalDatum carries in its GeoidGridName field
// (e.g. "RAF09.txt"), mirroring the design note on grid caching in
// spec.md §9: load-on-demand, cache by name, safe for concurrent reads.
var geoidGrids = struct {
	mu   sync.RWMutex
	byName map[string]*grid.GeoidGrid
}{byName: make(map[string]*grid.GeoidGrid)}

// RegisterGeoidGridFile loads the geoid grid at path and makes it
// discoverable under name, so the planner's compound-CRS vertical
// handling can resolve a VerticalDatum's GeoidGridName to an actual
// *grid.GeoidGrid without the datum or CRS packages needing to import
// grid themselves.
func RegisterGeoidGridFile(name, path string) error {
	g, err := grid.LoadGeoidGridCached(path)
	if err != nil {
		return err
	}
	geoidGrids.mu.Lock()
	geoidGrids.byName[name] = g
	geoidGrids.mu.Unlock()
	return nil
}

// RegisterGeoidGrid makes an already-loaded grid discoverable under name;
// useful for callers (and tests) that construct a grid.GeoidGrid value
// directly rather than from a file on disk.
func RegisterGeoidGrid(name string, g *grid.GeoidGrid) {
	geoidGrids.mu.Lock()
	geoidGrids.byName[name] = g
	geoidGrids.mu.Unlock()
}

// LookupGeoidGrid returns the grid registered under name, if any.
func LookupGeoidGrid(name string) (*grid.GeoidGrid, bool) {
	geoidGrids.mu.RLock()
	defer geoidGrids.mu.RUnlock()
	g, ok := geoidGrids.byName[name]
	return g, ok
}
