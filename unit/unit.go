// Package unit implements scalar quantities carrying a dimensional tag
// (component A of the engine: Units & Measures).
package unit

import (
	"sync"

	"github.com/geocts/ctsgo/ctserr"
)

// Quantity classifies what a Unit measures. Two units are only comparable
// (convertible into one another) when their Quantity matches.
type Quantity int

const (
	Length Quantity = iota
	Angle
	Scale
	Unitless
)

// Unit is a scale factor to the canonical unit of its Quantity: metre for
// Length, radian for Angle, 1.0 for Scale and Unitless.
type Unit struct {
	Quantity Quantity
	Scale    float64
}

var (
	Metre          = Unit{Length, 1.0}
	Kilometre      = Unit{Length, 1000.0}
	USSurveyFoot   = Unit{Length, 0.3048006096}
	Foot           = Unit{Length, 0.3048}

	Radian  = Unit{Angle, 1.0}
	Degree  = Unit{Angle, 0.017453292519943295} // pi/180
	Grad    = Unit{Angle, 0.015707963267948967} // pi/200
	ArcSec  = Unit{Angle, 4.84813681109535993589914102357e-6}

	One = Unit{Scale, 1.0}
	PPM = Unit{Scale, 1e-6}

	None = Unit{Unitless, 1.0}
)

// comparable reports whether a and b share a Quantity, i.e. are convertible.
func comparable(a, b Unit) bool { return a.Quantity == b.Quantity }

// converterCache memoizes the multiplicative factor between two units,
// keyed by the pair of scale factors within a quantity family. Reads
// dominate writes (units are established once at CRS-construction time and
// consulted on every point transformed thereafter), so a RWMutex-guarded
// map is preferred over recomputing the ratio each call.
type converterCache struct {
	mu    sync.RWMutex
	cache map[[2]Unit]float64
}

var globalConverterCache = &converterCache{cache: make(map[[2]Unit]float64)}

// Convert returns x expressed in unit `to`, given that it is currently
// expressed in unit `from`. Fails with UnknownUnitQuantity if the units are
// not comparable.
func Convert(x float64, from, to Unit) (float64, error) {
	if !comparable(from, to) {
		return 0, ctserr.New(ctserr.UnknownUnitQuantity, "cannot convert %v to %v", from, to)
	}
	factor, ok := lookupFactor(from, to)
	if !ok {
		factor = from.Scale / to.Scale
		storeFactor(from, to, factor)
	}
	return x * factor, nil
}

func lookupFactor(from, to Unit) (float64, bool) {
	globalConverterCache.mu.RLock()
	defer globalConverterCache.mu.RUnlock()
	f, ok := globalConverterCache.cache[[2]Unit{from, to}]
	return f, ok
}

func storeFactor(from, to Unit, factor float64) {
	globalConverterCache.mu.Lock()
	defer globalConverterCache.mu.Unlock()
	globalConverterCache.cache[[2]Unit{from, to}] = factor
}
