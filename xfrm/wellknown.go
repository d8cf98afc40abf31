package xfrm

import (
	"github.com/geocts/ctsgo/datum"
	"github.com/geocts/ctsgo/grid"
)

// RegisterWellKnownTransformations registers the handful of published
// datum-shift transformations this engine ships out of the box against
// datum.DefaultRegistry, so the well-known datums in datum/wellknown.go
// are immediately usable by the planner without any external registry
// lookup. Grid-based transformations that need data files not bundled
// with this module (the IGN gr3d/NTv2 grids) are left to
// RegisterFrenchGeocentricGrid and RegisterNTv2Grid, which callers invoke
// once they have the grid files on disk.
func RegisterWellKnownTransformations() {
	// NTF -> RGF93 (== WGS84 for planning purposes): IGN's published
	// approximate Bursa-Wolf, Position Vector convention, linearized form.
	// The French geocentric grid (registered separately when grid files are
	// available) is the higher-precision alternative the planner prefers
	// via mostPrecise.
	ntfToRGF93 := NewBursaWolfTransformation(-168.0, -60.0, 320.0, 0, 0, 0, 0)
	ntfToRGF93.Prec = 1.0
	datum.DefaultRegistry.RegisterGeocentric(datum.NTF.Name, datum.RGF93.Name, ntfToRGF93)
	// The geocentric shift itself doesn't depend on which prime meridian a
	// CRS built on Clarke 1880 IGN happens to be expressed against (the
	// planner rotates onto Greenwich before applying any geocentric
	// transformation), so NTF_PARIS — the datum LambertIIEtendu (EPSG:27572)
	// is built on — needs its own registry entry alongside NTF's.
	datum.DefaultRegistry.RegisterGeocentric(datum.NTF_PARIS.Name, datum.RGF93.Name, ntfToRGF93)

	// ED50 -> WGS84: commonly cited mean European 3-parameter shift.
	ed50ToWGS84 := GeocentricTranslation{Tx: -87, Ty: -98, Tz: -121, Prec: 3.0}
	datum.DefaultRegistry.RegisterGeocentric(datum.ED50.Name, datum.WGS84.Name, ed50ToWGS84)

	// OSGB36 -> WGS84: published 7-parameter Helmert transformation,
	// Position Vector convention (the transformation the teacher's
	// osgridref.go historically approximated via its own ellipsoid-only
	// convert path).
	osgb36ToWGS84 := NewBursaWolfTransformation(446.448, -125.157, 542.060, 0.1502, 0.2470, 0.8421, -20.4894)
	osgb36ToWGS84.Prec = 1.0
	datum.DefaultRegistry.RegisterGeocentric(datum.OSGB36.Name, datum.WGS84.Name, osgb36ToWGS84)

	// NAD27 -> NAD83: rough mean 3-parameter shift; NADCON grids are the
	// precise alternative and are out of scope (US-specific grid format,
	// not NTv2).
	nad27ToNAD83 := GeocentricTranslation{Tx: -8, Ty: 160, Tz: 176, Prec: 5.0}
	datum.DefaultRegistry.RegisterGeocentric(datum.NAD27.Name, datum.NAD83.Name, nad27ToNAD83)
}

// RegisterFrenchGeocentricGrid loads IGN's gr3d-style translation grids
// (one text grid per component, in the grid.GeoidGrid format) and
// registers the resulting FrenchGeocentricGridTransformation between NTF
// and RGF93 as the higher-precision alternative to the Bursa-Wolf
// approximation registered by RegisterWellKnownTransformations.
func RegisterFrenchGeocentricGrid(txPath, tyPath, tzPath string) error {
	tx, err := grid.LoadGeoidGridCached(txPath)
	if err != nil {
		return err
	}
	ty, err := grid.LoadGeoidGridCached(tyPath)
	if err != nil {
		return err
	}
	tz, err := grid.LoadGeoidGridCached(tzPath)
	if err != nil {
		return err
	}
	transform := FrenchGeocentricGridTransformation{TxGrid: tx, TyGrid: ty, TzGrid: tz, Prec: 0.05}
	datum.DefaultRegistry.RegisterGeocentric(datum.NTF.Name, datum.RGF93.Name, transform)
	return nil
}

// RegisterNTv2Grid loads an NTv2 binary grid file and registers it as a
// 2D geographic transformation between the named source and target
// datums (e.g. NAD27 -> NAD83 via a NADCON-style conversion published in
// the NTv2 format, or OSGB36 -> ETRS89 via OSTN-derived grids).
func RegisterNTv2Grid(sourceDatum, targetDatum, path string, precision float64) error {
	g, err := grid.LoadNTv2Cached(path)
	if err != nil {
		return err
	}
	datum.DefaultRegistry.RegisterGeographic(sourceDatum, targetDatum, NTv2GridShift{Grid: g, Name: path, Prec: precision})
	return nil
}
