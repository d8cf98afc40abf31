package datum

import "github.com/geocts/ctsgo/ellipsoid"

// DefaultRegistry is the process-wide transformation registry used by the
// well-known datums below. Production callers assembling CRSes from a
// registry (EPSG/IGNF lookups, out of scope for this package) are expected
// to grow it at startup, as spec.md §3 describes; it is exported so the
// xfrm package's datum-pair transformations can be registered against it
// from one place (see xfrm.RegisterWellKnownTransformations).
var DefaultRegistry = NewRegistry()

// Special-cased datums referenced directly by the planner's "equivalent to
// WGS84" rule and by the concrete end-to-end scenarios in spec.md §8.
var (
	WGS84 = DefaultRegistry.Bind(GeodeticDatum{
		Name: "WGS84", Ellipsoid: ellipsoid.WGS84, PrimeMeridian: Greenwich, Extent: World,
	})
	RGF93 = DefaultRegistry.Bind(GeodeticDatum{
		Name: "RGF93", Ellipsoid: ellipsoid.GRS80, PrimeMeridian: Greenwich,
		Extent: GeographicExtent{MinLatDeg: 41, MaxLatDeg: 51.5, MinLonDeg: -5.5, MaxLonDeg: 10},
	})
	NTF = DefaultRegistry.Bind(GeodeticDatum{
		Name: "NTF", Ellipsoid: ellipsoid.Clarke1880IGN, PrimeMeridian: Greenwich,
		Extent: GeographicExtent{MinLatDeg: 41, MaxLatDeg: 51.5, MinLonDeg: -5.5, MaxLonDeg: 10},
	})
	NTF_PARIS = DefaultRegistry.Bind(GeodeticDatum{
		Name: "NTF_PARIS", Ellipsoid: ellipsoid.Clarke1880IGN, PrimeMeridian: Paris,
		Extent: GeographicExtent{MinLatDeg: 41, MaxLatDeg: 51.5, MinLonDeg: -5.5, MaxLonDeg: 10},
	})
	ED50 = DefaultRegistry.Bind(GeodeticDatum{
		Name: "ED50", Ellipsoid: ellipsoid.Intl1924, PrimeMeridian: Greenwich, Extent: World,
	})
	OSGB36 = DefaultRegistry.Bind(GeodeticDatum{
		Name: "OSGB36", Ellipsoid: ellipsoid.Airy1830, PrimeMeridian: Greenwich,
		Extent: GeographicExtent{MinLatDeg: 49, MaxLatDeg: 61, MinLonDeg: -9, MaxLonDeg: 2},
	})
	NAD27 = DefaultRegistry.Bind(GeodeticDatum{
		Name: "NAD27", Ellipsoid: ellipsoid.Clarke1866, PrimeMeridian: Greenwich, Extent: World,
	})
	NAD83 = DefaultRegistry.Bind(GeodeticDatum{
		Name: "NAD83", Ellipsoid: ellipsoid.GRS80, PrimeMeridian: Greenwich, Extent: World,
	})
)
