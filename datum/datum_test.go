package datum

import (
	"testing"

	"github.com/geocts/ctsgo/ellipsoid"
	"github.com/geocts/ctsgo/op"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegisterGeocentricIsSymmetric(t *testing.T) {
	r := NewRegistry()
	a := r.Bind(GeodeticDatum{Name: "A", Ellipsoid: ellipsoid.WGS84, PrimeMeridian: Greenwich, Extent: World})
	b := r.Bind(GeodeticDatum{Name: "B", Ellipsoid: ellipsoid.WGS84, PrimeMeridian: Greenwich, Extent: World})

	r.RegisterGeocentric(a.Name, b.Name, op.Identity)

	fwd := a.GeocentricTransformations(b)
	require.Len(t, fwd, 1)
	assert.True(t, fwd[0].IsIdentity())

	rev := b.GeocentricTransformations(a)
	require.Len(t, rev, 1)
	assert.True(t, rev[0].IsIdentity())

	// Nothing was registered in either direction for an unrelated datum.
	c := r.Bind(GeodeticDatum{Name: "C", Ellipsoid: ellipsoid.WGS84, PrimeMeridian: Greenwich, Extent: World})
	assert.Empty(t, a.GeocentricTransformations(c))
}

func TestRegistryRegisterGeographicIsSymmetric(t *testing.T) {
	r := NewRegistry()
	a := r.Bind(GeodeticDatum{Name: "A", Ellipsoid: ellipsoid.WGS84, PrimeMeridian: Greenwich, Extent: World})
	b := r.Bind(GeodeticDatum{Name: "B", Ellipsoid: ellipsoid.WGS84, PrimeMeridian: Greenwich, Extent: World})

	r.RegisterGeographic(a.Name, b.Name, op.Identity)

	require.Len(t, a.GeographicTransformations(b), 1)
	require.Len(t, b.GeographicTransformations(a), 1)
	assert.Empty(t, a.GeocentricTransformations(b))
}

func TestUnboundDatumHasNoTransformations(t *testing.T) {
	unbound := GeodeticDatum{Name: "unbound", Ellipsoid: ellipsoid.WGS84, PrimeMeridian: Greenwich, Extent: World}
	assert.Empty(t, unbound.GeocentricTransformations(WGS84))
	assert.Empty(t, unbound.GeographicTransformations(WGS84))
}

func TestGeodeticDatumEqualByName(t *testing.T) {
	assert.True(t, WGS84.Equal(WGS84))
	assert.False(t, WGS84.Equal(RGF93))
	assert.False(t, RGF93.Equal(NTF_PARIS))
}

func TestIsWGS84Equivalent(t *testing.T) {
	assert.True(t, WGS84.IsWGS84Equivalent())
	assert.True(t, RGF93.IsWGS84Equivalent(), "RGF93 is GRS80 + Greenwich, interchangeable with WGS84 for planning")
	assert.False(t, NTF_PARIS.IsWGS84Equivalent(), "Clarke 1880 IGN ellipsoid and the Paris meridian both disqualify it")
	assert.False(t, ED50.IsWGS84Equivalent(), "International 1924 ellipsoid disqualifies it despite Greenwich")
}

func TestPrimeMeridianEqual(t *testing.T) {
	assert.True(t, Greenwich.Equal(Greenwich))
	assert.False(t, Greenwich.Equal(Paris))
}

func TestGeographicExtentContains(t *testing.T) {
	assert.True(t, World.Contains(89, 179))
	assert.False(t, World.Contains(91, 0))
	assert.True(t, RGF93.Extent.Contains(46.5, 3))
	assert.False(t, RGF93.Extent.Contains(10, 2))
}

func TestVerticalDatumEqualByName(t *testing.T) {
	assert.True(t, IGN69.Equal(IGN69))
	assert.False(t, IGN69.Equal(GRS80Ellipsoidal))
}
