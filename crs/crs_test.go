package crs

import (
	"math"
	"testing"

	"github.com/geocts/ctsgo/datum"
	"github.com/geocts/ctsgo/op"
	"github.com/geocts/ctsgo/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIs3D(t *testing.T) {
	assert.True(t, Is3D(WGS84Geographic3D))
	assert.False(t, Is3D(WGS84Geographic2D))
	assert.True(t, Is3D(GeocentricCRS{Name: "geocentric", D: datum.WGS84, LengthUnit: unit.Metre}))
	assert.False(t, Is3D(Lambert93))
}

func TestGeographicCRSRoundTrip(t *testing.T) {
	to, err := WGS84Geographic2D.ToGeographic()
	require.NoError(t, err)
	out, err := to.Transform(op.Point{48.5, 2.3})
	require.NoError(t, err)
	assert.InDelta(t, 48.5*math.Pi/180, out[0], 1e-12)
	assert.InDelta(t, 2.3*math.Pi/180, out[1], 1e-12)

	from, err := WGS84Geographic2D.FromGeographic()
	require.NoError(t, err)
	back, err := from.Transform(out)
	require.NoError(t, err)
	assert.InDelta(t, 48.5, back[0], 1e-9)
	assert.InDelta(t, 2.3, back[1], 1e-9)
}

func TestGeographicCRSRejectsOutOfExtent(t *testing.T) {
	to, err := RGF93Geographic2D.ToGeographic()
	require.NoError(t, err)
	_, err = to.Transform(op.Point{10, 2}) // far south of metropolitan France
	assert.Error(t, err)
}

func TestProjectedCRSRoundTrip(t *testing.T) {
	to, err := Lambert93.ToGeographic()
	require.NoError(t, err)
	p := op.Point{700000, 6600000}
	out, err := to.Transform(p.Clone())
	require.NoError(t, err)
	assert.InDelta(t, 46.5*math.Pi/180, out[0], 1e-9)
	assert.InDelta(t, 3.0*math.Pi/180, out[1], 1e-9)

	from, err := Lambert93.FromGeographic()
	require.NoError(t, err)
	back, err := from.Transform(out)
	require.NoError(t, err)
	assert.InDelta(t, p[0], back[0], 1e-3)
	assert.InDelta(t, p[1], back[1], 1e-3)
}

func TestGeocentricCRSRoundTrip(t *testing.T) {
	g := GeocentricCRS{Name: "geocentric", D: datum.WGS84, LengthUnit: unit.Metre}
	to, err := g.ToGeographic()
	require.NoError(t, err)
	p := op.Point{4193793.0, 386507.0, 4732615.0}
	out, err := to.Transform(p.Clone())
	require.NoError(t, err)
	require.Len(t, out, 3)

	from, err := g.FromGeographic()
	require.NoError(t, err)
	back, err := from.Transform(out)
	require.NoError(t, err)
	assert.InDelta(t, p[0], back[0], 1e-3)
	assert.InDelta(t, p[1], back[1], 1e-3)
	assert.InDelta(t, p[2], back[2], 1e-3)
}

func TestVerticalCRSToCanonicalFlipsDepthSign(t *testing.T) {
	depth := VerticalCRS{Name: "soundings", V: datum.VerticalDatum{Name: "chart datum"}, Axis: AxisDepth, LengthUnit: unit.Metre}
	m, err := depth.ToCanonical(12.5)
	require.NoError(t, err)
	assert.Equal(t, -12.5, m)

	back, err := depth.FromCanonical(m)
	require.NoError(t, err)
	assert.Equal(t, 12.5, back)
}

func TestVerticalCRSToCanonicalConvertsUnitsWithoutSignFlip(t *testing.T) {
	height := VerticalCRS{Name: "ellipsoidal-ft", V: datum.GRS80Ellipsoidal, Axis: AxisHeight, LengthUnit: unit.Foot}
	m, err := height.ToCanonical(1)
	require.NoError(t, err)
	assert.InDelta(t, 0.3048, m, 1e-9)
}

func TestVerticalCRSIsEllipsoidalAndGeoidal(t *testing.T) {
	ellipsoidal := VerticalCRS{V: datum.GRS80Ellipsoidal}
	geoidal := VerticalCRS{V: datum.IGN69}
	assert.True(t, ellipsoidal.IsEllipsoidal())
	assert.False(t, ellipsoidal.IsGeoidal())
	assert.True(t, geoidal.IsGeoidal())
	assert.False(t, geoidal.IsEllipsoidal())
}

func TestVerticalCRSCanonicalOpsRoundTrip(t *testing.T) {
	v := VerticalCRS{Name: "soundings", V: datum.VerticalDatum{Name: "chart datum"}, Axis: AxisDepth, LengthUnit: unit.Metre}
	toOp := v.ToCanonicalOp()
	out, err := toOp.Transform(op.Point{5})
	require.NoError(t, err)
	assert.Equal(t, -5.0, out[0])

	fromOp, err := toOp.Inverse()
	require.NoError(t, err)
	back, err := fromOp.Transform(out)
	require.NoError(t, err)
	assert.Equal(t, 5.0, back[0])
}

func TestCompoundCRSIsADataHolder(t *testing.T) {
	c := CompoundCRS{Name: "rgf93+ign69", Horizontal: RGF93Geographic2D, Vertical: VerticalCRS{V: datum.IGN69}}
	assert.Equal(t, KindCompound, c.Kind())
	assert.Equal(t, RGF93Geographic2D.Name, c.Horizontal.(GeographicCRS).Name)
}
