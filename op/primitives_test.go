package op

import (
	"math"
	"testing"

	"github.com/geocts/ctsgo/ctserr"
	"github.com/geocts/ctsgo/ellipsoid"
	"github.com/geocts/ctsgo/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeCoordinateDimensionGrowsAndShrinks(t *testing.T) {
	grown, err := TO3D.Transform(Point{1, 2})
	require.NoError(t, err)
	assert.Equal(t, Point{1, 2, 0}, grown)

	shrunk, err := TO2D.Transform(Point{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, Point{1, 2}, shrunk)

	assert.True(t, TO3D.IsIdentity() == false)
	inv, err := TO3D.Inverse()
	require.NoError(t, err)
	assert.Equal(t, TO2D, inv)
}

func TestChangeCoordinateDimensionRejectsShortInput(t *testing.T) {
	_, err := TO3D.Transform(Point{1})
	require.Error(t, err)
	assert.True(t, ctserr.Is(err, ctserr.IllegalCoordinate))
}

func TestCheckInExtentBoundary(t *testing.T) {
	check := CheckInExtent{Bounds: Rectangle{MinX: -10, MaxX: 10, MinY: -5, MaxY: 5}}

	in, err := check.Transform(Point{0, 0})
	require.NoError(t, err)
	assert.Equal(t, Point{0, 0}, in)

	_, err = check.Transform(Point{11, 0})
	require.Error(t, err)
	assert.True(t, ctserr.Is(err, ctserr.OutOfExtent))
}

func TestCheckInExtentRejectsNaN(t *testing.T) {
	check := CheckInExtent{Bounds: Rectangle{MinX: -180, MaxX: 180, MinY: -90, MaxY: 90}}
	_, err := check.Transform(Point{math.NaN(), 0})
	require.Error(t, err)
	assert.True(t, ctserr.Is(err, ctserr.IllegalCoordinate))
}

func TestMemorizeAndLoadMemorizeRoundTrip(t *testing.T) {
	mem := MemorizeCoordinate{Idx: []int{2}}
	p := Point{1, 2, 3}

	memorized, err := mem.Transform(p.Clone())
	require.NoError(t, err)
	assert.Equal(t, Point{1, 2, 3, 3}, memorized)

	load := LoadMemorizeCoordinate{Idx: []int{2}}
	restored, err := load.Transform(memorized)
	require.NoError(t, err)
	assert.Equal(t, p, restored)
}

func TestMemorizeSurvivesAnIntermediateMutation(t *testing.T) {
	// The pattern compound-CRS handling relies on: memorize height, run a
	// horizontal-only stage that clobbers position 2, then reload it.
	mem := MemorizeCoordinate{Idx: []int{2}}
	p, err := mem.Transform(Point{1, 2, 100})
	require.NoError(t, err)

	p[2] = -999 // simulate a stage that overwrites the live height slot

	load := LoadMemorizeCoordinate{Idx: []int{2}}
	restored, err := load.Transform(p)
	require.NoError(t, err)
	assert.Equal(t, 100.0, restored[2])
}

func TestCoordinateSwitchIsSelfInverse(t *testing.T) {
	sw := CoordinateSwitch{I: 0, J: 1}
	p, err := sw.Transform(Point{1, 2})
	require.NoError(t, err)
	assert.Equal(t, Point{2, 1}, p)

	inv, err := sw.Inverse()
	require.NoError(t, err)
	back, err := inv.Transform(p)
	require.NoError(t, err)
	assert.Equal(t, Point{1, 2}, back)
}

func TestOppositeCoordinateNegates(t *testing.T) {
	neg := OppositeCoordinate{I: 0}
	p, err := neg.Transform(Point{5, 2})
	require.NoError(t, err)
	assert.Equal(t, Point{-5, 2}, p)
}

func TestUnitConversionLeavesTrailingOrdinatesAlone(t *testing.T) {
	conv := UnitConversion{Source: []unit.Unit{unit.Degree, unit.Degree}, Target: []unit.Unit{unit.Radian, unit.Radian}}
	p := Point{180, 90, 12345} // ordinate 2 is not covered by Source/Target

	out, err := conv.Transform(p.Clone())
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, out[0], 1e-9)
	assert.InDelta(t, math.Pi/2, out[1], 1e-9)
	assert.Equal(t, 12345.0, out[2])
}

func TestUnitConversionIsIdentityWhenUnitsMatch(t *testing.T) {
	same := UnitConversion{Source: []unit.Unit{unit.Metre}, Target: []unit.Unit{unit.Metre}}
	assert.True(t, same.IsIdentity())

	different := UnitConversion{Source: []unit.Unit{unit.Metre}, Target: []unit.Unit{unit.Kilometre}}
	assert.False(t, different.IsIdentity())
}

func TestLongitudeRotationInverse(t *testing.T) {
	rot := LongitudeRotation{ThetaRad: 0.0407919796} // ~Paris meridian offset
	p, err := rot.Transform(Point{0.5, 0.1})
	require.NoError(t, err)

	inv, err := rot.Inverse()
	require.NoError(t, err)
	back, err := inv.Transform(p)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, back[1], 1e-12)
}

func TestGeocentricConversionRoundTripAtEquator(t *testing.T) {
	g2gc := Geographic2Geocentric{Ellipsoid: ellipsoid.WGS84}
	gc2g := Geocentric2Geographic{Ellipsoid: ellipsoid.WGS84}

	p := Point{0, 0, 0}
	xyz, err := g2gc.Transform(p.Clone())
	require.NoError(t, err)
	assert.InDelta(t, ellipsoid.WGS84.A(), xyz[0], 1e-6)

	back, err := gc2g.Transform(xyz)
	require.NoError(t, err)
	assert.InDelta(t, 0, back[0], 1e-12)
	assert.InDelta(t, 0, back[1], 1e-12)
	assert.InDelta(t, 0, back[2], 1e-6)
}

func TestGeographic2GeocentricPadsMissingHeight(t *testing.T) {
	g2gc := Geographic2Geocentric{Ellipsoid: ellipsoid.WGS84}
	with0, err := g2gc.Transform(Point{0.3, 0.1, 0})
	require.NoError(t, err)
	without, err := g2gc.Transform(Point{0.3, 0.1})
	require.NoError(t, err)
	assert.Equal(t, with0, without)
}

func TestRoundingToResolution(t *testing.T) {
	r := CoordinateRounding{Resolution: 0.01}
	p, err := r.Transform(Point{1.236, -1.234})
	require.NoError(t, err)
	assert.InDelta(t, 1.24, p[0], 1e-9)
	assert.InDelta(t, -1.23, p[1], 1e-9)
}
