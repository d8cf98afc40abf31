package proj

import (
	"math"
	"testing"

	"github.com/geocts/ctsgo/ellipsoid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ukNationalGridParams() Params {
	return Params{
		Ellipsoid:        ellipsoid.Airy1830,
		CentralMeridian:  -2 * math.Pi / 180,
		LatitudeOfOrigin: 49 * math.Pi / 180,
		ScaleFactor:      0.9996012717,
		FalseEasting:     400000,
		FalseNorthing:    -100000,
	}
}

func TestTransverseMercatorRoundTrip(t *testing.T) {
	tm := TransverseMercator{Params: ukNationalGridParams()}
	p := []float64{52.1 * math.Pi / 180, -0.5 * math.Pi / 180}

	en, err := tm.Transform(p)
	require.NoError(t, err)

	inv, err := tm.Inverse()
	require.NoError(t, err)
	back, err := inv.Transform(en)
	require.NoError(t, err)

	assert.InDelta(t, p[0], back[0], 1e-10)
	assert.InDelta(t, p[1], back[1], 1e-10)
}

func TestTransverseMercatorPreservesHeight(t *testing.T) {
	tm := TransverseMercator{Params: ukNationalGridParams()}
	p := []float64{52.0 * math.Pi / 180, -1.0 * math.Pi / 180, 123.45}

	out, err := tm.Transform(p)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, 123.45, out[2])
}

func TestTransverseMercatorAtOriginMatchesFalseOrigin(t *testing.T) {
	params := ukNationalGridParams()
	tm := TransverseMercator{Params: params}
	p := []float64{params.LatitudeOfOrigin, params.CentralMeridian}

	out, err := tm.Transform(p)
	require.NoError(t, err)
	assert.InDelta(t, params.FalseEasting, out[0], 1e-6)
	assert.InDelta(t, params.FalseNorthing, out[1], 1e-6)
}

func TestNewUTMParameters(t *testing.T) {
	utm := NewUTM(Params{Ellipsoid: ellipsoid.WGS84}, 31, false)
	assert.InDelta(t, 3*math.Pi/180, utm.CentralMeridian, 1e-12)
	assert.Equal(t, 0.9996, utm.ScaleFactor)
	assert.Equal(t, 500000.0, utm.FalseEasting)
	assert.Equal(t, 0.0, utm.FalseNorthing)

	south := NewUTM(Params{Ellipsoid: ellipsoid.WGS84}, 31, true)
	assert.Equal(t, 10000000.0, south.FalseNorthing)
}
