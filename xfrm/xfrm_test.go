package xfrm

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/geocts/ctsgo/grid"
	"github.com/geocts/ctsgo/op"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocentricTranslationRoundTrip(t *testing.T) {
	gt := GeocentricTranslation{Tx: -87, Ty: -98, Tz: -121, Prec: 3.0}
	p := op.Point{4000000, 300000, 4800000}

	shifted, err := gt.Transform(p.Clone())
	require.NoError(t, err)
	assert.InDelta(t, p[0]-87, shifted[0], 1e-9)

	inv, err := gt.Inverse()
	require.NoError(t, err)
	back, err := inv.Transform(shifted)
	require.NoError(t, err)
	assert.InDelta(t, p[0], back[0], 1e-9)
	assert.InDelta(t, p[1], back[1], 1e-9)
	assert.InDelta(t, p[2], back[2], 1e-9)
}

func TestBursaWolfLinearizedRoundTrip(t *testing.T) {
	bw := NewBursaWolfTransformation(446.448, -125.157, 542.060, 0.1502, 0.2470, 0.8421, -20.4894)
	p := op.Point{3909594.0, -23837.0, 5023067.0}

	forward, err := bw.Transform(p.Clone())
	require.NoError(t, err)

	inv, err := bw.Inverse()
	require.NoError(t, err)
	back, err := inv.Transform(forward)
	require.NoError(t, err)

	// The linearized inverse is the negated-parameter approximation, exact
	// only to first order; at these small rotation angles the round trip
	// should still agree to sub-millimetre.
	assert.InDelta(t, p[0], back[0], 1e-3)
	assert.InDelta(t, p[1], back[1], 1e-3)
	assert.InDelta(t, p[2], back[2], 1e-3)
}

func TestBursaWolfExactFormRoundTrip(t *testing.T) {
	bw := NewBursaWolfTransformation(100, -50, 75, 5.0, -3.0, 2.0, 10.0)
	bw.Form = Exact
	p := op.Point{4000000.0, 500000.0, 4800000.0}

	forward, err := bw.Transform(p.Clone())
	require.NoError(t, err)

	inv, err := bw.Inverse()
	require.NoError(t, err)
	back, err := inv.Transform(forward)
	require.NoError(t, err)

	assert.InDelta(t, p[0], back[0], 1e-6)
	assert.InDelta(t, p[1], back[1], 1e-6)
	assert.InDelta(t, p[2], back[2], 1e-6)
}

func TestBursaWolfDefaultsToLinearizedPositionVector(t *testing.T) {
	bw := NewBursaWolfTransformation(1, 2, 3, 0, 0, 0, 0)
	assert.Equal(t, Linearized, bw.Form)
	assert.Equal(t, PositionVector, bw.Convention)
}

func TestGeoidHeightCorrectionAppliesUndulation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "n.geoid")
	content := "0 1 0 1 1 1\n44.0 44.0\n44.0 44.0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	g, err := grid.LoadGeoidGrid(path)
	require.NoError(t, err)

	corr := GeoidHeightCorrection{Grid: g, ToEllipsoidal: true, Prec: 0.01}
	p := op.Point{0.3 * math.Pi / 180, 0.3 * math.Pi / 180, 50.0}
	out, err := corr.Transform(p.Clone())
	require.NoError(t, err)
	assert.InDelta(t, 94.0, out[2], 1e-9)

	inv, err := corr.Inverse()
	require.NoError(t, err)
	back, err := inv.Transform(out)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, back[2], 1e-9)
}

func writeNTv2Fixture(t *testing.T, path string, latShiftArcSec, lonShiftArcSecWest float32) {
	t.Helper()
	buf := &bytes.Buffer{}
	order := binary.LittleEndian
	writeTag := func(tag string) {
		b := make([]byte, 8)
		copy(b, tag)
		for i := len(tag); i < 8; i++ {
			b[i] = ' '
		}
		buf.Write(b)
	}
	writeInt32 := func(tag string, v int32) {
		writeTag(tag)
		raw := make([]byte, 8)
		order.PutUint32(raw[0:4], uint32(v))
		buf.Write(raw)
	}
	writeFloat64 := func(tag string, v float64) {
		writeTag(tag)
		raw := make([]byte, 8)
		order.PutUint64(raw, math.Float64bits(v))
		buf.Write(raw)
	}
	writeText := func(tag, text string) {
		writeTag(tag)
		raw := make([]byte, 8)
		copy(raw, text)
		for i := len(text); i < 8; i++ {
			raw[i] = ' '
		}
		buf.Write(raw)
	}

	writeInt32("NUM_OREC", 6)
	writeInt32("NUM_SREC", 11)
	writeInt32("NUM_FILE", 1)
	writeText("GS_TYPE", "SECONDS")
	writeText("VERSION", "TEST")
	writeText("SYSTEM_F", "GRS80")

	writeText("SUB_NAME", "TEST")
	writeText("PARENT", "NONE")
	writeFloat64("S_LAT", 0)
	writeFloat64("N_LAT", 3600)
	writeFloat64("E_LONG", -3600)
	writeFloat64("W_LONG", 0)
	writeFloat64("LAT_INC", 3600)
	writeFloat64("LONG_INC", 3600)
	writeInt32("GS_COUNT", 4)

	for i := 0; i < 4; i++ {
		node := make([]byte, 16)
		order.PutUint32(node[0:4], math.Float32bits(latShiftArcSec))
		order.PutUint32(node[4:8], math.Float32bits(lonShiftArcSecWest))
		buf.Write(node)
	}
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
}

func TestNTv2GridShiftAndInverse(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.gsb")
	writeNTv2Fixture(t, path, 1.5, -2.5)
	g, err := grid.LoadNTv2(path)
	require.NoError(t, err)

	shift := NTv2GridShift{Grid: g, Name: "test.gsb", Prec: 0.1}
	p := op.Point{0.5 * math.Pi / 180, 0.5 * math.Pi / 180}
	out, err := shift.Transform(p.Clone())
	require.NoError(t, err)
	assert.Greater(t, out[0], p[0])

	inv, err := shift.Inverse()
	require.NoError(t, err)
	back, err := inv.Transform(out)
	require.NoError(t, err)
	assert.InDelta(t, p[0], back[0], 1e-12)
	assert.InDelta(t, p[1], back[1], 1e-12)
}

func TestNTv2GridShiftOutOfExtent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.gsb")
	writeNTv2Fixture(t, path, 1.5, -2.5)
	g, err := grid.LoadNTv2(path)
	require.NoError(t, err)

	shift := NTv2GridShift{Grid: g, Name: "test.gsb", Prec: 0.1}
	_, err = shift.Transform(op.Point{10 * math.Pi / 180, 10 * math.Pi / 180})
	require.Error(t, err)
}

func TestFrenchGeocentricGridTransformation(t *testing.T) {
	dir := t.TempDir()
	mk := func(name string, v float64) *grid.GeoidGrid {
		path := filepath.Join(dir, name)
		content := "0 1 0 1 1 1\n" +
			fmtFloat(v) + " " + fmtFloat(v) + "\n" +
			fmtFloat(v) + " " + fmtFloat(v) + "\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		g, err := grid.LoadGeoidGrid(path)
		require.NoError(t, err)
		return g
	}
	tx := mk("tx.grid", -168.0)
	ty := mk("ty.grid", -60.0)
	tz := mk("tz.grid", 320.0)

	fg := FrenchGeocentricGridTransformation{TxGrid: tx, TyGrid: ty, TzGrid: tz, Prec: 0.05}
	// point is (X,Y,Z,phi,lambda): lookup position carried in ordinates 3,4.
	p := op.Point{4000000, 300000, 4800000, 0.3 * math.Pi / 180, 0.3 * math.Pi / 180}
	out, err := fg.Transform(p.Clone())
	require.NoError(t, err)
	assert.InDelta(t, p[0]-168.0, out[0], 1e-6)
	assert.InDelta(t, p[1]-60.0, out[1], 1e-6)
	assert.InDelta(t, p[2]+320.0, out[2], 1e-6)

	inv, err := fg.Inverse()
	require.NoError(t, err)
	back, err := inv.Transform(out)
	require.NoError(t, err)
	assert.InDelta(t, p[0], back[0], 1e-6)
	assert.InDelta(t, p[1], back[1], 1e-6)
	assert.InDelta(t, p[2], back[2], 1e-6)
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
