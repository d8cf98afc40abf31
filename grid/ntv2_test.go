package grid

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildMinimalNTv2 assembles a byte-for-byte minimal NTv2 file: one
// top-level 2x2 sub-grid covering 0..1 degree of latitude and longitude,
// every node carrying the same uniform shift so bilinear interpolation is
// trivially checkable regardless of node ordering.
func buildMinimalNTv2(t *testing.T, latShiftArcSec, lonShiftArcSecWest float32) []byte {
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
	writeText := func(tag string, text string) {
		writeTag(tag)
		raw := make([]byte, 8)
		copy(raw, text)
		for i := len(text); i < 8; i++ {
			raw[i] = ' '
		}
		buf.Write(raw)
	}

	const overviewRecords = 6 // NUM_OREC, NUM_SREC, NUM_FILE + 3 dummies below (loop runs overviewRecords-3 times)
	writeInt32("NUM_OREC", overviewRecords)
	writeInt32("NUM_SREC", 11)
	writeInt32("NUM_FILE", 1)
	writeText("GS_TYPE", "SECONDS")
	writeText("VERSION", "TEST")
	writeText("SYSTEM_F", "GRS80")

	writeText("SUB_NAME", "TEST")
	writeText("PARENT", "NONE")
	writeFloat64("S_LAT", 0)
	writeFloat64("N_LAT", 3600)
	writeFloat64("E_LONG", -3600) // positive-west raw; engine negates to +1 deg east
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
	return buf.Bytes()
}

func TestParseNTv2MinimalGrid(t *testing.T) {
	data := buildMinimalNTv2(t, 1.5, -2.5)
	g, err := parseNTv2(bufio.NewReader(bytes.NewReader(data)))
	require.NoError(t, err)
	require.Len(t, g.Roots, 1)

	root := g.Roots[0]
	assert.Equal(t, "TEST", root.Name)
	assert.Equal(t, 2, root.Rows)
	assert.Equal(t, 2, root.Cols)
	assert.InDelta(t, 0, root.MinLat, 1e-12)
	assert.InDelta(t, math.Pi/180, root.MaxLat, 1e-12)
	assert.InDelta(t, 0, root.MinLon, 1e-12)
	assert.InDelta(t, math.Pi/180, root.MaxLon, 1e-12)
}

func TestNTv2LookupInterpolatesUniformShift(t *testing.T) {
	data := buildMinimalNTv2(t, 1.5, -2.5)
	g, err := parseNTv2(bufio.NewReader(bytes.NewReader(data)))
	require.NoError(t, err)

	midLat := (0.5) * math.Pi / 180
	midLon := (0.5) * math.Pi / 180
	dLat, dLon, ok := g.Lookup(midLat, midLon)
	require.True(t, ok)
	assert.InDelta(t, 1.5*arcSecToRad, dLat, 1e-15)
	assert.InDelta(t, 2.5*arcSecToRad, dLon, 1e-15) // stored positive-west negated
}

func TestNTv2LookupOutsideGridFails(t *testing.T) {
	data := buildMinimalNTv2(t, 1.5, -2.5)
	g, err := parseNTv2(bufio.NewReader(bytes.NewReader(data)))
	require.NoError(t, err)

	_, _, ok := g.Lookup(10*math.Pi/180, 10*math.Pi/180)
	assert.False(t, ok)
}
