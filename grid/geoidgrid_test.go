package grid

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeGeoidGridFixture writes a 3x3 grid spanning 0..1 degree lat/lon
// (0.5 degree steps) with a simple linear undulation field N = lat + lon,
// so bilinear interpolation has an exactly predictable result everywhere.
func writeGeoidGridFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.geoid")

	content := "0 1 0 1 0.5 0.5\n" +
		"1.0 1.5 2.0\n" + // row 0: lat=1
		"0.5 1.0 1.5\n" + // row 1: lat=0.5
		"0.0 0.5 1.0\n" // row 2: lat=0
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadGeoidGridParsesHeaderAndValues(t *testing.T) {
	path := writeGeoidGridFixture(t)
	g, err := LoadGeoidGrid(path)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows)
	assert.Equal(t, 3, g.Cols)
	assert.Equal(t, 0.5, g.LatStepDeg)
}

func TestGeoidGridInterpolateExactNode(t *testing.T) {
	path := writeGeoidGridFixture(t)
	g, err := LoadGeoidGrid(path)
	require.NoError(t, err)

	n, ok := g.Interpolate(1.0, 0.0)
	require.True(t, ok)
	assert.InDelta(t, 1.0, n, 1e-9)

	n, ok = g.Interpolate(0.0, 1.0)
	require.True(t, ok)
	assert.InDelta(t, 1.0, n, 1e-9)
}

func TestGeoidGridInterpolateBetweenNodes(t *testing.T) {
	path := writeGeoidGridFixture(t)
	g, err := LoadGeoidGrid(path)
	require.NoError(t, err)

	n, ok := g.Interpolate(0.25, 0.25)
	require.True(t, ok)
	assert.InDelta(t, 0.5, n, 1e-9) // N = lat + lon on this fixture
}

func TestGeoidGridInterpolateOutsideBoundsFails(t *testing.T) {
	path := writeGeoidGridFixture(t)
	g, err := LoadGeoidGrid(path)
	require.NoError(t, err)

	_, ok := g.Interpolate(2.0, 0.5)
	assert.False(t, ok)
}

func TestLoadGeoidGridCachedReturnsSameInstance(t *testing.T) {
	path := writeGeoidGridFixture(t)
	a, err := LoadGeoidGridCached(path)
	require.NoError(t, err)
	b, err := LoadGeoidGridCached(path)
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestLoadGeoidGridRejectsMalformedHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.geoid")
	require.NoError(t, os.WriteFile(path, []byte("not a valid header\n"), 0o600))
	_, err := LoadGeoidGrid(path)
	assert.Error(t, err)
}
