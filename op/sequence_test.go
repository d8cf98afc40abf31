package op

import (
	"math"
	"testing"

	"github.com/geocts/ctsgo/ellipsoid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityComposition(t *testing.T) {
	g2gc := Geographic2Geocentric{Ellipsoid: ellipsoid.WGS84}
	p := Point{0.9, 0.1, 100}

	forward, err := g2gc.Transform(p.Clone())
	require.NoError(t, err)

	inv, err := g2gc.Inverse()
	require.NoError(t, err)
	back, err := inv.Transform(forward)
	require.NoError(t, err)

	assert.InDelta(t, p[0], back[0], 1e-9)
	assert.InDelta(t, p[1], back[1], 1e-9)
	assert.InDelta(t, p[2], back[2], 1e-3)
}

func TestRoundingIsIdempotent(t *testing.T) {
	r := CoordinateRounding{Resolution: 0.001}
	p := Point{1.23456, 7.89012}

	once, err := r.Transform(p.Clone())
	require.NoError(t, err)
	twice, err := r.Transform(once.Clone())
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestCleaningIsIdempotent(t *testing.T) {
	seq := NewSequence([]CoordinateOperation{
		LongitudeRotation{ThetaRad: 0.1},
		LongitudeRotation{ThetaRad: -0.1},
		TO3D,
	})
	again := NewSequence(seq.Members())
	assert.True(t, seq.Equal(again))
}

func TestInverseCancellationInCleaner(t *testing.T) {
	a := LongitudeRotation{ThetaRad: 0.25}
	aInv, err := a.Inverse()
	require.NoError(t, err)

	seq := NewSequence([]CoordinateOperation{a, aInv})
	assert.True(t, seq.IsIdentity())
	assert.Len(t, seq.Members(), 1)
	assert.Equal(t, Identity, seq.Members()[0])
}

func TestTO3DTO2DCancellation(t *testing.T) {
	seq1 := NewSequence([]CoordinateOperation{TO3D, TO2D})
	assert.True(t, seq1.IsIdentity())

	seq2 := NewSequence([]CoordinateOperation{TO2D, TO3D})
	assert.True(t, seq2.IsIdentity())
}

func TestSequenceFlattensNested(t *testing.T) {
	inner := NewSequence([]CoordinateOperation{LongitudeRotation{ThetaRad: 0.1}})
	outer := NewSequence([]CoordinateOperation{inner, LongitudeRotation{ThetaRad: 0.2}})
	require.Len(t, outer.Members(), 2)
	_, isSeq := outer.Members()[0].(Sequence)
	assert.False(t, isSeq)
}

func TestSequenceIncludesKind(t *testing.T) {
	seq := NewSequence([]CoordinateOperation{
		Geographic2Geocentric{Ellipsoid: ellipsoid.WGS84},
	})
	assert.True(t, seq.Includes(KindGeographicToGeocentric))
	assert.False(t, seq.Includes(KindNTv2))
}

func TestGeocentricRoundTripNearPole(t *testing.T) {
	g2gc := Geographic2Geocentric{Ellipsoid: ellipsoid.WGS84}
	gc2g := Geocentric2Geographic{Ellipsoid: ellipsoid.WGS84}

	p := Point{89.999 * math.Pi / 180, 0, 0}
	xyz, err := g2gc.Transform(p.Clone())
	require.NoError(t, err)
	back, err := gc2g.Transform(xyz)
	require.NoError(t, err)

	assert.InDelta(t, p[0], back[0], 1e-9)
}

func TestIterativeTransformationTooManyIterations(t *testing.T) {
	never := neverConvergingOp{}
	it := IterativeTransformation{
		Inner:   never,
		RealIdx: []int{0},
		CalcIdx: []int{1},
		Tol:     []float64{1e-12},
		MaxIter: 3,
	}
	_, err := it.Transform(Point{0, 1})
	require.Error(t, err)
}

type neverConvergingOp struct{}

func (neverConvergingOp) Transform(p Point) (Point, error) { return p, nil }
func (neverConvergingOp) Inverse() (CoordinateOperation, error) { return neverConvergingOp{}, nil }
func (neverConvergingOp) Precision() float64 { return 0 }
func (neverConvergingOp) IsIdentity() bool   { return false }
func (neverConvergingOp) Kind() Kind         { return KindIdentity }
func (neverConvergingOp) Equal(other CoordinateOperation) bool { _, ok := other.(neverConvergingOp); return ok }
