package xfrm

import (
	"math"

	"github.com/geocts/ctsgo/ctserr"
	"github.com/geocts/ctsgo/op"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// Convention selects which side of the similarity transform the rotation
// matrix is applied un-transposed to, per spec.md §4.3.
type Convention int

const (
	PositionVector Convention = iota
	CoordinateFrame
)

// RotationForm selects how the three small rotations are composed into a
// matrix.
type RotationForm int

const (
	Linearized RotationForm = iota
	Exact
)

// SevenParameterTransformation implements the Bursa-Wolf (3 translations, 3
// rotations, 1 scale) similarity transform between two geocentric frames.
type SevenParameterTransformation struct {
	Tx, Ty, Tz float64 // metres
	Rx, Ry, Rz float64 // radians
	Ds         float64 // dimensionless scale correction
	Convention Convention
	Form       RotationForm
	Prec       float64
}

const arcSecToRad = math.Pi / (180 * 3600)

// NewBursaWolfTransformation is createBursaWolfTransformation from spec.md
// §4.3: rotations in arc-seconds, scale in parts per million, defaulting to
// the Position Vector convention and the linearized rotation form (the
// open question on exact-vs-linearized defaults; see DESIGN.md).
func NewBursaWolfTransformation(tx, ty, tz, rxSec, rySec, rzSec, dsPPM float64) SevenParameterTransformation {
	return SevenParameterTransformation{
		Tx: tx, Ty: ty, Tz: tz,
		Rx: rxSec * arcSecToRad, Ry: rySec * arcSecToRad, Rz: rzSec * arcSecToRad,
		Ds:         dsPPM / 1e6,
		Convention: PositionVector,
		Form:       Linearized,
	}
}

func (s SevenParameterTransformation) rotationMatrix() *mat.Dense {
	var r *mat.Dense
	switch s.Form {
	case Exact:
		rx := mat.NewDense(3, 3, []float64{
			1, 0, 0,
			0, math.Cos(s.Rx), -math.Sin(s.Rx),
			0, math.Sin(s.Rx), math.Cos(s.Rx),
		})
		ry := mat.NewDense(3, 3, []float64{
			math.Cos(s.Ry), 0, math.Sin(s.Ry),
			0, 1, 0,
			-math.Sin(s.Ry), 0, math.Cos(s.Ry),
		})
		rz := mat.NewDense(3, 3, []float64{
			math.Cos(s.Rz), -math.Sin(s.Rz), 0,
			math.Sin(s.Rz), math.Cos(s.Rz), 0,
			0, 0, 1,
		})
		var zy, zyx mat.Dense
		zy.Mul(rz, ry)
		zyx.Mul(&zy, rx)
		r = mat.DenseCopyOf(&zyx)
	default: // Linearized: R = I + skew(r)
		r = mat.NewDense(3, 3, []float64{
			1, -s.Rz, s.Ry,
			s.Rz, 1, -s.Rx,
			-s.Ry, s.Rx, 1,
		})
	}
	if s.Convention == CoordinateFrame {
		var t mat.Dense
		t.CloneFrom(r.T())
		return &t
	}
	return r
}

func (s SevenParameterTransformation) Transform(p op.Point) (op.Point, error) {
	if len(p) < 3 {
		return nil, ctserr.New(ctserr.IllegalCoordinate, "seven-parameter transformation needs 3 ordinates, got %d", len(p))
	}
	r := s.rotationMatrix()
	v := mat.NewVecDense(3, []float64{p[0], p[1], p[2]})
	var rotated mat.VecDense
	rotated.MulVec(r, v)

	scale := 1 + s.Ds
	rotatedVec := r3.Vector{X: rotated.AtVec(0), Y: rotated.AtVec(1), Z: rotated.AtVec(2)}
	translation := r3.Vector{X: s.Tx, Y: s.Ty, Z: s.Tz}
	result := rotatedVec.Mul(scale).Add(translation)

	out := p.Clone()
	out[0], out[1], out[2] = result.X, result.Y, result.Z
	return out, nil
}

func (s SevenParameterTransformation) Inverse() (op.CoordinateOperation, error) {
	if s.Form == Linearized {
		return SevenParameterTransformation{
			Tx: -s.Tx, Ty: -s.Ty, Tz: -s.Tz,
			Rx: -s.Rx, Ry: -s.Ry, Rz: -s.Rz,
			Ds: -s.Ds, Convention: s.Convention, Form: Linearized, Prec: s.Prec,
		}, nil
	}
	return sevenParameterExactInverse{s}, nil
}

func (s SevenParameterTransformation) Precision() float64 { return s.Prec }
func (s SevenParameterTransformation) IsIdentity() bool {
	return s.Tx == 0 && s.Ty == 0 && s.Tz == 0 && s.Rx == 0 && s.Ry == 0 && s.Rz == 0 && s.Ds == 0
}
func (s SevenParameterTransformation) Kind() op.Kind { return op.KindSevenParameter }

func (s SevenParameterTransformation) Equal(other op.CoordinateOperation) bool {
	o, ok := other.(SevenParameterTransformation)
	return ok && o == s
}

// sevenParameterExactInverse inverts the exact-form similarity transform
// algebraically: since R is an orthogonal rotation, R^-1 = R^T, so
// p = R^T((p' - t) / (1+ds)).
type sevenParameterExactInverse struct {
	SevenParameterTransformation
}

func (s sevenParameterExactInverse) Transform(p op.Point) (op.Point, error) {
	if len(p) < 3 {
		return nil, ctserr.New(ctserr.IllegalCoordinate, "seven-parameter transformation inverse needs 3 ordinates, got %d", len(p))
	}
	scale := 1 + s.Ds
	translation := r3.Vector{X: s.Tx, Y: s.Ty, Z: s.Tz}
	untranslated := r3.Vector{X: p[0], Y: p[1], Z: p[2]}.Sub(translation).Mul(1 / scale)

	r := s.rotationMatrix()
	v := mat.NewVecDense(3, []float64{untranslated.X, untranslated.Y, untranslated.Z})
	var rotated mat.VecDense
	rotated.MulVec(r.T(), v)

	out := p.Clone()
	out[0], out[1], out[2] = rotated.AtVec(0), rotated.AtVec(1), rotated.AtVec(2)
	return out, nil
}

func (s sevenParameterExactInverse) Inverse() (op.CoordinateOperation, error) {
	return s.SevenParameterTransformation, nil
}

func (s sevenParameterExactInverse) Equal(other op.CoordinateOperation) bool {
	o, ok := other.(sevenParameterExactInverse)
	return ok && o.SevenParameterTransformation == s.SevenParameterTransformation
}
