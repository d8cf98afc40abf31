package op

import (
	"math"

	"github.com/geocts/ctsgo/ctserr"
)

// IterativeTransformation repeats Inner on the point until, for every i,
// |point[RealIdx[i]] - point[CalcIdx[i]]| < Tol[i], or fails with
// TooManyIterations. Models the generic "apply, compare convergence
// ordinates, repeat" combinator used where a projection's inverse has no
// closed form, or where a grid correction depends on coordinates only
// known after a first pass.
type IterativeTransformation struct {
	Inner           CoordinateOperation
	RealIdx, CalcIdx []int
	Tol             []float64
	MaxIter         int // zero means 12
}

func (it IterativeTransformation) maxIter() int {
	if it.MaxIter != 0 {
		return it.MaxIter
	}
	return 12
}

func (it IterativeTransformation) converged(p Point) bool {
	for i := range it.RealIdx {
		if math.Abs(p[it.RealIdx[i]]-p[it.CalcIdx[i]]) >= it.Tol[i] {
			return false
		}
	}
	return true
}

func (it IterativeTransformation) Transform(p Point) (Point, error) {
	current := p
	var err error
	for i := 0; i < it.maxIter(); i++ {
		current, err = it.Inner.Transform(current)
		if err != nil {
			return nil, err
		}
		if it.converged(current) {
			return current, nil
		}
	}
	return nil, ctserr.New(ctserr.TooManyIterations, "iterative transformation did not converge within %d iterations", it.maxIter())
}

func (it IterativeTransformation) Inverse() (CoordinateOperation, error) {
	inner, err := it.Inner.Inverse()
	if err != nil {
		return nil, err
	}
	return IterativeTransformation{
		Inner:   inner,
		RealIdx: it.RealIdx, CalcIdx: it.CalcIdx, Tol: it.Tol, MaxIter: it.MaxIter,
	}, nil
}

func (it IterativeTransformation) Precision() float64 { return it.Inner.Precision() }
func (it IterativeTransformation) IsIdentity() bool   { return it.Inner.IsIdentity() }
func (it IterativeTransformation) Kind() Kind         { return KindIterative }

func (it IterativeTransformation) Equal(other CoordinateOperation) bool {
	o, ok := other.(IterativeTransformation)
	return ok && o.Inner.Equal(it.Inner) && intsEqual(o.RealIdx, it.RealIdx) && intsEqual(o.CalcIdx, it.CalcIdx)
}
