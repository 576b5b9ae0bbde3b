// Package regress provides ordinary least squares fitting on gonum matrices.
package regress

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrDimensionMismatch is returned when the design matrix and target vector
// have different row counts.
var ErrDimensionMismatch = errors.New("regress: design matrix and target length mismatch")

// OLS fits y = X*beta (+ intercept) by ordinary least squares and returns the
// parameter vector. Unless noIntercept is set, a constant column is prepended
// and the intercept leads the returned vector, followed by one coefficient
// per design column in order.
//
// A rank-deficient design makes the underlying QR solve fail; that error is
// returned unmasked.
func OLS(x *mat.Dense, y []float64, noIntercept bool) ([]float64, error) {
	if x == nil {
		return nil, errors.New("regress: nil design matrix")
	}

	rows, cols := x.Dims()
	if rows != len(y) {
		return nil, ErrDimensionMismatch
	}

	design := x
	if !noIntercept {
		aug := mat.NewDense(rows, cols+1, nil)
		for i := 0; i < rows; i++ {
			aug.Set(i, 0, 1)
			for j := 0; j < cols; j++ {
				aug.Set(i, j+1, x.At(i, j))
			}
		}
		design = aug
		cols++
	}

	if rows < cols {
		return nil, errors.New("regress: fewer observations than parameters")
	}

	var qr mat.QR
	qr.Factorize(design)

	target := mat.NewVecDense(rows, nil)
	for i, v := range y {
		target.SetVec(i, v)
	}

	var beta mat.VecDense
	if err := qr.SolveVecTo(&beta, false, target); err != nil {
		return nil, err
	}

	params := make([]float64, cols)
	for i := range params {
		params[i] = beta.AtVec(i)
	}

	return params, nil
}

// Fitted returns the fitted values X*beta (+ intercept) for parameters
// produced by OLS with the same noIntercept setting.
func Fitted(x *mat.Dense, params []float64, noIntercept bool) []float64 {
	rows, cols := x.Dims()
	out := make([]float64, rows)

	offset := 0
	if !noIntercept {
		offset = 1
	}

	for i := 0; i < rows; i++ {
		v := 0.0
		if !noIntercept {
			v = params[0]
		}
		for j := 0; j < cols && offset+j < len(params); j++ {
			v += params[offset+j] * x.At(i, j)
		}
		out[i] = v
	}

	return out
}
