package stats

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrNoRoots is returned when a polynomial has no roots to solve for
// (degree below one after trimming leading zero coefficients).
var ErrNoRoots = errors.New("stats: polynomial has no roots")

// PolyRoots finds all complex roots of the polynomial
//
//	c[0] + c[1]*x + c[2]*x^2 + ... + c[n]*x^n
//
// by computing the eigenvalues of its companion matrix.
func PolyRoots(coeffs []float64) ([]complex128, error) {
	// Trim vanishing leading coefficients so the companion matrix is
	// well defined.
	n := len(coeffs) - 1
	for n > 0 && math.Abs(coeffs[n]) < 1e-14 {
		n--
	}
	if n < 1 {
		return nil, ErrNoRoots
	}

	c := mat.NewDense(n, n, nil)
	for i := 1; i < n; i++ {
		c.Set(i, i-1, 1)
	}
	for i := 0; i < n; i++ {
		c.Set(i, n-1, -coeffs[i]/coeffs[n])
	}

	var eig mat.Eigen
	if ok := eig.Factorize(c, mat.EigenNone); !ok {
		return nil, errors.New("stats: eigen decomposition failed")
	}

	return eig.Values(nil), nil
}

// RootsOutsideUnitCircle reports whether every root of the polynomial lies
// strictly outside the complex unit circle. It is the shared feasibility
// check behind AR stationarity and MA invertibility.
func RootsOutsideUnitCircle(coeffs []float64) (bool, error) {
	roots, err := PolyRoots(coeffs)
	if err != nil {
		return false, err
	}

	for _, r := range roots {
		re, im := real(r), imag(r)
		if math.Sqrt(re*re+im*im) <= 1 {
			return false, nil
		}
	}
	return true, nil
}
