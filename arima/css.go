package arima

import "math"

// logLikelihoodCSS computes the conditional-sum-of-squares log-likelihood of
// the model on the differenced series y. The residual sum of squares runs
// only over indices >= max(p,q); earlier positions lack full lag history and
// are excluded from both the sum and the sigma^2 denominator.
func (m *Model) logLikelihoodCSS(y []float64) float64 {
	k := m.maxOrder()
	n := len(y) - k
	if n <= 0 {
		return math.Inf(-1)
	}

	_, errs := m.onestep(y)
	rss := 0.0
	for i := k; i < len(y); i++ {
		rss += errs[i] * errs[i]
	}

	sigma2 := rss / float64(n)
	return -float64(n)/2*math.Log(2*math.Pi*sigma2) - rss/(2*sigma2)
}

// cssGradient computes the analytic gradient of the CSS log-likelihood with
// respect to the coefficient vector, in the model's coefficient layout.
//
// The error derivatives propagate through the MA feedback: with
//
//	e_i = y_i - c - sum_j phi_j*y_{i-j-1} - sum_j theta_j*e_window[j]
//
// each partial obeys de_i/dtheta = -(direct term) - sum_j theta_j *
// de_window[j]/dtheta, carried in a rolling derivative window aligned with
// the error window. Because sigma^2 = RSS/n, the log-likelihood gradient
// reduces to -(1/sigma^2) * sum_i e_i * de_i/dtheta.
func (m *Model) cssGradient(y []float64) []float64 {
	k := m.maxOrder()
	dim := len(m.coeffs)
	icept := m.offset()

	grad := make([]float64, dim)
	n := len(y) - k
	if n <= 0 {
		return grad
	}

	w := newMAWindow(m.q)
	dw := make([][]float64, m.q)
	for j := range dw {
		dw[j] = make([]float64, dim)
	}

	rss := 0.0
	for i := k; i < len(y); i++ {
		v := 0.0
		if m.hasIntercept {
			v += m.coeffs[0]
		}
		for j := 0; j < m.p && i-j-1 >= 0; j++ {
			v += m.arCoeff(j) * y[i-j-1]
		}
		for j := 0; j < m.q; j++ {
			v += m.maCoeff(j) * w.at(j)
		}
		e := y[i] - v

		de := make([]float64, dim)
		if m.hasIntercept {
			de[0] = -1
		}
		for j := 0; j < m.p && i-j-1 >= 0; j++ {
			de[icept+j] = -y[i-j-1]
		}
		for j := 0; j < m.q; j++ {
			de[icept+m.p+j] -= w.at(j)
			theta := m.maCoeff(j)
			for l := 0; l < dim; l++ {
				de[l] -= theta * dw[j][l]
			}
		}

		for l := 0; l < dim; l++ {
			grad[l] += e * de[l]
		}
		rss += e * e

		// Roll both windows, newest first.
		for j := m.q - 1; j > 0; j-- {
			dw[j] = dw[j-1]
		}
		if m.q > 0 {
			dw[0] = de
		}
		w.push(e)
	}

	sigma2 := rss / float64(n)
	if sigma2 == 0 {
		return grad
	}
	for l := range grad {
		grad[l] *= -1 / sigma2
	}
	return grad
}
