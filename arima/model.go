// Package arima implements ARIMA (AutoRegressive Integrated Moving Average)
// model fitting, simulation, and forecasting.
package arima

import (
	"fmt"
	"strings"

	"github.com/tsquared/goarma/stats"
)

// Model represents an ARIMA(p,d,q) model with a fixed coefficient layout:
// [intercept?][AR_1..AR_p][MA_1..MA_q], increasing lag order within each
// block. A Model is immutable once constructed and safe for concurrent
// read-only use.
type Model struct {
	p, d, q      int
	coeffs       []float64
	hasIntercept bool
}

// NewModel creates an ARIMA model from known coefficients, for example to
// simulate from fixed parameters. The coefficient vector length must equal
// (hasIntercept?1:0) + p + q.
func NewModel(p, d, q int, coeffs []float64, hasIntercept bool) (*Model, error) {
	if p < 0 || d < 0 || q < 0 {
		return nil, fmt.Errorf("arima: negative order (p=%d, d=%d, q=%d)", p, d, q)
	}

	want := p + q
	if hasIntercept {
		want++
	}
	if len(coeffs) != want {
		return nil, fmt.Errorf("arima: expected %d coefficients for ARIMA(%d,%d,%d), got %d",
			want, p, d, q, len(coeffs))
	}

	c := make([]float64, len(coeffs))
	copy(c, coeffs)
	return &Model{p: p, d: d, q: q, coeffs: c, hasIntercept: hasIntercept}, nil
}

// newModelUnchecked builds a model around a coefficient slice the caller
// guarantees to be correctly sized and exclusively owned. Used on the
// optimizer's hot path.
func newModelUnchecked(p, d, q int, coeffs []float64, hasIntercept bool) *Model {
	return &Model{p: p, d: d, q: q, coeffs: coeffs, hasIntercept: hasIntercept}
}

// P returns the autoregressive order.
func (m *Model) P() int { return m.p }

// D returns the differencing order.
func (m *Model) D() int { return m.d }

// Q returns the moving-average order.
func (m *Model) Q() int { return m.q }

// HasIntercept reports whether the model carries an intercept term.
func (m *Model) HasIntercept() bool { return m.hasIntercept }

// Coeffs returns a copy of the full coefficient vector in the layout
// [intercept?][AR_1..AR_p][MA_1..MA_q].
func (m *Model) Coeffs() []float64 {
	c := make([]float64, len(m.coeffs))
	copy(c, m.coeffs)
	return c
}

// Intercept returns the intercept, or 0 if the model has none.
func (m *Model) Intercept() float64 {
	if !m.hasIntercept {
		return 0
	}
	return m.coeffs[0]
}

// ARCoeffs returns a copy of the AR coefficients in increasing lag order.
func (m *Model) ARCoeffs() []float64 {
	out := make([]float64, m.p)
	copy(out, m.coeffs[m.offset():m.offset()+m.p])
	return out
}

// MACoeffs returns a copy of the MA coefficients in increasing lag order.
func (m *Model) MACoeffs() []float64 {
	out := make([]float64, m.q)
	copy(out, m.coeffs[m.offset()+m.p:])
	return out
}

func (m *Model) offset() int {
	if m.hasIntercept {
		return 1
	}
	return 0
}

func (m *Model) arCoeff(j int) float64 { return m.coeffs[m.offset()+j] }
func (m *Model) maCoeff(j int) float64 { return m.coeffs[m.offset()+m.p+j] }

// maxOrder returns max(p, q), the number of leading positions without full
// lag history.
func (m *Model) maxOrder() int {
	if m.p > m.q {
		return m.p
	}
	return m.q
}

// IsStationary reports whether all roots of the AR characteristic polynomial
//
//	1 - phi_1*x - phi_2*x^2 - ... - phi_p*x^p
//
// lie strictly outside the unit circle. Models with p=0 are stationary by
// construction. Root-solver failures are treated as passing; stationarity is
// a diagnostic, never a gate.
func (m *Model) IsStationary() bool {
	if m.p == 0 {
		return true
	}

	poly := make([]float64, m.p+1)
	poly[0] = 1
	for j := 0; j < m.p; j++ {
		poly[j+1] = -m.arCoeff(j)
	}

	ok, err := stats.RootsOutsideUnitCircle(poly)
	if err != nil {
		return true
	}
	return ok
}

// IsInvertible reports whether all roots of the MA characteristic polynomial
//
//	1 + theta_1*x + theta_2*x^2 + ... + theta_q*x^q
//
// lie strictly outside the unit circle. Models with q=0 are invertible by
// construction, and root-solver failures are treated as passing.
func (m *Model) IsInvertible() bool {
	if m.q == 0 {
		return true
	}

	poly := make([]float64, m.q+1)
	poly[0] = 1
	for j := 0; j < m.q; j++ {
		poly[j+1] = m.maCoeff(j)
	}

	ok, err := stats.RootsOutsideUnitCircle(poly)
	if err != nil {
		return true
	}
	return ok
}

// String returns a compact description of the model.
func (m *Model) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ARIMA(%d,%d,%d)", m.p, m.d, m.q)
	if m.hasIntercept {
		fmt.Fprintf(&b, " c=%.4f", m.coeffs[0])
	}
	if m.p > 0 {
		fmt.Fprintf(&b, " ar=%v", m.ARCoeffs())
	}
	if m.q > 0 {
		fmt.Fprintf(&b, " ma=%v", m.MACoeffs())
	}
	return b.String()
}
