// Package ar implements pure autoregressive (AR) model fitting.
package ar

import (
	"errors"

	"github.com/tsquared/goarma/regress"
	"github.com/tsquared/goarma/timeseries"
)

// Model represents a fitted AR model
//
//	Y_t = intercept + sum_{j=1..maxLag} coeffs[j-1] * Y_{t-j} + e_t
//
// A Model is immutable once constructed.
type Model struct {
	intercept float64
	coeffs    []float64
}

// NewModel creates an AR model from known parameters. The coefficient at
// index j-1 multiplies the value j steps back.
func NewModel(intercept float64, coeffs []float64) *Model {
	c := make([]float64, len(coeffs))
	copy(c, coeffs)
	return &Model{intercept: intercept, coeffs: c}
}

// Intercept returns the fitted intercept (0 when suppressed at fit time).
func (m *Model) Intercept() float64 {
	return m.intercept
}

// Coeffs returns a copy of the AR coefficients in increasing lag order.
func (m *Model) Coeffs() []float64 {
	c := make([]float64, len(m.coeffs))
	copy(c, m.coeffs)
	return c
}

// MaxLag returns the autoregressive order of the model.
func (m *Model) MaxLag() int {
	return len(m.coeffs)
}

// Option configures AR fitting.
type Option func(*config)

type config struct {
	noIntercept bool
}

// WithoutIntercept suppresses the intercept term during fitting.
func WithoutIntercept() Option {
	return func(c *config) {
		c.noIntercept = true
	}
}

// Fit estimates an AR(maxLag) model by a single OLS regression of the
// series on its first maxLag lags. The series must be longer than maxLag.
func Fit(series *timeseries.Series, maxLag int, opts ...Option) (*Model, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if maxLag < 1 {
		return nil, errors.New("ar: maxLag must be at least 1")
	}

	design := series.LagMatrix(maxLag, false)
	if design == nil {
		return nil, errors.New("ar: series too short for requested lag order")
	}

	target := series.Values[maxLag:]
	params, err := regress.OLS(design, target, cfg.noIntercept)
	if err != nil {
		return nil, err
	}

	intercept := 0.0
	coeffs := params
	if !cfg.noIntercept {
		intercept = params[0]
		coeffs = params[1:]
	}

	return NewModel(intercept, coeffs), nil
}

// Residuals strips the model's time-dependent structure from the series,
// returning the implied error sequence. Indices before maxLag lack full
// lag history; their residual is the observation minus the intercept.
func (m *Model) Residuals(series *timeseries.Series) *timeseries.Series {
	lag := m.MaxLag()
	y := series.Values
	errs := make([]float64, len(y))

	for i := range y {
		e := y[i] - m.intercept
		if i >= lag {
			for j := 1; j <= lag; j++ {
				e -= m.coeffs[j-1] * y[i-j]
			}
		}
		errs[i] = e
	}

	return timeseries.New(errs)
}

// Reconstruct applies the model's time-dependent structure to an error
// sequence, synthesizing the observed series. It is the exact inverse of
// Residuals: Reconstruct(Residuals(s)) reproduces s.
func (m *Model) Reconstruct(errors *timeseries.Series) *timeseries.Series {
	lag := m.MaxLag()
	e := errors.Values
	out := make([]float64, len(e))

	for i := range e {
		v := e[i] + m.intercept
		if i >= lag {
			for j := 1; j <= lag; j++ {
				v += m.coeffs[j-1] * out[i-j]
			}
		}
		out[i] = v
	}

	return timeseries.New(out)
}
