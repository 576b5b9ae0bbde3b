package arima

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"

	"github.com/tsquared/goarma/ar"
	"github.com/tsquared/goarma/regress"
	"github.com/tsquared/goarma/stats"
	"github.com/tsquared/goarma/timeseries"
)

// Method selects the conditional-sum-of-squares optimization strategy.
type Method string

const (
	// MethodCSS maximizes the CSS log-likelihood with a derivative-free
	// Nelder-Mead search. This is the default.
	MethodCSS Method = "css"
	// MethodCSSCGD maximizes the CSS log-likelihood with a Fletcher-Reeves
	// conjugate-gradient search driven by the analytic gradient.
	MethodCSSCGD Method = "css-cgd"
)

// ErrUnknownMethod is returned by Fit for an unsupported Method value.
var ErrUnknownMethod = errors.New("arima: unknown fitting method")

// Iteration and evaluation ceilings for the optimizers. Hitting a ceiling
// is not an error: the best point found is accepted.
const (
	maxIterations  = 10000
	maxEvaluations = 10000
)

// FitOption configures ARIMA fitting.
type FitOption func(*fitConfig)

type fitConfig struct {
	method      Method
	noIntercept bool
	initParams  []float64
}

// WithMethod selects the optimization strategy.
func WithMethod(m Method) FitOption {
	return func(c *fitConfig) {
		c.method = m
	}
}

// WithoutIntercept suppresses the intercept term.
func WithoutIntercept() FitOption {
	return func(c *fitConfig) {
		c.noIntercept = true
	}
}

// WithInitParams supplies the optimizer's starting coefficient vector in
// the model's layout, bypassing Hannan-Rissanen initialization. The length
// must equal (intercept?1:0) + p + q.
func WithInitParams(params []float64) FitOption {
	return func(c *fitConfig) {
		c.initParams = params
	}
}

// FitResult carries a fitted model together with its diagnostics. The
// stationarity and invertibility flags are informational: a violating fit
// is still returned, and the caller decides how to surface the condition.
type FitResult struct {
	Model      *Model
	Stationary bool
	Invertible bool

	Sigma2 float64 // residual variance over the CSS window
	NObs   int     // observations entering the CSS likelihood
	IC     *stats.InformationCriteria
}

// LjungBox runs the Ljung-Box residual autocorrelation test on the fit.
func (r *FitResult) LjungBox(series *timeseries.Series, lags int) *stats.LjungBoxResult {
	resid := r.Model.Residuals(series)
	return stats.LjungBox(resid, lags, r.Model.P()+r.Model.Q())
}

// Fit estimates an ARIMA(p,d,q) model on the series by conditional sum of
// squares. The series is differenced d times, initial coefficients come
// from Hannan-Rissanen (or WithInitParams), and the selected strategy
// maximizes the CSS log-likelihood. Pure AR specifications (p>0, q=0) are
// fitted by a single OLS regression with no optimizer involved.
func Fit(series *timeseries.Series, p, d, q int, opts ...FitOption) (*FitResult, error) {
	cfg := fitConfig{method: MethodCSS}
	for _, opt := range opts {
		opt(&cfg)
	}

	if p < 0 || d < 0 || q < 0 {
		return nil, fmt.Errorf("arima: negative order (p=%d, d=%d, q=%d)", p, d, q)
	}
	switch cfg.method {
	case MethodCSS, MethodCSSCGD:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, cfg.method)
	}

	diffed := series.DiffN(d)
	hasIntercept := !cfg.noIntercept

	dim := p + q
	if hasIntercept {
		dim++
	}

	var coeffs []float64
	switch {
	case p == 0 && q == 0:
		// White-noise model: nothing to optimize.
		coeffs = []float64{}
		if hasIntercept {
			coeffs = []float64{diffed.Mean()}
		}

	case q == 0:
		// Pure AR: a single OLS fit is exact for CSS, no optimizer needed.
		var arOpts []ar.Option
		if cfg.noIntercept {
			arOpts = append(arOpts, ar.WithoutIntercept())
		}
		arModel, err := ar.Fit(diffed, p, arOpts...)
		if err != nil {
			return nil, err
		}
		coeffs = make([]float64, 0, dim)
		if hasIntercept {
			coeffs = append(coeffs, arModel.Intercept())
		}
		coeffs = append(coeffs, arModel.Coeffs()...)

	default:
		init := cfg.initParams
		if init != nil {
			if len(init) != dim {
				return nil, fmt.Errorf("arima: expected %d initial parameters, got %d", dim, len(init))
			}
		} else {
			var err error
			init, err = hannanRissanen(diffed, p, q, hasIntercept)
			if err != nil {
				return nil, err
			}
		}

		var err error
		coeffs, err = optimizeCSS(diffed.Values, p, d, q, hasIntercept, init, cfg.method)
		if err != nil {
			return nil, err
		}
	}

	model := newModelUnchecked(p, d, q, coeffs, hasIntercept)

	k := model.maxOrder()
	nObs := diffed.Len() - k
	logLik := model.logLikelihoodCSS(diffed.Values)

	sigma2 := math.NaN()
	if nObs > 0 {
		_, errs := model.onestep(diffed.Values)
		rss := 0.0
		for i := k; i < len(errs); i++ {
			rss += errs[i] * errs[i]
		}
		sigma2 = rss / float64(nObs)
	}

	return &FitResult{
		Model:      model,
		Stationary: model.IsStationary(),
		Invertible: model.IsInvertible(),
		Sigma2:     sigma2,
		NObs:       nObs,
		IC:         stats.CalculateIC(logLik, nObs, len(coeffs)),
	}, nil
}

// hannanRissanen produces an initial coefficient guess for the nonlinear
// optimization. It fits an auxiliary AR(max(p,q)+1) model to estimate the
// error sequence, then regresses the series on p of its own lags
// concatenated with q lags of the estimated errors, aligned on time index.
func hannanRissanen(diffed *timeseries.Series, p, q int, includeIntercept bool) ([]float64, error) {
	y := diffed.Values
	n := len(y)

	mo := p
	if q > mo {
		mo = q
	}
	mo++

	aux, err := ar.Fit(diffed, mo)
	if err != nil {
		return nil, fmt.Errorf("arima: hannan-rissanen auxiliary fit: %w", err)
	}

	// resid[t-mo] estimates the error at time t; only indices with full
	// AR(mo) lag history are usable.
	resid := aux.Residuals(diffed).Values[mo:]

	// The first usable row needs q error lags on top of the mo seed
	// observations; mo > p already covers the AR lags.
	start := mo + q
	rows := n - start
	if rows < p+q+1 {
		return nil, errors.New("arima: series too short for hannan-rissanen initialization")
	}

	design := mat.NewDense(rows, p+q, nil)
	target := make([]float64, rows)
	for i := 0; i < rows; i++ {
		t := start + i
		target[i] = y[t]
		for j := 1; j <= p; j++ {
			design.Set(i, j-1, y[t-j])
		}
		for j := 1; j <= q; j++ {
			design.Set(i, p+j-1, resid[t-j-mo])
		}
	}

	params, err := regress.OLS(design, target, !includeIntercept)
	if err != nil {
		return nil, fmt.Errorf("arima: hannan-rissanen regression: %w", err)
	}
	return params, nil
}

// optimizeCSS maximizes the CSS log-likelihood from the initial point with
// the selected strategy and returns the best coefficient vector found.
func optimizeCSS(y []float64, p, d, q int, hasIntercept bool, init []float64, method Method) ([]float64, error) {
	modelFor := func(x []float64) *Model {
		c := make([]float64, len(x))
		copy(c, x)
		return newModelUnchecked(p, d, q, c, hasIntercept)
	}

	// gonum minimizes, so both strategies work on the negated likelihood.
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			return -modelFor(x).logLikelihoodCSS(y)
		},
	}

	settings := &optimize.Settings{
		MajorIterations: maxIterations,
		FuncEvaluations: maxEvaluations,
	}

	var strategy optimize.Method
	switch method {
	case MethodCSS:
		// Initial simplex scaled to the starting point, capped below 1.
		size := 0.0
		for _, v := range init {
			if a := math.Abs(v); a > size {
				size = a
			}
		}
		strategy = &optimize.NelderMead{SimplexSize: math.Min(0.96, 0.2*size)}

	case MethodCSSCGD:
		problem.Grad = func(grad, x []float64) {
			g := modelFor(x).cssGradient(y)
			for i := range grad {
				grad[i] = -g[i]
			}
		}
		settings.Converger = &optimize.FunctionConverge{
			Absolute:   1e-7,
			Relative:   1e-7,
			Iterations: 20,
		}
		strategy = &optimize.CG{Variant: &optimize.FletcherReeves{}}

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}

	start := make([]float64, len(init))
	copy(start, init)

	result, err := optimize.Minimize(problem, start, settings, strategy)
	if err != nil && (result == nil || len(result.X) == 0) {
		return nil, err
	}
	// Cap exhaustion or non-convergence still yields the best point found;
	// accept it.
	return result.X, nil
}
