package arima

import "github.com/tsquared/goarma/timeseries"

// maWindow is the rolling window of the q most recent errors, newest first:
// errs[0] is the latest error, errs[q-1] the oldest still in reach of the
// MA terms. It is rebuilt for every recurrence pass and never stored on a
// model.
type maWindow struct {
	errs []float64
}

func newMAWindow(q int) *maWindow {
	return &maWindow{errs: make([]float64, q)}
}

// push inserts e as the newest error, aging the rest and discarding the
// error that falls out of the window.
func (w *maWindow) push(e float64) {
	if len(w.errs) == 0 {
		return
	}
	copy(w.errs[1:], w.errs[:len(w.errs)-1])
	w.errs[0] = e
}

// at returns the error j steps back, j in [0, q).
func (w *maWindow) at(j int) float64 {
	return w.errs[j]
}

// sourceKind tags how the recurrence derives the error at each step.
type sourceKind int

const (
	// referenceDriven derives each error as the reference value minus the
	// combined output (one-step prediction error).
	referenceDriven sourceKind = iota
	// errorDriven takes each error directly from a supplied sequence.
	errorDriven
)

// errorSource pairs a sourceKind with its backing series. Exactly one
// series drives a recurrence pass.
type errorSource struct {
	kind   sourceKind
	series []float64
}

func reference(series []float64) errorSource {
	return errorSource{kind: referenceDriven, series: series}
}

func explicitErrors(series []float64) errorSource {
	return errorSource{kind: errorDriven, series: series}
}

// iterate drives the shared ARMA recurrence over out from index start. At
// each step it combines the intercept, the available AR contributions read
// from ts, and the MA contributions read from the rolling error window,
// stores the result in out, derives the step's error from src, and rolls
// the window.
//
// ts supplies the AR lag history; passing out itself makes the recurrence
// read its own output, which is how forward simulation and forecasting
// consume previously generated values. Returns the per-index error
// sequence; entries before start are zero.
func (m *Model) iterate(ts, out []float64, src errorSource, w *maWindow, start int) []float64 {
	errs := make([]float64, len(out))

	for i := start; i < len(out); i++ {
		v := out[i]
		if m.hasIntercept {
			v += m.coeffs[0]
		}
		for j := 0; j < m.p && i-j-1 >= 0; j++ {
			v += m.arCoeff(j) * ts[i-j-1]
		}
		for j := 0; j < m.q; j++ {
			v += m.maCoeff(j) * w.at(j)
		}
		out[i] = v

		var e float64
		switch src.kind {
		case referenceDriven:
			e = src.series[i] - v
		case errorDriven:
			e = src.series[i]
		}
		w.push(e)
		errs[i] = e
	}

	return errs
}

// onestep computes in-sample one-step-ahead predictions for the differenced
// series y, along with the error sequence they imply. The first max(p,q)
// positions lack full lag history: their prediction is seeded with the
// intercept (or zero without one) to stand in for pre-series values, and
// their errors do not enter the MA window.
func (m *Model) onestep(y []float64) (preds, errs []float64) {
	k := m.maxOrder()
	preds = make([]float64, len(y))
	for i := 0; i < k && i < len(preds); i++ {
		preds[i] = m.Intercept()
	}

	errs = m.iterate(y, preds, reference(y), newMAWindow(m.q), k)
	for i := 0; i < k && i < len(y); i++ {
		errs[i] = y[i] - preds[i]
	}
	return preds, errs
}

// Residuals strips the model's time-dependent structure from the series:
// it differences by d, runs the recurrence against the differenced
// observations, and returns the implied error sequence. The result is d
// entries shorter than the input.
func (m *Model) Residuals(series *timeseries.Series) *timeseries.Series {
	y := series.DiffN(m.d).Values
	_, errs := m.onestep(y)
	return timeseries.New(errs)
}

// Simulate applies the model's time-dependent structure to an error
// sequence, synthesizing an observed series. For d > 0 the generated
// differenced values are integrated back with zero seeds, since a purely
// synthetic series has no observed history to integrate against.
//
// Simulate inverts Residuals: for d = 0, Simulate(Residuals(s)) reproduces
// s exactly.
func (m *Model) Simulate(errors *timeseries.Series) *timeseries.Series {
	e := errors.Values
	out := make([]float64, len(e))
	copy(out, e)

	k := m.maxOrder()
	for i := 0; i < k && i < len(out); i++ {
		out[i] += m.Intercept()
	}

	m.iterate(out, out, explicitErrors(e), newMAWindow(m.q), k)

	sim := timeseries.New(out)
	if m.d > 0 {
		sim = sim.InverseDiffN(make([]float64, m.d))
	}
	return sim
}
