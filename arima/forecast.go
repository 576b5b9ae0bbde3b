package arima

import (
	"errors"

	"github.com/tsquared/goarma/timeseries"
)

// Forecast produces point forecasts for steps periods beyond the end of the
// series.
//
// The model is first run one-step-ahead over the differenced history to
// realize the in-sample errors; the last q of them seed the MA window. The
// recurrence then extends the buffer forward with future errors forced to
// zero, so each forecast feeds the AR terms of the next. For d > 0 the
// differenced forecasts are integrated back level by level, seeding each
// integration level with the last value of the correspondingly differenced
// history.
func (m *Model) Forecast(series *timeseries.Series, steps int) ([]float64, error) {
	if steps < 1 {
		return nil, errors.New("arima: steps must be at least 1")
	}

	diffed := series.DiffN(m.d)
	y := diffed.Values
	n := len(y)
	if n <= m.maxOrder() {
		return nil, errors.New("arima: series too short to forecast")
	}

	_, errs := m.onestep(y)

	ext := make([]float64, n+steps)
	copy(ext, y)

	// Seed the MA window with the most recent realized errors, pushed
	// oldest first so the newest ends up at the front.
	w := newMAWindow(m.q)
	for j := m.q; j >= 1; j-- {
		if n-j >= 0 {
			w.push(errs[n-j])
		}
	}

	// The forward section is its own reference, which forces every future
	// error to zero.
	m.iterate(ext, ext, reference(ext), w, n)

	fcst := make([]float64, steps)
	copy(fcst, ext[n:])

	if m.d == 0 {
		return fcst, nil
	}

	// Integrate back: level k's seed is the last value of the k-times
	// differenced history.
	seeds := make([]float64, m.d)
	level := series
	for k := 0; k < m.d; k++ {
		seeds[k] = level.Values[level.Len()-1]
		level = level.Diff()
	}

	cur := fcst
	for k := m.d - 1; k >= 0; k-- {
		next := make([]float64, len(cur))
		acc := seeds[k]
		for j, v := range cur {
			acc += v
			next[j] = acc
		}
		cur = next
	}
	return cur, nil
}
