package timeseries

import "gonum.org/v1/gonum/mat"

// LagMatrix builds a lagged design matrix from the series, trimmed on both
// ends so every row has full lag history. Row i corresponds to time index
// maxLag+i and holds the values at lags 1 through maxLag in increasing lag
// order. With includeOriginal the unlagged value leads each row, giving
// maxLag+1 columns instead of maxLag.
//
// Returns nil if the series is too short to produce a single row.
func (s *Series) LagMatrix(maxLag int, includeOriginal bool) *mat.Dense {
	n := len(s.Values)
	if maxLag <= 0 || n <= maxLag {
		return nil
	}

	rows := n - maxLag
	cols := maxLag
	if includeOriginal {
		cols++
	}

	m := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		t := maxLag + i
		c := 0
		if includeOriginal {
			m.Set(i, c, s.Values[t])
			c++
		}
		for lag := 1; lag <= maxLag; lag++ {
			m.Set(i, c, s.Values[t-lag])
			c++
		}
	}

	return m
}
