// Package main demonstrates ARMA/ARIMA fitting, diagnostics, and forecasting
// on synthetic series with known structure, or on a CSV file supplied on the
// command line.
package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"strings"

	"github.com/tsquared/goarma/ar"
	"github.com/tsquared/goarma/arima"
	"github.com/tsquared/goarma/stats"
	"github.com/tsquared/goarma/timeseries"
)

// Dataset pairs a series with the candidate orders worth trying on it.
type Dataset struct {
	Name        string
	Description string
	Series      *timeseries.Series
	Candidates  [][3]int // (p,d,q) triples to fit
}

func main() {
	fmt.Println(strings.Repeat("=", 72))
	fmt.Println("GoARMA Demonstration - ARIMA fitting and forecasting")
	fmt.Println(strings.Repeat("=", 72))

	datasets := syntheticDatasets()
	if len(os.Args) > 1 {
		if ds, err := loadCSVDataset(os.Args[1]); err == nil {
			datasets = append(datasets, ds)
		} else {
			fmt.Printf("skipping %s: %v\n", os.Args[1], err)
		}
	}

	for i, ds := range datasets {
		fmt.Printf("\n%s\n[%d/%d] %s - %s\n%s\n",
			strings.Repeat("=", 72), i+1, len(datasets), ds.Name, ds.Description,
			strings.Repeat("=", 72))
		analyze(ds)
	}
}

// syntheticDatasets builds series from known generating processes so the
// fitted coefficients can be eyeballed against the truth.
func syntheticDatasets() []Dataset {
	r := rand.New(rand.NewSource(42))

	noise := func(n int) *timeseries.Series {
		e := make([]float64, n)
		for i := range e {
			e[i] = r.NormFloat64()
		}
		return timeseries.New(e)
	}

	ar2, _ := arima.NewModel(2, 0, 0, []float64{2.0, 0.6, -0.3}, true)
	arma11, _ := arima.NewModel(1, 0, 1, []float64{1.0, 0.7, 0.4}, true)
	drift, _ := arima.NewModel(1, 1, 0, []float64{0.5, 0.4}, true)

	return []Dataset{
		{
			Name:        "AR(2)",
			Description: "y_t = 2 + 0.6*y_{t-1} - 0.3*y_{t-2} + e_t",
			Series:      ar2.Simulate(noise(400)),
			Candidates:  [][3]int{{1, 0, 0}, {2, 0, 0}, {3, 0, 0}},
		},
		{
			Name:        "ARMA(1,1)",
			Description: "y_t = 1 + 0.7*y_{t-1} + 0.4*e_{t-1} + e_t",
			Series:      arma11.Simulate(noise(400)),
			Candidates:  [][3]int{{1, 0, 0}, {0, 0, 1}, {1, 0, 1}},
		},
		{
			Name:        "ARI(1,1) with drift",
			Description: "differenced series follows AR(1) around a drift",
			Series:      drift.Simulate(noise(400)),
			Candidates:  [][3]int{{1, 1, 0}, {0, 1, 1}, {1, 1, 1}},
		},
	}
}

func loadCSVDataset(path string) (Dataset, error) {
	series, err := timeseries.LoadCSV(path, timeseries.DefaultCSVOptions())
	if err != nil {
		return Dataset{}, err
	}
	return Dataset{
		Name:        path,
		Description: "user-supplied series",
		Series:      series,
		Candidates:  [][3]int{{1, 0, 0}, {1, 1, 0}, {0, 1, 1}, {1, 1, 1}, {2, 1, 1}},
	}, nil
}

func analyze(ds Dataset) {
	n := ds.Series.Len()
	fmt.Printf("  %d observations, range [%.2f, %.2f], mean %.3f\n",
		n, ds.Series.Min(), ds.Series.Max(), ds.Series.Mean())

	testSize := n / 10
	train := ds.Series.Slice(0, n-testSize)
	test := ds.Series.Slice(n-testSize, n)
	fmt.Printf("  train %d / test %d\n", train.Len(), test.Len())

	// Correlogram hints at plausible orders.
	if acfRes := stats.ACFWithConfidence(train, 12); acfRes != nil {
		fmt.Printf("  significant ACF lags:  %v\n", stats.SignificantLags(acfRes.Values, acfRes.ConfBounds))
	}
	if pacfRes := stats.PACFWithConfidence(train, 12); pacfRes != nil {
		fmt.Printf("  significant PACF lags: %v\n", stats.SignificantLags(pacfRes.Values, pacfRes.ConfBounds))
	}

	// A quick OLS autoregression as the baseline.
	if m, err := ar.Fit(train, 2); err == nil {
		fmt.Printf("  AR(2) baseline: c=%.3f coeffs=%v\n", m.Intercept(), round3(m.Coeffs()))
	}

	var best *arima.FitResult
	var bestOrder [3]int
	for _, o := range ds.Candidates {
		res, err := arima.Fit(train, o[0], o[1], o[2])
		if err != nil {
			fmt.Printf("  ARIMA(%d,%d,%d): %v\n", o[0], o[1], o[2], err)
			continue
		}

		flags := ""
		if !res.Stationary {
			flags += " [non-stationary]"
		}
		if !res.Invertible {
			flags += " [non-invertible]"
		}
		fmt.Printf("  %v  AICc=%.2f sigma2=%.3f%s\n", res.Model, res.IC.AICc, res.Sigma2, flags)

		if lb := res.LjungBox(train, 10); lb != nil && lb.PValue < 0.05 {
			fmt.Printf("    Ljung-Box rejects white-noise residuals (p=%.3f)\n", lb.PValue)
		}

		if best == nil || res.IC.AICc < best.IC.AICc {
			best, bestOrder = res, o
		}
	}
	if best == nil {
		fmt.Println("  no model could be fitted")
		return
	}

	fmt.Printf("\n  selected ARIMA(%d,%d,%d) by AICc\n", bestOrder[0], bestOrder[1], bestOrder[2])

	// Cross-check the default fit against the gradient-based optimizer.
	if bestOrder[2] > 0 {
		if cgd, err := arima.Fit(train, bestOrder[0], bestOrder[1], bestOrder[2],
			arima.WithMethod(arima.MethodCSSCGD)); err == nil {
			fmt.Printf("  css-cgd agreement: %v\n", round3(cgd.Model.Coeffs()))
		}
	}

	fcst, err := best.Model.Forecast(train, test.Len())
	if err != nil {
		fmt.Printf("  forecast failed: %v\n", err)
		return
	}
	fmt.Printf("  holdout RMSE=%.3f MAE=%.3f\n", rmse(fcst, test.Values), mae(fcst, test.Values))
	fmt.Printf("  next steps: %v\n", round3(fcst[:min(5, len(fcst))]))
}

func rmse(fcst, actual []float64) float64 {
	s := 0.0
	for i := range fcst {
		d := fcst[i] - actual[i]
		s += d * d
	}
	return math.Sqrt(s / float64(len(fcst)))
}

func mae(fcst, actual []float64) float64 {
	s := 0.0
	for i := range fcst {
		s += math.Abs(fcst[i] - actual[i])
	}
	return s / float64(len(fcst))
}

func round3(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = math.Round(x*1000) / 1000
	}
	return out
}
