// Package goarma provides ARMA and ARIMA time series model fitting and
// forecasting.
//
// GoARMA estimates AutoRegressive Integrated Moving Average models by
// conditional sum of squares (CSS), with both a derivative-free optimizer
// and a conjugate-gradient optimizer driven by the analytic CSS gradient.
// Pure autoregressive models are fitted directly by least squares.
//
// # Features
//
//   - ARIMA(p,d,q) fitting by CSS with Hannan-Rissanen initialization
//   - Fast AR(p) fitting by ordinary least squares
//   - Residual extraction, simulation, and multi-step forecasting
//   - Stationarity and invertibility checks via characteristic roots
//   - Autocorrelation analysis (ACF, PACF) and Ljung-Box diagnostics
//   - Information criteria (AIC, AICc, BIC) for model comparison
//
// # Quick Start
//
// Fit an ARIMA model and forecast:
//
//	series := timeseries.New(values)
//	result, err := arima.Fit(series, 1, 1, 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	forecasts, _ := result.Model.Forecast(series, 10)
//
// Fit a pure AR model:
//
//	model, err := ar.Fit(series, 3)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - arima: ARIMA model fitting, simulation, and forecasting
//   - ar: Autoregressive models fitted by least squares
//   - regress: Ordinary least squares regression
//   - stats: Autocorrelation, residual tests, information criteria, roots
//   - timeseries: Time series data structures and utilities
//
// # References
//
//   - Box, G. E. P., & Jenkins, G. M. (1976). Time Series Analysis: Forecasting and Control
//   - Hannan, E. J., & Rissanen, J. (1982). Recursive estimation of mixed
//     autoregressive-moving average order
package goarma
