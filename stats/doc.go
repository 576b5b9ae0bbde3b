// Package stats provides statistical support functions for time series
// modeling.
//
// It covers autocorrelation analysis (ACF, PACF, with confidence bounds),
// residual autocorrelation tests (Ljung-Box, Box-Pierce), information
// criteria (AIC, AICc, BIC), and polynomial root finding via
// companion-matrix eigenvalues, used for AR stationarity and MA
// invertibility checks.
package stats
