// Package ar implements autoregressive (AR) model fitting and application.
//
// An AR(p) model predicts each observation from its p predecessors:
//
//	Y_t = c + phi_1*Y_{t-1} + ... + phi_p*Y_{t-p} + e_t
//
// Fitting is a single ordinary least squares regression of the series on
// its own lags:
//
//	model, err := ar.Fit(series, 2)
//	resid := model.Residuals(series)
//
// Residuals and Reconstruct are exact inverses, so a series can be reduced
// to its error terms and rebuilt without loss. The arima package reuses
// this fitting routine both for its q=0 fast path and for the auxiliary
// high-order AR fit inside Hannan-Rissanen initialization.
package ar
