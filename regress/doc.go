// Package regress provides ordinary least squares regression.
//
// OLS solves for the parameter vector minimizing the residual sum of
// squares via QR decomposition, with optional intercept suppression.
// It is the regression backend for autoregressive model fitting and the
// Hannan-Rissanen initialization.
package regress
