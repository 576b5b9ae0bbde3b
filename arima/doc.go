// Package arima implements AutoRegressive Integrated Moving Average
// (ARIMA) model fitting, residual extraction, simulation, and forecasting.
//
// An ARIMA(p,d,q) model combines p autoregressive lags, d rounds of
// differencing, and q moving-average error lags:
//
//	y'_t = c + phi_1*y'_{t-1} + ... + phi_p*y'_{t-p}
//	         + theta_1*e_{t-1} + ... + theta_q*e_{t-q} + e_t
//
// where y' is the d-times differenced series.
//
// # Fitting
//
// Fit estimates coefficients by conditional sum of squares (CSS): the
// recurrence is conditioned on the first max(p,q) observations, and the
// Gaussian log-likelihood of the remaining one-step errors is maximized.
// Initial coefficients come from the Hannan-Rissanen two-stage regression
// unless supplied explicitly.
//
//	result, err := arima.Fit(series, 1, 1, 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Stationary {
//	    // fitted AR polynomial has a root inside the unit circle
//	}
//	forecasts, _ := result.Model.Forecast(series, 10)
//
// Two optimization strategies are available: MethodCSS (derivative-free
// Nelder-Mead, the default) and MethodCSSCGD (Fletcher-Reeves conjugate
// gradient using the analytic CSS gradient). Pure AR specifications
// (q = 0) bypass optimization entirely; the CSS optimum is the ordinary
// least squares solution.
//
// # Applying a model
//
// A Model built by Fit or NewModel is immutable and supports three
// applications, all driven by one shared ARMA recurrence:
//
//   - Residuals strips the modeled structure from a series, recovering
//     the error sequence it implies.
//   - Simulate applies the structure to an error sequence, synthesizing
//     an observed series (the inverse of Residuals for d = 0).
//   - Forecast extends the series beyond its end with future errors
//     forced to zero, integrating differenced forecasts back to the
//     original scale.
//
// # Diagnostics
//
// IsStationary and IsInvertible check the AR and MA characteristic
// polynomials for roots inside the unit circle. Fit reports both flags on
// its FitResult rather than failing: a non-stationary or non-invertible
// fit is suspect, not invalid.
package arima
