// Package timeseries provides time series data structures and transforms.
//
// The Series type wraps a univariate sequence of observations and offers
// summary statistics, differencing and inverse differencing, lagging, and
// lag-matrix construction for regression-based model fitting.
//
// # Differencing
//
// DiffN applies first differencing d times, shortening the series by d
// entries. InverseDiffN reverses the transform given the seed values that
// differencing consumed:
//
//	diffed := series.DiffN(2)
//	back := diffed.InverseDiffN(series.DiffSeeds(2))
//	// back reproduces series exactly
//
// # Lag matrices
//
// LagMatrix builds the design matrix used for autoregressive fitting: one
// row per time index with full lag history, columns in increasing lag order.
//
// # CSV
//
// LoadCSV and SaveCSV read and write series in a simple value-column
// format, with optional ID-column filtering for long-format files.
package timeseries
