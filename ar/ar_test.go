package ar

import (
	"math"
	"math/rand"
	"testing"

	"github.com/tsquared/goarma/timeseries"
)

func TestFitExactAR1(t *testing.T) {
	// Noiseless AR(1): OLS must recover the parameters exactly.
	c, phi := 2.0, 0.6
	n := 50
	values := make([]float64, n)
	for i := 1; i < n; i++ {
		values[i] = c + phi*values[i-1]
	}

	model, err := Fit(timeseries.New(values), 1)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	if math.Abs(model.Intercept()-c) > 1e-6 {
		t.Errorf("Expected intercept %f, got %f", c, model.Intercept())
	}
	if math.Abs(model.Coeffs()[0]-phi) > 1e-6 {
		t.Errorf("Expected coefficient %f, got %f", phi, model.Coeffs()[0])
	}
}

func TestFitWithoutIntercept(t *testing.T) {
	phi := 0.9
	n := 60
	values := make([]float64, n)
	values[0] = 10
	for i := 1; i < n; i++ {
		values[i] = phi * values[i-1]
	}

	model, err := Fit(timeseries.New(values), 1, WithoutIntercept())
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	if model.Intercept() != 0 {
		t.Errorf("Expected zero intercept, got %f", model.Intercept())
	}
	if math.Abs(model.Coeffs()[0]-phi) > 1e-6 {
		t.Errorf("Expected coefficient %f, got %f", phi, model.Coeffs()[0])
	}
}

func TestFitConsistencyAR2(t *testing.T) {
	// Gaussian-noise AR(2): estimates should approach the truth as n grows.
	rng := rand.New(rand.NewSource(42))
	c, phi1, phi2 := 1.0, 0.5, -0.3
	n := 5000
	values := make([]float64, n)
	for i := 2; i < n; i++ {
		values[i] = c + phi1*values[i-1] + phi2*values[i-2] + rng.NormFloat64()
	}

	model, err := Fit(timeseries.New(values), 2)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	coeffs := model.Coeffs()
	t.Logf("True: c=%f phi=(%f,%f); estimated: c=%f phi=(%f,%f)",
		c, phi1, phi2, model.Intercept(), coeffs[0], coeffs[1])

	if math.Abs(coeffs[0]-phi1) > 0.05 {
		t.Errorf("phi1 estimate off: want %f, got %f", phi1, coeffs[0])
	}
	if math.Abs(coeffs[1]-phi2) > 0.05 {
		t.Errorf("phi2 estimate off: want %f, got %f", phi2, coeffs[1])
	}
}

func TestFitSeriesTooShort(t *testing.T) {
	if _, err := Fit(timeseries.New([]float64{1, 2}), 3); err == nil {
		t.Error("Expected error for series shorter than maxLag")
	}
}

func TestResidualFormulaAR1(t *testing.T) {
	// Residual at i (i>=1) must equal y[i] - c - phi*y[i-1].
	model := NewModel(1.5, []float64{0.7})
	values := []float64{3, 4, 2, 5, 6, 1}
	series := timeseries.New(values)

	resid := model.Residuals(series)
	if resid.Len() != len(values) {
		t.Fatalf("Expected %d residuals, got %d", len(values), resid.Len())
	}

	for i := 1; i < len(values); i++ {
		want := values[i] - 1.5 - 0.7*values[i-1]
		if math.Abs(resid.Values[i]-want) > 1e-12 {
			t.Errorf("Residual at %d: want %f, got %f", i, want, resid.Values[i])
		}
	}

	// Before full lag history the residual is the observation minus the
	// intercept.
	if math.Abs(resid.Values[0]-(values[0]-1.5)) > 1e-12 {
		t.Errorf("Residual at 0: want %f, got %f", values[0]-1.5, resid.Values[0])
	}
}

func TestResidualReconstructRoundTrip(t *testing.T) {
	model := NewModel(0.5, []float64{0.4, -0.2, 0.1})
	values := []float64{2, -1, 3, 0.5, 4, -2, 1, 0, 2.5, -1.5}
	series := timeseries.New(values)

	back := model.Reconstruct(model.Residuals(series))
	if back.Len() != series.Len() {
		t.Fatalf("Expected length %d, got %d", series.Len(), back.Len())
	}
	for i := range values {
		if math.Abs(back.Values[i]-values[i]) > 1e-9 {
			t.Errorf("Round trip mismatch at %d: want %f, got %f", i, values[i], back.Values[i])
		}
	}
}

func TestModelImmutability(t *testing.T) {
	coeffs := []float64{0.3, 0.2}
	model := NewModel(1, coeffs)

	coeffs[0] = 99
	if model.Coeffs()[0] == 99 {
		t.Error("NewModel should copy its coefficient slice")
	}

	got := model.Coeffs()
	got[1] = 99
	if model.Coeffs()[1] == 99 {
		t.Error("Coeffs should return a copy")
	}
}
