package stats

import (
	"math"
	"math/cmplx"
	"sort"
	"testing"

	"github.com/tsquared/goarma/timeseries"
)

func TestPolyRootsLinear(t *testing.T) {
	// 1 - 0.5x has root x = 2.
	roots, err := PolyRoots([]float64{1, -0.5})
	if err != nil {
		t.Fatalf("PolyRoots failed: %v", err)
	}
	if len(roots) != 1 {
		t.Fatalf("Expected 1 root, got %d", len(roots))
	}
	if math.Abs(real(roots[0])-2) > 1e-9 || math.Abs(imag(roots[0])) > 1e-9 {
		t.Errorf("Expected root 2, got %v", roots[0])
	}
}

func TestPolyRootsQuadratic(t *testing.T) {
	// (x-2)(x+3) = x^2 + x - 6.
	roots, err := PolyRoots([]float64{-6, 1, 1})
	if err != nil {
		t.Fatalf("PolyRoots failed: %v", err)
	}
	if len(roots) != 2 {
		t.Fatalf("Expected 2 roots, got %d", len(roots))
	}

	got := []float64{real(roots[0]), real(roots[1])}
	sort.Float64s(got)
	want := []float64{-3, 2}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("Expected root %f, got %f", want[i], got[i])
		}
	}
}

func TestPolyRootsComplexPair(t *testing.T) {
	// x^2 + 1 has roots ±i.
	roots, err := PolyRoots([]float64{1, 0, 1})
	if err != nil {
		t.Fatalf("PolyRoots failed: %v", err)
	}
	for _, r := range roots {
		if math.Abs(cmplx.Abs(r)-1) > 1e-9 {
			t.Errorf("Expected modulus 1, got %f for root %v", cmplx.Abs(r), r)
		}
	}
}

func TestPolyRootsDegenerate(t *testing.T) {
	if _, err := PolyRoots([]float64{5}); err == nil {
		t.Error("Expected error for constant polynomial")
	}
	if _, err := PolyRoots([]float64{1, 0, 0}); err == nil {
		t.Error("Expected error after trimming zero coefficients")
	}
}

func TestRootsOutsideUnitCircle(t *testing.T) {
	tests := []struct {
		name   string
		coeffs []float64
		want   bool
	}{
		{"ar1 stationary", []float64{1, -0.5}, true},   // root 2
		{"ar1 explosive", []float64{1, -1.5}, false},   // root 2/3
		{"ma1 invertible", []float64{1, 0.5}, true},    // root -2
		{"ma1 noninvertible", []float64{1, 1.5}, false}, // root -2/3
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RootsOutsideUnitCircle(tt.coeffs)
			if err != nil {
				t.Fatalf("RootsOutsideUnitCircle failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestACF(t *testing.T) {
	n := 100
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = float64(i%10-5) + float64((i*7)%11-5)*0.5
	}
	series := timeseries.New(values)

	acf := ACF(series, 10)
	if acf == nil {
		t.Fatal("ACF returned nil")
	}
	if len(acf) != 11 {
		t.Fatalf("Expected 11 ACF values, got %d", len(acf))
	}
	if math.Abs(acf[0]-1) > 1e-10 {
		t.Errorf("ACF at lag 0 should be 1, got %f", acf[0])
	}
	for k, v := range acf {
		if v > 1+1e-10 || v < -1-1e-10 {
			t.Errorf("ACF at lag %d out of [-1,1]: %f", k, v)
		}
	}
}

func TestACFConstantSeries(t *testing.T) {
	series := timeseries.New([]float64{3, 3, 3, 3, 3})
	if acf := ACF(series, 2); acf != nil {
		t.Error("Expected nil ACF for zero-variance series")
	}
}

func TestPACF(t *testing.T) {
	// AR(1)-like deterministic series: PACF should spike at lag 1 and
	// be small afterward.
	n := 200
	values := make([]float64, n)
	values[0] = 1
	for i := 1; i < n; i++ {
		values[i] = 0.8*values[i-1] + float64((i*7)%11-5)*0.3
	}
	series := timeseries.New(values)

	pacf := PACF(series, 5)
	if pacf == nil {
		t.Fatal("PACF returned nil")
	}
	if math.Abs(pacf[0]-1) > 1e-10 {
		t.Errorf("PACF at lag 0 should be 1, got %f", pacf[0])
	}

	t.Logf("PACF: %v", pacf)
	if math.Abs(pacf[1]) < math.Abs(pacf[3]) {
		t.Errorf("Expected PACF lag 1 to dominate lag 3: %f vs %f", pacf[1], pacf[3])
	}
}

func TestLjungBox(t *testing.T) {
	// Strongly autocorrelated series: the test should reject the null.
	n := 100
	values := make([]float64, n)
	values[0] = 1
	for i := 1; i < n; i++ {
		values[i] = 0.9*values[i-1] + float64((i*7)%11-5)*0.1
	}
	series := timeseries.New(values)

	result := LjungBox(series, 10, 0)
	if result == nil {
		t.Fatal("LjungBox returned nil")
	}
	if result.DOF != 10 {
		t.Errorf("Expected 10 degrees of freedom, got %d", result.DOF)
	}
	if result.PValue < 0 || result.PValue > 1 {
		t.Errorf("PValue out of range: %f", result.PValue)
	}
	if result.PValue > 0.05 {
		t.Errorf("Expected rejection for autocorrelated series, p=%f", result.PValue)
	}
}

func TestLjungBoxDOFFloor(t *testing.T) {
	series := timeseries.New(make([]float64, 50))
	for i := range series.Values {
		series.Values[i] = float64(i % 7)
	}

	result := LjungBox(series, 3, 5)
	if result == nil {
		t.Fatal("LjungBox returned nil")
	}
	if result.DOF != 1 {
		t.Errorf("Expected DOF floored at 1, got %d", result.DOF)
	}
}

func TestCalculateIC(t *testing.T) {
	ic := CalculateIC(-100, 50, 3)

	if math.Abs(ic.AIC-206) > 1e-10 {
		t.Errorf("Expected AIC 206, got %f", ic.AIC)
	}
	wantBIC := 200 + 3*math.Log(50)
	if math.Abs(ic.BIC-wantBIC) > 1e-10 {
		t.Errorf("Expected BIC %f, got %f", wantBIC, ic.BIC)
	}
	wantAICc := 206 + 2.0*3*4/(50-3-1)
	if math.Abs(ic.AICc-wantAICc) > 1e-10 {
		t.Errorf("Expected AICc %f, got %f", wantAICc, ic.AICc)
	}
}

func TestCalculateICSmallSample(t *testing.T) {
	ic := CalculateIC(-10, 4, 3)
	if !math.IsInf(ic.AICc, 1) {
		t.Errorf("Expected +Inf AICc for tiny sample, got %f", ic.AICc)
	}
}
