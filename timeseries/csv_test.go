package timeseries

import (
	"math"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadCSVFromReader(t *testing.T) {
	data := "ds,y\n2020-01-01,1.5\n2020-01-02,2.5\n2020-01-03,3.5\n"

	s, err := LoadCSVFromReader(strings.NewReader(data), nil)
	if err != nil {
		t.Fatalf("LoadCSVFromReader failed: %v", err)
	}

	expected := []float64{1.5, 2.5, 3.5}
	if s.Len() != len(expected) {
		t.Fatalf("Expected %d values, got %d", len(expected), s.Len())
	}
	for i, v := range s.Values {
		if math.Abs(v-expected[i]) > 1e-10 {
			t.Errorf("Expected %f at index %d, got %f", expected[i], i, v)
		}
	}
}

func TestLoadCSVFiltered(t *testing.T) {
	data := "id,y\na,1\nb,2\na,3\nb,4\n"

	opts := DefaultCSVOptions()
	opts.IDColumn = "id"
	opts.IDFilter = "b"

	s, err := LoadCSVFromReader(strings.NewReader(data), opts)
	if err != nil {
		t.Fatalf("LoadCSVFromReader failed: %v", err)
	}

	expected := []float64{2, 4}
	if s.Len() != len(expected) {
		t.Fatalf("Expected %d values, got %d", len(expected), s.Len())
	}
	for i, v := range s.Values {
		if v != expected[i] {
			t.Errorf("Expected %f at index %d, got %f", expected[i], i, v)
		}
	}
}

func TestLoadCSVMissingColumn(t *testing.T) {
	data := "ds,value\n2020-01-01,1\n"

	if _, err := LoadCSVFromReader(strings.NewReader(data), nil); err == nil {
		t.Error("Expected error for missing value column")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "series.csv")

	orig := New([]float64{1.25, -2.5, 3.75})
	if err := SaveCSV(orig, path, true); err != nil {
		t.Fatalf("SaveCSV failed: %v", err)
	}

	loaded, err := LoadCSV(path, nil)
	if err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}

	if loaded.Len() != orig.Len() {
		t.Fatalf("Expected %d values, got %d", orig.Len(), loaded.Len())
	}
	for i, v := range loaded.Values {
		if math.Abs(v-orig.Values[i]) > 1e-10 {
			t.Errorf("Round trip mismatch at %d: want %f, got %f", i, orig.Values[i], v)
		}
	}
}
