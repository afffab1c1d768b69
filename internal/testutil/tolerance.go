package testutil

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance). NaN matches NaN.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if math.IsNaN(got[i]) && math.IsNaN(want[i]) {
			continue
		}
		diff := math.Abs(got[i] - want[i])
		if !(diff <= eps) {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequirePalindrome fails t if data[i] and data[len-1-i] differ by more
// than eps for any i.
func RequirePalindrome(t *testing.T, data []float64, eps float64) {
	t.Helper()
	for i, j := 0, len(data)-1; i < j; i, j = i+1, j-1 {
		if diff := math.Abs(data[i] - data[j]); !(diff <= eps) {
			t.Fatalf("index %d/%d: %v vs %v (diff %v > eps %v)", i, j, data[i], data[j], diff, eps)
		}
	}
}

// RequirePrefix fails t if got is not the first len(got) samples of full
// within eps.
func RequirePrefix(t *testing.T, got, full []float64, eps float64) {
	t.Helper()
	if len(got) > len(full) {
		t.Fatalf("prefix longer than sequence: %d > %d", len(got), len(full))
	}
	RequireSliceNearlyEqual(t, got, full[:len(got)], eps)
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, nil
	}
	return floats.Distance(a, b, math.Inf(1)), nil
}
