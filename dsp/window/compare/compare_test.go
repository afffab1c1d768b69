package compare

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-window/dsp/window"
)

func TestCompareIdentical(t *testing.T) {
	r := Compare(16, window.Hann, window.Hann, true)

	if len(r.Index) != 16 || len(r.Test) != 16 || len(r.Reference) != 16 {
		t.Fatalf("lengths %d/%d/%d", len(r.Index), len(r.Test), len(r.Reference))
	}

	if r.MaxAbsDiff != 0 || !r.Within(0) {
		t.Fatalf("MaxAbsDiff=%v", r.MaxAbsDiff)
	}

	for i, v := range r.Index {
		if v != i {
			t.Fatalf("Index[%d]=%d", i, v)
		}
	}
}

func TestCompareReportsDifference(t *testing.T) {
	r := Compare(9, window.Hann, window.Hamming, true)

	// the edges differ by the Hamming pedestal
	if math.Abs(r.MaxAbsDiff-0.08) > 1e-12 {
		t.Fatalf("MaxAbsDiff=%v, want 0.08", r.MaxAbsDiff)
	}

	if r.Within(0.05) || !r.Within(0.1) {
		t.Fatalf("Within mismatch for diff %v", r.MaxAbsDiff)
	}
}

func TestComparePeriodicAgainstSymmetric(t *testing.T) {
	// periodic(n) is the head of symmetric(n+1)
	longer := func(n int, sym bool) []float64 { return window.Bohman(n+1, !sym)[:n] }

	r := Compare(12, window.Bohman, longer, false)
	if !r.Within(1e-12) {
		t.Fatalf("MaxAbsDiff=%v", r.MaxAbsDiff)
	}
}

func TestCompareEmpty(t *testing.T) {
	r := Compare(0, window.Boxcar, window.Welch, true)
	if len(r.Test) != 0 || len(r.Reference) != 0 || r.MaxAbsDiff != 0 {
		t.Fatalf("unexpected result %+v", r)
	}
}

func TestCompareNaN(t *testing.T) {
	r := Compare(1, window.Hann, window.Boxcar, true)
	if !math.IsNaN(r.MaxAbsDiff) || r.Within(1) {
		t.Fatalf("expected NaN difference, got %v", r.MaxAbsDiff)
	}
}

func TestCompareLengthMismatch(t *testing.T) {
	short := func(n int, sym bool) []float64 { return window.Boxcar(n-1, sym) }

	r := Compare(4, window.Boxcar, short, true)
	if !math.IsInf(r.MaxAbsDiff, 1) || r.Within(1) {
		t.Fatalf("expected +Inf difference, got %v", r.MaxAbsDiff)
	}
}
