package window

import (
	"testing"

	"github.com/cwbudde/algo-window/internal/testutil"
	"gonum.org/v1/gonum/floats"
)

func TestApplyInPlaceByType(t *testing.T) {
	buf := testutil.Ones(8)
	if err := Apply(TypeHann, buf); err != nil {
		t.Fatal(err)
	}

	checkGolden(t, buf, Hann(8, true), 0)

	if err := Apply(TypeKaiserBessel, testutil.Ones(8)); err == nil {
		t.Fatal("expected symmetry error for kaiserbessel without option")
	}

	if err := Apply(TypeHann, nil); err != nil {
		t.Fatalf("empty buffer: %v", err)
	}
}

func TestApplyNoise(t *testing.T) {
	noise := testutil.DeterministicNoise(7, 1, 128)
	buf := append([]float64(nil), noise...)

	if err := Apply(TypeBlackman, buf, WithPeriodic()); err != nil {
		t.Fatal(err)
	}

	w := Blackman(128, false)
	for i := range buf {
		if !almostEqual(buf[i], noise[i]*w[i], 1e-15) {
			t.Fatalf("index %d: got %v, want %v", i, buf[i], noise[i]*w[i])
		}
	}
}

func TestApplyCoefficientsHelpers(t *testing.T) {
	samples := []float64{1, 2, 3}
	coeffs := []float64{0.5, 0.5, 0.5}

	out, err := ApplyCoefficients(samples, coeffs)
	if err != nil {
		t.Fatal(err)
	}

	if !almostEqual(out[2], 1.5, 1e-12) {
		t.Fatalf("out[2]=%v", out[2])
	}

	err = ApplyCoefficientsInPlace(samples, coeffs)
	if err != nil {
		t.Fatal(err)
	}

	if !almostEqual(samples[1], 1.0, 1e-12) {
		t.Fatalf("samples[1]=%v", samples[1])
	}
}

func TestPostProcessing(t *testing.T) {
	gain, err := Generate(TypeHann, 64, WithPeriodic(), WithGainCompensation())
	if err != nil {
		t.Fatal(err)
	}

	if cg, _ := CoherentGain(gain); !almostEqual(cg, 1, 1e-12) {
		t.Fatalf("gain-compensated coherent gain=%v, want 1", cg)
	}

	inv, err := Generate(TypeHann, 32, WithInvert())
	if err != nil {
		t.Fatal(err)
	}

	if !almostEqual(inv[0], 1, 1e-12) {
		t.Fatalf("invert expected first coeff near 1, got %v", inv[0])
	}

	dc, err := Generate(TypeHann, 32, WithDCRemoval())
	if err != nil {
		t.Fatal(err)
	}

	if mean := floats.Sum(dc) / float64(len(dc)); !almostEqual(mean, 0, 1e-12) {
		t.Fatalf("dc removal mean=%v, want 0", mean)
	}

	// gain first, then invert: the inverted mean is 1 - 1
	both, err := Generate(TypeBlackman, 64, WithGainCompensation(), WithInvert())
	if err != nil {
		t.Fatal(err)
	}

	if cg, _ := CoherentGain(both); !almostEqual(cg, 0, 1e-12) {
		t.Fatalf("gain+invert mean=%v, want 0", cg)
	}

	// a zero-sum window is left untouched by gain compensation
	zero, err := Generate(TypeHann, 1, WithPeriodic(), WithGainCompensation())
	if err != nil {
		t.Fatal(err)
	}

	checkGolden(t, zero, []float64{0}, 0)
}

func TestEquivalentNoiseBandwidth(t *testing.T) {
	tests := []struct {
		name string
		w    []float64
		want float64
	}{
		{name: "boxcar", w: Boxcar(1024, false), want: 1},
		{name: "hann", w: Hann(1024, false), want: 1.5},
		{name: "hamming", w: Hamming(1024, false), want: 1.3628},
		{name: "blackmanharris", w: BlackmanHarris(1024, false), want: 2.0044},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			enbw, err := EquivalentNoiseBandwidth(tc.w)
			if err != nil {
				t.Fatalf("EquivalentNoiseBandwidth error: %v", err)
			}

			if !almostEqual(enbw, tc.want, 1e-3) {
				t.Fatalf("ENBW=%v, want ~%v", enbw, tc.want)
			}
		})
	}
}

func TestHelperErrors(t *testing.T) {
	if _, err := EquivalentNoiseBandwidth(nil); err == nil {
		t.Fatal("expected empty coeffs error")
	}

	if _, err := EquivalentNoiseBandwidth([]float64{0, 0, 0}); err == nil {
		t.Fatal("expected zero coherent gain error")
	}

	if _, err := CoherentGain(nil); err == nil {
		t.Fatal("expected empty coeffs error")
	}

	if _, err := ApplyCoefficients([]float64{1, 2}, []float64{1}); err == nil {
		t.Fatal("expected mismatch error")
	}

	if err := ApplyCoefficientsInPlace([]float64{1, 2}, []float64{1}); err == nil {
		t.Fatal("expected mismatch error")
	}
}
