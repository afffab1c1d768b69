package spectrum

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-window/internal/testutil"
)

// dtft evaluates the DTFT of x at the normalized frequency f directly.
func dtft(x []float64, f float64) complex128 {
	var sum complex128
	for n, v := range x {
		sum += complex(v, 0) * cmplx.Exp(complex(0, -2*math.Pi*f*float64(n)))
	}

	return sum
}

func TestGoertzel_Basic(t *testing.T) {
	const f0 = 0.0625
	sig := testutil.DeterministicSine(f0, 1.0, 1024)

	goertzel, err := NewGoertzel(f0)
	if err != nil {
		t.Fatalf("NewGoertzel: %v", err)
	}

	goertzel.ProcessBlock(sig)
	pwr := goertzel.Power()

	dft := dtft(sig, f0)
	wantP := real(dft)*real(dft) + imag(dft)*imag(dft)

	// Use a relative tolerance for power as it can grow large
	if math.Abs(pwr-wantP) > 1e-7*wantP {
		t.Errorf("Power mismatch: got %v, want %v (diff %v)", pwr, wantP, math.Abs(pwr-wantP))
	}

	mag := goertzel.Magnitude()

	wantMag := cmplx.Abs(dft)
	if math.Abs(mag-wantMag) > 1e-7*wantMag {
		t.Errorf("Magnitude mismatch: got %v, want %v (diff %v)", mag, wantMag, math.Abs(mag-wantMag))
	}
}

func TestGoertzel_FractionalBins(t *testing.T) {
	// a Hann lobe probed between bins
	const n = 64
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/n)
	}

	for _, bins := range []float64{0, 0.25, 0.5, 1.37, 2, 2.5, 7.81, 31.9} {
		f := bins / n

		got, err := PowerAt(w, f)
		if err != nil {
			t.Fatal(err)
		}

		want := cmplx.Abs(dtft(w, f))
		want *= want

		if math.Abs(got-want) > 1e-9*math.Max(1, want) {
			t.Fatalf("%.2f bins: got %v, want %v", bins, got, want)
		}
	}
}

func TestGoertzel_Reset(t *testing.T) {
	goertzel, _ := NewGoertzel(0.1)
	goertzel.ProcessSample(1.0)

	if goertzel.Power() == 0 {
		t.Error("Power should be non-zero after processing")
	}

	goertzel.Reset()

	if goertzel.Power() != 0 {
		t.Error("Power should be zero after reset")
	}
}

func TestGoertzel_SetFrequency(t *testing.T) {
	goertzel, _ := NewGoertzel(0.1)

	err := goertzel.SetFrequency(0.25)
	if err != nil {
		t.Errorf("SetFrequency: %v", err)
	}

	if goertzel.Frequency() != 0.25 {
		t.Errorf("Frequency: got %v, want 0.25", goertzel.Frequency())
	}

	if err := goertzel.SetFrequency(-0.01); err == nil {
		t.Error("SetFrequency should fail for negative frequency")
	}

	if err := goertzel.SetFrequency(0.51); err == nil {
		t.Error("SetFrequency should fail above Nyquist")
	}

	if err := goertzel.SetFrequency(math.NaN()); err == nil {
		t.Error("SetFrequency should fail for NaN")
	}

	if _, err := NewGoertzel(0.6); err == nil {
		t.Error("NewGoertzel should fail above Nyquist")
	}

	if _, err := PowerAt(testutil.Ones(4), 1); err == nil {
		t.Error("PowerAt should fail above Nyquist")
	}
}

func TestBank(t *testing.T) {
	freqs := []float64{0.01, 0.0625, 0.2}

	bank, err := NewBank(freqs)
	if err != nil {
		t.Fatalf("NewBank: %v", err)
	}

	sig := testutil.DeterministicSine(freqs[1], 1.0, 1024)
	bank.ProcessBlock(sig)
	powers := bank.Powers()

	if len(powers) != 3 {
		t.Fatalf("Expected 3 powers, got %d", len(powers))
	}

	// the analyzer tuned to the sine dominates
	if powers[1] <= powers[0] || powers[1] <= powers[2] {
		t.Errorf("Expected peak at index 1, got %v", powers)
	}

	for i, f := range freqs {
		want, _ := PowerAt(sig, f)
		if powers[i] != want {
			t.Errorf("bank power %d=%v, PowerAt=%v", i, powers[i], want)
		}
	}

	bank.Reset()

	powers = bank.Powers()
	for i, p := range powers {
		if p != 0 {
			t.Errorf("Power at index %d should be 0 after reset, got %v", i, p)
		}
	}

	if _, err := NewBank([]float64{0.1, 0.7}); err == nil {
		t.Error("NewBank should reject out-of-range frequencies")
	}
}

func TestGoertzel_EdgeCases(t *testing.T) {
	// DC
	goertzel, _ := NewGoertzel(0)
	goertzel.ProcessBlock(testutil.DC(1.0, 100))
	pwr := goertzel.Power()
	// DFT sum for DC of 1.0 is 100. Power is 100^2 = 10000.
	if math.Abs(pwr-10000) > 1e-9 {
		t.Errorf("DC power mismatch: got %v, want 10000", pwr)
	}

	// Nyquist
	goertzel, _ = NewGoertzel(0.5)

	sig := make([]float64, 100)
	for i := range sig {
		if i%2 == 0 {
			sig[i] = 1.0
		} else {
			sig[i] = -1.0
		}
	}

	goertzel.ProcessBlock(sig)

	pwr = goertzel.Power()
	if math.Abs(pwr-10000) > 1e-9 {
		t.Errorf("Nyquist power mismatch: got %v, want 10000", pwr)
	}

	// dB Power
	goertzel, _ = NewGoertzel(0.1)
	if goertzel.PowerDB() != -300 {
		t.Errorf("Expected -300 dB for zero power, got %v", goertzel.PowerDB())
	}
}
