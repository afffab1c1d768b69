// Package leakage measures the spectral leakage figures of a window
// numerically: coherent gain, noise bandwidth, main-lobe width, first null,
// highest sidelobe and scallop loss.
package leakage

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-window/dsp/spectrum"
	"github.com/cwbudde/algo-window/dsp/window"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrDegenerateWindow is returned by AnalyzeType for windows that are empty,
// hold a non-finite sample or sum to zero. Their leakage figures are undefined.
var ErrDegenerateWindow = errors.New("leakage: degenerate window")

// Analysis holds numerically computed spectral properties of a window.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// Bandwidth3dB is the 3 dB (half-power) main lobe width in bins.
	Bandwidth3dB float64
	// HighestSidelobedB is the highest sidelobe level relative to DC in dB.
	HighestSidelobedB float64
	// FirstMinimumBins is the first null (minimum) position in bins.
	FirstMinimumBins float64
	// ScallopLossdB is the worst-case amplitude error for an off-bin signal.
	ScallopLossdB float64
}

// Analyze computes spectral properties of the given window coefficients by
// evaluating the DTFT at fractional bin positions. Windows with an empty or
// zero-sum coefficient set yield the zero Analysis.
func Analyze(coeffs []float64) Analysis {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}
	}

	dcRef := powerAt(coeffs, 0)
	if dcRef == 0 || math.IsNaN(dcRef) {
		return Analysis{}
	}

	enbw, err := window.EquivalentNoiseBandwidth(coeffs)
	if err != nil {
		return Analysis{}
	}

	scallopLoss := 0.0
	if halfBin := powerAt(coeffs, 0.5/float64(n)); halfBin > 0 {
		scallopLoss = 10 * math.Log10(halfBin/dcRef)
	}

	firstMin := searchFirstMinimum(coeffs, dcRef, n)

	return Analysis{
		CoherentGain:      stat.Mean(coeffs, nil),
		ENBW:              enbw,
		Bandwidth3dB:      searchBandwidth(coeffs, dcRef, n),
		HighestSidelobedB: searchHighestSidelobe(coeffs, dcRef, firstMin, n),
		FirstMinimumBins:  firstMin,
		ScallopLossdB:     scallopLoss,
	}
}

// AnalyzeType generates the window t of length n and analyzes it.
func AnalyzeType(t window.Type, n int, opts ...window.Option) (Analysis, error) {
	coeffs, err := window.Generate(t, n, opts...)
	if err != nil {
		return Analysis{}, err
	}

	if err := checkWindow(coeffs); err != nil {
		return Analysis{}, fmt.Errorf("%s(%d): %w", t, n, err)
	}

	return Analyze(coeffs), nil
}

func checkWindow(coeffs []float64) error {
	switch {
	case len(coeffs) == 0:
		return fmt.Errorf("%w: empty", ErrDegenerateWindow)
	case floats.HasNaN(coeffs):
		return fmt.Errorf("%w: NaN sample", ErrDegenerateWindow)
	}

	for _, v := range coeffs {
		if math.IsInf(v, 0) {
			return fmt.Errorf("%w: infinite sample", ErrDegenerateWindow)
		}
	}

	if floats.Sum(coeffs) == 0 {
		return fmt.Errorf("%w: zero sum", ErrDegenerateWindow)
	}

	return nil
}

// powerAt evaluates |W(f)|^2 at the normalized frequency f, clamped to
// [0, 0.5].
func powerAt(coeffs []float64, f float64) float64 {
	p, err := spectrum.PowerAt(coeffs, min(max(f, 0), 0.5))
	if err != nil {
		return math.NaN()
	}

	return p
}

// searchBandwidth bisects for the half-power point of the main lobe and
// returns the two-sided width in bins.
func searchBandwidth(coeffs []float64, dcRef float64, n int) float64 {
	lo, hi := 0.0, 0.5
	for range 80 {
		mid := (lo + hi) / 2
		if powerAt(coeffs, mid)/dcRef > 0.5 {
			lo = mid
		} else {
			hi = mid
		}
	}

	return 2 * lo * float64(n)
}

// searchFirstMinimum scans outward from DC for the first local minimum and
// refines it with a golden-section search. The result is in bins.
func searchFirstMinimum(coeffs []float64, dcRef float64, n int) float64 {
	nf := float64(n)
	step := 1.0 / (nf * 8)

	// The response must fall below 10% of DC before a turn-around counts, so
	// the plateau of flat-top windows is not taken for a null.
	threshold := dcRef * 0.1

	prev := dcRef
	coarse := step
	for freq := step; freq < 0.5; freq += step {
		val := powerAt(coeffs, freq)
		if prev < threshold && val > prev {
			coarse = freq - step
			break
		}
		prev = val
	}

	a := max(coarse-2*step, 0)
	b := min(coarse+2*step, 0.5)

	const phi = 0.6180339887498949 // (sqrt(5)-1)/2
	c := b - phi*(b-a)
	d := a + phi*(b-a)
	for range 80 {
		if powerAt(coeffs, c) < powerAt(coeffs, d) {
			b = d
		} else {
			a = c
		}
		c = b - phi*(b-a)
		d = a + phi*(b-a)
	}

	return (a + b) / 2 * nf
}

// searchHighestSidelobe finds the peak level past the first minimum in dB
// relative to DC. The coarse sweep runs through a Goertzel bank; the peak is
// then refined on a finer grid.
func searchHighestSidelobe(coeffs []float64, dcRef, firstMinBins float64, n int) float64 {
	nf := float64(n)
	start := firstMinBins / nf
	step := 1.0 / (nf * 8)

	var freqs []float64
	for f := start; f < 0.5; f += step {
		freqs = append(freqs, f)
	}

	if len(freqs) == 0 {
		return math.Inf(-1)
	}

	bank, err := spectrum.NewBank(freqs)
	if err != nil {
		return math.NaN()
	}

	bank.ProcessBlock(coeffs)

	peakVal, peakFreq := 0.0, start
	for i, p := range bank.Powers() {
		if p > peakVal {
			peakVal, peakFreq = p, freqs[i]
		}
	}

	fine := step / 32
	for f := max(peakFreq-step, 0); f <= min(peakFreq+step, 0.5); f += fine {
		if val := powerAt(coeffs, f); val > peakVal {
			peakVal = val
		}
	}

	if peakVal <= 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(peakVal/dcRef)
}
