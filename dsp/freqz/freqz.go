package freqz

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-window/dsp/spectrum"
)

// MagnitudeFloor is added to |H| before the dB conversion so that exact nulls
// stay finite (-140 dB).
const MagnitudeFloor = 1e-7

const minFFTSize = 16

var (
	errNoCoeffs       = errors.New("freqz: coefficients must not be empty")
	errLengthMismatch = errors.New("freqz: omega and h must have same length")
)

// Response is the DTFT of a coefficient set sampled at Omega (rad/sample).
type Response struct {
	Omega []float64
	H     []complex128
}

// Series holds response curves ready for plotting.
type Series struct {
	// Frequency is omega/pi: 0 is DC and 1 is Nyquist.
	Frequency []float64
	// MagnitudeDB is 20*log10(|H| + MagnitudeFloor).
	MagnitudeDB []float64
	// Phase is the unwrapped phase in radians.
	Phase []float64
}

// Compute samples the DTFT of coeffs at omega_k = pi*k/P, k = 0..P-1, where P
// is points rounded up to a power of two. Coefficients longer than 2P are
// folded (time-aliased) onto the FFT length, which leaves these samples exact.
func Compute(coeffs []float64, points int) (Response, error) {
	if len(coeffs) == 0 {
		return Response{}, errNoCoeffs
	}

	if points <= 0 {
		return Response{}, fmt.Errorf("freqz: points must be > 0: %d", points)
	}

	p := nextPowerOf2(points)
	fftSize := max(2*p, minFFTSize)
	stride := fftSize / (2 * p)

	in := make([]complex128, fftSize)
	for i, c := range coeffs {
		in[i%fftSize] += complex(c, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Response{}, fmt.Errorf("freqz: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Response{}, fmt.Errorf("freqz: fft: %w", err)
	}

	resp := Response{
		Omega: make([]float64, p),
		H:     make([]complex128, p),
	}
	for k := range p {
		resp.Omega[k] = math.Pi * float64(k) / float64(p)
		resp.H[k] = out[k*stride]
	}

	return resp, nil
}

// Curves converts a sampled response into plot series. omega and h may be any
// two sequences of equal length.
func Curves(omega []float64, h []complex128) (Series, error) {
	if len(omega) != len(h) {
		return Series{}, fmt.Errorf("%w: %d != %d", errLengthMismatch, len(omega), len(h))
	}

	s := Series{
		Frequency:   make([]float64, len(omega)),
		MagnitudeDB: make([]float64, 0, len(h)),
		Phase:       make([]float64, 0, len(h)),
	}

	for i, w := range omega {
		s.Frequency[i] = w / math.Pi
	}

	if len(h) == 0 {
		return s, nil
	}

	s.MagnitudeDB = spectrum.MagnitudeDB(h, MagnitudeFloor)
	s.Phase = spectrum.UnwrapPhase(spectrum.Phase(h))

	return s, nil
}

// Curves converts r into plot series.
func (r Response) Curves() (Series, error) {
	return Curves(r.Omega, r.H)
}

// GroupDelay returns the group delay in samples at each response point. Phase
// jumps of pi at spectral nulls show up as spikes.
func (r Response) GroupDelay() ([]float64, error) {
	return spectrum.GroupDelayFromPhase(spectrum.UnwrapPhase(spectrum.Phase(r.H)), 2*len(r.H))
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
