package window

import "math"

// Func is the generator contract shared by every window in the catalog.
type Func func(n int, sym bool) []float64

// Boxcar returns the rectangular window: all ones.
func Boxcar(n int, sym bool) []float64 {
	return evaluate(n, func(float64) float64 { return 1 })
}

// Bartlett returns the triangular window with zero-valued endpoints.
func Bartlett(n int, sym bool) []float64 {
	span := Span(n, sym)

	return evaluate(n, func(i float64) float64 {
		return (2 / span) * (span/2 - math.Abs(i-span/2))
	})
}

// BartlettHann returns the Bartlett-Hann window, a blend of a linear ramp and
// a single cosine.
func BartlettHann(n int, sym bool) []float64 {
	span := Span(n, sym)

	return evaluate(n, func(i float64) float64 {
		return 0.62 - 0.48*math.Abs(i/span-0.5) - 0.38*math.Cos(2*math.Pi*i/span)
	})
}

// Parzen returns the piecewise-cubic Parzen (de la Vallée Poussin) window.
func Parzen(n int, sym bool) []float64 {
	span := Span(n, sym)

	return evaluate(n, func(i float64) float64 {
		t := math.Abs(2*i/span - 1)
		if t < 0.5 {
			return 1 - 6*t*t + 6*t*t*t
		}

		u := 1 - t

		return 2 * u * u * u
	})
}

// Welch returns the parabolic Welch window. The radius exceeds the centre by
// one sample, so the endpoints are not zero.
func Welch(n int, sym bool) []float64 {
	center := HalfSpan(n, sym)
	radius := center + 1

	return evaluate(n, func(i float64) float64 {
		d := (i - center) / radius
		return 1 - d*d
	})
}

// Cosine returns the phase-shifted sine window sin(pi*(n+0.5)/M), where M is
// n for symmetric and n+1 for periodic windows.
func Cosine(n int, sym bool) []float64 {
	m := Span(n, sym) + 1

	return evaluate(n, func(i float64) float64 {
		return math.Sin(math.Pi * (i + 0.5) / m)
	})
}

// Bohman returns the Bohman window, the convolution of two half-cosine lobes.
func Bohman(n int, sym bool) []float64 {
	half := HalfSpan(n, sym)

	return evaluate(n, func(i float64) float64 {
		x := math.Abs(i/half - 1)
		return (1-x)*math.Cos(math.Pi*x) + math.Sin(math.Pi*x)/math.Pi
	})
}

// Lanczos returns the normalized sinc window. The tap (or the pair of taps)
// nearest the centre of the lobe is exactly 1.
func Lanczos(n int, sym bool) []float64 {
	span := Span(n, sym)

	return evaluate(n, func(i float64) float64 {
		if math.Abs(2*i-span) <= 1 {
			return 1
		}

		w := math.Pi * (2*i/span - 1)

		return math.Sin(w) / w
	})
}

// Hann returns the Hann (raised cosine) window.
func Hann(n int, sym bool) []float64 {
	return CosineSum(n, sym, hannCoeffs)
}

// Hamming returns the Hamming window.
func Hamming(n int, sym bool) []float64 {
	return CosineSum(n, sym, hammingCoeffs)
}

// Blackman returns the 3-term Blackman window.
func Blackman(n int, sym bool) []float64 {
	return CosineSum(n, sym, blackmanCoeffs)
}

// BlackmanHarris returns the 4-term Blackman-Harris window.
func BlackmanHarris(n int, sym bool) []float64 {
	return CosineSum(n, sym, blackmanHarrisCoeffs)
}

// BlackmanNuttall returns the 4-term Blackman-Nuttall window.
func BlackmanNuttall(n int, sym bool) []float64 {
	return CosineSum(n, sym, blackmanNuttallCoeffs)
}

// KaiserBessel returns the 4-term cosine-sum approximation of the
// Kaiser-Bessel-derived window. Unlike the other families it has no default
// symmetry in the name-indexed layer.
func KaiserBessel(n int, sym bool) []float64 {
	return CosineSum(n, sym, kaiserBesselCoeffs)
}

// FlatTop returns the 5-term flat-top window.
func FlatTop(n int, sym bool) []float64 {
	return CosineSum(n, sym, flatTopCoeffs)
}
