package window

import "math"

// Parameter defaults used by the name-indexed layer.
const (
	DefaultExponentialAlpha = 1.0
	DefaultGaussianStd      = 0.25
	DefaultHannPoissonAlpha = 1.0
	DefaultTukeyAlpha       = 0.5
	DefaultKaiserBeta       = 8.6
)

// Exponential returns the exponential (Poisson) window
// exp(-alpha*|n-c|/c), with c = HalfSpan(n, sym).
func Exponential(n int, sym bool, alpha float64) []float64 {
	half := HalfSpan(n, sym)

	return evaluate(n, func(i float64) float64 {
		return math.Exp(-alpha * math.Abs(i-half) / half)
	})
}

// Gaussian returns the Gaussian window with standard deviation std, relative
// to the half width.
func Gaussian(n int, sym bool, std float64) []float64 {
	half := HalfSpan(n, sym)

	return evaluate(n, func(i float64) float64 {
		d := (i - half) / (std * half)
		return math.Exp(-0.5 * d * d)
	})
}

// HannPoisson returns the product of a Hann lobe and the exponential window.
func HannPoisson(n int, sym bool, alpha float64) []float64 {
	half := HalfSpan(n, sym)

	return evaluate(n, func(i float64) float64 {
		return 0.5 * (1 - math.Cos(math.Pi*i/half)) * math.Exp(-alpha*math.Abs(i-half)/half)
	})
}

// Tukey returns the tapered-cosine window. Samples closer to the centre than
// alpha*HalfSpan are 1; the rest follow a half cosine down to the edges.
// alpha is the flat fraction: 0 gives a Hann window and values approaching 1
// give a rectangle. At alpha == 1 the taper has zero width and the edge sample
// is undefined (NaN).
func Tukey(n int, sym bool, alpha float64) []float64 {
	half := HalfSpan(n, sym)
	flat := alpha * half

	return evaluate(n, func(i float64) float64 {
		d := math.Abs(i - half)
		if d < flat {
			return 1
		}

		return 0.5 * (1 + math.Cos(math.Pi*(d-flat)/((1-alpha)*half)))
	})
}

// Kaiser returns the Kaiser window I0(beta*sqrt(1-r^2))/I0(beta), where r runs
// from -1 to 1 across the span.
func Kaiser(n int, sym bool, beta float64) []float64 {
	span := Span(n, sym)
	norm := besselI0(beta)

	return evaluate(n, func(i float64) float64 {
		r := 2*i/span - 1
		return besselI0(beta*math.Sqrt(math.Max(0, 1-r*r))) / norm
	})
}

// KaiserBeta returns the Kaiser shape parameter for a stopband attenuation in
// dB (positive).
func KaiserBeta(attenuationDB float64) float64 {
	a := attenuationDB

	switch {
	case a > 50:
		return 0.1102 * (a - 8.7)
	case a >= 21:
		return 0.5842*math.Pow(a-21, 0.4) + 0.07886*(a-21)
	default:
		return 0
	}
}

// KaiserOrder estimates the filter order needed for attenuationDB with a
// transition width given as a fraction of the sample rate. The window length
// is the order plus one.
func KaiserOrder(attenuationDB, transitionWidth float64) int {
	return int(math.Ceil((attenuationDB - 7.95) / (14.36 * transitionWidth)))
}

// besselI0 evaluates the modified Bessel function I0 by its power series
// sum(((x/2)^k / k!)^2), summed until a term no longer changes the result.
func besselI0(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case math.IsInf(x, 0):
		return math.Inf(1)
	}

	half := x / 2
	sum, term := 1.0, 1.0

	for k := 1.0; ; k++ {
		term *= half / k
		sq := term * term
		sum += sq

		if sq <= sum*0x1p-53 {
			return sum
		}
	}
}
