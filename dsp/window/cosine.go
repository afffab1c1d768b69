package window

import "math"

// Cosine-sum coefficient tables, c[k] weighting cos(2*pi*k*n/span).
var (
	hannCoeffs            = []float64{0.5, -0.5}
	hammingCoeffs         = []float64{0.54, -0.46}
	blackmanCoeffs        = []float64{0.42, -0.50, 0.08}
	blackmanHarrisCoeffs  = []float64{0.35875, -0.48829, 0.14128, -0.01168}
	blackmanNuttallCoeffs = []float64{0.3635819, -0.4891775, 0.1365995, -0.0106411}
	kaiserBesselCoeffs    = []float64{0.402, -0.498, 0.098, -0.001}
	flatTopCoeffs         = []float64{0.21557895, -0.416631580, 0.277263158, -0.083578947, 0.006947368}
)

var cosineSumTables = map[Type][]float64{
	TypeHann:            hannCoeffs,
	TypeHamming:         hammingCoeffs,
	TypeBlackman:        blackmanCoeffs,
	TypeBlackmanHarris:  blackmanHarrisCoeffs,
	TypeBlackmanNuttall: blackmanNuttallCoeffs,
	TypeKaiserBessel:    kaiserBesselCoeffs,
	TypeFlatTop:         flatTopCoeffs,
}

// CosineSum returns the generalized cosine-sum window
//
//	w[n] = sum_k coeffs[k] * cos(2*pi*k*n / Span(n, sym))
//
// Hann, Hamming, the Blackman family, Kaiser-Bessel and flat-top are all
// instances of it. An empty coefficient list yields zeros.
func CosineSum(n int, sym bool, coeffs []float64) []float64 {
	span := Span(n, sym)

	return evaluate(n, func(i float64) float64 {
		return cosineFromCoeffs(i/span, coeffs)
	})
}

// Coefficients returns a copy of the cosine-sum coefficients of t, or nil if t
// is not a cosine-sum window.
func Coefficients(t Type) []float64 {
	c, ok := cosineSumTables[t]
	if !ok {
		return nil
	}

	return append([]float64(nil), c...)
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}
