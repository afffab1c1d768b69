package window

// Indices returns the sample indices 0..n-1. It returns an empty slice when
// n <= 0.
func Indices(n int) []int {
	if n <= 0 {
		return []int{}
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	return idx
}

// Span returns the period reference used by the additive length form:
// n-1 for symmetric windows and n for periodic windows.
func Span(n int, sym bool) float64 {
	if sym {
		return float64(n - 1)
	}

	return float64(n)
}

// HalfSpan returns Span(n, sym)/2, the centre and radius of the centred
// families.
func HalfSpan(n int, sym bool) float64 {
	return Span(n, sym) / 2
}

// evaluate fills a new slice of length max(n, 0) with f applied to each index.
func evaluate(n int, f func(i float64) float64) []float64 {
	idx := Indices(n)

	out := make([]float64, len(idx))
	for i, k := range idx {
		out[i] = f(float64(k))
	}

	return out
}
