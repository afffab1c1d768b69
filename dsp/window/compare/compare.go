// Package compare evaluates two window generators side by side.
package compare

import (
	"math"

	"github.com/cwbudde/algo-window/dsp/window"
	"gonum.org/v1/gonum/floats"
)

// Result holds both sequences of one comparison.
type Result struct {
	Index     []int
	Test      []float64
	Reference []float64
	// MaxAbsDiff is the largest |Test[i] - Reference[i]|. It is NaN when
	// either sequence holds a NaN and +Inf when the lengths differ.
	MaxAbsDiff float64
}

// Compare evaluates test and reference at the same length and symmetry.
func Compare(n int, test, reference window.Func, sym bool) Result {
	r := Result{
		Index:     window.Indices(n),
		Test:      test(n, sym),
		Reference: reference(n, sym),
	}

	switch {
	case len(r.Test) != len(r.Reference):
		r.MaxAbsDiff = math.Inf(1)
	case floats.HasNaN(r.Test) || floats.HasNaN(r.Reference):
		r.MaxAbsDiff = math.NaN()
	default:
		r.MaxAbsDiff = floats.Distance(r.Test, r.Reference, math.Inf(1))
	}

	return r
}

// Within reports whether every sample pair differs by at most tol.
func (r Result) Within(tol float64) bool {
	return len(r.Test) == len(r.Reference) && r.MaxAbsDiff <= tol
}
