// Package window provides a catalog of discrete window functions.
//
// Every generator has the shape of [Func]: it takes a length n and a symmetry
// flag and returns n freshly allocated coefficients.
//
// Symmetric windows (sym == true) are intended for filter design: the first and
// last samples are the two endpoints of one full lobe, so the formulas divide by
// n-1. Periodic windows (sym == false) are intended for spectral analysis: they
// are the first n samples of the symmetric window of length n+1, so the formulas
// divide by n.
//
// A length of zero or less yields an empty slice. Shape parameters are passed
// through unchanged, and singular points are left to IEEE-754 arithmetic, with
// one exception: the Lanczos centre tap is exactly 1.
//
// The generators are pure functions and are safe for concurrent use. The
// name-indexed layer ([Type], [Generate], [Bind]) adds per-family default
// symmetry, parameter defaults and optional post-processing.
package window
